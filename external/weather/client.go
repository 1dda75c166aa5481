// Package weather reads current conditions for a city from the first
// provider that answers with a known shape.
package weather

import (
	"context"
	"math"
	"net/url"
	"strconv"
	"strings"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/conditions"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/cache"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/httpclient"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

const (
	DefaultOpenWeatherURL = "https://api.openweathermap.org/data/2.5/weather"
	DefaultWttrURL        = "https://wttr.in"
	DefaultWeatherAPIURL  = "https://api.weatherapi.com/v1/current.json"

	defaultWeather     = "Clear"
	defaultTemperature = 25
	defaultHumidity    = 60
	defaultWindSpeed   = 10
)

// ErrUnavailable means every provider failed or answered with an unknown shape.
var ErrUnavailable = crerr.New("weather unavailable")

// ClientConfig with SkipMissingKeys drops keyed providers that have no key
// instead of calling them anonymously.
type ClientConfig struct {
	HTTP            httpclient.Getter
	Logger          *logging.Logger
	OpenWeatherKey  string
	WeatherAPIKey   string
	OpenWeatherURL  string
	WttrURL         string
	WeatherAPIURL   string
	CacheTTL        time.Duration
	SkipMissingKeys bool
}

type provider struct {
	name     string
	buildURL func(city string) string
}

type Client struct {
	http      httpclient.Getter
	logger    *logging.Logger
	providers []provider
	cache     *cache.Store[conditions.Reading]
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	getter := cfg.HTTP
	if getter == nil {
		getter = httpclient.New(httpclient.Config{})
	}

	owmURL := firstNonEmpty(cfg.OpenWeatherURL, DefaultOpenWeatherURL)
	wttrURL := strings.TrimRight(firstNonEmpty(cfg.WttrURL, DefaultWttrURL), "/")
	wapiURL := firstNonEmpty(cfg.WeatherAPIURL, DefaultWeatherAPIURL)
	owmKey := strings.TrimSpace(cfg.OpenWeatherKey)
	wapiKey := strings.TrimSpace(cfg.WeatherAPIKey)

	providers := make([]provider, 0, 3)
	if owmKey != "" || !cfg.SkipMissingKeys {
		providers = append(providers, provider{name: "openweathermap", buildURL: func(city string) string {
			values := url.Values{}
			values.Set("q", city)
			values.Set("units", "metric")
			if owmKey != "" {
				values.Set("appid", owmKey)
			}
			return owmURL + "?" + values.Encode()
		}})
	}
	providers = append(providers, provider{name: "wttr.in", buildURL: func(city string) string {
		return wttrURL + "/" + url.PathEscape(city) + "?format=j1"
	}})
	if wapiKey != "" || !cfg.SkipMissingKeys {
		providers = append(providers, provider{name: "weatherapi", buildURL: func(city string) string {
			values := url.Values{}
			if wapiKey != "" {
				values.Set("key", wapiKey)
			}
			values.Set("q", city)
			return wapiURL + "?" + values.Encode()
		}})
	}

	return &Client{
		http:      getter,
		logger:    logger,
		providers: providers,
		cache:     cache.NewStore[conditions.Reading](cfg.CacheTTL),
	}
}

// Current returns the cached reading for city or queries providers in order.
func (c *Client) Current(ctx context.Context, city string) (conditions.Reading, error) {
	city = strings.TrimSpace(city)
	if city == "" {
		return conditions.Reading{}, crerr.Wrap(ErrUnavailable, "city is required")
	}
	return c.cache.GetOrLoad(ctx, "weather:"+strings.ToLower(city), func(ctx context.Context) (conditions.Reading, error) {
		return c.fetch(ctx, city)
	})
}

func (c *Client) fetch(ctx context.Context, city string) (conditions.Reading, error) {
	for _, p := range c.providers {
		status, raw, err := c.http.Get(ctx, p.buildURL(city), nil)
		if err != nil {
			c.logger.DebugContext(ctx, "weather provider failed", "provider", p.name, "city", city, "error", err)
			continue
		}
		if status < 200 || status >= 300 {
			c.logger.DebugContext(ctx, "weather provider rejected request", "provider", p.name, "city", city, "status", status)
			continue
		}

		report, ok := Parse(raw)
		if !ok {
			continue
		}
		report.Provider = p.name
		return report, nil
	}
	return conditions.Reading{}, crerr.Wrapf(ErrUnavailable, "city=%s", city)
}

type payload struct {
	Main *struct {
		Temp     float64 `json:"temp"`
		Humidity float64 `json:"humidity"`
	} `json:"main"`
	Weather []struct {
		Main string `json:"main"`
	} `json:"weather"`
	Wind *struct {
		Speed float64 `json:"speed"`
	} `json:"wind"`

	CurrentCondition []struct {
		TempC       string `json:"temp_C"`
		Humidity    string `json:"humidity"`
		WindKmph    string `json:"windspeedKmph"`
		WeatherDesc []struct {
			Value string `json:"value"`
		} `json:"weatherDesc"`
	} `json:"current_condition"`

	Current *struct {
		TempC     float64 `json:"temp_c"`
		Humidity  float64 `json:"humidity"`
		WindKph   float64 `json:"wind_kph"`
		Condition *struct {
			Text string `json:"text"`
		} `json:"condition"`
	} `json:"current"`
}

// Parse reads the OpenWeatherMap, wttr.in or WeatherAPI shape, checked in that order.
func Parse(raw []byte) (conditions.Reading, bool) {
	var p payload
	if err := sonic.Unmarshal(raw, &p); err != nil {
		return conditions.Reading{}, false
	}

	switch {
	case p.Main != nil:
		report := conditions.Reading{
			Weather:     defaultWeather,
			Temperature: round(p.Main.Temp),
			Humidity:    round(p.Main.Humidity),
			WindSpeed:   defaultWindSpeed,
		}
		if len(p.Weather) > 0 && strings.TrimSpace(p.Weather[0].Main) != "" {
			report.Weather = p.Weather[0].Main
		}
		if p.Wind != nil {
			if kmh := round(p.Wind.Speed * 3.6); kmh > 0 {
				report.WindSpeed = kmh
			}
		}
		return report, true
	case p.CurrentCondition != nil:
		report := conditions.Reading{
			Weather:     defaultWeather,
			Temperature: defaultTemperature,
			Humidity:    defaultHumidity,
			WindSpeed:   defaultWindSpeed,
		}
		if len(p.CurrentCondition) == 0 {
			return report, true
		}
		current := p.CurrentCondition[0]
		if len(current.WeatherDesc) > 0 && strings.TrimSpace(current.WeatherDesc[0].Value) != "" {
			report.Weather = strings.TrimSpace(current.WeatherDesc[0].Value)
		}
		report.Temperature = atoiOr(current.TempC, defaultTemperature)
		report.Humidity = atoiOr(current.Humidity, defaultHumidity)
		report.WindSpeed = atoiOr(current.WindKmph, defaultWindSpeed)
		return report, true
	case p.Current != nil:
		report := conditions.Reading{
			Weather:     defaultWeather,
			Temperature: round(p.Current.TempC),
			Humidity:    round(p.Current.Humidity),
			WindSpeed:   round(p.Current.WindKph),
		}
		if p.Current.Condition != nil && strings.TrimSpace(p.Current.Condition.Text) != "" {
			report.Weather = p.Current.Condition.Text
		}
		return report, true
	default:
		return conditions.Reading{}, false
	}
}

func round(v float64) int {
	return int(math.Round(v))
}

// atoiOr treats unparseable and zero values as missing.
func atoiOr(raw string, fallback int) int {
	v, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil || v == 0 {
		return fallback
	}
	return v
}

func firstNonEmpty(values ...string) string {
	for _, v := range values {
		if trimmed := strings.TrimSpace(v); trimmed != "" {
			return trimmed
		}
	}
	return ""
}
