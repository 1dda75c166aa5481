package weather

import (
	"context"
	"errors"
	"strings"
	"sync"
	"testing"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/conditions"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/stretchr/testify/require"
)

type routeGetter struct {
	mu     sync.Mutex
	urls   []string
	routes map[string]string
}

func (g *routeGetter) Get(_ context.Context, rawURL string, _ map[string]string) (int, []byte, error) {
	g.mu.Lock()
	g.urls = append(g.urls, rawURL)
	g.mu.Unlock()

	for prefix, body := range g.routes {
		if strings.HasPrefix(rawURL, prefix) {
			return 200, []byte(body), nil
		}
	}
	return 0, nil, errors.New("connection refused")
}

func (g *routeGetter) calls() []string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return append([]string(nil), g.urls...)
}

func TestParse_Shapes(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want conditions.Reading
	}{
		{
			name: "openweathermap",
			raw:  `{"weather":[{"main":"Clouds"}],"main":{"temp":28.6,"humidity":74},"wind":{"speed":4.2}}`,
			want: conditions.Reading{Weather: "Clouds", Temperature: 29, Humidity: 74, WindSpeed: 15},
		},
		{
			name: "openweathermap defaults",
			raw:  `{"weather":[],"main":{"temp":18.2,"humidity":40}}`,
			want: conditions.Reading{Weather: "Clear", Temperature: 18, Humidity: 40, WindSpeed: 10},
		},
		{
			name: "wttr",
			raw:  `{"current_condition":[{"temp_C":"31","humidity":"55","windspeedKmph":"19","weatherDesc":[{"value":"Sunny"}]}]}`,
			want: conditions.Reading{Weather: "Sunny", Temperature: 31, Humidity: 55, WindSpeed: 19},
		},
		{
			name: "wttr defaults",
			raw:  `{"current_condition":[{"temp_C":"n/a","weatherDesc":[]}]}`,
			want: conditions.Reading{Weather: "Clear", Temperature: 25, Humidity: 60, WindSpeed: 10},
		},
		{
			name: "weatherapi",
			raw:  `{"current":{"temp_c":22.5,"humidity":81,"wind_kph":11.4,"condition":{"text":"Light rain"}}}`,
			want: conditions.Reading{Weather: "Light rain", Temperature: 23, Humidity: 81, WindSpeed: 11},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got, ok := Parse([]byte(tc.raw))
			require.True(t, ok)
			require.Equal(t, tc.want, got)
		})
	}

	_, ok := Parse([]byte(`{"error":{"code":1006}}`))
	require.False(t, ok)
	_, ok = Parse([]byte(`not json`))
	require.False(t, ok)
}

func TestClient_FallsThroughProvidersAndCaches(t *testing.T) {
	getter := &routeGetter{routes: map[string]string{
		"https://wttr.test": `{"current_condition":[{"temp_C":"27","humidity":"72","windspeedKmph":"8","weatherDesc":[{"value":"Haze"}]}]}`,
	}}
	c := NewClient(ClientConfig{
		HTTP:           getter,
		Logger:         logging.NewNop(),
		OpenWeatherKey: "owm-key",
		OpenWeatherURL: "https://owm.test/weather",
		WttrURL:        "https://wttr.test/",
		WeatherAPIURL:  "https://wapi.test/current.json",
	})

	report, err := c.Current(t.Context(), "Mumbai")
	require.NoError(t, err)
	require.Equal(t, conditions.Reading{Provider: "wttr.in", Weather: "Haze", Temperature: 27, Humidity: 72, WindSpeed: 8}, report)

	calls := getter.calls()
	require.Len(t, calls, 2)
	require.Equal(t, "https://owm.test/weather?appid=owm-key&q=Mumbai&units=metric", calls[0])
	require.Equal(t, "https://wttr.test/Mumbai?format=j1", calls[1])

	_, err = c.Current(t.Context(), "mumbai")
	require.NoError(t, err)
	require.Len(t, getter.calls(), 2)
}

func TestClient_SkipsProvidersWithoutKeys(t *testing.T) {
	getter := &routeGetter{routes: map[string]string{}}
	c := NewClient(ClientConfig{
		HTTP:            getter,
		Logger:          logging.NewNop(),
		WttrURL:         "https://wttr.test",
		SkipMissingKeys: true,
	})

	_, err := c.Current(t.Context(), "Kolkata")
	require.True(t, crerr.Is(err, ErrUnavailable))
	require.Equal(t, []string{"https://wttr.test/Kolkata?format=j1"}, getter.calls())

	_, err = c.Current(t.Context(), "Kolkata")
	require.Error(t, err)
	require.Len(t, getter.calls(), 2)
}

func TestClient_RejectsBlankCity(t *testing.T) {
	c := NewClient(ClientConfig{HTTP: &routeGetter{}, Logger: logging.NewNop()})
	_, err := c.Current(t.Context(), "  ")
	require.True(t, crerr.Is(err, ErrUnavailable))
}
