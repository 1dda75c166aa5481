package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/resilience"
)

// Config stores runtime configuration for the service.
type Config struct {
	AppEnv                      string
	ServiceName                 string
	ServiceVersion              string
	HTTPAddr                    string
	CORSAllowedOrigins          []string
	ReadTimeout                 time.Duration
	WriteTimeout                time.Duration
	LogLevel                    logging.Level
	LogFile                     string
	PprofEnabled                bool
	PprofAddr                   string
	MetricsEnabled              bool
	UptraceEnabled              bool
	UptraceDSN                  string
	BetterStackEnabled          bool
	BetterStackEndpoint         string
	BetterStackToken            string
	BetterStackTimeout          time.Duration
	BetterStackMinLevel         logging.Level
	PyroscopeEnabled            bool
	PyroscopeServerAddress      string
	PyroscopeAppName            string
	PyroscopeAuthToken          string
	PyroscopeBasicAuthUser      string
	PyroscopeBasicAuthPassword  string
	PyroscopeUploadRate         time.Duration
	SourcesFile                 string
	SourceTimeout               time.Duration
	SourceUserAgent             string
	SourceCircuitEnabled        bool
	SourceCircuitFailureCount   int
	SourceCircuitOpenTimeout    time.Duration
	SourceCircuitHalfOpenMaxReq int
	NameProviderEnabled         bool
	NameProviderBaseURL         string
	NameLookupTimeout           time.Duration
	WeatherEnabled              bool
	WeatherOpenWeatherKey       string
	WeatherWeatherAPIKey        string
	WeatherTimeout              time.Duration
	LookupCacheTTL              time.Duration
	SquadLookupWorkers          int
	SyntheticSourceName         string
	RandomSeed                  uint64
	AcquireOnStart              bool
}

func Load() (Config, error) {
	appEnv, err := parseAppEnv(getEnv("APP_ENV", EnvDev))
	if err != nil {
		return Config{}, err
	}

	readTimeout, err := time.ParseDuration(getEnv("APP_READ_TIMEOUT", "10s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_READ_TIMEOUT: %w", err)
	}
	writeTimeout, err := time.ParseDuration(getEnv("APP_WRITE_TIMEOUT", "60s"))
	if err != nil {
		return Config{}, fmt.Errorf("parse APP_WRITE_TIMEOUT: %w", err)
	}

	uptraceEnabled, err := strconv.ParseBool(getEnv("UPTRACE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse UPTRACE_ENABLED: %w", err)
	}
	uptraceDSN := strings.TrimSpace(getEnv("UPTRACE_DSN", ""))
	if uptraceDSN == "" {
		uptraceDSN = parseUptraceDSNFromOTLPHeaders(getEnv("OTEL_EXPORTER_OTLP_HEADERS", ""))
	}
	if uptraceEnabled && uptraceDSN == "" {
		return Config{}, fmt.Errorf("UPTRACE_DSN is required when UPTRACE_ENABLED=true")
	}

	betterStackEnabled, err := strconv.ParseBool(getEnv("BETTERSTACK_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse BETTERSTACK_ENABLED: %w", err)
	}
	betterStackEndpoint := strings.TrimSpace(getEnv("BETTERSTACK_ENDPOINT", ""))
	if betterStackEnabled && betterStackEndpoint == "" {
		return Config{}, fmt.Errorf("BETTERSTACK_ENDPOINT is required when BETTERSTACK_ENABLED=true")
	}
	betterStackTimeout, err := positiveDuration("BETTERSTACK_TIMEOUT", "3s")
	if err != nil {
		return Config{}, err
	}

	pprofEnabled, err := strconv.ParseBool(getEnv("PPROF_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PPROF_ENABLED: %w", err)
	}
	pprofAddr := strings.TrimSpace(getEnv("PPROF_ADDR", ":6060"))
	if pprofEnabled && pprofAddr == "" {
		return Config{}, fmt.Errorf("PPROF_ADDR is required when PPROF_ENABLED=true")
	}

	metricsEnabled, err := strconv.ParseBool(getEnv("METRICS_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse METRICS_ENABLED: %w", err)
	}

	pyroscopeEnabled, err := strconv.ParseBool(getEnv("PYROSCOPE_ENABLED", "false"))
	if err != nil {
		return Config{}, fmt.Errorf("parse PYROSCOPE_ENABLED: %w", err)
	}
	pyroscopeServerAddress := strings.TrimSpace(getEnv("PYROSCOPE_SERVER_ADDRESS", ""))
	if pyroscopeEnabled && pyroscopeServerAddress == "" {
		return Config{}, fmt.Errorf("PYROSCOPE_SERVER_ADDRESS is required when PYROSCOPE_ENABLED=true")
	}
	pyroscopeUploadRate, err := positiveDuration("PYROSCOPE_UPLOAD_RATE", "15s")
	if err != nil {
		return Config{}, err
	}

	sourceTimeout, err := positiveDuration("SOURCE_TIMEOUT", "8s")
	if err != nil {
		return Config{}, err
	}
	sourceCircuitEnabled, err := strconv.ParseBool(getEnv("SOURCE_CIRCUIT_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_CIRCUIT_ENABLED: %w", err)
	}
	sourceCircuitFailureCount, err := getEnvAsInt("SOURCE_CIRCUIT_FAILURE_COUNT", 3)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_CIRCUIT_FAILURE_COUNT: %w", err)
	}
	if sourceCircuitFailureCount < 1 {
		return Config{}, fmt.Errorf("SOURCE_CIRCUIT_FAILURE_COUNT must be >= 1")
	}
	sourceCircuitOpenTimeout, err := positiveDuration("SOURCE_CIRCUIT_OPEN_TIMEOUT", "30s")
	if err != nil {
		return Config{}, err
	}
	sourceCircuitHalfOpenMaxReq, err := getEnvAsInt("SOURCE_CIRCUIT_HALF_OPEN_MAX_REQ", 1)
	if err != nil {
		return Config{}, fmt.Errorf("parse SOURCE_CIRCUIT_HALF_OPEN_MAX_REQ: %w", err)
	}
	if sourceCircuitHalfOpenMaxReq < 1 {
		return Config{}, fmt.Errorf("SOURCE_CIRCUIT_HALF_OPEN_MAX_REQ must be >= 1")
	}

	nameProviderEnabled, err := strconv.ParseBool(getEnv("NAME_PROVIDER_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse NAME_PROVIDER_ENABLED: %w", err)
	}
	nameLookupTimeout, err := positiveDuration("NAME_LOOKUP_TIMEOUT", "3s")
	if err != nil {
		return Config{}, err
	}
	weatherEnabled, err := strconv.ParseBool(getEnv("WEATHER_ENABLED", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse WEATHER_ENABLED: %w", err)
	}
	weatherTimeout, err := positiveDuration("WEATHER_TIMEOUT", "4s")
	if err != nil {
		return Config{}, err
	}
	lookupCacheTTL, err := positiveDuration("LOOKUP_CACHE_TTL", "10m")
	if err != nil {
		return Config{}, err
	}
	squadLookupWorkers, err := getEnvAsInt("SQUAD_LOOKUP_WORKERS", 8)
	if err != nil {
		return Config{}, fmt.Errorf("parse SQUAD_LOOKUP_WORKERS: %w", err)
	}
	if squadLookupWorkers < 1 {
		return Config{}, fmt.Errorf("SQUAD_LOOKUP_WORKERS must be >= 1")
	}

	randomSeed, err := strconv.ParseUint(getEnv("RANDOM_SEED", "0"), 10, 64)
	if err != nil {
		return Config{}, fmt.Errorf("parse RANDOM_SEED: %w", err)
	}
	acquireOnStart, err := strconv.ParseBool(getEnv("ACQUIRE_ON_START", "true"))
	if err != nil {
		return Config{}, fmt.Errorf("parse ACQUIRE_ON_START: %w", err)
	}

	cfg := Config{
		AppEnv:                      appEnv,
		ServiceName:                 getEnv("APP_SERVICE_NAME", "fantasy-cricket-api"),
		ServiceVersion:              getEnv("APP_SERVICE_VERSION", "dev"),
		HTTPAddr:                    getEnv("APP_HTTP_ADDR", ":8080"),
		CORSAllowedOrigins:          splitCSV(getEnv("CORS_ALLOWED_ORIGINS", "*")),
		ReadTimeout:                 readTimeout,
		WriteTimeout:                writeTimeout,
		LogLevel:                    parseLogLevel(getEnv("APP_LOG_LEVEL", "info")),
		LogFile:                     strings.TrimSpace(getEnv("APP_LOG_FILE", "")),
		PprofEnabled:                pprofEnabled,
		PprofAddr:                   pprofAddr,
		MetricsEnabled:              metricsEnabled,
		UptraceEnabled:              uptraceEnabled,
		UptraceDSN:                  uptraceDSN,
		BetterStackEnabled:          betterStackEnabled,
		BetterStackEndpoint:         betterStackEndpoint,
		BetterStackToken:            strings.TrimSpace(getEnv("BETTERSTACK_TOKEN", "")),
		BetterStackTimeout:          betterStackTimeout,
		BetterStackMinLevel:         parseLogLevel(getEnv("BETTERSTACK_MIN_LEVEL", "error")),
		PyroscopeEnabled:            pyroscopeEnabled,
		PyroscopeServerAddress:      pyroscopeServerAddress,
		PyroscopeAppName:            getEnv("PYROSCOPE_APP_NAME", "fantasy-cricket-api"),
		PyroscopeAuthToken:          strings.TrimSpace(getEnv("PYROSCOPE_AUTH_TOKEN", "")),
		PyroscopeBasicAuthUser:      strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_USER", "")),
		PyroscopeBasicAuthPassword:  strings.TrimSpace(getEnv("PYROSCOPE_BASIC_AUTH_PASSWORD", "")),
		PyroscopeUploadRate:         pyroscopeUploadRate,
		SourcesFile:                 strings.TrimSpace(getEnv("SOURCES_FILE", "")),
		SourceTimeout:               sourceTimeout,
		SourceUserAgent:             getEnv("SOURCE_USER_AGENT", "Fantasy-Cricket-Bot/1.0"),
		SourceCircuitEnabled:        sourceCircuitEnabled,
		SourceCircuitFailureCount:   sourceCircuitFailureCount,
		SourceCircuitOpenTimeout:    sourceCircuitOpenTimeout,
		SourceCircuitHalfOpenMaxReq: sourceCircuitHalfOpenMaxReq,
		NameProviderEnabled:         nameProviderEnabled,
		NameProviderBaseURL:         strings.TrimSpace(getEnv("NAME_PROVIDER_BASE_URL", "https://randomuser.me/api")),
		NameLookupTimeout:           nameLookupTimeout,
		WeatherEnabled:              weatherEnabled,
		WeatherOpenWeatherKey:       strings.TrimSpace(getEnv("WEATHER_OPENWEATHER_KEY", "")),
		WeatherWeatherAPIKey:        strings.TrimSpace(getEnv("WEATHER_WEATHERAPI_KEY", "")),
		WeatherTimeout:              weatherTimeout,
		LookupCacheTTL:              lookupCacheTTL,
		SquadLookupWorkers:          squadLookupWorkers,
		SyntheticSourceName:         getEnv("SYNTHETIC_SOURCE_NAME", "Simulated Data"),
		RandomSeed:                  randomSeed,
		AcquireOnStart:              acquireOnStart,
	}

	return cfg, nil
}

// SourceCircuitBreaker is the breaker config shared by every source endpoint host.
func (c Config) SourceCircuitBreaker() resilience.CircuitBreakerConfig {
	return resilience.CircuitBreakerConfig{
		Enabled:          c.SourceCircuitEnabled,
		FailureThreshold: c.SourceCircuitFailureCount,
		OpenTimeout:      c.SourceCircuitOpenTimeout,
		HalfOpenMaxReq:   c.SourceCircuitHalfOpenMaxReq,
	}
}

func parseLogLevel(v string) logging.Level {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "debug":
		return logging.LevelDebug
	case "warn", "warning":
		return logging.LevelWarn
	case "error":
		return logging.LevelError
	default:
		return logging.LevelInfo
	}
}

func getEnv(key, fallback string) string {
	value := os.Getenv(key)
	if strings.TrimSpace(value) == "" {
		return fallback
	}

	return value
}

func getEnvAsInt(key string, fallback int) (int, error) {
	value := strings.TrimSpace(os.Getenv(key))
	if value == "" {
		return fallback, nil
	}

	out, err := strconv.Atoi(value)
	if err != nil {
		return 0, err
	}

	return out, nil
}

func positiveDuration(key, fallback string) (time.Duration, error) {
	value, err := time.ParseDuration(getEnv(key, fallback))
	if err != nil {
		return 0, fmt.Errorf("parse %s: %w", key, err)
	}
	if value <= 0 {
		return 0, fmt.Errorf("%s must be > 0", key)
	}
	return value, nil
}

func splitCSV(v string) []string {
	parts := strings.Split(v, ",")
	out := make([]string, 0, len(parts))
	for _, part := range parts {
		item := strings.TrimSpace(part)
		if item == "" {
			continue
		}
		out = append(out, item)
	}

	return out
}

func parseUptraceDSNFromOTLPHeaders(raw string) string {
	if strings.TrimSpace(raw) == "" {
		return ""
	}

	items := strings.Split(raw, ",")
	for _, item := range items {
		parts := strings.SplitN(strings.TrimSpace(item), "=", 2)
		if len(parts) != 2 {
			continue
		}
		if strings.EqualFold(strings.TrimSpace(parts[0]), "uptrace-dsn") {
			value := strings.TrimSpace(parts[1])
			return strings.Trim(value, "\"'")
		}
	}

	return ""
}

const (
	EnvDev   = "dev"
	EnvStage = "stage"
	EnvProd  = "prod"
)

func parseAppEnv(v string) (string, error) {
	value := strings.ToLower(strings.TrimSpace(v))
	switch value {
	case EnvDev, EnvStage, EnvProd:
		return value, nil
	default:
		return "", fmt.Errorf("invalid APP_ENV %q: valid values are %s, %s, %s", v, EnvDev, EnvStage, EnvProd)
	}
}
