package app

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"github.com/riskibarqy/fantasy-cricket/external/cricketdata"
	"github.com/riskibarqy/fantasy-cricket/external/randomuser"
	"github.com/riskibarqy/fantasy-cricket/external/weather"
	"github.com/riskibarqy/fantasy-cricket/internal/config"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/source"
	"github.com/riskibarqy/fantasy-cricket/internal/infrastructure/repository/memory"
	"github.com/riskibarqy/fantasy-cricket/internal/interfaces/httpapi"
	"github.com/riskibarqy/fantasy-cricket/internal/observability"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/httpclient"
	idgen "github.com/riskibarqy/fantasy-cricket/internal/platform/id"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/random"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

// NewLogger builds the process logger: stdout plus the optional rotating file,
// teed into Better Stack when enabled.
func NewLogger(cfg config.Config) (*logging.Logger, func(context.Context) error, error) {
	base := logging.New(logging.Options{
		Level:    cfg.LogLevel,
		FilePath: cfg.LogFile,
	})
	logger, shutdown, err := observability.InitBetterStackLogger(cfg, base)
	if err != nil {
		return nil, nil, fmt.Errorf("init betterstack logger: %w", err)
	}
	return logger, shutdown, nil
}

// NewRegistry loads SOURCES_FILE when set, otherwise the built-in registry.
func NewRegistry(cfg config.Config) (source.Registry, error) {
	path := strings.TrimSpace(cfg.SourcesFile)
	if path == "" {
		return cricketdata.DefaultRegistry(), nil
	}
	registry, err := cricketdata.LoadRegistryFile(path)
	if err != nil {
		return nil, fmt.Errorf("load source registry: %w", err)
	}
	return registry, nil
}

// NewAssistant wires the acquisition pipeline. The HTTP service and the CLI share it.
func NewAssistant(cfg config.Config, logger *logging.Logger, metrics usecase.MetricsRecorder) (*usecase.AssistantService, error) {
	if logger == nil {
		logger = logging.Default()
	}

	registry, err := NewRegistry(cfg)
	if err != nil {
		return nil, err
	}

	rng := random.New(cfg.RandomSeed)

	sourceHTTP := httpclient.New(httpclient.Config{
		Timeout:   cfg.SourceTimeout,
		UserAgent: cfg.SourceUserAgent,
	})
	fetcher := cricketdata.NewClient(cricketdata.ClientConfig{
		HTTP:           sourceHTTP,
		Logger:         logger,
		CircuitBreaker: cfg.SourceCircuitBreaker(),
	})
	acquisition := usecase.NewAcquisitionService(
		registry,
		fetcher,
		cricketdata.NewNormalizer(rng),
		metrics,
		logger,
		cfg.SourceTimeout,
	)

	var names usecase.NameProvider
	if cfg.NameProviderEnabled {
		names = randomuser.NewClient(randomuser.ClientConfig{
			HTTP: httpclient.New(httpclient.Config{
				Timeout:   cfg.NameLookupTimeout,
				UserAgent: cfg.SourceUserAgent,
			}),
			BaseURL: cfg.NameProviderBaseURL,
		})
	}

	var conditionsProvider usecase.WeatherProvider
	if cfg.WeatherEnabled {
		conditionsProvider = weather.NewClient(weather.ClientConfig{
			HTTP: httpclient.New(httpclient.Config{
				Timeout:   cfg.WeatherTimeout,
				UserAgent: cfg.SourceUserAgent,
			}),
			Logger:          logger,
			OpenWeatherKey:  cfg.WeatherOpenWeatherKey,
			WeatherAPIKey:   cfg.WeatherWeatherAPIKey,
			CacheTTL:        cfg.LookupCacheTTL,
			SkipMissingKeys: true,
		})
	}

	builder := usecase.NewSquadBuilder(names, conditionsProvider, rng, metrics, logger, usecase.SquadBuilderConfig{
		Workers:        cfg.SquadLookupWorkers,
		NameTimeout:    cfg.NameLookupTimeout,
		WeatherTimeout: cfg.WeatherTimeout,
	})

	return usecase.NewAssistantService(
		acquisition,
		usecase.NewSyntheticGenerator(rng, cfg.SyntheticSourceName, logger),
		builder,
		usecase.NewIntentRouter(),
		memory.NewSnapshotStore(),
		idgen.NewUUIDGenerator(),
		metrics,
		logger,
	), nil
}

// NewHTTPServer serves assistant. metrics may be nil, which also disables /metrics.
func NewHTTPServer(cfg config.Config, assistant httpapi.Assistant, logger *logging.Logger, metrics *observability.Metrics) (*http.Server, error) {
	if strings.TrimSpace(cfg.HTTPAddr) == "" {
		return nil, fmt.Errorf("http server addr cannot be empty")
	}

	var exporter httpapi.MetricsExporter
	if metrics != nil {
		exporter = metrics
	}

	handler := httpapi.NewHandler(assistant, logger)
	router := httpapi.NewRouter(handler, logger, exporter, cfg.CORSAllowedOrigins)

	return &http.Server{
		Addr:         cfg.HTTPAddr,
		Handler:      router,
		ReadTimeout:  cfg.ReadTimeout,
		WriteTimeout: cfg.WriteTimeout,
	}, nil
}
