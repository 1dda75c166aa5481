package usecase

import (
	"context"
	"fmt"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/event"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/source"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

const defaultSourceTimeout = 8 * time.Second

// Normalizer maps a decoded source body into canonical events.
type Normalizer interface {
	Normalize(body any, sourceName string) ([]event.Event, error)
}

type AcquisitionResult struct {
	Events   []event.Event
	Source   string
	Attempts []source.Attempt
}

type AcquisitionService struct {
	registry   source.Registry
	fetcher    source.Fetcher
	normalizer Normalizer
	metrics    MetricsRecorder
	logger     *logging.Logger
	timeout    time.Duration
	now        func() time.Time
}

func NewAcquisitionService(
	registry source.Registry,
	fetcher source.Fetcher,
	normalizer Normalizer,
	metrics MetricsRecorder,
	logger *logging.Logger,
	timeout time.Duration,
) *AcquisitionService {
	if logger == nil {
		logger = logging.Default()
	}
	if timeout <= 0 {
		timeout = defaultSourceTimeout
	}

	return &AcquisitionService{
		registry:   registry,
		fetcher:    fetcher,
		normalizer: normalizer,
		metrics:    metricsOrNop(metrics),
		logger:     logger,
		timeout:    timeout,
		now:        time.Now,
	}
}

// Acquire walks the registry in order and returns the first source that yields
// at least one recent event. On exhaustion the result still carries every attempt.
func (s *AcquisitionService) Acquire(ctx context.Context) (AcquisitionResult, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AcquisitionService.Acquire")
	defer span.End()

	result := AcquisitionResult{}
	for _, src := range s.registry.Sources() {
		if err := ctx.Err(); err != nil {
			return result, fmt.Errorf("%w: %v", ErrAcquisitionExhausted, err)
		}

		events, attempts := s.acquireSource(ctx, src)
		result.Attempts = append(result.Attempts, attempts...)
		if len(events) > 0 {
			result.Events = events
			result.Source = src.Name
			s.logger.InfoContext(ctx, "cricket data source connected", "source", src.Name, "events", len(events))
			return result, nil
		}
		s.logger.WarnContext(ctx, "cricket data source yielded no recent events, trying next source", "source", src.Name)
	}

	return result, fmt.Errorf("%w: %d attempts", ErrAcquisitionExhausted, len(result.Attempts))
}

// acquireSource tries the primary endpoint, then alternatives until one
// answers with a recognized shape. Only that body is filtered.
func (s *AcquisitionService) acquireSource(ctx context.Context, src source.Source) ([]event.Event, []source.Attempt) {
	endpoints := append([]string{src.Endpoint}, src.Alternatives...)
	attempts := make([]source.Attempt, 0, len(endpoints))

	for idx, endpoint := range endpoints {
		attempt := source.Attempt{
			Source:      src.Name,
			Endpoint:    endpoint,
			Alternative: idx > 0,
		}

		events, err := s.fetchAndNormalize(ctx, src.Name, endpoint)
		if err != nil {
			attempt.Outcome = source.ClassifyError(err)
			attempt.Error = err.Error()
			attempts = append(attempts, attempt)
			s.metrics.ObserveAttempt(src.Name, attempt.Outcome)
			s.logger.WarnContext(ctx, "cricket data endpoint failed, trying next",
				"source", src.Name,
				"endpoint", endpoint,
				"alternative", attempt.Alternative,
				"outcome", string(attempt.Outcome),
				"error", err,
			)
			continue
		}

		recent := s.filterRecent(events)
		attempt.Records = len(recent)
		attempt.Outcome = source.OutcomeOK
		if len(recent) == 0 {
			attempt.Outcome = source.OutcomeEmpty
		}
		attempts = append(attempts, attempt)
		s.metrics.ObserveAttempt(src.Name, attempt.Outcome)
		return recent, attempts
	}

	return nil, attempts
}

func (s *AcquisitionService) fetchAndNormalize(ctx context.Context, sourceName, endpoint string) ([]event.Event, error) {
	callCtx, cancel := context.WithTimeout(ctx, s.timeout)
	defer cancel()

	resp, err := s.fetcher.Fetch(callCtx, endpoint)
	if err != nil {
		return nil, err
	}
	return s.normalizer.Normalize(resp.Body, sourceName)
}

func (s *AcquisitionService) filterRecent(events []event.Event) []event.Event {
	now := s.now()
	out := make([]event.Event, 0, len(events))
	for _, ev := range events {
		if event.WithinWindow(ev.StartsAt, now, event.RecencyWindow) {
			out = append(out, ev)
		}
	}
	return out
}
