package usecase

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/event"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/snapshot"
	idgen "github.com/riskibarqy/fantasy-cricket/internal/platform/id"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/resilience"
)

const acquisitionFlightKey = "acquisition"

type Acquirer interface {
	Acquire(ctx context.Context) (AcquisitionResult, error)
}

type Synthesizer interface {
	Generate(now time.Time) ([]event.Event, error)
}

type Builder interface {
	Build(ctx context.Context, ev event.Event) (Bundle, error)
	BuildOffline(ev event.Event) Bundle
}

// AssistantService is the inbound surface: it runs acquisitions, publishes
// snapshots and answers queries against the current one.
type AssistantService struct {
	acquirer    Acquirer
	synthesizer Synthesizer
	builder     Builder
	router      *IntentRouter
	store       snapshot.Store
	idGen       idgen.Generator
	metrics     MetricsRecorder
	logger      *logging.Logger
	flight      resilience.Group[snapshot.Snapshot]
	now         func() time.Time
}

func NewAssistantService(
	acquirer Acquirer,
	synthesizer Synthesizer,
	builder Builder,
	router *IntentRouter,
	store snapshot.Store,
	idGen idgen.Generator,
	metrics MetricsRecorder,
	logger *logging.Logger,
) *AssistantService {
	if logger == nil {
		logger = logging.Default()
	}
	if router == nil {
		router = NewIntentRouter()
	}

	return &AssistantService{
		acquirer:    acquirer,
		synthesizer: synthesizer,
		builder:     builder,
		router:      router,
		store:       store,
		idGen:       idGen,
		metrics:     metricsOrNop(metrics),
		logger:      logger,
		now:         time.Now,
	}
}

// RequestAcquisition runs one acquisition and publishes its outcome. Callers
// arriving while one is running share its result. The run is detached from
// the caller's cancellation so a disconnecting client cannot abort it for others.
func (s *AssistantService) RequestAcquisition(ctx context.Context) (snapshot.Snapshot, error) {
	runCtx := context.WithoutCancel(ctx)
	snap, err, shared := s.flight.Do(acquisitionFlightKey, func() (snapshot.Snapshot, error) {
		return s.acquire(runCtx)
	})
	if shared {
		s.logger.DebugContext(ctx, "acquisition request joined running acquisition")
	}
	return snap, err
}

// Retry starts a fresh acquisition, typically after a no_matches outcome.
func (s *AssistantService) Retry(ctx context.Context) (snapshot.Snapshot, error) {
	s.logger.InfoContext(ctx, "acquisition retry requested")
	return s.RequestAcquisition(ctx)
}

// Acquiring reports whether an acquisition is running.
func (s *AssistantService) Acquiring() bool {
	return s.flight.InFlight(acquisitionFlightKey)
}

func (s *AssistantService) Current() (snapshot.Snapshot, bool) {
	return s.store.Current()
}

// SelectEvent rebuilds squads and conditions for another event of the current
// snapshot. If an acquisition publishes while the rebuild runs, the newer
// snapshot is kept and ErrConflict is returned.
func (s *AssistantService) SelectEvent(ctx context.Context, eventID string) (snapshot.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssistantService.SelectEvent")
	defer span.End()

	eventID = strings.TrimSpace(eventID)
	if eventID == "" {
		return snapshot.Snapshot{}, fmt.Errorf("%w: event id is required", ErrInvalidInput)
	}

	cur, ok := s.store.Current()
	if !ok {
		return snapshot.Snapshot{}, fmt.Errorf("%w: no snapshot published yet", ErrNotFound)
	}
	ev, ok := cur.FindEvent(eventID)
	if !ok {
		return snapshot.Snapshot{}, fmt.Errorf("%w: event id=%s", ErrNotFound, eventID)
	}

	started := s.now()
	var bundle Bundle
	if cur.Synthetic() {
		bundle = s.builder.BuildOffline(ev)
	} else {
		bundle = s.build(ctx, ev)
	}

	next := cur
	next.Selected = ev
	next.Squads = bundle.Squads
	next.Conditions = bundle.Conditions
	return s.publishReplacing(ctx, cur.ID, next, started)
}

// SubmitQuery routes text to a report against the current snapshot.
func (s *AssistantService) SubmitQuery(ctx context.Context, text string) (string, error) {
	if strings.TrimSpace(text) == "" {
		return "", fmt.Errorf("%w: query text is required", ErrInvalidInput)
	}

	cur, published := s.store.Current()
	view := RouteView{
		Acquiring: s.Acquiring() || !published,
		Snapshot:  cur,
	}
	intent, report := s.router.Route(text, view)
	s.metrics.ObserveQuery(string(intent))
	s.logger.DebugContext(ctx, "query routed", "intent", string(intent), "snapshot_id", cur.ID)
	return report, nil
}

func (s *AssistantService) acquire(ctx context.Context) (snapshot.Snapshot, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.AssistantService.acquire")
	defer span.End()

	started := s.now()
	result, err := s.acquirer.Acquire(ctx)
	if err == nil && len(result.Events) > 0 {
		selected := result.Events[0]
		bundle := s.build(ctx, selected)
		return s.publish(ctx, snapshot.Snapshot{
			Events:     result.Events,
			Selected:   selected,
			Squads:     bundle.Squads,
			Conditions: bundle.Conditions,
			DataSource: result.Source,
			Status:     snapshot.StatusConnected,
			Attempts:   result.Attempts,
		}, started)
	}

	s.logger.WarnContext(ctx, "all cricket data sources exhausted, attempting synthesis", "attempts", len(result.Attempts), "error", err)

	events, genErr := s.synthesizer.Generate(s.now())
	if genErr != nil || len(events) == 0 {
		return s.publish(ctx, snapshot.Snapshot{
			Status:      snapshot.StatusNoMatches,
			Explanation: declineReason(genErr),
			Attempts:    result.Attempts,
		}, started)
	}

	selected := events[0]
	bundle := s.builder.BuildOffline(selected)
	return s.publish(ctx, snapshot.Snapshot{
		Events:     events,
		Selected:   selected,
		Squads:     bundle.Squads,
		Conditions: bundle.Conditions,
		DataSource: selected.Source,
		Status:     snapshot.StatusSynthetic,
		Attempts:   result.Attempts,
	}, started)
}

// build falls back to offline generation when the worker pool cannot start.
func (s *AssistantService) build(ctx context.Context, ev event.Event) Bundle {
	bundle, err := s.builder.Build(ctx, ev)
	if err != nil {
		s.logger.WarnContext(ctx, "squad build failed, generating offline squads", "event_id", ev.ID, "error", err)
		return s.builder.BuildOffline(ev)
	}
	return bundle
}

// publish stamps a fresh revision and swaps the snapshot in whole.
func (s *AssistantService) publish(ctx context.Context, snap snapshot.Snapshot, started time.Time) (snapshot.Snapshot, error) {
	snap, err := s.stamp(snap)
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	s.store.Publish(snap)
	return s.published(ctx, snap, started), nil
}

// publishReplacing swaps snap in only while replacesID is still current.
func (s *AssistantService) publishReplacing(ctx context.Context, replacesID string, snap snapshot.Snapshot, started time.Time) (snapshot.Snapshot, error) {
	snap, err := s.stamp(snap)
	if err != nil {
		return snapshot.Snapshot{}, err
	}
	if !s.store.PublishIf(replacesID, snap) {
		s.logger.WarnContext(ctx, "snapshot replaced during event selection, discarding rebuild",
			"replaces_id", replacesID,
			"event_id", snap.Selected.ID,
		)
		return snapshot.Snapshot{}, fmt.Errorf("%w: snapshot %s was replaced, select the event again", ErrConflict, replacesID)
	}
	return s.published(ctx, snap, started), nil
}

func (s *AssistantService) stamp(snap snapshot.Snapshot) (snapshot.Snapshot, error) {
	id, err := s.idGen.NewID()
	if err != nil {
		return snapshot.Snapshot{}, fmt.Errorf("generate snapshot id: %w", err)
	}
	snap.ID = id
	snap.PublishedAt = s.now().UTC()
	return snap, nil
}

func (s *AssistantService) published(ctx context.Context, snap snapshot.Snapshot, started time.Time) snapshot.Snapshot {
	s.metrics.ObservePublish(snap.Status, snap.PublishedAt.Sub(started))
	s.logger.InfoContext(ctx, "snapshot published",
		"snapshot_id", snap.ID,
		"status", string(snap.Status),
		"source", snap.DataSource,
		"events", len(snap.Events),
	)
	return snap
}

func declineReason(err error) string {
	var declined *DeclinedError
	if errors.As(err, &declined) {
		return declined.Explanation
	}
	if err != nil {
		return "Synthetic data could not be generated: " + err.Error()
	}
	return emptyExplanation
}
