package usecase

import (
	"context"
	"strconv"
	"sync"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/conditions"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/event"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/snapshot"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/source"
	"github.com/stretchr/testify/mock"
)

type mockAcquirer struct {
	mock.Mock
}

func (m *mockAcquirer) Acquire(ctx context.Context) (AcquisitionResult, error) {
	args := m.Called(ctx)
	return args.Get(0).(AcquisitionResult), args.Error(1)
}

type mockSynthesizer struct {
	mock.Mock
}

func (m *mockSynthesizer) Generate(now time.Time) ([]event.Event, error) {
	args := m.Called(now)
	events, _ := args.Get(0).([]event.Event)
	return events, args.Error(1)
}

type mockNames struct {
	mock.Mock
}

func (m *mockNames) NameFor(ctx context.Context, team string) (string, error) {
	args := m.Called(ctx, team)
	return args.String(0), args.Error(1)
}

type mockWeather struct {
	mock.Mock
}

func (m *mockWeather) Current(ctx context.Context, city string) (conditions.Reading, error) {
	args := m.Called(ctx, city)
	return args.Get(0).(conditions.Reading), args.Error(1)
}

// fixedSource answers every draw with the same values.
type fixedSource struct {
	f float64
}

func (s fixedSource) IntN(int) int     { return 0 }
func (s fixedSource) Float64() float64 { return s.f }

type staticIDGenerator struct {
	mu   sync.Mutex
	next int
}

func (g *staticIDGenerator) NewID() (string, error) {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.next++
	return "snap-" + strconv.Itoa(g.next), nil
}

type recordingMetrics struct {
	mu        sync.Mutex
	attempts  []source.Outcome
	publishes []snapshot.Status
	fallbacks map[string]int
	queries   []string
}

func newRecordingMetrics() *recordingMetrics {
	return &recordingMetrics{fallbacks: make(map[string]int)}
}

func (m *recordingMetrics) ObserveAttempt(_ string, outcome source.Outcome) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.attempts = append(m.attempts, outcome)
}

func (m *recordingMetrics) ObservePublish(status snapshot.Status, _ time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.publishes = append(m.publishes, status)
}

func (m *recordingMetrics) ObserveLookupFallback(kind string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.fallbacks[kind]++
}

func (m *recordingMetrics) ObserveQuery(intent string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.queries = append(m.queries, intent)
}

func (m *recordingMetrics) fallbackCount(kind string) int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.fallbacks[kind]
}

type staticRegistry []source.Source

func (r staticRegistry) Sources() []source.Source {
	return r
}

type fetchResult struct {
	resp source.Response
	err  error
}

type mapFetcher struct {
	mu      sync.Mutex
	results map[string]fetchResult
	calls   []string
}

func (f *mapFetcher) Fetch(_ context.Context, endpoint string) (source.Response, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.calls = append(f.calls, endpoint)
	if r, ok := f.results[endpoint]; ok {
		return r.resp, r.err
	}
	return source.Response{}, source.ErrTransport
}
