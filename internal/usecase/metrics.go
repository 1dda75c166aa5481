package usecase

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/snapshot"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/source"
)

// MetricsRecorder receives pipeline counters. observability.Metrics implements it.
type MetricsRecorder interface {
	ObserveAttempt(sourceName string, outcome source.Outcome)
	ObservePublish(status snapshot.Status, duration time.Duration)
	ObserveLookupFallback(kind string)
	ObserveQuery(intent string)
}

const (
	lookupKindName    = "name"
	lookupKindWeather = "weather"
)

type nopMetrics struct{}

func (nopMetrics) ObserveAttempt(string, source.Outcome)         {}
func (nopMetrics) ObservePublish(snapshot.Status, time.Duration) {}
func (nopMetrics) ObserveLookupFallback(string)                  {}
func (nopMetrics) ObserveQuery(string)                           {}

func metricsOrNop(m MetricsRecorder) MetricsRecorder {
	if m == nil {
		return nopMetrics{}
	}
	return m
}
