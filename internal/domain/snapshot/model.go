package snapshot

import (
	"sort"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/conditions"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/event"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/source"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/squad"
)

// Status is the acquisition outcome a snapshot was built from.
type Status string

const (
	StatusIdle      Status = "idle"
	StatusConnected Status = "connected"
	StatusSynthetic Status = "synthetic"
	StatusNoMatches Status = "no_matches"
)

// Snapshot is the published, read-only state consumed by analytics.
// Its maps and slices are shared between readers and must not be mutated.
type Snapshot struct {
	ID          string
	Events      []event.Event
	Selected    event.Event
	Squads      map[string]squad.Squad
	Conditions  conditions.Conditions
	DataSource  string
	Status      Status
	Explanation string
	Attempts    []source.Attempt
	PublishedAt time.Time
}

func (s Snapshot) HasEvents() bool {
	return len(s.Events) > 0
}

func (s Snapshot) Synthetic() bool {
	return s.Status == StatusSynthetic
}

// FindEvent looks up an event by id.
func (s Snapshot) FindEvent(id string) (event.Event, bool) {
	for _, ev := range s.Events {
		if ev.ID == id {
			return ev, true
		}
	}
	return event.Event{}, false
}

// AllPlayers flattens squads: selected teams first, then any others by name.
func (s Snapshot) AllPlayers() []squad.Player {
	if len(s.Squads) == 0 {
		return nil
	}

	seen := make(map[string]struct{}, len(s.Squads))
	out := make([]squad.Player, 0, 32)
	for _, team := range s.Selected.Teams {
		sq, ok := s.Squads[team]
		if !ok {
			continue
		}
		if _, dup := seen[team]; dup {
			continue
		}
		seen[team] = struct{}{}
		out = append(out, sq.Ordered()...)
	}

	rest := make([]string, 0, len(s.Squads))
	for team := range s.Squads {
		if _, ok := seen[team]; !ok {
			rest = append(rest, team)
		}
	}
	sort.Strings(rest)
	for _, team := range rest {
		out = append(out, s.Squads[team].Ordered()...)
	}

	return out
}
