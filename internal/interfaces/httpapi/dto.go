package httpapi

import (
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/conditions"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/event"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/snapshot"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/source"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/squad"
)

type snapshotDTO struct {
	ID            string         `json:"id"`
	Status        string         `json:"status"`
	Synthetic     bool           `json:"synthetic"`
	DataSource    string         `json:"dataSource,omitempty"`
	Explanation   string         `json:"explanation,omitempty"`
	PublishedAt   time.Time      `json:"publishedAt"`
	SelectedEvent *eventDTO      `json:"selectedEvent,omitempty"`
	Events        []eventDTO     `json:"events"`
	Squads        []squadDTO     `json:"squads"`
	Conditions    *conditionsDTO `json:"conditions,omitempty"`
	Attempts      []attemptDTO   `json:"attempts"`
}

type eventDTO struct {
	ID       string    `json:"id"`
	Name     string    `json:"name"`
	Teams    []string  `json:"teams"`
	Format   string    `json:"format"`
	Venue    string    `json:"venue"`
	Series   string    `json:"series"`
	Status   string    `json:"status"`
	StartsAt time.Time `json:"startsAt"`
	Source   string    `json:"source"`
	League   string    `json:"league"`
}

type squadDTO struct {
	Team    string      `json:"team"`
	Players []playerDTO `json:"players"`
}

type playerDTO struct {
	Name         string `json:"name"`
	Role         string `json:"role"`
	Specialism   string `json:"specialism"`
	Form         int    `json:"form"`
	Credits      string `json:"credits"`
	Ownership    int    `json:"ownership"`
	RecentScores []int  `json:"recentScores"`
	InjuryStatus string `json:"injuryStatus"`
	VenueAvg     int    `json:"venueAvg"`
}

type conditionsDTO struct {
	Pitch       string `json:"pitch"`
	Weather     string `json:"weather"`
	Temperature int    `json:"temperature"`
	Humidity    int    `json:"humidity"`
	WindSpeed   int    `json:"windSpeed"`
	Dew         string `json:"dew"`
	Live        bool   `json:"live"`
}

type attemptDTO struct {
	Source      string `json:"source"`
	Endpoint    string `json:"endpoint"`
	Alternative bool   `json:"alternative"`
	Outcome     string `json:"outcome"`
	Records     int    `json:"records"`
	Error       string `json:"error,omitempty"`
}

func snapshotToDTO(snap snapshot.Snapshot) snapshotDTO {
	out := snapshotDTO{
		ID:          snap.ID,
		Status:      string(snap.Status),
		Synthetic:   snap.Synthetic(),
		DataSource:  snap.DataSource,
		Explanation: snap.Explanation,
		PublishedAt: snap.PublishedAt,
		Events:      make([]eventDTO, 0, len(snap.Events)),
		Squads:      make([]squadDTO, 0, len(snap.Squads)),
		Attempts:    make([]attemptDTO, 0, len(snap.Attempts)),
	}
	for _, ev := range snap.Events {
		out.Events = append(out.Events, eventToDTO(ev))
	}
	if snap.HasEvents() {
		selected := eventToDTO(snap.Selected)
		out.SelectedEvent = &selected
	}
	for _, team := range orderedTeams(snap) {
		out.Squads = append(out.Squads, squadToDTO(snap.Squads[team]))
	}
	if len(snap.Squads) > 0 {
		cond := conditionsToDTO(snap.Conditions)
		out.Conditions = &cond
	}
	for _, attempt := range snap.Attempts {
		out.Attempts = append(out.Attempts, attemptToDTO(attempt))
	}
	return out
}

// orderedTeams lists the selected event's teams first so responses are stable.
func orderedTeams(snap snapshot.Snapshot) []string {
	teams := make([]string, 0, len(snap.Squads))
	seen := make(map[string]struct{}, len(snap.Squads))
	for _, team := range snap.Selected.Teams {
		if _, ok := snap.Squads[team]; !ok {
			continue
		}
		if _, dup := seen[team]; dup {
			continue
		}
		seen[team] = struct{}{}
		teams = append(teams, team)
	}
	return teams
}

func eventToDTO(ev event.Event) eventDTO {
	return eventDTO{
		ID:       ev.ID,
		Name:     ev.Name,
		Teams:    []string{ev.Teams[0], ev.Teams[1]},
		Format:   string(ev.Format),
		Venue:    ev.Venue,
		Series:   ev.Series,
		Status:   ev.Status,
		StartsAt: ev.StartsAt.UTC(),
		Source:   ev.Source,
		League:   string(ev.League),
	}
}

func squadToDTO(sq squad.Squad) squadDTO {
	players := sq.Ordered()
	out := squadDTO{Team: sq.Team, Players: make([]playerDTO, 0, len(players))}
	for _, p := range players {
		out.Players = append(out.Players, playerDTO{
			Name:         p.Name,
			Role:         string(p.Role),
			Specialism:   p.Specialism,
			Form:         p.Form,
			Credits:      p.Credits(),
			Ownership:    p.Ownership,
			RecentScores: p.RecentScores[:],
			InjuryStatus: p.InjuryStatus,
			VenueAvg:     p.VenueAvg,
		})
	}
	return out
}

func conditionsToDTO(c conditions.Conditions) conditionsDTO {
	return conditionsDTO{
		Pitch:       string(c.Pitch),
		Weather:     c.Weather,
		Temperature: c.Temperature,
		Humidity:    c.Humidity,
		WindSpeed:   c.WindSpeed,
		Dew:         string(c.Dew),
		Live:        c.Live,
	}
}

func attemptToDTO(a source.Attempt) attemptDTO {
	return attemptDTO{
		Source:      a.Source,
		Endpoint:    a.Endpoint,
		Alternative: a.Alternative,
		Outcome:     string(a.Outcome),
		Records:     a.Records,
		Error:       a.Error,
	}
}
