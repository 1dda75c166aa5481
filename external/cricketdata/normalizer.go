package cricketdata

import (
	"fmt"
	"sort"
	"strings"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/event"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/source"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/random"
)

const (
	defaultVenue  = "TBD"
	defaultSeries = "Tournament"
	defaultTeam   = "Team"
)

// ErrUnrecognizedShape means no record array could be found in a decoded body.
var ErrUnrecognizedShape = crerr.Mark(crerr.New("no record array in response"), source.ErrUnrecognized)

// recordKeys are tried, in order, before scanning every top-level property.
var recordKeys = []string{"matches", "data", "events", "fixtures", "results"}

var (
	idRules      = rules(asText, "id", "match_id", "unique_id", "_id", "matchId")
	nameRules    = rules(asText, "name", "title", "match_title", "description", "shortName")
	liveRules    = rules(asTruthy, "score", "live", "isLive")
	startedRules = rules(asTruthy, "started", "hasStarted")
	dateRules    = rules(asTime, "date", "dateTimeGMT", "start_date", "match_date", "time", "startDate")
	formatRules  = rules(asText, "matchType", "type", "format", "match_type", "game_type")
	listRules    = rules(asList, "teams", "participants", "competitions.0.competitors")

	venueRules = rules(asLabel,
		"venue", "ground", "stadium", "location", "place",
		"competitions.0.venue.fullName", "competitions.0.venue.name",
	)

	seriesRules = rules(asLabel,
		"series", "tournament", "competition", "league", "event",
		"season.name",
	)

	statusRules = rules(asText,
		"status", "matchStatus", "state", "match_status", "current_status",
		"status.type.description", "competitions.0.status.type.description",
	)
)

var pairedTeamKeys = [][2]string{
	{"team1", "team2"},
	{"home_team", "away_team"},
	{"localteam", "visitorteam"},
	{"teamA", "teamB"},
}

var teamObjectRules = rules(asText,
	"name", "fullName", "shortName", "team_name",
	"team.displayName", "team.name",
)

// Normalizer maps arbitrary decoded bodies into canonical events.
type Normalizer struct {
	rng random.Source
	now func() time.Time
}

func NewNormalizer(rng random.Source) *Normalizer {
	return &Normalizer{rng: rng, now: time.Now}
}

// Normalize extracts the record array from body and maps every object record.
// Non-object records are skipped.
func (n *Normalizer) Normalize(body any, sourceName string) ([]event.Event, error) {
	records, err := ExtractRecords(body)
	if err != nil {
		return nil, err
	}

	out := make([]event.Event, 0, len(records))
	for idx, raw := range records {
		record, ok := raw.(map[string]any)
		if !ok {
			continue
		}
		out = append(out, n.normalizeRecord(record, sourceName, idx))
	}
	return out, nil
}

// ExtractRecords finds the array of match records in a decoded body.
func ExtractRecords(body any) ([]any, error) {
	switch typed := body.(type) {
	case []any:
		return typed, nil
	case map[string]any:
		for _, key := range recordKeys {
			switch v := typed[key].(type) {
			case []any:
				return v, nil
			case map[string]any:
				if key == "data" {
					return []any{v}, nil
				}
			}
		}

		keys := make([]string, 0, len(typed))
		for key := range typed {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		for _, key := range keys {
			if list, ok := typed[key].([]any); ok && len(list) > 0 {
				return list, nil
			}
		}
	}
	return nil, ErrUnrecognizedShape
}

func (n *Normalizer) normalizeRecord(record map[string]any, sourceName string, idx int) event.Event {
	rawName, hasName := firstMatch(record, nameRules)
	teams := n.resolveTeams(record, rawName)

	ev := event.Event{
		ID:     textOr(record, idRules, fmt.Sprintf("%s_%d", sourceName, idx)),
		Name:   rawName,
		Teams:  teams,
		Venue:  textOr(record, venueRules, defaultVenue),
		Series: textOr(record, seriesRules, defaultSeries),
		Status: resolveStatus(record),
		Source: sourceName,
	}
	if !hasName {
		ev.Name = teams[0] + " vs " + teams[1]
	}

	if startsAt, ok := firstMatch(record, dateRules); ok {
		ev.StartsAt = startsAt
	} else {
		ev.StartsAt = n.now().UTC()
	}

	explicitFormat, _ := firstMatch(record, formatRules)
	ev.Format = event.InferFormat(explicitFormat, ev.Series)
	ev.League = event.ClassifyLeague(ev.Series, ev.Teams)

	return ev
}

func (n *Normalizer) resolveTeams(record map[string]any, name string) [2]string {
	for _, pair := range pairedTeamKeys {
		first, okFirst := teamName(record[pair[0]])
		second, okSecond := teamName(record[pair[1]])
		if okFirst && okSecond {
			return [2]string{first, second}
		}
	}

	if list, ok := firstMatch(record, listRules); ok {
		return [2]string{teamNameOrDefault(list[0]), teamNameOrDefault(list[1])}
	}

	if parts := strings.Split(name, " vs "); len(parts) >= 2 {
		first, second := strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1])
		if first != "" && second != "" {
			return [2]string{first, second}
		}
	}

	first, second := random.PickTwo(n.rng, event.InternationalSides)
	return [2]string{first, second}
}

func resolveStatus(record map[string]any) string {
	if status, ok := firstMatch(record, statusRules); ok {
		return status
	}
	if _, ok := firstMatch(record, liveRules); ok {
		return "Live"
	}
	if _, ok := firstMatch(record, startedRules); ok {
		return "In Progress"
	}
	return "Upcoming"
}

// teamName reads a team from a string or an object. Objects without a name
// still count as a team and resolve to the "Team" placeholder.
func teamName(v any) (string, bool) {
	if s, ok := asText(v); ok {
		return s, true
	}
	obj, ok := v.(map[string]any)
	if !ok {
		return "", false
	}
	if s, ok := firstMatch(obj, teamObjectRules); ok {
		return s, true
	}
	return defaultTeam, true
}

func teamNameOrDefault(v any) string {
	if s, ok := teamName(v); ok {
		return s
	}
	return defaultTeam
}

func textOr(record map[string]any, candidates []rule[string], fallback string) string {
	if v, ok := firstMatch(record, candidates); ok {
		return v
	}
	return fallback
}
