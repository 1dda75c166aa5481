package usecase

import (
	"fmt"
	"strings"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/event"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/random"
)

const (
	DefaultSyntheticSource = "Simulated Data"

	seasonFirstMonth = time.March
	seasonLastMonth  = time.November
	eveningFirstHour = 14
	eveningLastHour  = 20

	// Draws above retentionCutoff keep a tournament (70%); draws above
	// inclusionCutoff then give it a match (30%).
	retentionCutoff = 0.3
	inclusionCutoff = 0.7
)

type tournament struct {
	name   string
	format string
	season string
	teams  []string
	venues []string
}

var tournamentCatalog = []tournament{
	{
		name:   "IPL",
		format: "T20",
		season: "Mar-May",
		teams:  pairedTeams(iplCities, iplFranchises),
		venues: []string{"Wankhede Stadium, Mumbai", "Eden Gardens, Kolkata", "M. Chinnaswamy Stadium, Bangalore"},
	},
	{
		name:   "International",
		format: "ODI",
		season: "Year-round",
		teams:  event.InternationalSides,
		venues: []string{"Melbourne Cricket Ground", "Lords, London", "Oval, London"},
	},
	{
		name:   "BBL",
		format: "T20",
		season: "Dec-Feb",
		teams:  pairedTeams([]string{"Sydney", "Melbourne", "Brisbane", "Perth", "Adelaide", "Hobart"}, []string{"Sixers", "Stars", "Heat", "Scorchers", "Strikers", "Hurricanes"}),
		venues: []string{"Sydney Cricket Ground", "Melbourne Cricket Ground", "Adelaide Oval"},
	},
	{
		name:   "PSL",
		format: "T20",
		season: "Feb-Mar",
		teams:  pairedTeams([]string{"Karachi", "Lahore", "Islamabad", "Peshawar", "Quetta", "Multan"}, []string{"Kings", "Qalandars", "United", "Zalmi", "Gladiators", "Sultans"}),
		venues: []string{"National Stadium, Karachi", "Gaddafi Stadium, Lahore"},
	},
	{
		name:   "County Championship",
		format: "First Class",
		season: "Apr-Sep",
		teams:  []string{"Yorkshire", "Lancashire", "Surrey", "Essex", "Kent", "Hampshire", "Somerset", "Warwickshire"},
		venues: []string{"Headingley, Leeds", "Old Trafford, Manchester"},
	},
	{
		name:   "Women's International",
		format: "T20I",
		season: "Year-round",
		teams:  []string{"India Women", "Australia Women", "England Women", "New Zealand Women", "South Africa Women", "West Indies Women"},
		venues: []string{"WACA Ground, Perth", "Basin Reserve, Wellington"},
	},
}

var (
	iplCities     = []string{"Mumbai", "Delhi", "Bangalore", "Chennai", "Kolkata", "Punjab", "Rajasthan", "Hyderabad"}
	iplFranchises = []string{"Indians", "Capitals", "Challengers", "Super Kings", "Knight Riders", "Kings", "Royals", "Titans"}
)

var syntheticStatuses = []string{
	"Live - 15.2 overs",
	"Live - 2nd innings",
	"Match starts in 2 hours",
	"Today 7:30 PM",
	"In Progress",
	"Toss at 7:00 PM",
}

// SyntheticGenerator fabricates plausible events once every source is
// exhausted, but only when cricket is plausibly being played.
type SyntheticGenerator struct {
	rng        random.Source
	sourceName string
	logger     *logging.Logger
}

func NewSyntheticGenerator(rng random.Source, sourceName string, logger *logging.Logger) *SyntheticGenerator {
	if logger == nil {
		logger = logging.Default()
	}
	sourceName = strings.TrimSpace(sourceName)
	if sourceName == "" {
		sourceName = DefaultSyntheticSource
	}
	return &SyntheticGenerator{rng: rng, sourceName: sourceName, logger: logger}
}

// Plausible is the gate: in season (UTC month Mar-Nov) and either a weekend
// or the evening window 14:00-20:59 UTC.
func Plausible(now time.Time) bool {
	now = now.UTC()
	month := now.Month()
	inSeason := month >= seasonFirstMonth && month <= seasonLastMonth
	weekend := now.Weekday() == time.Saturday || now.Weekday() == time.Sunday
	evening := now.Hour() >= eveningFirstHour && now.Hour() <= eveningLastHour
	return inSeason && (weekend || evening)
}

// Generate returns synthetic events tagged with the configured source name.
// It returns a *DeclinedError when the gate fails or nothing was drawn.
func (g *SyntheticGenerator) Generate(now time.Time) ([]event.Event, error) {
	if !Plausible(now) {
		g.logger.Info("synthesis declined, no matches expected at this time or season", "at", now.UTC().Format(time.RFC3339))
		return nil, &DeclinedError{Explanation: declinedExplanation(now)}
	}

	active := make([]tournament, 0, len(tournamentCatalog))
	for _, t := range tournamentCatalog {
		if g.rng.Float64() > retentionCutoff {
			active = append(active, t)
		}
	}

	events := make([]event.Event, 0, len(active))
	for _, t := range active {
		if g.rng.Float64() <= inclusionCutoff {
			continue
		}
		events = append(events, g.synthesize(t, now))
	}

	if len(events) == 0 {
		return nil, &DeclinedError{Explanation: emptyExplanation}
	}
	return events, nil
}

func (g *SyntheticGenerator) synthesize(t tournament, now time.Time) event.Event {
	first, second := random.PickTwo(g.rng, t.teams)
	teams := [2]string{first, second}
	series := fmt.Sprintf("%s %d", t.name, now.UTC().Year())

	return event.Event{
		ID:       fmt.Sprintf("synthetic_%s_%d", slug(t.name), now.UnixMilli()),
		Name:     first + " vs " + second,
		Teams:    teams,
		Format:   event.ParseFormat(t.format),
		Venue:    random.Pick(g.rng, t.venues),
		Series:   series,
		Status:   random.Pick(g.rng, syntheticStatuses),
		StartsAt: now.UTC(),
		Source:   g.sourceName,
		League:   event.ClassifyLeague(series, teams),
	}
}

// seasonGuide lists every catalog tournament with its usual window.
func seasonGuide() []string {
	out := make([]string, 0, len(tournamentCatalog))
	for _, t := range tournamentCatalog {
		out = append(out, fmt.Sprintf("**%s**: %s (%s)", t.name, t.season, t.format))
	}
	return out
}

// pairedTeams joins each city with the suffix at the same position, cycling suffixes.
func pairedTeams(cities, suffixes []string) []string {
	out := make([]string, 0, len(cities))
	for idx, city := range cities {
		out = append(out, city+" "+suffixes[idx%len(suffixes)])
	}
	return out
}

func slug(name string) string {
	var b strings.Builder
	lastDash := false
	for _, r := range strings.ToLower(name) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		case !lastDash && b.Len() > 0:
			b.WriteByte('-')
			lastDash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}

const emptyExplanation = "Every data source was tried and no active tournament has a match on right now."

func declinedExplanation(now time.Time) string {
	now = now.UTC()
	return fmt.Sprintf(
		"No cricket matches are expected on %s %s at %02d:%02d UTC. Cricket isn't played 24/7; most matches happen in season and in the evening or at weekends.",
		now.Weekday(), now.Format("2 January"), now.Hour(), now.Minute(),
	)
}
