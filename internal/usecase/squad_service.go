package usecase

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/panjf2000/ants/v2"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/conditions"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/event"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/squad"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/random"
	"github.com/sourcegraph/conc"
)

const (
	defaultLookupWorkers  = 8
	defaultNameTimeout    = 3 * time.Second
	defaultWeatherTimeout = 4 * time.Second
	recentInnings         = 5
)

var fallbackFirstNames = []string{
	"Arjun", "Rahul", "Virat", "Rohit", "Shubman", "Rishabh", "Hardik", "Jasprit", "Mohammed", "Yuzvendra",
	"Steve", "David", "Glenn", "Pat", "Mitchell", "Josh", "Marcus", "Travis", "Alex", "Cameron",
	"Joe", "Ben", "Harry", "James", "Stuart", "Mark", "Jonny", "Jos", "Moeen", "Adil",
}

var fallbackLastNames = []string{
	"Sharma", "Kumar", "Singh", "Patel", "Yadav", "Chahal", "Bumrah", "Pandya", "Kohli", "Gill",
	"Smith", "Warner", "Maxwell", "Cummins", "Starc", "Hazlewood", "Stoinis", "Head", "Carey", "Green",
	"Root", "Stokes", "Brook", "Anderson", "Broad", "Wood", "Bairstow", "Buttler", "Ali", "Rashid",
}

// NameProvider returns a realistic full name for a player of team.
type NameProvider interface {
	NameFor(ctx context.Context, team string) (string, error)
}

// WeatherProvider returns the current reading for a city.
type WeatherProvider interface {
	Current(ctx context.Context, city string) (conditions.Reading, error)
}

type SquadBuilderConfig struct {
	Workers        int
	NameTimeout    time.Duration
	WeatherTimeout time.Duration
}

// Bundle is everything built for one selected event.
type Bundle struct {
	Squads     map[string]squad.Squad
	Conditions conditions.Conditions
}

type SquadBuilder struct {
	names   NameProvider
	weather WeatherProvider
	rng     random.Source
	metrics MetricsRecorder
	logger  *logging.Logger
	cfg     SquadBuilderConfig
}

// NewSquadBuilder accepts nil providers; the matching lookups then always use
// the algorithmic fallback.
func NewSquadBuilder(
	names NameProvider,
	weather WeatherProvider,
	rng random.Source,
	metrics MetricsRecorder,
	logger *logging.Logger,
	cfg SquadBuilderConfig,
) *SquadBuilder {
	if logger == nil {
		logger = logging.Default()
	}
	if cfg.Workers <= 0 {
		cfg.Workers = defaultLookupWorkers
	}
	if cfg.NameTimeout <= 0 {
		cfg.NameTimeout = defaultNameTimeout
	}
	if cfg.WeatherTimeout <= 0 {
		cfg.WeatherTimeout = defaultWeatherTimeout
	}

	return &SquadBuilder{
		names:   names,
		weather: weather,
		rng:     rng,
		metrics: metricsOrNop(metrics),
		logger:  logger,
		cfg:     cfg,
	}
}

// playerSlot holds every random draw for one player, taken before any lookup runs.
type playerSlot struct {
	team         string
	role         squad.Role
	index        int
	form         int
	price        int
	ownership    int
	recent       [recentInnings]int
	venueAvg     int
	fallbackName string
	name         string
}

type conditionsPlan struct {
	venue    string
	pitch    conditions.PitchType
	fallback conditions.Conditions
}

// Build generates both squads and venue conditions, using the name and weather
// providers where they answer.
func (b *SquadBuilder) Build(ctx context.Context, ev event.Event) (Bundle, error) {
	ctx, span := startUsecaseSpan(ctx, "usecase.SquadBuilder.Build")
	defer span.End()

	slots, plan := b.draw(ev)

	var (
		wg      conc.WaitGroup
		poolErr error
		cond    conditions.Conditions
	)
	wg.Go(func() {
		poolErr = b.resolveNames(ctx, slots)
	})
	wg.Go(func() {
		cond = b.resolveConditions(ctx, plan)
	})
	wg.Wait()

	if poolErr != nil {
		return Bundle{}, poolErr
	}
	return Bundle{Squads: assemble(ev.Teams, slots), Conditions: cond}, nil
}

// BuildOffline never calls a provider. Synthetic snapshots use it.
func (b *SquadBuilder) BuildOffline(ev event.Event) Bundle {
	slots, plan := b.draw(ev)
	for i := range slots {
		slots[i].name = slots[i].fallbackName
	}
	return Bundle{Squads: assemble(ev.Teams, slots), Conditions: plan.fallback}
}

// Conditions resolves venue conditions alone. Weather failures fall back silently.
func (b *SquadBuilder) Conditions(ctx context.Context, venue string) conditions.Conditions {
	return b.resolveConditions(ctx, b.drawConditions(venue))
}

func (b *SquadBuilder) draw(ev event.Event) ([]playerSlot, conditionsPlan) {
	structure := squad.StructureFor(ev.Format)
	slots := make([]playerSlot, 0, structure.Total()*len(ev.Teams))

	for _, team := range ev.Teams {
		for _, role := range squad.Roles {
			for i := 0; i < structure.Count(role); i++ {
				slots = append(slots, b.drawPlayer(team, role, i))
			}
		}
	}
	return slots, b.drawConditions(ev.Venue)
}

func (b *SquadBuilder) drawPlayer(team string, role squad.Role, index int) playerSlot {
	slot := playerSlot{team: team, role: role, index: index}
	slot.form, slot.price, slot.ownership = squad.ApplyStats(
		role,
		random.Between(b.rng, squad.BaseFormMin, squad.BaseFormMax),
		random.Between(b.rng, squad.BasePriceMin, squad.BasePriceMax),
		random.Between(b.rng, squad.BaseOwnershipMin, squad.BaseOwnershipMax),
	)
	for i := range slot.recent {
		if role == squad.RoleBowler {
			slot.recent[i] = random.Between(b.rng, 0, squad.WicketsMax)
		} else {
			slot.recent[i] = random.Between(b.rng, squad.RunsMin, squad.RunsMax)
		}
	}
	slot.venueAvg = random.Between(b.rng, squad.VenueAvgMin, squad.VenueAvgMax)
	slot.fallbackName = random.Pick(b.rng, fallbackFirstNames) + " " + random.Pick(b.rng, fallbackLastNames)
	return slot
}

func (b *SquadBuilder) drawConditions(venue string) conditionsPlan {
	pitch, known := conditions.PitchForVenue(venue)
	randomPitch := random.Pick(b.rng, conditions.PitchTypes)
	if !known {
		pitch = randomPitch
	}

	fallback := conditions.Conditions{
		Pitch:       pitch,
		Weather:     random.Pick(b.rng, conditions.FallbackWeather),
		Temperature: random.Between(b.rng, conditions.FallbackTempMin, conditions.FallbackTempMax),
		Humidity:    random.Between(b.rng, conditions.FallbackHumidityMin, conditions.FallbackHumidityMax),
		WindSpeed:   random.Between(b.rng, conditions.FallbackWindMin, conditions.FallbackWindMax),
		Dew:         conditions.DewLow,
	}
	if random.Chance(b.rng, 0.5) {
		fallback.Dew = conditions.DewHigh
	}

	return conditionsPlan{venue: venue, pitch: pitch, fallback: fallback}
}

func (b *SquadBuilder) resolveNames(ctx context.Context, slots []playerSlot) error {
	if b.names == nil {
		for i := range slots {
			slots[i].name = slots[i].fallbackName
		}
		return nil
	}

	pool, err := ants.NewPool(b.cfg.Workers)
	if err != nil {
		return fmt.Errorf("create worker pool: %w", err)
	}
	defer pool.Release()

	var wg sync.WaitGroup
	for i := range slots {
		slot := &slots[i]
		wg.Add(1)
		if err := pool.Submit(func() {
			defer wg.Done()
			slot.name = b.lookupName(ctx, slot)
		}); err != nil {
			wg.Done()
			slot.name = slot.fallbackName
			b.metrics.ObserveLookupFallback(lookupKindName)
		}
	}
	wg.Wait()
	return nil
}

func (b *SquadBuilder) lookupName(ctx context.Context, slot *playerSlot) string {
	callCtx, cancel := context.WithTimeout(ctx, b.cfg.NameTimeout)
	defer cancel()

	name, err := b.names.NameFor(callCtx, slot.team)
	if err != nil || name == "" {
		b.metrics.ObserveLookupFallback(lookupKindName)
		b.logger.DebugContext(ctx, "name lookup failed, using generated name", "team", slot.team, "error", err)
		return slot.fallbackName
	}
	return name
}

func (b *SquadBuilder) resolveConditions(ctx context.Context, plan conditionsPlan) conditions.Conditions {
	if b.weather == nil {
		return plan.fallback
	}

	callCtx, cancel := context.WithTimeout(ctx, b.cfg.WeatherTimeout)
	defer cancel()

	reading, err := b.weather.Current(callCtx, conditions.CityFromVenue(plan.venue))
	if err != nil {
		b.metrics.ObserveLookupFallback(lookupKindWeather)
		b.logger.DebugContext(ctx, "weather lookup failed, using generated conditions", "venue", plan.venue, "error", err)
		return plan.fallback
	}
	return conditions.FromReading(reading, plan.pitch)
}

func assemble(teams [2]string, slots []playerSlot) map[string]squad.Squad {
	squads := make(map[string]squad.Squad, len(teams))
	for _, slot := range slots {
		sq, ok := squads[slot.team]
		if !ok {
			sq = squad.Squad{Team: slot.team, Players: make(map[squad.Role][]squad.Player, len(squad.Roles))}
		}
		sq.Players[slot.role] = append(sq.Players[slot.role], squad.Player{
			Name:         slot.name,
			Team:         slot.team,
			Role:         slot.role,
			Specialism:   squad.Specialism(slot.role, slot.index),
			Form:         slot.form,
			Price:        slot.price,
			Ownership:    slot.ownership,
			RecentScores: slot.recent,
			InjuryStatus: squad.InjuryStatusFit,
			VenueAvg:     slot.venueAvg,
		})
		squads[slot.team] = sq
	}
	return squads
}
