package usecase

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/event"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/random"
	"github.com/stretchr/testify/require"
)

func TestPlausible(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name string
		at   time.Time
		want bool
	}{
		{name: "june saturday morning", at: time.Date(2025, 6, 14, 9, 0, 0, 0, time.UTC), want: true},
		{name: "june wednesday evening start", at: time.Date(2025, 6, 11, 14, 0, 0, 0, time.UTC), want: true},
		{name: "june wednesday evening end", at: time.Date(2025, 6, 11, 20, 59, 0, 0, time.UTC), want: true},
		{name: "june wednesday late", at: time.Date(2025, 6, 11, 21, 0, 0, 0, time.UTC), want: false},
		{name: "june wednesday morning", at: time.Date(2025, 6, 11, 10, 0, 0, 0, time.UTC), want: false},
		{name: "january saturday", at: time.Date(2025, 1, 11, 15, 0, 0, 0, time.UTC), want: false},
		{name: "march first evening", at: time.Date(2025, 3, 3, 15, 0, 0, 0, time.UTC), want: true},
		{name: "december sunday", at: time.Date(2025, 12, 7, 15, 0, 0, 0, time.UTC), want: false},
		{name: "local evening is utc afternoon", at: time.Date(2025, 6, 11, 19, 0, 0, 0, time.FixedZone("IST", 5*3600+1800)), want: false},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			if got := Plausible(tc.at); got != tc.want {
				t.Fatalf("unexpected gate got=%v want=%v", got, tc.want)
			}
		})
	}
}

func TestSyntheticGenerator_DeclinesOutsideGate(t *testing.T) {
	t.Parallel()

	g := NewSyntheticGenerator(fixedSource{f: 0.9}, "", logging.NewNop())
	at := time.Date(2025, 1, 8, 10, 0, 0, 0, time.UTC)

	events, err := g.Generate(at)
	require.Empty(t, events)

	var declined *DeclinedError
	require.ErrorAs(t, err, &declined)
	require.True(t, errors.Is(err, ErrSynthesisDeclined))
	require.Contains(t, declined.Explanation, "Wednesday 8 January at 10:00 UTC")
}

func TestSyntheticGenerator_NeverProducesOutsideGate(t *testing.T) {
	t.Parallel()

	instants := []time.Time{
		time.Date(2025, 1, 11, 15, 0, 0, 0, time.UTC),  // off-season saturday
		time.Date(2025, 12, 7, 18, 0, 0, 0, time.UTC),  // off-season sunday evening
		time.Date(2025, 2, 26, 16, 0, 0, 0, time.UTC),  // off-season weekday evening
		time.Date(2025, 6, 11, 9, 0, 0, 0, time.UTC),   // in-season weekday morning
		time.Date(2025, 9, 17, 21, 30, 0, 0, time.UTC), // in-season weekday night
	}

	for _, at := range instants {
		for seed := uint64(1); seed <= 25; seed++ {
			g := NewSyntheticGenerator(random.New(seed), "", logging.NewNop())
			events, err := g.Generate(at)
			require.Empty(t, events, "at=%s seed=%d", at, seed)
			require.ErrorIs(t, err, ErrSynthesisDeclined, "at=%s seed=%d", at, seed)
		}
	}
}

func TestSyntheticGenerator_AllTournaments(t *testing.T) {
	t.Parallel()

	at := time.Date(2025, 6, 14, 15, 0, 0, 0, time.UTC)
	g := NewSyntheticGenerator(fixedSource{f: 0.9}, "Offline Feed", logging.NewNop())

	events, err := g.Generate(at)
	require.NoError(t, err)
	require.Len(t, events, len(tournamentCatalog))

	for _, ev := range events {
		require.Equal(t, "Offline Feed", ev.Source)
		require.NotEqual(t, ev.Teams[0], ev.Teams[1])
		require.Equal(t, ev.Teams[0]+" vs "+ev.Teams[1], ev.Name)
		require.True(t, strings.HasPrefix(ev.ID, "synthetic_"), ev.ID)
		require.True(t, strings.HasSuffix(ev.Series, " 2025"), ev.Series)
		require.True(t, ev.StartsAt.Equal(at))
	}

	ipl := events[0]
	require.Equal(t, "synthetic_ipl_1749913200000", ipl.ID)
	require.Equal(t, [2]string{"Mumbai Indians", "Delhi Capitals"}, ipl.Teams)
	require.Equal(t, event.FormatT20, ipl.Format)
	require.Equal(t, event.LeagueIPL, ipl.League)
	require.Equal(t, "Wankhede Stadium, Mumbai", ipl.Venue)

	require.Equal(t, event.FormatODI, events[1].Format)
	require.Equal(t, event.LeagueInternational, events[1].League)
	require.Equal(t, event.LeagueCounty, events[4].League)
	require.Equal(t, event.FormatOther, events[4].Format)
	require.Equal(t, event.LeagueWomens, events[5].League)
	require.Equal(t, "synthetic_women-s-international_1749913200000", events[5].ID)
}

func TestSyntheticGenerator_NothingDrawnDeclines(t *testing.T) {
	t.Parallel()

	g := NewSyntheticGenerator(fixedSource{f: 0.1}, "", logging.NewNop())
	events, err := g.Generate(time.Date(2025, 6, 14, 15, 0, 0, 0, time.UTC))
	require.Empty(t, events)

	var declined *DeclinedError
	require.ErrorAs(t, err, &declined)
	require.Equal(t, emptyExplanation, declined.Explanation)
}

func TestSyntheticGenerator_SeededDrawsStayWithinCatalog(t *testing.T) {
	t.Parallel()

	g := NewSyntheticGenerator(random.New(42), "", logging.NewNop())
	at := time.Date(2025, 7, 5, 18, 0, 0, 0, time.UTC)

	for i := 0; i < 50; i++ {
		events, err := g.Generate(at)
		if err != nil {
			require.ErrorIs(t, err, ErrSynthesisDeclined)
			continue
		}
		for _, ev := range events {
			require.Equal(t, DefaultSyntheticSource, ev.Source)
			require.NotEqual(t, ev.Teams[0], ev.Teams[1])
			require.Contains(t, syntheticStatuses, ev.Status)
		}
	}
}

func TestSeasonGuide(t *testing.T) {
	t.Parallel()

	guide := seasonGuide()
	require.Len(t, guide, len(tournamentCatalog))
	require.Equal(t, "**IPL**: Mar-May (T20)", guide[0])
}

func TestSlug(t *testing.T) {
	t.Parallel()

	require.Equal(t, "county-championship", slug("County Championship"))
	require.Equal(t, "women-s-international", slug("Women's International"))
	require.Equal(t, "ipl", slug("IPL!"))
}
