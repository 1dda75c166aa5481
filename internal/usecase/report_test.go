package usecase

import (
	"strings"
	"testing"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/conditions"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/snapshot"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/squad"
	"github.com/stretchr/testify/require"
)

func TestRenderReady(t *testing.T) {
	t.Parallel()

	live := RenderReady(readySnapshot(snapshot.StatusConnected))
	require.True(t, strings.HasPrefix(live, "**Fantasy Cricket Assistant Ready!**"))
	require.Contains(t, live, "**Data Source:** CricAPI_Free")
	require.Contains(t, live, "**Live Matches:** 1 found")
	require.NotContains(t, live, "simulated")

	synthetic := readySnapshot(snapshot.StatusSynthetic)
	synthetic.Selected.Source = DefaultSyntheticSource
	require.Contains(t, RenderReady(synthetic), "this match is simulated (Simulated Data)")
}

func TestRenderConditions(t *testing.T) {
	t.Parallel()

	snap := readySnapshot(snapshot.StatusConnected)
	snap.Conditions = conditions.Conditions{
		Pitch:       conditions.PitchBatting,
		Weather:     "Clear",
		Temperature: 33,
		Humidity:    72,
		WindSpeed:   18,
		Dew:         conditions.DewHigh,
		Live:        true,
	}

	report := renderConditions(snap)
	require.Contains(t, report, "**Weather Source:** Live Weather APIs")
	require.Contains(t, report, "• **Humidity:** 72%\n")
	require.Contains(t, report, "• High dew = chasing team advantage")
	require.Contains(t, report, "• Strong winds = swing bowling advantage")
	require.Contains(t, report, "• Hot conditions = player fatigue factor")
	require.Contains(t, report, "Power-play specialists premium.")
	require.True(t, strings.HasSuffix(report, "**Last Updated:** 15:04:05 UTC"), report)
}

func TestRenderCaptain_SinglePlayer(t *testing.T) {
	t.Parallel()

	snap := readySnapshot(snapshot.StatusConnected)
	players := []squad.Player{{Name: "Solo", Team: "India", Form: 88, Price: 90, Ownership: 55, Specialism: "Opener"}}

	report := renderCaptain(snap, players)
	require.Contains(t, report, "**Solo (India)**")
	require.Contains(t, report, "• **Ownership:** 55% (Template pick)")
	require.Contains(t, report, "• **Price:** 9.0 credits")
	require.Contains(t, report, "not enough players for a differential pick")
	require.Contains(t, report, "**Recommendation:** Solo offers best risk-reward balance")
}

func TestRenderCaptain_TemplateSafePick(t *testing.T) {
	t.Parallel()

	snap := readySnapshot(snapshot.StatusConnected)
	players := []squad.Player{
		{Name: "Safe", Team: "India", Form: 95, Ownership: 70},
		{Name: "Next", Team: "India", Form: 90, Ownership: 40},
		{Name: "Diff", Team: "Australia", Form: 86, Ownership: 12},
	}

	report := renderCaptain(snap, players)
	require.Contains(t, report, "**Diff (Australia)**")
	require.Contains(t, report, "• **Risk Level:** Low Risk")
	require.Contains(t, report, "**Recommendation:** Safe for safe rank, Diff for rank climbing")
}

func TestRenderDifferentialsAndComparison(t *testing.T) {
	t.Parallel()

	players := []squad.Player{
		{Name: "Star", Team: "India", Form: 92, Price: 95, Ownership: 65},
		{Name: "Gem", Team: "Australia", Form: 80, Price: 60, Ownership: 8},
		{Name: "Mid", Team: "India", Form: 72, Price: 70, Ownership: 30},
	}

	diff := renderDifferentials(players)
	require.Contains(t, diff, "**1. Gem (Australia)**")
	require.Contains(t, diff, "• **Risk Level**: Medium Risk")
	require.Contains(t, diff, "• High ownership (>50%): 1 players")
	require.Contains(t, diff, "• Medium ownership (25-50%): 1 players")
	require.Contains(t, diff, "• Low ownership (<25%): 1 players")

	cmp := renderComparison(players)
	require.Contains(t, cmp, "**Star vs Gem**")
	require.Contains(t, cmp, "**Star** edges ahead with superior form (92 vs 80)")
	require.Contains(t, cmp, "**Gem** offers better value")
	require.Contains(t, cmp, "**Gem** is the differential pick (8% vs 65%)")

	require.Equal(t, noCompareMessage, renderComparison(players[:1]))
}

func TestRenderStrategy_PercentLiterals(t *testing.T) {
	t.Parallel()

	report := renderStrategy(readySnapshot(snapshot.StatusConnected), nil)
	require.Contains(t, report, "ownership < 30%")
	require.Contains(t, report, "under 15% ownership")
	require.Contains(t, report, "**Safe Core (60% budget):** Proven performers")
	require.Contains(t, report, "**India:** 6-7 players")
	require.NotContains(t, report, "Must-have Player")
	require.NotContains(t, report, "%!")
}

func TestRenderGeneral_Confidence(t *testing.T) {
	t.Parallel()

	require.Contains(t, renderGeneral(readySnapshot(snapshot.StatusConnected)), "**Data Confidence:** 95% (CricAPI_Free)")
	require.Contains(t, renderGeneral(readySnapshot(snapshot.StatusSynthetic)), "**Data Confidence:** 85%")
}
