package analytics

import "github.com/riskibarqy/fantasy-cricket/internal/domain/event"

// Tier is a labelled credit range.
type Tier struct {
	Label string
	Range string
}

// BudgetTiers splits a 100-credit budget.
var BudgetTiers = []Tier{
	{Label: "Premium Players (2-3)", Range: "55-65 credits"},
	{Label: "Mid-range Value (4-5)", Range: "25-35 credits"},
	{Label: "Budget Enablers (3-4)", Range: "10-15 credits"},
}

// RiskSplit allocates budget by risk appetite.
var RiskSplit = []Tier{
	{Label: "Safe Core (60% budget)", Range: "Proven performers"},
	{Label: "Value Plays (25% budget)", Range: "Form players"},
	{Label: "Differentials (15% budget)", Range: "Low ownership gems"},
}

var formatStrategies = map[event.Format][]string{
	event.FormatT20: {
		"**6 Batsmen** (including WK): Power-play and death specialists",
		"**1-2 All-rounders**: Dual scoring opportunities",
		"**4 Bowlers**: Wicket-takers over economy",
		"**Focus**: Strike rates and explosive potential",
	},
	event.FormatODI: {
		"**5-6 Batsmen**: Consistent run-scorers and anchors",
		"**2 All-rounders**: Middle-overs specialists",
		"**4-5 Bowlers**: Wicket-taking ability crucial",
		"**Focus**: Consistency and building partnerships",
	},
	event.FormatTest: {
		"**5-6 Batsmen**: Technique and patience",
		"**1-2 All-rounders**: Session control",
		"**5 Bowlers**: Long-format specialists",
		"**Focus**: Discipline and sustained performance",
	},
}

// FormatStrategy returns the composition template for format, T20 when unknown.
func FormatStrategy(format event.Format) []string {
	if lines, ok := formatStrategies[format]; ok {
		return lines
	}
	return formatStrategies[event.FormatT20]
}

// TeamDistribution is how many picks to take from each side.
func TeamDistribution(format event.Format) (first, second string) {
	if format == event.FormatT20 {
		return "6-7", "4-5"
	}
	return "6", "5"
}
