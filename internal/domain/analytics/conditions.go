package analytics

import (
	"github.com/riskibarqy/fantasy-cricket/internal/domain/conditions"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/event"
)

var pitchAssessments = map[conditions.PitchType]string{
	conditions.PitchBatting:  "High-scoring encounter expected. Batsmen will dominate. Pick aggressive stroke-makers.",
	conditions.PitchBowling:  "Low-scoring match likely. Quality bowlers essential. Patient batsmen preferred.",
	conditions.PitchSpin:     "Spinners will be key. Pick experienced players against spin. Turn expected.",
	conditions.PitchBalanced: "Even contest between bat and ball. Form and skill will decide outcomes.",
}

func PitchAssessment(pitch conditions.PitchType) string {
	if text, ok := pitchAssessments[pitch]; ok {
		return text
	}
	return "Standard cricket conditions expected."
}

// FantasyImpact lists condition effects worth acting on.
func FantasyImpact(c conditions.Conditions) []string {
	out := make([]string, 0, 4)
	if c.Dew == conditions.DewHigh {
		out = append(out, "High dew = chasing team advantage", "Spinners may struggle in 2nd innings")
	} else {
		out = append(out, "Low dew = minimal impact on match", "Both innings similar difficulty")
	}
	if c.WindSpeed > 15 {
		out = append(out, "Strong winds = swing bowling advantage")
	}
	if c.Temperature > 30 {
		out = append(out, "Hot conditions = player fatigue factor")
	}
	return out
}

func ConditionsStrategy(c conditions.Conditions, format event.Format) string {
	switch c.Pitch {
	case conditions.PitchBatting:
		if format == event.FormatT20 {
			return "Load up on explosive batsmen and death bowlers. Power-play specialists premium."
		}
		return "Pick consistent run-scorers and wicket-taking bowlers. Big totals expected."
	case conditions.PitchBowling:
		return "Invest in quality bowlers and anchor batsmen. All-rounders become valuable."
	case conditions.PitchSpin:
		return "Prioritize spinners and players good against spin. Experience matters."
	default:
		return "Balanced team composition. Pick in-form players regardless of specialization."
	}
}

// CaptainStrategy is the one-line captaincy hint for a pitch.
func CaptainStrategy(pitch conditions.PitchType) string {
	switch pitch {
	case conditions.PitchBatting:
		return "Batting conditions favor aggressive captains"
	case conditions.PitchBowling:
		return "Consider bowler captains in tough conditions"
	default:
		return "Balanced conditions - form is key"
	}
}

var conditionsAdjustments = map[conditions.PitchType][]string{
	conditions.PitchBatting: {
		"Load up on top-order batsmen (70% of batting budget)",
		"Pick death bowlers and wicket-takers only",
		"Consider extra batsman over 4th bowler",
		"Avoid defensive players",
	},
	conditions.PitchBowling: {
		"Invest heavily in quality bowlers (40% total budget)",
		"Pick patient, technical batsmen",
		"All-rounders become premium picks",
		"Avoid aggressive stroke-players",
	},
	conditions.PitchSpin: {
		"Prioritize spinners and players good vs spin",
		"Pick experienced players over young talent",
		"Consider extra spinner in team composition",
		"Avoid pace-heavy strategies",
	},
}

var neutralAdjustments = []string{
	"Balanced approach across all positions",
	"Form trumps conditions in neutral pitches",
	"Standard team composition recommended",
	"Monitor toss for final adjustments",
}

func ConditionsAdjustments(pitch conditions.PitchType) []string {
	if lines, ok := conditionsAdjustments[pitch]; ok {
		return lines
	}
	return neutralAdjustments
}

// TossFactor describes how much the toss matters given dew.
func TossFactor(dew conditions.DewFactor) string {
	if dew == conditions.DewHigh {
		return "Favor chasing team players"
	}
	return "Minimal impact expected"
}
