// Package analytics holds pure ranking and recommendation functions over a
// squad snapshot. Thresholds are fixed constants.
package analytics

import (
	"math"
	"sort"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/squad"
)

const (
	captainPoolSize             = 4
	captainDifferentialMaxOwn   = 30
	captainLowRiskFormAbove     = 85
	topFormSize                 = 5
	valuePickMaxOwnership       = 25
	valuePickMinFormAbove       = 75
	valuePickLimit              = 3
	differentialMaxOwnership    = 25
	differentialMinFormAbove    = 70
	differentialLimit           = 3
	differentialLowRiskAbove    = 85
	differentialMediumRiskAbove = 75
)

// RankByForm returns a copy ordered by form descending. Ties keep input order.
func RankByForm(players []squad.Player) []squad.Player {
	out := make([]squad.Player, len(players))
	copy(out, players)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Form > out[j].Form
	})
	return out
}

// CaptainPick is the safe and differential captain recommendation.
type CaptainPick struct {
	Safe            squad.Player
	Differential    squad.Player
	HasDifferential bool
}

// Captain picks rank 1 as safe. The differential is the first of ranks 2-4
// with ownership under 30, else rank 2. One player yields no differential.
func Captain(players []squad.Player) (CaptainPick, bool) {
	if len(players) == 0 {
		return CaptainPick{}, false
	}

	ranked := RankByForm(players)
	pick := CaptainPick{Safe: ranked[0]}
	if len(ranked) < 2 {
		return pick, true
	}

	pool := ranked[1:min(len(ranked), captainPoolSize)]
	pick.Differential = pool[0]
	for _, p := range pool {
		if p.Ownership < captainDifferentialMaxOwn {
			pick.Differential = p
			break
		}
	}
	pick.HasDifferential = true

	return pick, true
}

// CaptainRisk grades a captain choice by form.
func CaptainRisk(p squad.Player) string {
	if p.Form > captainLowRiskFormAbove {
		return "Low Risk"
	}
	return "Medium Risk"
}

// Differentials returns high-form, low-ownership players, least owned first.
func Differentials(players []squad.Player) []squad.Player {
	out := make([]squad.Player, 0, differentialLimit)
	for _, p := range players {
		if p.Ownership < differentialMaxOwnership && p.Form > differentialMinFormAbove {
			out = append(out, p)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Ownership < out[j].Ownership
	})
	if len(out) > differentialLimit {
		out = out[:differentialLimit]
	}
	return out
}

// DifferentialRisk grades a differential pick by form.
func DifferentialRisk(p squad.Player) string {
	switch {
	case p.Form > differentialLowRiskAbove:
		return "Low Risk"
	case p.Form > differentialMediumRiskAbove:
		return "Medium Risk"
	default:
		return "High Risk"
	}
}

// OwnershipBands counts players by ownership tier.
type OwnershipBands struct {
	High   int // > 50
	Medium int // 25..50
	Low    int // < 25
}

func Ownership(players []squad.Player) OwnershipBands {
	var bands OwnershipBands
	for _, p := range players {
		switch {
		case p.Ownership > 50:
			bands.High++
		case p.Ownership >= 25:
			bands.Medium++
		default:
			bands.Low++
		}
	}
	return bands
}

// Comparison is a head-to-head of the two best players by form.
type Comparison struct {
	First        squad.Player
	Second       squad.Player
	FormDecided  bool
	BetterValue  squad.Player
	Differential squad.Player
}

// Compare needs at least two players.
func Compare(players []squad.Player) (Comparison, bool) {
	if len(players) < 2 {
		return Comparison{}, false
	}

	ranked := RankByForm(players)
	a, b := ranked[0], ranked[1]
	cmp := Comparison{
		First:        a,
		Second:       b,
		FormDecided:  a.Form > b.Form,
		BetterValue:  b,
		Differential: b,
	}
	if valueRatio(a) < valueRatio(b) {
		cmp.BetterValue = a
	}
	if a.Ownership < b.Ownership {
		cmp.Differential = a
	}
	return cmp, true
}

// valueRatio is price per form point; lower is better.
func valueRatio(p squad.Player) float64 {
	if p.Form <= 0 {
		return math.Inf(1)
	}
	return float64(p.Price) / float64(p.Form)
}
