package analytics

import (
	"math"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/squad"
)

// PlayerSummary aggregates form and ownership across every player in a snapshot.
type PlayerSummary struct {
	Total          int
	TopForm        []squad.Player
	ValuePicks     []squad.Player
	Elite          int // form >= 90
	Struggling     int // form < 70
	MeanForm       int
	HighForm       int // form >= 85
	Template       int // ownership > 50
	PriceEfficient int // form > 80 and price < 80
}

// FavorsHighScorers reports whether more than five players sit at form 85+.
func (s PlayerSummary) FavorsHighScorers() bool {
	return s.HighForm > 5
}

func SummarizePlayers(players []squad.Player) PlayerSummary {
	summary := PlayerSummary{Total: len(players)}
	if len(players) == 0 {
		return summary
	}

	ranked := RankByForm(players)
	summary.TopForm = ranked[:min(len(ranked), topFormSize)]

	total := 0
	for _, p := range ranked {
		total += p.Form
		if p.Form >= 90 {
			summary.Elite++
		}
		if p.Form < 70 {
			summary.Struggling++
		}
		if p.Form >= 85 {
			summary.HighForm++
		}
		if p.Ownership > 50 {
			summary.Template++
		}
		if p.Form > 80 && p.Price < 80 {
			summary.PriceEfficient++
		}
		if p.Ownership < valuePickMaxOwnership && p.Form > valuePickMinFormAbove && len(summary.ValuePicks) < valuePickLimit {
			summary.ValuePicks = append(summary.ValuePicks, p)
		}
	}
	summary.MeanForm = int(math.Floor(float64(total)/float64(len(players)) + 0.5))

	return summary
}

// PositionLeader is the best-form player of one team's bucket.
type PositionLeader struct {
	Team   string
	Role   squad.Role
	Player squad.Player
}

// PositionLeaders walks teams in the given order and buckets in roster order.
func PositionLeaders(squads map[string]squad.Squad, teams []string) []PositionLeader {
	out := make([]PositionLeader, 0, len(teams)*len(squad.Roles))
	for _, team := range teams {
		sq, ok := squads[team]
		if !ok {
			continue
		}
		for _, role := range squad.Roles {
			players := sq.Players[role]
			if len(players) == 0 {
				continue
			}
			out = append(out, PositionLeader{Team: team, Role: role, Player: RankByForm(players)[0]})
		}
	}
	return out
}

// TopPlayer is the best-form player overall.
func TopPlayer(players []squad.Player) (squad.Player, bool) {
	if len(players) == 0 {
		return squad.Player{}, false
	}
	return RankByForm(players)[0], true
}
