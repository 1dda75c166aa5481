package squad

import (
	"fmt"

	"github.com/riskibarqy/fantasy-cricket/internal/domain/event"
)

// Role is a squad bucket.
type Role string

const (
	RoleBatsman      Role = "batsmen"
	RoleBowler       Role = "bowlers"
	RoleAllRounder   Role = "allRounders"
	RoleWicketKeeper Role = "wicketKeepers"
)

// Roles lists buckets in roster order.
var Roles = []Role{RoleBatsman, RoleBowler, RoleAllRounder, RoleWicketKeeper}

const InjuryStatusFit = "fit"

// Player belongs to exactly one team and one bucket of an event's squad.
type Player struct {
	Name         string
	Team         string
	Role         Role
	Specialism   string
	Form         int
	Price        int
	Ownership    int
	RecentScores [5]int
	InjuryStatus string
	VenueAvg     int
}

// Credits renders price as fantasy credits, e.g. 87 -> "8.7".
func (p Player) Credits() string {
	return fmt.Sprintf("%.1f", float64(p.Price)/10)
}

// Squad is one team's roster grouped by bucket.
type Squad struct {
	Team    string
	Players map[Role][]Player
}

// Ordered flattens the squad in bucket order.
func (s Squad) Ordered() []Player {
	out := make([]Player, 0, s.Size())
	for _, role := range Roles {
		out = append(out, s.Players[role]...)
	}
	return out
}

func (s Squad) Size() int {
	total := 0
	for _, players := range s.Players {
		total += len(players)
	}
	return total
}

// Structure is the per-bucket player count for a format.
type Structure struct {
	Batsmen       int
	Bowlers       int
	AllRounders   int
	WicketKeepers int
}

func (s Structure) Count(role Role) int {
	switch role {
	case RoleBatsman:
		return s.Batsmen
	case RoleBowler:
		return s.Bowlers
	case RoleAllRounder:
		return s.AllRounders
	case RoleWicketKeeper:
		return s.WicketKeepers
	default:
		return 0
	}
}

func (s Structure) Total() int {
	return s.Batsmen + s.Bowlers + s.AllRounders + s.WicketKeepers
}

var structures = map[event.Format]Structure{
	event.FormatT20:  {Batsmen: 5, Bowlers: 4, AllRounders: 3, WicketKeepers: 2},
	event.FormatODI:  {Batsmen: 6, Bowlers: 5, AllRounders: 2, WicketKeepers: 2},
	event.FormatTest: {Batsmen: 6, Bowlers: 5, AllRounders: 2, WicketKeepers: 2},
}

// StructureFor returns the roster shape for format, T20 when unknown.
func StructureFor(format event.Format) Structure {
	if s, ok := structures[format]; ok {
		return s
	}
	return structures[event.FormatT20]
}
