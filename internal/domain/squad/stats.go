package squad

import "math"

const (
	MaxForm      = 100
	MaxPrice     = 100
	MaxOwnership = 95
)

// Base draw ranges, inclusive.
const (
	BaseFormMin      = 65
	BaseFormMax      = 100
	BasePriceMin     = 50
	BasePriceMax     = 99
	BaseOwnershipMin = 5
	BaseOwnershipMax = 79
	VenueAvgMin      = 30
	VenueAvgMax      = 69
	WicketsMax       = 4
	RunsMin          = 10
	RunsMax          = 89
)

// Multiplier weights base stats per role.
type Multiplier struct {
	Form      float64
	Price     float64
	Ownership float64
}

var multipliers = map[Role]Multiplier{
	RoleBatsman:      {Form: 1.0, Price: 1.1, Ownership: 1.2},
	RoleBowler:       {Form: 1.0, Price: 1.0, Ownership: 1.0},
	RoleAllRounder:   {Form: 1.1, Price: 1.2, Ownership: 1.3},
	RoleWicketKeeper: {Form: 1.0, Price: 1.1, Ownership: 1.1},
}

func MultiplierFor(role Role) Multiplier {
	if m, ok := multipliers[role]; ok {
		return m
	}
	return Multiplier{Form: 1, Price: 1, Ownership: 1}
}

// ApplyStats weights the base draws for role, floors, then clamps.
func ApplyStats(role Role, baseForm, basePrice, baseOwnership int) (form, price, ownership int) {
	m := MultiplierFor(role)
	form = clamp(int(math.Floor(float64(baseForm)*m.Form)), MaxForm)
	price = clamp(int(math.Floor(float64(basePrice)*m.Price)), MaxPrice)
	ownership = clamp(int(math.Floor(float64(baseOwnership)*m.Ownership)), MaxOwnership)
	return form, price, ownership
}

func clamp(v, upper int) int {
	if v < 0 {
		return 0
	}
	if v > upper {
		return upper
	}
	return v
}

var specialisms = map[Role][]string{
	RoleBatsman:      {"opener", "top-order", "middle-order", "finisher", "anchor"},
	RoleBowler:       {"fast bowler", "spinner", "death bowler", "swing bowler", "pace bowler"},
	RoleAllRounder:   {"batting allrounder", "bowling allrounder", "pace allrounder", "spin allrounder"},
	RoleWicketKeeper: {"wicket-keeper batsman", "keeper", "wicket-keeper"},
}

// Specialism cycles the role's labels by index.
func Specialism(role Role, index int) string {
	labels := specialisms[role]
	if len(labels) == 0 || index < 0 {
		return string(role)
	}
	return labels[index%len(labels)]
}
