package event

import "time"

// Format is the match format of a cricket event.
type Format string

const (
	FormatT20   Format = "T20"
	FormatODI   Format = "ODI"
	FormatTest  Format = "Test"
	FormatOther Format = "Other"
)

// League is derived from series text and team names, never read from a source.
type League string

const (
	LeagueIPL           League = "IPL"
	LeagueBBL           League = "BBL"
	LeaguePSL           League = "PSL"
	LeagueCounty        League = "County"
	LeagueWomens        League = "Women's Cricket"
	LeagueInternational League = "International"
	LeagueDomestic      League = "Domestic League"
)

// Event is a canonical normalized contest record.
type Event struct {
	ID       string
	Name     string
	Teams    [2]string
	Format   Format
	Venue    string
	Series   string
	Status   string
	StartsAt time.Time
	Source   string
	League   League
}

// Timestamp renders the start instant as ISO-8601.
func (e Event) Timestamp() string {
	return e.StartsAt.UTC().Format(time.RFC3339)
}

func (e Event) HasTeam(name string) bool {
	return e.Teams[0] == name || e.Teams[1] == name
}
