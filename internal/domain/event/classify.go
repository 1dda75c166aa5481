package event

import (
	"strings"
	"time"
)

// RecencyWindow bounds how far a record's start may be from now and still be kept.
const RecencyWindow = 48 * time.Hour

// InternationalSides is the fixed list used when a record carries no usable team names.
var InternationalSides = []string{
	"India",
	"Australia",
	"England",
	"New Zealand",
	"South Africa",
	"Pakistan",
	"Sri Lanka",
	"Bangladesh",
	"West Indies",
	"Afghanistan",
}

var internationalKeywords = []string{
	"india",
	"australia",
	"england",
	"new zealand",
	"south africa",
	"pakistan",
	"sri lanka",
	"bangladesh",
}

type leagueRule struct {
	keywords []string
	league   League
}

var seriesLeagueRules = []leagueRule{
	{keywords: []string{"ipl", "indian premier"}, league: LeagueIPL},
	{keywords: []string{"bbl", "big bash"}, league: LeagueBBL},
	{keywords: []string{"psl", "pakistan super"}, league: LeaguePSL},
	{keywords: []string{"county"}, league: LeagueCounty},
	{keywords: []string{"women"}, league: LeagueWomens},
}

// ClassifyLeague checks series text first, then team names.
func ClassifyLeague(series string, teams [2]string) League {
	text := strings.ToLower(series)
	for _, rule := range seriesLeagueRules {
		if containsAny(text, rule.keywords) {
			return rule.league
		}
	}

	for _, team := range teams {
		if containsAny(strings.ToLower(team), internationalKeywords) {
			return LeagueInternational
		}
	}

	return LeagueDomestic
}

// ParseFormat maps an explicit format field. Unknown values become FormatOther.
func ParseFormat(raw string) Format {
	if format, ok := formatFromText(raw); ok {
		return format
	}
	return FormatOther
}

// InferFormat prefers an explicit format, then the series text, then T20.
func InferFormat(explicit, series string) Format {
	if strings.TrimSpace(explicit) != "" {
		return ParseFormat(explicit)
	}
	if format, ok := formatFromText(series); ok {
		return format
	}
	return FormatT20
}

func formatFromText(raw string) (Format, bool) {
	text := strings.ToLower(raw)
	switch {
	case strings.Contains(text, "t20"):
		return FormatT20, true
	case strings.Contains(text, "odi"):
		return FormatODI, true
	case strings.Contains(text, "test"):
		return FormatTest, true
	default:
		return "", false
	}
}

// WithinWindow reports whether t lies inside [now-window, now+window].
func WithinWindow(t, now time.Time, window time.Duration) bool {
	diff := t.Sub(now)
	if diff < 0 {
		diff = -diff
	}
	return diff <= window
}

// StatusKind buckets free-text status for display only.
func StatusKind(status string) string {
	text := strings.ToLower(status)
	switch {
	case strings.Contains(text, "live"), strings.Contains(text, "progress"):
		return "live"
	case strings.Contains(text, "upcoming"), strings.Contains(text, "starts"):
		return "upcoming"
	default:
		return "other"
	}
}

func containsAny(text string, keywords []string) bool {
	for _, keyword := range keywords {
		if strings.Contains(text, keyword) {
			return true
		}
	}
	return false
}
