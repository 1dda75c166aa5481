package conditions

import "strings"

// PitchType is the playing character of a venue.
type PitchType string

const (
	PitchBatting  PitchType = "batting-friendly"
	PitchBowling  PitchType = "bowling-friendly"
	PitchSpin     PitchType = "spin-friendly"
	PitchBalanced PitchType = "balanced"
)

// PitchTypes is the uniform fallback pool when no venue matches.
var PitchTypes = []PitchType{PitchBatting, PitchBowling, PitchSpin, PitchBalanced}

type DewFactor string

const (
	DewHigh DewFactor = "high"
	DewLow  DewFactor = "low"
)

// Conditions describes venue weather and pitch for the selected event.
type Conditions struct {
	Pitch       PitchType
	Weather     string
	Temperature int
	Humidity    int
	WindSpeed   int
	Dew         DewFactor
	Live        bool
}

type venuePitch struct {
	keyword string
	pitch   PitchType
}

// Order matters: the first keyword found in the venue wins.
var venuePitches = []venuePitch{
	{keyword: "wankhede", pitch: PitchBatting},
	{keyword: "eden", pitch: PitchSpin},
	{keyword: "lords", pitch: PitchBalanced},
	{keyword: "mcg", pitch: PitchBowling},
	{keyword: "oval", pitch: PitchBowling},
	{keyword: "chinnaswamy", pitch: PitchBatting},
	{keyword: "mumbai", pitch: PitchBatting},
	{keyword: "kolkata", pitch: PitchSpin},
	{keyword: "delhi", pitch: PitchBatting},
	{keyword: "chennai", pitch: PitchSpin},
	{keyword: "bangalore", pitch: PitchBatting},
}

// PitchForVenue looks the venue up in the known venue table.
func PitchForVenue(venue string) (PitchType, bool) {
	text := strings.ToLower(venue)
	for _, vp := range venuePitches {
		if strings.Contains(text, vp.keyword) {
			return vp.pitch, true
		}
	}
	return "", false
}

// CityFromVenue takes the last comma segment, or the first when the last is blank.
func CityFromVenue(venue string) string {
	parts := strings.Split(venue, ",")
	if city := strings.TrimSpace(parts[len(parts)-1]); city != "" {
		return city
	}
	return strings.TrimSpace(parts[0])
}

// DewFromHumidity derives dew for live weather readings.
func DewFromHumidity(humidity int) DewFactor {
	if humidity >= 70 {
		return DewHigh
	}
	return DewLow
}

// FallbackWeather is the pool used when no provider answers.
var FallbackWeather = []string{"Clear", "Cloudy", "Overcast", "Partly Cloudy"}

// Fallback ranges, inclusive.
const (
	FallbackTempMin     = 20
	FallbackTempMax     = 34
	FallbackHumidityMin = 40
	FallbackHumidityMax = 79
	FallbackWindMin     = 5
	FallbackWindMax     = 24
)

// Reading is a live weather observation. WindSpeed is km/h.
type Reading struct {
	Provider    string
	Weather     string
	Temperature int
	Humidity    int
	WindSpeed   int
}

// FromReading combines a live reading with the venue pitch.
func FromReading(r Reading, pitch PitchType) Conditions {
	return Conditions{
		Pitch:       pitch,
		Weather:     r.Weather,
		Temperature: r.Temperature,
		Humidity:    r.Humidity,
		WindSpeed:   r.WindSpeed,
		Dew:         DewFromHumidity(r.Humidity),
		Live:        true,
	}
}
