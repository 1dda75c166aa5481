package cricketdata

import (
	"slices"
	"testing"
	"time"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/event"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/source"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/random"
	"github.com/stretchr/testify/require"
)

var fixedNow = time.Date(2025, 6, 14, 15, 0, 0, 0, time.UTC)

func newTestNormalizer() *Normalizer {
	n := NewNormalizer(random.New(7))
	n.now = func() time.Time { return fixedNow }
	return n
}

func decode(t *testing.T, raw string) any {
	t.Helper()
	var body any
	require.NoError(t, sonic.Unmarshal([]byte(raw), &body))
	return body
}

func TestNormalize_MatchesWrapper(t *testing.T) {
	body := decode(t, `{"matches":[{"team1":"India","team2":"Australia","matchType":"T20I","venue":"MCG","dateTimeGMT":"2025-06-14T14:00:00Z"}]}`)

	events, err := newTestNormalizer().Normalize(body, "CricAPI_Free")
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev := events[0]
	require.Equal(t, "CricAPI_Free_0", ev.ID)
	require.Equal(t, "India vs Australia", ev.Name)
	require.Equal(t, [2]string{"India", "Australia"}, ev.Teams)
	require.Equal(t, event.FormatT20, ev.Format)
	require.Equal(t, event.LeagueInternational, ev.League)
	require.Equal(t, "MCG", ev.Venue)
	require.Equal(t, "Tournament", ev.Series)
	require.Equal(t, "Upcoming", ev.Status)
	require.Equal(t, "CricAPI_Free", ev.Source)
	require.True(t, ev.StartsAt.Equal(time.Date(2025, 6, 14, 14, 0, 0, 0, time.UTC)))
}

func TestNormalize_PairedKeysBeatTeamList(t *testing.T) {
	body := decode(t, `[{"home_team":"Perth Scorchers","away_team":"Sydney Sixers","teams":["X","Y"],"series":"Big Bash League"}]`)

	events, err := newTestNormalizer().Normalize(body, "src")
	require.NoError(t, err)
	require.Equal(t, [2]string{"Perth Scorchers", "Sydney Sixers"}, events[0].Teams)
	require.Equal(t, event.LeagueBBL, events[0].League)
}

func TestNormalize_TeamSources(t *testing.T) {
	testCases := []struct {
		name string
		raw  string
		want [2]string
	}{
		{
			name: "team object list",
			raw:  `[{"teams":[{"name":"Lahore Qalandars"},{"shortName":"KK"}]}]`,
			want: [2]string{"Lahore Qalandars", "KK"},
		},
		{
			name: "object without name falls back to placeholder",
			raw:  `[{"participants":[{"id":1},"Essex"]}]`,
			want: [2]string{"Team", "Essex"},
		},
		{
			name: "competitors nested in competitions",
			raw:  `[{"competitions":[{"competitors":[{"team":{"displayName":"England"}},{"team":{"displayName":"Pakistan"}}]}]}]`,
			want: [2]string{"England", "Pakistan"},
		},
		{
			name: "split from name",
			raw:  `[{"name":"Surrey vs Kent, Round 3"}]`,
			want: [2]string{"Surrey", "Kent, Round 3"},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			events, err := newTestNormalizer().Normalize(decode(t, tc.raw), "src")
			require.NoError(t, err)
			require.Equal(t, tc.want, events[0].Teams)
		})
	}
}

func TestNormalize_RandomTeamsWhenNothingUsable(t *testing.T) {
	events, err := newTestNormalizer().Normalize(decode(t, `[{"teams":["solo"]}]`), "src")
	require.NoError(t, err)

	teams := events[0].Teams
	require.NotEqual(t, teams[0], teams[1])
	require.True(t, slices.Contains(event.InternationalSides, teams[0]))
	require.True(t, slices.Contains(event.InternationalSides, teams[1]))
	require.Equal(t, teams[0]+" vs "+teams[1], events[0].Name)
}

func TestNormalize_Defaults(t *testing.T) {
	events, err := newTestNormalizer().Normalize(decode(t, `{"data":{"team1":"A","team2":"B","date":"not a date"}}`), "wrapped")
	require.NoError(t, err)
	require.Len(t, events, 1)

	ev := events[0]
	require.Equal(t, "wrapped_0", ev.ID)
	require.Equal(t, "TBD", ev.Venue)
	require.Equal(t, "Tournament", ev.Series)
	require.Equal(t, event.FormatT20, ev.Format)
	require.Equal(t, event.LeagueDomestic, ev.League)
	require.True(t, ev.StartsAt.Equal(fixedNow))
}

func TestNormalize_BlankValuesFallThrough(t *testing.T) {
	raw := `[
		{"team1":"A","team2":"B","venue":"  ","stadium":"Eden Gardens, Kolkata"},
		{"team1":"A","team2":"B","venue":""}
	]`

	events, err := newTestNormalizer().Normalize(decode(t, raw), "src")
	require.NoError(t, err)
	require.Len(t, events, 2)
	require.Equal(t, "Eden Gardens, Kolkata", events[0].Venue)
	require.Equal(t, "TBD", events[1].Venue)
}

func TestNormalize_FieldFallbacks(t *testing.T) {
	raw := `[{
		"match_id": 991,
		"title": "Final",
		"team1": "Mumbai Indians",
		"team2": "Chennai Super Kings",
		"date": "garbage",
		"start_date": 1749909600000,
		"ground": {"name": "Wankhede Stadium, Mumbai"},
		"tournament": "Indian Premier League",
		"isLive": true,
		"type": "odi"
	}]`

	events, err := newTestNormalizer().Normalize(decode(t, raw), "src")
	require.NoError(t, err)

	ev := events[0]
	require.Equal(t, "991", ev.ID)
	require.Equal(t, "Final", ev.Name)
	require.Equal(t, "Wankhede Stadium, Mumbai", ev.Venue)
	require.Equal(t, event.LeagueIPL, ev.League)
	require.Equal(t, event.FormatODI, ev.Format)
	require.Equal(t, "Live", ev.Status)
	require.True(t, ev.StartsAt.Equal(time.UnixMilli(1749909600000)))
}

func TestNormalize_FormatFromSeriesWhenMissing(t *testing.T) {
	events, err := newTestNormalizer().Normalize(decode(t, `[{"team1":"A","team2":"B","series":"County Championship Test Series"}]`), "src")
	require.NoError(t, err)
	require.Equal(t, event.FormatTest, events[0].Format)
	require.Equal(t, event.LeagueCounty, events[0].League)
}

func TestNormalize_StartedStatusAndSkipsScalars(t *testing.T) {
	events, err := newTestNormalizer().Normalize(decode(t, `{"events":[1,"x",{"team1":"A","team2":"B","hasStarted":true}]}`), "src")
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "In Progress", events[0].Status)
	require.Equal(t, "src_2", events[0].ID)
}

func TestExtractRecords(t *testing.T) {
	testCases := []struct {
		name    string
		raw     string
		wantLen int
		wantErr bool
	}{
		{name: "bare array", raw: `[{},{}]`, wantLen: 2},
		{name: "matches first", raw: `{"data":[{}],"matches":[{},{},{}]}`, wantLen: 3},
		{name: "empty recognized array", raw: `{"matches":[]}`, wantLen: 0},
		{name: "fixtures", raw: `{"fixtures":[{}]}`, wantLen: 1},
		{name: "first non-empty array by key", raw: `{"zeta":[{}, {}],"alpha":[],"beta":[{}]}`, wantLen: 1},
		{name: "no arrays", raw: `{"message":"rate limited"}`, wantErr: true},
		{name: "scalar", raw: `"hello"`, wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			records, err := ExtractRecords(decode(t, tc.raw))
			if tc.wantErr {
				require.Error(t, err)
				require.True(t, crerr.Is(err, source.ErrUnrecognized))
				require.Equal(t, source.OutcomeUnrecognized, source.ClassifyError(err))
				return
			}
			require.NoError(t, err)
			require.Len(t, records, tc.wantLen)
		})
	}
}
