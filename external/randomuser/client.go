// Package randomuser looks up realistic person names from randomuser.me.
package randomuser

import (
	"context"
	"net/url"
	"strings"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/httpclient"
)

const DefaultBaseURL = "https://randomuser.me/api"

// DefaultNationality is used for teams that match no known country.
const DefaultNationality = "us"

// ErrNoResult means the provider answered without a usable name.
var ErrNoResult = crerr.New("randomuser returned no name")

var nationalities = []struct {
	country string
	code    string
}{
	{country: "india", code: "in"},
	{country: "australia", code: "au"},
	{country: "england", code: "gb"},
	{country: "new zealand", code: "nz"},
	{country: "south africa", code: "za"},
	{country: "pakistan", code: "pk"},
}

// NationalityFor maps a team name to a provider nationality code.
func NationalityFor(team string) string {
	lower := strings.ToLower(team)
	for _, n := range nationalities {
		if strings.Contains(lower, n.country) {
			return n.code
		}
	}
	return DefaultNationality
}

type ClientConfig struct {
	HTTP    httpclient.Getter
	BaseURL string
}

type Client struct {
	http    httpclient.Getter
	baseURL string
}

func NewClient(cfg ClientConfig) *Client {
	getter := cfg.HTTP
	if getter == nil {
		getter = httpclient.New(httpclient.Config{})
	}
	baseURL := strings.TrimRight(strings.TrimSpace(cfg.BaseURL), "/")
	if baseURL == "" {
		baseURL = DefaultBaseURL
	}
	return &Client{http: getter, baseURL: baseURL}
}

type envelope struct {
	Results []struct {
		Name struct {
			First string `json:"first"`
			Last  string `json:"last"`
		} `json:"name"`
	} `json:"results"`
}

// Name fetches one male name for nationality as "First Last".
func (c *Client) Name(ctx context.Context, nationality string) (string, error) {
	values := url.Values{}
	values.Set("results", "1")
	values.Set("nat", nationality)
	values.Set("gender", "male")
	fullURL := c.baseURL + "/?" + values.Encode()

	status, raw, err := c.http.Get(ctx, fullURL, nil)
	if err != nil {
		return "", crerr.Wrap(err, "randomuser request")
	}
	if status < 200 || status >= 300 {
		return "", crerr.Newf("randomuser status=%d", status)
	}

	var payload envelope
	if err := sonic.Unmarshal(raw, &payload); err != nil {
		return "", crerr.Wrap(err, "decode randomuser payload")
	}
	if len(payload.Results) == 0 {
		return "", ErrNoResult
	}

	name := payload.Results[0].Name
	first, last := strings.TrimSpace(name.First), strings.TrimSpace(name.Last)
	if first == "" && last == "" {
		return "", ErrNoResult
	}
	return strings.TrimSpace(first + " " + last), nil
}

// NameFor looks up a name matching the team's nationality.
func (c *Client) NameFor(ctx context.Context, team string) (string, error) {
	return c.Name(ctx, NationalityFor(team))
}
