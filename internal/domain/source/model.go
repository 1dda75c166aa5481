package source

import (
	"context"

	crerr "github.com/cockroachdb/errors"
)

// Kind labels how a source is reached. It is informational only.
type Kind string

const (
	KindPublic    Kind = "public"
	KindGitHub    Kind = "github"
	KindFree      Kind = "free"
	KindWebScrape Kind = "web_scrape"
)

// Source is an external event provider with its mirror endpoints.
type Source struct {
	Name         string
	Endpoint     string
	Kind         Kind
	Alternatives []string
}

// Registry enumerates sources in priority order.
type Registry interface {
	Sources() []Source
}

// Response is a decoded body plus the HTTP status it came with.
type Response struct {
	StatusCode int
	Body       any
}

// Fetcher issues a single bounded GET against endpoint.
type Fetcher interface {
	Fetch(ctx context.Context, endpoint string) (Response, error)
}

var (
	// ErrTransport marks network, timeout and non-2xx failures.
	ErrTransport = crerr.New("source transport failure")
	// ErrDecode marks bodies that are not JSON.
	ErrDecode = crerr.New("source decode failure")
	// ErrUnrecognized marks decoded bodies without a recognizable record array.
	ErrUnrecognized = crerr.New("source shape unrecognized")
)

// Outcome of one endpoint attempt.
type Outcome string

const (
	OutcomeOK           Outcome = "ok"
	OutcomeEmpty        Outcome = "empty"
	OutcomeTransport    Outcome = "transport_error"
	OutcomeDecode       Outcome = "decode_error"
	OutcomeUnrecognized Outcome = "unrecognized"
)

// Attempt records what happened at one endpoint during an acquisition.
type Attempt struct {
	Source      string
	Endpoint    string
	Alternative bool
	Outcome     Outcome
	Records     int
	Error       string
}

// ClassifyError maps a fetch or normalize error to an attempt outcome.
func ClassifyError(err error) Outcome {
	switch {
	case err == nil:
		return OutcomeOK
	case crerr.Is(err, ErrUnrecognized):
		return OutcomeUnrecognized
	case crerr.Is(err, ErrDecode):
		return OutcomeDecode
	default:
		return OutcomeTransport
	}
}
