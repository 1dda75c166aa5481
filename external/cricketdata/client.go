package cricketdata

import (
	"context"

	sonic "github.com/bytedance/sonic"
	crerr "github.com/cockroachdb/errors"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/source"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/httpclient"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/resilience"
)

const maxLoggedBody = 240

type ClientConfig struct {
	HTTP           httpclient.Getter
	Logger         *logging.Logger
	CircuitBreaker resilience.CircuitBreakerConfig
}

// Client fetches and decodes source endpoints. Breakers are kept per host.
type Client struct {
	http     httpclient.Getter
	logger   *logging.Logger
	breakers *resilience.BreakerGroup
}

func NewClient(cfg ClientConfig) *Client {
	logger := cfg.Logger
	if logger == nil {
		logger = logging.Default()
	}
	getter := cfg.HTTP
	if getter == nil {
		getter = httpclient.New(httpclient.Config{})
	}

	return &Client{
		http:     getter,
		logger:   logger,
		breakers: resilience.NewBreakerGroup(cfg.CircuitBreaker),
	}
}

// Fetch issues one GET. Network failures and non-2xx replies are marked
// source.ErrTransport, bodies that are not JSON source.ErrDecode.
func (c *Client) Fetch(ctx context.Context, endpoint string) (source.Response, error) {
	if !c.breakers.Enabled() {
		return c.fetch(ctx, endpoint)
	}

	host := resilience.HostKey(endpoint)
	breaker := c.breakers.Get(host)
	var resp source.Response
	err := breaker.Execute(func() error {
		var fetchErr error
		resp, fetchErr = c.fetch(ctx, endpoint)
		return fetchErr
	}, isTransportFailure)
	if crerr.Is(err, resilience.ErrCircuitOpen) {
		c.logger.WarnContext(ctx, "source circuit breaker rejected request", "host", host, "state", breaker.State())
		return source.Response{}, crerr.Mark(crerr.Wrapf(err, "host %s", host), source.ErrTransport)
	}
	return resp, err
}

// BreakerStates reports the breaker state for every host contacted so far.
func (c *Client) BreakerStates() map[string]resilience.CircuitState {
	return c.breakers.States()
}

func (c *Client) fetch(ctx context.Context, endpoint string) (source.Response, error) {
	status, raw, err := c.http.Get(ctx, endpoint, nil)
	if err != nil {
		return source.Response{}, crerr.Mark(err, source.ErrTransport)
	}
	if status < 200 || status >= 300 {
		return source.Response{StatusCode: status}, crerr.Mark(
			crerr.Newf("source status=%d body=%s", status, abbreviateBody(raw)),
			source.ErrTransport,
		)
	}

	var body any
	if err := sonic.Unmarshal(raw, &body); err != nil {
		return source.Response{StatusCode: status}, crerr.Mark(crerr.Wrap(err, "decode source payload"), source.ErrDecode)
	}
	return source.Response{StatusCode: status, Body: body}, nil
}

func isTransportFailure(err error) bool {
	return crerr.Is(err, source.ErrTransport)
}

func abbreviateBody(raw []byte) string {
	if len(raw) <= maxLoggedBody {
		return string(raw)
	}
	return string(raw[:maxLoggedBody]) + "..."
}
