// Package httpclient is the bounded outbound GET transport shared by the
// source, name and weather clients.
package httpclient

import (
	"context"
	"time"

	crerr "github.com/cockroachdb/errors"
	"github.com/valyala/fasthttp"
)

const (
	defaultTimeout     = 8 * time.Second
	defaultMaxBodySize = 6 << 20
	DefaultUserAgent   = "Fantasy-Cricket-Bot/1.0"
	DefaultAccept      = "application/json, text/plain, */*"
)

// Getter issues a GET and returns the status code and a copy of the body.
type Getter interface {
	Get(ctx context.Context, rawURL string, headers map[string]string) (int, []byte, error)
}

type Config struct {
	Timeout     time.Duration
	UserAgent   string
	MaxBodySize int
}

type Client struct {
	client    *fasthttp.Client
	timeout   time.Duration
	userAgent string
}

func New(cfg Config) *Client {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = defaultTimeout
	}
	maxBody := cfg.MaxBodySize
	if maxBody <= 0 {
		maxBody = defaultMaxBodySize
	}
	userAgent := cfg.UserAgent
	if userAgent == "" {
		userAgent = DefaultUserAgent
	}

	return &Client{
		client: &fasthttp.Client{
			Name:                     userAgent,
			ReadTimeout:              timeout,
			WriteTimeout:             timeout,
			MaxResponseBodySize:      maxBody,
			NoDefaultUserAgentHeader: true,
		},
		timeout:   timeout,
		userAgent: userAgent,
	}
}

// Get never blocks past the client timeout or the context deadline, whichever comes first.
func (c *Client) Get(ctx context.Context, rawURL string, headers map[string]string) (int, []byte, error) {
	if err := ctx.Err(); err != nil {
		return 0, nil, crerr.Wrap(err, "request cancelled")
	}

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(rawURL)
	req.Header.SetMethod(fasthttp.MethodGet)
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", DefaultAccept)
	req.Header.SetUserAgent(c.userAgent)
	for key, value := range headers {
		req.Header.Set(key, value)
	}

	deadline := time.Now().Add(c.timeout)
	if ctxDeadline, ok := ctx.Deadline(); ok && ctxDeadline.Before(deadline) {
		deadline = ctxDeadline
	}

	if err := c.client.DoDeadline(req, resp, deadline); err != nil {
		return 0, nil, crerr.Wrapf(err, "get %s", rawURL)
	}

	body := append([]byte(nil), resp.Body()...)
	return resp.StatusCode(), body, nil
}
