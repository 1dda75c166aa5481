package resilience

import (
	"net/url"
	"strings"
	"sync"
)

// BreakerGroup keeps one breaker per key, typically an upstream host.
type BreakerGroup struct {
	mu       sync.Mutex
	cfg      CircuitBreakerConfig
	breakers map[string]*CircuitBreaker
}

func NewBreakerGroup(cfg CircuitBreakerConfig) *BreakerGroup {
	return &BreakerGroup{
		cfg:      NormalizeCircuitBreakerConfig(cfg),
		breakers: make(map[string]*CircuitBreaker),
	}
}

func (g *BreakerGroup) Enabled() bool {
	return g != nil && g.cfg.Enabled
}

// Get returns the breaker for key, creating it on first use.
func (g *BreakerGroup) Get(key string) *CircuitBreaker {
	g.mu.Lock()
	defer g.mu.Unlock()

	b, ok := g.breakers[key]
	if !ok {
		b = NewCircuitBreaker(g.cfg.FailureThreshold, g.cfg.OpenTimeout, g.cfg.HalfOpenMaxReq)
		g.breakers[key] = b
	}
	return b
}

// States snapshots every known breaker state by key.
func (g *BreakerGroup) States() map[string]CircuitState {
	g.mu.Lock()
	keys := make([]string, 0, len(g.breakers))
	breakers := make([]*CircuitBreaker, 0, len(g.breakers))
	for key, b := range g.breakers {
		keys = append(keys, key)
		breakers = append(breakers, b)
	}
	g.mu.Unlock()

	out := make(map[string]CircuitState, len(keys))
	for i, key := range keys {
		out[key] = breakers[i].State()
	}
	return out
}

// HostKey reduces an endpoint URL to its host so mirrors on one host share a breaker.
func HostKey(endpoint string) string {
	parsed, err := url.Parse(strings.TrimSpace(endpoint))
	if err != nil || parsed.Host == "" {
		return endpoint
	}
	return strings.ToLower(parsed.Host)
}
