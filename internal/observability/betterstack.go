package observability

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/riskibarqy/fantasy-cricket/internal/config"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/valyala/bytebufferpool"
	"github.com/valyala/fasthttp"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

// InitBetterStackLogger tees base into Better Stack at or above BETTERSTACK_MIN_LEVEL.
// base keeps its own sinks (stdout and the optional rotating file).
func InitBetterStackLogger(cfg config.Config, base *logging.Logger) (*logging.Logger, func(context.Context) error, error) {
	if base == nil {
		base = logging.NewJSON(cfg.LogLevel)
	}

	if !cfg.BetterStackEnabled {
		base.Info("betterstack disabled", "reason", "BETTERSTACK_ENABLED=false")
		return base, func(context.Context) error { return nil }, nil
	}

	endpoint := normalizeBetterStackEndpoint(cfg.BetterStackEndpoint)
	if endpoint == "" {
		return nil, nil, fmt.Errorf("betterstack endpoint cannot be empty")
	}

	shipper := newBetterStackShipper(endpoint, strings.TrimSpace(cfg.BetterStackToken), cfg.BetterStackTimeout)

	shipped := zapcore.NewCore(zapcore.NewJSONEncoder(betterStackEncoderConfig()), shipper, cfg.BetterStackMinLevel).
		With([]zapcore.Field{
			zap.String("service", cfg.ServiceName),
			zap.String("version", cfg.ServiceVersion),
			zap.String("env", cfg.AppEnv),
		})

	logger := logging.FromZap(base.Zap().WithOptions(zap.WrapCore(func(core zapcore.Core) zapcore.Core {
		return zapcore.NewTee(core, shipped)
	})))
	logger.Info("betterstack enabled",
		"endpoint", endpoint,
		"min_level", cfg.BetterStackMinLevel.String(),
		"service_name", cfg.ServiceName,
		"environment", cfg.AppEnv,
	)

	return logger, func(ctx context.Context) error {
		drainCtx := ctx
		if drainCtx == nil {
			drainCtx = context.Background()
		}
		if _, hasDeadline := drainCtx.Deadline(); !hasDeadline {
			withTimeout, cancel := context.WithTimeout(drainCtx, 5*time.Second)
			defer cancel()
			drainCtx = withTimeout
		}
		if err := shipper.Close(drainCtx); err != nil {
			return fmt.Errorf("drain betterstack queue: %w", err)
		}
		if err := base.Sync(); err != nil && !isIgnorableLoggerSyncError(err) {
			return err
		}
		return nil
	}, nil
}

func betterStackEncoderConfig() zapcore.EncoderConfig {
	return zapcore.EncoderConfig{
		TimeKey:        "dt",
		LevelKey:       "level",
		NameKey:        "logger",
		CallerKey:      "caller",
		FunctionKey:    zapcore.OmitKey,
		MessageKey:     "message",
		StacktraceKey:  "stacktrace",
		LineEnding:     zapcore.DefaultLineEnding,
		EncodeLevel:    zapcore.LowercaseLevelEncoder,
		EncodeTime:     zapcore.RFC3339NanoTimeEncoder,
		EncodeDuration: zapcore.StringDurationEncoder,
		EncodeCaller:   zapcore.ShortCallerEncoder,
		EncodeName:     zapcore.FullNameEncoder,
	}
}

func normalizeBetterStackEndpoint(raw string) string {
	value := strings.TrimSpace(raw)
	if value == "" {
		return ""
	}
	if strings.HasPrefix(value, "http://") || strings.HasPrefix(value, "https://") {
		return value
	}
	return "https://" + value
}

const (
	betterStackQueueSize     = 1024
	betterStackMaxBatch      = 100
	betterStackFlushInterval = time.Second
)

// betterStackShipper buffers encoded log lines and posts them as JSON arrays.
// Writes never block the logger: a full queue drops lines and counts them.
type betterStackShipper struct {
	endpoint string
	token    string
	timeout  time.Duration
	client   *fasthttp.Client
	stderr   io.Writer

	mu      sync.RWMutex
	closed  bool
	lines   chan []byte
	done    chan struct{}
	once    sync.Once
	dropped atomic.Uint64
}

func newBetterStackShipper(endpoint, token string, timeout time.Duration) *betterStackShipper {
	if timeout <= 0 {
		timeout = 3 * time.Second
	}

	s := &betterStackShipper{
		endpoint: endpoint,
		token:    token,
		timeout:  timeout,
		client:   &fasthttp.Client{Name: "fantasy-cricket-logs"},
		stderr:   os.Stderr,
		lines:    make(chan []byte, betterStackQueueSize),
		done:     make(chan struct{}),
	}
	go s.run()
	return s
}

func (s *betterStackShipper) Write(p []byte) (int, error) {
	line := bytes.TrimSpace(p)
	if len(line) == 0 {
		return len(p), nil
	}

	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.closed {
		return len(p), nil
	}

	// zap reuses its buffer once Write returns.
	owned := append([]byte(nil), line...)
	select {
	case s.lines <- owned:
	default:
		if n := s.dropped.Add(1); n == 1 || n%100 == 0 {
			fmt.Fprintf(s.stderr, "betterstack queue full; dropped logs=%d\n", n)
		}
	}
	return len(p), nil
}

func (s *betterStackShipper) Sync() error {
	return nil
}

func (s *betterStackShipper) run() {
	defer close(s.done)

	ticker := time.NewTicker(betterStackFlushInterval)
	defer ticker.Stop()

	batch := make([][]byte, 0, betterStackMaxBatch)
	flush := func() {
		if len(batch) == 0 {
			return
		}
		s.post(batch)
		batch = batch[:0]
	}

	for {
		select {
		case line, ok := <-s.lines:
			if !ok {
				flush()
				return
			}
			batch = append(batch, line)
			if len(batch) >= betterStackMaxBatch {
				flush()
			}
		case <-ticker.C:
			flush()
		}
	}
}

func (s *betterStackShipper) post(batch [][]byte) {
	body := bytebufferpool.Get()
	defer bytebufferpool.Put(body)

	_ = body.WriteByte('[')
	for i, line := range batch {
		if i > 0 {
			_ = body.WriteByte(',')
		}
		_, _ = body.Write(line)
	}
	_ = body.WriteByte(']')

	req := fasthttp.AcquireRequest()
	resp := fasthttp.AcquireResponse()
	defer fasthttp.ReleaseRequest(req)
	defer fasthttp.ReleaseResponse(resp)

	req.SetRequestURI(s.endpoint)
	req.Header.SetMethod(fasthttp.MethodPost)
	req.Header.SetContentType("application/json")
	if s.token != "" {
		req.Header.Set("Authorization", "Bearer "+s.token)
	}
	req.SetBody(body.B)

	if err := s.client.DoTimeout(req, resp, s.timeout); err != nil {
		fmt.Fprintf(s.stderr, "betterstack send logs failed: lines=%d err=%v\n", len(batch), err)
		return
	}
	if code := resp.StatusCode(); code >= fasthttp.StatusMultipleChoices {
		fmt.Fprintf(s.stderr, "betterstack send logs got non-2xx status=%d\n", code)
	}
}

// Close stops accepting lines and waits for the queue to drain or ctx to end.
func (s *betterStackShipper) Close(ctx context.Context) error {
	s.once.Do(func() {
		s.mu.Lock()
		s.closed = true
		close(s.lines)
		s.mu.Unlock()
	})

	select {
	case <-s.done:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

func isIgnorableLoggerSyncError(err error) bool {
	if err == nil {
		return false
	}
	msg := strings.ToLower(err.Error())
	return strings.Contains(msg, "bad file descriptor") || strings.Contains(msg, "invalid argument")
}
