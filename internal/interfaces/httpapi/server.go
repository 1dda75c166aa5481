package httpapi

import (
	"net/http"

	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
)

// MetricsExporter is the optional metrics sink; nil disables /metrics.
type MetricsExporter interface {
	HTTPMetrics
	Handler() http.Handler
}

func NewRouter(
	handler *Handler,
	logger *logging.Logger,
	metrics MetricsExporter,
	corsAllowedOrigins []string,
) http.Handler {
	if logger == nil {
		logger = logging.Default()
	}

	mux := http.NewServeMux()
	registerSystemRoutes(mux, handler, metrics)
	registerAcquisitionRoutes(mux, handler)
	registerAssistantRoutes(mux, handler)

	var observed http.Handler = mux
	if metrics != nil {
		observed = RequestMetrics(metrics, mux)
	}
	return RequestTracing(RequestLogging(logger, CORS(corsAllowedOrigins, recoverPanic(logger, observed))))
}

func recoverPanic(logger *logging.Logger, next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ctx, span := startSpan(r.Context(), "httpapi.recoverPanic")
		defer span.End()

		defer func() {
			if rec := recover(); rec != nil {
				logger.ErrorContext(ctx, "panic recovered", "panic", rec)
				writeInternalError(ctx, w)
			}
		}()
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}
