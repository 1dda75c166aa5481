package httpapi

import "net/http"

func registerSystemRoutes(mux *http.ServeMux, handler *Handler, metrics MetricsExporter) {
	mux.HandleFunc("GET /healthz", handler.Healthz)
	if metrics == nil {
		return
	}

	mux.Handle("GET /metrics", metrics.Handler())
}

func registerAcquisitionRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("POST /v1/acquisitions", handler.RequestAcquisition)
	mux.HandleFunc("POST /v1/acquisitions/retry", handler.RetryAcquisition)
	mux.HandleFunc("GET /v1/snapshot", handler.GetSnapshot)
}

func registerAssistantRoutes(mux *http.ServeMux, handler *Handler) {
	mux.HandleFunc("GET /v1/events", handler.ListEvents)
	mux.HandleFunc("PUT /v1/events/selected", handler.SelectEvent)
	mux.HandleFunc("POST /v1/queries", handler.SubmitQuery)
}
