package httpapi

import (
	"context"
	"fmt"
	"net/http"

	sonic "github.com/bytedance/sonic"
	"github.com/go-playground/validator/v10"
	"github.com/riskibarqy/fantasy-cricket/internal/domain/snapshot"
	"github.com/riskibarqy/fantasy-cricket/internal/platform/logging"
	"github.com/riskibarqy/fantasy-cricket/internal/usecase"
)

const maxRequestBodyBytes = 64 << 10

// Assistant is the inbound surface served over HTTP. *usecase.AssistantService implements it.
type Assistant interface {
	RequestAcquisition(ctx context.Context) (snapshot.Snapshot, error)
	Retry(ctx context.Context) (snapshot.Snapshot, error)
	Acquiring() bool
	Current() (snapshot.Snapshot, bool)
	SelectEvent(ctx context.Context, eventID string) (snapshot.Snapshot, error)
	SubmitQuery(ctx context.Context, text string) (string, error)
}

type Handler struct {
	assistant Assistant
	logger    *logging.Logger
	validator *validator.Validate
}

func NewHandler(assistant Assistant, logger *logging.Logger) *Handler {
	if logger == nil {
		logger = logging.Default()
	}

	return &Handler{
		assistant: assistant,
		logger:    logger,
		validator: validator.New(),
	}
}

type selectEventRequest struct {
	EventID string `json:"eventId" validate:"required,max=200"`
}

type queryRequest struct {
	Text string `json:"text" validate:"required,max=2000"`
}

type queryResponse struct {
	Report string `json:"report"`
}

func (h *Handler) Healthz(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.Healthz")
	defer span.End()

	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"status":    "ok",
		"acquiring": h.assistant.Acquiring(),
	})
}

func (h *Handler) RequestAcquisition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RequestAcquisition")
	defer span.End()

	snap, err := h.assistant.RequestAcquisition(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "request acquisition failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snapshotToDTO(snap))
}

func (h *Handler) RetryAcquisition(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.RetryAcquisition")
	defer span.End()

	snap, err := h.assistant.Retry(ctx)
	if err != nil {
		h.logger.ErrorContext(ctx, "retry acquisition failed", "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snapshotToDTO(snap))
}

func (h *Handler) GetSnapshot(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.GetSnapshot")
	defer span.End()

	snap, ok := h.assistant.Current()
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no snapshot published yet", usecase.ErrNotFound))
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snapshotToDTO(snap))
}

func (h *Handler) ListEvents(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.ListEvents")
	defer span.End()

	snap, ok := h.assistant.Current()
	if !ok {
		writeError(ctx, w, fmt.Errorf("%w: no snapshot published yet", usecase.ErrNotFound))
		return
	}

	items := make([]eventDTO, 0, len(snap.Events))
	for _, ev := range snap.Events {
		items = append(items, eventToDTO(ev))
	}
	writeSuccess(ctx, w, http.StatusOK, map[string]any{
		"selectedEventId": snap.Selected.ID,
		"items":           items,
	})
}

func (h *Handler) SelectEvent(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SelectEvent")
	defer span.End()

	var req selectEventRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	snap, err := h.assistant.SelectEvent(ctx, req.EventID)
	if err != nil {
		h.logger.WarnContext(ctx, "select event failed", "event_id", req.EventID, "error", err)
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, snapshotToDTO(snap))
}

func (h *Handler) SubmitQuery(w http.ResponseWriter, r *http.Request) {
	ctx, span := startSpan(r.Context(), "httpapi.Handler.SubmitQuery")
	defer span.End()

	var req queryRequest
	if err := h.decodeRequest(ctx, w, r, &req); err != nil {
		writeError(ctx, w, err)
		return
	}

	report, err := h.assistant.SubmitQuery(ctx, req.Text)
	if err != nil {
		writeError(ctx, w, err)
		return
	}

	writeSuccess(ctx, w, http.StatusOK, queryResponse{Report: report})
}

func (h *Handler) decodeRequest(ctx context.Context, w http.ResponseWriter, r *http.Request, dst any) error {
	decoder := sonic.ConfigDefault.NewDecoder(http.MaxBytesReader(w, r.Body, maxRequestBodyBytes))
	decoder.DisallowUnknownFields()
	if err := decoder.Decode(dst); err != nil {
		return fmt.Errorf("%w: invalid JSON payload: %v", usecase.ErrInvalidInput, err)
	}
	return h.validateRequest(ctx, dst)
}

func (h *Handler) validateRequest(ctx context.Context, payload any) error {
	ctx, span := startSpan(ctx, "httpapi.Handler.validateRequest")
	defer span.End()

	if err := h.validator.StructCtx(ctx, payload); err != nil {
		return fmt.Errorf("%w: validation failed: %v", usecase.ErrInvalidInput, err)
	}

	return nil
}
