package handler

import (
	"context"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"tally/internal/receipt"
	dErrors "tally/pkg/domain-errors"
	"tally/pkg/platform/httputil"
	"tally/pkg/requestcontext"
)

// Service defines the interface for receipt operations.
type Service interface {
	Process(ctx context.Context, rec receipt.Receipt) (string, error)
	Points(ctx context.Context, id string) (int64, error)
}

// Handler wires receipt endpoints to the receipt service. It should delegate
// without embedding business logic so transport concerns remain isolated.
type Handler struct {
	service Service
	logger  *slog.Logger
}

// New constructs a receipt handler with its dependencies.
func New(service Service, logger *slog.Logger) *Handler {
	return &Handler{
		service: service,
		logger:  logger,
	}
}

// Register mounts receipt endpoints on the router.
func (h *Handler) Register(r chi.Router) {
	r.Post("/receipts/process", h.HandleProcess)
	r.Get("/receipts/{id}/points", h.HandlePoints)
}

// HandleProcess handles POST /receipts/process requests.
func (h *Handler) HandleProcess(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)

	req, ok := httputil.DecodeAndPrepare[ProcessReceiptRequest](w, r, h.logger, ctx, requestID)
	if !ok {
		return
	}

	id, err := h.service.Process(ctx, req.ToReceipt())
	if err != nil {
		if dErrors.Is(err, dErrors.CodeBadRequest) {
			h.logger.WarnContext(ctx, "receipt rejected",
				"request_id", requestID,
				"error", err.Error(),
			)
		} else {
			h.logger.ErrorContext(ctx, "failed to process receipt",
				"request_id", requestID,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "receipt processed",
		"request_id", requestID,
		"receipt_id", id,
	)
	httputil.WriteJSON(w, http.StatusCreated, ProcessResponse{ID: id})
}

// HandlePoints handles GET /receipts/{id}/points requests.
func (h *Handler) HandlePoints(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	requestID := requestcontext.RequestID(ctx)
	id := chi.URLParam(r, "id")

	points, err := h.service.Points(ctx, id)
	if err != nil {
		if dErrors.Is(err, dErrors.CodeNotFound) {
			h.logger.WarnContext(ctx, "points query for unknown receipt",
				"request_id", requestID,
				"receipt_id", id,
			)
		} else {
			h.logger.ErrorContext(ctx, "failed to compute points",
				"request_id", requestID,
				"receipt_id", id,
				"error", err,
			)
		}
		httputil.WriteError(w, err)
		return
	}

	h.logger.InfoContext(ctx, "points computed",
		"request_id", requestID,
		"receipt_id", id,
		"points", points,
	)
	httputil.WriteJSON(w, http.StatusOK, PointsResponse{Points: points})
}
