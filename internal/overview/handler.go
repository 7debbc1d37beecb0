package overview

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/supplyhub/internal/platform/httpx"
)

// Handler serves the dashboard summary.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs the summary handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers the summary route.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/dashboard", h.summary)
}

func (h *Handler) summary(w http.ResponseWriter, r *http.Request) {
	sum, err := h.service.Summary(r.Context())
	if err != nil {
		h.logger.Error("dashboard summary", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sum)
}
