package suppliers

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/supplyhub/internal/platform/httpx"
)

// Handler exposes the supplier collection over JSON.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs the supplier handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers supplier routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/suppliers", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/alerts", h.alerts)
		r.Get("/options", h.options)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filters := DefaultFilters().Merge(ParsePatch(r.URL.Query()))
	all, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error("list suppliers", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, all)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	sup, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sup)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	sup, err := h.service.Create(r.Context(), in)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, sup)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	sup, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, sup)
}

func (h *Handler) alerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.service.Alerts(r.Context())
	if err != nil {
		h.logger.Error("supplier alerts", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, alerts)
}

func (h *Handler) options(w http.ResponseWriter, r *http.Request) {
	states, err := h.service.StateOptions(r.Context())
	if err != nil {
		h.logger.Error("supplier options", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, states)
}
