package orders

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/supplyhub/internal/platform/httpx"
)

// Handler exposes purchase orders over JSON.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs the order handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers order routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/orders", func(r chi.Router) {
		r.Get("/", h.list)
		r.Post("/", h.create)
		r.Get("/alerts", h.alerts)
		r.Get("/options", h.options)
		r.Get("/draft", h.draft)
		r.Get("/{id}", h.get)
		r.Put("/{id}", h.update)
	})
}

func (h *Handler) list(w http.ResponseWriter, r *http.Request) {
	filters := DefaultFilters().Merge(ParsePatch(r.URL.Query()))
	all, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.logger.Error("list orders", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, all)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	o, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, o)
}

func (h *Handler) draft(w http.ResponseWriter, r *http.Request) {
	in, err := h.service.Draft(r.Context())
	if err != nil {
		h.logger.Error("order draft", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, in)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	o, err := h.service.Create(r.Context(), in)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusCreated, o)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	o, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, o)
}

func (h *Handler) alerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.service.Alerts(r.Context())
	if err != nil {
		h.logger.Error("order alerts", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, alerts)
}

func (h *Handler) options(w http.ResponseWriter, r *http.Request) {
	refs, err := h.service.SupplierOptions(r.Context())
	if err != nil {
		h.logger.Error("order options", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, refs)
}
