package inventory

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/supplyhub/internal/platform/httpx"
)

// Handler exposes the inventory collection over JSON.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs the inventory handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers inventory routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Route("/inventory", func(r chi.Router) {
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
	items, err := h.service.List(r.Context(), filters)
	if err != nil {
		h.fail(w, "list inventory", err)
		return
	}
	httpx.JSON(w, http.StatusOK, items)
}

func (h *Handler) get(w http.ResponseWriter, r *http.Request) {
	item, err := h.service.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		h.fail(w, "get inventory item", err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *Handler) create(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	item, err := h.service.Create(r.Context(), in)
	if err != nil {
		h.fail(w, "create inventory item", err)
		return
	}
	httpx.JSON(w, http.StatusCreated, item)
}

func (h *Handler) update(w http.ResponseWriter, r *http.Request) {
	var in Input
	if err := httpx.DecodeJSON(r, &in); err != nil {
		httpx.Problem(w, http.StatusBadRequest, "Invalid JSON", err.Error())
		return
	}
	item, err := h.service.Update(r.Context(), chi.URLParam(r, "id"), in)
	if err != nil {
		h.fail(w, "update inventory item", err)
		return
	}
	httpx.JSON(w, http.StatusOK, item)
}

func (h *Handler) alerts(w http.ResponseWriter, r *http.Request) {
	alerts, err := h.service.Alerts(r.Context())
	if err != nil {
		h.fail(w, "inventory alerts", err)
		return
	}
	httpx.JSON(w, http.StatusOK, alerts)
}

func (h *Handler) options(w http.ResponseWriter, r *http.Request) {
	warehouses, err := h.service.WarehouseOptions(r.Context())
	if err != nil {
		h.fail(w, "inventory options", err)
		return
	}
	httpx.JSON(w, http.StatusOK, warehouses)
}

func (h *Handler) fail(w http.ResponseWriter, op string, err error) {
	h.logger.Debug(op, slog.Any("error", err))
	httpx.RespondError(w, err)
}
