package masterdata

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/odyssey-erp/supplyhub/internal/platform/httpx"
)

// Handler serves read-only master data.
type Handler struct {
	logger  *slog.Logger
	service *Service
}

// NewHandler constructs the master data handler.
func NewHandler(logger *slog.Logger, service *Service) *Handler {
	return &Handler{logger: logger, service: service}
}

// MountRoutes registers product and warehouse routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/products", h.listProducts)
	r.Get("/products/{id}", h.getProduct)
	r.Get("/warehouses", h.listWarehouses)
	r.Get("/warehouses/{id}", h.getWarehouse)
}

func (h *Handler) listProducts(w http.ResponseWriter, r *http.Request) {
	products, err := h.service.ListProducts(r.Context())
	if err != nil {
		h.logger.Error("list products", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, products)
}

func (h *Handler) getProduct(w http.ResponseWriter, r *http.Request) {
	product, err := h.service.LookupProduct(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, product)
}

func (h *Handler) listWarehouses(w http.ResponseWriter, r *http.Request) {
	warehouses, err := h.service.ListWarehouses(r.Context())
	if err != nil {
		h.logger.Error("list warehouses", slog.Any("error", err))
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, warehouses)
}

func (h *Handler) getWarehouse(w http.ResponseWriter, r *http.Request) {
	warehouse, err := h.service.LookupWarehouse(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		httpx.RespondError(w, err)
		return
	}
	httpx.JSON(w, http.StatusOK, warehouse)
}
