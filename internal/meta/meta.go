// Package meta publishes display metadata and JSON Schemas of the entity
// shapes so clients can render badges and forms without hard-coding them.
package meta

import (
	"net/http"
	"reflect"

	"github.com/go-chi/chi/v5"
	"github.com/invopop/jsonschema"
	"github.com/shopspring/decimal"

	"github.com/odyssey-erp/supplyhub/internal/inventory"
	"github.com/odyssey-erp/supplyhub/internal/masterdata"
	"github.com/odyssey-erp/supplyhub/internal/orders"
	"github.com/odyssey-erp/supplyhub/internal/platform/httpx"
	"github.com/odyssey-erp/supplyhub/internal/shared"
	"github.com/odyssey-erp/supplyhub/internal/suppliers"
)

// Statuses is the status to badge table of every module.
type Statuses struct {
	Inventory   map[inventory.Status]shared.Badge `json:"inventory"`
	Orders      map[orders.Status]shared.Badge    `json:"orders"`
	Suppliers   map[string]shared.Badge           `json:"suppliers"`
	Performance map[string]shared.BadgeVariant    `json:"performance"`
}

// StatusTable returns the badge tables.
func StatusTable() Statuses {
	return Statuses{
		Inventory:   inventory.StatusBadges,
		Orders:      orders.StatusBadges,
		Suppliers:   suppliers.StatusBadges,
		Performance: suppliers.PerformanceBadges,
	}
}

var entities = map[string]any{
	"product":        masterdata.Product{},
	"warehouse":      masterdata.Warehouse{},
	"inventory":      inventory.Item{},
	"inventory-form": inventory.Input{},
	"order":          orders.Order{},
	"order-form":     orders.Input{},
	"supplier":       suppliers.Supplier{},
	"supplier-form":  suppliers.Input{},
}

// Entities lists the names accepted by Schema.
func Entities() []string {
	return []string{"product", "warehouse", "inventory", "inventory-form", "order", "order-form", "supplier", "supplier-form"}
}

// Schema reflects the JSON Schema of a named entity. Money is a number.
func Schema(name string) (*jsonschema.Schema, bool) {
	v, ok := entities[name]
	if !ok {
		return nil, false
	}
	reflector := jsonschema.Reflector{
		AllowAdditionalProperties: false,
		DoNotReference:            true,
		Mapper: func(t reflect.Type) *jsonschema.Schema {
			if t == reflect.TypeOf(decimal.Decimal{}) {
				return &jsonschema.Schema{Type: "number"}
			}
			return nil
		},
	}
	return reflector.Reflect(v), true
}

// Handler serves metadata routes.
type Handler struct{}

// NewHandler constructs the metadata handler.
func NewHandler() *Handler {
	return &Handler{}
}

// MountRoutes registers metadata routes.
func (h *Handler) MountRoutes(r chi.Router) {
	r.Get("/meta/statuses", h.statuses)
	r.Get("/schema", h.entities)
	r.Get("/schema/{entity}", h.schema)
}

func (h *Handler) statuses(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, StatusTable())
}

func (h *Handler) entities(w http.ResponseWriter, r *http.Request) {
	httpx.JSON(w, http.StatusOK, Entities())
}

func (h *Handler) schema(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "entity")
	s, ok := Schema(name)
	if !ok {
		httpx.Problem(w, http.StatusNotFound, "Not Found", "unknown entity "+name)
		return
	}
	httpx.JSON(w, http.StatusOK, s)
}
