package inventory

import (
	"net/url"

	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// Filters narrows the inventory list.
type Filters struct {
	Query     string `json:"query"`
	Status    string `json:"status"`
	Warehouse string `json:"warehouse"`
}

// FiltersPatch carries a partial filter update; nil fields are kept.
type FiltersPatch struct {
	Query     *string `json:"query,omitempty"`
	Status    *string `json:"status,omitempty"`
	Warehouse *string `json:"warehouse,omitempty"`
}

// DefaultFilters matches every item.
func DefaultFilters() Filters {
	return Filters{Status: shared.FilterAll, Warehouse: shared.FilterAll}
}

// Merge applies patch over f.
func (f Filters) Merge(p FiltersPatch) Filters {
	return Filters{
		Query:     shared.Merge(f.Query, p.Query),
		Status:    shared.Merge(f.Status, p.Status),
		Warehouse: shared.Merge(f.Warehouse, p.Warehouse),
	}
}

// IsEmpty reports whether f matches everything.
func (f Filters) IsEmpty() bool {
	return f.Query == "" && shared.IsAll(f.Status) && shared.IsAll(f.Warehouse)
}

// Match searches SKU, product name and lot number; status and warehouse id
// compare exactly.
func (f Filters) Match(item Item) bool {
	return f.match(shared.NewSearchTerm(f.Query), item)
}

func (f Filters) match(term shared.SearchTerm, item Item) bool {
	return term.MatchAny(item.Product.SKU, item.Product.Name, shared.Deref(item.LotNumber)) &&
		shared.MatchCategory(f.Status, string(item.Status)) &&
		shared.MatchCategory(f.Warehouse, item.Warehouse.ID)
}

// Apply returns the matching items in their original order.
func Apply(items []Item, f Filters) []Item {
	if f.IsEmpty() {
		return items
	}
	term := shared.NewSearchTerm(f.Query)
	out := make([]Item, 0, len(items))
	for _, item := range items {
		if f.match(term, item) {
			out = append(out, item)
		}
	}
	return out
}

// ParsePatch reads q, status and warehouse from query parameters.
func ParsePatch(values url.Values) FiltersPatch {
	var p FiltersPatch
	if values.Has("q") {
		p.Query = shared.StringPtr(values.Get("q"))
	}
	if values.Has("status") {
		p.Status = shared.StringPtr(values.Get("status"))
	}
	if values.Has("warehouse") {
		p.Warehouse = shared.StringPtr(values.Get("warehouse"))
	}
	return p
}
