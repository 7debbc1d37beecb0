package orders

import (
	"net/url"

	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// Filters narrows the order list.
type Filters struct {
	Query    string `json:"query"`
	Status   string `json:"status"`
	Supplier string `json:"supplier"`
}

// FiltersPatch carries a partial filter update; nil fields are kept.
type FiltersPatch struct {
	Query    *string `json:"query,omitempty"`
	Status   *string `json:"status,omitempty"`
	Supplier *string `json:"supplier,omitempty"`
}

// DefaultFilters matches every order.
func DefaultFilters() Filters {
	return Filters{Status: shared.FilterAll, Supplier: shared.FilterAll}
}

// Merge applies patch over f.
func (f Filters) Merge(p FiltersPatch) Filters {
	return Filters{
		Query:    shared.Merge(f.Query, p.Query),
		Status:   shared.Merge(f.Status, p.Status),
		Supplier: shared.Merge(f.Supplier, p.Supplier),
	}
}

// IsEmpty reports whether f matches everything.
func (f Filters) IsEmpty() bool {
	return f.Query == "" && shared.IsAll(f.Status) && shared.IsAll(f.Supplier)
}

// Match searches order number and supplier name; supplier compares by id.
func (f Filters) Match(o Order) bool {
	return f.match(shared.NewSearchTerm(f.Query), o)
}

func (f Filters) match(term shared.SearchTerm, o Order) bool {
	return term.MatchAny(o.OrderNumber, o.Supplier.Name) &&
		shared.MatchCategory(f.Status, string(o.Status)) &&
		shared.MatchCategory(f.Supplier, o.Supplier.ID)
}

// Apply returns the matching orders in their original order.
func Apply(all []Order, f Filters) []Order {
	if f.IsEmpty() {
		return all
	}
	term := shared.NewSearchTerm(f.Query)
	out := make([]Order, 0, len(all))
	for _, o := range all {
		if f.match(term, o) {
			out = append(out, o)
		}
	}
	return out
}

// ParsePatch reads q, status and supplier from query parameters.
func ParsePatch(values url.Values) FiltersPatch {
	var p FiltersPatch
	if values.Has("q") {
		p.Query = shared.StringPtr(values.Get("q"))
	}
	if values.Has("status") {
		p.Status = shared.StringPtr(values.Get("status"))
	}
	if values.Has("supplier") {
		p.Supplier = shared.StringPtr(values.Get("supplier"))
	}
	return p
}
