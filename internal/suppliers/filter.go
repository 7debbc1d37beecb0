package suppliers

import (
	"net/url"

	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// Filters narrows the supplier list.
type Filters struct {
	Query       string `json:"query"`
	Status      string `json:"status"`
	Location    string `json:"location"`
	Performance string `json:"performance"`
}

// FiltersPatch carries a partial filter update; nil fields are kept.
type FiltersPatch struct {
	Query       *string `json:"query,omitempty"`
	Status      *string `json:"status,omitempty"`
	Location    *string `json:"location,omitempty"`
	Performance *string `json:"performance,omitempty"`
}

// DefaultFilters matches every supplier.
func DefaultFilters() Filters {
	return Filters{Status: shared.FilterAll, Location: shared.FilterAll, Performance: shared.FilterAll}
}

// Merge applies patch over f.
func (f Filters) Merge(p FiltersPatch) Filters {
	return Filters{
		Query:       shared.Merge(f.Query, p.Query),
		Status:      shared.Merge(f.Status, p.Status),
		Location:    shared.Merge(f.Location, p.Location),
		Performance: shared.Merge(f.Performance, p.Performance),
	}
}

// IsEmpty reports whether f matches everything.
func (f Filters) IsEmpty() bool {
	return f.Query == "" && shared.IsAll(f.Status) && shared.IsAll(f.Location) && shared.IsAll(f.Performance)
}

// Match searches company name, contact name and email. Location compares
// against the state.
func (f Filters) Match(s Supplier) bool {
	return f.match(shared.NewSearchTerm(f.Query), s)
}

func (f Filters) match(term shared.SearchTerm, s Supplier) bool {
	return term.MatchAny(s.CompanyName, s.ContactName, s.Email) &&
		shared.MatchCategory(f.Status, s.Status()) &&
		shared.MatchCategory(f.Location, s.State) &&
		shared.MatchCategory(f.Performance, PerformanceBucket(s.PerformanceRating))
}

// Apply returns the matching suppliers in their original order.
func Apply(all []Supplier, f Filters) []Supplier {
	if f.IsEmpty() {
		return all
	}
	term := shared.NewSearchTerm(f.Query)
	out := make([]Supplier, 0, len(all))
	for _, s := range all {
		if f.match(term, s) {
			out = append(out, s)
		}
	}
	return out
}

// ParsePatch reads q, status, location and performance from query parameters.
func ParsePatch(values url.Values) FiltersPatch {
	var p FiltersPatch
	if values.Has("q") {
		p.Query = shared.StringPtr(values.Get("q"))
	}
	if values.Has("status") {
		p.Status = shared.StringPtr(values.Get("status"))
	}
	if values.Has("location") {
		p.Location = shared.StringPtr(values.Get("location"))
	}
	if values.Has("performance") {
		p.Performance = shared.StringPtr(values.Get("performance"))
	}
	return p
}
