package orders

import (
	"math/rand"
	"net/url"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/supplyhub/internal/shared"
)

func filterFixture() []Order {
	global := SupplierRef{ID: "sup1", Name: "Global Electronics Ltd."}
	tech := SupplierRef{ID: "sup2", Name: "TechParts Inc."}
	return []Order{
		{ID: "ord1", OrderNumber: "ORD-2024-001", Supplier: global, Status: StatusPending},
		{ID: "ord2", OrderNumber: "ORD-2024-002", Supplier: tech, Status: StatusInTransit},
		{ID: "ord3", OrderNumber: "ORD-2024-003", Supplier: global, Status: StatusDelivered},
		{ID: "ord4", OrderNumber: "ORD-2023-104", Supplier: tech, Status: StatusPending},
		{ID: "ord5", OrderNumber: "ORD-2024-005", Supplier: SupplierRef{ID: "sup3"}, Status: StatusCancelled},
	}
}

func orderIDs(orders []Order) []string {
	out := make([]string, 0, len(orders))
	for _, o := range orders {
		out = append(out, o.ID)
	}
	return out
}

func TestApplyOrdersEmptyFiltersReturnsCollection(t *testing.T) {
	all := filterFixture()
	require.Equal(t, all, Apply(all, DefaultFilters()))
	require.Equal(t, all, Apply(all, Filters{}))
}

func TestApplyOrders(t *testing.T) {
	all := filterFixture()
	cases := []struct {
		name    string
		filters Filters
		want    []string
	}{
		{"order number", Filters{Query: "2023"}, []string{"ord4"}},
		{"order number case", Filters{Query: "ord-2024-00"}, []string{"ord1", "ord2", "ord3", "ord5"}},
		{"supplier name", Filters{Query: "techparts"}, []string{"ord2", "ord4"}},
		{"absent supplier name", Filters{Query: "ltd", Supplier: "sup3"}, []string{}},
		{"supplier id", Filters{Supplier: "sup1"}, []string{"ord1", "ord3"}},
		{"supplier id is exact", Filters{Supplier: "sup"}, []string{}},
		{"status", Filters{Status: string(StatusPending)}, []string{"ord1", "ord4"}},
		{"status and supplier", Filters{Status: string(StatusPending), Supplier: "sup2"}, []string{"ord4"}},
		{"query and status", Filters{Query: "global", Status: string(StatusDelivered), Supplier: shared.FilterAll}, []string{"ord3"}},
		{"unknown status", Filters{Status: "LOST"}, []string{}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			require.Equal(t, tc.want, orderIDs(Apply(all, tc.filters)))
		})
	}
}

func TestApplyOrdersKeepsOrderedSubset(t *testing.T) {
	all := filterFixture()
	rng := rand.New(rand.NewSource(11))
	queries := []string{"", "ord", "2024", "GLOBAL", "inc", "zzz"}
	statuses := []string{shared.FilterAll, "UNKNOWN"}
	for _, s := range Statuses {
		statuses = append(statuses, string(s))
	}
	supplierIDs := []string{shared.FilterAll, "sup1", "sup2", "sup3", "sup9"}

	for i := 0; i < 200; i++ {
		f := Filters{
			Query:    queries[rng.Intn(len(queries))],
			Status:   statuses[rng.Intn(len(statuses))],
			Supplier: supplierIDs[rng.Intn(len(supplierIDs))],
		}
		got := Apply(all, f)
		next := 0
		for _, o := range got {
			require.True(t, f.Match(o), "filters %+v", f)
			for next < len(all) && all[next].ID != o.ID {
				next++
			}
			require.Less(t, next, len(all), "filters %+v reordered %v", f, orderIDs(got))
			next++
		}
	}
}

func TestOrderFiltersMergeAndParse(t *testing.T) {
	f := DefaultFilters().Merge(ParsePatch(url.Values{"q": {"tech"}, "supplier": {"sup2"}, "warehouse": {"wh1"}}))
	require.Equal(t, Filters{Query: "tech", Status: shared.FilterAll, Supplier: "sup2"}, f)

	f = f.Merge(FiltersPatch{Status: shared.StringPtr(string(StatusPending))})
	require.Equal(t, []string{"ord4"}, orderIDs(Apply(filterFixture(), f)))
}
