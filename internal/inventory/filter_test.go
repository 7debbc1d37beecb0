package inventory

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/odyssey-erp/supplyhub/internal/shared"
)

func TestApplyEmptyFiltersReturnsCollection(t *testing.T) {
	items := SeedItems()
	require.Equal(t, items, Apply(items, DefaultFilters()))
	require.Equal(t, items, Apply(items, Filters{}))
}

func TestApplyKeepsOrderedSubset(t *testing.T) {
	items := SeedItems()
	rng := rand.New(rand.NewSource(7))
	queries := []string{"", "sku", "SENSOR", "lot-2024", "board", "zzz", "00"}
	statuses := append([]string{shared.FilterAll, "UNKNOWN"}, statusStrings()...)
	warehouses := []string{shared.FilterAll, "wh1", "wh2", "wh9"}

	for i := 0; i < 200; i++ {
		f := Filters{
			Query:     queries[rng.Intn(len(queries))],
			Status:    statuses[rng.Intn(len(statuses))],
			Warehouse: warehouses[rng.Intn(len(warehouses))],
		}
		got := Apply(items, f)
		require.True(t, isOrderedSubset(items, got), "filters %+v", f)
		for _, item := range got {
			require.True(t, f.Match(item))
		}
	}
}

func TestScenarioStatusFilterExcludesAvailableItem(t *testing.T) {
	items := SeedItems()
	f := DefaultFilters()
	require.Contains(t, ids(Apply(items, f)), "inv1")

	f = f.Merge(FiltersPatch{Status: shared.StringPtr(string(StatusReserved))})
	got := Apply(items, f)
	require.NotContains(t, ids(got), "inv1")
	require.Equal(t, []string{"inv2"}, ids(got))
}

func TestSearchFields(t *testing.T) {
	items := SeedItems()

	require.Equal(t, []string{"inv3"}, ids(Apply(items, Filters{Query: "steel"})))
	require.Equal(t, []string{"inv4"}, ids(Apply(items, Filters{Query: "lot-2023"})))
	require.Equal(t, []string{"inv5"}, ids(Apply(items, Filters{Query: "sku-005"})))

	noLot := items[0]
	noLot.LotNumber = nil
	require.False(t, Filters{Query: "LOT-2024-001"}.Match(noLot))
}

func TestCombinedFilters(t *testing.T) {
	items := SeedItems()
	f := Filters{Query: "sku", Status: shared.FilterAll, Warehouse: "wh1"}
	require.Equal(t, []string{"inv1", "inv3", "inv5"}, ids(Apply(items, f)))

	f.Status = string(StatusDamaged)
	require.Equal(t, []string{"inv3"}, ids(Apply(items, f)))
}

func TestMergeKeepsUnspecifiedFields(t *testing.T) {
	f := DefaultFilters().Merge(FiltersPatch{Query: shared.StringPtr("board")})
	f = f.Merge(FiltersPatch{Warehouse: shared.StringPtr("wh2")})
	require.Equal(t, Filters{Query: "board", Status: shared.FilterAll, Warehouse: "wh2"}, f)
}

func statusStrings() []string {
	out := make([]string, 0, len(Statuses))
	for _, s := range Statuses {
		out = append(out, string(s))
	}
	return out
}

func ids(items []Item) []string {
	out := make([]string, 0, len(items))
	for _, item := range items {
		out = append(out, item.ID)
	}
	return out
}

func isOrderedSubset(all, sub []Item) bool {
	i := 0
	for _, item := range sub {
		for i < len(all) && all[i].ID != item.ID {
			i++
		}
		if i == len(all) {
			return false
		}
		i++
	}
	return true
}
