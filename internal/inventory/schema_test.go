package inventory

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestValidateAcceptsSeedRecords(t *testing.T) {
	for _, item := range SeedItems() {
		require.Nil(t, Validate(item.Input()), item.ID)
	}
}

func TestValidateRejectsNegativeQuantity(t *testing.T) {
	in := SeedItems()[0].Input()
	in.Quantity = -5

	errs := Validate(in)
	require.Equal(t, "Quantity must be positive", errs["quantity"])
	require.Len(t, errs, 1)
}

func TestValidateMessages(t *testing.T) {
	errs := Validate(NewInput())
	require.Equal(t, "Product is required", errs["productId"])
	require.Equal(t, "Warehouse is required", errs["warehouseId"])
	require.Equal(t, "Location is required", errs["location"])

	in := SeedItems()[1].Input()
	in.Status = "LOST"
	require.Equal(t, "Invalid status", Validate(in)["status"])
}
