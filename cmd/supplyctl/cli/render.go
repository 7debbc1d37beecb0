package cli

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/odyssey-erp/supplyhub/internal/inventory"
	"github.com/odyssey-erp/supplyhub/internal/orders"
	"github.com/odyssey-erp/supplyhub/internal/shared"
	"github.com/odyssey-erp/supplyhub/internal/suppliers"
)

func writeTable[R any](w io.Writer, header []string, rows []R, row func(R) []string) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	_, _ = fmt.Fprintln(tw, strings.Join(header, "\t"))
	for _, r := range rows {
		_, _ = fmt.Fprintln(tw, strings.Join(row(r), "\t"))
	}
	_ = tw.Flush()
}

// InventoryTable lists items with their badge label.
var InventoryTable = Table[inventory.Item]{
	Header: []string{"ID", "SKU", "PRODUCT", "QTY", "WAREHOUSE", "LOCATION", "STATUS"},
	Row: func(i inventory.Item) []string {
		return []string{
			i.ID, i.Product.SKU, i.Product.Name, strconv.Itoa(i.Quantity),
			i.Warehouse.Name, i.Location, inventory.StatusBadges[i.Status].Label,
		}
	},
}

// OrderTable lists orders with their formatted total.
var OrderTable = Table[orders.Order]{
	Header: []string{"ID", "NUMBER", "SUPPLIER", "STATUS", "ORDERED", "EXPECTED", "TOTAL"},
	Row: func(o orders.Order) []string {
		return []string{
			o.ID, o.OrderNumber, o.Supplier.Name, orders.StatusBadges[o.Status].Label,
			o.OrderDate, o.ExpectedDeliveryDate, shared.FormatCurrency(o.TotalAmount),
		}
	},
}

// SupplierTable lists suppliers with their performance badge.
var SupplierTable = Table[suppliers.Supplier]{
	Header: []string{"ID", "COMPANY", "CONTACT", "LOCATION", "RATING", "STATUS"},
	Row: func(s suppliers.Supplier) []string {
		return []string{
			s.ID, s.CompanyName, s.ContactName, s.City + ", " + s.State,
			suppliers.PerformanceBadge(s.PerformanceRating).Label, suppliers.StatusBadges[s.Status()].Label,
		}
	},
}
