package dashboard

import (
	"strings"

	"github.com/odyssey-erp/supplyhub/internal/inventory"
	"github.com/odyssey-erp/supplyhub/internal/notify"
	"github.com/odyssey-erp/supplyhub/internal/orders"
	"github.com/odyssey-erp/supplyhub/internal/query"
	"github.com/odyssey-erp/supplyhub/internal/suppliers"
)

// FailureMessage is the notification shown when loading key fails. Pass it
// to query.WithFailureMessage.
func FailureMessage(key query.Key) notify.Notification {
	module := strings.TrimSuffix(key.Module, "/alerts")
	if module != key.Module {
		return notify.Failure("Failed to load " + module + " alerts. Please try again.")
	}
	switch module {
	case inventory.Module:
		if key.ID != "" {
			return notify.Failure("Failed to load inventory item. Please try again.")
		}
		return notify.Failure("Failed to load inventory data. Please try again.")
	case orders.Module:
		if key.ID != "" {
			return notify.Failure("Failed to load order data. Please try again.")
		}
		return notify.Failure("Failed to load orders data. Please try again.")
	case suppliers.Module:
		if key.ID != "" {
			return notify.Failure("Failed to load supplier details. Please try again later.")
		}
		return notify.Failure("Failed to load suppliers. Please try again later.")
	}
	return notify.Failure("Failed to load " + module + ". Please try again.")
}
