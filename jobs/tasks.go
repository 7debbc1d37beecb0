package jobs

import (
	"encoding/json"
	"time"

	"github.com/hibiken/asynq"

	"github.com/odyssey-erp/supplyhub/internal/inventory"
	"github.com/odyssey-erp/supplyhub/internal/orders"
	"github.com/odyssey-erp/supplyhub/internal/suppliers"
)

const (
	// QueueDefault is the default queue name for background jobs.
	QueueDefault = "default"
	// TaskAlertScan recomputes the alert groups of one or more modules.
	TaskAlertScan = "alerts:scan"
)

// Modules lists every module the alert scan understands.
var Modules = []string{inventory.Module, orders.Module, suppliers.Module}

// AlertScanPayload selects the modules to scan. An empty list scans all.
type AlertScanPayload struct {
	Modules     []string  `json:"modules,omitempty"`
	Trigger     string    `json:"trigger"`
	RequestedAt time.Time `json:"requested_at"`
}

func (p AlertScanPayload) modules() []string {
	if len(p.Modules) == 0 {
		return Modules
	}
	return p.Modules
}

// NewAlertScanTask constructs an Asynq task for the alert scan.
func NewAlertScanTask(payload AlertScanPayload) (*asynq.Task, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}
	return asynq.NewTask(TaskAlertScan, body, asynq.Queue(QueueDefault)), nil
}
