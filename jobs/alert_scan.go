package jobs

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"sort"
	"strings"
	"time"

	"github.com/hibiken/asynq"

	"github.com/odyssey-erp/supplyhub/internal/dashboard"
	"github.com/odyssey-erp/supplyhub/internal/inventory"
	jobmetrics "github.com/odyssey-erp/supplyhub/internal/jobs"
	"github.com/odyssey-erp/supplyhub/internal/notify"
	"github.com/odyssey-erp/supplyhub/internal/orders"
	"github.com/odyssey-erp/supplyhub/internal/suppliers"
)

// AlertCounts maps an alert kind (e.g. "lowStock") to the number of records in it.
type AlertCounts map[string]int

// Total sums every kind.
func (c AlertCounts) Total() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Summary renders the counts as "2 expiring, 3 lowStock", sorted by kind.
func (c AlertCounts) Summary() string {
	kinds := make([]string, 0, len(c))
	for kind := range c {
		kinds = append(kinds, kind)
	}
	sort.Strings(kinds)
	parts := make([]string, 0, len(kinds))
	for _, kind := range kinds {
		parts = append(parts, fmt.Sprintf("%d %s", c[kind], kind))
	}
	return strings.Join(parts, ", ")
}

// AlertScanner reports the current alert counts of a module.
type AlertScanner interface {
	ScanAlerts(ctx context.Context, module string) (AlertCounts, error)
}

// DashboardScanner reads alert groups through the dashboard query cache,
// dropping the cached copy first so every scan sees fresh data.
type DashboardScanner struct {
	Deps dashboard.Deps
}

// ScanAlerts implements AlertScanner.
func (s DashboardScanner) ScanAlerts(ctx context.Context, module string) (AlertCounts, error) {
	if err := s.Deps.Queries.Invalidate(ctx, dashboard.AlertsKey(module)); err != nil {
		return nil, err
	}
	switch module {
	case inventory.Module:
		res := dashboard.InventoryAlerts(ctx, s.Deps)
		if res.Err != nil {
			return nil, res.Err
		}
		return AlertCounts{"lowStock": len(res.Data.LowStock), "expiring": len(res.Data.Expiring)}, nil
	case orders.Module:
		res := dashboard.OrderAlerts(ctx, s.Deps)
		if res.Err != nil {
			return nil, res.Err
		}
		return AlertCounts{"pending": len(res.Data.Pending), "delayed": len(res.Data.Delayed)}, nil
	case suppliers.Module:
		res := dashboard.SupplierAlerts(ctx, s.Deps)
		if res.Err != nil {
			return nil, res.Err
		}
		return AlertCounts{"lowPerformance": len(res.Data.LowPerformance), "inactive": len(res.Data.Inactive)}, nil
	}
	return nil, fmt.Errorf("jobs: unknown module %q", module)
}

// AlertScanJob walks the requested modules and raises a notification for
// each one with open alerts.
type AlertScanJob struct {
	Scanner  AlertScanner
	Notifier notify.Notifier
	Logger   *slog.Logger
	Metrics  *jobmetrics.Metrics
	clock    func() time.Time
}

// NewAlertScanJob initialises the alert scan handler.
func NewAlertScanJob(scanner AlertScanner, notifier notify.Notifier, logger *slog.Logger, metrics *jobmetrics.Metrics) *AlertScanJob {
	return &AlertScanJob{
		Scanner:  scanner,
		Notifier: notifier,
		Logger:   logger,
		Metrics:  metrics,
		clock: func() time.Time {
			return time.Now().UTC()
		},
	}
}

// Handle executes the alert scan.
func (j *AlertScanJob) Handle(ctx context.Context, t *asynq.Task) (resultErr error) {
	if j == nil || j.Scanner == nil {
		return errors.New("alert scan: handler not configured")
	}
	var payload AlertScanPayload
	if err := json.Unmarshal(t.Payload(), &payload); err != nil {
		return fmt.Errorf("alert scan: decode payload: %w", asynq.SkipRetry)
	}

	start := j.clock()
	tracker := j.Metrics.Track(TaskAlertScan)
	defer func() {
		resultErr = tracker.End(resultErr)
	}()

	logger := j.logger().With(slog.String("trigger", payload.Trigger))
	var errs []error
	for _, module := range payload.modules() {
		counts, err := j.Scanner.ScanAlerts(ctx, module)
		if err != nil {
			logger.Error("alert scan failed", slog.String("module", module), slog.Any("error", err))
			errs = append(errs, fmt.Errorf("%s: %w", module, err))
			continue
		}
		for kind, n := range counts {
			j.Metrics.SetAlerts(module, kind, n)
		}
		if counts.Total() == 0 {
			continue
		}
		logger.Info("open alerts", slog.String("module", module), slog.Int("total", counts.Total()))
		if j.Notifier != nil {
			j.Notifier.Notify(ctx, notify.Notification{
				Title:       alertTitle(module),
				Description: counts.Summary(),
			})
		}
	}
	logger.Info("completed alert scan", slog.Duration("duration", j.clock().Sub(start)))
	return errors.Join(errs...)
}

func alertTitle(module string) string {
	return strings.ToUpper(module[:1]) + module[1:] + " alerts"
}

func (j *AlertScanJob) logger() *slog.Logger {
	if j.Logger == nil {
		return slog.Default()
	}
	return j.Logger
}
