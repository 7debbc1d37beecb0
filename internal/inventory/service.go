package inventory

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/odyssey-erp/supplyhub/internal/masterdata"
	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// Catalog resolves product and warehouse references.
type Catalog interface {
	LookupProduct(ctx context.Context, id string) (masterdata.Product, error)
	LookupWarehouse(ctx context.Context, id string) (masterdata.Warehouse, error)
}

// Service coordinates inventory reads and writes.
type Service struct {
	repo    Repository
	catalog Catalog
	events  shared.ChangePublisher
	logger  *slog.Logger
	now     func() time.Time
}

// NewService builds Service. events may be nil.
func NewService(repo Repository, catalog Catalog, events shared.ChangePublisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, catalog: catalog, events: events, logger: logger, now: time.Now}
}

// List returns the items matching filters.
func (s *Service) List(ctx context.Context, filters Filters) ([]Item, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory: list: %w", err)
	}
	return Apply(items, filters), nil
}

// Get returns one item.
func (s *Service) Get(ctx context.Context, id string) (Item, error) {
	item, err := s.repo.Get(ctx, id)
	if err != nil {
		return Item{}, fmt.Errorf("inventory: get: %w", err)
	}
	return item, nil
}

// Create validates input and stores a new item.
func (s *Service) Create(ctx context.Context, in Input) (Item, error) {
	item, err := s.build(ctx, in)
	if err != nil {
		return Item{}, err
	}
	item.ID = uuid.NewString()
	if err := s.repo.Insert(ctx, item); err != nil {
		return Item{}, fmt.Errorf("inventory: create: %w", err)
	}
	s.publish(ctx, item.ID, shared.ActionCreated, item.LastUpdated)
	return item, nil
}

// Update validates input and replaces the stored item. Submitting the
// current values again only moves LastUpdated.
func (s *Service) Update(ctx context.Context, id string, in Input) (Item, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return Item{}, fmt.Errorf("inventory: update: %w", err)
	}
	item, err := s.build(ctx, in)
	if err != nil {
		return Item{}, err
	}
	item.ID = id
	if err := s.repo.Replace(ctx, item); err != nil {
		return Item{}, fmt.Errorf("inventory: update: %w", err)
	}
	s.publish(ctx, id, shared.ActionUpdated, item.LastUpdated)
	return item, nil
}

func (s *Service) build(ctx context.Context, in Input) (Item, error) {
	if err := Validate(in).Err(); err != nil {
		return Item{}, err
	}
	product, err := s.catalog.LookupProduct(ctx, in.ProductID)
	if err != nil {
		return Item{}, referenceError(err, "productId", "Unknown product")
	}
	warehouse, err := s.catalog.LookupWarehouse(ctx, in.WarehouseID)
	if err != nil {
		return Item{}, referenceError(err, "warehouseId", "Unknown warehouse")
	}
	return Item{
		Quantity:    in.Quantity,
		Location:    in.Location,
		Status:      in.Status,
		ExpiryDate:  in.ExpiryDate,
		LotNumber:   in.LotNumber,
		Product:     product,
		Warehouse:   warehouse,
		LastUpdated: s.now().UTC(),
	}, nil
}

func referenceError(err error, field, msg string) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.FieldErrors{field: msg}.Err()
	}
	return fmt.Errorf("inventory: resolve %s: %w", field, err)
}

// Alerts returns low stock items and items expiring within ExpiryWindow.
func (s *Service) Alerts(ctx context.Context) (Alerts, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return Alerts{}, fmt.Errorf("inventory: alerts: %w", err)
	}
	return BuildAlerts(items, s.now()), nil
}

// BuildAlerts classifies items relative to now.
func BuildAlerts(items []Item, now time.Time) Alerts {
	alerts := Alerts{LowStock: []Item{}, Expiring: []Item{}}
	horizon := now.Add(ExpiryWindow)
	for _, item := range items {
		if item.Quantity < LowStockThreshold {
			alerts.LowStock = append(alerts.LowStock, item)
		}
		if item.ExpiresBefore(horizon) {
			alerts.Expiring = append(alerts.Expiring, item)
		}
	}
	return alerts
}

// WarehouseOptions lists the distinct warehouses holding stock, in first-seen order.
func (s *Service) WarehouseOptions(ctx context.Context) ([]masterdata.Warehouse, error) {
	items, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("inventory: options: %w", err)
	}
	seen := make(map[string]struct{})
	out := []masterdata.Warehouse{}
	for _, item := range items {
		if _, ok := seen[item.Warehouse.ID]; ok {
			continue
		}
		seen[item.Warehouse.ID] = struct{}{}
		out = append(out, item.Warehouse)
	}
	return out, nil
}

// TotalValue sums quantity × product price.
func TotalValue(items []Item) decimal.Decimal {
	total := decimal.Zero
	for _, item := range items {
		total = total.Add(item.Product.Price.Mul(decimal.NewFromInt(int64(item.Quantity))))
	}
	return total
}
