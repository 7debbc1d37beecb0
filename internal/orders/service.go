package orders

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"time"

	"github.com/google/uuid"

	"github.com/odyssey-erp/supplyhub/internal/masterdata"
	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// Catalog resolves product references.
type Catalog interface {
	LookupProduct(ctx context.Context, id string) (masterdata.Product, error)
}

// SupplierDirectory resolves supplier references.
type SupplierDirectory interface {
	LookupSupplier(ctx context.Context, id string) (SupplierRef, error)
}

// SupplierDirectoryFunc adapts a function to SupplierDirectory.
type SupplierDirectoryFunc func(ctx context.Context, id string) (SupplierRef, error)

// LookupSupplier calls f.
func (f SupplierDirectoryFunc) LookupSupplier(ctx context.Context, id string) (SupplierRef, error) {
	return f(ctx, id)
}

// Service coordinates purchase order reads and writes.
type Service struct {
	repo      Repository
	catalog   Catalog
	suppliers SupplierDirectory
	events    shared.ChangePublisher
	logger    *slog.Logger
	now       func() time.Time
}

// NewService builds Service. events may be nil.
func NewService(repo Repository, catalog Catalog, suppliers SupplierDirectory, events shared.ChangePublisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, catalog: catalog, suppliers: suppliers, events: events, logger: logger, now: time.Now}
}

// List returns the orders matching filters.
func (s *Service) List(ctx context.Context, filters Filters) ([]Order, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("orders: list: %w", err)
	}
	return Apply(all, filters), nil
}

// Get returns one order.
func (s *Service) Get(ctx context.Context, id string) (Order, error) {
	o, err := s.repo.Get(ctx, id)
	if err != nil {
		return Order{}, fmt.Errorf("orders: get: %w", err)
	}
	return o, nil
}

// Draft returns create-form defaults with the next free order number.
func (s *Service) Draft(ctx context.Context) (Input, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return Input{}, fmt.Errorf("orders: draft: %w", err)
	}
	today := s.now()
	return NewInput(NextOrderNumber(all, today.Year()), today), nil
}

// Create validates input and stores a new order.
func (s *Service) Create(ctx context.Context, in Input) (Order, error) {
	o, err := s.build(ctx, in)
	if err != nil {
		return Order{}, err
	}
	o.ID = uuid.NewString()
	if err := s.repo.Insert(ctx, o); err != nil {
		return Order{}, fmt.Errorf("orders: create: %w", err)
	}
	s.publish(ctx, o.ID, shared.ActionCreated)
	return o, nil
}

// Update validates input and replaces the stored order. The total is
// recomputed from the submitted lines.
func (s *Service) Update(ctx context.Context, id string, in Input) (Order, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return Order{}, fmt.Errorf("orders: update: %w", err)
	}
	o, err := s.build(ctx, in)
	if err != nil {
		return Order{}, err
	}
	o.ID = id
	if err := s.repo.Replace(ctx, o); err != nil {
		return Order{}, fmt.Errorf("orders: update: %w", err)
	}
	s.publish(ctx, id, shared.ActionUpdated)
	return o, nil
}

func (s *Service) build(ctx context.Context, in Input) (Order, error) {
	if err := Validate(in).Err(); err != nil {
		return Order{}, err
	}
	supplier, err := s.suppliers.LookupSupplier(ctx, in.SupplierID)
	if err != nil {
		return Order{}, referenceError(err, "supplierId", "Unknown supplier")
	}
	lines := make([]LineItem, 0, len(in.Items))
	for i, line := range in.Items {
		product, err := s.catalog.LookupProduct(ctx, line.ProductID)
		if err != nil {
			return Order{}, referenceError(err, "items["+strconv.Itoa(i)+"].productId", "Unknown product")
		}
		lines = append(lines, LineItem{Product: product, Quantity: line.Quantity, UnitPrice: line.UnitPrice})
	}
	o := Order{
		OrderNumber:          in.OrderNumber,
		Supplier:             supplier,
		Items:                lines,
		Status:               in.Status,
		OrderDate:            in.OrderDate,
		ExpectedDeliveryDate: in.ExpectedDeliveryDate,
		Notes:                in.Notes,
	}
	o.Recalculate()
	return o, nil
}

func referenceError(err error, field, msg string) error {
	if errors.Is(err, shared.ErrNotFound) {
		return shared.FieldErrors{field: msg}.Err()
	}
	return fmt.Errorf("orders: resolve %s: %w", field, err)
}

// Alerts returns pending and overdue orders.
func (s *Service) Alerts(ctx context.Context) (Alerts, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return Alerts{}, fmt.Errorf("orders: alerts: %w", err)
	}
	return BuildAlerts(all, s.now()), nil
}

// SupplierOptions lists the distinct suppliers with orders, in first-seen order.
func (s *Service) SupplierOptions(ctx context.Context) ([]SupplierRef, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("orders: options: %w", err)
	}
	seen := make(map[string]struct{})
	out := []SupplierRef{}
	for _, o := range all {
		if _, ok := seen[o.Supplier.ID]; ok {
			continue
		}
		seen[o.Supplier.ID] = struct{}{}
		out = append(out, o.Supplier)
	}
	return out, nil
}

func (s *Service) publish(ctx context.Context, id, action string) {
	if s.events == nil {
		return
	}
	evt := shared.ChangeEvent{Module: Module, ID: id, Action: action, At: s.now().UTC()}
	if err := s.events.PublishChange(ctx, evt); err != nil {
		s.logger.Warn("publish order change", slog.String("id", id), slog.Any("error", err))
	}
}
