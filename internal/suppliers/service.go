package suppliers

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/odyssey-erp/supplyhub/internal/shared"
)

// Service coordinates supplier reads and writes.
type Service struct {
	repo   Repository
	events shared.ChangePublisher
	logger *slog.Logger
	now    func() time.Time
}

// NewService builds Service. events may be nil.
func NewService(repo Repository, events shared.ChangePublisher, logger *slog.Logger) *Service {
	if logger == nil {
		logger = slog.Default()
	}
	return &Service{repo: repo, events: events, logger: logger, now: time.Now}
}

// List returns the suppliers matching filters.
func (s *Service) List(ctx context.Context, filters Filters) ([]Supplier, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("suppliers: list: %w", err)
	}
	return Apply(all, filters), nil
}

// Get returns one supplier.
func (s *Service) Get(ctx context.Context, id string) (Supplier, error) {
	sup, err := s.repo.Get(ctx, id)
	if err != nil {
		return Supplier{}, fmt.Errorf("suppliers: get: %w", err)
	}
	return sup, nil
}

// Create validates input and stores a new supplier.
func (s *Service) Create(ctx context.Context, in Input) (Supplier, error) {
	if err := Validate(in).Err(); err != nil {
		return Supplier{}, err
	}
	sup := s.build(uuid.NewString(), in)
	if err := s.repo.Insert(ctx, sup); err != nil {
		return Supplier{}, fmt.Errorf("suppliers: create: %w", err)
	}
	s.publish(ctx, sup.ID, shared.ActionCreated, sup.LastUpdated)
	return sup, nil
}

// Update validates input and replaces the stored supplier.
func (s *Service) Update(ctx context.Context, id string, in Input) (Supplier, error) {
	if _, err := s.repo.Get(ctx, id); err != nil {
		return Supplier{}, fmt.Errorf("suppliers: update: %w", err)
	}
	if err := Validate(in).Err(); err != nil {
		return Supplier{}, err
	}
	sup := s.build(id, in)
	if err := s.repo.Replace(ctx, sup); err != nil {
		return Supplier{}, fmt.Errorf("suppliers: update: %w", err)
	}
	s.publish(ctx, id, shared.ActionUpdated, sup.LastUpdated)
	return sup, nil
}

func (s *Service) build(id string, in Input) Supplier {
	return Supplier{
		ID:                id,
		CompanyName:       in.CompanyName,
		ContactName:       in.ContactName,
		Email:             in.Email,
		Phone:             in.Phone,
		Address:           in.Address,
		City:              in.City,
		State:             in.State,
		Country:           in.Country,
		PostalCode:        in.PostalCode,
		TaxID:             in.TaxID,
		PaymentTerms:      in.PaymentTerms,
		LeadTime:          in.LeadTime,
		PerformanceRating: in.PerformanceRating,
		IsActive:          in.IsActive,
		Notes:             in.Notes,
		LastUpdated:       s.now().UTC(),
	}
}

// Alerts returns low-rated and inactive suppliers.
func (s *Service) Alerts(ctx context.Context) (Alerts, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return Alerts{}, fmt.Errorf("suppliers: alerts: %w", err)
	}
	return BuildAlerts(all), nil
}

// StateOptions lists the distinct states suppliers are located in, in
// first-seen order.
func (s *Service) StateOptions(ctx context.Context) ([]string, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("suppliers: options: %w", err)
	}
	seen := make(map[string]struct{})
	states := []string{}
	for _, sup := range all {
		if _, ok := seen[sup.State]; ok {
			continue
		}
		seen[sup.State] = struct{}{}
		states = append(states, sup.State)
	}
	return states, nil
}

func (s *Service) publish(ctx context.Context, id, action string, at time.Time) {
	if s.events == nil {
		return
	}
	evt := shared.ChangeEvent{Module: Module, ID: id, Action: action, At: at}
	if err := s.events.PublishChange(ctx, evt); err != nil {
		s.logger.Warn("publish supplier change", slog.String("id", id), slog.Any("error", err))
	}
}
