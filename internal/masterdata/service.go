package masterdata

import (
	"context"
	"fmt"
)

// Service exposes master data lookups to the API and to the modules that
// reference products and warehouses.
type Service struct {
	repo Repository
}

// NewService builds Service.
func NewService(repo Repository) *Service {
	return &Service{repo: repo}
}

// ListProducts returns the catalogue.
func (s *Service) ListProducts(ctx context.Context) ([]Product, error) {
	products, err := s.repo.ListProducts(ctx)
	if err != nil {
		return nil, fmt.Errorf("masterdata: list products: %w", err)
	}
	return products, nil
}

// ListWarehouses returns every warehouse.
func (s *Service) ListWarehouses(ctx context.Context) ([]Warehouse, error) {
	warehouses, err := s.repo.ListWarehouses(ctx)
	if err != nil {
		return nil, fmt.Errorf("masterdata: list warehouses: %w", err)
	}
	return warehouses, nil
}

// LookupProduct resolves a product reference.
func (s *Service) LookupProduct(ctx context.Context, id string) (Product, error) {
	p, err := s.repo.GetProduct(ctx, id)
	if err != nil {
		return Product{}, fmt.Errorf("masterdata: %w", err)
	}
	return p, nil
}

// LookupWarehouse resolves a warehouse reference.
func (s *Service) LookupWarehouse(ctx context.Context, id string) (Warehouse, error) {
	w, err := s.repo.GetWarehouse(ctx, id)
	if err != nil {
		return Warehouse{}, fmt.Errorf("masterdata: %w", err)
	}
	return w, nil
}
