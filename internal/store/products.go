package store

import (
	"context"
	"fmt"

	"kasir/internal/domain"
)

// Products returns the catalog of every product ever sold, ordered by name
func (s *Store) Products(ctx context.Context) ([]domain.Product, error) {
	var products []domain.Product
	if err := s.db.WithContext(ctx).Table("v_barang_terbeli").Order("nama").Scan(&products).Error; err != nil {
		return nil, fmt.Errorf("list products: %w", err)
	}
	return products, nil
}

// ProductByBarcode returns the latest known prices of a product
func (s *Store) ProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error) {
	var products []domain.Product
	err := s.db.WithContext(ctx).Table("v_barang_terbeli").Where("barcode = ?", barcode).Limit(1).Scan(&products).Error
	if err != nil {
		return nil, fmt.Errorf("get product: %w", err)
	}
	if len(products) == 0 {
		return nil, domain.ErrNotFound
	}
	return &products[0], nil
}
