package store

import (
	"context"
	"errors"
	"fmt"

	"kasir/internal/domain"

	"gorm.io/gorm"
)

// SyncSale stores a sale pushed by a client. A client transaction id that is already
// stored yields domain.ErrDuplicateSale and leaves the database untouched.
func (s *Store) SyncSale(ctx context.Context, sale *domain.Sale) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&domain.Sale{}).Where("client_tx_id = ?", sale.ClientTxID).Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return domain.ErrDuplicateSale
		}
		// Header first, GORM then inserts Items with the new penjualan_id
		return tx.Omit("Buyer", "Store").Create(sale).Error
	})
	switch {
	case errors.Is(err, domain.ErrDuplicateSale):
		return err
	case errors.Is(err, gorm.ErrDuplicatedKey):
		// Lost a race with a concurrent sync of the same transaction
		return domain.ErrDuplicateSale
	case err != nil:
		return fmt.Errorf("sync sale %s: %w", sale.ClientTxID, err)
	}
	return nil
}

// SaleWithItems loads a sale header, its buyer and its items ordered by id
func (s *Store) SaleWithItems(ctx context.Context, id uint) (*domain.Sale, error) {
	var sale domain.Sale
	err := s.db.WithContext(ctx).
		Preload("Buyer").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("id") }).
		First(&sale, id).Error
	if err != nil {
		return nil, notFound(err)
	}
	return &sale, nil
}
