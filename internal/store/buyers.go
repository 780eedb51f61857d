package store

import (
	"context"
	"fmt"

	"kasir/internal/domain"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Buyers lists every buyer ordered by name
func (s *Store) Buyers(ctx context.Context) ([]domain.Buyer, error) {
	var buyers []domain.Buyer
	if err := s.db.WithContext(ctx).Order("nama").Find(&buyers).Error; err != nil {
		return nil, fmt.Errorf("list buyers: %w", err)
	}
	return buyers, nil
}

// UpsertBuyer inserts a buyer, or refreshes name and address of the buyer owning the same
// phone number. b.ID holds the row id afterwards in both cases.
func (s *Store) UpsertBuyer(ctx context.Context, b *domain.Buyer) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if b.Phone == nil {
			return tx.Create(b).Error
		}
		err := tx.Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "no_hp"}},
			DoUpdates: clause.AssignmentColumns([]string{"nama", "alamat"}),
		}).Create(b).Error
		if err != nil {
			return err
		}
		// MySQL does not report the id of an updated row, so read it back
		var saved domain.Buyer
		if err := tx.Select("id").Where("no_hp = ?", *b.Phone).First(&saved).Error; err != nil {
			return err
		}
		b.ID = saved.ID
		return nil
	})
}
