package store

import (
	"context"
	"errors"
	"fmt"

	"kasir/internal/domain"

	"gorm.io/gorm"
)

// UserByUsername looks a user up by its lower-case username
func (s *Store) UserByUsername(ctx context.Context, username string) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Where("username = ?", username).First(&user).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// UserWithStore loads a user together with its store
func (s *Store) UserWithStore(ctx context.Context, id uint) (*domain.User, error) {
	var user domain.User
	if err := s.db.WithContext(ctx).Joins("Store").First(&user, id).Error; err != nil {
		return nil, notFound(err)
	}
	return &user, nil
}

// RegisterStore creates a store and its first user atomically.
// IDs are written back into both arguments.
func (s *Store) RegisterStore(ctx context.Context, store *domain.Store, user *domain.User) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(store).Error; err != nil {
			return err
		}
		user.StoreID = store.ID
		// Omit the association so GORM does not upsert the store a second time
		if err := tx.Omit("Store").Create(user).Error; err != nil {
			return err
		}
		return nil
	})
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return domain.ErrDuplicateStore
	}
	if err != nil {
		return fmt.Errorf("register store: %w", err)
	}
	user.Store = *store
	return nil
}

// UpdatePasswordHash replaces the stored hash of a user
func (s *Store) UpdatePasswordHash(ctx context.Context, userID uint, hash string) error {
	res := s.db.WithContext(ctx).Model(&domain.User{}).Where("id = ?", userID).Update("password_hash", hash)
	if res.Error != nil {
		return fmt.Errorf("update password hash: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrNotFound
	}
	return nil
}
