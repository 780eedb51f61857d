// Package store runs the application's SQL against the pooled GORM connection.
package store

import (
	"errors"

	"kasir/internal/domain"

	"gorm.io/gorm"
)

// Store implements every query the handlers need
type Store struct {
	db *gorm.DB
}

// New wraps an opened GORM handle
func New(db *gorm.DB) *Store {
	return &Store{db: db}
}

// DB exposes the underlying handle for migrations and tests
func (s *Store) DB() *gorm.DB {
	return s.db
}

func notFound(err error) error {
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.ErrNotFound
	}
	return err
}
