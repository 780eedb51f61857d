package domain

import "time" // Timestamps

// Store Model (toko), the tenant boundary
type Store struct {
	ID        uint      `gorm:"primaryKey" json:"id"`                                         // Primary key
	Name      string    `gorm:"column:nama;size:150;not null" json:"nama"`                    // Store name
	Code      string    `gorm:"column:kode;size:50;uniqueIndex;not null" json:"kode"`         // Unique lower-case code
	Address   string    `gorm:"column:alamat;size:255" json:"alamat"`                         // Address printed on receipts
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at,omitempty"` // Timestamp of creation
}

// TableName keeps the deployed table name
func (Store) TableName() string { return "toko" }
