package domain

import "time" // Timestamps

// Roles
const (
	RoleAdmin   = "admin"
	RoleCashier = "kasir"
)

// User Model
type User struct {
	ID           uint      `gorm:"primaryKey" json:"id"`                                                         // Primary key
	Name         string    `gorm:"column:nama;size:150;not null" json:"nama"`                                    // Display name
	Username     string    `gorm:"size:100;uniqueIndex;not null" json:"username"`                                // Unique lower-case username
	PasswordHash string    `gorm:"column:password_hash;size:255;not null" json:"-"`                              // Hashed password
	Role         string    `gorm:"size:20;default:kasir" json:"role"`                                            // Role: admin or kasir
	StoreID      uint      `gorm:"column:toko_id;index;not null" json:"toko_id"`                                 // Foreign key to Store
	Store        Store     `gorm:"foreignKey:StoreID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE;" json:"toko"` // Owning store
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"-"`                                    // Timestamp of creation
}
