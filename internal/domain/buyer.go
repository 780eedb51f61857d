package domain

import "time" // Timestamps

// Buyer Model (pembeli)
type Buyer struct {
	ID        uint      `gorm:"primaryKey"`                       // Primary key
	Name      string    `gorm:"column:nama;size:150;not null"`    // Buyer name
	Phone     *string   `gorm:"column:no_hp;size:30;uniqueIndex"` // Phone number, unique when present
	Address   string    `gorm:"column:alamat;size:255"`           // Address
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime"`
}

// TableName keeps the deployed table name
func (Buyer) TableName() string { return "pembeli" }

// PhoneNumber returns the phone number or an empty string
func (b Buyer) PhoneNumber() string {
	if b.Phone == nil {
		return ""
	}
	return *b.Phone
}
