package domain

import "time" // Timestamps

// Sale Model (penjualan), one checkout transaction
type Sale struct {
	ID            uint       `gorm:"primaryKey"`                                                // Primary key
	ClientTxID    string     `gorm:"column:client_tx_id;type:varchar(36);uniqueIndex;not null"` // Client-generated UUID
	Date          time.Time  `gorm:"column:tanggal;not null;index"`                             // Time of sale on the client
	BuyerID       *uint      `gorm:"column:pembeli_id;index"`                                   // Optional buyer
	Buyer         *Buyer     `gorm:"foreignKey:BuyerID;constraint:OnDelete:SET NULL;"`
	PaymentMethod string     `gorm:"column:metode_bayar;size:30"`                   // tunai, qris, transfer, ...
	Paid          float64    `gorm:"column:bayar;type:numeric(14,2);default:0"`     // Amount handed over
	Change        float64    `gorm:"column:kembalian;type:numeric(14,2);default:0"` // Change returned
	StoreID       uint       `gorm:"column:toko_id;index;not null"`                 // Owning store
	Store         *Store     `gorm:"foreignKey:StoreID;constraint:OnDelete:CASCADE;"`
	Items         []SaleItem `gorm:"foreignKey:SaleID;constraint:OnDelete:CASCADE;"` // Line items
	CreatedAt     time.Time  `gorm:"column:created_at;autoCreateTime"`
}

// TableName keeps the deployed table name
func (Sale) TableName() string { return "penjualan" }

// Tx8 returns the short transaction number shown on receipts
func (s Sale) Tx8() string {
	if len(s.ClientTxID) < 8 {
		return s.ClientTxID
	}
	return s.ClientTxID[:8]
}

// Total sums every line after discount
func (s Sale) Total() float64 {
	var total float64
	for _, it := range s.Items {
		total += it.Subtotal()
	}
	return total
}

// SaleItem Model (penjualan_detail), prices are frozen at time of sale
type SaleItem struct {
	ID        uint    `gorm:"primaryKey"`                                    // Primary key
	SaleID    uint    `gorm:"column:penjualan_id;index;not null"`            // Foreign key to Sale
	Barcode   string  `gorm:"size:64;index;not null"`                        // Product barcode
	Name      string  `gorm:"column:nama;size:200;not null"`                 // Product name at time of sale
	Quantity  int     `gorm:"column:qty;not null"`                           // Quantity sold
	SellPrice float64 `gorm:"column:harga_jual;type:numeric(14,2);not null"` // Unit sell price
	CostPrice float64 `gorm:"column:harga_beli;type:numeric(14,2);not null"` // Unit cost price
	Discount  float64 `gorm:"column:potongan;type:numeric(14,2);default:0"`  // Discount on the whole line
}

// TableName keeps the deployed table name
func (SaleItem) TableName() string { return "penjualan_detail" }

// Subtotal is qty * sell price minus the line discount
func (it SaleItem) Subtotal() float64 {
	return float64(it.Quantity)*it.SellPrice - it.Discount
}
