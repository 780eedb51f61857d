package domain

import "time"

// TransactionRow is one sale as aggregated by v_penjualan_hari_ini
type TransactionRow struct {
	ID            uint      `gorm:"column:id" json:"id"`
	Date          time.Time `gorm:"column:tanggal" json:"tanggal"`
	Tx8           string    `gorm:"column:tx8" json:"tx8"`
	BuyerName     string    `gorm:"column:nama" json:"nama"`
	Phone         string    `gorm:"column:no_hp" json:"no_hp"`
	PaymentMethod string    `gorm:"column:metode_bayar" json:"metode_bayar"`
	Total         float64   `gorm:"column:total" json:"total"`
	Profit        float64   `gorm:"column:laba" json:"laba"`
	ItemCount     int       `gorm:"column:jml_item" json:"jml_item"`
}

// ItemRecapRow is one product/price line of v_penjualan_rekap_barang_hari_ini summed over a range
type ItemRecapRow struct {
	Barcode     string  `gorm:"column:barcode" json:"barcode"`
	Name        string  `gorm:"column:item_nama" json:"item_nama"`
	CostPrice   float64 `gorm:"column:harga_beli" json:"harga_beli"`
	SellPrice   float64 `gorm:"column:harga_jual" json:"harga_jual"`
	Quantity    int     `gorm:"column:total_qty" json:"total_qty"`
	TotalSales  float64 `gorm:"column:total_penjualan" json:"total_penjualan"`
	TotalProfit float64 `gorm:"column:total_laba" json:"total_laba"`
}

// ItemSaleRow tells who bought a product at a given price
type ItemSaleRow struct {
	Tx8       string    `gorm:"column:tx8"`
	Date      time.Time `gorm:"column:tanggal"`
	BuyerName string    `gorm:"column:pembeli"`
	Phone     string    `gorm:"column:no_hp"`
	Quantity  int       `gorm:"column:qty"`
}

// Product is an entry of the catalog derived from past sales (v_barang_terbeli)
type Product struct {
	Barcode       string     `gorm:"column:barcode"`
	Name          string     `gorm:"column:nama"`
	SellPrice     float64    `gorm:"column:harga_jual"`
	CostPrice     float64    `gorm:"column:harga_beli"`
	LastPurchased *time.Time `gorm:"column:terakhir_dibeli"`
}
