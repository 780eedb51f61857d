package store

import (
	"context"
	"fmt"
	"time"

	"kasir/internal/domain"
)

// Transactions returns one row per sale of a store whose date falls in [from, to], newest first
func (s *Store) Transactions(ctx context.Context, storeID uint, from, to time.Time) ([]domain.TransactionRow, error) {
	var rows []domain.TransactionRow
	err := s.db.WithContext(ctx).
		Table("v_penjualan_hari_ini").
		Select("id, tanggal, tx8, nama, no_hp, metode_bayar, total, laba, jml_item").
		Where("CAST(tanggal AS DATE) BETWEEN ? AND ?", dateOnly(from), dateOnly(to)).
		Where("toko_id = ?", storeID).
		Order("tanggal DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	return rows, nil
}

// ItemRecap sums sales per product and price over [from, to]
func (s *Store) ItemRecap(ctx context.Context, storeID uint, from, to time.Time) ([]domain.ItemRecapRow, error) {
	var rows []domain.ItemRecapRow
	err := s.db.WithContext(ctx).
		Table("v_penjualan_rekap_barang_hari_ini").
		Select("barcode, item_nama, harga_beli, harga_jual, "+
			"SUM(total_qty) AS total_qty, SUM(total_penjualan) AS total_penjualan, SUM(total_laba) AS total_laba").
		Where("toko_id = ?", storeID).
		Where("tgl BETWEEN ? AND ?", dateOnly(from), dateOnly(to)).
		Group("barcode, item_nama, harga_beli, harga_jual").
		Order("item_nama, harga_jual").
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query item recap: %w", err)
	}
	return rows, nil
}

// ItemSales lists the sales lines of one product sold at one price over [from, to]
func (s *Store) ItemSales(ctx context.Context, storeID uint, barcode string, price float64, from, to time.Time) ([]domain.ItemSaleRow, error) {
	var rows []domain.ItemSaleRow
	err := s.db.WithContext(ctx).Raw(`
		SELECT SUBSTR(p.client_tx_id, 1, 8) AS tx8,
		       p.tanggal,
		       COALESCE(pb.nama, '') AS pembeli,
		       COALESCE(pb.no_hp, '') AS no_hp,
		       d.qty
		FROM penjualan p
		JOIN penjualan_detail d ON d.penjualan_id = p.id
		LEFT JOIN pembeli pb ON pb.id = p.pembeli_id
		WHERE CAST(p.tanggal AS DATE) BETWEEN ? AND ?
		  AND p.toko_id = ?
		  AND d.barcode = ?
		  AND d.harga_jual = ?
		ORDER BY p.tanggal`, dateOnly(from), dateOnly(to), storeID, barcode, price).
		Scan(&rows).Error
	if err != nil {
		return nil, fmt.Errorf("query item sales: %w", err)
	}
	return rows, nil
}

// dateOnly drops the clock so DATE comparisons bind cleanly on both drivers
func dateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}
