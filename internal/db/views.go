package db

import (
	"fmt"

	"github.com/sirupsen/logrus"
	"gorm.io/gorm"
)

// Report views. The SQL sticks to what PostgreSQL and MySQL both accept.
var views = []struct {
	name string
	sql  string
}{
	{
		name: "v_penjualan_hari_ini",
		sql: `
SELECT p.id,
       p.tanggal,
       SUBSTR(p.client_tx_id, 1, 8) AS tx8,
       COALESCE(b.nama, '') AS nama,
       COALESCE(b.no_hp, '') AS no_hp,
       p.metode_bayar,
       p.toko_id,
       COALESCE(SUM(d.qty * d.harga_jual - d.potongan), 0) AS total,
       COALESCE(SUM(d.qty * (d.harga_jual - d.harga_beli) - d.potongan), 0) AS laba,
       COALESCE(SUM(d.qty), 0) AS jml_item
FROM penjualan p
LEFT JOIN pembeli b ON b.id = p.pembeli_id
LEFT JOIN penjualan_detail d ON d.penjualan_id = p.id
GROUP BY p.id, p.tanggal, p.client_tx_id, b.nama, b.no_hp, p.metode_bayar, p.toko_id`,
	},
	{
		name: "v_penjualan_rekap_barang_hari_ini",
		sql: `
SELECT p.toko_id,
       CAST(p.tanggal AS DATE) AS tgl,
       d.barcode,
       d.nama AS item_nama,
       d.harga_beli,
       d.harga_jual,
       SUM(d.qty) AS total_qty,
       SUM(d.qty * d.harga_jual - d.potongan) AS total_penjualan,
       SUM(d.qty * (d.harga_jual - d.harga_beli) - d.potongan) AS total_laba
FROM penjualan p
JOIN penjualan_detail d ON d.penjualan_id = p.id
GROUP BY p.toko_id, CAST(p.tanggal AS DATE), d.barcode, d.nama, d.harga_beli, d.harga_jual`,
	},
	{
		name: "v_barang_terbeli",
		sql: `
SELECT d.barcode,
       d.nama,
       d.harga_jual,
       d.harga_beli,
       p.tanggal AS terakhir_dibeli
FROM penjualan_detail d
JOIN penjualan p ON p.id = d.penjualan_id
WHERE d.id = (SELECT MAX(d2.id) FROM penjualan_detail d2 WHERE d2.barcode = d.barcode)`,
	},
}

// ViewNames returns the report views in creation order
func ViewNames() []string {
	names := make([]string, len(views))
	for i, v := range views {
		names[i] = v.name
	}
	return names
}

// CreateViews drops and recreates the report views in one transaction
func CreateViews(gdb *gorm.DB) error {
	return gdb.Transaction(func(tx *gorm.DB) error {
		for _, v := range views {
			if err := tx.Exec("DROP VIEW IF EXISTS " + v.name).Error; err != nil {
				return fmt.Errorf("drop view %s: %w", v.name, err)
			}
			if err := tx.Exec("CREATE VIEW " + v.name + " AS" + v.sql).Error; err != nil {
				return fmt.Errorf("create view %s: %w", v.name, err)
			}
			logrus.WithField("view", v.name).Info("View created")
		}
		return nil
	})
}
