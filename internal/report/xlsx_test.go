package report

import (
	"bytes"
	"testing"
	"time"

	"kasir/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func openWorkbook(t *testing.T, data []byte, sheet string) [][]string {
	t.Helper()
	f, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer f.Close()
	rows, err := f.GetRows(sheet)
	require.NoError(t, err)
	return rows
}

func TestTransactionsWorkbook(t *testing.T) {
	r := ParseRange("2025-09-15", "2025-09-15", today)
	rows := []domain.TransactionRow{
		{Date: time.Date(2025, 9, 15, 10, 5, 9, 0, time.Local), Tx8: "a1b2c3d4", BuyerName: "Budi", Phone: "62811", PaymentMethod: "tunai", Total: 30000, Profit: 6000, ItemCount: 2},
		{Date: time.Date(2025, 9, 15, 9, 0, 0, 0, time.Local), Tx8: "ffee0011", PaymentMethod: "qris", Total: 12000, Profit: 2000, ItemCount: 3},
	}

	data, err := TransactionsWorkbook("Toko Makmur", r, rows)
	require.NoError(t, err)

	got := openWorkbook(t, data, "Transaksi")
	require.Len(t, got, 8)
	assert.Equal(t, []string{"Toko Makmur"}, got[0])
	assert.Equal(t, []string{"Laporan Transaksi 15 Sep 2025"}, got[1])
	assert.Empty(t, got[2])
	assert.Equal(t, []string{"Waktu", "No Transaksi", "Pembeli", "Metode", "Item", "Total", "Laba"}, got[3])
	assert.Equal(t, []string{"15-09-2025 10:05:09", "TX-A1B2C3D4", "Budi 62811", "tunai", "2", "30000", "6000"}, got[4])
	assert.Equal(t, []string{"15-09-2025 09:00:00", "TX-FFEE0011", "", "qris", "3", "12000", "2000"}, got[5])
	assert.Empty(t, got[6])
	assert.Equal(t, []string{"TOTAL", "", "", "", "5", "42000", "8000"}, got[7])
}

func TestItemRecapWorkbook(t *testing.T) {
	r := ParseRange("2025-09-01", "2025-09-15", today)
	rows := []domain.ItemRecapRow{
		{Barcode: "899001", Name: "Gula 1kg", CostPrice: 12000, SellPrice: 15000, Quantity: 4, TotalSales: 60000, TotalProfit: 12000},
		{Barcode: "899002", Name: "Kopi", CostPrice: 1000, SellPrice: 1500, Quantity: 10, TotalSales: 14000, TotalProfit: 4000},
	}

	data, err := ItemRecapWorkbook("Toko Makmur", r, rows)
	require.NoError(t, err)

	got := openWorkbook(t, data, "Rekap Barang")
	require.Len(t, got, 8)
	assert.Equal(t, []string{"Laporan Rekap Barang 01 Sep 2025 s/d 15 Sep 2025"}, got[1])
	assert.Equal(t, []string{"899001", "Gula 1kg", "12000", "15000", "4", "60000", "12000"}, got[4])
	assert.Equal(t, []string{"", "TOTAL", "", "", "14", "74000", "16000"}, got[7])
	assert.Equal(t, "rekap_barang_20250901_20250915.xlsx", ItemRecapFilename(r))
}

func TestEmptyWorkbookHasZeroTotals(t *testing.T) {
	r := ParseRange("", "", today)
	data, err := TransactionsWorkbook("Toko", r, nil)
	require.NoError(t, err)

	got := openWorkbook(t, data, "Transaksi")
	require.Len(t, got, 6)
	assert.Equal(t, []string{"TOTAL", "", "", "", "0", "0", "0"}, got[5])
	assert.Equal(t, "transaksi_20250915_20250915.xlsx", TransactionsFilename(r))
}

func TestTotalsReconcileWithRows(t *testing.T) {
	rows := []domain.TransactionRow{{Total: 1000.5, Profit: 100, ItemCount: 1}, {Total: 2000, Profit: 250.25, ItemCount: 4}}
	assert.Equal(t, Totals{Items: 5, Sales: 3000.5, Profit: 350.25}, SumTransactions(rows))
	assert.Equal(t, Totals{}, SumItemRecap(nil))
}
