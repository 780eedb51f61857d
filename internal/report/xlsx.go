package report

import (
	"fmt"
	"strings"

	"kasir/internal/domain"

	"github.com/xuri/excelize/v2"
)

// ContentTypeXLSX is the MIME type of generated workbooks
const ContentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// Layout rows shared by both workbooks
const (
	headerRow    = 4
	firstDataRow = 5
)

var (
	transactionHeaders = []any{"Waktu", "No Transaksi", "Pembeli", "Metode", "Item", "Total", "Laba"}
	itemRecapHeaders   = []any{"Barcode", "Nama Barang", "Harga Beli", "Harga Jual", "Qty", "Total Penjualan", "Total Laba"}
)

// TransactionsFilename names the transaction export of a range
func TransactionsFilename(r Range) string {
	return "transaksi_" + r.FileSuffix() + ".xlsx"
}

// ItemRecapFilename names the product recap export of a range
func ItemRecapFilename(r Range) string {
	return "rekap_barang_" + r.FileSuffix() + ".xlsx"
}

// TransactionsWorkbook renders one line per sale followed by a TOTAL line
func TransactionsWorkbook(storeName string, r Range, rows []domain.TransactionRow) ([]byte, error) {
	data := make([][]any, 0, len(rows))
	for _, row := range rows {
		data = append(data, []any{
			row.Date.Format("02-01-2006 15:04:05"),
			"TX-" + strings.ToUpper(row.Tx8),
			strings.TrimSpace(row.BuyerName + " " + row.Phone),
			row.PaymentMethod,
			row.ItemCount,
			row.Total,
			row.Profit,
		})
	}
	t := SumTransactions(rows)
	footer := []any{"TOTAL", "", "", "", t.Items, t.Sales, t.Profit}
	return buildWorkbook("Transaksi", storeName, "Laporan Transaksi "+r.ShortLabel(), transactionHeaders, data, footer)
}

// ItemRecapWorkbook renders one line per product and price followed by a TOTAL line
func ItemRecapWorkbook(storeName string, r Range, rows []domain.ItemRecapRow) ([]byte, error) {
	data := make([][]any, 0, len(rows))
	for _, row := range rows {
		data = append(data, []any{
			row.Barcode,
			row.Name,
			row.CostPrice,
			row.SellPrice,
			row.Quantity,
			row.TotalSales,
			row.TotalProfit,
		})
	}
	t := SumItemRecap(rows)
	footer := []any{"", "TOTAL", "", "", t.Items, t.Sales, t.Profit}
	return buildWorkbook("Rekap Barang", storeName, "Laporan Rekap Barang "+r.ShortLabel(), itemRecapHeaders, data, footer)
}

func buildWorkbook(sheet, storeName, title string, headers []any, data [][]any, footer []any) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return nil, fmt.Errorf("new style: %w", err)
	}

	if err := f.SetCellValue(sheet, "A1", storeName); err != nil {
		return nil, err
	}
	if err := f.SetCellValue(sheet, "A2", title); err != nil {
		return nil, err
	}
	if err := setRow(f, sheet, headerRow, headers); err != nil {
		return nil, err
	}

	row := firstDataRow
	for _, values := range data {
		if err := setRow(f, sheet, row, values); err != nil {
			return nil, err
		}
		row++
	}
	// one blank line before the totals
	totalRow := row + 1
	if err := setRow(f, sheet, totalRow, footer); err != nil {
		return nil, err
	}

	lastCol, _ := excelize.ColumnNumberToName(len(headers))
	for _, r := range []int{1, headerRow, totalRow} {
		if err := f.SetCellStyle(sheet, cell(1, r), cell(len(headers), r), bold); err != nil {
			return nil, err
		}
	}
	if err := f.SetColWidth(sheet, "A", lastCol, 18); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func setRow(f *excelize.File, sheet string, row int, values []any) error {
	return f.SetSheetRow(sheet, cell(1, row), &values)
}

func cell(col, row int) string {
	name, _ := excelize.CoordinatesToCellName(col, row)
	return name
}
