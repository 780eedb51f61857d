package api

import (
	"net/http" // HTTP status codes
	"strconv"  // Price parsing
	"time"     // Report dates

	"kasir/internal/domain"     // Importing domain models
	"kasir/internal/middleware" // Current session user
	"kasir/internal/report"     // Report ranges, totals and workbooks

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// now is replaced in tests
var now = time.Now

// reportRange reads ?start=&end= relative to the current day
func reportRange(c *gin.Context) report.Range {
	return report.ParseRange(c.Query("start"), c.Query("end"), now())
}

// sessionStore returns the store of the logged in user. Routes using it sit behind LoginRequired.
func sessionStore(c *gin.Context) domain.Store {
	user, _ := middleware.CurrentUser(c)
	return user.Store
}

// loadReport runs both report queries of a range for the session store
func loadReport(c *gin.Context, reports ReportStore, r report.Range) ([]domain.TransactionRow, []domain.ItemRecapRow, bool) {
	store := sessionStore(c)
	ctx := c.Request.Context()
	rows, err := reports.Transactions(ctx, store.ID, r.From, r.To)
	if err != nil {
		logReportError(store.ID, r, err)
		return nil, nil, false
	}
	detailRows, err := reports.ItemRecap(ctx, store.ID, r.From, r.To)
	if err != nil {
		logReportError(store.ID, r, err)
		return nil, nil, false
	}
	return rows, detailRows, true
}

func logReportError(storeID uint, r report.Range, err error) {
	logrus.WithFields(logrus.Fields{
		"toko_id": storeID,
		"start":   r.Start(),
		"end":     r.End(),
		"error":   err.Error(),
	}).Error("Report query failed")
}

// SalesReportPageHandler renders transactions and the item recap of a date range
func SalesReportPageHandler(reports ReportStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		r := reportRange(c)
		rows, detailRows, ok := loadReport(c, reports, r)
		if !ok {
			c.String(http.StatusInternalServerError, "Gagal memuat laporan")
			return
		}
		c.HTML(http.StatusOK, "penjualan_hari_ini.html", gin.H{
			"toko":               sessionStore(c),
			"rows":               rows,
			"total":              report.SumTransactions(rows),
			"detail_rows":        detailRows,
			"detail_total":       report.SumItemRecap(detailRows),
			"start":              r.Start(),
			"end":                r.End(),
			"keterangan_tanggal": r.Label(),
		})
	}
}

// PrintTransactionsHandler renders the printable transaction list
func PrintTransactionsHandler(reports ReportStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		r := reportRange(c)
		store := sessionStore(c)
		rows, err := reports.Transactions(c.Request.Context(), store.ID, r.From, r.To)
		if err != nil {
			logReportError(store.ID, r, err)
			c.String(http.StatusInternalServerError, "Gagal memuat laporan")
			return
		}
		c.HTML(http.StatusOK, "print_transaksi_hari_ini.html", gin.H{
			"toko":               store,
			"rows":               rows,
			"total":              report.SumTransactions(rows),
			"start":              r.Start(),
			"end":                r.End(),
			"keterangan_tanggal": r.Label(),
		})
	}
}

// PrintItemRecapHandler renders the printable item recap
func PrintItemRecapHandler(reports ReportStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		r := reportRange(c)
		store := sessionStore(c)
		rows, err := reports.ItemRecap(c.Request.Context(), store.ID, r.From, r.To)
		if err != nil {
			logReportError(store.ID, r, err)
			c.String(http.StatusInternalServerError, "Gagal memuat laporan")
			return
		}
		c.HTML(http.StatusOK, "print_detail_hari_ini.html", gin.H{
			"toko":               store,
			"rows":               rows,
			"total":              report.SumItemRecap(rows),
			"start":              r.Start(),
			"end":                r.End(),
			"keterangan_tanggal": r.Label(),
		})
	}
}

// ExportTransactionsHandler downloads the transaction list as xlsx
func ExportTransactionsHandler(reports ReportStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		r := reportRange(c)
		store := sessionStore(c)
		rows, err := reports.Transactions(c.Request.Context(), store.ID, r.From, r.To)
		if err != nil {
			logReportError(store.ID, r, err)
			c.String(http.StatusInternalServerError, "Gagal memuat laporan")
			return
		}
		data, err := report.TransactionsWorkbook(store.Name, r, rows)
		if err != nil {
			logrus.WithFields(logrus.Fields{"toko_id": store.ID, "error": err.Error()}).Error("Workbook failed")
			c.String(http.StatusInternalServerError, "Gagal membuat file Excel")
			return
		}
		sendWorkbook(c, report.TransactionsFilename(r), data)
	}
}

// ExportItemRecapHandler downloads the item recap as xlsx
func ExportItemRecapHandler(reports ReportStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		r := reportRange(c)
		store := sessionStore(c)
		rows, err := reports.ItemRecap(c.Request.Context(), store.ID, r.From, r.To)
		if err != nil {
			logReportError(store.ID, r, err)
			c.String(http.StatusInternalServerError, "Gagal memuat laporan")
			return
		}
		data, err := report.ItemRecapWorkbook(store.Name, r, rows)
		if err != nil {
			logrus.WithFields(logrus.Fields{"toko_id": store.ID, "error": err.Error()}).Error("Workbook failed")
			c.String(http.StatusInternalServerError, "Gagal membuat file Excel")
			return
		}
		sendWorkbook(c, report.ItemRecapFilename(r), data)
	}
}

func sendWorkbook(c *gin.Context, filename string, data []byte) {
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, report.ContentTypeXLSX, data)
}

// SalesReportJSONHandler returns the report of a date range as JSON
func SalesReportJSONHandler(reports ReportStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		r := reportRange(c)
		rows, detailRows, ok := loadReport(c, reports, r)
		if !ok {
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "msg": "Gagal memuat laporan"})
			return
		}
		if rows == nil {
			rows = []domain.TransactionRow{}
		}
		if detailRows == nil {
			detailRows = []domain.ItemRecapRow{}
		}
		c.JSON(http.StatusOK, gin.H{
			"start":        r.Start(),
			"end":          r.End(),
			"keterangan":   r.Label(),
			"transaksi":    rows,
			"total":        report.SumTransactions(rows),
			"rekap_barang": detailRows,
			"total_barang": report.SumItemRecap(detailRows),
		})
	}
}

// ItemSalesHandler lists who bought a product at a given price in a date range
func ItemSalesHandler(reports ReportStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		barcode := c.Param("barcode")
		price, err := strconv.ParseFloat(c.Param("harga"), 64)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "msg": "harga tidak valid"})
			return
		}
		r := reportRange(c)
		store := sessionStore(c)
		rows, err := reports.ItemSales(c.Request.Context(), store.ID, barcode, price, r.From, r.To)
		if err != nil {
			logReportError(store.ID, r, err)
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "msg": "Gagal memuat data"})
			return
		}
		result := make([]gin.H, 0, len(rows))
		for _, row := range rows {
			result = append(result, gin.H{
				"tx8":     row.Tx8,
				"waktu":   row.Date.Format("15:04:05"),
				"pembeli": row.BuyerName,
				"no_hp":   row.Phone,
				"qty":     row.Quantity,
			})
		}
		c.JSON(http.StatusOK, result)
	}
}
