package api

import (
	"errors"   // Error comparison
	"net/http" // HTTP status codes
	"strconv"  // ID parsing
	"strings"  // String manipulation
	"time"     // Client timestamps

	"kasir/internal/domain"     // Importing domain models
	"kasir/internal/middleware" // Current session user
	"kasir/internal/utils"      // Cache functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/google/uuid"       // Client transaction ids
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// BuyerResponse is one entry of GET /api/pembeli
type BuyerResponse struct {
	ID    uint   `json:"id"`
	Name  string `json:"nama"`
	Phone string `json:"no_hp"`
}

// SyncBuyerRequest is the body of POST /api/sync-pembeli
type SyncBuyerRequest struct {
	Name    string `json:"nama"`
	Phone   string `json:"no_hp"`
	Address string `json:"alamat"`
}

// SyncSaleItem is one line of a synced sale
type SyncSaleItem struct {
	Barcode   string  `json:"barcode" binding:"required"`
	Name      string  `json:"nama" binding:"required"`
	Quantity  int     `json:"qty" binding:"gt=0"`
	SellPrice float64 `json:"harga_jual" binding:"gte=0"`
	CostPrice float64 `json:"harga_beli" binding:"gte=0"`
	Discount  float64 `json:"potongan" binding:"gte=0"`
}

// SyncSaleRequest is the body of POST /api/sync-transaksi
type SyncSaleRequest struct {
	ClientTxID    string         `json:"client_tx_id" binding:"required"`
	ClientDate    string         `json:"tanggal_client"`
	BuyerID       *uint          `json:"pembeli"`
	PaymentMethod string         `json:"metode_bayar"`
	Paid          float64        `json:"bayar"`
	Change        float64        `json:"kembalian"`
	StoreID       uint           `json:"toko_id"`
	Items         []SyncSaleItem `json:"items" binding:"required,min=1,dive"`
}

// clientDateLayouts are the timestamp formats offline clients send
var clientDateLayouts = []string{
	"2006-01-02T15:04:05",
	"2006-01-02 15:04:05",
	"2006-01-02T15:04",
}

// parseClientDate reads tanggal_client. An empty value means the sale happened now.
func parseClientDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return now(), nil
	}
	if t, err := time.Parse(time.RFC3339, s); err == nil {
		return t, nil
	}
	var lastErr error
	for _, layout := range clientDateLayouts {
		t, err := time.ParseInLocation(layout, s, time.Local)
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

// toSale converts a validated request into the sale model
func (req SyncSaleRequest) toSale(txID uuid.UUID, date time.Time, storeID uint) *domain.Sale {
	sale := &domain.Sale{
		ClientTxID:    txID.String(), // canonical 36-char form, whatever spelling the client sent
		Date:          date,
		BuyerID:       req.BuyerID,
		PaymentMethod: req.PaymentMethod,
		Paid:          req.Paid,
		Change:        req.Change,
		StoreID:       storeID,
		Items:         make([]domain.SaleItem, 0, len(req.Items)),
	}
	if sale.BuyerID != nil && *sale.BuyerID == 0 {
		sale.BuyerID = nil // "Umum" buyer
	}
	for _, it := range req.Items {
		sale.Items = append(sale.Items, domain.SaleItem{
			Barcode:   it.Barcode,
			Name:      it.Name,
			Quantity:  it.Quantity,
			SellPrice: it.SellPrice,
			CostPrice: it.CostPrice,
			Discount:  it.Discount,
		})
	}
	return sale
}

// BuyersHandler lists every buyer, served from cache when possible
func BuyersHandler(buyers BuyerStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []BuyerResponse
		if found, err := utils.GetCache(ctx, rdb, utils.CacheKeyBuyers, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}

		list, err := buyers.Buyers(ctx)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to list buyers")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "msg": "Gagal memuat pembeli"})
			return
		}
		resp := make([]BuyerResponse, 0, len(list))
		for _, b := range list {
			resp = append(resp, BuyerResponse{ID: b.ID, Name: b.Name, Phone: b.PhoneNumber()})
		}
		if err := utils.SetCache(ctx, rdb, utils.CacheKeyBuyers, resp, utils.CacheTTL); err != nil {
			logrus.WithField("error", err.Error()).Warn("Failed to cache buyers")
		}
		c.JSON(http.StatusOK, resp)
	}
}

// SyncBuyerHandler stores a buyer created offline, merging on phone number
func SyncBuyerHandler(buyers BuyerStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SyncBuyerRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "msg": "Invalid request"})
			return
		}
		buyer := domain.Buyer{Name: strings.TrimSpace(req.Name), Address: strings.TrimSpace(req.Address)}
		if buyer.Name == "" {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "msg": "nama wajib"})
			return
		}
		if phone := strings.TrimSpace(req.Phone); phone != "" {
			buyer.Phone = &phone
		}

		ctx := c.Request.Context()
		if err := buyers.UpsertBuyer(ctx, &buyer); err != nil {
			logrus.WithFields(logrus.Fields{"no_hp": buyer.PhoneNumber(), "error": err.Error()}).Error("Buyer sync failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "msg": "Gagal menyimpan pembeli"})
			return
		}
		if err := utils.DeleteCache(ctx, rdb, utils.CacheKeyBuyers); err != nil {
			logrus.WithField("error", err.Error()).Warn("Failed to invalidate buyers cache")
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "id": buyer.ID})
	}
}

// SyncSaleHandler stores a sale recorded by an offline client. Sending the same
// client_tx_id twice stores it once.
func SyncSaleHandler(sales SaleStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		var req SyncSaleRequest
		if err := c.ShouldBindJSON(&req); err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "msg": "Invalid request"})
			return
		}
		txID, err := uuid.Parse(strings.TrimSpace(req.ClientTxID))
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "msg": "client_tx_id harus UUID"})
			return
		}
		date, err := parseClientDate(req.ClientDate)
		if err != nil {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "msg": "tanggal_client tidak valid"})
			return
		}
		// A logged in cashier always books into their own store
		storeID := req.StoreID
		if user, ok := middleware.CurrentUser(c); ok {
			storeID = user.StoreID
		}
		if storeID == 0 {
			c.JSON(http.StatusBadRequest, gin.H{"status": "error", "msg": "toko_id wajib"})
			return
		}

		sale := req.toSale(txID, date, storeID)
		ctx := c.Request.Context()
		if err := sales.SyncSale(ctx, sale); err != nil {
			if errors.Is(err, domain.ErrDuplicateSale) {
				c.JSON(http.StatusOK, gin.H{"status": "duplicate", "msg": "Transaksi sudah ada"})
				return
			}
			logrus.WithFields(logrus.Fields{"client_tx_id": sale.ClientTxID, "toko_id": storeID, "error": err.Error()}).Error("Sale sync failed")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "msg": "Gagal menyimpan transaksi"})
			return
		}
		logrus.WithFields(logrus.Fields{
			"id":           sale.ID,
			"client_tx_id": sale.ClientTxID,
			"toko_id":      storeID,
			"total":        sale.Total(),
		}).Info("Sale synced")

		// New sales change the last known prices of the catalog
		if err := utils.DeleteCache(ctx, rdb, utils.CacheKeyProducts); err != nil {
			logrus.WithField("error", err.Error()).Warn("Failed to invalidate products cache")
		}
		if err := utils.DeleteCachePrefix(ctx, rdb, utils.CacheKeyProduct("")); err != nil {
			logrus.WithField("error", err.Error()).Warn("Failed to invalidate product cache")
		}
		c.JSON(http.StatusOK, gin.H{"status": "ok", "id": sale.ID})
	}
}

// SaleDetailHandler returns a sale header with its items, used to reprint receipts
func SaleDetailHandler(sales SaleStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		id, err := strconv.ParseUint(c.Param("id"), 10, 64)
		if err != nil {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "msg": "not found"})
			return
		}
		sale, err := sales.SaleWithItems(c.Request.Context(), uint(id))
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "msg": "not found"})
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{"id": id, "error": err.Error()}).Error("Failed to load sale")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "msg": "Gagal memuat transaksi"})
			return
		}
		// Other stores' sales stay hidden from a logged in cashier
		if user, ok := middleware.CurrentUser(c); ok && user.StoreID != sale.StoreID {
			c.JSON(http.StatusNotFound, gin.H{"status": "error", "msg": "not found"})
			return
		}

		var buyerName, phone string
		if sale.Buyer != nil {
			buyerName, phone = sale.Buyer.Name, sale.Buyer.PhoneNumber()
		}
		items := make([]gin.H, 0, len(sale.Items))
		for _, it := range sale.Items {
			items = append(items, gin.H{
				"nama":       it.Name,
				"qty":        it.Quantity,
				"harga_jual": it.SellPrice,
				"harga_beli": it.CostPrice,
				"potongan":   it.Discount,
			})
		}
		c.JSON(http.StatusOK, gin.H{
			"header": gin.H{
				"id":           sale.ID,
				"client_tx_id": sale.ClientTxID,
				"tanggal":      sale.Date.Format("2006-01-02T15:04:05"),
				"metode_bayar": sale.PaymentMethod,
				"bayar":        sale.Paid,
				"kembalian":    sale.Change,
				"pembeli_nama": buyerName,
				"no_hp":        phone,
			},
			"items": items,
		})
	}
}
