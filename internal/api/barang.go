package api

import (
	"errors"   // Error comparison
	"net/http" // HTTP status codes

	"kasir/internal/domain" // Importing domain models
	"kasir/internal/utils"  // Cache functions

	"github.com/gin-gonic/gin"     // Gin web framework
	"github.com/redis/go-redis/v9" // Redis client
	"github.com/sirupsen/logrus"   // Logging library
)

// ProductResponse is one entry of the product catalog
type ProductResponse struct {
	Barcode   string  `json:"barcode"`
	Name      string  `json:"nama"`
	SellPrice float64 `json:"harga_jual"`
	CostPrice float64 `json:"harga_beli"`
}

// ProductDetailResponse adds the time the product was last sold
type ProductDetailResponse struct {
	ProductResponse
	LastPurchased *string `json:"terakhir_dibeli"`
}

func toProductResponse(p domain.Product) ProductResponse {
	return ProductResponse{Barcode: p.Barcode, Name: p.Name, SellPrice: p.SellPrice, CostPrice: p.CostPrice}
}

// ProductsHandler returns every product ever sold, served from cache when possible
func ProductsHandler(products ProductStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		ctx := c.Request.Context()
		var cached []ProductResponse
		if found, err := utils.GetCache(ctx, rdb, utils.CacheKeyProducts, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}

		list, err := products.Products(ctx)
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to list products")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "msg": "Gagal memuat barang"})
			return
		}
		resp := make([]ProductResponse, 0, len(list))
		for _, p := range list {
			resp = append(resp, toProductResponse(p))
		}
		if err := utils.SetCache(ctx, rdb, utils.CacheKeyProducts, resp, utils.CacheTTL); err != nil {
			logrus.WithField("error", err.Error()).Warn("Failed to cache products")
		}
		c.JSON(http.StatusOK, resp)
	}
}

// ProductHandler returns one product by barcode, or null when it was never sold
func ProductHandler(products ProductStore, rdb *redis.Client) gin.HandlerFunc {
	return func(c *gin.Context) {
		barcode := c.Param("barcode")
		ctx := c.Request.Context()
		key := utils.CacheKeyProduct(barcode)

		var cached ProductDetailResponse
		if found, err := utils.GetCache(ctx, rdb, key, &cached); err == nil && found {
			c.JSON(http.StatusOK, cached)
			return
		}

		p, err := products.ProductByBarcode(ctx, barcode)
		if errors.Is(err, domain.ErrNotFound) {
			c.JSON(http.StatusOK, nil)
			return
		}
		if err != nil {
			logrus.WithFields(logrus.Fields{"barcode": barcode, "error": err.Error()}).Error("Failed to get product")
			c.JSON(http.StatusInternalServerError, gin.H{"status": "error", "msg": "Gagal memuat barang"})
			return
		}
		resp := ProductDetailResponse{ProductResponse: toProductResponse(*p)}
		if p.LastPurchased != nil {
			s := p.LastPurchased.Format("2006-01-02T15:04:05")
			resp.LastPurchased = &s
		}
		if err := utils.SetCache(ctx, rdb, key, resp, utils.CacheTTL); err != nil {
			logrus.WithFields(logrus.Fields{"barcode": barcode, "error": err.Error()}).Warn("Failed to cache product")
		}
		c.JSON(http.StatusOK, resp)
	}
}
