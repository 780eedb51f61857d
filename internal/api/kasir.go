package api

import (
	"net/http" // HTTP status codes

	"github.com/gin-gonic/gin"   // Gin web framework
	"github.com/sirupsen/logrus" // Logging library
)

// KasirPageHandler renders the POS page with the buyer list and store info
func KasirPageHandler(buyers BuyerStore) gin.HandlerFunc {
	return func(c *gin.Context) {
		list, err := buyers.Buyers(c.Request.Context())
		if err != nil {
			logrus.WithField("error", err.Error()).Error("Failed to list buyers")
			c.String(http.StatusInternalServerError, "Gagal memuat data pembeli")
			return
		}
		c.HTML(http.StatusOK, "kasir.html", gin.H{
			"toko":    sessionStore(c),
			"pembeli": list,
		})
	}
}
