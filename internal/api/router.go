package api

import (
	"fmt"      // Error wrapping
	"net/http" // HTTP status codes

	"kasir/internal/middleware" // Custom middleware
	"kasir/web"                 // Embedded templates and scripts

	"github.com/gin-gonic/gin" // Gin web framework
)

// NewRouter builds the gin engine with every kasir route
func NewRouter(d Deps) (*gin.Engine, error) {
	tmpl, err := web.Templates()
	if err != nil {
		return nil, fmt.Errorf("parse templates: %w", err)
	}

	r := gin.New()
	r.SetHTMLTemplate(tmpl)
	// Set trusted proxies for Gin
	if err := r.SetTrustedProxies([]string{"127.0.0.1"}); err != nil {
		return nil, fmt.Errorf("set trusted proxies: %w", err)
	}
	r.Use(gin.Recovery(), middleware.RequestLogger(), middleware.SessionMiddleware(d.SessionSecret, d.Repo))

	// Offline shell. The worker lives at the root so its scope covers every page.
	assets := http.FS(web.Static())
	r.StaticFS("/static", assets)
	r.GET("/service-worker.js", func(c *gin.Context) {
		c.FileFromFS("service-worker.js", assets)
	})

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	// Session routes
	r.GET("/login", LoginPageHandler())
	r.POST("/login", LoginHandler(d.Repo, d.SessionSecret, d.SecureCookie))
	r.GET("/logout", LogoutHandler(d.SecureCookie))
	r.GET("/register", RegisterPageHandler())
	r.POST("/register", RegisterHandler(d.Repo, d.SessionSecret, d.SecureCookie))

	// Sync API used by offline clients, reachable without a session
	r.GET("/api/pembeli", BuyersHandler(d.Repo, d.Cache))
	r.POST("/api/sync-pembeli", SyncBuyerHandler(d.Repo, d.Cache))
	r.POST("/api/sync-transaksi", SyncSaleHandler(d.Repo, d.Cache))
	r.GET("/api/penjualan/:id", SaleDetailHandler(d.Repo))
	r.GET("/api/all-barang", ProductsHandler(d.Repo, d.Cache))
	r.POST("/api/send-wa", SendWAHandler(d.Notifier))

	// Pages and reports (login required)
	auth := r.Group("", middleware.LoginRequired())
	auth.GET("/", KasirPageHandler(d.Repo))
	auth.GET("/penjualan", SalesReportPageHandler(d.Repo))
	auth.GET("/penjualan-hari-ini/print-transaksi", PrintTransactionsHandler(d.Repo))
	auth.GET("/penjualan-hari-ini/print-detail", PrintItemRecapHandler(d.Repo))
	auth.GET("/penjualan-hari-ini/export-transaksi/xlsx", ExportTransactionsHandler(d.Repo))
	auth.GET("/penjualan-hari-ini/export-detail/xlsx", ExportItemRecapHandler(d.Repo))
	auth.GET("/api/penjualan", SalesReportJSONHandler(d.Repo))
	auth.GET("/api/detail-barang/:barcode/:harga", ItemSalesHandler(d.Repo))
	auth.GET("/api/barang/:barcode", ProductHandler(d.Repo, d.Cache))

	return r, nil
}
