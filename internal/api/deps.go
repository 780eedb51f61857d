package api

import (
	"context" // Context for store calls
	"time"    // Report ranges

	"kasir/internal/domain"     // Importing domain models
	"kasir/internal/middleware" // Session loading
	"kasir/internal/notify"     // WhatsApp proxy

	"github.com/redis/go-redis/v9" // Redis client
)

// UserStore covers login and registration
type UserStore interface {
	UserByUsername(ctx context.Context, username string) (*domain.User, error)
	UpdatePasswordHash(ctx context.Context, userID uint, hash string) error
	RegisterStore(ctx context.Context, store *domain.Store, user *domain.User) error
}

// BuyerStore covers the buyer list and buyer sync
type BuyerStore interface {
	Buyers(ctx context.Context) ([]domain.Buyer, error)
	UpsertBuyer(ctx context.Context, b *domain.Buyer) error
}

// SaleStore covers sale sync and receipt lookups
type SaleStore interface {
	SyncSale(ctx context.Context, sale *domain.Sale) error
	SaleWithItems(ctx context.Context, id uint) (*domain.Sale, error)
}

// ReportStore covers the sales reports
type ReportStore interface {
	Transactions(ctx context.Context, storeID uint, from, to time.Time) ([]domain.TransactionRow, error)
	ItemRecap(ctx context.Context, storeID uint, from, to time.Time) ([]domain.ItemRecapRow, error)
	ItemSales(ctx context.Context, storeID uint, barcode string, price float64, from, to time.Time) ([]domain.ItemSaleRow, error)
}

// ProductStore covers the product catalog
type ProductStore interface {
	Products(ctx context.Context) ([]domain.Product, error)
	ProductByBarcode(ctx context.Context, barcode string) (*domain.Product, error)
}

// Repository is everything the router needs from the database
type Repository interface {
	middleware.UserLoader
	UserStore
	BuyerStore
	SaleStore
	ReportStore
	ProductStore
}

// Notifier sends WhatsApp messages
type Notifier interface {
	Send(ctx context.Context, m notify.Message) (*notify.Reply, error)
}

// Deps are the collaborators wired into the router
type Deps struct {
	Repo          Repository    // Database access
	Cache         *redis.Client // Optional lookup cache
	Notifier      Notifier      // Optional WhatsApp proxy
	SessionSecret string        // Session token secret
	SecureCookie  bool          // Send the session cookie over HTTPS only
}
