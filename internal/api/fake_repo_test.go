package api

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"kasir/internal/domain"
	"kasir/internal/middleware"
	"kasir/internal/notify"
	"kasir/internal/utils"

	"github.com/gin-gonic/gin"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

// fakeRepo keeps everything in memory
type fakeRepo struct {
	mu        sync.Mutex
	stores    map[uint]domain.Store
	users     map[uint]*domain.User
	buyers    []domain.Buyer
	sales     map[uint]*domain.Sale
	txRows    []domain.TransactionRow
	recapRows []domain.ItemRecapRow
	itemRows  []domain.ItemSaleRow
	products  []domain.Product
	err       error // returned by every call when set

	buyerCalls   int
	productCalls int
	lastRange    [2]time.Time
	lastStoreID  uint
	lastPrice    float64
}

func newFakeRepo() *fakeRepo {
	return &fakeRepo{
		stores: map[uint]domain.Store{
			1: {ID: 1, Name: "Toko Makmur", Code: "makmur", Address: "Jl. Merdeka 1"},
			2: {ID: 2, Name: "Toko Lain", Code: "lain"},
		},
		users: map[uint]*domain.User{},
		sales: map[uint]*domain.Sale{},
	}
}

func (f *fakeRepo) addUser(t *testing.T, id uint, username, password string, storeID uint) *domain.User {
	t.Helper()
	hash, err := utils.HashPassword(password)
	require.NoError(t, err)
	u := &domain.User{ID: id, Name: username, Username: username, PasswordHash: hash, Role: domain.RoleCashier, StoreID: storeID}
	f.users[id] = u
	return u
}

func (f *fakeRepo) UserWithStore(_ context.Context, id uint) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	u, ok := f.users[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	cp := *u
	cp.Store = f.stores[u.StoreID]
	return &cp, nil
}

func (f *fakeRepo) UserByUsername(_ context.Context, username string) (*domain.User, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return nil, f.err
	}
	for _, u := range f.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

func (f *fakeRepo) UpdatePasswordHash(_ context.Context, userID uint, hash string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.users[userID].PasswordHash = hash
	return nil
}

func (f *fakeRepo) RegisterStore(_ context.Context, store *domain.Store, user *domain.User) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, s := range f.stores {
		if s.Code == store.Code {
			return domain.ErrDuplicateStore
		}
	}
	for _, u := range f.users {
		if u.Username == user.Username {
			return domain.ErrDuplicateStore
		}
	}
	store.ID = uint(len(f.stores) + 1)
	f.stores[store.ID] = *store
	user.ID = uint(len(f.users) + 100)
	user.StoreID = store.ID
	f.users[user.ID] = user
	return nil
}

func (f *fakeRepo) Buyers(context.Context) ([]domain.Buyer, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.buyerCalls++
	if f.err != nil {
		return nil, f.err
	}
	return append([]domain.Buyer(nil), f.buyers...), nil
}

func (f *fakeRepo) UpsertBuyer(_ context.Context, b *domain.Buyer) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for i, existing := range f.buyers {
		if b.Phone != nil && existing.PhoneNumber() == *b.Phone {
			f.buyers[i].Name, f.buyers[i].Address = b.Name, b.Address
			b.ID = existing.ID
			return nil
		}
	}
	b.ID = uint(len(f.buyers) + 1)
	f.buyers = append(f.buyers, *b)
	return nil
}

func (f *fakeRepo) SyncSale(_ context.Context, sale *domain.Sale) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.err != nil {
		return f.err
	}
	for _, s := range f.sales {
		if s.ClientTxID == sale.ClientTxID {
			return domain.ErrDuplicateSale
		}
	}
	sale.ID = uint(len(f.sales) + 1)
	f.sales[sale.ID] = sale
	return nil
}

func (f *fakeRepo) SaleWithItems(_ context.Context, id uint) (*domain.Sale, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	s, ok := f.sales[id]
	if !ok {
		return nil, domain.ErrNotFound
	}
	return s, nil
}

func (f *fakeRepo) Transactions(_ context.Context, storeID uint, from, to time.Time) ([]domain.TransactionRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastStoreID, f.lastRange = storeID, [2]time.Time{from, to}
	return f.txRows, f.err
}

func (f *fakeRepo) ItemRecap(_ context.Context, storeID uint, from, to time.Time) ([]domain.ItemRecapRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastStoreID, f.lastRange = storeID, [2]time.Time{from, to}
	return f.recapRows, f.err
}

func (f *fakeRepo) ItemSales(_ context.Context, storeID uint, _ string, price float64, from, to time.Time) ([]domain.ItemSaleRow, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.lastStoreID, f.lastRange, f.lastPrice = storeID, [2]time.Time{from, to}, price
	return f.itemRows, f.err
}

func (f *fakeRepo) Products(context.Context) ([]domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.productCalls++
	return f.products, f.err
}

func (f *fakeRepo) ProductByBarcode(_ context.Context, barcode string) (*domain.Product, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.productCalls++
	for _, p := range f.products {
		if p.Barcode == barcode {
			cp := p
			return &cp, nil
		}
	}
	return nil, domain.ErrNotFound
}

// fakeNotifier records messages and answers with a fixed reply
type fakeNotifier struct {
	sent  []notify.Message
	reply *notify.Reply
	err   error
}

func (n *fakeNotifier) Send(_ context.Context, m notify.Message) (*notify.Reply, error) {
	n.sent = append(n.sent, m)
	return n.reply, n.err
}

var errBoom = errors.New("boom")

func newTestRouter(t *testing.T, repo *fakeRepo, rdb *redis.Client, notifier Notifier) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)
	r, err := NewRouter(Deps{Repo: repo, Cache: rdb, Notifier: notifier, SessionSecret: testSecret})
	require.NoError(t, err)
	return r
}

// do performs a request, logged in as userID when it is not zero
func do(t *testing.T, r http.Handler, method, target, body string, userID uint) *httptest.ResponseRecorder {
	t.Helper()
	var req *http.Request
	if body != "" {
		req = httptest.NewRequest(method, target, strings.NewReader(body))
		if strings.HasPrefix(body, "{") {
			req.Header.Set("Content-Type", "application/json")
		} else {
			req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
		}
	} else {
		req = httptest.NewRequest(method, target, nil)
	}
	if userID != 0 {
		token, err := utils.GenerateSessionToken(userID, testSecret, time.Now())
		require.NoError(t, err)
		req.AddCookie(&http.Cookie{Name: middleware.SessionCookie, Value: token})
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}
