package api

import (
	"net/http"
	"testing"
	"time"

	"kasir/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func productRepo(t *testing.T) *fakeRepo {
	t.Helper()
	repo := newFakeRepo()
	repo.addUser(t, 7, "ani", "rahasia123", 1)
	last := time.Date(2025, 9, 15, 9, 30, 0, 0, time.Local)
	repo.products = []domain.Product{
		{Barcode: "123", Name: "Gula", SellPrice: 15000, CostPrice: 12000, LastPurchased: &last},
		{Barcode: "456", Name: "Teh", SellPrice: 5000, CostPrice: 4000},
	}
	return repo
}

func TestProductsAreCached(t *testing.T) {
	_, rdb := newTestRedis(t)
	repo := productRepo(t)
	r := newTestRouter(t, repo, rdb, nil)

	for range 2 {
		w := do(t, r, http.MethodGet, "/api/all-barang", "", 0)
		require.Equal(t, http.StatusOK, w.Code)
		assert.JSONEq(t, `[
			{"barcode":"123","nama":"Gula","harga_jual":15000,"harga_beli":12000},
			{"barcode":"456","nama":"Teh","harga_jual":5000,"harga_beli":4000}
		]`, w.Body.String())
	}
	assert.Equal(t, 1, repo.productCalls)
}

func TestProductsWithoutCache(t *testing.T) {
	repo := productRepo(t)
	r := newTestRouter(t, repo, nil, nil)

	do(t, r, http.MethodGet, "/api/all-barang", "", 0)
	do(t, r, http.MethodGet, "/api/all-barang", "", 0)

	assert.Equal(t, 2, repo.productCalls)
}

func TestProductByBarcode(t *testing.T) {
	_, rdb := newTestRedis(t)
	repo := productRepo(t)
	r := newTestRouter(t, repo, rdb, nil)

	w := do(t, r, http.MethodGet, "/api/barang/123", "", 7)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"barcode":"123","nama":"Gula","harga_jual":15000,"harga_beli":12000,"terakhir_dibeli":"2025-09-15T09:30:00"}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/barang/456", "", 7)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `{"barcode":"456","nama":"Teh","harga_jual":5000,"harga_beli":4000,"terakhir_dibeli":null}`, w.Body.String())

	w = do(t, r, http.MethodGet, "/api/barang/999", "", 7)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "null", w.Body.String())

	// Served from cache the second time
	calls := repo.productCalls
	do(t, r, http.MethodGet, "/api/barang/123", "", 7)
	assert.Equal(t, calls, repo.productCalls)
}
