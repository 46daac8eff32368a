package api

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"

	"storefront/internal/catalog"
	"storefront/internal/kv"
	"storefront/internal/models"
	"storefront/internal/service"
	"storefront/internal/store"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestRouter(t *testing.T) *gin.Engine {
	t.Helper()
	gin.SetMode(gin.TestMode)

	kvs, err := kv.Open(filepath.Join(t.TempDir(), "api.db"))
	require.NoError(t, err)
	t.Cleanup(func() { _ = kvs.Close() })

	ctx := context.Background()
	cart := store.NewCartStore(ctx, kvs)
	orders := store.NewOrderStore(ctx, kvs, cart)
	storefront := service.NewStorefront(catalog.New(), cart, orders)

	router := gin.New()
	NewHandler(storefront).SetupRoutes(router)
	return router
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}

	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func decode(t *testing.T, w *httptest.ResponseRecorder, out any) {
	t.Helper()
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), out))
}

func TestListProductsWithFilterAndSort(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/products?category=Course&sort=price_asc", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Products []models.Product `json:"products"`
		Count    int              `json:"count"`
	}
	decode(t, w, &resp)

	require.Equal(t, 3, resp.Count)
	assert.Equal(t, "course001", resp.Products[0].ID)
	assert.Equal(t, int64(500), resp.Products[0].Price)
	assert.Equal(t, "course003", resp.Products[2].ID)
}

func TestGetProductNotFound(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodGet, "/api/v1/products/nope", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddCartItemUnknownProduct(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "nope",
		"quantity":   1,
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestAddCartItemRejectsNegativeQuantity(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "course001",
		"quantity":   -2,
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutValidation(t *testing.T) {
	router := newTestRouter(t)

	// Missing email.
	w := doJSON(t, router, http.MethodPost, "/api/v1/checkout", gin.H{
		"customer_name":  "X",
		"customer_phone": "+8801234567890",
		"payment_method": "bKash",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Malformed email.
	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout", gin.H{
		"customer_name":  "X",
		"customer_email": "not-an-email",
		"customer_phone": "+8801234567890",
		"payment_method": "bKash",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Unknown payment method.
	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout", gin.H{
		"customer_name":  "X",
		"customer_email": "x@x.com",
		"customer_phone": "+8801234567890",
		"payment_method": "PayPal",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestCheckoutEmptyCart(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/checkout", gin.H{
		"customer_name":  "X",
		"customer_email": "x@x.com",
		"customer_phone": "+8801234567890",
		"payment_method": "bKash",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
}

func TestPurchaseFlowOverHTTP(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "course001",
		"quantity":   1,
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "course001",
		"quantity":   2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var cartResp struct {
		Items     []models.CartLine `json:"items"`
		Total     int64             `json:"total"`
		ItemCount int               `json:"item_count"`
	}
	decode(t, w, &cartResp)
	require.Len(t, cartResp.Items, 1)
	assert.Equal(t, 3, cartResp.Items[0].Quantity)
	assert.Equal(t, int64(1500), cartResp.Total)
	assert.Equal(t, 3, cartResp.ItemCount)

	w = doJSON(t, router, http.MethodPost, "/api/v1/checkout", gin.H{
		"customer_name":  "X",
		"customer_email": "x@x.com",
		"customer_phone": "+8801234567890",
		"payment_method": "bKash",
		"transaction_id": "TX999",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	var order models.Order
	decode(t, w, &order)
	assert.NotEmpty(t, order.ID)
	assert.Equal(t, int64(1500), order.TotalAmount)
	assert.Equal(t, models.OrderStatusPendingPayment, order.Status)

	// Cart is empty after checkout.
	w = doJSON(t, router, http.MethodGet, "/api/v1/cart", nil)
	require.Equal(t, http.StatusOK, w.Code)
	decode(t, w, &cartResp)
	assert.Empty(t, cartResp.Items)
	assert.Zero(t, cartResp.Total)

	// Confirmation lookup.
	w = doJSON(t, router, http.MethodGet, "/api/v1/orders/"+order.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)

	// History.
	w = doJSON(t, router, http.MethodGet, "/api/v1/orders", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var historyResp struct {
		Orders []models.Order `json:"orders"`
		Count  int            `json:"count"`
	}
	decode(t, w, &historyResp)
	assert.Equal(t, 1, historyResp.Count)
}

func TestUpdateAndRemoveCartItems(t *testing.T) {
	router := newTestRouter(t)

	w := doJSON(t, router, http.MethodPost, "/api/v1/cart/items", gin.H{
		"product_id": "sub002",
		"quantity":   2,
	})
	require.Equal(t, http.StatusOK, w.Code)

	// Zero quantity removes the line.
	w = doJSON(t, router, http.MethodPut, "/api/v1/cart/items/sub002", gin.H{
		"quantity": 0,
	})
	require.Equal(t, http.StatusOK, w.Code)

	var cartResp struct {
		Items []models.CartLine `json:"items"`
	}
	decode(t, w, &cartResp)
	assert.Empty(t, cartResp.Items)

	// Delete on an absent line is still OK.
	w = doJSON(t, router, http.MethodDelete, "/api/v1/cart/items/sub002", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}
