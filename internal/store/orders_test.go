package store

import (
	"context"
	"testing"
	"time"

	"storefront/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var testCustomer = models.CustomerDetails{
	CustomerName:  "X",
	CustomerEmail: "x@x.com",
	CustomerPhone: "+8801234567890",
	PaymentMethod: models.PaymentMethodBkash,
	TransactionID: "TX12345",
}

func TestPlaceOrderEmptyCartReturnsNil(t *testing.T) {
	ctx := context.Background()
	kvs := openTestKV(t)
	cart := NewCartStore(ctx, kvs)
	orders := NewOrderStore(ctx, kvs, cart)

	order := orders.PlaceOrder(ctx, testCustomer)

	assert.Nil(t, order)
	assert.Empty(t, orders.List())
}

func TestPlaceOrderFreezesCartIntoOrder(t *testing.T) {
	ctx := context.Background()
	kvs := openTestKV(t)
	cart := NewCartStore(ctx, kvs)
	orders := NewOrderStore(ctx, kvs, cart)

	cart.Add(ctx, productA, 1)
	cart.Add(ctx, productA, 2)
	wantTotal := cart.Total()

	order := orders.PlaceOrder(ctx, testCustomer)
	require.NotNil(t, order)

	assert.NotEmpty(t, order.ID)
	assert.Equal(t, wantTotal, order.TotalAmount)
	assert.Equal(t, 3*productA.Price, order.TotalAmount)
	assert.Equal(t, models.OrderStatusPendingPayment, order.Status)
	assert.WithinDuration(t, time.Now().UTC(), order.OrderDate, time.Minute)

	require.Len(t, order.Items, 1)
	assert.Equal(t, productA.ID, order.Items[0].ID)
	assert.Equal(t, 3, order.Items[0].Quantity)

	assert.Equal(t, testCustomer.CustomerName, order.CustomerName)
	assert.Equal(t, testCustomer.CustomerEmail, order.CustomerEmail)
	assert.Equal(t, testCustomer.CustomerPhone, order.CustomerPhone)
	assert.Equal(t, testCustomer.PaymentMethod, order.PaymentMethod)
	assert.Equal(t, testCustomer.TransactionID, order.TransactionID)

	// Exactly one order appended, cart cleared.
	assert.Len(t, orders.List(), 1)
	assert.Empty(t, cart.Lines())
	assert.Zero(t, cart.Total())
}

func TestPlacedOrderUnaffectedByLaterCartMutations(t *testing.T) {
	ctx := context.Background()
	kvs := openTestKV(t)
	cart := NewCartStore(ctx, kvs)
	orders := NewOrderStore(ctx, kvs, cart)

	cart.Add(ctx, productA, 2)
	order := orders.PlaceOrder(ctx, testCustomer)
	require.NotNil(t, order)

	cart.Add(ctx, productA, 10)
	cart.Add(ctx, productB, 1)

	stored, ok := orders.GetByID(order.ID)
	require.True(t, ok)
	require.Len(t, stored.Items, 1)
	assert.Equal(t, 2, stored.Items[0].Quantity)

	// Mutating the returned copy must not reach the log either.
	order.Items[0].Quantity = 99
	stored, _ = orders.GetByID(order.ID)
	assert.Equal(t, 2, stored.Items[0].Quantity)
}

func TestGetByIDUnknownOrder(t *testing.T) {
	ctx := context.Background()
	kvs := openTestKV(t)
	cart := NewCartStore(ctx, kvs)
	orders := NewOrderStore(ctx, kvs, cart)

	_, ok := orders.GetByID("no-such-order")
	assert.False(t, ok)
}

func TestOrderIDsAreUnique(t *testing.T) {
	ctx := context.Background()
	kvs := openTestKV(t)
	cart := NewCartStore(ctx, kvs)
	orders := NewOrderStore(ctx, kvs, cart)

	seen := map[string]bool{}
	for i := 0; i < 5; i++ {
		cart.Add(ctx, productA, 1)
		order := orders.PlaceOrder(ctx, testCustomer)
		require.NotNil(t, order)
		assert.False(t, seen[order.ID])
		seen[order.ID] = true
	}
}

func TestOrderLogSurvivesReload(t *testing.T) {
	ctx := context.Background()
	kvs := openTestKV(t)

	cart := NewCartStore(ctx, kvs)
	orders := NewOrderStore(ctx, kvs, cart)

	cart.Add(ctx, productA, 3)
	placed := orders.PlaceOrder(ctx, testCustomer)
	require.NotNil(t, placed)

	// Fresh stores over the same medium, as after a process restart.
	cart2 := NewCartStore(ctx, kvs)
	orders2 := NewOrderStore(ctx, kvs, cart2)

	assert.Empty(t, cart2.Lines(), "cart wipe must be persisted with the order append")

	log := orders2.List()
	require.Len(t, log, 1)
	assert.Equal(t, placed.ID, log[0].ID)
	assert.Equal(t, placed.TotalAmount, log[0].TotalAmount)
	require.Len(t, log[0].Items, 1)
	assert.Equal(t, 3, log[0].Items[0].Quantity)
}
