package service

import (
	"context"
	"errors"

	"storefront/internal/catalog"
	"storefront/internal/models"
	"storefront/internal/store"
	"storefront/internal/util"

	"go.uber.org/zap"
)

// ErrEmptyCart is returned when an order is placed against an empty cart
var ErrEmptyCart = errors.New("cart is empty")

// ErrProductNotFound is returned when a cart mutation names an unknown product
var ErrProductNotFound = errors.New("product not found")

// Storefront is the single access point for all consumers: catalog queries,
// cart mutations and order placement behind one handle. It is constructed
// once at wiring time; there are no package-level instances.
type Storefront struct {
	catalog *catalog.Catalog
	cart    *store.CartStore
	orders  *store.OrderStore
	logger  *zap.Logger
}

// NewStorefront creates the facade over an already-wired catalog and stores
func NewStorefront(cat *catalog.Catalog, cart *store.CartStore, orders *store.OrderStore) *Storefront {
	return &Storefront{
		catalog: cat,
		cart:    cart,
		orders:  orders,
		logger:  util.GetLogger(),
	}
}

// Products returns the full catalog
func (s *Storefront) Products() []models.Product {
	return s.catalog.List()
}

// ProductByID looks up a catalog product
func (s *Storefront) ProductByID(id string) (models.Product, bool) {
	return s.catalog.ByID(id)
}

// ProductsByCategory returns the catalog slice for one category
func (s *Storefront) ProductsByCategory(category string) []models.Product {
	return s.catalog.ByCategory(category)
}

// BrowseProducts runs the listing pipeline: category filter, search, sort
func (s *Storefront) BrowseProducts(category, term string, order catalog.SortOrder) []models.Product {
	return s.catalog.Browse(category, term, order)
}

// Categories returns the closed category set
func (s *Storefront) Categories() []string {
	return s.catalog.Categories()
}

// AddToCart resolves the product and merges quantity into the cart
func (s *Storefront) AddToCart(ctx context.Context, productID string, quantity int) error {
	ctx, span := util.StartSpan(ctx, "Storefront.AddToCart")
	defer span.End()

	product, ok := s.catalog.ByID(productID)
	if !ok {
		return ErrProductNotFound
	}

	s.cart.Add(ctx, product, quantity)
	util.CartMutationsTotal.WithLabelValues("add").Inc()
	return nil
}

// RemoveFromCart deletes the product's line; unknown ids are a no-op
func (s *Storefront) RemoveFromCart(ctx context.Context, productID string) {
	ctx, span := util.StartSpan(ctx, "Storefront.RemoveFromCart")
	defer span.End()

	s.cart.Remove(ctx, productID)
	util.CartMutationsTotal.WithLabelValues("remove").Inc()
}

// UpdateCartQuantity sets a line's quantity; <= 0 removes the line
func (s *Storefront) UpdateCartQuantity(ctx context.Context, productID string, quantity int) {
	ctx, span := util.StartSpan(ctx, "Storefront.UpdateCartQuantity")
	defer span.End()

	s.cart.UpdateQuantity(ctx, productID, quantity)
	util.CartMutationsTotal.WithLabelValues("update").Inc()
}

// ClearCart empties the cart
func (s *Storefront) ClearCart(ctx context.Context) {
	ctx, span := util.StartSpan(ctx, "Storefront.ClearCart")
	defer span.End()

	s.cart.Clear(ctx)
	util.CartMutationsTotal.WithLabelValues("clear").Inc()
}

// Cart returns a copy of the current cart lines
func (s *Storefront) Cart() []models.CartLine {
	return s.cart.Lines()
}

// CartTotal is recomputed from the live cart on every call, never cached
func (s *Storefront) CartTotal() int64 {
	return s.cart.Total()
}

// CartItemCount is recomputed from the live cart on every call, never cached
func (s *Storefront) CartItemCount() int {
	return s.cart.ItemCount()
}

// PlaceOrder freezes the current cart into a new order and clears the cart.
// Customer details are trusted; validation happens in the caller before this
// point. Returns ErrEmptyCart if there is nothing to order.
func (s *Storefront) PlaceOrder(ctx context.Context, details models.CustomerDetails) (*models.Order, error) {
	ctx, span := util.StartSpan(ctx, "Storefront.PlaceOrder")
	defer span.End()

	order := s.orders.PlaceOrder(ctx, details)
	if order == nil {
		util.OrdersRejectedTotal.WithLabelValues("empty_cart").Inc()
		return nil, ErrEmptyCart
	}

	util.OrdersPlacedTotal.Inc()
	util.OrderAmountTotal.Add(float64(order.TotalAmount))
	return order, nil
}

// OrderByID looks up a placed order
func (s *Storefront) OrderByID(orderID string) (models.Order, bool) {
	return s.orders.GetByID(orderID)
}

// Orders returns the order history, newest first
func (s *Storefront) Orders() []models.Order {
	orders := s.orders.List()
	for i, j := 0, len(orders)-1; i < j; i, j = i+1, j-1 {
		orders[i], orders[j] = orders[j], orders[i]
	}
	return orders
}
