package store

import (
	"context"
	"sync"
	"time"

	"storefront/internal/kv"
	"storefront/internal/models"
	"storefront/internal/util"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// OrderStore owns the append-only order log. Orders are immutable once
// placed; their items are deep copies of the cart lines at placement time.
type OrderStore struct {
	mu     sync.Mutex
	kv     *kv.Store
	cart   *CartStore
	orders []models.Order
	logger *zap.Logger
}

// NewOrderStore loads the persisted order log, defaulting to empty
func NewOrderStore(ctx context.Context, kvs *kv.Store, cart *CartStore) *OrderStore {
	return &OrderStore{
		kv:     kvs,
		cart:   cart,
		orders: kv.Load(ctx, kvs, ordersKey, []models.Order{}),
		logger: util.GetLogger(),
	}
}

// PlaceOrder captures the current cart into a new order and clears the cart.
// Returns nil if the cart is empty, leaving the order log unchanged. The
// order append and the cart wipe are persisted as a single combined write so
// the two blobs cannot diverge across a crash.
func (s *OrderStore) PlaceOrder(ctx context.Context, details models.CustomerDetails) *models.Order {
	lines, total := s.cart.checkout()
	if len(lines) == 0 {
		return nil
	}

	order := models.Order{
		ID:            uuid.New().String(),
		Items:         lines,
		TotalAmount:   total,
		OrderDate:     time.Now().UTC(),
		Status:        models.OrderStatusPendingPayment,
		CustomerName:  details.CustomerName,
		CustomerEmail: details.CustomerEmail,
		CustomerPhone: details.CustomerPhone,
		PaymentMethod: details.PaymentMethod,
		TransactionID: details.TransactionID,
	}

	s.mu.Lock()
	s.orders = append(s.orders, order)
	snapshot := append([]models.Order(nil), s.orders...)
	s.mu.Unlock()

	s.kv.SaveAll(ctx,
		kv.Entry{Key: ordersKey, Value: snapshot},
		kv.Entry{Key: cartKey, Value: []models.CartLine{}},
	)

	s.logger.Info("Order placed",
		zap.String("order_id", order.ID),
		zap.Int64("total_amount", order.TotalAmount),
		zap.Int("line_count", len(order.Items)))

	return copyOrder(order)
}

// GetByID looks up an order by id
func (s *OrderStore) GetByID(orderID string) (models.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.orders {
		if s.orders[i].ID == orderID {
			return *copyOrder(s.orders[i]), true
		}
	}
	return models.Order{}, false
}

// List returns a copy of the order log in placement order
func (s *OrderStore) List() []models.Order {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]models.Order, len(s.orders))
	for i := range s.orders {
		out[i] = *copyOrder(s.orders[i])
	}
	return out
}

// copyOrder deep-copies an order so callers never alias the log
func copyOrder(o models.Order) *models.Order {
	o.Items = copyLines(o.Items)
	return &o
}
