// Package store holds the live cart and the append-only order log, each
// loaded from and flushed to the kv blob store on every mutation.
package store

import (
	"context"
	"sync"

	"storefront/internal/kv"
	"storefront/internal/models"
	"storefront/internal/util"

	"go.uber.org/zap"
)

// Persisted blob keys
const (
	cartKey   = "cart"
	ordersKey = "orders"
)

// CartStore owns the live cart: an ordered sequence of cart lines with at
// most one line per product id, every quantity >= 1. Every mutation is
// flushed to the kv store before it returns.
type CartStore struct {
	mu     sync.Mutex
	kv     *kv.Store
	lines  []models.CartLine
	logger *zap.Logger
}

// NewCartStore loads the persisted cart, defaulting to empty
func NewCartStore(ctx context.Context, kvs *kv.Store) *CartStore {
	s := &CartStore{
		kv:     kvs,
		logger: util.GetLogger(),
	}
	s.lines = sanitizeLines(kv.Load(ctx, kvs, cartKey, []models.CartLine{}))
	return s
}

// sanitizeLines re-establishes the cart invariants over loaded data: drop
// non-positive quantities, keep the first line per product id.
func sanitizeLines(lines []models.CartLine) []models.CartLine {
	seen := make(map[string]bool, len(lines))
	out := lines[:0]
	for _, l := range lines {
		if l.Quantity < 1 || seen[l.ID] {
			continue
		}
		seen[l.ID] = true
		out = append(out, l)
	}
	return out
}

// Add merges quantity into the existing line for the product, or appends a
// new line. Quantity is a positive delta; non-positive deltas are ignored.
// Stock is not consulted.
func (s *CartStore) Add(ctx context.Context, product models.Product, quantity int) {
	if quantity < 1 {
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	merged := false
	for i := range s.lines {
		if s.lines[i].ID == product.ID {
			s.lines[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.lines = append(s.lines, models.CartLine{Product: product, Quantity: quantity})
	}

	s.persistLocked(ctx)
	s.logger.Debug("Cart line added",
		zap.String("product_id", product.ID),
		zap.Int("quantity", quantity),
		zap.Bool("merged", merged))
}

// Remove deletes the line for the product id; absent ids are a no-op
func (s *CartStore) Remove(ctx context.Context, productID string) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == productID {
			s.lines = append(s.lines[:i], s.lines[i+1:]...)
			break
		}
	}

	s.persistLocked(ctx)
}

// UpdateQuantity sets the line's quantity outright. A quantity <= 0 removes
// the line; an unknown product id is a no-op.
func (s *CartStore) UpdateQuantity(ctx context.Context, productID string, quantity int) {
	if quantity <= 0 {
		s.Remove(ctx, productID)
		return
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	for i := range s.lines {
		if s.lines[i].ID == productID {
			s.lines[i].Quantity = quantity
			break
		}
	}

	s.persistLocked(ctx)
}

// Clear empties the cart
func (s *CartStore) Clear(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.lines = []models.CartLine{}
	s.persistLocked(ctx)
}

// Lines returns a copy of the current cart lines
func (s *CartStore) Lines() []models.CartLine {
	s.mu.Lock()
	defer s.mu.Unlock()
	return copyLines(s.lines)
}

// Total returns the sum of price x quantity over all lines
func (s *CartStore) Total() int64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	var total int64
	for _, l := range s.lines {
		total += l.Subtotal()
	}
	return total
}

// ItemCount returns the sum of quantities over all lines
func (s *CartStore) ItemCount() int {
	s.mu.Lock()
	defer s.mu.Unlock()

	count := 0
	for _, l := range s.lines {
		count += l.Quantity
	}
	return count
}

// checkout atomically snapshots and empties the in-memory cart, returning
// the captured lines and their total. An empty cart returns nil and leaves
// the cart untouched. Persisting the wipe is the caller's concern: the order
// store folds it into the same write as the order append.
func (s *CartStore) checkout() ([]models.CartLine, int64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.lines) == 0 {
		return nil, 0
	}

	var total int64
	for _, l := range s.lines {
		total += l.Subtotal()
	}

	lines := copyLines(s.lines)
	s.lines = []models.CartLine{}
	return lines, total
}

func (s *CartStore) persistLocked(ctx context.Context) {
	kv.Save(ctx, s.kv, cartKey, s.lines)
}

// copyLines deep-copies cart lines so callers never alias store state
func copyLines(lines []models.CartLine) []models.CartLine {
	out := make([]models.CartLine, len(lines))
	copy(out, lines)
	for i := range out {
		if out[i].Stock != nil {
			stock := *out[i].Stock
			out[i].Stock = &stock
		}
	}
	return out
}
