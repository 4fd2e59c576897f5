package cart

import (
	"sort"
	"sync"

	"github.com/fjod/go_marketplace/internal/domain"
)

// Cart tracks product quantities selected by a single session. Entries with
// quantity zero are never stored: removing the last unit deletes the entry.
//
// All methods are safe for concurrent use. The reference deployment shares
// carts across request handlers without locking; the mutex closes that
// lost-update window without changing single-client behavior.
type Cart struct {
	mu       sync.RWMutex
	products map[int]int // productID -> quantity
}

// New creates an empty cart.
func New() *Cart {
	return &Cart{
		products: make(map[int]int),
	}
}

// AddItem increments the stored quantity for productID by count. A product
// not yet in the cart starts at zero. There is no upper bound.
func (c *Cart) AddItem(productID, count int) error {
	if count < 0 {
		return ErrNegativeQuantity
	}
	if count == 0 {
		return nil
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[productID] += count
	return nil
}

// RemoveItem decrements the stored quantity for productID by count. The cart
// is left unchanged on failure. Removing down to exactly zero deletes the
// entry.
func (c *Cart) RemoveItem(productID, count int) error {
	if count < 0 {
		return ErrNegativeQuantity
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	quantity, exists := c.products[productID]
	if !exists {
		return ErrUnknownProduct
	}
	if quantity < count {
		return ErrInsufficientQuantity
	}

	quantity -= count
	if quantity == 0 {
		delete(c.products, productID)
		return nil
	}
	c.products[productID] = quantity
	return nil
}

// Items returns a snapshot of the cart contents, sorted by product ID.
// Every stored entry appears exactly once with a positive quantity.
func (c *Cart) Items() []domain.CartItem {
	c.mu.RLock()
	defer c.mu.RUnlock()

	items := make([]domain.CartItem, 0, len(c.products))
	for id, quantity := range c.products {
		items = append(items, domain.CartItem{ProductID: id, Quantity: quantity})
	}
	sort.Slice(items, func(i, j int) bool { return items[i].ProductID < items[j].ProductID })
	return items
}

// Len returns the number of distinct products in the cart.
func (c *Cart) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
