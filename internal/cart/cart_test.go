package cart

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/fjod/go_marketplace/internal/domain"
)

func TestAddItem_AccumulatesQuantity(t *testing.T) {
	c := New()

	require.NoError(t, c.AddItem(42, 3))
	assert.Equal(t, []domain.CartItem{{ProductID: 42, Quantity: 3}}, c.Items())

	require.NoError(t, c.AddItem(42, 2))
	assert.Equal(t, []domain.CartItem{{ProductID: 42, Quantity: 5}}, c.Items())
}

func TestAddItem_ZeroCountCreatesNoEntry(t *testing.T) {
	c := New()

	require.NoError(t, c.AddItem(7, 0))
	assert.Empty(t, c.Items())
	assert.Equal(t, 0, c.Len())
}

func TestAddItem_NegativeCountRejected(t *testing.T) {
	c := New()

	err := c.AddItem(7, -1)
	assert.ErrorIs(t, err, ErrNegativeQuantity)
	assert.Empty(t, c.Items())
}

func TestRemoveItem_DeletesEntryAtZero(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(42, 5))

	require.NoError(t, c.RemoveItem(42, 5))
	assert.Empty(t, c.Items())

	// The entry is gone, not stored at zero
	err := c.RemoveItem(42, 1)
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestRemoveItem_UnknownProduct(t *testing.T) {
	c := New()

	err := c.RemoveItem(99, 1)
	assert.ErrorIs(t, err, ErrUnknownProduct)
}

func TestRemoveItem_InsufficientQuantityLeavesCartUnchanged(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(42, 3))

	err := c.RemoveItem(42, 4)
	assert.ErrorIs(t, err, ErrInsufficientQuantity)
	assert.Equal(t, []domain.CartItem{{ProductID: 42, Quantity: 3}}, c.Items())
}

func TestRemoveThenAdd_RestoresPriorQuantity(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(42, 7))

	require.NoError(t, c.RemoveItem(42, 4))
	require.NoError(t, c.AddItem(42, 4))

	assert.Equal(t, []domain.CartItem{{ProductID: 42, Quantity: 7}}, c.Items())
}

func TestItems_EveryEntryOncePositive(t *testing.T) {
	c := New()
	require.NoError(t, c.AddItem(1, 2))
	require.NoError(t, c.AddItem(2, 1))
	require.NoError(t, c.AddItem(3, 4))
	require.NoError(t, c.RemoveItem(2, 1))

	items := c.Items()
	require.Len(t, items, 2)
	seen := make(map[int]bool)
	for _, item := range items {
		assert.Greater(t, item.Quantity, 0)
		assert.False(t, seen[item.ProductID], "product %d listed twice", item.ProductID)
		seen[item.ProductID] = true
	}
}

func TestCart_NeverHoldsNonPositiveQuantity(t *testing.T) {
	c := New()

	ops := []struct {
		add       bool
		productID int
		count     int
	}{
		{true, 1, 3}, {true, 2, 0}, {false, 1, 1}, {true, 1, 0},
		{false, 1, 2}, {false, 1, 5}, {true, 3, 1}, {false, 3, 1},
		{false, 2, 1}, {true, 2, 2},
	}
	for _, op := range ops {
		if op.add {
			_ = c.AddItem(op.productID, op.count)
		} else {
			_ = c.RemoveItem(op.productID, op.count)
		}
		for _, item := range c.Items() {
			require.Greater(t, item.Quantity, 0,
				"product %d stored with non-positive quantity", item.ProductID)
		}
	}
}

func TestCart_ExampleScenario(t *testing.T) {
	c := New()
	assert.Empty(t, c.Items())

	require.NoError(t, c.AddItem(42, 3))
	assert.Equal(t, []domain.CartItem{{ProductID: 42, Quantity: 3}}, c.Items())

	require.NoError(t, c.AddItem(42, 2))
	assert.Equal(t, []domain.CartItem{{ProductID: 42, Quantity: 5}}, c.Items())

	require.NoError(t, c.RemoveItem(42, 5))
	assert.Empty(t, c.Items())

	assert.ErrorIs(t, c.RemoveItem(42, 1), ErrUnknownProduct)
}

func TestCart_ConcurrentMutationsLoseNoUpdates(t *testing.T) {
	c := New()

	const goroutines = 8
	const perGoroutine = 100

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < perGoroutine; j++ {
				_ = c.AddItem(1, 1)
			}
		}()
	}
	wg.Wait()

	assert.Equal(t, []domain.CartItem{{ProductID: 1, Quantity: goroutines * perGoroutine}}, c.Items())
}
