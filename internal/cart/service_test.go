package cart

import (
	"context"
	"testing"

	"nebula-eats-be/internal/menu"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var (
	burger = menu.MenuItem{ID: "1", Name: "Nebula Burger", Price: 12.99, Available: true}
	fries  = menu.MenuItem{ID: "3", Name: "Asteroid Fries", Price: 5.99, Available: true}
	shake  = menu.MenuItem{ID: "4", Name: "Void Shake", Price: 6.50, Available: false}
)

func TestAdd(t *testing.T) {
	ctx := context.Background()

	t.Run("New line starts at quantity one", func(t *testing.T) {
		svc := NewService()

		require.NoError(t, svc.Add(ctx, "zoe", burger))

		items := svc.Items(ctx, "zoe")
		require.Len(t, items, 1)
		assert.Equal(t, 1, items[0].Quantity)
	})

	t.Run("Same item increments quantity", func(t *testing.T) {
		svc := NewService()

		require.NoError(t, svc.Add(ctx, "zoe", burger))
		require.NoError(t, svc.Add(ctx, "zoe", burger))

		items := svc.Items(ctx, "zoe")
		require.Len(t, items, 1)
		assert.Equal(t, 2, items[0].Quantity)
	})

	t.Run("Unavailable item is ignored twice", func(t *testing.T) {
		svc := NewService()

		require.NoError(t, svc.Add(ctx, "zoe", shake))
		require.NoError(t, svc.Add(ctx, "zoe", shake))

		assert.Empty(t, svc.Items(ctx, "zoe"))
		assert.Zero(t, svc.ItemCount(ctx, "zoe"))
	})

	t.Run("Carts are per customer", func(t *testing.T) {
		svc := NewService()

		require.NoError(t, svc.Add(ctx, "zoe", burger))
		require.NoError(t, svc.Add(ctx, "kai", fries))

		assert.Len(t, svc.Items(ctx, "zoe"), 1)
		assert.Len(t, svc.Items(ctx, "kai"), 1)
		assert.Equal(t, "1", svc.Items(ctx, "zoe")[0].Item.ID)
	})

	t.Run("Customer required", func(t *testing.T) {
		svc := NewService()
		assert.ErrorIs(t, svc.Add(ctx, "", burger), ErrCustomerRequired)
	})
}

func TestUpdateQuantity(t *testing.T) {
	ctx := context.Background()

	t.Run("Positive delta", func(t *testing.T) {
		svc := NewService()
		require.NoError(t, svc.Add(ctx, "zoe", burger))

		require.NoError(t, svc.UpdateQuantity(ctx, "zoe", "1", 2))

		assert.Equal(t, 3, svc.ItemCount(ctx, "zoe"))
	})

	t.Run("Quantity floors at zero and removes the line", func(t *testing.T) {
		svc := NewService()
		require.NoError(t, svc.Add(ctx, "zoe", burger))

		require.NoError(t, svc.UpdateQuantity(ctx, "zoe", "1", -5))

		assert.Empty(t, svc.Items(ctx, "zoe"))
	})

	t.Run("No line ever survives below quantity one", func(t *testing.T) {
		svc := NewService()
		require.NoError(t, svc.Add(ctx, "zoe", burger))
		require.NoError(t, svc.Add(ctx, "zoe", fries))

		deltas := []int{3, -1, -2, 1, -4, 2}
		for _, d := range deltas {
			require.NoError(t, svc.UpdateQuantity(ctx, "zoe", "1", d))
		}

		for _, line := range svc.Items(ctx, "zoe") {
			assert.GreaterOrEqual(t, line.Quantity, 1)
		}
	})

	t.Run("Unknown item id is a no-op", func(t *testing.T) {
		svc := NewService()
		require.NoError(t, svc.Add(ctx, "zoe", burger))

		require.NoError(t, svc.UpdateQuantity(ctx, "zoe", "ghost", 5))

		assert.Equal(t, 1, svc.ItemCount(ctx, "zoe"))
	})
}

func TestTotals(t *testing.T) {
	ctx := context.Background()

	t.Run("Reference scenario", func(t *testing.T) {
		// 2x Nebula Burger at 12.99 + 1x Asteroid Fries at 5.99
		svc := NewService()
		require.NoError(t, svc.Add(ctx, "zoe", burger))
		require.NoError(t, svc.Add(ctx, "zoe", burger))
		require.NoError(t, svc.Add(ctx, "zoe", fries))

		assert.InDelta(t, 31.97, svc.Total(ctx, "zoe"), 0.001)
		assert.Equal(t, 3, svc.ItemCount(ctx, "zoe"))
	})

	t.Run("Total tracks arbitrary mutation sequences", func(t *testing.T) {
		svc := NewService()
		require.NoError(t, svc.Add(ctx, "zoe", burger))
		require.NoError(t, svc.Add(ctx, "zoe", fries))
		require.NoError(t, svc.UpdateQuantity(ctx, "zoe", "1", 4))
		require.NoError(t, svc.UpdateQuantity(ctx, "zoe", "3", -1))
		require.NoError(t, svc.UpdateQuantity(ctx, "zoe", "1", -2))

		var want float64
		for _, line := range svc.Items(ctx, "zoe") {
			want += line.Item.Price * float64(line.Quantity)
		}
		assert.InDelta(t, want, svc.Total(ctx, "zoe"), 0.001)
	})

	t.Run("Empty cart", func(t *testing.T) {
		svc := NewService()
		assert.Zero(t, svc.Total(ctx, "zoe"))
		assert.Zero(t, svc.ItemCount(ctx, "zoe"))
	})
}

func TestClear(t *testing.T) {
	ctx := context.Background()

	svc := NewService()
	require.NoError(t, svc.Add(ctx, "zoe", burger))
	require.NoError(t, svc.Add(ctx, "zoe", fries))

	require.NoError(t, svc.Clear(ctx, "zoe"))

	assert.Empty(t, svc.Items(ctx, "zoe"))
	assert.Zero(t, svc.Total(ctx, "zoe"))
}

func TestItemsSnapshot(t *testing.T) {
	ctx := context.Background()

	svc := NewService()
	require.NoError(t, svc.Add(ctx, "zoe", burger))

	items := svc.Items(ctx, "zoe")
	items[0].Quantity = 99

	assert.Equal(t, 1, svc.ItemCount(ctx, "zoe"), "mutating the snapshot must not reach the cart")
}
