package ordering

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrder(t *testing.T) {
	t.Run("creates order with valid inputs", func(t *testing.T) {
		order, err := NewOrder("order A", []int64{1, 2})
		require.NoError(t, err)
		require.NotNil(t, order)

		assert.Equal(t, "order A", order.Description)
		require.Len(t, order.Mappings, 2)
		assert.Equal(t, int64(1), order.Mappings[0].ProductID)
		assert.Equal(t, int64(2), order.Mappings[1].ProductID)
		assert.Equal(t, DefaultMappingQuantity, order.Mappings[0].Quantity)
	})

	t.Run("keeps duplicate product ids as separate mappings", func(t *testing.T) {
		order, err := NewOrder("order B", []int64{3, 3, 5})
		require.NoError(t, err)
		assert.Equal(t, []int64{3, 3, 5}, order.ProductIDs())
		for _, m := range order.Mappings {
			assert.Equal(t, 1, m.Quantity)
		}
	})

	t.Run("fails with empty description", func(t *testing.T) {
		_, err := NewOrder("", []int64{1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "description is required")
	})

	t.Run("fails with description too long", func(t *testing.T) {
		_, err := NewOrder(strings.Repeat("x", 101), []int64{1})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "cannot exceed 100 characters")
	})

	t.Run("fails with empty product list", func(t *testing.T) {
		_, err := NewOrder("order C", nil)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "At least one product ID is required")
	})

	t.Run("fails with non-positive product id", func(t *testing.T) {
		_, err := NewOrder("order D", []int64{1, 0})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "positive")
	})
}

func TestOrder_UpdateDescription(t *testing.T) {
	order, err := NewOrder("before", []int64{1})
	require.NoError(t, err)

	t.Run("updates with valid description", func(t *testing.T) {
		require.NoError(t, order.UpdateDescription("after"))
		assert.Equal(t, "after", order.Description)
	})

	t.Run("rejects empty description", func(t *testing.T) {
		require.Error(t, order.UpdateDescription(""))
		assert.Equal(t, "after", order.Description)
	})

	t.Run("rejects oversized description", func(t *testing.T) {
		require.Error(t, order.UpdateDescription(strings.Repeat("y", 101)))
		assert.Equal(t, "after", order.Description)
	})
}

func TestOrder_ReplaceProducts(t *testing.T) {
	t.Run("replaces the full mapping set", func(t *testing.T) {
		order, err := NewOrder("order A", []int64{1, 2})
		require.NoError(t, err)
		order.ID = 42

		require.NoError(t, order.ReplaceProducts([]int64{3}))
		require.Len(t, order.Mappings, 1)
		assert.Equal(t, int64(3), order.Mappings[0].ProductID)
		assert.Equal(t, int64(42), order.Mappings[0].OrderID)
	})

	t.Run("keeps duplicates in the replacement set", func(t *testing.T) {
		order, err := NewOrder("order A", []int64{1})
		require.NoError(t, err)

		require.NoError(t, order.ReplaceProducts([]int64{7, 7}))
		assert.Equal(t, []int64{7, 7}, order.ProductIDs())
	})

	t.Run("rejects empty replacement set", func(t *testing.T) {
		order, err := NewOrder("order A", []int64{1})
		require.NoError(t, err)

		require.Error(t, order.ReplaceProducts(nil))
		assert.Equal(t, []int64{1}, order.ProductIDs())
	})
}
