package kernel_test

import (
	"testing"

	"dashboard/internal/core/domain/model/kernel"
	"dashboard/internal/pkg/errs"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewOrderID(t *testing.T) {
	t.Run("should create id from backend value", func(t *testing.T) {
		id, err := kernel.NewOrderID("68a1f0c2d94b3a0012ef77a1")

		require.NoError(t, err)
		assert.Equal(t, "68a1f0c2d94b3a0012ef77a1", id.String())
		require.NoError(t, id.Validate())
	})

	t.Run("should reject empty and blank values", func(t *testing.T) {
		for _, value := range []string{"", "   ", "\t\n"} {
			_, err := kernel.NewOrderID(value)

			require.Error(t, err)
			assert.ErrorIs(t, err, errs.ErrValueIsRequired)
		}
	})
}

func TestOrderID_Validate(t *testing.T) {
	t.Run("zero value fails validation", func(t *testing.T) {
		var id kernel.OrderID

		err := id.Validate()

		require.Error(t, err)
		assert.ErrorIs(t, err, errs.ErrValueIsRequired)
	})
}

func TestOrderID_IsEqual(t *testing.T) {
	a, err := kernel.NewOrderID("o1")
	require.NoError(t, err)
	b, err := kernel.NewOrderID("o1")
	require.NoError(t, err)
	c, err := kernel.NewOrderID("o2")
	require.NoError(t, err)

	assert.True(t, a.IsEqual(b))
	assert.False(t, a.IsEqual(c))
}
