package random

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestIndex(t *testing.T) {
	t.Run("stays within bounds", func(t *testing.T) {
		for i := 0; i < 200; i++ {
			idx, err := Index(3)
			require.NoError(t, err)
			assert.GreaterOrEqual(t, idx, 0)
			assert.Less(t, idx, 3)
		}
	})

	t.Run("single element is always zero", func(t *testing.T) {
		idx, err := Index(1)
		require.NoError(t, err)
		assert.Equal(t, 0, idx)
	})

	t.Run("rejects empty range", func(t *testing.T) {
		_, err := Index(0)
		assert.Error(t, err)
	})

	t.Run("reaches every index", func(t *testing.T) {
		seen := make(map[int]bool)
		for i := 0; i < 500 && len(seen) < 4; i++ {
			idx, err := Picker{}.Pick(4)
			require.NoError(t, err)
			seen[idx] = true
		}
		assert.Len(t, seen, 4)
	})
}
