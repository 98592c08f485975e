package procurement

import (
	"testing"

	"github.com/procurement/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewRejection(t *testing.T) {
	ids := shared.NewDefaultSequence()
	order := createTestOrder(t, ids)
	line := addTestLine(t, ids, order, "Rice", 10)

	rejection, err := NewRejection(ids, line, 25, "wrong grade")
	require.NoError(t, err)

	assert.Same(t, line, rejection.Line)
	assert.Equal(t, int64(25), rejection.Quantity, "ledger keeps the requested quantity as-is")
	assert.Equal(t, "wrong grade", rejection.Reason)
}

func TestNewRejection_Validation(t *testing.T) {
	ids := shared.NewDefaultSequence()
	order := createTestOrder(t, ids)
	line := addTestLine(t, ids, order, "Rice", 10)

	t.Run("nil line", func(t *testing.T) {
		_, err := NewRejection(ids, nil, 5, "bad")
		assert.ErrorIs(t, err, shared.ErrUnknownReference)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := NewRejection(ids, line, -5, "bad")
		assert.ErrorIs(t, err, shared.ErrInvalidQuantity)
	})

	t.Run("zero quantity with empty reason", func(t *testing.T) {
		rejection, err := NewRejection(ids, line, 0, "")
		require.NoError(t, err)
		assert.Zero(t, rejection.Quantity)
		assert.Empty(t, rejection.Reason)
	})
}
