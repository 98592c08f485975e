package catalog

import (
	"strings"
	"testing"

	"github.com/procurement/backend/internal/domain/shared"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewItem(t *testing.T) {
	ids := shared.NewDefaultSequence()

	item, err := NewItem(ids, "Basmati Rice", "kg")
	require.NoError(t, err)

	assert.Equal(t, shared.DefaultSequenceStart, item.ID)
	assert.Equal(t, "Basmati Rice", item.Name)
	assert.Equal(t, "kg", item.Unit)
}

func TestNewItem_Validation(t *testing.T) {
	ids := shared.NewDefaultSequence()

	tests := []struct {
		name     string
		itemName string
		unit     string
		wantErr  bool
	}{
		{"valid", "Tomatoes", "kg", false},
		{"empty unit is allowed", "Tomatoes", "", false},
		{"empty name", "", "kg", true},
		{"name too long", strings.Repeat("x", 201), "kg", true},
		{"unit too long", "Tomatoes", strings.Repeat("x", 21), true},
		{"unit at limit", "Tomatoes", strings.Repeat("x", 20), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewItem(ids, tt.itemName, tt.unit)
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
