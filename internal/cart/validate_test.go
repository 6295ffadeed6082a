package cart

import (
	"math"
	"testing"

	"github.com/fjod/go_cart/checkout/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func floatPtr(v float64) *float64 { return &v }
func intPtr(v int) *int           { return &v }

func TestValidate(t *testing.T) {
	tests := []struct {
		name     string
		in       domain.ItemInput
		kind     domain.ValidationKind
		contains []string
	}{
		{
			name:     "missing price and quantity",
			in:       domain.ItemInput{Name: "Invalid"},
			kind:     domain.ValidationMalformed,
			contains: []string{"price is required", "quantity is required"},
		},
		{
			name:     "missing name",
			in:       domain.ItemInput{Price: floatPtr(1), Quantity: intPtr(1)},
			kind:     domain.ValidationMalformed,
			contains: []string{"name is required"},
		},
		{
			name:     "NaN price",
			in:       domain.ItemInput{Name: "X", Price: floatPtr(math.NaN()), Quantity: intPtr(1)},
			kind:     domain.ValidationMalformed,
			contains: []string{"price must be a finite number"},
		},
		{
			name:     "infinite price",
			in:       domain.ItemInput{Name: "X", Price: floatPtr(math.Inf(1)), Quantity: intPtr(1)},
			kind:     domain.ValidationMalformed,
			contains: []string{"price must be a finite number"},
		},
		{
			name:     "malformed wins over out of range",
			in:       domain.ItemInput{Price: floatPtr(-5), Quantity: intPtr(0)},
			kind:     domain.ValidationMalformed,
			contains: []string{"name is required"},
		},
		{
			name:     "negative price",
			in:       domain.ItemInput{Name: "X", Price: floatPtr(-1), Quantity: intPtr(1)},
			kind:     domain.ValidationOutOfRange,
			contains: []string{"price must be non-negative"},
		},
		{
			name:     "negative price and quantity",
			in:       domain.ItemInput{Name: "X", Price: floatPtr(-1), Quantity: intPtr(-2)},
			kind:     domain.ValidationOutOfRange,
			contains: []string{"price must be non-negative", "quantity must be at least 1"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Validate(tt.in)

			var verr *domain.ValidationError
			require.ErrorAs(t, err, &verr)
			assert.Equal(t, tt.kind, verr.Kind)
			assert.Contains(t, err.Error(), tt.kind.String())
			for _, s := range tt.contains {
				assert.Contains(t, err.Error(), s)
			}
		})
	}
}

func TestValidate_Success(t *testing.T) {
	item, err := Validate(domain.ItemInput{Name: "Apple", Price: floatPtr(1.5), Quantity: intPtr(2)})
	require.NoError(t, err)

	assert.Equal(t, "Apple", item.Name)
	assert.Equal(t, 2, item.Quantity)
	assert.True(t, item.Price.Equal(decimal.RequireFromString("1.5")))
	assert.True(t, item.Subtotal().Equal(decimal.RequireFromString("3")))
}
