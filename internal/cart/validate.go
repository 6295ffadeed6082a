package cart

import (
	"math"

	"github.com/fjod/go_cart/checkout/internal/domain"
	"github.com/shopspring/decimal"
)

// Validate turns an ItemInput into a LineItem.
// Missing or malformed fields are reported before out of range values.
func Validate(in domain.ItemInput) (domain.LineItem, error) {
	var malformed []string
	if in.Name == "" {
		malformed = append(malformed, "name is required")
	}
	switch {
	case in.Price == nil:
		malformed = append(malformed, "price is required")
	case math.IsNaN(*in.Price) || math.IsInf(*in.Price, 0):
		malformed = append(malformed, "price must be a finite number")
	}
	if in.Quantity == nil {
		malformed = append(malformed, "quantity is required")
	}
	if len(malformed) > 0 {
		return domain.LineItem{}, &domain.ValidationError{Kind: domain.ValidationMalformed, Fields: malformed}
	}

	var outOfRange []string
	if *in.Price < 0 {
		outOfRange = append(outOfRange, "price must be non-negative")
	}
	if *in.Quantity < 1 {
		outOfRange = append(outOfRange, "quantity must be at least 1")
	}
	if len(outOfRange) > 0 {
		return domain.LineItem{}, &domain.ValidationError{Kind: domain.ValidationOutOfRange, Fields: outOfRange}
	}

	return domain.LineItem{
		Name:     in.Name,
		Price:    decimal.NewFromFloat(*in.Price),
		Quantity: *in.Quantity,
	}, nil
}
