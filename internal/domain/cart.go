package domain

import "github.com/shopspring/decimal"

// ItemInput is an item as supplied by a caller, before validation.
// A nil Price or Quantity means the field was not provided.
type ItemInput struct {
	Name     string   `json:"name"`
	Price    *float64 `json:"price"`
	Quantity *int     `json:"quantity"`
}

// LineItem is a validated entry held by a cart
type LineItem struct {
	Name     string          `json:"name"`
	Price    decimal.Decimal `json:"price"`
	Quantity int             `json:"quantity"`
}

func (i LineItem) Subtotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// CheckoutSummary represents the cart state captured at completion time
type CheckoutSummary struct {
	ID        string          `json:"id"`
	Items     []LineItem      `json:"items"`
	Total     decimal.Decimal `json:"total"`
	ItemCount int             `json:"item_count"`
	Timestamp string          `json:"timestamp"`
}

// TimestampLayout is ISO-8601 with millisecond precision; applied to UTC times it ends in "Z".
const TimestampLayout = "2006-01-02T15:04:05.000Z07:00"
