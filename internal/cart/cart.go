package cart

import (
	"slices"
	"time"

	"github.com/fjod/go_cart/checkout/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Cart holds line items and keeps their total in sync.
// A Cart is not safe for concurrent use; callers own one cart per session.
type Cart struct {
	items []domain.LineItem
	total decimal.Decimal

	now   func() time.Time
	newID func() string
}

type Option func(*Cart)

// WithClock sets the clock used to stamp checkout summaries
func WithClock(now func() time.Time) Option {
	return func(c *Cart) { c.now = now }
}

// WithIDGenerator sets the source of checkout summary IDs
func WithIDGenerator(newID func() string) Option {
	return func(c *Cart) { c.newID = newID }
}

// NewCart creates an empty cart
func NewCart(opts ...Option) *Cart {
	c := &Cart{
		items: []domain.LineItem{},
		total: decimal.Zero,
		now:   time.Now,
		newID: uuid.NewString,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// AddItem validates the input and appends it to the end of the cart
func (c *Cart) AddItem(in domain.ItemInput) error {
	item, err := Validate(in)
	if err != nil {
		return err
	}

	c.items = append(c.items, item)
	c.CalculateTotal()
	return nil
}

// RemoveItem removes the entry at index, shifting later entries down
func (c *Cart) RemoveItem(index int) error {
	if index < 0 || index >= len(c.items) {
		return &domain.IndexError{Index: index, Len: len(c.items)}
	}

	c.items = slices.Delete(c.items, index, index+1)
	c.CalculateTotal()
	return nil
}

// CalculateTotal recomputes the total from the current items and returns it
func (c *Cart) CalculateTotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range c.items {
		total = total.Add(item.Subtotal())
	}
	c.total = total
	return total
}

func (c *Cart) Total() decimal.Decimal {
	return c.total
}

// Items returns a copy of the current items
func (c *Cart) Items() []domain.LineItem {
	return slices.Clone(c.items)
}

func (c *Cart) Len() int {
	return len(c.items)
}

func (c *Cart) Clear() {
	c.items = []domain.LineItem{}
	c.total = decimal.Zero
}

// Complete snapshots the cart into a CheckoutSummary and clears it.
// An empty cart is rejected with ErrEmptyCart and left as is.
func (c *Cart) Complete() (*domain.CheckoutSummary, error) {
	if len(c.items) == 0 {
		return nil, domain.ErrEmptyCart
	}

	summary := &domain.CheckoutSummary{
		ID:        c.newID(),
		Items:     slices.Clone(c.items),
		Total:     c.total,
		ItemCount: len(c.items),
		Timestamp: c.now().UTC().Format(domain.TimestampLayout),
	}

	c.Clear()
	return summary, nil
}
