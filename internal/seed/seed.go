package seed

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/fjod/go_cart/checkout/internal/domain"
)

// DefaultBasket is used when no items file is configured
func DefaultBasket() []domain.ItemInput {
	return []domain.ItemInput{
		newItem("Apple", 1.50, 3),
		newItem("Banana", 0.75, 5),
		newItem("Orange", 2.00, 2),
	}
}

// Load returns the default basket for an empty path, otherwise the items in the file
func Load(path string) ([]domain.ItemInput, error) {
	if path == "" {
		return DefaultBasket(), nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open items file: %w", err)
	}
	defer f.Close()

	return Decode(f)
}

// Decode reads a JSON array of items. Fields left out stay nil so the cart can reject them.
func Decode(r io.Reader) ([]domain.ItemInput, error) {
	var items []domain.ItemInput
	if err := json.NewDecoder(r).Decode(&items); err != nil {
		return nil, fmt.Errorf("failed to decode items: %w", err)
	}
	return items, nil
}

func newItem(name string, price float64, quantity int) domain.ItemInput {
	return domain.ItemInput{Name: name, Price: &price, Quantity: &quantity}
}
