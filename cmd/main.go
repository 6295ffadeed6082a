package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/fjod/go_cart/checkout/internal/cart"
	"github.com/fjod/go_cart/checkout/internal/config"
	"github.com/fjod/go_cart/checkout/internal/domain"
	"github.com/fjod/go_cart/checkout/internal/seed"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	logger, err := newLogger(cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(os.Stderr, "failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = logger.Sync() }()

	items, err := seed.Load(cfg.ItemsFile)
	if err != nil {
		logger.Fatal("failed to load basket", zap.String("items_file", cfg.ItemsFile), zap.Error(err))
	}

	if _, err := run(os.Stdout, logger, cart.NewCart(), items); err != nil {
		logger.Fatal("checkout failed", zap.Error(err))
	}
}

func newLogger(level string) (*zap.Logger, error) {
	lvl, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}
	zcfg := zap.NewProductionConfig()
	zcfg.Level = zap.NewAtomicLevelAt(lvl)
	return zcfg.Build()
}

// run fills the cart, prints its contents and completes the checkout.
// Rejected items are logged and skipped.
func run(w io.Writer, logger *zap.Logger, c *cart.Cart, items []domain.ItemInput) (*domain.CheckoutSummary, error) {
	fmt.Fprintln(w, "=== Checkout System Example ===")

	for _, in := range items {
		if err := c.AddItem(in); err != nil {
			var verr *domain.ValidationError
			if errors.As(err, &verr) {
				logger.Warn("item rejected", zap.String("name", in.Name), zap.Stringer("kind", verr.Kind), zap.Error(err))
				continue
			}
			return nil, err
		}
		logger.Debug("item added", zap.String("name", in.Name), zap.Stringer("total", c.Total()))
	}

	fmt.Fprintln(w, "\nCurrent items:")
	for i, item := range c.Items() {
		fmt.Fprintf(w, "  %d. %s - $%s x %d = $%s\n", i+1, item.Name, item.Price, item.Quantity, item.Subtotal().StringFixed(2))
	}
	fmt.Fprintf(w, "\nCurrent total: $%s\n", c.Total().StringFixed(2))

	summary, err := c.Complete()
	if err != nil {
		return nil, err
	}
	logger.Info("checkout completed",
		zap.String("checkout_id", summary.ID),
		zap.Int("item_count", summary.ItemCount),
		zap.Stringer("total", summary.Total))

	fmt.Fprintln(w, "\n=== Checkout Summary ===")
	fmt.Fprintf(w, "Checkout ID: %s\n", summary.ID)
	fmt.Fprintf(w, "Total items: %d\n", summary.ItemCount)
	fmt.Fprintf(w, "Total amount: $%s\n", summary.Total.StringFixed(2))
	fmt.Fprintf(w, "Timestamp: %s\n", summary.Timestamp)
	return summary, nil
}
