// Command payment-optimizer reads a batch of orders and a set of payment
// methods from JSON files, allocates spend to maximize captured discounts,
// and prints the amount spent per payment method.
//
// Usage:
//
//	payment-optimizer <orders_file> <payment_methods_file>
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"go.uber.org/zap"

	"github.com/elizaluszczyk/payment-optimizer/internal/config"
	"github.com/elizaluszczyk/payment-optimizer/internal/input"
	"github.com/elizaluszczyk/payment-optimizer/internal/logging"
	"github.com/elizaluszczyk/payment-optimizer/internal/payments"
)

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

func run(args []string, stdout, stderr io.Writer) error {
	if len(args) != 2 {
		fmt.Fprintln(stderr, "Usage: payment-optimizer <orders_file> <payment_methods_file>")
		return fmt.Errorf("expected 2 arguments, got %d", len(args))
	}

	cfg := config.LoadFromEnv()

	logger, _, err := logging.New(cfg.LogEnv, cfg.LogLevel)
	if err != nil {
		fmt.Fprintf(stderr, "Error: %v\n", err)
		return err
	}
	defer logger.Sync() //nolint:errcheck

	orders, err := input.ReadOrders(args[0])
	if err != nil {
		logger.Error("failed to read orders", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return err
	}

	methods, err := input.ReadPaymentMethods(args[1])
	if err != nil {
		logger.Error("failed to read payment methods", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return err
	}

	if len(orders) == 0 {
		logger.Warn("no orders found in input")
		fmt.Fprintln(stdout, "No orders to process.")

		return nil
	}

	if len(methods) == 0 {
		logger.Warn("no payment methods found in input")
		err := errors.New("no payment methods provided")
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return err
	}

	optimizer := payments.NewOptimizer(logger)

	totals, err := optimizer.Optimize(orders, methods)
	if err != nil {
		logger.Error("payment optimization failed", zap.Error(err))
		fmt.Fprintf(stderr, "Error: %v\n", err)

		return err
	}

	// one line per instrument with positive spend, input order
	for _, method := range methods {
		if spent := totals[method.ID]; spent.IsPositive() {
			fmt.Fprintf(stdout, "%s %s\n", method.ID, spent.StringFixed(2))
		}
	}

	return nil
}
