package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// writeFile drops content into a temp file and returns its path.
func writeFile(t *testing.T, name, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}

func TestRun_ReferenceScenario(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	ordersPath := writeFile(t, "orders.json", `[
		{"id": "ORDER1", "value": "100.00", "promotions": ["mZysk"]},
		{"id": "ORDER2", "value": "200.00", "promotions": ["BosBankrut"]},
		{"id": "ORDER3", "value": "150.00", "promotions": ["mZysk", "BosBankrut"]},
		{"id": "ORDER4", "value": "50.00"}
	]`)
	methodsPath := writeFile(t, "paymentmethods.json", `[
		{"id": "PUNKTY", "discount": "15", "limit": "100.00"},
		{"id": "mZysk", "discount": "10", "limit": "180.00"},
		{"id": "BosBankrut", "discount": "5", "limit": "200.00"}
	]`)

	var stdout, stderr bytes.Buffer
	err := run([]string{ordersPath, methodsPath}, &stdout, &stderr)
	require.NoError(t, err)

	// positive-spend instruments only, input order
	assert.Equal(t, "PUNKTY 100.00\nmZysk 165.00\nBosBankrut 190.00\n", stdout.String())
}

func TestRun_WrongArity(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	var stdout, stderr bytes.Buffer
	err := run([]string{"only-one"}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Usage: payment-optimizer")
}

func TestRun_NoOrders(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	ordersPath := writeFile(t, "orders.json", `[]`)
	methodsPath := writeFile(t, "paymentmethods.json", `[
		{"id": "PUNKTY", "discount": "0", "limit": "10.00"}
	]`)

	var stdout, stderr bytes.Buffer
	err := run([]string{ordersPath, methodsPath}, &stdout, &stderr)

	require.NoError(t, err)
	assert.Equal(t, "No orders to process.\n", stdout.String())
}

func TestRun_NoPaymentMethods(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	ordersPath := writeFile(t, "orders.json", `[{"id": "ORDER1", "value": "10.00"}]`)
	methodsPath := writeFile(t, "paymentmethods.json", `[]`)

	var stdout, stderr bytes.Buffer
	err := run([]string{ordersPath, methodsPath}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Error: no payment methods provided")
}

func TestRun_UnpayableBatch(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	ordersPath := writeFile(t, "orders.json", `[{"id": "ORDER1", "value": "100.00"}]`)
	methodsPath := writeFile(t, "paymentmethods.json", `[
		{"id": "PUNKTY", "discount": "0", "limit": "10.00"},
		{"id": "CardA", "discount": "0", "limit": "10.00"}
	]`)

	var stdout, stderr bytes.Buffer
	err := run([]string{ordersPath, methodsPath}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Cannot find a payment option for order ORDER1")
	assert.Empty(t, stdout.String())
}

func TestRun_InvalidOrderLiteral(t *testing.T) {
	t.Setenv("LOG_LEVEL", "error")

	ordersPath := writeFile(t, "orders.json", `[{"id": "ORDER1", "value": "-50.00"}]`)
	methodsPath := writeFile(t, "paymentmethods.json", `[
		{"id": "PUNKTY", "discount": "0", "limit": "10.00"}
	]`)

	var stdout, stderr bytes.Buffer
	err := run([]string{ordersPath, methodsPath}, &stdout, &stderr)

	require.Error(t, err)
	assert.Contains(t, stderr.String(), "Order value cannot be negative: -50.00")
}
