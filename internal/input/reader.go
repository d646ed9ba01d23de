package input

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/elizaluszczyk/payment-optimizer/internal/payments"
)

type orderRecord struct {
	ID         string   `json:"id"`
	Value      string   `json:"value"`
	Promotions []string `json:"promotions"`
}

type paymentMethodRecord struct {
	ID       string `json:"id"`
	Discount string `json:"discount"`
	Limit    string `json:"limit"`
}

// ReadOrders loads orders from a JSON array file. Records failing domain
// validation abort the read; no partial batch is returned.
func ReadOrders(path string) ([]payments.Order, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read orders file: %w", err)
	}

	var records []orderRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse orders file %s: %w", path, err)
	}

	orders := make([]payments.Order, 0, len(records))

	for _, record := range records {
		order, err := payments.NewOrder(record.ID, record.Value, record.Promotions)
		if err != nil {
			return nil, err
		}

		orders = append(orders, order)
	}

	return orders, nil
}

// ReadPaymentMethods loads payment methods from a JSON array file. Records
// failing domain validation abort the read; no partial set is returned.
func ReadPaymentMethods(path string) ([]payments.PaymentMethod, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read payment methods file: %w", err)
	}

	var records []paymentMethodRecord
	if err := json.Unmarshal(data, &records); err != nil {
		return nil, fmt.Errorf("parse payment methods file %s: %w", path, err)
	}

	methods := make([]payments.PaymentMethod, 0, len(records))

	for _, record := range records {
		method, err := payments.NewPaymentMethod(record.ID, record.Discount, record.Limit)
		if err != nil {
			return nil, err
		}

		methods = append(methods, method)
	}

	return methods, nil
}
