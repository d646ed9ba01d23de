package payments

import "github.com/shopspring/decimal"

// Order is a validated, immutable purchase order. Promotions holds the ids of
// card instruments whose promotion applies when that card pays the order in
// full; their order is irrelevant.
type Order struct {
	ID         string
	Value      decimal.Decimal
	Promotions []string
}

// NewOrder builds an Order from raw input literals.
//
// The value literal must be a non-negative decimal number with at most two
// fractional digits. Validation failures carry the offending literal verbatim.
func NewOrder(id, value string, promotions []string) (Order, error) {
	if id == "" {
		return Order{}, NewDomainError(ErrorRequiredField, "order.id", "Order ID cannot be null")
	}

	if value == "" {
		return Order{}, NewDomainError(ErrorRequiredField, "order.value", "Order value cannot be null")
	}

	parsed, err := decimal.NewFromString(value)
	if err != nil {
		return Order{}, NewDomainError(ErrorInvalidFormat, "order.value", "Order value is not a valid number: "+value)
	}

	if parsed.Exponent() < -2 {
		return Order{}, NewDomainError(ErrorInvalidArgument, "order.value", "Order value cannot have more than two decimal places: "+value)
	}

	if parsed.IsNegative() {
		return Order{}, NewDomainError(ErrorInvalidArgument, "order.value", "Order value cannot be negative: "+value)
	}

	if promotions == nil {
		promotions = []string{}
	}

	return Order{ID: id, Value: parsed, Promotions: promotions}, nil
}
