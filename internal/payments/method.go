package payments

import (
	"strconv"

	"github.com/shopspring/decimal"
)

// PointsMethodID is the reserved identifier of the loyalty points instrument.
const PointsMethodID = "PUNKTY"

// PaymentMethod is a validated, immutable payment instrument definition:
// an id, an integer discount percent, and a spendable limit.
type PaymentMethod struct {
	ID       string
	Discount int
	Limit    decimal.Decimal
}

// NewPaymentMethod builds a PaymentMethod from raw input literals.
//
// The discount literal must be an integer between 0 and 100; the limit
// literal must be a non-negative decimal with at most two fractional digits.
// Validation failures carry the offending literal verbatim.
func NewPaymentMethod(id, discount, limit string) (PaymentMethod, error) {
	if id == "" {
		return PaymentMethod{}, NewDomainError(ErrorRequiredField, "paymentMethod.id", "PaymentMethod ID cannot be null")
	}

	if discount == "" {
		return PaymentMethod{}, NewDomainError(ErrorRequiredField, "paymentMethod.discount", "PaymentMethod discount cannot be null")
	}

	if limit == "" {
		return PaymentMethod{}, NewDomainError(ErrorRequiredField, "paymentMethod.limit", "PaymentMethod limit cannot be null")
	}

	percent, err := strconv.Atoi(discount)
	if err != nil {
		return PaymentMethod{}, NewDomainError(ErrorInvalidFormat, "paymentMethod.discount", "PaymentMethod discount is not a valid integer: "+discount)
	}

	if percent < 0 || percent > 100 {
		return PaymentMethod{}, NewDomainError(ErrorInvalidArgument, "paymentMethod.discount", "Discount percentage must be between 0 and 100: "+discount)
	}

	parsed, err := decimal.NewFromString(limit)
	if err != nil {
		return PaymentMethod{}, NewDomainError(ErrorInvalidFormat, "paymentMethod.limit", "PaymentMethod limit is not a valid number: "+limit)
	}

	if parsed.Exponent() < -2 {
		return PaymentMethod{}, NewDomainError(ErrorInvalidArgument, "paymentMethod.limit", "PaymentMethod limit cannot have more than two decimal places: "+limit)
	}

	if parsed.IsNegative() {
		return PaymentMethod{}, NewDomainError(ErrorInvalidArgument, "paymentMethod.limit", "PaymentMethod limit cannot be negative: "+limit)
	}

	return PaymentMethod{ID: id, Discount: percent, Limit: parsed}, nil
}

// IsPoints reports whether the method is the reserved points instrument.
func (m PaymentMethod) IsPoints() bool {
	return m.ID == PointsMethodID
}
