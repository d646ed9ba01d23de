package payments

import "fmt"

// ErrorCode is a domain error code used by payment validations and the
// allocation engine.
type ErrorCode string

const (
	// ErrorRequiredField indicates a mandatory identifier or literal was absent.
	ErrorRequiredField ErrorCode = "REQUIRED_FIELD"
	// ErrorInvalidFormat indicates a numeric literal could not be parsed.
	ErrorInvalidFormat ErrorCode = "INVALID_FORMAT"
	// ErrorInvalidArgument indicates a value was outside its permitted range.
	ErrorInvalidArgument ErrorCode = "INVALID_ARGUMENT"
	// ErrorInsufficientFunds indicates a spend would exceed the remaining balance.
	ErrorInsufficientFunds ErrorCode = "INSUFFICIENT_FUNDS"
	// ErrorUnpayableOrder indicates no payment option exists for an order.
	ErrorUnpayableOrder ErrorCode = "UNPAYABLE_ORDER"
)

// DomainError represents a structured payment domain error.
type DomainError struct {
	Code    ErrorCode
	Field   string
	Message string
}

// Error returns the formatted domain error string.
func (e DomainError) Error() string {
	if e.Field == "" {
		return fmt.Sprintf("%s: %s", e.Code, e.Message)
	}

	return fmt.Sprintf("%s: %s (%s)", e.Code, e.Message, e.Field)
}

// NewDomainError creates a domain error with code, field, and message.
func NewDomainError(code ErrorCode, field, message string) error {
	return DomainError{Code: code, Field: field, Message: message}
}
