package payments

import "github.com/shopspring/decimal"

// OptionKind enumerates the ways a single order can be paid.
type OptionKind string

const (
	// OptionFullPointsDiscount pays entirely from points, discounted by the
	// points instrument's own percent.
	OptionFullPointsDiscount OptionKind = "FULL_POINTS_DISCOUNT"
	// OptionPartialPointsAllPoints unlocks the flat 10% order discount with a
	// qualifying points payment that happens to cover the whole discounted cost.
	OptionPartialPointsAllPoints OptionKind = "PARTIAL_POINTS_ALL_POINTS"
	// OptionPartialPointsMixed unlocks the flat 10% order discount with a
	// qualifying points payment, the shortfall covered by exactly one card.
	OptionPartialPointsMixed OptionKind = "PARTIAL_POINTS_MIXED"
	// OptionFullCard pays the full order value from one card, no discount.
	OptionFullCard OptionKind = "FULL_CARD"
	// OptionFullPointsNoDiscount pays the full order value from a zero-discount
	// points instrument. Exists so idle points can still be used when nothing
	// better is available.
	OptionFullPointsNoDiscount OptionKind = "FULL_POINTS_NO_DISCOUNT"
)

// PaymentOption is one candidate way to pay a single order: a discount amount
// and a cost split across at most two instruments. Options are generated
// fresh per order against current wallet balances and discarded after
// selection.
//
// Invariants: PointsCost > 0 implies PointsEntry is set, CardCost > 0 implies
// CardEntry is set, and PointsCost + CardCost equals the order's
// post-discount cost.
type PaymentOption struct {
	Kind            OptionKind
	DiscountApplied decimal.Decimal
	PointsCost      decimal.Decimal
	CardCost        decimal.Decimal
	PointsEntry     *Entry
	CardEntry       *Entry
}

// TotalCost returns the combined points and card cost.
func (o PaymentOption) TotalCost() decimal.Decimal {
	return o.PointsCost.Add(o.CardCost)
}

// Better reports whether o strictly outranks other under the option total
// order: higher discount wins; equal discounts prefer the higher points cost,
// so points are consumed when discounts tie.
func (o PaymentOption) Better(other PaymentOption) bool {
	if c := o.DiscountApplied.Cmp(other.DiscountApplied); c != 0 {
		return c > 0
	}

	return o.PointsCost.GreaterThan(other.PointsCost)
}

// bestOption selects the winner among candidates under the option total
// order, keeping the earliest-generated candidate on full ties. Generation
// order over cards therefore decides ties between equal-discount card
// options.
func bestOption(options []PaymentOption) PaymentOption {
	best := options[0]

	for _, option := range options[1:] {
		if option.Better(best) {
			best = option
		}
	}

	return best
}
