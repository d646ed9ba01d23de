package payments

import (
	"fmt"
	"slices"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

var (
	oneHundred = decimal.NewFromInt(100)
	tenPercent = decimal.New(1, -1)
	// minimumPointsPayment is the smallest representable payment (0.01). When
	// the 10% points threshold of a positive order rounds to zero, the
	// threshold is fixed here so a nominal points payment stays mandatory.
	minimumPointsPayment = decimal.New(1, -2)
)

// Totals maps instrument ids to the spend accumulated on them during one run.
// Every input instrument has an entry, including unused ones at zero.
type Totals map[string]decimal.Decimal

// Sum returns the combined spend across all instruments.
func (t Totals) Sum() decimal.Decimal {
	sum := decimal.Zero
	for _, amount := range t {
		sum = sum.Add(amount)
	}

	return sum
}

// Optimizer allocates spend across wallet instruments so that the captured
// discount is maximized under a deterministic greedy policy. It is stateless
// between runs; each Optimize call builds its own wallet and totals.
type Optimizer struct {
	logger *zap.Logger
}

// NewOptimizer creates an optimizer. A nil logger disables logging.
func NewOptimizer(logger *zap.Logger) *Optimizer {
	if logger == nil {
		logger = zap.NewNop()
	}

	return &Optimizer{logger: logger}
}

// run holds the mutable state of one optimization call: the wallet ledger,
// the accumulated totals, and the set of orders already paid. It is built
// fresh per call, owned exclusively by it, and discarded at its end.
type run struct {
	logger  *zap.Logger
	wallet  *Wallet
	totals  Totals
	handled map[string]bool
}

// Optimize computes the spend per instrument for the order batch.
//
// Phase 1 resolves order-attached card promotions globally, best discount
// first. Phase 2 allocates every remaining order, largest value first, by
// generating all viable payment options and applying the best one. The result
// is all-or-nothing: any order left without a viable option aborts the run.
func (o *Optimizer) Optimize(orders []Order, methods []PaymentMethod) (Totals, error) {
	r := &run{
		logger:  o.logger.With(zap.String("run_id", uuid.NewString())),
		wallet:  NewWallet(methods),
		totals:  make(Totals, len(methods)),
		handled: make(map[string]bool, len(orders)),
	}

	for _, m := range methods {
		r.totals[m.ID] = decimal.Zero
	}

	if err := r.promotionPass(orders); err != nil {
		return nil, err
	}

	if err := r.allocationPass(orders); err != nil {
		return nil, err
	}

	return r.totals, nil
}

// promoCandidate is one possible application of an order-attached card
// promotion, evaluated during the promotion pass.
type promoCandidate struct {
	order    Order
	card     *Entry
	discount decimal.Decimal
	cost     decimal.Decimal
}

// sortPromoCandidates orders candidates best-first: discount descending, ties
// broken by post-discount cost ascending. The sort is stable, so remaining
// ties keep build order.
func sortPromoCandidates(candidates []promoCandidate) {
	slices.SortStableFunc(candidates, func(a, b promoCandidate) int {
		if c := b.discount.Cmp(a.discount); c != 0 {
			return c
		}

		return a.cost.Cmp(b.cost)
	})
}

// promotionPass resolves card promotions globally before per-order choices
// can crowd them out. It walks the sorted candidates once: a candidate whose
// order is already handled is skipped, one the card cannot afford is dropped
// permanently. Capacity only ever decreases, so a dropped candidate could
// never commit later.
func (r *run) promotionPass(orders []Order) error {
	r.logger.Info("starting promotion pass", zap.Int("orders", len(orders)))

	var candidates []promoCandidate

	for _, order := range orders {
		for _, promoID := range order.Promotions {
			card := r.wallet.Lookup(promoID)
			if card == nil || card.Kind != KindCard {
				continue
			}

			discount := percentOf(order.Value, card.DiscountPercent)
			candidates = append(candidates, promoCandidate{
				order:    order,
				card:     card,
				discount: discount,
				cost:     order.Value.Sub(discount),
			})
		}
	}

	sortPromoCandidates(candidates)

	for _, candidate := range candidates {
		if r.handled[candidate.order.ID] {
			continue
		}

		if candidate.card.Balance.LessThan(candidate.cost) {
			r.logger.Debug("dropping unaffordable promotion",
				zap.String("order_id", candidate.order.ID),
				zap.String("card", candidate.card.ID),
				zap.String("cost", candidate.cost.String()),
			)

			continue
		}

		if err := r.spend(candidate.card, candidate.cost); err != nil {
			return err
		}

		r.handled[candidate.order.ID] = true

		r.logger.Info("applied promotion",
			zap.String("order_id", candidate.order.ID),
			zap.String("card", candidate.card.ID),
			zap.String("discount", candidate.discount.String()),
			zap.String("cost", candidate.cost.String()),
		)
	}

	r.logger.Info("finished promotion pass", zap.Int("handled", len(r.handled)))

	return nil
}

// allocationPass pays every order the promotion pass left unhandled,
// visiting them in order of decreasing value (stable, so equal values keep
// input order). Satisfying larger orders first reduces starvation risk for
// shared instruments; it is a heuristic, not a proven optimum.
func (r *run) allocationPass(orders []Order) error {
	r.logger.Info("starting allocation pass")

	remaining := make([]Order, 0, len(orders))
	for _, order := range orders {
		if !r.handled[order.ID] {
			remaining = append(remaining, order)
		}
	}

	slices.SortStableFunc(remaining, func(a, b Order) int {
		return b.Value.Cmp(a.Value)
	})

	for _, order := range remaining {
		if !order.Value.IsPositive() {
			// nothing to pay; the order settles with zero spend
			r.handled[order.ID] = true

			r.logger.Debug("order settled with zero spend", zap.String("order_id", order.ID))

			continue
		}

		options := generateOptions(order, r.wallet)
		if len(options) == 0 {
			r.logger.Error("no payment option for order",
				zap.String("order_id", order.ID),
				zap.String("value", order.Value.String()),
			)

			return NewDomainError(
				ErrorUnpayableOrder,
				"order",
				fmt.Sprintf("Cannot find a payment option for order %s", order.ID),
			)
		}

		best := bestOption(options)

		r.logger.Info("chose payment option",
			zap.String("order_id", order.ID),
			zap.String("kind", string(best.Kind)),
			zap.String("discount", best.DiscountApplied.String()),
			zap.String("points_cost", best.PointsCost.String()),
			zap.String("card_cost", best.CardCost.String()),
		)

		if err := r.applyOption(best); err != nil {
			return err
		}

		r.handled[order.ID] = true
	}

	r.logger.Info("finished allocation pass", zap.Int("handled", len(r.handled)))

	return nil
}

// generateOptions builds every viable payment option for the order against
// the current wallet balances. The four families are independent; a card may
// appear in several options.
func generateOptions(order Order, wallet *Wallet) []PaymentOption {
	var options []PaymentOption

	options = appendFullPointsDiscount(options, order, wallet.Points())
	options = appendPartialPoints(options, order, wallet)
	options = appendFullCard(options, order, wallet)
	options = appendFullPointsNoDiscount(options, order, wallet.Points())

	return options
}

// appendFullPointsDiscount adds the option of paying entirely from points,
// discounted by the points instrument's own percent, when the points balance
// covers the post-discount cost.
func appendFullPointsDiscount(options []PaymentOption, order Order, points *Entry) []PaymentOption {
	if points == nil || !order.Value.IsPositive() {
		return options
	}

	discount := percentOf(order.Value, points.DiscountPercent)
	cost := order.Value.Sub(discount)

	if points.Balance.LessThan(cost) {
		return options
	}

	return append(options, PaymentOption{
		Kind:            OptionFullPointsDiscount,
		DiscountApplied: discount,
		PointsCost:      cost,
		CardCost:        decimal.Zero,
		PointsEntry:     points,
	})
}

// appendPartialPoints adds the flat 10% order discount family: a qualifying
// points payment of at least 10% of the order value (never below 0.01)
// unlocks a 10% discount on the whole order. Points cover as much of the
// discounted cost as they can; any shortfall must be covered by exactly one
// card, the first in input order with sufficient balance.
func appendPartialPoints(options []PaymentOption, order Order, wallet *Wallet) []PaymentOption {
	points := wallet.Points()
	if points == nil || !order.Value.IsPositive() {
		return options
	}

	threshold := order.Value.Mul(tenPercent).Round(2)
	if !threshold.IsPositive() {
		threshold = minimumPointsPayment
	}

	if points.Balance.LessThan(threshold) {
		return options
	}

	discount := order.Value.Mul(tenPercent).Round(2)
	cost := order.Value.Sub(discount)

	pointsCost := decimal.Min(points.Balance, cost)
	if pointsCost.LessThan(threshold) {
		return options
	}

	cardCost := cost.Sub(pointsCost)
	if !cardCost.IsPositive() {
		return append(options, PaymentOption{
			Kind:            OptionPartialPointsAllPoints,
			DiscountApplied: discount,
			PointsCost:      cost,
			CardCost:        decimal.Zero,
			PointsEntry:     points,
		})
	}

	for _, card := range wallet.Cards() {
		if card.Balance.GreaterThanOrEqual(cardCost) {
			return append(options, PaymentOption{
				Kind:            OptionPartialPointsMixed,
				DiscountApplied: discount,
				PointsCost:      pointsCost,
				CardCost:        cardCost,
				PointsEntry:     points,
				CardEntry:       card,
			})
		}
	}

	return options
}

// appendFullCard adds one zero-discount, full-cost option per card whose
// balance covers the full order value. Cards are enumerated in input order,
// which resolves ties among equal-discount options.
func appendFullCard(options []PaymentOption, order Order, wallet *Wallet) []PaymentOption {
	if !order.Value.IsPositive() {
		return options
	}

	for _, card := range wallet.Cards() {
		if card.Balance.GreaterThanOrEqual(order.Value) {
			options = append(options, PaymentOption{
				Kind:            OptionFullCard,
				DiscountApplied: decimal.Zero,
				PointsCost:      decimal.Zero,
				CardCost:        order.Value,
				CardEntry:       card,
			})
		}
	}

	return options
}

// appendFullPointsNoDiscount adds the option of spending zero-discount points
// on the full order value. Only emitted when the points instrument's own
// percent is exactly zero; any positive-discount option outranks it.
func appendFullPointsNoDiscount(options []PaymentOption, order Order, points *Entry) []PaymentOption {
	if points == nil || !order.Value.IsPositive() {
		return options
	}

	if points.DiscountPercent != 0 || points.Balance.LessThan(order.Value) {
		return options
	}

	return append(options, PaymentOption{
		Kind:            OptionFullPointsNoDiscount,
		DiscountApplied: decimal.Zero,
		PointsCost:      order.Value,
		CardCost:        decimal.Zero,
		PointsEntry:     points,
	})
}

// applyOption spends the winning option's cost split. Generation pre-checked
// balances, so spends are expected to succeed; a failure here aborts the run
// rather than clamping.
func (r *run) applyOption(option PaymentOption) error {
	if option.PointsCost.IsPositive() && option.PointsEntry != nil {
		if err := r.spend(option.PointsEntry, option.PointsCost); err != nil {
			return err
		}
	}

	if option.CardCost.IsPositive() && option.CardEntry != nil {
		if err := r.spend(option.CardEntry, option.CardCost); err != nil {
			return err
		}
	}

	return nil
}

// spend deducts amount from the entry and accumulates it into the run totals.
func (r *run) spend(entry *Entry, amount decimal.Decimal) error {
	if err := entry.Spend(amount); err != nil {
		return err
	}

	r.totals[entry.ID] = r.totals[entry.ID].Add(amount)

	return nil
}

// percentOf computes value × percent / 100, rounded half-up to two decimal
// places.
func percentOf(value decimal.Decimal, percent int) decimal.Decimal {
	return value.Mul(decimal.NewFromInt(int64(percent))).Div(oneHundred).Round(2)
}
