package payments

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// Kind tags a wallet entry as the loyalty points instrument or a card.
// The tag is decided once at wallet construction.
type Kind uint8

const (
	// KindPoints marks the single loyalty points entry.
	KindPoints Kind = iota
	// KindCard marks a card entry.
	KindCard
)

// Entry tracks the remaining spendable balance of one instrument during an
// optimization run. Balance only ever decreases and never goes negative.
type Entry struct {
	ID              string
	Kind            Kind
	DiscountPercent int
	Balance         decimal.Decimal
}

// Spend deducts amount from the entry's balance using exact decimal
// subtraction. The check and the mutation are atomic: a failed spend leaves
// the balance untouched.
func (e *Entry) Spend(amount decimal.Decimal) error {
	if amount.IsNegative() {
		return NewDomainError(ErrorInvalidArgument, "amount", "Cannot spend a negative amount")
	}

	if e.Balance.LessThan(amount) {
		return NewDomainError(
			ErrorInsufficientFunds,
			"amount",
			fmt.Sprintf("Not enough limit for payment method %s. Required: %s, Available: %s", e.ID, amount, e.Balance),
		)
	}

	e.Balance = e.Balance.Sub(amount)

	return nil
}

// Wallet is the mutable instrument ledger for one optimization run. Entries
// keep the payment method input order, which makes card enumeration during
// option generation deterministic.
//
// A wallet is exclusively owned by one run; build a fresh one per run.
type Wallet struct {
	entries []*Entry
	index   map[string]*Entry
	points  *Entry
}

// NewWallet builds a fresh ledger from the payment methods, preserving their
// order. At most one entry is tagged as the points instrument.
func NewWallet(methods []PaymentMethod) *Wallet {
	w := &Wallet{index: make(map[string]*Entry, len(methods))}

	for _, m := range methods {
		kind := KindCard
		if m.IsPoints() {
			kind = KindPoints
		}

		entry := &Entry{ID: m.ID, Kind: kind, DiscountPercent: m.Discount, Balance: m.Limit}
		w.entries = append(w.entries, entry)
		w.index[m.ID] = entry

		if kind == KindPoints {
			w.points = entry
		}
	}

	return w
}

// Lookup returns the entry for id, or nil when the wallet has no such
// instrument.
func (w *Wallet) Lookup(id string) *Entry {
	return w.index[id]
}

// Points returns the points entry, or nil when the wallet has none.
func (w *Wallet) Points() *Entry {
	return w.points
}

// Entries returns all entries in input order.
func (w *Wallet) Entries() []*Entry {
	return w.entries
}

// Cards returns the card entries in input order.
func (w *Wallet) Cards() []*Entry {
	cards := make([]*Entry, 0, len(w.entries))

	for _, entry := range w.entries {
		if entry.Kind == KindCard {
			cards = append(cards, entry)
		}
	}

	return cards
}
