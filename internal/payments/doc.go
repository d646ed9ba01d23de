// Package payments implements the discount-maximizing payment allocation
// engine.
//
// Given a batch of validated orders and a set of payment instruments (loyalty
// points plus cards, each with a discount percent and a spendable limit), the
// optimizer produces the amount to spend per instrument. It runs two phases:
//
//  1. A global promotion pass that resolves order-attached card promotions,
//     best discount first, before local choices can crowd them out.
//  2. A per-order allocation pass over the remaining orders, largest first,
//     that generates every viable payment option against the current balances
//     and applies the best one.
//
// All monetary arithmetic uses exact decimals (shopspring/decimal) with
// half-up rounding to two places. The engine is single-threaded and
// deterministic: a run owns its wallet and totals exclusively, and instrument
// enumeration follows input order.
package payments
