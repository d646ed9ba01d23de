// Package input reads orders and payment methods from JSON files and turns
// them into validated domain values. Numeric fields arrive as string literals
// so validation can report the offending literal verbatim.
package input
