// Package currency formats settlement amounts for display.
//
// Formatting is purely cosmetic; all arithmetic elsewhere stays in plain
// float64 amounts and never round-trips through formatted strings.
package currency

import (
	money "github.com/Rhymond/go-money"
)

// Format renders an amount in the given ISO 4217 currency code, e.g.
// Format(30, "USD") == "$30.00". Unknown or empty codes fall back to USD.
func Format(amount float64, code string) string {
	if money.GetCurrency(code) == nil {
		code = money.USD
	}
	return money.NewFromFloat(amount, code).Display()
}

// Known reports whether code is a recognized ISO 4217 currency code.
func Known(code string) bool {
	return money.GetCurrency(code) != nil
}
