// Package core defines the household domain model and its derived-metric
// computations.
//
// This file contains functions for parsing and formatting monetary amounts.
// Amounts are decimal.Decimal values so aggregation is exact; floating point
// is only used at the display boundary.
package core

import (
	"strings"
	"unicode"

	"github.com/shopspring/decimal"
)

// CurrencySymbols maps each supported currency to its display symbol.
var CurrencySymbols = map[Currency]string{
	CNY: "￥",
	USD: "$",
	HKD: "HK$",
	EUR: "€",
	GBP: "£",
	JPY: "¥",
}

// Symbol returns the display symbol for the currency, falling back to the
// currency code itself for anything outside the enumeration.
func (c Currency) Symbol() string {
	if s, ok := CurrencySymbols[c]; ok {
		return s
	}
	return string(c)
}

// ParseAmount converts a decimal string to an amount.
//
// It accepts both dot (12.34) and comma (12,34) decimal separators. Signs
// are not accepted: amounts entering the model are never negative.
//
// Examples:
//
//	ParseAmount("1234.5") -> 1234.5, nil
//	ParseAmount("1234,5") -> 1234.5, nil
//	ParseAmount("-5")     -> error
func ParseAmount(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return decimal.Zero, ErrInvalidAmount
	}
	// Normalize decimal comma to dot
	s = strings.ReplaceAll(s, ",", ".")
	for _, r := range s {
		if !unicode.IsDigit(r) && r != '.' {
			return decimal.Zero, ErrInvalidAmount
		}
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, ErrInvalidAmount
	}
	if d.IsNegative() {
		return decimal.Zero, ErrInvalidAmount
	}
	return d, nil
}

// FormatAmount renders an amount with its currency symbol for display,
// using at most two decimal places and no trailing zeroes.
func FormatAmount(c Currency, d decimal.Decimal) string {
	return c.Symbol() + d.Round(2).String()
}
