// Package core holds the domain types shared by every backend and the API
// client: records, money handling, and date parsing.
//
// Amounts are carried as int64 cents rather than float64 so that monthly
// sums stay exact regardless of how many rows they cover.
package core

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"
)

// Money is a currency amount in minor units.
type Money struct {
	Cents int64
}

// ParseDecimalToCents converts a decimal string to cents with half-up
// rounding on the third decimal place. Both dot and comma separators are
// accepted since spreadsheet rows carry either. Negative values are
// rejected; zero is allowed (service base prices may legitimately be zero).
func ParseDecimalToCents(s string) (int64, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return 0, ErrInvalidAmount
	}
	s = strings.ReplaceAll(s, ",", ".")
	if strings.HasPrefix(s, "+") || strings.HasPrefix(s, "-") {
		return 0, ErrInvalidAmount
	}
	parts := strings.Split(s, ".")
	if len(parts) > 2 {
		return 0, ErrInvalidAmount
	}
	intPart := parts[0]
	fracPart := ""
	if len(parts) == 2 {
		fracPart = parts[1]
	}
	if intPart == "" {
		intPart = "0"
	}
	for _, r := range intPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	for _, r := range fracPart {
		if !unicode.IsDigit(r) {
			return 0, ErrInvalidAmount
		}
	}
	iv, err := strconv.ParseInt(intPart, 10, 64)
	if err != nil {
		return 0, ErrInvalidAmount
	}
	const maxSafeInt64 = (1<<63 - 1) / 100
	if iv > maxSafeInt64 {
		return 0, ErrInvalidAmount
	}
	var fracCents int64
	if len(fracPart) > 0 {
		fracCents = int64(fracPart[0]-'0') * 10
		if len(fracPart) > 1 {
			fracCents += int64(fracPart[1] - '0')
			if len(fracPart) > 2 && fracPart[2] >= '5' {
				fracCents++
			}
		}
	}
	return iv*100 + fracCents, nil
}

// CoerceCents parses an amount best-effort, as spreadsheet cells come back
// as strings, integers, or floats depending on how the row was entered.
// Negative amounts are rejected in every representation, mirroring
// ParseDecimalToCents. A value that cannot be parsed at all reports false.
func CoerceCents(v any) (int64, bool) {
	switch n := v.(type) {
	case int:
		if n < 0 {
			return 0, false
		}
		return int64(n) * 100, true
	case int64:
		if n < 0 {
			return 0, false
		}
		return n * 100, true
	case float64:
		if n < 0 {
			return 0, false
		}
		return int64(n*100.0 + 0.5), true
	case string:
		if cents, err := ParseDecimalToCents(n); err == nil {
			return cents, true
		}
		// Plain float text without the strict digit rules above.
		if f, err := strconv.ParseFloat(strings.ReplaceAll(strings.TrimSpace(n), ",", "."), 64); err == nil && f >= 0 {
			return int64(f*100.0 + 0.5), true
		}
		return 0, false
	default:
		return 0, false
	}
}

// Format renders the amount as a plain decimal with two digits, e.g. "40.00".
func (m Money) Format() string {
	cents := m.Cents
	neg := cents < 0
	if neg {
		cents = -cents
	}
	s := fmt.Sprintf("%d.%02d", cents/100, cents%100)
	if neg {
		return "-" + s
	}
	return s
}

// Sub returns m minus other.
func (m Money) Sub(other Money) Money {
	return Money{Cents: m.Cents - other.Cents}
}

// Add returns m plus other.
func (m Money) Add(other Money) Money {
	return Money{Cents: m.Cents + other.Cents}
}
