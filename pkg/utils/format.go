// Package utils provides shared utility functions.
package utils

import (
	"fmt"
	"strings"
)

// FormatCurrency formats an amount with thousands separators.
func FormatCurrency(amount float64) string {
	negative := amount < 0
	if negative {
		amount = -amount
	}

	str := fmt.Sprintf("%.2f", amount)
	parts := strings.Split(str, ".")
	result := "$" + groupThousands(parts[0]) + "." + parts[1]
	if negative {
		result = "-" + result
	}
	return result
}

func groupThousands(s string) string {
	n := len(s)
	if n <= 3 {
		return s
	}
	result := s[n-3:]
	s = s[:n-3]
	for len(s) > 3 {
		result = s[len(s)-3:] + "," + result
		s = s[:len(s)-3]
	}
	return s + "," + result
}

// FormatPercent formats a percentage with sign.
func FormatPercent(value float64) string {
	sign := ""
	if value > 0 {
		sign = "+"
	}
	return fmt.Sprintf("%s%.2f%%", sign, value)
}

// FormatPnL formats P&L with sign.
func FormatPnL(pnl float64) string {
	formatted := FormatCurrency(pnl)
	if pnl > 0 {
		return "+" + formatted
	}
	return formatted
}

// FormatMinutes formats a duration in whole minutes as a compact label.
func FormatMinutes(minutes float64) string {
	m := int(minutes)
	if m < 60 {
		return fmt.Sprintf("%dm", m)
	}
	if m < 24*60 {
		return fmt.Sprintf("%dh %dm", m/60, m%60)
	}
	days := m / (24 * 60)
	hours := (m % (24 * 60)) / 60
	return fmt.Sprintf("%dd %dh", days, hours)
}

// FormatRMultiple formats an R-multiple.
func FormatRMultiple(r float64) string {
	return fmt.Sprintf("%.2fR", r)
}
