package utils

import "testing"

func TestFormatCurrency(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "$0.00"},
		{1234.5, "$1,234.50"},
		{-1234.5, "-$1,234.50"},
		{1000000, "$1,000,000.00"},
		{999.99, "$999.99"},
	}
	for _, tt := range tests {
		if got := FormatCurrency(tt.amount); got != tt.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}

func TestFormatPercent(t *testing.T) {
	tests := []struct {
		value float64
		want  string
	}{
		{42.5, "+42.50%"},
		{-3.2, "-3.20%"},
		{0, "0.00%"},
	}
	for _, tt := range tests {
		if got := FormatPercent(tt.value); got != tt.want {
			t.Errorf("FormatPercent(%v) = %q, want %q", tt.value, got, tt.want)
		}
	}
}

func TestFormatPnL(t *testing.T) {
	if got := FormatPnL(50); got != "+$50.00" {
		t.Errorf("FormatPnL(50) = %q", got)
	}
	if got := FormatPnL(-50); got != "-$50.00" {
		t.Errorf("FormatPnL(-50) = %q", got)
	}
}

func TestFormatMinutes(t *testing.T) {
	tests := []struct {
		minutes float64
		want    string
	}{
		{45, "45m"},
		{90, "1h 30m"},
		{60, "1h 0m"},
		{1500, "1d 1h"},
		{10080, "7d 0h"},
		{0, "0m"},
	}
	for _, tt := range tests {
		if got := FormatMinutes(tt.minutes); got != tt.want {
			t.Errorf("FormatMinutes(%v) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestFormatRMultiple(t *testing.T) {
	if got := FormatRMultiple(2.5); got != "2.50R" {
		t.Errorf("FormatRMultiple(2.5) = %q", got)
	}
	if got := FormatRMultiple(-1); got != "-1.00R" {
		t.Errorf("FormatRMultiple(-1) = %q", got)
	}
}
