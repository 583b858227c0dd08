package services

import "testing"

func TestAmountToWords(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "Zero Pounds Only"},
		{1, "One Pounds Only"},
		{17, "Seventeen Pounds Only"},
		{20, "Twenty Pounds Only"},
		{42, "Forty Two Pounds Only"},
		{100, "One Hundred Pounds Only"},
		{101, "One Hundred and One Pounds Only"},
		{374, "Three Hundred and Seventy Four Pounds Only"},
		{1000, "One Thousand Pounds Only"},
		{1250, "One Thousand Two Hundred and Fifty Pounds Only"},
		{12043, "Twelve Thousand and Forty Three Pounds Only"},
		{1_000_000, "One Million Pounds Only"},
		{2_500_001, "Two Million Five Hundred Thousand and One Pounds Only"},
		{1_000_000_000, "One Billion Pounds Only"},
		{-12, "Negative Twelve Pounds Only"},
		// Rounds to the nearest pound before spelling out.
		{374.49, "Three Hundred and Seventy Four Pounds Only"},
		{374.5, "Three Hundred and Seventy Five Pounds Only"},
	}

	for _, tt := range tests {
		if got := AmountToWords(tt.amount); got != tt.want {
			t.Errorf("AmountToWords(%v) = %q, want %q", tt.amount, got, tt.want)
		}
	}
}
