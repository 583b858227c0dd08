package services

import (
	"math"
	"strings"
)

// AmountToWords converts a monetary amount to English words for the
// quote footer. Example: 374.00 → "Three Hundred and Seventy Four
// Pounds Only".
func AmountToWords(amount float64) string {
	if amount < 0 {
		return "Negative " + AmountToWords(-amount)
	}

	pounds := int64(math.Round(amount))
	if pounds == 0 {
		return "Zero Pounds Only"
	}

	return convertToWords(pounds) + " Pounds Only"
}

var scales = []struct {
	value int64
	name  string
}{
	{1_000_000_000, "Billion"},
	{1_000_000, "Million"},
	{1_000, "Thousand"},
}

func convertToWords(n int64) string {
	var parts []string

	for _, scale := range scales {
		if n >= scale.value {
			parts = append(parts, convertUnder1000(n/scale.value)+" "+scale.name)
			n %= scale.value
		}
	}

	if n >= 100 {
		parts = append(parts, wordOnes[n/100]+" Hundred")
		n %= 100
	}

	if n > 0 {
		if len(parts) > 0 {
			parts = append(parts, "and "+convertUnder100(n))
		} else {
			parts = append(parts, convertUnder100(n))
		}
	}

	return strings.Join(parts, " ")
}

func convertUnder1000(n int64) string {
	var parts []string
	if n >= 100 {
		parts = append(parts, wordOnes[n/100]+" Hundred")
		n %= 100
	}
	if n > 0 {
		parts = append(parts, convertUnder100(n))
	}
	return strings.Join(parts, " ")
}

func convertUnder100(n int64) string {
	if n < 20 {
		return wordOnes[n]
	}
	result := wordTens[n/10]
	if n%10 != 0 {
		result += " " + wordOnes[n%10]
	}
	return result
}

var wordOnes = []string{
	"", "One", "Two", "Three", "Four", "Five", "Six", "Seven", "Eight", "Nine",
	"Ten", "Eleven", "Twelve", "Thirteen", "Fourteen", "Fifteen", "Sixteen",
	"Seventeen", "Eighteen", "Nineteen",
}

var wordTens = []string{
	"", "", "Twenty", "Thirty", "Forty", "Fifty", "Sixty", "Seventy", "Eighty", "Ninety",
}
