package entity

import "github.com/shopspring/decimal"

// FormatINR renders an amount in Indian Rupees with Indian digit grouping
// (a group of three, then groups of two: 1234567 -> ₹12,34,567), dropping
// fractional paise the way the console displays money.
func FormatINR(d decimal.Decimal) string {
	digits := d.Round(0).BigInt().String()

	neg := false
	if len(digits) > 0 && digits[0] == '-' {
		neg = true
		digits = digits[1:]
	}

	grouped := groupIndian(digits)
	if neg {
		return "-₹" + grouped
	}
	return "₹" + grouped
}

func groupIndian(digits string) string {
	if len(digits) <= 3 {
		return digits
	}

	head := digits[:len(digits)-3]
	out := "," + digits[len(digits)-3:]
	for len(head) > 2 {
		out = "," + head[len(head)-2:] + out
		head = head[:len(head)-2]
	}
	return head + out
}
