package entity_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"hoteldesk/entity"
)

func TestFormatINR(t *testing.T) {
	testCases := []struct {
		amount   string
		expected string
	}{
		{"0", "₹0"},
		{"999", "₹999"},
		{"1000", "₹1,000"},
		{"12345", "₹12,345"},
		{"123456", "₹1,23,456"},
		{"1234567", "₹12,34,567"},
		{"12345678", "₹1,23,45,678"},
		{"1234567.49", "₹12,34,567"},
		{"-1234567", "-₹12,34,567"},
	}

	for _, tc := range testCases {
		t.Run(tc.amount, func(t *testing.T) {
			d, err := decimal.NewFromString(tc.amount)
			assert.NoError(t, err)
			assert.Equal(t, tc.expected, entity.FormatINR(d))
		})
	}
}
