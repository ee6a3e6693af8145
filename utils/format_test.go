package utils

import (
	"testing"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestFormatPrice(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"25", "$25.00"},
		{"25.5", "$25.50"},
		{"1234.5", "$1,234.50"},
		{"1234567.89", "$1,234,567.89"},
		{"0", "$0.00"},
		{"-42.10", "-$42.10"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatPrice(decimal.RequireFromString(tc.in)), tc.in)
	}
}

func TestParsePrice(t *testing.T) {
	assert.True(t, ParsePrice("$1,234.50").Equal(decimal.RequireFromString("1234.50")))
	assert.True(t, ParsePrice("  $25.00 ").Equal(decimal.RequireFromString("25")))
	assert.True(t, ParsePrice("25").Equal(decimal.RequireFromString("25")))
	assert.True(t, ParsePrice("not a price").IsZero())
	assert.True(t, ParsePrice("").IsZero())
}

func TestFormatPriceParsePriceRoundTrip(t *testing.T) {
	amount := decimal.RequireFromString("1234.50")
	assert.True(t, ParsePrice(FormatPrice(amount)).Equal(amount))
}

func TestFormatTimeLabel(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"13:00:00", "1:00 PM"},
		{"09:30:00", "9:30 AM"},
		{"00:15:00", "12:15 AM"},
		{"12:00:00", "12:00 PM"},
		{"13:00", "1:00 PM"},
		{"1:00 PM", "1:00 PM"},
		{"", ""},
		{"whenever", "whenever"},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, FormatTimeLabel(tc.in), tc.in)
	}
}

func TestNormalizeTimeSlot(t *testing.T) {
	assert.Equal(t, "10:00:00", NormalizeTimeSlot("10:00 AM"))
	assert.Equal(t, "13:00:00", NormalizeTimeSlot("1:00 PM"))
	assert.Equal(t, "00:30:00", NormalizeTimeSlot("12:30 AM"))
	assert.Equal(t, "garbage", NormalizeTimeSlot("garbage"))
}

func TestFormatDates(t *testing.T) {
	d := time.Date(2025, 1, 10, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, "Friday, January 10, 2025", FormatLongDate(d))
	assert.Equal(t, "January 10, 2025", FormatShortDate(d))
}

func TestFormatPaymentMethod(t *testing.T) {
	assert.Equal(t, "Credit Card", FormatPaymentMethod("credit_card"))
	assert.Equal(t, "Debit Card", FormatPaymentMethod("debit_card"))
	assert.Equal(t, "Card", FormatPaymentMethod(""))
	assert.Equal(t, "Cash", FormatPaymentMethod("CASH"))
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "5551234567", DigitsOnly("(555) 123-4567"))
	assert.Equal(t, "", DigitsOnly("abc"))
}
