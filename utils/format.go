package utils

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

// FormatPrice renders an amount as "$1,234.50".
func FormatPrice(amount decimal.Decimal) string {
	fixed := amount.StringFixed(2)

	neg := strings.HasPrefix(fixed, "-")
	fixed = strings.TrimPrefix(fixed, "-")

	parts := strings.SplitN(fixed, ".", 2)
	intPart := parts[0]

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}

	out := "$" + b.String() + "." + parts[1]
	if neg {
		out = "-" + out
	}
	return out
}

// ParsePrice reads a display price like "$1,234.50" back into a decimal.
// Unparseable input yields zero, matching the checkout fallback.
func ParsePrice(display string) decimal.Decimal {
	cleaned := strings.NewReplacer("$", "", ",", "").Replace(strings.TrimSpace(display))
	amount, err := decimal.NewFromString(cleaned)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// FormatTimeLabel converts a 24-hour "15:04:05" (or "15:04") value into
// the 12-hour label the booking UI uses, without a leading zero on the
// hour: "1:00 PM", "11:30 AM".
func FormatTimeLabel(value string) string {
	value = strings.TrimSpace(value)
	if value == "" {
		return ""
	}

	t, err := time.Parse("15:04:05", value)
	if err != nil {
		t, err = time.Parse("15:04", value)
	}
	if err != nil {
		// Maybe it's already a 12-hour label.
		if parsed, perr := time.Parse("3:04 PM", strings.ToUpper(value)); perr == nil {
			t = parsed
		} else {
			return value
		}
	}

	hour := t.Hour() % 12
	if hour == 0 {
		hour = 12
	}
	period := "AM"
	if t.Hour() >= 12 {
		period = "PM"
	}
	return fmt.Sprintf("%d:%02d %s", hour, t.Minute(), period)
}

// NormalizeTimeSlot converts a 12-hour label like "10:00 AM" into the
// 24-hour "15:04:05" form stored on appointments. Input that does not
// parse is returned unchanged.
func NormalizeTimeSlot(slot string) string {
	slot = strings.TrimSpace(slot)
	if slot == "" {
		return slot
	}
	t, err := time.Parse("3:04 PM", strings.ToUpper(slot))
	if err != nil {
		return slot
	}
	return t.Format("15:04:05")
}

// FormatLongDate renders "Saturday, January 10, 2025".
func FormatLongDate(t time.Time) string {
	return t.Format("Monday, January 2, 2006")
}

// FormatShortDate renders "January 10, 2025".
func FormatShortDate(t time.Time) string {
	return t.Format("January 2, 2006")
}

// FormatPaymentMethod turns a stored method like "credit_card" into the
// display form "Credit Card".
func FormatPaymentMethod(method string) string {
	if method == "" {
		method = "card"
	}
	words := strings.Split(strings.ReplaceAll(method, "_", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + strings.ToLower(w[1:])
	}
	return strings.Join(words, " ")
}

// DigitsOnly strips every non-digit character from a mobile number.
func DigitsOnly(s string) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}
