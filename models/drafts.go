package models

import (
	"encoding/gob"
)

// BookingDraft is the checkout draft held in session state until the
// commit succeeds. It never touches the database.
type BookingDraft struct {
	ServiceName        string
	ServicePrice       string // display form, e.g. "$25.00"
	ServiceDescription string
	BookingDate        string // "2006-01-02"
	BookingTime        string // 12-hour label, e.g. "10:00 AM"
}

// PaymentDraft holds the captured card details in session. Only the last
// four digits of the card number are ever kept.
type PaymentDraft struct {
	Method         string
	CardLastFour   string
	CardHolder     string
	ExpiryDate     string
	TransactionRef string
}

func init() {
	// The cookie session store serializes values with gob.
	gob.Register(BookingDraft{})
	gob.Register(PaymentDraft{})
}
