package services

import (
	"fmt"
	"os"

	"glamora-backend/config"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"
)

// NotifyService sends the booking-confirmation SMS after a successful
// checkout. Sends are best effort: a failure is logged, never surfaced to
// the customer.
type NotifyService struct {
	client *twilio.RestClient
	from   string
}

// NewNotifyService returns nil when Twilio is not configured; callers
// treat a nil service as notifications disabled.
func NewNotifyService() *NotifyService {
	accountSid := os.Getenv("TWILIO_ACCOUNT_SID")
	authToken := os.Getenv("TWILIO_AUTH_TOKEN")
	from := os.Getenv("TWILIO_FROM_NUMBER")
	if accountSid == "" || authToken == "" || from == "" {
		return nil
	}

	return &NotifyService{
		client: twilio.NewRestClientWithParams(twilio.ClientParams{
			Username: accountSid,
			Password: authToken,
		}),
		from: from,
	}
}

func (s *NotifyService) SendBookingConfirmation(mobile, serviceName, dateLabel, timeLabel, receiptNumber string) {
	if s == nil {
		return
	}

	body := fmt.Sprintf("Your GLAMORA booking for %s on %s at %s is confirmed. Receipt %s.",
		serviceName, dateLabel, timeLabel, receiptNumber)

	params := &twilioApi.CreateMessageParams{}
	params.SetTo("+" + mobile)
	params.SetFrom(s.from)
	params.SetBody(body)

	if _, err := s.client.Api.CreateMessage(params); err != nil {
		config.Logger.Warn().Err(err).Str("mobile", mobile).Msg("booking confirmation SMS failed")
		return
	}
	config.Logger.Info().Str("mobile", mobile).Str("receipt", receiptNumber).Msg("booking confirmation SMS sent")
}
