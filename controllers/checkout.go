package controllers

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"glamora-backend/config"
	"glamora-backend/metrics"
	"glamora-backend/models"
	"glamora-backend/services"
	"glamora-backend/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// pendingBooking pulls the booking draft out of the session, or fails the
// request back to the services page when the flow was entered mid-way.
func pendingBooking(c *gin.Context) (models.BookingDraft, bool) {
	session := sessions.Default(c)
	draft, ok := session.Get(utils.SessionKeyBooking).(models.BookingDraft)
	if !ok {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error":    "No booking found. Please start a new booking.",
			"redirect": "/services",
		})
		return models.BookingDraft{}, false
	}
	return draft, true
}

// pendingPayment pulls the payment draft, failing back to the payment
// step when it is missing.
func pendingPayment(c *gin.Context) (models.PaymentDraft, bool) {
	session := sessions.Default(c)
	draft, ok := session.Get(utils.SessionKeyPayment).(models.PaymentDraft)
	if !ok {
		c.AbortWithStatusJSON(http.StatusConflict, gin.H{
			"error":    "Please complete payment first.",
			"redirect": "/payment",
		})
		return models.PaymentDraft{}, false
	}
	return draft, true
}

func formattedBookingDate(draft models.BookingDraft) string {
	if date, err := time.Parse("2006-01-02", draft.BookingDate); err == nil {
		return utils.FormatLongDate(date)
	}
	return draft.BookingDate
}

// GetPayment returns the payment step's view of the pending booking.
func GetPayment(c *gin.Context) {
	draft, ok := pendingBooking(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pending_booking": gin.H{
			"service_name":   draft.ServiceName,
			"service_price":  draft.ServicePrice,
			"booking_date":   draft.BookingDate,
			"booking_time":   draft.BookingTime,
			"formatted_date": formattedBookingDate(draft),
		},
	})
}

type PaymentInput struct {
	CardNumber    string `json:"card_number" form:"card_number"`
	RawCardNumber string `json:"raw_card_number" form:"raw_card_number"`
	CardHolder    string `json:"card_holder" form:"card_holder"`
	ExpiryDate    string `json:"expiry_date" form:"expiry_date"`
	CVV           string `json:"cvv" form:"cvv"`
	CardType      string `json:"card_type" form:"card_type"`
}

// CreatePayment captures the card details into the session draft. Only
// the last four digits are retained; there is no card validation beyond
// required fields and the type selection.
func CreatePayment(c *gin.Context) {
	draft, ok := pendingBooking(c)
	if !ok {
		return
	}

	var input PaymentInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Please fill all card details.")
		return
	}

	cardNumber := strings.TrimSpace(input.RawCardNumber)
	if cardNumber == "" {
		cardNumber = strings.TrimSpace(input.CardNumber)
	}
	cardHolder := strings.TrimSpace(input.CardHolder)
	expiryDate := strings.TrimSpace(input.ExpiryDate)
	cvv := strings.TrimSpace(input.CVV)

	if cardNumber == "" || cardHolder == "" || expiryDate == "" || cvv == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Please fill all card details.")
		return
	}

	var method string
	switch strings.TrimSpace(input.CardType) {
	case "credit":
		method = "credit_card"
	case "debit":
		method = "debit_card"
	case "":
		utils.RespondWithError(c, http.StatusBadRequest, "Please select a card type (Credit Card or Debit Card).")
		return
	default:
		method = "card"
	}

	cleaned := strings.NewReplacer(" ", "", "*", "", "-", "").Replace(cardNumber)
	lastFour := cleaned
	if len(cleaned) >= 4 {
		lastFour = cleaned[len(cleaned)-4:]
	}

	payment := models.PaymentDraft{
		Method:         method,
		CardLastFour:   lastFour,
		CardHolder:     cardHolder,
		ExpiryDate:     expiryDate,
		TransactionRef: uuid.NewString(),
	}

	session := sessions.Default(c)
	session.Set(utils.SessionKeyPayment, payment)
	if err := session.Save(); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pending_booking": gin.H{
			"service_name":   draft.ServiceName,
			"service_price":  draft.ServicePrice,
			"formatted_date": formattedBookingDate(draft),
			"booking_time":   draft.BookingTime,
		},
		"payment_data": gin.H{
			"method":          payment.Method,
			"card_last_four":  payment.CardLastFour,
			"card_holder":     payment.CardHolder,
			"expiry_date":     payment.ExpiryDate,
			"transaction_ref": payment.TransactionRef,
		},
		"payment_method_display": utils.FormatPaymentMethod(payment.Method),
		"payment_date":           time.Now().Format("January 2, 2006 at 3:04 PM"),
	})
}

func savedAddresses(customer *models.Customer) []gin.H {
	if customer.Address == "" {
		return []gin.H{}
	}
	return []gin.H{{
		"id":           0,
		"full_address": customer.Address,
		"is_default":   true,
	}}
}

// GetAddress returns the address step's data; it requires both the
// booking and payment drafts.
func GetAddress(c *gin.Context) {
	customer := utils.MustCustomer(c)

	draft, ok := pendingBooking(c)
	if !ok {
		return
	}
	payment, ok := pendingPayment(c)
	if !ok {
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"pending_booking": gin.H{
			"service_name":   draft.ServiceName,
			"service_price":  draft.ServicePrice,
			"formatted_date": formattedBookingDate(draft),
			"booking_time":   draft.BookingTime,
		},
		"payment_data": gin.H{
			"method":         payment.Method,
			"card_last_four": payment.CardLastFour,
		},
		"saved_addresses": savedAddresses(customer),
	})
}

type AddressInput struct {
	UseSavedAddress   string `json:"use_saved_address" form:"use_saved_address"`
	SelectedAddressID string `json:"selected_address_id" form:"selected_address_id"`
	AddressLine1      string `json:"address_line1" form:"address_line1"`
	AddressLine2      string `json:"address_line2" form:"address_line2"`
	City              string `json:"city" form:"city"`
	State             string `json:"state" form:"state"`
	ZipCode           string `json:"zip_code" form:"zip_code"`
	Country           string `json:"country" form:"country"`
	SaveAddress       string `json:"save_address" form:"save_address"`
}

// SubmitAddress resolves the delivery address and commits the whole
// checkout: payment, sales, appointment, and receipt rows in one
// transaction. The session drafts are cleared only after a successful
// commit so a failure can be retried.
func SubmitAddress(c *gin.Context) {
	customer := utils.MustCustomer(c)

	booking, ok := pendingBooking(c)
	if !ok {
		return
	}
	payment, ok := pendingPayment(c)
	if !ok {
		return
	}

	var input AddressInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Please fill all required address fields.")
		return
	}

	var fullAddress string
	usingSaved := input.UseSavedAddress == "yes" && input.SelectedAddressID != ""
	if usingSaved {
		addresses := savedAddresses(customer)
		idx, err := strconv.Atoi(input.SelectedAddressID)
		if err != nil || idx < 0 || idx >= len(addresses) {
			utils.RespondWithError(c, http.StatusBadRequest, "Selected address not found.")
			return
		}
		fullAddress = addresses[idx]["full_address"].(string)
	} else {
		line1 := strings.TrimSpace(input.AddressLine1)
		city := strings.TrimSpace(input.City)
		state := strings.TrimSpace(input.State)
		zip := strings.TrimSpace(input.ZipCode)
		if line1 == "" || city == "" || state == "" || zip == "" {
			utils.RespondWithError(c, http.StatusBadRequest, "Please fill all required address fields.")
			return
		}

		fullAddress = line1
		if line2 := strings.TrimSpace(input.AddressLine2); line2 != "" {
			fullAddress += ", " + line2
		}
		fullAddress += ", " + city + ", " + state + " " + zip
		if country := strings.TrimSpace(input.Country); country != "" {
			fullAddress += ", " + country
		}
	}

	saveAddress := !usingSaved && (input.SaveAddress == "on" || input.SaveAddress == "true")

	checkout := services.NewCheckoutService(config.DB)
	receipt, err := checkout.Commit(customer, booking, payment, fullAddress, saveAddress)
	if err != nil {
		metrics.IncCheckout("error")
		config.Logger.Error().Err(err).Uint("customer_id", customer.ID).Msg("checkout commit failed")
		utils.RespondWithError(c, http.StatusInternalServerError, services.ErrCommitFailed.Error())
		return
	}
	metrics.IncCheckout("ok")

	// Drafts are only dropped once the rows exist.
	session := sessions.Default(c)
	session.Delete(utils.SessionKeyBooking)
	session.Delete(utils.SessionKeyPayment)
	if err := session.Save(); err != nil {
		config.Logger.Warn().Err(err).Msg("failed to clear checkout drafts")
	}

	services.NewNotifyService().SendBookingConfirmation(
		customer.Mobile,
		booking.ServiceName,
		formattedBookingDate(booking),
		booking.BookingTime,
		receipt.ReceiptNumber,
	)

	c.JSON(http.StatusOK, gin.H{
		"success":        true,
		"receipt_id":     receipt.ID,
		"receipt_number": receipt.ReceiptNumber,
		"redirect":       "/booking-confirmation/" + strconv.FormatUint(uint64(receipt.ID), 10),
	})
}
