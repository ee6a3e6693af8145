package services

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
	"time"

	"glamora-backend/models"
	"glamora-backend/utils"

	"gorm.io/gorm"
)

// The original schema keeps walk-in bookings against the house employee
// and admin rows.
const (
	defaultEmployeeID = 1
	defaultAdminID    = 1
)

// receiptNumberAttempts bounds the retry loop when two checkouts race to
// the same receipt number.
const receiptNumberAttempts = 3

// ErrCommitFailed is the generic persistence failure surfaced to the
// customer; the session drafts stay intact for retry.
var ErrCommitFailed = errors.New("Unable to complete booking. Please try again.")

// CheckoutService commits a session-held booking/payment draft as linked
// payment, sales, appointment, and receipt rows in one transaction.
type CheckoutService struct {
	db *gorm.DB
}

func NewCheckoutService(db *gorm.DB) *CheckoutService {
	return &CheckoutService{db: db}
}

// Commit persists the checkout. On success the returned receipt carries
// the assigned RCP number; on failure nothing is persisted. A duplicate
// receipt number (two checkouts racing the read-max-then-increment step)
// retries the whole transaction a bounded number of times.
func (s *CheckoutService) Commit(customer *models.Customer, booking models.BookingDraft, payment models.PaymentDraft, address string, saveAddress bool) (*models.Receipt, error) {
	var (
		receipt *models.Receipt
		err     error
	)
	for attempt := 0; attempt < receiptNumberAttempts; attempt++ {
		receipt, err = s.commitOnce(customer, booking, payment, address, saveAddress)
		if err != nil && isDuplicateError(err) {
			continue
		}
		break
	}
	if err != nil {
		return nil, err
	}
	return receipt, nil
}

func (s *CheckoutService) commitOnce(customer *models.Customer, booking models.BookingDraft, payment models.PaymentDraft, address string, saveAddress bool) (*models.Receipt, error) {
	bookingDate, err := time.Parse("2006-01-02", booking.BookingDate)
	if err != nil {
		return nil, fmt.Errorf("invalid booking date %q: %w", booking.BookingDate, err)
	}

	// The service row may have been renamed or retired since the draft
	// was created; the sale keeps the denormalized name either way.
	var serviceID *uint
	var service models.Service
	if err := s.db.Where("name = ?", booking.ServiceName).First(&service).Error; err == nil {
		serviceID = &service.ID
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, err
	}

	amount := utils.ParsePrice(booking.ServicePrice)

	method := strings.ToLower(strings.TrimSpace(payment.Method))
	if method == "" {
		method = "card"
	}

	tx := s.db.Begin()
	if tx.Error != nil {
		return nil, tx.Error
	}
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	paymentRow := models.Payment{
		Method:         method,
		Amount:         amount,
		Date:           bookingDate,
		Status:         "completed",
		TransactionRef: payment.TransactionRef,
	}
	if err := tx.Create(&paymentRow).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	salesRow := models.Sales{
		PaymentID:   paymentRow.ID,
		EmployeeID:  defaultEmployeeID,
		AdminID:     defaultAdminID,
		ServiceID:   serviceID,
		ServiceName: booking.ServiceName,
		Date:        bookingDate,
	}
	if err := tx.Create(&salesRow).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	appointmentRow := models.Appointment{
		CustomerID: customer.ID,
		EmployeeID: defaultEmployeeID,
		PaymentID:  paymentRow.ID,
		SalesID:    salesRow.ID,
		Date:       bookingDate,
		Time:       utils.NormalizeTimeSlot(booking.BookingTime),
		Status:     models.StatusConfirmed,
	}
	if err := tx.Create(&appointmentRow).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	// Each row's ID is only known after its own insert, so the links go
	// in backwards.
	if err := tx.Model(&models.Payment{}).Where("id = ?", paymentRow.ID).
		Update("appointment_id", appointmentRow.ID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if saveAddress && address != "" {
		if err := tx.Model(&models.Customer{}).Where("id = ?", customer.ID).
			Update("address", address).Error; err != nil {
			tx.Rollback()
			return nil, err
		}
	}

	receiptNumber, err := nextReceiptNumber(tx)
	if err != nil {
		tx.Rollback()
		return nil, err
	}

	receiptRow := models.Receipt{
		CustomerID:    customer.ID,
		AppointmentID: appointmentRow.ID,
		SalesID:       salesRow.ID,
		Amount:        amount,
		ReceiptDate:   timeNow(),
		ReceiptNumber: receiptNumber,
	}
	if err := tx.Create(&receiptRow).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Model(&models.Sales{}).Where("id = ?", salesRow.ID).
		Update("receipt_id", receiptRow.ID).Error; err != nil {
		tx.Rollback()
		return nil, err
	}
	if err := tx.Model(&models.Appointment{}).Where("id = ?", appointmentRow.ID).
		Update("receipt_code", receiptNumber).Error; err != nil {
		tx.Rollback()
		return nil, err
	}

	if err := tx.Commit().Error; err != nil {
		return nil, err
	}

	if saveAddress && address != "" {
		customer.Address = address
	}
	return &receiptRow, nil
}

// nextReceiptNumber derives the next sequential RCP number from the
// current maximum. Numbers that fail to parse are skipped; an empty table
// starts at 1. The unique index on receipt_number catches the race with a
// concurrent checkout.
func nextReceiptNumber(tx *gorm.DB) (string, error) {
	var numbers []string
	if err := tx.Model(&models.Receipt{}).
		Where("receipt_number LIKE ?", "RCP%").
		Pluck("receipt_number", &numbers).Error; err != nil {
		return "", err
	}

	max := 0
	for _, number := range numbers {
		n, err := strconv.Atoi(strings.TrimPrefix(number, "RCP"))
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}
	return fmt.Sprintf("RCP%03d", max+1), nil
}

// isDuplicateError inspects driver error text for unique-violation
// markers, covering the engines in play (MySQL, SQLite, Postgres).
func isDuplicateError(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "duplicate key")
}
