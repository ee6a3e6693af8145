package services

import (
	"errors"
	"testing"

	"glamora-backend/models"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func seedCheckoutFixtures(t *testing.T, db *gorm.DB) *models.Customer {
	t.Helper()

	require.NoError(t, db.Create(&models.Employee{FirstName: "House", LastName: "Stylist", Phone: "0000000000"}).Error)
	require.NoError(t, db.Create(&models.Admin{FirstName: "House", LastName: "Admin", Mobile: "0000000001", Role: "manager", Password: "admin"}).Error)
	require.NoError(t, db.Create(&models.Service{
		Name:     "Classic Haircut",
		Category: "Hair",
		Price:    decimal.RequireFromString("25.00"),
		IsActive: true,
	}).Error)

	customer := &models.Customer{FirstName: "Ava", LastName: "Reed", Mobile: "5551234567", Password: "secret123"}
	require.NoError(t, db.Create(customer).Error)
	return customer
}

func draftPair() (models.BookingDraft, models.PaymentDraft) {
	booking := models.BookingDraft{
		ServiceName:  "Classic Haircut",
		ServicePrice: "$25.00",
		BookingDate:  "2025-06-15",
		BookingTime:  "10:00 AM",
	}
	payment := models.PaymentDraft{
		Method:         "credit_card",
		CardLastFour:   "4242",
		CardHolder:     "Ava Reed",
		ExpiryDate:     "12/27",
		TransactionRef: "11111111-2222-3333-4444-555555555555",
	}
	return booking, payment
}

func TestCommitCreatesLinkedRows(t *testing.T) {
	db := newTestDB(t)
	customer := seedCheckoutFixtures(t, db)
	booking, payment := draftPair()

	receipt, err := NewCheckoutService(db).Commit(customer, booking, payment, "12 Main St, Springfield, IL, 62704", true)
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, "RCP001", receipt.ReceiptNumber)

	var paymentRow models.Payment
	require.NoError(t, db.First(&paymentRow).Error)
	assert.Equal(t, "credit_card", paymentRow.Method)
	assert.Equal(t, "completed", paymentRow.Status)
	assert.True(t, paymentRow.Amount.Equal(decimal.RequireFromString("25.00")))

	var apptRow models.Appointment
	require.NoError(t, db.First(&apptRow).Error)
	assert.Equal(t, customer.ID, apptRow.CustomerID)
	assert.Equal(t, "10:00:00", apptRow.Time)
	assert.Equal(t, models.StatusConfirmed, apptRow.Status)
	assert.Equal(t, "RCP001", apptRow.ReceiptCode)

	require.NotNil(t, paymentRow.AppointmentID)
	assert.Equal(t, apptRow.ID, *paymentRow.AppointmentID)

	var salesRow models.Sales
	require.NoError(t, db.First(&salesRow).Error)
	assert.Equal(t, paymentRow.ID, salesRow.PaymentID)
	assert.Equal(t, "Classic Haircut", salesRow.ServiceName)
	require.NotNil(t, salesRow.ServiceID)
	require.NotNil(t, salesRow.ReceiptID)
	assert.Equal(t, receipt.ID, *salesRow.ReceiptID)

	var stored models.Customer
	require.NoError(t, db.First(&stored, customer.ID).Error)
	assert.Equal(t, "12 Main St, Springfield, IL, 62704", stored.Address)
}

func TestCommitSequencesReceiptNumbers(t *testing.T) {
	db := newTestDB(t)
	customer := seedCheckoutFixtures(t, db)
	booking, payment := draftPair()
	svc := NewCheckoutService(db)

	first, err := svc.Commit(customer, booking, payment, "", false)
	require.NoError(t, err)
	assert.Equal(t, "RCP001", first.ReceiptNumber)

	booking.BookingDate = "2025-06-16"
	second, err := svc.Commit(customer, booking, payment, "", false)
	require.NoError(t, err)
	assert.Equal(t, "RCP002", second.ReceiptNumber)
}

func TestCommitSkipsUnparseableReceiptNumbers(t *testing.T) {
	db := newTestDB(t)
	customer := seedCheckoutFixtures(t, db)

	require.NoError(t, db.Create(&models.Receipt{
		CustomerID:    customer.ID,
		Amount:        decimal.RequireFromString("10.00"),
		ReceiptNumber: "RCPBAD",
	}).Error)
	require.NoError(t, db.Create(&models.Receipt{
		CustomerID:    customer.ID,
		Amount:        decimal.RequireFromString("10.00"),
		ReceiptNumber: "RCP007",
	}).Error)

	booking, payment := draftPair()
	receipt, err := NewCheckoutService(db).Commit(customer, booking, payment, "", false)
	require.NoError(t, err)
	assert.Equal(t, "RCP008", receipt.ReceiptNumber)
}

func TestCommitKeepsDenormalizedNameForUnknownService(t *testing.T) {
	db := newTestDB(t)
	customer := seedCheckoutFixtures(t, db)

	booking, payment := draftPair()
	booking.ServiceName = "Retired Special"

	receipt, err := NewCheckoutService(db).Commit(customer, booking, payment, "", false)
	require.NoError(t, err)
	require.NotNil(t, receipt)

	var salesRow models.Sales
	require.NoError(t, db.First(&salesRow).Error)
	assert.Equal(t, "Retired Special", salesRow.ServiceName)
	assert.Nil(t, salesRow.ServiceID)
}

func TestCommitRollsBackWhenReceiptInsertFails(t *testing.T) {
	db := newTestDB(t)
	customer := seedCheckoutFixtures(t, db)
	booking, payment := draftPair()

	// Dropping the receipts table makes the final insert of the
	// transaction fail; nothing else may survive.
	require.NoError(t, db.Migrator().DropTable(&models.Receipt{}))

	_, err := NewCheckoutService(db).Commit(customer, booking, payment, "", false)
	require.Error(t, err)

	var count int64
	require.NoError(t, db.Model(&models.Payment{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Sales{}).Count(&count).Error)
	assert.Zero(t, count)
	require.NoError(t, db.Model(&models.Appointment{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestCommitRejectsInvalidDraftDate(t *testing.T) {
	db := newTestDB(t)
	customer := seedCheckoutFixtures(t, db)

	booking, payment := draftPair()
	booking.BookingDate = "June 15"

	_, err := NewCheckoutService(db).Commit(customer, booking, payment, "", false)
	require.Error(t, err)
}

func TestIsDuplicateError(t *testing.T) {
	assert.False(t, isDuplicateError(nil))
	assert.False(t, isDuplicateError(assert.AnError))
	assert.True(t, isDuplicateError(errors.New("UNIQUE constraint failed: receipts.receipt_number")))
	assert.True(t, isDuplicateError(errors.New(`pq: duplicate key value violates unique constraint "idx_receipts_receipt_number"`)))
	assert.True(t, isDuplicateError(errors.New("Error 1062: Duplicate entry 'RCP001'")))
}
