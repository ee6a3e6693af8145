package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"time"

	"glamora-backend/config"
	"glamora-backend/metrics"
	"glamora-backend/models"
	"glamora-backend/services"
	"glamora-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type receiptDetailRow struct {
	ReceiptID     uint
	ReceiptNumber string
	Amount        decimal.Decimal
	ReceiptDate   *time.Time
	ServiceName   *string
	ApptDate      *time.Time
	ApptTime      *string
	ApptStatus    *string
	Method        *string
	FirstName     *string
	LastName      *string
	Mobile        *string
	Address       *string
}

// fetchReceiptDetail loads a receipt with its linked appointment, sale,
// payment, and customer. Ownership is part of the query: another
// customer's receipt simply does not exist.
func fetchReceiptDetail(receiptID, customerID uint) (*receiptDetailRow, error) {
	var row receiptDetailRow
	result := config.DB.Table("receipts AS r").
		Select(`r.id AS receipt_id, r.receipt_number, r.amount, r.receipt_date,
			s.service_name, a.date AS appt_date, a.time AS appt_time,
			a.status AS appt_status, p.method,
			c.first_name, c.last_name, c.mobile, c.address`).
		Joins("LEFT JOIN appointments a ON r.appointment_id = a.id").
		Joins("LEFT JOIN sales s ON r.sales_id = s.id").
		Joins("LEFT JOIN payments p ON a.payment_id = p.id").
		Joins("LEFT JOIN customers c ON r.customer_id = c.id").
		Where("r.id = ? AND r.customer_id = ?", receiptID, customerID).
		Scan(&row)
	if result.Error != nil {
		return nil, result.Error
	}
	if result.RowsAffected == 0 {
		return nil, nil
	}
	return &row, nil
}

func (r *receiptDetailRow) receiptNumberOrFallback() string {
	if r.ReceiptNumber != "" {
		return r.ReceiptNumber
	}
	return fmt.Sprintf("RCP%03d", r.ReceiptID)
}

func (r *receiptDetailRow) serviceNameOrDefault() string {
	if r.ServiceName != nil && *r.ServiceName != "" {
		return *r.ServiceName
	}
	return "Service"
}

func (r *receiptDetailRow) formattedAppointmentDate() string {
	if r.ApptDate == nil {
		return "N/A"
	}
	return utils.FormatLongDate(*r.ApptDate)
}

func (r *receiptDetailRow) formattedAppointmentTime() string {
	if r.ApptTime == nil || *r.ApptTime == "" {
		return "N/A"
	}
	return utils.FormatTimeLabel(*r.ApptTime)
}

func (r *receiptDetailRow) formattedMethod() string {
	method := "card"
	if r.Method != nil && *r.Method != "" {
		method = *r.Method
	}
	return utils.FormatPaymentMethod(method)
}

func (r *receiptDetailRow) formattedReceiptDate() string {
	if r.ReceiptDate == nil {
		return utils.FormatShortDate(time.Now())
	}
	return utils.FormatShortDate(*r.ReceiptDate)
}

func (r *receiptDetailRow) customerName() string {
	if r.FirstName != nil && r.LastName != nil {
		return *r.FirstName + " " + *r.LastName
	}
	return "Customer"
}

func derefOr(s *string, fallback string) string {
	if s != nil && *s != "" {
		return *s
	}
	return fallback
}

// BookingConfirmation shows the committed receipt right after checkout.
func BookingConfirmation(c *gin.Context) {
	customer := utils.MustCustomer(c)

	receiptID, err := strconv.ParseUint(c.Param("receipt_id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Receipt not found.")
		return
	}

	row, err := fetchReceiptDetail(uint(receiptID), customer.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if row == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Receipt not found.")
		return
	}

	status := "confirmed"
	if row.ApptStatus != nil && *row.ApptStatus != "" {
		status = *row.ApptStatus
	}

	c.JSON(http.StatusOK, gin.H{
		"receipt_id":       row.ReceiptID,
		"receipt_number":   row.receiptNumberOrFallback(),
		"amount":           utils.FormatPrice(row.Amount),
		"service_name":     row.serviceNameOrDefault(),
		"appointment_date": row.formattedAppointmentDate(),
		"appointment_time": row.formattedAppointmentTime(),
		"status":           status,
		"payment_method":   row.formattedMethod(),
		"receipt_date":     row.formattedReceiptDate(),
		"customer_name":    row.customerName(),
		"customer_mobile":  derefOr(row.Mobile, ""),
	})
}

type myReceiptRow struct {
	ID          uint
	ServiceName *string
	Amount      decimal.Decimal
	ApptDate    *time.Time
	ApptTime    *string
	ApptStatus  *string
	CreatedAt   *time.Time
}

// MyReceipts lists the customer's receipts, newest appointment first.
func MyReceipts(c *gin.Context) {
	customer := utils.MustCustomer(c)

	var rows []myReceiptRow
	err := config.DB.Table("receipts AS r").
		Select(`r.id, s.service_name, r.amount, a.date AS appt_date,
			a.time AS appt_time, a.status AS appt_status, r.created_at`).
		Joins("LEFT JOIN appointments a ON r.appointment_id = a.id").
		Joins("LEFT JOIN sales s ON r.sales_id = s.id").
		Where("r.customer_id = ?", customer.ID).
		Order("a.date DESC, r.id DESC").
		Scan(&rows).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	receipts := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		serviceName := derefOr(row.ServiceName, "Appointment Service")
		bookingDate := ""
		if row.ApptDate != nil {
			bookingDate = row.ApptDate.Format("2006-01-02")
		}
		bookingTime := ""
		if row.ApptTime != nil {
			bookingTime = utils.FormatTimeLabel(*row.ApptTime)
		}
		receipts = append(receipts, gin.H{
			"id":            row.ID,
			"service_name":  serviceName,
			"service_price": utils.FormatPrice(row.Amount),
			"booking_date":  bookingDate,
			"booking_time":  bookingTime,
			"status":        derefOr(row.ApptStatus, "completed"),
			"service_image": ServiceImage(serviceName),
		})
	}

	c.JSON(http.StatusOK, gin.H{"receipts": receipts})
}

// DeleteReceipt removes a receipt after verifying ownership. A receipt
// belonging to another customer reads as not found.
func DeleteReceipt(c *gin.Context) {
	customer := utils.MustCustomer(c)

	receiptID, err := strconv.ParseUint(c.Param("receipt_id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Receipt ID is required."})
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var receipt models.Receipt
	if err := tx.First(&receipt, "id = ?", receiptID).Error; err != nil || receipt.CustomerID != customer.ID {
		tx.Rollback()
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Receipt not found or access denied."})
		return
	}

	if err := tx.Delete(&receipt).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to delete receipt. Please try again."})
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Receipt deleted successfully."})
}

// ViewReceiptPDF renders an owned receipt as a printable PDF document.
func ViewReceiptPDF(c *gin.Context) {
	customer := utils.MustCustomer(c)

	receiptID, err := strconv.ParseUint(c.Param("receipt_id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Receipt not found.")
		return
	}

	row, err := fetchReceiptDetail(uint(receiptID), customer.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error generating PDF")
		return
	}
	if row == nil {
		utils.RespondWithError(c, http.StatusNotFound, "Receipt not found.")
		return
	}

	doc := services.ReceiptDocument{
		ReceiptNumber:   row.receiptNumberOrFallback(),
		CustomerName:    row.customerName(),
		CustomerMobile:  derefOr(row.Mobile, ""),
		CustomerAddress: derefOr(row.Address, ""),
		ServiceName:     row.serviceNameOrDefault(),
		AppointmentDate: row.formattedAppointmentDate(),
		AppointmentTime: row.formattedAppointmentTime(),
		PaymentMethod:   row.formattedMethod(),
		ReceiptDate:     row.formattedReceiptDate(),
		Amount:          utils.FormatPrice(row.Amount),
	}

	pdfBytes, err := services.BuildReceiptPDF(doc)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error generating PDF")
		return
	}
	metrics.IncReceiptPDF()

	c.Header("Content-Disposition", fmt.Sprintf("inline; filename=%q", "Receipt_"+doc.ReceiptNumber+".pdf"))
	c.Data(http.StatusOK, "application/pdf", pdfBytes)
}
