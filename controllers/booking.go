package controllers

import (
	"errors"
	"net/http"
	"strconv"
	"time"

	"glamora-backend/config"
	"glamora-backend/models"
	"glamora-backend/services"
	"glamora-backend/utils"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type CreateBookingInput struct {
	ServiceName        string `json:"service" form:"service"`
	ServicePrice       string `json:"price" form:"price"`
	ServiceDescription string `json:"description" form:"description"`
	BookingDate        string `json:"booking_date" form:"booking_date"`
	BookingTime        string `json:"booking_time" form:"booking_time"`
}

// GetBooking returns the booking form data: the chosen service and the
// customer's already-occupied slots so the UI can disable them.
func GetBooking(c *gin.Context) {
	customer := utils.MustCustomer(c)

	serviceName := c.Query("service")

	booked, err := services.BookedSlots(config.DB, customer.ID, 0)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"service_name":        serviceName,
		"service_price":       c.Query("price"),
		"service_description": c.Query("description"),
		"service_image":       ServiceImage(serviceName),
		"booked_slots":        booked,
	})
}

// CreateBooking stores the pending booking draft in session. Nothing is
// persisted until checkout commits.
func CreateBooking(c *gin.Context) {
	var input CreateBookingInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please select both date and time"})
		return
	}
	// The service identity may arrive on the query string instead of the
	// body, mirroring the booking form.
	if input.ServiceName == "" {
		input.ServiceName = c.Query("service")
		input.ServicePrice = c.Query("price")
		input.ServiceDescription = c.Query("description")
	}

	if input.BookingDate == "" || input.BookingTime == "" {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please select both date and time"})
		return
	}

	session := sessions.Default(c)
	session.Set(utils.SessionKeyBooking, models.BookingDraft{
		ServiceName:        input.ServiceName,
		ServicePrice:       input.ServicePrice,
		ServiceDescription: input.ServiceDescription,
		BookingDate:        input.BookingDate,
		BookingTime:        input.BookingTime,
	})
	if err := session.Save(); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "An error occurred. Please try again."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

type bookingRow struct {
	ID                uint
	Date              time.Time
	Time              string
	Status            string
	ServiceName       string
	Amount            decimal.Decimal
	Paid              int
	EmployeeID        *uint
	EmployeeFirstName *string
	EmployeeLastName  *string
	EmployeePhone     *string
	EmployeeRating    *float64
}

func fetchBookingsForCustomer(customerID uint) ([]gin.H, error) {
	var rows []bookingRow
	err := config.DB.Table("appointments AS a").
		Select(`a.id, a.date, a.time, COALESCE(a.status, 'scheduled') AS status,
			COALESCE(s.service_name, 'Scheduled Service') AS service_name,
			COALESCE(p.amount, 0) AS amount,
			CASE WHEN p.status = 'completed' THEN 1 ELSE 0 END AS paid,
			e.id AS employee_id, e.first_name AS employee_first_name,
			e.last_name AS employee_last_name, e.phone AS employee_phone,
			e.rating AS employee_rating`).
		Joins("LEFT JOIN sales s ON a.sales_id = s.id").
		Joins("LEFT JOIN payments p ON a.payment_id = p.id").
		Joins("LEFT JOIN employees e ON a.employee_id = e.id").
		Where("a.customer_id = ?", customerID).
		Order("a.date DESC, a.time DESC").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	bookings := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		var employeeName string
		if row.EmployeeFirstName != nil {
			employeeName = *row.EmployeeFirstName
			if row.EmployeeLastName != nil {
				employeeName += " " + *row.EmployeeLastName
			}
		}
		employeePhone := "N/A"
		if row.EmployeePhone != nil && *row.EmployeePhone != "" {
			employeePhone = *row.EmployeePhone
		}

		bookings = append(bookings, gin.H{
			"id":                row.ID,
			"service_name":      row.ServiceName,
			"service_price":     utils.FormatPrice(row.Amount),
			"booking_date":      row.Date.Format("2006-01-02"),
			"booking_time":      utils.FormatTimeLabel(row.Time),
			"status":            row.Status,
			"payment_completed": row.Paid == 1,
			"service_image":     ServiceImage(row.ServiceName),
			"employee_id":       row.EmployeeID,
			"employee_name":     employeeName,
			"employee_phone":    employeePhone,
			"employee_rating":   row.EmployeeRating,
		})
	}
	return bookings, nil
}

// MyBookings lists the customer's appointments, newest first.
func MyBookings(c *gin.Context) {
	customer := utils.MustCustomer(c)

	bookings, err := fetchBookingsForCustomer(customer.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{"bookings": bookings})
}

// DeleteBooking removes an appointment owned by the customer.
func DeleteBooking(c *gin.Context) {
	customer := utils.MustCustomer(c)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Booking ID is required."})
		return
	}

	result := config.DB.Where("id = ? AND customer_id = ?", bookingID, customer.ID).
		Delete(&models.Appointment{})
	if result.Error != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to delete booking at the moment."})
		return
	}
	if result.RowsAffected == 0 {
		c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Booking not found"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true})
}

// EditBooking returns the edit form data for a booking: its current slot,
// the earliest reschedule date, and the customer's other occupied slots.
// Bookings inside the 24-hour window cannot be edited.
func EditBooking(c *gin.Context) {
	customer := utils.MustCustomer(c)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Booking ID is required.")
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("id = ? AND customer_id = ?", bookingID, customer.ID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Booking not found.")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	if err := services.CanModify(&appointment); err != nil {
		utils.RespondWithError(c, http.StatusForbidden, err.Error())
		return
	}

	var sale models.Sales
	serviceName := "Scheduled Service"
	if appointment.SalesID != 0 {
		if err := config.DB.First(&sale, "id = ?", appointment.SalesID).Error; err == nil {
			serviceName = sale.ServiceName
		}
	}

	var payment models.Payment
	amount := decimal.Zero
	if appointment.PaymentID != 0 {
		if err := config.DB.First(&payment, "id = ?", appointment.PaymentID).Error; err == nil {
			amount = payment.Amount
		}
	}

	booked, err := services.BookedSlots(config.DB, customer.ID, appointment.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"booking_id":    appointment.ID,
		"service_name":  serviceName,
		"service_price": utils.FormatPrice(amount),
		"current_date":  appointment.Date.Format("2006-01-02"),
		"current_time":  utils.FormatTimeLabel(appointment.Time),
		"min_date":      appointment.Date.AddDate(0, 0, 1).Format("2006-01-02"),
		"booked_slots":  booked,
	})
}

type UpdateBookingInput struct {
	BookingDate string `json:"booking_date" form:"booking_date" binding:"required"`
	BookingTime string `json:"booking_time" form:"booking_time" binding:"required"`
}

// UpdateBooking reschedules an appointment. The 24-hour gate applies to
// the existing slot, and the new date must fall strictly after the
// original date.
func UpdateBooking(c *gin.Context) {
	customer := utils.MustCustomer(c)

	bookingID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Booking ID is required."})
		return
	}

	var input UpdateBookingInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide all required fields."})
		return
	}

	var appointment models.Appointment
	if err := config.DB.Where("id = ? AND customer_id = ?", bookingID, customer.ID).
		First(&appointment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"success": false, "error": "Booking not found."})
		} else {
			c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Database error"})
		}
		return
	}

	newDate, err := time.Parse("2006-01-02", input.BookingDate)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please provide all required fields."})
		return
	}

	if err := services.ValidateReschedule(&appointment, newDate); err != nil {
		c.JSON(http.StatusForbidden, gin.H{"success": false, "error": err.Error()})
		return
	}

	if err := config.DB.Model(&models.Appointment{}).
		Where("id = ? AND customer_id = ?", appointment.ID, customer.ID).
		Updates(map[string]interface{}{
			"date": newDate,
			"time": utils.NormalizeTimeSlot(input.BookingTime),
		}).Error; err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to update booking."})
		return
	}

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Booking updated successfully!"})
}
