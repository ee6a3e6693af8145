package controllers

import (
	"net/http"
	"strings"
	"time"

	"glamora-backend/config"
	"glamora-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type adminAppointmentRow struct {
	ID                uint
	Date              time.Time
	Time              string
	Status            string
	ReceiptCode       string
	CustomerFirstName string
	CustomerLastName  string
	ServiceName       *string
	EmployeeFirstName *string
	EmployeeLastName  *string
	Amount            decimal.NullDecimal
	PaymentMethod     *string
}

// staffName joins an employee's name parts, tolerating a missing last
// name. A nil first name means no employee was assigned.
func staffName(first, last *string) string {
	if first == nil {
		return "Unassigned"
	}
	return strings.TrimSpace(*first + " " + derefOr(last, ""))
}

func (r adminAppointmentRow) json() gin.H {
	amount := "$0.00"
	if r.Amount.Valid {
		amount = utils.FormatPrice(r.Amount.Decimal)
	}
	return gin.H{
		"id":           r.ID,
		"date":         utils.FormatShortDate(r.Date),
		"time":         utils.FormatTimeLabel(r.Time),
		"status":       r.Status,
		"receipt_code": r.ReceiptCode,
		"customer":     r.CustomerFirstName + " " + r.CustomerLastName,
		"service":      derefOr(r.ServiceName, "N/A"),
		"employee":     staffName(r.EmployeeFirstName, r.EmployeeLastName),
		"amount":       amount,
		"method":       utils.FormatPaymentMethod(derefOr(r.PaymentMethod, "")),
	}
}

// AdminAppointments lists every appointment with its customer, service,
// employee, and payment joined in.
func AdminAppointments(c *gin.Context) {
	var rows []adminAppointmentRow
	err := config.DB.Table("appointments a").
		Select(`a.id, a.date, a.time, a.status, a.receipt_code,
			c.first_name AS customer_first_name, c.last_name AS customer_last_name,
			s.service_name, e.first_name AS employee_first_name, e.last_name AS employee_last_name,
			p.amount, p.method AS payment_method`).
		Joins("JOIN customers c ON c.id = a.customer_id").
		Joins("LEFT JOIN payments p ON p.appointment_id = a.id").
		Joins("LEFT JOIN sales s ON s.payment_id = p.id").
		Joins("LEFT JOIN employees e ON e.id = s.employee_id").
		Order("a.date DESC, a.id DESC").
		Scan(&rows).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	appointments := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		appointments = append(appointments, row.json())
	}

	c.JSON(http.StatusOK, gin.H{"appointments": appointments})
}

type adminSaleRow struct {
	ID                uint
	ServiceName       string
	SaleDate          time.Time
	CustomerFirstName string
	CustomerLastName  string
	EmployeeFirstName *string
	EmployeeLastName  *string
	Amount            decimal.NullDecimal
	Method            *string
	ReceiptNumber     *string
}

// AdminSales lists every sale record alongside the running revenue total.
func AdminSales(c *gin.Context) {
	var rows []adminSaleRow
	err := config.DB.Table("sales s").
		Select(`s.id, s.service_name, s.created_at AS sale_date,
			c.first_name AS customer_first_name, c.last_name AS customer_last_name,
			e.first_name AS employee_first_name, e.last_name AS employee_last_name,
			p.amount, p.method, r.receipt_number`).
		Joins("JOIN payments p ON p.id = s.payment_id").
		Joins("JOIN appointments a ON a.id = p.appointment_id").
		Joins("JOIN customers c ON c.id = a.customer_id").
		Joins("LEFT JOIN employees e ON e.id = s.employee_id").
		Joins("LEFT JOIN receipts r ON r.id = s.receipt_id").
		Order("s.created_at DESC").
		Scan(&rows).Error
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	total := decimal.Zero
	sales := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		if row.Amount.Valid {
			total = total.Add(row.Amount.Decimal)
		}
		amount := "$0.00"
		if row.Amount.Valid {
			amount = utils.FormatPrice(row.Amount.Decimal)
		}
		sales = append(sales, gin.H{
			"id":             row.ID,
			"service":        row.ServiceName,
			"date":           utils.FormatShortDate(row.SaleDate),
			"customer":       row.CustomerFirstName + " " + row.CustomerLastName,
			"employee":       staffName(row.EmployeeFirstName, row.EmployeeLastName),
			"amount":         amount,
			"method":         utils.FormatPaymentMethod(derefOr(row.Method, "")),
			"receipt_number": derefOr(row.ReceiptNumber, "N/A"),
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"sales":         sales,
		"total_sales":   len(sales),
		"total_revenue": utils.FormatPrice(total),
	})
}
