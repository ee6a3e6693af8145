package controllers

import (
	"net/http"
	"time"

	"glamora-backend/config"
	"glamora-backend/models"
	"glamora-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type recentAppointmentRow struct {
	ID          uint
	Date        time.Time
	Time        string
	Status      string
	FirstName   *string
	LastName    *string
	Mobile      *string
	ServiceName *string
}

// AdminHome returns the dashboard overview: headline totals plus the ten
// most recent appointments.
func AdminHome(c *gin.Context) {
	var totalCustomers int64
	if err := config.DB.Model(&models.Customer{}).Count(&totalCustomers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var totalAppointments int64
	if err := config.DB.Model(&models.Appointment{}).Count(&totalAppointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var totalSales decimal.NullDecimal
	if err := config.DB.Table("sales AS s").
		Select("SUM(p.amount)").
		Joins("LEFT JOIN payments p ON s.payment_id = p.id").
		Where("p.amount IS NOT NULL").
		Scan(&totalSales).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var todayAppointments int64
	today := time.Now().Format("2006-01-02")
	if err := config.DB.Model(&models.Appointment{}).
		Where("date = ?", today).Count(&todayAppointments).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	var rows []recentAppointmentRow
	if err := config.DB.Table("appointments AS a").
		Select(`a.id, a.date, a.time, a.status,
			c.first_name, c.last_name, c.mobile, s.service_name`).
		Joins("LEFT JOIN customers c ON a.customer_id = c.id").
		Joins("LEFT JOIN sales s ON a.sales_id = s.id").
		Order("a.date DESC, a.time DESC").
		Limit(10).
		Scan(&rows).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	recent := make([]gin.H, 0, len(rows))
	for _, row := range rows {
		customerName := "N/A"
		if row.FirstName != nil && row.LastName != nil {
			customerName = *row.FirstName + " " + *row.LastName
		}
		recent = append(recent, gin.H{
			"id":            row.ID,
			"date":          row.Date.Format("2006-01-02"),
			"time":          utils.FormatTimeLabel(row.Time),
			"status":        row.Status,
			"customer_name": customerName,
			"mobile":        derefOr(row.Mobile, "N/A"),
			"service":       derefOr(row.ServiceName, "N/A"),
		})
	}

	sales := decimal.Zero
	if totalSales.Valid {
		sales = totalSales.Decimal
	}

	c.JSON(http.StatusOK, gin.H{
		"total_customers":     totalCustomers,
		"total_appointments":  totalAppointments,
		"total_sales":         sales.InexactFloat64(),
		"today_appointments":  todayAppointments,
		"recent_appointments": recent,
	})
}
