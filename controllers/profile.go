package controllers

import (
	"errors"
	"net/http"
	"strings"

	"glamora-backend/config"
	"glamora-backend/models"
	"glamora-backend/utils"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// Profile returns the customer's identity, saved addresses, and a handful
// of recent bookings.
func Profile(c *gin.Context) {
	customer := utils.MustCustomer(c)

	bookings, err := fetchBookingsForCustomer(customer.ID)
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	if len(bookings) > 5 {
		bookings = bookings[:5]
	}

	c.JSON(http.StatusOK, gin.H{
		"customer": gin.H{
			"id":         customer.ID,
			"first_name": customer.FirstName,
			"last_name":  customer.LastName,
			"mobile":     customer.Mobile,
			"address":    customer.Address,
		},
		"profile_display_name": strings.TrimSpace(customer.FullName()),
		"saved_addresses":      savedAddresses(customer),
		"recent_bookings":      bookings,
	})
}

// SavedAddresses lists the customer's saved addresses.
func SavedAddresses(c *gin.Context) {
	customer := utils.MustCustomer(c)
	c.JSON(http.StatusOK, gin.H{"addresses": savedAddresses(customer)})
}

// DeleteAddress clears the saved address.
func DeleteAddress(c *gin.Context) {
	customer := utils.MustCustomer(c)

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if err := tx.Model(&models.Customer{}).Where("id = ?", customer.ID).
		Update("address", "").Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Unable to delete address. Please try again."})
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Address deleted successfully"})
}

type ProfileSettingsInput struct {
	FirstName string `json:"first_name" form:"first_name" binding:"required"`
	LastName  string `json:"last_name" form:"last_name" binding:"required"`
	Mobile    string `json:"mobile_no" form:"mobile_no" binding:"required"`
}

// ProfileSettings updates name and mobile. A mobile change is rejected
// when another customer already holds the number.
func ProfileSettings(c *gin.Context) {
	customer := utils.MustCustomer(c)

	var input ProfileSettingsInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "First name, last name, and mobile number are required.")
		return
	}

	mobile := utils.DigitsOnly(input.Mobile)
	if mobile == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "First name, last name, and mobile number are required.")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	if mobile != customer.Mobile {
		var existing models.Customer
		err := tx.Where("mobile = ?", mobile).First(&existing).Error
		if err == nil {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusConflict, "Mobile number already exists. Please use another number.")
			return
		}
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			tx.Rollback()
			utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile. Please try again.")
			return
		}
	}

	if err := tx.Model(&models.Customer{}).Where("id = ?", customer.ID).
		Updates(map[string]interface{}{
			"first_name": strings.TrimSpace(input.FirstName),
			"last_name":  strings.TrimSpace(input.LastName),
			"mobile":     mobile,
		}).Error; err != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to update profile. Please try again.")
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Profile updated successfully.", "redirect": "/profile"})
}

type ChangePasswordInput struct {
	OldPassword     string `json:"old_password" form:"old_password" binding:"required"`
	NewPassword     string `json:"new_password" form:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" binding:"required"`
}

// ChangePassword verifies the current password against the stored value
// and swaps in the new one inside a transaction.
func ChangePassword(c *gin.Context) {
	customer := utils.MustCustomer(c)

	var input ChangePasswordInput
	if err := c.ShouldBind(&input); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Please fill all password fields."})
		return
	}

	if input.NewPassword != input.ConfirmPassword {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "New passwords do not match."})
		return
	}
	if len(input.NewPassword) < 6 {
		c.JSON(http.StatusBadRequest, gin.H{"success": false, "error": "Password must be at least 6 characters."})
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var current models.Customer
	if err := tx.First(&current, "id = ?", customer.ID).Error; err != nil || current.Password != input.OldPassword {
		tx.Rollback()
		c.JSON(http.StatusUnauthorized, gin.H{"success": false, "error": "Current password is incorrect."})
		return
	}

	if err := tx.Model(&models.Customer{}).Where("id = ?", customer.ID).
		Update("password", input.NewPassword).Error; err != nil {
		tx.Rollback()
		c.JSON(http.StatusInternalServerError, gin.H{"success": false, "error": "Failed to change password. Please try again."})
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"success": true, "message": "Password changed successfully."})
}
