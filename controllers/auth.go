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

type SignupInput struct {
	FirstName       string `json:"first_name" form:"first_name" binding:"required"`
	LastName        string `json:"last_name" form:"last_name" binding:"required"`
	Mobile          string `json:"mobile" form:"mobile" binding:"required"`
	Password        string `json:"password" form:"password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password"`
	Address         string `json:"address" form:"address"`
}

type LoginInput struct {
	Mobile   string `json:"mobile" form:"mobile" binding:"required"`
	Password string `json:"password" form:"password" binding:"required"`
}

// Signup registers a new customer. The mobile number is stripped to
// digits and must be unique across customers.
func Signup(c *gin.Context) {
	if _, ok := utils.CurrentCustomer(c); ok {
		c.JSON(http.StatusOK, gin.H{"redirect": "/home"})
		return
	}

	var input SignupInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Please fill all required fields.")
		return
	}

	if input.Password != input.ConfirmPassword {
		utils.RespondWithError(c, http.StatusBadRequest, "Passwords do not match.")
		return
	}

	mobile := utils.DigitsOnly(input.Mobile)
	if !utils.ValidatePhone(mobile) {
		utils.RespondWithError(c, http.StatusBadRequest, "Please enter a valid mobile number.")
		return
	}

	var existing models.Customer
	if err := config.DB.Where("mobile = ?", mobile).First(&existing).Error; err == nil {
		utils.RespondWithError(c, http.StatusConflict, "User already exists with this mobile number. Please login.")
		return
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}

	customer := models.Customer{
		FirstName: strings.TrimSpace(input.FirstName),
		LastName:  strings.TrimSpace(input.LastName),
		Mobile:    mobile,
		Password:  input.Password,
		Address:   strings.TrimSpace(input.Address),
	}

	if err := config.DB.Create(&customer).Error; err != nil {
		// The unique index can still fire between the pre-check and the
		// insert.
		if isUniqueViolation(err) {
			utils.RespondWithError(c, http.StatusConflict, "User already exists with this mobile number. Please login.")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to create account. Please try again or contact support.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message":  "User added successfully!",
		"redirect": "/login",
	})
}

// Login authenticates by mobile number and password. The customer table
// is checked before the admin table; each match puts the identity into
// its own session namespace.
func Login(c *gin.Context) {
	var input LoginInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Please enter login credentials.")
		return
	}

	mobile := utils.DigitsOnly(input.Mobile)

	var customer models.Customer
	err := config.DB.Where("mobile = ?", mobile).First(&customer).Error
	if err == nil && customer.Password == input.Password {
		if err := utils.LoginCustomer(c, &customer); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "An error occurred. Please try again.")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":  "Login successful!",
			"redirect": "/home",
			"user": gin.H{
				"type":   "customer",
				"id":     customer.ID,
				"name":   customer.FullName(),
				"mobile": customer.Mobile,
			},
		})
		return
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	var admin models.Admin
	err = config.DB.Where("mobile = ?", mobile).First(&admin).Error
	if err == nil && admin.Password == input.Password {
		if err := utils.LoginAdmin(c, &admin); err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "An error occurred. Please try again.")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"message":  "Admin login successful!",
			"redirect": "/admin/home",
			"user": gin.H{
				"type":   "admin",
				"id":     admin.ID,
				"name":   admin.FullName(),
				"mobile": admin.Mobile,
				"role":   admin.Role,
			},
		})
		return
	}
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		utils.RespondWithError(c, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}

	utils.RespondWithError(c, http.StatusUnauthorized, "Invalid mobile number or password.")
}

// Logout clears identity and any in-flight checkout drafts.
func Logout(c *gin.Context) {
	if err := utils.Logout(c); err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "An error occurred. Please try again.")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"message":  "You have been logged out successfully.",
		"redirect": "/login",
	})
}

type ForgotPasswordLookupInput struct {
	Mobile string `json:"mobile" form:"mobile" binding:"required"`
}

type ForgotPasswordResetInput struct {
	Token           string `json:"token" form:"token" binding:"required"`
	NewPassword     string `json:"new_password" form:"new_password" binding:"required"`
	ConfirmPassword string `json:"confirm_password" form:"confirm_password" binding:"required"`
}

// ForgotPasswordLookup finds the account for a mobile number and issues a
// short-lived reset token bound to it. Customers are checked before
// admins, mirroring login.
func ForgotPasswordLookup(c *gin.Context) {
	var input ForgotPasswordLookupInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Please enter a mobile number.")
		return
	}

	mobile := utils.DigitsOnly(input.Mobile)
	if mobile == "" {
		utils.RespondWithError(c, http.StatusBadRequest, "Please enter a mobile number.")
		return
	}

	var customer models.Customer
	if err := config.DB.Where("mobile = ?", mobile).First(&customer).Error; err == nil {
		token, err := utils.GenerateResetToken("customer", customer.ID)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "An error occurred. Please try again.")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user_type":   "customer",
			"name":        customer.FullName(),
			"mobile":      customer.Mobile,
			"reset_token": token,
		})
		return
	}

	var admin models.Admin
	if err := config.DB.Where("mobile = ?", mobile).First(&admin).Error; err == nil {
		token, err := utils.GenerateResetToken("admin", admin.ID)
		if err != nil {
			utils.RespondWithError(c, http.StatusInternalServerError, "An error occurred. Please try again.")
			return
		}
		c.JSON(http.StatusOK, gin.H{
			"user_type":   "admin",
			"name":        admin.FullName(),
			"mobile":      admin.Mobile,
			"role":        admin.Role,
			"reset_token": token,
		})
		return
	}

	utils.RespondWithError(c, http.StatusNotFound, "Mobile number not found. Please check and try again.")
}

// ForgotPasswordReset sets a new password for the account bound to the
// reset token.
func ForgotPasswordReset(c *gin.Context) {
	var input ForgotPasswordResetInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Please fill all password fields.")
		return
	}

	if input.NewPassword != input.ConfirmPassword {
		utils.RespondWithError(c, http.StatusBadRequest, "Passwords do not match.")
		return
	}

	userType, userID, err := utils.ParseResetToken(input.Token)
	if err != nil {
		utils.RespondWithError(c, http.StatusUnauthorized, "Invalid or expired reset link. Please start again.")
		return
	}

	tx := config.DB.Begin()
	defer func() {
		if r := recover(); r != nil {
			tx.Rollback()
		}
	}()

	var updateErr error
	switch userType {
	case "customer":
		updateErr = tx.Model(&models.Customer{}).Where("id = ?", userID).
			Update("password", input.NewPassword).Error
	case "admin":
		updateErr = tx.Model(&models.Admin{}).Where("id = ?", userID).
			Update("password", input.NewPassword).Error
	}
	if updateErr != nil {
		tx.Rollback()
		utils.RespondWithError(c, http.StatusInternalServerError, "An error occurred while updating password. Please try again.")
		return
	}
	tx.Commit()

	c.JSON(http.StatusOK, gin.H{"message": "Password updated successfully.", "redirect": "/login"})
}

// isUniqueViolation inspects driver error text for constraint-violation
// markers.
func isUniqueViolation(err error) bool {
	if err == nil {
		return false
	}
	msg := err.Error()
	return strings.Contains(msg, "Duplicate entry") ||
		strings.Contains(msg, "UNIQUE constraint") ||
		strings.Contains(msg, "duplicate key")
}
