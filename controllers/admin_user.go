package controllers

import (
	"net/http"
	"strconv"
	"strings"

	"glamora-backend/config"
	"glamora-backend/models"
	"glamora-backend/utils"

	"github.com/gin-gonic/gin"
)

// AdminUsers returns the tabbed user listings: customers, employees, and
// admins.
func AdminUsers(c *gin.Context) {
	tab := c.DefaultQuery("tab", "customers")

	var customers []models.Customer
	if err := config.DB.Order("created_at DESC").Find(&customers).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	customerRows := make([]gin.H, 0, len(customers))
	for _, customer := range customers {
		address := customer.Address
		if address == "" {
			address = "N/A"
		}
		customerRows = append(customerRows, gin.H{
			"id":         customer.ID,
			"first_name": customer.FirstName,
			"last_name":  customer.LastName,
			"mobile":     customer.Mobile,
			"address":    address,
			"created_at": customer.CreatedAt,
		})
	}

	var employees []models.Employee
	if err := config.DB.Order("created_at DESC").Find(&employees).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	employeeRows := make([]gin.H, 0, len(employees))
	for _, employee := range employees {
		skills := employee.Skills
		if skills == "" {
			skills = "N/A"
		}
		employeeRows = append(employeeRows, gin.H{
			"id":           employee.ID,
			"first_name":   employee.FirstName,
			"last_name":    employee.LastName,
			"phone":        employee.Phone,
			"skills":       skills,
			"rating":       employee.Rating,
			"availability": employee.Availability,
			"created_at":   employee.CreatedAt,
		})
	}

	var admins []models.Admin
	if err := config.DB.Order("created_at DESC").Find(&admins).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		return
	}
	adminRows := make([]gin.H, 0, len(admins))
	for _, admin := range admins {
		adminRows = append(adminRows, gin.H{
			"id":         admin.ID,
			"first_name": admin.FirstName,
			"last_name":  admin.LastName,
			"mobile":     admin.Mobile,
			"role":       admin.Role,
			"created_at": admin.CreatedAt,
		})
	}

	c.JSON(http.StatusOK, gin.H{
		"customers":  customerRows,
		"employees":  employeeRows,
		"admins":     adminRows,
		"active_tab": tab,
	})
}

type AdminUserInput struct {
	UserType     string `json:"user_type" form:"user_type" binding:"required"`
	FirstName    string `json:"first_name" form:"first_name" binding:"required"`
	LastName     string `json:"last_name" form:"last_name" binding:"required"`
	Mobile       string `json:"mobile" form:"mobile"`
	Phone        string `json:"phone" form:"phone"`
	Password     string `json:"password" form:"password"`
	Address      string `json:"address" form:"address"`
	Skills       string `json:"skills" form:"skills"`
	Rating       string `json:"rating" form:"rating"`
	Availability string `json:"availability" form:"availability"`
	Role         string `json:"role" form:"role"`
}

func titleWord(word string) string {
	if word == "" {
		return word
	}
	return strings.ToUpper(word[:1]) + word[1:]
}

func parseRating(raw string) float64 {
	rating, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
	if err != nil {
		return 0
	}
	return rating
}

// AdminAddUser creates a customer, employee, or admin, selected by the
// user_type tag.
func AdminAddUser(c *gin.Context) {
	var input AdminUserInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	var err error
	switch input.UserType {
	case "customer":
		err = config.DB.Create(&models.Customer{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Mobile:    utils.DigitsOnly(input.Mobile),
			Password:  input.Password,
			Address:   input.Address,
		}).Error
	case "employee":
		availability := input.Availability
		if availability == "" {
			availability = "available"
		}
		err = config.DB.Create(&models.Employee{
			FirstName:    input.FirstName,
			LastName:     input.LastName,
			Phone:        input.Phone,
			Address:      input.Address,
			Skills:       input.Skills,
			Rating:       parseRating(input.Rating),
			Availability: availability,
		}).Error
	case "admin":
		err = config.DB.Create(&models.Admin{
			FirstName: input.FirstName,
			LastName:  input.LastName,
			Mobile:    utils.DigitsOnly(input.Mobile),
			Role:      input.Role,
			Password:  input.Password,
		}).Error
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown user type")
		return
	}

	if err != nil {
		if isUniqueViolation(err) {
			utils.RespondWithError(c, http.StatusConflict, "User already exists with this mobile number.")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Error adding "+input.UserType)
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": titleWord(input.UserType) + " added successfully!"})
}

// AdminGetUser returns one user record for the edit form.
func AdminGetUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	switch c.Param("user_type") {
	case "customer":
		var customer models.Customer
		if err := config.DB.First(&customer, "id = ?", userID).Error; err == nil {
			c.JSON(http.StatusOK, gin.H{
				"id":         customer.ID,
				"first_name": customer.FirstName,
				"last_name":  customer.LastName,
				"mobile":     customer.Mobile,
				"address":    customer.Address,
			})
			return
		}
	case "employee":
		var employee models.Employee
		if err := config.DB.First(&employee, "id = ?", userID).Error; err == nil {
			c.JSON(http.StatusOK, gin.H{
				"id":           employee.ID,
				"first_name":   employee.FirstName,
				"last_name":    employee.LastName,
				"phone":        employee.Phone,
				"address":      employee.Address,
				"skills":       employee.Skills,
				"rating":       employee.Rating,
				"availability": employee.Availability,
			})
			return
		}
	case "admin":
		var admin models.Admin
		if err := config.DB.First(&admin, "id = ?", userID).Error; err == nil {
			c.JSON(http.StatusOK, gin.H{
				"id":         admin.ID,
				"first_name": admin.FirstName,
				"last_name":  admin.LastName,
				"mobile":     admin.Mobile,
				"role":       admin.Role,
			})
			return
		}
	}

	utils.RespondWithError(c, http.StatusNotFound, "User not found")
}

// AdminEditUser updates a user record. The password only changes when a
// new one is provided.
func AdminEditUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	var input AdminUserInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	userType := c.Param("user_type")
	var updateErr error
	switch userType {
	case "customer":
		updates := map[string]interface{}{
			"first_name": input.FirstName,
			"last_name":  input.LastName,
			"mobile":     utils.DigitsOnly(input.Mobile),
			"address":    input.Address,
		}
		if input.Password != "" {
			updates["password"] = input.Password
		}
		updateErr = config.DB.Model(&models.Customer{}).Where("id = ?", userID).Updates(updates).Error
	case "employee":
		updateErr = config.DB.Model(&models.Employee{}).Where("id = ?", userID).Updates(map[string]interface{}{
			"first_name":   input.FirstName,
			"last_name":    input.LastName,
			"phone":        input.Phone,
			"address":      input.Address,
			"skills":       input.Skills,
			"rating":       parseRating(input.Rating),
			"availability": input.Availability,
		}).Error
	case "admin":
		updates := map[string]interface{}{
			"first_name": input.FirstName,
			"last_name":  input.LastName,
			"mobile":     utils.DigitsOnly(input.Mobile),
			"role":       input.Role,
		}
		if input.Password != "" {
			updates["password"] = input.Password
		}
		updateErr = config.DB.Model(&models.Admin{}).Where("id = ?", userID).Updates(updates).Error
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown user type")
		return
	}

	if updateErr != nil {
		if isUniqueViolation(updateErr) {
			utils.RespondWithError(c, http.StatusConflict, "Mobile number already exists. Please use another number.")
			return
		}
		utils.RespondWithError(c, http.StatusInternalServerError, "Error updating "+userType)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": titleWord(userType) + " updated successfully!"})
}

// AdminDeleteUser removes a user record by type and id.
func AdminDeleteUser(c *gin.Context) {
	userID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	userType := c.Param("user_type")
	var deleteErr error
	switch userType {
	case "customer":
		deleteErr = config.DB.Delete(&models.Customer{}, "id = ?", userID).Error
	case "employee":
		deleteErr = config.DB.Delete(&models.Employee{}, "id = ?", userID).Error
	case "admin":
		deleteErr = config.DB.Delete(&models.Admin{}, "id = ?", userID).Error
	default:
		utils.RespondWithError(c, http.StatusBadRequest, "Unknown user type")
		return
	}

	if deleteErr != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error deleting "+userType)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": titleWord(userType) + " deleted successfully!"})
}
