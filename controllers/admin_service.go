package controllers

import (
	"errors"
	"net/http"
	"strconv"

	"glamora-backend/config"
	"glamora-backend/models"
	"glamora-backend/utils"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type ServiceInput struct {
	Name          string `json:"service_name" form:"service_name" binding:"required"`
	Category      string `json:"category" form:"category" binding:"required"`
	Description   string `json:"description" form:"description"`
	Price         string `json:"price" form:"price" binding:"required"`
	OriginalPrice string `json:"original_price" form:"original_price"`
	DiscountLabel string `json:"discount_label" form:"discount_label"`
	IsActive      *bool  `json:"is_active" form:"is_active"`
}

// AdminServices lists the whole catalog, active or not.
func AdminServices(c *gin.Context) {
	var services []models.Service
	if err := config.DB.Order("category, name").Find(&services).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	out := make([]gin.H, 0, len(services))
	for _, service := range services {
		entry := serviceJSON(service)
		entry["is_active"] = service.IsActive
		out = append(out, entry)
	}

	c.JSON(http.StatusOK, gin.H{"services": out})
}

// AdminGetService returns one service for the edit form.
func AdminGetService(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	var originalPrice interface{}
	if service.OriginalPrice.Valid {
		originalPrice = service.OriginalPrice.Decimal.InexactFloat64()
	}

	c.JSON(http.StatusOK, gin.H{
		"id":             service.ID,
		"name":           service.Name,
		"category":       service.Category,
		"description":    service.Description,
		"price":          service.Price.InexactFloat64(),
		"original_price": originalPrice,
		"discount_label": service.DiscountLabel,
		"is_active":      service.IsActive,
	})
}

func serviceFromInput(input ServiceInput) (models.Service, error) {
	price, err := decimal.NewFromString(input.Price)
	if err != nil {
		return models.Service{}, errors.New("Invalid price")
	}

	var originalPrice decimal.NullDecimal
	if input.OriginalPrice != "" {
		parsed, err := decimal.NewFromString(input.OriginalPrice)
		if err != nil {
			return models.Service{}, errors.New("Invalid original price")
		}
		originalPrice = decimal.NullDecimal{Decimal: parsed, Valid: true}
	}

	isActive := true
	if input.IsActive != nil {
		isActive = *input.IsActive
	}

	return models.Service{
		Name:          input.Name,
		Category:      input.Category,
		Description:   input.Description,
		Price:         price,
		OriginalPrice: originalPrice,
		DiscountLabel: input.DiscountLabel,
		IsActive:      isActive,
	}, nil
}

// AdminAddService creates a catalog entry.
func AdminAddService(c *gin.Context) {
	var input ServiceInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	service, err := serviceFromInput(input)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	if err := config.DB.Create(&service).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error adding service")
		return
	}

	c.JSON(http.StatusCreated, gin.H{"message": "Service added successfully!", "id": service.ID})
}

// AdminEditService updates a catalog entry in place.
func AdminEditService(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	var input ServiceInput
	if err := c.ShouldBind(&input); err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, "Invalid input: "+err.Error())
		return
	}

	updated, err := serviceFromInput(input)
	if err != nil {
		utils.RespondWithError(c, http.StatusBadRequest, err.Error())
		return
	}

	var service models.Service
	if err := config.DB.First(&service, "id = ?", serviceID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		} else {
			utils.RespondWithError(c, http.StatusInternalServerError, "Database error")
		}
		return
	}

	updated.ID = service.ID
	if err := config.DB.Save(&updated).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error updating service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service updated successfully!"})
}

// AdminDeleteService removes a catalog entry.
func AdminDeleteService(c *gin.Context) {
	serviceID, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		utils.RespondWithError(c, http.StatusNotFound, "Service not found")
		return
	}

	if err := config.DB.Delete(&models.Service{}, "id = ?", serviceID).Error; err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Error deleting service")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Service deleted successfully!"})
}
