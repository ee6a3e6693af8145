package controllers

import (
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strings"

	"glamora-backend/config"
	"glamora-backend/models"
	"glamora-backend/utils"

	"github.com/gin-gonic/gin"
)

// CategoryOrder fixes the display order of the service catalog.
var CategoryOrder = []string{"Deals", "Hair", "Waxing", "Threading", "Facial", "Nails"}

// serviceImageMapping maps service-name keywords to image files under the
// assets directory. Order matters: more specific matches come first.
var serviceImageMapping = [][2]string{
	// Threading
	{"eyebrow threading", "eyebrow threading.jpeg"},
	{"facial threading", "face threading.jpeg"},
	{"threading face", "threading face.jpg"},
	{"threading", "Threading.jpeg"},

	// Facial
	{"deep cleansing facial", "Deep Cleaning Facial.jpeg"},
	{"deep cleaning facial", "Deep Cleaning Facial.jpeg"},
	{"facial treatment", "Facial Treatment.jpg"},
	{"hydra facial", "Hydra Facial.jpeg"},
	{"facial", "Facial.jpeg"},

	// Hair
	{"hair color", "hair color.jpg"},
	{"hair colour", "hair color.jpg"},
	{"hair coloring", "hair color.jpg"},
	{"hair cut", "hair cut img.webp"},
	{"haircut", "hair cut img.webp"},
	{"hair wash", "Hair wash.jpg"},
	{"styling", "hair cut img.webp"},

	// Nails
	{"nail art", "Nails Art.jpeg"},
	{"nails art", "Nails Art.jpeg"},
	{"manicure & pedicure", "Pedicure & manicure.jpeg"},
	{"pedicure & manicure", "Pedicure & manicure.jpeg"},
	{"manicure", "Manicure.jpeg"},
	{"pedicure", "Pedicure.jpeg"},
	{"nails", "Nails.jpeg"},

	// Waxing
	{"full body wax", "waxing.jpg"},
	{"full body waxing", "waxing.jpg"},
	{"waxing", "waxing.jpg"},
}

// ServiceImage maps a service name to the URL of its display image, or ""
// when no image file matches.
func ServiceImage(serviceName string) string {
	normalized := strings.ToLower(strings.TrimSpace(serviceName))
	assetsDir := os.Getenv("ASSETS_DIR")

	for _, entry := range serviceImageMapping {
		if !strings.Contains(normalized, entry[0]) {
			continue
		}
		if assetsDir != "" {
			if _, err := os.Stat(filepath.Join(assetsDir, "service images", entry[1])); err != nil {
				continue
			}
		}
		return "/service-images/" + url.PathEscape(entry[1])
	}
	return ""
}

func serviceJSON(service models.Service) gin.H {
	var originalPrice interface{}
	if service.OriginalPrice.Valid {
		originalPrice = utils.FormatPrice(service.OriginalPrice.Decimal)
	}
	return gin.H{
		"id":             service.ID,
		"name":           service.Name,
		"category":       service.Category,
		"description":    service.Description,
		"price":          utils.FormatPrice(service.Price),
		"original_price": originalPrice,
		"discount":       service.DiscountLabel,
		"image":          ServiceImage(service.Name),
	}
}

func activeServices() ([]models.Service, error) {
	var services []models.Service
	err := config.DB.Where("is_active = ?", true).
		Order("category, name").
		Find(&services).Error
	return services, err
}

// Home returns the landing-page data: the popular slice of the catalog
// plus search suggestions.
func Home(c *gin.Context) {
	services, err := activeServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	popular := make([]gin.H, 0, 8)
	suggestions := make([]gin.H, 0, len(services))
	for i, service := range services {
		if i < 8 {
			popular = append(popular, serviceJSON(service))
		}
		suggestions = append(suggestions, gin.H{"name": service.Name, "price": utils.FormatPrice(service.Price)})
	}

	c.JSON(http.StatusOK, gin.H{
		"popular_services":   popular,
		"total_services":     len(services),
		"search_suggestions": suggestions,
		"categories":         CategoryOrder,
	})
}

// Services returns the active catalog grouped by category in the fixed
// display order. Categories without active services are omitted.
func Services(c *gin.Context) {
	services, err := activeServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	byCategory := make(map[string][]gin.H)
	for _, service := range services {
		for _, category := range CategoryOrder {
			if strings.EqualFold(service.Category, category) {
				byCategory[category] = append(byCategory[category], serviceJSON(service))
				break
			}
		}
	}

	grouped := make([]gin.H, 0, len(CategoryOrder))
	for _, category := range CategoryOrder {
		if entries, ok := byCategory[category]; ok {
			grouped = append(grouped, gin.H{"category": category, "services": entries})
		}
	}

	c.JSON(http.StatusOK, gin.H{"services_by_category": grouped})
}

// Search filters active services by a case-insensitive substring match on
// the name.
func Search(c *gin.Context) {
	query := strings.TrimSpace(c.Query("q"))

	services, err := activeServices()
	if err != nil {
		utils.RespondWithError(c, http.StatusInternalServerError, "Failed to retrieve services")
		return
	}

	results := make([]gin.H, 0, len(services))
	for _, service := range services {
		if query == "" || strings.Contains(strings.ToLower(service.Name), strings.ToLower(query)) {
			results = append(results, serviceJSON(service))
		}
	}

	c.JSON(http.StatusOK, gin.H{
		"query":         query,
		"services":      results,
		"results_count": len(results),
	})
}
