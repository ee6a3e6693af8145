// utils/auth.go
package utils

import (
	"errors"
	"os"
	"time"

	"glamora-backend/config"
	"glamora-backend/models"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/golang-jwt/jwt/v5"
)

// Session keys. Customer and admin identities are independent namespaces:
// holding one never grants the other.
const (
	SessionKeyCustomer = "customer_id"
	SessionKeyAdmin    = "admin_id"
	SessionKeyBooking  = "pending_booking"
	SessionKeyPayment  = "payment_data"
)

// Context keys set by the middleware below.
const (
	CtxCustomer = "customer"
	CtxAdmin    = "admin"
)

// CurrentCustomer resolves the customer identity from the session, loading
// the full row so handlers work with fresh data rather than stale session
// copies.
func CurrentCustomer(c *gin.Context) (*models.Customer, bool) {
	session := sessions.Default(c)
	raw := session.Get(SessionKeyCustomer)
	id, ok := raw.(uint)
	if !ok {
		return nil, false
	}

	var customer models.Customer
	if err := config.DB.First(&customer, "id = ?", id).Error; err != nil {
		return nil, false
	}
	return &customer, true
}

// CurrentAdmin resolves the admin identity from the session.
func CurrentAdmin(c *gin.Context) (*models.Admin, bool) {
	session := sessions.Default(c)
	raw := session.Get(SessionKeyAdmin)
	id, ok := raw.(uint)
	if !ok {
		return nil, false
	}

	var admin models.Admin
	if err := config.DB.First(&admin, "id = ?", id).Error; err != nil {
		return nil, false
	}
	return &admin, true
}

// LoginCustomer stores the customer identity in the session.
func LoginCustomer(c *gin.Context, customer *models.Customer) error {
	session := sessions.Default(c)
	session.Set(SessionKeyCustomer, customer.ID)
	return session.Save()
}

// LoginAdmin stores the admin identity in the session.
func LoginAdmin(c *gin.Context, admin *models.Admin) error {
	session := sessions.Default(c)
	session.Set(SessionKeyAdmin, admin.ID)
	return session.Save()
}

// Logout clears the whole session, identity and drafts alike.
func Logout(c *gin.Context) error {
	session := sessions.Default(c)
	session.Clear()
	session.Options(sessions.Options{Path: "/", MaxAge: -1})
	return session.Save()
}

// CustomerRequired gates customer pages. The resolved customer is placed
// in the request context so handlers never reach into ambient state.
func CustomerRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		customer, ok := CurrentCustomer(c)
		if !ok {
			c.AbortWithStatusJSON(401, gin.H{"error": "Please login to access this page.", "redirect": "/login"})
			return
		}
		c.Set(CtxCustomer, customer)
		c.Next()
	}
}

// AdminRequired gates admin pages.
func AdminRequired() gin.HandlerFunc {
	return func(c *gin.Context) {
		admin, ok := CurrentAdmin(c)
		if !ok {
			c.AbortWithStatusJSON(401, gin.H{"error": "Please login as admin to access this page.", "redirect": "/login"})
			return
		}
		c.Set(CtxAdmin, admin)
		c.Next()
	}
}

// MustCustomer returns the customer resolved by CustomerRequired.
func MustCustomer(c *gin.Context) *models.Customer {
	return c.MustGet(CtxCustomer).(*models.Customer)
}

// MustAdmin returns the admin resolved by AdminRequired.
func MustAdmin(c *gin.Context) *models.Admin {
	return c.MustGet(CtxAdmin).(*models.Admin)
}

func resetSecret() []byte {
	secret := os.Getenv("RESET_TOKEN_SECRET")
	if secret == "" {
		secret = os.Getenv("SESSION_SECRET")
	}
	if secret == "" {
		secret = "glamora-dev-reset-secret"
	}
	return []byte(secret)
}

// GenerateResetToken issues a short-lived signed token binding a password
// reset to the account found by the lookup step.
func GenerateResetToken(userType string, userID uint) (string, error) {
	if userType != "customer" && userType != "admin" {
		return "", errors.New("unknown user type")
	}
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"sub": float64(userID),
		"typ": userType,
		"exp": time.Now().Add(15 * time.Minute).Unix(),
		"iat": time.Now().Unix(),
	})
	return token.SignedString(resetSecret())
}

// ParseResetToken validates a reset token and returns the bound account.
func ParseResetToken(tokenString string) (string, uint, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, errors.New("unexpected signing method")
		}
		return resetSecret(), nil
	})
	if err != nil || !token.Valid {
		return "", 0, errors.New("invalid or expired reset token")
	}

	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok {
		return "", 0, errors.New("invalid token claims")
	}
	userType, _ := claims["typ"].(string)
	sub, _ := claims["sub"].(float64)
	if (userType != "customer" && userType != "admin") || sub <= 0 {
		return "", 0, errors.New("invalid token claims")
	}
	return userType, uint(sub), nil
}
