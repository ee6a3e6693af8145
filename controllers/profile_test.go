package controllers_test

import (
	"net/http"
	"testing"

	"glamora-backend/config"
	"glamora-backend/models"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProfileReturnsIdentityAndAddresses(t *testing.T) {
	srv := newTestServer(t)
	seedStaff(t)
	customer := srv.signupAndLogin("5551234567")
	require.NoError(t, config.DB.Model(customer).Update("address", "9 Elm Rd, Dover, DE 19901").Error)

	w := srv.get("/profile")
	require.Equal(t, http.StatusOK, w.Code)
	out := decode(t, w)

	identity := out["customer"].(map[string]interface{})
	assert.Equal(t, "5551234567", identity["mobile"])
	assert.Equal(t, "Ava Reed", out["profile_display_name"])

	addresses := out["saved_addresses"].([]interface{})
	require.Len(t, addresses, 1)
	assert.Equal(t, "9 Elm Rd, Dover, DE 19901", addresses[0].(map[string]interface{})["full_address"])
}

func TestDeleteAddressClearsSavedAddress(t *testing.T) {
	srv := newTestServer(t)
	customer := srv.signupAndLogin("5551234567")
	require.NoError(t, config.DB.Model(customer).Update("address", "9 Elm Rd, Dover, DE 19901").Error)

	w := srv.do(http.MethodDelete, "/profile/addresses", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var stored models.Customer
	require.NoError(t, config.DB.First(&stored, customer.ID).Error)
	assert.Empty(t, stored.Address)
}

func TestProfileSettingsRejectsTakenMobile(t *testing.T) {
	srv := newTestServer(t)
	srv.session().signupAndLogin("5557654321")
	srv.signupAndLogin("5551234567")

	w := srv.post("/profile/settings", gin.H{
		"first_name": "Ava",
		"last_name":  "Reed",
		"mobile_no":  "5557654321",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	assert.Equal(t, "Mobile number already exists. Please use another number.", decode(t, w)["error"])
}

func TestProfileSettingsUpdatesNameAndMobile(t *testing.T) {
	srv := newTestServer(t)
	customer := srv.signupAndLogin("5551234567")

	w := srv.post("/profile/settings", gin.H{
		"first_name": "Avery",
		"last_name":  "Reed",
		"mobile_no":  "(555) 888-7777",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.Customer
	require.NoError(t, config.DB.First(&stored, customer.ID).Error)
	assert.Equal(t, "Avery", stored.FirstName)
	assert.Equal(t, "5558887777", stored.Mobile)
}

func TestChangePasswordVerifiesOldPassword(t *testing.T) {
	srv := newTestServer(t)
	customer := srv.signupAndLogin("5551234567")

	w := srv.post("/profile/change-password", gin.H{
		"old_password":     "wrong",
		"new_password":     "brandnew1",
		"confirm_password": "brandnew1",
	})
	assert.Equal(t, http.StatusUnauthorized, w.Code)

	w = srv.post("/profile/change-password", gin.H{
		"old_password":     "secret123",
		"new_password":     "short",
		"confirm_password": "short",
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = srv.post("/profile/change-password", gin.H{
		"old_password":     "secret123",
		"new_password":     "brandnew1",
		"confirm_password": "brandnew1",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var stored models.Customer
	require.NoError(t, config.DB.First(&stored, customer.ID).Error)
	assert.Equal(t, "brandnew1", stored.Password)
}
