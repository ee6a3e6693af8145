package controllers_test

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"glamora-backend/config"
	"glamora-backend/models"
	"glamora-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// client drives the router through httptest while carrying the session
// cookie between requests, like a browser would.
type client struct {
	t       *testing.T
	router  *gin.Engine
	cookies []*http.Cookie
}

func newTestServer(t *testing.T) *client {
	t.Helper()

	gin.SetMode(gin.TestMode)
	config.InitLogger()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	sqlDB, err := db.DB()
	require.NoError(t, err)
	// A pooled connection to :memory: would see an empty database.
	sqlDB.SetMaxOpenConns(1)

	require.NoError(t, db.AutoMigrate(
		&models.Customer{},
		&models.Admin{},
		&models.Employee{},
		&models.Service{},
		&models.Appointment{},
		&models.Payment{},
		&models.Sales{},
		&models.Receipt{},
	))
	config.DB = db

	return &client{t: t, router: routes.SetupRouter()}
}

// session returns a second browser against the same server, with its own
// cookie jar.
func (cl *client) session() *client {
	return &client{t: cl.t, router: cl.router}
}

func (cl *client) do(method, path string, body interface{}) *httptest.ResponseRecorder {
	cl.t.Helper()

	var reader *bytes.Reader
	if body != nil {
		buf, err := json.Marshal(body)
		require.NoError(cl.t, err)
		reader = bytes.NewReader(buf)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	for _, cookie := range cl.cookies {
		req.AddCookie(cookie)
	}

	w := httptest.NewRecorder()
	cl.router.ServeHTTP(w, req)

	if set := w.Result().Cookies(); len(set) > 0 {
		cl.cookies = set
	}
	return w
}

func (cl *client) get(path string) *httptest.ResponseRecorder {
	return cl.do(http.MethodGet, path, nil)
}

func (cl *client) post(path string, body interface{}) *httptest.ResponseRecorder {
	return cl.do(http.MethodPost, path, body)
}

func decode(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var out map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out), w.Body.String())
	return out
}

// seedStaff creates the house employee and admin rows every sale is
// attributed to.
func seedStaff(t *testing.T) {
	t.Helper()
	require.NoError(t, config.DB.Create(&models.Employee{
		FirstName: "House", LastName: "Stylist", Phone: "5550000000",
	}).Error)
	require.NoError(t, config.DB.Create(&models.Admin{
		FirstName: "Olive", LastName: "Marsh", Mobile: "5559990000",
		Role: "manager", Password: "admin-pass",
	}).Error)
}

func seedService(t *testing.T, name, category, price string) models.Service {
	t.Helper()
	service := models.Service{
		Name:     name,
		Category: category,
		Price:    decimal.RequireFromString(price),
		IsActive: true,
	}
	require.NoError(t, config.DB.Create(&service).Error)
	return service
}

// signupAndLogin registers a fresh customer and logs the client in.
func (cl *client) signupAndLogin(mobile string) *models.Customer {
	cl.t.Helper()

	w := cl.post("/auth/signup", gin.H{
		"first_name":       "Ava",
		"last_name":        "Reed",
		"mobile":           mobile,
		"password":         "secret123",
		"confirm_password": "secret123",
	})
	require.Equal(cl.t, http.StatusCreated, w.Code, w.Body.String())

	w = cl.post("/auth/login", gin.H{"mobile": mobile, "password": "secret123"})
	require.Equal(cl.t, http.StatusOK, w.Code, w.Body.String())

	var customer models.Customer
	require.NoError(cl.t, config.DB.Where("mobile = ?", mobile).First(&customer).Error)
	return &customer
}

func (cl *client) loginAdmin(mobile, password string) {
	cl.t.Helper()
	w := cl.post("/auth/login", gin.H{"mobile": mobile, "password": password})
	require.Equal(cl.t, http.StatusOK, w.Code, w.Body.String())
}

func mustDay(value string) time.Time {
	d, err := time.Parse("2006-01-02", value)
	if err != nil {
		panic(err)
	}
	return d
}

func futureDate(days int) string {
	return time.Now().AddDate(0, 0, days).Format("2006-01-02")
}
