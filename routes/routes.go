package routes

import (
	"os"
	"path/filepath"

	"glamora-backend/config"
	"glamora-backend/controllers"
	"glamora-backend/metrics"
	"glamora-backend/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func SetupRouter() *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins: []string{
			"http://localhost:3000",
		},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Authorization", "Content-Type"},
		ExposeHeaders:    []string{"Content-Length", "Content-Disposition"},
		AllowCredentials: true,
	}))

	r.Use(sessions.Sessions("glamora_session", config.SessionStore()))
	r.Use(config.PerformanceLogger())
	r.Use(func(c *gin.Context) {
		c.Next()
		metrics.IncHTTP(c.Request.Method, c.FullPath())
	})

	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(200, gin.H{"status": "ok"})
	})
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))

	assetsDir := os.Getenv("ASSETS_DIR")
	if assetsDir == "" {
		assetsDir = "./assets"
	}
	r.Static("/service-images", filepath.Join(assetsDir, "service images"))

	auth := r.Group("/auth")
	auth.Use(utils.RateLimit("20-M"))
	{
		auth.POST("/signup", controllers.Signup)
		auth.POST("/login", controllers.Login)
		auth.POST("/logout", controllers.Logout)
		auth.POST("/forgot-password", controllers.ForgotPasswordLookup)
		auth.POST("/reset-password", controllers.ForgotPasswordReset)
	}

	r.GET("/home", controllers.Home)
	r.GET("/services", controllers.Services)
	r.GET("/search", controllers.Search)

	api := r.Group("/")
	api.Use(utils.CustomerRequired())
	{
		api.GET("/booking", controllers.GetBooking)
		api.POST("/booking", controllers.CreateBooking)
		api.GET("/my-bookings", controllers.MyBookings)
		api.DELETE("/my-bookings/:id", controllers.DeleteBooking)
		api.GET("/edit-booking/:id", controllers.EditBooking)
		api.POST("/edit-booking/:id", controllers.UpdateBooking)

		api.GET("/payment", controllers.GetPayment)
		api.POST("/payment", controllers.CreatePayment)
		api.GET("/address", controllers.GetAddress)
		api.POST("/address", controllers.SubmitAddress)

		api.GET("/booking-confirmation/:receipt_id", controllers.BookingConfirmation)
		api.GET("/my-receipts", controllers.MyReceipts)
		api.DELETE("/my-receipts/:receipt_id", controllers.DeleteReceipt)
		api.GET("/receipt/:receipt_id/pdf", controllers.ViewReceiptPDF)

		api.GET("/profile", controllers.Profile)
		api.GET("/profile/addresses", controllers.SavedAddresses)
		api.DELETE("/profile/addresses", controllers.DeleteAddress)
		api.POST("/profile/settings", controllers.ProfileSettings)
		api.POST("/profile/change-password", controllers.ChangePassword)
	}

	admin := r.Group("/admin")
	admin.Use(utils.AdminRequired())
	{
		admin.GET("/home", controllers.AdminHome)

		admin.GET("/services", controllers.AdminServices)
		admin.POST("/services", controllers.AdminAddService)
		admin.GET("/services/:id", controllers.AdminGetService)
		admin.PUT("/services/:id", controllers.AdminEditService)
		admin.DELETE("/services/:id", controllers.AdminDeleteService)

		admin.GET("/users", controllers.AdminUsers)
		admin.POST("/users", controllers.AdminAddUser)
		admin.GET("/users/:user_type/:id", controllers.AdminGetUser)
		admin.PUT("/users/:user_type/:id", controllers.AdminEditUser)
		admin.DELETE("/users/:user_type/:id", controllers.AdminDeleteUser)

		admin.GET("/appointments", controllers.AdminAppointments)
		admin.GET("/sales", controllers.AdminSales)
	}

	return r
}
