package main

import (
	"fmt"
	"os"

	"glamora-backend/config"
	"glamora-backend/metrics"
	"glamora-backend/models"
	"glamora-backend/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/rs/zerolog/log"
)

func init() {
	if err := godotenv.Load(); err != nil {
		log.Info().Msg("No .env file found")
	}
	config.InitLogger()
	config.ConnectDB()

	config.DB.AutoMigrate(
		&models.Customer{},
		&models.Admin{},
		&models.Employee{},
		&models.Service{},
		&models.Appointment{},
		&models.Payment{},
		&models.Sales{},
		&models.Receipt{},
	)
}

func main() {
	metrics.Register()

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	r := routes.SetupRouter()
	printRoutes(r)
	if err := r.Run(":" + port); err != nil {
		log.Fatal().Err(err).Msg("server exited")
	}
}

func printRoutes(r *gin.Engine) {
	for _, route := range r.Routes() {
		fmt.Printf("%-6s %s\n", route.Method, route.Path)
	}
}
