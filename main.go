package main

import (
	"flag"
	"log"
	"net/http"
	"os"

	"hotelbooking/config"
	"hotelbooking/jobs"
	"hotelbooking/routes"
	"hotelbooking/seed"
	"hotelbooking/services"
	"hotelbooking/services/logger"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {
	seedOnly := flag.Bool("seed", false, "nạp dữ liệu mẫu rồi thoát")
	flag.Parse()

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if *seedOnly {
		if err := seed.Run(config.DB); err != nil {
			log.Fatalf("Failed to seed database: %v", err)
		}
		return
	}

	bookingService := services.NewBookingService(services.BookingServiceOptions{
		DB:     config.DB,
		Logger: logger.NewDefaultLogger(logger.InfoLevel),
	})
	jobs.SetCheckInSummarizer(bookingService)

	if err := jobs.InitCronJobs(c, m); err != nil {
		log.Fatalf("Failed to initialize cron jobs: %v", err)
	}

	config.InitWebSocket(router, m)

	routes.SetupRoutes(router, config.DB, config.RedisClient, m)

	router.GET("/ping", func(c *gin.Context) {
		c.String(http.StatusOK, "pong")
	})

	port := os.Getenv("PORT")
	if port == "" {
		port = "8083"
	}

	log.Println("Server starting on port " + port + "...")
	if err := router.Run(":" + port); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
