package main

import (
	"log"
	"net/http"
	"os"

	"hillbook/config"
	"hillbook/jobs"
	"hillbook/routes"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
)

func main() {

	if err := godotenv.Load(); err != nil {
		log.Printf("Warning: không load được file .env, sử dụng biến môi trường có sẵn: %v", err)
	}

	router, m, c, err := config.InitApp()
	if err != nil {
		log.Fatalf("Failed to initialize app: %v", err)
	}

	if err := config.MigrateDB(); err != nil {
		log.Fatalf("Failed to migrate tables: %v", err)
	}

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
