package main

import (
	"log"

	"contesthub/config"
	"contesthub/database"
	_ "contesthub/docs"
	"contesthub/middleware"
	v1 "contesthub/routes/v1"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

// @title ContestHub API
// @version 1.0
// @description REST API for the ContestHub competitions platform
// @BasePath /api/v1
// @securityDefinitions.apikey Bearer
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the JWT token
func main() {
	config.LoadConfig()

	database.InitDB()
	database.InitRedis()

	// Background collector for runtime and system gauges
	middleware.UpdateSystemMetrics()

	r := gin.Default()

	v1.Register(r)
	r.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	log.Printf("Starting server on port %s", config.ServerPort)
	if err := r.Run(":" + config.ServerPort); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
