package main

import (
	"context"
	"log"
	"time"

	"tipadmin-app/config"
	"tipadmin-app/database"
	routes "tipadmin-app/internal/app/http"
	"tipadmin-app/internal/cache"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

func main() {
	// gin.SetMode(gin.ReleaseMode) uncomment only in production
	config.LoadEnv()
	database.InitDB()

	if config.REDIS_ADDR != "" {
		store, err := cache.Init(context.Background(), config.REDIS_ADDR, config.REDIS_PASSWORD)
		if err != nil {
			log.Println("⚠️ Redis unavailable, serving without shared cache:", err)
		} else {
			cache.Shared = store
		}
	}

	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{config.CORS_ORIGIN},
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))

	routes.RegisterRoutes(r)

	r.Run(":" + config.PORT)
}
