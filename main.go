package main

import (
	"context"
	"time"

	"github.com/Kariqs/bites-api/controllers"
	"github.com/Kariqs/bites-api/initializers"
	"github.com/Kariqs/bites-api/routes"
	"github.com/Kariqs/bites-api/utils"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func newServer(c *controllers.Controller, allowOrigins []string) *gin.Engine {
	server := gin.New()
	server.Use(gin.Logger(), gin.Recovery())
	server.Use(cors.New(cors.Config{
		AllowOrigins:     allowOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "DELETE"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Authorization"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: true,
		MaxAge:           12 * time.Hour,
	}))
	routes.Register(server, c)
	return server
}

func main() {
	envErr := initializers.LoadEnv()
	cfg, cfgErr := initializers.LoadConfig()
	initializers.InitLogger(cfg)
	defer zap.L().Sync()
	if cfgErr != nil {
		zap.S().Fatalw("invalid configuration", "error", cfgErr)
	}
	if envErr != nil {
		zap.S().Infow("no .env file loaded, using process environment", "error", envErr)
	}

	operator, err := controllers.NewOperator(cfg.AdminUsername, cfg.AdminPassword)
	if err != nil {
		zap.S().Fatalw("failed to hash operator password", "error", err)
	}

	c := controllers.New(initializers.NewStore(cfg), operator, []byte(cfg.JWTSecret))
	if cfg.S3Bucket != "" {
		uploader, err := utils.NewS3Uploader(context.Background(), cfg.S3Bucket)
		if err != nil {
			zap.S().Warnw("product image uploads disabled", "error", err)
		} else {
			c.Uploader = uploader
		}
	}

	if err := newServer(c, cfg.CorsOrigins).Run(); err != nil {
		zap.S().Fatalw("server stopped", "error", err)
	}
}
