package main

import (
	"log"

	"github.com/gin-gonic/gin"
	"github.com/yeonwoo-kim-dev/pixelforge/config"
	"github.com/yeonwoo-kim-dev/pixelforge/controllers"
	"github.com/yeonwoo-kim-dev/pixelforge/database"
	"github.com/yeonwoo-kim-dev/pixelforge/routes"
	"github.com/yeonwoo-kim-dev/pixelforge/services"
)

func main() {
	env, err := config.LoadEnv()
	if err != nil {
		log.Fatal("Error loading config:", err)
	}

	pgClient, err := database.NewPostgresClient(env.DBHost, env.DBUser, env.DBPassword, env.DBName, env.DBPort)
	if err != nil {
		log.Fatal("Error connecting to database:", err)
	}

	if err := database.Migrate(pgClient); err != nil {
		log.Fatal("Error migrating database:", err)
	}

	redisClient, err := database.GetRedisClient(env.RedisAddr, env.RedisPass, env.RedisDB)
	if err != nil {
		log.Fatal("Error connecting to redis:", err)
	}

	tokenService := services.NewTokenService(env.JWTSecret, services.AccessTokenTTL, services.RefreshTokenTTL)
	authService := services.NewAuthService(pgClient, redisClient, tokenService)

	var sdProvider services.ImageProvider
	if env.StableDiffusionAPIURL != "" {
		sdProvider = services.NewStableDiffusionProvider(env.StableDiffusionAPIURL, env.StableDiffusionAPIKey)
	}
	imageService := services.NewImageService(pgClient, services.NewOpenAIProvider(env.OpenAIAPIKey), sdProvider, env.UploadDir)

	cookieHelper := controllers.NewCookieHelper(env.IsProduction())
	authController := controllers.NewAuthController(authService, tokenService, cookieHelper)
	imageController := controllers.NewImageController(imageService)
	uploadController := controllers.NewUploadController(env.UploadDir)

	r := gin.Default()
	routes.SetupRoutes(r, authController, imageController, uploadController)

	if err := r.Run(":" + env.Port); err != nil {
		log.Fatal("Failed to start server:", err)
	}
}
