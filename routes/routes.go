package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/yeonwoo-kim-dev/pixelforge/controllers"
)

func SetupRoutes(router *gin.Engine, authController *controllers.AuthController, imageController *controllers.ImageController, uploadController *controllers.UploadController) {
	api := router.Group("/api")

	auth := api.Group("/auth")
	{
		auth.POST("/register", authController.Register)
		auth.POST("/login", authController.Login)
		auth.POST("/refresh", authController.Refresh)
		auth.POST("/logout", authController.Logout)
		auth.GET("/me", authController.AuthMiddleware(), authController.CurrentUser)
	}

	api.POST("/generate-image", authController.AuthMiddleware(), imageController.Generate)

	images := api.Group("/images")
	{
		images.GET("", imageController.ListImages)
		images.GET("/user", imageController.UserImages)
		images.GET("/:id", imageController.ImageByID)
	}

	api.GET("/uploads/*filepath", uploadController.Serve)
}
