package route

import (
	"Eatdentify/controllers"
	"Eatdentify/handlers"

	"github.com/gin-gonic/gin"
)

// RegisterRoutes initializes all routes
func RegisterRoutes(router *gin.Engine) {
	authController := controllers.NewAuthController()
	userController := controllers.NewUserController()
	searchController := controllers.NewSearchController()
	chatController := controllers.NewChatController()
	articleController := controllers.NewArticleController()
	snackController := controllers.NewSnackController()

	v1Routes := router.Group("/v1")
	{
		handlers.RegisterAuthRoutes(v1Routes, authController)
		handlers.RegisterUserRoutes(v1Routes, userController)
		handlers.RegisterSearchRoutes(v1Routes, searchController)
		handlers.RegisterChatRoutes(v1Routes, chatController)
		handlers.RegisterArticleRoutes(v1Routes, articleController)
		handlers.RegisterSnackRoutes(v1Routes, snackController)
	}
}
