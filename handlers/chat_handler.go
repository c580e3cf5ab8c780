package handlers

import (
	"Eatdentify/controllers"
	"Eatdentify/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterChatRoutes(router *gin.RouterGroup, chatController *controllers.ChatController) {
	chatGroup := router.Group("/chat")
	{
		chatGroup.POST("/", middleware.OptionalAuthMiddleware(), chatController.Chat)
	}
}
