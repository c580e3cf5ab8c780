package handlers

import (
	"Eatdentify/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterArticleRoutes(router *gin.RouterGroup, articleController *controllers.ArticleController) {
	articleGroup := router.Group("/articles")
	{
		articleGroup.GET("/", articleController.GetArticles)
		articleGroup.GET("/fact", articleController.GetRandomFact)
	}
}
