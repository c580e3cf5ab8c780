package handlers

import (
	"Eatdentify/controllers"
	"Eatdentify/middleware"

	"github.com/gin-gonic/gin"
)

func RegisterSearchRoutes(router *gin.RouterGroup, searchController *controllers.SearchController) {
	searchGroup := router.Group("/search")
	searchGroup.Use(middleware.OptionalAuthMiddleware())
	{
		searchGroup.POST("/", searchController.Search)
		searchGroup.GET("/results", searchController.GetResults)
		searchGroup.POST("/columns", searchController.AddColumn)
		searchGroup.GET("/location", searchController.GetLocation)
	}
}
