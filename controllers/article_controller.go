package controllers

import (
	"Eatdentify/services"
	"Eatdentify/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type ArticleController struct {
	ArticleService *services.ArticleService
}

func NewArticleController() *ArticleController {
	return &ArticleController{
		ArticleService: services.NewArticleService(),
	}
}

// GetArticles scrapes the food-guide feed.
func (ctl *ArticleController) GetArticles(c *gin.Context) {
	articles := ctl.ArticleService.FetchArticles(c)
	utils.SuccessResponse(c, http.StatusOK, "Articles fetched successfully", articles)
}

// GetRandomFact returns one food fact for the feed header.
func (ctl *ArticleController) GetRandomFact(c *gin.Context) {
	utils.SuccessResponse(c, http.StatusOK, "Fact fetched successfully", gin.H{
		"fact": ctl.ArticleService.RandomFact(),
	})
}
