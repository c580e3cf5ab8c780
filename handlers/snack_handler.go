package handlers

import (
	"Eatdentify/controllers"

	"github.com/gin-gonic/gin"
)

func RegisterSnackRoutes(router *gin.RouterGroup, snackController *controllers.SnackController) {
	snackGroup := router.Group("/snacks")
	{
		snackGroup.GET("/:barcode", snackController.GetSnackByBarcode)
	}
}
