package controllers

import (
	"Eatdentify/services"
	"Eatdentify/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type SnackController struct {
	SnackService *services.SnackService
}

func NewSnackController() *SnackController {
	return &SnackController{
		SnackService: services.NewSnackService(),
	}
}

// GetSnackByBarcode looks a packaged product up for a dietary check.
func (ctl *SnackController) GetSnackByBarcode(c *gin.Context) {
	barcode := c.Param("barcode")
	if barcode == "" {
		utils.ErrorResponse(c, http.StatusBadRequest, "Barcode is required")
		return
	}

	detail, err := ctl.SnackService.GetProductByBarcode(barcode)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to fetch product")
		return
	}
	if detail == nil {
		utils.ErrorResponse(c, http.StatusNotFound, "Product not found")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Product fetched successfully", detail)
}
