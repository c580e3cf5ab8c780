package controllers

import (
	"Eatdentify/services"
	"Eatdentify/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

type UserController struct {
	UserService *services.UserService
}

func NewUserController() *UserController {
	return &UserController{
		UserService: services.NewUserService(),
	}
}

// UpdateProfileRequest represents the request payload
type UpdateProfileRequest struct {
	Remarks string `json:"remarks"`
}

func (ctl *UserController) GetUserProfile(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	profile, err := ctl.UserService.GetUserProfile(c, userId.(string))
	if err != nil {
		if customErr, ok := err.(*utils.CustomError); ok {
			utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to get user profile")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "success fetch User profile", profile)
}

func (ctl *UserController) UpdateProfile(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	var req UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctl.UserService.UpdateRemarks(c, userId.(string), req.Remarks); err != nil {
		if customErr, ok := err.(*utils.CustomError); ok {
			utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to update profile")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Profile updated successfully", gin.H{
		"remarks": req.Remarks,
	})
}
