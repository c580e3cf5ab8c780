package controllers

import (
	"Eatdentify/services"
	"Eatdentify/utils"
	"net/http"

	"github.com/gin-gonic/gin"
)

// AuthController struct
type AuthController struct {
	AuthService *services.AuthService
}

// NewAuthController initializes AuthController
func NewAuthController() *AuthController {
	return &AuthController{
		AuthService: services.NewAuthService(),
	}
}

// RegisterRequest represents the request payload
type RegisterRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
	Remarks  string `json:"remarks"`
}

// LoginRequest represents the request payload
type LoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (ctl *AuthController) RegisterUser(c *gin.Context) {
	var req RegisterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	if err := ctl.AuthService.Register(c, req.Username, req.Password, req.Remarks); err != nil {
		if customErr, ok := err.(*utils.CustomError); ok {
			utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to register user")
		return
	}

	utils.SuccessResponse(c, http.StatusCreated, "User registered successfully", gin.H{
		"username": req.Username,
	})
}

func (ctl *AuthController) LoginUser(c *gin.Context) {
	var req LoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	token, err := ctl.AuthService.Login(c, req.Username, req.Password)
	if err != nil {
		if customErr, ok := err.(*utils.CustomError); ok {
			utils.ErrorResponse(c, customErr.StatusCode, customErr.Message)
			return
		}
		utils.ErrorResponse(c, http.StatusInternalServerError, "Failed to login")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Logged in successfully", gin.H{
		"token": token,
	})
}
