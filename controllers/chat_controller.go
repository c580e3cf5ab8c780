package controllers

import (
	"Eatdentify/services"
	"Eatdentify/utils"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
)

// ChatController struct
type ChatController struct {
	ChatService *services.ChatService
}

// NewChatController initializes ChatController with the service layer
func NewChatController() *ChatController {
	return &ChatController{
		ChatService: services.NewChatService(),
	}
}

// ChatRequest represents the request payload
type ChatRequest struct {
	Prompt   string `json:"prompt" binding:"required"`
	ImageURL string `json:"image_url"`
}

// Chat streams the assistant reply over SSE.
func (ctl *ChatController) Chat(c *gin.Context) {
	var req ChatRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	formattedPrompt := strings.TrimSpace(req.Prompt)

	// Set SSE headers
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Flush()

	replyChan := make(chan string)
	doneChan := make(chan bool)

	go ctl.ChatService.StreamReply(c, replyChan, doneChan, userId.(string), formattedPrompt, req.ImageURL)

	for {
		select {
		case fragment, ok := <-replyChan:
			if !ok {
				replyChan = nil
			} else {
				c.SSEvent("reply", fragment)
				c.Writer.Flush()
			}

		case <-doneChan:
			c.SSEvent("done_reply", gin.H{
				"statusCode": http.StatusOK,
				"message":    "Chat reply completed",
			})
			c.Writer.Flush()
			return
		}
	}
}
