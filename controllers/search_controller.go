package controllers

import (
	"Eatdentify/models"
	"Eatdentify/services"
	"Eatdentify/utils"
	"fmt"
	"log"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
)

// SearchController owns the restaurant-search pipeline endpoints.
type SearchController struct {
	SearchService  *services.SearchService
	ColumnService  *services.ColumnService
	PlacesService  *services.PlacesService
	SessionService *services.SessionService
	UserService    *services.UserService
}

// NewSearchController initializes SearchController with the service layer
func NewSearchController() *SearchController {
	return &SearchController{
		SearchService:  services.NewSearchService(),
		ColumnService:  services.NewColumnService(),
		PlacesService:  services.NewPlacesService(),
		SessionService: services.GetSessionService(),
		UserService:    services.NewUserService(),
	}
}

// SearchRequest represents the request payload
type SearchRequest struct {
	MinRating  float64 `json:"min_rating"`
	MaxRating  float64 `json:"max_rating" binding:"required"`
	City       string  `json:"city"`
	Budget     string  `json:"budget" binding:"required"`
	Craving    string  `json:"craving"`
	Cuisine    string  `json:"cuisine"`
	TravelTime float64 `json:"travel_time" binding:"required"`
	Remarks    string  `json:"remarks"`
	ForMyself  bool    `json:"for_myself"`
}

type searchOutcome struct {
	result *models.SearchResult
	err    error
}

// Search runs the full pipeline and streams progress over SSE. A failed run
// never clobbers the session's previous results.
func (ctl *SearchController) Search(c *gin.Context) {
	var req SearchRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	query := &models.Query{
		MinRating:  req.MinRating,
		MaxRating:  req.MaxRating,
		City:       req.City,
		Budget:     req.Budget,
		Craving:    req.Craving,
		Cuisine:    req.Cuisine,
		TravelTime: req.TravelTime,
		Remarks:    strings.TrimSpace(req.Remarks),
	}

	// "Search for myself" appends the remarks stored on the profile.
	if req.ForMyself && !strings.HasPrefix(userId.(string), "guest:") {
		if profile, err := ctl.UserService.GetUserProfile(c, userId.(string)); err == nil && profile.Remarks != "" {
			query.Remarks = strings.TrimSpace(query.Remarks + " " + profile.Remarks)
		}
	}

	if err := query.Validate(); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, err.Error())
		return
	}

	session := ctl.SessionService.Get(userId.(string))
	if err := session.Begin(); err != nil {
		utils.ErrorResponse(c, http.StatusConflict, "A search is already running, please wait for it to finish")
		return
	}
	defer session.End()

	// Set SSE headers
	c.Writer.Header().Set("Content-Type", "text/event-stream")
	c.Writer.Header().Set("Cache-Control", "no-cache")
	c.Writer.Header().Set("Connection", "keep-alive")
	c.Writer.Flush()

	progressChan := make(chan services.Progress)
	outcomeChan := make(chan searchOutcome, 1)

	go func() {
		defer close(progressChan)
		result, err := ctl.SearchService.Run(c, query, func(p services.Progress) {
			progressChan <- p
		})
		outcomeChan <- searchOutcome{result: result, err: err}
	}()

	for {
		select {
		case progress, ok := <-progressChan:
			if !ok {
				progressChan = nil
			} else {
				c.SSEvent("progress", progress)
				c.Writer.Flush()
			}

		case outcome := <-outcomeChan:
			if outcome.err != nil {
				log.Println("Search pipeline failed:", outcome.err)
				c.SSEvent("error", gin.H{
					"statusCode": http.StatusServiceUnavailable,
					"message":    "Server busy, please try again later (please wait approximately one minute before trying again)",
				})
			} else {
				session.Publish(query, outcome.result)
				c.SSEvent("done_search", gin.H{
					"statusCode": http.StatusOK,
					"message":    "Search complete",
					"data":       outcome.result,
				})
			}
			c.Writer.Flush()
			return
		}
	}
}

// GetResults returns the session's current results.
func (ctl *SearchController) GetResults(c *gin.Context) {
	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	_, results := ctl.SessionService.Get(userId.(string)).Current()
	if results == nil {
		utils.SuccessResponse(c, http.StatusOK, "No search results yet", &models.SearchResult{})
		return
	}
	utils.SuccessResponse(c, http.StatusOK, "Results fetched successfully", results)
}

// ColumnRequest represents the request payload
type ColumnRequest struct {
	Question   string `json:"question" binding:"required"`
	ColumnName string `json:"column_name" binding:"required"`
}

// AddColumn answers a custom question for every restaurant in the current
// results. Records already updated keep their column when a later one fails.
func (ctl *SearchController) AddColumn(c *gin.Context) {
	var req ColumnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	userId, exists := c.Get("userId")
	if !exists {
		utils.ErrorResponse(c, http.StatusUnauthorized, "UserId is required")
		return
	}

	query, results := ctl.SessionService.Get(userId.(string)).Current()
	if results == nil || results.Len() == 0 {
		utils.ErrorResponse(c, http.StatusBadRequest, "No search results to extend")
		return
	}

	applied, err := ctl.ColumnService.ApplyAll(c, query, results, req.Question, req.ColumnName)
	if err != nil {
		log.Println("Column extension failed:", err)
		utils.ErrorResponse(c, http.StatusBadGateway,
			fmt.Sprintf("Column applied to %d of %d restaurants, please retry for the rest", applied, results.Len()))
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Column added successfully", results)
}

// GetLocation reverse-geocodes coordinates so the client can prefill the
// city field.
func (ctl *SearchController) GetLocation(c *gin.Context) {
	latitude, err := strconv.ParseFloat(c.Query("latitude"), 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid latitude")
		return
	}

	longitude, err := strconv.ParseFloat(c.Query("longitude"), 64)
	if err != nil {
		utils.ErrorResponse(c, http.StatusBadRequest, "Invalid longitude")
		return
	}

	city, country, err := ctl.PlacesService.ReverseGeocode(c, latitude, longitude)
	if err != nil {
		utils.ErrorResponse(c, http.StatusInternalServerError, "Error fetching location")
		return
	}

	utils.SuccessResponse(c, http.StatusOK, "Location fetched successfully", gin.H{
		"city":    city,
		"country": country,
	})
}
