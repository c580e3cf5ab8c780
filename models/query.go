package models

import (
	"fmt"
	"net/http"

	"Eatdentify/utils"
)

const maxRadiusMeters = 20000

// Budget levels accepted by the search input.
const (
	BudgetLow    = "$"
	BudgetMedium = "$$"
	BudgetHigh   = "$$$"
)

// Query is one immutable search request. It is created once per search
// action and only read afterwards.
type Query struct {
	MinRating  float64 `json:"min_rating"`
	MaxRating  float64 `json:"max_rating"`
	City       string  `json:"city"`
	Budget     string  `json:"budget"`
	Craving    string  `json:"craving"`
	Cuisine    string  `json:"cuisine"`
	TravelTime float64 `json:"travel_time"`
	Remarks    string  `json:"remarks"`
}

// Validate checks the rating range and the budget level.
func (q *Query) Validate() error {
	if q.MinRating < 0 || q.MaxRating > 5 || q.MinRating > q.MaxRating {
		return utils.NewCustomError(http.StatusBadRequest, "Invalid rating range")
	}
	switch q.Budget {
	case BudgetLow, BudgetMedium, BudgetHigh:
	default:
		return utils.NewCustomError(http.StatusBadRequest, "Invalid budget level")
	}
	if q.TravelTime < 0 {
		return utils.NewCustomError(http.StatusBadRequest, "Invalid travel time")
	}
	return nil
}

// Radius converts willingness to travel into a search radius in meters,
// capped at the provider maximum.
func (q *Query) Radius() float64 {
	radius := 500 * q.TravelTime
	if radius > maxRadiusMeters {
		return maxRadiusMeters
	}
	return radius
}

// Description renders the query the way the recommendation prompts expect it.
func (q *Query) Description() string {
	return fmt.Sprintf("fulfil this requirement %s, I am searching for %s cuisine, craving for %s",
		q.Remarks, q.Cuisine, q.Craving)
}
