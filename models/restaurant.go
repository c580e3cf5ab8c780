package models

// CustomField is one user-requested analysis column on a restaurant.
type CustomField struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Restaurant accumulates everything the pipeline learns about one place.
// Identity fields are set at creation and never change; the rest is filled
// in by the enrichment stages and the column extender.
type Restaurant struct {
	PlaceID         string        `json:"place_id"`
	Name            string        `json:"name"`
	Rating          float64       `json:"rating"`
	Address         string        `json:"address"`
	Reviews         string        `json:"reviews"`
	Photo           string        `json:"photo"`
	Reason          string        `json:"reason"`
	Meal            string        `json:"meal"`
	MealCitation    string        `json:"meal_citation"`
	MealDescription string        `json:"meal_description"`
	CustomFields    []CustomField `json:"custom_fields"`
}

// NewRestaurant builds the shell record from a text-search result.
func NewRestaurant(placeID, name string, rating float64, address string) *Restaurant {
	return &Restaurant{
		PlaceID: placeID,
		Name:    name,
		Rating:  rating,
		Address: address,
	}
}

// AddReviews appends raw review text.
func (r *Restaurant) AddReviews(reviews string) {
	r.Reviews += reviews
}

// SetPhoto records the primary photo URL.
func (r *Restaurant) SetPhoto(photo string) {
	r.Photo = photo
}

// AddReason appends recommendation reasoning.
func (r *Restaurant) AddReason(reason string) {
	r.Reason += reason
}

// AddMeal records the meal triple. The three parts come from one provider
// response, so they are always set together.
func (r *Restaurant) AddMeal(meal, citation, description string) {
	r.Meal += meal
	r.MealCitation += citation
	r.MealDescription += description
}

// SetCustomField stores a column answer, overwriting an existing column with
// the same name and otherwise preserving insertion order.
func (r *Restaurant) SetCustomField(name, value string) {
	for i := range r.CustomFields {
		if r.CustomFields[i].Name == name {
			r.CustomFields[i].Value = value
			return
		}
	}
	r.CustomFields = append(r.CustomFields, CustomField{Name: name, Value: value})
}

// CustomField returns the answer stored under name, or "" when absent.
func (r *Restaurant) CustomField(name string) string {
	for i := range r.CustomFields {
		if r.CustomFields[i].Name == name {
			return r.CustomFields[i].Value
		}
	}
	return ""
}

// SearchResult is the ordered collection produced by one completed search.
type SearchResult struct {
	Restaurants []*Restaurant `json:"restaurants"`
}

// Len reports how many restaurants the search produced.
func (s *SearchResult) Len() int {
	return len(s.Restaurants)
}
