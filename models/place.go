package models

// Wire types for the Places provider.

type PlaceSearchResponse struct {
	Status  string        `json:"status"`
	Results []PlaceResult `json:"results"`
}

// PlaceResult is one candidate from a text search. Rating and OpeningHours
// are pointers so that a missing field can be told apart from a zero value.
type PlaceResult struct {
	PlaceID          string        `json:"place_id"`
	Name             string        `json:"name"`
	FormattedAddress string        `json:"formatted_address"`
	Rating           *float64      `json:"rating,omitempty"`
	OpeningHours     *OpeningHours `json:"opening_hours,omitempty"`
}

type OpeningHours struct {
	OpenNow bool `json:"open_now"`
}

type PlaceDetailsResponse struct {
	Status string       `json:"status"`
	Result PlaceDetails `json:"result"`
}

type PlaceDetails struct {
	Photos  []PlacePhoto  `json:"photos"`
	Reviews []PlaceReview `json:"reviews"`
}

type PlacePhoto struct {
	PhotoReference string `json:"photo_reference"`
}

type PlaceReview struct {
	AuthorName              string  `json:"author_name"`
	Rating                  float64 `json:"rating"`
	RelativeTimeDescription string  `json:"relative_time_description"`
	Text                    string  `json:"text"`
}

type GeocodeResponse struct {
	Status  string          `json:"status"`
	Results []GeocodeResult `json:"results"`
}

type GeocodeResult struct {
	AddressComponents []AddressComponent `json:"address_components"`
}

type AddressComponent struct {
	LongName string   `json:"long_name"`
	Types    []string `json:"types"`
}
