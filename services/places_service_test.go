package services

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestPlacesService(handler http.Handler) (*PlacesService, *httptest.Server) {
	server := httptest.NewServer(handler)
	svc := &PlacesService{
		APIKey:       "test-key",
		BaseURL:      server.URL,
		HTTPClient:   &http.Client{Timeout: 5 * time.Second},
		geocodeCache: make(map[string]locationInfo),
	}
	return svc, server
}

func TestTextSearchFilters(t *testing.T) {
	body := `{
		"status": "OK",
		"results": [
			{"place_id": "keep", "name": "Keeper", "formatted_address": "1 St", "rating": 4.2, "opening_hours": {"open_now": true}},
			{"place_id": "no-rating", "name": "Unrated", "formatted_address": "2 St", "opening_hours": {"open_now": true}},
			{"place_id": "no-hours", "name": "No Hours", "formatted_address": "3 St", "rating": 4.2},
			{"place_id": "too-low", "name": "Low", "formatted_address": "4 St", "rating": 2.1, "opening_hours": {"open_now": true}},
			{"place_id": "too-high", "name": "High", "formatted_address": "5 St", "rating": 4.9, "opening_hours": {"open_now": true}},
			{"place_id": "closed", "name": "Closed", "formatted_address": "6 St", "rating": 4.2, "opening_hours": {"open_now": false}}
		]
	}`
	svc, server := newTestPlacesService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("key") != "test-key" {
			t.Error("request is missing the API key")
		}
		w.Write([]byte(body))
	}))
	defer server.Close()

	results, err := svc.TextSearch(context.Background(), "thai noodles melbourne", 15000, 3, 4.5)
	if err != nil {
		t.Fatalf("TextSearch failed: %v", err)
	}
	if len(results) != 1 || results[0].PlaceID != "keep" {
		t.Errorf("filtering kept %+v, want only place \"keep\"", results)
	}
}

func TestTextSearchZeroResults(t *testing.T) {
	svc, server := newTestPlacesService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "ZERO_RESULTS", "results": []}`))
	}))
	defer server.Close()

	results, err := svc.TextSearch(context.Background(), "anything", 15000, 3, 5)
	if err != nil {
		t.Fatalf("ZERO_RESULTS should not be an error, got %v", err)
	}
	if results != nil {
		t.Errorf("expected no candidates, got %+v", results)
	}
}

func TestTextSearchProviderDown(t *testing.T) {
	svc, server := newTestPlacesService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "backend unavailable", http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := svc.TextSearch(context.Background(), "anything", 15000, 3, 5)
	if !errors.Is(err, ErrProviderUnavailable) {
		t.Errorf("expected a provider error, got %v", err)
	}
}

func TestPlaceDetails(t *testing.T) {
	body := `{
		"status": "OK",
		"result": {
			"photos": [{"photo_reference": "ref-1"}, {"photo_reference": "ref-2"}],
			"reviews": [
				{"author_name": "Alex", "rating": 5, "relative_time_description": "a week ago", "text": "Great pad thai"},
				{"author_name": "Sam", "rating": 4, "relative_time_description": "a month ago", "text": "Good value"}
			]
		}
	}`
	svc, server := newTestPlacesService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := r.URL.Query().Get("place_id"); got != "place-1" {
			t.Errorf("place_id = %q", got)
		}
		w.Write([]byte(body))
	}))
	defer server.Close()

	reviews, photoURL, err := svc.PlaceDetails(context.Background(), "place-1")
	if err != nil {
		t.Fatalf("PlaceDetails failed: %v", err)
	}
	if !strings.Contains(reviews, "Alex (a week ago, rated 5.0): Great pad thai") {
		t.Errorf("reviews missing the first entry: %q", reviews)
	}
	if !strings.Contains(reviews, "Sam") {
		t.Errorf("reviews missing the second entry: %q", reviews)
	}
	if !strings.Contains(photoURL, "photo_reference=ref-1") {
		t.Errorf("photo URL should reference the first photo, got %q", photoURL)
	}
}

func TestPlaceDetailsNoPhotos(t *testing.T) {
	svc, server := newTestPlacesService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "OK", "result": {"reviews": [{"author_name": "Alex", "rating": 5, "relative_time_description": "today", "text": "fine"}]}}`))
	}))
	defer server.Close()

	reviews, photoURL, err := svc.PlaceDetails(context.Background(), "place-1")
	if err != nil {
		t.Fatalf("a place without photos should not be an error, got %v", err)
	}
	if reviews == "" {
		t.Error("reviews should still be returned")
	}
	if photoURL != "" {
		t.Errorf("photo URL should be empty, got %q", photoURL)
	}
}

func TestPlaceDetailsRefused(t *testing.T) {
	svc, server := newTestPlacesService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"status": "NOT_FOUND", "result": {}}`))
	}))
	defer server.Close()

	_, _, err := svc.PlaceDetails(context.Background(), "gone")
	if !errors.Is(err, ErrDetailsUnavailable) {
		t.Errorf("expected a details error, got %v", err)
	}
}

func TestReverseGeocodeCaches(t *testing.T) {
	requests := 0
	body := `{
		"status": "OK",
		"results": [{"address_components": [
			{"long_name": "Melbourne", "types": ["locality", "political"]},
			{"long_name": "Victoria", "types": ["administrative_area_level_1"]},
			{"long_name": "Australia", "types": ["country", "political"]}
		]}]
	}`
	svc, server := newTestPlacesService(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		w.Write([]byte(body))
	}))
	defer server.Close()

	city, country, err := svc.ReverseGeocode(context.Background(), -37.8136, 144.9631)
	if err != nil {
		t.Fatalf("ReverseGeocode failed: %v", err)
	}
	if city != "Melbourne" || country != "Australia" {
		t.Errorf("got %q, %q", city, country)
	}

	// A second lookup a few meters away lands in the same geohash cell.
	city, country, err = svc.ReverseGeocode(context.Background(), -37.8137, 144.9632)
	if err != nil {
		t.Fatalf("cached ReverseGeocode failed: %v", err)
	}
	if city != "Melbourne" || country != "Australia" {
		t.Errorf("cached lookup got %q, %q", city, country)
	}
	if requests != 1 {
		t.Errorf("expected 1 provider request, got %d", requests)
	}
}
