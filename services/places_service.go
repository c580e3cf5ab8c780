package services

import (
	"Eatdentify/config/environment"
	"Eatdentify/models"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mmcloughlin/geohash"
)

// geocodeCachePrecision keeps cache hits within roughly one neighborhood.
const geocodeCachePrecision = 6

type locationInfo struct {
	city    string
	country string
}

// PlacesService wraps the Places provider: text search with rating filters,
// place details (reviews and photo), and reverse geocoding.
type PlacesService struct {
	APIKey     string
	BaseURL    string
	HTTPClient *http.Client

	geocodeMu    sync.Mutex
	geocodeCache map[string]locationInfo
}

// NewPlacesService creates a new instance of PlacesService
func NewPlacesService() *PlacesService {
	return &PlacesService{
		APIKey:       environment.GetGoogleMapsKey(),
		BaseURL:      "https://maps.googleapis.com",
		HTTPClient:   &http.Client{Timeout: 15 * time.Second},
		geocodeCache: make(map[string]locationInfo),
	}
}

func (s *PlacesService) get(ctx context.Context, path string, params url.Values, out interface{}) error {
	params.Set("key", s.APIKey)
	req, err := http.NewRequestWithContext(ctx, "GET", s.BaseURL+path+"?"+params.Encode(), nil)
	if err != nil {
		return err
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrProviderUnavailable, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		body, _ := io.ReadAll(resp.Body)
		return fmt.Errorf("%w: places request failed with status %d: %s", ErrProviderUnavailable, resp.StatusCode, string(body))
	}

	return json.NewDecoder(resp.Body).Decode(out)
}

// TextSearch runs a text search and keeps only candidates that report a
// rating, report opening hours, fall inside the rating range and are
// currently open. A non-OK provider status is an empty result, not an error.
func (s *PlacesService) TextSearch(ctx context.Context, query string, radius, minRating, maxRating float64) ([]models.PlaceResult, error) {
	params := url.Values{}
	params.Set("query", query)
	params.Set("radius", strconv.FormatFloat(radius, 'f', -1, 64))
	params.Set("minRating", strconv.FormatFloat(minRating, 'f', -1, 64))
	params.Set("maxRating", strconv.FormatFloat(maxRating, 'f', -1, 64))

	var data models.PlaceSearchResponse
	if err := s.get(ctx, "/maps/api/place/textsearch/json", params, &data); err != nil {
		return nil, err
	}

	if data.Status != "OK" || len(data.Results) == 0 {
		log.Println("Text search returned no usable results, status:", data.Status)
		return nil, nil
	}

	var filtered []models.PlaceResult
	for _, place := range data.Results {
		if place.Rating == nil || place.OpeningHours == nil {
			continue
		}
		if *place.Rating < minRating || *place.Rating > maxRating {
			continue
		}
		if !place.OpeningHours.OpenNow {
			continue
		}
		filtered = append(filtered, place)
	}
	return filtered, nil
}

// PlaceDetails fetches the reviews and the primary photo URL for one place.
// A place without photos or reviews is not an error; only a refused lookup is.
func (s *PlacesService) PlaceDetails(ctx context.Context, placeID string) (string, string, error) {
	params := url.Values{}
	params.Set("place_id", placeID)
	params.Set("fields", "photos,reviews")

	var data models.PlaceDetailsResponse
	if err := s.get(ctx, "/maps/api/place/details/json", params, &data); err != nil {
		return "", "", err
	}

	if data.Status != "OK" {
		return "", "", fmt.Errorf("%w: status %s for place %s", ErrDetailsUnavailable, data.Status, placeID)
	}

	var reviews strings.Builder
	for _, review := range data.Result.Reviews {
		fmt.Fprintf(&reviews, "%s (%s, rated %.1f): %s\n", review.AuthorName, review.RelativeTimeDescription, review.Rating, review.Text)
	}

	photoURL := ""
	if len(data.Result.Photos) > 0 {
		photoURL = s.PhotoURL(data.Result.Photos[0].PhotoReference)
	}

	return reviews.String(), photoURL, nil
}

// PhotoURL builds the provider URL serving a photo reference.
func (s *PlacesService) PhotoURL(photoReference string) string {
	params := url.Values{}
	params.Set("maxwidth", "400")
	params.Set("photo_reference", photoReference)
	params.Set("key", s.APIKey)
	return s.BaseURL + "/maps/api/place/photo?" + params.Encode()
}

// ReverseGeocode resolves coordinates to a city and country. Lookups are
// cached by geohash so repeated calls from the same area skip the provider.
func (s *PlacesService) ReverseGeocode(ctx context.Context, lat, lon float64) (string, string, error) {
	cacheKey := geohash.EncodeWithPrecision(lat, lon, geocodeCachePrecision)

	s.geocodeMu.Lock()
	cached, ok := s.geocodeCache[cacheKey]
	s.geocodeMu.Unlock()
	if ok {
		return cached.city, cached.country, nil
	}

	params := url.Values{}
	params.Set("latlng", fmt.Sprintf("%f,%f", lat, lon))

	var data models.GeocodeResponse
	if err := s.get(ctx, "/maps/api/geocode/json", params, &data); err != nil {
		return "", "", err
	}

	if data.Status != "OK" || len(data.Results) == 0 {
		log.Println("Geocoding returned status:", data.Status)
		return "", "", nil
	}

	var city, country string
	for _, component := range data.Results[0].AddressComponents {
		for _, t := range component.Types {
			if t == "locality" {
				city = component.LongName
			}
			if t == "country" {
				country = component.LongName
			}
		}
	}

	s.geocodeMu.Lock()
	s.geocodeCache[cacheKey] = locationInfo{city: city, country: country}
	s.geocodeMu.Unlock()

	return city, country, nil
}
