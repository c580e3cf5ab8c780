package services

import (
	"Eatdentify/models"
	"context"
	"fmt"
	"log"
	"strconv"
	"strings"
)

const maxSampledRestaurants = 5

// Oracle is the text-completion provider behind the pipeline's reasoning
// steps.
type Oracle interface {
	Complete(ctx context.Context, prompt string) (string, error)
}

// PlacesAPI is the slice of the Places provider the pipeline consumes.
type PlacesAPI interface {
	TextSearch(ctx context.Context, query string, radius, minRating, maxRating float64) ([]models.PlaceResult, error)
	PlaceDetails(ctx context.Context, placeID string) (reviews string, photoURL string, err error)
}

// Progress is one observable pipeline update. Fraction is only meaningful
// for the per-restaurant enrichment stages.
type Progress struct {
	Stage    string  `json:"stage"`
	Message  string  `json:"message"`
	Fraction float64 `json:"fraction"`
}

// ProgressFunc receives pipeline updates as they happen.
type ProgressFunc func(Progress)

// SearchService orchestrates the Places provider and the completion oracle
// from a user query to an enriched result set. Each stage must finish for
// all restaurants before the next one starts, and any failure aborts the
// whole run unless IsolateFailures is set, in which case the failing
// restaurant keeps its fields empty and the run continues.
type SearchService struct {
	Places          PlacesAPI
	Oracle          Oracle
	IsolateFailures bool
}

// NewSearchService initializes SearchService with the live providers.
func NewSearchService() *SearchService {
	return &SearchService{
		Places: NewPlacesService(),
		Oracle: NewGeminiService(),
	}
}

// Run executes the full pipeline. On failure no partial result is returned;
// callers keep whatever result they held before.
func (s *SearchService) Run(ctx context.Context, query *models.Query, report ProgressFunc) (*models.SearchResult, error) {
	if report == nil {
		report = func(Progress) {}
	}

	// Stage 1: synthesize the text-search string.
	searchQuery, err := s.buildSearchQuery(ctx, query)
	if err != nil {
		return nil, err
	}
	report(Progress{Stage: "search_prompt", Message: searchQuery})

	// Stage 2: text search. Zero candidates is a valid empty state.
	candidates, err := s.Places.TextSearch(ctx, searchQuery, query.Radius(), query.MinRating, query.MaxRating)
	if err != nil {
		return nil, err
	}
	report(Progress{Stage: "text_search", Message: fmt.Sprintf("Got %d results", len(candidates))})

	// Stage 3: sample up to five candidates and build the shell records.
	indices, err := s.sampleIndices(ctx, len(candidates))
	if err != nil {
		return nil, err
	}

	result := &models.SearchResult{}
	for _, idx := range indices {
		candidate := candidates[idx]
		rating := 0.0
		if candidate.Rating != nil {
			rating = *candidate.Rating
		}
		result.Restaurants = append(result.Restaurants,
			models.NewRestaurant(candidate.PlaceID, candidate.Name, rating, candidate.FormattedAddress))
	}
	report(Progress{Stage: "sampling", Message: fmt.Sprintf("Selected %d most relevant results", result.Len())})

	// Stage 4: reviews and photo, sequentially per restaurant.
	for _, restaurant := range result.Restaurants {
		reviews, photoURL, err := s.Places.PlaceDetails(ctx, restaurant.PlaceID)
		if err != nil {
			if s.IsolateFailures {
				log.Printf("Skipping details for %s: %v", restaurant.Name, err)
				continue
			}
			return nil, err
		}
		restaurant.AddReviews(reviews)
		restaurant.SetPhoto(photoURL)
	}
	report(Progress{Stage: "details", Message: "Gathered reviews and photos"})

	// Stage 5: recommendation reasoning, with fractional progress.
	total := result.Len()
	for i, restaurant := range result.Restaurants {
		reason, err := s.reviewSummary(ctx, restaurant, query)
		if err != nil {
			if s.IsolateFailures {
				log.Printf("Skipping reason for %s: %v", restaurant.Name, err)
			} else {
				return nil, err
			}
		} else {
			restaurant.AddReason(reason)
		}
		report(Progress{Stage: "reason", Message: "Generating restaurant output...", Fraction: float64(i+1) / float64(total)})
	}

	// Stage 6: meal suggestion triple, with fractional progress.
	for i, restaurant := range result.Restaurants {
		meal, citation, description, err := s.mealSuggestion(ctx, restaurant, query)
		if err != nil {
			if s.IsolateFailures {
				log.Printf("Skipping meal for %s: %v", restaurant.Name, err)
			} else {
				return nil, err
			}
		} else {
			restaurant.AddMeal(meal, citation, description)
		}
		report(Progress{Stage: "meal", Message: "Generating meal output...", Fraction: float64(i+1) / float64(total)})
	}

	return result, nil
}

// buildSearchQuery turns the user remarks into a short vague descriptor and
// concatenates it with the budget, cuisine, craving and city.
func (s *SearchService) buildSearchQuery(ctx context.Context, query *models.Query) (string, error) {
	response, err := s.Oracle.Complete(ctx, searchPrompt+"\n\n"+query.Remarks)
	if err != nil {
		return "", err
	}
	descriptor := trimOracleLine(response)
	return fmt.Sprintf("%s %s %s %s %s", query.Budget, descriptor, query.Cuisine, query.Craving, query.City), nil
}

// sampleIndices asks the oracle for k unique indices in [0, count-1] where
// k = min(5, count-1). With fewer than two candidates there is nothing to
// sample and the oracle is not called.
func (s *SearchService) sampleIndices(ctx context.Context, count int) ([]int, error) {
	if count <= 1 {
		return nil, nil
	}

	k := count - 1
	if count >= maxSampledRestaurants {
		k = maxSampledRestaurants
	}

	response, err := s.Oracle.Complete(ctx, fmt.Sprintf(samplePrompt, k, count-1, k))
	if err != nil {
		return nil, err
	}

	parts := strings.Split(trimOracleLine(response), ",")
	if len(parts) != k {
		return nil, fmt.Errorf("%w: wanted %d indices, got %q", ErrSampling, k, response)
	}

	seen := make(map[int]bool, k)
	indices := make([]int, 0, k)
	for _, part := range parts {
		idx, err := strconv.Atoi(strings.TrimSpace(part))
		if err != nil {
			return nil, fmt.Errorf("%w: %q is not a number", ErrSampling, part)
		}
		if idx < 0 || idx >= count {
			return nil, fmt.Errorf("%w: index %d out of range [0, %d]", ErrSampling, idx, count-1)
		}
		if seen[idx] {
			return nil, fmt.Errorf("%w: duplicate index %d", ErrSampling, idx)
		}
		seen[idx] = true
		indices = append(indices, idx)
	}
	return indices, nil
}

func (s *SearchService) reviewSummary(ctx context.Context, restaurant *models.Restaurant, query *models.Query) (string, error) {
	prompt := fmt.Sprintf("Strictly and only refer to this: \n\n %s \n\n for this restaurant: %s \n\n %s \n\n %s",
		restaurant.Reviews, restaurant.Name, reviewSummaryPrompt, query.Description())
	return s.Oracle.Complete(ctx, prompt)
}

func (s *SearchService) mealSuggestion(ctx context.Context, restaurant *models.Restaurant, query *models.Query) (string, string, string, error) {
	prompt := fmt.Sprintf("Strictly and only refer to this: \n\n %s \n\n for this restaurant: %s \n\n %s \n\n %s",
		restaurant.Reviews, restaurant.Name, mealSuggestionPrompt, query.Description())
	response, err := s.Oracle.Complete(ctx, prompt)
	if err != nil {
		return "", "", "", err
	}
	return parseMealTriple(response)
}

// parseMealTriple splits "name | citation | description". Fewer than three
// fields is a hard parse failure.
func parseMealTriple(response string) (string, string, string, error) {
	parts := strings.SplitN(response, "| ", 3)
	if len(parts) < 3 {
		return "", "", "", fmt.Errorf("%w: meal suggestion %q did not split into three fields", ErrParse, response)
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), strings.TrimSpace(parts[2]), nil
}

// trimOracleLine strips the whitespace and trailing punctuation providers
// like to append, without assuming how many characters they added.
func trimOracleLine(response string) string {
	return strings.TrimRight(strings.TrimSpace(response), ".,!;: \t\r\n")
}
