package services

import (
	"Eatdentify/models"
	"context"
	"fmt"
)

// ColumnService answers a custom per-restaurant question and stores the
// answer as a named column on the record.
type ColumnService struct {
	Oracle Oracle
}

// NewColumnService initializes ColumnService with the live oracle.
func NewColumnService() *ColumnService {
	return &ColumnService{Oracle: NewGeminiService()}
}

// Apply asks the question against one restaurant's reviews and overwrites
// any existing column with the same name.
func (s *ColumnService) Apply(ctx context.Context, query *models.Query, restaurant *models.Restaurant, question, columnName string) error {
	prompt := fmt.Sprintf("knowing that %s, the review %s, tell me about: %s%s",
		query.Remarks, restaurant.Reviews, question, columnPrompt)

	response, err := s.Oracle.Complete(ctx, prompt)
	if err != nil {
		return fmt.Errorf("column %q for %s: %w", columnName, restaurant.Name, err)
	}

	restaurant.SetCustomField(columnName, response)
	return nil
}

// ApplyAll runs Apply across a result set. There is no atomicity across
// records: on failure the already-updated records keep their new column and
// the count of applied records is returned with the error.
func (s *ColumnService) ApplyAll(ctx context.Context, query *models.Query, result *models.SearchResult, question, columnName string) (int, error) {
	for i, restaurant := range result.Restaurants {
		if err := s.Apply(ctx, query, restaurant, question, columnName); err != nil {
			return i, err
		}
	}
	return result.Len(), nil
}
