package services

import (
	"log"
	"strings"

	"github.com/openfoodfacts/openfoodfacts-go"
)

// SnackService looks up packaged food products so users can check them
// against their dietary remarks before adding them to a meal plan.
type SnackService struct {
	Client openfoodfacts.Client
}

// NewSnackService initializes a new instance of SnackService
func NewSnackService() *SnackService {
	client := openfoodfacts.NewClient("world", "", "")
	return &SnackService{Client: client}
}

// AlcoholContent holds the alcohol-related values from the nutriments,
// relevant for users whose remarks exclude alcohol.
type AlcoholContent struct {
	AlcoholValue   float64 `json:"alcohol_value"`
	AlcoholServing float64 `json:"alcohol_serving"`
	AlcoholUnit    string  `json:"alcohol_unit"`
	Alcohol100G    float64 `json:"alcohol_100g"`
	Alcohol        float64 `json:"alcohol"`
}

// ProductDetail is a structured response containing product information
type ProductDetail struct {
	Name            string         `json:"name"`
	IngredientsText string         `json:"ingredients_text"`
	IngredientsIDs  []string       `json:"ingredients_ids"`
	IngredientsTags []string       `json:"ingredients_tags"`
	Alcohol         AlcoholContent `json:"alcohol"`
	ContainsAlcohol bool           `json:"contains_alcohol"`
}

// GetProductByBarcode fetches product details using a barcode. An unknown
// barcode yields a nil detail, not an error.
func (s *SnackService) GetProductByBarcode(barcode string) (*ProductDetail, error) {
	product, err := s.Client.Product(barcode)
	if err != nil {
		log.Printf("Error fetching product %s: %v", barcode, err)
		return nil, nil
	}

	// A product without a name and without ingredients is unusable.
	if product.ProductName == "" && product.IngredientsText == "" {
		return nil, nil
	}

	nutriment := product.Nutriments
	alcohol := AlcoholContent{
		AlcoholValue:   nutriment.AlcoholValue,
		AlcoholServing: nutriment.AlcoholServing,
		AlcoholUnit:    nutriment.AlcoholUnit,
		Alcohol100G:    nutriment.Alcohol100G,
		Alcohol:        nutriment.Alcohol,
	}

	detail := &ProductDetail{
		Name:            product.ProductName,
		IngredientsText: product.IngredientsText,
		IngredientsIDs:  product.IngredientsIdsDebug,
		IngredientsTags: product.IngredientsTags,
		Alcohol:         alcohol,
		ContainsAlcohol: containsAlcohol(alcohol, product.IngredientsText),
	}

	return detail, nil
}

func containsAlcohol(alcohol AlcoholContent, ingredients string) bool {
	if alcohol.Alcohol > 0 || alcohol.Alcohol100G > 0 || alcohol.AlcoholValue > 0 {
		return true
	}
	return strings.Contains(strings.ToLower(ingredients), "alcohol")
}
