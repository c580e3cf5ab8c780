package services

import (
	"Eatdentify/models"
	"context"
	"log"
	"math/rand"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/PuerkitoBio/goquery"
)

const articleSummaryLimit = 200

const articlePlaceholderImage = "https://via.placeholder.com/300x200.png?text=No+Image"

// foodGuideURLs is the curated article feed.
var foodGuideURLs = []string{
	"https://www.lifestyleasia.com/kl/dining/food/you-need-to-try-these-8-new-michelin-restaurants-in-malaysia/",
	"https://guide.michelin.com/my/en/article/michelin-guide-ceremony/singapore-full-selection-2024-inspectors-favourite-dishes",
	"https://guide.michelin.com/my/en/article/features/different-types-of-kway-teow-dishes-in-malaysia-and-singapore",
	"https://guide.michelin.com/my/en/article/michelin-guide-ceremony/michelin-guide-kuala-lumpur-and-penang-97-restaurants-shine-in-the-first-edition-including-4-michelin-stars",
	"https://wanderlog.com/list/geoCategory/59710/michelin-star-restaurants-in-kuala-lumpur",
	"https://klfoodie.com/must-try-food-in-ampang-kl-selangor/",
	"https://www.holidify.com/pages/bangkok-street-food-79.html",
	"https://www.eater.com/2019/10/23/20916441/melbourne-iconic-dishes-magic-coffee-hsp-souvlaki",
	"https://www.insidehook.com/food-travel/eat-melbourne",
	"https://fullsuitcase.com/british-food/",
	"https://www.ef.com/wwen/blog/language/foods-you-have-to-eat-in-the-uk/",
}

var foodFacts = []string{
	"The world's most expensive pizza costs $12,000 and takes 72 hours to make.",
	"Honey never spoils. Archaeologists have found pots of honey in ancient Egyptian tombs that are over 3,000 years old and still perfectly edible!",
	"The most expensive coffee in the world comes from animal poop. Kopi Luwak, or civet coffee, can cost up to $600 a pound!",
	"The fear of cooking is known as Mageirocophobia.",
	"Pound cake got its name from its original recipe, which called for a pound each of butter, eggs, sugar, and flour.",
	"The average person eats 35,000 cookies in their lifetime.",
	"Bananas are technically berries, while strawberries are not.",
	"The world's largest pizza was over 13,000 square feet and could feed over 12,000 people.",
	"It takes over 80 apples to make a single gallon of apple juice.",
	"The most expensive spice in the world is saffron, with a price tag of up to $10,000 per pound.",
	"Chocolate can help improve brain function and mood.",
	"The first potato chips were invented as a punishment for a picky customer.",
	"The average person eats about 18,000 pounds of food in their lifetime.",
}

// ArticleService scrapes the food-guide feed.
type ArticleService struct {
	HTTPClient *http.Client
	URLs       []string
}

// NewArticleService creates a new instance of ArticleService
func NewArticleService() *ArticleService {
	return &ArticleService{
		HTTPClient: &http.Client{Timeout: 15 * time.Second},
		URLs:       foodGuideURLs,
	}
}

// FetchArticles scrapes every configured article concurrently, preserving
// feed order. A page that cannot be fetched becomes an error card rather
// than failing the feed.
func (s *ArticleService) FetchArticles(ctx context.Context) []models.Article {
	articles := make([]models.Article, len(s.URLs))

	var wg sync.WaitGroup
	sem := make(chan struct{}, 4) // Limit concurrent page fetches

	for i, pageURL := range s.URLs {
		wg.Add(1)
		go func(i int, pageURL string) {
			defer wg.Done()
			sem <- struct{}{}
			defer func() { <-sem }()

			articles[i] = s.fetchArticle(ctx, pageURL)
		}(i, pageURL)
	}

	wg.Wait()
	return articles
}

func (s *ArticleService) fetchArticle(ctx context.Context, pageURL string) models.Article {
	article := models.Article{URL: pageURL}

	req, err := http.NewRequestWithContext(ctx, "GET", pageURL, nil)
	if err != nil {
		return errorArticle(pageURL)
	}

	resp, err := s.HTTPClient.Do(req)
	if err != nil {
		log.Printf("Error fetching article %s: %v", pageURL, err)
		return errorArticle(pageURL)
	}
	defer resp.Body.Close()

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		log.Printf("Error parsing article %s: %v", pageURL, err)
		return errorArticle(pageURL)
	}

	article.Title = strings.TrimSpace(doc.Find("h1").First().Text())
	if article.Title == "" {
		article.Title = "No title found"
	}

	article.Image = doc.Find(`meta[property="og:image"]`).AttrOr("content", articlePlaceholderImage)

	summary := doc.Find(`meta[property="og:description"]`).AttrOr("content", "")
	if summary == "" {
		summary = strings.TrimSpace(doc.Find("p").First().Text())
	}
	if summary == "" {
		summary = "No summary available"
	}
	article.Description = truncate(summary, articleSummaryLimit)

	return article
}

func errorArticle(pageURL string) models.Article {
	return models.Article{
		URL:         pageURL,
		Title:       "Error fetching article",
		Image:       "https://via.placeholder.com/300x200.png?text=Error",
		Description: "Could not fetch article information",
	}
}

func truncate(text string, limit int) string {
	runes := []rune(text)
	if len(runes) <= limit {
		return text
	}
	return string(runes[:limit]) + "..."
}

// RandomFact returns one food fact for the feed header.
func (s *ArticleService) RandomFact() string {
	return foodFacts[rand.Intn(len(foodFacts))]
}
