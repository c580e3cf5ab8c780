package services

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func newTestArticleService(urls []string) *ArticleService {
	return &ArticleService{
		HTTPClient: &http.Client{Timeout: 5 * time.Second},
		URLs:       urls,
	}
}

func TestFetchArticlesExtractsMetadata(t *testing.T) {
	page := `<html><head>
		<meta property="og:image" content="https://cdn.example.com/banner.jpg">
		<meta property="og:description" content="Eight new spots worth the queue.">
	</head><body>
		<h1>  The Best Noodles In Town  </h1>
		<p>Fallback paragraph.</p>
	</body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	articles := newTestArticleService([]string{server.URL}).FetchArticles(context.Background())
	if len(articles) != 1 {
		t.Fatalf("expected 1 article, got %d", len(articles))
	}
	a := articles[0]
	if a.Title != "The Best Noodles In Town" {
		t.Errorf("title = %q", a.Title)
	}
	if a.Image != "https://cdn.example.com/banner.jpg" {
		t.Errorf("image = %q", a.Image)
	}
	if a.Description != "Eight new spots worth the queue." {
		t.Errorf("description = %q", a.Description)
	}
	if a.URL != server.URL {
		t.Errorf("url = %q", a.URL)
	}
}

func TestFetchArticlesParagraphFallback(t *testing.T) {
	long := strings.Repeat("a", 250)
	page := `<html><body><h1>Title</h1><p>` + long + `</p></body></html>`
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(page))
	}))
	defer server.Close()

	articles := newTestArticleService([]string{server.URL}).FetchArticles(context.Background())
	a := articles[0]
	if !strings.HasSuffix(a.Description, "...") {
		t.Errorf("long summaries should be truncated, got %q", a.Description)
	}
	if len([]rune(a.Description)) != articleSummaryLimit+3 {
		t.Errorf("description length = %d runes", len([]rune(a.Description)))
	}
	if a.Image != articlePlaceholderImage {
		t.Errorf("missing og:image should fall back to the placeholder, got %q", a.Image)
	}
}

func TestFetchArticlesPreservesOrderAndIsolatesErrors(t *testing.T) {
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><h1>Good Page</h1><p>fine</p></body></html>`))
	}))
	defer good.Close()

	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body></body></html>`))
	}))
	bad.Close() // Refuse connections.

	articles := newTestArticleService([]string{bad.URL, good.URL}).FetchArticles(context.Background())
	if len(articles) != 2 {
		t.Fatalf("expected 2 articles, got %d", len(articles))
	}
	if articles[0].Title != "Error fetching article" {
		t.Errorf("unreachable page should become an error card, got %q", articles[0].Title)
	}
	if articles[1].Title != "Good Page" {
		t.Errorf("feed order changed, slot 1 = %q", articles[1].Title)
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("short", 200); got != "short" {
		t.Errorf("truncate(short) = %q", got)
	}
	if got := truncate(strings.Repeat("x", 10), 4); got != "xxxx..." {
		t.Errorf("truncate = %q", got)
	}
}

func TestRandomFact(t *testing.T) {
	svc := NewArticleService()
	for i := 0; i < 20; i++ {
		if svc.RandomFact() == "" {
			t.Fatal("RandomFact returned an empty string")
		}
	}
}
