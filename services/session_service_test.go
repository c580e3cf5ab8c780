package services

import (
	"errors"
	"testing"

	"Eatdentify/models"
)

func TestSessionBusyGuard(t *testing.T) {
	session := &Session{}

	if err := session.Begin(); err != nil {
		t.Fatalf("first Begin failed: %v", err)
	}
	if err := session.Begin(); !errors.Is(err, ErrBusy) {
		t.Fatalf("second Begin should be rejected, got %v", err)
	}

	session.End()
	if err := session.Begin(); err != nil {
		t.Fatalf("Begin after End failed: %v", err)
	}
}

func TestSessionPublish(t *testing.T) {
	session := &Session{}

	query, results := session.Current()
	if query != nil || results != nil {
		t.Fatal("a fresh session should hold nothing")
	}

	publishedQuery := testQuery()
	publishedResults := &models.SearchResult{Restaurants: []*models.Restaurant{
		models.NewRestaurant("p1", "Thai Corner", 4.5, "12 Main St"),
	}}
	session.Publish(publishedQuery, publishedResults)

	query, results = session.Current()
	if query != publishedQuery || results != publishedResults {
		t.Error("Current should return the published pair")
	}
}

func TestSessionHistoryCopy(t *testing.T) {
	session := &Session{}
	session.AppendMessage("user", "any rooftop bars?")
	session.AppendMessage("assistant", "try these three")

	history := session.History()
	if len(history) != 2 || history[0].Role != "user" || history[1].Role != "assistant" {
		t.Fatalf("unexpected transcript: %+v", history)
	}

	history[0].Content = "mutated"
	if session.History()[0].Content != "any rooftop bars?" {
		t.Error("History must return a copy, not the backing slice")
	}
}

func TestSessionServicePerUser(t *testing.T) {
	registry := &SessionService{sessions: make(map[string]*Session)}

	a := registry.Get("alice")
	if a == nil {
		t.Fatal("Get should create a session on demand")
	}
	if registry.Get("alice") != a {
		t.Error("the same user should get the same session back")
	}
	if registry.Get("guest:10.0.0.1") == a {
		t.Error("different users must not share a session")
	}
}
