package models

import "testing"

func TestCustomFieldOverwrite(t *testing.T) {
	r := NewRestaurant("p1", "Thai Corner", 4.5, "12 Main St")

	r.SetCustomField("parking", "street only")
	r.SetCustomField("kid friendly", "yes")
	r.SetCustomField("parking", "has a lot")

	if len(r.CustomFields) != 2 {
		t.Fatalf("expected 2 custom fields, got %d", len(r.CustomFields))
	}
	if got := r.CustomField("parking"); got != "has a lot" {
		t.Errorf("CustomField(parking) = %q, want the latest value", got)
	}
	// Insertion order survives the overwrite.
	if r.CustomFields[0].Name != "parking" || r.CustomFields[1].Name != "kid friendly" {
		t.Errorf("custom field order changed: %+v", r.CustomFields)
	}
}

func TestCustomFieldMissingKey(t *testing.T) {
	r := NewRestaurant("p1", "Thai Corner", 4.5, "12 Main St")
	if got := r.CustomField("nope"); got != "" {
		t.Errorf("CustomField on missing key = %q, want empty string", got)
	}
}

func TestAddMealTriple(t *testing.T) {
	r := NewRestaurant("p1", "Thai Corner", 4.5, "12 Main St")

	if r.Meal != "" || r.MealCitation != "" || r.MealDescription != "" {
		t.Fatal("meal triple should start empty")
	}

	r.AddMeal("Pad Thai", "the pad thai is great", "stir-fried noodles")
	if r.Meal == "" || r.MealCitation == "" || r.MealDescription == "" {
		t.Fatal("meal triple should be set together")
	}
}

func TestRestaurantAccumulators(t *testing.T) {
	r := NewRestaurant("p1", "Thai Corner", 4.5, "12 Main St")

	r.AddReviews("first review. ")
	r.AddReviews("second review.")
	if r.Reviews != "first review. second review." {
		t.Errorf("AddReviews should append, got %q", r.Reviews)
	}

	r.AddReason("good for groups")
	if r.Reason != "good for groups" {
		t.Errorf("AddReason stored %q", r.Reason)
	}

	r.SetPhoto("http://example.com/photo.jpg")
	if r.Photo != "http://example.com/photo.jpg" {
		t.Errorf("SetPhoto stored %q", r.Photo)
	}
}
