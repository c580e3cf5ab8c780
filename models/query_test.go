package models

import (
	"strings"
	"testing"
)

func TestQueryRadius(t *testing.T) {
	cases := []struct {
		travelTime float64
		want       float64
	}{
		{0, 0},
		{10, 5000},
		{30, 15000},
		{40, 20000},
		{50, 20000},
		{100, 20000},
	}

	for _, c := range cases {
		q := Query{TravelTime: c.travelTime}
		if got := q.Radius(); got != c.want {
			t.Errorf("Radius() with travel time %v = %v, want %v", c.travelTime, got, c.want)
		}
	}
}

func TestQueryRadiusMonotonic(t *testing.T) {
	previous := -1.0
	for travelTime := 0.0; travelTime <= 120; travelTime += 5 {
		q := Query{TravelTime: travelTime}
		radius := q.Radius()
		if radius < previous {
			t.Fatalf("Radius() decreased at travel time %v: %v < %v", travelTime, radius, previous)
		}
		previous = radius
	}
}

func TestQueryValidate(t *testing.T) {
	valid := Query{MinRating: 3, MaxRating: 5, Budget: BudgetMedium, TravelTime: 30}
	if err := valid.Validate(); err != nil {
		t.Fatalf("Validate() on a valid query: %v", err)
	}

	invalid := []Query{
		{MinRating: 4, MaxRating: 3, Budget: BudgetLow},
		{MinRating: -1, MaxRating: 3, Budget: BudgetLow},
		{MinRating: 3, MaxRating: 6, Budget: BudgetLow},
		{MinRating: 3, MaxRating: 5, Budget: "$$$$"},
		{MinRating: 3, MaxRating: 5, Budget: BudgetHigh, TravelTime: -10},
	}
	for i, q := range invalid {
		if err := q.Validate(); err == nil {
			t.Errorf("Validate() case %d accepted an invalid query: %+v", i, q)
		}
	}
}

func TestQueryDescription(t *testing.T) {
	q := Query{Remarks: "no pork", Cuisine: "Thai", Craving: "noodles"}
	desc := q.Description()
	for _, want := range []string{"no pork", "Thai", "noodles"} {
		if !strings.Contains(desc, want) {
			t.Errorf("Description() = %q, missing %q", desc, want)
		}
	}
}
