package core

import (
	"testing"
)

func TestBucketTime(t *testing.T) {
	tests := []struct {
		minutes int
		want    string
	}{
		{0, "0-15"},
		{1, "0-15"},
		{15, "0-15"},
		{16, "16-30"},
		{30, "16-30"},
		{31, "31-60"},
		{45, "31-60"},
		{60, "31-60"},
		{61, "60+"},
		{240, "60+"},
	}

	for _, tt := range tests {
		if got := BucketTime(tt.minutes); got != tt.want {
			t.Errorf("BucketTime(%d) = %q, want %q", tt.minutes, got, tt.want)
		}
	}
}

func TestBucketTime_Partition(t *testing.T) {
	// Every non-negative minute count maps to exactly one known bucket.
	known := make(map[string]bool)
	for _, b := range TimeBuckets {
		known[b] = true
	}

	for m := 0; m <= 500; m++ {
		bucket := BucketTime(m)
		if !known[bucket] {
			t.Fatalf("BucketTime(%d) = %q, not a known bucket", m, bucket)
		}
	}

	// Boundaries are exclusive between adjacent buckets.
	boundaries := []struct {
		last, first int
	}{
		{15, 16},
		{30, 31},
		{60, 61},
	}
	for _, b := range boundaries {
		if BucketTime(b.last) == BucketTime(b.first) {
			t.Errorf("buckets overlap at minute %d/%d", b.last, b.first)
		}
	}
}

func TestComputeDifficulty_TitleKeywords(t *testing.T) {
	tests := []struct {
		name        string
		title       string
		ingredients int
		minutes     int
		want        Difficulty
	}{
		{"quick keyword wins over time threshold", "Quick Veggie Stir Fry", 6, 45, DifficultyEasy},
		{"easy keyword", "Easy Pancakes", 20, 120, DifficultyEasy},
		{"simple keyword", "Simple roast chicken", 15, 90, DifficultyEasy},
		{"hard keyword", "Hard Cider Braised Pork", 3, 10, DifficultyHard},
		{"difficult keyword", "A difficult souffle", 4, 20, DifficultyHard},
		{"advanced keyword", "Advanced croissant technique", 5, 20, DifficultyHard},
		{"intermediate keyword", "Intermediate bread baking", 3, 10, DifficultyMedium},
		{"keyword must be whole word", "Quickbread loaf", 5, 45, DifficultyMedium},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ComputeDifficulty(tt.title, tt.ingredients, tt.minutes)
			if got != tt.want {
				t.Errorf("ComputeDifficulty(%q, %d, %d) = %q, want %q",
					tt.title, tt.ingredients, tt.minutes, got, tt.want)
			}
		})
	}
}

func TestComputeDifficulty_Thresholds(t *testing.T) {
	tests := []struct {
		ingredients int
		minutes     int
		want        Difficulty
	}{
		{5, 20, DifficultyEasy},
		{7, 30, DifficultyEasy},
		{8, 30, DifficultyMedium},
		{7, 31, DifficultyMedium},
		{12, 60, DifficultyMedium},
		{13, 60, DifficultyHard},
		{12, 61, DifficultyHard},
		{25, 180, DifficultyHard},
	}

	for _, tt := range tests {
		got := ComputeDifficulty("Plain Stew", tt.ingredients, tt.minutes)
		if got != tt.want {
			t.Errorf("ComputeDifficulty(_, %d, %d) = %q, want %q",
				tt.ingredients, tt.minutes, got, tt.want)
		}
	}
}

func TestComputeDifficulty_Deterministic(t *testing.T) {
	first := ComputeDifficulty("Weeknight Curry", 9, 40)
	for i := 0; i < 10; i++ {
		if got := ComputeDifficulty("Weeknight Curry", 9, 40); got != first {
			t.Fatalf("ComputeDifficulty not deterministic: %q then %q", first, got)
		}
	}
}

func TestRecipe_DerivedFields(t *testing.T) {
	recipe := &Recipe{
		Title:          "Quick Veggie Stir Fry",
		ReadyInMinutes: 45,
		Ingredients:    make([]Ingredient, 6),
	}

	if got := recipe.TimeBucket(); got != "31-60" {
		t.Errorf("TimeBucket() = %q, want %q", got, "31-60")
	}
	if got := recipe.Difficulty(); got != DifficultyEasy {
		t.Errorf("Difficulty() = %q, want %q", got, DifficultyEasy)
	}
}
