package core

import "strings"

// TimeBuckets are the four cook-time bucket labels, in ascending order.
// Together they partition [0, ∞) minutes with no overlap and no gap.
var TimeBuckets = []string{"0-15", "16-30", "31-60", "60+"}

// BucketTime maps a readyInMinutes value to its bucket label.
// Negative input is treated as zero.
func BucketTime(minutes int) string {
	switch {
	case minutes <= 15:
		return "0-15"
	case minutes <= 30:
		return "16-30"
	case minutes <= 60:
		return "31-60"
	default:
		return "60+"
	}
}

// Title keywords that pin the difficulty class regardless of thresholds.
var (
	easyKeywords   = []string{"easy", "simple", "quick"}
	hardKeywords   = []string{"hard", "difficult", "complex", "advanced"}
	mediumKeywords = []string{"medium", "intermediate"}
)

// ComputeDifficulty derives a difficulty class from a recipe's title,
// ingredient count and cook time. Title keywords win; otherwise thresholds on
// (ingredient count, minutes) decide: ≤7 and ≤30 is easy, ≤12 and ≤60 is
// medium, anything larger is hard.
func ComputeDifficulty(title string, ingredientCount, readyInMinutes int) Difficulty {
	words := titleWords(title)
	switch {
	case containsAny(words, easyKeywords):
		return DifficultyEasy
	case containsAny(words, hardKeywords):
		return DifficultyHard
	case containsAny(words, mediumKeywords):
		return DifficultyMedium
	}

	switch {
	case ingredientCount <= 7 && readyInMinutes <= 30:
		return DifficultyEasy
	case ingredientCount <= 12 && readyInMinutes <= 60:
		return DifficultyMedium
	default:
		return DifficultyHard
	}
}

// titleWords splits a title into lowercase words, treating any non-letter as a
// separator so keyword matching is whole-word.
func titleWords(title string) map[string]bool {
	words := make(map[string]bool)
	fields := strings.FieldsFunc(strings.ToLower(title), func(r rune) bool {
		return r < 'a' || r > 'z'
	})
	for _, f := range fields {
		words[f] = true
	}
	return words
}

func containsAny(words map[string]bool, keywords []string) bool {
	for _, kw := range keywords {
		if words[kw] {
			return true
		}
	}
	return false
}
