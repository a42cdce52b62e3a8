package textnorm

import "strings"

// Cooking-modifier words carry no search meaning and are dropped wherever
// they appear as whole words.
var modifierWords = map[string]bool{
	"fresh": true, "diced": true, "chopped": true, "minced": true,
	"sliced": true, "grated": true, "shredded": true, "crushed": true,
	"ground": true, "dried": true, "frozen": true, "canned": true,
	"cooked": true, "raw": true, "organic": true, "boneless": true,
	"skinless": true, "unsalted": true, "melted": true, "softened": true,
	"peeled": true, "toasted": true, "ripe": true,
}

// Stop words to filter out of every token stream.
var stopWords = map[string]bool{
	"the": true, "a": true, "an": true, "be": true, "is": true, "are": true,
	"was": true, "to": true, "of": true, "and": true, "in": true, "that": true,
	"have": true, "it": true, "for": true, "not": true, "on": true, "with": true,
	"as": true, "you": true, "do": true, "at": true, "this": true, "but": true,
	"by": true, "from": true, "or": true,
}

// punctReplacer turns in-word punctuation into token boundaries.
var punctReplacer = strings.NewReplacer("-", " ", "'", " ", "*", " ")

// Normalize canonicalizes free text: lowercase, punctuation split, plural
// collapse, modifier/stop-word/numeric removal, single-space joined output.
// Unknown or empty input yields the empty string.
func Normalize(text string) string {
	return strings.Join(Tokens(text), " ")
}

// Tokens returns the normalized token stream for text.
func Tokens(text string) []string {
	text = punctReplacer.Replace(strings.ToLower(strings.TrimSpace(text)))

	fields := strings.Fields(text)
	tokens := make([]string, 0, len(fields))
	for _, field := range fields {
		token := Singularize(field)
		if len(token) < 2 {
			continue
		}
		if isNumeric(token) || modifierWords[token] || stopWords[token] {
			continue
		}
		tokens = append(tokens, token)
	}
	return tokens
}

// Flat returns the normalized text with spaces removed. Substring matching
// between ingredient names and allergen or pantry terms uses this form so
// "peanutbutter" and "peanut butter" compare equal.
func Flat(text string) string {
	return strings.ReplaceAll(Normalize(text), " ", "")
}

// Singularize collapses simple English plurals with three ordered suffix
// rules: *ies -> *y, *oes -> *o, and a trailing s is stripped unless the
// result would itself end in s. Applying it twice changes nothing.
func Singularize(token string) string {
	switch {
	case strings.HasSuffix(token, "ies") && len(token) > 3:
		return token[:len(token)-3] + "y"
	case strings.HasSuffix(token, "oes") && len(token) > 3:
		return token[:len(token)-2]
	case strings.HasSuffix(token, "s") && !strings.HasSuffix(token, "ss") && len(token) > 1:
		return token[:len(token)-1]
	}
	return token
}

func isNumeric(token string) bool {
	for _, r := range token {
		if r < '0' || r > '9' {
			return false
		}
	}
	return len(token) > 0
}
