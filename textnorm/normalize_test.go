package textnorm

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalize(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"empty", "", ""},
		{"whitespace only", "   \t ", ""},
		{"lowercases and trims", "  Chicken Breast ", "chicken breast"},
		{"drops modifiers", "fresh diced tomatoes", "tomato"},
		{"plural ies", "berries and cherries", "berry cherry"},
		{"plural oes", "tomatoes potatoes", "tomato potato"},
		{"plain plural", "eggs onions", "egg onion"},
		{"double s kept", "swiss glass noodles", "swiss glass noodle"},
		{"punctuation to spaces", "sun-dried tomato's *special*", "sun tomato special"},
		{"numeric tokens dropped", "2 eggs 350 degrees", "egg degree"},
		{"stop words dropped", "soup with beans and rice", "soup bean rice"},
		{"short tokens dropped", "a b cd", "cd"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Normalize(tt.in))
		})
	}
}

func TestNormalize_Idempotent(t *testing.T) {
	inputs := []string{
		"",
		"Fresh Organic Strawberries",
		"Quick Veggie Stir-Fry!",
		"2 cups of diced tomatoes",
		"grandma's famous peanut-butter cookies",
		"Sun-Dried Tomatoes with Fresh Basil",
		"easy 30-minute weeknight dinners",
		"swiss cheese & glass noodles",
	}

	for _, in := range inputs {
		once := Normalize(in)
		twice := Normalize(once)
		assert.Equal(t, once, twice, "Normalize not idempotent for %q", in)
	}
}

func TestTokens(t *testing.T) {
	assert.Equal(t, []string{"chicken", "noodle", "soup"}, Tokens("Chicken Noodle Soup"))
	assert.Empty(t, Tokens("fresh 2 a"))
}

func TestFlat(t *testing.T) {
	assert.Equal(t, "peanutbutter", Flat("Peanut Butter"))
	assert.Equal(t, Flat("peanut butter"), Flat("peanut-butter"))
	assert.Equal(t, "", Flat("  "))
}

func TestSingularize(t *testing.T) {
	tests := []struct{ in, want string }{
		{"berries", "berry"},
		{"tomatoes", "tomato"},
		{"eggs", "egg"},
		{"glass", "glass"},
		{"hummus", "hummu"},
		{"s", "s"},
		{"ies", "ie"},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, Singularize(tt.in), "Singularize(%q)", tt.in)
		assert.Equal(t, tt.want, Singularize(tt.want), "Singularize not idempotent for %q", tt.in)
	}
}
