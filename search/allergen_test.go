package search

import (
	"testing"
	"time"

	"github.com/forkful/forkful/core"
	"github.com/stretchr/testify/assert"
)

func TestFlattenAllergens(t *testing.T) {
	flat := flattenAllergens([]string{"Peanuts", "tree nut", "  ", "42"})
	assert.Equal(t, []string{"peanut", "treenut"}, flat)
}

func TestMatchAllergen(t *testing.T) {
	cookies := &core.Recipe{
		Title: "Peanut Butter Cookies",
		Ingredients: []core.Ingredient{
			{Name: "peanut butter"}, {Name: "flour"}, {Name: "sugar"},
		},
	}
	salad := &core.Recipe{
		Title: "Caprese Salad",
		Ingredients: []core.Ingredient{
			{Name: "tomatoes"}, {Name: "mozzarella"}, {Name: "basil"},
		},
	}

	t.Run("allergen is substring of ingredient", func(t *testing.T) {
		allergen, matched := matchAllergen(cookies, flattenAllergens([]string{"peanut"}))
		assert.True(t, matched)
		assert.Equal(t, "peanut", allergen)
	})

	t.Run("ingredient is substring of allergen", func(t *testing.T) {
		_, matched := matchAllergen(cookies, flattenAllergens([]string{"peanut butter cups"}))
		assert.True(t, matched)
	})

	t.Run("plural allergen matches singular ingredient", func(t *testing.T) {
		_, matched := matchAllergen(salad, flattenAllergens([]string{"Tomatoes"}))
		assert.True(t, matched)
	})

	t.Run("no match", func(t *testing.T) {
		_, matched := matchAllergen(salad, flattenAllergens([]string{"peanut"}))
		assert.False(t, matched)
	})

	t.Run("no allergens", func(t *testing.T) {
		_, matched := matchAllergen(cookies, nil)
		assert.False(t, matched)
	})
}

func TestPeriodOf(t *testing.T) {
	tests := []struct {
		hour int
		want Period
	}{
		{0, PeriodMorning},
		{11, PeriodMorning},
		{12, PeriodAfternoon},
		{16, PeriodAfternoon},
		{17, PeriodEvening},
		{23, PeriodEvening},
	}
	for _, tc := range tests {
		at := time.Date(2025, 6, 1, tc.hour, 30, 0, 0, time.UTC)
		assert.Equal(t, tc.want, PeriodOf(at), "hour %d", tc.hour)
	}
}

func TestTimeOfDayBonusTakesBest(t *testing.T) {
	table := DefaultTimeOfDayTable()

	// "dinner" (10) beats "main course" (8); they never stack.
	assert.Equal(t, 10.0, table.bonus(PeriodEvening, []string{"main course", "dinner"}))
	assert.Equal(t, 0.0, table.bonus(PeriodMorning, []string{"dinner"}))
	assert.Equal(t, 0.0, table.bonus(PeriodEvening, nil))
}
