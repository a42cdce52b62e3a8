package index

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/forkful/forkful/core"
)

// corpusIngredient mirrors the wire shape of one corpus ingredient.
type corpusIngredient struct {
	Id     uint64  `json:"id"`
	Name   string  `json:"name"`
	Amount float64 `json:"amount"`
	Unit   string  `json:"unit"`
}

// corpusRecipe mirrors the wire shape of one corpus recipe record.
type corpusRecipe struct {
	Id             uint64             `json:"id"`
	Title          string             `json:"title"`
	ReadyInMinutes int                `json:"readyInMinutes"`
	Servings       int                `json:"servings"`
	Image          string             `json:"image"`
	Summary        string             `json:"summary"`
	SourceURL      string             `json:"sourceUrl"`
	Cuisines       []string           `json:"cuisines"`
	Diets          []string           `json:"diets"`
	DishTypes      []string           `json:"dishTypes"`
	Ingredients    []corpusIngredient `json:"extendedIngredients"`
}

// LoadCorpus reads a JSON array of recipe records. An unreadable or
// unparsable corpus is fatal to the whole indexing run; per-recipe problems
// are left to the build pass, which skips bad records individually.
func LoadCorpus(r io.Reader) ([]*core.Recipe, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusUnreadable, err)
	}

	var raw []corpusRecipe
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorpusUnparsable, err)
	}

	recipes := make([]*core.Recipe, 0, len(raw))
	for _, cr := range raw {
		recipe := &core.Recipe{
			Id:             core.ID(cr.Id),
			Title:          cr.Title,
			ReadyInMinutes: cr.ReadyInMinutes,
			Servings:       cr.Servings,
			Image:          cr.Image,
			Summary:        cr.Summary,
			SourceURL:      cr.SourceURL,
			Cuisines:       cr.Cuisines,
			Diets:          cr.Diets,
			DishTypes:      cr.DishTypes,
		}
		// Records lacking a corpus id get a deterministic content id so a
		// reindex of the same corpus maps to the same ids.
		if recipe.Id == 0 {
			recipe.Id = core.IDFromContent(cr.Title)
		}
		for _, ci := range cr.Ingredients {
			recipe.Ingredients = append(recipe.Ingredients, core.Ingredient{
				Id:     core.ID(ci.Id),
				Name:   ci.Name,
				Amount: ci.Amount,
				Unit:   ci.Unit,
			})
		}
		recipes = append(recipes, recipe)
	}
	return recipes, nil
}
