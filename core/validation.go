// Copyright 2025 Forkful Labs
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.


package core

import "fmt"

// ValidateRecipe validates a Recipe according to domain rules.
//
// Validation rules:
//   - Title must not be empty
//   - At least one ingredient must be present
//   - ReadyInMinutes must not be negative
//
// NOT validated:
//   - Cuisines/Diets/DishTypes (empty sets are legal, they just don't index)
//   - ID (0 falls back to a content-derived id during indexing)
func ValidateRecipe(recipe *Recipe) error {
	if recipe == nil {
		return fmt.Errorf("%w: recipe is nil", ErrInvalidRecipe)
	}

	if recipe.Title == "" {
		return fmt.Errorf("%w: %w", ErrInvalidRecipe, ErrEmptyTitle)
	}

	if len(recipe.Ingredients) == 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRecipe, ErrNoIngredients)
	}

	if recipe.ReadyInMinutes < 0 {
		return fmt.Errorf("%w: %w", ErrInvalidRecipe, ErrNegativeTime)
	}

	return nil
}

// ValidateProfile validates a UserProfile according to domain rules.
func ValidateProfile(profile *UserProfile) error {
	if profile == nil {
		return fmt.Errorf("%w: profile is nil", ErrInvalidProfile)
	}

	if profile.UserId == "" {
		return fmt.Errorf("%w: %w", ErrInvalidProfile, ErrEmptyUserId)
	}

	return nil
}
