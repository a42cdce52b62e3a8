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


package badger

import "github.com/forkful/forkful/storage"

// NewMemoryRepositories creates in-memory recipe, index and profile
// repositories for testing.
// Caller must close the repos and the backend when done.
func NewMemoryRepositories() (storage.RecipeRepository, storage.IndexRepository, storage.ProfileRepository, *Backend, error) {
	backend, err := OpenBackend("", true)
	if err != nil {
		return nil, nil, nil, nil, err
	}

	return NewRecipeRepository(backend), NewIndexRepository(backend), NewProfileRepository(backend), backend, nil
}
