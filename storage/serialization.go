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


package storage

import (
	"github.com/forkful/forkful/core"
	"github.com/mus-format/mus-go/varint"
)

// MarshalRecipe serializes a Recipe to bytes.
func MarshalRecipe(recipe *core.Recipe) []byte {
	buf := make([]byte, core.RecipeMUS.Size(*recipe))
	core.RecipeMUS.Marshal(*recipe, buf)
	return buf
}

// UnmarshalRecipe deserializes a Recipe from bytes.
func UnmarshalRecipe(data []byte) (*core.Recipe, error) {
	recipe, _, err := core.RecipeMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &recipe, nil
}

// MarshalProfile serializes a UserProfile to bytes.
func MarshalProfile(profile *core.UserProfile) []byte {
	buf := make([]byte, core.UserProfileMUS.Size(*profile))
	core.UserProfileMUS.Marshal(*profile, buf)
	return buf
}

// UnmarshalProfile deserializes a UserProfile from bytes.
func UnmarshalProfile(data []byte) (*core.UserProfile, error) {
	profile, _, err := core.UserProfileMUS.Unmarshal(data)
	if err != nil {
		return nil, err
	}
	return &profile, nil
}

// MarshalPostings serializes a posting list to bytes.
func MarshalPostings(ids []core.ID) []byte {
	buf := make([]byte, core.IDSliceMUS.Size(ids))
	core.IDSliceMUS.Marshal(ids, buf)
	return buf
}

// UnmarshalPostings deserializes a posting list from bytes.
func UnmarshalPostings(data []byte) ([]core.ID, error) {
	ids, _, err := core.IDSliceMUS.Unmarshal(data)
	return ids, err
}

// MarshalCount serializes a document count to bytes.
func MarshalCount(count int) []byte {
	buf := make([]byte, varint.Int.Size(count))
	varint.Int.Marshal(count, buf)
	return buf
}

// UnmarshalCount deserializes a document count from bytes.
func UnmarshalCount(data []byte) (int, error) {
	count, _, err := varint.Int.Unmarshal(data)
	return count, err
}
