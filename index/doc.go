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


// Package index builds the inverted indices and IDF statistics from a recipe
// corpus.
//
// Indexing is an offline batch job: LoadCorpus parses the corpus (fatal on
// unreadable or unparsable input), Builder.Build analyzes every recipe
// concurrently and finalizes an immutable snapshot, and the storage layer
// publishes that snapshot as a full atomic replacement of any prior index.
package index
