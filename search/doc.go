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


// Package search serves ranked recipe queries.
//
// The Searcher type runs a four-stage pipeline per call:
//   - Retrieval: hard filters AND-combined across categories, free-text
//     terms OR-combined over the title and ingredient indices, bounded by a
//     candidate cap
//   - Allergen exclusion: unconditional removal of any candidate whose
//     ingredients match a user allergen
//   - Scoring: six independent signals (IDF title relevance, time-of-day
//     bonus, ingredient coverage, and the category boosters)
//   - Ranking: stable descending sort, truncated to the result limit
//
// Serving is read-only against a published index snapshot and safe for
// unbounded concurrent callers.
package search
