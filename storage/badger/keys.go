package badger

import (
	"encoding/binary"
	"fmt"

	"github.com/forkful/forkful/core"
	"github.com/forkful/forkful/storage"
)

// Key prefixes for different data types
const (
	recipeRecordPrefix  = "rcp"
	profileRecordPrefix = "prf"
	indexPostingPrefix  = "idx"
	indexDocFreqPrefix  = "idf"
	indexTotalPrefix    = "idt"
	currentGenKey       = "gen:current"
)

// makeRecipeKey generates a key for a recipe record by ID within one corpus
// generation. Format: rcp:<generation>:<id>
func makeRecipeKey(gen uint64, id core.ID) []byte {
	prefix := fmt.Sprintf("%s:%d:", recipeRecordPrefix, gen)
	buf := make([]byte, len(prefix)+8)
	offset := copy(buf, prefix)
	// Write in BigEndian order so iteration yields ascending ids
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}

// recipeGenPrefix returns the key prefix covering one generation's recipe
// records.
func recipeGenPrefix(gen uint64) []byte {
	return []byte(fmt.Sprintf("%s:%d:", recipeRecordPrefix, gen))
}

// makeProfileKey generates a key for a user profile. User ids are free text,
// so the key carries a content hash rather than the raw string.
func makeProfileKey(userId string) []byte {
	return []byte(fmt.Sprintf("%s:%d", profileRecordPrefix, core.IDFromContent(userId)))
}

// makePostingKey generates a key for one posting list.
// Format: idx:<generation>:<category>:<term>
func makePostingKey(gen uint64, category storage.IndexCategory, term string) []byte {
	return []byte(fmt.Sprintf("%s:%d:%s:%s", indexPostingPrefix, gen, category, term))
}

// makeDocFreqKey generates a key for one IDF document-frequency entry.
// Format: idf:<generation>:<term>
func makeDocFreqKey(gen uint64, term string) []byte {
	return []byte(fmt.Sprintf("%s:%d:%s", indexDocFreqPrefix, gen, term))
}

// makeTotalDocsKey generates the key holding the snapshot document count.
// Format: idt:<generation>
func makeTotalDocsKey(gen uint64) []byte {
	return []byte(fmt.Sprintf("%s:%d", indexTotalPrefix, gen))
}

// generationPrefixes returns every key prefix belonging to one corpus
// generation, for dropping superseded snapshots.
func generationPrefixes(gen uint64) [][]byte {
	return [][]byte{
		recipeGenPrefix(gen),
		[]byte(fmt.Sprintf("%s:%d:", indexPostingPrefix, gen)),
		[]byte(fmt.Sprintf("%s:%d:", indexDocFreqPrefix, gen)),
		[]byte(fmt.Sprintf("%s:%d", indexTotalPrefix, gen)),
	}
}
