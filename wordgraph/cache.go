package wordgraph

import (
	"encoding/json"
	"fmt"
	"io"
)

// Cache memoizes the full substitution-candidate list per word: for a
// word of length L the list holds exactly AlphabetSize·L strings,
// position-major, 'a'..'z' within each position, identity rewrites
// included. Entries are dictionary-independent and never evicted, so a
// persisted cache can serve a different dictionary on the next run.
// The zero value is an empty cache ready for use; NewCache is the
// conventional constructor.
type Cache struct {
	entries map[string][]string
}

// NewCache returns an empty candidate cache.
func NewCache() *Cache {
	return &Cache{entries: make(map[string][]string)}
}

// DecodeCache reads a cache previously written by Encode: one JSON
// object mapping each word to its candidate list.
// Returns ErrNilReader for a nil reader; decode failures are wrapped.
func DecodeCache(r io.Reader) (*Cache, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	entries := make(map[string][]string)
	if err := json.NewDecoder(r).Decode(&entries); err != nil {
		return nil, fmt.Errorf("wordgraph: decode cache: %w", err)
	}

	return &Cache{entries: entries}, nil
}

// Encode writes the whole cache as a single JSON object.
// Returns ErrNilWriter for a nil writer; encode failures are wrapped.
func (c *Cache) Encode(w io.Writer) error {
	if w == nil {
		return ErrNilWriter
	}
	entries := c.entries
	if entries == nil {
		// a zero-value cache still encodes as an object, not null
		entries = map[string][]string{}
	}
	if err := json.NewEncoder(w).Encode(entries); err != nil {
		return fmt.Errorf("wordgraph: encode cache: %w", err)
	}

	return nil
}

// Candidates returns a copy of the cached substitution list for word and
// whether an entry exists. The copy is safe to retain and mutate.
func (c *Cache) Candidates(word string) ([]string, bool) {
	list, ok := c.entries[word]
	if !ok {
		return nil, false
	}
	out := make([]string, len(list))
	copy(out, list)

	return out, true
}

// Len returns the number of cached words.
func (c *Cache) Len() int { return len(c.entries) }

// put stores the full candidate list for word. Generation is the single
// writer; stored lists are treated as immutable afterwards.
func (c *Cache) put(word string, candidates []string) {
	if c.entries == nil {
		c.entries = make(map[string][]string)
	}
	c.entries[word] = candidates
}
