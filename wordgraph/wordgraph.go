// Package wordgraph computes one-letter-substitution neighborhoods over
// a Dictionary, memoizing candidate lists in a Cache.
package wordgraph

// Graph is the implicit one-letter-substitution graph over a Dictionary.
// Edges are never materialized: Neighbors derives them on demand from
// cached candidate lists. Not safe for concurrent use, because Neighbors
// writes to the cache on a miss.
type Graph struct {
	dict  *Dictionary
	cache *Cache
}

// New builds a Graph over dict, applying any number of GraphOptions.
// Without WithCache the Graph starts from an empty candidate cache.
// Returns ErrNilDictionary when dict is nil.
func New(dict *Dictionary, opts ...GraphOption) (*Graph, error) {
	if dict == nil {
		return nil, ErrNilDictionary
	}
	g := &Graph{dict: dict}
	for _, opt := range opts {
		opt(g)
	}
	if g.cache == nil {
		g.cache = NewCache()
	}

	return g, nil
}

// Dictionary returns the dictionary the graph was built over.
func (g *Graph) Dictionary() *Dictionary { return g.dict }

// Cache returns the live candidate cache, typically to hand it to
// Cache.Encode for persistence once searching is done.
func (g *Graph) Cache() *Cache { return g.cache }

// Neighbors returns every dictionary word reachable from word by
// substituting exactly one letter, in candidate order (position-major,
// then 'a'..'z' within a position). The result never contains word
// itself and never contains duplicates; it is nil when no neighbor
// exists. A cache hit filters the stored candidates; a miss generates
// and caches them first.
// Complexity: O(AlphabetSize·len(word)) membership lookups.
func (g *Graph) Neighbors(word string) []string {
	candidates, ok := g.cache.entries[word]
	if !ok {
		candidates = g.generate(word)
	}

	return g.filter(word, candidates)
}

// generate enumerates all AlphabetSize·len(word) single-position
// rewrites of word (identity included) and caches the full list.
func (g *Graph) generate(word string) []string {
	candidates := make([]string, 0, AlphabetSize*len(word))
	buf := []byte(word)
	for i := range buf {
		orig := buf[i]
		for j := 0; j < AlphabetSize; j++ {
			buf[i] = alphabet[j]
			candidates = append(candidates, string(buf))
		}
		buf[i] = orig
	}
	g.cache.put(word, candidates)

	return candidates
}

// filter keeps the dictionary members of candidates, dropping word
// itself. Non-identity candidates are pairwise distinct by construction,
// so the result needs no dedup pass.
func (g *Graph) filter(word string, candidates []string) []string {
	var neighbors []string
	for _, cand := range candidates {
		if cand == word {
			continue
		}
		if g.dict.Contains(cand) {
			neighbors = append(neighbors, cand)
		}
	}

	return neighbors
}
