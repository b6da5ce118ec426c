// Package wordgraph models a word list as an implicit graph whose edges
// connect words differing in exactly one letter, generating neighbors on
// demand instead of materializing adjacency.
//
// What
//
//   - Dictionary: an immutable set of lowercase words with O(1) membership.
//   - Cache: per-word substitution candidates (every single-position
//     rewrite, identity included, exactly AlphabetSize*len(word) strings),
//     dictionary-independent and reusable across runs via JSON.
//   - Graph: binds a Dictionary to a Cache and answers Neighbors(word),
//     the dictionary members one letter away from word.
//
// Why
//
//   - Word-ladder search needs adjacency for a handful of words on the
//     path frontier, not for the whole dictionary; generating on demand
//     keeps startup O(1) regardless of dictionary size.
//   - Candidate lists depend only on the word itself, so one persisted
//     cache keeps paying off across runs and across dictionaries.
//
// Determinism
//
//	Candidates are enumerated position-major, then 'a'..'z' within each
//	position; the cache stores that order and filtering preserves it, so
//	Neighbors is fully reproducible for a given dictionary.
//
// Complexity (L = len(word), N = dictionary size)
//
//   - Neighbors (cache miss): O(AlphabetSize·L) candidate builds + lookups
//   - Neighbors (cache hit):  O(AlphabetSize·L) lookups, zero allocations
//     beyond the result slice
//   - Memory: O(AlphabetSize·L) per cached word
//
// Usage
//
//	dict := wordgraph.NewDictionary("tree", "free", "trre")
//	g, err := wordgraph.New(dict)
//	if err != nil {
//	    // ErrNilDictionary
//	}
//	g.Neighbors("tree") // [free trre]
//
//	// Persist candidates for the next run:
//	var buf bytes.Buffer
//	if err := g.Cache().Encode(&buf); err != nil { ... }
//
//	// And prime a later Graph with them:
//	cache, _ := wordgraph.DecodeCache(&buf)
//	g2, _ := wordgraph.New(dict, wordgraph.WithCache(cache))
//
// Options
//
//   - WithCache(c): attach a previously decoded candidate cache; the
//     Graph owns it from then on (a nil cache is ignored).
//
// Errors
//
//   - ErrNilDictionary  if New receives a nil dictionary.
//   - ErrNilReader      if ReadDictionary or DecodeCache receives nil.
//   - ErrNilWriter      if Cache.Encode receives nil.
//
// A Graph is not safe for concurrent use: Neighbors mutates the cache.
// Serialize searches externally when sharing one Graph.
package wordgraph
