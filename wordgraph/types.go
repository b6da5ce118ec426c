// Package wordgraph: shared constants, sentinel errors and construction
// options for the implicit one-letter-substitution graph.
package wordgraph

import "errors"

// AlphabetSize is the number of substitution letters tried per position.
const AlphabetSize = 26

// alphabet enumerates the substitution letters in candidate order.
const alphabet = "abcdefghijklmnopqrstuvwxyz"

// Sentinel errors for graph construction and (de)serialization.
var (
	// ErrNilDictionary is returned when New receives a nil dictionary.
	ErrNilDictionary = errors.New("wordgraph: dictionary is nil")

	// ErrNilReader is returned when a decode helper receives a nil reader.
	ErrNilReader = errors.New("wordgraph: reader is nil")

	// ErrNilWriter is returned when Cache.Encode receives a nil writer.
	ErrNilWriter = errors.New("wordgraph: writer is nil")
)

// GraphOption configures a Graph during New.
type GraphOption func(*Graph)

// WithCache attaches a previously decoded candidate cache, priming
// Neighbors with substitution lists computed by earlier runs.
// The Graph owns the cache from then on; a nil cache is ignored.
func WithCache(c *Cache) GraphOption {
	return func(g *Graph) {
		if c != nil {
			g.cache = c
		}
	}
}
