package wordgraph

import (
	"bufio"
	"fmt"
	"io"
	"sort"
	"strings"
)

// Dictionary is an immutable set of lowercase words with O(1) membership.
// Constructors normalize input (trim surrounding space, lowercase); after
// construction the set never changes, so lookups need no locking.
type Dictionary struct {
	words map[string]struct{}
}

// NewDictionary builds a Dictionary from the given words.
// Each word is trimmed and lowercased; empty entries are skipped.
// Complexity: O(total input length).
func NewDictionary(words ...string) *Dictionary {
	d := &Dictionary{words: make(map[string]struct{}, len(words))}
	for _, w := range words {
		d.add(w)
	}

	return d
}

// ReadDictionary builds a Dictionary from line-delimited text: one word
// per line, trimmed and lowercased, blank lines skipped.
// Returns ErrNilReader for a nil reader; scanner failures are wrapped.
func ReadDictionary(r io.Reader) (*Dictionary, error) {
	if r == nil {
		return nil, ErrNilReader
	}
	d := &Dictionary{words: make(map[string]struct{})}
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		d.add(sc.Text())
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("wordgraph: read dictionary: %w", err)
	}

	return d, nil
}

// add normalizes w and inserts it; blank input is a no-op.
func (d *Dictionary) add(w string) {
	w = strings.ToLower(strings.TrimSpace(w))
	if w == "" {
		return
	}
	d.words[w] = struct{}{}
}

// Contains reports whether word is a dictionary member.
// Words are stored lowercase; callers normalize before asking.
func (d *Dictionary) Contains(word string) bool {
	_, ok := d.words[word]
	return ok
}

// Len returns the number of distinct words.
func (d *Dictionary) Len() int { return len(d.words) }

// Words returns all dictionary words in sorted order.
// The slice is fresh; callers may retain or mutate it freely.
func (d *Dictionary) Words() []string {
	out := make([]string, 0, len(d.words))
	for w := range d.words {
		out = append(out, w)
	}
	sort.Strings(out)

	return out
}
