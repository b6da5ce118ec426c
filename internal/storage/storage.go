// Package storage handles the file boundary of the wordladder tools:
// loading dictionaries, loading and persisting the candidate cache, and
// writing result ladders. The library core stays free of I/O.
package storage

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strings"

	"github.com/katalvlaran/wordladder/wordgraph"
)

// LoadDictionary reads a line-delimited word list from path.
func LoadDictionary(path string) (*wordgraph.Dictionary, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("storage: open dictionary: %w", err)
	}
	defer f.Close()

	return wordgraph.ReadDictionary(f)
}

// LoadCache decodes the candidate cache persisted at path.
// A missing file is a cold start and yields an empty cache, not an
// error; any other failure (including malformed JSON) propagates.
func LoadCache(path string) (*wordgraph.Cache, error) {
	f, err := os.Open(path)
	if errors.Is(err, fs.ErrNotExist) {
		return wordgraph.NewCache(), nil
	}
	if err != nil {
		return nil, fmt.Errorf("storage: open cache: %w", err)
	}
	defer f.Close()

	return wordgraph.DecodeCache(f)
}

// SaveCache overwrites path with the whole cache as one JSON document.
func SaveCache(path string, c *wordgraph.Cache) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("storage: create cache: %w", err)
	}
	if err := c.Encode(f); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("storage: close cache: %w", err)
	}

	return nil
}

// SavePath writes a found ladder to path, one word per line.
func SavePath(path string, words []string) error {
	var b strings.Builder
	for _, w := range words {
		b.WriteString(w)
		b.WriteByte('\n')
	}
	if err := os.WriteFile(path, []byte(b.String()), 0o644); err != nil {
		return fmt.Errorf("storage: write result: %w", err)
	}

	return nil
}
