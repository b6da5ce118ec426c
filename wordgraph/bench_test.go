package wordgraph_test

import (
	"bytes"
	"testing"

	"github.com/katalvlaran/wordladder/wordgraph"
)

// denseWords enumerates every 3-letter word over the first k letters,
// giving a dense dictionary where most candidates are members.
func denseWords(k int) []string {
	words := make([]string, 0, k*k*k)
	for a := byte('a'); a < 'a'+byte(k); a++ {
		for b := byte('a'); b < 'a'+byte(k); b++ {
			for c := byte('a'); c < 'a'+byte(k); c++ {
				words = append(words, string([]byte{a, b, c}))
			}
		}
	}
	return words
}

// BenchmarkGraph_NeighborsCold measures first-call cost: candidate
// generation plus dictionary filtering.
func BenchmarkGraph_NeighborsCold(b *testing.B) {
	dict := wordgraph.NewDictionary(denseWords(10)...)

	b.ReportAllocs()
	b.SetBytes(int64(wordgraph.AlphabetSize * 3))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		g, _ := wordgraph.New(dict)
		_ = g.Neighbors("aaa")
	}
}

// BenchmarkGraph_NeighborsWarm measures the steady state: cached
// candidates filtered against the dictionary.
func BenchmarkGraph_NeighborsWarm(b *testing.B) {
	dict := wordgraph.NewDictionary(denseWords(10)...)
	g, _ := wordgraph.New(dict)
	g.Neighbors("aaa") // prime the cache

	b.ReportAllocs()
	b.SetBytes(int64(wordgraph.AlphabetSize * 3))
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		_ = g.Neighbors("aaa")
	}
}

// BenchmarkCache_EncodeDecode measures whole-document persistence for a
// cache covering the full dense dictionary.
func BenchmarkCache_EncodeDecode(b *testing.B) {
	dict := wordgraph.NewDictionary(denseWords(6)...)
	g, _ := wordgraph.New(dict)
	for _, w := range dict.Words() {
		g.Neighbors(w)
	}

	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		var buf bytes.Buffer
		if err := g.Cache().Encode(&buf); err != nil {
			b.Fatal(err)
		}
		if _, err := wordgraph.DecodeCache(&buf); err != nil {
			b.Fatal(err)
		}
	}
}
