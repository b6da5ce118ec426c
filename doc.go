// Package wordladder turns a plain word list into a searchable
// one-letter-substitution graph and finds shortest "word ladders"
// between dictionary words.
//
// 🚀 What is wordladder?
//
//	A small, deterministic toolkit that brings together:
//		• wordgraph: Dictionary, candidate Cache and the implicit Graph
//		• ladder: breadth-first shortest-ladder search with hooks
//		• cmd/wordladder: one-shot CLI (dictionary in, ladder out)
//		• cmd/wordladderd: HTTP daemon answering ladder queries
//
// ✨ Why choose wordladder?
//
//   - Deterministic - identical inputs always produce identical ladders
//   - Cache-friendly - substitution candidates persist across runs as JSON
//   - Pure core - no I/O, no goroutines, no hidden global state
//   - Extensible - OnEnqueue/OnDequeue hooks and a MaxDepth budget
//
// Under the hood, everything is organized under these packages:
//
//	wordgraph/        - Dictionary, candidate Cache, implicit substitution Graph
//	ladder/           - BFS shortest-ladder search over a wordgraph.Graph
//	internal/config/  - runtime configuration (defaults, file, env, flags)
//	internal/storage/ - dictionary, cache and result file I/O
//	internal/server/  - HTTP query surface over a shared Graph
//	cmd/              - wordladder (one-shot CLI) and wordladderd (daemon)
//
// Quick ASCII example:
//
//	fore → tore → trre → tree
//
//	each hop rewrites exactly one letter and lands on another
//	dictionary word; BFS guarantees the ladder is as short as possible.
//
//	go get github.com/katalvlaran/wordladder
package wordladder
