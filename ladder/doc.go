// Package ladder finds shortest word ladders: breadth-first search over
// the implicit one-letter-substitution graph of package wordgraph.
//
// What
//
//   - Shortest(g, start, end) explores words in non-decreasing number of
//     letter changes from start and stops at the first dequeue of end.
//   - Returns a Result containing:
//   - Path: the start→end word sequence (nil when not found)
//   - Found: whether end was reached
//   - Visited: words dequeued before termination
//   - Supports functional hooks at two stages:
//   - OnEnqueue (when a word joins the frontier)
//   - OnDequeue (immediately before a word is expanded)
//   - Honors MaxDepth limit (d>0) or explicit "no limit" (d==0).
//
// Why
//
//   - BFS layers the frontier by edit distance, so the first time end is
//     dequeued its path is provably minimal.
//   - Parent links instead of per-path slices keep memory at O(words
//     enqueued) even when the frontier is wide.
//
// Determinism
//
//	wordgraph.Graph.Neighbors returns neighbors in candidate order and the
//	queue is strictly FIFO, so for a given dictionary the search visits
//	words in one reproducible sequence and returns one reproducible path.
//
// Termination
//
//	Every word is enqueued at most once (visited is marked at enqueue
//	time) and each dequeue either terminates or shrinks the unvisited
//	reachable set, so the search always halts, even with no reachable
//	target. There is no cancellation mechanism: an exhaustive miss on a
//	large dictionary runs to completion, bounded only by WithMaxDepth.
//
// Complexity (V = reachable words, L = word length)
//
//   - Time:   O(V·AlphabetSize·L) neighbor lookups
//   - Memory: O(V) for queue, visited set and parent links
//
// Usage
//
//	res, err := ladder.Shortest(g, "fore", "tree")
//	if err != nil {
//	    // ErrGraphNil or ErrOptionViolation
//	}
//	if !res.Found {
//	    // no connecting ladder; res.Visited sizes the explored component
//	}
//	fmt.Println(res.Path) // [fore tore trre tree]
//
// Options
//
//   - DefaultOptions(): no-op hooks, no depth limit.
//   - WithMaxDepth(d):   stop exploring beyond d letter changes (>0).
//   - WithOnEnqueue(fn): hook when a word is enqueued.
//   - WithOnDequeue(fn): hook immediately before a word is expanded.
//
// Errors
//
//   - ErrGraphNil        if the graph pointer is nil.
//   - ErrOptionViolation if an invalid Option was supplied (e.g. negative
//     MaxDepth).
//
// Membership of start and end is not validated here: a start outside the
// dictionary still ladders through dictionary words, and an end outside
// the dictionary is simply never found. Front ends validate membership
// before searching.
package ladder
