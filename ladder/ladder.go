// Package ladder runs breadth-first shortest-ladder search over the
// implicit substitution graph, returning the path and search statistics.
package ladder

import (
	"github.com/katalvlaran/wordladder/wordgraph"
)

// queueItem pairs a frontier word with its depth from the start.
type queueItem struct {
	word  string
	depth int
}

// walker encapsulates mutable search state.
type walker struct {
	graph   *wordgraph.Graph
	opts    SearchOptions
	queue   []queueItem
	visited map[string]bool
	parent  map[string]string
	res     *Result
}

// Shortest runs breadth-first search on g from start toward end,
// applying any number of functional Options.
// A missing connection is not an error: the Result reports Found=false
// with a nil Path. Returns ErrGraphNil for a nil graph and
// ErrOptionViolation for invalid options.
func Shortest(g *wordgraph.Graph, start, end string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	// Build options and catch any invalid ones immediately
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if o.err != nil {
		return nil, o.err
	}

	w := &walker{
		graph:   g,
		opts:    o,
		queue:   make([]queueItem, 0, 1),
		visited: make(map[string]bool),
		parent:  make(map[string]string),
		res:     &Result{},
	}

	// Seed queue with the start word (no parent)
	w.enqueue(start, 0, "")
	w.loop(end)

	return w.res, nil
}

// enqueue marks word visited at depth d, records its parent,
// calls OnEnqueue, and appends it to the queue.
func (w *walker) enqueue(word string, d int, parent string) {
	w.visited[word] = true
	if parent != "" {
		w.parent[word] = parent
	}
	w.opts.OnEnqueue(word, d)
	w.queue = append(w.queue, queueItem{word: word, depth: d})
}

// loop processes the queue until end is dequeued or the component
// reachable from the start is exhausted.
func (w *walker) loop(end string) {
	for len(w.queue) > 0 {
		item := w.dequeue()
		if item.word == end {
			w.res.Found = true
			w.res.Path = w.pathTo(item.word)
			return
		}
		w.enqueueNeighbors(item)
	}
}

// dequeue pops the oldest item, counts it as visited, invokes OnDequeue,
// and returns it.
func (w *walker) dequeue() queueItem {
	item := w.queue[0]
	w.queue = w.queue[1:]
	w.res.Visited++
	w.opts.OnDequeue(item.word, item.depth)

	return item
}

// enqueueNeighbors applies the MaxDepth budget and enqueues every
// unseen neighbor of item. The budget check runs before neighbor
// generation, so words at the depth boundary are never expanded and
// never touch the candidate cache.
func (w *walker) enqueueNeighbors(item queueItem) {
	nextDepth := item.depth + 1
	if w.opts.MaxDepth > 0 && nextDepth > w.opts.MaxDepth {
		return
	}
	for _, nbr := range w.graph.Neighbors(item.word) {
		if !w.visited[nbr] {
			w.enqueue(nbr, nextDepth, item.word)
		}
	}
}

// pathTo reconstructs the start→dest sequence from parent links.
func (w *walker) pathTo(dest string) []string {
	// build reversed path
	path := []string{}
	for cur := dest; ; {
		path = append(path, cur)
		prev, ok := w.parent[cur]
		if !ok {
			break
		}
		cur = prev
	}
	// reverse to get start → dest
	for i, j := 0, len(path)-1; i < j; i, j = i+1, j-1 {
		path[i], path[j] = path[j], path[i]
	}

	return path
}
