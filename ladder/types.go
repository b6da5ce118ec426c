// Package ladder provides tunable options and error definitions
// for shortest-ladder search over a wordgraph.Graph.
package ladder

import (
	"errors"
	"fmt"
)

// Sentinel errors for ladder search.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("ladder: graph is nil")

	// ErrOptionViolation is returned when an invalid Option is supplied.
	ErrOptionViolation = errors.New("ladder: invalid option supplied")
)

// Option configures search behavior via functional arguments.
// If an Option is invalid (e.g. negative depth), it is recorded
// internally and surfaced as ErrOptionViolation when Shortest is invoked.
type Option func(*SearchOptions)

// SearchOptions holds parameters and callbacks to customize the search.
type SearchOptions struct {
	// OnEnqueue is called when a word joins the frontier.
	// Receives the word and its depth (letter changes) from the start.
	OnEnqueue func(word string, depth int)

	// OnDequeue is called immediately before a word is expanded.
	OnDequeue func(word string, depth int)

	// MaxDepth, if > 0, stops exploring beyond this many letter changes.
	// A value of 0 explicitly disables any depth limit.
	MaxDepth int

	// internal error recorded during option parsing
	err error
}

// DefaultOptions returns SearchOptions with sane defaults:
//   - no depth limit (MaxDepth == 0)
//   - no-op hooks (OnEnqueue, OnDequeue)
//   - error channel clear.
func DefaultOptions() SearchOptions {
	return SearchOptions{
		OnEnqueue: func(string, int) {},
		OnDequeue: func(string, int) {},
		MaxDepth:  0,
		err:       nil,
	}
}

// WithOnEnqueue registers a callback to run on enqueue.
func WithOnEnqueue(fn func(word string, depth int)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run on dequeue.
func WithOnDequeue(fn func(word string, depth int)) Option {
	return func(o *SearchOptions) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}

// WithMaxDepth stops the search at the given depth.
//
//	d > 0: limit to d letter changes from the start
//	d == 0: explicit no depth limit
//	d < 0: invalid option → ErrOptionViolation
func WithMaxDepth(d int) Option {
	return func(o *SearchOptions) {
		switch {
		case d < 0:
			o.err = fmt.Errorf("%w: MaxDepth cannot be negative (%d)", ErrOptionViolation, d)
		case d == 0:
			// explicit "no limit"
			o.MaxDepth = 0
		default:
			o.MaxDepth = d
		}
	}
}

// Result holds the outcome of a ladder search:
//   - Path: start→end word sequence, nil when Found is false.
//   - Found: whether end was dequeued.
//   - Visited: number of words dequeued before termination; on a failed
//     search this is the size of the explored component.
type Result struct {
	Path    []string
	Found   bool
	Visited int
}
