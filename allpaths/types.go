// Package allpaths defines result types, tunable options and error
// definitions for all-shortest-paths enumeration over a core.Graph.
package allpaths

import (
	"context"
	"errors"
	"strings"
)

// Sentinel errors for enumeration.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("allpaths: graph is nil")

	// ErrSourceNotFound is returned when the source ID is absent.
	ErrSourceNotFound = errors.New("allpaths: source vertex not found")

	// ErrTargetNotFound is returned when the target ID is absent.
	ErrTargetNotFound = errors.New("allpaths: target vertex not found")

	// ErrTargetUnreached is returned when BFS drains the frontier without
	// dequeuing the target. A validated (connected) graph never triggers it.
	ErrTargetUnreached = errors.New("allpaths: target not reached from source")
)

// Path is an ordered vertex sequence from source to target inclusive.
// Its length in edges is len(p) - 1.
type Path []string

// String renders the path as "A -> B -> C".
func (p Path) String() string {
	return strings.Join(p, " -> ")
}

// PathSet is the complete collection of minimum-length paths for one
// query, sorted lexicographically by label sequence.
type PathSet []Path

// Less reports whether path i orders before path j lexicographically.
// Used for the deterministic sort of the returned set.
func (ps PathSet) Less(i, j int) bool {
	a, b := ps[i], ps[j]
	for k := 0; k < len(a) && k < len(b); k++ {
		if a[k] != b[k] {
			return a[k] < b[k]
		}
	}

	return len(a) < len(b)
}

// Result holds the outcome of one enumeration:
//   - Paths:    every shortest path, sorted for determinism.
//   - Distance: the minimum distance in edges.
type Result struct {
	Paths    PathSet
	Distance int
}

// Option configures Enumerate behavior via functional arguments.
type Option func(*Options)

// Options holds parameters and callbacks to customize enumeration.
type Options struct {
	// Ctx allows cancellation and deadlines.
	Ctx context.Context

	// OnEnqueue is called when a vertex enters the frontier.
	// Receives vertex ID and its depth from the source.
	OnEnqueue func(id string, depth int)

	// OnDequeue is called when a vertex leaves the frontier for expansion.
	OnDequeue func(id string, depth int)
}

// DefaultOptions returns Options with sane defaults:
//   - context.Background()
//   - no-op hooks.
func DefaultOptions() Options {
	return Options{
		Ctx:       context.Background(),
		OnEnqueue: func(string, int) {},
		OnDequeue: func(string, int) {},
	}
}

// WithContext sets a custom context for cancellation.
func WithContext(ctx context.Context) Option {
	return func(o *Options) {
		if ctx != nil {
			o.Ctx = ctx
		}
	}
}

// WithOnEnqueue registers a callback to run when a vertex is enqueued.
func WithOnEnqueue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnEnqueue = fn
		}
	}
}

// WithOnDequeue registers a callback to run when a vertex is dequeued.
func WithOnDequeue(fn func(id string, depth int)) Option {
	return func(o *Options) {
		if fn != nil {
			o.OnDequeue = fn
		}
	}
}
