// Package allpaths implements all-shortest-paths enumeration:
// multi-parent BFS distance discovery followed by exhaustive backward
// reconstruction of every minimum-length path.
package allpaths

import (
	"context"
	"fmt"
	"sort"

	"github.com/katalvlaran/borderline/core"
)

// Enumerate returns every shortest path from source to target in g,
// applying any number of functional Options.
//
// Returns ErrGraphNil, ErrSourceNotFound or ErrTargetNotFound for invalid
// input, ErrTargetUnreached if the frontier drains before the target is
// dequeued (impossible on a validated, connected graph), or the context
// error on cancellation.
//
// source == target is the defined degenerate case: an empty PathSet and
// distance 0, with no BFS run at all.
func Enumerate(g *core.Graph, source, target string, opts ...Option) (*Result, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if !g.HasVertex(source) {
		return nil, fmt.Errorf("%w: %q", ErrSourceNotFound, source)
	}
	if !g.HasVertex(target) {
		return nil, fmt.Errorf("%w: %q", ErrTargetNotFound, target)
	}
	if source == target {
		return &Result{Paths: PathSet{}, Distance: 0}, nil
	}

	w := &walker{
		graph:   g,
		opts:    o,
		ctx:     o.Ctx,
		source:  source,
		target:  target,
		visited: make(map[string]bool, g.VertexCount()),
		inQueue: make(map[string]bool, g.VertexCount()),
		depth:   make(map[string]int, g.VertexCount()),
		parents: make(map[string][]string, g.VertexCount()),
	}
	if err := w.search(); err != nil {
		return nil, err
	}

	distance := w.measure()
	paths := w.reconstruct(distance)
	sort.Slice(paths, paths.Less)

	return &Result{Paths: paths, Distance: distance}, nil
}

// walker encapsulates mutable state for a single enumeration.
type walker struct {
	graph  *core.Graph
	opts   Options
	ctx    context.Context
	source string
	target string

	queue   []string        // FIFO frontier backed by a slice
	head    int             // index of the next element to dequeue
	visited map[string]bool // marked on dequeue, not on enqueue
	inQueue map[string]bool // frontier membership, guards duplicate enqueues
	depth   map[string]int  // BFS layer per vertex, for hooks
	parents map[string][]string
}

// search runs the multi-parent BFS until the target is dequeued.
//
// Two guards are deliberately distinct: inQueue keeps a vertex from
// entering the frontier twice, while visited (set on dequeue) keeps
// already-expanded vertices from accumulating parents. A vertex that is
// enqueued but not yet dequeued still collects additional same-layer
// parents, which is what makes the enumeration exhaustive.
func (w *walker) search() error {
	w.enqueue(w.source, 0)
	for w.head < len(w.queue) {
		select {
		case <-w.ctx.Done():
			return w.ctx.Err()
		default:
		}

		current := w.dequeue()
		if current == w.target {
			return nil
		}
		w.visited[current] = true
		if err := w.expand(current); err != nil {
			return err
		}
	}

	return fmt.Errorf("%w: %q -> %q", ErrTargetUnreached, w.source, w.target)
}

// expand records current as a parent of each unexpanded neighbor and
// enqueues neighbors not already in the frontier.
func (w *walker) expand(current string) error {
	neighbors, err := w.graph.NeighborIDs(current)
	if err != nil {
		return fmt.Errorf("allpaths: neighbors of %q: %w", current, err)
	}
	next := w.depth[current] + 1
	for _, nbr := range neighbors {
		if w.visited[nbr] || nbr == w.source {
			continue
		}
		w.parents[nbr] = append(w.parents[nbr], current)
		if !w.inQueue[nbr] {
			w.enqueue(nbr, next)
		}
	}

	return nil
}

// enqueue appends id to the frontier and fires OnEnqueue.
func (w *walker) enqueue(id string, d int) {
	w.inQueue[id] = true
	w.depth[id] = d
	w.opts.OnEnqueue(id, d)
	w.queue = append(w.queue, id)
}

// dequeue pops the frontier head and fires OnDequeue.
func (w *walker) dequeue() string {
	id := w.queue[w.head]
	w.head++
	w.opts.OnDequeue(id, w.depth[id])

	return id
}

// measure walks a single parent chain from target back to source and
// returns its length. Every chain of first parents descends one BFS layer
// per step, so any one of them measures the true minimum distance.
func (w *walker) measure() int {
	var d int
	for cur := w.target; cur != w.source; cur = w.parents[cur][0] {
		d++
	}

	return d
}

// reconstruct recurses backward from target over the parent sets,
// branching at every parent and pruning any partial path that can no
// longer reach source within the minimum distance. Same-layer parent
// links recorded during the final BFS layer produce over-length branches;
// the pruning is what discards them.
func (w *walker) reconstruct(distance int) PathSet {
	paths := make(PathSet, 0, len(w.parents[w.target]))
	w.collect(w.target, Path{w.target}, distance, &paths)

	return paths
}

// collect extends trail (target-first, reversed) through node's parents.
func (w *walker) collect(node string, trail Path, distance int, out *PathSet) {
	if node == w.source {
		if len(trail) == distance+1 {
			completed := make(Path, len(trail))
			for i, id := range trail {
				completed[len(trail)-1-i] = id
			}
			*out = append(*out, completed)
		}

		return
	}
	if len(trail) > distance {
		return
	}
	for _, parent := range w.parents[node] {
		branch := make(Path, len(trail), len(trail)+1)
		copy(branch, trail)
		w.collect(parent, append(branch, parent), distance, out)
	}
}
