package validate

import (
	"errors"
	"fmt"
	"strings"

	"github.com/katalvlaran/borderline/core"
)

// Sentinel errors for graph validation.
var (
	// ErrGraphNil is returned if a nil graph pointer is passed.
	ErrGraphNil = errors.New("validate: graph is nil")

	// ErrUnknownNode indicates the source or target is not a vertex key.
	ErrUnknownNode = errors.New("validate: unknown node")

	// ErrAsymmetricEdge indicates a dangling neighbor reference or a
	// one-way edge in what must be an undirected adjacency.
	ErrAsymmetricEdge = errors.New("validate: asymmetric edge")

	// ErrDisconnected indicates vertices unreachable from the rest of the graph.
	ErrDisconnected = errors.New("validate: graph is not connected")
)

// Check runs CheckEntries, CheckAdjacency and CheckConnectedness and joins
// every violation found. All three always run, so one Check call surfaces
// every problem the graph has; errors.Is resolves each sentinel against
// the joined result. Returns nil when the graph is valid for the query.
func Check(g *core.Graph, source, target string) error {
	if g == nil {
		return ErrGraphNil
	}

	return errors.Join(
		CheckEntries(g, source, target),
		CheckAdjacency(g),
		CheckConnectedness(g),
	)
}

// CheckEntries verifies that source and target are vertex keys of g.
// Both labels are checked; a single call reports both misses.
func CheckEntries(g *core.Graph, source, target string) error {
	if g == nil {
		return ErrGraphNil
	}

	var violations []error
	if !g.HasVertex(source) {
		violations = append(violations, fmt.Errorf("%w: %q is not a valid source", ErrUnknownNode, source))
	}
	if !g.HasVertex(target) {
		violations = append(violations, fmt.Errorf("%w: %q is not a valid target", ErrUnknownNode, target))
	}

	return errors.Join(violations...)
}

// CheckAdjacency verifies closure and symmetry of every neighbor list:
// each referenced label must itself be a vertex, and each edge a-b must
// appear in both adjacency lists. Every violation is collected.
func CheckAdjacency(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}

	var violations []error
	for _, id := range g.VertexIDs() {
		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return err
		}
		for _, nbr := range neighbors {
			if !g.HasVertex(nbr) {
				violations = append(violations,
					fmt.Errorf("%w: %q is referenced by %q but is not a key", ErrAsymmetricEdge, nbr, id))
				continue
			}
			if !g.HasEdge(nbr, id) {
				violations = append(violations,
					fmt.Errorf("%w: %q lists %q but %q does not list %q back", ErrAsymmetricEdge, id, nbr, nbr, id))
			}
		}
	}

	return errors.Join(violations...)
}

// CheckConnectedness runs a BFS from an arbitrary vertex and fails when
// fewer vertices are reached than exist, naming the unreached set.
// Dangling neighbor references are not traversed; CheckAdjacency owns those.
func CheckConnectedness(g *core.Graph) error {
	if g == nil {
		return ErrGraphNil
	}
	ids := g.VertexIDs()
	if len(ids) == 0 {
		return nil
	}

	visited := make(map[string]bool, len(ids))
	queue := []string{ids[0]}
	visited[ids[0]] = true
	for head := 0; head < len(queue); head++ {
		current := queue[head]
		neighbors, err := g.NeighborIDs(current)
		if err != nil {
			return err
		}
		for _, nbr := range neighbors {
			if visited[nbr] || !g.HasVertex(nbr) {
				continue
			}
			visited[nbr] = true
			queue = append(queue, nbr)
		}
	}

	if len(queue) == len(ids) {
		return nil
	}
	unreached := make([]string, 0, len(ids)-len(queue))
	for _, id := range ids {
		if !visited[id] {
			unreached = append(unreached, id)
		}
	}

	return fmt.Errorf("%w: isolated nodes: %s", ErrDisconnected, strings.Join(unreached, ", "))
}
