package core

import "sort"

// AddVertex registers id as a vertex with no neighbors.
// Adding an existing vertex is a no-op.
// Returns ErrEmptyVertexID for the empty string.
//
// Complexity: O(1)
func (g *Graph) AddVertex(id string) error {
	if id == "" {
		return ErrEmptyVertexID
	}
	if _, ok := g.vertices[id]; ok {
		return nil
	}
	g.vertices[id] = struct{}{}
	g.adjacency[id] = make(map[string]struct{})

	return nil
}

// AddEdge inserts the undirected edge a-b, auto-adding either endpoint.
// Both directions are recorded, so graphs built exclusively through
// AddEdge always satisfy the symmetry invariant.
//
// Complexity: O(1) amortized
func (g *Graph) AddEdge(a, b string) error {
	if a == "" || b == "" {
		return ErrEmptyVertexID
	}
	if err := g.AddVertex(a); err != nil {
		return err
	}
	if err := g.AddVertex(b); err != nil {
		return err
	}
	g.adjacency[a][b] = struct{}{}
	g.adjacency[b][a] = struct{}{}

	return nil
}

// FromAdjacency builds a Graph whose vertex set is exactly the key set of
// adj and whose neighbor lists are the values verbatim. No mirror edges are
// inserted and no vertices are created for referenced-but-missing labels:
// asymmetric or unclosed input stays asymmetric or unclosed, which is what
// lets validate report it.
//
// Complexity: O(V + E)
func FromAdjacency(adj map[string][]string) *Graph {
	g := NewGraph()
	for id, neighbors := range adj {
		if id == "" {
			continue
		}
		_ = g.AddVertex(id)
		for _, nbr := range neighbors {
			if nbr == "" {
				continue
			}
			g.adjacency[id][nbr] = struct{}{}
		}
	}

	return g
}

// HasVertex reports whether id is registered as a vertex key.
//
// Complexity: O(1)
func (g *Graph) HasVertex(id string) bool {
	_, ok := g.vertices[id]
	return ok
}

// HasEdge reports whether b appears in a's neighbor list.
// The check is directional on purpose: validate uses it to probe
// for missing mirror edges.
//
// Complexity: O(1)
func (g *Graph) HasEdge(a, b string) bool {
	nbrs, ok := g.adjacency[a]
	if !ok {
		return false
	}
	_, ok = nbrs[b]

	return ok
}

// NeighborIDs returns the labels referenced by id's neighbor list,
// sorted and deduplicated. The result may contain labels that are not
// vertices when the graph was built from unclosed adjacency data.
// Returns ErrVertexNotFound if id is not a vertex.
//
// Complexity: O(d log d) where d is the out-degree of id.
func (g *Graph) NeighborIDs(id string) ([]string, error) {
	if !g.HasVertex(id) {
		return nil, ErrVertexNotFound
	}
	nbrs := g.adjacency[id]
	out := make([]string, 0, len(nbrs))
	for nbr := range nbrs {
		out = append(out, nbr)
	}
	sort.Strings(out)

	return out, nil
}

// VertexIDs returns all vertex labels in sorted order.
//
// Complexity: O(V log V)
func (g *Graph) VertexIDs() []string {
	out := make([]string, 0, len(g.vertices))
	for id := range g.vertices {
		out = append(out, id)
	}
	sort.Strings(out)

	return out
}

// VertexCount returns the number of vertices.
//
// Complexity: O(1)
func (g *Graph) VertexCount() int { return len(g.vertices) }

// EdgeCount returns the number of directed neighbor references.
// A symmetric undirected edge contributes two.
//
// Complexity: O(V)
func (g *Graph) EdgeCount() int {
	var n int
	for _, nbrs := range g.adjacency {
		n += len(nbrs)
	}

	return n
}
