package core

import "errors"

// Sentinel errors for core graph operations.
var (
	// ErrEmptyVertexID indicates an empty string was used as a vertex label.
	ErrEmptyVertexID = errors.New("core: vertex ID is empty")

	// ErrVertexNotFound indicates an operation referenced a non-existent vertex.
	ErrVertexNotFound = errors.New("core: vertex not found")
)

// Graph is the adjacency structure shared by the validator, the enumerator
// and the game.
//
// vertices holds every label registered as a key; adjacency holds the raw
// neighbor references per key. A label may appear inside an adjacency list
// without being a vertex (a dangling reference); FromAdjacency keeps such
// shapes intact so validate.CheckAdjacency can report them.
type Graph struct {
	vertices  map[string]struct{}
	adjacency map[string]map[string]struct{}
}

// NewGraph returns an empty Graph.
//
// Complexity: O(1)
func NewGraph() *Graph {
	return &Graph{
		vertices:  make(map[string]struct{}),
		adjacency: make(map[string]map[string]struct{}),
	}
}
