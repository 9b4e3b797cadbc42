package allpaths_test

import (
	"fmt"
	"testing"

	"github.com/katalvlaran/borderline/allpaths"
	"github.com/katalvlaran/borderline/core"
)

// benchGrid builds an n x n lattice; corner-to-corner enumeration has a
// large but bounded number of shortest paths.
func benchGrid(n int) *core.Graph {
	g := core.NewGraph()
	id := func(r, c int) string { return fmt.Sprintf("r%02dc%02d", r, c) }
	for r := 0; r < n; r++ {
		for c := 0; c < n; c++ {
			if c+1 < n {
				_ = g.AddEdge(id(r, c), id(r, c+1))
			}
			if r+1 < n {
				_ = g.AddEdge(id(r, c), id(r+1, c))
			}
		}
	}

	return g
}

func BenchmarkEnumerate_Grid6(b *testing.B) {
	g := benchGrid(6)
	source, target := "r00c00", "r05c05"
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := allpaths.Enumerate(g, source, target); err != nil {
			b.Fatal(err)
		}
	}
}
