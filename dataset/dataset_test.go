package dataset_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/borderline/dataset"
)

// TestParse_Records covers the basic record shape, including a record
// with no neighbors and surrounding whitespace.
func TestParse_Records(t *testing.T) {
	in := strings.NewReader(
		"France,Spain,Belgium\n" +
			"Spain,France,Portugal\n" +
			"Portugal,Spain\n" +
			"Belgium, France\n" +
			"Iceland\n",
	)
	adj, err := dataset.Parse(in)
	require.NoError(t, err)

	assert.Equal(t, []string{"Spain", "Belgium"}, adj["France"])
	assert.Equal(t, []string{"France"}, adj["Belgium"])
	assert.Empty(t, adj["Iceland"])
	assert.Len(t, adj, 5)
}

// TestParse_Empty rejects input with no records.
func TestParse_Empty(t *testing.T) {
	_, err := dataset.Parse(strings.NewReader(""))
	assert.ErrorIs(t, err, dataset.ErrNoRecords)
}

// TestParse_DuplicateLabel rejects a label appearing on two records.
func TestParse_DuplicateLabel(t *testing.T) {
	in := strings.NewReader("A,B\nB,A\nA,C\n")
	_, err := dataset.Parse(in)
	assert.ErrorIs(t, err, dataset.ErrDuplicateLabel)
	assert.Contains(t, err.Error(), `"A"`)
}

// TestParse_EmptyLabel rejects a record with a blank first field.
func TestParse_EmptyLabel(t *testing.T) {
	in := strings.NewReader("A,B\n,A\n")
	_, err := dataset.Parse(in)
	assert.ErrorIs(t, err, dataset.ErrEmptyLabel)
}

// TestLoadAndGraph round-trips a file on disk into a core.Graph.
func TestLoadAndGraph(t *testing.T) {
	path := filepath.Join(t.TempDir(), "countries.csv")
	require.NoError(t, os.WriteFile(path, []byte("X,Y\nY,X,Z\nZ,Y\n"), 0o600))

	g, err := dataset.Graph(path)
	require.NoError(t, err)
	assert.Equal(t, 3, g.VertexCount())
	assert.True(t, g.HasEdge("Y", "Z"))
	assert.True(t, g.HasEdge("Z", "Y"))

	nbrs, err := g.NeighborIDs("Y")
	require.NoError(t, err)
	assert.Equal(t, []string{"X", "Z"}, nbrs)
}

// TestLoad_MissingFile surfaces the underlying open error.
func TestLoad_MissingFile(t *testing.T) {
	_, err := dataset.Load(filepath.Join(t.TempDir(), "absent.csv"))
	assert.Error(t, err)
	assert.ErrorIs(t, err, os.ErrNotExist)
}
