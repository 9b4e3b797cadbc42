// Package dataset loads adjacency data from comma-separated record files.
//
// Each non-empty line is one record: the node label followed by its
// neighbor labels, e.g.
//
//	France,Spain,Belgium,Germany,Italy,Switzerland
//
// The loader only produces the raw adjacency shape; symmetry, closure and
// connectedness are the validate package's concern. The file path is
// explicit configuration: there is no ambient default dataset and no
// directory is created as a side effect.
package dataset

import (
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/borderline/core"
)

// Sentinel errors for dataset loading.
var (
	// ErrNoRecords indicates the file contained no usable records.
	ErrNoRecords = errors.New("dataset: no records found")

	// ErrEmptyLabel indicates a record whose node label is empty.
	ErrEmptyLabel = errors.New("dataset: empty node label")

	// ErrDuplicateLabel indicates the same node label on two records.
	ErrDuplicateLabel = errors.New("dataset: duplicate node label")
)

// Load reads the comma-separated adjacency file at path and returns the
// raw label-to-neighbors mapping. Records may have any number of neighbor
// fields, including none; blank lines are skipped. A duplicate label is
// rejected rather than silently overwritten, since it almost always means
// a corrupt dataset.
func Load(path string) (map[string][]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f)
}

// Parse reads adjacency records from r. See Load for the record format.
func Parse(r io.Reader) (map[string][]string, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1 // neighbor counts vary per record
	reader.TrimLeadingSpace = true

	adjacency := make(map[string][]string)
	for line := 1; ; line++ {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}

		label := strings.TrimSpace(record[0])
		if label == "" {
			return nil, fmt.Errorf("%w: line %d", ErrEmptyLabel, line)
		}
		if _, seen := adjacency[label]; seen {
			return nil, fmt.Errorf("%w: %q on line %d", ErrDuplicateLabel, label, line)
		}

		neighbors := make([]string, 0, len(record)-1)
		for _, field := range record[1:] {
			if nbr := strings.TrimSpace(field); nbr != "" {
				neighbors = append(neighbors, nbr)
			}
		}
		adjacency[label] = neighbors
	}

	if len(adjacency) == 0 {
		return nil, ErrNoRecords
	}

	return adjacency, nil
}

// Graph loads the adjacency file at path and builds the core.Graph,
// preserving the raw shape for validation.
func Graph(path string) (*core.Graph, error) {
	adjacency, err := Load(path)
	if err != nil {
		return nil, err
	}

	return core.FromAdjacency(adjacency), nil
}
