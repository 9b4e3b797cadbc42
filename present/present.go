// Package present formats enumerated paths for progressive disclosure.
//
// Partial renders a path with only the known (already guessed) nodes
// visible, collapsing each maximal run of hidden nodes into a single
// "..." marker. It is a pure function over (path, known set) with no
// state and no side effects, which is what lets the game package stay
// testable without any terminal I/O.
package present

import (
	"strings"

	"github.com/katalvlaran/borderline/allpaths"
)

// Gap is the marker substituted for a maximal run of hidden nodes.
const Gap = "..."

// arrow separates rendered nodes and gap markers.
const arrow = " -> "

// Known is the set of node labels revealed so far.
type Known map[string]struct{}

// NewKnown builds a Known set from the given labels.
func NewKnown(labels ...string) Known {
	k := make(Known, len(labels))
	for _, l := range labels {
		k[l] = struct{}{}
	}

	return k
}

// Add inserts label into the set.
func (k Known) Add(label string) { k[label] = struct{}{} }

// Remove deletes label from the set.
func (k Known) Remove(label string) { delete(k, label) }

// Has reports whether label is in the set.
func (k Known) Has(label string) bool {
	_, ok := k[label]
	return ok
}

// Len returns the set cardinality.
func (k Known) Len() int { return len(k) }

// SubsetOf reports whether every label of k appears in path.
func (k Known) SubsetOf(path allpaths.Path) bool {
	if len(k) > len(path) {
		return false
	}
	members := make(map[string]struct{}, len(path))
	for _, id := range path {
		members[id] = struct{}{}
	}
	for label := range k {
		if _, ok := members[label]; !ok {
			return false
		}
	}

	return true
}

// Equals reports whether k is exactly the node set of path.
// Paths never repeat a node, so cardinality plus membership suffices.
func (k Known) Equals(path allpaths.Path) bool {
	return len(k) == len(path) && k.SubsetOf(path)
}

// Partial renders path with known nodes in their original order joined by
// arrows, and every maximal run of unknown nodes (leading, interior or
// trailing) collapsed into one Gap marker.
//
//	Partial([A B C D], {A D}) == "A -> ... -> D"
func Partial(path allpaths.Path, known Known) string {
	tokens := make([]string, 0, len(path))
	inGap := false
	for _, id := range path {
		switch {
		case known.Has(id):
			tokens = append(tokens, id)
			inGap = false
		case !inGap:
			tokens = append(tokens, Gap)
			inGap = true
		}
	}

	return strings.Join(tokens, arrow)
}
