package plate

import (
	"cmp"
	"strings"

	"github.com/google/btree"
)

// Group is a named, ordered, duplicate-free list of well indices that marks
// a subset of a plate for analysis: controls, standards, a dilution series.
//
// A group refers to positions, not wells, so it may name wells that have not
// been populated yet. [Plate.ResolveGroup] turns a group into a [WellSet].
// Membership is checked against the plate's bounds when the group is added
// to a plate, not on later changes to the group.
type Group struct {
	label   string
	members *btree.BTreeG[Index]
}

func lessIndex(a, b Index) bool { return a.Less(b) }

// NewGroup creates a group holding indices. Repeated indices collapse.
func NewGroup(label string, indices ...Index) *Group {
	g := &Group{label: label, members: btree.NewG[Index](treeDegree, lessIndex)}
	g.Add(indices...)
	return g
}

// ParseGroup creates a group from a delimited label list such as
// "A1,A2,B1". The Outcome reports malformed tokens, which are skipped.
func ParseGroup(label, list, delim string) (*Group, Outcome) {
	indices, out := ParseIndexList(list, delim)
	return NewGroup(label, indices...), out
}

// NewBlockGroup creates a group holding every index in the rectangle spanned
// by two corners, inclusive.
//
//	plate.NewBlockGroup("Standards", plate.MustParseIndex("A1"), plate.MustParseIndex("B3"))
//	// A1 A2 A3 B1 B2 B3
func NewBlockGroup(label string, from, to Index) *Group {
	g := NewGroup(label)
	for r := min(from.Row, to.Row); r <= max(from.Row, to.Row); r++ {
		for c := min(from.Column, to.Column); c <= max(from.Column, to.Column); c++ {
			g.members.ReplaceOrInsert(Index{Row: r, Column: c})
		}
	}
	return g
}

// Label returns the group's name.
func (g *Group) Label() string { return g.label }

// Len returns the number of member indices.
func (g *Group) Len() int { return g.members.Len() }

// Add inserts indices, ignoring those already present.
func (g *Group) Add(indices ...Index) {
	for _, idx := range indices {
		g.members.ReplaceOrInsert(idx)
	}
}

// Remove deletes indices, ignoring those not present.
func (g *Group) Remove(indices ...Index) {
	for _, idx := range indices {
		g.members.Delete(idx)
	}
}

// Contains reports whether idx is a member.
func (g *Group) Contains(idx Index) bool { return g.members.Has(idx) }

// Indices returns the members in order.
func (g *Group) Indices() []Index {
	out := make([]Index, 0, g.members.Len())
	g.members.Ascend(func(idx Index) bool {
		out = append(out, idx)
		return true
	})
	return out
}

// Clone returns a deep copy.
func (g *Group) Clone() *Group { return NewGroup(g.label, g.Indices()...) }

// Equal reports whether both groups share a label and members.
func (g *Group) Equal(other *Group) bool {
	return other != nil && g.Compare(other) == 0
}

// Compare orders groups by label, then member count, then members.
func (g *Group) Compare(other *Group) int {
	if c := cmp.Compare(g.label, other.label); c != 0 {
		return c
	}
	a, b := g.Indices(), other.Indices()
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// String renders "Controls{A1, A2}".
func (g *Group) String() string {
	labels := make([]string, 0, g.Len())
	for _, idx := range g.Indices() {
		labels = append(labels, idx.String())
	}
	return g.label + "{" + strings.Join(labels, ", ") + "}"
}
