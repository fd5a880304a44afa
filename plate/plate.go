package plate

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/google/btree"

	"github.com/hasbyte1/go-microplate/numeric"
)

// Plate is a fixed rows x columns grid owning one [WellSet] and a set of
// [Group]s.
//
// Every stored well satisfies 0 <= row < rows and 1 <= column <= columns.
// The well methods mirror those of WellSet, but each item is first checked
// against the plate bounds; an out-of-range item fails with [ErrBounds]
// without aborting the rest of the batch.
//
// Groups are keyed by label: a plate never holds two groups with the same
// label, so [Plate.ResolveGroup] is unambiguous.
type Plate[T numeric.Value] struct {
	rows    int
	columns int
	label   string
	kind    PlateType
	wells   *WellSet[T]
	groups  *btree.BTreeG[*Group]
}

func lessGroup(a, b *Group) bool { return a.label < b.label }

// NewPlate creates an empty plate in a standard format. Custom has no preset
// dimensions and fails with ErrInvalidDimensions; use NewPlateSize.
func NewPlate[T numeric.Value](kind PlateType, label string) (*Plate[T], error) {
	rows, columns, err := resolveDimensions(kind)
	if err != nil {
		return nil, err
	}
	return newPlate[T](rows, columns, label), nil
}

// NewPlateSize creates an empty rows x columns plate. The type is the
// matching standard format, or Custom.
func NewPlateSize[T numeric.Value](rows, columns int, label string) (*Plate[T], error) {
	if err := checkDimensions(rows, columns); err != nil {
		return nil, err
	}
	return newPlate[T](rows, columns, label), nil
}

func newPlate[T numeric.Value](rows, columns int, label string) *Plate[T] {
	return &Plate[T]{
		rows:    rows,
		columns: columns,
		label:   label,
		kind:    TypeForDimensions(rows, columns),
		wells:   NewWellSet[T](label),
		groups:  btree.NewG[*Group](treeDegree, lessGroup),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Rows returns the number of rows.
func (p *Plate[T]) Rows() int { return p.rows }

// Columns returns the number of columns.
func (p *Plate[T]) Columns() int { return p.columns }

// Capacity returns rows x columns.
func (p *Plate[T]) Capacity() int { return p.rows * p.columns }

// Label returns the plate's label.
func (p *Plate[T]) Label() string { return p.label }

// SetLabel renames the plate. A plate held by a [Stack] must not be renamed
// through a pointer returned by the stack, since the label is part of the
// stack's ordering key.
func (p *Plate[T]) SetLabel(label string) {
	p.label = label
	p.wells.SetLabel(label)
}

// Type returns the standard format, or Custom.
func (p *Plate[T]) Type() PlateType { return p.kind }

// Descriptor returns "96-Well" or "Custom Plate: RxC".
func (p *Plate[T]) Descriptor() string { return Descriptor(p.rows, p.columns) }

// DataType returns the tag of the element type.
func (p *Plate[T]) DataType() numeric.DataType { return numeric.TypeOf[T]() }

// Len returns the number of populated wells.
func (p *Plate[T]) Len() int { return p.wells.Len() }

// IsEmpty reports whether no well is populated.
func (p *Plate[T]) IsEmpty() bool { return p.wells.IsEmpty() }

// InBounds reports whether idx lies inside the plate.
func (p *Plate[T]) InBounds(idx Index) bool { return idx.within(p.rows, p.columns) }

// Clear removes every well and keeps the label, dimensions and groups.
func (p *Plate[T]) Clear() { p.wells.Clear() }

// Copy returns a deep copy, groups included.
func (p *Plate[T]) Copy() *Plate[T] {
	out := newPlate[T](p.rows, p.columns, p.label)
	out.wells = p.wells.Copy()
	p.groups.Ascend(func(g *Group) bool {
		out.groups.ReplaceOrInsert(g.Clone())
		return true
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Wells
// ─────────────────────────────────────────────────────────────────────────────

// checkBounds is passed to the WellSet helpers so every item is validated
// before it touches the set.
func (p *Plate[T]) checkBounds(idx Index) error {
	if !idx.within(p.rows, p.columns) {
		return fmt.Errorf("%w: well %s outside %s plate %q", ErrBounds, idx, p.Descriptor(), p.label)
	}
	return nil
}

// AddWells inserts a copy of each well. Out-of-range wells fail with
// ErrBounds, wells already present with ErrDuplicate.
func (p *Plate[T]) AddWells(wells ...*Well[T]) Outcome {
	var out Outcome
	for _, w := range wells {
		record(&out, wellKey(w), p.wells.addOne(w, p.checkBounds))
	}
	return out.report("add")
}

// AddWellSet adds every well of set.
func (p *Plate[T]) AddWellSet(set *WellSet[T]) Outcome { return p.AddWells(set.Wells()...) }

// RemoveWells deletes the wells sharing an index with each argument.
func (p *Plate[T]) RemoveWells(wells ...*Well[T]) Outcome {
	var out Outcome
	for _, w := range wells {
		if w == nil {
			out.fail(wellKey(w), errNilWell)
			continue
		}
		record(&out, w.Label(), p.wells.removeOne(w.index, p.checkBounds))
	}
	return out.report("remove")
}

// RemoveWellSet removes every index present in set.
func (p *Plate[T]) RemoveWellSet(set *WellSet[T]) Outcome { return p.RemoveWells(set.Wells()...) }

// RemoveIndices deletes the wells at indices.
func (p *Plate[T]) RemoveIndices(indices ...Index) Outcome {
	var out Outcome
	for _, idx := range indices {
		record(&out, idx.String(), p.wells.removeOne(idx, p.checkBounds))
	}
	return out.report("remove")
}

// RemoveLabels deletes the wells named in a delimited label list.
func (p *Plate[T]) RemoveLabels(list, delim string) Outcome {
	var out Outcome
	eachLabel(list, delim, &out, func(idx Index) error { return p.wells.removeOne(idx, p.checkBounds) })
	return out.report("remove")
}

// ReplaceWells stores a copy of each in-range well, overwriting any well
// already at its index.
func (p *Plate[T]) ReplaceWells(wells ...*Well[T]) Outcome {
	var out Outcome
	for _, w := range wells {
		record(&out, wellKey(w), p.wells.replaceOne(w, p.checkBounds))
	}
	return out.report("replace")
}

// ReplaceWellSet replaces with every well of set.
func (p *Plate[T]) ReplaceWellSet(set *WellSet[T]) Outcome { return p.ReplaceWells(set.Wells()...) }

// RetainWells keeps only the wells whose index matches one of the arguments.
func (p *Plate[T]) RetainWells(wells ...*Well[T]) Outcome {
	var out Outcome
	keep := make(map[Index]struct{}, len(wells))
	for _, w := range wells {
		if w == nil {
			out.fail(wellKey(w), errNilWell)
			continue
		}
		record(&out, w.Label(), p.wells.mark(keep, w.index, p.checkBounds))
	}
	p.wells.sweep(keep)
	return out.report("retain")
}

// RetainWellSet intersects the plate's wells with set's indices.
func (p *Plate[T]) RetainWellSet(set *WellSet[T]) Outcome { return p.RetainWells(set.Wells()...) }

// RetainIndices keeps only the wells at indices.
func (p *Plate[T]) RetainIndices(indices ...Index) Outcome {
	var out Outcome
	keep := make(map[Index]struct{}, len(indices))
	for _, idx := range indices {
		record(&out, idx.String(), p.wells.mark(keep, idx, p.checkBounds))
	}
	p.wells.sweep(keep)
	return out.report("retain")
}

// RetainLabels keeps only the wells named in a delimited label list.
func (p *Plate[T]) RetainLabels(list, delim string) Outcome {
	var out Outcome
	keep := make(map[Index]struct{})
	eachLabel(list, delim, &out, func(idx Index) error { return p.wells.mark(keep, idx, p.checkBounds) })
	p.wells.sweep(keep)
	return out.report("retain")
}

// Well returns the stored well at idx.
func (p *Plate[T]) Well(idx Index) (*Well[T], bool) { return p.wells.Get(idx) }

// WellLabel returns the stored well named by label.
func (p *Plate[T]) WellLabel(label string) (*Well[T], bool) { return p.wells.GetLabel(label) }

// Contains reports whether a well is stored at idx.
func (p *Plate[T]) Contains(idx Index) bool { return p.wells.ContainsIndex(idx) }

// ContainsLabel reports whether the well named by label is stored.
func (p *Plate[T]) ContainsLabel(label string) bool { return p.wells.ContainsLabel(label) }

// Row returns copies of the wells in a zero-based row.
func (p *Plate[T]) Row(row int) *WellSet[T] { return p.wells.Row(row) }

// Column returns copies of the wells in a one-based column.
func (p *Plate[T]) Column(column int) *WellSet[T] { return p.wells.Column(column) }

// Block returns copies of the wells in the rectangle spanned by two corners.
func (p *Plate[T]) Block(from, to Index) *WellSet[T] { return p.wells.Block(from, to) }

// Wells returns a deep copy of the plate's well set.
func (p *Plate[T]) Wells() *WellSet[T] { return p.wells.Copy() }

// All iterates the stored wells in index order.
func (p *Plate[T]) All() iter.Seq[*Well[T]] { return p.wells.All() }

// ─────────────────────────────────────────────────────────────────────────────
// Groups
// ─────────────────────────────────────────────────────────────────────────────

// AddGroups stores a copy of each group. A group with a member outside the
// plate fails with ErrBounds; a group whose label is already taken fails
// with ErrDuplicate.
func (p *Plate[T]) AddGroups(groups ...*Group) Outcome {
	var out Outcome
	for _, g := range groups {
		record(&out, groupKey(g), p.addGroup(g))
	}
	return out.report("add group")
}

func (p *Plate[T]) addGroup(g *Group) error {
	if g == nil {
		return errNilGroup
	}
	for _, idx := range g.Indices() {
		if err := p.checkBounds(idx); err != nil {
			return fmt.Errorf("group %q: %w", g.label, err)
		}
	}
	if p.groups.Has(g) {
		return fmt.Errorf("%w: group %q", ErrDuplicate, g.label)
	}
	p.groups.ReplaceOrInsert(g.Clone())
	return nil
}

// RemoveGroups deletes each group. The stored group must equal the argument;
// otherwise the item fails with ErrNotFound.
func (p *Plate[T]) RemoveGroups(groups ...*Group) Outcome {
	var out Outcome
	for _, g := range groups {
		record(&out, groupKey(g), p.removeGroup(g))
	}
	return out.report("remove group")
}

func (p *Plate[T]) removeGroup(g *Group) error {
	if g == nil {
		return errNilGroup
	}
	stored, ok := p.groups.Get(g)
	if !ok || !stored.Equal(g) {
		return fmt.Errorf("%w: group %q", ErrNotFound, g.label)
	}
	p.groups.Delete(g)
	return nil
}

// RemoveGroupLabels deletes the groups with the given labels.
func (p *Plate[T]) RemoveGroupLabels(labels ...string) Outcome {
	var out Outcome
	for _, label := range labels {
		var err error
		if _, ok := p.groups.Delete(&Group{label: label}); !ok {
			err = fmt.Errorf("%w: group %q", ErrNotFound, label)
		}
		record(&out, label, err)
	}
	return out.report("remove group")
}

// RemoveGroupList deletes the groups named in a delimited label list.
func (p *Plate[T]) RemoveGroupList(list, delim string) Outcome {
	return p.RemoveGroupLabels(splitList(list, delim)...)
}

// RetainGroups keeps only the stored groups equal to one of the arguments.
func (p *Plate[T]) RetainGroups(groups ...*Group) Outcome {
	var out Outcome
	keep := make(map[string]struct{}, len(groups))
	for _, g := range groups {
		var err error
		if g == nil {
			err = errNilGroup
		} else if stored, ok := p.groups.Get(g); !ok || !stored.Equal(g) {
			err = fmt.Errorf("%w: group %q", ErrNotFound, g.label)
		} else {
			keep[g.label] = struct{}{}
		}
		record(&out, groupKey(g), err)
	}
	p.sweepGroups(keep)
	return out.report("retain group")
}

// RetainGroupLabels keeps only the groups with the given labels.
func (p *Plate[T]) RetainGroupLabels(labels ...string) Outcome {
	var out Outcome
	keep := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		var err error
		if p.groups.Has(&Group{label: label}) {
			keep[label] = struct{}{}
		} else {
			err = fmt.Errorf("%w: group %q", ErrNotFound, label)
		}
		record(&out, label, err)
	}
	p.sweepGroups(keep)
	return out.report("retain group")
}

// RetainGroupList keeps only the groups named in a delimited label list.
func (p *Plate[T]) RetainGroupList(list, delim string) Outcome {
	return p.RetainGroupLabels(splitList(list, delim)...)
}

func (p *Plate[T]) sweepGroups(keep map[string]struct{}) {
	var drop []*Group
	p.groups.Ascend(func(g *Group) bool {
		if _, ok := keep[g.label]; !ok {
			drop = append(drop, g)
		}
		return true
	})
	for _, g := range drop {
		p.groups.Delete(g)
	}
}

// Group returns the stored group with label. Changes made to it are not
// re-checked against the plate bounds.
func (p *Plate[T]) Group(label string) (*Group, bool) { return p.groups.Get(&Group{label: label}) }

// ContainsGroup reports whether a group with label is stored.
func (p *Plate[T]) ContainsGroup(label string) bool { return p.groups.Has(&Group{label: label}) }

// Groups returns the stored groups ordered by label.
func (p *Plate[T]) Groups() []*Group {
	out := make([]*Group, 0, p.groups.Len())
	p.groups.Ascend(func(g *Group) bool {
		out = append(out, g)
		return true
	})
	return out
}

// GroupCount returns the number of groups.
func (p *Plate[T]) GroupCount() int { return p.groups.Len() }

// ClearGroups removes every group.
func (p *Plate[T]) ClearGroups() { p.groups.Clear(false) }

// ResolveGroup returns a set labelled after the group holding, for each
// member index, a copy of the stored well or a new empty well when the
// index is not populated.
func (p *Plate[T]) ResolveGroup(label string) (*WellSet[T], bool) {
	g, ok := p.groups.Get(&Group{label: label})
	if !ok {
		return nil, false
	}
	return p.resolve(g), true
}

// ResolveGroups resolves every group, in label order.
func (p *Plate[T]) ResolveGroups() []*WellSet[T] {
	out := make([]*WellSet[T], 0, p.groups.Len())
	p.groups.Ascend(func(g *Group) bool {
		out = append(out, p.resolve(g))
		return true
	})
	return out
}

func (p *Plate[T]) resolve(g *Group) *WellSet[T] {
	set := NewWellSet[T](g.label)
	g.members.Ascend(func(idx Index) bool {
		if w, ok := p.wells.Get(idx); ok {
			set.tree.ReplaceOrInsert(w.Clone())
		} else {
			set.tree.ReplaceOrInsert(NewWellAt[T](idx))
		}
		return true
	})
	return set
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// SameDimensions reports whether both plates share rows and columns.
func (p *Plate[T]) SameDimensions(other *Plate[T]) bool {
	return p.rows == other.rows && p.columns == other.columns
}

// Equal reports whether both plates share dimensions, label, type,
// descriptor, resolved groups, well count and data type.
func (p *Plate[T]) Equal(other *Plate[T]) bool {
	if p == other {
		return true
	}
	if other == nil || !p.SameDimensions(other) || p.label != other.label ||
		p.kind != other.kind || p.Descriptor() != other.Descriptor() ||
		p.Len() != other.Len() || p.DataType() != other.DataType() {
		return false
	}
	a, b := p.ResolveGroups(), other.ResolveGroups()
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Compare orders plates by capacity, rows, columns, label and data type, in
// that priority. A [Stack] iterates its plates in this order and finds them
// by label through it, so two plates differing only in wells or groups
// compare as 0 while Equal reports false.
func (p *Plate[T]) Compare(other *Plate[T]) int {
	if c := cmp.Compare(p.Capacity(), other.Capacity()); c != 0 {
		return c
	}
	if c := cmp.Compare(p.rows, other.rows); c != 0 {
		return c
	}
	if c := cmp.Compare(p.columns, other.columns); c != 0 {
		return c
	}
	if c := cmp.Compare(p.label, other.label); c != 0 {
		return c
	}
	return cmp.Compare(p.DataType(), other.DataType())
}

// compareContents orders plates sharing a Compare key by the remaining
// fields Equal inspects: well count, then resolved groups.
func (p *Plate[T]) compareContents(other *Plate[T]) int {
	if c := cmp.Compare(p.Len(), other.Len()); c != 0 {
		return c
	}
	a, b := p.ResolveGroups(), other.ResolveGroups()
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

// String renders "Plate1 (96-Well, 3 wells, 1 group)".
func (p *Plate[T]) String() string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s, %d wells, %d group", p.label, p.Descriptor(), p.Len(), p.groups.Len())
	if p.groups.Len() != 1 {
		b.WriteByte('s')
	}
	b.WriteByte(')')
	return b.String()
}

var errNilGroup = fmt.Errorf("%w: nil group", ErrFormat)

func groupKey(g *Group) string {
	if g == nil {
		return "<nil>"
	}
	return g.label
}
