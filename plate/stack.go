package plate

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/google/btree"

	"github.com/hasbyte1/go-microplate/numeric"
)

// Stack is an ordered, duplicate-free collection of plates that all share
// one (rows, columns).
//
// Plates are ordered by [Plate.Compare]. Within a stack every plate has the
// same dimensions and element type, so the order and the uniqueness key
// reduce to the plate label. A Stack owns its plates: every insertion stores
// a copy. The plates returned by lookups are the stored ones and must not be
// relabelled.
type Stack[T numeric.Value] struct {
	rows    int
	columns int
	label   string
	kind    PlateType
	plates  *btree.BTreeG[*Plate[T]]
}

func lessPlate[T numeric.Value](a, b *Plate[T]) bool { return a.Compare(b) < 0 }

// NewStack creates an empty stack for a standard plate format.
func NewStack[T numeric.Value](kind PlateType, label string) (*Stack[T], error) {
	rows, columns, err := resolveDimensions(kind)
	if err != nil {
		return nil, err
	}
	return newStack[T](rows, columns, label), nil
}

// NewStackSize creates an empty stack for rows x columns plates.
func NewStackSize[T numeric.Value](rows, columns int, label string) (*Stack[T], error) {
	if err := checkDimensions(rows, columns); err != nil {
		return nil, err
	}
	return newStack[T](rows, columns, label), nil
}

// StackOf creates a stack shaped like the first plate and adds every plate.
// It fails with ErrInvalidDimensions when plates is empty.
func StackOf[T numeric.Value](label string, plates ...*Plate[T]) (*Stack[T], Outcome, error) {
	if len(plates) == 0 || plates[0] == nil {
		return nil, Outcome{}, fmt.Errorf("%w: stack %q needs a first plate", ErrInvalidDimensions, label)
	}
	s := newStack[T](plates[0].rows, plates[0].columns, label)
	return s, s.Add(plates...), nil
}

func newStack[T numeric.Value](rows, columns int, label string) *Stack[T] {
	return &Stack[T]{
		rows:    rows,
		columns: columns,
		label:   label,
		kind:    TypeForDimensions(rows, columns),
		plates:  btree.NewG[*Plate[T]](treeDegree, lessPlate[T]),
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Rows returns the plate row count shared by the stack.
func (s *Stack[T]) Rows() int { return s.rows }

// Columns returns the plate column count shared by the stack.
func (s *Stack[T]) Columns() int { return s.columns }

// Label returns the stack's label.
func (s *Stack[T]) Label() string { return s.label }

// SetLabel renames the stack.
func (s *Stack[T]) SetLabel(label string) { s.label = label }

// Type returns the shared plate format, or Custom.
func (s *Stack[T]) Type() PlateType { return s.kind }

// Descriptor returns the shared plate descriptor.
func (s *Stack[T]) Descriptor() string { return Descriptor(s.rows, s.columns) }

// DataType returns the tag of the element type.
func (s *Stack[T]) DataType() numeric.DataType { return numeric.TypeOf[T]() }

// Len returns the number of plates.
func (s *Stack[T]) Len() int { return s.plates.Len() }

// IsEmpty reports whether the stack holds no plates.
func (s *Stack[T]) IsEmpty() bool { return s.plates.Len() == 0 }

// Clear removes every plate.
func (s *Stack[T]) Clear() { s.plates.Clear(false) }

// Copy returns a deep copy.
func (s *Stack[T]) Copy() *Stack[T] {
	out := newStack[T](s.rows, s.columns, s.label)
	s.plates.Ascend(func(p *Plate[T]) bool {
		out.plates.ReplaceOrInsert(p.Copy())
		return true
	})
	return out
}

// Plates returns the stored plates in order.
func (s *Stack[T]) Plates() []*Plate[T] {
	out := make([]*Plate[T], 0, s.plates.Len())
	s.plates.Ascend(func(p *Plate[T]) bool {
		out = append(out, p)
		return true
	})
	return out
}

// All iterates the stored plates in order.
func (s *Stack[T]) All() iter.Seq[*Plate[T]] {
	return func(yield func(*Plate[T]) bool) {
		s.plates.Ascend(func(p *Plate[T]) bool { return yield(p) })
	}
}

// Labels returns the plate labels in order.
func (s *Stack[T]) Labels() []string {
	out := make([]string, 0, s.plates.Len())
	s.plates.Ascend(func(p *Plate[T]) bool {
		out = append(out, p.label)
		return true
	})
	return out
}

// First returns the lowest-ordered plate.
func (s *Stack[T]) First() (*Plate[T], bool) { return s.plates.Min() }

// Last returns the highest-ordered plate.
func (s *Stack[T]) Last() (*Plate[T], bool) { return s.plates.Max() }

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove / Replace / Retain
// ─────────────────────────────────────────────────────────────────────────────

// Add inserts a copy of each plate. A plate of other dimensions fails with
// ErrDimensionMismatch and a plate whose label is taken with ErrDuplicate.
func (s *Stack[T]) Add(plates ...*Plate[T]) Outcome {
	var out Outcome
	for _, p := range plates {
		record(&out, plateKey(p), s.addOne(p))
	}
	return out.report("add plate")
}

// AddStack adds every plate of other.
func (s *Stack[T]) AddStack(other *Stack[T]) Outcome { return s.Add(other.Plates()...) }

func (s *Stack[T]) addOne(p *Plate[T]) error {
	if err := s.checkDimensions(p); err != nil {
		return err
	}
	if s.plates.Has(p) {
		return fmt.Errorf("%w: plate %q", ErrDuplicate, p.label)
	}
	s.plates.ReplaceOrInsert(p.Copy())
	return nil
}

// Replace stores a copy of each plate, overwriting the plate with the same
// label.
func (s *Stack[T]) Replace(plates ...*Plate[T]) Outcome {
	var out Outcome
	for _, p := range plates {
		err := s.checkDimensions(p)
		if err == nil {
			s.plates.ReplaceOrInsert(p.Copy())
		}
		record(&out, plateKey(p), err)
	}
	return out.report("replace plate")
}

// ReplaceStack replaces with every plate of other.
func (s *Stack[T]) ReplaceStack(other *Stack[T]) Outcome { return s.Replace(other.Plates()...) }

// Remove deletes the plate sharing each argument's label.
func (s *Stack[T]) Remove(plates ...*Plate[T]) Outcome {
	var out Outcome
	for _, p := range plates {
		err := s.checkDimensions(p)
		if err == nil {
			err = s.removeLabel(p.label)
		}
		record(&out, plateKey(p), err)
	}
	return out.report("remove plate")
}

// RemoveStack removes every plate label present in other.
func (s *Stack[T]) RemoveStack(other *Stack[T]) Outcome { return s.Remove(other.Plates()...) }

// RemoveLabels deletes the plates with the given labels.
func (s *Stack[T]) RemoveLabels(labels ...string) Outcome {
	var out Outcome
	for _, label := range labels {
		record(&out, label, s.removeLabel(label))
	}
	return out.report("remove plate")
}

// RemoveList deletes the plates named in a delimited label list.
func (s *Stack[T]) RemoveList(list, delim string) Outcome {
	return s.RemoveLabels(splitList(list, delim)...)
}

func (s *Stack[T]) removeLabel(label string) error {
	if _, ok := s.plates.Delete(s.probe(label)); !ok {
		return fmt.Errorf("%w: plate %q", ErrNotFound, label)
	}
	return nil
}

// Retain keeps only the plates sharing a label with one of the arguments.
func (s *Stack[T]) Retain(plates ...*Plate[T]) Outcome {
	var out Outcome
	keep := make(map[string]struct{}, len(plates))
	for _, p := range plates {
		err := s.checkDimensions(p)
		if err == nil {
			err = s.markLabel(keep, p.label)
		}
		record(&out, plateKey(p), err)
	}
	s.sweep(keep)
	return out.report("retain plate")
}

// RetainStack intersects s with other's labels.
func (s *Stack[T]) RetainStack(other *Stack[T]) Outcome { return s.Retain(other.Plates()...) }

// RetainLabels keeps only the plates with the given labels.
func (s *Stack[T]) RetainLabels(labels ...string) Outcome {
	var out Outcome
	keep := make(map[string]struct{}, len(labels))
	for _, label := range labels {
		record(&out, label, s.markLabel(keep, label))
	}
	s.sweep(keep)
	return out.report("retain plate")
}

// RetainList keeps only the plates named in a delimited label list.
func (s *Stack[T]) RetainList(list, delim string) Outcome {
	return s.RetainLabels(splitList(list, delim)...)
}

func (s *Stack[T]) markLabel(keep map[string]struct{}, label string) error {
	if !s.plates.Has(s.probe(label)) {
		return fmt.Errorf("%w: plate %q", ErrNotFound, label)
	}
	keep[label] = struct{}{}
	return nil
}

func (s *Stack[T]) sweep(keep map[string]struct{}) {
	var drop []*Plate[T]
	s.plates.Ascend(func(p *Plate[T]) bool {
		if _, ok := keep[p.label]; !ok {
			drop = append(drop, p)
		}
		return true
	})
	for _, p := range drop {
		s.plates.Delete(p)
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Lookup
// ─────────────────────────────────────────────────────────────────────────────

// Get returns the stored plate with label.
func (s *Stack[T]) Get(label string) (*Plate[T], bool) { return s.plates.Get(s.probe(label)) }

// GetLabels returns the stored plates with the given labels, in stack order.
// Misses are skipped.
func (s *Stack[T]) GetLabels(labels ...string) []*Plate[T] {
	want := make(map[string]struct{}, len(labels))
	for _, l := range labels {
		want[l] = struct{}{}
	}
	var out []*Plate[T]
	s.plates.Ascend(func(p *Plate[T]) bool {
		if _, ok := want[p.label]; ok {
			out = append(out, p)
		}
		return true
	})
	return out
}

// GetList returns the stored plates named in a delimited label list.
func (s *Stack[T]) GetList(list, delim string) []*Plate[T] {
	return s.GetLabels(splitList(list, delim)...)
}

// Contains reports whether a plate with p's dimensions and label is stored.
func (s *Stack[T]) Contains(p *Plate[T]) bool {
	return p != nil && s.plates.Has(p)
}

// ContainsLabel reports whether a plate with label is stored.
func (s *Stack[T]) ContainsLabel(label string) bool { return s.plates.Has(s.probe(label)) }

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// SameDimensions reports whether both stacks hold plates of one shape.
func (s *Stack[T]) SameDimensions(other *Stack[T]) bool {
	return s.rows == other.rows && s.columns == other.columns
}

// Equal reports whether both stacks share dimensions and label and hold
// pairwise equal plates.
func (s *Stack[T]) Equal(other *Stack[T]) bool {
	if s == other {
		return true
	}
	if other == nil || !s.SameDimensions(other) || s.label != other.label || s.Len() != other.Len() {
		return false
	}
	a, b := s.Plates(), other.Plates()
	for i := range a {
		if !a[i].Equal(b[i]) {
			return false
		}
	}
	return true
}

// Compare orders stacks by plate capacity, rows, columns, label, size, then
// by the plate keys in order. Stacks whose plate keys all tie are ordered by
// plate contents, so Compare reports 0 exactly when Equal reports true.
func (s *Stack[T]) Compare(other *Stack[T]) int {
	if c := cmp.Compare(s.rows*s.columns, other.rows*other.columns); c != 0 {
		return c
	}
	if c := cmp.Compare(s.rows, other.rows); c != 0 {
		return c
	}
	if c := cmp.Compare(s.columns, other.columns); c != 0 {
		return c
	}
	if c := cmp.Compare(s.label, other.label); c != 0 {
		return c
	}
	a, b := s.Plates(), other.Plates()
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
	}
	for i := range a {
		if c := a[i].compareContents(b[i]); c != 0 {
			return c
		}
	}
	return 0
}

// String renders "Run1 [96-Well] {Plate1, Plate2}".
func (s *Stack[T]) String() string {
	return s.label + " [" + s.Descriptor() + "] {" + strings.Join(s.Labels(), ", ") + "}"
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ─────────────────────────────────────────────────────────────────────────────

var errNilPlate = fmt.Errorf("%w: nil plate", ErrFormat)

func (s *Stack[T]) probe(label string) *Plate[T] {
	return &Plate[T]{rows: s.rows, columns: s.columns, label: label}
}

func (s *Stack[T]) checkDimensions(p *Plate[T]) error {
	if p == nil {
		return errNilPlate
	}
	if p.rows != s.rows || p.columns != s.columns {
		return fmt.Errorf("%w: plate %q is %dx%d, stack %q holds %dx%d",
			ErrDimensionMismatch, p.label, p.rows, p.columns, s.label, s.rows, s.columns)
	}
	return nil
}

func plateKey[T numeric.Value](p *Plate[T]) string {
	if p == nil {
		return "<nil>"
	}
	return p.label
}
