package plate

import (
	"cmp"
	"fmt"
	"iter"
	"strings"

	"github.com/google/btree"

	"github.com/hasbyte1/go-microplate/numeric"
)

// treeDegree is the B-tree branching factor used by every ordered container
// in the package. 16 keeps a 1536-well plate three levels deep.
const treeDegree = 16

// WellSet is an ordered, duplicate-free collection of wells keyed by
// [Index].
//
// Wells are stored in a balanced ordered container, so lookups and the
// navigation methods (First, Higher, Floor, HeadSet, …) locate their
// starting point in O(log n).
//
// # Ownership
//
// A WellSet owns its wells: every insertion stores a copy, so the caller's
// well can be reused freely. Lookups return the stored well, which may be
// mutated in place (its index cannot change, so ordering is never
// disturbed). Sub-sets such as [WellSet.Row] or [WellSet.HeadSet] return
// new sets holding copies.
//
// # Add versus Replace
//
// Add rejects a well whose index is already present with [ErrDuplicate]; it
// never merges. Replace overwrites the stored well and is the intended way
// to update an existing index's values. Both behaviours are relied upon by
// callers.
//
// # Batches
//
// Every mutating method accepts any number of items and returns an
// [Outcome]. All items are attempted; failures are recorded per item and the
// effects of successful items remain in place.
type WellSet[T numeric.Value] struct {
	label string
	tree  *btree.BTreeG[*Well[T]]
}

func lessWell[T numeric.Value](a, b *Well[T]) bool { return a.index.Less(b.index) }

// NewWellSet creates an empty, labelled set.
func NewWellSet[T numeric.Value](label string) *WellSet[T] {
	return &WellSet[T]{label: label, tree: btree.NewG[*Well[T]](treeDegree, lessWell[T])}
}

// WellSetOf creates a labelled set from wells. Duplicate indices are
// reported in the returned Outcome; the first occurrence wins.
func WellSetOf[T numeric.Value](label string, wells ...*Well[T]) (*WellSet[T], Outcome) {
	s := NewWellSet[T](label)
	return s, s.Add(wells...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Label returns the set's label.
func (s *WellSet[T]) Label() string { return s.label }

// SetLabel renames the set.
func (s *WellSet[T]) SetLabel(label string) { s.label = label }

// DataType returns the tag of the element type.
func (s *WellSet[T]) DataType() numeric.DataType { return numeric.TypeOf[T]() }

// Len returns the number of wells.
func (s *WellSet[T]) Len() int { return s.tree.Len() }

// IsEmpty reports whether the set holds no wells.
func (s *WellSet[T]) IsEmpty() bool { return s.tree.Len() == 0 }

// Clear removes every well and keeps the label.
func (s *WellSet[T]) Clear() { s.tree.Clear(false) }

// Copy returns a deep copy of the set.
func (s *WellSet[T]) Copy() *WellSet[T] {
	out := NewWellSet[T](s.label)
	s.tree.Ascend(func(w *Well[T]) bool {
		out.tree.ReplaceOrInsert(w.Clone())
		return true
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Iteration
// ─────────────────────────────────────────────────────────────────────────────

// All iterates the stored wells in index order.
func (s *WellSet[T]) All() iter.Seq[*Well[T]] {
	return func(yield func(*Well[T]) bool) {
		s.tree.Ascend(func(w *Well[T]) bool { return yield(w) })
	}
}

// Backward iterates the stored wells in descending index order.
func (s *WellSet[T]) Backward() iter.Seq[*Well[T]] {
	return func(yield func(*Well[T]) bool) {
		s.tree.Descend(func(w *Well[T]) bool { return yield(w) })
	}
}

// Wells returns the stored wells in index order.
func (s *WellSet[T]) Wells() []*Well[T] {
	out := make([]*Well[T], 0, s.tree.Len())
	s.tree.Ascend(func(w *Well[T]) bool {
		out = append(out, w)
		return true
	})
	return out
}

// Indices returns the indices in order.
func (s *WellSet[T]) Indices() []Index {
	out := make([]Index, 0, s.tree.Len())
	s.tree.Ascend(func(w *Well[T]) bool {
		out = append(out, w.index)
		return true
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Add / Remove / Replace / Retain
// ─────────────────────────────────────────────────────────────────────────────

// Add inserts a copy of each well. A well whose index is already present
// fails with ErrDuplicate.
func (s *WellSet[T]) Add(wells ...*Well[T]) Outcome {
	var out Outcome
	for _, w := range wells {
		record(&out, wellKey(w), s.addOne(w, nil))
	}
	return out.report("add")
}

// AddSet adds every well of other.
func (s *WellSet[T]) AddSet(other *WellSet[T]) Outcome { return s.Add(other.Wells()...) }

// Remove deletes the wells sharing an index with each argument. An absent
// index fails with ErrNotFound.
func (s *WellSet[T]) Remove(wells ...*Well[T]) Outcome {
	var out Outcome
	for _, w := range wells {
		if w == nil {
			out.fail(wellKey(w), errNilWell)
			continue
		}
		record(&out, w.Label(), s.removeOne(w.index, nil))
	}
	return out.report("remove")
}

// RemoveSet removes every index present in other.
func (s *WellSet[T]) RemoveSet(other *WellSet[T]) Outcome { return s.Remove(other.Wells()...) }

// RemoveIndices deletes the wells at indices.
func (s *WellSet[T]) RemoveIndices(indices ...Index) Outcome {
	var out Outcome
	for _, idx := range indices {
		record(&out, idx.String(), s.removeOne(idx, nil))
	}
	return out.report("remove")
}

// RemoveLabels deletes the wells named in a delimited label list such as
// "A1,B2,C3". Malformed tokens fail with ErrFormat.
func (s *WellSet[T]) RemoveLabels(list, delim string) Outcome {
	var out Outcome
	eachLabel(list, delim, &out, func(idx Index) error { return s.removeOne(idx, nil) })
	return out.report("remove")
}

// Replace stores a copy of each well, overwriting any well already at its
// index.
func (s *WellSet[T]) Replace(wells ...*Well[T]) Outcome {
	var out Outcome
	for _, w := range wells {
		record(&out, wellKey(w), s.replaceOne(w, nil))
	}
	return out.report("replace")
}

// ReplaceSet replaces with every well of other.
func (s *WellSet[T]) ReplaceSet(other *WellSet[T]) Outcome { return s.Replace(other.Wells()...) }

// Retain keeps only the wells whose index matches one of the arguments.
// Arguments absent from the set fail with ErrNotFound.
func (s *WellSet[T]) Retain(wells ...*Well[T]) Outcome {
	var out Outcome
	keep := make(map[Index]struct{}, len(wells))
	for _, w := range wells {
		if w == nil {
			out.fail(wellKey(w), errNilWell)
			continue
		}
		record(&out, w.Label(), s.mark(keep, w.index, nil))
	}
	s.sweep(keep)
	return out.report("retain")
}

// RetainSet intersects s with other's indices.
func (s *WellSet[T]) RetainSet(other *WellSet[T]) Outcome { return s.Retain(other.Wells()...) }

// RetainIndices keeps only the wells at indices.
func (s *WellSet[T]) RetainIndices(indices ...Index) Outcome {
	var out Outcome
	keep := make(map[Index]struct{}, len(indices))
	for _, idx := range indices {
		record(&out, idx.String(), s.mark(keep, idx, nil))
	}
	s.sweep(keep)
	return out.report("retain")
}

// RetainLabels keeps only the wells named in a delimited label list.
func (s *WellSet[T]) RetainLabels(list, delim string) Outcome {
	var out Outcome
	keep := make(map[Index]struct{})
	eachLabel(list, delim, &out, func(idx Index) error { return s.mark(keep, idx, nil) })
	s.sweep(keep)
	return out.report("retain")
}

// ─────────────────────────────────────────────────────────────────────────────
// Lookup
// ─────────────────────────────────────────────────────────────────────────────

// Contains reports whether a well with w's index is present.
func (s *WellSet[T]) Contains(w *Well[T]) bool {
	return w != nil && s.tree.Has(w)
}

// ContainsIndex reports whether a well at idx is present.
func (s *WellSet[T]) ContainsIndex(idx Index) bool { return s.tree.Has(probe[T](idx)) }

// ContainsLabel reports whether the well named by label is present.
// Malformed labels report false.
func (s *WellSet[T]) ContainsLabel(label string) bool {
	idx, err := ParseIndex(label)
	return err == nil && s.ContainsIndex(idx)
}

// Get returns the stored well at idx.
func (s *WellSet[T]) Get(idx Index) (*Well[T], bool) { return s.tree.Get(probe[T](idx)) }

// GetLabel returns the stored well named by label.
func (s *WellSet[T]) GetLabel(label string) (*Well[T], bool) {
	idx, err := ParseIndex(label)
	if err != nil {
		return nil, false
	}
	return s.Get(idx)
}

// GetIndices returns a new set holding copies of the wells found at indices.
// Misses are skipped.
func (s *WellSet[T]) GetIndices(indices ...Index) *WellSet[T] {
	out := NewWellSet[T](s.label)
	for _, idx := range indices {
		if w, ok := s.Get(idx); ok {
			out.tree.ReplaceOrInsert(w.Clone())
		}
	}
	return out
}

// GetLabels returns a new set holding copies of the wells named in a
// delimited label list. Malformed tokens and misses are skipped.
func (s *WellSet[T]) GetLabels(list, delim string) *WellSet[T] {
	indices, _ := ParseIndexList(list, delim)
	return s.GetIndices(indices...)
}

// Row returns copies of the wells in a zero-based row.
func (s *WellSet[T]) Row(row int) *WellSet[T] {
	out := NewWellSet[T](s.label)
	s.tree.AscendRange(probe[T](Index{Row: row}), probe[T](Index{Row: row + 1}), func(w *Well[T]) bool {
		out.tree.ReplaceOrInsert(w.Clone())
		return true
	})
	return out
}

// Column returns copies of the wells in a one-based column.
func (s *WellSet[T]) Column(column int) *WellSet[T] {
	out := NewWellSet[T](s.label)
	s.tree.Ascend(func(w *Well[T]) bool {
		if w.index.Column == column {
			out.tree.ReplaceOrInsert(w.Clone())
		}
		return true
	})
	return out
}

// Block returns copies of the wells inside the rectangle spanned by two
// corner indices, inclusive. The corners may be given in either order.
func (s *WellSet[T]) Block(from, to Index) *WellSet[T] {
	top, bottom := min(from.Row, to.Row), max(from.Row, to.Row)
	left, right := min(from.Column, to.Column), max(from.Column, to.Column)
	out := NewWellSet[T](s.label)
	s.tree.AscendRange(probe[T](Index{Row: top}), probe[T](Index{Row: bottom + 1}), func(w *Well[T]) bool {
		if w.index.Column >= left && w.index.Column <= right {
			out.tree.ReplaceOrInsert(w.Clone())
		}
		return true
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Ordered navigation
// ─────────────────────────────────────────────────────────────────────────────

// First returns the well with the lowest index.
func (s *WellSet[T]) First() (*Well[T], bool) { return s.tree.Min() }

// Last returns the well with the highest index.
func (s *WellSet[T]) Last() (*Well[T], bool) { return s.tree.Max() }

// PollFirst removes and returns the well with the lowest index.
func (s *WellSet[T]) PollFirst() (*Well[T], bool) { return s.tree.DeleteMin() }

// PollLast removes and returns the well with the highest index.
func (s *WellSet[T]) PollLast() (*Well[T], bool) { return s.tree.DeleteMax() }

// Higher returns the well with the least index strictly greater than idx.
func (s *WellSet[T]) Higher(idx Index) (*Well[T], bool) {
	var found *Well[T]
	s.tree.AscendGreaterOrEqual(probe[T](idx), func(w *Well[T]) bool {
		if w.index == idx {
			return true
		}
		found = w
		return false
	})
	return found, found != nil
}

// Lower returns the well with the greatest index strictly less than idx.
func (s *WellSet[T]) Lower(idx Index) (*Well[T], bool) {
	var found *Well[T]
	s.tree.DescendLessOrEqual(probe[T](idx), func(w *Well[T]) bool {
		if w.index == idx {
			return true
		}
		found = w
		return false
	})
	return found, found != nil
}

// Ceiling returns the well with the least index greater than or equal to idx.
func (s *WellSet[T]) Ceiling(idx Index) (*Well[T], bool) {
	var found *Well[T]
	s.tree.AscendGreaterOrEqual(probe[T](idx), func(w *Well[T]) bool {
		found = w
		return false
	})
	return found, found != nil
}

// Floor returns the well with the greatest index less than or equal to idx.
func (s *WellSet[T]) Floor(idx Index) (*Well[T], bool) {
	var found *Well[T]
	s.tree.DescendLessOrEqual(probe[T](idx), func(w *Well[T]) bool {
		found = w
		return false
	})
	return found, found != nil
}

// HeadSet returns copies of the wells whose index is below to (or equal to
// it when inclusive).
func (s *WellSet[T]) HeadSet(to Index, inclusive bool) *WellSet[T] {
	out := NewWellSet[T](s.label)
	s.tree.AscendLessThan(probe[T](to), func(w *Well[T]) bool {
		out.tree.ReplaceOrInsert(w.Clone())
		return true
	})
	if inclusive {
		if w, ok := s.Get(to); ok {
			out.tree.ReplaceOrInsert(w.Clone())
		}
	}
	return out
}

// TailSet returns copies of the wells whose index is above from (or equal to
// it when inclusive).
func (s *WellSet[T]) TailSet(from Index, inclusive bool) *WellSet[T] {
	out := NewWellSet[T](s.label)
	s.tree.AscendGreaterOrEqual(probe[T](from), func(w *Well[T]) bool {
		if inclusive || w.index != from {
			out.tree.ReplaceOrInsert(w.Clone())
		}
		return true
	})
	return out
}

// SubSet returns copies of the wells between from and to, with each bound
// included or excluded as requested. An empty set is returned when from
// sorts after to.
func (s *WellSet[T]) SubSet(from Index, fromInclusive bool, to Index, toInclusive bool) *WellSet[T] {
	out := NewWellSet[T](s.label)
	if from.Compare(to) > 0 {
		return out
	}
	s.tree.AscendRange(probe[T](from), probe[T](to), func(w *Well[T]) bool {
		if fromInclusive || w.index != from {
			out.tree.ReplaceOrInsert(w.Clone())
		}
		return true
	})
	if toInclusive && (fromInclusive || from != to) {
		if w, ok := s.Get(to); ok {
			out.tree.ReplaceOrInsert(w.Clone())
		}
	}
	return out
}

// HeadSetRank returns copies of the first n wells in order.
func (s *WellSet[T]) HeadSetRank(n int) *WellSet[T] { return s.SubSetRank(0, n) }

// TailSetRank returns copies of the wells from rank begin to the end.
func (s *WellSet[T]) TailSetRank(begin int) *WellSet[T] { return s.SubSetRank(begin, s.Len()) }

// SubSetRank returns copies of the wells ranked [begin, end) in index order.
// Bounds are clipped to the set. The tree keeps no subtree counts, so rank
// views cost O(end) rather than O(log n + k); key views do not.
func (s *WellSet[T]) SubSetRank(begin, end int) *WellSet[T] {
	out := NewWellSet[T](s.label)
	begin, end = max(begin, 0), min(end, s.Len())
	if begin >= end {
		return out
	}
	rank := 0
	s.tree.Ascend(func(w *Well[T]) bool {
		if rank >= begin {
			out.tree.ReplaceOrInsert(w.Clone())
		}
		rank++
		return rank < end
	})
	return out
}

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// Equal reports whether both sets share a label and hold equal wells.
func (s *WellSet[T]) Equal(other *WellSet[T]) bool {
	if s == other {
		return true
	}
	return other != nil && s.Compare(other) == 0
}

// Compare orders sets by label, then size, then well by well (index first,
// values second).
func (s *WellSet[T]) Compare(other *WellSet[T]) int {
	if c := cmp.Compare(s.label, other.label); c != 0 {
		return c
	}
	return compareWellLists(s.Wells(), other.Wells())
}

// String renders the label and well labels, e.g. "Controls{A1, A2}".
func (s *WellSet[T]) String() string {
	labels := make([]string, 0, s.Len())
	for w := range s.All() {
		labels = append(labels, w.Label())
	}
	return s.label + "{" + strings.Join(labels, ", ") + "}"
}

// ─────────────────────────────────────────────────────────────────────────────
// Internal helpers
// ─────────────────────────────────────────────────────────────────────────────

var errNilWell = fmt.Errorf("%w: nil well", ErrFormat)

// probe builds a search key for idx.
func probe[T numeric.Value](idx Index) *Well[T] { return &Well[T]{index: idx} }

func wellKey[T numeric.Value](w *Well[T]) string {
	if w == nil {
		return "<nil>"
	}
	return w.Label()
}

func record(out *Outcome, key string, err error) {
	if err != nil {
		out.fail(key, err)
		return
	}
	out.pass()
}

// eachLabel parses every token of a delimited list and applies fn to it,
// recording one Outcome item per token.
func eachLabel(list, delim string, out *Outcome, fn func(Index) error) {
	for _, tok := range splitList(list, delim) {
		idx, err := ParseIndex(tok)
		if err == nil {
			err = fn(idx)
		}
		record(out, tok, err)
	}
}

func (s *WellSet[T]) addOne(w *Well[T], check func(Index) error) error {
	if w == nil {
		return errNilWell
	}
	if check != nil {
		if err := check(w.index); err != nil {
			return err
		}
	}
	if s.tree.Has(w) {
		return fmt.Errorf("%w: well %s", ErrDuplicate, w.Label())
	}
	s.tree.ReplaceOrInsert(w.Clone())
	return nil
}

func (s *WellSet[T]) removeOne(idx Index, check func(Index) error) error {
	if check != nil {
		if err := check(idx); err != nil {
			return err
		}
	}
	if _, ok := s.tree.Delete(probe[T](idx)); !ok {
		return fmt.Errorf("%w: well %s", ErrNotFound, idx)
	}
	return nil
}

func (s *WellSet[T]) replaceOne(w *Well[T], check func(Index) error) error {
	if w == nil {
		return errNilWell
	}
	if check != nil {
		if err := check(w.index); err != nil {
			return err
		}
	}
	s.tree.ReplaceOrInsert(w.Clone())
	return nil
}

// mark records idx as retained, failing when it is absent.
func (s *WellSet[T]) mark(keep map[Index]struct{}, idx Index, check func(Index) error) error {
	if check != nil {
		if err := check(idx); err != nil {
			return err
		}
	}
	if !s.ContainsIndex(idx) {
		return fmt.Errorf("%w: well %s", ErrNotFound, idx)
	}
	keep[idx] = struct{}{}
	return nil
}

// sweep deletes every well not marked in keep.
func (s *WellSet[T]) sweep(keep map[Index]struct{}) {
	var drop []*Well[T]
	s.tree.Ascend(func(w *Well[T]) bool {
		if _, ok := keep[w.index]; !ok {
			drop = append(drop, w)
		}
		return true
	})
	for _, w := range drop {
		s.tree.Delete(w)
	}
}

func compareWellLists[T numeric.Value](a, b []*Well[T]) int {
	if c := cmp.Compare(len(a), len(b)); c != 0 {
		return c
	}
	for i := range a {
		if c := a[i].Compare(b[i]); c != 0 {
			return c
		}
		if c := compareValues(a[i].values, b[i].values); c != 0 {
			return c
		}
	}
	return 0
}
