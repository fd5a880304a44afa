package plate

import (
	"cmp"
	"fmt"
	"iter"
	"slices"
	"strings"

	"github.com/hasbyte1/go-microplate/numeric"
)

// Well is an ordered, mutable sequence of measurements bound to an [Index].
//
// The index is fixed at construction. Set membership and ordering use the
// index only: two wells with the same index are "the same well" to a
// [WellSet] regardless of their values. [Well.Equal] additionally compares
// values.
type Well[T numeric.Value] struct {
	index  Index
	values []T
}

// NewWell creates a well at (row, column) holding a copy of values.
func NewWell[T numeric.Value](row, column int, values ...T) (*Well[T], error) {
	idx, err := NewIndex(row, column)
	if err != nil {
		return nil, err
	}
	return NewWellAt(idx, values...), nil
}

// NewWellAt creates a well at idx holding a copy of values. idx is trusted;
// use NewIndex or ParseIndex to validate external input.
func NewWellAt[T numeric.Value](idx Index, values ...T) *Well[T] {
	return &Well[T]{index: idx, values: slices.Clone(values)}
}

// ParseWell creates a well from a label such as "B12".
func ParseWell[T numeric.Value](label string, values ...T) (*Well[T], error) {
	idx, err := ParseIndex(label)
	if err != nil {
		return nil, err
	}
	return NewWellAt(idx, values...), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Accessors
// ─────────────────────────────────────────────────────────────────────────────

// Index returns the well's address.
func (w *Well[T]) Index() Index { return w.index }

// Row returns the zero-based row.
func (w *Well[T]) Row() int { return w.index.Row }

// Column returns the one-based column.
func (w *Well[T]) Column() int { return w.index.Column }

// Label returns the spreadsheet-style label, e.g. "H12".
func (w *Well[T]) Label() string { return w.index.String() }

// DataType returns the tag of the element type.
func (w *Well[T]) DataType() numeric.DataType { return numeric.TypeOf[T]() }

// Len returns the number of values.
func (w *Well[T]) Len() int { return len(w.values) }

// IsEmpty reports whether the well holds no values.
func (w *Well[T]) IsEmpty() bool { return len(w.values) == 0 }

// Values returns a copy of the values.
func (w *Well[T]) Values() []T { return slices.Clone(w.values) }

// At returns the value at position i together with a presence flag.
func (w *Well[T]) At(i int) (T, bool) {
	var zero T
	if i < 0 || i >= len(w.values) {
		return zero, false
	}
	return w.values[i], true
}

// All iterates the values in insertion order. Each range over the sequence
// starts from the beginning.
func (w *Well[T]) All() iter.Seq2[int, T] {
	return func(yield func(int, T) bool) {
		for i, v := range w.values {
			if !yield(i, v) {
				return
			}
		}
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Mutation
// ─────────────────────────────────────────────────────────────────────────────

// Append adds values to the end of the sequence.
func (w *Well[T]) Append(values ...T) {
	w.values = append(w.values, values...)
}

// SetValues replaces the sequence with a copy of values.
func (w *Well[T]) SetValues(values ...T) {
	w.values = slices.Clone(values)
}

// Clear removes all values and keeps the index.
func (w *Well[T]) Clear() { w.values = nil }

// SubRange returns a new well at the same index holding a copy of
// values[begin : begin+length]. It fails with ErrFormat when the range does
// not lie inside the sequence.
func (w *Well[T]) SubRange(begin, length int) (*Well[T], error) {
	if begin < 0 || length < 0 || begin+length > len(w.values) {
		return nil, fmt.Errorf("%w: range [%d, %d) of %d values in %s",
			ErrFormat, begin, begin+length, len(w.values), w.Label())
	}
	return NewWellAt(w.index, w.values[begin:begin+length]...), nil
}

// Clone returns a deep copy.
func (w *Well[T]) Clone() *Well[T] { return NewWellAt(w.index, w.values...) }

// ─────────────────────────────────────────────────────────────────────────────
// Comparison
// ─────────────────────────────────────────────────────────────────────────────

// Compare orders wells by index only.
func (w *Well[T]) Compare(other *Well[T]) int { return w.index.Compare(other.index) }

// Equal reports whether both wells share an index and hold numerically equal
// values in the same order.
func (w *Well[T]) Equal(other *Well[T]) bool {
	if w == other {
		return true
	}
	if other == nil || w.index != other.index || len(w.values) != len(other.values) {
		return false
	}
	ar := numeric.For[T]()
	for i := range w.values {
		if ar.Compare(w.values[i], other.values[i]) != 0 {
			return false
		}
	}
	return true
}

// String renders "B3 [1 2 3]".
func (w *Well[T]) String() string {
	ar := numeric.For[T]()
	parts := make([]string, len(w.values))
	for i, v := range w.values {
		parts[i] = ar.Format(v)
	}
	return w.Label() + " [" + strings.Join(parts, " ") + "]"
}

// compareValues orders two value sequences element-wise, then by length.
func compareValues[T numeric.Value](a, b []T) int {
	ar := numeric.For[T]()
	for i := 0; i < len(a) && i < len(b); i++ {
		if c := ar.Compare(a[i], b[i]); c != 0 {
			return c
		}
	}
	return cmp.Compare(len(a), len(b))
}
