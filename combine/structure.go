package combine

import (
	"fmt"
	"iter"
	"slices"

	"github.com/hasbyte1/go-microplate/numeric"
	"github.com/hasbyte1/go-microplate/plate"
)

// wellFunc derives one output well from one input well.
type wellFunc[T numeric.Value] func(w *plate.Well[T]) (*plate.Well[T], error)

// pairFunc derives one output well from two wells sharing an index.
type pairFunc[T numeric.Value] func(a, b *plate.Well[T]) (*plate.Well[T], error)

func mapWells[T numeric.Value](wells iter.Seq[*plate.Well[T]], fn wellFunc[T]) ([]*plate.Well[T], error) {
	var out []*plate.Well[T]
	for w := range wells {
		r, err := fn(w)
		if err != nil {
			return nil, err
		}
		out = append(out, r)
	}
	return out, nil
}

// mergeWells walks two index-ordered well lists in step. Wells present in
// both are passed to fn; wells present in one are copied when padding and
// dropped otherwise.
func mergeWells[T numeric.Value](a, b []*plate.Well[T], padding bool, fn pairFunc[T]) ([]*plate.Well[T], error) {
	out := make([]*plate.Well[T], 0, max(len(a), len(b)))
	i, j := 0, 0
	for i < len(a) || j < len(b) {
		switch {
		case j == len(b) || (i < len(a) && a[i].Index().Less(b[j].Index())):
			if padding {
				out = append(out, a[i].Clone())
			}
			i++
		case i == len(a) || b[j].Index().Less(a[i].Index()):
			if padding {
				out = append(out, b[j].Clone())
			}
			j++
		default:
			w, err := fn(a[i], b[j])
			if err != nil {
				return nil, err
			}
			out = append(out, w)
			i++
			j++
		}
	}
	return out, nil
}

func newSet[T numeric.Value](label string, wells []*plate.Well[T]) *plate.WellSet[T] {
	s := plate.NewWellSet[T](label)
	s.Add(wells...)
	return s
}

// newPlateLike builds a plate with src's dimensions, label and groups.
func newPlateLike[T numeric.Value](src *plate.Plate[T], wells []*plate.Well[T]) (*plate.Plate[T], error) {
	p, err := plate.NewPlateSize[T](src.Rows(), src.Columns(), src.Label())
	if err != nil {
		return nil, err
	}
	p.AddGroups(src.Groups()...)
	if err := p.AddWells(wells...).Err(); err != nil {
		return nil, err
	}
	return p, nil
}

func newStackLike[T numeric.Value](src *plate.Stack[T]) (*plate.Stack[T], error) {
	return plate.NewStackSize[T](src.Rows(), src.Columns(), src.Label())
}

// ─────────────────────────────────────────────────────────────────────────────
// Unary structure walks
// ─────────────────────────────────────────────────────────────────────────────

func mapSet[T numeric.Value](s *plate.WellSet[T], fn wellFunc[T]) (*plate.WellSet[T], error) {
	if s == nil {
		return nil, ErrNilOperand
	}
	wells, err := mapWells(s.All(), fn)
	if err != nil {
		return nil, err
	}
	return newSet(s.Label(), wells), nil
}

func mapPlate[T numeric.Value](p *plate.Plate[T], fn wellFunc[T]) (*plate.Plate[T], error) {
	if p == nil {
		return nil, ErrNilOperand
	}
	wells, err := mapWells(p.All(), fn)
	if err != nil {
		return nil, fmt.Errorf("plate %q: %w", p.Label(), err)
	}
	return newPlateLike(p, wells)
}

func mapStack[T numeric.Value](s *plate.Stack[T], fn wellFunc[T]) (*plate.Stack[T], error) {
	if s == nil {
		return nil, ErrNilOperand
	}
	out, err := newStackLike(s)
	if err != nil {
		return nil, err
	}
	for p := range s.All() {
		r, err := mapPlate(p, fn)
		if err != nil {
			return nil, err
		}
		out.Add(r)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Binary structure walks
// ─────────────────────────────────────────────────────────────────────────────

func mergeSets[T numeric.Value](a, b *plate.WellSet[T], padding bool, fn pairFunc[T]) (*plate.WellSet[T], error) {
	if a == nil || b == nil {
		return nil, ErrNilOperand
	}
	wells, err := mergeWells(a.Wells(), b.Wells(), padding, fn)
	if err != nil {
		return nil, err
	}
	return newSet(a.Label(), wells), nil
}

func mergePlates[T numeric.Value](a, b *plate.Plate[T], padding bool, fn pairFunc[T]) (*plate.Plate[T], error) {
	if a == nil || b == nil {
		return nil, ErrNilOperand
	}
	if !a.SameDimensions(b) {
		return nil, fmt.Errorf("%w: plate %q is %s, plate %q is %s",
			plate.ErrDimensionMismatch, a.Label(), a.Descriptor(), b.Label(), b.Descriptor())
	}
	wells, err := mergeWells(slices.Collect(a.All()), slices.Collect(b.All()), padding, fn)
	if err != nil {
		return nil, fmt.Errorf("plate %q: %w", a.Label(), err)
	}
	return newPlateLike(a, wells)
}

// mergeStacks pairs plates by position in stack order. With padding the
// surplus plates of the longer stack are copied; a surplus plate whose label
// is already taken by a combined plate is dropped.
func mergeStacks[T numeric.Value](a, b *plate.Stack[T], padding bool, fn pairFunc[T]) (*plate.Stack[T], error) {
	if a == nil || b == nil {
		return nil, ErrNilOperand
	}
	if !a.SameDimensions(b) {
		return nil, fmt.Errorf("%w: stack %q is %s, stack %q is %s",
			plate.ErrDimensionMismatch, a.Label(), a.Descriptor(), b.Label(), b.Descriptor())
	}
	out, err := newStackLike(a)
	if err != nil {
		return nil, err
	}
	ap, bp := a.Plates(), b.Plates()
	n := min(len(ap), len(bp))
	for i := 0; i < n; i++ {
		p, err := mergePlates(ap[i], bp[i], padding, fn)
		if err != nil {
			return nil, err
		}
		out.Add(p)
	}
	if padding {
		for _, p := range slices.Concat(ap[n:], bp[n:]) {
			if !out.ContainsLabel(p.Label()) {
				out.Add(p)
			}
		}
	}
	return out, nil
}
