package stats

import (
	"fmt"
	"iter"

	"github.com/hasbyte1/go-microplate/numeric"
	"github.com/hasbyte1/go-microplate/plate"
)

// Result is a statistic computed for one well.
type Result struct {
	Index plate.Index
	Value float64
}

// Label returns the well label of r.
func (r Result) Label() string { return r.Index.String() }

// sample converts the windowed values of w to float64, appending to dst.
func sample[T numeric.Value](dst []float64, w *plate.Well[T], cfg config) []float64 {
	ar := numeric.For[T]()
	values := w.Values()
	begin, end := cfg.window(len(values))
	for _, v := range values[begin:end] {
		dst = append(dst, ar.Float64(v))
	}
	return dst
}

func perWell[T numeric.Value](wells iter.Seq[*plate.Well[T]], fn Func, cfg config) []Result {
	var out []Result
	var buf []float64
	for w := range wells {
		buf = sample(buf[:0], w, cfg)
		out = append(out, Result{Index: w.Index(), Value: fn(buf)})
	}
	return out
}

func pooled[T numeric.Value](wells iter.Seq[*plate.Well[T]], fn Func, cfg config) float64 {
	var buf []float64
	for w := range wells {
		buf = sample(buf, w, cfg)
	}
	return fn(buf)
}

// ─────────────────────────────────────────────────────────────────────────────
// Per well
// ─────────────────────────────────────────────────────────────────────────────

// Well computes fn over the values of w.
func Well[T numeric.Value](w *plate.Well[T], fn Func, opts ...Option) (float64, error) {
	if w == nil {
		return 0, ErrNilOperand
	}
	cfg, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	return fn(sample(nil, w, cfg)), nil
}

// WellSet computes fn for every well of s, in index order.
func WellSet[T numeric.Value](s *plate.WellSet[T], fn Func, opts ...Option) ([]Result, error) {
	if s == nil {
		return nil, ErrNilOperand
	}
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return perWell(s.All(), fn, cfg), nil
}

// Plate computes fn for every well of p, in index order.
func Plate[T numeric.Value](p *plate.Plate[T], fn Func, opts ...Option) ([]Result, error) {
	if p == nil {
		return nil, ErrNilOperand
	}
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	return perWell(p.All(), fn, cfg), nil
}

// Stack computes fn for every well of every plate, keyed by plate label.
func Stack[T numeric.Value](s *plate.Stack[T], fn Func, opts ...Option) (map[string][]Result, error) {
	if s == nil {
		return nil, ErrNilOperand
	}
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	out := make(map[string][]Result, s.Len())
	for p := range s.All() {
		out[p.Label()] = perWell(p.All(), fn, cfg)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Pooled
// ─────────────────────────────────────────────────────────────────────────────

// WellSetAggregate computes fn over the values of every well of s pooled
// into one sample.
func WellSetAggregate[T numeric.Value](s *plate.WellSet[T], fn Func, opts ...Option) (float64, error) {
	if s == nil {
		return 0, ErrNilOperand
	}
	cfg, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	return pooled(s.All(), fn, cfg), nil
}

// PlateAggregate computes fn over the pooled values of p.
func PlateAggregate[T numeric.Value](p *plate.Plate[T], fn Func, opts ...Option) (float64, error) {
	if p == nil {
		return 0, ErrNilOperand
	}
	cfg, err := resolve(opts)
	if err != nil {
		return 0, err
	}
	return pooled(p.All(), fn, cfg), nil
}

// StackAggregate computes fn over the pooled values of each plate, keyed by
// plate label.
func StackAggregate[T numeric.Value](s *plate.Stack[T], fn Func, opts ...Option) (map[string]float64, error) {
	if s == nil {
		return nil, ErrNilOperand
	}
	cfg, err := resolve(opts)
	if err != nil {
		return nil, err
	}
	out := make(map[string]float64, s.Len())
	for p := range s.All() {
		out[p.Label()] = pooled(p.All(), fn, cfg)
	}
	return out, nil
}

// Group computes fn for every well of the named group of p. Member wells
// the plate does not hold yield NaN.
func Group[T numeric.Value](p *plate.Plate[T], label string, fn Func, opts ...Option) ([]Result, error) {
	if p == nil {
		return nil, ErrNilOperand
	}
	set, ok := p.ResolveGroup(label)
	if !ok {
		return nil, fmt.Errorf("%w: group %q", plate.ErrNotFound, label)
	}
	return WellSet(set, fn, opts...)
}
