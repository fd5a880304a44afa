package combine

import (
	"fmt"

	"github.com/hasbyte1/go-microplate/numeric"
	"github.com/hasbyte1/go-microplate/plate"
)

// UnaryFunc is an operator applied to every value independently.
type UnaryFunc[T numeric.Value] func(v T) (T, error)

// Transformer applies a unary operator at well, well-set, plate and stack
// granularity. It honours Range; alignment options have no effect.
type Transformer[T numeric.Value] struct {
	name     string
	fn       UnaryFunc[T]
	defaults []Option
}

// NewTransformer creates a Transformer named name.
func NewTransformer[T numeric.Value](name string, fn UnaryFunc[T], opts ...Option) *Transformer[T] {
	return &Transformer[T]{name: name, fn: fn, defaults: opts}
}

// Name returns the operator name.
func (t *Transformer[T]) Name() string { return t.name }

func (t *Transformer[T]) step(opts []Option) (wellFunc[T], error) {
	cfg, err := resolve(t.defaults, opts)
	if err != nil {
		return nil, fmt.Errorf("transform %s: %w", t.name, err)
	}
	return func(w *plate.Well[T]) (*plate.Well[T], error) {
		values, err := apply(t.fn, w.Values(), cfg)
		if err != nil {
			return nil, fmt.Errorf("well %s: %w", w.Label(), err)
		}
		return plate.NewWellAt(w.Index(), values...), nil
	}, nil
}

func (t *Transformer[T]) wrap(err error) error {
	return fmt.Errorf("transform %s: %w", t.name, err)
}

// Values transforms a value slice.
func (t *Transformer[T]) Values(values []T, opts ...Option) ([]T, error) {
	cfg, err := resolve(t.defaults, opts)
	if err != nil {
		return nil, t.wrap(err)
	}
	out, err := apply(t.fn, values, cfg)
	if err != nil {
		return nil, t.wrap(err)
	}
	return out, nil
}

// Well transforms the values of w.
func (t *Transformer[T]) Well(w *plate.Well[T], opts ...Option) (*plate.Well[T], error) {
	if w == nil {
		return nil, t.wrap(ErrNilOperand)
	}
	step, err := t.step(opts)
	if err != nil {
		return nil, err
	}
	out, err := step(w)
	if err != nil {
		return nil, t.wrap(err)
	}
	return out, nil
}

// WellSet transforms every well of s.
func (t *Transformer[T]) WellSet(s *plate.WellSet[T], opts ...Option) (*plate.WellSet[T], error) {
	step, err := t.step(opts)
	if err != nil {
		return nil, err
	}
	out, err := mapSet(s, step)
	if err != nil {
		return nil, t.wrap(err)
	}
	return out, nil
}

// Plate transforms every well of p. The result keeps p's label and groups.
func (t *Transformer[T]) Plate(p *plate.Plate[T], opts ...Option) (*plate.Plate[T], error) {
	step, err := t.step(opts)
	if err != nil {
		return nil, err
	}
	out, err := mapPlate(p, step)
	if err != nil {
		return nil, t.wrap(err)
	}
	return out, nil
}

// Stack transforms every well of every plate of s.
func (t *Transformer[T]) Stack(s *plate.Stack[T], opts ...Option) (*plate.Stack[T], error) {
	step, err := t.step(opts)
	if err != nil {
		return nil, err
	}
	out, err := mapStack(s, step)
	if err != nil {
		return nil, t.wrap(err)
	}
	return out, nil
}
