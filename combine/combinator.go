package combine

import (
	"fmt"

	"github.com/hasbyte1/go-microplate/numeric"
	"github.com/hasbyte1/go-microplate/plate"
)

// Func is a binary operator applied position by position. A non-nil error
// aborts the whole combination.
type Func[T numeric.Value] func(a, b T) (T, error)

// Combinator applies a binary operator element-wise at well, well-set,
// plate and stack granularity.
//
// Options given to New become the combinator's defaults; options passed to
// a call are applied after them and win.
//
//	sub := combine.New("subtract", func(a, b int) (int, error) { return a - b, nil })
//	sub.Values([]int{1, 2, 3}, []int{10, 20})                  // [-9 -18 3]
//	sub.Values([]int{1, 2, 3}, []int{10, 20}, combine.Strict()) // [-9 -18]
//
// Every result is a new structure; operands are never modified and never
// share wells with the result.
type Combinator[T numeric.Value] struct {
	name     string
	fn       Func[T]
	defaults []Option
}

// New creates a Combinator named name.
func New[T numeric.Value](name string, fn Func[T], opts ...Option) *Combinator[T] {
	return &Combinator[T]{name: name, fn: fn, defaults: opts}
}

// Name returns the operator name.
func (c *Combinator[T]) Name() string { return c.name }

// With returns a copy of c with opts appended to its defaults.
func (c *Combinator[T]) With(opts ...Option) *Combinator[T] {
	defaults := make([]Option, 0, len(c.defaults)+len(opts))
	defaults = append(append(defaults, c.defaults...), opts...)
	return &Combinator[T]{name: c.name, fn: c.fn, defaults: defaults}
}

// Alignment reports the alignment the combinator uses when no per-call
// option overrides it.
func (c *Combinator[T]) Alignment() Alignment {
	cfg, _ := resolve(c.defaults, nil)
	return cfg.align
}

func (c *Combinator[T]) config(opts []Option) (config, error) {
	cfg, err := resolve(c.defaults, opts)
	if err != nil {
		return cfg, fmt.Errorf("combine %s: %w", c.name, err)
	}
	return cfg, nil
}

func (c *Combinator[T]) wrap(err error) error {
	return fmt.Errorf("combine %s: %w", c.name, err)
}

// pair returns the per-well step of a two-operand combination.
func (c *Combinator[T]) pair(cfg config) pairFunc[T] {
	return func(a, b *plate.Well[T]) (*plate.Well[T], error) {
		values, err := zip(c.fn, a.Values(), b.Values(), cfg)
		if err != nil {
			return nil, fmt.Errorf("well %s: %w", a.Label(), err)
		}
		return plate.NewWellAt(a.Index(), values...), nil
	}
}

// constant returns the per-well step broadcasting k.
func (c *Combinator[T]) constant(k T, cfg config) wellFunc[T] {
	step := func(v T) (T, error) { return c.fn(v, k) }
	return func(w *plate.Well[T]) (*plate.Well[T], error) {
		values, err := apply(step, w.Values(), cfg)
		if err != nil {
			return nil, fmt.Errorf("well %s: %w", w.Label(), err)
		}
		return plate.NewWellAt(w.Index(), values...), nil
	}
}

// sequence returns the per-well step pairing each well with seq.
func (c *Combinator[T]) sequence(seq []T, cfg config) wellFunc[T] {
	return func(w *plate.Well[T]) (*plate.Well[T], error) {
		values, err := zip(c.fn, w.Values(), seq, cfg)
		if err != nil {
			return nil, fmt.Errorf("well %s: %w", w.Label(), err)
		}
		return plate.NewWellAt(w.Index(), values...), nil
	}
}

// ─────────────────────────────────────────────────────────────────────────────
// Values
// ─────────────────────────────────────────────────────────────────────────────

// Values combines two value slices. In padding mode the result has
// max(len(a), len(b)) elements, in strict mode min(len(a), len(b)); with a
// Range it holds only the clipped window.
func (c *Combinator[T]) Values(a, b []T, opts ...Option) ([]T, error) {
	cfg, err := c.config(opts)
	if err != nil {
		return nil, err
	}
	out, err := zip(c.fn, a, b, cfg)
	if err != nil {
		return nil, c.wrap(err)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Wells
// ─────────────────────────────────────────────────────────────────────────────

// Wells combines the values of two wells. The result takes a's index.
func (c *Combinator[T]) Wells(a, b *plate.Well[T], opts ...Option) (*plate.Well[T], error) {
	if a == nil || b == nil {
		return nil, c.wrap(ErrNilOperand)
	}
	cfg, err := c.config(opts)
	if err != nil {
		return nil, err
	}
	w, err := c.pair(cfg)(a, b)
	if err != nil {
		return nil, c.wrap(err)
	}
	return w, nil
}

// WellConstant applies the operator to every value of w and k.
func (c *Combinator[T]) WellConstant(w *plate.Well[T], k T, opts ...Option) (*plate.Well[T], error) {
	if w == nil {
		return nil, c.wrap(ErrNilOperand)
	}
	cfg, err := c.config(opts)
	if err != nil {
		return nil, err
	}
	out, err := c.constant(k, cfg)(w)
	if err != nil {
		return nil, c.wrap(err)
	}
	return out, nil
}

// WellSequence pairs the values of w with seq position by position, under
// the same alignment rules as Wells.
func (c *Combinator[T]) WellSequence(w *plate.Well[T], seq []T, opts ...Option) (*plate.Well[T], error) {
	if w == nil {
		return nil, c.wrap(ErrNilOperand)
	}
	cfg, err := c.config(opts)
	if err != nil {
		return nil, err
	}
	out, err := c.sequence(seq, cfg)(w)
	if err != nil {
		return nil, c.wrap(err)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Well sets
// ─────────────────────────────────────────────────────────────────────────────

// WellSets combines wells sharing an index. In strict mode the result holds
// the intersection of the operands' indices; in padding mode the union, with
// unmatched wells copied unchanged. The result takes a's label.
func (c *Combinator[T]) WellSets(a, b *plate.WellSet[T], opts ...Option) (*plate.WellSet[T], error) {
	cfg, err := c.config(opts)
	if err != nil {
		return nil, err
	}
	out, err := mergeSets(a, b, cfg.padding(), c.pair(cfg))
	if err != nil {
		return nil, c.wrap(err)
	}
	return out, nil
}

// WellSetConstant applies WellConstant to every well of s.
func (c *Combinator[T]) WellSetConstant(s *plate.WellSet[T], k T, opts ...Option) (*plate.WellSet[T], error) {
	cfg, err := c.config(opts)
	if err != nil {
		return nil, err
	}
	out, err := mapSet(s, c.constant(k, cfg))
	if err != nil {
		return nil, c.wrap(err)
	}
	return out, nil
}

// WellSetSequence applies WellSequence to every well of s.
func (c *Combinator[T]) WellSetSequence(s *plate.WellSet[T], seq []T, opts ...Option) (*plate.WellSet[T], error) {
	cfg, err := c.config(opts)
	if err != nil {
		return nil, err
	}
	out, err := mapSet(s, c.sequence(seq, cfg))
	if err != nil {
		return nil, c.wrap(err)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Plates
// ─────────────────────────────────────────────────────────────────────────────

// Plates combines two plates of equal dimensions with the WellSets rules.
// The result takes a's label and groups. Plates of different dimensions
// fail with plate.ErrDimensionMismatch.
func (c *Combinator[T]) Plates(a, b *plate.Plate[T], opts ...Option) (*plate.Plate[T], error) {
	cfg, err := c.config(opts)
	if err != nil {
		return nil, err
	}
	out, err := mergePlates(a, b, cfg.padding(), c.pair(cfg))
	if err != nil {
		return nil, c.wrap(err)
	}
	return out, nil
}

// PlateConstant applies WellConstant to every well of p.
func (c *Combinator[T]) PlateConstant(p *plate.Plate[T], k T, opts ...Option) (*plate.Plate[T], error) {
	cfg, err := c.config(opts)
	if err != nil {
		return nil, err
	}
	out, err := mapPlate(p, c.constant(k, cfg))
	if err != nil {
		return nil, c.wrap(err)
	}
	return out, nil
}

// PlateSequence applies WellSequence to every well of p.
func (c *Combinator[T]) PlateSequence(p *plate.Plate[T], seq []T, opts ...Option) (*plate.Plate[T], error) {
	cfg, err := c.config(opts)
	if err != nil {
		return nil, err
	}
	out, err := mapPlate(p, c.sequence(seq, cfg))
	if err != nil {
		return nil, c.wrap(err)
	}
	return out, nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Stacks
// ─────────────────────────────────────────────────────────────────────────────

// Stacks pairs the plates of two same-dimension stacks by position in stack
// order and combines each pair with Plates. In padding mode the surplus
// plates of the longer stack are copied into the result; in strict mode they
// are dropped.
func (c *Combinator[T]) Stacks(a, b *plate.Stack[T], opts ...Option) (*plate.Stack[T], error) {
	cfg, err := c.config(opts)
	if err != nil {
		return nil, err
	}
	out, err := mergeStacks(a, b, cfg.padding(), c.pair(cfg))
	if err != nil {
		return nil, c.wrap(err)
	}
	return out, nil
}

// StackConstant applies WellConstant to every well of every plate.
func (c *Combinator[T]) StackConstant(s *plate.Stack[T], k T, opts ...Option) (*plate.Stack[T], error) {
	cfg, err := c.config(opts)
	if err != nil {
		return nil, err
	}
	out, err := mapStack(s, c.constant(k, cfg))
	if err != nil {
		return nil, c.wrap(err)
	}
	return out, nil
}

// StackSequence applies WellSequence to every well of every plate.
func (c *Combinator[T]) StackSequence(s *plate.Stack[T], seq []T, opts ...Option) (*plate.Stack[T], error) {
	cfg, err := c.config(opts)
	if err != nil {
		return nil, err
	}
	out, err := mapStack(s, c.sequence(seq, cfg))
	if err != nil {
		return nil, c.wrap(err)
	}
	return out, nil
}
