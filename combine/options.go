package combine

import "fmt"

// Alignment decides how operands of different lengths are combined.
type Alignment int

const (
	// AlignPadding combines the overlapping prefix and appends the unmodified
	// tail of the longer operand. At set level the output holds the union of
	// the operands' indices. This is the default.
	AlignPadding Alignment = iota

	// AlignStrict combines the overlapping prefix only. At set level the
	// output holds the intersection of the operands' indices.
	AlignStrict
)

// String returns "padding" or "strict".
func (a Alignment) String() string {
	if a == AlignStrict {
		return "strict"
	}
	return "padding"
}

// Option adjusts how a single combination is performed.
type Option func(*config)

// Strict selects AlignStrict.
func Strict() Option { return func(c *config) { c.align = AlignStrict } }

// Padding selects AlignPadding.
func Padding() Option { return func(c *config) { c.align = AlignPadding } }

// Range limits the combination to value positions [begin, begin+length),
// clipped to the data available. Only positions in the window are returned;
// no tail is appended in either alignment.
func Range(begin, length int) Option {
	return func(c *config) {
		c.ranged = true
		c.begin = begin
		c.length = length
	}
}

type config struct {
	align  Alignment
	ranged bool
	begin  int
	length int
}

func resolve(defaults, opts []Option) (config, error) {
	cfg := config{align: AlignPadding}
	for _, o := range defaults {
		o(&cfg)
	}
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.ranged && (cfg.begin < 0 || cfg.length < 0) {
		return cfg, fmt.Errorf("%w: begin %d, length %d", ErrInvalidRange, cfg.begin, cfg.length)
	}
	return cfg, nil
}

func (c config) padding() bool { return c.align == AlignPadding }

// window clips the configured range to n available positions.
func (c config) window(n int) (begin, end int) {
	begin = min(c.begin, n)
	return begin, begin + min(c.length, n-begin)
}
