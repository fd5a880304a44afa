package stats

import (
	"errors"
	"fmt"
)

// Sentinel errors returned by the statistics functions.
var (
	// ErrInvalidRange is returned when Range is given a negative begin or
	// length.
	ErrInvalidRange = errors.New("stats: invalid range")

	// ErrNilOperand is returned when a nil well, well set, plate or stack is
	// passed.
	ErrNilOperand = errors.New("stats: nil operand")
)

// Option adjusts a single statistics call.
type Option func(*config)

// Range restricts every well to value positions [begin, begin+length),
// clipped to the values available.
func Range(begin, length int) Option {
	return func(c *config) {
		c.ranged = true
		c.begin = begin
		c.length = length
	}
}

type config struct {
	ranged bool
	begin  int
	length int
}

func resolve(opts []Option) (config, error) {
	var cfg config
	for _, o := range opts {
		o(&cfg)
	}
	if cfg.ranged && (cfg.begin < 0 || cfg.length < 0) {
		return cfg, fmt.Errorf("%w: begin %d, length %d", ErrInvalidRange, cfg.begin, cfg.length)
	}
	return cfg, nil
}

// window clips the configured range to n available positions.
func (c config) window(n int) (begin, end int) {
	if !c.ranged {
		return 0, n
	}
	begin = min(c.begin, n)
	return begin, begin + min(c.length, n-begin)
}
