package combine

import (
	"fmt"
	"slices"

	"github.com/hasbyte1/go-microplate/numeric"
)

// zip combines a and b position by position under cfg.
func zip[T numeric.Value](fn Func[T], a, b []T, cfg config) ([]T, error) {
	if cfg.ranged {
		begin, end := cfg.window(min(len(a), len(b)))
		out := make([]T, 0, end-begin)
		for i := begin; i < end; i++ {
			v, err := fn(a[i], b[i])
			if err != nil {
				return nil, fmt.Errorf("position %d: %w", i, err)
			}
			out = append(out, v)
		}
		return out, nil
	}

	n := min(len(a), len(b))
	size := n
	if cfg.padding() {
		size = max(len(a), len(b))
	}
	out := make([]T, 0, size)
	for i := 0; i < n; i++ {
		v, err := fn(a[i], b[i])
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", i, err)
		}
		out = append(out, v)
	}
	if cfg.padding() {
		if len(a) > n {
			out = append(out, a[n:]...)
		} else {
			out = append(out, b[n:]...)
		}
	}
	return out, nil
}

// apply maps fn over a, or over the configured window of a.
func apply[T numeric.Value](fn func(T) (T, error), a []T, cfg config) ([]T, error) {
	begin, end := 0, len(a)
	if cfg.ranged {
		begin, end = cfg.window(len(a))
	}
	out := slices.Clone(a[begin:end])
	for i, v := range out {
		r, err := fn(v)
		if err != nil {
			return nil, fmt.Errorf("position %d: %w", begin+i, err)
		}
		out[i] = r
	}
	return out, nil
}
