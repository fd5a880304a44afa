package ops

import (
	"fmt"
	"slices"
	"sync"

	"github.com/hasbyte1/go-microplate/combine"
	"github.com/hasbyte1/go-microplate/numeric"
)

// Registry is a thread-safe table of named operators for one element type.
// Binary operators and unary transformers live in separate namespaces.
//
// Register operators once at start-up, then look them up by name wherever
// the operator is chosen at run time, for example from a layout file or a
// command line.
//
// # Thread safety
//
// All Registry methods are safe for concurrent use. A [sync.RWMutex]
// serialises registration while allowing concurrent lookups.
type Registry[T numeric.Value] struct {
	mu     sync.RWMutex
	binary map[string]*combine.Combinator[T]
	unary  map[string]*combine.Transformer[T]
}

// NewRegistry creates an empty Registry.
func NewRegistry[T numeric.Value]() *Registry[T] {
	return &Registry[T]{
		binary: make(map[string]*combine.Combinator[T]),
		unary:  make(map[string]*combine.Transformer[T]),
	}
}

// NewDefaultRegistry creates a Registry with every built-in operator
// registered under its Name constant, using padding alignment.
//
//	reg := ops.NewDefaultRegistry[float64]()
//	div, _ := reg.Operator(ops.NameDivide)
//	out, err := div.Plates(a, b)
func NewDefaultRegistry[T numeric.Value]() *Registry[T] {
	r := NewRegistry[T]()
	for _, c := range []*combine.Combinator[T]{
		Add[T](), Subtract[T](), Multiply[T](), Divide[T](),
		Modulus[T](), Minimum[T](), Maximum[T](),
	} {
		_ = r.Register(c.Name(), c)
	}
	for _, t := range []*combine.Transformer[T]{
		Increment[T](), Decrement[T](), Negate[T](), Absolute[T](),
	} {
		_ = r.RegisterTransformer(t.Name(), t)
	}
	return r
}

// Register adds or replaces a binary operator.
func (r *Registry[T]) Register(name string, c *combine.Combinator[T]) error {
	if name == "" {
		return ErrEmptyName
	}
	if c == nil {
		return ErrNilOperator
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.binary[name] = c
	return nil
}

// RegisterTransformer adds or replaces a unary operator.
func (r *Registry[T]) RegisterTransformer(name string, t *combine.Transformer[T]) error {
	if name == "" {
		return ErrEmptyName
	}
	if t == nil {
		return ErrNilOperator
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.unary[name] = t
	return nil
}

// Operator returns the binary operator registered under name, or
// [ErrOperatorNotFound].
func (r *Registry[T]) Operator(name string) (*combine.Combinator[T], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	c, ok := r.binary[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrOperatorNotFound, name)
	}
	return c, nil
}

// Transformer returns the unary operator registered under name, or
// [ErrOperatorNotFound].
func (r *Registry[T]) Transformer(name string) (*combine.Transformer[T], error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	t, ok := r.unary[name]
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrOperatorNotFound, name)
	}
	return t, nil
}

// Has reports whether a binary or unary operator is registered under name.
func (r *Registry[T]) Has(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, b := r.binary[name]
	_, u := r.unary[name]
	return b || u
}

// Names returns the registered binary operator names in sorted order.
func (r *Registry[T]) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.binary)
}

// TransformerNames returns the registered unary operator names in sorted
// order.
func (r *Registry[T]) TransformerNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return sortedKeys(r.unary)
}

func sortedKeys[V any](m map[string]V) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	slices.Sort(keys)
	return keys
}
