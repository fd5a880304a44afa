package numeric

import (
	"cmp"
	"fmt"
	"math"
	"strconv"

	"github.com/shopspring/decimal"
)

// Integer is the set of fixed-width signed integer element types.
type Integer interface {
	int | int8 | int16 | int32 | int64
}

// Float is the set of floating-point element types.
type Float interface {
	float32 | float64
}

// Number is the set of element types supported by Go's built-in operators.
type Number interface {
	Integer | Float
}

// Value is the constraint satisfied by every element type a well can hold.
type Value interface {
	Number | decimal.Decimal
}

// Arithmetic is the trait the combination engine, operators and statistics
// are written against. Implementations are stateless and safe for
// concurrent use.
type Arithmetic[T any] interface {
	// Type returns the data-type tag of T.
	Type() DataType

	Zero() T
	One() T

	Add(a, b T) T
	Sub(a, b T) T
	Mul(a, b T) T

	// Div returns a / b, or ErrDivideByZero for a zero integer or decimal
	// divisor.
	Div(a, b T) (T, error)

	// Mod returns the remainder of a / b with the sign of a, or
	// ErrDivideByZero for a zero integer or decimal divisor.
	Mod(a, b T) (T, error)

	Neg(a T) T
	Abs(a T) T

	// Compare returns -1, 0 or +1. NaN sorts before every other float and
	// compares equal to itself.
	Compare(a, b T) int

	// Float64 converts a to float64, losing precision where necessary.
	Float64(a T) float64

	// FromFloat64 converts f to T, truncating toward zero for integers.
	FromFloat64(f float64) T

	// Format renders a in its shortest exact decimal text form.
	Format(a T) string

	// Parse reads the text produced by Format.
	Parse(s string) (T, error)
}

// For returns the Arithmetic implementation for T.
func For[T Value]() Arithmetic[T] {
	var zero T
	var a any
	switch any(zero).(type) {
	case int:
		a = Native[int]{}
	case int8:
		a = Native[int8]{}
	case int16:
		a = Native[int16]{}
	case int32:
		a = Native[int32]{}
	case int64:
		a = Native[int64]{}
	case float32:
		a = Native[float32]{}
	case float64:
		a = Native[float64]{}
	case decimal.Decimal:
		a = BigDecimal{}
	}
	return a.(Arithmetic[T])
}

// Equal reports whether a and b are numerically equal.
func Equal[T Value](a, b T) bool {
	return For[T]().Compare(a, b) == 0
}

// Compare orders a and b numerically.
func Compare[T Value](a, b T) int {
	return For[T]().Compare(a, b)
}

// ─────────────────────────────────────────────────────────────────────────────
// Built-in numbers
// ─────────────────────────────────────────────────────────────────────────────

// Native implements Arithmetic with Go's built-in operators.
type Native[T Number] struct{}

func (Native[T]) Type() DataType { return TypeOf[T]() }
func (Native[T]) Zero() T        { return 0 }
func (Native[T]) One() T         { return 1 }
func (Native[T]) Add(a, b T) T   { return a + b }
func (Native[T]) Sub(a, b T) T   { return a - b }
func (Native[T]) Mul(a, b T) T   { return a * b }
func (Native[T]) Neg(a T) T      { return -a }

func (n Native[T]) Div(a, b T) (T, error) {
	if b == 0 && n.Type().IsInteger() {
		return 0, ErrDivideByZero
	}
	return a / b, nil
}

func (n Native[T]) Mod(a, b T) (T, error) {
	if !n.Type().IsInteger() {
		return T(math.Mod(float64(a), float64(b))), nil
	}
	if b == 0 {
		return 0, ErrDivideByZero
	}
	return T(int64(a) % int64(b)), nil
}

func (Native[T]) Abs(a T) T {
	if a < 0 {
		return -a
	}
	return a
}

func (Native[T]) Compare(a, b T) int      { return cmp.Compare(a, b) }
func (Native[T]) Float64(a T) float64     { return float64(a) }
func (Native[T]) FromFloat64(f float64) T { return T(f) }

func (n Native[T]) Format(a T) string {
	dt := n.Type()
	if dt.IsInteger() {
		return strconv.FormatInt(int64(a), 10)
	}
	return strconv.FormatFloat(float64(a), 'g', -1, dt.BitSize())
}

func (n Native[T]) Parse(s string) (T, error) {
	dt := n.Type()
	if dt.IsInteger() {
		v, err := strconv.ParseInt(s, 10, dt.BitSize())
		if err != nil {
			return 0, fmt.Errorf("%w: %q as %s: %v", ErrParse, s, dt, err)
		}
		return T(v), nil
	}
	v, err := strconv.ParseFloat(s, dt.BitSize())
	if err != nil {
		return 0, fmt.Errorf("%w: %q as %s: %v", ErrParse, s, dt, err)
	}
	return T(v), nil
}

// ─────────────────────────────────────────────────────────────────────────────
// Arbitrary precision
// ─────────────────────────────────────────────────────────────────────────────

// BigDecimal implements Arithmetic for [decimal.Decimal]. Division keeps
// decimal.DivisionPrecision digits after the point.
type BigDecimal struct{}

func (BigDecimal) Type() DataType                           { return Decimal }
func (BigDecimal) Zero() decimal.Decimal                    { return decimal.Zero }
func (BigDecimal) One() decimal.Decimal                     { return decimal.NewFromInt(1) }
func (BigDecimal) Add(a, b decimal.Decimal) decimal.Decimal { return a.Add(b) }
func (BigDecimal) Sub(a, b decimal.Decimal) decimal.Decimal { return a.Sub(b) }
func (BigDecimal) Mul(a, b decimal.Decimal) decimal.Decimal { return a.Mul(b) }
func (BigDecimal) Neg(a decimal.Decimal) decimal.Decimal    { return a.Neg() }
func (BigDecimal) Abs(a decimal.Decimal) decimal.Decimal    { return a.Abs() }

func (BigDecimal) Div(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, ErrDivideByZero
	}
	return a.Div(b), nil
}

func (BigDecimal) Mod(a, b decimal.Decimal) (decimal.Decimal, error) {
	if b.IsZero() {
		return decimal.Zero, ErrDivideByZero
	}
	return a.Mod(b), nil
}

func (BigDecimal) Compare(a, b decimal.Decimal) int { return a.Cmp(b) }

func (BigDecimal) Float64(a decimal.Decimal) float64 {
	f, _ := a.Float64()
	return f
}

func (BigDecimal) FromFloat64(f float64) decimal.Decimal { return decimal.NewFromFloat(f) }
func (BigDecimal) Format(a decimal.Decimal) string       { return a.String() }

func (BigDecimal) Parse(s string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q as decimal: %v", ErrParse, s, err)
	}
	return d, nil
}
