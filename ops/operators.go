package ops

import (
	"github.com/hasbyte1/go-microplate/combine"
	"github.com/hasbyte1/go-microplate/numeric"
)

// Names of the built-in operators.
const (
	NameAdd       = "add"
	NameSubtract  = "subtract"
	NameMultiply  = "multiply"
	NameDivide    = "divide"
	NameModulus   = "modulus"
	NameMinimum   = "minimum"
	NameMaximum   = "maximum"
	NameIncrement = "increment"
	NameDecrement = "decrement"
	NameNegate    = "negate"
	NameAbsolute  = "absolute"
)

// ─────────────────────────────────────────────────────────────────────────────
// Binary
// ─────────────────────────────────────────────────────────────────────────────

// Add returns a combinator computing a + b.
func Add[T numeric.Value](opts ...combine.Option) *combine.Combinator[T] {
	ar := numeric.For[T]()
	return combine.New[T](NameAdd, func(a, b T) (T, error) { return ar.Add(a, b), nil }, opts...)
}

// Subtract returns a combinator computing a - b.
func Subtract[T numeric.Value](opts ...combine.Option) *combine.Combinator[T] {
	ar := numeric.For[T]()
	return combine.New[T](NameSubtract, func(a, b T) (T, error) { return ar.Sub(a, b), nil }, opts...)
}

// Multiply returns a combinator computing a * b.
func Multiply[T numeric.Value](opts ...combine.Option) *combine.Combinator[T] {
	ar := numeric.For[T]()
	return combine.New[T](NameMultiply, func(a, b T) (T, error) { return ar.Mul(a, b), nil }, opts...)
}

// Divide returns a combinator computing a / b. A zero integer or decimal
// divisor aborts the call with numeric.ErrDivideByZero; float division
// follows IEEE-754.
func Divide[T numeric.Value](opts ...combine.Option) *combine.Combinator[T] {
	return combine.New[T](NameDivide, numeric.For[T]().Div, opts...)
}

// Modulus returns a combinator computing the remainder of a / b with the
// sign of a.
func Modulus[T numeric.Value](opts ...combine.Option) *combine.Combinator[T] {
	return combine.New[T](NameModulus, numeric.For[T]().Mod, opts...)
}

// Minimum returns a combinator keeping the smaller of a and b.
func Minimum[T numeric.Value](opts ...combine.Option) *combine.Combinator[T] {
	ar := numeric.For[T]()
	return combine.New[T](NameMinimum, func(a, b T) (T, error) {
		if ar.Compare(b, a) < 0 {
			return b, nil
		}
		return a, nil
	}, opts...)
}

// Maximum returns a combinator keeping the larger of a and b.
func Maximum[T numeric.Value](opts ...combine.Option) *combine.Combinator[T] {
	ar := numeric.For[T]()
	return combine.New[T](NameMaximum, func(a, b T) (T, error) {
		if ar.Compare(b, a) > 0 {
			return b, nil
		}
		return a, nil
	}, opts...)
}

// ─────────────────────────────────────────────────────────────────────────────
// Unary
// ─────────────────────────────────────────────────────────────────────────────

// Increment returns a transformer adding one to every value.
func Increment[T numeric.Value](opts ...combine.Option) *combine.Transformer[T] {
	ar := numeric.For[T]()
	return combine.NewTransformer[T](NameIncrement, func(v T) (T, error) { return ar.Add(v, ar.One()), nil }, opts...)
}

// Decrement returns a transformer subtracting one from every value.
func Decrement[T numeric.Value](opts ...combine.Option) *combine.Transformer[T] {
	ar := numeric.For[T]()
	return combine.NewTransformer[T](NameDecrement, func(v T) (T, error) { return ar.Sub(v, ar.One()), nil }, opts...)
}

// Negate returns a transformer flipping the sign of every value.
func Negate[T numeric.Value](opts ...combine.Option) *combine.Transformer[T] {
	ar := numeric.For[T]()
	return combine.NewTransformer[T](NameNegate, func(v T) (T, error) { return ar.Neg(v), nil }, opts...)
}

// Absolute returns a transformer replacing every value by its magnitude.
func Absolute[T numeric.Value](opts ...combine.Option) *combine.Transformer[T] {
	ar := numeric.For[T]()
	return combine.NewTransformer[T](NameAbsolute, func(v T) (T, error) { return ar.Abs(v), nil }, opts...)
}
