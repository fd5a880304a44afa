// Package ops provides the built-in arithmetic operators as ready-made
// combinators, and a registry for looking operators up by name.
//
// # Binary operators
//
// [Add], [Subtract], [Multiply], [Divide], [Modulus], [Minimum] and
// [Maximum] return a [combine.Combinator] for any element type, so one call
// reaches every granularity:
//
//	div := ops.Divide[int](combine.Strict())
//	out, err := div.Plates(signal, background)
//	if errors.Is(err, numeric.ErrDivideByZero) {
//	    // an integer well held a zero divisor
//	}
//
// # Unary operators
//
// [Increment], [Decrement], [Negate] and [Absolute] return a
// [combine.Transformer].
//
// # Registry
//
// A [Registry] maps operator names to operators. [NewDefaultRegistry] is
// preloaded with every built-in under its Name constant.
package ops
