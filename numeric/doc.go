// Package numeric defines the element types a microplate can hold and the
// small arithmetic trait the rest of the module is written against.
//
// # Element types
//
// [Value] is the constraint satisfied by every supported measurement type:
// the signed integers, float32, float64 and [decimal.Decimal] for
// arbitrary-precision work. Plates, stacks and wells are generic over Value,
// so one implementation serves every numeric type.
//
// # Arithmetic
//
// Go operators cannot be applied to decimal.Decimal, so arithmetic is reached
// through the [Arithmetic] trait instead of `+` and `-`:
//
//	ar := numeric.For[float64]()
//	ar.Add(1.5, 2)                 // 3.5
//	_, err := numeric.For[int]().Div(1, 0) // ErrDivideByZero
//
// # Data-type tags
//
// Every element type maps to a [DataType] tag ("int32", "float64",
// "decimal", …). Plates carry the tag and serialised snapshots use it to
// refuse loading data into the wrong element type.
package numeric
