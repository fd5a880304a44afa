// Package combine is the element-wise combination engine shared by every
// arithmetic operator in the module.
//
// # Granularities
//
// A [Combinator] wraps a binary operator and applies it to two wells, two
// well sets, two plates or two stacks. Constant variants broadcast a scalar
// over every value; sequence variants pair each well's values with a fixed
// slice. A [Transformer] does the same for unary operators.
//
// # Alignment
//
// Operands rarely have equal lengths. Two policies are available:
//
//	a := []int{1, 2, 3}
//	b := []int{10, 20}
//
//	padding (default): [f(1,10) f(2,20) 3]  len = max
//	strict:            [f(1,10) f(2,20)]    len = min
//
// At well-set, plate and stack granularity the same choice also decides the
// output key set: strict keeps the intersection of the operands' indices and
// padding keeps the union, copying wells present in only one operand
// unchanged.
//
// # Ranges
//
// [Range] restricts the combination to positions [begin, begin+length),
// clipped to the data available. The result holds only that window, with no
// tail in either alignment:
//
//	sub.Values([]int{1, 2, 3, 4}, []int{1, 1, 1}, combine.Range(1, 5)) // [1 2]
//
// # Errors
//
// An operator error, such as an integer division by zero, aborts the call
// and is returned wrapped with the operator name and the well label. Plate
// and stack operands with different dimensions fail with
// [plate.ErrDimensionMismatch]. Operands are never modified.
package combine
