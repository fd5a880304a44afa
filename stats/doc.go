// Package stats computes descriptive statistics over wells, well sets,
// plates and stacks.
//
// Values of every element type are converted to float64 and reduced with a
// [Func]; the built-in reducers are backed by gonum's stat and floats
// packages. Per-well functions return one [Result] per well in index order.
// Aggregate functions pool the values of all wells into a single sample:
//
//	means, _ := stats.Plate(p, stats.Mean)
//	overall, _ := stats.PlateAggregate(p, stats.Mean, stats.Range(0, 3))
//
// Empty samples reduce to NaN.
package stats
