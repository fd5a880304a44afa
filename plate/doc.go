// Package plate models laboratory microplate data: rectangular grids of
// addressable wells, each holding an ordered sequence of numeric
// measurements.
//
// # Overview
//
// The model is built from five types, each generic over the element type
// constraint [numeric.Value]:
//
//   - [Index] addresses a well by zero-based row and one-based column and
//     renders as a spreadsheet-style label ("A1", "H12", "AA3").
//   - [Well] binds an Index to an ordered, mutable slice of values.
//   - [WellSet] is an ordered, duplicate-free collection of wells.
//   - [Plate] is a fixed rows x columns grid owning one WellSet and a set
//     of named [Group]s.
//   - [Stack] is an ordered collection of same-dimension plates.
//
//	p, _ := plate.NewPlate[float64](plate.Plate96, "Run1")
//	w, _ := plate.ParseWell("B3", 0.12, 0.15, 0.19)
//	p.AddWells(w)
//	p.AddGroups(plate.NewBlockGroup("Blanks", plate.MustParseIndex("A1"), plate.MustParseIndex("A3")))
//	blanks, _ := p.ResolveGroup("Blanks")
//
// # Ordering
//
// Indices order by row, then column, and every container iterates in that
// order. Plates order by (rows x columns, rows, columns, label, data type);
// a Stack iterates its plates in that order.
//
// # Batches
//
// Mutating methods accept any number of items and return an [Outcome].
// Every item is attempted, failures are recorded per item with the sentinel
// error that caused them, and the effects of the successful items stay in
// place:
//
//	out := p.AddWells(inside, outside, duplicate)
//	out.Succeeded()                      // 1
//	errors.Is(out.Err(), plate.ErrBounds) // true
//
// Failed items are also reported through the module's logging hook.
//
// # Ownership
//
// Containers copy what is inserted into them. Plates, well sets and stacks
// never share wells or plates with one another, so a combined or copied
// structure can be mutated without affecting its source.
//
// # Concurrency
//
// No type in this package is safe for concurrent mutation. Concurrent reads
// of a structure that is not being mutated are safe.
package plate
