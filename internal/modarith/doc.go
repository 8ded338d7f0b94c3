// Package modarith provides the arithmetic behind the modviz drawings.
//
// Two operations are supported:
//
//   - [Reduce]: map a natural number into [0, modulus)
//   - [GenerateCycle]: the orbit of 0 under repeated addition of a generator
//
// The package also lays out residues on circles ([ReductionPoints],
// [CyclePoints]) and computes the arrows drawn between them. Nothing here
// depends on a graphics library; front ends convert [Point] values into
// their own coordinate systems.
//
// # Example
//
//	r, _ := modarith.Reduce(7, 3)      // r.Remainder == 1
//	c, _ := modarith.GenerateCycle(3, 12) // c.Residues == [0 3 6 9 0]
package modarith
