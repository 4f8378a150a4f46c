// Package matrix provides the dense numeric collaborator of the tensor
// engine: a row-major float64 matrix with bounds-checked access and an
// in-place reduced row-echelon kernel.
//
// What & Why:
//
//	The linear-independence simplifier evaluates a sum of tensors over
//	every concrete index assignment and collects the results into a
//	(combinations × summands) matrix. Reducing that matrix to row-echelon
//	form exposes which summands are linearly dependent; the pivot columns
//	name a minimal spanning set. The same kernel backs the extraction of
//	homogeneous linear systems from tensor equations with symbolic
//	coefficients.
//
// The package provides:
//
//   - Matrix, the minimal mutable 2-D interface (Rows, Cols, At, Set,
//     Clone) every kernel is written against.
//   - Dense, the flat row-major implementation used throughout the engine.
//   - RowEchelonInPlace / RowEchelon, partial-pivoting Gauss–Jordan
//     reduction with an epsilon snapping policy for float noise.
//
// Complexity:
//
//	At/Set are O(1) with bounds checks; Clone is O(r*c);
//	row reduction is O(rows * cols * min(rows, cols)).
package matrix
