// Package tensorium is your in-memory workbench for symbolic tensor
// algebra: covariant expressions built from metrics, deltas and
// Levi-Civita symbols, reduced to canonical form without ever fixing
// a coordinate basis.
//
// 🚀 What is tensorium?
//
//	A focused, exact-arithmetic engine that brings together:
//		• Exact scalars: rational coefficients with symbolic variables
//		• Index algebra: named slots, ranges, variance & contraction
//		• Atom tensors: generic symbols, δ, γ of any signature, ε and ε·γ blocks
//		• Expression trees: sums, products, scalar multiples, relabelings
//		• Canonical forms: slot sorting with tracked permutation signs
//		• Symmetrization: full, anti- and pairwise-exchange orbits
//		• Reduction: numeric linear-independence tests over component space
//		• Persistence: a compact binary wire format for snapshots
//
// ✨ Why choose tensorium?
//
//   - Exact by default – rational arithmetic, no floating drift in coefficients
//   - Immutable nodes – every operation returns a fresh expression, safe to share
//   - Parallel where it pays – permutation orbits fan out across workers
//   - Pure Go – no cgo, no external computer-algebra system required
//
// Under the hood, everything is organized under four subpackages:
//
//	scalar/  — exact rational scalars with symbolic variables
//	indices/ — index names, ranges, covariance and enumeration
//	matrix/  — dense matrices and the row-echelon rank kernel
//	tensor/  — expression trees: atoms, algebra, canonical forms, wire I/O
//
// Quick example:
//
//	    γ_ab γ_cd + γ_ac γ_bd + γ_ad γ_bc
//
//	is the symmetric isotropic rank-4 ansatz; Simplify and
//	ToHomogeneousLinearSystem decide which of its pieces are
//	linearly independent.
//
// Dive into examples/ for worked demos, from ε-contraction identities
// to rank analysis of isotropic ansätze.
//
//	go get github.com/katalvlaran/tensorium
package tensorium
