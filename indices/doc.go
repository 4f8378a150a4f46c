// Package indices models the slot algebra of the tensor engine: named,
// ranged, covariant or contravariant index handles, ordered index lists,
// and the permutation machinery that reconciles differently ordered lists.
//
// The package provides:
//
//   - Index, an immutable value type carrying a name, a printed (TeX-ish)
//     label, an inclusive value range and a covariance flag. Equality is
//     name+range based and deliberately ignores covariance so a raised and
//     a lowered occurrence of the same letter match for contraction.
//   - Indices, an ordered list with the operations the tensor layer is
//     built on: Contract (external signature of a product), Shuffle
//     (relabeling under a name-keyed map), Ordered (canonical sort),
//     Partial (positional sub-list) and All (cartesian enumeration of
//     every concrete value assignment).
//   - Permutation, the bijection between two slot orders together with its
//     parity sign, and Assignment, the name→value map used to forward one
//     argument vector to children whose lists are ordered differently.
//   - RomanSeries and GreekSeries, the letter-series constructors for the
//     common spatial {1..3} and spacetime {0..3} index families.
//
// All enumeration is O(∏ range sizes); callers own the responsibility of
// not enumerating combinatorially explosive ranges.
package indices
