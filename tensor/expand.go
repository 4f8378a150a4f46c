package tensor

// Expand distributes products over sums and scales over summands,
// producing a flat sum of non-added terms. Expanding an already expanded
// tensor is a no-op.
func (t Tensor) Expand() Tensor {
	result := Zero()
	for _, summand := range t.Summands() {
		switch x := summand.node().(type) {
		case scaledNode:
			for _, inner := range (Tensor{n: x.child}).Expand().Summands() {
				result = result.Add(inner.MulScalar(x.scale))
			}
		case multipliedNode:
			lefts := (Tensor{n: x.left}).Expand().Summands()
			rights := (Tensor{n: x.right}).Expand().Summands()
			for _, l := range lefts {
				for _, r := range rights {
					result = result.Add(l.Mul(r))
				}
			}
		default:
			result = result.Add(summand)
		}
	}
	return result
}
