package tensor

import (
	"strings"

	"github.com/katalvlaran/tensorium/indices"
	"github.com/katalvlaran/tensorium/scalar"
)

// renderFactor renders a node as the operand of a product or a leading
// minus, parenthesizing sums so the printed form keeps its precedence.
func renderFactor(n node) string {
	if n.kind() == KindAdded {
		return "(" + n.render() + ")"
	}
	return n.render()
}

// addedNode is an n-ary sum. Its own index list fixes the slot order the
// sum is evaluated in; every child must carry a permutation of that list,
// which is checked lazily at evaluation time.
type addedNode struct {
	idx      indices.Indices
	children []node
}

func (x addedNode) kind() Kind                 { return KindAdded }
func (x addedNode) indicesOf() indices.Indices { return x.idx }

func (x addedNode) withIndices(idx indices.Indices) node {
	m := mapSlots(x.idx, idx)
	children := make([]node, len(x.children))
	for i, child := range x.children {
		children[i] = child.withIndices(child.indicesOf().Shuffle(m))
	}
	return addedNode{idx: idx.Clone(), children: children}
}

func (x addedNode) canonicalize() node {
	children := make([]node, len(x.children))
	for i, child := range x.children {
		children[i] = child.canonicalize()
	}
	return addedNode{idx: x.idx, children: children}
}

// evaluate routes the argument vector through a name→value assignment so
// children with permuted index lists receive their values in slot order.
func (x addedNode) evaluate(args []int) (scalar.Scalar, error) {
	if err := arity(args, len(x.idx)); err != nil {
		return scalar.Scalar{}, err
	}
	a, err := indices.NewAssignment(x.idx, args)
	if err != nil {
		return scalar.Scalar{}, tensorErrorf(opEvaluate, ErrCannotAdd)
	}
	sum := scalar.Zero()
	for _, child := range x.children {
		childArgs, err := a.Args(child.indicesOf())
		if err != nil {
			return scalar.Scalar{}, tensorErrorf(opEvaluate, ErrCannotAdd)
		}
		v, err := child.evaluate(childArgs)
		if err != nil {
			return scalar.Scalar{}, err
		}
		sum = sum.Add(v)
	}
	return sum, nil
}

func (x addedNode) render() string {
	if len(x.children) == 0 {
		return "0"
	}
	var b strings.Builder
	b.WriteString(x.children[0].render())
	for _, child := range x.children[1:] {
		if sc, ok := child.(scaledNode); ok && sc.scale.Equal(scalar.FromInt(-1)) {
			b.WriteString(" - ")
			b.WriteString(renderFactor(sc.child))
			continue
		}
		b.WriteString(" + ")
		b.WriteString(child.render())
	}
	return b.String()
}

// multipliedNode is a binary product. Its own index list is the
// contraction of the children's lists; indices present in a child but
// absent here are summed over during evaluation.
type multipliedNode struct {
	idx   indices.Indices
	left  node
	right node
}

func (x multipliedNode) kind() Kind                 { return KindMultiplied }
func (x multipliedNode) indicesOf() indices.Indices { return x.idx }
func (x multipliedNode) render() string             { return renderFactor(x.left) + renderFactor(x.right) }

func (x multipliedNode) withIndices(idx indices.Indices) node {
	m := mapSlots(x.idx, idx)
	return multipliedNode{
		idx:   idx.Clone(),
		left:  x.left.withIndices(x.left.indicesOf().Shuffle(m)),
		right: x.right.withIndices(x.right.indicesOf().Shuffle(m)),
	}
}

// canonicalize normalizes both factors and hoists any scales they emit
// into a single coefficient outside the product.
func (x multipliedNode) canonicalize() node {
	scale := scalar.One()
	left := x.left.canonicalize()
	if sc, ok := left.(scaledNode); ok {
		scale = scale.Mul(sc.scale)
		left = sc.child
	}
	right := x.right.canonicalize()
	if sc, ok := right.(scaledNode); ok {
		scale = scale.Mul(sc.scale)
		right = sc.child
	}
	n := multipliedNode{idx: x.idx, left: left, right: right}
	if scale.IsOne() {
		return n
	}
	return scaledNode{scale: scale, child: n}
}

// contracted collects the indices summed over inside the product: those
// carried by either child but absent from the external list. Each shows
// up once, left child's first.
func (x multipliedNode) contracted() indices.Indices {
	seen := make(map[string]bool, len(x.idx))
	for _, ix := range x.idx {
		seen[ix.Name()] = true
	}
	var out indices.Indices
	for _, child := range []node{x.left, x.right} {
		for _, ix := range child.indicesOf() {
			if seen[ix.Name()] {
				continue
			}
			seen[ix.Name()] = true
			out = append(out, ix)
		}
	}
	return out
}

// evaluate holds the external indices fixed and accumulates the product
// of the factors over every concrete value of the contracted indices.
// This double sum is where the real evaluation cost lives.
func (x multipliedNode) evaluate(args []int) (scalar.Scalar, error) {
	if err := arity(args, len(x.idx)); err != nil {
		return scalar.Scalar{}, err
	}
	external, err := indices.NewAssignment(x.idx, args)
	if err != nil {
		return scalar.Scalar{}, tensorErrorf(opEvaluate, ErrCannotMultiply)
	}
	inner := x.contracted()
	sum := scalar.Zero()
	for _, combo := range inner.All() {
		a := external.Clone()
		for i, ix := range inner {
			a[ix.Name()] = combo[i]
		}
		leftArgs, err := a.Args(x.left.indicesOf())
		if err != nil {
			return scalar.Scalar{}, tensorErrorf(opEvaluate, ErrCannotMultiply)
		}
		rightArgs, err := a.Args(x.right.indicesOf())
		if err != nil {
			return scalar.Scalar{}, tensorErrorf(opEvaluate, ErrCannotMultiply)
		}
		lv, err := x.left.evaluate(leftArgs)
		if err != nil {
			return scalar.Scalar{}, err
		}
		rv, err := x.right.evaluate(rightArgs)
		if err != nil {
			return scalar.Scalar{}, err
		}
		sum = sum.Add(lv.Mul(rv))
	}
	return sum, nil
}

// scaledNode attaches a scalar coefficient to a single child. It carries
// no index list of its own; slot structure is the child's.
type scaledNode struct {
	scale scalar.Scalar
	child node
}

func (x scaledNode) kind() Kind                 { return KindScaled }
func (x scaledNode) indicesOf() indices.Indices { return x.child.indicesOf() }

func (x scaledNode) withIndices(idx indices.Indices) node {
	return scaledNode{scale: x.scale, child: x.child.withIndices(idx)}
}

// canonicalize normalizes the child and folds a scale the child emits
// into this one, keeping the tree free of nested Scaled chains.
func (x scaledNode) canonicalize() node {
	c := x.child.canonicalize()
	if sc, ok := c.(scaledNode); ok {
		return scaledNode{scale: x.scale.Mul(sc.scale), child: sc.child}
	}
	return scaledNode{scale: x.scale, child: c}
}

func (x scaledNode) evaluate(args []int) (scalar.Scalar, error) {
	v, err := x.child.evaluate(args)
	if err != nil {
		return scalar.Scalar{}, err
	}
	return v.Mul(x.scale), nil
}

func (x scaledNode) render() string {
	prefix := ""
	switch {
	case x.scale.IsOne():
	case x.scale.Equal(scalar.FromInt(-1)):
		prefix = "-"
	case x.scale.IsAdded():
		prefix = "(" + x.scale.String() + ") * "
	default:
		prefix = x.scale.String() + " * "
	}
	return prefix + renderFactor(x.child)
}

// substituteNode relabels the slots of its child: its own index list is a
// permutation of the child's, and evaluation routes values through the
// names accordingly. Printing stays the child's.
type substituteNode struct {
	idx   indices.Indices
	child node
}

func (x substituteNode) kind() Kind                 { return KindSubstitute }
func (x substituteNode) indicesOf() indices.Indices { return x.idx }
func (x substituteNode) render() string             { return x.child.render() }

// withIndices keeps the wrapper's slot permutation intact by applying the
// same relabeling to the child through the stored permutation.
func (x substituteNode) withIndices(idx indices.Indices) node {
	p, err := indices.PermutationBetween(x.idx, x.child.indicesOf())
	if err != nil {
		panic(panicSlotMismatch)
	}
	childIdx, err := p.Apply(idx)
	if err != nil {
		panic(panicSlotMismatch)
	}
	return substituteNode{idx: idx.Clone(), child: x.child.withIndices(childIdx)}
}

func (x substituteNode) canonicalize() node {
	c := x.child.canonicalize()
	if sc, ok := c.(scaledNode); ok {
		return scaledNode{scale: sc.scale, child: substituteNode{idx: x.idx, child: sc.child}}
	}
	return substituteNode{idx: x.idx, child: c}
}

func (x substituteNode) evaluate(args []int) (scalar.Scalar, error) {
	if err := arity(args, len(x.idx)); err != nil {
		return scalar.Scalar{}, err
	}
	a, err := indices.NewAssignment(x.idx, args)
	if err != nil {
		return scalar.Scalar{}, tensorErrorf(opEvaluate, ErrCannotContract)
	}
	childArgs, err := a.Args(x.child.indicesOf())
	if err != nil {
		return scalar.Scalar{}, tensorErrorf(opEvaluate, ErrCannotContract)
	}
	return x.child.evaluate(childArgs)
}
