package tensor

import (
	"bytes"
	"encoding/binary"
	"fmt"
	"io"

	"github.com/katalvlaran/tensorium/indices"
	"github.com/katalvlaran/tensorium/scalar"
)

// Wire layout, all integers little-endian:
//
//	name ';' printed ';' <index list> <4-byte kind tag> <payload>
//
//	Added        -> 8-byte summand count, each summand's full form
//	Multiplied   -> both factors' full forms
//	Scaled       -> the scale's scalar form, then the child's full form
//	Substitute   -> the child's full form
//	Scalar       -> the value's scalar form
//	Gamma        -> two signed 4-byte integers (p, q)
//	EpsilonGamma -> two unsigned 4-byte integers (block counts)
//	others       -> nothing; index list and kind tag suffice
//
// The kind tags are the Kind constants; streams stay readable across
// versions as long as those are never renumbered.

// decode guards against corrupt streams.
const (
	maxWireDepth    = 64
	maxWireChildren = 1 << 16
	maxWireLabel    = 1 << 16
)

// Serialize writes the binary form of the tensor to w.
func (t Tensor) Serialize(w io.Writer) error {
	return encodeNode(w, t.node())
}

// Deserialize reads one tensor from r, consuming exactly the bytes
// written by Serialize. Malformed input returns an error wrapping
// ErrWrongFormat.
func Deserialize(r io.Reader) (Tensor, error) {
	n, err := decodeNode(r, 0)
	if err != nil {
		return Tensor{}, err
	}
	return Tensor{n: n}, nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (t Tensor) MarshalBinary() ([]byte, error) {
	var buf bytes.Buffer
	if err := t.Serialize(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (t *Tensor) UnmarshalBinary(data []byte) error {
	u, err := Deserialize(bytes.NewReader(data))
	if err != nil {
		return err
	}
	t.n = u.node()
	return nil
}

func encodeNode(w io.Writer, n node) error {
	if _, err := io.WriteString(w, nodeName(n)+";"); err != nil {
		return err
	}
	if _, err := io.WriteString(w, nodePrinted(n)+";"); err != nil {
		return err
	}
	if err := n.indicesOf().Serialize(w); err != nil {
		return err
	}
	if err := binary.Write(w, binary.LittleEndian, int32(n.kind())); err != nil {
		return err
	}
	switch x := n.(type) {
	case addedNode:
		if err := binary.Write(w, binary.LittleEndian, uint64(len(x.children))); err != nil {
			return err
		}
		for _, c := range x.children {
			if err := encodeNode(w, c); err != nil {
				return err
			}
		}
		return nil
	case multipliedNode:
		if err := encodeNode(w, x.left); err != nil {
			return err
		}
		return encodeNode(w, x.right)
	case scaledNode:
		if err := x.scale.Serialize(w); err != nil {
			return err
		}
		return encodeNode(w, x.child)
	case substituteNode:
		return encodeNode(w, x.child)
	case scalarLeaf:
		return x.value.Serialize(w)
	case gammaNode:
		if err := binary.Write(w, binary.LittleEndian, int32(x.p)); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, int32(x.q))
	case epsilonGammaNode:
		if err := binary.Write(w, binary.LittleEndian, uint32(x.numEpsilon)); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, uint32(x.numGamma))
	default:
		return nil
	}
}

// decodeNode tracks recursion depth so corrupt nesting cannot exhaust
// the stack. Composite kinds rebuild their derived state (a product's
// contracted index list, a delta's slot orientation) instead of trusting
// the stream.
func decodeNode(r io.Reader, depth int) (node, error) {
	if depth > maxWireDepth {
		return nil, wireErrMsg("nesting too deep")
	}
	name, err := readDelimited(r)
	if err != nil {
		return nil, err
	}
	printed, err := readDelimited(r)
	if err != nil {
		return nil, err
	}
	idx, err := indices.Deserialize(r)
	if err != nil {
		return nil, wireErr(err)
	}
	var tag int32
	if err := binary.Read(r, binary.LittleEndian, &tag); err != nil {
		return nil, wireErr(err)
	}

	switch Kind(tag) {
	case KindZero:
		return zeroNode{}, nil
	case KindScalar:
		value, err := scalar.Deserialize(r)
		if err != nil {
			return nil, wireErr(err)
		}
		return scalarLeaf{name: name, printed: printed, value: value}, nil
	case KindGeneric:
		return genericNode{name: name, printed: printed, idx: idx}, nil
	case KindDelta:
		if len(idx) != 2 {
			return nil, wireErrMsg("delta requires exactly two indices")
		}
		return deltaNode{idx: deltaVariance(idx)}, nil
	case KindEpsilon:
		if len(idx) == 0 || !idx.AllRangesEqual() || idx[0].RangeSize() != len(idx) {
			return nil, wireErrMsg("epsilon index ranges do not span the slots")
		}
		return epsilonNode{idx: idx}, nil
	case KindGamma:
		var p, q int32
		if err := binary.Read(r, binary.LittleEndian, &p); err != nil {
			return nil, wireErr(err)
		}
		if err := binary.Read(r, binary.LittleEndian, &q); err != nil {
			return nil, wireErr(err)
		}
		if len(idx) != 2 || p < 0 || q < 0 {
			return nil, wireErrMsg("gamma requires two indices and a nonnegative signature")
		}
		return gammaNode{idx: idx, p: int(p), q: int(q)}, nil
	case KindEpsilonGamma:
		var numEpsilon, numGamma uint32
		if err := binary.Read(r, binary.LittleEndian, &numEpsilon); err != nil {
			return nil, wireErr(err)
		}
		if err := binary.Read(r, binary.LittleEndian, &numGamma); err != nil {
			return nil, wireErr(err)
		}
		if numEpsilon > 1 || 3*int(numEpsilon)+2*int(numGamma) != len(idx) {
			return nil, wireErrMsg("epsilon-gamma block counts do not match the index list")
		}
		return epsilonGammaNode{idx: idx, numEpsilon: int(numEpsilon), numGamma: int(numGamma)}, nil
	case KindAdded:
		var count uint64
		if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
			return nil, wireErr(err)
		}
		if count < 2 || count > maxWireChildren {
			return nil, wireErrMsg(fmt.Sprintf("implausible summand count %d", count))
		}
		children := make([]node, 0, count)
		for i := uint64(0); i < count; i++ {
			c, err := decodeNode(r, depth+1)
			if err != nil {
				return nil, err
			}
			children = append(children, c)
		}
		return addedNode{idx: idx, children: children}, nil
	case KindMultiplied:
		left, err := decodeNode(r, depth+1)
		if err != nil {
			return nil, err
		}
		right, err := decodeNode(r, depth+1)
		if err != nil {
			return nil, err
		}
		return multipliedNode{
			idx:   left.indicesOf().Contract(right.indicesOf()),
			left:  left,
			right: right,
		}, nil
	case KindScaled:
		scale, err := scalar.Deserialize(r)
		if err != nil {
			return nil, wireErr(err)
		}
		child, err := decodeNode(r, depth+1)
		if err != nil {
			return nil, err
		}
		return scaledNode{scale: scale, child: child}, nil
	case KindSubstitute:
		child, err := decodeNode(r, depth+1)
		if err != nil {
			return nil, err
		}
		if !idx.IsPermutationOf(child.indicesOf()) {
			return nil, wireErrMsg("substitute indices are not a permutation of the child's")
		}
		return substituteNode{idx: idx, child: child}, nil
	default:
		return nil, wireErrMsg(fmt.Sprintf("unknown kind tag %d", tag))
	}
}

// readDelimited consumes bytes up to (and excluding) the next ';'. Node
// names may legally be empty.
func readDelimited(r io.Reader) (string, error) {
	var out []byte
	var b [1]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return "", wireErr(err)
		}
		if b[0] == ';' {
			return string(out), nil
		}
		out = append(out, b[0])
		if len(out) > maxWireLabel {
			return "", wireErrMsg("unterminated label")
		}
	}
}
