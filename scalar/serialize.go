package scalar

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Binary layout, all integers little-endian:
//
//	<4-byte kind tag> <payload>
//
//	fraction   -> 8-byte signed numerator, 8-byte unsigned denominator
//	variable   -> name bytes, ';' terminator
//	added      -> 8-byte term count, each term's full form
//	multiplied -> 8-byte factor count, each factor's full form
//
// Fractions serialize their raw numerator/denominator, so a deserialized
// scalar re-serializes byte-identically.

// decode guards against corrupt streams.
const (
	maxWireString = 1 << 16
	maxWireTerms  = 1 << 20
)

// Serialize writes the binary form of the scalar to w.
func (s Scalar) Serialize(w io.Writer) error {
	return encodeNode(w, s.node())
}

// Deserialize reads one scalar from r, consuming exactly the bytes written
// by Serialize. Malformed input returns an error wrapping ErrWrongFormat.
func Deserialize(r io.Reader) (Scalar, error) {
	n, err := decodeNode(r, 0)
	if err != nil {
		return Zero(), err
	}
	return wrap(n), nil
}

func encodeNode(w io.Writer, n scalarNode) error {
	if err := binary.Write(w, binary.LittleEndian, int32(n.kind())); err != nil {
		return err
	}
	switch x := n.(type) {
	case fraction:
		if err := binary.Write(w, binary.LittleEndian, x.num); err != nil {
			return err
		}
		return binary.Write(w, binary.LittleEndian, uint64(x.den))
	case variable:
		_, err := w.Write(append([]byte(x.name), ';'))
		return err
	case added:
		return encodeChildren(w, x.terms)
	case multiplied:
		return encodeChildren(w, x.factors)
	default:
		return fmt.Errorf("serialize: unknown scalar kind %d: %w", n.kind(), ErrWrongFormat)
	}
}

func encodeChildren(w io.Writer, children []scalarNode) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(children))); err != nil {
		return err
	}
	for _, c := range children {
		if err := encodeNode(w, c); err != nil {
			return err
		}
	}
	return nil
}

// decodeNode tracks recursion depth so corrupt nesting cannot exhaust the
// stack.
func decodeNode(r io.Reader, depth int) (scalarNode, error) {
	if depth > 64 {
		return nil, fmt.Errorf("deserialize: nesting too deep: %w", ErrWrongFormat)
	}
	var tag int32
	if err := binary.Read(r, binary.LittleEndian, &tag); err != nil {
		return nil, fmt.Errorf("deserialize: %v: %w", err, ErrWrongFormat)
	}
	switch nodeKind(tag) {
	case kindFraction:
		var num int64
		var den uint64
		if err := binary.Read(r, binary.LittleEndian, &num); err != nil {
			return nil, fmt.Errorf("deserialize: %v: %w", err, ErrWrongFormat)
		}
		if err := binary.Read(r, binary.LittleEndian, &den); err != nil {
			return nil, fmt.Errorf("deserialize: %v: %w", err, ErrWrongFormat)
		}
		if den == 0 || den > uint64(1)<<62 {
			return nil, fmt.Errorf("deserialize: zero or oversized denominator: %w", ErrWrongFormat)
		}
		return fraction{num: num, den: int64(den)}, nil
	case kindVariable:
		name, err := readDelimited(r)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, fmt.Errorf("deserialize: empty variable name: %w", ErrWrongFormat)
		}
		return variable{name: name}, nil
	case kindAdded:
		terms, err := decodeChildren(r, depth)
		if err != nil {
			return nil, err
		}
		return added{terms: terms}, nil
	case kindMultiplied:
		factors, err := decodeChildren(r, depth)
		if err != nil {
			return nil, err
		}
		return multiplied{factors: factors}, nil
	default:
		return nil, fmt.Errorf("deserialize: unknown scalar tag %d: %w", tag, ErrWrongFormat)
	}
}

func decodeChildren(r io.Reader, depth int) ([]scalarNode, error) {
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("deserialize: %v: %w", err, ErrWrongFormat)
	}
	if count < 2 || count > maxWireTerms {
		return nil, fmt.Errorf("deserialize: implausible term count %d: %w", count, ErrWrongFormat)
	}
	children := make([]scalarNode, 0, count)
	for i := uint64(0); i < count; i++ {
		c, err := decodeNode(r, depth+1)
		if err != nil {
			return nil, err
		}
		children = append(children, c)
	}
	return children, nil
}

// readDelimited consumes bytes up to (and including) the next ';' and
// returns them without the terminator. It reads one byte at a time so the
// caller's stream position stays exact for the following field.
func readDelimited(r io.Reader) (string, error) {
	var out []byte
	var b [1]byte
	for {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return "", fmt.Errorf("deserialize: %v: %w", err, ErrWrongFormat)
		}
		if b[0] == ';' {
			return string(out), nil
		}
		out = append(out, b[0])
		if len(out) > maxWireString {
			return "", fmt.Errorf("deserialize: unterminated string: %w", ErrWrongFormat)
		}
	}
}
