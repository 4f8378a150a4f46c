package indices

import (
	"encoding/binary"
	"fmt"
	"io"
)

// Wire layout: an 8-byte little-endian index count, then per index the
// name and printed label as ';'-terminated strings, the inclusive bounds
// as two signed 32-bit integers, and one covariance byte (0 covariant,
// 1 contravariant).

const (
	maxWireIndices = 1 << 16
	maxWireLabel   = 1 << 16
)

// Serialize writes the list in the binary wire format.
func (s Indices) Serialize(w io.Writer) error {
	if err := binary.Write(w, binary.LittleEndian, uint64(len(s))); err != nil {
		return err
	}
	for _, ix := range s {
		if _, err := io.WriteString(w, ix.name+";"); err != nil {
			return err
		}
		if _, err := io.WriteString(w, ix.printed+";"); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, int32(ix.lo)); err != nil {
			return err
		}
		if err := binary.Write(w, binary.LittleEndian, int32(ix.hi)); err != nil {
			return err
		}
		flag := byte(0)
		if ix.contravariant {
			flag = 1
		}
		if _, err := w.Write([]byte{flag}); err != nil {
			return err
		}
	}
	return nil
}

// Deserialize reads an index list previously written by Serialize.
// Malformed input returns an error wrapping ErrWrongFormat.
func Deserialize(r io.Reader) (Indices, error) {
	var count uint64
	if err := binary.Read(r, binary.LittleEndian, &count); err != nil {
		return nil, fmt.Errorf("deserialize: %v: %w", err, ErrWrongFormat)
	}
	if count > maxWireIndices {
		return nil, fmt.Errorf("deserialize: implausible index count %d: %w", count, ErrWrongFormat)
	}
	out := make(Indices, 0, count)
	for n := uint64(0); n < count; n++ {
		name, err := readDelimited(r)
		if err != nil {
			return nil, err
		}
		if name == "" {
			return nil, fmt.Errorf("deserialize: empty index name: %w", ErrWrongFormat)
		}
		printed, err := readDelimited(r)
		if err != nil {
			return nil, err
		}
		if printed == "" {
			printed = name
		}
		var lo, hi int32
		if err := binary.Read(r, binary.LittleEndian, &lo); err != nil {
			return nil, fmt.Errorf("deserialize: %v: %w", err, ErrWrongFormat)
		}
		if err := binary.Read(r, binary.LittleEndian, &hi); err != nil {
			return nil, fmt.Errorf("deserialize: %v: %w", err, ErrWrongFormat)
		}
		if hi < lo {
			return nil, fmt.Errorf("deserialize: inverted index range [%d, %d]: %w", lo, hi, ErrWrongFormat)
		}
		var flag [1]byte
		if _, err := io.ReadFull(r, flag[:]); err != nil {
			return nil, fmt.Errorf("deserialize: %v: %w", err, ErrWrongFormat)
		}
		if flag[0] > 1 {
			return nil, fmt.Errorf("deserialize: covariance byte %d: %w", flag[0], ErrWrongFormat)
		}
		out = append(out, Index{
			name:          name,
			printed:       printed,
			lo:            int(lo),
			hi:            int(hi),
			contravariant: flag[0] == 1,
		})
	}
	return out, nil
}

// readDelimited consumes bytes up to the next ';' separator.
func readDelimited(r io.Reader) (string, error) {
	var b [1]byte
	buf := make([]byte, 0, 8)
	for len(buf) < maxWireLabel {
		if _, err := io.ReadFull(r, b[:]); err != nil {
			return "", fmt.Errorf("deserialize: %v: %w", err, ErrWrongFormat)
		}
		if b[0] == ';' {
			return string(buf), nil
		}
		buf = append(buf, b[0])
	}
	return "", fmt.Errorf("deserialize: unterminated label: %w", ErrWrongFormat)
}
