package point

import (
	"encoding/binary"
	"io"

	"golang.org/x/exp/constraints"
)

// Fixed is the constraint for element types that have a fixed size on the wire.
// int, uint and uintptr are platform dependent and therefore not serializable.
type Fixed interface {
	~int8 | ~int16 | ~int32 | ~int64 |
		~uint8 | ~uint16 | ~uint32 | ~uint64 |
		constraints.Float
}

var be = binary.BigEndian

// Write serializes p as X followed by Y, each in the big endian encoding of T.
func Write[T Fixed](w io.Writer, p Point[T]) error {
	if err := binary.Write(w, be, p.X); err != nil {
		return err
	}
	return binary.Write(w, be, p.Y)
}

// Read deserializes a point written by Write.
func Read[T Fixed](r io.Reader) (Point[T], error) {
	var p Point[T]
	if err := binary.Read(r, be, &p.X); err != nil {
		return p, err
	}
	if err := binary.Read(r, be, &p.Y); err != nil {
		return p, err
	}
	return p, nil
}
