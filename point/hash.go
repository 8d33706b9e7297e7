package point

import (
	"encoding/binary"
	"math"
	"reflect"

	"github.com/cespare/xxhash/v2"
)

const goldenRatio = 0x9e3779b9

// Hasher hashes and compares points, for hash based containers that take
// the hash and equality functions separately.
// Go maps can key on Point directly, since it is comparable.
type Hasher[T Scalar] struct{}

// Hash mixes the hash of X into a zero seed, then the hash of Y into the result.
// The order matters: (x, y) and (y, x) hash differently.
func (Hasher[T]) Hash(p Point[T]) uint64 {
	var seed uint64
	seed = mix(seed, hashScalar(p.X))
	seed = mix(seed, hashScalar(p.Y))
	return seed
}

func (Hasher[T]) Equal(a, b Point[T]) bool {
	return a == b
}

// Hash is a shorthand for Hasher[T]{}.Hash(p).
func Hash[T Scalar](p Point[T]) uint64 {
	return Hasher[T]{}.Hash(p)
}

func mix(seed, h uint64) uint64 {
	return seed ^ (h + goldenRatio + (seed << 6) + (seed >> 2))
}

// hashScalar hashes integers to themselves (sign extended) and floats to
// the xxhash of their float64 bits, with 0 and -0 both hashing to 0.
func hashScalar[T Scalar](v T) uint64 {
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint64(rv.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint()
	default:
		f := rv.Float()
		if f == 0 {
			return 0
		}
		var b [8]byte
		binary.LittleEndian.PutUint64(b[:], math.Float64bits(f))
		return xxhash.Sum64(b[:])
	}
}
