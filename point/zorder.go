package point

import (
	"fmt"
	"math"

	"golang.org/x/exp/constraints"
)

var (
	zMasks = [...]uint64{
		0b0101010101010101010101010101010101010101010101010101010101010101,
		0b0011001100110011001100110011001100110011001100110011001100110011,
		0b0000111100001111000011110000111100001111000011110000111100001111,
		0b0000000011111111000000001111111100000000111111110000000011111111,
		0b0000000000000000111111111111111100000000000000001111111111111111,
		0b0000000000000000000000000000000011111111111111111111111111111111,
	}
	zShifts = [...]uint64{0, 1, 2, 4, 8, 16}
)

// ZOrder interleaves the bits of X (even bits) and Y (odd bits) into a Morton code,
// so that points close on the grid tend to be close in the code.
// ok is false when a coordinate is negative or does not fit in 32 bits.
func ZOrder[T constraints.Integer](p Point[T]) (z uint64, ok bool) {
	if p.X < 0 || p.Y < 0 || uint64(p.X) > math.MaxUint32 || uint64(p.Y) > math.MaxUint32 {
		return 0, false
	}
	x, y := uint64(p.X), uint64(p.Y)
	for i := 4; i >= 0; i-- {
		x = (x | (x << zShifts[i+1])) & zMasks[i]
		y = (y | (y << zShifts[i+1])) & zMasks[i]
	}
	return x | (y << 1), true
}

func MustZOrder[T constraints.Integer](p Point[T]) uint64 {
	z, ok := ZOrder(p)
	if !ok {
		panic(fmt.Errorf(`cannot make a Z-order code out of %v`, p))
	}
	return z
}

// FromZOrder is the inverse of ZOrder.
func FromZOrder[T constraints.Integer](z uint64) Point[T] {
	x, y := z, z>>1
	for i := 0; i <= 5; i++ {
		x = (x | (x >> zShifts[i])) & zMasks[i]
		y = (y | (y >> zShifts[i])) & zMasks[i]
	}
	return Point[T]{X: T(x), Y: T(y)}
}
