// Package point provides a generic 2D point/vector that can be moved by a direction.Direction.
//
// Methods with a value receiver return a new Point and leave the receiver untouched.
// The *Assign methods mutate the receiver and return it, so calls can be chained:
//
//	p := point.New(0, 0)
//	p.StepAssign(direction.Up).AddAssign(point.New(2, 2)) // p == (2, 1)
package point

import (
	"cmp"
	"fmt"

	"github.com/pdok/gridstep/direction"
	"golang.org/x/exp/constraints"
)

// Scalar is the constraint for the element type of a Point.
type Scalar interface {
	constraints.Integer | constraints.Float
}

// Point describes a simple 2D point or vector. The zero value is the origin.
type Point[T Scalar] struct {
	X T `json:"x"`
	Y T `json:"y"`
}

func New[T Scalar](x, y T) Point[T] {
	return Point[T]{X: x, Y: y}
}

// Convert turns a Point[U] into a Point[T] using Go's numeric conversion per component.
// Floats convert to integers by truncating towards zero, e.g. (3.9, 4.1) becomes (3, 4).
func Convert[T, U Scalar](p Point[U]) Point[T] {
	return Point[T]{X: T(p.X), Y: T(p.Y)}
}

// FromDirection returns the unit step of d as a vector.
func FromDirection[T Scalar](d direction.Direction) Point[T] {
	var p Point[T]
	return *p.StepAssign(d)
}

// XY returns an array of 2D coordinates
func (p Point[T]) XY() [2]T {
	return [2]T{p.X, p.Y}
}

func (p Point[T]) String() string {
	return fmt.Sprintf("(%v, %v)", p.X, p.Y)
}

// Compare orders points by X and then by Y.
// The result is -1 if p < o, 0 if p == o and +1 if p > o.
func (p Point[T]) Compare(o Point[T]) int {
	if c := cmp.Compare(p.X, o.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, o.Y)
}

// Less reports whether p sorts before o, see Compare.
func (p Point[T]) Less(o Point[T]) bool {
	return p.Compare(o) < 0
}

/* ========================= NEW VALUES ========================= */

// Add returns p+o.
func (p Point[T]) Add(o Point[T]) Point[T] {
	return *p.AddAssign(o)
}

// Sub returns p-o.
func (p Point[T]) Sub(o Point[T]) Point[T] {
	return *p.SubAssign(o)
}

// Step returns p moved one unit towards d.
func (p Point[T]) Step(d direction.Direction) Point[T] {
	return *p.StepAssign(d)
}

// Back returns p moved one unit away from d, which is the same as Step(d.Opposite()).
func (p Point[T]) Back(d direction.Direction) Point[T] {
	return *p.BackAssign(d)
}

// Mul returns p scaled by f, converted back to T.
func (p Point[T]) Mul(f float64) Point[T] {
	return *p.MulAssign(f)
}

// Div returns p divided by f, converted back to T.
func (p Point[T]) Div(f float64) Point[T] {
	return *p.DivAssign(f)
}

// MulRespective returns p scaled by o, multiplying the values of their respective axes.
func (p Point[T]) MulRespective(o Point[T]) Point[T] {
	return *p.MulRespectiveAssign(o)
}

// DivRespective returns p divided by o, dividing the values of their respective axes.
// A zero component in o panics for integer T, like any integer division by zero.
func (p Point[T]) DivRespective(o Point[T]) Point[T] {
	return *p.DivRespectiveAssign(o)
}

// StepFrom is Step with the operands the other way around: d + p.
func StepFrom[T Scalar](d direction.Direction, p Point[T]) Point[T] {
	return p.Step(d)
}

// MulScalar is Mul with the operands the other way around: f * p.
func MulScalar[T Scalar](f float64, p Point[T]) Point[T] {
	return p.Mul(f)
}

// DivScalar divides p by f. It exists next to MulScalar for the scalar-first operand order,
// but still divides the point (not the scalar).
func DivScalar[T Scalar](f float64, p Point[T]) Point[T] {
	return p.Div(f)
}

/* ========================= IN PLACE ========================= */

// AddAssign sets p to p+o and returns p.
func (p *Point[T]) AddAssign(o Point[T]) *Point[T] {
	p.X += o.X
	p.Y += o.Y
	return p
}

// SubAssign sets p to p-o and returns p.
func (p *Point[T]) SubAssign(o Point[T]) *Point[T] {
	p.X -= o.X
	p.Y -= o.Y
	return p
}

// StepAssign moves p one unit towards d and returns p.
// Up decrements Y, Right increments X, diagonals do both and Neutral does nothing.
func (p *Point[T]) StepAssign(d direction.Direction) *Point[T] {
	dx, dy := d.Delta()
	switch dx {
	case -1:
		p.X--
	case 1:
		p.X++
	}
	switch dy {
	case -1:
		p.Y--
	case 1:
		p.Y++
	}
	return p
}

// BackAssign moves p one unit towards the opposite of d and returns p.
func (p *Point[T]) BackAssign(d direction.Direction) *Point[T] {
	return p.StepAssign(d.Opposite())
}

// MulAssign scales p by f and returns p.
// Every call converts back to T, so repeatedly scaling an integer point truncates each time.
func (p *Point[T]) MulAssign(f float64) *Point[T] {
	p.X = T(float64(p.X) * f)
	p.Y = T(float64(p.Y) * f)
	return p
}

// DivAssign divides p by f and returns p. See MulAssign for the conversion back to T.
func (p *Point[T]) DivAssign(f float64) *Point[T] {
	p.X = T(float64(p.X) / f)
	p.Y = T(float64(p.Y) / f)
	return p
}

// MulRespectiveAssign multiplies p per axis by o and returns p.
func (p *Point[T]) MulRespectiveAssign(o Point[T]) *Point[T] {
	p.X *= o.X
	p.Y *= o.Y
	return p
}

// DivRespectiveAssign divides p per axis by o and returns p.
func (p *Point[T]) DivRespectiveAssign(o Point[T]) *Point[T] {
	p.X /= o.X
	p.Y /= o.Y
	return p
}
