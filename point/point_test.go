package point

import (
	"fmt"
	"math"
	"sort"
	"testing"

	"github.com/pdok/gridstep/direction"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPoint_Step(t *testing.T) {
	tests := []struct {
		d    direction.Direction
		want Point[int]
	}{
		{d: direction.Up, want: New(0, -1)},
		{d: direction.Down, want: New(0, 1)},
		{d: direction.Left, want: New(-1, 0)},
		{d: direction.Right, want: New(1, 0)},
		{d: direction.UpLeft, want: New(-1, -1)},
		{d: direction.UpRight, want: New(1, -1)},
		{d: direction.DownLeft, want: New(-1, 1)},
		{d: direction.DownRight, want: New(1, 1)},
		{d: direction.Neutral, want: New(0, 0)},
	}
	for _, tt := range tests {
		t.Run(tt.d.String(), func(t *testing.T) {
			var origin Point[int]
			require.Equal(t, tt.want, origin.Step(tt.d))
			require.Equal(t, tt.want, StepFrom(tt.d, origin))
			require.Equal(t, tt.want, FromDirection[int](tt.d))
			require.Equal(t, origin, origin.Step(tt.d).Back(tt.d))
			require.Equal(t, Point[int]{}, origin, "Step must not mutate its receiver")
		})
	}
}

func TestPoint_Back(t *testing.T) {
	var origin Point[int]
	require.Equal(t, New(0, -1), origin.Back(direction.Down))
	require.Equal(t, New(1, 1), origin.Back(direction.UpLeft))
	require.Equal(t, origin, origin.Back(direction.Neutral))

	p := New(5, 5)
	p.BackAssign(direction.Down)
	require.Equal(t, New(5, 4), p)
}

func TestPoint_StepAssign_unsigned(t *testing.T) {
	p := New[uint8](1, 1)
	p.StepAssign(direction.UpLeft)
	require.Equal(t, New[uint8](0, 0), p)
	p.StepAssign(direction.Up)
	require.Equal(t, New[uint8](0, math.MaxUint8), p)
}

func TestPoint_arithmetic(t *testing.T) {
	p1 := New(2, 3)
	p2 := New(5, 7)

	assert.Equal(t, New(7, 10), p1.Add(p2))
	assert.Equal(t, New(-3, -4), p1.Sub(p2))
	assert.Equal(t, New(10, 21), p1.MulRespective(p2))
	assert.Equal(t, New(2, 2), p2.DivRespective(p1))
	assert.Equal(t, New(4, 6), p1.Mul(2.0))
	assert.Equal(t, New(4, 6), MulScalar(2.0, p1))
	assert.Equal(t, New(2, 3), p2.Div(2.0))
	assert.Equal(t, New(2, 3), DivScalar(2.0, p2))

	// untouched
	assert.Equal(t, New(2, 3), p1)
	assert.Equal(t, New(5, 7), p2)
}

func TestPoint_arithmetic_float(t *testing.T) {
	p1 := New(2.0, 3.0)
	p2 := New(5.0, 8.0)

	assert.Equal(t, New(4.0, 6.0), p1.Mul(2))
	assert.Equal(t, New(1.0, 1.5), p1.Div(2))
	assert.Equal(t, New(2.5, 8.0/3.0), p2.DivRespective(p1))
	assert.Equal(t, New(0.5, 0.75), p1.Mul(0.25))

	inf := p1.Div(0)
	assert.True(t, math.IsInf(inf.X, 1))
	assert.True(t, math.IsInf(inf.Y, 1))
}

func TestPoint_Mul_truncatesPerCall(t *testing.T) {
	p := New(3, 5)
	p.MulAssign(0.5).MulAssign(2)
	// (1.5, 2.5) truncates to (1, 2) before being doubled
	require.Equal(t, New(2, 4), p)

	q := New(3, 5)
	require.Equal(t, New(3, 5), q.Mul(0.5*2))

	require.Equal(t, New(-1, 1), New(-3, 3).Div(2))
}

func TestPoint_DivRespective_byZero(t *testing.T) {
	require.Panics(t, func() { New(1, 1).DivRespective(New(0, 1)) })
}

func TestPoint_assignChaining(t *testing.T) {
	p := New(0, 0)
	got := p.StepAssign(direction.Up).AddAssign(New(2, 2)).SubAssign(New(1, 0)).MulRespectiveAssign(New(3, 3))
	require.Same(t, &p, got)
	require.Equal(t, New(3, 3), p)

	p.DivRespectiveAssign(New(3, 1)).DivAssign(1).MulAssign(2)
	require.Equal(t, New(2, 6), p)
}

func TestPoint_DivRespectiveAssign_divides(t *testing.T) {
	p := New(12, 20)
	p.DivRespectiveAssign(New(3, 4))
	require.Equal(t, New(4, 5), p)
}

func TestConvert(t *testing.T) {
	require.Equal(t, New(3.0, 4.0), Convert[float64](New(3, 4)))
	require.Equal(t, New(3, 4), Convert[int](New(3.9, 4.1)))
	require.Equal(t, New(-3, -4), Convert[int](New(-3.9, -4.1)))
	require.Equal(t, New[int16](300, -2), Convert[int16](New[int64](300, -2)))
	require.Equal(t, New[float32](1.5, 2.25), Convert[float32](New(1.5, 2.25)))
}

func TestPoint_Compare(t *testing.T) {
	tests := []struct {
		p    Point[int]
		o    Point[int]
		want int
	}{
		{p: New(1, 2), o: New(1, 2), want: 0},
		{p: New(1, 2), o: New(1, 3), want: -1},
		{p: New(1, 2), o: New(2, 0), want: -1},
		{p: New(2, 0), o: New(1, 2), want: 1},
		{p: New(-1, 9), o: New(0, -9), want: -1},
	}
	for _, tt := range tests {
		t.Run(fmt.Sprintf("%v vs %v", tt.p, tt.o), func(t *testing.T) {
			require.Equal(t, tt.want, tt.p.Compare(tt.o))
			require.Equal(t, -tt.want, tt.o.Compare(tt.p))
			require.Equal(t, tt.want < 0, tt.p.Less(tt.o))
			require.Equal(t, tt.want == 0, tt.p == tt.o)
		})
	}
}

func TestPoint_sortable(t *testing.T) {
	points := []Point[int]{New(2, 0), New(1, 3), New(1, 2), New(0, 9)}
	sort.Slice(points, func(i, j int) bool { return points[i].Less(points[j]) })
	require.Equal(t, []Point[int]{New(0, 9), New(1, 2), New(1, 3), New(2, 0)}, points)
}

func TestPoint_String(t *testing.T) {
	assert.Equal(t, "(1, -2)", New(1, -2).String())
	assert.Equal(t, "(1.5, 0)", New(1.5, 0).String())
	assert.Equal(t, [2]int{1, -2}, New(1, -2).XY())
}
