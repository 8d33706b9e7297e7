// Package walk follows a sequence of directions over a grid and keeps track of
// every point visited, in order of first visit.
package walk

import (
	"github.com/go-spatial/geom"
	orderedmap "github.com/wk8/go-ordered-map/v2"

	"github.com/pdok/gridstep/direction"
	"github.com/pdok/gridstep/point"
)

// Trail is a walk over a grid. It is not safe for concurrent use.
type Trail[T point.Scalar] struct {
	position point.Point[T]
	heading  direction.Direction
	steps    int
	// visit counts, oldest first
	visits *orderedmap.OrderedMap[point.Point[T], int]
}

// NewTrail starts a trail at start, which counts as its first visit.
func NewTrail[T point.Scalar](start point.Point[T]) *Trail[T] {
	tr := &Trail[T]{
		position: start,
		heading:  direction.Neutral,
		visits:   orderedmap.New[point.Point[T], int](),
	}
	tr.visit()
	return tr
}

func (tr *Trail[T]) visit() {
	n, _ := tr.visits.Get(tr.position)
	tr.visits.Set(tr.position, n+1)
}

// Step moves one unit towards d and returns the new position.
// A Neutral step stays put, but still counts as a visit.
func (tr *Trail[T]) Step(d direction.Direction) point.Point[T] {
	tr.position.StepAssign(d)
	tr.heading = tr.heading.Add(d)
	tr.steps++
	tr.visit()
	return tr.position
}

// Walk steps through ds in order and returns the final position.
func (tr *Trail[T]) Walk(ds ...direction.Direction) point.Point[T] {
	for _, d := range ds {
		tr.Step(d)
	}
	return tr.position
}

func (tr *Trail[T]) Position() point.Point[T] {
	return tr.position
}

// Heading is the combination (see direction.Direction.Add) of all steps so far, from first to last.
func (tr *Trail[T]) Heading() direction.Direction {
	return tr.heading
}

// Steps is the number of steps taken.
func (tr *Trail[T]) Steps() int {
	return tr.steps
}

// Len is the number of distinct points visited.
func (tr *Trail[T]) Len() int {
	return tr.visits.Len()
}

// Visits returns how often p was visited.
func (tr *Trail[T]) Visits(p point.Point[T]) int {
	n, _ := tr.visits.Get(p)
	return n
}

// Points returns the distinct points visited, in order of first visit.
func (tr *Trail[T]) Points() []point.Point[T] {
	points := make([]point.Point[T], tr.visits.Len())
	i := 0
	for pair := tr.visits.Oldest(); pair != nil; pair = pair.Next() {
		points[i] = pair.Key
		i++
	}
	return points
}

// MostVisited returns the point with the highest visit count.
// On a tie the point that was first visited last wins, numWinners tells how many points tied.
func (tr *Trail[T]) MostVisited() (p point.Point[T], visits int, numWinners uint) {
	first := true
	for pair := tr.visits.Newest(); pair != nil; pair = pair.Prev() {
		if first || pair.Value > visits {
			p = pair.Key
			visits = pair.Value
			numWinners = 1
			first = false
			continue
		}
		if pair.Value == visits {
			numWinners++
		}
	}
	return
}

// Scaled returns the distinct points visited, in order, each multiplied by f.
func (tr *Trail[T]) Scaled(f float64) []point.Point[T] {
	points := tr.Points()
	for i := range points {
		points[i].MulAssign(f)
	}
	return points
}

// Extent is the bounding box of all points visited.
func (tr *Trail[T]) Extent() geom.Extent {
	extent, _ := point.Extent(tr.Points()...)
	return extent
}
