// Package direction implements a closed 9-way compass (4 axis, 4 diagonal and Neutral)
// together with its algebra: rotation, mirroring, negation, containment and combination.
//
// The vertical axis follows screen convention: Up means decreasing y.
// Values outside the defined range behave as Neutral, so every operation
// yields one of the 9 defined directions.
package direction

import (
	"errors"
	"fmt"
)

type Direction uint8

const (
	Up Direction = iota
	Down
	Left
	Right

	UpLeft
	UpRight
	DownLeft
	DownRight

	Neutral
)

// ErrUnknownDirection reports a name that is not in Names.
var ErrUnknownDirection = errors.New("unknown direction")

var (
	// Names holds the display name of each direction, indexed by Direction.
	Names = [...]string{
		"Up",
		"Down",
		"Left",
		"Right",
		"UpLeft",
		"UpRight",
		"DownLeft",
		"DownRight",
		"Neutral",
	}

	// All lists every direction, Neutral last.
	All = [...]Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight, Neutral}

	// Movements lists the 8 directions that actually move.
	Movements = [...]Direction{Up, Down, Left, Right, UpLeft, UpRight, DownLeft, DownRight}

	byName = func() map[string]Direction {
		m := make(map[string]Direction, len(Names))
		for d, name := range Names {
			m[name] = Direction(d)
		}
		return m
	}()
)

func (d Direction) String() string {
	if d > Neutral {
		d = Neutral
	}
	return Names[d]
}

// Parse returns the direction named name (see Names).
func Parse(name string) (Direction, error) {
	d, ok := byName[name]
	if !ok {
		return Neutral, fmt.Errorf("%w: %q", ErrUnknownDirection, name)
	}
	return d, nil
}

func (d Direction) MarshalText() ([]byte, error) {
	return []byte(d.String()), nil
}

func (d *Direction) UnmarshalText(text []byte) error {
	parsed, err := Parse(string(text))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// RotateCW turns a quarter clockwise: Up → Right → Down → Left → Up.
func (d Direction) RotateCW() Direction {
	switch d {
	case Up:
		return Right
	case Down:
		return Left
	case Left:
		return Up
	case Right:
		return Down
	case UpLeft:
		return UpRight
	case UpRight:
		return DownRight
	case DownLeft:
		return UpLeft
	case DownRight:
		return DownLeft
	default:
		return Neutral
	}
}

// RotateCCW is the inverse of RotateCW.
func (d Direction) RotateCCW() Direction {
	switch d {
	case Up:
		return Left
	case Down:
		return Right
	case Left:
		return Down
	case Right:
		return Up
	case UpLeft:
		return DownLeft
	case UpRight:
		return UpLeft
	case DownLeft:
		return DownRight
	case DownRight:
		return UpRight
	default:
		return Neutral
	}
}

// FlipV mirrors across the horizontal axis (Up and Down swap).
func (d Direction) FlipV() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Left
	case Right:
		return Right
	case UpLeft:
		return DownLeft
	case UpRight:
		return DownRight
	case DownLeft:
		return UpLeft
	case DownRight:
		return UpRight
	default:
		return Neutral
	}
}

// FlipH mirrors across the vertical axis (Left and Right swap).
func (d Direction) FlipH() Direction {
	switch d {
	case Up:
		return Up
	case Down:
		return Down
	case Left:
		return Right
	case Right:
		return Left
	case UpLeft:
		return UpRight
	case UpRight:
		return UpLeft
	case DownLeft:
		return DownRight
	case DownRight:
		return DownLeft
	default:
		return Neutral
	}
}

// Readable collapses d onto Up or Left, the label used when displaying an axis.
// Neutral reads as Up.
func (d Direction) Readable() Direction {
	switch d {
	case Left, Right, UpRight, DownRight:
		return Left
	default:
		return Up
	}
}

// IsAxisAligned returns true for Up, Down, Left and Right.
func (d Direction) IsAxisAligned() bool {
	switch d {
	case Up, Down, Left, Right:
		return true
	default:
		return false
	}
}

// IsDiagonal returns true for UpLeft, UpRight, DownLeft and DownRight.
func (d Direction) IsDiagonal() bool {
	switch d {
	case UpLeft, UpRight, DownLeft, DownRight:
		return true
	default:
		return false
	}
}

// Horizontal reports whether d is Left or Right.
// ok is false when d is not axis-aligned, in which case horizontal is meaningless.
func (d Direction) Horizontal() (horizontal bool, ok bool) {
	switch d {
	case Left, Right:
		return true, true
	case Up, Down:
		return false, true
	default:
		return false, false
	}
}

// IsHorizontal is like Horizontal but panics when d is not axis-aligned.
func (d Direction) IsHorizontal() bool {
	horizontal, ok := d.Horizontal()
	if !ok {
		panic(fmt.Errorf(`IsHorizontal called on %v, which is not axis-aligned`, d))
	}
	return horizontal
}

// Opposite returns the diametrically opposite direction.
// Neutral is its own opposite.
func (d Direction) Opposite() Direction {
	switch d {
	case Up:
		return Down
	case Down:
		return Up
	case Left:
		return Right
	case Right:
		return Left
	case UpLeft:
		return DownRight
	case UpRight:
		return DownLeft
	case DownLeft:
		return UpRight
	case DownRight:
		return UpLeft
	default:
		return Neutral
	}
}

// Delta returns the unit step of d on a grid where y grows downwards.
func (d Direction) Delta() (dx, dy int) {
	switch d {
	case Up:
		return 0, -1
	case Down:
		return 0, 1
	case Left:
		return -1, 0
	case Right:
		return 1, 0
	case UpLeft:
		return -1, -1
	case UpRight:
		return 1, -1
	case DownLeft:
		return -1, 1
	case DownRight:
		return 1, 1
	default:
		return 0, 0
	}
}
