package direction

type pair [2]Direction

// sums holds every combination that is not settled by identity, cancellation,
// idempotence or absorption. Diagonal addition is lossy, so this is a table and not a formula.
var sums = map[pair]Direction{
	{Up, Left}:        UpLeft,
	{Up, Right}:       UpRight,
	{Up, DownLeft}:    Left,
	{Up, DownRight}:   Right,
	{Down, Left}:      DownLeft,
	{Down, Right}:     DownRight,
	{Down, UpLeft}:    Left,
	{Down, UpRight}:   Right,
	{Left, Up}:        UpLeft,
	{Left, Down}:      DownLeft,
	{Left, UpRight}:   Up,
	{Left, DownRight}: Down,
	{Right, Up}:       UpRight,
	{Right, Down}:     DownRight,
	{Right, UpLeft}:   Up,
	{Right, DownLeft}: Down,

	{UpLeft, Down}:        Left,
	{UpLeft, Right}:       Up,
	{UpLeft, DownLeft}:    Left,
	{UpLeft, UpRight}:     Up,
	{UpRight, Down}:       Right,
	{UpRight, Left}:       Up,
	{UpRight, DownRight}:  Right,
	{UpRight, UpLeft}:     Up,
	{DownLeft, Up}:        Left,
	{DownLeft, Right}:     Down,
	{DownLeft, UpLeft}:    Left,
	{DownLeft, DownRight}: Down,
	{DownRight, Up}:       Right,
	{DownRight, Left}:     Down,
	{DownRight, UpRight}:  Right,
	{DownRight, DownLeft}: Down,
}

// Contains returns true if d equals o, or d is a diagonal that has o as one of its axis components.
// E.g. UpLeft contains Up and Left.
func (d Direction) Contains(o Direction) bool {
	if d == o {
		return true
	}
	if d == o.Opposite() {
		return false
	}
	switch o {
	case Up:
		return d == UpLeft || d == UpRight
	case Down:
		return d == DownLeft || d == DownRight
	case Left:
		return d == UpLeft || d == DownLeft
	case Right:
		return d == UpRight || d == DownRight
	}
	return false
}

// Add combines two directions into the single direction of moving along both at once.
// Neutral is the identity and opposites cancel out to Neutral,
// e.g. Up + Left = UpLeft, UpLeft + Right = Up, UpLeft + DownRight = Neutral.
func (d Direction) Add(o Direction) Direction {
	if d > Neutral {
		d = Neutral
	}
	if o > Neutral {
		o = Neutral
	}
	switch {
	case d == Neutral:
		return o
	case o == Neutral:
		return d
	case d == o.Opposite():
		return Neutral
	case d == o:
		return d
	case d.Contains(o):
		return d
	case o.Contains(d):
		return o
	}
	if sum, ok := sums[pair{d, o}]; ok {
		return sum
	}
	return Neutral
}

// Sum folds Add over ds from left to right, starting at Neutral.
func Sum(ds ...Direction) Direction {
	sum := Neutral
	for _, d := range ds {
		sum = sum.Add(d)
	}
	return sum
}
