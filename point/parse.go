package point

import (
	"fmt"
	"strconv"
	"strings"
)

// Parse reads a point formatted as "x,y", e.g. "3,-4.5". Spaces around the numbers are allowed.
func Parse(s string) (Point[float64], error) {
	var p Point[float64]
	xs, ys, found := strings.Cut(s, ",")
	if !found {
		return p, fmt.Errorf(`point %q should be formatted as "x,y"`, s)
	}
	var err error
	if p.X, err = strconv.ParseFloat(strings.TrimSpace(xs), 64); err != nil {
		return p, fmt.Errorf(`invalid x in point %q: %w`, s, err)
	}
	if p.Y, err = strconv.ParseFloat(strings.TrimSpace(ys), 64); err != nil {
		return p, fmt.Errorf(`invalid y in point %q: %w`, s, err)
	}
	return p, nil
}

func MustParse(s string) Point[float64] {
	p, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return p
}
