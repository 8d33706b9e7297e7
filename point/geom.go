package point

import (
	"github.com/go-spatial/geom"
	"github.com/go-spatial/geom/encoding/wkt"
)

func (p Point[T]) ToGeomPoint() geom.Point {
	return geom.Point{float64(p.X), float64(p.Y)}
}

// FromGeomPoint converts like Convert does, so integer T truncates.
func FromGeomPoint[T Scalar](p geom.Point) Point[T] {
	return Point[T]{X: T(p[0]), Y: T(p[1])}
}

// WKT returns the well known text of p, e.g. POINT (1 2)
func (p Point[T]) WKT() string {
	return wkt.MustEncode(p.ToGeomPoint())
}

// Extent returns the bounding box of the given points as a geom.Extent.
// ok is false when there are no points.
func Extent[T Scalar](points ...Point[T]) (extent geom.Extent, ok bool) {
	if len(points) == 0 {
		return extent, false
	}
	first := points[0].ToGeomPoint()
	extent = geom.Extent{first[0], first[1], first[0], first[1]}
	for _, p := range points[1:] {
		xy := p.ToGeomPoint()
		extent[0] = min(extent[0], xy[0])
		extent[1] = min(extent[1], xy[1])
		extent[2] = max(extent[2], xy[0])
		extent[3] = max(extent[3], xy[1])
	}
	return extent, true
}
