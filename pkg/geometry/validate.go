package geometry

import (
	"errors"
	"fmt"

	"github.com/paulmach/orb"
	"github.com/paulmach/orb/geo"

	"github.com/gildware/ak-land-analysis-backend/entities"
)

// MinAreaM2 is the smallest land polygon accepted, in square meters.
const MinAreaM2 = 10.0

var (
	ErrNotPolygon       = errors.New("geometry must be a GeoJSON Polygon")
	ErrRingTooShort     = errors.New("polygon ring must have at least 4 coordinates")
	ErrRingNotClosed    = errors.New("polygon ring must be closed (first and last coordinate must match)")
	ErrSelfIntersecting = errors.New("polygon is self-intersecting")
	ErrTooSmall         = errors.New("polygon area is too small")
)

// Validate checks a user-drawn land polygon: shape, coordinate bounds, ring
// closure, simplicity of the outer ring and a minimum geodetic area.
func Validate(p entities.GeoPolygon) error {
	if p.Type != "Polygon" {
		return ErrNotPolygon
	}
	if len(p.Coordinates) == 0 {
		return ErrNotPolygon
	}

	outer := p.Coordinates[0]
	if len(outer) < 4 {
		return ErrRingTooShort
	}
	for _, c := range outer {
		if c[0] < -180 || c[0] > 180 || c[1] < -90 || c[1] > 90 {
			return fmt.Errorf("coordinate [%v, %v] out of bounds", c[0], c[1])
		}
	}

	ring := toRing(outer)
	if !ring.Closed() {
		return ErrRingNotClosed
	}
	if !simple(ring) {
		return ErrSelfIntersecting
	}

	if area := geo.Area(orb.Polygon{ring}); area < MinAreaM2 {
		return ErrTooSmall
	}
	return nil
}

func toRing(coords [][2]float64) orb.Ring {
	ring := make(orb.Ring, len(coords))
	for i, c := range coords {
		ring[i] = orb.Point{c[0], c[1]}
	}
	return ring
}

// simple reports whether no two non-adjacent ring segments intersect. Land
// polygons are small (hand-drawn), so the quadratic scan is fine.
func simple(ring orb.Ring) bool {
	n := len(ring) - 1 // segments
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			// Skip adjacent segments (they share an endpoint by construction).
			if j == i+1 || (i == 0 && j == n-1) {
				continue
			}
			if segmentsIntersect(ring[i], ring[i+1], ring[j], ring[j+1]) {
				return false
			}
		}
	}
	return true
}

func segmentsIntersect(p1, p2, q1, q2 orb.Point) bool {
	d1 := cross(q1, q2, p1)
	d2 := cross(q1, q2, p2)
	d3 := cross(p1, p2, q1)
	d4 := cross(p1, p2, q2)

	if ((d1 > 0 && d2 < 0) || (d1 < 0 && d2 > 0)) &&
		((d3 > 0 && d4 < 0) || (d3 < 0 && d4 > 0)) {
		return true
	}
	return (d1 == 0 && onSegment(q1, q2, p1)) ||
		(d2 == 0 && onSegment(q1, q2, p2)) ||
		(d3 == 0 && onSegment(p1, p2, q1)) ||
		(d4 == 0 && onSegment(p1, p2, q2))
}

func cross(a, b, c orb.Point) float64 {
	return (b[0]-a[0])*(c[1]-a[1]) - (b[1]-a[1])*(c[0]-a[0])
}

func onSegment(a, b, p orb.Point) bool {
	return min(a[0], b[0]) <= p[0] && p[0] <= max(a[0], b[0]) &&
		min(a[1], b[1]) <= p[1] && p[1] <= max(a[1], b[1])
}
