package geom

import "math"

// Polygon is an ordered vertex list with an implicit closing edge from
// the last vertex back to the first. Clipping a convex polygon by
// half-planes keeps it convex; fewer than three vertices denotes an
// empty region, which is a valid value and not an error.
type Polygon []Point

// Empty reports whether the polygon encloses no area.
func (poly Polygon) Empty() bool {
	return len(poly) < 3
}

// Area returns the unsigned area via the shoelace formula: half the
// absolute signed sum over the closed vertex sequence. Independent of
// winding direction and of which vertex the list starts at; zero for
// fewer than three vertices.
func (poly Polygon) Area() float64 {
	n := len(poly)
	if n < 3 {
		return 0
	}
	sum := 0.0
	for i := 0; i < n; i++ {
		j := (i + 1) % n
		sum += poly[i].X*poly[j].Y - poly[j].X*poly[i].Y
	}
	return math.Abs(sum) / 2
}

// ClipHalfPlane clips the polygon against one constraint,
// Sutherland–Hodgman style: walk the edges in order, keep inside
// endpoints, and emit the edge/boundary crossing whenever an edge
// straddles the line. The result is rebuilt fresh; the input is never
// mutated.
func ClipHalfPlane(poly Polygon, k Constraint) Polygon {
	if len(poly) == 0 {
		return nil
	}
	out := make(Polygon, 0, len(poly)+2)
	n := len(poly)
	for i := 0; i < n; i++ {
		s := poly[i]
		e := poly[(i+1)%n]
		sIn := k.Inside(s)
		eIn := k.Inside(e)
		switch {
		case sIn && eIn:
			out = append(out, e)
		case sIn && !eIn:
			out = append(out, crossing(s, e, k))
		case !sIn && eIn:
			out = append(out, crossing(s, e, k), e)
		}
	}
	return mergeNearDuplicates(out)
}

// crossing returns the point where the edge s→e meets the constraint's
// boundary line. When the edge is parallel to the line the parametric
// denominator vanishes; returning e instead of dividing by near-zero is
// a deliberate approximation, not an error: the caller's inside tests
// already decided the edge straddles the boundary only within tolerance.
func crossing(s, e Point, k Constraint) Point {
	dx := e.X - s.X
	dy := e.Y - s.Y
	den := k.A*dx + k.B*dy
	if math.Abs(den) < EpsParallel {
		return e
	}
	t := (k.C - k.A*s.X - k.B*s.Y) / den
	return Point{X: s.X + t*dx, Y: s.Y + t*dy}
}

// mergeNearDuplicates drops consecutive vertices closer than
// EpsDuplicate (including the wrap-around pair) so accumulated floating
// error cannot leave degenerate micro-edges in the result.
func mergeNearDuplicates(poly Polygon) Polygon {
	if len(poly) < 2 {
		return poly
	}
	out := make(Polygon, 0, len(poly))
	for _, p := range poly {
		if len(out) > 0 && out[len(out)-1].Dist(p) < EpsDuplicate {
			continue
		}
		out = append(out, p)
	}
	for len(out) > 1 && out[0].Dist(out[len(out)-1]) < EpsDuplicate {
		out = out[:len(out)-1]
	}
	return out
}

// Feasible computes the feasible region of a constraint system inside
// the domain rectangle: the rectangle's corners clipped sequentially by
// every constraint in the given order. The represented region is
// order-independent (intersection commutes); the exact vertex list may
// differ across orderings by tolerance-level noise from duplicate
// merging, which callers must treat as equivalent.
func Feasible(domain Rect, constraints []Constraint) Polygon {
	poly := Polygon(domain.Corners())
	for _, k := range constraints {
		poly = ClipHalfPlane(poly, k)
		if len(poly) == 0 {
			break
		}
	}
	return poly
}

// InsideAll reports whether p satisfies every constraint in the system.
func InsideAll(p Point, constraints []Constraint) bool {
	for _, k := range constraints {
		if !k.Inside(p) {
			return false
		}
	}
	return true
}
