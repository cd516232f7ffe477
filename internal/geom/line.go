package geom

import "math"

// Line is a canonicalized infinite line a·x + b·y = c with (a, b) a unit
// vector and a fixed sign rule, so the same geometric line always
// produces the same triple regardless of which two points generated it
// or in what order. Derived on demand, never persisted.
type Line struct {
	A, B, C float64
}

// LineThrough returns the canonical line through two distinct points.
// The normal is the direction vector rotated 90° ((dy, −dx)), unit
// normalized. Coincident points give a 0/0 normal, so callers that take
// handle positions from a player must clamp a minimum separation first.
func LineThrough(p1, p2 Point) Line {
	dx := p2.X - p1.X
	dy := p2.Y - p1.Y
	a := dy
	b := -dx
	n := math.Hypot(a, b)
	a /= n
	b /= n
	l := Line{A: a, B: b, C: a*p1.X + b*p1.Y}
	return l.canonicalize()
}

// LineFromConstraint canonicalizes a constraint's boundary line.
func LineFromConstraint(k Constraint) Line {
	n := math.Hypot(k.A, k.B)
	l := Line{A: k.A / n, B: k.B / n, C: k.C / n}
	return l.canonicalize()
}

// canonicalize applies the sign rule that resolves the (a,b,c) vs
// (−a,−b,−c) ambiguity: if |a| is negligible require b ≥ 0, otherwise
// require a ≥ 0.
func (l Line) canonicalize() Line {
	flip := false
	if math.Abs(l.A) < EpsMembership {
		flip = l.B < 0
	} else {
		flip = l.A < 0
	}
	if flip {
		return Line{A: -l.A, B: -l.B, C: -l.C}
	}
	return l
}

// Equal reports whether two canonical lines describe the same geometric
// line within tol. Both sides are re-normalized before comparing, so the
// check is safe even for lines built by hand. A tol of EpsLine suits
// interactively produced lines.
func (l Line) Equal(other Line, tol float64) bool {
	u := l.renormalize()
	v := other.renormalize()
	return math.Abs(u.A-v.A) <= tol &&
		math.Abs(u.B-v.B) <= tol &&
		math.Abs(u.C-v.C) <= tol
}

// renormalize restores unit length of (a, b) and re-applies the sign
// rule, dividing c by the same factor.
func (l Line) renormalize() Line {
	n := math.Hypot(l.A, l.B)
	if n == 0 {
		return l
	}
	return Line{A: l.A / n, B: l.B / n, C: l.C / n}.canonicalize()
}

// Eval returns a·x + b·y − c at p; the sign tells which side of the
// line p is on in the canonical orientation.
func (l Line) Eval(p Point) float64 {
	return l.A*p.X + l.B*p.Y - l.C
}

// Chord intersects the infinite line with the domain rectangle and
// returns the visible segment: the pair of in-rectangle edge hits with
// maximum separation. ok is false when the line misses the rectangle
// (or is degenerate), in which case there is nothing to draw.
func Chord(domain Rect, l Line) (seg Segment, ok bool) {
	corners := domain.Corners()
	var hits []Point
	for i := range corners {
		s := corners[i]
		e := corners[(i+1)%len(corners)]
		p, found := lineEdgeIntersection(l, s, e)
		if found && domain.Contains(p) {
			hits = append(hits, p)
		}
	}
	if len(hits) < 2 {
		return Segment{}, false
	}
	// Pick the farthest pair; with tolerance a corner can register on
	// both of its edges, making the nearest pair nearly coincident.
	best := -1.0
	for i := 0; i < len(hits); i++ {
		for j := i + 1; j < len(hits); j++ {
			if d := hits[i].Dist(hits[j]); d > best {
				best = d
				seg = Segment{P: hits[i], Q: hits[j]}
			}
		}
	}
	if best < EpsDuplicate {
		return Segment{}, false
	}
	return seg, true
}

// lineEdgeIntersection intersects the infinite line with the segment
// s→e parametrically. found is false when the edge is parallel to the
// line or the hit falls outside the segment.
func lineEdgeIntersection(l Line, s, e Point) (Point, bool) {
	dx := e.X - s.X
	dy := e.Y - s.Y
	den := l.A*dx + l.B*dy
	if math.Abs(den) < EpsMembership {
		return Point{}, false
	}
	t := (l.C - l.A*s.X - l.B*s.Y) / den
	if t < -EpsDuplicate || t > 1+EpsDuplicate {
		return Point{}, false
	}
	return Point{X: s.X + t*dx, Y: s.Y + t*dy}, true
}
