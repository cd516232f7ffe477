// Package geom is the shared geometry engine behind every game in the
// arcade: linear inequalities as directed half-planes, clipping of a
// bounded viewport against an ordered constraint list, and the derived
// quantities the games display (area, binding status, visible chords,
// system equivalence).
//
// Everything here is pure, synchronous computation over explicit inputs.
// Functions never retain references to their arguments, so callers are
// free to rebuild and re-pass constraint lists on every edit.
package geom

import "math"

// Tolerances used across the engine. The relative ordering matters:
// membership is the tightest check, line equality the loosest. The values
// mirror what the gameplay was tuned against; change them together or not
// at all.
const (
	// EpsMembership loosens half-plane boundary tests so that a point
	// sitting exactly on a line does not flicker between accepted and
	// rejected under floating-point error.
	EpsMembership = 1e-9

	// EpsParallel is the denominator threshold below which an edge is
	// treated as parallel to a clipping line.
	EpsParallel = 1e-12

	// EpsDuplicate is the distance below which consecutive polygon
	// vertices are merged after clipping.
	EpsDuplicate = 1e-6

	// EpsBinding is the residual threshold for classifying a constraint
	// as binding at a point. Deliberately coarse so a point steered
	// "near" a line registers as binding on screen.
	EpsBinding = 1e-2

	// EpsLine is the default tolerance for canonical line equality.
	// Looser than membership because line parameters accumulate drift
	// through interactive handle movement.
	EpsLine = 1e-2
)

// Point is a 2D coordinate in world (level) space.
type Point struct {
	X, Y float64
}

// Pt is shorthand for constructing a Point.
func Pt(x, y float64) Point {
	return Point{X: x, Y: y}
}

// Sub returns p - q.
func (p Point) Sub(q Point) Point {
	return Point{X: p.X - q.X, Y: p.Y - q.Y}
}

// Dist returns the Euclidean distance between p and q.
func (p Point) Dist(q Point) float64 {
	return math.Hypot(p.X-q.X, p.Y-q.Y)
}

// Segment is a pair of endpoints, used for visible chords of lines.
type Segment struct {
	P, Q Point
}

// Rect is the axis-aligned domain rectangle that stands in for the
// unbounded plane: every feasible region is implicitly intersected with
// it, so "unbounded" regions come back clipped to the viewport.
type Rect struct {
	XMin, XMax float64
	YMin, YMax float64
}

// NewRect creates a domain rectangle from its bounds.
func NewRect(xmin, xmax, ymin, ymax float64) Rect {
	return Rect{XMin: xmin, XMax: xmax, YMin: ymin, YMax: ymax}
}

// Width returns the horizontal extent.
func (r Rect) Width() float64 {
	return r.XMax - r.XMin
}

// Height returns the vertical extent.
func (r Rect) Height() float64 {
	return r.YMax - r.YMin
}

// Contains reports whether p lies inside the rectangle, with a small
// tolerance on the boundary.
func (r Rect) Contains(p Point) bool {
	return p.X >= r.XMin-EpsDuplicate && p.X <= r.XMax+EpsDuplicate &&
		p.Y >= r.YMin-EpsDuplicate && p.Y <= r.YMax+EpsDuplicate
}

// Corners returns the rectangle's four corners in counterclockwise order
// starting at (XMin, YMin). This fixed winding seeds the clipper.
func (r Rect) Corners() []Point {
	return []Point{
		{X: r.XMin, Y: r.YMin},
		{X: r.XMax, Y: r.YMin},
		{X: r.XMax, Y: r.YMax},
		{X: r.XMin, Y: r.YMax},
	}
}

// Clamp returns p moved to the nearest point inside the rectangle.
func (r Rect) Clamp(p Point) Point {
	return Point{
		X: math.Min(math.Max(p.X, r.XMin), r.XMax),
		Y: math.Min(math.Max(p.Y, r.YMin), r.YMax),
	}
}
