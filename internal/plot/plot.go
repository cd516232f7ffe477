// Package plot maps world coordinates from the geometry engine onto the
// terminal screen buffer. All games share it, so shading, chords and
// markers look the same everywhere.
package plot

import (
	"fmt"

	"github.com/ineqlab/ineq-arcade/internal/core"
	"github.com/ineqlab/ineq-arcade/internal/geom"
)

// View is a rectangular screen area displaying a domain rectangle.
// Terminal rows grow downward while world y grows upward, so the
// vertical axis is inverted in the mapping.
type View struct {
	Domain geom.Rect
	X, Y   int // top-left corner on screen
	W, H   int // size in cells
}

// NewView lays a domain rectangle over a screen area.
func NewView(domain geom.Rect, x, y, w, h int) View {
	return View{Domain: domain, X: x, Y: y, W: w, H: h}
}

// ToScreen converts a world point to the nearest cell coordinate.
func (v View) ToScreen(p geom.Point) (int, int) {
	fx := (p.X - v.Domain.XMin) / v.Domain.Width()
	fy := (p.Y - v.Domain.YMin) / v.Domain.Height()
	sx := v.X + int(fx*float64(v.W-1)+0.5)
	sy := v.Y + (v.H - 1) - int(fy*float64(v.H-1)+0.5)
	return sx, sy
}

// CellCenter converts a cell coordinate back to the world point at its
// center. Inverse of ToScreen up to cell granularity.
func (v View) CellCenter(sx, sy int) geom.Point {
	fx := float64(sx-v.X) / float64(v.W-1)
	fy := float64((v.Y+v.H-1)-sy) / float64(v.H-1)
	return geom.Point{
		X: v.Domain.XMin + fx*v.Domain.Width(),
		Y: v.Domain.YMin + fy*v.Domain.Height(),
	}
}

// Contains reports whether the cell coordinate lies inside the view.
func (v View) Contains(sx, sy int) bool {
	return sx >= v.X && sx < v.X+v.W && sy >= v.Y && sy < v.Y+v.H
}

// DrawFrame draws the view's border box with axis extent labels.
func (v View) DrawFrame(s *core.Screen) {
	s.DrawBox(v.X-1, v.Y-1, v.W+2, v.H+2)
	d := v.Domain
	s.DrawText(v.X-1, v.Y+v.H+1, fmt.Sprintf("%g", d.XMin))
	xmax := fmt.Sprintf("%g", d.XMax)
	s.DrawText(v.X+v.W+1-len(xmax), v.Y+v.H+1, xmax)
	s.DrawText(v.X-1-len(fmt.Sprintf("%g", d.YMax)), v.Y, fmt.Sprintf("%g", d.YMax))
}

// ShadeSystem fills every cell whose center satisfies all constraints.
// Shading by membership rather than by the clipped polygon keeps strict
// and non-strict boundaries visually distinct for free.
func (v View) ShadeSystem(s *core.Screen, constraints []geom.Constraint, r rune, c core.Color) {
	for sy := v.Y; sy < v.Y+v.H; sy++ {
		for sx := v.X; sx < v.X+v.W; sx++ {
			if geom.InsideAll(v.CellCenter(sx, sy), constraints) {
				s.SetColored(sx, sy, r, c)
			}
		}
	}
}

// DrawChord draws the visible part of a constraint's boundary line.
func (v View) DrawChord(s *core.Screen, k geom.Constraint, c core.Color) {
	seg, ok := geom.Chord(v.Domain, geom.LineFromConstraint(k))
	if !ok {
		return
	}
	v.DrawSegment(s, seg, lineRune(k.A, k.B), c)
}

// DrawSegment draws a segment by sampling it at cell resolution.
func (v View) DrawSegment(s *core.Screen, seg geom.Segment, r rune, c core.Color) {
	// Sample at twice the cell density so diagonal chords stay solid.
	steps := 2 * (v.W + v.H)
	for i := 0; i <= steps; i++ {
		t := float64(i) / float64(steps)
		p := geom.Point{
			X: seg.P.X + t*(seg.Q.X-seg.P.X),
			Y: seg.P.Y + t*(seg.Q.Y-seg.P.Y),
		}
		sx, sy := v.ToScreen(p)
		if v.Contains(sx, sy) {
			s.SetColored(sx, sy, r, c)
		}
	}
}

// DrawMarker places a marker rune at a world point.
func (v View) DrawMarker(s *core.Screen, p geom.Point, r rune, c core.Color) {
	sx, sy := v.ToScreen(p)
	if v.Contains(sx, sy) {
		s.SetColored(sx, sy, r, c)
	}
}

// MarkVertices marks every vertex of a polygon.
func (v View) MarkVertices(s *core.Screen, poly geom.Polygon, c core.Color) {
	for _, p := range poly {
		v.DrawMarker(s, p, '+', c)
	}
}

// lineRune picks a glyph matching the line's slope so boundaries read
// correctly at terminal resolution.
func lineRune(a, b float64) rune {
	switch {
	case b == 0:
		return '|'
	case a == 0:
		return '-'
	case (a > 0) == (b > 0):
		return '\\'
	default:
		return '/'
	}
}
