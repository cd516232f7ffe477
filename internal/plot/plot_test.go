package plot

import (
	"strings"
	"testing"

	"github.com/ineqlab/ineq-arcade/internal/core"
	"github.com/ineqlab/ineq-arcade/internal/geom"
)

func testView() View {
	return NewView(geom.NewRect(0, 10, 0, 10), 2, 2, 21, 11)
}

func TestToScreenCorners(t *testing.T) {
	v := testView()

	// World y grows upward, screen y grows downward.
	if sx, sy := v.ToScreen(geom.Pt(0, 0)); sx != v.X || sy != v.Y+v.H-1 {
		t.Errorf("origin mapped to (%d, %d)", sx, sy)
	}
	if sx, sy := v.ToScreen(geom.Pt(10, 10)); sx != v.X+v.W-1 || sy != v.Y {
		t.Errorf("top-right mapped to (%d, %d)", sx, sy)
	}
}

func TestCellCenterRoundTrips(t *testing.T) {
	v := testView()

	for sy := v.Y; sy < v.Y+v.H; sy++ {
		for sx := v.X; sx < v.X+v.W; sx++ {
			p := v.CellCenter(sx, sy)
			bx, by := v.ToScreen(p)
			if bx != sx || by != sy {
				t.Fatalf("cell (%d, %d) round-tripped to (%d, %d)", sx, sy, bx, by)
			}
		}
	}
}

func TestShadeSystemRespectsMembership(t *testing.T) {
	v := testView()
	s := core.NewScreen(30, 16)

	// Shade x ≤ 5 and check both sides of the boundary.
	ks := []geom.Constraint{{A: 1, B: 0, C: 5, Comp: geom.LessEq}}
	v.ShadeSystem(s, ks, '░', core.ColorGray)

	lx, ly := v.ToScreen(geom.Pt(1, 5))
	if s.Get(lx, ly) != '░' {
		t.Error("feasible cell should be shaded")
	}
	rx, ry := v.ToScreen(geom.Pt(9, 5))
	if s.Get(rx, ry) == '░' {
		t.Error("infeasible cell should stay empty")
	}
}

func TestDrawChordSkipsMissingLines(t *testing.T) {
	v := testView()
	s := core.NewScreen(30, 16)

	// A boundary entirely outside the domain draws nothing.
	v.DrawChord(s, geom.Constraint{A: 1, B: 0, C: 50, Comp: geom.LessEq}, core.ColorCyan)
	if strings.TrimSpace(s.String()) != "" {
		t.Error("off-domain chord should not draw")
	}

	// A vertical boundary inside the domain draws its glyph.
	v.DrawChord(s, geom.Constraint{A: 1, B: 0, C: 5, Comp: geom.LessEq}, core.ColorCyan)
	if !strings.Contains(s.String(), "|") {
		t.Error("vertical chord should draw '|' glyphs")
	}
}

func TestDrawMarkerClipped(t *testing.T) {
	v := testView()
	s := core.NewScreen(30, 16)

	v.DrawMarker(s, geom.Pt(5, 5), '@', core.ColorBrightWhite)
	sx, sy := v.ToScreen(geom.Pt(5, 5))
	if s.Get(sx, sy) != '@' {
		t.Error("marker inside the view should draw")
	}

	before := s.String()
	v.DrawMarker(s, geom.Pt(50, 50), '@', core.ColorBrightWhite)
	if s.String() != before {
		t.Error("marker outside the view should be clipped")
	}
}

func TestLineRuneSlopes(t *testing.T) {
	cases := []struct {
		a, b float64
		want rune
	}{
		{1, 0, '|'},
		{0, 1, '-'},
		{1, 1, '\\'},
		{1, -1, '/'},
	}
	for _, tc := range cases {
		if got := lineRune(tc.a, tc.b); got != tc.want {
			t.Errorf("lineRune(%g, %g) = %q, expected %q", tc.a, tc.b, got, tc.want)
		}
	}
}
