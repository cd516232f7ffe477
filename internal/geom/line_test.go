package geom

import (
	"math"
	"testing"
)

func TestLineThroughOrderIndependent(t *testing.T) {
	tests := []struct {
		name   string
		p1, p2 Point
	}{
		{"diagonal", Pt(0, 0), Pt(4, 2)},
		{"vertical", Pt(3, 0), Pt(3, 7)},
		{"horizontal", Pt(0, 5), Pt(9, 5)},
		{"negative slope", Pt(1, 8), Pt(6, 2)},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			u := LineThrough(tc.p1, tc.p2)
			v := LineThrough(tc.p2, tc.p1)
			if !u.Equal(v, EpsLine) {
				t.Errorf("traversal order changed canonical form: %+v vs %+v", u, v)
			}
		})
	}
}

func TestLineThroughUnitNormal(t *testing.T) {
	l := LineThrough(Pt(0, 0), Pt(4, 2))
	if n := math.Hypot(l.A, l.B); math.Abs(n-1) > 1e-12 {
		t.Errorf("normal length = %v, expected 1", n)
	}
	// Both generating points must lie on the line.
	for _, p := range []Point{Pt(0, 0), Pt(4, 2), Pt(2, 1)} {
		if r := l.Eval(p); math.Abs(r) > 1e-12 {
			t.Errorf("point %v off line by %v", p, r)
		}
	}
}

func TestLineSignRule(t *testing.T) {
	// Vertical line: a must be non-negative.
	v := LineThrough(Pt(3, 0), Pt(3, 5))
	if v.A < 0 {
		t.Errorf("sign rule violated for vertical line: a = %v", v.A)
	}
	// Horizontal line: a ≈ 0, so b must be non-negative.
	h := LineThrough(Pt(0, 5), Pt(9, 5))
	if math.Abs(h.A) > EpsMembership || h.B < 0 {
		t.Errorf("sign rule violated for horizontal line: %+v", h)
	}
}

func TestLineFromConstraintMatchesPoints(t *testing.T) {
	// 2x + y = 12 passes through (6,0) and (0,12).
	k := Constraint{A: 2, B: 1, C: 12, Comp: LessEq}
	fromK := LineFromConstraint(k)
	fromPts := LineThrough(Pt(6, 0), Pt(0, 12))
	if !fromK.Equal(fromPts, EpsLine) {
		t.Errorf("constraint line %+v != point line %+v", fromK, fromPts)
	}

	// Negated coefficients describe the same line.
	neg := Constraint{A: -2, B: -1, C: -12, Comp: GreaterEq}
	if !LineFromConstraint(neg).Equal(fromK, EpsLine) {
		t.Error("negated constraint should canonicalize to the same line")
	}
}

func TestLineEqualTolerance(t *testing.T) {
	u := LineThrough(Pt(0, 0), Pt(10, 0))
	v := LineThrough(Pt(0, 0.005), Pt(10, 0.005))
	w := LineThrough(Pt(0, 1), Pt(10, 1))

	if !u.Equal(v, EpsLine) {
		t.Error("lines within tolerance should compare equal")
	}
	if u.Equal(w, EpsLine) {
		t.Error("clearly distinct lines should not compare equal")
	}
}

func TestChord(t *testing.T) {
	domain := NewRect(0, 12, 0, 12)

	tests := []struct {
		name    string
		line    Line
		wantOK  bool
		wantLen float64
	}{
		{"vertical through middle", LineFromConstraint(Constraint{A: 1, B: 0, C: 6}), true, 12},
		{"horizontal through middle", LineFromConstraint(Constraint{A: 0, B: 1, C: 6}), true, 12},
		{"main diagonal", LineThrough(Pt(0, 0), Pt(12, 12)), true, 12 * math.Sqrt2},
		{"misses rectangle", LineFromConstraint(Constraint{A: 1, B: 0, C: 20}), false, 0},
		{"corner clip", LineThrough(Pt(11, 12), Pt(12, 11)), true, math.Sqrt2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			seg, ok := Chord(domain, tc.line)
			if ok != tc.wantOK {
				t.Fatalf("Chord ok = %v, expected %v", ok, tc.wantOK)
			}
			if !ok {
				return
			}
			if got := seg.P.Dist(seg.Q); math.Abs(got-tc.wantLen) > 1e-6 {
				t.Errorf("chord length = %v, expected %v", got, tc.wantLen)
			}
			if !domain.Contains(seg.P) || !domain.Contains(seg.Q) {
				t.Errorf("chord endpoints %v, %v outside domain", seg.P, seg.Q)
			}
		})
	}
}

func TestChordEndpointsOnLine(t *testing.T) {
	domain := NewRect(0, 12, 0, 12)
	l := LineThrough(Pt(2, 0), Pt(6, 8))
	seg, ok := Chord(domain, l)
	if !ok {
		t.Fatal("expected a visible chord")
	}
	for _, p := range []Point{seg.P, seg.Q} {
		if r := l.Eval(p); math.Abs(r) > 1e-9 {
			t.Errorf("chord endpoint %v off line by %v", p, r)
		}
	}
}
