package geom

import (
	"math"
	"testing"
)

// samePolygon reports whether two polygons have the same vertex cycle up
// to rotation and tolerance.
func samePolygon(a, b Polygon, tol float64) bool {
	if len(a) != len(b) {
		return false
	}
	n := len(a)
	if n == 0 {
		return true
	}
	for shift := 0; shift < n; shift++ {
		match := true
		for i := 0; i < n; i++ {
			if a[i].Dist(b[(i+shift)%n]) > tol {
				match = false
				break
			}
		}
		if match {
			return true
		}
	}
	return false
}

func TestAreaBasics(t *testing.T) {
	tests := []struct {
		name     string
		poly     Polygon
		expected float64
	}{
		{"empty", nil, 0},
		{"single point", Polygon{Pt(1, 1)}, 0},
		{"two points", Polygon{Pt(0, 0), Pt(5, 5)}, 0},
		{"unit square", Polygon{Pt(0, 0), Pt(1, 0), Pt(1, 1), Pt(0, 1)}, 1},
		{"clockwise square", Polygon{Pt(0, 0), Pt(0, 1), Pt(1, 1), Pt(1, 0)}, 1},
		{"triangle", Polygon{Pt(0, 0), Pt(4, 0), Pt(0, 8)}, 16},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if got := tc.poly.Area(); math.Abs(got-tc.expected) > 1e-9 {
				t.Errorf("Area() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestAreaRotationInvariant(t *testing.T) {
	poly := Polygon{Pt(2, 0), Pt(6, 0), Pt(2, 8)}
	want := poly.Area()
	for k := 1; k < len(poly); k++ {
		rotated := append(Polygon{}, poly[k:]...)
		rotated = append(rotated, poly[:k]...)
		if got := rotated.Area(); math.Abs(got-want) > 1e-9 {
			t.Errorf("rotation by %d changed area: %v vs %v", k, got, want)
		}
	}
}

func TestClipHalfPlaneIdempotent(t *testing.T) {
	// Clipping by a constraint the polygon already satisfies everywhere
	// must return the same polygon up to rotation/tolerance.
	square := Polygon{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}
	k := Constraint{A: 1, B: 0, C: 10, Comp: LessEq}

	got := ClipHalfPlane(square, k)
	if !samePolygon(got, square, 1e-9) {
		t.Errorf("idempotent clip changed polygon: %v", got)
	}
}

func TestClipHalfPlaneCutsSquare(t *testing.T) {
	square := Polygon{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}
	k := Constraint{A: 1, B: 0, C: 2, Comp: LessEq} // keep x ≤ 2

	got := ClipHalfPlane(square, k)
	if math.Abs(got.Area()-8) > 1e-9 {
		t.Errorf("half of the square should remain, area = %v", got.Area())
	}
	for _, p := range got {
		if p.X > 2+1e-9 {
			t.Errorf("vertex %v violates the clip constraint", p)
		}
	}
}

func TestClipHalfPlaneEmptiesPolygon(t *testing.T) {
	square := Polygon{Pt(0, 0), Pt(4, 0), Pt(4, 4), Pt(0, 4)}
	k := Constraint{A: 1, B: 0, C: -1, Comp: LessEq} // x ≤ -1

	got := ClipHalfPlane(square, k)
	if !got.Empty() {
		t.Errorf("clip should empty the polygon, got %v", got)
	}
	if got.Area() != 0 {
		t.Errorf("empty polygon area = %v, expected 0", got.Area())
	}
}

func TestFeasibleConcreteScenario(t *testing.T) {
	// Domain [0,12]² with a budget line 2x+y ≤ 12 and a floor x ≥ 2
	// leaves the triangle (2,0) (6,0) (2,8) with area 16.
	domain := NewRect(0, 12, 0, 12)
	constraints := []Constraint{
		{A: 2, B: 1, C: 12, Comp: LessEq, Label: "budget"},
		{A: 1, B: 0, C: 2, Comp: GreaterEq, Label: "floor"},
	}

	poly := Feasible(domain, constraints)
	want := Polygon{Pt(2, 0), Pt(6, 0), Pt(2, 8)}

	if math.Abs(poly.Area()-16) > 1e-9 {
		t.Errorf("area = %v, expected 16", poly.Area())
	}
	if !samePolygon(poly, want, 1e-9) {
		t.Errorf("vertices = %v, expected %v up to rotation", poly, want)
	}
}

func TestFeasibleOrderInvariance(t *testing.T) {
	domain := NewRect(0, 12, 0, 12)
	k1 := Constraint{A: 2, B: 1, C: 12, Comp: LessEq}
	k2 := Constraint{A: 1, B: 0, C: 2, Comp: GreaterEq}
	k3 := Constraint{A: 0, B: 1, C: 1, Comp: GreaterEq}

	orders := [][]Constraint{
		{k1, k2, k3},
		{k3, k1, k2},
		{k2, k3, k1},
		{k3, k2, k1},
	}

	base := Feasible(domain, orders[0])
	for i, order := range orders[1:] {
		got := Feasible(domain, order)
		if math.Abs(got.Area()-base.Area()) > 1e-9 {
			t.Errorf("permutation %d changed area: %v vs %v", i+1, got.Area(), base.Area())
		}
		if !samePolygon(got, base, 1e-6) {
			t.Errorf("permutation %d changed vertex set: %v vs %v", i+1, got, base)
		}
	}
}

func TestFeasibleInfeasibleSystem(t *testing.T) {
	// x ≥ 10 and x ≤ 2 cannot both hold.
	domain := NewRect(0, 12, 0, 12)
	constraints := []Constraint{
		{A: 1, B: 0, C: 10, Comp: GreaterEq},
		{A: 1, B: 0, C: 2, Comp: LessEq},
	}

	poly := Feasible(domain, constraints)
	if !poly.Empty() {
		t.Errorf("infeasible system produced %d vertices", len(poly))
	}
	if poly.Area() != 0 {
		t.Errorf("infeasible system area = %v, expected 0", poly.Area())
	}
}

func TestFeasibleNoConstraints(t *testing.T) {
	domain := NewRect(0, 10, 0, 5)
	poly := Feasible(domain, nil)
	if math.Abs(poly.Area()-50) > 1e-9 {
		t.Errorf("empty system should keep the whole rectangle, area = %v", poly.Area())
	}
}

func TestFeasibleVerticesSatisfyAll(t *testing.T) {
	domain := NewRect(0, 12, 0, 12)
	constraints := []Constraint{
		{A: 2, B: 1, C: 12, Comp: LessEq},
		{A: 1, B: 0, C: 2, Comp: GreaterEq},
		{A: -1, B: 1, C: 5, Comp: LessEq},
	}
	poly := Feasible(domain, constraints)
	for _, v := range poly {
		for _, k := range constraints {
			// Vertices sit on boundaries, so only the loosened
			// non-strict membership is guaranteed.
			if k.Residual(v) > EpsBinding && !k.Inside(v) {
				t.Errorf("vertex %v violates %v", v, k)
			}
		}
	}
}

func TestMergeNearDuplicates(t *testing.T) {
	poly := Polygon{
		Pt(0, 0),
		Pt(0, 1e-9), // collapses into previous vertex
		Pt(4, 0),
		Pt(4, 4),
		Pt(1e-9, 0), // collapses into the first vertex via wrap-around
	}
	got := mergeNearDuplicates(poly)
	if len(got) != 3 {
		t.Errorf("expected 3 vertices after merge, got %d: %v", len(got), got)
	}
}

func TestInsideAll(t *testing.T) {
	constraints := []Constraint{
		{A: 2, B: 1, C: 12, Comp: LessEq},
		{A: 1, B: 0, C: 2, Comp: GreaterEq},
	}
	if !InsideAll(Pt(3, 2), constraints) {
		t.Error("(3,2) should satisfy the system")
	}
	if InsideAll(Pt(1, 1), constraints) {
		t.Error("(1,1) fails the floor constraint")
	}
	if InsideAll(Pt(6, 6), constraints) {
		t.Error("(6,6) fails the budget constraint")
	}
}
