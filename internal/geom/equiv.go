package geom

import "sort"

// LatticeStep is the sampling step for SystemsEqual. Finer than the
// integer grid the games snap to, so strict-vs-non-strict boundary
// differences on integer lines are still caught.
const LatticeStep = 0.5

// SystemsEqual reports whether two constraint systems admit the same
// feasible set over the domain, by comparing all-inside membership on a
// regular lattice.
//
// This is a sound-but-incomplete heuristic, not a polygon-equality
// proof: regions that differ only inside a single lattice cell are
// reported equal. That granularity matches what the games expose to the
// player, but automated grading that needs exactness should use
// SystemsEqualStrict instead.
func SystemsEqual(domain Rect, a, b []Constraint) bool {
	for x := domain.XMin; x <= domain.XMax; x += LatticeStep {
		for y := domain.YMin; y <= domain.YMax; y += LatticeStep {
			p := Point{X: x, Y: y}
			if InsideAll(p, a) != InsideAll(p, b) {
				return false
			}
		}
	}
	return true
}

// SystemsEqualStrict compares the two systems symbolically: each
// constraint is canonicalized to its boundary line plus an
// orientation-aware comparator, the sets are sorted, and matched
// pairwise within EpsLine. Exact on its own terms, but stricter than
// set equality — redundant constraints make otherwise equal systems
// compare unequal, so this is the grading mode, not a replacement for
// SystemsEqual.
func SystemsEqualStrict(a, b []Constraint) bool {
	if len(a) != len(b) {
		return false
	}
	ca := canonicalSystem(a)
	cb := canonicalSystem(b)
	for i := range ca {
		if !ca[i].line.Equal(cb[i].line, EpsLine) || ca[i].comp != cb[i].comp {
			return false
		}
	}
	return true
}

// canonical is one constraint reduced to its canonical line and a
// comparator expressed relative to the canonical normal direction.
type canonical struct {
	line Line
	comp Comparator
}

func canonicalSystem(ks []Constraint) []canonical {
	out := make([]canonical, len(ks))
	for i, k := range ks {
		out[i] = canonicalConstraint(k)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].line.A != out[j].line.A {
			return out[i].line.A < out[j].line.A
		}
		if out[i].line.B != out[j].line.B {
			return out[i].line.B < out[j].line.B
		}
		if out[i].line.C != out[j].line.C {
			return out[i].line.C < out[j].line.C
		}
		return out[i].comp < out[j].comp
	})
	return out
}

// canonicalConstraint maps k to its canonical line; when
// canonicalization flips the normal's sign the comparator direction
// flips with it, so 2x ≤ 4 and -2x ≥ -4 canonicalize identically.
func canonicalConstraint(k Constraint) canonical {
	l := LineFromConstraint(k)
	comp := k.Comp
	// Detect whether canonicalization negated the normal.
	if k.A*l.A+k.B*l.B < 0 {
		comp = comp.Flipped()
	}
	return canonical{line: l, comp: comp}
}
