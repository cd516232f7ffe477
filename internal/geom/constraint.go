package geom

import "fmt"

// Comparator is the relation in a linear inequality a·x + b·y ◻ c.
type Comparator int

const (
	LessEq Comparator = iota
	Less
	GreaterEq
	Greater
)

// String returns the mathematical symbol for the comparator.
func (c Comparator) String() string {
	switch c {
	case LessEq:
		return "≤"
	case Less:
		return "<"
	case GreaterEq:
		return "≥"
	case Greater:
		return ">"
	default:
		return "?"
	}
}

// Strict reports whether the comparator excludes its boundary.
func (c Comparator) Strict() bool {
	return c == Less || c == Greater
}

// Flipped returns the comparator with its direction reversed, keeping
// strictness (≤ ↔ ≥, < ↔ >).
func (c Comparator) Flipped() Comparator {
	switch c {
	case LessEq:
		return GreaterEq
	case Less:
		return Greater
	case GreaterEq:
		return LessEq
	default:
		return Less
	}
}

// ParseComparator converts the textual forms used in level files.
func ParseComparator(s string) (Comparator, error) {
	switch s {
	case "<=", "≤", "le":
		return LessEq, nil
	case "<", "lt":
		return Less, nil
	case ">=", "≥", "ge":
		return GreaterEq, nil
	case ">", "gt":
		return Greater, nil
	default:
		return LessEq, fmt.Errorf("geom: unknown comparator %q", s)
	}
}

// Constraint is one half-plane: the set of points satisfying
// A·x + B·y Comp C. The normal (A, B) must not be the zero vector;
// level data and editors are responsible for never producing one.
//
// Label and Color are presentation metadata carried for the games; the
// engine itself only reads A, B, C and Comp.
type Constraint struct {
	A, B, C float64
	Comp    Comparator
	Label   string
	Color   string
}

// Eval returns the left-hand side A·x + B·y at p.
func (k Constraint) Eval(p Point) float64 {
	return k.A*p.X + k.B*p.Y
}

// Inside reports whether p satisfies the constraint. The membership
// tolerance always loosens the boundary, never tightens it, for both
// strict and non-strict comparators.
func (k Constraint) Inside(p Point) bool {
	s := k.Eval(p)
	switch k.Comp {
	case LessEq:
		return s <= k.C+EpsMembership
	case Less:
		return s < k.C-EpsMembership
	case GreaterEq:
		return s >= k.C-EpsMembership
	case Greater:
		return s > k.C+EpsMembership
	default:
		return false
	}
}

// Residual returns the signed distance-like quantity A·x + B·y − C.
// Zero means p is on the boundary line.
func (k Constraint) Residual(p Point) float64 {
	return k.Eval(p) - k.C
}

// String renders the inequality in the form shown to players,
// e.g. "2x + y ≤ 12".
func (k Constraint) String() string {
	lhs := ""
	if k.A != 0 {
		lhs = term(k.A, "x")
	}
	if k.B != 0 {
		if lhs == "" {
			lhs = term(k.B, "y")
		} else if k.B < 0 {
			lhs += " - " + term(-k.B, "y")
		} else {
			lhs += " + " + term(k.B, "y")
		}
	}
	if lhs == "" {
		lhs = "0"
	}
	return fmt.Sprintf("%s %s %g", lhs, k.Comp, k.C)
}

// term formats a leading coefficient·variable pair, omitting unit
// coefficients the way a textbook would.
func term(coef float64, v string) string {
	switch coef {
	case 1:
		return v
	case -1:
		return "-" + v
	default:
		return fmt.Sprintf("%g%s", coef, v)
	}
}

// Status classifies a constraint relative to a point.
type Status int

const (
	Slack Status = iota
	Binding
	Violated
)

// String returns a display name for the status.
func (s Status) String() string {
	switch s {
	case Slack:
		return "slack"
	case Binding:
		return "binding"
	case Violated:
		return "violated"
	default:
		return "unknown"
	}
}

// StatusAt classifies k at p: Violated if p fails membership, Binding if
// the residual is within the (deliberately coarse) binding tolerance,
// Slack otherwise.
func (k Constraint) StatusAt(p Point) Status {
	if !k.Inside(p) {
		return Violated
	}
	if r := k.Residual(p); r <= EpsBinding && r >= -EpsBinding {
		return Binding
	}
	return Slack
}

// Axis selects the variable an absolute-value band constrains.
type Axis int

const (
	AxisX Axis = iota
	AxisY
)

// Band expands the absolute-value constraint |v − center| comp radius
// (v being x or y per axis) into the equivalent pair of half-planes.
// Only ≤ and < keep both sides as an intersection; for ≥ and > the set
// is not convex, so Band returns the pair whose union is the region and
// callers must treat it as such (the corridor game only uses ≤ and <).
func Band(axis Axis, center, radius float64, comp Comparator) [2]Constraint {
	var a, b float64
	if axis == AxisX {
		a, b = 1, 0
	} else {
		a, b = 0, 1
	}
	switch comp {
	case LessEq, Less:
		// v ≤ center + radius AND v ≥ center − radius.
		return [2]Constraint{
			{A: a, B: b, C: center + radius, Comp: comp},
			{A: a, B: b, C: center - radius, Comp: comp.Flipped()},
		}
	default:
		// v ≥ center + radius OR v ≤ center − radius.
		return [2]Constraint{
			{A: a, B: b, C: center + radius, Comp: comp},
			{A: a, B: b, C: center - radius, Comp: comp.Flipped()},
		}
	}
}
