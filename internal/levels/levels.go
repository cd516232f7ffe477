// Package levels loads the yaml level definitions shared by all games.
// Each level names its game, a domain rectangle, and per-game sections
// (constraint systems, target inequalities, corridor points). Level
// files are the only place degenerate constraints could enter the
// engine, so validation rejects zero-normal rows at load time.
package levels

import (
	"fmt"

	"github.com/ineqlab/ineq-arcade/internal/core"
	"github.com/ineqlab/ineq-arcade/internal/geom"
	"gopkg.in/yaml.v3"
)

// Level is a fully parsed, validated level ready for a game to play.
type Level struct {
	ID     string
	Game   string
	Name   string
	Domain geom.Rect

	// Constraints is the level's primary system: the active system in
	// region, the target system in systems, the single target
	// inequality in boundary.
	Constraints []geom.Constraint

	// Start is the initial plan point (region game).
	Start geom.Point

	// Binding names the constraint the bonus objective wants binding
	// at the submitted point (region game, optional).
	Binding string

	// Editable is the starting editable system (systems game).
	Editable []geom.Constraint

	// Bands is the starting band set (corridor game).
	Bands []Band

	// Wanted and Forbidden are the points the corridor must cover and
	// exclude (corridor game).
	Wanted    []geom.Point
	Forbidden []geom.Point

	// Par is the move budget full score is granted under.
	Par int
}

// Band is one adjustable absolute-value constraint |v − Center| ◻ Radius.
type Band struct {
	Axis   geom.Axis
	Center float64
	Radius float64
	Comp   geom.Comparator
}

// Constraints expands the band into its half-plane pair.
func (b Band) Constraints() [2]geom.Constraint {
	return geom.Band(b.Axis, b.Center, b.Radius, b.Comp)
}

// yamlLevel is the on-disk schema.
type yamlLevel struct {
	ID          string           `yaml:"id"`
	Game        string           `yaml:"game"`
	Name        string           `yaml:"name"`
	Domain      yamlDomain       `yaml:"domain"`
	Constraints []yamlConstraint `yaml:"constraints,omitempty"`
	Start       *yamlPoint       `yaml:"start,omitempty"`
	Binding     string           `yaml:"binding,omitempty"`
	Editable    []yamlConstraint `yaml:"editable,omitempty"`
	Bands       []yamlBand       `yaml:"bands,omitempty"`
	Wanted      []yamlPoint      `yaml:"wanted,omitempty"`
	Forbidden   []yamlPoint      `yaml:"forbidden,omitempty"`
	Par         int              `yaml:"par,omitempty"`
}

type yamlDomain struct {
	XMin float64 `yaml:"xmin"`
	XMax float64 `yaml:"xmax"`
	YMin float64 `yaml:"ymin"`
	YMax float64 `yaml:"ymax"`
}

type yamlConstraint struct {
	A     float64 `yaml:"a"`
	B     float64 `yaml:"b"`
	C     float64 `yaml:"c"`
	Comp  string  `yaml:"comp"`
	Label string  `yaml:"label,omitempty"`
	Color string  `yaml:"color,omitempty"`
}

type yamlPoint struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type yamlBand struct {
	Axis   string  `yaml:"axis"`
	Center float64 `yaml:"center"`
	Radius float64 `yaml:"radius"`
	Comp   string  `yaml:"comp"`
}

// Parse decodes and validates one yaml level document.
func Parse(data []byte) (Level, error) {
	var yl yamlLevel
	if err := yaml.Unmarshal(data, &yl); err != nil {
		return Level{}, fmt.Errorf("levels: yaml unmarshal: %w", err)
	}

	if yl.ID == "" {
		return Level{}, fmt.Errorf("levels: missing id")
	}
	if yl.Game == "" {
		return Level{}, fmt.Errorf("levels: level %s: missing game", yl.ID)
	}
	if yl.Domain.XMax <= yl.Domain.XMin || yl.Domain.YMax <= yl.Domain.YMin {
		return Level{}, fmt.Errorf("levels: level %s: invalid domain", yl.ID)
	}

	lvl := Level{
		ID:      yl.ID,
		Game:    yl.Game,
		Name:    yl.Name,
		Binding: yl.Binding,
		Par:     yl.Par,
		Domain: geom.NewRect(
			yl.Domain.XMin, yl.Domain.XMax,
			yl.Domain.YMin, yl.Domain.YMax,
		),
	}

	var err error
	if lvl.Constraints, err = parseConstraints(yl.ID, yl.Constraints); err != nil {
		return Level{}, err
	}
	if lvl.Editable, err = parseConstraints(yl.ID, yl.Editable); err != nil {
		return Level{}, err
	}

	if yl.Start != nil {
		lvl.Start = geom.Pt(yl.Start.X, yl.Start.Y)
	} else {
		// Default the plan point to the domain center.
		lvl.Start = geom.Pt(
			(lvl.Domain.XMin+lvl.Domain.XMax)/2,
			(lvl.Domain.YMin+lvl.Domain.YMax)/2,
		)
	}

	for _, yb := range yl.Bands {
		b, err := parseBand(yl.ID, yb)
		if err != nil {
			return Level{}, err
		}
		lvl.Bands = append(lvl.Bands, b)
	}
	for _, p := range yl.Wanted {
		lvl.Wanted = append(lvl.Wanted, geom.Pt(p.X, p.Y))
	}
	for _, p := range yl.Forbidden {
		lvl.Forbidden = append(lvl.Forbidden, geom.Pt(p.X, p.Y))
	}

	return lvl, nil
}

func parseConstraints(levelID string, ycs []yamlConstraint) ([]geom.Constraint, error) {
	if len(ycs) == 0 {
		return nil, nil
	}
	out := make([]geom.Constraint, 0, len(ycs))
	for i, yc := range ycs {
		if yc.A == 0 && yc.B == 0 {
			return nil, fmt.Errorf(
				"levels: level %s: constraint %d has a zero normal vector", levelID, i)
		}
		comp, err := geom.ParseComparator(yc.Comp)
		if err != nil {
			return nil, fmt.Errorf("levels: level %s: constraint %d: %w", levelID, i, err)
		}
		out = append(out, geom.Constraint{
			A:     yc.A,
			B:     yc.B,
			C:     yc.C,
			Comp:  comp,
			Label: yc.Label,
			Color: yc.Color,
		})
	}
	return out, nil
}

func parseBand(levelID string, yb yamlBand) (Band, error) {
	var axis geom.Axis
	switch yb.Axis {
	case "x", "":
		axis = geom.AxisX
	case "y":
		axis = geom.AxisY
	default:
		return Band{}, fmt.Errorf("levels: level %s: unknown band axis %q", levelID, yb.Axis)
	}
	if yb.Radius <= 0 {
		return Band{}, fmt.Errorf("levels: level %s: band radius must be positive", levelID)
	}
	comp, err := geom.ParseComparator(yb.Comp)
	if err != nil {
		return Band{}, fmt.Errorf("levels: level %s: band: %w", levelID, err)
	}
	return Band{Axis: axis, Center: yb.Center, Radius: yb.Radius, Comp: comp}, nil
}

// ColorOf maps a constraint's declared color to the screen palette.
func ColorOf(k geom.Constraint) core.Color {
	return core.ParseColor(k.Color)
}
