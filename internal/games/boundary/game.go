// Package boundary implements the Line Lab game: move two handle
// points until the line through them, together with a chosen
// comparator, reproduces a hidden target inequality. Matching runs on
// canonical line equality, so how the player traverses the handles
// never matters, only the geometry.
package boundary

import (
	"fmt"

	"github.com/ineqlab/ineq-arcade/internal/config"
	"github.com/ineqlab/ineq-arcade/internal/core"
	"github.com/ineqlab/ineq-arcade/internal/geom"
	"github.com/ineqlab/ineq-arcade/internal/levels"
	"github.com/ineqlab/ineq-arcade/internal/plot"
	"github.com/ineqlab/ineq-arcade/internal/registry"
)

const clearBannerTicks = 45

var (
	configPath         string
	assistPreset       string
	selectedStartLevel int
)

// SetConfigPath sets the gameplay config file path.
func SetConfigPath(path string) {
	configPath = path
}

// SetAssistPreset sets the assist preset (easy, normal, hard).
func SetAssistPreset(preset string) {
	assistPreset = preset
}

// SetStartLevel sets the starting level (1-based). 0 starts from the
// beginning.
func SetStartLevel(level int) {
	selectedStartLevel = level
}

// Game implements the Line Lab game.
type Game struct {
	cfg    config.BoundaryConfig
	levels []levels.Level

	levelIndex int
	handles    [2]geom.Point
	active     int // which handle the arrows move
	comp       geom.Comparator
	moves      int
	score      int
	message    string

	screenW, screenH int
	tooSmall         bool

	gameOver     bool
	won          bool
	paused       bool
	levelCleared bool
	clearTicks   int
}

// New creates a new Line Lab game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("boundary", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "boundary"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Line Lab"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg, _ = config.LoadBoundary(configPath)
	config.ApplyBoundaryPreset(&g.cfg, config.Preset(assistPreset))

	lvls, err := levels.NewLoader("").ForGame(g.ID())
	if err != nil {
		g.gameOver = true
		g.message = err.Error()
		return
	}
	g.levels = lvls

	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.score = 0
	g.gameOver = false
	g.won = false
	g.paused = false

	g.levelIndex = 0
	if selectedStartLevel > 0 && selectedStartLevel <= len(g.levels) {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0
	}
	g.loadLevel()
}

// loadLevel places the handles in a neutral diagonal position well away
// from each other and resets the comparator.
func (g *Game) loadLevel() {
	d := g.level().Domain
	g.handles[0] = geom.Pt(
		d.XMin+d.Width()/4,
		d.YMin+d.Height()/4,
	)
	g.handles[1] = geom.Pt(
		d.XMin+3*d.Width()/4,
		d.YMin+3*d.Height()/4,
	)
	g.active = 0
	g.comp = geom.LessEq
	g.moves = 0
	g.message = ""
	g.levelCleared = false
	g.clearTicks = 0
	g.tooSmall = g.screenW < 60 || g.screenH < 18
}

func (g *Game) level() levels.Level {
	return g.levels[g.levelIndex]
}

// target returns the level's single target inequality.
func (g *Game) target() geom.Constraint {
	return g.level().Constraints[0]
}

// playerConstraint is the inequality the current handles and comparator
// describe, expressed against the canonical line through the handles.
func (g *Game) playerConstraint() geom.Constraint {
	l := geom.LineThrough(g.handles[0], g.handles[1])
	return geom.Constraint{A: l.A, B: l.B, C: l.C, Comp: g.comp}
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	if input.Has(core.ActionRestart) && (g.gameOver || g.won) {
		g.Reset(core.RuntimeConfig{ScreenW: g.screenW, ScreenH: g.screenH})
		return core.StepResult{State: g.State()}
	}
	if input.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.gameOver || g.won || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if g.levelCleared {
		g.clearTicks++
		if g.clearTicks >= clearBannerTicks {
			g.advanceLevel()
		}
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionNext) {
		g.active = 1 - g.active
	}
	if input.Has(core.ActionToggle) {
		g.comp = nextComparator(g.comp)
		g.moves++
	}

	g.handleMoves(input)

	if input.Has(core.ActionConfirm) {
		g.submit()
	}

	return core.StepResult{State: g.State()}
}

// handleMoves moves the active handle, rejecting moves that would bring
// the handles closer than the configured minimum separation. That
// clamp is what keeps the line constructor away from its coincident-
// points singularity.
func (g *Game) handleMoves(input core.InputFrame) {
	step := g.cfg.HandleStep
	p := g.handles[g.active]
	moved := false

	if input.Has(core.ActionUp) {
		p.Y += step
		moved = true
	}
	if input.Has(core.ActionDown) {
		p.Y -= step
		moved = true
	}
	if input.Has(core.ActionLeft) {
		p.X -= step
		moved = true
	}
	if input.Has(core.ActionRight) {
		p.X += step
		moved = true
	}
	if !moved {
		return
	}

	p = g.level().Domain.Clamp(p)
	if p.Dist(g.handles[1-g.active]) < g.cfg.MinSeparation {
		g.message = "Handles too close"
		return
	}

	g.handles[g.active] = p
	g.moves++
	g.message = ""
}

// submit compares the player's inequality to the target: same canonical
// line, and the same half-plane once comparator direction is expressed
// relative to the canonical normal.
func (g *Game) submit() {
	target := g.target()
	player := g.playerConstraint()

	lineOK := geom.LineThrough(g.handles[0], g.handles[1]).
		Equal(geom.LineFromConstraint(target), geom.EpsLine)
	if !lineOK {
		g.message = "The line is not there yet"
		return
	}
	if !sameHalfPlane(player, target) {
		g.message = "Right line, wrong side or strictness"
		return
	}

	gain := 50
	if par := g.level().Par; par > 0 && g.moves <= par {
		gain += 25
	}
	g.score += gain
	g.levelCleared = true
	g.clearTicks = 0
}

// sameHalfPlane reports whether two constraints on the same boundary
// line select the same side with the same strictness.
func sameHalfPlane(a, b geom.Constraint) bool {
	if a.Comp.Strict() != b.Comp.Strict() {
		return false
	}
	// Same side iff the normals, oriented by their comparators to
	// point out of the feasible side, agree in direction.
	aOut := outwardNormal(a)
	bOut := outwardNormal(b)
	return aOut[0]*bOut[0]+aOut[1]*bOut[1] > 0
}

// outwardNormal returns the normal oriented away from the feasible
// half-plane.
func outwardNormal(k geom.Constraint) [2]float64 {
	switch k.Comp {
	case geom.LessEq, geom.Less:
		return [2]float64{k.A, k.B}
	default:
		return [2]float64{-k.A, -k.B}
	}
}

// nextComparator cycles ≤ → < → ≥ → > → ≤.
func nextComparator(c geom.Comparator) geom.Comparator {
	switch c {
	case geom.LessEq:
		return geom.Less
	case geom.Less:
		return geom.GreaterEq
	case geom.GreaterEq:
		return geom.Greater
	default:
		return geom.LessEq
	}
}

// advanceLevel moves to the next level or finishes the campaign.
func (g *Game) advanceLevel() {
	g.levelIndex++
	if g.levelIndex >= len(g.levels) {
		g.levelIndex = len(g.levels) - 1
		g.won = true
		return
	}
	g.loadLevel()
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		Level:    g.levelIndex + 1,
		GameOver: g.gameOver,
		Won:      g.won,
		Paused:   g.paused,
	}
}

const panelWidth = 30

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small (need 60x18)")
		return
	}
	lvl := g.level()
	target := g.target()

	dst.DrawText(1, 0, fmt.Sprintf("Line Lab  %d/%d  %s",
		g.levelIndex+1, len(g.levels), lvl.Name))
	dst.DrawText(1, 1, fmt.Sprintf("Score %d   Moves %d (par %d)",
		g.score, g.moves, lvl.Par))

	y := 3
	dst.DrawText(1, y, "Target:")
	dst.DrawTextColored(2, y+1, target.String(), levels.ColorOf(target))
	y += 3
	dst.DrawText(1, y, "Yours:")
	player := g.playerConstraint()
	dst.DrawTextColored(2, y+1, fmt.Sprintf("%.2fx + %.2fy %s %.2f",
		player.A, player.B, player.Comp, player.C), core.ColorBrightWhite)
	y += 3
	dst.DrawText(1, y, fmt.Sprintf("Active handle: %d", g.active+1))

	g.renderPlot(dst, lvl)

	if g.message != "" {
		dst.DrawTextColored(1, dst.Height()-2, g.message, core.ColorBrightRed)
	}
	dst.DrawText(1, dst.Height()-1,
		"arrows: move   tab: handle   t: comparator   enter: submit")

	switch {
	case g.won:
		dst.DrawTextCentered(dst.Height()/2, "*** CAMPAIGN COMPLETE ***")
		dst.DrawTextCentered(dst.Height()/2+1, "r: play again   q: quit")
	case g.levelCleared:
		dst.DrawTextCentered(dst.Height()/2, ">>> MATCHED! <<<")
	case g.paused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED")
	}
}

// renderPlot draws the half-plane shading, the player's chord and the
// two handles.
func (g *Game) renderPlot(dst *core.Screen, lvl levels.Level) {
	vw := g.screenW - panelWidth - 3
	vh := g.screenH - 6
	v := plot.NewView(lvl.Domain, panelWidth+1, 3, vw, vh)

	v.DrawFrame(dst)
	player := g.playerConstraint()
	if g.cfg.Assist.ShadeFeasible {
		v.ShadeSystem(dst, []geom.Constraint{player}, '░', core.ColorGray)
	}
	v.DrawChord(dst, player, core.ColorBrightCyan)

	marks := [2]rune{'1', '2'}
	for i, h := range g.handles {
		color := core.ColorWhite
		if i == g.active {
			color = core.ColorBrightYellow
		}
		v.DrawMarker(dst, h, marks[i], color)
	}
}
