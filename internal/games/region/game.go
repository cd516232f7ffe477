// Package region implements the Feasible Zone game: steer a plan point
// into the feasible region of a system of linear inequalities. The HUD
// classifies every constraint at the point, teaching the binding /
// slack / violated vocabulary by direct manipulation.
package region

import (
	"fmt"

	"github.com/ineqlab/ineq-arcade/internal/config"
	"github.com/ineqlab/ineq-arcade/internal/core"
	"github.com/ineqlab/ineq-arcade/internal/geom"
	"github.com/ineqlab/ineq-arcade/internal/levels"
	"github.com/ineqlab/ineq-arcade/internal/plot"
	"github.com/ineqlab/ineq-arcade/internal/registry"
)

// Ticks the level-cleared banner stays up before advancing.
const clearBannerTicks = 45

// Package-level knobs set by the CLI before the game is created.
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

// Game implements the Feasible Zone game.
type Game struct {
	cfg    config.RegionConfig
	levels []levels.Level

	levelIndex int
	point      geom.Point
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

// New creates a new Feasible Zone game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("region", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "region"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Feasible Zone"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg, _ = config.LoadRegion(configPath)
	config.ApplyRegionPreset(&g.cfg, config.Preset(assistPreset))

	lvls, err := levels.NewLoader("").ForGame(g.ID())
	if err != nil {
		// Without levels there is nothing to play.
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
	g.message = ""

	g.levelIndex = 0
	if selectedStartLevel > 0 && selectedStartLevel <= len(g.levels) {
		g.levelIndex = selectedStartLevel - 1
		selectedStartLevel = 0
	}
	g.loadLevel()
}

// loadLevel positions the plan point for the current level.
func (g *Game) loadLevel() {
	lvl := g.level()
	g.point = lvl.Domain.Clamp(lvl.Start)
	g.moves = 0
	g.levelCleared = false
	g.clearTicks = 0
	g.message = ""
	g.tooSmall = g.screenW < 60 || g.screenH < 18
}

func (g *Game) level() levels.Level {
	return g.levels[g.levelIndex]
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

	g.handleMoves(input)

	if input.Has(core.ActionConfirm) {
		g.submit()
	}

	return core.StepResult{State: g.State()}
}

// handleMoves applies movement input, clamped to the domain rectangle.
func (g *Game) handleMoves(input core.InputFrame) {
	lvl := g.level()
	step := g.cfg.MoveStep
	p := g.point
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

	g.point = lvl.Domain.Clamp(p)
	g.moves++
	g.message = ""
}

// submit checks the plan point against the level's system.
func (g *Game) submit() {
	lvl := g.level()

	if !geom.InsideAll(g.point, lvl.Constraints) {
		g.message = "Not feasible yet: " + firstViolated(g.point, lvl.Constraints)
		return
	}

	gain := 50
	if lvl.Par > 0 && g.moves <= lvl.Par {
		gain += 25
	}
	if lvl.Binding != "" {
		if k, ok := findByLabel(lvl.Constraints, lvl.Binding); ok &&
			k.StatusAt(g.point) == geom.Binding {
			gain += 25
		}
	}
	g.score += gain
	g.levelCleared = true
	g.clearTicks = 0
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

// firstViolated names the first constraint the point fails.
func firstViolated(p geom.Point, ks []geom.Constraint) string {
	for _, k := range ks {
		if k.StatusAt(p) == geom.Violated {
			if k.Label != "" {
				return k.Label
			}
			return k.String()
		}
	}
	return ""
}

// findByLabel looks a constraint up by its label.
func findByLabel(ks []geom.Constraint, label string) (geom.Constraint, bool) {
	for _, k := range ks {
		if k.Label == label {
			return k, true
		}
	}
	return geom.Constraint{}, false
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

// panelWidth is the HUD column on the left of the plot.
const panelWidth = 30

// Render draws the current game state.
func (g *Game) Render(dst *core.Screen) {
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small (need 60x18)")
		return
	}
	lvl := g.level()

	dst.DrawText(1, 0, fmt.Sprintf("Feasible Zone  %d/%d  %s",
		g.levelIndex+1, len(g.levels), lvl.Name))
	dst.DrawText(1, 1, fmt.Sprintf("Score %d   Moves %d (par %d)",
		g.score, g.moves, lvl.Par))

	g.renderPanel(dst, lvl)
	g.renderPlot(dst, lvl)

	if g.message != "" {
		dst.DrawTextColored(1, dst.Height()-2, g.message, core.ColorBrightRed)
	}
	dst.DrawText(1, dst.Height()-1,
		"arrows: move   enter: submit   p: pause   q: quit")

	switch {
	case g.won:
		dst.DrawTextCentered(dst.Height()/2, "*** CAMPAIGN COMPLETE ***")
		dst.DrawTextCentered(dst.Height()/2+1, "r: play again   q: quit")
	case g.levelCleared:
		dst.DrawTextCentered(dst.Height()/2, ">>> FEASIBLE! <<<")
	case g.paused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED")
	}
}

// renderPanel draws the constraint list and per-constraint status.
func (g *Game) renderPanel(dst *core.Screen, lvl levels.Level) {
	y := 3
	dst.DrawText(1, y, "Constraints:")
	y++
	for _, k := range lvl.Constraints {
		label := k.String()
		if k.Label != "" {
			label = fmt.Sprintf("%-8s %s", k.Label, k.String())
		}
		color := levels.ColorOf(k)
		dst.DrawTextColored(2, y, label, color)
		if g.cfg.Assist.ShowStatus {
			st := k.StatusAt(g.point)
			dst.DrawTextColored(3, y+1, st.String(), statusColor(st))
			y++
		}
		y++
	}

	if lvl.Binding != "" {
		y++
		dst.DrawText(1, y, "Bonus: make '"+lvl.Binding+"' binding")
		y++
	}
	if g.cfg.Assist.ShowArea {
		poly := geom.Feasible(lvl.Domain, lvl.Constraints)
		y++
		dst.DrawText(1, y, fmt.Sprintf("Zone area: %.1f", poly.Area()))
	}
}

// renderPlot draws the domain view: shading, boundary lines, the point.
func (g *Game) renderPlot(dst *core.Screen, lvl levels.Level) {
	vw := g.screenW - panelWidth - 3
	vh := g.screenH - 6
	v := plot.NewView(lvl.Domain, panelWidth+1, 3, vw, vh)

	v.DrawFrame(dst)
	if g.cfg.Assist.ShadeFeasible {
		v.ShadeSystem(dst, lvl.Constraints, '░', core.ColorGray)
	}
	for _, k := range lvl.Constraints {
		v.DrawChord(dst, k, levels.ColorOf(k))
	}
	v.DrawMarker(dst, g.point, '@', core.ColorBrightWhite)
}

func statusColor(st geom.Status) core.Color {
	switch st {
	case geom.Binding:
		return core.ColorBrightYellow
	case geom.Violated:
		return core.ColorBrightRed
	default:
		return core.ColorBrightGreen
	}
}
