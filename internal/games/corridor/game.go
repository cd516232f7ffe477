// Package corridor implements the Corridor game: absolute-value bands
// |x − center| ≤ radius are tuned until every wanted point sits inside
// the corridor and every forbidden point falls outside. Each band is a
// pair of half-planes under the hood, so the game runs on the same
// membership engine as the others.
package corridor

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

// Game implements the Corridor game.
type Game struct {
	cfg    config.CorridorConfig
	levels []levels.Level

	levelIndex int
	bands      []levels.Band // the player's working copy
	selected   int
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

// New creates a new Corridor game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("corridor", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "corridor"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Corridor"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg, _ = config.LoadCorridor(configPath)
	config.ApplyCorridorPreset(&g.cfg, config.Preset(assistPreset))

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

func (g *Game) loadLevel() {
	lvl := g.level()
	g.bands = make([]levels.Band, len(lvl.Bands))
	copy(g.bands, lvl.Bands)
	g.selected = 0
	g.moves = 0
	g.message = ""
	g.levelCleared = false
	g.clearTicks = 0
	g.tooSmall = g.screenW < 60 || g.screenH < 18
}

func (g *Game) level() levels.Level {
	return g.levels[g.levelIndex]
}

// system expands the working bands into one flat constraint system.
func (g *Game) system() []geom.Constraint {
	out := make([]geom.Constraint, 0, 2*len(g.bands))
	for _, b := range g.bands {
		pair := b.Constraints()
		out = append(out, pair[0], pair[1])
	}
	return out
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

	if input.Has(core.ActionNext) && len(g.bands) > 0 {
		g.selected = (g.selected + 1) % len(g.bands)
	}
	g.handleTuning(input)

	if input.Has(core.ActionConfirm) {
		g.submit()
	}

	return core.StepResult{State: g.State()}
}

// handleTuning moves the selected band's center (left/right) and grows
// or shrinks its radius (up/down). The radius never drops below one
// step: a zero-width band would degenerate to a line.
func (g *Game) handleTuning(input core.InputFrame) {
	b := &g.bands[g.selected]

	if input.Has(core.ActionLeft) {
		b.Center -= g.cfg.CenterStep
		g.moves++
		g.message = ""
	}
	if input.Has(core.ActionRight) {
		b.Center += g.cfg.CenterStep
		g.moves++
		g.message = ""
	}
	if input.Has(core.ActionUp) {
		b.Radius += g.cfg.RadiusStep
		g.moves++
		g.message = ""
	}
	if input.Has(core.ActionDown) {
		if b.Radius-g.cfg.RadiusStep < g.cfg.RadiusStep {
			g.message = "The corridor cannot get any narrower"
		} else {
			b.Radius -= g.cfg.RadiusStep
			g.moves++
			g.message = ""
		}
	}
}

// submit checks coverage: every wanted point inside the corridor,
// every forbidden point outside.
func (g *Game) submit() {
	lvl := g.level()
	sys := g.system()

	for _, p := range lvl.Wanted {
		if !geom.InsideAll(p, sys) {
			g.message = fmt.Sprintf("(%g, %g) is still outside", p.X, p.Y)
			return
		}
	}
	for _, p := range lvl.Forbidden {
		if geom.InsideAll(p, sys) {
			g.message = fmt.Sprintf("(%g, %g) must stay out", p.X, p.Y)
			return
		}
	}

	gain := 50
	if lvl.Par > 0 && g.moves <= lvl.Par {
		gain += 25
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

	dst.DrawText(1, 0, fmt.Sprintf("Corridor  %d/%d  %s",
		g.levelIndex+1, len(g.levels), lvl.Name))
	dst.DrawText(1, 1, fmt.Sprintf("Score %d   Moves %d (par %d)",
		g.score, g.moves, lvl.Par))

	g.renderPanel(dst, lvl)
	g.renderPlot(dst, lvl)

	if g.message != "" {
		dst.DrawTextColored(1, dst.Height()-2, g.message, core.ColorBrightRed)
	}
	dst.DrawText(1, dst.Height()-1,
		"left/right: center   up/down: width   tab: band   enter: submit")

	switch {
	case g.won:
		dst.DrawTextCentered(dst.Height()/2, "*** CAMPAIGN COMPLETE ***")
		dst.DrawTextCentered(dst.Height()/2+1, "r: play again   q: quit")
	case g.levelCleared:
		dst.DrawTextCentered(dst.Height()/2, ">>> COVERED! <<<")
	case g.paused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED")
	}
}

// renderPanel lists the bands in |v − c| ◻ r form and the point tally.
func (g *Game) renderPanel(dst *core.Screen, lvl levels.Level) {
	y := 3
	dst.DrawText(1, y, "Bands:")
	y++
	for i, b := range g.bands {
		cursor := "  "
		color := core.ColorCyan
		if i == g.selected {
			cursor = "> "
			color = core.ColorBrightWhite
		}
		v := "x"
		if b.Axis == geom.AxisY {
			v = "y"
		}
		dst.DrawTextColored(1, y,
			fmt.Sprintf("%s|%s - %g| %s %g", cursor, v, b.Center, b.Comp, b.Radius),
			color)
		y++
	}

	y++
	sys := g.system()
	covered := 0
	for _, p := range lvl.Wanted {
		if geom.InsideAll(p, sys) {
			covered++
		}
	}
	excluded := 0
	for _, p := range lvl.Forbidden {
		if !geom.InsideAll(p, sys) {
			excluded++
		}
	}
	dst.DrawText(1, y, fmt.Sprintf("Covered  %d/%d", covered, len(lvl.Wanted)))
	y++
	dst.DrawText(1, y, fmt.Sprintf("Excluded %d/%d", excluded, len(lvl.Forbidden)))
}

// renderPlot shades the corridor and marks the wanted and forbidden
// points, colored by whether they currently sit on the right side.
func (g *Game) renderPlot(dst *core.Screen, lvl levels.Level) {
	vw := g.screenW - panelWidth - 3
	vh := g.screenH - 6
	v := plot.NewView(lvl.Domain, panelWidth+1, 3, vw, vh)

	v.DrawFrame(dst)
	sys := g.system()
	if g.cfg.Assist.ShadeFeasible {
		v.ShadeSystem(dst, sys, '░', core.ColorGray)
	}
	for _, k := range sys {
		v.DrawChord(dst, k, core.ColorCyan)
	}
	for _, p := range lvl.Wanted {
		color := core.ColorBrightRed
		if geom.InsideAll(p, sys) {
			color = core.ColorBrightGreen
		}
		v.DrawMarker(dst, p, '+', color)
	}
	for _, p := range lvl.Forbidden {
		color := core.ColorBrightGreen
		if geom.InsideAll(p, sys) {
			color = core.ColorBrightRed
		}
		v.DrawMarker(dst, p, 'x', color)
	}
}
