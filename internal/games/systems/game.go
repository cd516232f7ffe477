// Package systems implements the System Forge game: the player tunes
// the constants and comparators of an editable system of inequalities
// until it carves out the same region as a hidden target system. The
// check is region equivalence, not coefficient equality, so two
// different-looking systems that agree on the board both count.
package systems

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

// Game implements the System Forge game.
type Game struct {
	cfg    config.SystemsConfig
	levels []levels.Level

	levelIndex int
	rows       []geom.Constraint // the player's editable copy
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

// New creates a new System Forge game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("systems", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "systems"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "System Forge"
}

// Reset initializes/restarts the game.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	g.cfg, _ = config.LoadSystems(configPath)
	config.ApplySystemsPreset(&g.cfg, config.Preset(assistPreset))

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

// loadLevel copies the level's editable system so edits never touch the
// loaded level data.
func (g *Game) loadLevel() {
	lvl := g.level()
	g.rows = make([]geom.Constraint, len(lvl.Editable))
	copy(g.rows, lvl.Editable)
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

	if input.Has(core.ActionNext) && len(g.rows) > 0 {
		g.selected = (g.selected + 1) % len(g.rows)
	}
	if input.Has(core.ActionIncrease) {
		g.rows[g.selected].C += g.cfg.ConstStep
		g.moves++
		g.message = ""
	}
	if input.Has(core.ActionDecrease) {
		g.rows[g.selected].C -= g.cfg.ConstStep
		g.moves++
		g.message = ""
	}
	if input.Has(core.ActionToggle) {
		g.rows[g.selected].Comp = nextComparator(g.rows[g.selected].Comp)
		g.moves++
		g.message = ""
	}

	if input.Has(core.ActionConfirm) {
		g.submit()
	}

	return core.StepResult{State: g.State()}
}

// submit tests the edited system for region equivalence with the
// target. An exact canonical match earns a bonus on top.
func (g *Game) submit() {
	lvl := g.level()

	if !geom.SystemsEqual(lvl.Domain, g.rows, lvl.Constraints) {
		g.message = "The regions still differ somewhere"
		return
	}

	gain := 50
	if lvl.Par > 0 && g.moves <= lvl.Par {
		gain += 25
	}
	if geom.SystemsEqualStrict(g.rows, lvl.Constraints) {
		gain += 25
	}
	g.score += gain
	g.levelCleared = true
	g.clearTicks = 0
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

	dst.DrawText(1, 0, fmt.Sprintf("System Forge  %d/%d  %s",
		g.levelIndex+1, len(g.levels), lvl.Name))
	dst.DrawText(1, 1, fmt.Sprintf("Score %d   Edits %d (par %d)",
		g.score, g.moves, lvl.Par))

	g.renderPanel(dst)
	g.renderPlot(dst, lvl)

	if g.message != "" {
		dst.DrawTextColored(1, dst.Height()-2, g.message, core.ColorBrightRed)
	}
	dst.DrawText(1, dst.Height()-1,
		"tab: row   +/-: constant   t: comparator   enter: submit")

	switch {
	case g.won:
		dst.DrawTextCentered(dst.Height()/2, "*** CAMPAIGN COMPLETE ***")
		dst.DrawTextCentered(dst.Height()/2+1, "r: play again   q: quit")
	case g.levelCleared:
		dst.DrawTextCentered(dst.Height()/2, ">>> EQUIVALENT! <<<")
	case g.paused:
		dst.DrawTextCentered(dst.Height()/2, "PAUSED")
	}
}

// renderPanel draws the editable rows, with a cursor on the selected
// one.
func (g *Game) renderPanel(dst *core.Screen) {
	y := 3
	dst.DrawText(1, y, "Your system:")
	y++
	for i, k := range g.rows {
		cursor := "  "
		color := levels.ColorOf(k)
		if i == g.selected {
			cursor = "> "
			color = core.ColorBrightWhite
		}
		dst.DrawTextColored(1, y, cursor+k.String(), color)
		y++
	}

	y++
	dst.DrawText(1, y, "Forge a system that carves")
	y++
	dst.DrawText(1, y, "out the dashed target zone.")
}

// renderPlot shades the player's region and outlines the target's
// boundary so the mismatch is visible.
func (g *Game) renderPlot(dst *core.Screen, lvl levels.Level) {
	vw := g.screenW - panelWidth - 3
	vh := g.screenH - 6
	v := plot.NewView(lvl.Domain, panelWidth+1, 3, vw, vh)

	v.DrawFrame(dst)
	if g.cfg.Assist.ShadeFeasible {
		v.ShadeSystem(dst, g.rows, '░', core.ColorGray)
	}
	for _, k := range lvl.Constraints {
		v.DrawChord(dst, k, levels.ColorOf(k))
	}
	for _, k := range g.rows {
		v.DrawChord(dst, k, core.ColorBrightWhite)
	}
}
