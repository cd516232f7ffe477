package systems

import (
	"strings"
	"testing"

	"github.com/ineqlab/ineq-arcade/internal/core"
	"github.com/ineqlab/ineq-arcade/internal/geom"
)

func newTestGame(t *testing.T) *Game {
	t.Helper()
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 80, ScreenH: 24})
	if g.gameOver {
		t.Fatalf("game failed to initialize: %s", g.message)
	}
	return g
}

func step(g *Game, actions ...core.Action) core.StepResult {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return g.Step(in)
}

func TestResetCopiesEditableSystem(t *testing.T) {
	g := newTestGame(t)

	if len(g.rows) == 0 {
		t.Fatal("expected an editable system")
	}
	// Editing must not write through to the loaded level.
	step(g, core.ActionIncrease)
	if g.rows[0].C == g.level().Editable[0].C {
		t.Error("increase should change the working copy")
	}
	if g.level().Editable[0].C != 0 {
		t.Errorf("level data mutated: %v", g.level().Editable[0])
	}
}

func TestRowSelectionWraps(t *testing.T) {
	g := newTestGame(t)

	n := len(g.rows)
	for i := 0; i < n; i++ {
		step(g, core.ActionNext)
	}
	if g.selected != 0 {
		t.Errorf("selected = %d, expected wrap to 0", g.selected)
	}
}

func TestToggleCyclesComparator(t *testing.T) {
	g := newTestGame(t)

	// systems-01 starts at ≥.
	step(g, core.ActionToggle)
	if g.rows[0].Comp != geom.Greater {
		t.Errorf("Comp = %v, expected >", g.rows[0].Comp)
	}
	step(g, core.ActionToggle)
	if g.rows[0].Comp != geom.LessEq {
		t.Errorf("Comp = %v, expected wrap to ≤", g.rows[0].Comp)
	}
}

func TestSubmitMismatchRejected(t *testing.T) {
	g := newTestGame(t)

	// x ≥ 0 is not x ≥ 2.
	step(g, core.ActionConfirm)
	if g.levelCleared {
		t.Error("mismatched systems should not clear the level")
	}
	if g.message == "" {
		t.Error("rejection should leave a message")
	}
}

func TestSubmitEquivalentClears(t *testing.T) {
	g := newTestGame(t)

	// systems-01: slide x ≥ 0 up to x ≥ 2 in four half-steps.
	for i := 0; i < 4; i++ {
		step(g, core.ActionIncrease)
	}
	step(g, core.ActionConfirm)

	if !g.levelCleared {
		t.Fatalf("x ≥ 2 should match the target, rows %v", g.rows)
	}
	// 4 edits under par 8, and the canonical systems coincide, so both
	// bonuses land on top of the base award.
	if g.score != 100 {
		t.Errorf("score = %d, expected 100", g.score)
	}
}

func TestEquivalenceNotCoefficientEquality(t *testing.T) {
	dom := geom.NewRect(0, 12, 0, 12)
	a := []geom.Constraint{{A: 1, B: 0, C: 2, Comp: geom.GreaterEq}}
	b := []geom.Constraint{{A: 2, B: 0, C: 4, Comp: geom.GreaterEq}}

	if !geom.SystemsEqual(dom, a, b) {
		t.Error("scaled rows describe the same region and must match")
	}
	if !geom.SystemsEqualStrict(a, b) {
		t.Error("canonical comparison must also see through scaling")
	}
}

func TestRenderShowsRows(t *testing.T) {
	g := newTestGame(t)

	s := core.NewScreen(80, 24)
	g.Render(s)

	out := s.String()
	if !strings.Contains(out, "System Forge") {
		t.Error("title missing from render")
	}
	if !strings.Contains(out, "> ") {
		t.Error("selection cursor missing from render")
	}
}
