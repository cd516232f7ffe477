package region

import (
	"strings"
	"testing"

	"github.com/ineqlab/ineq-arcade/internal/core"
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

func TestResetLoadsFirstLevel(t *testing.T) {
	g := newTestGame(t)

	st := g.State()
	if st.Level != 1 {
		t.Errorf("Level = %d, expected 1", st.Level)
	}
	if st.Score != 0 || st.GameOver || st.Won {
		t.Errorf("unexpected initial state: %+v", st)
	}
	if g.point != g.level().Start {
		t.Errorf("point = %v, expected level start %v", g.point, g.level().Start)
	}
}

func TestMovementClampedToDomain(t *testing.T) {
	g := newTestGame(t)
	dom := g.level().Domain

	// Walk far past the right edge.
	for i := 0; i < 100; i++ {
		step(g, core.ActionRight)
	}
	if g.point.X > dom.XMax {
		t.Errorf("point escaped the domain: %v", g.point)
	}
	if g.moves == 0 {
		t.Error("movement should count moves")
	}
}

func TestSubmitOutsideIsRejected(t *testing.T) {
	g := newTestGame(t)

	// Level starts with the point infeasible.
	step(g, core.ActionConfirm)
	if g.levelCleared {
		t.Error("infeasible submission should not clear the level")
	}
	if g.message == "" {
		t.Error("rejection should explain which constraint failed")
	}
	if g.score != 0 {
		t.Errorf("score = %d, expected 0", g.score)
	}
}

func TestSubmitInsideClearsLevel(t *testing.T) {
	g := newTestGame(t)

	// region-01 is 2x + y ≤ 12 from (10,10): walk to the origin corner.
	for i := 0; i < 40; i++ {
		step(g, core.ActionLeft)
		step(g, core.ActionDown)
	}
	step(g, core.ActionConfirm)

	if !g.levelCleared {
		t.Fatalf("feasible submission should clear the level (point %v)", g.point)
	}
	if g.score <= 0 {
		t.Error("clearing a level should award points")
	}
}

func TestLevelAdvancesAfterBanner(t *testing.T) {
	g := newTestGame(t)

	for i := 0; i < 40; i++ {
		step(g, core.ActionLeft)
		step(g, core.ActionDown)
	}
	step(g, core.ActionConfirm)
	if !g.levelCleared {
		t.Fatal("expected cleared level")
	}

	for i := 0; i <= clearBannerTicks; i++ {
		step(g)
	}
	if g.State().Level != 2 {
		t.Errorf("Level = %d, expected 2 after banner", g.State().Level)
	}
	if g.moves != 0 {
		t.Error("moves should reset on level load")
	}
}

func TestPauseBlocksMovement(t *testing.T) {
	g := newTestGame(t)

	step(g, core.ActionPause)
	if !g.State().Paused {
		t.Fatal("expected paused state")
	}

	before := g.point
	step(g, core.ActionLeft)
	if g.point != before {
		t.Error("movement should be ignored while paused")
	}

	step(g, core.ActionPause)
	if g.State().Paused {
		t.Error("second pause should resume")
	}
}

func TestRenderShowsHUD(t *testing.T) {
	g := newTestGame(t)

	s := core.NewScreen(80, 24)
	g.Render(s)

	if row := s.Row(0); !strings.Contains(row, "Feasible Zone") {
		t.Errorf("title row missing: %q", row)
	}
	if row := s.Row(1); !strings.Contains(row, "Score") {
		t.Errorf("score row missing: %q", row)
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 40, ScreenH: 10})

	s := core.NewScreen(40, 10)
	g.Render(s)
	if !strings.Contains(s.String(), "too small") {
		t.Error("expected too-small notice")
	}
}
