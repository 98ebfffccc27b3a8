package tui

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-waverunner/internal/config"
	"github.com/vovakirdan/tui-waverunner/internal/core"
	"github.com/vovakirdan/tui-waverunner/internal/sim"
)

func renderFrame(t *testing.T, g *sim.Game, f sim.Frame) *core.Screen {
	t.Helper()
	s := core.NewScreen(80, 24)
	Render(f, g.Config(), s)
	return s
}

func TestRenderIntroOverlay(t *testing.T) {
	g := sim.New(config.Default(), 1)
	f := g.Step(1.0/60.0, core.NewInputFrame())

	s := renderFrame(t, g, f)
	out := s.String()

	if !strings.Contains(out, "W A V E R U N N E R") {
		t.Error("intro should show the title")
	}
	if !strings.Contains(out, "press enter to ride") {
		t.Error("intro should show the start prompt")
	}
}

func TestRenderGameplayHUD(t *testing.T) {
	g := sim.New(config.Default(), 1)
	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(0, confirm)
	f := g.Step(1.0/60.0, core.NewInputFrame())

	s := renderFrame(t, g, f)
	hud := s.Row(0) + s.Row(1)

	if !strings.Contains(hud, "SCORE") {
		t.Error("HUD should show the score")
	}
	if !strings.Contains(hud, "STAGE 1 Dawn Swell") {
		t.Error("HUD should show the stage name")
	}
	if !strings.Contains(hud, "PULSE [") {
		t.Error("HUD should show the pulse gauge")
	}
	if !strings.Contains(hud, "♥") {
		t.Error("HUD should show hearts")
	}
}

func TestRenderWaveSurface(t *testing.T) {
	g := sim.New(config.Default(), 1)
	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(0, confirm)
	f := g.Step(1.0/60.0, core.NewInputFrame())

	s := renderFrame(t, g, f)

	// Every column below the HUD carries a surface cell
	surface := 0
	for y := hudRows; y < s.Height(); y++ {
		surface += strings.Count(s.Row(y), "~")
	}
	if surface < s.Width()/2 {
		t.Errorf("only %d surface cells drawn, expected most columns covered", surface)
	}

	// The craft rides the surface
	if !strings.Contains(s.String(), "@") {
		t.Error("the player craft should be drawn")
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	g := sim.New(config.Default(), 1)
	confirm := core.NewInputFrame()
	confirm.Set(core.ActionConfirm)
	g.Step(0, confirm)

	f := g.Step(1.0/60.0, core.NewInputFrame())
	f.Mode = sim.ModeGameOver

	s := renderFrame(t, g, f)
	if !strings.Contains(s.String(), "W R E C K E D") {
		t.Error("game over should show the wreck screen")
	}
}

func TestPulseGauge(t *testing.T) {
	if got := pulseGauge(0, 10); got != "[----------]" {
		t.Errorf("empty gauge = %q", got)
	}
	if got := pulseGauge(1, 10); got != "[██████████]" {
		t.Errorf("full gauge = %q", got)
	}
	if got := pulseGauge(0.5, 10); got != "[█████-----]" {
		t.Errorf("half gauge = %q", got)
	}
	// Out-of-range charge clamps instead of overflowing the bar
	if got := pulseGauge(2.5, 10); got != "[██████████]" {
		t.Errorf("overcharged gauge = %q", got)
	}
}

func TestViewportProjection(t *testing.T) {
	cfg := config.Default()
	s := core.NewScreen(80, 24)
	v := newViewport(s, cfg)

	if v.px(0) != 0 {
		t.Errorf("px(0) = %d", v.px(0))
	}
	if got := v.px(cfg.World.Width / 2); got != 40 {
		t.Errorf("px(mid) = %d, expected 40", got)
	}
	if v.py(0) != hudRows {
		t.Errorf("py(0) = %d, expected the first row under the HUD", v.py(0))
	}
	if got := v.py(cfg.World.Height); got != 24 {
		t.Errorf("py(bottom) = %d, expected 24", got)
	}
}
