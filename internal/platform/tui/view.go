package tui

import (
	"fmt"
	"math"
	"strings"

	"github.com/vovakirdan/tui-waverunner/internal/config"
	"github.com/vovakirdan/tui-waverunner/internal/core"
	"github.com/vovakirdan/tui-waverunner/internal/sim"
)

// hudRows is the number of screen rows reserved for the HUD at the top.
const hudRows = 2

// viewport projects world coordinates onto screen cells.
type viewport struct {
	w, h   int
	top    int
	worldW float64
	worldH float64
}

func newViewport(s *core.Screen, cfg config.Config) viewport {
	return viewport{
		w:      s.Width(),
		h:      s.Height(),
		top:    hudRows,
		worldW: cfg.World.Width,
		worldH: cfg.World.Height,
	}
}

func (v viewport) px(wx float64) int {
	return int(wx / v.worldW * float64(v.w))
}

func (v viewport) py(wy float64) int {
	rows := v.h - v.top
	return v.top + int(wy/v.worldH*float64(rows))
}

// Render draws a simulation frame onto the screen buffer.
func Render(f sim.Frame, cfg config.Config, s *core.Screen) {
	s.Clear()
	v := newViewport(s, cfg)

	drawWater(f, v, s)
	drawParticles(f, v, s)
	drawPickups(f, v, s)
	drawPulses(f, v, s)
	drawHarpoons(f, v, s)
	drawEnemies(f, v, s)
	drawPlayer(f, v, s)
	drawBanner(f, v, s)
	drawHUD(f, cfg, s)

	switch {
	case f.Mode == sim.ModeIntro:
		drawIntro(s)
	case f.Mode == sim.ModeGameOver:
		drawGameOver(f, s)
	case f.Paused:
		drawPaused(s)
	}
}

// drawWater renders the wave surface and fills the body of water below it.
func drawWater(f sim.Frame, v viewport, s *core.Screen) {
	if len(f.Mesh) < 2 || v.w < 1 {
		return
	}

	for x := 0; x < v.w; x++ {
		idx := x * (len(f.Mesh) - 1) / core.Max(v.w-1, 1)
		sy := v.py(f.Mesh[idx].Y)
		if sy < v.top {
			sy = v.top
		}

		s.SetCell(x, sy, '~', core.ColorBrightCyan)
		for y := sy + 1; y < v.h; y++ {
			if (x+y)%2 == 0 {
				s.SetCell(x, y, '·', core.ColorBlue)
			}
		}
	}
}

func drawParticles(f sim.Frame, v viewport, s *core.Screen) {
	for _, p := range f.Particles {
		if p.Fade > 0.5 {
			s.SetCell(v.px(p.X), v.py(p.Y), '•', core.ColorBrightWhite)
		} else {
			s.SetCell(v.px(p.X), v.py(p.Y), '·', core.ColorGray)
		}
	}
}

func drawPickups(f sim.Frame, v viewport, s *core.Screen) {
	if f.Buoy != nil {
		x, y := v.px(f.Buoy.X), v.py(f.Buoy.Y)
		s.SetCell(x, y, '◉', core.ColorBrightYellow)
		s.SetCell(x, y-1, '⚑', core.ColorYellow)
	}
	for _, c := range f.Catches {
		s.SetCell(v.px(c.X), v.py(c.Y), '✦', core.ColorBrightMagenta)
	}
}

// drawPulses renders each pulse as a ring of points around its center.
func drawPulses(f sim.Frame, v viewport, s *core.Screen) {
	for _, p := range f.Pulses {
		cx, cy := v.px(p.X), v.py(p.Y)
		rx := p.Radius / v.worldW * float64(v.w)
		ry := p.Radius / v.worldH * float64(v.h-v.top)
		steps := core.Max(8, int(rx*2))
		for i := 0; i < steps; i++ {
			a := float64(i) / float64(steps) * 2 * math.Pi
			s.SetCell(cx+int(math.Cos(a)*rx), cy+int(math.Sin(a)*ry), '◦', core.ColorBrightCyan)
		}
	}
}

func drawHarpoons(f sim.Frame, v viewport, s *core.Screen) {
	for _, h := range f.Harpoons {
		r := '»'
		if h.Dir < 0 {
			r = '«'
		}
		s.SetCell(v.px(h.X), v.py(h.Y), r, core.ColorBrightWhite)
	}
}

func drawEnemies(f sim.Frame, v viewport, s *core.Screen) {
	for _, e := range f.Enemies {
		x, y := v.px(e.X), v.py(e.Y)
		if e.Warning {
			// Spawn telegraph: incoming marker pinned to the right edge
			s.SetCell(core.Min(x, v.w-1), y, '!', core.ColorBrightYellow)
			continue
		}
		r, c := enemyGlyph(e.Variant)
		s.SetCell(x, y, r, c)
	}
}

func enemyGlyph(variant sim.Variant) (rune, core.Color) {
	switch variant {
	case sim.VariantHopper:
		return '▲', core.ColorOrange
	case sim.VariantDiver:
		return '◆', core.ColorMagenta
	case sim.VariantCharger:
		return '⊳', core.ColorBrightYellow
	default:
		return '●', core.ColorBrightRed
	}
}

func drawPlayer(f sim.Frame, v viewport, s *core.Screen) {
	c := core.ColorBrightWhite
	if f.Player.Invulnerable {
		c = core.ColorGray
	}
	x, y := v.px(f.Player.X), v.py(f.Player.Y)
	s.SetCell(x, y, '@', c)
	s.SetCell(x-1, y, '◢', core.ColorCyan)
	s.SetCell(x+1, y, '◣', core.ColorCyan)
}

func drawBanner(f sim.Frame, v viewport, s *core.Screen) {
	if f.BannerTimer <= 0 || f.BannerText == "" {
		return
	}
	x := (v.w - len([]rune(f.BannerText))) / 2
	s.DrawTextColored(x, v.top+2, f.BannerText, core.ColorBrightYellow)
}

func drawHUD(f sim.Frame, cfg config.Config, s *core.Screen) {
	hearts := strings.Repeat("♥", core.Max(0, f.Player.Health))
	left := fmt.Sprintf("SCORE %06d  HI %06d  COMBO x%d (best %d)  %s",
		f.Player.Score, f.HighScore, f.Player.Combo, f.Player.BestCombo, hearts)
	s.DrawTextColored(1, 0, left, core.ColorBrightWhite)

	progress := fmt.Sprintf("STAGE %d %s  %d/%d", f.Stage, f.StageName, f.Kills, f.Quota)
	if f.AwaitingBuoy {
		progress = fmt.Sprintf("STAGE %d %s  BUOY!", f.Stage, f.StageName)
	}
	s.DrawTextColored(s.Width()-len([]rune(progress))-1, 0, progress, core.ColorBrightCyan)

	gauge := pulseGauge(f.PulseCharge, 10)
	gaugeColor := core.ColorCyan
	if f.PulseCharge >= 1 {
		gaugeColor = core.ColorBrightCyan
	}
	s.DrawTextColored(1, 1, "PULSE "+gauge, gaugeColor)
	s.DrawTextColored(20, 1, fmt.Sprintf("RELICS ✦x%d/%d", f.SpecialStock, cfg.Pickups.SpecialMaxStock), core.ColorBrightMagenta)
}

// pulseGauge renders a 0..1 charge as a fixed-width bar.
func pulseGauge(charge float64, width int) string {
	filled := int(core.ClampF(charge, 0, 1) * float64(width))
	return "[" + strings.Repeat("█", filled) + strings.Repeat("-", width-filled) + "]"
}

func drawIntro(s *core.Screen) {
	cy := s.Height() / 2
	s.DrawTextCentered(cy-4, "W A V E R U N N E R")
	s.DrawTextCentered(cy-3, "Tidal Tactician")
	s.DrawTextCentered(cy-1, "space/w jump (tap twice for a high jump)")
	s.DrawTextCentered(cy, "f harpoon   e tidal pulse   g surge strike")
	s.DrawTextCentered(cy+1, "p pause   r restart   q quit")
	s.DrawTextCentered(cy+3, "press enter to ride")
}

func drawPaused(s *core.Screen) {
	cy := s.Height() / 2
	s.DrawTextCentered(cy, "P A U S E D")
	s.DrawTextCentered(cy+1, "press p to resume")
}

func drawGameOver(f sim.Frame, s *core.Screen) {
	cy := s.Height() / 2
	s.DrawTextCentered(cy-2, "W R E C K E D")
	s.DrawTextCentered(cy, fmt.Sprintf("score %d   best combo x%d   stage %d", f.Player.Score, f.Player.BestCombo, f.Stage))
	s.DrawTextCentered(cy+2, "press r to ride again, q to quit")
}
