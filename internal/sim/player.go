package sim

import (
	"math"

	"github.com/vovakirdan/tui-waverunner/internal/config"
	"github.com/vovakirdan/tui-waverunner/internal/core"
)

// Spring snap thresholds; below both, the craft locks to the surface.
const (
	snapDistance = 0.4
	snapVelocity = 0.15
)

// Player is the craft riding the wave. It is horizontally anchored; only the
// vertical axis simulates, via a damped spring toward the surface.
type Player struct {
	X, Y      float64
	VY        float64
	Health    int
	IFrames   float64
	Score     float64
	Combo     int
	BestCombo int
	idleTime  float64 // Seconds since the combo last changed
	grounded  bool
}

func newPlayer(cfg config.Config, wave *WaveField) Player {
	anchor := cfg.World.Width * cfg.Player.AnchorRatio
	return Player{
		X:        anchor,
		Y:        wave.Height(anchor, 0, 0) - cfg.Player.RideOffset,
		Health:   cfg.Player.Health,
		grounded: true,
	}
}

// update runs the vertical spring toward the wave surface, ticks down
// invulnerability and accrues passive survival score.
func (p *Player) update(dt float64, cfg config.Config, wave *WaveField, phase, t float64) {
	target := wave.Height(p.X, phase, t) - cfg.Player.RideOffset

	delta := target - p.Y
	p.VY += delta * cfg.Player.SpringStiffness
	p.VY *= cfg.Player.SpringDamping
	p.Y += p.VY * dt * 60

	if math.Abs(delta) < snapDistance && math.Abs(p.VY) < snapVelocity {
		p.Y = target
		p.VY = 0
		p.grounded = true
	}

	if p.IFrames > 0 {
		p.IFrames -= dt
	}

	p.Score += dt * cfg.Scoring.PassiveRate * (1 + float64(p.Combo)*cfg.Scoring.PassiveComboFactor)
	p.idleTime += dt
}

// jump launches the craft off the wave. Ignored while airborne.
func (p *Player) jump(cfg config.Config, double bool) {
	if !p.grounded {
		return
	}
	v := cfg.Player.JumpVelocity
	if double {
		v *= cfg.Player.DoubleJumpMult
	}
	p.VY = v
	p.grounded = false
}

// damage applies one hit unless invulnerability frames are active.
// Returns true if the hit landed.
func (p *Player) damage(cfg config.Config) bool {
	if p.IFrames > 0 {
		return false
	}
	p.Health--
	p.IFrames = cfg.Player.IFrames
	p.Combo = 0
	p.idleTime = 0
	return true
}

// rewardCombo bumps the combo, capped, and refreshes the idle timer.
func (p *Player) rewardCombo(cfg config.Config, amount int) {
	p.Combo = core.Min(cfg.Player.MaxCombo, p.Combo+amount)
	if p.Combo > p.BestCombo {
		p.BestCombo = p.Combo
	}
	p.idleTime = 0
}
