package sim

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/vovakirdan/tui-waverunner/internal/config"
	"github.com/vovakirdan/tui-waverunner/internal/core"
)

// Game modes.
const (
	ModeIntro    = "intro"
	ModeGameplay = "gameplay"
	ModeGameOver = "game_over"
)

// Game holds the complete simulation state. Create with New, drive with
// Step; all randomness flows from the seed, so equal seeds and equal input
// sequences replay identically.
type Game struct {
	cfg  config.Config
	seed int64
	rng  *rand.Rand
	wave *WaveField

	mode       string
	stateTimer float64
	paused     bool

	runtime float64 // Gameplay time; frozen by pause
	phase   float64 // Wave phase
	clock   float64 // Advances every Step; drives double-tap timing only

	player    Player
	enemies   []*Enemy
	harpoons  []*Harpoon
	pulses    []*Pulse
	particles []*Particle
	catches   []*SpecialCatch
	buoy      *Buoy

	spawnTimer    float64
	spawnInterval float64
	shootTimer    float64
	pulseEnergy   float64
	specialStock  int

	stage        int
	kills        int
	quota        int
	awaitingBuoy bool
	bannerText   string
	bannerTimer  float64

	lastJumpAt float64
	highScore  int

	events []Event
}

// New creates a game with the given tuning config and seed.
func New(cfg config.Config, seed int64) *Game {
	g := &Game{cfg: cfg, seed: seed}
	g.Reset()
	return g
}

// Reset rebuilds the run from scratch: intro mode, stage 1, fresh RNG from
// the original seed. The session high score survives.
func (g *Game) Reset() {
	g.rng = rand.New(rand.NewSource(g.seed))
	g.wave = NewWaveField(g.cfg)

	g.mode = ModeIntro
	g.stateTimer = 0
	g.paused = false

	g.runtime = 0
	g.phase = 0

	g.player = newPlayer(g.cfg, g.wave)
	g.enemies = nil
	g.harpoons = nil
	g.pulses = nil
	g.particles = nil
	g.catches = nil
	g.buoy = nil

	g.spawnTimer = 0
	g.spawnInterval = g.cfg.Enemies.SpawnInterval
	g.shootTimer = 0
	g.pulseEnergy = g.cfg.Weapons.PulseEnergyMax * 0.6
	g.specialStock = 0

	g.stage = 1
	g.kills = 0
	g.quota = g.quotaForStage(g.stage)
	g.awaitingBuoy = false
	g.bannerTimer = g.cfg.Stage.BannerTime
	g.bannerText = fmt.Sprintf("Stage %d: %s", g.stage, StageName(g.stage))

	g.lastJumpAt = -10
	g.events = nil
}

// Step advances the simulation by dt seconds under the tick's input and
// returns the resulting frame. A NaN or negative dt is treated as zero:
// nothing moves, but mode intents (pause, reset, confirm) still apply.
func (g *Game) Step(dt float64, in core.InputFrame) Frame {
	g.events = g.events[:0]
	if math.IsNaN(dt) || dt < 0 {
		dt = 0
	}
	g.clock += dt

	if in.Has(core.ActionReset) {
		g.Reset()
		return g.frame()
	}

	switch g.mode {
	case ModeIntro:
		g.stateTimer += dt
		if in.Has(core.ActionConfirm) || g.stateTimer > g.cfg.Stage.IntroDelay {
			g.mode = ModeGameplay
		}
		return g.frame()
	case ModeGameOver:
		// Only reset is serviced here, handled above
		return g.frame()
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}

	// The banner freezes with the rest of the world while paused
	if g.bannerTimer > 0 && !g.paused {
		g.bannerTimer = math.Max(0, g.bannerTimer-dt)
	}

	if g.paused || dt == 0 {
		return g.frame()
	}

	g.advance(dt, in)
	return g.frame()
}

// advance runs one tick of live gameplay.
func (g *Game) advance(dt float64, in core.InputFrame) {
	cfg := g.cfg
	g.runtime += dt
	g.phase += cfg.Wave.PhaseSpeed * dt

	g.shootTimer = math.Max(0, g.shootTimer-dt)
	if in.Has(core.ActionFire) && g.shootTimer <= 0 {
		g.fireHarpoon()
	}

	g.pulseEnergy = math.Min(cfg.Weapons.PulseEnergyMax, g.pulseEnergy+dt*cfg.Weapons.PulseEnergyRegen)
	if in.Has(core.ActionPulse) && g.pulseEnergy >= cfg.Weapons.PulseEnergyMax {
		g.pulses = append(g.pulses, &Pulse{X: g.player.X, Y: g.player.Y, Alive: true})
		g.pulseEnergy = 0
		g.emit(Event{Kind: EventPulseFired, X: g.player.X, Y: g.player.Y})
	}

	g.handleJump(in)
	g.player.update(dt, cfg, g.wave, g.phase, g.runtime)

	g.spawnTimer += dt
	if g.spawnTimer >= g.spawnInterval {
		g.spawnTimer = 0
		g.spawnEnemyWave()
	}

	for _, e := range g.enemies {
		e.update(dt, g.wave, g.phase, g.runtime)
	}
	for _, p := range g.pulses {
		p.update(dt, cfg.Weapons.PulseGrowth, cfg.Weapons.PulseRadiusMax)
	}
	for _, h := range g.harpoons {
		h.update(dt, g.runtime, cfg.World.Width)
	}
	if g.buoy != nil {
		g.buoy.update(dt, g.wave, g.phase, g.runtime, cfg.Pickups.BuoyDriftSpeed)
	}
	for _, c := range g.catches {
		c.update(dt, g.wave, g.phase, g.runtime, g.player.X)
	}

	g.resolveCombat()

	g.enemies = purge(g.enemies, func(e *Enemy) bool { return e.Alive })
	g.pulses = purge(g.pulses, func(p *Pulse) bool { return p.Alive })
	g.harpoons = purge(g.harpoons, func(h *Harpoon) bool { return h.Alive })
	g.catches = purge(g.catches, func(c *SpecialCatch) bool { return !c.Collected })

	for _, p := range g.particles {
		p.update(dt)
	}
	g.particles = purge(g.particles, func(p *Particle) bool { return p.Life > 0 })

	if g.buoy != nil && g.buoy.collectedBy(g.player.X, g.player.Y, cfg.Pickups.BuoyCollectRadius) {
		g.advanceStage()
	}

	for _, c := range g.catches {
		if c.collectedBy(g.player.X, g.player.Y, cfg.Pickups.CatchCollectRadius) {
			if g.specialStock < cfg.Pickups.SpecialMaxStock {
				g.specialStock++
			}
			g.emit(Event{Kind: EventRelicCollected, X: g.player.X, Y: g.player.Y, Value: g.specialStock})
		}
	}
	g.catches = purge(g.catches, func(c *SpecialCatch) bool { return !c.Collected })

	if in.Has(core.ActionSpecial) && g.specialStock > 0 {
		g.specialStrike()
	}

	if g.player.idleTime > cfg.Scoring.ComboDecayIdle && g.player.Combo > 0 {
		g.player.Combo--
		g.player.idleTime = 0
	}

	if g.player.Health <= 0 {
		g.mode = ModeGameOver
		g.emit(Event{Kind: EventGameOver, Value: int(g.player.Score)})
	}

	if int(g.player.Score) > g.highScore {
		g.highScore = int(g.player.Score)
	}
}

// handleJump services jump intents. A second jump intent arriving within the
// double-tap window, or an explicit double-jump intent, launches the high
// jump.
func (g *Game) handleJump(in core.InputFrame) {
	switch {
	case in.Has(core.ActionJumpDouble):
		g.player.jump(g.cfg, true)
		g.lastJumpAt = g.clock
	case in.Has(core.ActionJump):
		double := g.clock-g.lastJumpAt <= g.cfg.Player.DoubleTapWindow
		g.player.jump(g.cfg, double)
		g.lastJumpAt = g.clock
	}
}

// purge filters a slice in place, preserving order.
func purge[T any](items []*T, keep func(*T) bool) []*T {
	out := items[:0]
	for _, it := range items {
		if keep(it) {
			out = append(out, it)
		}
	}
	return out
}

// Config returns the tuning config the game was built with.
func (g *Game) Config() config.Config {
	return g.cfg
}

// HighScore returns the best score seen this session, across resets.
func (g *Game) HighScore() int {
	return g.highScore
}
