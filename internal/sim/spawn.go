package sim

import (
	"math"

	"github.com/vovakirdan/tui-waverunner/internal/core"
)

// spawnEnemyWave pushes a pack of enemies in from the right edge and throws
// a spray burst to telegraph the arrival.
func (g *Game) spawnEnemyWave() {
	cfg := g.cfg
	stageFactor := core.Min(g.stage, cfg.Enemies.MaxStageFactor)
	n := 3 + g.rng.Intn(2+stageFactor/2)
	spacing := float64(22 + g.rng.Intn(19))
	startX := cfg.World.Width + 50
	speedBoost := 0.9 + float64(stageFactor-1)*0.08
	baseSpeed := (cfg.Enemies.MinSpeed + g.rng.Float64()*(cfg.Enemies.MaxSpeed-cfg.Enemies.MinSpeed)) * speedBoost

	for i := 0; i < n; i++ {
		variant := g.pickVariant(stageFactor)
		jitter := 0.88 + g.rng.Float64()*0.24
		g.enemies = append(g.enemies, &Enemy{
			X:         startX + float64(i)*spacing,
			Y:         g.wave.Waterline(),
			Speed:     baseSpeed * jitter,
			Variant:   variant,
			Alive:     true,
			Warning:   cfg.Enemies.WarningTime,
			seedPhase: g.rng.Float64() * 2 * math.Pi,
		})
	}

	spawnerX := cfg.World.Width - 48
	spawnerY := g.wave.Height(cfg.World.Width+20, g.phase, g.runtime)
	for i := 0; i < 8; i++ {
		ang := -0.4 + g.rng.Float64()*0.8
		speed := 90 + g.rng.Float64()*50
		g.particles = append(g.particles, newParticle(
			spawnerX+(g.rng.Float64()*20-10),
			spawnerY-(10+g.rng.Float64()*20),
			-speed*math.Abs(math.Cos(ang))*(0.8+g.rng.Float64()*0.3),
			-speed*math.Sin(ang),
			0.8,
		))
	}
}

// pickVariant draws a variant from the stage-weighted distribution. Chargers
// become more common at higher stages.
func (g *Game) pickVariant(stageFactor int) Variant {
	chargerWeight := math.Min(0.18+0.025*float64(stageFactor), 0.42)
	weights := [4]float64{0.45, 0.22, 0.2, chargerWeight}

	total := 0.0
	for _, w := range weights {
		total += w
	}
	r := g.rng.Float64() * total
	for i, w := range weights {
		if r < w {
			return Variant(i)
		}
		r -= w
	}
	return VariantCharger
}

// maybeSpawnCatch rolls a relic drop at a kill site. Relics afloat are
// capped so the water never fills with them.
func (g *Game) maybeSpawnCatch(x, y float64) {
	if len(g.catches) >= g.cfg.Pickups.SpecialMaxStock {
		return
	}
	if g.rng.Float64() > g.cfg.Pickups.CatchChance {
		return
	}
	g.catches = append(g.catches, &SpecialCatch{
		X:           x,
		Y:           y - 10,
		phase:       g.rng.Float64() * 2 * math.Pi,
		floatOffset: -18 + g.rng.Float64()*36,
	})
}
