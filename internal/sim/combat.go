package sim

import (
	"math"

	"github.com/vovakirdan/tui-waverunner/internal/core"
)

// resolveCombat applies per-enemy outcomes in a fixed order: player contact
// first, then harpoons, then pulses. Each enemy takes at most one scoring
// outcome per tick; contact removes the enemy without any reward.
func (g *Game) resolveCombat() {
	cfg := g.cfg

	for _, e := range g.enemies {
		if !e.Alive {
			continue
		}

		if core.WithinRadius(e.X, e.Y, g.player.X, g.player.Y, cfg.Enemies.Radius+cfg.Player.Radius) {
			if g.player.damage(cfg) {
				g.emit(Event{Kind: EventPlayerDamaged, X: g.player.X, Y: g.player.Y, Value: g.player.Health})
			}
			e.Alive = false
			continue
		}

		for _, h := range g.harpoons {
			if h.Alive && e.Alive &&
				core.WithinRadius(e.X, e.Y, h.X, h.Y, cfg.Enemies.Radius+cfg.Weapons.HarpoonHitRadius) {
				e.Alive = false
				h.Alive = false
				g.player.rewardCombo(cfg, 1)
				reward := cfg.Scoring.HarpoonBase + cfg.Scoring.HarpoonComboBonus*g.player.Combo
				g.player.Score += float64(reward)
				g.pulseEnergy = math.Min(cfg.Weapons.PulseEnergyMax, g.pulseEnergy+cfg.Weapons.PulseGainOnHit)
				g.kills++
				g.maybeSpawnCatch(e.X, e.Y)
				g.emit(Event{Kind: EventEnemyKilled, X: e.X, Y: e.Y, Value: reward})
				g.checkProgression()
				break
			}
		}

		for _, p := range g.pulses {
			if p.Alive && e.Alive && p.hits(e, cfg.Enemies.Radius) {
				e.Alive = false
				g.player.rewardCombo(cfg, 1)
				reward := cfg.Scoring.PulseBase + cfg.Scoring.PulseComboBonus*g.player.Combo
				g.player.Score += float64(reward)
				g.pulseEnergy = math.Min(cfg.Weapons.PulseEnergyMax, g.pulseEnergy+cfg.Weapons.PulseGainOnHit*0.5)
				g.kills++
				g.maybeSpawnCatch(e.X, e.Y)
				g.emit(Event{Kind: EventEnemyKilled, X: e.X, Y: e.Y, Value: reward})
				g.checkProgression()
				break
			}
		}
	}
}

// specialStrike spends one relic to clear the first few live enemies in
// spawn order, then leaves a free pulse at the craft.
func (g *Game) specialStrike() {
	cfg := g.cfg
	g.specialStock = core.Max(0, g.specialStock-1)

	struck := 0
	for _, e := range g.enemies {
		if !e.Alive {
			continue
		}
		e.Alive = false
		struck++
		g.player.rewardCombo(cfg, 2)
		reward := cfg.Scoring.SpecialBase + cfg.Scoring.SpecialComboBonus*g.player.Combo
		g.player.Score += float64(reward)
		g.kills++
		g.emit(Event{Kind: EventEnemyKilled, X: e.X, Y: e.Y, Value: reward})
		if struck >= cfg.Weapons.SpecialStrikeCap {
			break
		}
	}

	if struck > 0 {
		g.checkProgression()
		g.pulses = append(g.pulses, &Pulse{X: g.player.X, Y: g.player.Y - 10, Alive: true})
	}
	g.emit(Event{Kind: EventSpecialStrike, X: g.player.X, Y: g.player.Y, Value: struck})
}

// fireHarpoon launches a harpoon from the bow and arms the cooldown.
func (g *Game) fireHarpoon() {
	cfg := g.cfg
	dir := 1
	g.harpoons = append(g.harpoons, &Harpoon{
		X:     g.player.X + float64(dir)*(cfg.Player.Radius+14),
		Y:     g.player.Y - 8,
		Dir:   dir,
		Speed: cfg.Weapons.HarpoonSpeed,
		Alive: true,
	})
	g.shootTimer = cfg.Weapons.HarpoonCooldown
}
