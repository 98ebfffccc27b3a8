package sim

import (
	"fmt"
	"math"

	"github.com/vovakirdan/tui-waverunner/internal/core"
)

// stageNames label each stage banner; the last one repeats past the end.
var stageNames = []string{
	"Dawn Swell",
	"Azure Rush",
	"Breaker Bloom",
	"Gale Current",
	"Vortex Tide",
	"Stormglass",
	"Moonlit Surge",
	"Tempest Rise",
	"Celestial Reef",
	"Mythic Maelstrom",
}

// StageName returns the display name for a stage.
func StageName(stage int) string {
	idx := core.Clamp(stage-1, 0, len(stageNames)-1)
	return stageNames[idx]
}

// quotaForStage returns the kill quota for a stage. Growth stops at the
// plateau stage.
func (g *Game) quotaForStage(stage int) int {
	s := core.Min(stage, g.cfg.Stage.PlateauStage)
	return g.cfg.Stage.BaseQuota + g.cfg.Stage.QuotaPerStage*s
}

// checkProgression clamps the kill counter and spawns the signal buoy when
// the quota is met. The counter clamps at the quota whenever kills can no
// longer advance the stage, so excess kills never bank.
func (g *Game) checkProgression() {
	atPlateau := g.stage >= g.cfg.Stage.PlateauStage
	if atPlateau {
		g.spawnInterval = g.cfg.Stage.IntervalFloor
	}
	if atPlateau || g.awaitingBuoy {
		if g.kills > g.quota {
			g.kills = g.quota
		}
		return
	}
	if g.kills >= g.quota {
		g.kills = g.quota
		buoyX := g.cfg.World.Width*0.75 + (g.rng.Float64()*80 - 40)
		buoyY := g.wave.Height(buoyX, g.phase, g.runtime) - 30
		g.buoy = newBuoy(buoyX, buoyY, g.player.X, g.rng.Float64()*2*math.Pi)
		g.awaitingBuoy = true
		g.bannerTimer = g.cfg.Stage.BannerTime
		g.bannerText = "Collect the signal buoy!"
		g.emit(Event{Kind: EventBuoySpawned, X: buoyX, Y: buoyY})
	}
}

// advanceStage moves to the next stage after the buoy is collected: kills
// reset, a new quota applies, and enemy waves come faster.
func (g *Game) advanceStage() {
	if !g.awaitingBuoy {
		return
	}
	g.awaitingBuoy = false
	g.buoy = nil
	g.stage++
	g.kills = 0
	g.quota = g.quotaForStage(g.stage)
	g.bannerTimer = g.cfg.Stage.BannerTime
	g.bannerText = fmt.Sprintf("Stage %d: %s", g.stage, StageName(g.stage))
	g.spawnInterval = math.Max(
		g.cfg.Stage.IntervalFloor,
		g.cfg.Enemies.SpawnInterval-g.cfg.Stage.IntervalStep*float64(g.stage-1),
	)
	g.emit(Event{Kind: EventStageAdvanced, Value: g.stage})
}
