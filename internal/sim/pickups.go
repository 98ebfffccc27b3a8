package sim

import (
	"math"

	"github.com/vovakirdan/tui-waverunner/internal/core"
)

// Buoy is the stage gate. It drifts toward the player while bobbing on the
// swell; collecting it advances the stage.
type Buoy struct {
	X, Y    float64
	baseX   float64
	targetX float64
	phase   float64
}

func newBuoy(x, y, targetX, phase float64) *Buoy {
	return &Buoy{X: x, Y: y, baseX: x, targetX: targetX, phase: phase}
}

func (b *Buoy) update(dt float64, wave *WaveField, wavePhase, t, driftSpeed float64) {
	b.phase += dt * 1.6
	dir := 1.0
	if b.baseX > b.targetX {
		dir = -1
	}
	b.baseX += dir * driftSpeed * dt
	b.baseX = core.Lerp(b.baseX, b.targetX, 0.4*dt)
	b.X = b.baseX + math.Sin(b.phase*0.7)*22
	crest := wave.Height(b.X, wavePhase, t)
	crest += math.Sin((t+b.phase)*1.8) * 6
	b.Y = crest - 30 + math.Sin(b.phase*1.5)*5
}

// collectedBy checks the pickup circle against the craft's hull.
func (b *Buoy) collectedBy(px, py, radius float64) bool {
	return core.WithinRadius(px, py+10, b.X, b.Y, radius)
}

// SpecialCatch is a tidal relic that eases toward the player until scooped.
// The collected flag makes collection one-shot.
type SpecialCatch struct {
	X, Y        float64
	Collected   bool
	phase       float64
	floatOffset float64
}

func (c *SpecialCatch) update(dt float64, wave *WaveField, wavePhase, t, targetX float64) {
	c.phase += dt * 2.4
	c.X += (targetX - c.X) * dt * 2.0
	crest := wave.Height(c.X, wavePhase, t)
	c.Y = crest - 26 + math.Sin(c.phase)*8 + c.floatOffset
}

func (c *SpecialCatch) collectedBy(px, py, radius float64) bool {
	if c.Collected {
		return false
	}
	if core.WithinRadius(px, py-8, c.X, c.Y, radius) {
		c.Collected = true
	}
	return c.Collected
}
