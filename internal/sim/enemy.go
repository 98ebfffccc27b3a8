package sim

import "math"

// Variant selects an enemy movement pattern.
type Variant int

const (
	VariantStandard Variant = iota
	VariantHopper
	VariantDiver
	VariantCharger
)

// String returns the variant name.
func (v Variant) String() string {
	switch v {
	case VariantHopper:
		return "hopper"
	case VariantDiver:
		return "diver"
	case VariantCharger:
		return "charger"
	default:
		return "standard"
	}
}

// Enemies despawn once fully past the left edge.
const enemyDespawnX = -40

// Enemy swims right to left, tracking the wave surface with a
// variant-specific vertical pattern.
type Enemy struct {
	X, Y      float64
	Speed     float64
	Variant   Variant
	Alive     bool
	Warning   float64 // Spawn telegraph countdown, seconds
	age       float64
	seedPhase float64 // Per-enemy phase for the charger wobble
}

func (e *Enemy) update(dt float64, wave *WaveField, phase, t float64) {
	e.age += dt
	e.X -= e.Speed * 60 * dt
	waveY := wave.Height(e.X, phase, t)

	switch e.Variant {
	case VariantHopper:
		// Hops grow in as the spawn telegraph fades
		hop := math.Sin(e.age*3.4) * 30 * math.Max(0, 1-e.Warning*2)
		e.Y = waveY - 6 - hop
	case VariantDiver:
		e.Y = waveY - 6 + math.Sin(e.age*2.2+1.2)*18
	case VariantCharger:
		e.Y = waveY - 12 + math.Sin(e.age*6.0+e.seedPhase)*6
		e.Speed *= 1.005
	default:
		e.Y = waveY - 6
	}

	if e.X < enemyDespawnX {
		e.Alive = false
	}

	if e.Warning > 0 {
		e.Warning -= dt
	}
}
