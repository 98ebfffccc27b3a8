package sim

import (
	"math"

	"github.com/vovakirdan/tui-waverunner/internal/core"
)

// Harpoons die once this far past either world edge.
const harpoonMargin = 60

// Harpoon is a straight projectile with a slight sinusoidal bob.
type Harpoon struct {
	X, Y  float64
	Dir   int
	Speed float64
	Alive bool
}

func (h *Harpoon) update(dt, t, worldW float64) {
	h.X += h.Speed * float64(h.Dir) * dt
	h.Y += math.Sin(t*2+h.X*0.01) * 10 * dt
	if h.X < -harpoonMargin || h.X > worldW+harpoonMargin {
		h.Alive = false
	}
}

// Pulse is an expanding ring that kills enemies it reaches until it hits its
// maximum radius.
type Pulse struct {
	X, Y   float64
	Radius float64
	Alive  bool
}

func (p *Pulse) update(dt, growth, maxRadius float64) {
	p.Radius += growth * dt
	if p.Radius > maxRadius {
		p.Alive = false
	}
}

// hits reports whether the ring has expanded out to the enemy.
func (p *Pulse) hits(e *Enemy, enemyRadius float64) bool {
	if !p.Alive {
		return false
	}
	return core.WithinRadius(e.X, e.Y, p.X, p.Y, p.Radius+enemyRadius)
}
