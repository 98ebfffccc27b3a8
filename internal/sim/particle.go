package sim

// Particle is a short-lived spray droplet on a ballistic arc.
type Particle struct {
	X, Y      float64
	VX, VY    float64
	Life      float64
	startLife float64
}

func newParticle(x, y, vx, vy, life float64) *Particle {
	return &Particle{X: x, Y: y, VX: vx, VY: vy, Life: life, startLife: life}
}

func (p *Particle) update(dt float64) {
	p.X += p.VX * dt
	p.Y += p.VY * dt
	p.VY += 40 * dt
	p.Life -= dt
}

// Fade returns remaining life as a 0..1 ratio for the view layer.
func (p *Particle) Fade() float64 {
	if p.startLife <= 0 {
		return 0
	}
	f := p.Life / p.startLife
	if f < 0 {
		return 0
	}
	if f > 1 {
		return 1
	}
	return f
}
