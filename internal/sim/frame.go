package sim

// Frame is the per-tick view of the world handed to the platform layer.
// Everything is copied out; the platform never touches live sim state.
type Frame struct {
	Mode   string
	Paused bool

	Player    PlayerView
	Enemies   []EnemyView
	Harpoons  []HarpoonView
	Pulses    []PulseView
	Catches   []CatchView
	Particles []ParticleView
	Buoy      *BuoyView
	Mesh      []MeshPoint

	Stage        int
	StageName    string
	Kills        int
	Quota        int
	AwaitingBuoy bool

	PulseCharge  float64 // 0..1 energy ratio
	SpecialStock int
	HighScore    int

	BannerText  string
	BannerTimer float64

	Events []Event
}

// PlayerView is the craft as seen by the view layer.
type PlayerView struct {
	X, Y         float64
	Health       int
	Score        int
	Combo        int
	BestCombo    int
	Invulnerable bool
}

// EnemyView is one enemy; Warning marks the spawn telegraph window.
type EnemyView struct {
	X, Y    float64
	Variant Variant
	Warning bool
}

type HarpoonView struct {
	X, Y float64
	Dir  int
}

type PulseView struct {
	X, Y, Radius float64
}

type CatchView struct {
	X, Y float64
}

type ParticleView struct {
	X, Y, Fade float64
}

type BuoyView struct {
	X, Y float64
}

func (g *Game) frame() Frame {
	f := Frame{
		Mode:   g.mode,
		Paused: g.paused,
		Player: PlayerView{
			X:            g.player.X,
			Y:            g.player.Y,
			Health:       g.player.Health,
			Score:        int(g.player.Score),
			Combo:        g.player.Combo,
			BestCombo:    g.player.BestCombo,
			Invulnerable: g.player.IFrames > 0,
		},
		Mesh:         g.wave.Mesh(g.phase, g.runtime),
		Stage:        g.stage,
		StageName:    StageName(g.stage),
		Kills:        g.kills,
		Quota:        g.quota,
		AwaitingBuoy: g.awaitingBuoy,
		PulseCharge:  g.pulseEnergy / g.cfg.Weapons.PulseEnergyMax,
		SpecialStock: g.specialStock,
		HighScore:    g.highScore,
		BannerText:   g.bannerText,
		BannerTimer:  g.bannerTimer,
	}

	for _, e := range g.enemies {
		f.Enemies = append(f.Enemies, EnemyView{X: e.X, Y: e.Y, Variant: e.Variant, Warning: e.Warning > 0})
	}
	for _, h := range g.harpoons {
		f.Harpoons = append(f.Harpoons, HarpoonView{X: h.X, Y: h.Y, Dir: h.Dir})
	}
	for _, p := range g.pulses {
		f.Pulses = append(f.Pulses, PulseView{X: p.X, Y: p.Y, Radius: p.Radius})
	}
	for _, c := range g.catches {
		f.Catches = append(f.Catches, CatchView{X: c.X, Y: c.Y})
	}
	for _, p := range g.particles {
		f.Particles = append(f.Particles, ParticleView{X: p.X, Y: p.Y, Fade: p.Fade()})
	}
	if g.buoy != nil {
		f.Buoy = &BuoyView{X: g.buoy.X, Y: g.buoy.Y}
	}

	if len(g.events) > 0 {
		f.Events = make([]Event, len(g.events))
		copy(f.Events, g.events)
	}
	return f
}
