package sim

import "math"

// Snapshot is a compact copy of sim state for determinism testing.
// Float fields are quantized to thousandths so hashes stay stable.
type Snapshot struct {
	Mode         string
	Paused       bool
	Runtime      int64
	Phase        int64
	PlayerY      int64
	PlayerVY     int64
	Score        int
	Combo        int
	BestCombo    int
	Health       int
	IFrames      int64
	Stage        int
	Kills        int
	Quota        int
	AwaitingBuoy bool
	PulseEnergy  int64
	SpecialStock int

	EnemyData   []int64
	HarpoonData []int64
	PulseData   []int64
	CatchData   []int64
	BuoyData    []int64
}

func quantize(v float64) int64 {
	return int64(math.Round(v * 1000))
}

// Snapshot captures the current state.
func (g *Game) Snapshot() Snapshot {
	snap := Snapshot{
		Mode:         g.mode,
		Paused:       g.paused,
		Runtime:      quantize(g.runtime),
		Phase:        quantize(g.phase),
		PlayerY:      quantize(g.player.Y),
		PlayerVY:     quantize(g.player.VY),
		Score:        int(g.player.Score),
		Combo:        g.player.Combo,
		BestCombo:    g.player.BestCombo,
		Health:       g.player.Health,
		IFrames:      quantize(g.player.IFrames),
		Stage:        g.stage,
		Kills:        g.kills,
		Quota:        g.quota,
		AwaitingBuoy: g.awaitingBuoy,
		PulseEnergy:  quantize(g.pulseEnergy),
		SpecialStock: g.specialStock,
	}

	for _, e := range g.enemies {
		snap.EnemyData = append(snap.EnemyData,
			quantize(e.X), quantize(e.Y), quantize(e.Speed), int64(e.Variant))
	}
	for _, h := range g.harpoons {
		snap.HarpoonData = append(snap.HarpoonData, quantize(h.X), quantize(h.Y))
	}
	for _, p := range g.pulses {
		snap.PulseData = append(snap.PulseData, quantize(p.X), quantize(p.Y), quantize(p.Radius))
	}
	for _, c := range g.catches {
		snap.CatchData = append(snap.CatchData, quantize(c.X), quantize(c.Y))
	}
	if g.buoy != nil {
		snap.BuoyData = []int64{quantize(g.buoy.X), quantize(g.buoy.Y)}
	}
	return snap
}

// Hash returns a simple hash of the snapshot for determinism testing.
func (s *Snapshot) Hash() uint64 {
	h := uint64(14695981039346656037)
	mix := func(v int64) {
		h = h*31 + uint64(v) //#nosec G115 -- hash computation
	}

	for _, r := range s.Mode {
		mix(int64(r))
	}
	if s.Paused {
		mix(1)
	}
	if s.AwaitingBuoy {
		mix(1)
	}
	mix(s.Runtime)
	mix(s.Phase)
	mix(s.PlayerY)
	mix(s.PlayerVY)
	mix(int64(s.Score))
	mix(int64(s.Combo))
	mix(int64(s.BestCombo))
	mix(int64(s.Health))
	mix(s.IFrames)
	mix(int64(s.Stage))
	mix(int64(s.Kills))
	mix(int64(s.Quota))
	mix(s.PulseEnergy)
	mix(int64(s.SpecialStock))

	for _, v := range s.EnemyData {
		mix(v)
	}
	for _, v := range s.HarpoonData {
		mix(v)
	}
	for _, v := range s.PulseData {
		mix(v)
	}
	for _, v := range s.CatchData {
		mix(v)
	}
	for _, v := range s.BuoyData {
		mix(v)
	}
	return h
}
