// Package sim implements the WaveRunner simulation: a procedural wave
// surface, the player craft riding it, enemy packs, weapons, pickups and the
// stage progression. The package is pure and deterministic for a given seed;
// it never touches the terminal.
package sim

import (
	"math"

	"github.com/vovakirdan/tui-waverunner/internal/config"
)

// WaveField computes the procedural water surface. Height depends only on
// position, wave phase and elapsed time, so the field itself is stateless.
type WaveField struct {
	wavelength float64
	baseAmp    float64
	sway       float64
	waterline  float64
	width      float64
	samples    int
}

// NewWaveField builds a wave field from the tuning config.
func NewWaveField(cfg config.Config) *WaveField {
	return &WaveField{
		wavelength: cfg.Wave.Wavelength,
		baseAmp:    cfg.Wave.BaseAmplitude,
		sway:       cfg.Wave.AmplitudeSway,
		waterline:  cfg.Wave.WaterlineRatio * cfg.World.Height,
		width:      cfg.World.Width,
		samples:    cfg.Wave.MeshPoints,
	}
}

// Height returns the water surface Y at x, layering three sine waves.
// The amplitude itself breathes slowly over time.
func (w *WaveField) Height(x, phase, t float64) float64 {
	k := (2 * math.Pi) / w.wavelength
	a := w.baseAmp + w.sway*(0.5+0.5*math.Sin(t*0.3))
	y := w.waterline + a*math.Sin(k*x+phase)
	y += 0.33 * a * math.Sin(0.5*k*x-0.7*phase+t*0.6)
	y += 0.12 * a * math.Sin(1.7*k*x+1.9*phase)
	return y
}

// MeshPoint is one sample of the water surface.
type MeshPoint struct {
	X, Y float64
}

// Mesh samples the surface left to right, returning samples+1 points.
func (w *WaveField) Mesh(phase, t float64) []MeshPoint {
	pts := make([]MeshPoint, 0, w.samples+1)
	step := w.width / float64(w.samples)
	for i := 0; i <= w.samples; i++ {
		x := float64(i) * step
		pts = append(pts, MeshPoint{X: x, Y: w.Height(x, phase, t)})
	}
	return pts
}

// Waterline returns the resting water level.
func (w *WaveField) Waterline() float64 {
	return w.waterline
}
