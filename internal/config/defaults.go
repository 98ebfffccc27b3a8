package config

import (
	_ "embed"
)

//go:embed defaults/waverunner.yaml
var defaultYAML []byte

// Default returns the built-in tuning configuration.
func Default() Config {
	return Config{
		World: WorldConfig{
			Width:  960,
			Height: 540,
		},
		Wave: WaveConfig{
			Wavelength:     220,
			BaseAmplitude:  46,
			AmplitudeSway:  30,
			PhaseSpeed:     0.95,
			WaterlineRatio: 0.62,
			MeshPoints:     160,
		},
		Player: PlayerConfig{
			Radius:          14,
			AnchorRatio:     0.3,
			RideOffset:      22,
			SpringStiffness: 0.12,
			SpringDamping:   0.88,
			JumpVelocity:    -12,
			DoubleJumpMult:  2.0,
			DoubleTapWindow: 0.28,
			Health:          3,
			IFrames:         1.0,
			MaxCombo:        99,
		},
		Enemies: EnemyConfig{
			Radius:         14,
			MinSpeed:       2.8,
			MaxSpeed:       5.2,
			SpawnInterval:  1.25,
			WarningTime:    0.4,
			MaxStageFactor: 12,
		},
		Weapons: WeaponConfig{
			HarpoonSpeed:     620,
			HarpoonCooldown:  0.45,
			HarpoonHitRadius: 6,
			PulseGrowth:      320,
			PulseRadiusMax:   260,
			PulseEnergyMax:   100,
			PulseEnergyRegen: 8,
			PulseGainOnHit:   28,
			SpecialStrikeCap: 4,
		},
		Pickups: PickupConfig{
			BuoyDriftSpeed:     36,
			BuoyCollectRadius:  40,
			CatchChance:        0.22,
			CatchCollectRadius: 26,
			SpecialMaxStock:    5,
		},
		Stage: StageConfig{
			BaseQuota:     8,
			QuotaPerStage: 4,
			IntervalStep:  0.1,
			IntervalFloor: 0.5,
			BannerTime:    3.2,
			IntroDelay:    2.5,
			PlateauStage:  10,
		},
		Scoring: ScoringConfig{
			HarpoonBase:        60,
			HarpoonComboBonus:  16,
			PulseBase:          80,
			PulseComboBonus:    20,
			SpecialBase:        140,
			SpecialComboBonus:  24,
			PassiveRate:        4,
			PassiveComboFactor: 0.02,
			ComboDecayIdle:     4.0,
		},
	}
}

// DefaultYAML returns the embedded default YAML, for the dump-config flow.
func DefaultYAML() []byte {
	return defaultYAML
}
