// Package config provides YAML-based tuning configuration and difficulty
// presets for the game.
package config

// Config contains every tuning parameter of the simulation.
type Config struct {
	World   WorldConfig   `yaml:"world"`
	Wave    WaveConfig    `yaml:"wave"`
	Player  PlayerConfig  `yaml:"player"`
	Enemies EnemyConfig   `yaml:"enemies"`
	Weapons WeaponConfig  `yaml:"weapons"`
	Pickups PickupConfig  `yaml:"pickups"`
	Stage   StageConfig   `yaml:"stage"`
	Scoring ScoringConfig `yaml:"scoring"`
}

// WorldConfig defines the simulation's world-unit dimensions. The terminal
// view projects these onto screen cells.
type WorldConfig struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

// WaveConfig defines the procedural water surface.
type WaveConfig struct {
	Wavelength     float64 `yaml:"wavelength"`      // Distance between crests
	BaseAmplitude  float64 `yaml:"base_amplitude"`  // Base wave height
	AmplitudeSway  float64 `yaml:"amplitude_sway"`  // Extra amplitude that swells over time
	PhaseSpeed     float64 `yaml:"phase_speed"`     // Global phase advance per second
	WaterlineRatio float64 `yaml:"waterline_ratio"` // Waterline as a fraction of world height
	MeshPoints     int     `yaml:"mesh_points"`     // Fidelity of the water mesh
}

// PlayerConfig defines the player craft.
type PlayerConfig struct {
	Radius          float64 `yaml:"radius"`
	AnchorRatio     float64 `yaml:"anchor_ratio"` // Horizontal anchor as a fraction of world width
	RideOffset      float64 `yaml:"ride_offset"`  // Height above the wave surface
	SpringStiffness float64 `yaml:"spring_stiffness"`
	SpringDamping   float64 `yaml:"spring_damping"`
	JumpVelocity    float64 `yaml:"jump_velocity"`
	DoubleJumpMult  float64 `yaml:"double_jump_multiplier"`
	DoubleTapWindow float64 `yaml:"double_tap_window"` // Seconds between jump intents for a double
	Health          int     `yaml:"health"`
	IFrames         float64 `yaml:"iframes"` // Invulnerability after damage, seconds
	MaxCombo        int     `yaml:"max_combo"`
}

// EnemyConfig defines enemy spawning and movement.
type EnemyConfig struct {
	Radius         float64 `yaml:"radius"`
	MinSpeed       float64 `yaml:"min_speed"`
	MaxSpeed       float64 `yaml:"max_speed"`
	SpawnInterval  float64 `yaml:"spawn_interval"` // Seconds between enemy waves at stage 1
	WarningTime    float64 `yaml:"warning_time"`   // Spawn telegraph duration, seconds
	MaxStageFactor int     `yaml:"max_stage_factor"`
}

// WeaponConfig defines the harpoon, pulse and special strike.
type WeaponConfig struct {
	HarpoonSpeed     float64 `yaml:"harpoon_speed"`
	HarpoonCooldown  float64 `yaml:"harpoon_cooldown"`
	HarpoonHitRadius float64 `yaml:"harpoon_hit_radius"`
	PulseGrowth      float64 `yaml:"pulse_growth"`     // Radius growth per second
	PulseRadiusMax   float64 `yaml:"pulse_radius_max"` // Pulse dies past this radius
	PulseEnergyMax   float64 `yaml:"pulse_energy_max"`
	PulseEnergyRegen float64 `yaml:"pulse_energy_regen"` // Passive energy per second
	PulseGainOnHit   float64 `yaml:"pulse_gain_on_hit"`  // Energy per harpoon kill (half on pulse kill)
	SpecialStrikeCap int     `yaml:"special_strike_cap"` // Enemies cleared per special strike
}

// PickupConfig defines the signal buoy and tidal relic catches.
type PickupConfig struct {
	BuoyDriftSpeed     float64 `yaml:"buoy_drift_speed"`
	BuoyCollectRadius  float64 `yaml:"buoy_collect_radius"`
	CatchChance        float64 `yaml:"catch_chance"` // Per-kill chance to drop a relic
	CatchCollectRadius float64 `yaml:"catch_collect_radius"`
	SpecialMaxStock    int     `yaml:"special_max_stock"` // Relic stock cap, also caps relics afloat
}

// StageConfig defines the stage progression curve.
type StageConfig struct {
	BaseQuota     int     `yaml:"base_quota"`     // Quota(N) = base + per_stage * N
	QuotaPerStage int     `yaml:"quota_per_stage"`
	IntervalStep  float64 `yaml:"interval_step"`  // Spawn interval reduction per stage
	IntervalFloor float64 `yaml:"interval_floor"` // Minimum spawn interval
	BannerTime    float64 `yaml:"banner_time"`    // Stage banner display, seconds
	IntroDelay    float64 `yaml:"intro_delay"`    // Auto-advance from intro, seconds
	PlateauStage  int     `yaml:"plateau_stage"`  // Quota and interval stop scaling here
}

// ScoringConfig defines the score and combo economy.
type ScoringConfig struct {
	HarpoonBase        int     `yaml:"harpoon_base"`
	HarpoonComboBonus  int     `yaml:"harpoon_combo_bonus"`
	PulseBase          int     `yaml:"pulse_base"`
	PulseComboBonus    int     `yaml:"pulse_combo_bonus"`
	SpecialBase        int     `yaml:"special_base"`
	SpecialComboBonus  int     `yaml:"special_combo_bonus"`
	PassiveRate        float64 `yaml:"passive_rate"`         // Score per second of survival
	PassiveComboFactor float64 `yaml:"passive_combo_factor"` // Passive multiplier per combo point
	ComboDecayIdle     float64 `yaml:"combo_decay_idle"`     // Idle seconds before combo decays
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ValidPreset returns true for a recognized preset name.
func ValidPreset(preset DifficultyPreset) bool {
	switch preset {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return true
	}
	return false
}
