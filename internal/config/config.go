// Package config provides YAML-based game configuration loading and
// difficulty management for the platformer.
package config

import (
	"errors"
	"fmt"
)

// MarioConfig contains all tunables for the platformer simulation.
// Zero-valued YAML fields keep their defaults because loading decodes
// on top of DefaultMarioConfig.
type MarioConfig struct {
	Playfield  MarioPlayfield   `yaml:"playfield"`
	Physics    MarioPhysics     `yaml:"physics"`
	Player     MarioPlayer      `yaml:"player"`
	Scoring    MarioScoring     `yaml:"scoring"`
	Enemies    MarioEnemies     `yaml:"enemies"`
	Fireballs  MarioFireballs   `yaml:"fireballs"`
	Rules      MarioRules       `yaml:"rules"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// MarioPlayfield defines the world bounds in playfield units.
type MarioPlayfield struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// SolidFloor clamps the player to the bottom edge. When false the player
	// can fall out of the world and loses a life.
	SolidFloor bool `yaml:"solid_floor"`
}

// MarioPhysics defines per-frame motion constants.
type MarioPhysics struct {
	Gravity     float64 `yaml:"gravity"`
	JumpImpulse float64 `yaml:"jump_impulse"` // negative is upward
	MoveSpeed   float64 `yaml:"move_speed"`
}

// MarioPlayer defines the player's body and life rules.
type MarioPlayer struct {
	Width             float64 `yaml:"width"`
	Height            float64 `yaml:"height"`
	SpawnX            float64 `yaml:"spawn_x"`
	SpawnY            float64 `yaml:"spawn_y"`
	Lives             int     `yaml:"lives"`
	HitInvincibility  int     `yaml:"hit_invincibility"`  // frames
	FallInvincibility int     `yaml:"fall_invincibility"` // frames
}

// MarioScoring defines points awarded per interaction.
type MarioScoring struct {
	Coin     int `yaml:"coin"`
	Stomp    int `yaml:"stomp"`
	Fireball int `yaml:"fireball"`
}

// MarioEnemies defines enemy body size and patrol speed.
type MarioEnemies struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
	// SpeedPerLevel is multiplied by the level id to get the patrol speed.
	SpeedPerLevel float64 `yaml:"speed_per_level"`
}

// MarioFireballs defines the projectile ability.
type MarioFireballs struct {
	Enabled  bool    `yaml:"enabled"`
	Size     float64 `yaml:"size"`
	Speed    float64 `yaml:"speed"`
	Cooldown int     `yaml:"cooldown"` // frames between throws
}

// MarioRules selects between behavior variants.
type MarioRules struct {
	StartLevel int `yaml:"start_level"`
	// RespawnOnHit moves the player back to spawn after a non-stomp enemy hit.
	RespawnOnHit bool `yaml:"respawn_on_hit"`
	// VictoryOnFinalEntry ends the campaign as soon as the final level is entered
	// instead of when its door is taken.
	VictoryOnFinalEntry bool `yaml:"victory_on_final_entry"`
}

// Validation errors.
var (
	ErrInvalidPlayfield = errors.New("playfield dimensions must be positive")
	ErrInvalidPlayer    = errors.New("player dimensions must be positive")
	ErrInvalidLives     = errors.New("lives must be at least 1")
	ErrInvalidEnemy     = errors.New("enemy dimensions must be positive")
)

// Validate reports the first structural problem with the configuration.
func (c MarioConfig) Validate() error {
	if c.Playfield.Width <= 0 || c.Playfield.Height <= 0 {
		return fmt.Errorf("config: %w", ErrInvalidPlayfield)
	}
	if c.Player.Width <= 0 || c.Player.Height <= 0 {
		return fmt.Errorf("config: %w", ErrInvalidPlayer)
	}
	if c.Player.Lives < 1 {
		return fmt.Errorf("config: %w", ErrInvalidLives)
	}
	if c.Enemies.Width <= 0 || c.Enemies.Height <= 0 {
		return fmt.Errorf("config: %w", ErrInvalidEnemy)
	}
	return nil
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases during a run.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "level", or "none"
	MaxAt int    `yaml:"max_at"` // Score or level id at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // Multiplier added to enemy speed at max difficulty
}

// DifficultyPreset represents a named difficulty level.
type DifficultyPreset string

const (
	DifficultyEasy   DifficultyPreset = "easy"
	DifficultyNormal DifficultyPreset = "normal"
	DifficultyHard   DifficultyPreset = "hard"
	DifficultyFixed  DifficultyPreset = "fixed"
)

// ParsePreset converts a flag value to a preset.
func ParsePreset(s string) (DifficultyPreset, error) {
	switch p := DifficultyPreset(s); p {
	case DifficultyEasy, DifficultyNormal, DifficultyHard, DifficultyFixed:
		return p, nil
	case "":
		return DifficultyNormal, nil
	default:
		return "", fmt.Errorf("config: unknown difficulty %q", s)
	}
}

// InitialLevelForPreset returns the initial_level for a difficulty preset.
func InitialLevelForPreset(preset DifficultyPreset) float64 {
	switch preset {
	case DifficultyHard:
		return 0.5
	default:
		return 0.0
	}
}

// IsFixedPreset returns true if the preset disables progression.
func IsFixedPreset(preset DifficultyPreset) bool {
	return preset == DifficultyFixed
}
