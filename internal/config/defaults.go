package config

import (
	_ "embed"
)

//go:embed defaults/mario.yaml
var defaultMarioYAML []byte

// DefaultMarioConfig returns the built-in platformer configuration.
func DefaultMarioConfig() MarioConfig {
	return MarioConfig{
		Playfield: MarioPlayfield{
			Width:      800,
			Height:     600,
			SolidFloor: true,
		},
		Physics: MarioPhysics{
			Gravity:     0.8,
			JumpImpulse: -15,
			MoveSpeed:   5,
		},
		Player: MarioPlayer{
			Width:             40,
			Height:            60,
			SpawnX:            100,
			SpawnY:            450,
			Lives:             3,
			HitInvincibility:  60,
			FallInvincibility: 120,
		},
		Scoring: MarioScoring{
			Coin:     100,
			Stomp:    200,
			Fireball: 200,
		},
		Enemies: MarioEnemies{
			Width:         30,
			Height:        30,
			SpeedPerLevel: 0.5,
		},
		Fireballs: MarioFireballs{
			Enabled:  true,
			Size:     10,
			Speed:    10,
			Cooldown: 20,
		},
		Rules: MarioRules{
			StartLevel:   1,
			RespawnOnHit: true,
		},
		Difficulty: DifficultyConfig{
			Enabled:      false,
			InitialLevel: 0.0,
			Progression: ProgressionConfig{
				Type:  "level",
				MaxAt: 4,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 1.0,
			},
		},
	}
}

// GetDefaultYAML returns the embedded default YAML for a game.
func GetDefaultYAML(gameID string) []byte {
	switch gameID {
	case "mario":
		return defaultMarioYAML
	default:
		return nil
	}
}
