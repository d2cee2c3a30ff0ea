package config

import (
	_ "embed"
)

//go:embed defaults/paddlerush.yaml
var defaultGameYAML []byte

// DefaultGameConfig returns the built-in tuning. It mirrors the embedded
// defaults/paddlerush.yaml and is the last fallback of Load.
func DefaultGameConfig() GameConfig {
	return GameConfig{
		World: WorldConfig{
			Width:         1280,
			Height:        720,
			BossThreshold: 1500,
			WinBonus:      5000,
			BonusTime:     180,
			FadeSpeed:     2,
			Player: PlayerConfig{
				Size:          64,
				HitboxScaleX:  0.6,
				HitboxScaleY:  0.7,
				RotationSpeed: 270,
				Acceleration:  1440,
				Drag:          0.95,
				FireRate:      0.2,
				RespawnTime:   1,
			},
			Bullets: BulletConfig{
				Capacity:   100,
				Speed:      900,
				Lifetime:   1,
				BaseDamage: 1.4,
				Width:      16,
				Height:     32,
			},
			Asteroids: AsteroidConfig{
				Capacity:         64,
				SpawnInterval:    2,
				MinSpawnInterval: 0.6,
				SpeedMin:         50,
				SpeedMax:         150,
				Score:            100,
			},
		},
		Boss: BossConfig{
			Health: HealthConfig{
				Policy:    PolicyPooled,
				Max:       100,
				FlashTime: 0.1,
			},
			Paddle: PaddleConfig{
				Width:          64,
				Height:         256,
				MoveSpeed:      450,
				Deadzone:       10,
				AnimationSpeed: 0.3,
			},
			Ball: BallConfig{
				Radius:         40,
				InitialSpeed:   500,
				SpeedIncrement: 100,
				MaxSpeed:       700,
				RecycleMargin:  100,
			},
			Steering: SteeringConfig{
				Policy:          SteerAim,
				OffsetFraction:  0,
				ParallelEpsilon: 0.01,
			},
			Entrance: EntranceConfig{
				Duration:     2.5,
				StartOffset:  200,
				Travel:       300,
				MusicAt:      1,
				WarningUntil: 2,
				WarningWidth: 64,
			},
			Split: SplitConfig{
				Shake:          1,
				Rotate:         0.5,
				Exit:           0.6,
				Warn:           1.5,
				Entry:          1.2,
				ShakeIntensity: 10,
				BallSpacing:    100,
			},
			Bricks: BrickConfig{
				Rows:        []int{2, 3, 2},
				Width:       128,
				Height:      48,
				SpacingX:    48,
				SpacingY:    24,
				FormationY:  120,
				TotalHealth: 75,
				Speed:       120,
				Walkable:    false,
			},
			Breakout: BreakoutConfig{
				BallSpacing:    20,
				SurvivorSteers: true,
				SurvivorInset:  48,
			},
			Projectiles: ProjectileConfig{
				Capacity: 32,
				Interval: 1.5,
				Speed:    300,
				Size:     12,
				Margin:   50,
			},
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.8,
		},
		Difficulty: DifficultyConfig{
			Enabled:      true,
			InitialLevel: 0,
			Progression: ProgressionConfig{
				Type:  "score",
				MaxAt: 1500,
			},
			Scaling: ScalingConfig{
				SpeedMultiplier: 0.5,
				SpawnReduction:  0.6,
			},
		},
	}
}
