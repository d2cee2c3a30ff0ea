// Package config provides YAML-based tuning for paddle-rush: world pacing,
// boss choreography, audio, and difficulty progression.
package config

import (
	"errors"
	"fmt"
)

// GameConfig is the root of the tuning file.
type GameConfig struct {
	World      WorldConfig      `yaml:"world"`
	Boss       BossConfig       `yaml:"boss"`
	Audio      AudioConfig      `yaml:"audio"`
	Difficulty DifficultyConfig `yaml:"difficulty"`
}

// WorldConfig covers the asteroid field and the game phases around the boss.
type WorldConfig struct {
	Width         float64        `yaml:"width"`
	Height        float64        `yaml:"height"`
	BossThreshold int            `yaml:"boss_threshold"` // score that ends the asteroid phase
	WinBonus      int            `yaml:"win_bonus"`      // awarded on a boss kill, scaled by speed
	BonusTime     float64        `yaml:"bonus_time"`     // seconds after which the bonus is gone
	FadeSpeed     float64        `yaml:"fade_speed"`     // screen fade per second
	Player        PlayerConfig   `yaml:"player"`
	Bullets       BulletConfig   `yaml:"bullets"`
	Asteroids     AsteroidConfig `yaml:"asteroids"`
}

// PlayerConfig defines the ship's handling.
type PlayerConfig struct {
	Size          float64 `yaml:"size"`
	HitboxScaleX  float64 `yaml:"hitbox_scale_x"`
	HitboxScaleY  float64 `yaml:"hitbox_scale_y"`
	RotationSpeed float64 `yaml:"rotation_speed"` // degrees per second
	Acceleration  float64 `yaml:"acceleration"`   // units per second squared
	Drag          float64 `yaml:"drag"`           // velocity kept per 1/60 s
	FireRate      float64 `yaml:"fire_rate"`      // seconds between shots
	RespawnTime   float64 `yaml:"respawn_time"`
}

// BulletConfig defines the player's weapon.
type BulletConfig struct {
	Capacity   int     `yaml:"capacity"`
	Speed      float64 `yaml:"speed"`
	Lifetime   float64 `yaml:"lifetime"`
	BaseDamage float64 `yaml:"base_damage"`
	Width      float64 `yaml:"width"`
	Height     float64 `yaml:"height"`
}

// AsteroidConfig defines the survival phase.
type AsteroidConfig struct {
	Capacity         int     `yaml:"capacity"`
	SpawnInterval    float64 `yaml:"spawn_interval"`
	MinSpawnInterval float64 `yaml:"min_spawn_interval"`
	SpeedMin         float64 `yaml:"speed_min"`
	SpeedMax         float64 `yaml:"speed_max"`
	Score            int     `yaml:"score"`
}

// BossConfig tunes the paddle encounter.
type BossConfig struct {
	Health      HealthConfig     `yaml:"health"`
	Paddle      PaddleConfig     `yaml:"paddle"`
	Ball        BallConfig       `yaml:"ball"`
	Steering    SteeringConfig   `yaml:"steering"`
	Entrance    EntranceConfig   `yaml:"entrance"`
	Split       SplitConfig      `yaml:"split"`
	Bricks      BrickConfig      `yaml:"bricks"`
	Breakout    BreakoutConfig   `yaml:"breakout"`
	Projectiles ProjectileConfig `yaml:"projectiles"`
}

// Damage policies.
const (
	PolicyPooled    = "pooled"
	PolicyPerPaddle = "per_paddle"
)

// Steering policies.
const (
	SteerAim   = "aim"
	SteerTrack = "track"
)

type HealthConfig struct {
	Policy    string  `yaml:"policy"`     // pooled or per_paddle
	Max       float64 `yaml:"max"`        // split evenly between the two paddles
	FlashTime float64 `yaml:"flash_time"` // hit flash duration
}

type PaddleConfig struct {
	Width          float64 `yaml:"width"`
	Height         float64 `yaml:"height"`
	MoveSpeed      float64 `yaml:"move_speed"`
	Deadzone       float64 `yaml:"deadzone"`
	AnimationSpeed float64 `yaml:"animation_speed"` // seconds per frame
}

type BallConfig struct {
	Radius         float64 `yaml:"radius"`
	InitialSpeed   float64 `yaml:"initial_speed"`
	SpeedIncrement float64 `yaml:"speed_increment"`
	MaxSpeed       float64 `yaml:"max_speed"`
	RecycleMargin  float64 `yaml:"recycle_margin"`
}

type SteeringConfig struct {
	Policy          string  `yaml:"policy"`           // aim or track
	OffsetFraction  float64 `yaml:"offset_fraction"`  // track only, fraction of paddle height
	ParallelEpsilon float64 `yaml:"parallel_epsilon"` // aim falls back below this |dir.x|
}

type EntranceConfig struct {
	Duration     float64 `yaml:"duration"`
	StartOffset  float64 `yaml:"start_offset"` // how far off-screen the paddles begin
	Travel       float64 `yaml:"travel"`       // distance eased in during the second half
	MusicAt      float64 `yaml:"music_at"`
	WarningUntil float64 `yaml:"warning_until"`
	WarningWidth float64 `yaml:"warning_width"`
}

// SplitConfig holds the five windows of the split cinematic, in order.
type SplitConfig struct {
	Shake          float64 `yaml:"shake"`
	Rotate         float64 `yaml:"rotate"`
	Exit           float64 `yaml:"exit"`
	Warn           float64 `yaml:"warn"`
	Entry          float64 `yaml:"entry"`
	ShakeIntensity float64 `yaml:"shake_intensity"`
	BallSpacing    float64 `yaml:"ball_spacing"`
}

// Total returns the combined length of all windows.
func (s SplitConfig) Total() float64 {
	return s.Shake + s.Rotate + s.Exit + s.Warn + s.Entry
}

type BrickConfig struct {
	Rows        []int   `yaml:"rows"` // bricks per row, top to bottom
	Width       float64 `yaml:"width"`
	Height      float64 `yaml:"height"`
	SpacingX    float64 `yaml:"spacing_x"`
	SpacingY    float64 `yaml:"spacing_y"`
	FormationY  float64 `yaml:"formation_y"`
	TotalHealth float64 `yaml:"total_health"`
	Speed       float64 `yaml:"speed"`
	Walkable    bool    `yaml:"walkable"` // bricks push the player instead of killing
}

// Count returns the number of bricks in the formation.
func (b BrickConfig) Count() int {
	n := 0
	for _, r := range b.Rows {
		n += r
	}
	return n
}

type BreakoutConfig struct {
	BallSpacing    float64 `yaml:"ball_spacing"`
	SurvivorSteers bool    `yaml:"survivor_steers"`
	SurvivorInset  float64 `yaml:"survivor_inset"` // distance of the floor paddle from the bottom edge
}

type ProjectileConfig struct {
	Capacity int     `yaml:"capacity"`
	Interval float64 `yaml:"interval"`
	Speed    float64 `yaml:"speed"`
	Size     float64 `yaml:"size"`
	Margin   float64 `yaml:"margin"`
}

// AudioConfig controls the synthesizer.
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"`
}

// DifficultyConfig defines the difficulty progression system.
type DifficultyConfig struct {
	Enabled      bool              `yaml:"enabled"`
	InitialLevel float64           `yaml:"initial_level"` // 0.0 = easy, 1.0 = hard
	Progression  ProgressionConfig `yaml:"progression"`
	Scaling      ScalingConfig     `yaml:"scaling"`
}

// ProgressionConfig defines how difficulty increases over time.
type ProgressionConfig struct {
	Type  string `yaml:"type"`   // "score", "time", or "none"
	MaxAt int    `yaml:"max_at"` // score or ticks at which max difficulty is reached
}

// ScalingConfig defines the magnitude of difficulty changes.
type ScalingConfig struct {
	SpeedMultiplier float64 `yaml:"speed_multiplier"` // added to asteroid speed at max difficulty
	SpawnReduction  float64 `yaml:"spawn_reduction"`  // fraction of the spawn interval removed at max difficulty
}

var ErrInvalid = errors.New("config: invalid value")

// Validate reports every setting that would break the simulation.
func (c GameConfig) Validate() error {
	check := func(ok bool, field string) error {
		if ok {
			return nil
		}
		return fmt.Errorf("%w: %s", ErrInvalid, field)
	}
	b := c.Boss
	checks := []error{
		check(c.World.Width > 0 && c.World.Height > 0, "world size"),
		check(c.World.Bullets.Capacity > 0, "world.bullets.capacity"),
		check(c.World.Asteroids.Capacity > 0, "world.asteroids.capacity"),
		check(c.World.Asteroids.SpeedMax >= c.World.Asteroids.SpeedMin, "world.asteroids speed range"),
		check(b.Health.Policy == PolicyPooled || b.Health.Policy == PolicyPerPaddle, "boss.health.policy"),
		check(b.Health.Max > 0, "boss.health.max"),
		check(b.Steering.Policy == SteerAim || b.Steering.Policy == SteerTrack, "boss.steering.policy"),
		check(b.Paddle.Width > 0 && b.Paddle.Height > 0, "boss.paddle size"),
		check(b.Ball.Radius > 0, "boss.ball.radius"),
		check(b.Ball.MaxSpeed >= b.Ball.InitialSpeed, "boss.ball.max_speed"),
		check(b.Entrance.Duration > 0, "boss.entrance.duration"),
		check(b.Split.Shake > 0 && b.Split.Rotate > 0 && b.Split.Exit > 0 && b.Split.Warn > 0 && b.Split.Entry > 0, "boss.split windows"),
		check(b.Bricks.Count() > 0, "boss.bricks.rows"),
		check(b.Projectiles.Capacity >= 0, "boss.projectiles.capacity"),
	}
	return errors.Join(checks...)
}
