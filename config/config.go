package config

import "image/color"

// RobotKind identifies a robot behavior variant.
type RobotKind int

const (
	RobotStationary RobotKind = iota
	RobotWander
	RobotPatrol
	RobotKindCount // Must be last - used for array sizing
)

func (k RobotKind) String() string {
	switch k {
	case RobotStationary:
		return "stationary"
	case RobotWander:
		return "wander"
	case RobotPatrol:
		return "patrol"
	}
	return "unknown"
}

// ParseRobotKind maps a layout/config name back to its RobotKind.
func ParseRobotKind(name string) (RobotKind, bool) {
	for k := RobotStationary; k < RobotKindCount; k++ {
		if k.String() == name {
			return k, true
		}
	}
	return RobotStationary, false
}

// WorldConfig contains the window bounds and frame timing.
type WorldConfig struct {
	Width      int        `mapstructure:"width"`
	Height     int        `mapstructure:"height"`
	FPS        int        `mapstructure:"fps"`
	Background color.RGBA `mapstructure:"background"`

	// Random spawns keep the sprite center inside [SpawnMargin, 1-SpawnMargin]
	// of each axis.
	SpawnMargin float64 `mapstructure:"spawn_margin"`
}

// SPF returns the fixed time-step in seconds per frame.
func (w WorldConfig) SPF() float64 {
	if w.FPS <= 0 {
		return 0
	}
	return 1 / float64(w.FPS)
}

// PlayerConfig contains all player-related configuration values
type PlayerConfig struct {
	Speed     float64 `mapstructure:"speed"` // pixels/second
	Width     int     `mapstructure:"width"`
	Height    int     `mapstructure:"height"`
	ChargeMax float64 `mapstructure:"charge_max"`
	Sprite    string  `mapstructure:"sprite"`
}

// RobotTypeConfig contains configuration for a specific robot kind
type RobotTypeConfig struct {
	Count     int     `mapstructure:"count"`
	DrainRate float64 `mapstructure:"drain_rate"` // charge/second
	Capacity  float64 `mapstructure:"capacity"`
	Speed     float64 `mapstructure:"speed"`    // pixels/second
	Duration  float64 `mapstructure:"duration"` // wander re-roll interval or patrol leg, seconds
	Width     int     `mapstructure:"width"`
	Height    int     `mapstructure:"height"`
	Sprite    string  `mapstructure:"sprite"`
}

// RobotsConfig groups the per-kind robot settings.
type RobotsConfig struct {
	Stationary RobotTypeConfig `mapstructure:"stationary"`
	Wander     RobotTypeConfig `mapstructure:"wander"`
	Patrol     RobotTypeConfig `mapstructure:"patrol"`
}

// Kind returns the settings for one robot kind.
func (r *RobotsConfig) Kind(k RobotKind) *RobotTypeConfig {
	switch k {
	case RobotWander:
		return &r.Wander
	case RobotPatrol:
		return &r.Patrol
	}
	return &r.Stationary
}

// ChargeBarConfig contains the charge bar display settings
type ChargeBarConfig struct {
	Levels       int     `mapstructure:"levels"`
	DefaultMax   float64 `mapstructure:"default_max"`
	Offset       float64 `mapstructure:"offset"` // pixels between bar bottom and owner top
	Width        int     `mapstructure:"width"`
	Height       int     `mapstructure:"height"`
	SpritePrefix string  `mapstructure:"sprite_prefix"`
}

// FeatureConfig switches the behavior added by later rulesets.
type FeatureConfig struct {
	Charge bool `mapstructure:"charge"` // robots drain and shut down
	Bars   bool `mapstructure:"bars"`   // actors draw charge bars
}

// NoticeConfig contains shutdown notice display settings
type NoticeConfig struct {
	Duration  float64    `mapstructure:"duration"` // seconds to fade out
	MaxShown  int        `mapstructure:"max_shown"`
	TextColor color.RGBA `mapstructure:"text_color"`
}

// DebugConfig contains debug/testing options
type DebugConfig struct {
	SkipMenu bool `mapstructure:"skip_menu"` // Skip menu and go directly to game
	Overlay  bool `mapstructure:"overlay"`   // Draw resolv object outlines
}

// Config holds the full game configuration. One value is built at startup and
// handed to the scene; nothing reads configuration from package state.
type Config struct {
	Ruleset   RulesetID       `mapstructure:"ruleset"`
	Seed      int64           `mapstructure:"seed"`   // 0 = seed from the clock
	Layout    string          `mapstructure:"layout"` // embedded TMX path, "" or "none" = random spawns
	World     WorldConfig     `mapstructure:"world"`
	Player    PlayerConfig    `mapstructure:"player"`
	Robots    RobotsConfig    `mapstructure:"robots"`
	ChargeBar ChargeBarConfig `mapstructure:"charge_bar"`
	Features  FeatureConfig   `mapstructure:"features"`
	Notice    NoticeConfig    `mapstructure:"notice"`
	Debug     DebugConfig     `mapstructure:"debug"`
}

// Shared RGBA color constants
var (
	White        = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	Black        = color.RGBA{R: 0, G: 0, B: 0, A: 255}
	DarkGray     = color.RGBA{R: 40, G: 40, B: 40, A: 255}
	Red          = color.RGBA{R: 255, G: 0, B: 0, A: 255}
	Green        = color.RGBA{R: 0, G: 255, B: 0, A: 255}
	Blue         = color.RGBA{R: 0, G: 100, B: 255, A: 255}
	Cyan         = color.RGBA{R: 0, G: 255, B: 255, A: 255}
	BlackOverlay = color.RGBA{R: 0, G: 0, B: 0, A: 180}
)

// Default returns the richest ruleset: three robot kinds, draining charge and
// charge bars on every actor.
func Default() *Config {
	return &Config{
		Ruleset: RulesetBars,
		Layout:  "levels/arena.tmx",
		World: WorldConfig{
			Width:       1280,
			Height:      720,
			FPS:         60,
			Background:  White,
			SpawnMargin: 0.1,
		},
		Player: PlayerConfig{
			Speed:     250,
			Width:     48,
			Height:    48,
			ChargeMax: 30,
			Sprite:    "Player.png",
		},
		Robots: RobotsConfig{
			Stationary: RobotTypeConfig{
				Count:     5,
				DrainRate: 0.5,
				Capacity:  50,
				Width:     40,
				Height:    40,
				Sprite:    "Robot.png",
			},
			Wander: RobotTypeConfig{
				Count:     5,
				DrainRate: 1.0,
				Capacity:  50,
				Speed:     100,
				Duration:  0.5,
				Width:     40,
				Height:    40,
				Sprite:    "WanderRobot.png",
			},
			Patrol: RobotTypeConfig{
				Count:     5,
				DrainRate: 1.5,
				Capacity:  50,
				Speed:     150,
				Duration:  2,
				Width:     40,
				Height:    40,
				Sprite:    "PatrolRobot.png",
			},
		},
		ChargeBar: ChargeBarConfig{
			Levels:       31,
			DefaultMax:   30,
			Offset:       4,
			Width:        40,
			Height:       6,
			SpritePrefix: "bar",
		},
		Features: FeatureConfig{
			Charge: true,
			Bars:   true,
		},
		Notice: NoticeConfig{
			Duration:  1.5,
			MaxShown:  4,
			TextColor: Black,
		},
	}
}
