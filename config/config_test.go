package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	c := Default()
	assert.Equal(t, RulesetBars, c.Ruleset)
	assert.InDelta(t, 1.0/60, c.World.SPF(), 1e-15)
	assert.Equal(t, 0.5, c.Robots.Kind(RobotStationary).DrainRate)
	assert.Equal(t, 1.0, c.Robots.Kind(RobotWander).DrainRate)
	assert.Equal(t, 1.5, c.Robots.Kind(RobotPatrol).DrainRate)
	assert.Equal(t, 31, c.ChargeBar.Levels)
	assert.Equal(t, 30.0, c.Player.ChargeMax)
}

func TestForRuleset(t *testing.T) {
	tests := []struct {
		id            RulesetID
		width, height int
		robots        int
		features      FeatureConfig
	}{
		{RulesetPlayer, 800, 600, 0, FeatureConfig{}},
		{RulesetRobots, 800, 600, 15, FeatureConfig{}},
		{RulesetCharge, 1280, 720, 15, FeatureConfig{Charge: true}},
		{RulesetBars, 1280, 720, 15, FeatureConfig{Charge: true, Bars: true}},
	}
	for _, tt := range tests {
		t.Run(string(tt.id), func(t *testing.T) {
			c, err := ForRuleset(tt.id)
			require.NoError(t, err)
			assert.Equal(t, tt.id, c.Ruleset)
			assert.Equal(t, tt.width, c.World.Width)
			assert.Equal(t, tt.height, c.World.Height)
			assert.Equal(t, tt.robots, c.Robots.Stationary.Count+c.Robots.Wander.Count+c.Robots.Patrol.Count)
			assert.Equal(t, tt.features, c.Features)
		})
	}

	_, err := ForRuleset("v9")
	assert.Error(t, err)
}

func TestApplyRulesetRoundTrip(t *testing.T) {
	c, err := ForRuleset(RulesetPlayer)
	require.NoError(t, err)
	assert.Empty(t, c.Layout)

	require.NoError(t, c.ApplyRuleset(RulesetBars))
	assert.Equal(t, 5, c.Robots.Stationary.Count)
	assert.Equal(t, 5, c.Robots.Wander.Count)
	assert.Equal(t, 5, c.Robots.Patrol.Count)
	assert.Equal(t, Default().Layout, c.Layout)

	c.Layout = "none"
	c.Robots.Wander.Count = 2
	require.NoError(t, c.ApplyRuleset(RulesetCharge))
	assert.Equal(t, "none", c.Layout)
	assert.Equal(t, 2, c.Robots.Wander.Count)
}

func TestParseRobotKind(t *testing.T) {
	for k := RobotStationary; k < RobotKindCount; k++ {
		got, ok := ParseRobotKind(k.String())
		assert.True(t, ok)
		assert.Equal(t, k, got)
	}
	_, ok := ParseRobotKind("hover")
	assert.False(t, ok)
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chargebots.yaml")
	yaml := `
seed: 42
world:
  fps: 30
robots:
  wander:
    speed: 80
    count: 2
`
	require.NoError(t, os.WriteFile(path, []byte(yaml), 0o644))

	c, err := Load(path, Default())
	require.NoError(t, err)
	assert.Equal(t, int64(42), c.Seed)
	assert.Equal(t, 30, c.World.FPS)
	assert.Equal(t, 1280, c.World.Width)
	assert.Equal(t, 80.0, c.Robots.Wander.Speed)
	assert.Equal(t, 2, c.Robots.Wander.Count)
	assert.Equal(t, 0.5, c.Robots.Wander.Duration)
	assert.Equal(t, "Robot.png", c.Robots.Stationary.Sprite)
}

func TestLoadRuleset(t *testing.T) {
	path := filepath.Join(t.TempDir(), "chargebots.yaml")
	require.NoError(t, os.WriteFile(path, []byte("ruleset: v2\n"), 0o644))

	c, err := Load(path, Default())
	require.NoError(t, err)
	assert.Equal(t, RulesetRobots, c.Ruleset)
	assert.False(t, c.Features.Charge)
	assert.Equal(t, 800, c.World.Width)
}

func TestLoadEnv(t *testing.T) {
	t.Setenv("CHARGEBOTS_WORLD_FPS", "120")
	c, err := Load("", Default())
	require.NoError(t, err)
	assert.Equal(t, 120, c.World.FPS)
}

func TestLoadEnvNestedKeys(t *testing.T) {
	t.Setenv("CHARGEBOTS_ROBOTS_WANDER_SPEED", "42")
	t.Setenv("CHARGEBOTS_ROBOTS_PATROL_DRAIN_RATE", "9")
	t.Setenv("CHARGEBOTS_CHARGE_BAR_OFFSET", "12")
	t.Setenv("CHARGEBOTS_NOTICE_MAX_SHOWN", "2")
	t.Setenv("CHARGEBOTS_WORLD_SPAWN_MARGIN", "0.2")

	c, err := Load("", Default())
	require.NoError(t, err)
	assert.Equal(t, 42.0, c.Robots.Wander.Speed)
	assert.Equal(t, 9.0, c.Robots.Patrol.DrainRate)
	assert.Equal(t, 12.0, c.ChargeBar.Offset)
	assert.Equal(t, 2, c.Notice.MaxShown)
	assert.Equal(t, 0.2, c.World.SpawnMargin)

	// Untouched keys keep their defaults.
	assert.Equal(t, 1.0, c.Robots.Wander.DrainRate)
	assert.Equal(t, Default().World.Background, c.World.Background)
}

func TestFlattenKeys(t *testing.T) {
	got := flattenKeys("", map[string]interface{}{
		"seed": 1,
		"robots": map[string]interface{}{
			"wander": map[string]interface{}{"speed": 100.0},
		},
	})
	assert.Equal(t, map[string]interface{}{
		"seed":                1,
		"robots.wander.speed": 100.0,
	}, got)
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.yaml"), Default())
	assert.Error(t, err)
}
