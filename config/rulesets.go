package config

import "fmt"

// RulesetID selects one of the incremental versions of the demo.
type RulesetID string

const (
	RulesetPlayer RulesetID = "v1" // player only
	RulesetRobots RulesetID = "v2" // stationary, wander and patrol robots
	RulesetCharge RulesetID = "v3" // robots drain and shut down
	RulesetBars   RulesetID = "v4" // charge bars on every actor
)

// Rulesets lists every ruleset in menu order.
var Rulesets = []RulesetID{RulesetPlayer, RulesetRobots, RulesetCharge, RulesetBars}

// Title returns the menu label of a ruleset.
func (r RulesetID) Title() string {
	switch r {
	case RulesetPlayer:
		return "v1: Player"
	case RulesetRobots:
		return "v2: Robots"
	case RulesetCharge:
		return "v3: Batteries"
	case RulesetBars:
		return "v4: Charge Bars"
	}
	return string(r)
}

// ForRuleset returns the default configuration for a ruleset.
func ForRuleset(id RulesetID) (*Config, error) {
	c := Default()
	if err := c.ApplyRuleset(id); err != nil {
		return nil, err
	}
	return c, nil
}

// ApplyRuleset rewrites the world size, robot counts and feature switches of c
// to match the given ruleset. Tuning values (speeds, rates, capacities) are
// left as they are. Rulesets with robots restore the default counts when c
// has none, and the charge rulesets restore the default layout when c has
// none, so switching back from v1 or v2 works.
func (c *Config) ApplyRuleset(id RulesetID) error {
	switch id {
	case RulesetPlayer:
		c.World.Width, c.World.Height = 800, 600
		c.Robots.Stationary.Count = 0
		c.Robots.Wander.Count = 0
		c.Robots.Patrol.Count = 0
		c.Features = FeatureConfig{}
		c.Layout = ""
	case RulesetRobots:
		c.World.Width, c.World.Height = 800, 600
		c.restoreRobotCounts()
		c.Features = FeatureConfig{}
		c.Layout = ""
	case RulesetCharge:
		c.World.Width, c.World.Height = 1280, 720
		c.restoreRobotCounts()
		c.restoreLayout()
		c.Features = FeatureConfig{Charge: true}
	case RulesetBars:
		c.World.Width, c.World.Height = 1280, 720
		c.restoreRobotCounts()
		c.restoreLayout()
		c.Features = FeatureConfig{Charge: true, Bars: true}
	default:
		return fmt.Errorf("unknown ruleset %q", id)
	}
	c.Ruleset = id
	return nil
}

func (c *Config) restoreRobotCounts() {
	if c.Robots.Stationary.Count+c.Robots.Wander.Count+c.Robots.Patrol.Count > 0 {
		return
	}
	d := Default().Robots
	c.Robots.Stationary.Count = d.Stationary.Count
	c.Robots.Wander.Count = d.Wander.Count
	c.Robots.Patrol.Count = d.Patrol.Count
}

// restoreLayout only fills an empty layout; "none" stays disabled.
func (c *Config) restoreLayout() {
	if c.Layout == "" {
		c.Layout = Default().Layout
	}
}
