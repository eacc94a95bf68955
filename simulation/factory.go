package simulation

import (
	"fmt"
	"log"

	"github.com/automoto/chargebots/archetypes"
	"github.com/automoto/chargebots/components"
	"github.com/automoto/chargebots/config"
	"github.com/automoto/chargebots/shared/gamemath"
	"github.com/automoto/chargebots/shared/leveldata"
	"github.com/automoto/chargebots/tags"
	"github.com/google/uuid"
	"github.com/solarlune/resolv"
	"github.com/yohamta/donburi"
)

const spaceCellSize = 16

// RobotSpec describes one robot to spawn. A nil Center spawns at a random
// position away from the edges; a nil Direction picks a random one.
type RobotSpec struct {
	Kind      config.RobotKind
	Center    *gamemath.Vector
	Direction *gamemath.Vector
}

// CreateSpace creates the resolv space covering the world bounds.
func CreateSpace(w donburi.World, c *config.Config) *donburi.Entry {
	space := archetypes.Space.Spawn(w)
	components.Space.Set(space, resolv.NewSpace(c.World.Width, c.World.Height, spaceCellSize, spaceCellSize))
	return space
}

func addToSpace(w donburi.World, obj *resolv.Object) {
	if spaceEntry, ok := components.Space.First(w); ok {
		components.Space.Get(spaceEntry).Add(obj)
	}
}

func newObject(cx, cy float64, width, height int, tag string) *resolv.Object {
	wf, hf := float64(width), float64(height)
	return resolv.NewObject(cx-wf/2, cy-hf/2, wf, hf, tag)
}

func newChargeBar(c *config.Config, max float64) components.ChargeBarData {
	bar := components.NewChargeBar(max, -1)
	bar.W = float64(c.ChargeBar.Width)
	bar.H = float64(c.ChargeBar.Height)
	bar.Visible = c.Features.Bars
	return bar
}

// CreatePlayer spawns the player centered on (cx, cy). The player gets a
// charge bar only when bars are enabled; nothing ever drains it.
func CreatePlayer(w donburi.World, c *config.Config, cx, cy float64) *donburi.Entry {
	var extra []donburi.IComponentType
	if c.Features.Bars {
		extra = append(extra, components.ChargeBar)
	}
	player := archetypes.Player.Spawn(w, extra...)

	obj := newObject(cx, cy, c.Player.Width, c.Player.Height, tags.ResolvPlayer)
	obj.Data = player
	components.Object.SetValue(player, components.ObjectData{Object: obj})
	components.Player.SetValue(player, components.PlayerData{Speed: c.Player.Speed})
	components.Sprite.SetValue(player, components.SpriteData{Key: c.Player.Sprite})

	if c.Features.Bars {
		max := c.Player.ChargeMax
		if max <= 0 {
			max = c.ChargeBar.DefaultMax
		}
		bar := newChargeBar(c, max)
		bar.Update(obj, c.ChargeBar.Levels, c.ChargeBar.Offset)
		components.ChargeBar.SetValue(player, bar)
	}

	addToSpace(w, obj)
	return player
}

// RandomCenter returns a point whose coordinates lie in the inner
// [margin, 1-margin] band of the world on each axis.
func RandomCenter(s *components.SettingsData) gamemath.Vector {
	c := s.Config
	m := c.World.SpawnMargin
	span := 1 - 2*m
	return gamemath.Vector{
		X: float64(c.World.Width) * (m + s.Rand.Float64()*span),
		Y: float64(c.World.Height) * (m + s.Rand.Float64()*span),
	}
}

func newSerial(s *components.SettingsData) string {
	id, err := uuid.NewRandomFromReader(s.Rand)
	if err != nil {
		id = uuid.New()
	}
	return id.String()[:8]
}

// CreateRobot spawns one robot of spec.Kind. Robots get a draining charge bar
// only when the charge feature is on.
func CreateRobot(w donburi.World, s *components.SettingsData, spec RobotSpec) *donburi.Entry {
	c := s.Config
	rc := c.Robots.Kind(spec.Kind)

	var extra []donburi.IComponentType
	if c.Features.Charge {
		extra = append(extra, components.ChargeBar)
	}

	var robot *donburi.Entry
	switch spec.Kind {
	case config.RobotWander:
		robot = archetypes.WanderRobot.Spawn(w, extra...)
		dir := gamemath.RandomUnitDirection(s.Rand)
		if spec.Direction != nil {
			dir = spec.Direction.Normalized()
		}
		components.Wander.SetValue(robot, components.WanderData{
			Direction: dir,
			Remaining: rc.Duration,
			Duration:  rc.Duration,
		})
	case config.RobotPatrol:
		robot = archetypes.PatrolRobot.Spawn(w, extra...)
		dir := gamemath.RandomGridDirection(s.Rand)
		if spec.Direction != nil {
			dir = *spec.Direction
		}
		components.Patrol.SetValue(robot, components.NewPatrol(dir, rc.Duration))
	default:
		robot = archetypes.Robot.Spawn(w, extra...)
	}

	center := RandomCenter(s)
	if spec.Center != nil {
		center = *spec.Center
	}
	obj := newObject(center.X, center.Y, rc.Width, rc.Height, tags.ResolvRobot)
	obj.Data = robot
	components.Object.SetValue(robot, components.ObjectData{Object: obj})
	components.Sprite.SetValue(robot, components.SpriteData{Key: rc.Sprite})
	components.Robot.SetValue(robot, components.RobotData{
		Kind:      spec.Kind,
		Serial:    newSerial(s),
		Seq:       s.NextSeq,
		DrainRate: rc.DrainRate,
		Speed:     rc.Speed,
	})

	if c.Features.Charge {
		bar := newChargeBar(c, rc.Capacity)
		bar.Update(obj, c.ChargeBar.Levels, c.ChargeBar.Offset)
		components.ChargeBar.SetValue(robot, bar)
	}

	s.NextSeq++
	addToSpace(w, obj)
	return robot
}

// Populate fills a fresh world: the space and its bounds, the player and every robot the
// config asks for. Robots placed in the layout are used first (up to the
// configured count); the rest spawn at random. Creation order is the update
// and draw order: player, then stationary, wander and patrol robots.
func Populate(w donburi.World, s *components.SettingsData, layout *leveldata.Layout) error {
	c := s.Config
	if layout != nil {
		for _, spawn := range layout.RobotSpawns {
			if _, ok := config.ParseRobotKind(spawn.Kind); !ok {
				return fmt.Errorf("layout %s: unknown robot kind %q", layout.Name, spawn.Kind)
			}
		}
		if layout.MapWidth != c.World.Width || layout.MapHeight != c.World.Height {
			log.Printf("Warning: layout %s is %dx%d, world is %dx%d",
				layout.Name, layout.MapWidth, layout.MapHeight, c.World.Width, c.World.Height)
		}
	}

	CreateSpace(w, c)
	CreateBounds(w, c)

	px, py := float64(c.World.Width)/2, float64(c.World.Height)/2
	if layout != nil && len(layout.PlayerSpawns) > 0 {
		px, py = layout.PlayerSpawns[0].X, layout.PlayerSpawns[0].Y
	}
	CreatePlayer(w, c, px, py)

	for kind := config.RobotStationary; kind < config.RobotKindCount; kind++ {
		specs, err := robotSpecs(c, kind, layout)
		if err != nil {
			return err
		}
		for _, spec := range specs {
			CreateRobot(w, s, spec)
		}
	}

	return nil
}

func robotSpecs(c *config.Config, kind config.RobotKind, layout *leveldata.Layout) ([]RobotSpec, error) {
	count := c.Robots.Kind(kind).Count
	specs := make([]RobotSpec, 0, count)

	if layout != nil {
		for _, spawn := range layout.RobotSpawnsOf(kind.String()) {
			if len(specs) == count {
				break
			}
			spec := RobotSpec{
				Kind:   kind,
				Center: &gamemath.Vector{X: spawn.X, Y: spawn.Y},
			}
			if spawn.HasDirection {
				if spawn.DirX == 0 && spawn.DirY == 0 {
					return nil, fmt.Errorf("layout %s: %s robot at (%.0f, %.0f) has a zero direction",
						layout.Name, kind, spawn.X, spawn.Y)
				}
				spec.Direction = &gamemath.Vector{X: spawn.DirX, Y: spawn.DirY}
			}
			specs = append(specs, spec)
		}
	}
	for len(specs) < count {
		specs = append(specs, RobotSpec{Kind: kind})
	}
	return specs, nil
}
