package simulation

import (
	"sort"

	"github.com/automoto/chargebots/components"
	cfg "github.com/automoto/chargebots/config"
	"github.com/automoto/chargebots/tags"
	"github.com/yohamta/donburi"
)

// UpdateRobots runs every robot's motion for its kind, then drains its
// battery. Robots that hit zero are only marked; see RemoveExpired.
func UpdateRobots(w donburi.World) {
	s := MustSettings(w)
	spf := s.Config.World.SPF()
	width, height := float64(s.Config.World.Width), float64(s.Config.World.Height)

	for _, e := range RobotsInOrder(w) {
		robot := components.Robot.Get(e)
		if robot.Expired {
			continue
		}
		obj := components.Object.Get(e).Object

		switch robot.Kind {
		case cfg.RobotWander:
			updateWander(components.Wander.Get(e), obj, robot.Speed, spf, width, height, s.Rand)
		case cfg.RobotPatrol:
			updatePatrol(components.Patrol.Get(e), obj, robot.Speed, spf)
		case cfg.RobotStationary:
			// Stationary robots only drain.
		}

		if e.HasComponent(components.ChargeBar) {
			drainCharge(robot, components.ChargeBar.Get(e), spf)
		}
	}
}

// RobotsInOrder returns every robot sorted by spawn sequence. donburi moves
// the last entity into a removed slot, so query order alone drifts from
// creation order once a robot shuts down.
func RobotsInOrder(w donburi.World) []*donburi.Entry {
	var robots []*donburi.Entry
	tags.Robot.Each(w, func(e *donburi.Entry) {
		robots = append(robots, e)
	})
	sort.Slice(robots, func(i, j int) bool {
		return components.Robot.Get(robots[i]).Seq < components.Robot.Get(robots[j]).Seq
	})
	return robots
}

// drainCharge is applied identically to every kind after its motion step.
func drainCharge(robot *components.RobotData, bar *components.ChargeBarData, spf float64) {
	bar.SubtractCharge(robot.DrainRate * spf)
	if bar.Empty() {
		robot.Expired = true
	}
}

// CountRobots returns the number of live robots per kind.
func CountRobots(w donburi.World) [cfg.RobotKindCount]int {
	var counts [cfg.RobotKindCount]int
	tags.Robot.Each(w, func(e *donburi.Entry) {
		robot := components.Robot.Get(e)
		if !robot.Expired {
			counts[robot.Kind]++
		}
	})
	return counts
}
