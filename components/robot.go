package components

import (
	"github.com/automoto/chargebots/config"
	"github.com/yohamta/donburi"
)

// RobotData is the state every robot variant shares. Kind selects the
// behavior the robot system dispatches to.
type RobotData struct {
	Kind      config.RobotKind
	Serial    string
	DrainRate float64 // charge/second
	Speed     float64 // pixels/second
	Seq       int     // spawn order; robots update and draw in ascending Seq

	// Expired marks the robot for removal once the update pass is over.
	Expired bool
}

// WanderData drives the timed random walk.
type WanderData struct {
	Direction Vector  // unit length
	Remaining float64 // seconds until the next re-roll
	Duration  float64 // re-roll interval
}

// PatrolState is the leg a patrolling robot is currently on.
type PatrolState int

const (
	PatrolOut PatrolState = iota
	PatrolBack
)

var nextPatrolState = [...]PatrolState{
	PatrolOut:  PatrolBack,
	PatrolBack: PatrolOut,
}

// Next returns the state that follows s.
func (s PatrolState) Next() PatrolState {
	return nextPatrolState[s]
}

func (s PatrolState) String() string {
	if s == PatrolBack {
		return "back"
	}
	return "out"
}

// PatrolData drives the out-and-back patrol. Back is always -Out.
type PatrolData struct {
	Out      Vector
	Back     Vector
	State    PatrolState
	Elapsed  float64 // seconds spent in the current state
	Duration float64 // seconds per leg
}

// NewPatrol builds a patrol starting on the out leg along dir.
func NewPatrol(dir Vector, duration float64) PatrolData {
	return PatrolData{
		Out:      dir,
		Back:     dir.Neg(),
		State:    PatrolOut,
		Duration: duration,
	}
}

// Vector returns the direction of the current leg.
func (p *PatrolData) Vector() Vector {
	if p.State == PatrolBack {
		return p.Back
	}
	return p.Out
}

var (
	Robot  = donburi.NewComponentType[RobotData]()
	Wander = donburi.NewComponentType[WanderData]()
	Patrol = donburi.NewComponentType[PatrolData]()
)
