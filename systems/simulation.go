package systems

import (
	"github.com/automoto/chargebots/simulation"
	"github.com/yohamta/donburi/ecs"
)

// Stage adapts a simulation stage to an ecs system.
func Stage(system simulation.System) ecs.System {
	return func(e *ecs.ECS) {
		system(e.World)
	}
}

// AddSimulation registers every simulation stage, in frame order.
func AddSimulation(e *ecs.ECS) {
	for _, system := range simulation.Systems {
		e.AddSystem(Stage(system))
	}
}
