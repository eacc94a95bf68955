package archetypes

import (
	"github.com/automoto/chargebots/components"
	"github.com/automoto/chargebots/tags"
	"github.com/yohamta/donburi"
)

var (
	Player = newArchetype(
		tags.Player,
		components.Player,
		components.Object,
		components.Sprite,
	)
	Robot = newArchetype(
		tags.Robot,
		components.Robot,
		components.Object,
		components.Sprite,
	)
	WanderRobot = newArchetype(
		tags.Robot,
		components.Robot,
		components.Wander,
		components.Object,
		components.Sprite,
	)
	PatrolRobot = newArchetype(
		tags.Robot,
		components.Robot,
		components.Patrol,
		components.Object,
		components.Sprite,
	)
	Wall = newArchetype(
		tags.Wall,
		components.Object,
	)
	Space = newArchetype(
		components.Space,
	)
	Settings = newArchetype(
		components.Settings,
	)
	Input = newArchetype(
		components.Input,
	)
	Notice = newArchetype(
		components.Notice,
	)
)

type archetype struct {
	components []donburi.IComponentType
}

func newArchetype(cs ...donburi.IComponentType) *archetype {
	return &archetype{
		components: cs,
	}
}

// Spawn creates an entity with the archetype's components plus any extra ones
// (a ChargeBar, for instance).
func (a *archetype) Spawn(w donburi.World, cs ...donburi.IComponentType) *donburi.Entry {
	all := make([]donburi.IComponentType, 0, len(a.components)+len(cs))
	all = append(all, a.components...)
	all = append(all, cs...)
	return w.Entry(w.Create(all...))
}
