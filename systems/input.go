package systems

import (
	"github.com/automoto/chargebots/components"
	cfg "github.com/automoto/chargebots/config"
	"github.com/automoto/chargebots/simulation"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/yohamta/donburi/ecs"
)

// KeyBindings maps each action to the keys that trigger it.
var KeyBindings = map[cfg.ActionID][]ebiten.Key{
	cfg.ActionMoveLeft:  {ebiten.KeyArrowLeft},
	cfg.ActionMoveRight: {ebiten.KeyArrowRight},
	cfg.ActionMoveUp:    {ebiten.KeyArrowUp},
	cfg.ActionMoveDown:  {ebiten.KeyArrowDown},
	cfg.ActionSelect:    {ebiten.KeyEnter, ebiten.KeyNumpadEnter},
	cfg.ActionBack:      {ebiten.KeyEscape},
	cfg.ActionDebug:     {ebiten.KeyF1},
}

// UpdateInput snapshots the keyboard into the Input singleton.
// Must run BEFORE any simulation stage in the system order.
func UpdateInput(e *ecs.ECS) {
	PollKeyboard(simulation.GetOrCreateInput(e.World))
}

// PollKeyboard swaps buffers, then sets every action whose key is held.
func PollKeyboard(input *components.InputData) {
	input.Advance()
	for actionID, keys := range KeyBindings {
		for _, key := range keys {
			if ebiten.IsKeyPressed(key) {
				input.Current[actionID] = true
			}
		}
	}
}

// GetAction returns the state of an action in the current snapshot.
func GetAction(e *ecs.ECS, id cfg.ActionID) components.ActionState {
	return simulation.GetOrCreateInput(e.World).Action(id)
}
