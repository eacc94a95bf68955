package simulation

import (
	"math/rand"
	"time"

	"github.com/automoto/chargebots/archetypes"
	"github.com/automoto/chargebots/components"
	"github.com/automoto/chargebots/config"
	"github.com/yohamta/donburi"
)

// NewSettings creates the settings singleton for a world. A zero seed in the
// config seeds the random source from the clock.
func NewSettings(w donburi.World, c *config.Config) *components.SettingsData {
	seed := c.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	entry := archetypes.Settings.Spawn(w)
	components.Settings.SetValue(entry, components.SettingsData{
		Config: c,
		Rand:   rand.New(rand.NewSource(seed)),
		Debug:  c.Debug.Overlay,
	})
	return components.Settings.Get(entry)
}

// MustSettings returns the settings singleton. Scenes create it before any
// system runs, so a missing singleton is a programming error.
func MustSettings(w donburi.World) *components.SettingsData {
	entry, ok := components.Settings.First(w)
	if !ok {
		panic("simulation: settings singleton missing")
	}
	return components.Settings.Get(entry)
}

// GetOrCreateInput returns the singleton Input component, creating if needed
func GetOrCreateInput(w donburi.World) *components.InputData {
	entry, ok := components.Input.First(w)
	if !ok {
		entry = archetypes.Input.Spawn(w)
		// Zero-value InputData is correct (all bools false)
	}
	return components.Input.Get(entry)
}

// AdvanceClock counts the frame that just ran.
func AdvanceClock(w donburi.World) {
	s := MustSettings(w)
	s.Frame++
	s.Elapsed += s.Config.World.SPF()
}
