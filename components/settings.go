package components

import (
	"math/rand"

	"github.com/automoto/chargebots/config"
	"github.com/yohamta/donburi"
)

// SettingsData is the per-scene singleton carrying the configuration value and
// the run's clock and random source.
type SettingsData struct {
	Config *config.Config
	Rand   *rand.Rand

	NextSeq int     // spawn sequence handed to the next robot
	Frame   int     // frames simulated so far
	Elapsed float64 // simulated seconds
	Debug   bool    // draw the collision overlay
}

var Settings = donburi.NewComponentType[SettingsData]()
