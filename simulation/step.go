package simulation

import "github.com/yohamta/donburi"

// System is one stage of a frame.
type System func(w donburi.World)

// Systems is the frame order. Input is sampled before the first stage by the
// caller; drawing happens after the last.
var Systems = []System{
	UpdatePlayer,
	UpdateRobots,
	RemoveExpired,
	SyncObjects,
	UpdateChargeBars,
	UpdateNotices,
	AdvanceClock,
}

// Step runs one full frame.
func Step(w donburi.World) {
	for _, system := range Systems {
		system(w)
	}
}
