package simulation

import (
	"fmt"
	"log"

	"github.com/automoto/chargebots/components"
	"github.com/yohamta/donburi"
)

// RemoveExpired drops every robot marked during the update pass, together with
// its charge bar and space registration.
func RemoveExpired(w donburi.World) {
	removeExpired(w)
}

func removeExpired(w donburi.World) []string {
	var expired []*donburi.Entry
	for _, e := range RobotsInOrder(w) {
		if components.Robot.Get(e).Expired {
			expired = append(expired, e)
		}
	}
	if len(expired) == 0 {
		return nil
	}

	s := MustSettings(w)
	spaceEntry, hasSpace := components.Space.First(w)

	serials := make([]string, 0, len(expired))
	for _, e := range expired {
		robot := components.Robot.Get(e)
		if hasSpace {
			components.Space.Get(spaceEntry).Remove(components.Object.Get(e).Object)
		}

		log.Printf("robot %s (%s) shut down at %.2fs", robot.Serial, robot.Kind, s.Elapsed)
		SpawnNotice(w, fmt.Sprintf("%s robot %s shut down", robot.Kind, robot.Serial))

		serials = append(serials, robot.Serial)
		w.Remove(e.Entity())
	}
	return serials
}
