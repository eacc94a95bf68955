package simulation

import (
	"fmt"

	"github.com/automoto/chargebots/config"
	"github.com/yohamta/donburi"
)

// StatusLines returns the HUD text: the ruleset and elapsed simulated time,
// then one live count per robot kind the ruleset spawns.
func StatusLines(w donburi.World) []string {
	s := MustSettings(w)
	counts := CountRobots(w)

	lines := []string{
		fmt.Sprintf("%s  %.1fs", s.Config.Ruleset.Title(), s.Elapsed),
	}
	for kind := config.RobotKind(0); kind < config.RobotKindCount; kind++ {
		if s.Config.Robots.Kind(kind).Count == 0 {
			continue
		}
		lines = append(lines, fmt.Sprintf("%-10s %d", kind.String(), counts[kind]))
	}
	return lines
}
