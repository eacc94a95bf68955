package tags

import "github.com/yohamta/donburi"

var (
	Player = donburi.NewTag().SetName("Player")
	Robot  = donburi.NewTag().SetName("Robot")
	Wall   = donburi.NewTag().SetName("Wall")
)

// Resolv tags for the spatial bookkeeping and debug overlay
const (
	ResolvPlayer = "Player"
	ResolvRobot  = "Robot"
	ResolvWall   = "wall"
)
