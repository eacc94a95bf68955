// Package leveldata parses the spawn layout maps authored in Tiled.
// It has no dependencies on ebitengine, donburi, or resolv, pure data only.
package leveldata

// Layout holds the spawn points parsed from a TMX layout file. Point
// coordinates are the spawned sprite's center.
type Layout struct {
	Name         string
	MapWidth     int
	MapHeight    int
	PlayerSpawns []SpawnPoint
	RobotSpawns  []RobotSpawn
}

// SpawnPoint represents a player spawn location.
type SpawnPoint struct {
	X, Y float64
}

// RobotSpawn represents a robot placed by hand. HasDirection is set when the
// object carries dirX/dirY properties (patrol robots).
type RobotSpawn struct {
	X, Y         float64
	Kind         string // "stationary", "wander", "patrol"
	DirX, DirY   float64
	HasDirection bool
}

// RobotSpawnsOf returns the spawns for one kind in map order.
func (l *Layout) RobotSpawnsOf(kind string) []RobotSpawn {
	var out []RobotSpawn
	for _, s := range l.RobotSpawns {
		if s.Kind == kind {
			out = append(out, s)
		}
	}
	return out
}
