package leveldata

import (
	"fmt"
	"io/fs"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from layout maps.
const (
	GroupPlayerSpawn = "PlayerSpawn"
	GroupRobotSpawn  = "RobotSpawn"
)

// LoadLayout parses a TMX file and returns its spawn layout. It takes an fs.FS
// so callers can pass embed.FS (game) or os.DirFS / fstest.MapFS (tools, tests).
func LoadLayout(fsys fs.FS, tmxPath string) (*Layout, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	layout := &Layout{
		Name:      tmxPath,
		MapWidth:  levelMap.Width * levelMap.TileWidth,
		MapHeight: levelMap.Height * levelMap.TileHeight,
	}

	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupPlayerSpawn:
			for _, o := range og.Objects {
				layout.PlayerSpawns = append(layout.PlayerSpawns, SpawnPoint{
					X: o.X + o.Width/2,
					Y: o.Y + o.Height/2,
				})
			}
		case GroupRobotSpawn:
			for _, o := range og.Objects {
				kind := o.Properties.GetString("kind")
				if kind == "" {
					kind = o.Class
				}
				if kind == "" {
					kind = o.Type //nolint:staticcheck // TMX uses type= attribute
				}
				kind = strings.ToLower(kind)
				if kind == "" {
					return nil, fmt.Errorf("%s: robot spawn %d has no kind", tmxPath, o.ID)
				}

				spawn := RobotSpawn{
					X:    o.X + o.Width/2,
					Y:    o.Y + o.Height/2,
					Kind: kind,
				}
				if hasProperty(o.Properties, "dirX") || hasProperty(o.Properties, "dirY") {
					spawn.DirX = o.Properties.GetFloat("dirX")
					spawn.DirY = o.Properties.GetFloat("dirY")
					spawn.HasDirection = true
				}
				layout.RobotSpawns = append(layout.RobotSpawns, spawn)
			}
		}
	}

	return layout, nil
}

func hasProperty(props tiled.Properties, name string) bool {
	for _, p := range props {
		if p.Name == name {
			return true
		}
	}
	return false
}
