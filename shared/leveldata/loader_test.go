package leveldata

import (
	"os"
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testMap = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="50" height="40" tilewidth="16" tileheight="16" infinite="0" nextlayerid="3" nextobjectid="5">
 <objectgroup id="1" name="PlayerSpawn">
  <object id="1" x="400" y="300">
   <point/>
  </object>
 </objectgroup>
 <objectgroup id="2" name="RobotSpawn">
  <object id="2" x="100" y="120">
   <properties>
    <property name="kind" value="Stationary"/>
   </properties>
   <point/>
  </object>
  <object id="3" x="200" y="220" width="20" height="10">
   <properties>
    <property name="kind" value="patrol"/>
    <property name="dirX" type="float" value="-1"/>
    <property name="dirY" type="float" value="0"/>
   </properties>
  </object>
  <object id="4" x="300" y="320" type="wander">
   <point/>
  </object>
 </objectgroup>
</map>
`

func TestLoadLayout(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/test.tmx": &fstest.MapFile{Data: []byte(testMap)},
	}

	layout, err := LoadLayout(fsys, "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, 800, layout.MapWidth)
	assert.Equal(t, 640, layout.MapHeight)
	require.Len(t, layout.PlayerSpawns, 1)
	assert.Equal(t, SpawnPoint{X: 400, Y: 300}, layout.PlayerSpawns[0])

	require.Len(t, layout.RobotSpawns, 3)
	assert.Equal(t, RobotSpawn{X: 100, Y: 120, Kind: "stationary"}, layout.RobotSpawns[0])
	assert.Equal(t, RobotSpawn{X: 210, Y: 225, Kind: "patrol", DirX: -1, HasDirection: true}, layout.RobotSpawns[1])
	assert.Equal(t, "wander", layout.RobotSpawns[2].Kind)
	assert.False(t, layout.RobotSpawns[2].HasDirection)

	assert.Len(t, layout.RobotSpawnsOf("patrol"), 1)
	assert.Empty(t, layout.RobotSpawnsOf("hover"))
}

func TestLoadLayoutMissing(t *testing.T) {
	_, err := LoadLayout(fstest.MapFS{}, "levels/none.tmx")
	assert.Error(t, err)
}

func TestLoadArena(t *testing.T) {
	layout, err := LoadLayout(os.DirFS("../../assets"), "levels/arena.tmx")
	require.NoError(t, err)

	assert.Equal(t, 1280, layout.MapWidth)
	assert.Equal(t, 720, layout.MapHeight)
	assert.Len(t, layout.PlayerSpawns, 1)
	assert.Len(t, layout.RobotSpawnsOf("stationary"), 5)
	for _, s := range layout.RobotSpawnsOf("patrol") {
		assert.True(t, s.HasDirection)
	}
}
