package leveldata

import (
	"testing"
	"testing/fstest"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="10" height="5" tilewidth="32" tileheight="32" infinite="0" nextlayerid="6" nextobjectid="10">
 <objectgroup id="1" name="Ground">
  <object id="1" x="0" y="128" width="320" height="32"/>
 </objectgroup>
 <objectgroup id="2" name="Enemies">
  <object id="2" x="200" y="100" width="28" height="28">
   <properties>
    <property name="patrolLeft" type="float" value="150"/>
    <property name="patrolRight" type="float" value="250"/>
    <property name="speed" type="float" value="40"/>
   </properties>
  </object>
  <object id="3" x="40" y="100" width="28" height="28"/>
 </objectgroup>
 <objectgroup id="3" name="FinishZone">
  <object id="4" x="288" y="64" width="32" height="64"/>
 </objectgroup>
 <objectgroup id="4" name="LoseZone">
  <object id="5" x="100" y="150" width="20" height="10">
   <properties>
    <property name="reason" value="Spikes!"/>
   </properties>
  </object>
 </objectgroup>
 <objectgroup id="5" name="PlayerSpawn">
  <object id="6" x="48" y="96">
   <point/>
  </object>
 </objectgroup>
</map>
`

const noSpawnTMX = `<?xml version="1.0" encoding="UTF-8"?>
<map version="1.10" orientation="orthogonal" renderorder="right-down" width="4" height="4" tilewidth="32" tileheight="32" infinite="0">
 <objectgroup id="1" name="Ground">
  <object id="1" x="0" y="96" width="128" height="32"/>
 </objectgroup>
</map>
`

func testFS() fstest.MapFS {
	return fstest.MapFS{
		"levels/test.tmx":    &fstest.MapFile{Data: []byte(testTMX)},
		"levels/nospawn.tmx": &fstest.MapFile{Data: []byte(noSpawnTMX)},
	}
}

func TestLoadLevelConvertsToWorldSpace(t *testing.T) {
	level, err := LoadLevel(testFS(), "levels/test.tmx")
	require.NoError(t, err)

	assert.Equal(t, "test", level.Name)
	assert.Equal(t, 320, level.Width)
	assert.Equal(t, 160, level.Height)

	require.Len(t, level.Ground, 1)
	assert.Equal(t, Rect{X: 0, Y: 0, W: 320, H: 32}, level.Ground[0])

	require.Len(t, level.FinishZones, 1)
	assert.Equal(t, Rect{X: 288, Y: 32, W: 32, H: 64}, level.FinishZones[0])

	require.Len(t, level.LoseZones, 1)
	assert.Equal(t, "Spikes!", level.LoseZones[0].Reason)
	assert.Equal(t, 0.0, level.LoseZones[0].Y)

	assert.Equal(t, Point{X: 48, Y: 64}, level.PlayerSpawn)
}

func TestLoadLevelEnemies(t *testing.T) {
	level, err := LoadLevel(testFS(), "levels/test.tmx")
	require.NoError(t, err)
	require.Len(t, level.Enemies, 2)

	// sorted left to right
	static := level.Enemies[0]
	assert.Equal(t, 40.0, static.X)
	assert.Nil(t, static.PatrolLeft)
	assert.Nil(t, static.PatrolRight)

	patrol := level.Enemies[1]
	require.NotNil(t, patrol.PatrolLeft)
	require.NotNil(t, patrol.PatrolRight)
	assert.Equal(t, 150.0, *patrol.PatrolLeft)
	assert.Equal(t, 250.0, *patrol.PatrolRight)
	assert.Equal(t, 40.0, patrol.Speed)
	assert.Equal(t, 32.0, patrol.Y)
}

func TestLoadLevelRequiresSpawn(t *testing.T) {
	_, err := LoadLevel(testFS(), "levels/nospawn.tmx")
	assert.ErrorIs(t, err, ErrNoSpawn)
}

func TestLoadAllLevels(t *testing.T) {
	fsys := fstest.MapFS{
		"levels/b.tmx": &fstest.MapFile{Data: []byte(testTMX)},
		"levels/a.tmx": &fstest.MapFile{Data: []byte(testTMX)},
	}
	levels, names, err := LoadAllLevels(fsys, "levels")
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b"}, names)
	assert.Len(t, levels, 2)

	_, _, err = LoadAllLevels(fstest.MapFS{}, "levels")
	assert.Error(t, err)
}
