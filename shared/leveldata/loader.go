package leveldata

import (
	"errors"
	"fmt"
	"io/fs"
	"path/filepath"
	"sort"
	"strings"

	"github.com/lafriks/go-tiled"
)

// Object group names read from TMX files
const (
	GroupGround      = "Ground"
	GroupEnemies     = "Enemies"
	GroupFinishZone  = "FinishZone"
	GroupLoseZone    = "LoseZone"
	GroupPlayerSpawn = "PlayerSpawn"
)

// ErrNoSpawn is returned when a level has no PlayerSpawn object.
var ErrNoSpawn = errors.New("level has no player spawn")

// LoadLevel parses a TMX file from fsys. It takes an fs.FS so callers can
// pass the embedded assets or os.DirFS for levels on disk.
func LoadLevel(fsys fs.FS, tmxPath string) (*Level, error) {
	levelMap, err := tiled.LoadFile(tmxPath, tiled.WithFileSystem(fsys))
	if err != nil {
		return nil, fmt.Errorf("load TMX %s: %w", tmxPath, err)
	}

	level := &Level{
		Name:   strings.TrimSuffix(filepath.Base(tmxPath), ".tmx"),
		Width:  levelMap.Width * levelMap.TileWidth,
		Height: levelMap.Height * levelMap.TileHeight,
	}
	mapH := float64(level.Height)

	spawnFound := false
	for _, og := range levelMap.ObjectGroups {
		switch og.Name {
		case GroupGround:
			for _, o := range og.Objects {
				level.Ground = append(level.Ground, toWorld(o, mapH))
			}
		case GroupEnemies:
			for _, o := range og.Objects {
				spawn := EnemySpawn{
					Rect:       toWorld(o, mapH),
					Speed:      o.Properties.GetFloat("speed"),
					WaitAtEdge: o.Properties.GetFloat("waitAtEdge"),
				}
				spawn.PatrolLeft = optionalFloat(o, "patrolLeft")
				spawn.PatrolRight = optionalFloat(o, "patrolRight")
				level.Enemies = append(level.Enemies, spawn)
			}
		case GroupFinishZone:
			for _, o := range og.Objects {
				level.FinishZones = append(level.FinishZones, toWorld(o, mapH))
			}
		case GroupLoseZone:
			for _, o := range og.Objects {
				level.LoseZones = append(level.LoseZones, LoseZone{
					Rect:   toWorld(o, mapH),
					Reason: o.Properties.GetString("reason"),
				})
			}
		case GroupPlayerSpawn:
			if len(og.Objects) > 0 {
				o := og.Objects[0]
				level.PlayerSpawn = Point{X: o.X, Y: mapH - o.Y}
				spawnFound = true
			}
		}
	}

	if !spawnFound {
		return nil, fmt.Errorf("%s: %w", tmxPath, ErrNoSpawn)
	}

	// Sort for deterministic world construction
	sort.Slice(level.Enemies, func(i, j int) bool {
		return level.Enemies[i].X < level.Enemies[j].X
	})

	return level, nil
}

// LoadAllLevels discovers all .tmx files in levelsDir within fsys and returns
// them keyed by stem name plus a sorted list of names.
func LoadAllLevels(fsys fs.FS, levelsDir string) (map[string]*Level, []string, error) {
	pattern := levelsDir + "/*.tmx"
	matches, err := fs.Glob(fsys, pattern)
	if err != nil {
		return nil, nil, fmt.Errorf("glob %s: %w", pattern, err)
	}
	if len(matches) == 0 {
		return nil, nil, fmt.Errorf("no .tmx files found in %s", levelsDir)
	}

	levels := make(map[string]*Level, len(matches))
	names := make([]string, 0, len(matches))

	for _, path := range matches {
		data, err := LoadLevel(fsys, path)
		if err != nil {
			return nil, nil, fmt.Errorf("load %s: %w", path, err)
		}
		levels[data.Name] = data
		names = append(names, data.Name)
	}

	sort.Strings(names)
	return levels, names, nil
}

// toWorld converts a Tiled rectangle (top-left origin, y down) to world space.
func toWorld(o *tiled.Object, mapH float64) Rect {
	return Rect{
		X: o.X,
		Y: mapH - (o.Y + o.Height),
		W: o.Width,
		H: o.Height,
	}
}

func optionalFloat(o *tiled.Object, name string) *float64 {
	if o.Properties.GetString(name) == "" {
		return nil
	}
	v := o.Properties.GetFloat(name)
	return &v
}
