package assets

import (
	"embed"
	"fmt"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/akshatshahh/team-30/shared/leveldata"
)

var (
	//go:embed all:levels
	levelFS embed.FS
)

// LevelsDir is the directory holding .tmx files inside the asset filesystem.
const LevelsDir = "levels"

// DefaultLevel is the level loaded when none is requested.
const DefaultLevel = "level1"

// Levels returns the embedded level filesystem.
func Levels() fs.FS {
	return levelFS
}

// LoadLevel loads a level by embedded name ("level1") or by a path to a .tmx
// file on disk.
func LoadLevel(nameOrPath string) (*leveldata.Level, error) {
	if nameOrPath == "" {
		nameOrPath = DefaultLevel
	}

	if strings.HasSuffix(nameOrPath, ".tmx") {
		if _, err := os.Stat(nameOrPath); err == nil {
			dir, file := path.Split(nameOrPath)
			if dir == "" {
				dir = "."
			}
			return leveldata.LoadLevel(os.DirFS(dir), file)
		}
	}

	name := strings.TrimSuffix(path.Base(nameOrPath), ".tmx")
	level, err := leveldata.LoadLevel(levelFS, path.Join(LevelsDir, name+".tmx"))
	if err != nil {
		return nil, fmt.Errorf("level %q: %w", nameOrPath, err)
	}
	return level, nil
}

// MustLoadLevel is LoadLevel for embedded levels that are known to exist.
func MustLoadLevel(name string) *leveldata.Level {
	level, err := LoadLevel(name)
	if err != nil {
		panic(err)
	}
	return level
}

// LevelNames lists the embedded levels.
func LevelNames() ([]string, error) {
	_, names, err := leveldata.LoadAllLevels(levelFS, LevelsDir)
	return names, err
}
