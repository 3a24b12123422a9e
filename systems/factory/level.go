package factory

import (
	"fmt"

	"github.com/akshatshahh/team-30/archetypes"
	"github.com/akshatshahh/team-30/components"
	cfg "github.com/akshatshahh/team-30/config"
	"github.com/akshatshahh/team-30/shared/leveldata"
	"github.com/charmbracelet/log"
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/ecs"
)

// CreateLevel builds the collision space and every body described by level,
// then spawns the player at the level's spawn point. It returns the player.
func CreateLevel(ecs *ecs.ECS, name string, level *leveldata.Level, opts PlayerOptions) (*donburi.Entry, error) {
	if level == nil {
		return nil, fmt.Errorf("create level %q: no level data", name)
	}

	levelEntry := archetypes.Level.Spawn(ecs)
	components.Level.Set(levelEntry, &components.LevelData{
		Name:         name,
		CurrentLevel: level,
	})

	// Leave headroom above the map so jumps and flights stay inside the space.
	CreateSpace(ecs, level.Width, level.Height+cfg.C.Height, cfg.Physics.CellSize, cfg.Physics.CellSize)

	for _, r := range level.Ground {
		CreateGround(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, spawn := range level.Enemies {
		CreateEnemy(ecs, spawn)
	}
	for _, r := range level.FinishZones {
		CreateFinishZone(ecs, r.X, r.Y, r.W, r.H)
	}
	for _, z := range level.LoseZones {
		CreateLoseZone(ecs, z.X, z.Y, z.W, z.H, z.Reason)
	}

	player, err := CreatePlayer(ecs, level.PlayerSpawn.X, level.PlayerSpawn.Y, opts)
	if err != nil {
		return nil, fmt.Errorf("create level %q: %w", name, err)
	}
	CreateCamera(ecs, level.PlayerSpawn.X, level.PlayerSpawn.Y)

	log.Debug("level created", "level", name,
		"ground", len(level.Ground), "enemies", len(level.Enemies),
		"finish", len(level.FinishZones), "lose", len(level.LoseZones))
	return player, nil
}
