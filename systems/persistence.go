package systems

import (
	"encoding/json"

	"github.com/charmbracelet/log"
	"github.com/quasilyte/gdata"
)

// SavedProgress is the player's progress kept between sessions.
type SavedProgress struct {
	Wins      int                `json:"wins"`
	Losses    int                `json:"losses"`
	BestTimes map[string]float64 `json:"bestTimes"` // seconds, by level
	LastShape string             `json:"lastShape"`
	LastLevel string             `json:"lastLevel"`
}

const progressKey = "progress"

var gdataManager *gdata.Manager
var gdataInitialized bool

// InitPersistence initializes the gdata manager for progress storage
func InitPersistence(appName string) error {
	m, err := gdata.Open(gdata.Config{
		AppName: appName,
	})
	if err != nil {
		log.Warn("could not initialize persistence", "err", err)
		return err
	}
	gdataManager = m
	gdataInitialized = true
	return nil
}

// LoadProgress loads progress from disk. It returns empty progress when
// persistence is unavailable or nothing was saved yet.
func LoadProgress() (*SavedProgress, error) {
	progress := &SavedProgress{BestTimes: map[string]float64{}}
	if !gdataInitialized || gdataManager == nil {
		return progress, nil
	}

	data, err := gdataManager.LoadItem(progressKey)
	if err != nil {
		log.Warn("could not load progress", "err", err)
		return progress, nil
	}
	if len(data) == 0 {
		return progress, nil
	}

	if err := json.Unmarshal(data, progress); err != nil {
		log.Warn("could not parse saved progress", "err", err)
		return &SavedProgress{BestTimes: map[string]float64{}}, err
	}
	if progress.BestTimes == nil {
		progress.BestTimes = map[string]float64{}
	}
	return progress, nil
}

// SaveProgress saves progress to disk
func SaveProgress(p *SavedProgress) error {
	if !gdataInitialized || gdataManager == nil || p == nil {
		return nil
	}

	data, err := json.Marshal(p)
	if err != nil {
		log.Warn("could not serialize progress", "err", err)
		return err
	}

	if err := gdataManager.SaveItem(progressKey, data); err != nil {
		log.Warn("could not save progress", "err", err)
		return err
	}
	return nil
}

// Record folds one finished run into the progress.
func (p *SavedProgress) Record(level, shape string, won bool, elapsed float64) {
	if p.BestTimes == nil {
		p.BestTimes = map[string]float64{}
	}
	p.LastLevel = level
	if shape != "" {
		p.LastShape = shape
	}
	if !won {
		p.Losses++
		return
	}
	p.Wins++
	if best, ok := p.BestTimes[level]; !ok || elapsed < best {
		p.BestTimes[level] = elapsed
	}
}
