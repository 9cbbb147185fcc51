package config

import (
	_ "embed"
	"errors"
	"fmt"
	"io/fs"
	"log"
	"os"

	"gopkg.in/yaml.v3"
)

// LevelTuningPath is checked on disk before falling back to the embedded copy
const LevelTuningPath = "config/levels.yaml"

//go:embed levels.yaml
var embeddedLevelTuning []byte

// LevelCamera describes the hand-tuned follow behavior of one level.
// FollowMaxX of zero means the camera follows the player across the whole level.
type LevelCamera struct {
	OffsetX      float64 `yaml:"offset_x"`
	FollowMaxX   float64 `yaml:"follow_max_x"`
	FixedY       float64 `yaml:"fixed_y"`
	FollowY      bool    `yaml:"follow_y"`
	FollowYBelow float64 `yaml:"follow_y_below"`
	OffsetY      float64 `yaml:"offset_y"`
}

type LevelTuning struct {
	Name          string      `yaml:"name"`
	FallThreshold float64     `yaml:"fall_threshold"`
	Camera        LevelCamera `yaml:"camera"`
}

type levelTuningFile struct {
	Defaults LevelTuning   `yaml:"defaults"`
	Levels   []LevelTuning `yaml:"levels"`
}

var levelTuning levelTuningFile

func init() {
	if err := ReloadLevelTuning(); err != nil {
		panic(err)
	}
}

// ParseLevelTuning decodes a tuning document
func ParseLevelTuning(data []byte) (levelTuningFile, error) {
	var file levelTuningFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return levelTuningFile{}, fmt.Errorf("config: unmarshal level tuning: %w", err)
	}
	for i, lvl := range file.Levels {
		if lvl.Name == "" {
			return levelTuningFile{}, fmt.Errorf("config: level tuning entry %d has no name", i)
		}
	}
	return file, nil
}

// ReloadLevelTuning reads the disk override if present, otherwise the embedded tuning.
// On a parse error the previous tuning stays active.
func ReloadLevelTuning() error {
	data, err := os.ReadFile(LevelTuningPath)
	switch {
	case err == nil:
	case errors.Is(err, fs.ErrNotExist):
		data = embeddedLevelTuning
	default:
		return fmt.Errorf("config: read %s: %w", LevelTuningPath, err)
	}

	file, err := ParseLevelTuning(data)
	if err != nil {
		return err
	}
	levelTuning = file
	return nil
}

// SetLevelTuning replaces the active tuning, mostly for tests
func SetLevelTuning(defaults LevelTuning, levels ...LevelTuning) {
	levelTuning = levelTuningFile{Defaults: defaults, Levels: levels}
}

// LevelFor returns the tuning for a level name, falling back to the defaults
func LevelFor(name string) LevelTuning {
	for _, lvl := range levelTuning.Levels {
		if lvl.Name == name {
			return lvl
		}
	}
	log.Printf("No tuning for level %q, using defaults", name)
	t := levelTuning.Defaults
	t.Name = name
	return t
}

// LevelName returns the map name for a 1-based level number
func LevelName(level int) string {
	if level < 1 || level > len(Session.Levels) {
		return ""
	}
	return Session.Levels[level-1]
}
