package category

import (
	"fmt"
	"os"
	"strings"

	"github.com/pelletier/go-toml/v2"

	"cutsort/internal/failure"
)

type tableFile struct {
	Name    string                 `toml:"name"`
	Sides   []string               `toml:"sides"`
	Folders map[string]folderEntry `toml:"folders"`
}

type folderEntry struct {
	Side     string `toml:"side"`
	PartType string `toml:"part_type"`
	Level    string `toml:"level"`
}

// LoadTable reads a product table from a TOML file:
//
//	name  = "CM09"
//	sides = ["LEFT", "RIGHT"]
//
//	[folders]
//	S01 = { side = "LEFT", part_type = "EXT_WALL", level = "LEVEL_1" }
//	st1 = { part_type = "ROOF" }
func LoadTable(path string) (*Model, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, failure.Wrap(failure.ErrConfiguration, "category", "read table", path, err)
	}
	var file tableFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, failure.Wrap(failure.ErrConfiguration, "category", "parse table", path, err)
	}
	return buildTable(path, file)
}

func buildTable(path string, file tableFile) (*Model, error) {
	name := strings.ToUpper(strings.TrimSpace(file.Name))
	if name == "" {
		return nil, failure.Wrap(failure.ErrConfiguration, "category", "parse table", path+": name must be set", nil)
	}
	if len(file.Folders) == 0 {
		return nil, failure.Wrap(failure.ErrConfiguration, "category", "parse table", path+": no folders defined", nil)
	}

	var sides []Side
	for _, raw := range file.Sides {
		side, err := parseSide(raw)
		if err != nil {
			return nil, failure.Wrap(failure.ErrConfiguration, "category", "parse table", path, err)
		}
		sides = append(sides, side)
	}

	table := make(map[string]Category, len(file.Folders))
	for folder, entry := range file.Folders {
		side, err := parseSide(entry.Side)
		if err != nil {
			return nil, failure.Wrap(failure.ErrConfiguration, "category", "parse table", fmt.Sprintf("%s: folder %q", path, folder), err)
		}
		level, err := parseLevel(entry.Level)
		if err != nil {
			return nil, failure.Wrap(failure.ErrConfiguration, "category", "parse table", fmt.Sprintf("%s: folder %q", path, folder), err)
		}
		partType := strings.TrimSpace(entry.PartType)
		if partType == "" {
			return nil, failure.Wrap(failure.ErrConfiguration, "category", "parse table", fmt.Sprintf("%s: folder %q: part_type must be set", path, folder), nil)
		}
		table[folder] = Category{Side: side, PartType: PartType(partType), Level: level}
	}
	return newModel(name, sides, table), nil
}

func parseSide(raw string) (Side, error) {
	switch side := Side(strings.ToUpper(strings.TrimSpace(raw))); side {
	case SideAbsent, SideLeft, SideCenter, SideRight:
		return side, nil
	default:
		return SideAbsent, fmt.Errorf("invalid side %q (use LEFT, CENTER, RIGHT or leave empty)", raw)
	}
}

func parseLevel(raw string) (Level, error) {
	switch level := Level(strings.ToUpper(strings.TrimSpace(raw))); level {
	case LevelAbsent, Level1, Level2, Level3:
		return level, nil
	default:
		return LevelAbsent, fmt.Errorf("invalid level %q (use LEVEL_1, LEVEL_2, LEVEL_3 or leave empty)", raw)
	}
}
