package category

import (
	"fmt"
	"sort"
	"strings"

	"cutsort/internal/failure"
)

// Side is the left/center/right subdivision of a multi-unit product.
type Side string

const (
	SideAbsent Side = ""
	SideLeft   Side = "LEFT"
	SideCenter Side = "CENTER"
	SideRight  Side = "RIGHT"
)

// PartType is the structural category of a component. The set is open; the
// constants are the types the routing rules know about.
type PartType string

const (
	ExtWall PartType = "EXT_WALL"
	Floor   PartType = "FLOOR"
	IntWall PartType = "INT_WALL"
	Roof    PartType = "ROOF"
	LGHA    PartType = "LGHA"
)

// Level is the building story a part belongs to.
type Level string

const (
	LevelAbsent Level = ""
	Level1      Level = "LEVEL_1"
	Level2      Level = "LEVEL_2"
	Level3      Level = "LEVEL_3"
)

// Category is the static attribute set of a source folder.
type Category struct {
	Side     Side
	PartType PartType
	Level    Level
}

func (c Category) String() string {
	return fmt.Sprintf("(%s, %s, %s)", orNone(string(c.Side)), orNone(string(c.PartType)), orNone(string(c.Level)))
}

func orNone(v string) string {
	if v == "" {
		return "-"
	}
	return v
}

// UnknownCategoryError reports a folder missing from the product table.
type UnknownCategoryError struct {
	Model  string
	Folder string
}

func (e *UnknownCategoryError) Error() string {
	return fmt.Sprintf("folder %q has no category in product table %s", e.Folder, e.Model)
}

// Is lets callers match any UnknownCategoryError with failure.ErrUnknownCategory.
func (e *UnknownCategoryError) Is(target error) bool { return target == failure.ErrUnknownCategory }

// Model is one product's folder table.
type Model struct {
	name  string
	sides []Side
	table map[string]Category
}

func newModel(name string, sides []Side, table map[string]Category) *Model {
	return &Model{name: name, sides: sides, table: table}
}

// Name returns the product model name, e.g. "CM06".
func (m *Model) Name() string { return m.name }

// Sides returns the sides the product is split into; nil for single-unit products.
func (m *Model) Sides() []Side {
	if len(m.sides) == 0 {
		return nil
	}
	out := make([]Side, len(m.sides))
	copy(out, m.sides)
	return out
}

// Len returns the number of folders in the table.
func (m *Model) Len() int { return len(m.table) }

// Lookup returns the category configured for folder. The match is exact.
func (m *Model) Lookup(folder string) (Category, error) {
	cat, ok := m.table[folder]
	if !ok {
		return Category{}, &UnknownCategoryError{Model: m.name, Folder: folder}
	}
	return cat, nil
}

// Folders returns every folder name in the table, sorted.
func (m *Model) Folders() []string {
	names := make([]string, 0, len(m.table))
	for name := range m.table {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

var builtin = map[string]*Model{
	"CM03": cm03,
	"CM06": cm06,
}

// ByName returns the built-in model with the given name (case-insensitive).
func ByName(name string) (*Model, error) {
	m, ok := builtin[strings.ToUpper(strings.TrimSpace(name))]
	if !ok {
		return nil, failure.Wrap(failure.ErrConfiguration, "category", "select model", fmt.Sprintf("unknown product model %q (known: %s)", name, strings.Join(Names(), ", ")), nil)
	}
	return m, nil
}

// Names lists the built-in model names, sorted.
func Names() []string {
	names := make([]string, 0, len(builtin))
	for name := range builtin {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
