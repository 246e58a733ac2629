package routing

import (
	"strconv"

	"cutsort/internal/category"
)

// DefaultLevel replaces an absent level in destination paths.
const DefaultLevel = "DEFAULT_LEVEL"

// Rule pairs a predicate with the path segments it produces.
type Rule struct {
	Name     string
	PartType category.PartType
	Level    LevelMatch
	Dim      DimMatch
	// Template is the human-readable form of Build, used for listings.
	Template string
	Build    func(in Input) []string
}

// Matches reports whether the rule claims in.
func (r Rule) Matches(in Input) bool {
	return in.PartType == r.PartType && r.Level.matches(in.Level) && r.Dim.matches(in.Dimension)
}

func segments(parts ...string) []string { return parts }

// DefaultRules returns the production rule table in evaluation order.
func DefaultRules() []Rule {
	return []Rule{
		{
			Name:     "ext-wall-batten",
			PartType: category.ExtWall,
			Level:    AnyLevel(),
			Dim:      DimIs(dim(28, 70), dim(45, 45)),
			Template: "BATTEN/EXT_WALL/{level}/{dim}/BATTEN",
			Build: func(in Input) []string {
				return segments("BATTEN", "EXT_WALL", in.level(), in.Dimension.String(), "BATTEN")
			},
		},
		{
			Name:     "floor-batten",
			PartType: category.Floor,
			Level:    AnyLevel(),
			Dim:      DimIs(dim(28, 70)),
			Template: "BATTEN/FLOOR/{level}/{parent}/BATTEN",
			Build: func(in Input) []string {
				return segments("BATTEN", "FLOOR", in.level(), in.Parent, "BATTEN")
			},
		},
		{
			Name:     "roof-batten",
			PartType: category.Roof,
			Level:    AnyLevel(),
			Dim:      DimIs(dim(28, 70), dim(45, 45)),
			Template: "BATTEN/ROOF/{dim}/{parent}/BATTEN",
			Build: func(in Input) []string {
				return segments("BATTEN", "ROOF", in.Dimension.String(), in.Parent, "BATTEN")
			},
		},
		{
			Name:     "roof-raspant",
			PartType: category.Roof,
			Level:    AnyLevel(),
			Dim:      HeightIs(20),
			Template: "BATTEN/ROOF/RASPANT/{parent}",
			Build: func(in Input) []string {
				return segments("BATTEN", "ROOF", "RASPANT", in.Parent)
			},
		},
		{
			Name:     "ext-wall-cladding",
			PartType: category.ExtWall,
			Level:    AnyLevel(),
			Dim:      DimIs(dim(21, 145)),
			Template: "CLADDING/EXT_WALL/{parent}/4.8m",
			Build: func(in Input) []string {
				return segments("CLADDING", "EXT_WALL", in.Parent, "4.8m")
			},
		},
		{
			Name:     "ext-wall-frame",
			PartType: category.ExtWall,
			Level:    AnyLevel(),
			Dim:      DimIs(dim(45, 195)),
			Template: "FRAME/EXT_WALL/{parent}/FRAME",
			Build: func(in Input) []string {
				return segments("FRAME", "EXT_WALL", in.Parent, "FRAME")
			},
		},
		{
			Name:     "floor-frame",
			PartType: category.Floor,
			Level:    AnyLevel(),
			Dim:      DimIs(dim(45, 220)),
			Template: "FRAME/FLOOR/{level}/{parent}/FRAME",
			Build: func(in Input) []string {
				return segments("FRAME", "FLOOR", in.level(), in.Parent, "FRAME")
			},
		},
		{
			Name:     "int-wall-frame",
			PartType: category.IntWall,
			Level:    AnyLevel(),
			Dim:      AnyDim(),
			Template: "FRAME/INT_WALL/{dim}/{level}/{parent}/FRAME",
			Build: func(in Input) []string {
				return segments("FRAME", "INT_WALL", in.Dimension.String(), in.level(), in.Parent, "FRAME")
			},
		},
		{
			Name:     "lgha-frame",
			PartType: category.LGHA,
			Level:    AnyLevel(),
			Dim:      AnyDim(),
			Template: "FRAME/LGHA/{parent}/FRAME",
			Build: func(in Input) []string {
				return segments("FRAME", "LGHA", in.Parent, "FRAME")
			},
		},
		{
			Name:     "roof-beam",
			PartType: category.Roof,
			Level:    AnyLevel(),
			Dim:      DimIs(dim(45, 145), dim(45, 245)),
			Template: "FRAME/ROOF/{dim}/{parent}/BEAM",
			Build: func(in Input) []string {
				return segments("FRAME", "ROOF", in.Dimension.String(), in.Parent, "BEAM")
			},
		},
		{
			Name:     "roof-top-batten",
			PartType: category.Roof,
			Level:    AnyLevel(),
			Dim:      AnyDim(),
			Template: "FRAME/ROOF/TOP_BOTTEN/{parent}/TOP_BOTTEN",
			Build: func(in Input) []string {
				return segments("FRAME", "ROOF", "TOP_BOTTEN", in.Parent, "TOP_BOTTEN")
			},
		},
	}
}

func itoa(n int) string { return strconv.Itoa(n) }
