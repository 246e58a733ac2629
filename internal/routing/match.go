package routing

import (
	"cutsort/internal/category"
	"cutsort/internal/cutlist"
)

// LevelMatch selects a level. The zero value matches any level.
type LevelMatch struct {
	Exact category.Level
	set   bool
}

// AnyLevel matches every level, including an absent one.
func AnyLevel() LevelMatch { return LevelMatch{} }

// LevelIs matches one level exactly.
func LevelIs(level category.Level) LevelMatch { return LevelMatch{Exact: level, set: true} }

func (m LevelMatch) matches(level category.Level) bool {
	return !m.set || m.Exact == level
}

func (m LevelMatch) String() string {
	if !m.set {
		return "any"
	}
	if m.Exact == category.LevelAbsent {
		return "none"
	}
	return string(m.Exact)
}

// DimMatch selects dimensions: any, a list of exact pairs, or a fixed height
// with any width.
type DimMatch struct {
	pairs  []cutlist.Dimension
	height *int
	label  string
}

// AnyDim matches every dimension.
func AnyDim() DimMatch { return DimMatch{label: "any"} }

// DimIs matches any of the listed (height, width) pairs.
func DimIs(dims ...cutlist.Dimension) DimMatch {
	label := ""
	for i, d := range dims {
		if i > 0 {
			label += " or "
		}
		label += "(" + itoa(d.Height) + "," + itoa(d.Width) + ")"
	}
	return DimMatch{pairs: dims, label: label}
}

// HeightIs matches a fixed height with any width.
func HeightIs(height int) DimMatch {
	h := height
	return DimMatch{height: &h, label: "(" + itoa(height) + ",*)"}
}

func (m DimMatch) matches(d cutlist.Dimension) bool {
	if m.height != nil {
		return d.Height == *m.height
	}
	if len(m.pairs) == 0 {
		return true
	}
	for _, p := range m.pairs {
		if p == d {
			return true
		}
	}
	return false
}

func (m DimMatch) String() string { return m.label }

func dim(h, w int) cutlist.Dimension { return cutlist.Dimension{Height: h, Width: w} }
