package routing

import (
	"path/filepath"

	"cutsort/internal/category"
	"cutsort/internal/cutlist"
)

// Input is everything a rule may look at.
type Input struct {
	Side      category.Side
	PartType  category.PartType
	Level     category.Level
	Dimension cutlist.Dimension
	// Parent is the name of the folder that contains the file.
	Parent string
}

func (in Input) level() string {
	if in.Level == category.LevelAbsent {
		return DefaultLevel
	}
	return string(in.Level)
}

// Destination is the outcome of Resolve.
type Destination struct {
	// Segments is the path below the destination root, side first when set.
	// Empty for a fallback.
	Segments []string
	// Rule names the matching rule; empty for a fallback.
	Rule string
	// Fallback is set when no rule matched.
	Fallback bool
	// Default is the caller's default folder, returned as-is on fallback.
	Default string
}

// Path joins the destination under root, or returns the default folder
// unchanged when no rule matched.
func (d Destination) Path(root string) string {
	if d.Fallback {
		return d.Default
	}
	return filepath.Join(append([]string{root}, d.Segments...)...)
}

// Relative returns the slash-separated segments, or "" for a fallback.
func (d Destination) Relative() string {
	if d.Fallback {
		return ""
	}
	return filepath.ToSlash(filepath.Join(d.Segments...))
}

// Resolver evaluates an ordered rule list.
type Resolver struct {
	rules []Rule
}

// NewResolver returns a resolver over rules, or the default table when none
// are given.
func NewResolver(rules ...Rule) *Resolver {
	if len(rules) == 0 {
		rules = DefaultRules()
	}
	cp := make([]Rule, len(rules))
	copy(cp, rules)
	return &Resolver{rules: cp}
}

// Rules returns a copy of the rule list in evaluation order.
func (r *Resolver) Rules() []Rule {
	cp := make([]Rule, len(r.rules))
	copy(cp, r.rules)
	return cp
}

// Resolve returns the destination of the first rule matching in, or a
// fallback carrying defaultFolder.
func (r *Resolver) Resolve(in Input, defaultFolder string) Destination {
	for _, rule := range r.rules {
		if !rule.Matches(in) {
			continue
		}
		segs := rule.Build(in)
		if in.Side != category.SideAbsent {
			segs = append([]string{string(in.Side)}, segs...)
		}
		return Destination{Segments: segs, Rule: rule.Name}
	}
	return Destination{Fallback: true, Default: defaultFolder}
}
