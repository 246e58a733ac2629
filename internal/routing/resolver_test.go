package routing_test

import (
	"path/filepath"
	"testing"

	"cutsort/internal/category"
	"cutsort/internal/cutlist"
	"cutsort/internal/routing"
)

func dim(h, w int) cutlist.Dimension { return cutlist.Dimension{Height: h, Width: w} }

func TestResolveRuleTable(t *testing.T) {
	r := routing.NewResolver()
	tests := []struct {
		name string
		in   routing.Input
		want string
		rule string
	}{
		{"ext wall batten 28x70", routing.Input{PartType: category.ExtWall, Level: category.Level1, Dimension: dim(28, 70), Parent: "S01"}, "BATTEN/EXT_WALL/LEVEL_1/28x70/BATTEN", "ext-wall-batten"},
		{"ext wall batten 45x45 no level", routing.Input{PartType: category.ExtWall, Dimension: dim(45, 45), Parent: "S01"}, "BATTEN/EXT_WALL/DEFAULT_LEVEL/45x45/BATTEN", "ext-wall-batten"},
		{"floor batten", routing.Input{PartType: category.Floor, Level: category.Level2, Dimension: dim(28, 70), Parent: "G02"}, "BATTEN/FLOOR/LEVEL_2/G02/BATTEN", "floor-batten"},
		{"roof batten", routing.Input{PartType: category.Roof, Dimension: dim(45, 45), Parent: "R01"}, "BATTEN/ROOF/45x45/R01/BATTEN", "roof-batten"},
		{"roof raspant", routing.Input{PartType: category.Roof, Dimension: dim(20, 95), Parent: "R01"}, "BATTEN/ROOF/RASPANT/R01", "roof-raspant"},
		{"ext wall cladding", routing.Input{PartType: category.ExtWall, Level: category.Level1, Dimension: dim(21, 145), Parent: "S02"}, "CLADDING/EXT_WALL/S02/4.8m", "ext-wall-cladding"},
		{"ext wall frame", routing.Input{PartType: category.ExtWall, Dimension: dim(45, 195), Parent: "S02"}, "FRAME/EXT_WALL/S02/FRAME", "ext-wall-frame"},
		{"floor frame", routing.Input{PartType: category.Floor, Dimension: dim(45, 220), Parent: "G01"}, "FRAME/FLOOR/DEFAULT_LEVEL/G01/FRAME", "floor-frame"},
		{"int wall frame", routing.Input{PartType: category.IntWall, Level: category.Level3, Dimension: dim(45, 95), Parent: "V01"}, "FRAME/INT_WALL/45x95/LEVEL_3/V01/FRAME", "int-wall-frame"},
		{"lgha frame", routing.Input{PartType: category.LGHA, Dimension: dim(10, 20), Parent: "S03"}, "FRAME/LGHA/S03/FRAME", "lgha-frame"},
		{"roof beam 45x145", routing.Input{PartType: category.Roof, Dimension: dim(45, 145), Parent: "R02"}, "FRAME/ROOF/45x145/R02/BEAM", "roof-beam"},
		{"roof beam 45x245", routing.Input{PartType: category.Roof, Dimension: dim(45, 245), Parent: "R02"}, "FRAME/ROOF/45x245/R02/BEAM", "roof-beam"},
		{"roof top batten", routing.Input{PartType: category.Roof, Dimension: dim(45, 70), Parent: "R03"}, "FRAME/ROOF/TOP_BOTTEN/R03/TOP_BOTTEN", "roof-top-batten"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := r.Resolve(tt.in, "/default")
			if got.Fallback {
				t.Fatalf("unexpected fallback for %+v", tt.in)
			}
			if got.Relative() != tt.want {
				t.Fatalf("destination = %q, want %q", got.Relative(), tt.want)
			}
			if got.Rule != tt.rule {
				t.Fatalf("rule = %q, want %q", got.Rule, tt.rule)
			}
		})
	}
}

func TestResolveSidePrefixesSegments(t *testing.T) {
	r := routing.NewResolver()
	got := r.Resolve(routing.Input{Side: category.SideLeft, PartType: category.LGHA, Dimension: dim(45, 95), Parent: "S03"}, "/default")
	if want := filepath.Join("/dest", "LEFT", "FRAME", "LGHA", "S03", "FRAME"); got.Path("/dest") != want {
		t.Fatalf("path = %q, want %q", got.Path("/dest"), want)
	}
}

func TestResolveFallbackReturnsDefaultUnmodified(t *testing.T) {
	r := routing.NewResolver()
	cases := []routing.Input{
		{PartType: category.ExtWall, Dimension: dim(45, 95)},
		{PartType: category.Floor, Dimension: dim(45, 45)},
		{Side: category.SideRight, PartType: "STAIR", Dimension: dim(28, 70)},
		{Side: category.SideLeft, PartType: "EXT-WALL", Level: category.Level1, Dimension: dim(28, 70)},
	}
	for _, in := range cases {
		got := r.Resolve(in, "/work/default")
		if !got.Fallback {
			t.Fatalf("expected fallback for %+v, got %q", in, got.Relative())
		}
		if got.Path("/ignored") != "/work/default" {
			t.Fatalf("fallback path = %q, want /work/default", got.Path("/ignored"))
		}
		if got.Rule != "" || got.Relative() != "" {
			t.Fatalf("fallback carries rule data: %+v", got)
		}
	}
}

func TestExtWallBattenNeverFallsThrough(t *testing.T) {
	r := routing.NewResolver()
	levels := []category.Level{category.LevelAbsent, category.Level1, category.Level2, category.Level3}
	for _, level := range levels {
		got := r.Resolve(routing.Input{PartType: category.ExtWall, Level: level, Dimension: dim(28, 70), Parent: "S01"}, "/default")
		if got.Rule != "ext-wall-batten" {
			t.Fatalf("level %q: rule = %q, want ext-wall-batten", level, got.Rule)
		}
	}
}

func TestRoofRulesApplyInOrder(t *testing.T) {
	r := routing.NewResolver()
	// (20,70) satisfies both the raspant and top-batten predicates.
	got := r.Resolve(routing.Input{PartType: category.Roof, Dimension: dim(20, 70), Parent: "R01"}, "/default")
	if got.Rule != "roof-raspant" {
		t.Fatalf("rule = %q, want roof-raspant", got.Rule)
	}
	// (28,70) is claimed by the batten rule before the catch-all.
	got = r.Resolve(routing.Input{PartType: category.Roof, Dimension: dim(28, 70), Parent: "R01"}, "/default")
	if got.Rule != "roof-batten" {
		t.Fatalf("rule = %q, want roof-batten", got.Rule)
	}
}

func TestResolveIsPure(t *testing.T) {
	r := routing.NewResolver()
	in := routing.Input{Side: category.SideCenter, PartType: category.IntWall, Dimension: dim(45, 120), Parent: "V02"}
	first := r.Resolve(in, "/d").Path("/root")
	for i := 0; i < 3; i++ {
		if got := r.Resolve(in, "/d").Path("/root"); got != first {
			t.Fatalf("resolve changed between calls: %q vs %q", got, first)
		}
	}
}

func TestRulesReturnsDetachedCopy(t *testing.T) {
	r := routing.NewResolver()
	rules := r.Rules()
	if len(rules) != 11 {
		t.Fatalf("rule count = %d, want 11", len(rules))
	}
	rules[0] = routing.Rule{Name: "mutated"}
	if r.Rules()[0].Name != "ext-wall-batten" {
		t.Fatalf("Rules exposed internal slice")
	}
}

func TestCustomRuleList(t *testing.T) {
	only := routing.Rule{
		Name:     "everything",
		PartType: category.Floor,
		Level:    routing.LevelIs(category.Level1),
		Dim:      routing.AnyDim(),
		Build:    func(in routing.Input) []string { return []string{"ALL", in.Parent} },
	}
	r := routing.NewResolver(only)
	if got := r.Resolve(routing.Input{PartType: category.Floor, Level: category.Level1, Parent: "G01"}, "/d"); got.Relative() != "ALL/G01" {
		t.Fatalf("destination = %q, want ALL/G01", got.Relative())
	}
	if got := r.Resolve(routing.Input{PartType: category.Floor, Level: category.Level2, Parent: "G01"}, "/d"); !got.Fallback {
		t.Fatalf("exact level predicate matched another level")
	}
}
