package category_test

import (
	"errors"
	"path/filepath"
	"sort"
	"strings"
	"testing"

	"cutsort/internal/category"
	"cutsort/internal/failure"
	"cutsort/internal/testsupport"
)

func TestLookupCM06(t *testing.T) {
	model, err := category.ByName("cm06")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	if model.Name() != "CM06" {
		t.Fatalf("unexpected model name %q", model.Name())
	}
	if model.Sides() != nil {
		t.Fatalf("CM06 should have no sides, got %v", model.Sides())
	}

	tests := []struct {
		folder string
		want   category.Category
	}{
		{"S01", category.Category{PartType: category.ExtWall, Level: category.Level1}},
		{"S(2)13", category.Category{PartType: category.ExtWall, Level: category.Level2}},
		{"P3", category.Category{PartType: category.Floor}},
		{"S29", category.Category{PartType: category.IntWall, Level: category.Level1}},
		{"st10", category.Category{PartType: category.Roof}},
	}
	for _, tt := range tests {
		got, err := model.Lookup(tt.folder)
		if err != nil {
			t.Fatalf("Lookup(%q): %v", tt.folder, err)
		}
		if got != tt.want {
			t.Fatalf("Lookup(%q) = %v, want %v", tt.folder, got, tt.want)
		}
	}
}

func TestLookupCM03Sides(t *testing.T) {
	model, err := category.ByName("CM03")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	got, err := model.Lookup("KS(2)30")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got.Side != category.SideLeft || got.Level != category.Level3 {
		t.Fatalf("unexpected category %v", got)
	}
	lgha, err := model.Lookup("CS01")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if lgha != (category.Category{Side: category.SideRight, PartType: category.LGHA, Level: category.Level1}) {
		t.Fatalf("unexpected category %v", lgha)
	}
	if len(model.Sides()) != 3 {
		t.Fatalf("expected three sides, got %v", model.Sides())
	}
}

func TestLookupUnknownFolder(t *testing.T) {
	model, err := category.ByName("CM06")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	_, err = model.Lookup("s01")
	var unknown *category.UnknownCategoryError
	if !errors.As(err, &unknown) {
		t.Fatalf("expected UnknownCategoryError, got %v", err)
	}
	if unknown.Folder != "s01" || unknown.Model != "CM06" {
		t.Fatalf("unexpected error fields %+v", unknown)
	}
	if !errors.Is(err, failure.ErrUnknownCategory) {
		t.Fatal("expected failure.ErrUnknownCategory match")
	}
}

func TestFoldersSortedAndDetached(t *testing.T) {
	model, err := category.ByName("CM06")
	if err != nil {
		t.Fatalf("ByName: %v", err)
	}
	folders := model.Folders()
	if len(folders) != model.Len() {
		t.Fatalf("Folders() returned %d names, Len() = %d", len(folders), model.Len())
	}
	if !sort.StringsAreSorted(folders) {
		t.Fatal("expected sorted folder names")
	}
	folders[0] = "MUTATED"
	if _, err := model.Lookup("MUTATED"); err == nil {
		t.Fatal("mutating Folders() result must not change the table")
	}
}

func TestByNameUnknown(t *testing.T) {
	_, err := category.ByName("CM99")
	if !errors.Is(err, failure.ErrConfiguration) {
		t.Fatalf("expected configuration error, got %v", err)
	}
	if !strings.Contains(err.Error(), "CM03") {
		t.Fatalf("expected known models in message, got %q", err.Error())
	}
}

func TestLoadTable(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cm09.toml")
	testsupport.WriteText(t, path, `name = "cm09"
sides = ["left", "RIGHT"]

[folders]
S01 = { side = "LEFT", part_type = "EXT_WALL", level = "level_1" }
st1 = { part_type = "ROOF" }
`)

	model, err := category.LoadTable(path)
	if err != nil {
		t.Fatalf("LoadTable: %v", err)
	}
	if model.Name() != "CM09" || model.Len() != 2 {
		t.Fatalf("unexpected model %s with %d folders", model.Name(), model.Len())
	}
	got, err := model.Lookup("S01")
	if err != nil {
		t.Fatalf("Lookup: %v", err)
	}
	if got != (category.Category{Side: category.SideLeft, PartType: category.ExtWall, Level: category.Level1}) {
		t.Fatalf("unexpected category %v", got)
	}
	roof, _ := model.Lookup("st1")
	if roof.Side != category.SideAbsent || roof.Level != category.LevelAbsent {
		t.Fatalf("expected absent side and level, got %v", roof)
	}
}

func TestLoadTableRejectsInvalidEntries(t *testing.T) {
	tests := map[string]string{
		"missing name":  "[folders]\nS01 = { part_type = \"FLOOR\" }\n",
		"no folders":    "name = \"X\"\n",
		"bad side":      "name = \"X\"\n[folders]\nS01 = { side = \"UP\", part_type = \"FLOOR\" }\n",
		"bad level":     "name = \"X\"\n[folders]\nS01 = { part_type = \"FLOOR\", level = \"LEVEL_9\" }\n",
		"no part type":  "name = \"X\"\n[folders]\nS01 = { level = \"LEVEL_1\" }\n",
		"invalid toml":  "name = \n",
		"bad sides key": "name = \"X\"\nsides = [\"TOP\"]\n[folders]\nS01 = { part_type = \"FLOOR\" }\n",
	}
	for name, content := range tests {
		t.Run(name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "table.toml")
			testsupport.WriteText(t, path, content)
			if _, err := category.LoadTable(path); !errors.Is(err, failure.ErrConfiguration) {
				t.Fatalf("expected configuration error, got %v", err)
			}
		})
	}
}
