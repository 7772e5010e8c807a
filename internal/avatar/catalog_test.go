package avatar

import (
	"regexp"
	"testing"
)

var hexColor = regexp.MustCompile(`^#[0-9A-F]{6}$`)

func TestCatalogSizes(t *testing.T) {
	tests := []struct {
		name string
		got  int
		want int
	}{
		{"hair styles", HairStyles.Len(), 12},
		{"shirt styles", ShirtStyles.Len(), 6},
		{"pants styles", PantsStyles.Len(), 4},
		{"accessories", Accessories.Len(), 15},
		{"poses", Poses.Len(), 6},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s: %d entries, want %d", tt.name, tt.got, tt.want)
		}
	}
}

func TestCatalogFallbacksMatchDefaultCharacter(t *testing.T) {
	d := DefaultCharacter
	tests := []struct {
		name string
		got  string
		want string
	}{
		{"skin", SkinTones.Default().ID, d.SkinTone},
		{"hair color", HairColors.Default().ID, d.HairColor},
		{"shirt color", ShirtColors.Default().ID, d.ShirtColor},
		{"pants color", PantsColors.Default().ID, d.PantsColor},
		{"shoe color", ShoeColors.Default().ID, d.ShoeColor},
		{"hair style", HairStyles.Default().ID, d.HairStyle},
		{"shirt style", ShirtStyles.Default().ID, d.ShirtStyle},
		{"pants style", PantsStyles.Default().ID, d.PantsStyle},
		{"accessory", Accessories.Default().ID, d.Accessory},
		{"pose", Poses.Default().ID, d.Pose},
	}
	for _, tt := range tests {
		if tt.got != tt.want {
			t.Errorf("%s fallback = %q, want %q", tt.name, tt.got, tt.want)
		}
	}
}

func TestColorCatalogFallbackAtIndexOne(t *testing.T) {
	for name, c := range map[string]*Catalog[Palette]{
		"skin": SkinTones, "hair": HairColors, "shirt": ShirtColors, "pants": PantsColors, "shoes": ShoeColors,
	} {
		if c.All()[1] != c.Default() {
			t.Errorf("%s: fallback %q is not at index 1", name, c.Default().ID)
		}
	}
}

func TestPaletteColorsAreHex(t *testing.T) {
	for _, c := range []*Catalog[Palette]{SkinTones, HairColors, ShirtColors, PantsColors, ShoeColors} {
		for _, p := range c.All() {
			for _, col := range []Color{p.Base, p.Shadow, p.Highlight, p.Midtone} {
				if !hexColor.MatchString(string(col)) {
					t.Errorf("%s: bad color %q", p.ID, col)
				}
			}
		}
	}
}

func TestResolveOrDefault(t *testing.T) {
	if got := HairColors.ResolveOrDefault("blonde"); got.ID != "blonde" {
		t.Errorf("known id resolved to %q", got.ID)
	}
	if got := HairColors.ResolveOrDefault("nonexistent_color"); got != HairColors.Default() {
		t.Errorf("unknown id resolved to %q, want fallback", got.ID)
	}
	if got := Poses.ResolveOrDefault(""); got.ID != PoseIdle {
		t.Errorf("empty pose resolved to %q", got.ID)
	}
	if _, ok := Accessories.Lookup("monocle"); ok {
		t.Error("Lookup found an unknown id")
	}
}

func TestCatalogAllReturnsCopy(t *testing.T) {
	all := Poses.All()
	all[0].ID = "mutated"
	if Poses.All()[0].ID == "mutated" {
		t.Error("All exposed the backing slice")
	}
}

func TestNewCatalogPanics(t *testing.T) {
	tests := []struct {
		name     string
		fallback string
		entries  []Option
	}{
		{"duplicate", "a", []Option{{ID: "a"}, {ID: "a"}}},
		{"missing fallback", "z", []Option{{ID: "a"}, {ID: "b"}}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			defer func() {
				if recover() == nil {
					t.Error("expected panic")
				}
			}()
			newCatalog(tt.fallback, tt.entries...)
		})
	}
}

func TestCatalogStep(t *testing.T) {
	tests := []struct {
		id    string
		delta int
		want  string
	}{
		{PoseIdle, 1, PoseWaving},
		{PoseKarate, 1, PoseIdle},
		{PoseIdle, -1, PoseKarate},
		{PoseWaving, -1, PoseIdle},
		{PoseRobot, Poses.Len(), PoseRobot},
		{"moonwalk", 1, PoseWaving},
		{"moonwalk", 0, PoseIdle},
	}
	for _, tt := range tests {
		if got := Poses.Step(tt.id, tt.delta); got != tt.want {
			t.Errorf("Step(%q, %d) = %q, want %q", tt.id, tt.delta, got, tt.want)
		}
	}
}
