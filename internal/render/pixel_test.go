package render

import (
	"testing"

	"pixel-avatar/internal/avatar"
)

func TestParseColor(t *testing.T) {
	tests := []struct {
		in   avatar.Color
		want Pixel
	}{
		{"#FF0000", P(255, 0, 0)},
		{"#3a7bd5", P(0x3A, 0x7B, 0xD5)},
		{"not-a-color", Missing},
		{"", Missing},
	}
	for _, tt := range tests {
		if got := ParseColor(tt.in); got != tt.want {
			t.Errorf("ParseColor(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestParseBackground(t *testing.T) {
	tests := []struct {
		in      string
		want    Pixel
		wantErr bool
	}{
		{"", TransparentPixel(), false},
		{"#000000", P(0, 0, 0), false},
		{"#fff", P(255, 255, 255), false},
		{"black", Pixel{}, true},
	}
	for _, tt := range tests {
		got, err := ParseBackground(tt.in)
		if (err != nil) != tt.wantErr {
			t.Errorf("ParseBackground(%q) err = %v, wantErr %v", tt.in, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("ParseBackground(%q) = %+v, want %+v", tt.in, got, tt.want)
		}
	}
}

func TestRasterizeOverwritesInOrder(t *testing.T) {
	blocks := []avatar.Block{
		{X: 0, Y: 0, W: 4, H: 4, Color: "#FF0000"},
		{X: 2, Y: 2, W: 4, H: 4, Color: "#0000FF"},
	}
	g := Rasterize(blocks)

	tests := []struct {
		name string
		x, y int
		want Pixel
	}{
		{"first only", 1, 1, P(255, 0, 0)},
		{"overlap takes later", 3, 3, P(0, 0, 255)},
		{"second only", 5, 5, P(0, 0, 255)},
		{"uncovered", 8, 8, TransparentPixel()},
	}
	for _, tt := range tests {
		if got := g[tt.y][tt.x]; got != tt.want {
			t.Errorf("%s: pixel (%d,%d) = %+v, want %+v", tt.name, tt.x, tt.y, got, tt.want)
		}
	}
}

func TestRasterizeClips(t *testing.T) {
	g := Rasterize([]avatar.Block{
		{X: -2, Y: -2, W: 3, H: 3, Color: "#00FF00"},
		{X: GridW - 1, Y: GridH - 1, W: 5, H: 5, Color: "#00FF00"},
	})
	if g[0][0] != P(0, 255, 0) {
		t.Errorf("top-left = %+v", g[0][0])
	}
	if g[1][1] != TransparentPixel() {
		t.Errorf("(1,1) should be outside the clipped block, got %+v", g[1][1])
	}
	if g[GridH-1][GridW-1] != P(0, 255, 0) {
		t.Errorf("bottom-right = %+v", g[GridH-1][GridW-1])
	}
}

func TestRasterizeDefaultCharacter(t *testing.T) {
	g := Rasterize(avatar.Blocks(avatar.DefaultCharacter))

	// Sclera of the left eye.
	if g[5][5] != P(255, 255, 255) {
		t.Errorf("left eye = %+v, want white", g[5][5])
	}
	// Canvas corners stay empty.
	if !g[0][0].Transparent || !g[GridH-1][0].Transparent {
		t.Error("corners should be transparent")
	}
	// Shoes are the last layer and sit at the bottom.
	shoe := ParseColor(avatar.ShoeColors.Default().Shadow)
	if g[30][3] != shoe {
		t.Errorf("left sole = %+v, want %+v", g[30][3], shoe)
	}
}

func TestWithBackground(t *testing.T) {
	g := TransparentGrid()
	g[0][0] = P(1, 1, 1)
	bg := P(9, 9, 9)

	filled := g.WithBackground(bg)
	if filled[0][0] != P(1, 1, 1) || filled[5][5] != bg {
		t.Errorf("filled grid = %+v / %+v", filled[0][0], filled[5][5])
	}
	if !g[5][5].Transparent {
		t.Error("WithBackground modified its receiver")
	}
	if same := g.WithBackground(TransparentPixel()); same != g {
		t.Error("transparent background should leave the grid unchanged")
	}
}
