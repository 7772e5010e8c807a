package render

import (
	"fmt"

	"github.com/lucasb-eyer/go-colorful"

	"pixel-avatar/internal/avatar"
)

const (
	// GridW is the width of the avatar canvas in pixels.
	GridW = avatar.CanvasW
	// GridH is the height of the avatar canvas in pixels.
	GridH = avatar.CanvasH
)

// Pixel represents a single pixel with RGB color and transparency.
type Pixel struct {
	R, G, B     uint8
	Transparent bool
}

// PixelGrid is the avatar canvas at one pixel per grid unit.
type PixelGrid [GridH][GridW]Pixel

// TransparentPixel returns a transparent pixel.
func TransparentPixel() Pixel {
	return Pixel{Transparent: true}
}

// P is a shorthand to create an opaque pixel.
func P(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// Missing is drawn for colors that do not parse.
var Missing = P(255, 0, 255)

// ParseColor converts a hex color to a pixel. Unparseable colors come back
// magenta rather than failing the render.
func ParseColor(c avatar.Color) Pixel {
	col, err := colorful.Hex(string(c))
	if err != nil {
		return Missing
	}
	r, g, b := col.RGB255()
	return P(r, g, b)
}

// ParseBackground parses a user supplied background color. An empty string
// means transparent.
func ParseBackground(s string) (Pixel, error) {
	if s == "" {
		return TransparentPixel(), nil
	}
	col, err := colorful.Hex(s)
	if err != nil {
		return Pixel{}, fmt.Errorf("background %q: %w", s, err)
	}
	r, g, b := col.RGB255()
	return P(r, g, b), nil
}

// TransparentGrid creates a fully transparent grid.
func TransparentGrid() PixelGrid {
	var g PixelGrid
	for y := 0; y < GridH; y++ {
		for x := 0; x < GridW; x++ {
			g[y][x] = TransparentPixel()
		}
	}
	return g
}

// WithBackground returns a copy of g with transparent pixels replaced by bg.
func (g PixelGrid) WithBackground(bg Pixel) PixelGrid {
	if bg.Transparent {
		return g
	}
	for y := range g {
		for x := range g[y] {
			if g[y][x].Transparent {
				g[y][x] = bg
			}
		}
	}
	return g
}

// Rasterize paints blocks back to front onto a transparent grid. Later
// blocks overwrite earlier ones; anything outside the canvas is clipped.
func Rasterize(blocks []avatar.Block) PixelGrid {
	g := TransparentGrid()
	for _, b := range blocks {
		p := ParseColor(b.Color)
		for y := max(b.Y, 0); y < min(b.Y+b.H, GridH); y++ {
			for x := max(b.X, 0); x < min(b.X+b.W, GridW); x++ {
				g[y][x] = p
			}
		}
	}
	return g
}

// upscale is the whole number of cells each grid pixel spans for a frame.
func upscale(f avatar.Frame) int {
	k := int(f.Scale)
	if k < 1 {
		return 1
	}
	return k
}
