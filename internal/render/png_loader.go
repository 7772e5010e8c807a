package render

import (
	"fmt"
	"image"
	_ "image/png"
	"io"
	"os"

	_ "golang.org/x/image/bmp"
)

// DecodeGrid reads an exported avatar image back into a grid. The image must
// be the canvas at a whole-number scale; each grid pixel is sampled at the
// top-left of its cell. Alpha below half is treated as transparent.
func DecodeGrid(r io.Reader) (PixelGrid, error) {
	var g PixelGrid

	img, _, err := image.Decode(r)
	if err != nil {
		return g, fmt.Errorf("decode: %w", err)
	}

	bounds := img.Bounds()
	k := bounds.Dx() / GridW
	if k < 1 || bounds.Dx() != GridW*k || bounds.Dy() != GridH*k {
		return g, fmt.Errorf("expected a multiple of %dx%d, got %dx%d", GridW, GridH, bounds.Dx(), bounds.Dy())
	}

	for y := 0; y < GridH; y++ {
		for x := 0; x < GridW; x++ {
			r, gr, b, a := img.At(bounds.Min.X+x*k, bounds.Min.Y+y*k).RGBA()
			if a < 0x8000 {
				g[y][x] = TransparentPixel()
				continue
			}
			// Undo premultiplication so partly transparent pixels keep their color.
			g[y][x] = P(uint8(r*0xFFFF/a>>8), uint8(gr*0xFFFF/a>>8), uint8(b*0xFFFF/a>>8))
		}
	}

	return g, nil
}

// LoadGrid reads an exported avatar image from disk.
func LoadGrid(path string) (PixelGrid, error) {
	f, err := os.Open(path)
	if err != nil {
		return PixelGrid{}, fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	g, err := DecodeGrid(f)
	if err != nil {
		return g, fmt.Errorf("%s: %w", path, err)
	}
	return g, nil
}

// Diff returns the coordinates where two grids differ, row by row.
func Diff(a, b PixelGrid) []image.Point {
	var out []image.Point
	for y := 0; y < GridH; y++ {
		for x := 0; x < GridW; x++ {
			if a[y][x] != b[y][x] {
				out = append(out, image.Point{X: x, Y: y})
			}
		}
	}
	return out
}
