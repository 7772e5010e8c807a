package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"math"

	"golang.org/x/image/bmp"
	xdraw "golang.org/x/image/draw"

	"pixel-avatar/internal/avatar"
)

func nrgba(p Pixel) color.NRGBA {
	if p.Transparent {
		return color.NRGBA{}
	}
	return color.NRGBA{R: p.R, G: p.G, B: p.B, A: 255}
}

// Image draws a frame at its scale. Blocks are drawn at one pixel per grid
// unit and then scaled nearest-neighbour, so edges stay hard at any size.
// Areas no block covers are filled with bg.
func Image(f avatar.Frame, bg Pixel) *image.NRGBA {
	src := image.NewNRGBA(image.Rect(0, 0, GridW, GridH))
	xdraw.Draw(src, src.Bounds(), image.NewUniform(nrgba(bg)), image.Point{}, xdraw.Src)
	for _, b := range f.Blocks {
		r := image.Rect(b.X, b.Y, b.X+b.W, b.Y+b.H).Intersect(src.Bounds())
		xdraw.Draw(src, r, image.NewUniform(nrgba(ParseColor(b.Color))), image.Point{}, xdraw.Src)
	}

	scale := f.Scale
	if scale <= 0 {
		scale = 1
	}
	w := int(math.Round(GridW * scale))
	h := int(math.Round(GridH * scale))
	if w == GridW && h == GridH {
		return src
	}
	dst := image.NewNRGBA(image.Rect(0, 0, w, h))
	xdraw.NearestNeighbor.Scale(dst, dst.Bounds(), src, src.Bounds(), xdraw.Src, nil)
	return dst
}

// Format is an output image encoding.
type Format string

const (
	FormatPNG Format = "png"
	FormatBMP Format = "bmp"
)

// Encode writes img in the given format.
func Encode(w io.Writer, img image.Image, format Format) error {
	var err error
	switch format {
	case FormatPNG, "":
		err = png.Encode(w, img)
	case FormatBMP:
		err = bmp.Encode(w, img)
	default:
		return fmt.Errorf("encode: unsupported format %q", format)
	}
	if err != nil {
		return fmt.Errorf("encode %s: %w", format, err)
	}
	return nil
}
