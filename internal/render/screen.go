package render

import (
	"github.com/gdamore/tcell/v2"

	"pixel-avatar/internal/avatar"
)

func tcellColor(p Pixel) tcell.Color {
	if p.Transparent {
		return tcell.ColorDefault
	}
	return tcell.NewRGBColor(int32(p.R), int32(p.G), int32(p.B))
}

// DrawScreen draws a frame onto a tcell screen with its top-left corner at
// (x0, y0), using the same half-block layout as ANSI. Cells that fall off
// the screen are skipped. The caller calls Show.
func DrawScreen(screen tcell.Screen, x0, y0 int, f avatar.Frame) {
	grid := Rasterize(f.Blocks)
	k := upscale(f)
	w, h := screen.Size()

	for py := 0; py < GridH*k; py += 2 {
		sy := y0 + py/2
		if sy < 0 || sy >= h {
			continue
		}
		for px := 0; px < GridW*k; px++ {
			sx := x0 + px
			if sx < 0 || sx >= w {
				continue
			}
			ch, fg, bg, ok := halfCell(grid[py/k][px/k], grid[(py+1)/k][px/k])
			if !ok {
				continue
			}
			style := tcell.StyleDefault.Foreground(tcellColor(fg)).Background(tcellColor(bg))
			screen.SetContent(sx, sy, ch, nil, style)
		}
	}
}
