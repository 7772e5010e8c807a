package render

import (
	"fmt"
	"strconv"
	"strings"

	"pixel-avatar/internal/avatar"
)

const (
	ESC   = "\x1b"
	CSI   = ESC + "["
	Reset = CSI + "0m"

	// upperHalf draws the top pixel as foreground and the bottom as background.
	upperHalf = '▀'
	lowerHalf = '▄'
)

// Cell represents a single terminal cell with full RGB color.
type Cell struct {
	Ch            rune
	FgR, FgG, FgB uint8
	BgR, BgG, BgB uint8
	Bold          bool
}

// MoveTo positions the cursor at row, col (1-based).
func MoveTo(row, col int) string {
	return fmt.Sprintf("%s%d;%dH", CSI, row, col)
}

// ClearScreen clears the entire screen.
func ClearScreen() string {
	return CSI + "2J"
}

// HideCursor hides the terminal cursor.
func HideCursor() string {
	return CSI + "?25l"
}

// ShowCursor shows the terminal cursor.
func ShowCursor() string {
	return CSI + "?25h"
}

// EnableAltScreen switches to the alternate screen buffer.
func EnableAltScreen() string {
	return CSI + "?1049h"
}

// DisableAltScreen switches back from the alternate screen buffer.
func DisableAltScreen() string {
	return CSI + "?1049l"
}

// WriteCellSGR writes a single cell's full SGR + character to the builder.
// Uses combined SGR to avoid state leakage between cells.
func WriteCellSGR(sb *strings.Builder, c Cell) {
	if c.Bold {
		sb.WriteString("\x1b[0;1;38;2;")
	} else {
		sb.WriteString("\x1b[0;38;2;")
	}
	writeRGB(sb, c.FgR, c.FgG, c.FgB)
	sb.WriteString(";48;2;")
	writeRGB(sb, c.BgR, c.BgG, c.BgB)
	sb.WriteByte('m')
	sb.WriteRune(c.Ch)
}

// writeFgOnly writes a cell with a foreground color over the terminal's own
// background.
func writeFgOnly(sb *strings.Builder, ch rune, p Pixel) {
	sb.WriteString("\x1b[0;38;2;")
	writeRGB(sb, p.R, p.G, p.B)
	sb.WriteByte('m')
	sb.WriteRune(ch)
}

func writeRGB(sb *strings.Builder, r, g, b uint8) {
	sb.WriteString(strconv.Itoa(int(r)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(g)))
	sb.WriteByte(';')
	sb.WriteString(strconv.Itoa(int(b)))
}

// halfCell returns the glyph and colors for two vertically stacked pixels.
// ok is false when both are transparent.
func halfCell(top, bottom Pixel) (ch rune, fg, bg Pixel, ok bool) {
	switch {
	case top.Transparent && bottom.Transparent:
		return ' ', Pixel{}, Pixel{}, false
	case top.Transparent:
		return lowerHalf, bottom, top, true
	default:
		return upperHalf, top, bottom, true
	}
}

// ANSI renders a frame as truecolor half-block text: one terminal column and
// half a row per grid pixel, multiplied by the frame's whole-number scale.
// Transparent pixels take bg; if bg is transparent the terminal shows through.
// Lines end in CRLF so the output is correct on raw PTYs too.
func ANSI(f avatar.Frame, bg Pixel) string {
	grid := Rasterize(f.Blocks)
	k := upscale(f)

	at := func(px, py int) Pixel {
		p := grid[py/k][px/k]
		if p.Transparent {
			return bg
		}
		return p
	}

	var sb strings.Builder
	sb.Grow(GridW * k * GridH * k * 12)
	for py := 0; py < GridH*k; py += 2 {
		for px := 0; px < GridW*k; px++ {
			ch, fg, back, ok := halfCell(at(px, py), at(px, py+1))
			switch {
			case !ok:
				sb.WriteString(Reset)
				sb.WriteByte(' ')
			case back.Transparent:
				writeFgOnly(&sb, ch, fg)
			default:
				WriteCellSGR(&sb, Cell{Ch: ch, FgR: fg.R, FgG: fg.G, FgB: fg.B, BgR: back.R, BgG: back.G, BgB: back.B})
			}
		}
		sb.WriteString(Reset)
		sb.WriteString("\r\n")
	}
	return sb.String()
}
