package main

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"pixel-avatar/internal/avatar"
	"pixel-avatar/internal/render"
)

const viewHelp = "←/→ pose  ↑/↓ accessory  h hair  c color  s shirt  p pants  k skin  q quit"

func (c *cli) runView(args []string) int {
	fs := c.flagSet("view")
	prof := fs.String("profile", "", "start from a saved profile")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	cfg, err := character(*prof, fs.Args())
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}

	cfg = view(screen, cfg)
	screen.Fini()

	fmt.Fprintln(c.stdout, assignments(cfg))
	return 0
}

// view runs the interactive viewer until the user quits and returns the
// character as last shown.
func view(screen tcell.Screen, cfg avatar.CharacterConfig) avatar.CharacterConfig {
	drawView(screen, cfg)
	for {
		switch ev := screen.PollEvent().(type) {
		case *tcell.EventKey:
			next, quit := handleKey(ev, cfg)
			if quit {
				return cfg
			}
			cfg = next
		case *tcell.EventResize:
			screen.Sync()
		case nil:
			return cfg
		}
		drawView(screen, cfg)
	}
}

func handleKey(ev *tcell.EventKey, cfg avatar.CharacterConfig) (avatar.CharacterConfig, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return cfg, true
	case tcell.KeyRight:
		cfg.Pose = avatar.Poses.Step(cfg.Pose, 1)
	case tcell.KeyLeft:
		cfg.Pose = avatar.Poses.Step(cfg.Pose, -1)
	case tcell.KeyUp:
		cfg.Accessory = avatar.Accessories.Step(cfg.Accessory, -1)
	case tcell.KeyDown:
		cfg.Accessory = avatar.Accessories.Step(cfg.Accessory, 1)
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q', 'Q':
			return cfg, true
		case 'h':
			cfg.HairStyle = avatar.HairStyles.Step(cfg.HairStyle, 1)
		case 'c':
			cfg.HairColor = avatar.HairColors.Step(cfg.HairColor, 1)
		case 's':
			cfg.ShirtStyle = avatar.ShirtStyles.Step(cfg.ShirtStyle, 1)
		case 'p':
			cfg.PantsStyle = avatar.PantsStyles.Step(cfg.PantsStyle, 1)
		case 'k':
			cfg.SkinTone = avatar.SkinTones.Step(cfg.SkinTone, 1)
		}
	}
	return cfg, false
}

// drawView centres the largest whole-number scale that fits above the two
// status lines.
func drawView(screen tcell.Screen, cfg avatar.CharacterConfig) {
	screen.Clear()
	w, h := screen.Size()

	k := max(1, min(w/render.GridW, (h-2)/(render.GridH/2)))
	cols, rows := render.GridW*k, render.GridH/2*k
	f := avatar.Compose(cfg, float64(cols))
	render.DrawScreen(screen, (w-cols)/2, max(0, (h-2-rows)/2), f)

	drawText(screen, 0, h-2, assignments(cfg))
	drawText(screen, 0, h-1, viewHelp)
	screen.Show()
}

func drawText(screen tcell.Screen, x, y int, text string) {
	style := tcell.StyleDefault.Foreground(tcell.ColorGray)
	for _, r := range text {
		screen.SetContent(x, y, r, nil, style)
		x++
	}
}

func assignments(cfg avatar.CharacterConfig) string {
	return fmt.Sprintf("skin=%s hair=%s hairColor=%s shirt=%s shirtColor=%s pants=%s pantsColor=%s shoes=%s accessory=%s pose=%s",
		cfg.SkinTone, cfg.HairStyle, cfg.HairColor, cfg.ShirtStyle, cfg.ShirtColor,
		cfg.PantsStyle, cfg.PantsColor, cfg.ShoeColor, cfg.Accessory, cfg.Pose)
}
