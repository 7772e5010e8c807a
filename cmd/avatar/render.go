package main

import (
	"flag"
	"fmt"
	"io"
	"os"

	"pixel-avatar/internal/avatar"
	"pixel-avatar/internal/profile"
	"pixel-avatar/internal/render"
)

// character builds a configuration from an optional profile file and
// key=value overrides.
func character(profilePath string, assignments []string) (avatar.CharacterConfig, error) {
	base := avatar.DefaultCharacter
	if profilePath != "" {
		p, err := profile.Load(profilePath)
		if err != nil {
			return base, err
		}
		base = p.Avatar
	}
	cfg, err := base.ParseAssignments(assignments)
	if err != nil {
		return cfg, err
	}
	return cfg.WithDefaults(), nil
}

func (c *cli) warnFallbacks(cfg avatar.CharacterConfig) {
	for _, fb := range avatar.Resolve(cfg).Fallbacks {
		fmt.Fprintf(c.stderr, "warning: %s is unknown, using the default\n", fb)
	}
}

func (c *cli) flagSet(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(c.stderr)
	return fs
}

// --- render ---

func (c *cli) runRender(args []string) int {
	fs := c.flagSet("render")
	out := fs.String("o", "", "output file (default avatar.<format>, - for stdout)")
	format := fs.String("format", string(render.FormatPNG), "image format: png or bmp")
	size := fs.Int("size", c.cfg.RenderSize, "image width in pixels")
	bg := fs.String("bg", c.cfg.Background, "background color as hex (default transparent)")
	prof := fs.String("profile", "", "start from a saved profile")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if *size < 1 {
		fmt.Fprintf(c.stderr, "Error: -size must be positive, got %d\n", *size)
		return 2
	}

	background, err := render.ParseBackground(*bg)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 2
	}
	cfg, err := character(*prof, fs.Args())
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}
	c.warnFallbacks(cfg)

	img := render.Image(avatar.Compose(cfg, float64(*size)), background)

	path := *out
	if path == "" {
		path = "avatar." + *format
	}
	var w io.Writer = c.stdout
	if path != "-" {
		f, err := os.Create(path)
		if err != nil {
			fmt.Fprintf(c.stderr, "Error: %v\n", err)
			return 1
		}
		defer f.Close()
		w = f
	}
	if err := render.Encode(w, img, render.Format(*format)); err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}
	if path != "-" {
		b := img.Bounds()
		fmt.Fprintf(c.stdout, "Wrote %s (%dx%d)\n", path, b.Dx(), b.Dy())
	}
	return 0
}

// --- preview ---

func (c *cli) runPreview(args []string) int {
	fs := c.flagSet("preview")
	size := fs.Int("size", render.GridW, "width in terminal columns")
	bg := fs.String("bg", c.cfg.Background, "background color as hex (default terminal background)")
	prof := fs.String("profile", "", "start from a saved profile")
	if err := fs.Parse(args); err != nil {
		return 2
	}

	background, err := render.ParseBackground(*bg)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 2
	}
	cfg, err := character(*prof, fs.Args())
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}
	c.warnFallbacks(cfg)

	io.WriteString(c.stdout, render.ANSI(avatar.Compose(cfg, float64(*size)), background))
	return 0
}

// --- verify ---

func (c *cli) runVerify(args []string) int {
	fs := c.flagSet("verify")
	bg := fs.String("bg", c.cfg.Background, "background the image was rendered with")
	prof := fs.String("profile", "", "start from a saved profile")
	if err := fs.Parse(args); err != nil {
		return 2
	}
	if fs.NArg() < 1 {
		fmt.Fprintln(c.stderr, "Usage: avatar verify [-bg hex] [-profile file] <image> [key=value ...]")
		return 2
	}

	background, err := render.ParseBackground(*bg)
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 2
	}
	cfg, err := character(*prof, fs.Args()[1:])
	if err != nil {
		fmt.Fprintf(c.stderr, "Error: %v\n", err)
		return 1
	}
	got, err := render.LoadGrid(fs.Arg(0))
	if err != nil {
		fmt.Fprintf(c.stderr, "FAIL: %v\n", err)
		return 1
	}

	want := render.Rasterize(avatar.Blocks(cfg)).WithBackground(background)
	diff := render.Diff(got, want)
	if len(diff) > 0 {
		fmt.Fprintf(c.stdout, "FAIL: %d pixel(s) differ, first at (%d,%d)\n", len(diff), diff[0].X, diff[0].Y)
		return 1
	}
	fmt.Fprintf(c.stdout, "OK: %s matches\n", fs.Arg(0))
	return 0
}
