package main

import (
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"golang.org/x/text/message"

	"pixel-avatar/internal/avatar"
)

type optionSection struct {
	title   string
	field   string
	catalog *avatar.Catalog[avatar.Option]
}

type paletteSection struct {
	title   string
	field   string
	catalog *avatar.Catalog[avatar.Palette]
}

var optionSections = []optionSection{
	{"Hair styles", "hairStyle", avatar.HairStyles},
	{"Shirt styles", "shirtStyle", avatar.ShirtStyles},
	{"Pants styles", "pantsStyle", avatar.PantsStyles},
	{"Accessories", "accessory", avatar.Accessories},
	{"Poses", "pose", avatar.Poses},
}

var paletteSections = []paletteSection{
	{"Skin tones", "skinTone", avatar.SkinTones},
	{"Hair colors", "hairColor", avatar.HairColors},
	{"Shirt colors", "shirtColor", avatar.ShirtColors},
	{"Pants colors", "pantsColor", avatar.PantsColors},
	{"Shoe colors", "shoeColor", avatar.ShoeColors},
}

func (c *cli) pointsFlag(name string, args []string) (int, bool) {
	fs := c.flagSet(name)
	points := fs.Int("points", c.cfg.Points, "points the user has earned")
	if err := fs.Parse(args); err != nil {
		return 0, false
	}
	if fs.NArg() > 0 {
		fmt.Fprintf(c.stderr, "Error: unexpected argument %q\n", fs.Arg(0))
		return 0, false
	}
	return *points, true
}

// --- catalog ---

func (c *cli) runCatalog(args []string) int {
	points, ok := c.pointsFlag("catalog", args)
	if !ok {
		return 2
	}
	writeCatalog(c.stdout, c.printer, points)
	return 0
}

// writeCatalog lists every catalog in menu order. Defaults are starred.
func writeCatalog(w io.Writer, p *message.Printer, points int) {
	tw := tabwriter.NewWriter(w, 0, 4, 2, ' ', 0)
	for _, s := range paletteSections {
		fmt.Fprintf(tw, "%s (%s)\n", s.title, s.field)
		def := s.catalog.Default().ID
		for _, pal := range s.catalog.All() {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", mark(pal.ID, def), pal.Name, pal.Base)
		}
		fmt.Fprintln(tw)
	}
	for _, s := range optionSections {
		fmt.Fprintf(tw, "%s (%s)\n", s.title, s.field)
		def := s.catalog.Default().ID
		for _, opt := range s.catalog.All() {
			fmt.Fprintf(tw, "  %s\t%s\t%s\n", mark(opt.ID, def), opt.Name, lockState(p, opt, points))
		}
		fmt.Fprintln(tw)
	}
	tw.Flush()
}

func mark(id, def string) string {
	if id == def {
		return id + " *"
	}
	return id
}

func lockState(p *message.Printer, opt avatar.Option, points int) string {
	switch {
	case opt.Unlocked || opt.PointsRequired == 0:
		return "free"
	case avatar.IsLocked(opt, points):
		return p.Sprintf("locked, %d points", opt.PointsRequired)
	default:
		return p.Sprintf("unlocked at %d points", opt.PointsRequired)
	}
}

// --- locked ---

func (c *cli) runLocked(args []string) int {
	points, ok := c.pointsFlag("locked", args)
	if !ok {
		return 2
	}
	writeLocked(c.stdout, c.printer, points)
	return 0
}

// writeLocked prints one line per category that still has locked options.
func writeLocked(w io.Writer, p *message.Printer, points int) {
	total := 0
	for _, s := range optionSections {
		ids := avatar.LockedIDs(s.catalog, points)
		if len(ids) == 0 {
			continue
		}
		total += len(ids)
		fmt.Fprintf(w, "%s: %s\n", s.field, strings.Join(ids, " "))
	}
	if total == 0 {
		p.Fprintf(w, "Everything is unlocked at %d points\n", points)
		return
	}
	p.Fprintf(w, "%d option(s) locked at %d points\n", total, points)
}
