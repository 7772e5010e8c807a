package main

import (
	"fmt"
	"io"
	"os"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"pixel-avatar/internal/config"
)

// cli carries what every subcommand needs.
type cli struct {
	cfg     config.CLI
	stdout  io.Writer
	stderr  io.Writer
	printer *message.Printer
}

func newCLI(cfg config.CLI, stdout, stderr io.Writer) *cli {
	return &cli{
		cfg:     cfg,
		stdout:  stdout,
		stderr:  stderr,
		printer: message.NewPrinter(language.Make(cfg.Lang)),
	}
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.LoadCLI()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Config error: %v\n", err)
		os.Exit(1)
	}
	c := newCLI(cfg, os.Stdout, os.Stderr)

	cmd := os.Args[1]
	args := os.Args[2:]

	switch cmd {
	case "render":
		os.Exit(c.runRender(args))
	case "preview":
		os.Exit(c.runPreview(args))
	case "view":
		os.Exit(c.runView(args))
	case "verify":
		os.Exit(c.runVerify(args))
	case "catalog":
		os.Exit(c.runCatalog(args))
	case "locked":
		os.Exit(c.runLocked(args))
	case "validate":
		if len(args) != 1 {
			fmt.Fprintln(os.Stderr, "Usage: avatar validate <profiles-dir>")
			os.Exit(1)
		}
		os.Exit(c.runValidate(args[0]))
	case "help", "-h", "--help":
		printUsage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, `Usage: avatar <command> [flags] [key=value ...]

Commands:
  render   [-o file] [-format png|bmp] [-size px] [-bg hex] [-profile file]
                           Write the avatar as an image
  preview  [-size cols] [-bg hex] [-profile file]
                           Print the avatar with terminal colors
  view     [-profile file] Show the avatar full screen; arrows change pose
  verify   [-bg hex] [-profile file] <image>
                           Check an exported image against a fresh render
  catalog  [-points n]     List every option and whether it is unlocked
  locked   [-points n]     List only the options still locked
  validate <profiles-dir>  Check saved profiles for unknown or locked ids

Keys: skinTone hairStyle hairColor shirtStyle shirtColor pantsStyle
      pantsColor shoeColor accessory pose (aliases: skin hair shirt pants shoes)

Environment:
  AVATAR_RENDER_SIZE  default render width in pixels (256)
  AVATAR_BACKGROUND   default background color, empty for transparent
  AVATAR_POINTS       default points for catalog and locked
  AVATAR_LANG         language for number formatting (en)`)
}
