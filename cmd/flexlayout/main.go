// Package main provides the flexlayout command, which lays out flexbox
// documents written in YAML.
//
// Usage:
//
//	flexlayout layout [--width W] [--height H] [--scale S] [--format F] FILE...
//	flexlayout check FILE...
//	flexlayout draw [--columns N] FILE
//	flexlayout version
//
// Several files are processed concurrently; output keeps argument order.
// FLEXLAYOUT_FORMAT and FLEXLAYOUT_SCALE set defaults for the layout
// command, and FLEX_DEBUG names a file that receives solver traces.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/alexflint/go-arg"
	"github.com/fatih/color"

	"github.com/grindlemire/go-flex/internal/debug"
)

const version = "0.1.0"

type args struct {
	Layout  *layoutCmd  `arg:"subcommand:layout" help:"lay out documents and print every frame"`
	Check   *checkCmd   `arg:"subcommand:check" help:"validate documents without laying them out"`
	Draw    *drawCmd    `arg:"subcommand:draw" help:"draw a document as a terminal diagram"`
	Version *versionCmd `arg:"subcommand:version" help:"print version information"`

	NoColor bool `arg:"--no-color" help:"disable coloured output"`
}

type versionCmd struct{}

func (args) Description() string {
	return "flexlayout computes flexbox layouts from YAML documents"
}

var (
	errLabel = color.New(color.FgHiRed).Sprint
	okLabel  = color.New(color.FgHiGreen).Sprint
	idLabel  = color.New(color.FgHiCyan).Sprint
	heading  = color.New(color.Bold).Sprint
)

func main() {
	if err := debug.InitFromEnv(); err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errLabel("error:"), err)
	}

	cfg, err := LoadConfig(nil)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s %v\n", errLabel("error:"), err)
		debug.Close()
		os.Exit(1)
	}
	code := run(os.Args[1:], cfg, os.Stdout, os.Stderr)
	debug.Close()
	os.Exit(code)
}

// run executes one command line and returns the exit status.
func run(argv []string, cfg Config, stdout, stderr io.Writer) int {
	var a args
	p, err := arg.NewParser(arg.Config{Program: "flexlayout"}, &a)
	if err != nil {
		fmt.Fprintf(stderr, "%s %v\n", errLabel("error:"), err)
		return 1
	}

	switch err := p.Parse(argv); {
	case errors.Is(err, arg.ErrHelp):
		_ = p.WriteHelpForSubcommand(stdout, p.SubcommandNames()...)
		return 0
	case err != nil:
		fmt.Fprintf(stderr, "%s %v\n", errLabel("error:"), err)
		p.WriteUsage(stderr)
		return 1
	}

	if a.NoColor {
		color.NoColor = true
	}

	switch {
	case a.Layout != nil:
		err = runLayout(a.Layout, cfg, stdout, stderr)
	case a.Check != nil:
		err = runCheck(a.Check, stdout, stderr)
	case a.Draw != nil:
		err = runDraw(a.Draw, stdout)
	case a.Version != nil:
		fmt.Fprintf(stdout, "flexlayout version %s\n", version)
	default:
		p.WriteHelp(stderr)
		return 1
	}

	if err != nil {
		fmt.Fprintf(stderr, "%s %v\n", errLabel("error:"), err)
		return 1
	}
	return 0
}
