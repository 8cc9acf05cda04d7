// Package main is the entry point for keyscreen.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"
	"syscall"

	"github.com/dshills/keyscreen/internal/app"
	"github.com/dshills/keyscreen/internal/input/keymap"
)

// Version information (set via ldflags during build).
var (
	version = "dev"
	commit  = "unknown"
	date    = "unknown"
)

// cliOptions holds the parsed command line.
type cliOptions struct {
	app.Options

	dryRun       bool
	listProfiles bool
	showVersion  bool
	showHelp     bool
}

func main() {
	os.Exit(run())
}

func run() int {
	opts, err := parseFlags(os.Args[1:], os.Stderr)
	if err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}

	switch {
	case opts.showHelp:
		return 0
	case opts.showVersion:
		fmt.Printf("keyscreen %s\n", version)
		fmt.Printf("Commit: %s\n", commit)
		fmt.Printf("Built: %s\n", date)
		return 0
	case opts.listProfiles:
		listProfiles(os.Stdout)
		return 0
	}

	application, err := app.New(opts.Options)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to initialize: %v\n", err)
		return 1
	}
	defer application.Shutdown()

	if opts.dryRun {
		if err := application.DryRun(os.Stdout); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			return 1
		}
		return 0
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := application.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return 1
	}
	return 0
}

// parseFlags parses args. Only flags given on the command line become
// config overrides, so unset flags never mask the file or environment.
func parseFlags(args []string, stderr io.Writer) (*cliOptions, error) {
	fs := flag.NewFlagSet("keyscreen", flag.ContinueOnError)
	fs.SetOutput(stderr)

	opts := &cliOptions{}
	var (
		profile, source, device, replay string
		logLevel, logFile               string
		fps                             int
		headless, loop                  bool
	)

	fs.StringVar(&opts.ConfigPath, "config", "", "Path to configuration file")
	fs.StringVar(&opts.ConfigPath, "c", "", "Path to configuration file (shorthand)")
	fs.StringVar(&profile, "profile", "", "Display profile ("+strings.Join(keymap.Profiles(), ", ")+")")
	fs.StringVar(&profile, "p", "", "Display profile (shorthand)")
	fs.StringVar(&source, "source", "", "Input source (evdev, terminal, replay)")
	fs.StringVar(&source, "s", "", "Input source (shorthand)")
	fs.StringVar(&device, "device", "", "evdev device path (default: first keyboard)")
	fs.StringVar(&replay, "replay", "", "Replay script; implies --source replay")
	fs.BoolVar(&loop, "loop", false, "Restart the replay script when it ends")
	fs.IntVar(&fps, "fps", 0, "Frames per second")
	fs.BoolVar(&headless, "headless", false, "Print frames as text lines instead of drawing")
	fs.StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	fs.StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	fs.BoolVar(&opts.dryRun, "dry-run", false, "Print the tokens a replay script produces and exit")
	fs.BoolVar(&opts.listProfiles, "list-profiles", false, "List display profiles")
	fs.BoolVar(&opts.showVersion, "version", false, "Show version information")
	fs.BoolVar(&opts.showVersion, "v", false, "Show version information (shorthand)")
	fs.BoolVar(&opts.showHelp, "help", false, "Show help message")
	fs.BoolVar(&opts.showHelp, "h", false, "Show help message (shorthand)")

	fs.Usage = func() {
		out := fs.Output()
		fmt.Fprintf(out, "keyscreen - on-screen keystroke overlay\n\n")
		fmt.Fprintf(out, "Usage: keyscreen [options]\n\n")
		fmt.Fprintf(out, "Options:\n")
		fs.PrintDefaults()
		fmt.Fprintf(out, "\nExamples:\n")
		fmt.Fprintf(out, "  keyscreen                        Show keys from the first keyboard\n")
		fmt.Fprintf(out, "  keyscreen -s terminal            Show keys typed into this terminal\n")
		fmt.Fprintf(out, "  keyscreen --replay demo.keys     Play a script\n")
		fmt.Fprintf(out, "  keyscreen -p compact --headless  Print frames as lines\n")
	}

	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if fs.NArg() > 0 {
		return nil, fmt.Errorf("unexpected arguments: %s", strings.Join(fs.Args(), " "))
	}
	if opts.showHelp {
		fs.Usage()
		return opts, nil
	}

	set := make(map[string]bool)
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	overrides := make(map[string]any)
	if set["profile"] || set["p"] {
		if _, err := keymap.Lookup(profile); err != nil {
			return nil, err
		}
		overrides["profile"] = profile
	}
	if set["source"] || set["s"] {
		overrides["input.source"] = source
	}
	if set["device"] {
		overrides["input.device"] = device
	}
	if set["replay"] {
		overrides["input.replay_file"] = replay
		if !set["source"] && !set["s"] {
			overrides["input.source"] = "replay"
		}
	}
	if set["loop"] {
		overrides["input.loop"] = loop
	}
	if set["fps"] {
		overrides["display.fps"] = int64(fps)
	}
	if set["headless"] {
		overrides["display.headless"] = headless
	}
	if set["log-level"] {
		if _, err := app.ParseLogLevel(logLevel); err != nil {
			return nil, fmt.Errorf("invalid log level %q (must be debug, info, warn, or error)", logLevel)
		}
		overrides["log.level"] = logLevel
	}
	if set["log-file"] {
		overrides["log.file"] = logFile
	}
	opts.Overrides = overrides

	return opts, nil
}

// listProfiles prints each profile with its capacity, tiers and glyph
// counts per tier.
func listProfiles(w io.Writer) {
	for _, name := range keymap.Profiles() {
		km, err := keymap.Lookup(name)
		if err != nil {
			continue
		}
		marker := " "
		if name == keymap.DefaultProfile {
			marker = "*"
		}
		fmt.Fprintf(w, "%s %-10s %s\n", marker, name, km.Description())
		fmt.Fprintf(w, "    capacity %d, %d keys, %d glyphs", km.MaxChars(), len(km.Keys()), km.Len())
		if km.ShowsIndicators() {
			fmt.Fprint(w, ", indicators")
		}
		fmt.Fprintln(w)

		tiers := make([]string, 0, 4)
		for _, tier := range km.Tiers() {
			n := 0
			for _, k := range km.Keys() {
				if _, ok := km.Glyph(k, tier); ok {
					n++
				}
			}
			tiers = append(tiers, fmt.Sprintf("%s %d", tier, n))
		}
		fmt.Fprintf(w, "    tiers: %s\n", strings.Join(tiers, " > "))

		if rules := km.Suppressions(); len(rules) > 0 {
			names := make([]string, len(rules))
			for i, r := range rules {
				names[i] = r.Modifier.String() + "+" + r.Key.String()
			}
			fmt.Fprintf(w, "    suppressed: %s\n", strings.Join(names, ", "))
		}
	}
}
