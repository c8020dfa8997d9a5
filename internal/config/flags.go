package config

// This file implements CLI flag parsing and help text. A -config file is
// decoded first and the flags are parsed again over it, so flags win.

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strings"
)

// Version is shown by -version; override with -ldflags "-X ...config.Version=...".
var Version = "0.1.0"

// ParseFlags parses args (without the program name) into cfg. The first
// positional argument is the input file; the rest are timestamps, appended
// after any listed in the config file. It returns flag.ErrHelp for -h.
func ParseFlags(cfg *Config, args []string) error {
	fs := newFlagSet(cfg, os.Stderr)
	if err := fs.Parse(args); err != nil {
		return err
	}

	if cfg.ConfigFile != "" {
		if err := LoadFile(cfg, cfg.ConfigFile); err != nil {
			return err
		}
		fs = newFlagSet(cfg, io.Discard)
		if err := fs.Parse(args); err != nil {
			return err
		}
	}

	if cfg.ShowVersion {
		return nil
	}
	if err := parsePositionalArgs(fs, cfg); err != nil {
		return err
	}
	trimTimestamps(cfg)
	return nil
}

// trimTimestamps strips the whitespace YAML lists and quoted shell args
// tend to carry. The parser itself accepts digits only.
func trimTimestamps(cfg *Config) {
	for i, ts := range cfg.Timestamps {
		cfg.Timestamps[i] = strings.TrimSpace(ts)
	}
}

func newFlagSet(cfg *Config, output io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("audiosplit", flag.ContinueOnError)
	fs.SetOutput(output)
	fs.Usage = func() { printUsage(fs.Output()) }

	fs.StringVar(&cfg.ConfigFile, "config", cfg.ConfigFile, "YAML config file")
	fs.StringVar(&cfg.Extension, "ext", cfg.Extension, "Output extension")
	fs.StringVar(&cfg.OutputDir, "out", cfg.OutputDir, "Output directory")
	fs.StringVar(&cfg.OutputDir, "o", cfg.OutputDir, "Same as -out")
	fs.StringVar(&cfg.FFmpeg, "ffmpeg", cfg.FFmpeg, "ffmpeg binary")
	fs.BoolVar(&cfg.CopyCodec, "copy", cfg.CopyCodec, "Stream copy instead of re-encoding")
	fs.BoolVar(&cfg.Overwrite, "force", cfg.Overwrite, "Overwrite existing output files")
	fs.BoolVar(&cfg.Overwrite, "f", cfg.Overwrite, "Same as -force")
	fs.BoolVar(&cfg.Run, "run", cfg.Run, "Run ffmpeg; without it the plan is only printed")
	fs.Var(&colorModeValue{&cfg.ColorMode}, "color", "Colors: auto | always | never")
	fs.StringVar(&cfg.LogFile, "log", cfg.LogFile, "Append logs to file")
	fs.BoolVar(&cfg.Verbose, "verbose", cfg.Verbose, "Verbose output")
	fs.BoolVar(&cfg.Verbose, "v", cfg.Verbose, "Same as -verbose")
	fs.BoolVar(&cfg.ShowVersion, "version", cfg.ShowVersion, "Print version and exit")
	return fs
}

// parsePositionalArgs sets Input and appends timestamps from the remaining args.
func parsePositionalArgs(fs *flag.FlagSet, cfg *Config) error {
	args := fs.Args()
	if len(args) == 0 {
		if cfg.Input == "" {
			return fmt.Errorf("need an input file")
		}
		return nil
	}
	cfg.Input = args[0]
	cfg.Timestamps = append(cfg.Timestamps, args[1:]...)
	return nil
}

func printUsage(w io.Writer) {
	const col1 = 22
	lines := []struct {
		flags string
		desc  string
	}{
		{"", "audiosplit v" + Version + " - split an audio file at timestamps"},
		{"", ""},
		{"  audiosplit [OPTIONS] <input> [timestamp ...]", ""},
		{"", ""},
		{"Timestamps are [[H:]M:]S[.ms], e.g. 20, 02:32.1234, 1:02:32", ""},
		{"", ""},
		{"Output", ""},
		{"  -ext <ext>", "Output extension (default: input's, else mp3)"},
		{"  -o, -out <dir>", "Output directory (default: .)"},
		{"  -f, -force", "Overwrite existing output files"},
		{"", ""},
		{"ffmpeg", ""},
		{"  -ffmpeg <path>", "ffmpeg binary (default: ffmpeg)"},
		{"  -copy", "Stream copy instead of re-encoding"},
		{"  -run", "Run ffmpeg (default: only print the plan)"},
		{"", ""},
		{"Display", ""},
		{"  -color <mode>", "auto | always | never (default: auto)"},
		{"  -log <path>", "Append logs to file"},
		{"  -v, -verbose", "Print every ffmpeg command"},
		{"", ""},
		{"Utility", ""},
		{"  -config <path>", "YAML config file; flags override it"},
		{"  -version", "Print version and exit"},
	}

	for _, l := range lines {
		switch {
		case l.flags == "" && l.desc == "":
			fmt.Fprintln(w)
		case l.desc == "":
			fmt.Fprintln(w, l.flags)
		case l.flags == "":
			fmt.Fprintln(w, l.desc)
		default:
			padding := col1 - len(l.flags)
			if padding < 1 {
				padding = 1
			}
			fmt.Fprintf(w, "%s%*s%s\n", l.flags, padding, "", l.desc)
		}
	}
}

type colorModeValue struct{ p *ColorMode }

func (c *colorModeValue) String() string {
	if c.p == nil {
		return ""
	}
	return string(*c.p)
}

func (c *colorModeValue) Set(s string) error {
	switch strings.ToLower(s) {
	case "auto":
		*c.p = ColorAuto
	case "always":
		*c.p = ColorAlways
	case "never":
		*c.p = ColorNever
	default:
		return fmt.Errorf("invalid color mode %q (use 'auto', 'always' or 'never')", s)
	}
	return nil
}
