package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/fatih/color"

	"github.com/shirerpeton/audioSplitter/internal/common"
	"github.com/shirerpeton/audioSplitter/internal/config"
	"github.com/shirerpeton/audioSplitter/internal/cutter"
	"github.com/shirerpeton/audioSplitter/internal/logging"
	"github.com/shirerpeton/audioSplitter/internal/parser"
	"github.com/shirerpeton/audioSplitter/internal/planner"
)

var (
	labelColor = color.New(color.FgYellow)
	valueColor = color.New(color.FgGreen)
	pathColor  = color.New(color.FgMagenta)
)

func printPlan(w io.Writer, job *common.SplitJob, opts cutter.Options) {
	labelColor.Fprint(w, "input: ")
	valueColor.Fprintf(w, "%s\n", job.Input)
	labelColor.Fprint(w, "segments: ")
	valueColor.Fprintf(w, "%d\n", len(job.Instructions))
	for _, inst := range job.Instructions {
		to := inst.To
		if inst.OpenEnded() {
			to = "end"
		}
		labelColor.Fprintf(w, "%3d: ", inst.Index)
		valueColor.Fprintf(w, "%s -> %s ", inst.From, to)
		pathColor.Fprintf(w, "%s\n", cutter.OutputPath(inst, opts))
	}
	fmt.Fprintln(w)
}

// buildJob parses the timestamps and plans the cuts. Nothing is planned when
// any timestamp is malformed.
func buildJob(ctx context.Context, cfg *config.Config) (*common.SplitJob, error) {
	job := &common.SplitJob{
		Input:      cfg.Input,
		Extension:  cfg.Extension,
		OutputDir:  cfg.OutputDir,
		Timestamps: cfg.Timestamps,
	}
	offsets, err := parser.ParseAll(ctx, job.Timestamps)
	if err != nil {
		return nil, err
	}
	job.Offsets = offsets
	job.Instructions = planner.Plan(job.Input, job.Offsets, job.Extension)
	return job, nil
}

func main() {
	cfg := config.DefaultConfig()
	if err := config.ParseFlags(&cfg, os.Args[1:]); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			os.Exit(0)
		}
		fmt.Fprintf(os.Stderr, "audiosplit: %v\n", err)
		os.Exit(1)
	}
	if cfg.ShowVersion {
		fmt.Println("audiosplit v" + config.Version)
		return
	}

	cfg.ResolveExtension()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "audiosplit: %v\n", err)
		os.Exit(1)
	}

	log, err := logging.NewLogger(&cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "audiosplit: %v\n", err)
		os.Exit(1)
	}
	defer log.Close()

	if err := run(&cfg, log); err != nil {
		log.Error("%v", err)
		log.Close()
		os.Exit(1)
	}
}

func run(cfg *config.Config, log *logging.Logger) error {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	job, err := buildJob(ctx, cfg)
	if err != nil {
		return fmt.Errorf("parsing timestamps: %w", err)
	}

	opts := cutter.Options{
		FFmpeg:    cfg.FFmpeg,
		OutputDir: cfg.OutputDir,
		Overwrite: cfg.Overwrite,
		CopyCodec: cfg.CopyCodec,
	}
	printPlan(color.Output, job, opts)

	if !cfg.Run {
		log.Info("Plan only, pass -run to cut")
		return nil
	}

	bin, err := cutter.CheckBinary(opts.FFmpeg)
	if err != nil {
		return err
	}
	opts.FFmpeg = bin

	c := cutter.New(opts, log)
	err = c.Run(ctx, job.Instructions, func(inst common.CutInstruction) {
		log.Success("%s - done", cutter.OutputPath(inst, opts))
	})
	if err != nil {
		return err
	}
	log.Success("Split %s into %d segments", job.Input, len(job.Instructions))
	return nil
}
