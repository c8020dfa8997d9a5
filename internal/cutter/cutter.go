// Package cutter runs ffmpeg once per planned cut instruction.
//
// Whether the sample at exactly a boundary lands in the segment before or
// after it is decided by ffmpeg's handling of -ss and -to, not here.
package cutter

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	ffmpeg "github.com/u2takey/ffmpeg-go"

	"github.com/shirerpeton/audioSplitter/internal/common"
)

// ErrExternalTool matches every ffmpeg invocation failure via errors.Is.
var ErrExternalTool = errors.New("external tool failed")

type ToolError struct {
	Instruction common.CutInstruction
	Args        []string
	Stderr      string
	Err         error
}

func (e *ToolError) Error() string {
	msg := fmt.Sprintf("ffmpeg failed on %s: %v", e.Instruction.Output, e.Err)
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += "\n" + stderr
	}
	return msg
}

func (e *ToolError) Unwrap() error {
	return e.Err
}

func (e *ToolError) Is(target error) bool {
	return target == ErrExternalTool
}

type Options struct {
	FFmpeg    string
	OutputDir string
	Overwrite bool
	CopyCodec bool
}

// Logger is the subset of logging.Logger the cutter needs.
type Logger interface {
	Debug(string, ...any)
}

type Cutter struct {
	opts Options
	log  Logger
}

func New(opts Options, log Logger) *Cutter {
	if opts.FFmpeg == "" {
		opts.FFmpeg = "ffmpeg"
	}
	return &Cutter{opts: opts, log: log}
}

// OutputPath is where the instruction's segment is written.
func OutputPath(inst common.CutInstruction, opts Options) string {
	return filepath.Join(opts.OutputDir, inst.Output)
}

// Args builds the ffmpeg arguments, without the binary, for one
// instruction. The open-ended instruction gets no -to and runs to the end
// of the input.
func Args(inst common.CutInstruction, opts Options) []string {
	inputArgs := ffmpeg.KwArgs{"ss": inst.From}
	if !inst.OpenEnded() {
		inputArgs["to"] = inst.To
	}
	outputArgs := ffmpeg.KwArgs{}
	if opts.CopyCodec {
		outputArgs["c"] = "copy"
	}

	stream := ffmpeg.Input(inst.Input, inputArgs).Output(OutputPath(inst, opts), outputArgs)
	if opts.Overwrite {
		stream = stream.OverWriteOutput()
	}
	return stream.GetArgs()
}

// Cut runs ffmpeg for a single instruction. A failed run comes back as a
// *ToolError carrying ffmpeg's stderr; a cancelled one as ctx.Err().
func (c *Cutter) Cut(ctx context.Context, inst common.CutInstruction) error {
	args := Args(inst, c.opts)
	if err := os.MkdirAll(c.opts.OutputDir, 0755); err != nil {
		return err
	}

	cmd := exec.CommandContext(ctx, c.opts.FFmpeg, args...)
	var stderr bytes.Buffer
	cmd.Stderr = &stderr
	if c.log != nil {
		c.log.Debug("%s %s", c.opts.FFmpeg, strings.Join(args, " "))
	}

	if err := cmd.Run(); err != nil {
		// A killed ffmpeg is the cancellation, not a tool failure.
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		return &ToolError{
			Instruction: inst,
			Args:        args,
			Stderr:      stderr.String(),
			Err:         err,
		}
	}
	return nil
}

// Run cuts every instruction in order, one at a time, and stops at the
// first failure. Segments already written are left in place. onDone, when
// non-nil, is called after each successful cut.
func (c *Cutter) Run(ctx context.Context, insts []common.CutInstruction, onDone func(common.CutInstruction)) error {
	for _, inst := range insts {
		if err := ctx.Err(); err != nil {
			return err
		}
		if err := c.Cut(ctx, inst); err != nil {
			return err
		}
		if onDone != nil {
			onDone(inst)
		}
	}
	return nil
}

// CheckBinary resolves the ffmpeg binary before any work starts.
func CheckBinary(name string) (string, error) {
	path, err := exec.LookPath(name)
	if err != nil {
		return "", fmt.Errorf("%s not found: %w", name, err)
	}
	return path, nil
}
