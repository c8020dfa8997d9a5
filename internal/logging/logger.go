// Package logging provides a leveled, colored logger with an optional
// append-only file sink.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"sync"
	"time"

	"github.com/fatih/color"

	"github.com/shirerpeton/audioSplitter/internal/config"
)

var (
	infoColor    = color.New(color.FgBlue, color.Bold)
	successColor = color.New(color.FgGreen, color.Bold)
	warnColor    = color.New(color.FgYellow, color.Bold)
	errorColor   = color.New(color.FgRed, color.Bold)
	debugColor   = color.New(color.FgCyan)
)

type Logger struct {
	mu      sync.Mutex
	out     io.Writer
	errOut  io.Writer
	file    *os.File
	verbose bool
}

// ApplyColorMode sets fatih/color's global switch. Auto keeps the library's
// own detection (NO_COLOR, terminal check).
func ApplyColorMode(mode config.ColorMode) {
	switch mode {
	case config.ColorAlways:
		color.NoColor = false
	case config.ColorNever:
		color.NoColor = true
	}
}

// NewLogger applies the color mode and opens cfg.LogFile when set. Call
// Close when done.
func NewLogger(cfg *config.Config) (*Logger, error) {
	ApplyColorMode(cfg.ColorMode)
	l := &Logger{
		out:     color.Output,
		errOut:  color.Error,
		verbose: cfg.Verbose,
	}

	if cfg.LogFile != "" {
		if err := os.MkdirAll(filepath.Dir(cfg.LogFile), 0755); err != nil {
			return nil, err
		}
		f, err := os.OpenFile(cfg.LogFile, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
		if err != nil {
			return nil, err
		}
		l.file = f
	}
	return l, nil
}

// SetOutput redirects terminal output, errors included.
func (l *Logger) SetOutput(w io.Writer) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.out = w
	l.errOut = w
}

func (l *Logger) Close() error {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.file != nil {
		err := l.file.Close()
		l.file = nil
		return err
	}
	return nil
}

func (l *Logger) line(level string, c *color.Color, text string) {
	ts := time.Now().Format("2006-01-02 15:04:05")
	l.mu.Lock()
	defer l.mu.Unlock()
	out := l.out
	if level == "ERROR" {
		out = l.errOut
	}
	_, _ = fmt.Fprintf(out, "%s %s %s\n", ts, c.Sprint("["+level+"]"), text)
	if l.file != nil {
		_, _ = fmt.Fprintf(l.file, "%s [%s] %s\n", ts, level, text)
	}
}

func (l *Logger) Info(format string, args ...any) {
	l.line("INFO", infoColor, fmt.Sprintf(format, args...))
}

func (l *Logger) Success(format string, args ...any) {
	l.line("SUCCESS", successColor, fmt.Sprintf(format, args...))
}

func (l *Logger) Warn(format string, args ...any) {
	l.line("WARN", warnColor, fmt.Sprintf(format, args...))
}

// Error also goes to stderr.
func (l *Logger) Error(format string, args ...any) {
	l.line("ERROR", errorColor, fmt.Sprintf(format, args...))
}

// Debug logs only in verbose mode.
func (l *Logger) Debug(format string, args ...any) {
	if !l.verbose {
		return
	}
	l.line("DEBUG", debugColor, fmt.Sprintf(format, args...))
}
