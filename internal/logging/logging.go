// Package logging builds the hclog loggers used by palettegen.
package logging

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/hashicorp/go-hclog"
	"golang.org/x/term"
)

// Options configures a logger.
type Options struct {
	Name    string
	Level   string
	Verbose bool
	Quiet   bool
	Output  io.Writer
}

// ParseLevel maps a level name to an hclog level. An empty name is info.
func ParseLevel(name string) (hclog.Level, error) {
	if strings.TrimSpace(name) == "" {
		return hclog.Info, nil
	}
	level := hclog.LevelFromString(name)
	if level == hclog.NoLevel {
		return hclog.NoLevel, fmt.Errorf("unknown log level: %s (use trace, debug, info, warn, error or off)", name)
	}
	return level, nil
}

// New creates a logger. Verbose forces debug and Quiet restricts output to
// errors; either overrides Level.
func New(opts Options) (hclog.Logger, error) {
	level, err := ParseLevel(opts.Level)
	if err != nil {
		return nil, err
	}
	switch {
	case opts.Quiet:
		level = hclog.Error
	case opts.Verbose:
		level = hclog.Debug
	}

	out := opts.Output
	if out == nil {
		out = os.Stderr
	}

	return hclog.New(&hclog.LoggerOptions{
		Name:   opts.Name,
		Level:  level,
		Output: out,
		Color:  colourOption(out),
	}), nil
}

// colourOption enables coloured levels only when writing to a terminal.
func colourOption(out io.Writer) hclog.ColorOption {
	if f, ok := out.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		return hclog.AutoColor
	}
	return hclog.ColorOff
}
