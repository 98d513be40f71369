package app

import (
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"time"

	"gopkg.in/yaml.v3"

	"termlife/internal/core"
)

// Display modes.
const (
	ModePrint  = "print"
	ModeTUI    = "tui"
	ModeWindow = "window"
)

// Config represents the command-line parameters for the application. Every
// field can also come from a YAML file named by -config; explicit flags win.
type Config struct {
	Sim         string `yaml:"sim"`
	Variant     string `yaml:"variant"`
	Mode        string `yaml:"mode"`
	Width       int    `yaml:"width"`
	Height      int    `yaml:"height"`
	File        string `yaml:"file"`
	IntervalMS  int    `yaml:"interval_ms"`
	Steps       int    `yaml:"steps"`
	Generations int    `yaml:"generations"`
	Seed        int64  `yaml:"seed"`
	Scale       int    `yaml:"scale"`
	Rule        int    `yaml:"rule"`
	LogLevel    string `yaml:"log_level"`

	ConfigFile string `yaml:"-"`
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{
		Sim:        "life",
		Variant:    "normal",
		Mode:       ModeTUI,
		Width:      50,
		Height:     50,
		IntervalMS: int(core.DefaultInterval / time.Millisecond),
		Scale:      8,
		Rule:       110,
		LogLevel:   "info",
	}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Sim, "sim", c.Sim, "simulation to run (life, ant, briansbrain, elementary)")
	fs.StringVar(&c.Variant, "variant", c.Variant, "life variant: normal, vonneumann or dayandnight")
	fs.StringVar(&c.Mode, "mode", c.Mode, "display mode: print, tui or window")
	fs.IntVar(&c.Width, "width", c.Width, "grid width")
	fs.IntVar(&c.Height, "height", c.Height, "grid height")
	fs.StringVar(&c.File, "file", c.File, "initial grid file ('0' is dead, anything else alive)")
	fs.IntVar(&c.IntervalMS, "interval", c.IntervalMS, "milliseconds between generations")
	fs.IntVar(&c.Steps, "steps", c.Steps, "ant steps to apply before the first frame")
	fs.IntVar(&c.Generations, "generations", c.Generations, "generations to print in print mode (0 = until interrupted)")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random grids (0 = time based)")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixel scale multiplier in window mode")
	fs.IntVar(&c.Rule, "rule", c.Rule, "Wolfram code for the elementary sim")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&c.ConfigFile, "config", c.ConfigFile, "YAML file with default settings")
}

// LoadFile overlays the YAML document at path onto c.
func (c *Config) LoadFile(path string) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("reading config: %w", err)
	}
	if err := yaml.Unmarshal(data, c); err != nil {
		return fmt.Errorf("parsing config %s: %w", path, err)
	}
	return nil
}

// Parse builds a Config from defaults, the optional -config file and args,
// in increasing order of precedence.
func Parse(name string, args []string, output io.Writer) (*Config, error) {
	c := NewConfig()
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(output)
	c.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	if c.ConfigFile == "" {
		return c, c.Validate()
	}

	fromFile := NewConfig()
	if err := fromFile.LoadFile(c.ConfigFile); err != nil {
		return nil, err
	}
	// Re-apply the command line so explicit flags override the file.
	fs = flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	fromFile.Bind(fs)
	if err := fs.Parse(args); err != nil {
		return nil, err
	}
	return fromFile, fromFile.Validate()
}

// Validate rejects settings no sim can run with.
func (c *Config) Validate() error {
	switch c.Mode {
	case ModePrint, ModeTUI, ModeWindow:
	default:
		return fmt.Errorf("unknown mode %q (want %s, %s or %s)", c.Mode, ModePrint, ModeTUI, ModeWindow)
	}
	if c.File == "" && (c.Width <= 0 || c.Height <= 0) {
		return fmt.Errorf("%w: %dx%d", core.ErrInvalidDimension, c.Width, c.Height)
	}
	if c.IntervalMS < 0 {
		return fmt.Errorf("interval must not be negative, got %d", c.IntervalMS)
	}
	if c.Steps < 0 || c.Generations < 0 {
		return fmt.Errorf("steps and generations must not be negative")
	}
	return nil
}

// Interval returns the configured tick interval.
func (c *Config) Interval() time.Duration {
	return time.Duration(c.IntervalMS) * time.Millisecond
}

// SimOptions converts the config into the string map understood by sim
// factories.
func (c *Config) SimOptions() map[string]string {
	opts := map[string]string{
		"w":       strconv.Itoa(c.Width),
		"h":       strconv.Itoa(c.Height),
		"seed":    strconv.FormatInt(c.Seed, 10),
		"variant": c.Variant,
		"steps":   strconv.Itoa(c.Steps),
		"rule":    strconv.Itoa(c.Rule),
	}
	if c.File != "" {
		opts["file"] = c.File
	}
	return opts
}
