package app

import (
	"flag"
	"fmt"
	"strings"
)

// Config represents the command-line parameters for the viewer.
type Config struct {
	Board   string
	Width   int
	Height  int
	Scale   int
	TPS     int
	GPS     int
	Seed    int64
	Density float64
	Paused  bool
	God     int
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Board: "packed", Width: 100, Height: 100, Scale: 5, TPS: 60, GPS: 10, Seed: 10808, Density: 0.5}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Board, "board", c.Board, "board implementation to display")
	fs.IntVar(&c.Width, "w", c.Width, "board width in cells")
	fs.IntVar(&c.Height, "h", c.Height, "board height in cells")
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.TPS, "tps", c.TPS, "frames per second")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second while running")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for board randomisation and god functions")
	fs.Float64Var(&c.Density, "density", c.Density, "initial fraction of live cells")
	fs.BoolVar(&c.Paused, "paused", c.Paused, "start with the simulation stopped")
	fs.IntVar(&c.God, "god", c.God, "apply god function N (1-based) before the first frame; 0 disables")
}

// DiffConfig represents the command-line parameters for the differential
// tester.
type DiffConfig struct {
	Preset    string
	Baseline  string
	Candidate string
}

// NewDiffConfig returns a DiffConfig populated with sensible defaults.
func NewDiffConfig() *DiffConfig {
	return &DiffConfig{Preset: "verification", Baseline: "naive", Candidate: "packed"}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *DiffConfig) Bind(fs *flag.FlagSet) {
	fs.StringVar(&c.Preset, "preset", c.Preset, "scenario preset: verification or speed")
	fs.StringVar(&c.Baseline, "baseline", c.Baseline, "reference board implementation")
	fs.StringVar(&c.Candidate, "candidate", c.Candidate, "board implementation under test")
}

// ParseOverrides turns key=value arguments into a map.
func ParseOverrides(args []string) (map[string]string, error) {
	out := make(map[string]string, len(args))
	for _, arg := range args {
		k, v, ok := strings.Cut(arg, "=")
		if !ok || k == "" {
			return nil, fmt.Errorf("override %q: want key=value", arg)
		}
		out[k] = v
	}
	return out, nil
}
