package app

import (
	"flag"
	"fmt"
	"strings"
	"time"
)

// Config represents the command-line parameters for the application.
type Config struct {
	Scale int
	// GPS is the number of generations per second. Zero runs headless
	// generations back to back.
	GPS            int
	TPS            int
	Seed           int64
	MaxGenerations int
	Options        map[string]string
}

// NewConfig returns a Config populated with sensible defaults.
func NewConfig() *Config {
	return &Config{Scale: 16, GPS: 2, TPS: 60, Seed: 42, Options: map[string]string{}}
}

// Bind attaches the configuration to the provided FlagSet.
func (c *Config) Bind(fs *flag.FlagSet) {
	fs.IntVar(&c.Scale, "scale", c.Scale, "pixels per cell")
	fs.IntVar(&c.GPS, "gps", c.GPS, "generations per second")
	fs.IntVar(&c.TPS, "tps", c.TPS, "ticks per second")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "seed for random placement")
	fs.IntVar(&c.MaxGenerations, "max", c.MaxGenerations, "stop after this many generations (0 = until stable)")
	fs.Func("opt", "simulation option as key=value (repeatable)", c.setOption)
}

func (c *Config) setOption(s string) error {
	key, value, ok := strings.Cut(s, "=")
	if !ok || key == "" {
		return fmt.Errorf("option %q: expected key=value", s)
	}
	if c.Options == nil {
		c.Options = map[string]string{}
	}
	c.Options[key] = value
	return nil
}

// Interval returns the delay between generations.
func (c *Config) Interval() time.Duration {
	if c.GPS <= 0 {
		return 0
	}
	return time.Second / time.Duration(c.GPS)
}
