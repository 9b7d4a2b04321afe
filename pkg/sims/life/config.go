package life

import "strconv"

// Config holds parameters for the life simulation.
type Config struct {
	Size int
	Seed int64

	// Margin keeps scattered cells away from the edge.
	Margin int
	// ScatterMin and ScatterMax bound the number of toggles made by Reset.
	ScatterMin int
	ScatterMax int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return withScatter(Config{Size: 30, Seed: 1337, Margin: 5})
}

// withScatter derives scatter bounds from the board area.
func withScatter(c Config) Config {
	area := c.Size * c.Size
	c.ScatterMin = area / 9
	c.ScatterMax = area / 6
	return c
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Size = parsed
			c = withScatter(c)
		}
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["margin"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.Margin = parsed
		}
	}
	if v, ok := cfg["scatter_min"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ScatterMin = parsed
		}
	}
	if v, ok := cfg["scatter_max"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.ScatterMax = parsed
		}
	}
	if c.ScatterMax < c.ScatterMin {
		c.ScatterMax = c.ScatterMin
	}
	return c
}
