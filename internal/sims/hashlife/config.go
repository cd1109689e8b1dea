package hashlife

import (
	"strconv"

	"quadlife/internal/core"
	"quadlife/internal/patterns"
)

// Config holds parameters for the mode factories.
type Config struct {
	Side      int
	Pattern   string
	Seed      int64
	WarpLevel int
}

// DefaultConfig returns the default configuration.
func DefaultConfig() Config {
	return Config{Side: 32, Pattern: "glider", Seed: 1, WarpLevel: 0}
}

// FromMap populates a Config from a string map.
func FromMap(cfg map[string]string) Config {
	c := DefaultConfig()
	if cfg == nil {
		return c
	}
	if v, ok := cfg["size"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed > 0 {
			c.Side = parsed
		}
	}
	if v, ok := cfg["pattern"]; ok && v != "" {
		c.Pattern = v
	}
	if v, ok := cfg["seed"]; ok {
		if parsed, err := strconv.ParseInt(v, 10, 64); err == nil {
			c.Seed = parsed
		}
	}
	if v, ok := cfg["warp-level"]; ok {
		if parsed, err := strconv.Atoi(v); err == nil && parsed >= 0 {
			c.WarpLevel = parsed
		}
	}
	return c
}

func init() {
	for _, mode := range [...]Mode{ModeTorus, ModeCropped, ModeOpen, ModeWarp} {
		mode := mode
		core.Register(mode.String(), func(cfg map[string]string) (core.Life, error) {
			c := FromMap(cfg)
			grid, err := patterns.Grid(c.Pattern, c.Side, c.Seed)
			if err != nil {
				return nil, err
			}
			return Create(grid, mode, c.WarpLevel)
		})
	}
}
