// Package config holds the launch parameters shared by both frontends.
package config

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"
)

// Config holds window geometry, HUD sizing and logging options.
type Config struct {
	// Window size in pixels. The terminal frontend treats one cell as one pixel.
	WindowWidth  int
	WindowHeight int

	// Logical grid the window is divided into. Tile size is Window/Grid.
	Cols int
	Rows int

	// UIBand is the number of rows at the bottom reserved for the HUD.
	UIBand int

	// TooltipOffset is how far left of the click the tooltip box starts, in pixels.
	TooltipOffset float64

	LogSlots       int
	EquipmentSlots int

	// Seed drives monster placement jitter. 0 means pick one from the clock.
	Seed       int64
	FirstLevel int

	LogLevel  string
	LogFormat string
}

// Default returns the configuration for a 1280x800 window of 16px tiles.
func Default() Config {
	return Config{
		WindowWidth:    1280,
		WindowHeight:   800,
		Cols:           80,
		Rows:           50,
		UIBand:         8,
		TooltipOffset:  100,
		LogSlots:       4,
		EquipmentSlots: 8,
		LogLevel:       "info",
		LogFormat:      "text",
	}
}

// Terminal returns the defaults for the tcell frontend, where a pixel is a cell.
func Terminal() Config {
	c := Default()
	c.WindowWidth = c.Cols
	c.WindowHeight = c.Rows
	c.TooltipOffset = 6
	return c
}

// RegisterFlags binds the command line flags onto c.
func (c *Config) RegisterFlags(fs *flag.FlagSet) {
	fs.IntVar(&c.WindowWidth, "width", c.WindowWidth, "Window width in pixels")
	fs.IntVar(&c.WindowHeight, "height", c.WindowHeight, "Window height in pixels")
	fs.IntVar(&c.UIBand, "hud-rows", c.UIBand, "Rows reserved for the HUD strip")
	fs.Int64Var(&c.Seed, "seed", c.Seed, "Random seed (0 for random)")
	fs.IntVar(&c.FirstLevel, "level", c.FirstLevel, "Index of the first level to load")
	fs.StringVar(&c.LogLevel, "log-level", c.LogLevel, "Log level (debug, info, warn, error)")
	fs.StringVar(&c.LogFormat, "log-format", c.LogFormat, "Log format (text or json)")
}

// ApplyEnv overrides fields from LOG_LEVEL, LOG_FORMAT and ROGUEQUEST_SEED.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) error {
	if lookup == nil {
		lookup = os.LookupEnv
	}
	if v, ok := lookup("LOG_LEVEL"); ok && v != "" {
		c.LogLevel = v
	}
	if v, ok := lookup("LOG_FORMAT"); ok && v != "" {
		c.LogFormat = v
	}
	if v, ok := lookup("ROGUEQUEST_SEED"); ok && v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("parse ROGUEQUEST_SEED: %w", err)
		}
		c.Seed = seed
	}
	return nil
}

// Load builds a Config from base, the environment and then args.
// Flags win over the environment.
func Load(base Config, args []string, lookup func(string) (string, bool)) (Config, error) {
	c := base
	if err := c.ApplyEnv(lookup); err != nil {
		return c, err
	}
	fs := flag.NewFlagSet("roguequest", flag.ContinueOnError)
	c.RegisterFlags(fs)
	if err := fs.Parse(args); err != nil {
		return c, err
	}
	if c.Seed == 0 {
		c.Seed = time.Now().UnixNano()
	}
	return c, c.Validate()
}

// Validate checks that the grid divides the window and leaves room to play.
func (c Config) Validate() error {
	var errs []error
	if c.WindowWidth <= 0 || c.WindowHeight <= 0 {
		errs = append(errs, fmt.Errorf("window size %dx%d must be positive", c.WindowWidth, c.WindowHeight))
	}
	if c.Cols <= 0 || c.Rows <= 0 {
		errs = append(errs, fmt.Errorf("grid %dx%d must be positive", c.Cols, c.Rows))
	}
	if c.UIBand < 0 || c.UIBand >= c.Rows {
		errs = append(errs, fmt.Errorf("hud rows %d must be in [0, %d)", c.UIBand, c.Rows))
	}
	if c.LogSlots <= 0 {
		errs = append(errs, errors.New("log slots must be positive"))
	}
	if c.EquipmentSlots <= 0 || c.EquipmentSlots > 9 {
		errs = append(errs, fmt.Errorf("equipment slots %d must be in [1, 9]", c.EquipmentSlots))
	}
	return errors.Join(errs...)
}

// TileSize returns the pixel size of one grid tile.
func (c Config) TileSize() (w, h float64) {
	return float64(c.WindowWidth) / float64(c.Cols), float64(c.WindowHeight) / float64(c.Rows)
}

// PlayRows is the number of grid rows above the HUD strip.
func (c Config) PlayRows() int {
	return c.Rows - c.UIBand
}
