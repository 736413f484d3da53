// Package config reads the game settings from flags, the environment and
// an optional .env file.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/joho/godotenv"
	"github.com/urfave/cli/v3"

	"snake-classic/game/types"
)

// ErrInvalidConfig wraps every validation failure.
var ErrInvalidConfig = errors.New("invalid config")

// MaxGridSide bounds each grid dimension. Larger grids cannot be drawn.
const MaxGridSide = 1000

const (
	flagWidth  = "width"
	flagHeight = "height"
	flagTick   = "tick"
	flagSeed   = "seed"
	flagMute   = "mute"
	flagDebug  = "debug"
)

type Config struct {
	Width  int
	Height int
	Tick   time.Duration
	Seed   uint64 // 0 seeds from the clock
	Mute   bool
	Debug  bool
}

func Default() Config {
	return Config{
		Width:  types.DefaultGridWidth,
		Height: types.DefaultGridHeight,
		Tick:   time.Second / types.TickRate,
	}
}

func (c Config) Validate() error {
	grid := types.Grid{Width: c.Width, Height: c.Height}
	if err := grid.Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if c.Width > MaxGridSide || c.Height > MaxGridSide {
		return fmt.Errorf("%w: grid %dx%d exceeds %d cells per side", ErrInvalidConfig, c.Width, c.Height, MaxGridSide)
	}
	if c.Tick <= 0 {
		return fmt.Errorf("%w: tick must be positive, got %s", ErrInvalidConfig, c.Tick)
	}
	return nil
}

// Flags returns the global flags, each backed by a SNAKE_* variable.
func Flags() []cli.Flag {
	d := Default()
	return []cli.Flag{
		&cli.IntFlag{
			Name:    flagWidth,
			Value:   d.Width,
			Usage:   "grid width in cells",
			Sources: cli.EnvVars("SNAKE_GRID_WIDTH"),
		},
		&cli.IntFlag{
			Name:    flagHeight,
			Value:   d.Height,
			Usage:   "grid height in cells",
			Sources: cli.EnvVars("SNAKE_GRID_HEIGHT"),
		},
		&cli.DurationFlag{
			Name:    flagTick,
			Value:   d.Tick,
			Usage:   "time between two moves",
			Sources: cli.EnvVars("SNAKE_TICK"),
		},
		&cli.Uint64Flag{
			Name:    flagSeed,
			Usage:   "random seed, 0 for a clock based seed",
			Sources: cli.EnvVars("SNAKE_SEED"),
		},
		&cli.BoolFlag{
			Name:    flagMute,
			Usage:   "disable sound",
			Sources: cli.EnvVars("SNAKE_MUTE"),
		},
		&cli.BoolFlag{
			Name:    flagDebug,
			Usage:   "verbose logging with file and line",
			Sources: cli.EnvVars("SNAKE_DEBUG"),
		},
	}
}

// FromCommand reads and validates the flags declared by Flags.
func FromCommand(cmd *cli.Command) (Config, error) {
	c := Config{
		Width:  int(cmd.Int(flagWidth)),
		Height: int(cmd.Int(flagHeight)),
		Tick:   cmd.Duration(flagTick),
		Seed:   cmd.Uint64(flagSeed),
		Mute:   cmd.Bool(flagMute),
		Debug:  cmd.Bool(flagDebug),
	}
	if err := c.Validate(); err != nil {
		return Config{}, err
	}
	return c, nil
}

// LoadEnv loads variables from the given .env files, or from ".env" when none
// is given. Missing files are skipped and variables already set win.
func LoadEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	for _, path := range paths {
		if err := godotenv.Load(path); err != nil {
			if errors.Is(err, fs.ErrNotExist) {
				continue
			}
			return fmt.Errorf("load %s: %w", path, err)
		}
	}
	return nil
}
