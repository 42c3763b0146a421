// Package config layers candytris settings from defaults, a .env file, the
// process environment and command line flags, in that order of precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
	"github.com/plus3/candytris/game"
)

// EnvPrefix is prepended to every environment variable name.
const EnvPrefix = "CANDYTRIS_"

// ErrInvalidConfig is returned when a setting cannot be parsed or describes
// an unplayable game.
var ErrInvalidConfig = errors.New("invalid config")

// Config holds the settings shared by every host.
type Config struct {
	Width         int
	Height        int
	DropInterval  time.Duration
	Seed          uint64
	Catalog       string
	Colors        int
	SpecialChance float64
	Mute          bool
	FPS           int
	Debug         bool
	// EnvFile is read before the environment. A missing file is ignored.
	EnvFile string
}

// Default returns the built-in settings.
func Default() Config {
	opts := game.DefaultOptions()
	return Config{
		Width:         opts.Width,
		Height:        opts.Height,
		DropInterval:  opts.DropInterval,
		Catalog:       string(opts.Catalog),
		Colors:        opts.Colors,
		SpecialChance: opts.SpecialChance,
		FPS:           60,
		EnvFile:       ".env",
	}
}

// Load builds the configuration for a host. Flags are registered on flags,
// which may already carry host specific flags, and parsed from args.
func Load(flags *flag.FlagSet, args []string) (Config, error) {
	cfg := Default()
	if name := os.Getenv(EnvPrefix + "ENV_FILE"); name != "" {
		cfg.EnvFile = name
	}

	if err := loadEnvFile(cfg.EnvFile); err != nil {
		return cfg, err
	}
	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}

	cfg.RegisterFlags(flags)
	if err := flags.Parse(args); err != nil {
		return cfg, err
	}

	return cfg, cfg.Validate()
}

func loadEnvFile(name string) error {
	if name == "" {
		return nil
	}
	err := godotenv.Load(name)
	if err == nil || errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	return fmt.Errorf("%w: env file %s: %w", ErrInvalidConfig, name, err)
}

// RegisterFlags binds the settings to flags using the current values as
// defaults.
func (c *Config) RegisterFlags(flags *flag.FlagSet) {
	flags.IntVar(&c.Width, "width", c.Width, "Board width in cells.")
	flags.IntVar(&c.Height, "height", c.Height, "Board height in cells.")
	flags.DurationVar(&c.DropInterval, "drop", c.DropInterval, "Time between automatic fall steps.")
	flags.Uint64Var(&c.Seed, "seed", c.Seed, "Piece generator seed, 0 picks one from the clock.")
	flags.StringVar(&c.Catalog, "catalog", c.Catalog, "Shape catalog: classic or compact.")
	flags.IntVar(&c.Colors, "colors", c.Colors, "Number of block colors.")
	flags.Float64Var(&c.SpecialChance, "specials", c.SpecialChance, "Chance that a generated cell is a special block.")
	flags.BoolVar(&c.Mute, "mute", c.Mute, "Disable sound.")
	flags.IntVar(&c.FPS, "fps", c.FPS, "Frames per second of the game loop.")
	flags.BoolVar(&c.Debug, "debug", c.Debug, "Show debug panels where the host supports them.")
}

func (c *Config) applyEnv() error {
	var errs []error
	parse := func(key string, set func(string) error) {
		value, ok := os.LookupEnv(EnvPrefix + key)
		if !ok || value == "" {
			return
		}
		if err := set(value); err != nil {
			errs = append(errs, fmt.Errorf("%w: %s%s=%q: %w", ErrInvalidConfig, EnvPrefix, key, value, err))
		}
	}

	parse("WIDTH", intSetter(&c.Width))
	parse("HEIGHT", intSetter(&c.Height))
	parse("DROP_INTERVAL", func(v string) (err error) {
		c.DropInterval, err = time.ParseDuration(v)
		return err
	})
	parse("SEED", func(v string) (err error) {
		c.Seed, err = strconv.ParseUint(v, 10, 64)
		return err
	})
	parse("CATALOG", func(v string) error {
		c.Catalog = v
		return nil
	})
	parse("COLORS", intSetter(&c.Colors))
	parse("SPECIAL_CHANCE", func(v string) (err error) {
		c.SpecialChance, err = strconv.ParseFloat(v, 64)
		return err
	})
	parse("MUTE", boolSetter(&c.Mute))
	parse("FPS", intSetter(&c.FPS))
	parse("DEBUG", boolSetter(&c.Debug))

	return errors.Join(errs...)
}

func intSetter(dst *int) func(string) error {
	return func(v string) (err error) {
		*dst, err = strconv.Atoi(v)
		return err
	}
}

func boolSetter(dst *bool) func(string) error {
	return func(v string) (err error) {
		*dst, err = strconv.ParseBool(v)
		return err
	}
}

// Validate checks the host settings and the game options they produce.
func (c Config) Validate() error {
	if c.FPS <= 0 {
		return fmt.Errorf("%w: fps %d must be positive", ErrInvalidConfig, c.FPS)
	}
	if err := c.options(c.Seed).Validate(); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	return nil
}

// FrameInterval is the wall time between two loop frames.
func (c Config) FrameInterval() time.Duration {
	return time.Second / time.Duration(c.FPS)
}

// GameOptions converts the settings to engine options. A zero seed is
// replaced with one derived from the clock.
func (c Config) GameOptions() game.Options {
	seed := c.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	return c.options(seed)
}

func (c Config) options(seed uint64) game.Options {
	return game.Options{
		Width:         c.Width,
		Height:        c.Height,
		DropInterval:  c.DropInterval,
		Catalog:       game.CatalogName(c.Catalog),
		Colors:        c.Colors,
		SpecialChance: c.SpecialChance,
		Seed:          seed,
	}
}
