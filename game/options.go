package game

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidOptions is returned by Options.Validate.
var ErrInvalidOptions = errors.New("invalid game options")

// Options configures a Game.
type Options struct {
	Width  int
	Height int
	// DropInterval is the time between automatic fall steps.
	DropInterval time.Duration
	Catalog      CatalogName
	// Colors is the palette size, 3 to MaxColors.
	Colors int
	// SpecialChance is the per-cell probability that a generated cell is a
	// special clearing block.
	SpecialChance float64
	// Seed drives the piece generator.
	Seed uint64
}

// DefaultOptions returns the standard 10×20 game with five colors and a
// half-second drop.
func DefaultOptions() Options {
	return Options{
		Width:         10,
		Height:        20,
		DropInterval:  500 * time.Millisecond,
		Catalog:       CatalogClassic,
		Colors:        5,
		SpecialChance: 0.03,
	}
}

// Validate checks that the options describe a playable game.
func (o Options) Validate() error {
	switch {
	case o.Width < 4 || o.Height < 4:
		return fmt.Errorf("%w: board %dx%d is smaller than 4x4", ErrInvalidOptions, o.Width, o.Height)
	case o.DropInterval <= 0:
		return fmt.Errorf("%w: drop interval %s must be positive", ErrInvalidOptions, o.DropInterval)
	case o.Colors < MinRun || o.Colors > MaxColors:
		return fmt.Errorf("%w: %d colors outside [%d,%d]", ErrInvalidOptions, o.Colors, MinRun, MaxColors)
	case o.SpecialChance < 0 || o.SpecialChance > 1:
		return fmt.Errorf("%w: special chance %.2f outside [0,1]", ErrInvalidOptions, o.SpecialChance)
	}
	if _, ok := LookupCatalog(o.Catalog); !ok {
		return fmt.Errorf("%w: unknown catalog %q", ErrInvalidOptions, o.Catalog)
	}
	return nil
}
