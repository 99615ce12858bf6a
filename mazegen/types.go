package mazegen

import (
	"errors"
	"fmt"
	"math"
)

// Sentinel errors for generator configuration.
var (
	// ErrInvalidDimensions indicates a maze narrower or shorter than one block.
	ErrInvalidDimensions = errors.New("mazegen: width and height must be at least one block")
	// ErrInvalidBraiding indicates a braiding probability outside [0, 1].
	ErrInvalidBraiding = errors.New("mazegen: braiding must lie in [0, 1]")
	// ErrInvalidTunnels indicates more tunnel rows than block rows, or a negative count.
	ErrInvalidTunnels = errors.New("mazegen: tunnels must lie in [0, height]")
)

// Config describes a maze in blocks.
//
// Width, Height – maze size in blocks; the tile grid is (3W+2)×(3H+2).
// Seed          – seeds the generator when Generate gets no rng; 0 means time-based.
// Braiding      – 0.0 yields a perfect maze (a tree), 1.0 removes every dead end it can.
// Tunnels       – number of block rows opened through the left and right borders.
// GhostBox      – reserve the middle block as a GhostBox pen; ignored below 3×3 blocks.
type Config struct {
	Width, Height int
	Seed          int64
	Braiding      float64
	Tunnels       int
	GhostBox      bool
}

// DefaultConfig returns a 9×7 braided maze with two tunnels and a ghost box.
func DefaultConfig() Config {
	return Config{
		Width:    9,
		Height:   7,
		Braiding: 0.6,
		Tunnels:  2,
		GhostBox: true,
	}
}

// TileWidth and TileHeight return the size of the tile grid cfg produces.
func (cfg Config) TileWidth() int  { return 3*cfg.Width + 2 }
func (cfg Config) TileHeight() int { return 3*cfg.Height + 2 }

// Validate reports the first problem with cfg, if any.
func (cfg Config) Validate() error {
	if cfg.Width < 1 || cfg.Height < 1 {
		return fmt.Errorf("%w: got %dx%d", ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	if cfg.Braiding < 0 || cfg.Braiding > 1 || math.IsNaN(cfg.Braiding) {
		return fmt.Errorf("%w: got %g", ErrInvalidBraiding, cfg.Braiding)
	}
	if cfg.Tunnels < 0 || cfg.Tunnels > cfg.Height {
		return fmt.Errorf("%w: got %d for height %d", ErrInvalidTunnels, cfg.Tunnels, cfg.Height)
	}
	return nil
}

// hasGhostBox reports whether the ghost box applies to this size.
func (cfg Config) hasGhostBox() bool {
	return cfg.GhostBox && cfg.Width >= 3 && cfg.Height >= 3
}
