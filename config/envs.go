// Package config loads the maze viewer's settings from a .env file and the
// environment.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"github.com/joho/godotenv"
	"github.com/katalvlaran/mazepath/mazegen"
)

// ErrInvalidValue indicates an environment variable that does not parse.
var ErrInvalidValue = errors.New("config: invalid value")

// Config holds the viewer's configuration values.
type Config struct {
	Width     int     // Maze width in blocks
	Height    int     // Maze height in blocks
	Seed      int64   // Generator seed, 0 for time-based
	Braiding  float64 // Dead-end removal probability in [0, 1]
	Tunnels   int     // Rows open through the side borders
	GhostBox  bool    // Reserve the middle block as a ghost pen
	ShowGraph bool    // Start with the graph overlay visible
	Sound     bool    // Play a chime when the chase ends
	LogFile   string  // Log destination; the terminal belongs to the UI
}

// Load reads configuration from the environment, falling back to the given
// .env files (".env" when none are named) and then to defaults. Variables
// already in the environment win over the files; a missing file is not an
// error. The process environment is not modified.
func Load(files ...string) (Config, error) {
	dotenv, err := godotenv.Read(files...)
	if err != nil {
		if !errors.Is(err, fs.ErrNotExist) {
			return Config{}, fmt.Errorf("config: reading .env: %w", err)
		}
		dotenv = map[string]string{}
	}
	env := source(dotenv)

	def := mazegen.DefaultConfig()
	cfg := Config{
		LogFile: env.getEnvWithDefault("MAZE_LOG_FILE", "mazeview.log"),
	}
	if cfg.Width, err = env.getEnvAsInt("MAZE_WIDTH", def.Width); err != nil {
		return Config{}, err
	}
	if cfg.Height, err = env.getEnvAsInt("MAZE_HEIGHT", def.Height); err != nil {
		return Config{}, err
	}
	if cfg.Seed, err = env.getEnvAsInt64("MAZE_SEED", def.Seed); err != nil {
		return Config{}, err
	}
	if cfg.Braiding, err = env.getEnvAsFloat("MAZE_BRAIDING", def.Braiding); err != nil {
		return Config{}, err
	}
	if cfg.Tunnels, err = env.getEnvAsInt("MAZE_TUNNELS", def.Tunnels); err != nil {
		return Config{}, err
	}
	if cfg.GhostBox, err = env.getEnvAsBool("MAZE_GHOST_BOX", def.GhostBox); err != nil {
		return Config{}, err
	}
	if cfg.ShowGraph, err = env.getEnvAsBool("MAZE_SHOW_GRAPH", false); err != nil {
		return Config{}, err
	}
	if cfg.Sound, err = env.getEnvAsBool("MAZE_SOUND", true); err != nil {
		return Config{}, err
	}

	if err := cfg.Maze().Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Maze returns the generator configuration described by c.
func (c Config) Maze() mazegen.Config {
	return mazegen.Config{
		Width:    c.Width,
		Height:   c.Height,
		Seed:     c.Seed,
		Braiding: c.Braiding,
		Tunnels:  c.Tunnels,
		GhostBox: c.GhostBox,
	}
}

// source resolves variables from the environment, then from parsed .env values.
type source map[string]string

func (s source) lookup(key string) (string, bool) {
	if value, exists := os.LookupEnv(key); exists {
		return value, true
	}
	value, exists := s[key]
	return value, exists
}

// getEnvWithDefault retrieves the value of a variable or returns a default value if not set.
func (s source) getEnvWithDefault(key, defaultValue string) string {
	if value, exists := s.lookup(key); exists {
		return value
	}
	return defaultValue
}

func (s source) getEnvAsInt(key string, defaultValue int) (int, error) {
	value, exists := s.lookup(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.Atoi(value)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %q", ErrInvalidValue, key, value)
	}
	return n, nil
}

func (s source) getEnvAsInt64(key string, defaultValue int64) (int64, error) {
	value, exists := s.lookup(key)
	if !exists {
		return defaultValue, nil
	}
	n, err := strconv.ParseInt(value, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be an integer: %q", ErrInvalidValue, key, value)
	}
	return n, nil
}

func (s source) getEnvAsFloat(key string, defaultValue float64) (float64, error) {
	value, exists := s.lookup(key)
	if !exists {
		return defaultValue, nil
	}
	f, err := strconv.ParseFloat(value, 64)
	if err != nil {
		return 0, fmt.Errorf("%w: %s must be a number: %q", ErrInvalidValue, key, value)
	}
	return f, nil
}

func (s source) getEnvAsBool(key string, defaultValue bool) (bool, error) {
	value, exists := s.lookup(key)
	if !exists {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return false, fmt.Errorf("%w: %s must be a boolean: %q", ErrInvalidValue, key, value)
	}
	return b, nil
}
