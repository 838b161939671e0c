package game

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"strconv"

	"gopkg.in/yaml.v3"

	"github.com/samdwyer/crownquest/internal/gamedata"
)

// Environment variables that override the config file.
const (
	EnvConfig = "CROWNQUEST_CONFIG"
	EnvSeed   = "CROWNQUEST_SEED"
	EnvZone   = "CROWNQUEST_ZONE"

	DefaultConfigFile = "crownquest.yaml"
)

// Config holds game configuration options.
type Config struct {
	// Seed for random number generation. Used for reproducible encounters.
	// A seed of 0 means a random seed will be generated.
	Seed int64 `yaml:"seed"`

	// Zone overrides the zone the party walks in. Empty keeps the saved one.
	Zone string `yaml:"zone"`

	FrameRate int    `yaml:"frameRate"` // Frames per second
	Persist   bool   `yaml:"persist"`   // Save progress after every battle
	AppName   string `yaml:"appName"`   // Save directory name
	LogFile   string `yaml:"logFile"`   // Where log output goes while the screen is up
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		FrameRate: 30,
		Persist:   true,
		AppName:   "crownquest",
		LogFile:   "crownquest.log",
	}
}

// LoadConfig reads a YAML config file on top of the defaults and applies
// environment overrides. A missing file is not an error.
func LoadConfig(path string) (Config, error) {
	cfg := DefaultConfig()

	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// Defaults only
	case err != nil:
		return cfg, fmt.Errorf("config: load %s: %w", path, err)
	default:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: unmarshal %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return cfg, err
	}
	return cfg, nil
}

func (c *Config) applyEnv() error {
	if v := os.Getenv(EnvSeed); v != "" {
		seed, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return fmt.Errorf("config: %s=%q: %w", EnvSeed, v, err)
		}
		c.Seed = seed
	}
	if v := os.Getenv(EnvZone); v != "" {
		c.Zone = v
	}
	return nil
}

// Validate checks the config against the zone table.
func (c Config) Validate(zones *gamedata.ZoneRegistry) error {
	if c.FrameRate < 1 || c.FrameRate > 120 {
		return fmt.Errorf("config: frameRate %d out of range [1, 120]", c.FrameRate)
	}
	if c.Persist && c.AppName == "" {
		return errors.New("config: persist needs an appName")
	}
	if c.Zone != "" {
		if _, err := zones.Get(c.Zone); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	return nil
}
