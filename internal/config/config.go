package config

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/kelseyhightower/envconfig"
	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"

	"videopoker/internal/rng"
	"videopoker/internal/util"
	"videopoker/pkg/game"
	"videopoker/pkg/handanalyzer"
	"videopoker/pkg/strategy"
)

// defaultConfigFile is optional; any other file must exist
const defaultConfigFile = "config.yaml"

// Config provides configuration for the video poker engine
type Config struct {
	loaded bool

	Log struct {
		Level             string `yaml:"level"`
		Format            string `yaml:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`

	Engine struct {
		ExactThreshold int     `yaml:"exactThreshold" envconfig:"exact_threshold"`
		SampleCount    int     `yaml:"sampleCount" envconfig:"sample_count"`
		TieEpsilon     float64 `yaml:"tieEpsilon" envconfig:"tie_epsilon"`
		Parallelism    int     `yaml:"parallelism"`
	} `yaml:"engine"`

	Game struct {
		Variant      string  `yaml:"variant"`
		BetLevel     int     `yaml:"betLevel" envconfig:"bet_level"`
		Denomination float64 `yaml:"denomination"`
		ShowBestPlay bool    `yaml:"showBestPlay" envconfig:"show_best_play"`
	} `yaml:"game"`

	// Seed makes shuffles and sampling reproducible; 0 uses crypto/rand
	Seed int64 `yaml:"seed"`
}

var config Config

// DefaultConfig returns the configuration used when nothing is set
func DefaultConfig() Config {
	var c Config
	c.Log.Level = "info"
	c.Log.Format = "text"

	c.Engine.ExactThreshold = strategy.DefaultExactThreshold
	c.Engine.SampleCount = strategy.DefaultSampleCount
	c.Engine.TieEpsilon = strategy.DefaultTieEpsilon
	c.Engine.Parallelism = 1

	opts := game.DefaultOptions()
	c.Game.Variant = string(opts.Variant)
	c.Game.BetLevel = opts.BetLevel
	c.Game.Denomination = opts.Denomination
	c.Game.ShowBestPlay = opts.ShowBestPlay

	return c
}

// Instance returns a singleton instance
// If the config hasn't been loaded, it will be loaded
func Instance() Config {
	if !config.loaded {
		if err := Load(); err != nil {
			panic(err)
		}
	}

	return config
}

// Load will load the configuration
// Defaults are overlaid by the YAML file in VP_CONFIG_FILE, then by VP_* environment variables.
func Load() error {
	c := DefaultConfig()

	configFile := util.Getenv("VP_CONFIG_FILE", defaultConfigFile)
	if err := decodeFile(configFile, &c); err != nil {
		if !errors.Is(err, os.ErrNotExist) || configFile != defaultConfigFile {
			return err
		}
	}

	if err := envconfig.Process("vp", &c); err != nil {
		return err
	}

	if err := c.Validate(); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}

func decodeFile(name string, c *Config) error {
	file, err := os.Open(name)
	if err != nil {
		return err
	}
	defer file.Close()

	if err := yaml.NewDecoder(file).Decode(c); err != nil {
		return fmt.Errorf("could not decode %s: %w", name, err)
	}

	return nil
}

// Validate returns an error if any value is out of range
func (c Config) Validate() error {
	if _, err := logrus.ParseLevel(c.Log.Level); err != nil {
		return err
	}

	switch strings.ToLower(c.Log.Format) {
	case "", "text", "json":
	default:
		return fmt.Errorf("unknown log format: %q", c.Log.Format)
	}

	if c.Engine.ExactThreshold < 0 {
		return fmt.Errorf("engine.exactThreshold must be >= 0, got %d", c.Engine.ExactThreshold)
	}

	if c.Engine.SampleCount < 1 {
		return fmt.Errorf("engine.sampleCount must be > 0, got %d", c.Engine.SampleCount)
	}

	if c.Engine.TieEpsilon < 0 {
		return fmt.Errorf("engine.tieEpsilon must be >= 0, got %g", c.Engine.TieEpsilon)
	}

	if c.Engine.Parallelism < 1 {
		return fmt.Errorf("engine.parallelism must be > 0, got %d", c.Engine.Parallelism)
	}

	if _, err := c.GameOptions(); err != nil {
		return err
	}

	return nil
}

// GameOptions returns the configured round options
func (c Config) GameOptions() (game.Options, error) {
	v, err := handanalyzer.ParseVariant(c.Game.Variant)
	if err != nil {
		return game.Options{}, err
	}

	opts := game.Options{
		Variant:      v,
		BetLevel:     c.Game.BetLevel,
		Denomination: c.Game.Denomination,
		ShowBestPlay: c.Game.ShowBestPlay,
	}

	return opts, opts.Validate()
}

// Generator returns the random source for shuffles and sampling
// The generator is safe for concurrent use.
func (c Config) Generator() rng.Generator {
	g := rng.New(c.Seed)
	if seeded, ok := g.(*rng.Seeded); ok {
		return rng.NewLocked(seeded)
	}

	return g
}

// Optimizer returns a hold optimizer tuned by the engine settings
func (c Config) Optimizer(logger logrus.FieldLogger, v handanalyzer.Variant, betLevel int, g rng.Generator) *strategy.Optimizer {
	est := strategy.NewEstimator(v, betLevel)
	est.ExactThreshold = c.Engine.ExactThreshold
	est.SampleCount = c.Engine.SampleCount
	est.Rand = g

	o := strategy.NewOptimizer(logger, est)
	o.TieEpsilon = c.Engine.TieEpsilon
	o.Parallelism = c.Engine.Parallelism

	return o
}

// SetupLogger applies the log level and format to logger
func (c Config) SetupLogger(logger *logrus.Logger) error {
	if lvl := c.Log.Level; lvl != "" {
		level, err := logrus.ParseLevel(lvl)
		if err != nil {
			return fmt.Errorf("could not parse level: %w", err)
		}

		logger.SetLevel(level)
	}

	if strings.ToLower(c.Log.Format) == "json" {
		logger.SetFormatter(&logrus.JSONFormatter{})
	}

	return nil
}
