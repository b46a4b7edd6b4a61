// Package config loads the process configuration from the environment and builds the scoring engine from it.
package config

import (
	"log/slog"

	"github.com/myrjola/sustainscore/internal/envstruct"
	"github.com/myrjola/sustainscore/internal/errors"
	"github.com/myrjola/sustainscore/internal/scoring"
)

var ErrInvalidConfig = errors.NewSentinel("invalid configuration")

// Config is shared by the web server and the CLI.
type Config struct {
	// Addr is the address the web server listens on. Use localhost:0 for a random port.
	Addr string `env:"SUSTAINSCORE_ADDR" envDefault:"localhost:4000"`
	// PprofAddr enables the pprof server when non-empty.
	PprofAddr string `env:"SUSTAINSCORE_PPROF_ADDR" envDefault:""`
	// TablesFile is a YAML file with reference table overrides. Empty means built-in tables.
	TablesFile      string `env:"SUSTAINSCORE_TABLES_FILE" envDefault:""`
	Rounding        string `env:"SUSTAINSCORE_ROUNDING" envDefault:"half-up"`
	MaterialCeiling int    `env:"SUSTAINSCORE_MATERIAL_CEILING" envDefault:"25"`
}

// Load reads the configuration with lookupEnv, which has the same signature as [os.LookupEnv].
func Load(lookupEnv func(string) (string, bool)) (Config, error) {
	var cfg Config
	if err := envstruct.Populate(&cfg, lookupEnv); err != nil {
		return Config{}, errors.Wrap(err, "populate config")
	}
	if _, err := cfg.Policy(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Policy converts the rounding and ceiling settings into a scoring policy.
func (c Config) Policy() (scoring.Policy, error) {
	rounding, err := scoring.ParseRounding(c.Rounding)
	if err != nil {
		return scoring.Policy{}, errors.Wrap(err, "config policy")
	}
	if c.MaterialCeiling < 1 {
		return scoring.Policy{}, errors.Wrap(ErrInvalidConfig, "material ceiling must be positive",
			slog.Int("materialCeiling", c.MaterialCeiling))
	}
	return scoring.Policy{
		Rounding:        rounding,
		MaterialCeiling: c.MaterialCeiling,
	}, nil
}

// Engine builds the scoring engine. It is built once at startup and shared by all requests.
func Engine(c Config) (scoring.Engine, error) {
	policy, err := c.Policy()
	if err != nil {
		return scoring.Engine{}, err
	}
	tables := DefaultTables()
	if c.TablesFile != "" {
		if tables, err = LoadTables(c.TablesFile); err != nil {
			return scoring.Engine{}, errors.Wrap(err, "load tables")
		}
	}
	return scoring.NewEngine(tables.Factors, tables.Catalog, policy), nil
}

// LoadEngine loads the configuration and builds the engine. A non-empty tablesFile overrides SUSTAINSCORE_TABLES_FILE.
func LoadEngine(lookupEnv func(string) (string, bool), tablesFile string) (scoring.Engine, error) {
	cfg, err := Load(lookupEnv)
	if err != nil {
		return scoring.Engine{}, err
	}
	if tablesFile != "" {
		cfg.TablesFile = tablesFile
	}
	return Engine(cfg)
}
