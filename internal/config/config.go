package config

import (
	"errors"
	"os"

	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v2"

	"winninghands/internal/util"
	"winninghands/pkg/poker"
)

// Config provides configuration for the winning hands service and CLI
type Config struct {
	loaded bool
	Addr   string `yaml:"addr" envconfig:"addr"`
	Log    struct {
		Level             string `yaml:"level" envconfig:"level"`
		Format            string `yaml:"format" envconfig:"format"`
		DisableAccessLogs bool   `yaml:"disableAccessLogs" envconfig:"disable_access_logs"`
	} `yaml:"log"`
	Evaluator struct {
		Workers    int    `yaml:"workers" envconfig:"workers"`
		KickerRule string `yaml:"kickerRule" envconfig:"kicker_rule"`
	} `yaml:"evaluator"`
	CORS struct {
		AllowedOrigins []string `yaml:"allowedOrigins" envconfig:"allowed_origins"`
	} `yaml:"cors"`
}

var config Config

// DefaultConfig returns the configuration used when nothing overrides it
func DefaultConfig() Config {
	c := Config{
		Addr: ":5000",
	}

	c.Log.Level = "info"
	c.Log.Format = "text"
	c.Evaluator.Workers = 1
	c.Evaluator.KickerRule = "single"
	c.CORS.AllowedOrigins = []string{"*"}

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
// A missing configuration file is not an error, the defaults are used instead
func Load() error {
	c := DefaultConfig()

	configFile := util.Getenv("WINNINGHANDS_CONFIG_FILE", "config.yaml")
	file, err := os.Open(configFile)
	if err != nil && !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if file != nil {
		defer file.Close()

		if err := yaml.NewDecoder(file).Decode(&c); err != nil {
			return err
		}
	}

	if err := envconfig.Process("winninghands", &c); err != nil {
		return err
	}

	c.loaded = true
	config = c
	return nil
}

// EvaluatorOptions converts the evaluator section into poker.Options
func (c Config) EvaluatorOptions() (poker.Options, error) {
	rule, err := poker.ParseKickerRule(c.Evaluator.KickerRule)
	if err != nil {
		return poker.Options{}, err
	}

	return poker.Options{
		Workers:    c.Evaluator.Workers,
		KickerRule: rule,
	}, nil
}
