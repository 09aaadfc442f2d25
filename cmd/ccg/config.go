package main

import (
	"fmt"
	"os"

	"github.com/mitchellh/mapstructure"
	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"
)

// Config holds the settings of the command line tools.
type Config struct {
	Lexicon   string `mapstructure:"lexicon"`
	MaxTokens int    `mapstructure:"max-tokens"`
	Workers   int    `mapstructure:"workers"`
	Trace     string `mapstructure:"trace"`
	Addr      string `mapstructure:"addr"`
}

// DefaultConfig returns the settings used if neither a configuration file
// nor flags say otherwise.
func DefaultConfig() Config {
	return Config{
		Lexicon:   "english",
		MaxTokens: 40,
		Workers:   1,
		Trace:     "Info",
		Addr:      ":8080",
	}
}

// LoadConfig reads settings from a YAML file, on top of the defaults.
// An empty filename yields the defaults.
func LoadConfig(filename string) (Config, error) {
	cfg := DefaultConfig()
	if filename == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(filename)
	if err != nil {
		return cfg, fmt.Errorf("failed to read config: %w", err)
	}
	var raw map[string]interface{}
	if err = yaml.Unmarshal(data, &raw); err != nil {
		return cfg, fmt.Errorf("failed to parse config %s: %w", filename, err)
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           &cfg,
		ErrorUnused:      true,
		WeaklyTypedInput: true,
	})
	if err != nil {
		return cfg, err
	}
	if err = dec.Decode(raw); err != nil {
		return cfg, fmt.Errorf("invalid config %s: %w", filename, err)
	}
	return cfg, nil
}

// Override copies flags set on the command line into the settings.
func (cfg *Config) Override(flags *pflag.FlagSet) {
	if flags.Changed("lexicon") {
		cfg.Lexicon, _ = flags.GetString("lexicon")
	}
	if flags.Changed("max-tokens") {
		cfg.MaxTokens, _ = flags.GetInt("max-tokens")
	}
	if flags.Changed("workers") {
		cfg.Workers, _ = flags.GetInt("workers")
	}
	if flags.Changed("trace") {
		cfg.Trace, _ = flags.GetString("trace")
	}
	if flags.Changed("addr") {
		cfg.Addr, _ = flags.GetString("addr")
	}
}
