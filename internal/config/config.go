// Package config loads settings for the raz programs from the environment,
// an optional YAML file and command line flags, in increasing precedence.
package config

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// DefaultCharset is the alphabet the password generator draws from.
const DefaultCharset = "abcdefghijklmnopqrstuvwxyzABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789!@#$%"

// Config holds every tunable of the command line programs.
type Config struct {
	Seed       uint32 `env:"RAZ_SEED" envDefault:"12345" yaml:"seed"`
	LogLevel   string `env:"RAZ_LOG_LEVEL" envDefault:"warn" yaml:"log_level"`
	LogFormat  string `env:"RAZ_LOG_FORMAT" envDefault:"auto" yaml:"log_format"`
	Script     string `env:"RAZ_SCRIPT" yaml:"script"`
	ConfigFile string `env:"RAZ_CONFIG" yaml:"-"`
	Charset    string `env:"RAZ_PSWD_CHARSET" yaml:"pswd_charset"`
	GuessMax   uint32 `env:"RAZ_GUESS_MAX" envDefault:"100" yaml:"guess_max"`
}

// ParseEnv loads configuration from environment variables.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}
	return nil
}

// LoadFile overlays the YAML document at path onto cfg. Keys absent from
// the document leave cfg untouched.
func LoadFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("read config: %w", err)
	}
	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("parse config %s: %w", path, err)
	}
	return nil
}

// Load builds a Config from the environment, the YAML file named by
// -config or RAZ_CONFIG, and args. It returns the positional arguments left
// after flag parsing.
func Load(args []string, usage io.Writer) (*Config, []string, error) {
	cfg := &Config{Charset: DefaultCharset}
	if err := ParseEnv(cfg); err != nil {
		return nil, nil, err
	}

	flagged := *cfg
	fs := flag.NewFlagSet("raz", flag.ContinueOnError)
	if usage != nil {
		fs.SetOutput(usage)
	}
	var seed uint64
	fs.Uint64Var(&seed, "seed", uint64(cfg.Seed), "random generator seed")
	fs.StringVar(&flagged.LogLevel, "log-level", cfg.LogLevel, "log level: debug, info, warn, error")
	fs.StringVar(&flagged.LogFormat, "log-format", cfg.LogFormat, "log format: json, text, auto")
	fs.StringVar(&flagged.Script, "script", cfg.Script, "read input from a recorded file (.zst and .gz are decompressed)")
	fs.StringVar(&flagged.ConfigFile, "config", cfg.ConfigFile, "YAML config file")
	fs.StringVar(&flagged.Charset, "charset", cfg.Charset, "password generator alphabet")
	fs.Func("guess-max", "upper bound of the guessing game", func(s string) error {
		var n uint64
		if _, err := fmt.Sscan(s, &n); err != nil || n == 0 || n > 1<<31 {
			return errors.New("must be a number between 1 and 2147483648")
		}
		flagged.GuessMax = uint32(n)
		return nil
	})
	if err := fs.Parse(args); err != nil {
		return nil, nil, err
	}
	if seed > 1<<32-1 {
		return nil, nil, fmt.Errorf("seed %d overflows uint32", seed)
	}
	flagged.Seed = uint32(seed)

	if flagged.ConfigFile != "" {
		cfg.ConfigFile = flagged.ConfigFile
		if err := LoadFile(cfg.ConfigFile, cfg); err != nil {
			return nil, nil, err
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "seed":
			cfg.Seed = flagged.Seed
		case "log-level":
			cfg.LogLevel = flagged.LogLevel
		case "log-format":
			cfg.LogFormat = flagged.LogFormat
		case "script":
			cfg.Script = flagged.Script
		case "charset":
			cfg.Charset = flagged.Charset
		case "guess-max":
			cfg.GuessMax = flagged.GuessMax
		}
	})

	if cfg.Charset == "" {
		return nil, nil, errors.New("password charset must not be empty")
	}
	if cfg.GuessMax == 0 {
		return nil, nil, errors.New("guess_max must be positive")
	}
	return cfg, fs.Args(), nil
}
