package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/BurntSushi/toml"
	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/JesseCoretta/go-iso8601"
)

// Format is a configuration file syntax.
type Format int

const (
	FormatTOML Format = iota
	FormatYAML
)

// String returns the name of the format.
func (f Format) String() string {
	switch f {
	case FormatYAML:
		return "yaml"
	default:
		return "toml"
	}
}

// Config holds all configuration for the iso8601 command.
type Config struct {
	Decoder DecoderConfig `toml:"decoder" yaml:"decoder"`
	Workers int           `toml:"workers" yaml:"workers"`
	JSON    bool          `toml:"json" yaml:"json"`
}

// DecoderConfig holds the options applied to every decode.
type DecoderConfig struct {
	StrictDays  bool   `toml:"strict_days" yaml:"strict_days"`
	RawFraction bool   `toml:"raw_fraction" yaml:"raw_fraction"`
	Zone        string `toml:"zone" yaml:"zone"`
}

// Defaults returns the configuration used when no file or environment
// variable says otherwise.
func Defaults() *Config {
	return &Config{Workers: 4}
}

// Load reads configuration from an optional file, a .env file and the
// environment, in increasing order of precedence. An empty path skips
// the file.
func Load(path string) (*Config, error) {
	// Try to load .env file (ignore error if it doesn't exist)
	_ = godotenv.Load()

	cfg := Defaults()
	if path != "" {
		content, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("read config %s: %w", path, err)
		}
		if err := parseContent(content, detectFormat(path), cfg); err != nil {
			return nil, fmt.Errorf("parse config %s: %w", path, err)
		}
	}

	if err := applyEnv(cfg); err != nil {
		return nil, err
	}
	if cfg.Workers < 1 {
		return nil, fmt.Errorf("workers must be at least 1, got %d", cfg.Workers)
	}

	return cfg, nil
}

// Options converts the receiver into decoder options, loading the
// named zone if one is set.
func (d DecoderConfig) Options() (iso8601.Options, error) {
	opts := iso8601.Options{
		StrictDays:  d.StrictDays,
		RawFraction: d.RawFraction,
	}
	if d.Zone != "" {
		loc, err := time.LoadLocation(d.Zone)
		if err != nil {
			return opts, fmt.Errorf("load zone %q: %w", d.Zone, err)
		}
		opts.Location = loc
	}
	return opts, nil
}

// detectFormat determines configuration format from file extension
func detectFormat(filePath string) Format {
	switch strings.ToLower(filepath.Ext(filePath)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML // Default to TOML
	}
}

// parseContent decodes content in the given format over cfg, so keys
// absent from the file keep their current values.
func parseContent(content []byte, format Format, cfg *Config) error {
	switch format {
	case FormatYAML:
		if err := yaml.Unmarshal(content, cfg); err != nil {
			return fmt.Errorf("YAML parse error: %w", err)
		}
	default:
		if _, err := toml.Decode(string(content), cfg); err != nil {
			return fmt.Errorf("TOML parse error: %w", err)
		}
	}
	return nil
}

func applyEnv(cfg *Config) (err error) {
	if cfg.Decoder.StrictDays, err = getEnvBool("ISO8601_STRICT_DAYS", cfg.Decoder.StrictDays); err != nil {
		return
	}
	if cfg.Decoder.RawFraction, err = getEnvBool("ISO8601_RAW_FRACTION", cfg.Decoder.RawFraction); err != nil {
		return
	}
	if cfg.JSON, err = getEnvBool("ISO8601_JSON", cfg.JSON); err != nil {
		return
	}
	cfg.Decoder.Zone = getEnv("ISO8601_ZONE", cfg.Decoder.Zone)

	if v := getEnv("ISO8601_WORKERS", ""); v != "" {
		if cfg.Workers, err = strconv.Atoi(v); err != nil {
			err = fmt.Errorf("ISO8601_WORKERS: %w", err)
		}
	}
	return
}

// getEnv gets an environment variable or returns a default value
func getEnv(key, defaultValue string) string {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue
	}
	return value
}

func getEnvBool(key string, defaultValue bool) (bool, error) {
	value := os.Getenv(key)
	if value == "" {
		return defaultValue, nil
	}
	b, err := strconv.ParseBool(value)
	if err != nil {
		return defaultValue, fmt.Errorf("%s: %w", key, err)
	}
	return b, nil
}
