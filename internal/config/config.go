package config

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/gobwas/glob"
	"github.com/joho/godotenv"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/viper"
	"go.yaml.in/yaml/v3"

	"runlog/internal/app/errors"
	"runlog/internal/app/severity"
)

// Config represents the application configuration
type Config struct {
	Logging struct {
		Level  string `yaml:"level" toml:"level" mapstructure:"level"`
		Format string `yaml:"format" toml:"format" mapstructure:"format"`
	} `yaml:"logging" toml:"logging" mapstructure:"logging"`
	Capture struct {
		Severities []string `yaml:"severities" toml:"severities" mapstructure:"severities"`
		Ignore     []string `yaml:"ignore" toml:"ignore" mapstructure:"ignore"`
	} `yaml:"capture" toml:"capture" mapstructure:"capture"`
	Buffer struct {
		Capacity int `yaml:"capacity" toml:"capacity" mapstructure:"capacity"`
	} `yaml:"buffer" toml:"buffer" mapstructure:"buffer"`
	Overlay struct {
		BannerRate float64 `yaml:"banner_rate" toml:"banner_rate" mapstructure:"banner_rate"`
	} `yaml:"overlay" toml:"overlay" mapstructure:"overlay"`
	Producer struct {
		Rate time.Duration `yaml:"rate" toml:"rate" mapstructure:"rate"`
	} `yaml:"producer" toml:"producer" mapstructure:"producer"`
	Version int `yaml:"version" toml:"version" mapstructure:"version"`
}

// DefaultConfig returns the default configuration
func DefaultConfig() *Config {
	cfg := &Config{Version: 1}

	cfg.Logging.Level = LogLevel
	cfg.Logging.Format = LogFormat

	cfg.Capture.Severities = []string{severity.PresetErrors}
	cfg.Capture.Ignore = []string{}

	cfg.Buffer.Capacity = DefaultBufferCapacity

	cfg.Overlay.BannerRate = DefaultBannerRate

	cfg.Producer.Rate = DefaultProducerRate

	return cfg
}

// Load loads the configuration from runlog.yaml (or runlog.toml), .env and RUNLOG_* variables
func Load() (*Config, error) {
	for _, name := range []string{FileName, TOMLFileName} {
		if _, err := os.Stat(name); err == nil {
			return LoadFile(name)
		}
	}

	return LoadFile(FileName)
}

// LoadFile loads the configuration from the given file; a missing file yields defaults
func LoadFile(path string) (*Config, error) {
	if err := loadEnvFile(EnvFileName); err != nil {
		return nil, err
	}

	cfg := DefaultConfig()
	v := newViper(cfg, FormatOf(path))

	data, err := os.ReadFile(path)

	switch {
	case err == nil:
		if err := v.ReadConfig(bytes.NewReader(data)); err != nil {
			return nil, errors.ErrFailedToReadConfig
		}
	case !os.IsNotExist(err):
		return nil, errors.ErrFailedToReadConfig
	}

	if err := v.Unmarshal(cfg); err != nil {
		return nil, errors.ErrFailedToParseConfig
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %w", errors.ErrInvalidConfig, err)
	}

	return cfg, nil
}

// newViper registers every key with its default so environment overrides apply
func newViper(cfg *Config, format string) *viper.Viper {
	v := viper.New()
	v.SetConfigType(format)
	v.SetEnvPrefix(EnvPrefix)
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("logging.level", cfg.Logging.Level)
	v.SetDefault("logging.format", cfg.Logging.Format)
	v.SetDefault("capture.severities", cfg.Capture.Severities)
	v.SetDefault("capture.ignore", cfg.Capture.Ignore)
	v.SetDefault("buffer.capacity", cfg.Buffer.Capacity)
	v.SetDefault("overlay.banner_rate", cfg.Overlay.BannerRate)
	v.SetDefault("producer.rate", cfg.Producer.Rate)
	v.SetDefault("version", cfg.Version)

	return v
}

// loadEnvFile exports variables from an optional dotenv file without overriding the environment
func loadEnvFile(path string) error {
	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil
	}

	if err := godotenv.Load(path); err != nil {
		return fmt.Errorf("%w: %w", errors.ErrFailedToLoadEnv, err)
	}

	return nil
}

// Mask resolves the configured severity names into a mask
func (c *Config) Mask() (severity.Mask, error) {
	return severity.ParseMask(c.Capture.Severities)
}

// FormatOf returns the config format implied by a file extension
func FormatOf(path string) string {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return FormatTOML
	}

	return FormatYAML
}

// MarshalAs renders the configuration in the given format
func (c *Config) MarshalAs(format string) ([]byte, error) {
	switch format {
	case FormatYAML:
		return c.Marshal()
	case FormatTOML:
		return toml.Marshal(c)
	default:
		return nil, fmt.Errorf("%w: '%s'", errors.ErrUnknownFormat, format)
	}
}

// Marshal renders the configuration as YAML
func (c *Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(c); err != nil {
		return nil, err
	}

	if err := enc.Close(); err != nil {
		return nil, err
	}

	return buf.Bytes(), nil
}

// Validate validates the configuration
func (c *Config) Validate() error {
	if err := c.validateCapture(); err != nil {
		return err
	}

	if err := c.validateBuffer(); err != nil {
		return err
	}

	if err := c.validateOverlay(); err != nil {
		return err
	}

	return c.validateProducer()
}

// validateCapture validates severity names and ignore patterns
func (c *Config) validateCapture() error {
	if _, err := c.Mask(); err != nil {
		return err
	}

	for _, pattern := range c.Capture.Ignore {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("%w: '%s'", errors.ErrInvalidIgnorePattern, pattern)
		}
	}

	return nil
}

// validateBuffer validates buffer settings
func (c *Config) validateBuffer() error {
	if c.Buffer.Capacity < 0 {
		return errors.ErrInvalidBufferSize
	}

	return nil
}

// validateOverlay validates overlay settings
func (c *Config) validateOverlay() error {
	if c.Overlay.BannerRate <= 0 || c.Overlay.BannerRate > 1 {
		return errors.ErrInvalidBannerRate
	}

	return nil
}

// validateProducer validates demo producer settings
func (c *Config) validateProducer() error {
	if c.Producer.Rate <= 0 {
		return errors.ErrInvalidProducerRate
	}

	return nil
}
