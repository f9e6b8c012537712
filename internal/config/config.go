package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"
)

// Config holds the complete calculator configuration
type Config struct {
	General GeneralConfig `toml:"general" yaml:"general"`
	Parser  ParserConfig  `toml:"parser" yaml:"parser"`
	Output  OutputConfig  `toml:"output" yaml:"output"`
}

// GeneralConfig holds logging settings
type GeneralConfig struct {
	LogLevel  string `toml:"log_level" yaml:"log_level"`
	LogFormat string `toml:"log_format" yaml:"log_format"`
}

// ParserConfig selects how strict the parser is
type ParserConfig struct {
	// AllowTrailing ignores tokens left after a complete expression.
	AllowTrailing bool `toml:"allow_trailing" yaml:"allow_trailing"`
	// LenientClose drops the token after a group without checking for ")".
	LenientClose bool `toml:"lenient_close" yaml:"lenient_close"`
}

// OutputConfig holds CLI rendering settings
type OutputConfig struct {
	Traversal  string `toml:"traversal" yaml:"traversal"`
	TreeFormat string `toml:"tree_format" yaml:"tree_format"`
	Color      bool   `toml:"color" yaml:"color"`
}

const (
	TraversalRPN      = "rpn"
	TraversalOriginal = "original"
	TraversalEval     = "eval"

	TreeFormatRepr = "repr"
	TreeFormatYAML = "yaml"
)

// Default returns a configuration with every default applied
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()
	return cfg
}

// Load loads configuration from a TOML or YAML file
func Load(path string) (*Config, error) {
	// Expand environment variables in path
	path = os.ExpandEnv(path)

	if _, err := os.Stat(path); os.IsNotExist(err) {
		return nil, fmt.Errorf("config file not found: %s", path)
	}

	var cfg Config
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	default:
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	cfg.applyDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// LoadFromEnv loads configuration from the CALC_CONFIG environment variable,
// falling back to the default locations and finally to Default().
func LoadFromEnv() (*Config, error) {
	path := os.Getenv("CALC_CONFIG")
	if path == "" {
		defaultPaths := []string{
			"./calc.toml",
			"./calc.yaml",
			filepath.Join(os.Getenv("HOME"), ".config/calc/config.toml"),
		}
		for _, p := range defaultPaths {
			if _, err := os.Stat(p); err == nil {
				path = p
				break
			}
		}
	}

	if path == "" {
		return Default(), nil
	}

	return Load(path)
}

// applyDefaults sets default values for missing configuration
func (c *Config) applyDefaults() {
	if c.General.LogLevel == "" {
		c.General.LogLevel = "warn"
	}
	if c.General.LogFormat == "" {
		c.General.LogFormat = "text"
	}
	if c.Output.Traversal == "" {
		c.Output.Traversal = TraversalRPN
	}
	if c.Output.TreeFormat == "" {
		c.Output.TreeFormat = TreeFormatYAML
	}
}

// Validate rejects values the CLI cannot act on
func (c *Config) Validate() error {
	switch c.Output.Traversal {
	case TraversalRPN, TraversalOriginal, TraversalEval:
	default:
		return fmt.Errorf("invalid output.traversal %q", c.Output.Traversal)
	}
	switch c.Output.TreeFormat {
	case TreeFormatRepr, TreeFormatYAML:
	default:
		return fmt.Errorf("invalid output.tree_format %q", c.Output.TreeFormat)
	}
	switch c.General.LogFormat {
	case "text", "json":
	default:
		return fmt.Errorf("invalid general.log_format %q", c.General.LogFormat)
	}
	return nil
}
