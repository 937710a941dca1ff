// Package config resolves which collection files are maintained and how they
// are written. Without a config file the built-in defaults apply.
package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/viper"
)

const (
	// FolderName is the per-project config folder.
	FolderName = ".postman-merge"
	// FileName is the config file inside FolderName.
	FileName = "config.json"
	// EnvPrefix prefixes environment overrides, e.g. POSTMAN_MERGE_BASE_DIR.
	EnvPrefix = "POSTMAN_MERGE"
)

// DefaultTargets are the collection files maintained when nothing else is
// configured, relative to the base directory.
var DefaultTargets = []string{
	filepath.Join("storage", "api-docs", "Proyecto_DAW_API.postman_collection.json"),
	filepath.Join("storage", "api-docs", "Proyecto_DAW_API_PRODUCCION.postman_collection.json"),
}

// DefaultIndent is the number of spaces collections are indented with.
const DefaultIndent = 4

// Config represents the merge configuration
type Config struct {
	Targets []string `mapstructure:"targets" json:"targets"`
	BaseDir string   `mapstructure:"base_dir" json:"base_dir"`
	Indent  int      `mapstructure:"indent" json:"indent"`
}

// SetDefaults registers the built-in defaults on v.
func SetDefaults(v *viper.Viper) {
	v.SetDefault("targets", DefaultTargets)
	v.SetDefault("base_dir", "")
	v.SetDefault("indent", DefaultIndent)
}

// Load reads the configuration from v, falling back to the defaults for
// anything v does not set.
func Load(v *viper.Viper) (*Config, error) {
	SetDefaults(v)

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to parse config: %w", err)
	}

	if cfg.Indent < 0 {
		return nil, fmt.Errorf("indent must not be negative, got %d", cfg.Indent)
	}
	if len(cfg.Targets) == 0 {
		return nil, fmt.Errorf("no target collections configured")
	}

	return &cfg, nil
}

// IndentString returns the indent unit used when writing collections.
func (c *Config) IndentString() string {
	return strings.Repeat(" ", c.Indent)
}

// ResolveTargets returns absolute target paths. Non-empty overrides replace
// the configured targets. Relative paths are resolved against BaseDir, or the
// working directory when BaseDir is empty.
func (c *Config) ResolveTargets(overrides []string) ([]string, error) {
	targets := c.Targets
	if len(overrides) > 0 {
		targets = overrides
	}

	baseDir := c.BaseDir
	if baseDir == "" {
		wd, err := os.Getwd()
		if err != nil {
			return nil, fmt.Errorf("failed to resolve working directory: %w", err)
		}
		baseDir = wd
	}

	resolved := make([]string, 0, len(targets))
	for _, target := range targets {
		if target == "" {
			continue
		}
		if !filepath.IsAbs(target) {
			target = filepath.Join(baseDir, target)
		}
		absPath, err := filepath.Abs(target)
		if err != nil {
			return nil, fmt.Errorf("invalid target path %q: %w", target, err)
		}
		resolved = append(resolved, absPath)
	}

	if len(resolved) == 0 {
		return nil, fmt.Errorf("no target collections configured")
	}

	return resolved, nil
}

// InitializeFolder creates the config folder inside dir with a default
// config.json. It reports false if the config file already exists.
func InitializeFolder(dir string) (bool, error) {
	folder := filepath.Join(dir, FolderName)
	configPath := filepath.Join(folder, FileName)

	if _, err := os.Stat(configPath); err == nil {
		return false, nil
	} else if !os.IsNotExist(err) {
		return false, fmt.Errorf("failed to check config file: %w", err)
	}

	if err := os.MkdirAll(folder, 0755); err != nil {
		return false, fmt.Errorf("failed to create %s folder: %w", FolderName, err)
	}

	if err := createDefaultConfig(configPath); err != nil {
		return false, err
	}

	return true, nil
}

// createDefaultConfig writes the default configuration file
func createDefaultConfig(configPath string) error {
	cfg := Config{
		Targets: DefaultTargets,
		BaseDir: "",
		Indent:  DefaultIndent,
	}

	data, err := json.MarshalIndent(cfg, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}

	if err := os.WriteFile(configPath, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	return nil
}
