package cliapp

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/tailscale/hujson"
)

// Config holds the resolved key-generation settings for a fraci CLI
// invocation: which medium to encode in, the alphabet (string mode only),
// and the factory limits.
type Config struct {
	Mode       string `json:"mode,omitempty"`
	DigitBase  string `json:"digit_base,omitempty"`  //nolint:tagliatelle // snake_case for config file
	LengthBase string `json:"length_base,omitempty"` //nolint:tagliatelle // snake_case for config file
	MaxLength  int    `json:"max_length,omitempty"`  //nolint:tagliatelle // snake_case for config file
	MaxRetries int    `json:"max_retries,omitempty"` //nolint:tagliatelle // snake_case for config file
}

// DefaultConfig mirrors the factory defaults documented for string mode.
func DefaultConfig() Config {
	return Config{
		Mode:       "string",
		DigitBase:  "0123456789",
		LengthBase: "ABCabc",
		MaxLength:  50,
		MaxRetries: 5,
	}
}

var errConfigFileNotFound = errors.New("fraci: config file not found")

// ConfigFileName is the default project config file name.
const ConfigFileName = ".fraci.json"

// LoadConfig resolves settings with precedence (highest wins): defaults,
// then the global user config, then the project config (or an explicit
// --config file), then CLI overrides. Config files are parsed as HuJSON
// (JSON with comments and trailing commas tolerated), matching the
// forgiving format CLI users expect to hand-edit.
func LoadConfig(workDir, configPath string, overrides Config, env []string) (Config, error) {
	cfg := DefaultConfig()

	globalCfg, err := loadOptionalConfig(globalConfigPath(env))
	if err != nil {
		return Config{}, err
	}

	cfg = mergeConfig(cfg, globalCfg)

	projectCfg, err := loadProjectConfig(workDir, configPath)
	if err != nil {
		return Config{}, err
	}

	cfg = mergeConfig(cfg, projectCfg)
	cfg = mergeConfig(cfg, overrides)

	return cfg, nil
}

func globalConfigPath(env []string) string {
	for _, e := range env {
		if after, ok := cutPrefix(e, "XDG_CONFIG_HOME="); ok {
			return filepath.Join(after, "fraci", "config.json")
		}
	}

	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}

	return filepath.Join(home, ".config", "fraci", "config.json")
}

func cutPrefix(s, prefix string) (string, bool) {
	if len(s) < len(prefix) || s[:len(prefix)] != prefix {
		return "", false
	}

	return s[len(prefix):], true
}

func loadProjectConfig(workDir, configPath string) (Config, error) {
	path := configPath
	mustExist := configPath != ""

	if path == "" {
		path = filepath.Join(workDir, ConfigFileName)
	} else if !filepath.IsAbs(path) {
		path = filepath.Join(workDir, path)
	}

	if mustExist {
		if _, err := os.Stat(path); err != nil {
			return Config{}, fmt.Errorf("%w: %s", errConfigFileNotFound, configPath)
		}
	}

	return loadOptionalConfig(path)
}

func loadOptionalConfig(path string) (Config, error) {
	if path == "" {
		return Config{}, nil
	}

	raw, err := os.ReadFile(path) //nolint:gosec // path is caller/user supplied by design
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, nil
		}

		return Config{}, fmt.Errorf("fraci: read config %s: %w", path, err)
	}

	std, err := hujson.Standardize(raw)
	if err != nil {
		return Config{}, fmt.Errorf("fraci: parse config %s: %w", path, err)
	}

	var cfg Config
	if err := json.Unmarshal(std, &cfg); err != nil {
		return Config{}, fmt.Errorf("fraci: decode config %s: %w", path, err)
	}

	return cfg, nil
}

func mergeConfig(base, override Config) Config {
	if override.Mode != "" {
		base.Mode = override.Mode
	}

	if override.DigitBase != "" {
		base.DigitBase = override.DigitBase
	}

	if override.LengthBase != "" {
		base.LengthBase = override.LengthBase
	}

	if override.MaxLength != 0 {
		base.MaxLength = override.MaxLength
	}

	if override.MaxRetries != 0 {
		base.MaxRetries = override.MaxRetries
	}

	return base
}
