package main

import (
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// ProjectConfig holds the contents of .brandlint/config.yaml.
type ProjectConfig struct {
	Version  string   `yaml:"version"`
	Model    string   `yaml:"model"`
	LogPath  string   `yaml:"log_path"`
	Excludes []string `yaml:"excludes"`
}

// loadProjectConfig reads .brandlint/config.yaml from the current
// directory. Returns nil (no error) if the file does not exist.
func loadProjectConfig() (*ProjectConfig, error) {
	data, err := os.ReadFile(".brandlint/config.yaml")
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	var cfg ProjectConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, err
	}
	return &cfg, nil
}

// resolveModel returns the model to use, applying the fallback chain:
//  1. Explicit --model flag value (non-empty override)
//  2. model from .brandlint/config.yaml
//  3. Empty string, which selects the provider default
func resolveModel(flagValue string, cfg *ProjectConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil && cfg.Model != "" {
		return cfg.Model
	}
	return ""
}

// resolveLogPath returns the MCP call log path: --log flag, then
// config, then empty (logging disabled).
func resolveLogPath(flagValue string, cfg *ProjectConfig) string {
	if flagValue != "" {
		return flagValue
	}
	if cfg != nil && cfg.LogPath != "" {
		return cfg.LogPath
	}
	return ""
}

// positionalArg returns the first non-flag argument, skipping flag
// values, or fallback when none is present.
func positionalArg(args []string, fallback string) string {
	skip := false
	for _, arg := range args {
		if skip {
			skip = false
			continue
		}
		if strings.HasPrefix(arg, "--") {
			skip = takesValue(arg)
			continue
		}
		return arg
	}
	return fallback
}

// stringFlag returns the value following the named flag, or fallback.
func stringFlag(args []string, name, fallback string) string {
	for i, arg := range args {
		if arg == name && i+1 < len(args) {
			return args[i+1]
		}
	}
	return fallback
}

// hasFlag reports whether the named boolean flag is present.
func hasFlag(args []string, name string) bool {
	for _, arg := range args {
		if arg == name {
			return true
		}
	}
	return false
}

// takesValue reports whether a flag consumes the next argument.
func takesValue(flag string) bool {
	switch flag {
	case "--json", "--script":
		return false
	}
	return true
}

// splitList parses a comma-separated flag value into trimmed entries.
func splitList(s string) []string {
	if s == "" {
		return nil
	}
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if p = strings.TrimSpace(p); p != "" {
			out = append(out, p)
		}
	}
	return out
}
