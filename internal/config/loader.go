package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/tui-2048/internal/core"
)

// AppDirName is the per-user directory holding configs, scores and screenshots.
const AppDirName = ".t2048"

// LoadT2048 loads 2048 configuration.
// Search order: customPath -> ~/.t2048/configs/t2048.yaml -> ./configs/t2048.yaml -> embedded default
// The returned config is validated and normalized.
func LoadT2048(customPath string) (T2048Config, error) {
	var cfg T2048Config

	// A custom path is explicit, so its failures are reported.
	if customPath != "" {
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("failed to read config %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("failed to parse config %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return cfg, fmt.Errorf("invalid config %s: %w", customPath, err)
		}
		cfg.Normalize()
		return cfg, nil
	}

	if userCfgPath := userConfigPath("t2048.yaml"); userCfgPath != "" {
		if loaded, ok := tryLoad(userCfgPath); ok {
			return loaded, nil
		}
	}

	if loaded, ok := tryLoad(filepath.Join("configs", "t2048.yaml")); ok {
		return loaded, nil
	}

	if err := yaml.Unmarshal(defaultT2048YAML, &cfg); err != nil || cfg.Validate() != nil {
		return DefaultT2048Config(), nil // Fallback to hardcoded if embed is unusable
	}
	cfg.Normalize()
	return cfg, nil
}

// tryLoad reads an optional config file; any failure means "not found".
func tryLoad(path string) (T2048Config, bool) {
	var cfg T2048Config
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	if cfg.Validate() != nil {
		return cfg, false
	}
	cfg.Normalize()
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, AppDirName, "configs", filename)
}

// ParseDimension reads a board dimension typed by the user.
// Unparsable input or values below the minimum fall back to the placeholder,
// then to the default; the result is capped at the maximum.
func ParseDimension(input, placeholder string) int {
	for _, candidate := range []string{input, placeholder} {
		v, err := strconv.Atoi(strings.TrimSpace(candidate))
		if err == nil && v >= core.MinBoardDimension {
			return min(v, core.MaxBoardDimension)
		}
	}
	return core.DefaultBoardDimension
}

// ExpandHome replaces a leading ~ with the user's home directory.
func ExpandHome(path string) (string, error) {
	if path == "" || path[0] != '~' {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("config: cannot expand home directory: %w", err)
	}
	return filepath.Join(home, path[1:]), nil
}
