package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// LoadRunner loads endless runner configuration.
// Search order: customPath -> ~/.arcade/configs/runner.yaml -> ./configs/runner.yaml -> embedded default
func LoadRunner(customPath string) (RunnerConfig, error) {
	return load("runner", customPath, defaultRunnerYAML, DefaultRunnerConfig)
}

// LoadRacer loads lane-dodge racer configuration.
// Search order: customPath -> ~/.arcade/configs/racer.yaml -> ./configs/racer.yaml -> embedded default
func LoadRacer(customPath string) (RacerConfig, error) {
	return load("racer", customPath, defaultRacerYAML, DefaultRacerConfig)
}

// LoadTunnel loads tunnel dodger configuration.
// Search order: customPath -> ~/.arcade/configs/tunnel.yaml -> ./configs/tunnel.yaml -> embedded default
func LoadTunnel(customPath string) (TunnelConfig, error) {
	return load("tunnel", customPath, defaultTunnelYAML, DefaultTunnelConfig)
}

// LoadStack loads tower builder configuration.
// Search order: customPath -> ~/.arcade/configs/stack.yaml -> ./configs/stack.yaml -> embedded default
func LoadStack(customPath string) (StackConfig, error) {
	return load("stack", customPath, defaultStackYAML, DefaultStackConfig)
}

// validator is implemented by every per-game config.
type validator interface {
	Validate() error
}

// load decodes the first config found on top of the hardcoded defaults, so
// a file only needs the keys it changes. A missing or unparsable file in
// the search directories is skipped; an explicit customPath must load, and
// any file that loads must validate.
func load[T validator](gameID, customPath string, embedded []byte, defaults func() T) (T, error) {
	filename := gameID + ".yaml"

	// Try custom path first
	if customPath != "" {
		cfg := defaults()
		data, err := os.ReadFile(customPath)
		if err != nil {
			return cfg, fmt.Errorf("config: failed to read %s: %w", customPath, err)
		}
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config: failed to parse %s: %w", customPath, err)
		}
		if err := cfg.Validate(); err != nil {
			return defaults(), fmt.Errorf("config: invalid %s: %w", customPath, err)
		}
		return cfg, nil
	}

	// Try user config directory, then local configs directory
	candidates := []string{userConfigPath(filename), filepath.Join("configs", filename)}
	for _, path := range candidates {
		if path == "" {
			continue
		}
		if cfg, ok := decodeFile(path, defaults); ok {
			if err := cfg.Validate(); err != nil {
				return defaults(), fmt.Errorf("config: invalid %s: %w", path, err)
			}
			return cfg, nil
		}
	}

	// Use embedded default YAML
	cfg := defaults()
	if err := yaml.Unmarshal(embedded, &cfg); err != nil {
		return defaults(), nil // Fallback to hardcoded if embed fails
	}
	return cfg, nil
}

func decodeFile[T any](path string, defaults func() T) (T, bool) {
	cfg := defaults()
	data, err := os.ReadFile(path)
	if err != nil {
		return cfg, false
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return cfg, false
	}
	return cfg, true
}

// userConfigPath returns the path to user config file, or empty if home is unavailable.
func userConfigPath(filename string) string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".arcade", "configs", filename)
}
