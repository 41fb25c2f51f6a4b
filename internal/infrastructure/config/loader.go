// Package config reads game setups from YAML files and maps them into the
// domain model, falling back to the classic defaults when no file is given.
package config

import (
	"os"

	"gopkg.in/yaml.v3"

	"svw.info/hanoi/internal/domain"
)

// Load reads and validates a game config file.
func Load(path string) (domain.GameConfig, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return domain.GameConfig{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindNotFound,
			Path: path,
			Err:  err,
		}
	}

	var dto YAMLGame
	if err := yaml.Unmarshal(b, &dto); err != nil {
		return domain.GameConfig{}, &domain.OpError{
			Op:   "config.load",
			Kind: domain.KindInvalidConfig,
			Path: path,
			Err:  err,
		}
	}

	return MapGame(path, dto)
}
