// SPDX-License-Identifier: MIT

// Package config loads process configuration from the environment and from
// optional YAML request files.
package config

import (
	"fmt"
	"os"

	"github.com/caarlos0/env/v11"
	"gopkg.in/yaml.v3"
)

// ParseEnv loads configuration from environment variables into target, a
// pointer to a struct carrying `env` tags.
func ParseEnv(target any) error {
	if err := env.Parse(target); err != nil {
		return fmt.Errorf("parse env: %w", err)
	}

	return nil
}

// LoadYAML decodes the YAML file at path into target. Unknown keys are
// rejected so a misspelled setting fails loudly.
func LoadYAML(path string, target any) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("open config: %w", err)
	}
	defer f.Close()

	dec := yaml.NewDecoder(f)
	dec.KnownFields(true)
	if err = dec.Decode(target); err != nil {
		return fmt.Errorf("decode config %s: %w", path, err)
	}

	return nil
}
