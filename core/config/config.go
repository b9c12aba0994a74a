// File: config.go
// Title: Recipe Loading
// Description: Loads chain recipes from TOML or YAML files or strings.
//              Decoding is strict: unknown keys are reported instead of
//              ignored, so a misspelled step argument fails at load time.
// Author: msto63
// Version: v0.2.0
// Created: 2026-10-16
// Modified: 2026-10-18
//
// Change History:
// - 2026-10-16 v0.1.0: TOML/YAML recipe loading
// - 2026-10-18 v0.2.0: Strict decoding and environment overrides

package config

import (
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"gopkg.in/yaml.v3"

	"github.com/msto63/stringext/core/errors"
)

// Format represents the recipe file format
type Format int

const (
	// FormatTOML represents TOML format (default)
	FormatTOML Format = iota

	// FormatYAML represents YAML format
	FormatYAML

	// FormatAuto auto-detects format from file extension
	FormatAuto
)

// String returns the string representation of the format
func (f Format) String() string {
	switch f {
	case FormatTOML:
		return "toml"
	case FormatYAML:
		return "yaml"
	case FormatAuto:
		return "auto"
	default:
		return "unknown"
	}
}

// DefaultEnvPrefix is the environment prefix used by LoadRecipe
const DefaultEnvPrefix = "STRINGEXT"

// LoadOptions defines options for loading a recipe
type LoadOptions struct {
	Format    Format // File format (default: auto-detect)
	EnvPrefix string // Environment variable prefix; empty disables overrides
}

// LoadRecipe loads, overrides from STRINGEXT_* variables and validates the
// recipe at path
func LoadRecipe(path string) (*Recipe, error) {
	return LoadRecipeWithOptions(path, LoadOptions{
		Format:    FormatAuto,
		EnvPrefix: DefaultEnvPrefix,
	})
}

// LoadRecipeWithOptions loads a recipe from a file with custom options
func LoadRecipeWithOptions(path string, options LoadOptions) (*Recipe, error) {
	if strings.TrimSpace(path) == "" {
		return nil, errors.ConfigError("load", "recipe path cannot be empty", nil)
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.NotFound(errors.ModuleConfig, "load", path).
				WithDetail("path", path)
		}
		return nil, errors.ConfigError("load", "failed to read recipe file", err).
			WithDetail("path", path)
	}

	format := options.Format
	if format == FormatAuto {
		format = detectFormat(path)
	}

	recipe, err := decode(content, format)
	if err != nil {
		return nil, errors.ConfigError("load", "failed to parse recipe file", err).
			WithDetail("path", path).
			WithDetail("format", format.String())
	}

	if options.EnvPrefix != "" {
		recipe.ApplyEnv(options.EnvPrefix)
	}

	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	return recipe, nil
}

// ParseRecipe decodes and validates a recipe held in memory. Environment
// overrides are not applied.
func ParseRecipe(content string, format Format) (*Recipe, error) {
	if format == FormatAuto {
		format = FormatTOML
	}

	recipe, err := decode([]byte(content), format)
	if err != nil {
		return nil, errors.ConfigError("parse", "failed to parse recipe", err).
			WithDetail("format", format.String())
	}
	if err := recipe.Validate(); err != nil {
		return nil, err
	}
	return recipe, nil
}

func detectFormat(path string) Format {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		return FormatYAML
	default:
		return FormatTOML
	}
}

// decode fills a Recipe with defaults, then overlays content
func decode(content []byte, format Format) (*Recipe, error) {
	recipe := NewRecipe()

	switch format {
	case FormatTOML:
		md, err := toml.Decode(string(content), recipe)
		if err != nil {
			return nil, err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			keys := make([]string, len(undecoded))
			for i, k := range undecoded {
				keys[i] = k.String()
			}
			return nil, fmt.Errorf("unknown keys: %s", strings.Join(keys, ", "))
		}
	case FormatYAML:
		dec := yaml.NewDecoder(bytes.NewReader(content))
		dec.KnownFields(true)
		if err := dec.Decode(recipe); err != nil && err != io.EOF {
			return nil, err
		}
	default:
		return nil, fmt.Errorf("unsupported format: %s", format)
	}

	return recipe, nil
}
