// Copyright 2025 SirSeer, LLC
//
// Licensed under the Business Source License 1.1 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     https://mariadb.com/bsl11
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package config provides configuration management for breakfast with
// support for multiple configuration sources and a well-defined precedence
// order.
//
// Configuration sources (in precedence order, highest to lowest):
//  1. Command-line flags
//  2. Environment variables
//  3. Organization-specific configuration
//  4. Global configuration file
//  5. Built-in defaults
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	bferrors "github.com/sirseerhq/breakfast/internal/errors"
	"gopkg.in/yaml.v3"
)

// LoadConfig loads configuration from multiple sources and applies them in
// the correct precedence order. If configPath is provided, it loads from
// that specific file. Otherwise, it searches standard locations:
//   - .breakfast.yaml (current directory)
//   - .breakfast.yml (current directory)
//   - ~/.breakfast/config.yaml
//   - ~/.breakfast/config.yml
//
// Environment variables are applied after loading the config file.
// Returns an error if the specified config file cannot be loaded, but will
// succeed with defaults if no config file is found in standard locations.
func LoadConfig(configPath string) (*Config, error) {
	cfg := DefaultConfig()

	if configPath != "" {
		if err := loadConfigFile(expandPath(configPath), cfg); err != nil {
			return nil, fmt.Errorf("failed to load config file: %w", err)
		}
	} else {
		defaultPaths := []string{
			".breakfast.yaml",
			".breakfast.yml",
			expandPath("~/.breakfast/config.yaml"),
			expandPath("~/.breakfast/config.yml"),
		}

		for _, path := range defaultPaths {
			if _, err := os.Stat(path); err == nil {
				if err := loadConfigFile(path, cfg); err != nil {
					return nil, fmt.Errorf("failed to load config from %s: %w", path, err)
				}
				break
			}
		}
	}

	applyEnvOverrides(cfg)

	return cfg, nil
}

// loadConfigFile reads and parses a YAML config file
func loadConfigFile(path string, cfg *Config) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return fmt.Errorf("failed to read config file %s: %w", path, err)
	}

	if err := yaml.Unmarshal(data, cfg); err != nil {
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return nil
}

// applyEnvOverrides applies environment variable overrides to config
func applyEnvOverrides(cfg *Config) {
	if endpoint := os.Getenv("GITHUB_API_ENDPOINT"); endpoint != "" {
		cfg.GitHub.APIEndpoint = endpoint
	}
	if endpoint := os.Getenv("GITHUB_GRAPHQL_ENDPOINT"); endpoint != "" {
		cfg.GitHub.GraphQLEndpoint = endpoint
	}

	if org := os.Getenv("BREAKFAST_ORGANIZATION"); org != "" {
		cfg.Defaults.Organization = org
	}
	if workers := os.Getenv("BREAKFAST_WORKERS"); workers != "" {
		if n, err := parsePositiveInt(workers); err == nil {
			cfg.Defaults.Workers = n
		}
	}
	if showAge := os.Getenv("BREAKFAST_SHOW_AGE"); showAge != "" {
		cfg.Defaults.ShowAge = parseBool(showAge)
	}
}

// expandPath expands ~ and environment variables in paths
func expandPath(path string) string {
	if strings.HasPrefix(path, "~/") {
		home := os.Getenv("HOME")
		if home == "" {
			home = os.Getenv("USERPROFILE") // Windows
		}
		path = filepath.Join(home, path[2:])
	}
	return os.ExpandEnv(path)
}

// parsePositiveInt parses a string to a positive integer
func parsePositiveInt(s string) (int, error) {
	var i int
	_, err := fmt.Sscanf(s, "%d", &i)
	if err != nil {
		return 0, fmt.Errorf("failed to parse integer from '%s': %w", s, err)
	}
	if i <= 0 {
		return 0, fmt.Errorf("value must be positive, got: %d", i)
	}
	return i, nil
}

// parseBool parses various boolean representations
func parseBool(s string) bool {
	s = strings.ToLower(strings.TrimSpace(s))
	return s == "true" || s == "yes" || s == "1" || s == "on"
}

// Token reads the GitHub token from the environment variable named by
// GitHub.TokenEnv. The token is read once at startup and handed to the
// API clients explicitly.
func (c *Config) Token() (string, error) {
	if c.GitHub.TokenEnv == "" {
		return "", fmt.Errorf("GitHub token environment variable name cannot be empty: %w", bferrors.ErrMissingToken)
	}
	token, ok := os.LookupEnv(c.GitHub.TokenEnv)
	if !ok || strings.TrimSpace(token) == "" {
		return "", fmt.Errorf("%s not set in environment - exiting: %w", c.GitHub.TokenEnv, bferrors.ErrMissingToken)
	}
	return token, nil
}

// GetRepoFilter returns the repository name filter for an organization,
// preferring an organization-specific value over the default.
func (c *Config) GetRepoFilter(org string) string {
	if orgConfig, ok := c.Organizations[org]; ok && orgConfig.RepoFilter != "" {
		return orgConfig.RepoFilter
	}
	return c.Defaults.RepoFilter
}

// GetIgnoreAuthors returns the default ignored authors followed by any
// organization-specific ones, without duplicates (compared case-insensitively).
func (c *Config) GetIgnoreAuthors(org string) []string {
	authors := slices.Clone(c.Defaults.IgnoreAuthors)
	if orgConfig, ok := c.Organizations[org]; ok {
		for _, a := range orgConfig.IgnoreAuthors {
			if !slices.ContainsFunc(authors, func(existing string) bool { return strings.EqualFold(existing, a) }) {
				authors = append(authors, a)
			}
		}
	}
	return authors
}

// Validate checks if the configuration contains valid values. It should be
// called after loading configuration and applying flags.
func (c *Config) Validate() error {
	if c.Defaults.Workers <= 0 {
		return fmt.Errorf("workers must be positive, got: %d", c.Defaults.Workers)
	}
	if c.Defaults.Workers > MaxWorkers {
		return fmt.Errorf("workers %d exceeds limit of %d", c.Defaults.Workers, MaxWorkers)
	}
	if c.GitHub.APIEndpoint == "" {
		return fmt.Errorf("GitHub API endpoint cannot be empty")
	}
	if c.GitHub.GraphQLEndpoint == "" {
		return fmt.Errorf("GitHub GraphQL endpoint cannot be empty")
	}
	if c.GitHub.TokenEnv == "" {
		return fmt.Errorf("GitHub token environment variable name cannot be empty")
	}
	switch c.Defaults.OutputFormat {
	case "table", "json":
	default:
		return fmt.Errorf("unknown output format %q (want table or json)", c.Defaults.OutputFormat)
	}
	return nil
}
