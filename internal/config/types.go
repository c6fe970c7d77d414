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

// Package config types define the configuration structures used throughout
// breakfast. These types represent settings that can be loaded from
// YAML configuration files, environment variables, or command-line flags.
package config

// Config represents the complete configuration for breakfast.
// It consolidates settings from various sources and provides a unified
// interface for accessing configuration values throughout the application.
type Config struct {
	GitHub        GitHubConfig         `yaml:"github"`
	Defaults      DefaultsConfig       `yaml:"defaults"`
	Organizations map[string]OrgConfig `yaml:"organizations"`
}

// GitHubConfig contains GitHub-specific settings including API endpoints
// and the name of the environment variable holding the token. Pointing the
// endpoints elsewhere allows GitHub Enterprise deployments.
type GitHubConfig struct {
	APIEndpoint     string `yaml:"api_endpoint"`
	GraphQLEndpoint string `yaml:"graphql_endpoint"`
	TokenEnv        string `yaml:"token_env"`
}

// DefaultsConfig contains settings that apply to every report unless
// overridden by organization-specific settings or command-line flags.
type DefaultsConfig struct {
	Organization  string   `yaml:"organization"`
	RepoFilter    string   `yaml:"repo_filter"`
	IgnoreAuthors []string `yaml:"ignore_authors"`
	Workers       int      `yaml:"workers"`
	ShowAge       bool     `yaml:"show_age"`
	OutputFormat  string   `yaml:"output_format"`
}

// OrgConfig contains organization-specific overrides. Authors listed here
// are ignored in addition to the default list.
type OrgConfig struct {
	RepoFilter    string   `yaml:"repo_filter"`
	IgnoreAuthors []string `yaml:"ignore_authors"`
}

// Limits for the detail fetch worker pool.
const (
	DefaultWorkers = 8
	MaxWorkers     = 64
)

// DefaultConfig returns a Config with defaults for public GitHub.com.
func DefaultConfig() *Config {
	return &Config{
		GitHub: GitHubConfig{
			APIEndpoint:     "https://api.github.com",
			GraphQLEndpoint: "https://api.github.com/graphql",
			TokenEnv:        "GITHUB_TOKEN",
		},
		Defaults: DefaultsConfig{
			Workers:      DefaultWorkers,
			OutputFormat: "table",
		},
		Organizations: make(map[string]OrgConfig),
	}
}
