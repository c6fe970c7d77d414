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

package config

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"

	bferrors "github.com/sirseerhq/breakfast/internal/errors"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	if cfg.GitHub.APIEndpoint != "https://api.github.com" {
		t.Errorf("Expected default API endpoint, got %s", cfg.GitHub.APIEndpoint)
	}
	if cfg.GitHub.GraphQLEndpoint != "https://api.github.com/graphql" {
		t.Errorf("Expected default GraphQL endpoint, got %s", cfg.GitHub.GraphQLEndpoint)
	}
	if cfg.GitHub.TokenEnv != "GITHUB_TOKEN" {
		t.Errorf("Expected default token env GITHUB_TOKEN, got %s", cfg.GitHub.TokenEnv)
	}
	if cfg.Defaults.Workers != DefaultWorkers {
		t.Errorf("Expected default workers %d, got %d", DefaultWorkers, cfg.Defaults.Workers)
	}
	if cfg.Defaults.OutputFormat != "table" {
		t.Errorf("Expected default output format table, got %s", cfg.Defaults.OutputFormat)
	}
	if cfg.Defaults.ShowAge {
		t.Error("Expected show_age to default to false")
	}
	if err := cfg.Validate(); err != nil {
		t.Errorf("Default config should validate, got: %v", err)
	}
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	configContent := `
github:
  api_endpoint: https://github.example.com/api/v3
  graphql_endpoint: https://github.example.com/api/graphql
  token_env: GHE_TOKEN

defaults:
  organization: acme
  repo_filter: app
  ignore_authors:
    - dependabot[bot]
  workers: 4
  show_age: true
  output_format: json

organizations:
  widgets:
    repo_filter: svc
    ignore_authors:
      - renovate[bot]
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}

	if cfg.GitHub.APIEndpoint != "https://github.example.com/api/v3" {
		t.Errorf("Expected custom API endpoint, got %s", cfg.GitHub.APIEndpoint)
	}
	if cfg.GitHub.GraphQLEndpoint != "https://github.example.com/api/graphql" {
		t.Errorf("Expected custom GraphQL endpoint, got %s", cfg.GitHub.GraphQLEndpoint)
	}
	if cfg.GitHub.TokenEnv != "GHE_TOKEN" {
		t.Errorf("Expected token env GHE_TOKEN, got %s", cfg.GitHub.TokenEnv)
	}
	if cfg.Defaults.Organization != "acme" {
		t.Errorf("Expected organization acme, got %s", cfg.Defaults.Organization)
	}
	if cfg.Defaults.Workers != 4 {
		t.Errorf("Expected workers 4, got %d", cfg.Defaults.Workers)
	}
	if !cfg.Defaults.ShowAge {
		t.Error("Expected show_age true")
	}
	if cfg.Defaults.OutputFormat != "json" {
		t.Errorf("Expected output format json, got %s", cfg.Defaults.OutputFormat)
	}

	widgets, ok := cfg.Organizations["widgets"]
	if !ok {
		t.Fatal("Expected widgets organization config")
	}
	if widgets.RepoFilter != "svc" {
		t.Errorf("Expected widgets repo filter svc, got %s", widgets.RepoFilter)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig(filepath.Join(t.TempDir(), "nope.yaml"))
	if err == nil {
		t.Fatal("Expected error for missing explicit config file")
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "bad.yaml")
	if err := os.WriteFile(configPath, []byte("github: [unterminated"), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Fatal("Expected parse error for invalid YAML")
	}
}

func TestEnvironmentOverrides(t *testing.T) {
	t.Setenv("GITHUB_API_ENDPOINT", "https://env.example.com/api")
	t.Setenv("GITHUB_GRAPHQL_ENDPOINT", "https://env.example.com/graphql")
	t.Setenv("BREAKFAST_ORGANIZATION", "env-org")
	t.Setenv("BREAKFAST_WORKERS", "3")
	t.Setenv("BREAKFAST_SHOW_AGE", "yes")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.GitHub.APIEndpoint != "https://env.example.com/api" {
		t.Errorf("Expected env API endpoint, got %s", cfg.GitHub.APIEndpoint)
	}
	if cfg.GitHub.GraphQLEndpoint != "https://env.example.com/graphql" {
		t.Errorf("Expected env GraphQL endpoint, got %s", cfg.GitHub.GraphQLEndpoint)
	}
	if cfg.Defaults.Organization != "env-org" {
		t.Errorf("Expected env organization, got %s", cfg.Defaults.Organization)
	}
	if cfg.Defaults.Workers != 3 {
		t.Errorf("Expected env workers 3, got %d", cfg.Defaults.Workers)
	}
	if !cfg.Defaults.ShowAge {
		t.Error("Expected env show_age true")
	}
}

func TestEnvironmentOverridesIgnoreInvalidWorkers(t *testing.T) {
	t.Setenv("BREAKFAST_WORKERS", "-2")

	cfg := DefaultConfig()
	applyEnvOverrides(cfg)

	if cfg.Defaults.Workers != DefaultWorkers {
		t.Errorf("Expected invalid env workers to be ignored, got %d", cfg.Defaults.Workers)
	}
}

func TestEnvironmentOverridesFileValues(t *testing.T) {
	configPath := filepath.Join(t.TempDir(), "config.yaml")
	if err := os.WriteFile(configPath, []byte("defaults:\n  organization: file-org\n"), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}
	t.Setenv("BREAKFAST_ORGANIZATION", "env-org")

	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("Failed to load config: %v", err)
	}
	if cfg.Defaults.Organization != "env-org" {
		t.Errorf("Expected env to win over file, got %s", cfg.Defaults.Organization)
	}
}

func TestToken(t *testing.T) {
	tests := []struct {
		name    string
		set     bool
		value   string
		wantErr bool
	}{
		{name: "present", set: true, value: "ghp_abc", wantErr: false},
		{name: "blank", set: true, value: "  ", wantErr: true},
		{name: "unset", set: false, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			cfg.GitHub.TokenEnv = "BREAKFAST_TEST_TOKEN"
			if tt.set {
				t.Setenv("BREAKFAST_TEST_TOKEN", tt.value)
			} else {
				t.Setenv("BREAKFAST_TEST_TOKEN", "")
				os.Unsetenv("BREAKFAST_TEST_TOKEN")
			}

			token, err := cfg.Token()
			if tt.wantErr {
				if !errors.Is(err, bferrors.ErrMissingToken) {
					t.Fatalf("Expected ErrMissingToken, got %v", err)
				}
				if got := err.Error(); !strings.HasPrefix(got, "BREAKFAST_TEST_TOKEN not set in environment") {
					t.Errorf("Unexpected message: %s", got)
				}
				return
			}
			if err != nil {
				t.Fatalf("Unexpected error: %v", err)
			}
			if token != tt.value {
				t.Errorf("Expected token %q, got %q", tt.value, token)
			}
		})
	}
}

func TestTokenEmptyVariableName(t *testing.T) {
	cfg := DefaultConfig()
	cfg.GitHub.TokenEnv = ""

	_, err := cfg.Token()
	if !errors.Is(err, bferrors.ErrMissingToken) {
		t.Fatalf("Expected ErrMissingToken, got %v", err)
	}
	if !strings.Contains(err.Error(), "token environment variable name cannot be empty") {
		t.Errorf("Unexpected message: %s", err)
	}
}

func TestGetRepoFilter(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Defaults.RepoFilter = "app"
	cfg.Organizations["widgets"] = OrgConfig{RepoFilter: "svc"}
	cfg.Organizations["gadgets"] = OrgConfig{}

	tests := []struct {
		org  string
		want string
	}{
		{"widgets", "svc"},
		{"gadgets", "app"},
		{"unknown", "app"},
	}

	for _, tt := range tests {
		if got := cfg.GetRepoFilter(tt.org); got != tt.want {
			t.Errorf("GetRepoFilter(%s) = %s, want %s", tt.org, got, tt.want)
		}
	}
}

func TestGetIgnoreAuthors(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Defaults.IgnoreAuthors = []string{"dependabot[bot]"}
	cfg.Organizations["widgets"] = OrgConfig{IgnoreAuthors: []string{"Dependabot[Bot]", "renovate[bot]"}}

	got := cfg.GetIgnoreAuthors("widgets")
	want := []string{"dependabot[bot]", "renovate[bot]"}
	if len(got) != len(want) {
		t.Fatalf("GetIgnoreAuthors(widgets) = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("GetIgnoreAuthors(widgets)[%d] = %s, want %s", i, got[i], want[i])
		}
	}

	if other := cfg.GetIgnoreAuthors("other"); len(other) != 1 {
		t.Errorf("Expected only default authors for other org, got %v", other)
	}
	if len(cfg.Defaults.IgnoreAuthors) != 1 {
		t.Error("GetIgnoreAuthors must not modify the default list")
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{name: "valid defaults", mutate: func(*Config) {}, wantErr: false},
		{name: "zero workers", mutate: func(c *Config) { c.Defaults.Workers = 0 }, wantErr: true},
		{name: "negative workers", mutate: func(c *Config) { c.Defaults.Workers = -1 }, wantErr: true},
		{name: "max workers", mutate: func(c *Config) { c.Defaults.Workers = MaxWorkers }, wantErr: false},
		{name: "too many workers", mutate: func(c *Config) { c.Defaults.Workers = MaxWorkers + 1 }, wantErr: true},
		{name: "empty API endpoint", mutate: func(c *Config) { c.GitHub.APIEndpoint = "" }, wantErr: true},
		{name: "empty GraphQL endpoint", mutate: func(c *Config) { c.GitHub.GraphQLEndpoint = "" }, wantErr: true},
		{name: "empty token env", mutate: func(c *Config) { c.GitHub.TokenEnv = "" }, wantErr: true},
		{name: "json output", mutate: func(c *Config) { c.Defaults.OutputFormat = "json" }, wantErr: false},
		{name: "unknown output", mutate: func(c *Config) { c.Defaults.OutputFormat = "csv" }, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)
			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr %v", err, tt.wantErr)
			}
		})
	}
}

func TestExpandPath(t *testing.T) {
	t.Setenv("HOME", "/home/test")
	t.Setenv("BREAKFAST_DIR", "/opt/breakfast")

	tests := []struct {
		input    string
		expected string
	}{
		{"~/config.yaml", "/home/test/config.yaml"},
		{"$BREAKFAST_DIR/config.yaml", "/opt/breakfast/config.yaml"},
		{"/absolute/path", "/absolute/path"},
		{"relative/path", "relative/path"},
	}

	for _, tt := range tests {
		if got := expandPath(tt.input); got != tt.expected {
			t.Errorf("expandPath(%s) = %s, want %s", tt.input, got, tt.expected)
		}
	}
}

func TestParseBool(t *testing.T) {
	tests := []struct {
		input    string
		expected bool
	}{
		{"true", true},
		{"TRUE", true},
		{"yes", true},
		{"1", true},
		{"on", true},
		{" On ", true},
		{"false", false},
		{"no", false},
		{"0", false},
		{"", false},
		{"maybe", false},
	}

	for _, tt := range tests {
		if got := parseBool(tt.input); got != tt.expected {
			t.Errorf("parseBool(%q) = %v, want %v", tt.input, got, tt.expected)
		}
	}
}

func TestParsePositiveInt(t *testing.T) {
	tests := []struct {
		input   string
		want    int
		wantErr bool
	}{
		{"8", 8, false},
		{"64", 64, false},
		{"0", 0, true},
		{"-5", 0, true},
		{"abc", 0, true},
		{"", 0, true},
	}

	for _, tt := range tests {
		got, err := parsePositiveInt(tt.input)
		if (err != nil) != tt.wantErr {
			t.Errorf("parsePositiveInt(%q) error = %v, wantErr %v", tt.input, err, tt.wantErr)
			continue
		}
		if got != tt.want {
			t.Errorf("parsePositiveInt(%q) = %d, want %d", tt.input, got, tt.want)
		}
	}
}
