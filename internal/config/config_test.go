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
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestDefaultConfig(t *testing.T) {
	cfg := DefaultConfig()

	// Test GitHub defaults
	if cfg.GitHub.APIEndpoint != "https://api.github.com" {
		t.Errorf("APIEndpoint = %s, want https://api.github.com", cfg.GitHub.APIEndpoint)
	}
	if cfg.GitHub.GraphQLEndpoint != "https://api.github.com/graphql" {
		t.Errorf("GraphQLEndpoint = %s, want https://api.github.com/graphql", cfg.GitHub.GraphQLEndpoint)
	}
	if cfg.GitHub.TokenEnv != "GITHUB_TOKEN" {
		t.Errorf("TokenEnv = %s, want GITHUB_TOKEN", cfg.GitHub.TokenEnv)
	}

	// Test defaults
	if cfg.Defaults.Repository != "" {
		t.Errorf("Repository = %s, want empty", cfg.Defaults.Repository)
	}
	if cfg.Defaults.TeamFile != "team.md" {
		t.Errorf("TeamFile = %s, want team.md", cfg.Defaults.TeamFile)
	}
	if cfg.Defaults.PageSize != 100 {
		t.Errorf("PageSize = %d, want 100", cfg.Defaults.PageSize)
	}
}

func TestLoadConfigFile(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "config.yaml")

	// Write test config
	configContent := `
github:
  api_endpoint: https://github.enterprise.com/api/v3
  graphql_endpoint: https://github.enterprise.com/api/graphql
  token_env: GITHUB_ENTERPRISE_TOKEN

defaults:
  repository: acme/planning
  team_file: docs/team.md
  page_size: 25
`
	if err := os.WriteFile(configPath, []byte(configContent), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	// Load config
	cfg, err := LoadConfig(configPath)
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// Verify GitHub settings
	if cfg.GitHub.APIEndpoint != "https://github.enterprise.com/api/v3" {
		t.Errorf("APIEndpoint = %s, want https://github.enterprise.com/api/v3", cfg.GitHub.APIEndpoint)
	}
	if cfg.GitHub.TokenEnv != "GITHUB_ENTERPRISE_TOKEN" {
		t.Errorf("TokenEnv = %s, want GITHUB_ENTERPRISE_TOKEN", cfg.GitHub.TokenEnv)
	}

	// Verify defaults
	if cfg.Defaults.Repository != "acme/planning" {
		t.Errorf("Repository = %s, want acme/planning", cfg.Defaults.Repository)
	}
	if cfg.Defaults.TeamFile != "docs/team.md" {
		t.Errorf("TeamFile = %s, want docs/team.md", cfg.Defaults.TeamFile)
	}
	if cfg.Defaults.PageSize != 25 {
		t.Errorf("PageSize = %d, want 25", cfg.Defaults.PageSize)
	}
}

func TestLoadConfigMissingFile(t *testing.T) {
	_, err := LoadConfig("/nonexistent/path/config.yaml")
	if err == nil {
		t.Fatal("expected error for missing explicit config file")
	}
	if !strings.Contains(err.Error(), "failed to load config file") {
		t.Errorf("unexpected error: %v", err)
	}
}

func TestLoadConfigInvalidYAML(t *testing.T) {
	tmpDir := t.TempDir()
	configPath := filepath.Join(tmpDir, "bad.yaml")

	if err := os.WriteFile(configPath, []byte("github: [not a map"), 0o644); err != nil {
		t.Fatalf("Failed to write test config: %v", err)
	}

	if _, err := LoadConfig(configPath); err == nil {
		t.Fatal("expected error for invalid YAML")
	}
}

func TestEnvOverrides(t *testing.T) {
	t.Setenv("GITHUB_API_ENDPOINT", "https://ghe.example.com/api/v3")
	t.Setenv("GITHUB_REPOSITORY", "acme/override")
	t.Setenv("ROSTER_TEAM_FILE", "people.md")
	t.Setenv("ROSTER_PAGE_SIZE", "30")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	if cfg.GitHub.APIEndpoint != "https://ghe.example.com/api/v3" {
		t.Errorf("APIEndpoint = %s, want env override", cfg.GitHub.APIEndpoint)
	}
	if cfg.Defaults.Repository != "acme/override" {
		t.Errorf("Repository = %s, want acme/override", cfg.Defaults.Repository)
	}
	if cfg.Defaults.TeamFile != "people.md" {
		t.Errorf("TeamFile = %s, want people.md", cfg.Defaults.TeamFile)
	}
	if cfg.Defaults.PageSize != 30 {
		t.Errorf("PageSize = %d, want 30", cfg.Defaults.PageSize)
	}
}

func TestEnvOverrideInvalidPageSize(t *testing.T) {
	t.Setenv("ROSTER_PAGE_SIZE", "not-a-number")

	cfg, err := LoadConfig("")
	if err != nil {
		t.Fatalf("LoadConfig failed: %v", err)
	}

	// Invalid values are ignored, keeping the default
	if cfg.Defaults.PageSize != 100 {
		t.Errorf("PageSize = %d, want 100", cfg.Defaults.PageSize)
	}
}

func TestToken(t *testing.T) {
	tests := []struct {
		name     string
		tokenEnv string
		envVar   string
		envValue string
		want     string
	}{
		{
			name:     "default env var",
			tokenEnv: "",
			envVar:   "GITHUB_TOKEN",
			envValue: "ghp_test123",
			want:     "ghp_test123",
		},
		{
			name:     "custom env var",
			tokenEnv: "GITHUB_ENTERPRISE_TOKEN",
			envVar:   "GITHUB_ENTERPRISE_TOKEN",
			envValue: "ghe_token456",
			want:     "ghe_token456",
		},
		{
			name:     "whitespace trimmed",
			tokenEnv: "",
			envVar:   "GITHUB_TOKEN",
			envValue: "  ghp_padded  ",
			want:     "ghp_padded",
		},
		{
			name:     "missing token",
			tokenEnv: "",
			envVar:   "GITHUB_TOKEN",
			envValue: "",
			want:     "",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Setenv(tt.envVar, tt.envValue)
			cfg := DefaultConfig()
			cfg.GitHub.TokenEnv = tt.tokenEnv

			if got := cfg.Token(); got != tt.want {
				t.Errorf("Token() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(*Config)
		wantErr bool
	}{
		{
			name:    "valid defaults",
			mutate:  func(_ *Config) {},
			wantErr: false,
		},
		{
			name:    "zero page size",
			mutate:  func(c *Config) { c.Defaults.PageSize = 0 },
			wantErr: true,
		},
		{
			name:    "page size over api limit",
			mutate:  func(c *Config) { c.Defaults.PageSize = 200 },
			wantErr: true,
		},
		{
			name:    "empty api endpoint",
			mutate:  func(c *Config) { c.GitHub.APIEndpoint = "" },
			wantErr: true,
		},
		{
			name:    "empty graphql endpoint",
			mutate:  func(c *Config) { c.GitHub.GraphQLEndpoint = "" },
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(cfg)

			err := cfg.Validate()
			if (err != nil) != tt.wantErr {
				t.Errorf("Validate() error = %v, wantErr = %v", err, tt.wantErr)
			}
		})
	}
}
