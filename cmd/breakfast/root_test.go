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

package main

import (
	"bytes"
	"context"
	"errors"
	"io"
	"strings"
	"testing"

	"github.com/sirseerhq/breakfast/internal/config"
	bferrors "github.com/sirseerhq/breakfast/internal/errors"
	"github.com/sirseerhq/breakfast/internal/github"
	"github.com/sirseerhq/breakfast/internal/output"
)

func TestResolveOptions(t *testing.T) {
	tests := []struct {
		name        string
		args        []string
		setup       func(cfg *config.Config)
		wantOrg     string
		wantFilter  string
		wantIgnore  []string
		wantWorkers int
		wantAge     bool
		wantFormat  string
		wantErr     string
	}{
		{
			name:        "flags only",
			args:        []string{"-o", "acme", "-r", "api", "-i", "bot1,bot2", "-a"},
			wantOrg:     "acme",
			wantFilter:  "api",
			wantIgnore:  []string{"bot1", "bot2"},
			wantWorkers: config.DefaultWorkers,
			wantAge:     true,
			wantFormat:  "table",
		},
		{
			name: "config defaults",
			setup: func(cfg *config.Config) {
				cfg.Defaults.Organization = "acme"
				cfg.Defaults.RepoFilter = "svc"
				cfg.Defaults.IgnoreAuthors = []string{"renovate"}
				cfg.Defaults.Workers = 4
				cfg.Defaults.ShowAge = true
			},
			wantOrg:     "acme",
			wantFilter:  "svc",
			wantIgnore:  []string{"renovate"},
			wantWorkers: 4,
			wantAge:     true,
			wantFormat:  "table",
		},
		{
			name: "flags override config",
			args: []string{"-o", "other", "-r", "web", "-i", "bob", "--workers", "2", "--age=false", "--output", "json"},
			setup: func(cfg *config.Config) {
				cfg.Defaults.Organization = "acme"
				cfg.Defaults.RepoFilter = "svc"
				cfg.Defaults.IgnoreAuthors = []string{"renovate"}
				cfg.Defaults.Workers = 4
				cfg.Defaults.ShowAge = true
			},
			wantOrg:     "other",
			wantFilter:  "web",
			wantIgnore:  []string{"renovate", "bob"},
			wantWorkers: 2,
			wantAge:     false,
			wantFormat:  "json",
		},
		{
			name: "organization overrides",
			args: []string{"-o", "acme"},
			setup: func(cfg *config.Config) {
				cfg.Defaults.IgnoreAuthors = []string{"renovate"}
				cfg.Organizations = map[string]config.OrgConfig{
					"acme": {RepoFilter: "acme-", IgnoreAuthors: []string{"acme-bot"}},
				}
			},
			wantOrg:     "acme",
			wantFilter:  "acme-",
			wantIgnore:  []string{"renovate", "acme-bot"},
			wantWorkers: config.DefaultWorkers,
			wantFormat:  "table",
		},
		{
			name:    "missing organization",
			wantErr: "organization is required",
		},
		{
			name:    "too many workers",
			args:    []string{"-o", "acme", "--workers", "1000"},
			wantErr: "invalid configuration",
		},
		{
			name:    "unknown output format",
			args:    []string{"-o", "acme", "--output", "xml"},
			wantErr: "invalid configuration",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cmd := newRootCommand(io.Discard, io.Discard)
			if err := cmd.ParseFlags(tt.args); err != nil {
				t.Fatalf("ParseFlags() error = %v", err)
			}

			cfg := config.DefaultConfig()
			if tt.setup != nil {
				tt.setup(cfg)
			}

			var opts options
			opts.organization, _ = cmd.Flags().GetString("organization")
			opts.repoFilter, _ = cmd.Flags().GetString("repo-filter")
			opts.ignoreAuthors, _ = cmd.Flags().GetStringSlice("ignore-author")
			opts.showAge, _ = cmd.Flags().GetBool("age")
			opts.outputFormat, _ = cmd.Flags().GetString("output")
			opts.workers, _ = cmd.Flags().GetInt("workers")

			ro, err := resolveOptions(cmd, &opts, cfg)
			if tt.wantErr != "" {
				if err == nil || !strings.Contains(err.Error(), tt.wantErr) {
					t.Fatalf("resolveOptions() error = %v, want %q", err, tt.wantErr)
				}
				return
			}
			if err != nil {
				t.Fatalf("resolveOptions() error = %v", err)
			}

			if ro.organization != tt.wantOrg {
				t.Errorf("organization = %q, want %q", ro.organization, tt.wantOrg)
			}
			if ro.repoFilter != tt.wantFilter {
				t.Errorf("repoFilter = %q, want %q", ro.repoFilter, tt.wantFilter)
			}
			if strings.Join(ro.ignoreAuthors, ",") != strings.Join(tt.wantIgnore, ",") {
				t.Errorf("ignoreAuthors = %v, want %v", ro.ignoreAuthors, tt.wantIgnore)
			}
			if ro.workers != tt.wantWorkers {
				t.Errorf("workers = %d, want %d", ro.workers, tt.wantWorkers)
			}
			if ro.showAge != tt.wantAge {
				t.Errorf("showAge = %v, want %v", ro.showAge, tt.wantAge)
			}
			if ro.outputFormat != tt.wantFormat {
				t.Errorf("outputFormat = %q, want %q", ro.outputFormat, tt.wantFormat)
			}
		})
	}
}

func TestRunReport_MockClient(t *testing.T) {
	tests := []struct {
		name        string
		mockSetup   func() *github.MockClient
		ro          reportOptions
		wantErr     error
		wantDetails int
		checkOutput func(t *testing.T, stdout string)
	}{
		{
			name:        "all pull requests",
			mockSetup:   github.NewMockClient,
			ro:          reportOptions{organization: "acme", workers: 2, outputFormat: output.FormatJSON},
			wantDetails: 3,
			checkOutput: func(t *testing.T, stdout string) {
				lines := strings.Split(strings.TrimSpace(stdout), "\n")
				if len(lines) != 3 {
					t.Fatalf("expected 3 lines of NDJSON, got %d", len(lines))
				}
				for i, want := range []string{`"number":12`, `"number":13`, `"number":7`} {
					if !strings.Contains(lines[i], want) {
						t.Errorf("line %d = %s, want %s", i, lines[i], want)
					}
				}
			},
		},
		{
			name:      "exclude bot",
			mockSetup: github.NewMockClient,
			ro: reportOptions{
				organization:  "acme",
				ignoreAuthors: []string{"Dependabot[bot]"},
				workers:       8,
				outputFormat:  output.FormatTable,
			},
			wantDetails: 2,
			checkOutput: func(t *testing.T, stdout string) {
				if strings.Contains(stdout, "PR-13") {
					t.Errorf("excluded PR present:\n%s", stdout)
				}
				if !strings.Contains(stdout, "PR-12") || !strings.Contains(stdout, "PR-7") {
					t.Errorf("expected PR-12 and PR-7:\n%s", stdout)
				}
			},
		},
		{
			name:        "repo filter",
			mockSetup:   github.NewMockClient,
			ro:          reportOptions{organization: "acme", repoFilter: "we", workers: 8, outputFormat: output.FormatTable},
			wantDetails: 1,
			checkOutput: func(t *testing.T, stdout string) {
				if !strings.Contains(stdout, "Rework checkout flow") {
					t.Errorf("expected web PR:\n%s", stdout)
				}
			},
		},
		{
			name: "auth failure",
			mockSetup: func() *github.MockClient {
				return github.NewMockClientWithOptions(github.WithAuthFailure())
			},
			ro:      reportOptions{organization: "acme", workers: 8},
			wantErr: bferrors.ErrInvalidToken,
		},
		{
			name:      "unknown organization",
			mockSetup: github.NewMockClient,
			ro:        reportOptions{organization: "nonexistent", workers: 8},
			wantErr:   bferrors.ErrOrgNotFound,
		},
		{
			name: "missing detail",
			mockSetup: func() *github.MockClient {
				return github.NewMockClientWithOptions(github.WithDetails(map[string]*github.PullRequestDetail{}))
			},
			ro:      reportOptions{organization: "acme", workers: 8},
			wantErr: bferrors.ErrPullRequestNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			client := tt.mockSetup()
			var stdout, stderr bytes.Buffer
			progress := output.NewProgress(&stderr, false)

			err := runReport(context.Background(), client, tt.ro, &stdout, progress)

			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("runReport() error = %v, want %v", err, tt.wantErr)
				}
				if stdout.Len() != 0 {
					t.Errorf("stdout = %q, want empty on failure", stdout.String())
				}
				if !strings.HasSuffix(stderr.String(), "\n") || strings.HasSuffix(stderr.String(), "...Done\n") {
					t.Errorf("progress = %q, want aborted line", stderr.String())
				}
				return
			}
			if err != nil {
				t.Fatalf("runReport() error = %v", err)
			}

			if client.DetailCalls != tt.wantDetails {
				t.Errorf("DetailCalls = %d, want %d", client.DetailCalls, tt.wantDetails)
			}
			if got, want := progress.Ticks(), client.PageCalls+tt.wantDetails; got != want {
				t.Errorf("progress ticks = %d, want %d", got, want)
			}
			lines := strings.Split(strings.TrimSuffix(stderr.String(), "\n"), "\n")
			if len(lines) != 2 || !strings.HasPrefix(lines[0], "Fetching acme PRs...") || !strings.HasPrefix(lines[1], "Processing ") {
				t.Errorf("progress = %q, want fetching and processing lines", stderr.String())
			}
			for _, line := range lines {
				if !strings.HasSuffix(line, "...Done") {
					t.Errorf("progress line %q not finished", line)
				}
			}
			if tt.checkOutput != nil {
				tt.checkOutput(t, stdout.String())
			}
		})
	}
}
