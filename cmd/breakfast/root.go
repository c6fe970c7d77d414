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
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/joho/godotenv"
	"github.com/sirseerhq/breakfast/internal/collect"
	"github.com/sirseerhq/breakfast/internal/config"
	"github.com/sirseerhq/breakfast/internal/github"
	"github.com/sirseerhq/breakfast/internal/logging"
	"github.com/sirseerhq/breakfast/internal/output"
	"github.com/sirseerhq/breakfast/internal/report"
	"github.com/sirseerhq/breakfast/pkg/version"
	"github.com/spf13/cobra"
)

// options holds the raw command-line flags.
type options struct {
	organization  string
	repoFilter    string
	ignoreAuthors []string
	showAge       bool
	outputFormat  string
	outputFile    string
	workers       int
	configPath    string
	envFile       string
	debug         bool
	quiet         bool
	timeout       time.Duration
}

// reportOptions is the resolved configuration of one report run.
type reportOptions struct {
	organization  string
	repoFilter    string
	ignoreAuthors []string
	showAge       bool
	outputFormat  string
	outputFile    string
	workers       int
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var opts options

	cmd := &cobra.Command{
		Use:   "breakfast",
		Short: "Report open pull requests across a GitHub organization",
		Long: `breakfast lists every open pull request in an organization's repositories
and prints a table graded by size: changed files, commits, review comments
and, optionally, age in days.

Authentication is required via a GitHub token read from the environment
(GITHUB_TOKEN by default). A .env file in the working directory is loaded
if present.`,
		Version:       version.Version,
		Args:          cobra.NoArgs,
		SilenceUsage:  true, // Don't show usage on error
		SilenceErrors: true, // We'll handle error printing ourselves
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, &opts, stdout, stderr)
		},
	}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)

	flags := cmd.Flags()
	flags.StringVarP(&opts.organization, "organization", "o", "", "GitHub organization to report on")
	flags.StringVarP(&opts.repoFilter, "repo-filter", "r", "", "Only include repositories whose name contains this substring")
	flags.StringSliceVarP(&opts.ignoreAuthors, "ignore-author", "i", nil, "Skip pull requests by this author (repeatable, case-insensitive)")
	flags.BoolVarP(&opts.showAge, "age", "a", false, "Add an age in days column")
	flags.StringVar(&opts.outputFormat, "output", "", "Output format: table or json (default: table)")
	flags.StringVar(&opts.outputFile, "output-file", "", "Write the report to a file instead of stdout")
	flags.IntVar(&opts.workers, "workers", 0, fmt.Sprintf("Concurrent pull request detail requests (default: %d)", config.DefaultWorkers))
	flags.StringVar(&opts.configPath, "config", "", "Path to configuration file")
	flags.StringVar(&opts.envFile, "env-file", "", "Load environment variables from this file instead of .env")
	flags.BoolVar(&opts.debug, "debug", false, "Write debug logs to stderr")
	flags.BoolVarP(&opts.quiet, "quiet", "q", false, "Suppress the progress line")
	flags.DurationVar(&opts.timeout, "timeout", 0, "Abort the whole run after this duration (e.g. 2m); 0 means no limit")

	return cmd
}

// run wires configuration, credentials and clients, then produces the report.
func run(cmd *cobra.Command, opts *options, stdout, stderr io.Writer) error {
	if err := loadEnvFile(opts.envFile); err != nil {
		return err
	}

	logging.Initialize(opts.debug, stderr)

	cfg, err := config.LoadConfig(opts.configPath)
	if err != nil {
		return err
	}

	// The token is checked before anything else can fail or touch the network.
	token, err := cfg.Token()
	if err != nil {
		return err
	}

	ro, err := resolveOptions(cmd, opts, cfg)
	if err != nil {
		return err
	}

	ctx := cmd.Context()
	if opts.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, opts.timeout)
		defer cancel()
	}

	client, err := github.NewClient(token, cfg.GitHub.GraphQLEndpoint, cfg.GitHub.APIEndpoint)
	if err != nil {
		return err
	}

	logging.Logger.Debug("starting report",
		"organization", ro.organization,
		"repo_filter", ro.repoFilter,
		"ignore_authors", ro.ignoreAuthors,
		"workers", ro.workers,
		"graphql_endpoint", cfg.GitHub.GraphQLEndpoint,
		"api_endpoint", cfg.GitHub.APIEndpoint)

	progress := output.NewProgress(stderr, opts.quiet)
	return runReport(ctx, client, ro, stdout, progress)
}

// loadEnvFile loads an explicit env file, or .env when it exists.
// Variables already set in the environment are never overridden.
func loadEnvFile(path string) error {
	if path != "" {
		if err := godotenv.Load(path); err != nil {
			return fmt.Errorf("failed to load env file %s: %w", path, err)
		}
		return nil
	}
	if _, err := os.Stat(".env"); err == nil {
		if err := godotenv.Load(".env"); err != nil {
			return fmt.Errorf("failed to load .env: %w", err)
		}
	}
	return nil
}

// resolveOptions applies flags over configuration. Only flags the user
// actually set take precedence.
func resolveOptions(cmd *cobra.Command, opts *options, cfg *config.Config) (reportOptions, error) {
	flags := cmd.Flags()

	if flags.Changed("organization") {
		cfg.Defaults.Organization = opts.organization
	}
	if flags.Changed("workers") {
		cfg.Defaults.Workers = opts.workers
	}
	if flags.Changed("age") {
		cfg.Defaults.ShowAge = opts.showAge
	}
	if flags.Changed("output") {
		cfg.Defaults.OutputFormat = opts.outputFormat
	}

	if err := cfg.Validate(); err != nil {
		return reportOptions{}, fmt.Errorf("invalid configuration: %w", err)
	}

	org := cfg.Defaults.Organization
	if org == "" {
		return reportOptions{}, errors.New("organization is required: use --organization or set defaults.organization")
	}

	ro := reportOptions{
		organization:  org,
		repoFilter:    cfg.GetRepoFilter(org),
		ignoreAuthors: cfg.GetIgnoreAuthors(org),
		showAge:       cfg.Defaults.ShowAge,
		outputFormat:  cfg.Defaults.OutputFormat,
		outputFile:    opts.outputFile,
		workers:       cfg.Defaults.Workers,
	}
	if flags.Changed("repo-filter") {
		ro.repoFilter = opts.repoFilter
	}
	if flags.Changed("ignore-author") {
		ro.ignoreAuthors = append(ro.ignoreAuthors, opts.ignoreAuthors...)
	}

	return ro, nil
}

// runReport fetches every page, collects and fetches the matching pull
// requests, and writes the report. Nothing is written to stdout unless
// every fetch succeeded.
func runReport(ctx context.Context, client github.Client, ro reportOptions, stdout io.Writer, progress *output.Progress) error {
	start := time.Now()
	progress.Start("Fetching %s PRs...", ro.organization)

	pages, err := github.FetchAllPages(ctx, client, ro.organization, func(*github.RepositoryPage) {
		progress.Tick()
	})
	if err != nil {
		progress.Abort()
		return err
	}
	progress.Done()

	urls := collect.PullRequestURLs(pages, ro.repoFilter, ro.ignoreAuthors)
	logging.Logger.Debug("collected pull requests", "pages", len(pages), "pull_requests", len(urls))

	label := ro.repoFilter
	if label == "" {
		label = ro.organization
	}
	progress.Start("Processing %s PRs...", label)

	details, err := collect.FetchDetails(ctx, client, urls, ro.workers, func(*github.PullRequestDetail) {
		progress.Tick()
	})
	if err != nil {
		progress.Abort()
		return err
	}
	progress.Done()

	if err := writeReport(ro, details, stdout); err != nil {
		return err
	}

	logging.Logger.Debug("report complete", "pull_requests", len(details), "duration", time.Since(start))
	return nil
}

// writeReport renders details in the selected format to stdout or the
// output file.
func writeReport(ro reportOptions, details []*github.PullRequestDetail, stdout io.Writer) error {
	if ro.outputFile != "" && ro.outputFormat == output.FormatJSON {
		w, err := output.NewFileWriter(ro.outputFile)
		if err != nil {
			return err
		}
		if err := w.WriteReport(details); err != nil {
			w.Close()
			return err
		}
		return w.Close()
	}

	dest := stdout
	if ro.outputFile != "" {
		file, err := os.Create(ro.outputFile)
		if err != nil {
			return fmt.Errorf("failed to create output file: %w", err)
		}
		defer file.Close()
		dest = file
	}

	formatter := report.NewFormatter(dest, report.WithAge(ro.showAge))
	w, err := output.NewReportWriter(ro.outputFormat, dest, formatter)
	if err != nil {
		return err
	}
	return w.WriteReport(details)
}
