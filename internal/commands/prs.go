package commands

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/alan/release-notes/cmd"
	"github.com/alan/release-notes/internal/github"
	"github.com/alan/release-notes/internal/prutil"
)

// APIChangesLabel marks PRs that change the plugin API
const APIChangesLabel = "release_note:plugin_api_changes"

// PRSearcher runs a GitHub issue search query
type PRSearcher interface {
	SearchPRs(ctx context.Context, query string, onProgress func(github.Progress)) ([]github.PR, error)
}

// FetchOptions controls which PRs FetchPRsForVersion returns
type FetchOptions struct {
	Org             string
	Version         string
	IgnoredVersions []string
	OnProgress      func(github.Progress)
}

// FetchPRsForVersion searches the merged PRs labelled with the version and drops
// the ones the configuration excludes or that already shipped in an earlier release.
func FetchPRsForVersion(ctx context.Context, searcher PRSearcher, cfg *cmd.Config, opts FetchOptions) ([]github.PR, error) {
	query := github.BuildVersionQuery(opts.Org, cfg.RepoName, opts.Version, cfg.ExcludedLabels, cfg.IncludedLabels)

	prs, err := searcher.SearchPRs(ctx, query, opts.OnProgress)
	if err != nil {
		return nil, err
	}
	found := len(prs)

	// the search API can be inexact for label qualifiers, so filter again locally
	prs = prutil.FilterByLabels(prs, cfg.ExcludedLabels, cfg.IncludedLabels)
	prs, err = prutil.FilterForVersion(prs, opts.Version, opts.IgnoredVersions)
	if err != nil {
		return nil, err
	}

	slog.Info("Fetched PRs", "version", opts.Version, "found", found, "kept", len(prs))
	return prs, nil
}

// FetchAPIChangePRs searches the PRs of version labelled as plugin API
// changes. Open ones are dropped unless includeOpen is set.
func FetchAPIChangePRs(ctx context.Context, searcher PRSearcher, org, repo, version string, includeOpen bool) ([]github.PR, error) {
	query := github.BuildAPIChangesQuery(org, repo, version, APIChangesLabel)
	prs, err := searcher.SearchPRs(ctx, query, nil)
	if err != nil {
		return nil, err
	}
	if includeOpen {
		return prs, nil
	}

	var closed []github.PR
	for _, pr := range prs {
		if pr.State == "closed" {
			closed = append(closed, pr)
		}
	}
	return closed, nil
}

// DuplicatePatchPRs returns the PRs labelled for more than one patch of version's minor
func DuplicatePatchPRs(prs []github.PR, version string) []github.PR {
	var duplicates []github.PR
	for _, pr := range prs {
		if prutil.HasDuplicatePatchLabels(pr.LabelNames(), version) {
			duplicates = append(duplicates, pr)
		}
	}
	return duplicates
}

// SavePRs writes PRs to a JSON cache file
func SavePRs(filename string, prs []github.PR) error {
	if prs == nil {
		prs = []github.PR{}
	}
	data, err := json.MarshalIndent(prs, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal PRs: %w", err)
	}
	if err := os.WriteFile(filename, data, 0600); err != nil {
		return fmt.Errorf("failed to write PR file: %w", err)
	}
	return nil
}

// LoadPRs reads PRs from a JSON cache file written by SavePRs
func LoadPRs(filename string) ([]github.PR, error) {
	data, err := os.ReadFile(filename) //nolint:gosec // PR filename is from command-line flag
	if err != nil {
		return nil, fmt.Errorf("failed to read PR file: %w", err)
	}

	var prs []github.PR
	if err := json.Unmarshal(data, &prs); err != nil {
		return nil, fmt.Errorf("failed to parse PR file: %w", err)
	}
	return prs, nil
}

// PRsForVersion loads PRs from input when set, otherwise fetches them from GitHub.
// Labels of earlier patches that never got a release are ignored by the version
// filter, so their PRs roll into this release.
func (bc *BaseCommand) PRsForVersion(version, input string, ignoredVersions []string, progress io.Writer) ([]github.PR, error) {
	if input != "" {
		slog.Debug("Loading PRs from file", "file", input)
		return LoadPRs(input)
	}

	if err := bc.InitGitHub(); err != nil {
		return nil, err
	}

	data, err := bc.GitHubClient.GetVersionData(bc.Context)
	if err != nil {
		return nil, err
	}
	unreleased, err := github.UnreleasedPastLabels(data.Labels, data.ReleaseTags, version)
	if err != nil {
		return nil, err
	}
	if len(unreleased) > 0 {
		slog.Info("Including PRs of unreleased versions", "versions", unreleased)
	}

	opts := FetchOptions{
		Org:             bc.State.Org,
		Version:         version,
		IgnoredVersions: append(unreleased, ignoredVersions...),
	}
	if progress != nil {
		opts.OnProgress = ProgressPrinter(progress)
	}
	return FetchPRsForVersion(bc.Context, bc.GitHubClient, bc.Config, opts)
}
