package github

import (
	"context"
	"fmt"
	"log/slog"
	"regexp"

	"github.com/google/go-github/v57/github"
	"golang.org/x/sync/errgroup"
)

var versionLabelRegex = regexp.MustCompile(`^v\d+\.\d+\.\d+$`)

// ListLabels fetches all label names of the repository
func (c *Client) ListLabels(ctx context.Context) ([]string, error) {
	labels, err := paginatedList(func(page int) ([]*github.Label, *github.Response, error) {
		opts := &github.ListOptions{
			PerPage: 100,
			Page:    page,
		}
		slog.Debug("GitHub API: Listing labels", "org", c.org, "repo", c.repo, "page", page)
		return c.client.Issues.ListLabels(ctx, c.org, c.repo, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list labels: %w", err)
	}

	names := make([]string, 0, len(labels))
	for _, label := range labels {
		names = append(names, label.GetName())
	}
	return names, nil
}

// ListVersionLabels fetches the repository labels that look like vX.Y.Z
func (c *Client) ListVersionLabels(ctx context.Context) ([]string, error) {
	labels, err := c.ListLabels(ctx)
	if err != nil {
		return nil, err
	}

	var versions []string
	for _, label := range labels {
		if versionLabelRegex.MatchString(label) {
			versions = append(versions, label)
		}
	}
	return versions, nil
}

// ListReleases fetches all published releases of the repository
func (c *Client) ListReleases(ctx context.Context) ([]Release, error) {
	releases, err := paginatedList(func(page int) ([]*github.RepositoryRelease, *github.Response, error) {
		opts := &github.ListOptions{
			PerPage: 100,
			Page:    page,
		}
		slog.Debug("GitHub API: Listing releases", "org", c.org, "repo", c.repo, "page", page)
		return c.client.Repositories.ListReleases(ctx, c.org, c.repo, opts)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list releases: %w", err)
	}

	var result []Release
	for _, release := range releases {
		if release.GetDraft() {
			continue
		}
		result = append(result, Release{
			TagName:    release.GetTagName(),
			Name:       release.GetName(),
			Prerelease: release.GetPrerelease(),
		})
	}
	return result, nil
}

// VersionData holds the version labels and release tags of a repository
type VersionData struct {
	Labels      []string
	ReleaseTags []string
}

// GetVersionData fetches version labels and releases concurrently
func (c *Client) GetVersionData(ctx context.Context) (*VersionData, error) {
	var data VersionData
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		labels, err := c.ListVersionLabels(ctx)
		if err != nil {
			return err
		}
		data.Labels = labels
		return nil
	})

	g.Go(func() error {
		releases, err := c.ListReleases(ctx)
		if err != nil {
			return err
		}
		for _, release := range releases {
			data.ReleaseTags = append(data.ReleaseTags, release.TagName)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return &data, nil
}
