package github

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/go-github/v57/github"
)

// maxSearchResults is the number of results the search API returns at most
const maxSearchResults = 1000

// BuildVersionQuery constructs the search query for merged PRs labelled with version
func BuildVersionQuery(org, repo, version string, excluded, included []string) string {
	var parts []string
	parts = append(parts, fmt.Sprintf("repo:%s/%s", org, repo))
	parts = append(parts, fmt.Sprintf("label:%s", version))
	parts = append(parts, "is:pr")
	parts = append(parts, "is:merged")

	for _, label := range excluded {
		parts = append(parts, fmt.Sprintf("-label:%q", label))
	}

	if len(included) > 0 {
		quoted := make([]string, 0, len(included))
		for _, label := range included {
			quoted = append(quoted, fmt.Sprintf("%q", label))
		}
		// a comma separated label list matches any of the labels
		parts = append(parts, "label:"+strings.Join(quoted, ","))
	}

	return strings.Join(parts, " ")
}

// BuildAPIChangesQuery constructs the search query for PRs of version
// carrying label, regardless of their state
func BuildAPIChangesQuery(org, repo, version, label string) string {
	return fmt.Sprintf("repo:%s/%s label:%s label:%q", org, repo, version, label)
}

// SearchPRs executes a search query and returns all matching PRs. onProgress, if
// set, is called after every page and once more when the search is done.
func (c *Client) SearchPRs(ctx context.Context, query string, onProgress func(Progress)) ([]PR, error) {
	opts := &github.SearchOptions{
		Sort:  "created",
		Order: "asc",
		ListOptions: github.ListOptions{
			PerPage: 100,
		},
	}

	var allPRs []PR
	page, lastPage := 1, 1

	for {
		opts.Page = page
		slog.Debug("GitHub API: Searching pull requests", "query", query, "page", page)
		result, resp, err := c.client.Search.Issues(ctx, query, opts)
		if err != nil {
			return nil, fmt.Errorf("failed to search PRs: %w", wrapAPIError(err))
		}

		if page == 1 && result.GetTotal() > maxSearchResults {
			slog.Warn("Search matches more PRs than GitHub returns, results are truncated",
				"total", result.GetTotal(), "limit", maxSearchResults)
		}

		for _, issue := range result.Issues {
			if !issue.IsPullRequest() {
				continue
			}
			allPRs = append(allPRs, convertIssue(issue))
		}

		if resp.LastPage > lastPage {
			lastPage = resp.LastPage
		}
		if onProgress != nil {
			onProgress(Progress{
				Page:       page,
				LastPage:   lastPage,
				Fetched:    len(allPRs),
				Percentage: float64(page) / float64(lastPage),
			})
		}

		if resp.NextPage == 0 {
			break
		}
		page = resp.NextPage
	}

	if onProgress != nil {
		onProgress(Progress{Page: lastPage, LastPage: lastPage, Fetched: len(allPRs), Percentage: 1, Done: true})
	}

	return allPRs, nil
}

// convertIssue converts a search result into our PR type
func convertIssue(issue *github.Issue) PR {
	pr := PR{
		Number: issue.GetNumber(),
		Title:  issue.GetTitle(),
		Body:   issue.GetBody(),
		State:  issue.GetState(),
		Author: issue.GetUser().GetLogin(),
		URL:    issue.GetHTMLURL(),
	}

	for _, label := range issue.Labels {
		pr.Labels = append(pr.Labels, Label{Name: label.GetName(), Color: label.GetColor()})
	}

	// merged PRs are closed at merge time
	if issue.ClosedAt != nil {
		closedAt := issue.ClosedAt.Time
		pr.MergedAt = &closedAt
	}

	return pr
}
