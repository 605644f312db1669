// Package github retrieves merged pull requests, labels and releases from GitHub.
package github

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/go-github/v57/github"
	"golang.org/x/oauth2"
)

// Client wraps the GitHub API client for a single repository
type Client struct {
	client *github.Client
	org    string
	repo   string
}

// NewClient creates a new GitHub client with token authentication
func NewClient(ctx context.Context, token string) *Client {
	ts := oauth2.StaticTokenSource(
		&oauth2.Token{AccessToken: token},
	)
	tc := oauth2.NewClient(ctx, ts)

	return &Client{
		client: github.NewClient(tc),
	}
}

// WithRepository returns a copy of the client bound to org/repo
func (c *Client) WithRepository(org, repo string) *Client {
	return &Client{
		client: c.client,
		org:    org,
		repo:   repo,
	}
}

// Repository returns the org/repo the client is bound to
func (c *Client) Repository() string {
	return c.org + "/" + c.repo
}

// paginatedList calls list for every page until GitHub reports no next page
func paginatedList[T any](list func(page int) ([]T, *github.Response, error)) ([]T, error) {
	var all []T
	page := 1

	for {
		items, resp, err := list(page)
		if err != nil {
			return nil, wrapAPIError(err)
		}
		all = append(all, items...)

		if resp == nil || resp.NextPage == 0 {
			break
		}
		page = resp.NextPage
	}

	return all, nil
}

// wrapAPIError adds the reset time to rate limit errors
func wrapAPIError(err error) error {
	var rateErr *github.RateLimitError
	if errors.As(err, &rateErr) {
		return fmt.Errorf("GitHub rate limit exceeded, resets at %s: %w", rateErr.Rate.Reset.Time.Format("15:04:05"), err)
	}
	var abuseErr *github.AbuseRateLimitError
	if errors.As(err, &abuseErr) {
		return fmt.Errorf("GitHub secondary rate limit hit, retry after %s: %w", abuseErr.GetRetryAfter(), err)
	}
	return err
}
