package github

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/google/go-github/v57/github"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// newTestClient returns a client bound to acme/widgets that talks to handler
func newTestClient(t *testing.T, handler http.Handler) *Client {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	gh := github.NewClient(srv.Client())
	baseURL, err := url.Parse(srv.URL + "/")
	require.NoError(t, err)
	gh.BaseURL = baseURL

	return (&Client{client: gh}).WithRepository("acme", "widgets")
}

// linkHeader builds a Link header pointing at next and last pages of path
func linkHeader(r *http.Request, next, last int) string {
	u := *r.URL
	u.Scheme = "http"
	u.Host = r.Host
	q := u.Query()

	q.Set("page", fmt.Sprint(next))
	u.RawQuery = q.Encode()
	nextURL := u.String()

	q.Set("page", fmt.Sprint(last))
	u.RawQuery = q.Encode()
	return fmt.Sprintf(`<%s>; rel="next", <%s>; rel="last"`, nextURL, u.String())
}

func TestNewClient(t *testing.T) {
	client := NewClient(context.Background(), "test-token")

	if client == nil {
		t.Fatal("NewClient() returned nil")
	}
	if client.client == nil {
		t.Error("NewClient() client field is nil")
	}
}

func TestWithRepository(t *testing.T) {
	base := NewClient(context.Background(), "test-token")
	bound := base.WithRepository("elastic", "kibana")

	assert.Equal(t, "elastic/kibana", bound.Repository())
	assert.Same(t, base.client, bound.client)
	assert.Empty(t, base.org, "WithRepository must not modify the receiver")
}

func TestPaginatedList(t *testing.T) {
	pages := map[int][]int{1: {1, 2}, 2: {3}, 3: {4, 5}}

	var requested []int
	items, err := paginatedList(func(page int) ([]int, *github.Response, error) {
		requested = append(requested, page)
		resp := &github.Response{}
		if page < 3 {
			resp.NextPage = page + 1
		}
		return pages[page], resp, nil
	})

	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 3, 4, 5}, items)
	assert.Equal(t, []int{1, 2, 3}, requested)
}

func TestPaginatedListError(t *testing.T) {
	calls := 0
	_, err := paginatedList(func(page int) ([]string, *github.Response, error) {
		calls++
		if page == 2 {
			return nil, nil, errors.New("boom")
		}
		return []string{"a"}, &github.Response{NextPage: 2}, nil
	})

	assert.EqualError(t, err, "boom")
	assert.Equal(t, 2, calls)
}

func TestWrapAPIError(t *testing.T) {
	reset := time.Date(2024, 5, 1, 13, 45, 10, 0, time.UTC)

	rateErr := &github.RateLimitError{
		Rate:     github.Rate{Reset: github.Timestamp{Time: reset}},
		Response: &http.Response{Request: &http.Request{Method: http.MethodGet, URL: &url.URL{}}},
		Message:  "API rate limit exceeded",
	}
	wrapped := wrapAPIError(rateErr)
	assert.Contains(t, wrapped.Error(), "resets at 13:45:10")
	assert.ErrorIs(t, wrapped, rateErr)

	plain := errors.New("not found")
	assert.Same(t, plain, wrapAPIError(plain))
}
