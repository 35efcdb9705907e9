package utils

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
)

// DefaultGitHubAPIURL is the public GitHub REST endpoint.
const DefaultGitHubAPIURL = "https://api.github.com"

const (
	githubPageSize  = 100
	githubUserAgent = "notbuiltyet-build"
	githubAccept    = "application/vnd.github+json"
)

// APIError is returned when a GitHub page request does not answer 200 OK.
type APIError struct {
	URL        string
	StatusCode int
	Body       string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("github API returned status %d for %s: %s", e.StatusCode, e.URL, e.Body)
}

// IssuesURL builds the issue listing URL of repo ("owner/name") filtered by
// label, including closed issues. An empty baseURL means DefaultGitHubAPIURL.
func IssuesURL(baseURL, repo, label string) string {
	if baseURL == "" {
		baseURL = DefaultGitHubAPIURL
	}
	q := url.Values{}
	q.Set("labels", label)
	q.Set("state", "all")
	return fmt.Sprintf("%s/repos/%s/issues?%s", strings.TrimRight(baseURL, "/"), repo, q.Encode())
}

// FetchIssuePages requests queryURL page by page (per_page=100, starting at
// page 1) and returns every issue in order. Paging stops at the first empty
// or short page. Any transport failure or non-200 status aborts the whole
// fetch; no partial result is returned.
func FetchIssuePages(ctx context.Context, queryURL, token string) ([]Issue, error) {
	log := slog.With("op", "FetchIssuePages")
	sep := "?"
	if strings.Contains(queryURL, "?") {
		sep = "&"
	}

	var all []Issue
	for page := 1; ; page++ {
		pageURL := fmt.Sprintf("%s%sper_page=%d&page=%d", queryURL, sep, githubPageSize, page)
		issues, err := fetchIssuePage(ctx, pageURL, token)
		if err != nil {
			return nil, err
		}
		all = append(all, issues...)
		log.Debug("GitHub pagination", "page", page, "pageSize", len(issues), "issuesSoFar", len(all))

		if len(issues) < githubPageSize {
			break
		}
	}
	return all, nil
}

func fetchIssuePage(ctx context.Context, pageURL, token string) ([]Issue, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, pageURL, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create github request: %w", err)
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Accept", githubAccept)
	req.Header.Set("User-Agent", githubUserAgent)

	resp, err := http.DefaultClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch from github: %w", err)
	}

	body, err := io.ReadAll(resp.Body)
	_ = resp.Body.Close()
	if err != nil {
		return nil, fmt.Errorf("failed to read github response: %w", err)
	}

	if resp.StatusCode != http.StatusOK {
		return nil, &APIError{URL: pageURL, StatusCode: resp.StatusCode, Body: strings.TrimSpace(string(body))}
	}

	var issues []Issue
	if err := json.Unmarshal(body, &issues); err != nil {
		return nil, fmt.Errorf("failed to parse github response: %w", err)
	}
	return issues, nil
}

// FetchLabeledIssues returns every issue of repo carrying label.
func FetchLabeledIssues(ctx context.Context, baseURL, repo, label, token string) ([]Issue, error) {
	issues, err := FetchIssuePages(ctx, IssuesURL(baseURL, repo, label), token)
	if err != nil {
		return nil, fmt.Errorf("fetch issues labeled %q: %w", label, err)
	}
	return issues, nil
}

// CountLabeledIssues returns the number of issues of repo carrying label.
func CountLabeledIssues(ctx context.Context, baseURL, repo, label, token string) (int, error) {
	issues, err := FetchLabeledIssues(ctx, baseURL, repo, label, token)
	if err != nil {
		return 0, err
	}
	return len(issues), nil
}
