package utils

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"sync/atomic"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func makeIssues(start, n int) []Issue {
	issues := make([]Issue, n)
	for i := range issues {
		num := start + i
		issues[i] = Issue{Number: num, Title: fmt.Sprintf("Issue %d", num)}
	}
	return issues
}

// pagedServer serves pages[i] for page=i+1 and an empty array past the end.
func pagedServer(t *testing.T, pages [][]Issue, calls *atomic.Int32) *httptest.Server {
	t.Helper()
	return httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		page, err := strconv.Atoi(r.URL.Query().Get("page"))
		if err != nil || page < 1 {
			w.WriteHeader(http.StatusBadRequest)
			return
		}
		var issues []Issue
		if page <= len(pages) {
			issues = pages[page-1]
		}
		if issues == nil {
			issues = []Issue{}
		}
		w.Header().Set("Content-Type", "application/json")
		_ = json.NewEncoder(w).Encode(issues)
	}))
}

func TestIssuesURL(t *testing.T) {
	t.Parallel()
	assert.Equal(t,
		"https://ghe.example.com/api/v3/repos/owner/repo/issues?labels=being-built&state=all",
		IssuesURL("https://ghe.example.com/api/v3/", "owner/repo", "being-built"))
	assert.Equal(t,
		"https://api.github.com/repos/owner/repo/issues?labels=vetted&state=all",
		IssuesURL("", "owner/repo", "vetted"))
}

func TestFetchIssuePages_RequestShape(t *testing.T) {
	t.Parallel()
	var (
		auth, accept, agent string
		query               map[string][]string
		path                string
	)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		auth = r.Header.Get("Authorization")
		accept = r.Header.Get("Accept")
		agent = r.Header.Get("User-Agent")
		query = r.URL.Query()
		path = r.URL.Path
		_, _ = w.Write([]byte("[]"))
	}))
	defer server.Close()

	issues, err := FetchLabeledIssues(context.Background(), server.URL, "owner/repo", "vetted", "secret-token")
	require.NoError(t, err)
	assert.Empty(t, issues)

	assert.Equal(t, "Bearer secret-token", auth)
	assert.Equal(t, "application/vnd.github+json", accept)
	assert.Equal(t, "notbuiltyet-build", agent)
	assert.Equal(t, "/repos/owner/repo/issues", path)
	assert.Equal(t, []string{"vetted"}, query["labels"])
	assert.Equal(t, []string{"all"}, query["state"])
	assert.Equal(t, []string{"100"}, query["per_page"])
	assert.Equal(t, []string{"1"}, query["page"])
}

func TestFetchIssuePages_Pagination(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	pages := [][]Issue{makeIssues(1, 100), makeIssues(101, 100), makeIssues(201, 3)}
	server := pagedServer(t, pages, &calls)
	defer server.Close()

	issues, err := FetchIssuePages(context.Background(), server.URL+"/issues?labels=vetted", "tok")
	require.NoError(t, err)
	assert.Equal(t, int32(3), calls.Load())
	require.Len(t, issues, 203)
	for i, issue := range issues {
		assert.Equal(t, i+1, issue.Number)
	}
}

func TestFetchIssuePages_StopsOnEmptyPage(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	server := pagedServer(t, [][]Issue{makeIssues(1, 100)}, &calls)
	defer server.Close()

	issues, err := FetchIssuePages(context.Background(), server.URL, "tok")
	require.NoError(t, err)
	assert.Equal(t, int32(2), calls.Load())
	assert.Len(t, issues, 100)
}

func TestFetchIssuePages_HTTPError(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			_ = json.NewEncoder(w).Encode(makeIssues(1, 100))
			return
		}
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte("internal error"))
	}))
	defer server.Close()

	issues, err := FetchIssuePages(context.Background(), server.URL, "tok")
	require.Error(t, err)
	assert.Nil(t, issues, "no partial result on failure")
	assert.Equal(t, int32(2), calls.Load(), "no retry")

	var apiErr *APIError
	require.True(t, errors.As(err, &apiErr))
	assert.Equal(t, http.StatusInternalServerError, apiErr.StatusCode)
	assert.Contains(t, err.Error(), "github API returned status 500")
	assert.Contains(t, err.Error(), "internal error")
}

func TestFetchIssuePages_InvalidJSON(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = w.Write([]byte(`{"message":"not a list"}`))
	}))
	defer server.Close()

	_, err := FetchIssuePages(context.Background(), server.URL, "tok")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse github response")
}

func TestCountLabeledIssues(t *testing.T) {
	t.Parallel()
	var calls atomic.Int32
	server := pagedServer(t, [][]Issue{makeIssues(1, 100), makeIssues(101, 42)}, &calls)
	defer server.Close()

	n, err := CountLabeledIssues(context.Background(), server.URL, "owner/repo", "launched", "tok")
	require.NoError(t, err)
	assert.Equal(t, 142, n)
}

func TestCountLabeledIssues_ErrorNamesLabel(t *testing.T) {
	t.Parallel()
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := CountLabeledIssues(context.Background(), server.URL, "owner/repo", "launched", "bad")
	require.Error(t, err)
	assert.Contains(t, err.Error(), `fetch issues labeled "launched"`)
	assert.Contains(t, err.Error(), "status 401")
}
