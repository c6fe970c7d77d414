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

// Package testutil provides common test helpers for breakfast
package testutil

import (
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"regexp"
	"strconv"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

// MockServer provides common mock server configurations for testing
type MockServer struct {
	*httptest.Server
	requestCount atomic.Int32
}

// NewMockServer creates a basic mock server that counts requests. The
// server is closed when the test ends.
func NewMockServer(t *testing.T, handler http.HandlerFunc) *MockServer {
	t.Helper()
	m := &MockServer{}
	m.Server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		m.requestCount.Add(1)
		handler(w, r)
	}))
	t.Cleanup(m.Close)
	return m
}

// RequestCount returns the number of requests received so far
func (m *MockServer) RequestCount() int {
	return int(m.requestCount.Load())
}

// GraphQLEndpoint returns the server's GraphQL endpoint URL
func (m *MockServer) GraphQLEndpoint() string {
	return m.URL + "/graphql"
}

// APIEndpoint returns the server's REST base URL
func (m *MockServer) APIEndpoint() string {
	return m.URL
}

// Env returns the environment pointing breakfast at this server
func (m *MockServer) Env(token string) map[string]string {
	return map[string]string{
		"GITHUB_TOKEN":            token,
		"GITHUB_API_ENDPOINT":     m.APIEndpoint(),
		"GITHUB_GRAPHQL_ENDPOINT": m.GraphQLEndpoint(),
	}
}

// NewErrorServer creates a mock server that always returns the specified error
func NewErrorServer(t *testing.T, statusCode int) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(statusCode)
		_, _ = fmt.Fprintf(w, `{"message": %q}`, http.StatusText(statusCode))
	})
}

// NewRateLimitServer creates a mock server that answers like GitHub once
// the rate limit is exhausted
func NewRateLimitServer(t *testing.T) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Header().Set("X-RateLimit-Remaining", "0")
		w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10))
		w.WriteHeader(http.StatusForbidden)
		_, _ = w.Write([]byte(`{"message": "API rate limit exceeded for user ID 1."}`))
	})
}

// NewTimeoutServer creates a mock server that holds every request for
// delay or until the client gives up
func NewTimeoutServer(t *testing.T, delay time.Duration) *MockServer {
	t.Helper()
	return NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-time.After(delay):
		case <-r.Context().Done():
		}
	})
}

// GraphQLRequest is the body posted to the GraphQL endpoint
type GraphQLRequest struct {
	Query     string                 `json:"query"`
	Variables map[string]interface{} `json:"variables"`
}

// Repository is a repository fixture served by GitHubServer
type Repository struct {
	Name         string
	PullRequests []*PullRequestBuilder
}

var pullPathRE = regexp.MustCompile(`^/repos/([^/]+)/([^/]+)/pulls/(\d+)$`)

// GitHubServer serves an organization's repositories over GraphQL, one
// fixture page per request, and each listed PR's record over REST.
// Cursors are "cursor-<page index>".
type GitHubServer struct {
	*MockServer

	org     string
	pages   [][]Repository
	details map[string]map[string]interface{}

	mu           sync.Mutex
	requests     []GraphQLRequest
	restRequests []string
}

// NewGitHubServer creates a server for org with the given repository pages
func NewGitHubServer(t *testing.T, org string, pages ...[]Repository) *GitHubServer {
	t.Helper()
	s := &GitHubServer{
		org:     org,
		pages:   pages,
		details: make(map[string]map[string]interface{}),
	}
	for _, page := range pages {
		for _, repo := range page {
			for _, pr := range repo.PullRequests {
				s.details[pr.Key()] = pr.Build()
			}
		}
	}

	s.MockServer = NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		switch {
		case r.Method == http.MethodPost && r.URL.Path == "/graphql":
			s.serveGraphQL(t, w, r)
		case r.Method == http.MethodGet && pullPathRE.MatchString(r.URL.Path):
			s.servePullRequest(w, r)
		default:
			http.NotFound(w, r)
		}
	})
	return s
}

func (s *GitHubServer) serveGraphQL(t *testing.T, w http.ResponseWriter, r *http.Request) {
	var req GraphQLRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		t.Errorf("invalid GraphQL request body: %v", err)
		w.WriteHeader(http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	s.requests = append(s.requests, req)
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")

	org, _ := req.Variables["organization"].(string)
	if org != s.org {
		resp := NewRepositoriesResponseBuilder().
			WithNullOrganization().
			WithError(fmt.Sprintf("Could not resolve to an Organization with the login of '%s'.", org)).
			Build()
		_ = json.NewEncoder(w).Encode(resp)
		return
	}

	index := 0
	if cursor, ok := req.Variables["cursor"].(string); ok {
		if _, err := fmt.Sscanf(cursor, "cursor-%d", &index); err != nil {
			t.Errorf("unexpected cursor %q", cursor)
		}
		index++
	}

	builder := NewRepositoriesResponseBuilder()
	if index < len(s.pages) {
		for _, repo := range s.pages[index] {
			builder.WithRepository(repo.Name, repo.PullRequests...)
		}
	}
	builder.WithPagination(index < len(s.pages)-1, fmt.Sprintf("cursor-%d", index))

	_ = json.NewEncoder(w).Encode(builder.Build())
}

func (s *GitHubServer) servePullRequest(w http.ResponseWriter, r *http.Request) {
	m := pullPathRE.FindStringSubmatch(r.URL.Path)
	key := m[1] + "/" + m[2] + "/" + m[3]

	s.mu.Lock()
	s.restRequests = append(s.restRequests, key)
	detail, ok := s.details[key]
	s.mu.Unlock()

	w.Header().Set("Content-Type", "application/json")
	if !ok {
		w.WriteHeader(http.StatusNotFound)
		_, _ = w.Write([]byte(`{"message": "Not Found"}`))
		return
	}
	_ = json.NewEncoder(w).Encode(detail)
}

// GraphQLRequests returns the GraphQL requests received so far
func (s *GitHubServer) GraphQLRequests() []GraphQLRequest {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]GraphQLRequest(nil), s.requests...)
}

// RESTRequests returns the owner/repo/number keys requested so far
func (s *GitHubServer) RESTRequests() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.restRequests...)
}

// AssertGraphQLRequest validates a GraphQL request structure
func AssertGraphQLRequest(t *testing.T, r *http.Request) {
	t.Helper()
	if r.URL.Path != "/graphql" {
		t.Errorf("Unexpected path: %s", r.URL.Path)
	}
	if r.Method != "POST" {
		t.Errorf("Expected POST method, got: %s", r.Method)
	}
	if ct := r.Header.Get("Content-Type"); ct != "application/json" {
		t.Errorf("Expected Content-Type: application/json, got: %s", ct)
	}
}
