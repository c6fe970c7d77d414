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

package github

import (
	"context"
	"fmt"
	"sync"
	"time"

	bferrors "github.com/sirseerhq/breakfast/internal/errors"
)

// MockClient is a mock implementation of the GitHub Client interface for testing.
// It is safe for concurrent use by the detail fetch workers.
type MockClient struct {
	mu sync.Mutex

	// Pages returned in order; the cursor of page i is "cursor-i".
	Pages []*RepositoryPage

	// Details keyed by pull request URL
	Details map[string]*PullRequestDetail

	// Error to return from every call
	Error error

	// Behavior flags
	ShouldFailAuth     bool
	ShouldFailNetwork  bool
	ShouldFailNotFound bool

	// Track calls for verification
	PageCalls   int
	DetailCalls int
	Cursors     []string
	Requested   []PullRequestRef
}

// NewMockClient creates a new mock client with default test data
func NewMockClient() *MockClient {
	pages, details := generateTestData()
	return &MockClient{
		Pages:   pages,
		Details: details,
	}
}

// FetchRepositoryPage implements the Client interface
func (m *MockClient) FetchRepositoryPage(ctx context.Context, org, cursor string) (*RepositoryPage, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.PageCalls++
	m.Cursors = append(m.Cursors, cursor)

	if err := m.failure(ctx); err != nil {
		return nil, err
	}
	if m.ShouldFailNotFound || org == "nonexistent" {
		return nil, fmt.Errorf("organization '%s' not found: %w", org, bferrors.ErrOrgNotFound)
	}

	index := 0
	if cursor != "" {
		if _, err := fmt.Sscanf(cursor, "cursor-%d", &index); err != nil {
			return nil, fmt.Errorf("unknown cursor %q: %w", cursor, bferrors.ErrUnexpectedResponse)
		}
		index++
	}
	if index >= len(m.Pages) {
		return &RepositoryPage{}, nil
	}

	page := *m.Pages[index]
	page.HasNextPage = index < len(m.Pages)-1
	page.EndCursor = fmt.Sprintf("cursor-%d", index)
	return &page, nil
}

// GetPullRequest implements the Client interface
func (m *MockClient) GetPullRequest(ctx context.Context, ref PullRequestRef) (*PullRequestDetail, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.DetailCalls++
	m.Requested = append(m.Requested, ref)

	if err := m.failure(ctx); err != nil {
		return nil, err
	}

	detail, ok := m.Details[ref.URL]
	if !ok || m.ShouldFailNotFound {
		return nil, fmt.Errorf("pull request %s not found: %w", ref.URL, bferrors.ErrPullRequestNotFound)
	}
	copied := *detail
	return &copied, nil
}

// failure returns the configured error, if any. Callers hold m.mu.
func (m *MockClient) failure(ctx context.Context) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	default:
	}

	if m.ShouldFailAuth {
		return fmt.Errorf("authentication failed: %w", bferrors.ErrInvalidToken)
	}
	if m.ShouldFailNetwork {
		return fmt.Errorf("network timeout: %w", bferrors.ErrNetworkFailure)
	}
	return m.Error
}

// generateTestData creates a two-page organization with three open pull requests
func generateTestData() ([]*RepositoryPage, map[string]*PullRequestDetail) {
	now := time.Now().UTC()
	lastWeek := now.Add(-7 * 24 * time.Hour)
	lastMonth := now.Add(-30 * 24 * time.Hour)

	pages := []*RepositoryPage{
		{
			Repositories: []Repository{
				{
					Name: "api",
					PullRequests: []PullRequestNode{
						{URL: "https://github.com/acme/api/pull/12", AuthorLogin: "alice"},
						{URL: "https://github.com/acme/api/pull/13", AuthorLogin: "dependabot[bot]"},
					},
				},
			},
		},
		{
			Repositories: []Repository{
				{
					Name: "web",
					PullRequests: []PullRequestNode{
						{URL: "https://github.com/acme/web/pull/7", AuthorLogin: "bob"},
					},
				},
			},
		},
	}

	details := map[string]*PullRequestDetail{
		"https://github.com/acme/api/pull/12": {
			Number: 12, Title: "Add pagination to list endpoint", Author: "alice", State: "open",
			Repository: "api", ChangedFiles: 4, Commits: 2, Additions: 120, Deletions: 15,
			ReviewComments: 3, Mergeable: true, MergeableState: "clean", CreatedAt: lastWeek,
			HTMLURL: "https://github.com/acme/api/pull/12",
		},
		"https://github.com/acme/api/pull/13": {
			Number: 13, Title: "Bump golang.org/x/net", Author: "dependabot[bot]", State: "open",
			Repository: "api", ChangedFiles: 2, Commits: 1, Additions: 4, Deletions: 4,
			Mergeable: true, MergeableState: "clean", CreatedAt: now,
			HTMLURL: "https://github.com/acme/api/pull/13",
		},
		"https://github.com/acme/web/pull/7": {
			Number: 7, Title: "Rework checkout flow", Author: "bob", State: "open",
			Repository: "web", ChangedFiles: 31, Commits: 22, Additions: 900, Deletions: 410,
			ReviewComments: 55, Mergeable: false, MergeableState: "dirty", CreatedAt: lastMonth,
			HTMLURL: "https://github.com/acme/web/pull/7",
		},
	}

	return pages, details
}

// MockClientOption allows configuring the mock client
type MockClientOption func(*MockClient)

// WithPages sets the repository pages to return
func WithPages(pages ...*RepositoryPage) MockClientOption {
	return func(m *MockClient) {
		m.Pages = pages
	}
}

// WithDetails sets the pull request details to return, keyed by URL
func WithDetails(details map[string]*PullRequestDetail) MockClientOption {
	return func(m *MockClient) {
		m.Details = details
	}
}

// WithError makes the client return a specific error
func WithError(err error) MockClientOption {
	return func(m *MockClient) {
		m.Error = err
	}
}

// WithAuthFailure makes the client simulate authentication failure
func WithAuthFailure() MockClientOption {
	return func(m *MockClient) {
		m.ShouldFailAuth = true
	}
}

// NewMockClientWithOptions creates a mock client with options
func NewMockClientWithOptions(opts ...MockClientOption) *MockClient {
	mock := NewMockClient()
	for _, opt := range opts {
		opt(mock)
	}
	return mock
}
