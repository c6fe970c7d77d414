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

package testutil

import (
	"fmt"
	"time"
)

// PullRequestBuilder provides a fluent API for creating test PRs. The same
// PR appears as a node in the repositories listing and as a REST record.
type PullRequestBuilder struct {
	owner          string
	repo           string
	number         int
	title          string
	state          string
	author         string
	createdAt      time.Time
	additions      int
	deletions      int
	changedFiles   int
	reviewComments int
	commits        int
	mergeable      bool
	mergeableState string
}

// NewPullRequestBuilder creates a new PR builder with defaults
func NewPullRequestBuilder(owner, repo string, number int) *PullRequestBuilder {
	return &PullRequestBuilder{
		owner:          owner,
		repo:           repo,
		number:         number,
		title:          fmt.Sprintf("PR %d", number),
		state:          "open",
		author:         fmt.Sprintf("user%d", number),
		createdAt:      time.Now().UTC().AddDate(0, 0, -number),
		additions:      10,
		deletions:      5,
		changedFiles:   2,
		commits:        1,
		mergeable:      true,
		mergeableState: "clean",
	}
}

// WithTitle sets the PR title
func (b *PullRequestBuilder) WithTitle(title string) *PullRequestBuilder {
	b.title = title
	return b
}

// WithState sets the PR state
func (b *PullRequestBuilder) WithState(state string) *PullRequestBuilder {
	b.state = state
	return b
}

// WithAuthor sets the PR author. An empty login is listed as a deleted
// account (null author).
func (b *PullRequestBuilder) WithAuthor(author string) *PullRequestBuilder {
	b.author = author
	return b
}

// WithCreatedAt sets the creation time
func (b *PullRequestBuilder) WithCreatedAt(t time.Time) *PullRequestBuilder {
	b.createdAt = t
	return b
}

// WithChanges sets the diff stats
func (b *PullRequestBuilder) WithChanges(additions, deletions, files int) *PullRequestBuilder {
	b.additions = additions
	b.deletions = deletions
	b.changedFiles = files
	return b
}

// WithComments sets the review comment count
func (b *PullRequestBuilder) WithComments(count int) *PullRequestBuilder {
	b.reviewComments = count
	return b
}

// WithCommits sets the commit count
func (b *PullRequestBuilder) WithCommits(count int) *PullRequestBuilder {
	b.commits = count
	return b
}

// WithMergeable sets the mergeable flag and state
func (b *PullRequestBuilder) WithMergeable(mergeable bool, state string) *PullRequestBuilder {
	b.mergeable = mergeable
	b.mergeableState = state
	return b
}

// URL returns the PR's HTML URL
func (b *PullRequestBuilder) URL() string {
	return fmt.Sprintf("https://github.com/%s/%s/pull/%d", b.owner, b.repo, b.number)
}

// Key returns the owner/repo/number key the REST handler looks PRs up by
func (b *PullRequestBuilder) Key() string {
	return fmt.Sprintf("%s/%s/%d", b.owner, b.repo, b.number)
}

// Node builds the listing node: {url, author{login}}
func (b *PullRequestBuilder) Node() map[string]interface{} {
	var author interface{}
	if b.author != "" {
		author = map[string]interface{}{"login": b.author}
	}
	return map[string]interface{}{
		"url":    b.URL(),
		"author": author,
	}
}

// Build builds the REST pull request record
func (b *PullRequestBuilder) Build() map[string]interface{} {
	var user interface{}
	if b.author != "" {
		user = map[string]interface{}{"login": b.author}
	}
	return map[string]interface{}{
		"number":          b.number,
		"title":           b.title,
		"state":           b.state,
		"html_url":        b.URL(),
		"user":            user,
		"changed_files":   b.changedFiles,
		"commits":         b.commits,
		"additions":       b.additions,
		"deletions":       b.deletions,
		"review_comments": b.reviewComments,
		"mergeable":       b.mergeable,
		"mergeable_state": b.mergeableState,
		"created_at":      b.createdAt.Format(time.RFC3339),
		"base": map[string]interface{}{
			"repo": map[string]interface{}{"name": b.repo},
		},
	}
}

// RepositoriesResponseBuilder builds organization repositories GraphQL responses
type RepositoriesResponseBuilder struct {
	repositories []map[string]interface{}
	hasNextPage  bool
	endCursor    string
	errors       []map[string]interface{}
	nullOrg      bool
}

// NewRepositoriesResponseBuilder creates a new response builder
func NewRepositoriesResponseBuilder() *RepositoriesResponseBuilder {
	return &RepositoriesResponseBuilder{}
}

// WithRepository adds a repository with the given open PRs
func (b *RepositoriesResponseBuilder) WithRepository(name string, prs ...*PullRequestBuilder) *RepositoriesResponseBuilder {
	nodes := make([]map[string]interface{}, 0, len(prs))
	for _, pr := range prs {
		nodes = append(nodes, pr.Node())
	}
	b.repositories = append(b.repositories, map[string]interface{}{
		"name":         name,
		"pullRequests": map[string]interface{}{"nodes": nodes},
	})
	return b
}

// WithPagination sets pagination info
func (b *RepositoriesResponseBuilder) WithPagination(hasNext bool, cursor string) *RepositoriesResponseBuilder {
	b.hasNextPage = hasNext
	b.endCursor = cursor
	return b
}

// WithError adds a GraphQL error
func (b *RepositoriesResponseBuilder) WithError(message string) *RepositoriesResponseBuilder {
	b.errors = append(b.errors, map[string]interface{}{"message": message})
	return b
}

// WithNullOrganization answers with organization: null, as GitHub does for
// an unknown login.
func (b *RepositoriesResponseBuilder) WithNullOrganization() *RepositoriesResponseBuilder {
	b.nullOrg = true
	return b
}

// Build creates the final response
func (b *RepositoriesResponseBuilder) Build() map[string]interface{} {
	response := make(map[string]interface{})

	if len(b.errors) > 0 {
		response["errors"] = b.errors
	}

	if b.nullOrg {
		response["data"] = map[string]interface{}{"organization": nil}
		return response
	}

	if len(b.errors) > 0 && len(b.repositories) == 0 {
		return response
	}

	var cursor interface{}
	if b.endCursor != "" {
		cursor = b.endCursor
	}
	repos := b.repositories
	if repos == nil {
		repos = []map[string]interface{}{}
	}

	response["data"] = map[string]interface{}{
		"organization": map[string]interface{}{
			"repositories": map[string]interface{}{
				"nodes": repos,
				"pageInfo": map[string]interface{}{
					"endCursor":   cursor,
					"hasNextPage": b.hasNextPage,
				},
			},
		},
	}
	return response
}
