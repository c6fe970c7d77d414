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
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"time"

	"github.com/shurcooL/graphql"
	bferrors "github.com/sirseerhq/breakfast/internal/errors"
	"github.com/sirseerhq/breakfast/internal/giterror"
	"github.com/sirseerhq/breakfast/internal/logging"
)

// GraphQLClient lists an organization's repositories and their open pull
// requests through GitHub's GraphQL API.
type GraphQLClient struct {
	client    *graphql.Client
	inspector giterror.Inspector
}

// NewGraphQLClient creates a new GitHub GraphQL client with the provided token and endpoint.
// The client is configured with:
//   - Authentication via the provided token
//   - Custom GraphQL endpoint URL (e.g., for GitHub Enterprise)
//   - Response size limiting to prevent memory issues
//   - User-Agent header for API compliance
func NewGraphQLClient(token, endpoint string) *GraphQLClient {
	return newGraphQLClient(newHTTPClient(token), endpoint)
}

func newGraphQLClient(httpClient *http.Client, endpoint string) *GraphQLClient {
	return &GraphQLClient{
		client:    graphql.NewClient(endpoint, httpClient),
		inspector: giterror.NewInspector(),
	}
}

// repositoriesQuery is the organization listing query. Only open pull
// requests are requested, with just enough fields to filter them.
type repositoriesQuery struct {
	Organization *struct {
		Repositories *struct {
			Nodes []struct {
				Name         graphql.String
				PullRequests struct {
					Nodes []struct {
						URL    graphql.String
						Author *struct {
							Login graphql.String
						}
					}
				} `graphql:"pullRequests(first: $pullRequestsPerRepo, states: [OPEN])"`
			}
			PageInfo struct {
				EndCursor   *graphql.String
				HasNextPage graphql.Boolean
			}
		} `graphql:"repositories(first: $repositoriesPerPage, after: $cursor)"`
	} `graphql:"organization(login: $organization)"`
}

// FetchRepositoryPage fetches one page of the organization's repositories.
// The cursor is sent as null for the first page.
func (c *GraphQLClient) FetchRepositoryPage(ctx context.Context, org, cursor string) (*RepositoryPage, error) {
	var query repositoriesQuery

	variables := map[string]interface{}{
		"organization":        graphql.String(org),
		"cursor":              (*graphql.String)(nil),
		"repositoriesPerPage": graphql.Int(repositoriesPerPage),
		"pullRequestsPerRepo": graphql.Int(pullRequestsPerRepo),
	}
	if cursor != "" {
		variables["cursor"] = graphql.NewString(graphql.String(cursor))
	}

	start := time.Now()
	err := c.client.Query(ctx, &query, variables)
	if err != nil {
		return nil, mapError(c.inspector, err, fmt.Sprintf("organization '%s'", org), bferrors.ErrOrgNotFound)
	}

	if query.Organization == nil {
		return nil, fmt.Errorf("organization '%s' not found. Please check the name and your token's access: %w", org, bferrors.ErrOrgNotFound)
	}
	repos := query.Organization.Repositories
	if repos == nil {
		return nil, fmt.Errorf("organization '%s' response has no repositories connection: %w", org, bferrors.ErrUnexpectedResponse)
	}

	page := &RepositoryPage{
		Repositories: make([]Repository, 0, len(repos.Nodes)),
		HasNextPage:  bool(repos.PageInfo.HasNextPage),
	}
	if repos.PageInfo.EndCursor != nil {
		page.EndCursor = string(*repos.PageInfo.EndCursor)
	}
	if page.HasNextPage && page.EndCursor == "" {
		return nil, fmt.Errorf("organization '%s' page reports more results without a cursor: %w", org, bferrors.ErrUnexpectedResponse)
	}

	for _, node := range repos.Nodes {
		repo := Repository{
			Name:         string(node.Name),
			PullRequests: make([]PullRequestNode, 0, len(node.PullRequests.Nodes)),
		}
		for _, pr := range node.PullRequests.Nodes {
			prNode := PullRequestNode{URL: string(pr.URL)}
			if pr.Author != nil {
				prNode.AuthorLogin = string(pr.Author.Login)
			}
			repo.PullRequests = append(repo.PullRequests, prNode)
		}
		page.Repositories = append(page.Repositories, repo)
	}

	logging.Logger.Debug("fetched repository page",
		"organization", org,
		"cursor", cursor,
		"repositories", len(page.Repositories),
		"has_next_page", page.HasNextPage,
		"duration", time.Since(start))

	return page, nil
}

// mapError maps API errors to our domain errors with actionable messages.
// subject names what was being fetched; notFound is the sentinel used when
// the subject does not exist.
func mapError(inspector giterror.Inspector, err error, subject string, notFound error) error {
	if err == nil {
		return nil
	}

	// Cancellation surfaces through url.Error, which also satisfies net.Error
	if errors.Is(err, context.Canceled) {
		return fmt.Errorf("fetching %s canceled: %w", subject, err)
	}

	// Transport failures carry the request URL, whose port can look like a
	// status code to the message checks below.
	var urlErr *url.Error
	if errors.As(err, &urlErr) || errors.Is(err, context.DeadlineExceeded) {
		return fmt.Errorf("network error connecting to GitHub API. Please check your internet connection and try again: %v: %w", err, bferrors.ErrNetworkFailure)
	}

	// Check rate limit first, as 403 can be both auth and rate limit
	if inspector.IsRateLimitError(err) {
		return fmt.Errorf("GitHub API rate limit exceeded. Please wait before retrying: %v: %w", err, bferrors.ErrRateLimit)
	}

	if inspector.IsAuthError(err) {
		return fmt.Errorf("GitHub API authentication failed. Please check the token in your environment: %w", bferrors.ErrInvalidToken)
	}

	if inspector.IsNotFoundError(err) {
		return fmt.Errorf("%s not found. Please check the name and your token's access: %w", subject, notFound)
	}

	if inspector.IsNetworkError(err) {
		return fmt.Errorf("network error connecting to GitHub API. Please check your internet connection and try again: %v: %w", err, bferrors.ErrNetworkFailure)
	}

	if inspector.IsStatusError(err) {
		return fmt.Errorf("failed to fetch %s: %w", subject, err)
	}

	if inspector.IsDecodeError(err) {
		return fmt.Errorf("failed to decode %s: %v: %w", subject, err, bferrors.ErrUnexpectedResponse)
	}

	return fmt.Errorf("failed to fetch %s: %v: %w", subject, err, bferrors.ErrGraphQL)
}
