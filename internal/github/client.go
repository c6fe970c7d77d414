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

import "context"

// Client defines the interface for interacting with GitHub's API.
// This interface allows for easy mocking in tests.
type Client interface {
	// FetchRepositoryPage retrieves one page of an organization's repositories
	// with their open pull requests. An empty cursor fetches the first page;
	// subsequent pages pass the previous page's EndCursor.
	FetchRepositoryPage(ctx context.Context, org, cursor string) (*RepositoryPage, error)

	// GetPullRequest retrieves the full record of a single pull request.
	GetPullRequest(ctx context.Context, ref PullRequestRef) (*PullRequestDetail, error)
}

// APIClient combines the GraphQL listing client and the REST detail client
// behind the Client interface.
type APIClient struct {
	*GraphQLClient
	*RESTClient
}

// NewClient creates a Client that lists repositories through graphqlEndpoint
// and fetches pull request details through restEndpoint, authenticating both
// with token. It fails only when restEndpoint is not an absolute URL.
func NewClient(token, graphqlEndpoint, restEndpoint string) (*APIClient, error) {
	httpClient := newHTTPClient(token)
	rest, err := newRESTClient(httpClient, restEndpoint)
	if err != nil {
		return nil, err
	}
	return &APIClient{
		GraphQLClient: newGraphQLClient(httpClient, graphqlEndpoint),
		RESTClient:    rest,
	}, nil
}
