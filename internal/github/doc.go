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

// Package github provides clients for the two GitHub APIs breakfast reads:
// the GraphQL API, which lists an organization's repositories together with
// their open pull requests, and the REST API, which returns the full record
// of a single pull request.
//
// The package includes:
//   - A Client interface covering both calls, so tests can substitute a mock
//   - A GraphQL implementation using the shurcooL/graphql library
//   - A REST implementation using google/go-github
//   - FetchAllPages, which walks the repository connection cursor by cursor
//   - ParsePullRequestURL, which recovers owner, repo and number from a PR URL
//   - Typed records for both responses
//
// Basic usage:
//
//	client, err := github.NewClient(token, "https://api.github.com/graphql", "https://api.github.com")
//	if err != nil {
//	    // Handle error
//	}
//	pages, err := github.FetchAllPages(ctx, client, "acme", nil)
//	if err != nil {
//	    // Handle error
//	}
//	ref, err := github.ParsePullRequestURL(pages[0].Repositories[0].PullRequests[0].URL)
//	detail, err := client.GetPullRequest(ctx, ref)
package github
