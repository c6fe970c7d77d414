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
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/google/go-github/v60/github"
	bferrors "github.com/sirseerhq/breakfast/internal/errors"
	"github.com/sirseerhq/breakfast/internal/giterror"
	"github.com/sirseerhq/breakfast/internal/logging"
)

// RESTClient fetches single pull request records through GitHub's REST API.
type RESTClient struct {
	client    *github.Client
	inspector giterror.Inspector
}

// NewRESTClient creates a REST client authenticating with token against
// endpoint, e.g. https://api.github.com or https://ghe.example.com/api/v3.
func NewRESTClient(token, endpoint string) (*RESTClient, error) {
	return newRESTClient(newHTTPClient(token), endpoint)
}

func newRESTClient(httpClient *http.Client, endpoint string) (*RESTClient, error) {
	client := github.NewClient(httpClient)

	baseURL, err := url.Parse(strings.TrimSuffix(endpoint, "/") + "/")
	if err != nil {
		return nil, fmt.Errorf("invalid REST endpoint %q: %w", endpoint, err)
	}
	if baseURL.Scheme == "" || baseURL.Host == "" {
		return nil, fmt.Errorf("invalid REST endpoint %q: scheme and host are required", endpoint)
	}
	client.BaseURL = baseURL

	return &RESTClient{
		client:    client,
		inspector: giterror.NewInspector(),
	}, nil
}

// GetPullRequest fetches /repos/{owner}/{repo}/pulls/{number}.
func (c *RESTClient) GetPullRequest(ctx context.Context, ref PullRequestRef) (*PullRequestDetail, error) {
	start := time.Now()
	pr, _, err := c.client.PullRequests.Get(ctx, ref.Owner, ref.Repo, ref.Number)
	if err != nil {
		subject := fmt.Sprintf("pull request %s/%s#%d", ref.Owner, ref.Repo, ref.Number)
		return nil, mapError(c.inspector, err, subject, bferrors.ErrPullRequestNotFound)
	}

	if pr.GetNumber() == 0 || pr.GetHTMLURL() == "" {
		return nil, fmt.Errorf("pull request %s/%s#%d response lacks number or html_url: %w",
			ref.Owner, ref.Repo, ref.Number, bferrors.ErrUnexpectedResponse)
	}

	repoName := pr.GetBase().GetRepo().GetName()
	if repoName == "" {
		repoName = ref.Repo
	}

	logging.Logger.Debug("fetched pull request",
		"url", ref.URL,
		"duration", time.Since(start))

	return &PullRequestDetail{
		Number:         pr.GetNumber(),
		Title:          pr.GetTitle(),
		Author:         pr.GetUser().GetLogin(),
		State:          pr.GetState(),
		Repository:     repoName,
		ChangedFiles:   pr.GetChangedFiles(),
		Commits:        pr.GetCommits(),
		Additions:      pr.GetAdditions(),
		Deletions:      pr.GetDeletions(),
		ReviewComments: pr.GetReviewComments(),
		Mergeable:      pr.GetMergeable(),
		MergeableState: pr.GetMergeableState(),
		CreatedAt:      pr.GetCreatedAt().Time,
		HTMLURL:        pr.GetHTMLURL(),
	}, nil
}
