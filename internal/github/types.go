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

import "time"

// RepositoryPage is one page of an organization's repository connection.
type RepositoryPage struct {
	Repositories []Repository
	HasNextPage  bool
	EndCursor    string
}

// Repository is a repository node with its open pull requests.
type Repository struct {
	Name         string
	PullRequests []PullRequestNode
}

// PullRequestNode is the minimal pull request record returned by the listing
// query. AuthorLogin is empty when the author account has been deleted.
type PullRequestNode struct {
	URL         string
	AuthorLogin string
}

// PullRequestRef identifies a pull request by owner, repository and number.
type PullRequestRef struct {
	Owner  string
	Repo   string
	Number int
	URL    string
}

// PullRequestDetail is the subset of the REST pull request record the
// report renders. It is also the record written by --output json.
type PullRequestDetail struct {
	Number         int       `json:"number"`
	Title          string    `json:"title"`
	Author         string    `json:"author"`
	State          string    `json:"state"`
	Repository     string    `json:"repository"`
	ChangedFiles   int       `json:"changed_files"`
	Commits        int       `json:"commits"`
	Additions      int       `json:"additions"`
	Deletions      int       `json:"deletions"`
	ReviewComments int       `json:"review_comments"`
	Mergeable      bool      `json:"mergeable"`
	MergeableState string    `json:"mergeable_state"`
	CreatedAt      time.Time `json:"created_at"`
	HTMLURL        string    `json:"html_url"`
}

// Page sizes for the listing query. GitHub caps both connections at 100.
const (
	repositoriesPerPage = 100
	pullRequestsPerRepo = 100
)
