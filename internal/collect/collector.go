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

// Package collect turns repository listing pages into the ordered list of
// pull requests to report on, and fetches their details concurrently.
package collect

import (
	"strings"

	"github.com/sirseerhq/breakfast/internal/github"
)

// PullRequestURLs returns the URL of every pull request in a repository
// whose name contains filter, in page, repository and pull request order.
// An empty filter matches every repository. Pull requests whose author
// login equals any of excludeAuthors, ignoring case, are skipped.
func PullRequestURLs(pages []*github.RepositoryPage, filter string, excludeAuthors []string) []string {
	var urls []string
	for _, page := range pages {
		for _, repo := range page.Repositories {
			if !strings.Contains(repo.Name, filter) {
				continue
			}
			for _, pr := range repo.PullRequests {
				if excluded(pr.AuthorLogin, excludeAuthors) {
					continue
				}
				urls = append(urls, pr.URL)
			}
		}
	}
	return urls
}

func excluded(login string, authors []string) bool {
	for _, a := range authors {
		if strings.EqualFold(login, a) {
			return true
		}
	}
	return false
}
