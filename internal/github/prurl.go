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
	"fmt"
	"net/url"
	"regexp"
	"strconv"

	bferrors "github.com/sirseerhq/breakfast/internal/errors"
)

// prPathRE matches /<owner>/<repo>/pull/<number> with an optional trailing slash.
var prPathRE = regexp.MustCompile(`^/([^/]+)/([^/]+)/pull/(\d+)/?$`)

// ParsePullRequestURL extracts owner, repository and number from a pull
// request URL such as https://github.com/acme/app/pull/42.
func ParsePullRequestURL(rawURL string) (PullRequestRef, error) {
	u, err := url.Parse(rawURL)
	if err != nil {
		return PullRequestRef{}, fmt.Errorf("%q: %v: %w", rawURL, err, bferrors.ErrMalformedPRURL)
	}
	if u.Scheme != "http" && u.Scheme != "https" {
		return PullRequestRef{}, fmt.Errorf("%q: expected an http(s) URL: %w", rawURL, bferrors.ErrMalformedPRURL)
	}
	if u.Host == "" {
		return PullRequestRef{}, fmt.Errorf("%q: missing host: %w", rawURL, bferrors.ErrMalformedPRURL)
	}

	matches := prPathRE.FindStringSubmatch(u.Path)
	if matches == nil {
		return PullRequestRef{}, fmt.Errorf("%q: expected /<owner>/<repo>/pull/<number>: %w", rawURL, bferrors.ErrMalformedPRURL)
	}

	number, err := strconv.Atoi(matches[3])
	if err != nil || number <= 0 {
		return PullRequestRef{}, fmt.Errorf("%q: invalid pull request number %q: %w", rawURL, matches[3], bferrors.ErrMalformedPRURL)
	}

	return PullRequestRef{
		Owner:  matches[1],
		Repo:   matches[2],
		Number: number,
		URL:    rawURL,
	}, nil
}
