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

	"github.com/sirseerhq/breakfast/internal/logging"
)

// PageFetcher is the part of Client FetchAllPages needs.
type PageFetcher interface {
	FetchRepositoryPage(ctx context.Context, org, cursor string) (*RepositoryPage, error)
}

// FetchAllPages walks the organization's repository connection from the
// first page until the server reports no further pages, and returns every
// page in order. onPage, if non-nil, is called after each page arrives.
// Any error aborts the walk and no pages are returned.
func FetchAllPages(ctx context.Context, client PageFetcher, org string, onPage func(*RepositoryPage)) ([]*RepositoryPage, error) {
	var pages []*RepositoryPage
	cursor := ""

	for {
		page, err := client.FetchRepositoryPage(ctx, org, cursor)
		if err != nil {
			return nil, fmt.Errorf("fetching page %d of %s repositories: %w", len(pages)+1, org, err)
		}

		pages = append(pages, page)
		if onPage != nil {
			onPage(page)
		}

		if !page.HasNextPage {
			break
		}
		if page.EndCursor == cursor {
			// A cursor that does not advance would loop forever.
			return nil, fmt.Errorf("page %d of %s repositories repeated cursor %q", len(pages), org, cursor)
		}
		cursor = page.EndCursor
	}

	logging.Logger.Debug("fetched all repository pages", "organization", org, "pages", len(pages))
	return pages, nil
}
