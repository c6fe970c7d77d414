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

package collect

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/sirseerhq/breakfast/internal/github"
	"github.com/sirseerhq/breakfast/internal/logging"
	"golang.org/x/sync/errgroup"
)

// DetailGetter is the part of github.Client FetchDetails needs.
type DetailGetter interface {
	GetPullRequest(ctx context.Context, ref github.PullRequestRef) (*github.PullRequestDetail, error)
}

// FetchDetails fetches the detail record of every URL using at most workers
// concurrent requests. The result has the same order as urls. Every URL is
// parsed before any request is made. The first failure cancels the
// remaining fetches and is returned with no partial results. onDone, if
// non-nil, is called once per completed fetch, never concurrently.
func FetchDetails(ctx context.Context, client DetailGetter, urls []string, workers int, onDone func(*github.PullRequestDetail)) ([]*github.PullRequestDetail, error) {
	if len(urls) == 0 {
		return nil, nil
	}

	refs := make([]github.PullRequestRef, len(urls))
	for i, u := range urls {
		ref, err := github.ParsePullRequestURL(u)
		if err != nil {
			return nil, err
		}
		refs[i] = ref
	}

	results := make([]*github.PullRequestDetail, len(refs))
	var mu sync.Mutex

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(1, min(workers, len(refs))))

	start := time.Now()
	for i, ref := range refs {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			detail, err := client.GetPullRequest(gctx, ref)
			if err != nil {
				return fmt.Errorf("fetching %s: %w", ref.URL, err)
			}
			results[i] = detail

			if onDone != nil {
				mu.Lock()
				onDone(detail)
				mu.Unlock()
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	// Cancellation before the first launch leaves every slot empty.
	if err := ctx.Err(); err != nil {
		return nil, fmt.Errorf("fetching pull request details: %w", err)
	}

	logging.Logger.Debug("fetched pull request details",
		"count", len(results),
		"workers", min(workers, len(refs)),
		"duration", time.Since(start))

	return results, nil
}
