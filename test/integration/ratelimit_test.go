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

package integration

import (
	"net/http"
	"regexp"
	"strconv"
	"testing"
	"time"

	"github.com/sirseerhq/breakfast/test/testutil"
)

// TestRateLimitHandling tests that rate limit answers end the run with exit
// code 2 after a single request
func TestRateLimitHandling(t *testing.T) {
	tests := []struct {
		name    string
		handler http.HandlerFunc
	}{
		{
			name: "primary rate limit",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("X-RateLimit-Remaining", "0")
				w.Header().Set("X-RateLimit-Reset", strconv.FormatInt(time.Now().Add(time.Hour).Unix(), 10))
				w.WriteHeader(http.StatusForbidden)
				_, _ = w.Write([]byte(`{"message": "API rate limit exceeded for user ID 1."}`))
			},
		},
		{
			name: "too many requests",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Retry-After", "30")
				w.WriteHeader(http.StatusTooManyRequests)
				_, _ = w.Write([]byte(`{"message": "slow down"}`))
			},
		},
		{
			name: "graphql rate limited",
			handler: func(w http.ResponseWriter, r *http.Request) {
				w.Header().Set("Content-Type", "application/json")
				_, _ = w.Write([]byte(`{"errors": [{"type": "RATE_LIMITED", "message": "API rate limit exceeded for user ID 1."}]}`))
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			server := testutil.NewMockServer(t, tt.handler)

			start := time.Now()
			result := testutil.RunWithMockServer(t, server, "org", "-q")

			testutil.AssertExitCode(t, result, 2)
			testutil.AssertCLIError(t, result, "rate limit exceeded")
			if server.RequestCount() != 1 {
				t.Errorf("Expected exactly 1 request, got %d", server.RequestCount())
			}
			if elapsed := time.Since(start); elapsed > 10*time.Second {
				t.Errorf("Run waited %v; rate limits must not be waited out", elapsed)
			}
		})
	}
}

// TestRateLimitOnDetailFetch tests a rate limit hit by the REST detail requests
func TestRateLimitOnDetailFetch(t *testing.T) {
	gh := testutil.NewGitHubServer(t, "org",
		[]testutil.Repository{{Name: "repo", PullRequests: []*testutil.PullRequestBuilder{
			testutil.NewPullRequestBuilder("org", "repo", 1),
		}}})
	limited := testutil.NewRateLimitServer(t)

	proxy := testutil.NewMockServer(t, func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/graphql" {
			gh.Config.Handler.ServeHTTP(w, r)
			return
		}
		limited.Config.Handler.ServeHTTP(w, r)
	})

	result := testutil.RunWithMockServer(t, proxy, "org")

	testutil.AssertExitCode(t, result, 2)
	testutil.AssertCLIError(t, result, "rate limit")
	testutil.AssertContainsString(t, result.Stderr, "Processing org PRs...")
	if regexp.MustCompile(`Processing org PRs\.\.\.[^\n]*\.\.\.Done`).MatchString(result.Stderr) {
		t.Errorf("Expected the processing line to be aborted, got: %s", result.Stderr)
	}
}
