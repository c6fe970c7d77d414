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

// Package errors defines sentinel errors for consistent error handling across the application.
// These errors map to specific exit codes in the CLI for proper scripting support.
package errors

import "errors"

// Sentinel errors for consistent error handling and exit code mapping
var (
	// ErrMissingToken indicates no GitHub token was found in the environment.
	// Maps to exit code 1.
	ErrMissingToken = errors.New("github token missing")

	// ErrInvalidToken indicates GitHub authentication failed.
	// Maps to exit code 2.
	ErrInvalidToken = errors.New("invalid github token")

	// ErrOrgNotFound indicates the organization or repository does not exist or is not accessible.
	// Maps to exit code 2.
	ErrOrgNotFound = errors.New("organization not found")

	// ErrPullRequestNotFound indicates a listed pull request could not be fetched.
	// Maps to exit code 2.
	ErrPullRequestNotFound = errors.New("pull request not found")

	// ErrRateLimit indicates GitHub API rate limit has been exceeded.
	// Maps to exit code 2.
	ErrRateLimit = errors.New("github rate limit exceeded")

	// ErrNetworkFailure indicates a network connection problem.
	// Maps to exit code 3.
	ErrNetworkFailure = errors.New("network connection failed")

	// ErrGraphQL indicates the GraphQL endpoint answered with an errors payload.
	ErrGraphQL = errors.New("graphql request failed")

	// ErrUnexpectedResponse indicates a response that decoded but lacks the
	// fields the report depends on.
	ErrUnexpectedResponse = errors.New("unexpected response shape")

	// ErrMalformedPRURL indicates a pull request URL that is not of the form
	// https://host/<owner>/<repo>/pull/<number>.
	ErrMalformedPRURL = errors.New("malformed PR URL")
)
