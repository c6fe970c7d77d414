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

// Package main implements the breakfast command-line interface.
// breakfast lists every open pull request across an organization's
// repositories and prints a colour-graded table, so a team can see over
// breakfast which reviews are waiting.
//
// The CLI supports:
//   - Filtering repositories by a name substring
//   - Ignoring pull requests from given authors (e.g. bots)
//   - An optional age column
//   - Table or NDJSON output, to stdout or a file
//   - Configuration via YAML file, environment and flags
//   - Graceful error handling with appropriate exit codes
//
// Usage:
//
//	breakfast --organization <org> [flags]
//
// Example:
//
//	export GITHUB_TOKEN=your_token
//	breakfast -o acme -r api -i dependabot[bot] --age
//
// Exit codes:
//   - 0: Success
//   - 1: Missing token or general error
//   - 2: Authentication, not found or rate limit error
//   - 3: Network error
package main
