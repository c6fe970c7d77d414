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

package testutil

import (
	"bufio"
	"encoding/json"
	"strings"
	"testing"
)

// AssertNDJSONOutput validates that output holds one pull request record per
// line and returns the decoded records
func AssertNDJSONOutput(t *testing.T, output string, expectedPRCount int) []map[string]interface{} {
	t.Helper()

	scanner := bufio.NewScanner(strings.NewReader(output))
	var records []map[string]interface{}
	count := 0

	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		var pr map[string]interface{}
		if err := json.Unmarshal([]byte(line), &pr); err != nil {
			t.Errorf("Line %d: invalid JSON: %v", count+1, err)
			continue
		}

		// Validate PR has required fields
		requiredFields := []string{"number", "title", "author", "state", "repository", "additions", "deletions", "html_url"}
		for _, field := range requiredFields {
			if _, ok := pr[field]; !ok {
				t.Errorf("Line %d: missing required field '%s'", count+1, field)
			}
		}

		records = append(records, pr)
		count++
	}

	if err := scanner.Err(); err != nil {
		t.Fatalf("Error reading output: %v", err)
	}

	if count != expectedPRCount {
		t.Errorf("Expected %d PRs, got %d", expectedPRCount, count)
	}
	return records
}

// AssertContainsString checks if a string contains a substring
func AssertContainsString(t *testing.T, haystack, needle string) {
	t.Helper()
	if !strings.Contains(haystack, needle) {
		t.Errorf("Expected string to contain %q, got: %s", needle, haystack)
	}
}

// AssertNotContainsString checks if a string does not contain a substring
func AssertNotContainsString(t *testing.T, haystack, needle string) {
	t.Helper()
	if strings.Contains(haystack, needle) {
		t.Errorf("Expected string to NOT contain %q, got: %s", needle, haystack)
	}
}

// AssertErrorContains checks if an error contains expected text
func AssertErrorContains(t *testing.T, err error, expected string) {
	t.Helper()
	if err == nil {
		t.Fatal("Expected error, got nil")
	}
	if !strings.Contains(err.Error(), expected) {
		t.Errorf("Expected error to contain %q, got: %v", expected, err)
	}
}

// AssertNoError fails the test if err is not nil
func AssertNoError(t *testing.T, err error) {
	t.Helper()
	if err != nil {
		t.Fatalf("Unexpected error: %v", err)
	}
}

// AssertEqual compares two values and fails if they're not equal
func AssertEqual(t *testing.T, got, want interface{}) {
	t.Helper()
	if got != want {
		t.Errorf("Got %v, want %v", got, want)
	}
}

// AssertNotEqual compares two values and fails if they're equal
func AssertNotEqual(t *testing.T, got, notWant interface{}) {
	t.Helper()
	if got == notWant {
		t.Errorf("Got %v, but didn't want it", got)
	}
}
