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

// Package report turns pull request details into display rows: numeric
// fields are graded into colour tiers, the PR link becomes a terminal
// hyperlink, and an optional age column is computed.
package report

import (
	"time"

	"github.com/charmbracelet/lipgloss"
)

// Tier is the colour grade of a numeric field.
type Tier int

// Grading tiers, from least to most concerning.
const (
	TierLow Tier = iota
	TierModerate
	TierHigh
	TierSevere
)

// Grade returns the tier of n: below 10 is Low, below 20 Moderate,
// below 50 High, anything else Severe.
func Grade(n int) Tier {
	switch {
	case n < 10:
		return TierLow
	case n < 20:
		return TierModerate
	case n < 50:
		return TierHigh
	default:
		return TierSevere
	}
}

// Color returns the tier's foreground colour.
func (t Tier) Color() lipgloss.Color {
	switch t {
	case TierLow:
		return lipgloss.Color("#00FF00")
	case TierModerate:
		return lipgloss.Color("#FFFF00")
	case TierHigh:
		return lipgloss.Color("#FFA500")
	default:
		return lipgloss.Color("#FF0000")
	}
}

func (t Tier) String() string {
	switch t {
	case TierLow:
		return "low"
	case TierModerate:
		return "moderate"
	case TierHigh:
		return "high"
	default:
		return "severe"
	}
}

// Hyperlink wraps label in an OSC 8 terminal hyperlink to url.
func Hyperlink(url, label string) string {
	return "\x1b]8;;" + url + "\x1b\\" + label + "\x1b]8;;\x1b\\"
}

// AgeInDays returns the number of whole days between created and now.
// A zero created time yields 0, as does a created time in the future.
func AgeInDays(created, now time.Time) int {
	if created.IsZero() {
		return 0
	}
	days := int(now.Sub(created) / (24 * time.Hour))
	if days < 0 {
		return 0
	}
	return days
}
