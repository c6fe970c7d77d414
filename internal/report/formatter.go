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

package report

import (
	"fmt"
	"io"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/sirseerhq/breakfast/internal/github"
)

// Column headers, in display order.
const (
	ColumnRepo      = "Repo"
	ColumnTitle     = "PR Title"
	ColumnAuthor    = "Author"
	ColumnState     = "State"
	ColumnFiles     = "Files"
	ColumnCommits   = "Commits"
	ColumnDiff      = "+/-"
	ColumnComments  = "Comments"
	ColumnMergeable = "Mergeable?"
	ColumnAge       = "Age (days)"
	ColumnLink      = "Link"
)

// Cell is one formatted value of a display row.
type Cell struct {
	Column string
	Value  string
}

// DisplayRow is the ordered, pre-formatted set of cells for one pull request.
type DisplayRow []Cell

// Columns returns the row's column names in order.
func (r DisplayRow) Columns() []string {
	cols := make([]string, len(r))
	for i, c := range r {
		cols[i] = c.Column
	}
	return cols
}

// Values returns the row's formatted values in column order.
func (r DisplayRow) Values() []string {
	vals := make([]string, len(r))
	for i, c := range r {
		vals[i] = c.Value
	}
	return vals
}

// Value returns the value of the named column.
func (r DisplayRow) Value(column string) (string, bool) {
	for _, c := range r {
		if c.Column == column {
			return c.Value, true
		}
	}
	return "", false
}

// Formatter builds display rows. Styles are rendered for the writer the
// formatter was created for, so colour is dropped when it is not a terminal.
type Formatter struct {
	renderer *lipgloss.Renderer
	showAge  bool
	now      func() time.Time
}

// Option configures a Formatter.
type Option func(*Formatter)

// WithAge adds the age column.
func WithAge(show bool) Option {
	return func(f *Formatter) {
		f.showAge = show
	}
}

// WithClock sets the time source used for the age column.
func WithClock(now func() time.Time) Option {
	return func(f *Formatter) {
		f.now = now
	}
}

// WithRenderer replaces the renderer derived from the output writer.
func WithRenderer(r *lipgloss.Renderer) Option {
	return func(f *Formatter) {
		f.renderer = r
	}
}

// NewFormatter creates a formatter for rows that will be written to w.
func NewFormatter(w io.Writer, opts ...Option) *Formatter {
	f := &Formatter{
		renderer: lipgloss.NewRenderer(w),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Renderer returns the renderer the formatter styles with.
func (f *Formatter) Renderer() *lipgloss.Renderer {
	return f.renderer
}

// GradeNumber renders n in bold, coloured by its tier.
func (f *Formatter) GradeNumber(n int) string {
	return f.renderer.NewStyle().
		Bold(true).
		Foreground(Grade(n).Color()).
		Render(strconv.Itoa(n))
}

func (f *Formatter) bold(color lipgloss.Color, s string) string {
	return f.renderer.NewStyle().Bold(true).Foreground(color).Render(s)
}

// Row formats a single pull request.
func (f *Formatter) Row(d *github.PullRequestDetail) DisplayRow {
	diff := f.bold(TierLow.Color(), fmt.Sprintf("+%d", d.Additions)) +
		"/" +
		f.bold(TierSevere.Color(), fmt.Sprintf("-%d", d.Deletions))

	mergeable := "❌"
	if d.Mergeable {
		mergeable = "✅"
	}

	row := DisplayRow{
		{ColumnRepo, d.Repository},
		{ColumnTitle, d.Title},
		{ColumnAuthor, d.Author},
		{ColumnState, d.State},
		{ColumnFiles, f.GradeNumber(d.ChangedFiles)},
		{ColumnCommits, f.GradeNumber(d.Commits)},
		{ColumnDiff, diff},
		{ColumnComments, f.GradeNumber(d.ReviewComments)},
		{ColumnMergeable, fmt.Sprintf("%s (%s)", mergeable, d.MergeableState)},
	}
	if f.showAge {
		row = append(row, Cell{ColumnAge, f.GradeNumber(AgeInDays(d.CreatedAt, f.now()))})
	}
	row = append(row, Cell{ColumnLink, Hyperlink(d.HTMLURL, fmt.Sprintf("PR-%d", d.Number))})

	return row
}

// Rows formats every pull request, preserving order.
func (f *Formatter) Rows(details []*github.PullRequestDetail) []DisplayRow {
	rows := make([]DisplayRow, 0, len(details))
	for _, d := range details {
		rows = append(rows, f.Row(d))
	}
	return rows
}
