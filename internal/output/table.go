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

package output

import (
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/sirseerhq/breakfast/internal/github"
	"github.com/sirseerhq/breakfast/internal/report"
)

// EmptyReportMessage is printed instead of a table when there are no rows.
const EmptyReportMessage = "No open pull requests found"

// TableWriter renders display rows as a bordered table with a leading,
// zero-based index column.
type TableWriter struct {
	output    io.Writer
	formatter *report.Formatter
}

// NewTableWriter creates a table writer. formatter should have been
// created for the same writer so colour detection matches.
func NewTableWriter(w io.Writer, formatter *report.Formatter) *TableWriter {
	if formatter == nil {
		formatter = report.NewFormatter(w)
	}
	return &TableWriter{
		output:    w,
		formatter: formatter,
	}
}

// WriteReport formats the details and writes them as a table.
func (t *TableWriter) WriteReport(details []*github.PullRequestDetail) error {
	return t.WriteRows(t.formatter.Rows(details))
}

// WriteRows writes already formatted rows. Headers come from the first
// row's columns.
func (t *TableWriter) WriteRows(rows []report.DisplayRow) error {
	if len(rows) == 0 {
		_, err := fmt.Fprintln(t.output, EmptyReportMessage)
		return err
	}

	headers := append([]string{"#"}, rows[0].Columns()...)
	headerStyle := t.formatter.Renderer().NewStyle().Bold(true).Padding(0, 1)
	cellStyle := t.formatter.Renderer().NewStyle().Padding(0, 1)

	tbl := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(t.formatter.Renderer().NewStyle()).
		Headers(headers...).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return headerStyle
			}
			return cellStyle
		})

	for i, row := range rows {
		tbl.Row(append([]string{strconv.Itoa(i)}, row.Values()...)...)
	}

	if _, err := fmt.Fprintln(t.output, tbl.String()); err != nil {
		return fmt.Errorf("failed to write table: %w", err)
	}
	return nil
}
