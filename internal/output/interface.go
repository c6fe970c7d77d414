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

	"github.com/sirseerhq/breakfast/internal/github"
	"github.com/sirseerhq/breakfast/internal/report"
)

// Supported report formats.
const (
	FormatTable = "table"
	FormatJSON  = "json"
)

// OutputWriter defines the interface for writing individual records.
type OutputWriter interface {
	// Write writes a single record to the output.
	// The record should be immediately flushed to avoid memory accumulation.
	Write(record interface{}) error

	// Close closes the underlying writer and releases any resources.
	// This should be called when all writing is complete.
	Close() error
}

// ReportWriter renders a complete report of pull request details.
type ReportWriter interface {
	WriteReport(details []*github.PullRequestDetail) error
}

// NewReportWriter returns the ReportWriter for format, writing to w. The
// formatter is only used by the table format.
func NewReportWriter(format string, w io.Writer, formatter *report.Formatter) (ReportWriter, error) {
	switch format {
	case FormatTable, "":
		return NewTableWriter(w, formatter), nil
	case FormatJSON:
		return NewWriter(w), nil
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}
