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
	"bytes"
	"testing"

	"github.com/sirseerhq/breakfast/internal/report"
)

// Compile-time checks
var (
	_ OutputWriter = (*Writer)(nil)
	_ ReportWriter = (*Writer)(nil)
	_ ReportWriter = (*TableWriter)(nil)
)

func TestWriterImplementsInterface(t *testing.T) {
	buf := &bytes.Buffer{}
	var w OutputWriter = NewWriter(buf)

	if err := w.Write(map[string]string{"test": "data"}); err != nil {
		t.Errorf("Write() error = %v", err)
	}
	if err := w.Close(); err != nil {
		t.Errorf("Close() error = %v", err)
	}
	if buf.Len() == 0 {
		t.Error("Expected data to be written to buffer")
	}
}

func TestNewReportWriter(t *testing.T) {
	tests := []struct {
		format   string
		wantType string
		wantErr  bool
	}{
		{FormatTable, "table", false},
		{"", "table", false},
		{FormatJSON, "json", false},
		{"csv", "", true},
	}

	for _, tt := range tests {
		t.Run(tt.format, func(t *testing.T) {
			buf := &bytes.Buffer{}
			w, err := NewReportWriter(tt.format, buf, report.NewFormatter(buf))
			if (err != nil) != tt.wantErr {
				t.Fatalf("NewReportWriter(%q) error = %v, wantErr %v", tt.format, err, tt.wantErr)
			}
			if tt.wantErr {
				return
			}

			switch w.(type) {
			case *TableWriter:
				if tt.wantType != "table" {
					t.Errorf("NewReportWriter(%q) returned a table writer", tt.format)
				}
			case *Writer:
				if tt.wantType != "json" {
					t.Errorf("NewReportWriter(%q) returned an NDJSON writer", tt.format)
				}
			default:
				t.Errorf("unexpected writer type %T", w)
			}
		})
	}
}
