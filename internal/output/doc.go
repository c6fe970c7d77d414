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

// Package output writes the breakfast report. Two formats are supported:
// a bordered terminal table with one row per pull request, and NDJSON
// (Newline Delimited JSON) with one pull request record per line.
//
// The package also provides Progress, the single-line progress indicator
// written to stderr while pages and pull requests are fetched.
//
// Example usage:
//
//	formatter := report.NewFormatter(os.Stdout, report.WithAge(true))
//	w, err := output.NewReportWriter(output.FormatTable, os.Stdout, formatter)
//	if err != nil {
//	    return err
//	}
//	if err := w.WriteReport(details); err != nil {
//	    return err
//	}
package output
