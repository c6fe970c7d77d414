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

// Package logging holds the process-wide debug logger. Logs are discarded
// unless debug output is requested with --debug or BREAKFAST_DEBUG=1.
package logging

import (
	"io"
	"log/slog"
	"os"
)

// Logger is the public logger instance accessible from all packages
var Logger = slog.New(slog.NewTextHandler(io.Discard, nil))

// Initialize sets up the logger based on the debug flag. Debug records are
// written as text to w, normally stderr so they never mix with the report.
func Initialize(debug bool, w io.Writer) {
	if os.Getenv("BREAKFAST_DEBUG") == "1" {
		debug = true
	}

	if !debug {
		Logger = slog.New(slog.NewTextHandler(io.Discard, nil))
		return
	}

	Logger = slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{
		Level: slog.LevelDebug,
	}))
	Logger.Debug("debug logging enabled")
}
