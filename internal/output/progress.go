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
	"math/rand/v2"
	"sync"
)

var breakfastItems = []string{
	"☕", "🥐", "🥞", "🍳", "🥓", "🥯", "🍩", "🍪", "🥛", "🍵", "🍎", "🍌",
	"🍉", "🍇", "🍓", "🍒", "🍑", "🍍", "🥖", "🥨", "🧇", "🧀", "🍗", "🥩",
	"🍔", "🍟", "🍕", "🌭", "🥪", "🌮", "🌯", "🥙",
}

// Progress prints a single progress line: a start message, one breakfast
// item per completed unit of work, then "...Done". A quiet Progress
// writes nothing.
type Progress struct {
	mu     sync.Mutex
	output io.Writer
	quiet  bool
	pick   func() string
	ticks  int
}

// NewProgress creates a progress indicator writing to w, normally stderr.
func NewProgress(w io.Writer, quiet bool) *Progress {
	return &Progress{
		output: w,
		quiet:  quiet,
		pick: func() string {
			return breakfastItems[rand.IntN(len(breakfastItems))]
		},
	}
}

// Start writes the opening message without a newline.
func (p *Progress) Start(format string, args ...interface{}) {
	p.write(fmt.Sprintf(format, args...))
}

// Tick writes one breakfast item. It is safe for concurrent use.
func (p *Progress) Tick() {
	p.mu.Lock()
	p.ticks++
	p.mu.Unlock()
	p.write(p.pick())
}

// Done ends the progress line.
func (p *Progress) Done() {
	p.write("...Done\n")
}

// Abort ends the progress line after a failure.
func (p *Progress) Abort() {
	p.write("\n")
}

// Ticks returns the number of Tick calls so far.
func (p *Progress) Ticks() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.ticks
}

func (p *Progress) write(s string) {
	if p.quiet {
		return
	}
	p.mu.Lock()
	defer p.mu.Unlock()
	fmt.Fprint(p.output, s)
}
