// Copyright 2026 PingCAP, Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package core

import (
	"strings"
	"unicode/utf8"

	"github.com/pingcap/windowexpr/pkg/expression/aggregation"
)

const truncatedSuffix = "..."

// TruncateRender cuts s to at most width bytes, ending it with "..." when it
// is cut. The cut never splits a UTF-8 sequence. A width of 0 means no limit.
func TruncateRender(s string, width int) string {
	if width <= 0 || len(s) <= width {
		return s
	}
	if width <= len(truncatedSuffix) {
		return s[:runeBoundary(s, width)]
	}
	return s[:runeBoundary(s, width-len(truncatedSuffix))] + truncatedSuffix
}

// runeBoundary backs n off to the start of the rune containing s[n].
func runeBoundary(s string, n int) int {
	for n > 0 && !utf8.RuneStart(s[n]) {
		n--
	}
	return n
}

// ExplainWindows renders window functions, one per line, each cut to
// maxWidth.
func ExplainWindows(windows []*aggregation.BoundWindow, maxWidth int) string {
	strs := make([]string, 0, len(windows))
	for _, w := range windows {
		strs = append(strs, TruncateRender(w.String(), maxWidth))
	}
	return strings.Join(strs, "\n")
}

func explainWindowGroup(g *WindowGroup, maxWidth int) string {
	var buffer strings.Builder
	buffer.WriteString("Window(")
	for i, w := range g.Windows {
		if i > 0 {
			buffer.WriteString(", ")
		}
		buffer.WriteString(TruncateRender(w.String(), maxWidth))
	}
	buffer.WriteString(")")
	return buffer.String()
}

// ExplainWindowGroups renders the window operators of a plan as a chain,
// from the first evaluated to the last.
func ExplainWindowGroups(groups []*WindowGroup, maxWidth int) string {
	strs := make([]string, 0, len(groups))
	for _, g := range groups {
		strs = append(strs, explainWindowGroup(g, maxWidth))
	}
	return strings.Join(strs, "->")
}
