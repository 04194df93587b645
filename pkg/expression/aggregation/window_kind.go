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

package aggregation

import (
	"strings"
)

// WindowKind tags which window operation a BoundWindow performs. Aggregates
// evaluated over a window carry WindowAggregate plus an AggFuncDesc; the
// other kinds are intrinsic window functions without a descriptor.
type WindowKind byte

// Window function kinds.
const (
	WindowAggregate WindowKind = iota
	WindowRank
	WindowDenseRank
	WindowRowNumber
	WindowPercentRank
	WindowCumeDist
	WindowNtile
	WindowLead
	WindowLag
	WindowFirstValue
	WindowLastValue
	WindowNthValue
)

var windowKindNames = [...]string{
	WindowAggregate:   "WINDOW_AGGREGATE",
	WindowRank:        "RANK",
	WindowDenseRank:   "DENSE_RANK",
	WindowRowNumber:   "ROW_NUMBER",
	WindowPercentRank: "PERCENT_RANK",
	WindowCumeDist:    "CUME_DIST",
	WindowNtile:       "NTILE",
	WindowLead:        "LEAD",
	WindowLag:         "LAG",
	WindowFirstValue:  "FIRST_VALUE",
	WindowLastValue:   "LAST_VALUE",
	WindowNthValue:    "NTH_VALUE",
}

// String returns the display name of the kind.
func (k WindowKind) String() string {
	if int(k) < len(windowKindNames) {
		return windowKindNames[k]
	}
	return "UNKNOWN"
}

// IsPositional reports whether the kind reads a value at an offset from the
// current row, and therefore may carry offset and default expressions.
func (k WindowKind) IsPositional() bool {
	return k == WindowLead || k == WindowLag
}

// IsRanking reports whether the kind is a ranking function.
func (k WindowKind) IsRanking() bool {
	switch k {
	case WindowRank, WindowDenseRank, WindowRowNumber, WindowPercentRank, WindowCumeDist, WindowNtile:
		return true
	}
	return false
}

// ParseWindowKind parses a display name back to its kind, case-insensitively.
func ParseWindowKind(s string) (WindowKind, error) {
	for i, name := range windowKindNames {
		if strings.EqualFold(name, s) {
			return WindowKind(i), nil
		}
	}
	return 0, ErrUnknownWindowKind.GenWithStackByArgs(s)
}
