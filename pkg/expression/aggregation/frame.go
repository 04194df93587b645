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

	"github.com/pingcap/windowexpr/pkg/expression"
)

// FrameBoundary is one end of a window frame. The _ROWS/_RANGE suffix of the
// CURRENT ROW and expression variants carries the frame unit; the unbounded
// variants carry none.
type FrameBoundary byte

// Frame boundaries. BoundaryInvalid is the zero value of an unset boundary.
const (
	BoundaryInvalid FrameBoundary = iota
	UnboundedPreceding
	UnboundedFollowing
	CurrentRowRows
	CurrentRowRange
	ExprPrecedingRows
	ExprPrecedingRange
	ExprFollowingRows
	ExprFollowingRange
)

var frameBoundaryNames = [...]string{
	BoundaryInvalid:    "INVALID",
	UnboundedPreceding: "UNBOUNDED_PRECEDING",
	UnboundedFollowing: "UNBOUNDED_FOLLOWING",
	CurrentRowRows:     "CURRENT_ROW_ROWS",
	CurrentRowRange:    "CURRENT_ROW_RANGE",
	ExprPrecedingRows:  "EXPR_PRECEDING_ROWS",
	ExprPrecedingRange: "EXPR_PRECEDING_RANGE",
	ExprFollowingRows:  "EXPR_FOLLOWING_ROWS",
	ExprFollowingRange: "EXPR_FOLLOWING_RANGE",
}

// String implements fmt.Stringer interface.
func (b FrameBoundary) String() string {
	if int(b) < len(frameBoundaryNames) {
		return frameBoundaryNames[b]
	}
	return "UNKNOWN"
}

// HasExpr reports whether the boundary is relative to an offset expression.
func (b FrameBoundary) HasExpr() bool {
	switch b {
	case ExprPrecedingRows, ExprPrecedingRange, ExprFollowingRows, ExprFollowingRange:
		return true
	}
	return false
}

// ParseFrameBoundary parses the name of a boundary, case-insensitively.
func ParseFrameBoundary(s string) (FrameBoundary, error) {
	for i, name := range frameBoundaryNames {
		if i != int(BoundaryInvalid) && strings.EqualFold(name, s) {
			return FrameBoundary(i), nil
		}
	}
	return BoundaryInvalid, ErrUnknownFrameBoundary.GenWithStackByArgs(s)
}

// FrameUnit is the unit a frame is measured in.
type FrameUnit byte

const (
	// FrameRows counts physical rows.
	FrameRows FrameUnit = iota
	// FrameRange counts logical distance along the order key.
	FrameRange
)

// String implements fmt.Stringer interface.
func (u FrameUnit) String() string {
	if u == FrameRange {
		return "RANGE"
	}
	return "ROWS"
}

func unitOf(isRange bool) FrameUnit {
	if isRange {
		return FrameRange
	}
	return FrameRows
}

// FormatFrame renders a frame as `ROWS|RANGE <bound>` or
// `ROWS|RANGE BETWEEN <from> AND <to>`, or returns "" when neither end has a
// textual form. The expressions must be present for expression boundaries.
//
// A start of UNBOUNDED PRECEDING with an end of RANGE CURRENT ROW is the
// implicit frame and renders as nothing. When the end is an expression
// boundary its own suffix is ignored: the unit is RANGE only if the start is
// the RANGE form of the same PRECEDING or FOLLOWING boundary.
func FormatFrame(start, end FrameBoundary, startExpr, endExpr expression.Expression) string {
	unit := FrameRows
	var from string
	switch start {
	case CurrentRowRows, CurrentRowRange:
		from = "CURRENT ROW"
		unit = unitOf(start == CurrentRowRange)
	case UnboundedPreceding:
		if end != CurrentRowRange {
			from = "UNBOUNDED PRECEDING"
		}
	case ExprPrecedingRows, ExprPrecedingRange:
		from = startExpr.String() + " PRECEDING"
		unit = unitOf(start == ExprPrecedingRange)
	case ExprFollowingRows, ExprFollowingRange:
		from = startExpr.String() + " FOLLOWING"
		unit = unitOf(start == ExprFollowingRange)
	}

	var to string
	switch end {
	case CurrentRowRange:
		if start != UnboundedPreceding {
			to = "CURRENT ROW"
			unit = FrameRange
		}
	case CurrentRowRows:
		to = "CURRENT ROW"
		unit = FrameRows
	case UnboundedPreceding:
		to = "UNBOUNDED PRECEDING"
	case ExprPrecedingRows, ExprPrecedingRange:
		to = endExpr.String() + " PRECEDING"
		unit = unitOf(start == ExprPrecedingRange)
	case ExprFollowingRows, ExprFollowingRange:
		to = endExpr.String() + " FOLLOWING"
		unit = unitOf(start == ExprFollowingRange)
	}

	switch {
	case from != "" && to != "":
		return unit.String() + " BETWEEN " + from + " AND " + to
	case from != "":
		return unit.String() + " " + from
	case to != "":
		return unit.String() + " " + to
	}
	return ""
}
