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
	"testing"

	"github.com/pingcap/windowexpr/pkg/expression"
	"github.com/stretchr/testify/require"
)

func TestFormatFrame(t *testing.T) {
	three, five := expression.NewInt64Const(3), expression.NewInt64Const(5)
	tests := []struct {
		start, end         FrameBoundary
		startExpr, endExpr expression.Expression
		want               string
	}{
		// the implicit frame is not rendered.
		{UnboundedPreceding, CurrentRowRange, nil, nil, ""},
		{UnboundedPreceding, CurrentRowRows, nil, nil, "ROWS BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW"},
		{UnboundedPreceding, UnboundedFollowing, nil, nil, "ROWS UNBOUNDED PRECEDING"},
		{CurrentRowRange, CurrentRowRange, nil, nil, "RANGE BETWEEN CURRENT ROW AND CURRENT ROW"},
		{CurrentRowRange, UnboundedFollowing, nil, nil, "RANGE CURRENT ROW"},
		{CurrentRowRows, UnboundedFollowing, nil, nil, "ROWS CURRENT ROW"},
		{CurrentRowRange, CurrentRowRows, nil, nil, "ROWS BETWEEN CURRENT ROW AND CURRENT ROW"},
		{ExprPrecedingRows, CurrentRowRows, three, nil, "ROWS BETWEEN 3 PRECEDING AND CURRENT ROW"},
		{ExprPrecedingRange, CurrentRowRange, three, nil, "RANGE BETWEEN 3 PRECEDING AND CURRENT ROW"},
		{ExprPrecedingRange, ExprPrecedingRows, five, three, "RANGE BETWEEN 5 PRECEDING AND 3 PRECEDING"},
		{ExprFollowingRange, ExprFollowingRange, three, five, "RANGE BETWEEN 3 FOLLOWING AND 5 FOLLOWING"},
		// the end's suffix is ignored, and the start only counts when it is
		// the same kind of expression boundary.
		{ExprPrecedingRange, ExprFollowingRange, three, five, "ROWS BETWEEN 3 PRECEDING AND 5 FOLLOWING"},
		{CurrentRowRange, ExprFollowingRange, nil, five, "ROWS BETWEEN CURRENT ROW AND 5 FOLLOWING"},
		{ExprPrecedingRows, UnboundedFollowing, three, nil, "ROWS 3 PRECEDING"},
		{UnboundedFollowing, UnboundedPreceding, nil, nil, "ROWS UNBOUNDED PRECEDING"},
		{UnboundedFollowing, UnboundedFollowing, nil, nil, ""},
		{BoundaryInvalid, BoundaryInvalid, nil, nil, ""},
	}
	for _, tt := range tests {
		got := FormatFrame(tt.start, tt.end, tt.startExpr, tt.endExpr)
		require.Equal(t, tt.want, got, "start: %s, end: %s", tt.start, tt.end)
	}
}

func TestFrameBoundary(t *testing.T) {
	for b := UnboundedPreceding; b <= ExprFollowingRange; b++ {
		parsed, err := ParseFrameBoundary(b.String())
		require.NoError(t, err)
		require.Equal(t, b, parsed)
	}
	b, err := ParseFrameBoundary("current_row_range")
	require.NoError(t, err)
	require.Equal(t, CurrentRowRange, b)

	for _, name := range []string{"INVALID", "CURRENT ROW", ""} {
		_, err = ParseFrameBoundary(name)
		require.True(t, ErrUnknownFrameBoundary.Equal(err), name)
	}
	require.Equal(t, "UNKNOWN", FrameBoundary(100).String())

	require.True(t, ExprFollowingRows.HasExpr())
	require.False(t, CurrentRowRows.HasExpr())
	require.False(t, UnboundedPreceding.HasExpr())
	require.Equal(t, "ROWS", FrameRows.String())
	require.Equal(t, "RANGE", FrameRange.String())
}
