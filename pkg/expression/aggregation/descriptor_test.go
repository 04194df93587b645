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

	"github.com/stretchr/testify/require"
)

func TestClone(t *testing.T) {
	desc := NewAggFuncDesc("FIRST_ROW", intType(), false)
	require.Equal(t, "first_row", desc.Name)
	cloned := desc.Clone()
	require.True(t, desc.Equals(cloned))
	require.NotSame(t, desc.RetTp, cloned.RetTp)
	require.Equal(t, hashOf(desc), hashOf(cloned))

	cloned.HasDistinct = true
	require.False(t, desc.HasDistinct)
	require.False(t, desc.Equals(cloned))

	var absent *AggFuncDesc
	require.True(t, absent.Equals(nil))
	require.False(t, absent.Equals(desc))
	require.False(t, desc.Equals(absent))
}

func TestWindowKind(t *testing.T) {
	for k := WindowAggregate; k <= WindowNthValue; k++ {
		parsed, err := ParseWindowKind(k.String())
		require.NoError(t, err)
		require.Equal(t, k, parsed)
	}
	kind, err := ParseWindowKind("row_number")
	require.NoError(t, err)
	require.Equal(t, WindowRowNumber, kind)

	_, err = ParseWindowKind("median")
	require.Error(t, err)
	require.True(t, ErrUnknownWindowKind.Equal(err))
	require.Equal(t, "UNKNOWN", WindowKind(200).String())

	require.True(t, WindowLag.IsPositional())
	require.False(t, WindowNtile.IsPositional())
	require.True(t, WindowNtile.IsRanking())
	require.False(t, WindowAggregate.IsRanking())
}
