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

package property

import (
	"testing"

	"github.com/pingcap/windowexpr/pkg/expression"
	"github.com/pingcap/windowexpr/pkg/planner/cascades/base"
	"github.com/pingcap/windowexpr/pkg/types"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestOrderingKeyString(t *testing.T) {
	col := expression.NewColumn(1, "col", types.NewFieldType(types.TypeLonglong))
	tests := []struct {
		key  OrderingKey
		want string
	}{
		{NewOrderingKey(col, Ascending, NullsUnspecified), "col ASC"},
		{NewOrderingKey(col, Descending, NullsLast), "col DESC NULLS LAST"},
		{NewOrderingKey(col, Ascending, NullsFirst), "col ASC NULLS FIRST"},
	}
	for _, tt := range tests {
		require.Equal(t, tt.want, tt.key.String())
	}
	require.Equal(t, "col ASC, col DESC NULLS LAST",
		ExplainOrderingKeys([]OrderingKey{tests[0].key, tests[1].key}))
	require.Equal(t, "", ExplainOrderingKeys(nil))
}

func TestOrderingKeyEqualsIgnoresNullOrder(t *testing.T) {
	col := expression.NewColumn(1, "col", types.NewFieldType(types.TypeLonglong))
	k1 := NewOrderingKey(col, Descending, NullsLast)
	k2 := NewOrderingKey(col.Clone(), Descending, NullsFirst)
	require.True(t, k1.Equals(k2))

	h1, h2 := base.NewHashEqualer(), base.NewHashEqualer()
	k1.Hash64(h1)
	k2.Hash64(h2)
	require.Equal(t, h1.Sum64(), h2.Sum64())

	require.False(t, k1.Equals(NewOrderingKey(col, Ascending, NullsLast)))
	other := expression.NewColumn(2, "col", types.NewFieldType(types.TypeLonglong))
	require.False(t, k1.Equals(NewOrderingKey(other, Descending, NullsLast)))
}

func TestOrderingKeyClone(t *testing.T) {
	col := expression.NewColumn(1, "col", types.NewFieldType(types.TypeLonglong))
	k := NewOrderingKey(col, Descending, NullsFirst)
	cloned := k.Clone()
	require.NotSame(t, k.Expr, cloned.Expr)
	require.Equal(t, k.Direction, cloned.Direction)
	require.Equal(t, k.NullOrder, cloned.NullOrder)
	require.True(t, k.Equals(cloned))
}
