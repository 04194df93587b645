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
	"github.com/pingcap/windowexpr/pkg/planner/cascades/base"
	"github.com/pingcap/windowexpr/pkg/planner/property"
	"github.com/pingcap/windowexpr/pkg/types"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func intType() *types.FieldType {
	return types.NewFieldType(types.TypeLonglong)
}

func newCol(id int64, name string) *expression.Column {
	return expression.NewColumn(id, name, intType())
}

func newHasher() base.Hasher {
	return base.NewHashEqualer()
}

func hashOf(e base.Hash64) uint64 {
	h := base.NewHashEqualer()
	e.Hash64(h)
	return h.Sum64()
}

// newSumWindow builds `sum(x) OVER(PARTITION BY p1, p2 ORDER BY o ASC)`.
func newSumWindow() *BoundWindow {
	w := NewBoundWindow(WindowAggregate, intType(), NewAggFuncDesc("SUM", intType(), false), nil)
	w.Args = []expression.Expression{newCol(1, "x")}
	w.PartitionBy = []expression.Expression{newCol(2, "p1"), newCol(3, "p2")}
	w.OrderBy = []property.OrderingKey{property.NewOrderingKey(newCol(4, "o"), property.Ascending, property.NullsUnspecified)}
	return w
}
