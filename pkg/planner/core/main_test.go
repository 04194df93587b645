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
	"testing"

	"github.com/pingcap/windowexpr/pkg/expression"
	"github.com/pingcap/windowexpr/pkg/expression/aggregation"
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

func orderBy(col *expression.Column, dir property.SortDirection) []property.OrderingKey {
	return []property.OrderingKey{property.NewOrderingKey(col, dir, property.NullsUnspecified)}
}

// newAggWindow builds `name(arg) OVER(PARTITION BY part ORDER BY order ASC)`.
func newAggWindow(name string, arg expression.Expression, part, order *expression.Column) *aggregation.BoundWindow {
	w := aggregation.NewBoundWindow(aggregation.WindowAggregate, intType(), aggregation.NewAggFuncDesc(name, intType(), false), nil)
	w.Args = []expression.Expression{arg}
	w.PartitionBy = []expression.Expression{part}
	w.OrderBy = orderBy(order, property.Ascending)
	return w
}

func newRankWindow(part, order *expression.Column) *aggregation.BoundWindow {
	w := aggregation.NewBoundWindow(aggregation.WindowRank, intType(), nil, nil)
	w.PartitionBy = []expression.Expression{part}
	w.OrderBy = orderBy(order, property.Ascending)
	return w
}
