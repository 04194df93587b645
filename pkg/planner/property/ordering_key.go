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
	"strings"

	"github.com/pingcap/windowexpr/pkg/expression"
	"github.com/pingcap/windowexpr/pkg/planner/cascades/base"
)

// SortDirection is the direction of an ordering key.
type SortDirection byte

const (
	// Ascending sorts from small to large.
	Ascending SortDirection = iota
	// Descending sorts from large to small.
	Descending
)

// String implements fmt.Stringer interface.
func (d SortDirection) String() string {
	if d == Descending {
		return "DESC"
	}
	return "ASC"
}

// NullOrder says where NULLs are placed by an ordering key.
type NullOrder byte

const (
	// NullsUnspecified leaves the placement to the engine default.
	NullsUnspecified NullOrder = iota
	// NullsFirst places NULLs before all values.
	NullsFirst
	// NullsLast places NULLs after all values.
	NullsLast
)

// String implements fmt.Stringer interface.
func (n NullOrder) String() string {
	switch n {
	case NullsFirst:
		return "NULLS FIRST"
	case NullsLast:
		return "NULLS LAST"
	}
	return ""
}

// OrderingKey pairs a sort expression with its direction and null ordering.
// It is immutable once constructed.
type OrderingKey struct {
	Expr      expression.Expression
	Direction SortDirection
	NullOrder NullOrder
}

// NewOrderingKey creates an OrderingKey.
func NewOrderingKey(expr expression.Expression, direction SortDirection, nullOrder NullOrder) OrderingKey {
	return OrderingKey{Expr: expr, Direction: direction, NullOrder: nullOrder}
}

// String renders the key as `<expr> ASC|DESC[ NULLS FIRST|NULLS LAST]`.
func (k OrderingKey) String() string {
	var sb strings.Builder
	sb.WriteString(k.Expr.String())
	sb.WriteString(" ")
	sb.WriteString(k.Direction.String())
	if nulls := k.NullOrder.String(); nulls != "" {
		sb.WriteString(" ")
		sb.WriteString(nulls)
	}
	return sb.String()
}

// Clone clones the expression and copies direction and null order.
func (k OrderingKey) Clone() OrderingKey {
	return OrderingKey{
		Expr:      k.Expr.Clone(),
		Direction: k.Direction,
		NullOrder: k.NullOrder,
	}
}

// Equals compares direction and expression. NullOrder is not compared.
func (k OrderingKey) Equals(other OrderingKey) bool {
	if k.Direction != other.Direction {
		return false
	}
	return expression.ExprEqual(k.Expr, other.Expr)
}

// Hash64 hashes the fields compared by Equals.
func (k OrderingKey) Hash64(h base.Hasher) {
	h.HashByte(byte(k.Direction))
	expression.HashOptional(h, k.Expr)
}

// ExplainOrderingKeys joins the rendered keys with ", ".
func ExplainOrderingKeys(keys []OrderingKey) string {
	strs := make([]string, 0, len(keys))
	for _, k := range keys {
		strs = append(strs, k.String())
	}
	return strings.Join(strs, ", ")
}
