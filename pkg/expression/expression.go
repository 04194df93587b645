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

package expression

import (
	"fmt"
	"strings"

	"github.com/pingcap/windowexpr/pkg/planner/cascades/base"
	"github.com/pingcap/windowexpr/pkg/types"
)

// Expression represents all bound scalar expression in the planner.
type Expression interface {
	fmt.Stringer
	base.HashEquals

	// Clone deeply clones an expression. The result shares no mutable
	// sub-structure with the receiver.
	Clone() Expression

	// GetType gets the type that the expression returns.
	GetType() *types.FieldType
}

// ExprEqual checks two optional expressions. Two absent expressions are
// equal, an absent and a present one are not.
func ExprEqual(a, b Expression) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return a.Equals(b)
}

// ExpressionsEqual checks two expression lists position by position.
func ExpressionsEqual(a, b []Expression) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !ExprEqual(a[i], b[i]) {
			return false
		}
	}
	return true
}

// CloneOrNil clones expr, or returns nil if expr is absent.
func CloneOrNil(expr Expression) Expression {
	if expr == nil {
		return nil
	}
	return expr.Clone()
}

// CloneExprs clones a list of expressions, keeping order and absent slots.
func CloneExprs(exprs []Expression) []Expression {
	if exprs == nil {
		return nil
	}
	cloned := make([]Expression, 0, len(exprs))
	for _, e := range exprs {
		cloned = append(cloned, CloneOrNil(e))
	}
	return cloned
}

// HashOptional writes the hash of an optional expression into h.
func HashOptional(h base.Hasher, expr Expression) {
	if expr == nil {
		h.HashByte(base.NilFlag)
		return
	}
	h.HashByte(base.NotNilFlag)
	expr.Hash64(h)
}

// HashExprs writes the hash of an expression list into h.
func HashExprs(h base.Hasher, exprs []Expression) {
	h.HashInt(len(exprs))
	for _, e := range exprs {
		HashOptional(h, e)
	}
}

// ExplainExpressionList joins the display names of exprs with ", ".
func ExplainExpressionList(exprs []Expression) string {
	var builder strings.Builder
	for i, e := range exprs {
		if i > 0 {
			builder.WriteString(", ")
		}
		builder.WriteString(e.String())
	}
	return builder.String()
}
