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
	"fmt"
	"strings"

	"github.com/pingcap/errors"
	"github.com/pingcap/windowexpr/pkg/expression"
	"github.com/pingcap/windowexpr/pkg/planner/cascades/base"
	"github.com/pingcap/windowexpr/pkg/planner/property"
	"github.com/pingcap/windowexpr/pkg/statistics"
	"github.com/pingcap/windowexpr/pkg/types"
)

var _ expression.Expression = &BoundWindow{}

// BoundWindow is a window function after binding: names are resolved to
// columns, the function is resolved to its implementation and every
// expression is typed. It is fully populated by the binder and is not
// modified afterwards; rewrites work on a Copy.
type BoundWindow struct {
	Kind    WindowKind
	RetType *types.FieldType
	// Function is set for aggregates evaluated over a window and nil for
	// the intrinsic window functions.
	Function  *AggFuncDesc
	BindState BindState

	Args        []expression.Expression
	PartitionBy []expression.Expression
	// PartitionStats is nil or aligned with PartitionBy; a slot may be nil.
	PartitionStats []*statistics.ColumnStats
	OrderBy        []property.OrderingKey

	Start     FrameBoundary
	End       FrameBoundary
	StartExpr expression.Expression
	EndExpr   expression.Expression

	// OffsetExpr and DefaultExpr are only used by LEAD and LAG.
	OffsetExpr  expression.Expression
	DefaultExpr expression.Expression
	IgnoreNulls bool
}

// NewBoundWindow creates a window function with the default frame,
// RANGE BETWEEN UNBOUNDED PRECEDING AND CURRENT ROW.
func NewBoundWindow(kind WindowKind, retType *types.FieldType, function *AggFuncDesc, state BindState) *BoundWindow {
	return &BoundWindow{
		Kind:      kind,
		RetType:   retType,
		Function:  function,
		BindState: state,
		Start:     UnboundedPreceding,
		End:       CurrentRowRange,
	}
}

// exprSlots lists the optional child expressions. Equals, Hash64 and Copy
// all walk it, so a new optional child only needs to be added here.
func (w *BoundWindow) exprSlots() [4]*expression.Expression {
	return [4]*expression.Expression{&w.StartExpr, &w.EndExpr, &w.OffsetExpr, &w.DefaultExpr}
}

// exprLists lists the child expression lists compared position by position.
func (w *BoundWindow) exprLists() [2]*[]expression.Expression {
	return [2]*[]expression.Expression{&w.Args, &w.PartitionBy}
}

// ForEachExpr calls f on every child expression of w: arguments, partition
// keys, ordering keys, then the optional frame, offset and default
// expressions that are present.
func (w *BoundWindow) ForEachExpr(f func(expr expression.Expression)) {
	w.TransformExprs(func(expr expression.Expression) expression.Expression {
		f(expr)
		return expr
	})
}

// TransformExprs replaces every child expression of w with the result of f,
// in the order of ForEachExpr. It modifies w in place, so it must only be
// called on a node owned by the caller, such as the result of Copy.
func (w *BoundWindow) TransformExprs(f func(expr expression.Expression) expression.Expression) {
	for _, list := range w.exprLists() {
		for i, e := range *list {
			(*list)[i] = f(e)
		}
	}
	for i := range w.OrderBy {
		w.OrderBy[i].Expr = f(w.OrderBy[i].Expr)
	}
	for _, slot := range w.exprSlots() {
		if *slot != nil {
			*slot = f(*slot)
		}
	}
}

// FuncName returns the registered name of the function, or the display
// name of the kind when there is no function descriptor.
func (w *BoundWindow) FuncName() string {
	if w.Function != nil {
		return w.Function.Name
	}
	return w.Kind.String()
}

// GetType implements Expression interface.
func (w *BoundWindow) GetType() *types.FieldType {
	return w.RetType
}

// String implements fmt.Stringer interface.
func (w *BoundWindow) String() string {
	var buffer strings.Builder
	buffer.WriteString(w.FuncName())
	buffer.WriteString("(")
	buffer.WriteString(expression.ExplainExpressionList(w.Args))
	for _, extra := range []expression.Expression{w.OffsetExpr, w.DefaultExpr} {
		if extra != nil {
			buffer.WriteString(", ")
			buffer.WriteString(extra.String())
		}
	}
	if w.IgnoreNulls {
		buffer.WriteString(" IGNORE NULLS")
	}
	buffer.WriteString(") OVER(")

	sections := make([]string, 0, 3)
	if len(w.PartitionBy) > 0 {
		sections = append(sections, "PARTITION BY "+expression.ExplainExpressionList(w.PartitionBy))
	}
	if len(w.OrderBy) > 0 {
		sections = append(sections, "ORDER BY "+property.ExplainOrderingKeys(w.OrderBy))
	}
	if frame := FormatFrame(w.Start, w.End, w.StartExpr, w.EndExpr); frame != "" {
		sections = append(sections, frame)
	}
	buffer.WriteString(strings.Join(sections, " "))
	buffer.WriteString(")")
	return buffer.String()
}

// Equals implements HashEquals.<1st> interface. Partition statistics and the
// bind state are not part of the identity of a window function.
func (w *BoundWindow) Equals(other any) bool {
	w2, ok := other.(*BoundWindow)
	if !ok {
		return false
	}
	if w == nil || w2 == nil {
		return w == w2
	}
	if w.Kind != w2.Kind || !w.RetType.Equals(w2.RetType) || !w.Function.Equals(w2.Function) {
		return false
	}
	if w.IgnoreNulls != w2.IgnoreNulls || w.Start != w2.Start || w.End != w2.End {
		return false
	}
	if !expression.ExpressionsEqual(w.Args, w2.Args) {
		return false
	}
	slots, slots2 := w.exprSlots(), w2.exprSlots()
	for i := range slots {
		if !expression.ExprEqual(*slots[i], *slots2[i]) {
			return false
		}
	}
	return w.KeysAreCompatible(w2)
}

// KeysAreCompatible checks whether two window functions partition and order
// their input the same way, so they can be evaluated by one window operator.
// Partition keys are compared by position, and the null order of an ordering
// key is ignored.
func (w *BoundWindow) KeysAreCompatible(other *BoundWindow) bool {
	if !expression.ExpressionsEqual(w.PartitionBy, other.PartitionBy) {
		return false
	}
	if len(w.OrderBy) != len(other.OrderBy) {
		return false
	}
	for i := range w.OrderBy {
		if !w.OrderBy[i].Equals(other.OrderBy[i]) {
			return false
		}
	}
	return true
}

// Hash64 implements HashEquals.<0th> interface. It hashes exactly what
// Equals compares.
func (w *BoundWindow) Hash64(h base.Hasher) {
	h.HashByte(byte(w.Kind))
	w.RetType.Hash64(h)
	w.Function.Hash64(h)
	h.HashBool(w.IgnoreNulls)
	h.HashByte(byte(w.Start))
	h.HashByte(byte(w.End))
	for _, list := range w.exprLists() {
		expression.HashExprs(h, *list)
	}
	for _, slot := range w.exprSlots() {
		expression.HashOptional(h, *slot)
	}
	h.HashInt(len(w.OrderBy))
	for _, key := range w.OrderBy {
		key.Hash64(h)
	}
}

// HashKeys hashes only the partition and ordering keys, consistent with
// KeysAreCompatible.
func (w *BoundWindow) HashKeys(h base.Hasher) {
	expression.HashExprs(h, w.PartitionBy)
	h.HashInt(len(w.OrderBy))
	for _, key := range w.OrderBy {
		key.Hash64(h)
	}
}

// Copy deeply copies the window function. The copy shares nothing mutable
// with w. It fails only when the bind state cannot be cloned, in which case
// no partial copy is returned.
func (w *BoundWindow) Copy() (*BoundWindow, error) {
	state, err := CloneBindState(w.BindState)
	if err != nil {
		return nil, errors.Trace(err)
	}
	cloned := &BoundWindow{
		Kind:           w.Kind,
		RetType:        w.RetType.Clone(),
		BindState:      state,
		PartitionStats: statistics.CopyColumnStats(w.PartitionStats),
		Start:          w.Start,
		End:            w.End,
		IgnoreNulls:    w.IgnoreNulls,
	}
	if w.Function != nil {
		cloned.Function = w.Function.Clone()
	}
	lists, clonedLists := w.exprLists(), cloned.exprLists()
	for i := range lists {
		*clonedLists[i] = expression.CloneExprs(*lists[i])
	}
	slots, clonedSlots := w.exprSlots(), cloned.exprSlots()
	for i := range slots {
		*clonedSlots[i] = expression.CloneOrNil(*slots[i])
	}
	if w.OrderBy != nil {
		cloned.OrderBy = make([]property.OrderingKey, 0, len(w.OrderBy))
		for _, key := range w.OrderBy {
			cloned.OrderBy = append(cloned.OrderBy, key.Clone())
		}
	}
	return cloned, nil
}

// Clone implements Expression interface. It panics if the bind state cannot
// be cloned; callers that can handle the failure use Copy.
func (w *BoundWindow) Clone() expression.Expression {
	cloned, err := w.Copy()
	if err != nil {
		panic(err)
	}
	return cloned
}

// Validate checks the structural invariants the binder must establish.
func (w *BoundWindow) Validate() error {
	invalid := func(format string, args ...any) error {
		return ErrInvalidWindowNode.GenWithStackByArgs(w.FuncName(), fmt.Sprintf(format, args...))
	}
	if w.RetType == nil {
		return invalid("missing result type")
	}
	if w.Kind == WindowAggregate && w.Function == nil {
		return invalid("aggregate window function without descriptor")
	}
	if w.Start == BoundaryInvalid || w.End == BoundaryInvalid {
		return invalid("frame boundary is not set")
	}
	if w.Start.HasExpr() != (w.StartExpr != nil) {
		return invalid("frame start %s does not match its expression", w.Start)
	}
	if w.End.HasExpr() != (w.EndExpr != nil) {
		return invalid("frame end %s does not match its expression", w.End)
	}
	if w.PartitionStats != nil && len(w.PartitionStats) != len(w.PartitionBy) {
		return invalid("%d partition statistics for %d partition keys", len(w.PartitionStats), len(w.PartitionBy))
	}
	if !w.Kind.IsPositional() && (w.OffsetExpr != nil || w.DefaultExpr != nil) {
		return invalid("offset or default on a non-positional function")
	}
	var stateFits bool
	switch w.BindState.(type) {
	case nil:
		stateFits = true
	case *AggregateBindState:
		stateFits = w.Kind == WindowAggregate
	case *PositionalBindState:
		stateFits = w.Kind.IsPositional()
	case *RankingBindState:
		stateFits = w.Kind.IsRanking() || w.Kind == WindowNthValue
	}
	if !stateFits {
		return invalid("bind state %T does not fit the function", w.BindState)
	}
	for _, list := range w.exprLists() {
		for i, e := range *list {
			if e == nil {
				return invalid("nil expression at position %d", i)
			}
		}
	}
	for i, key := range w.OrderBy {
		if key.Expr == nil {
			return invalid("nil ordering key at position %d", i)
		}
	}
	return nil
}
