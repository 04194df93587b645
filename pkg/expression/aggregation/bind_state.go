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
	"slices"
)

// BindState is the function-specific data computed once at bind time and
// reused at evaluation time. The variant set is closed: only the types in
// this file implement it, and CloneBindState must know every one of them.
type BindState interface {
	fmt.Stringer
	bindState()
}

// AggregateBindState is bound for aggregates with extra arguments, such as
// the separator of GROUP_CONCAT or the fractions of a quantile function.
type AggregateBindState struct {
	Separator string
	Quantiles []float64
}

// PositionalBindState is bound for LEAD and LAG.
type PositionalBindState struct {
	// DefaultOffset is used when the call has no offset expression.
	DefaultOffset int64
}

// RankingBindState is bound for NTILE and NTH_VALUE.
type RankingBindState struct {
	// N is the bucket count of NTILE or the row number of NTH_VALUE.
	N int64
}

func (*AggregateBindState) bindState()  {}
func (*PositionalBindState) bindState() {}
func (*RankingBindState) bindState()    {}

// String implements fmt.Stringer interface.
func (s *AggregateBindState) String() string {
	return fmt.Sprintf("aggregate{separator:%q, quantiles:%v}", s.Separator, s.Quantiles)
}

// String implements fmt.Stringer interface.
func (s *PositionalBindState) String() string {
	return fmt.Sprintf("positional{offset:%d}", s.DefaultOffset)
}

// String implements fmt.Stringer interface.
func (s *RankingBindState) String() string {
	return fmt.Sprintf("ranking{n:%d}", s.N)
}

// CloneBindState deeply clones a bind state, keeping its concrete variant.
// An absent state clones to nil, and a nil pointer of a known variant clones
// to a nil pointer of the same variant.
func CloneBindState(state BindState) (BindState, error) {
	switch s := state.(type) {
	case nil:
		return nil, nil
	case *AggregateBindState:
		if s == nil {
			return s, nil
		}
		return &AggregateBindState{Separator: s.Separator, Quantiles: slices.Clone(s.Quantiles)}, nil
	case *PositionalBindState:
		if s == nil {
			return s, nil
		}
		clone := *s
		return &clone, nil
	case *RankingBindState:
		if s == nil {
			return s, nil
		}
		clone := *s
		return &clone, nil
	}
	return nil, ErrMissingBindStateClone.GenWithStackByArgs(fmt.Sprintf("%T", state))
}

// BindStateEquals compares two bind states by content.
func BindStateEquals(a, b BindState) bool {
	switch x := a.(type) {
	case nil:
		return b == nil
	case *AggregateBindState:
		y, ok := b.(*AggregateBindState)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		return x.Separator == y.Separator && slices.Equal(x.Quantiles, y.Quantiles)
	case *PositionalBindState:
		y, ok := b.(*PositionalBindState)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		return *x == *y
	case *RankingBindState:
		y, ok := b.(*RankingBindState)
		if !ok || x == nil || y == nil {
			return ok && x == y
		}
		return *x == *y
	}
	return false
}
