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

// unclonableBindState is a variant CloneBindState does not know.
type unclonableBindState struct{}

func (*unclonableBindState) bindState()     {}
func (*unclonableBindState) String() string { return "unclonable" }

func TestCloneBindState(t *testing.T) {
	states := []BindState{
		&AggregateBindState{Separator: ",", Quantiles: []float64{0.5, 0.9}},
		&PositionalBindState{DefaultOffset: 1},
		&RankingBindState{N: 4},
	}
	for _, state := range states {
		cloned, err := CloneBindState(state)
		require.NoError(t, err)
		require.IsType(t, state, cloned)
		require.NotSame(t, state, cloned)
		require.True(t, BindStateEquals(state, cloned), state.String())
	}

	agg := states[0].(*AggregateBindState)
	cloned, err := CloneBindState(agg)
	require.NoError(t, err)
	cloned.(*AggregateBindState).Quantiles[0] = 0.1
	require.Equal(t, 0.5, agg.Quantiles[0])
	require.False(t, BindStateEquals(agg, cloned))

	cloned, err = CloneBindState(nil)
	require.NoError(t, err)
	require.Nil(t, cloned)

	_, err = CloneBindState(&unclonableBindState{})
	require.Error(t, err)
	require.True(t, ErrMissingBindStateClone.Equal(err))
	require.Contains(t, err.Error(), "unclonableBindState")
}

func TestBindStateEquals(t *testing.T) {
	require.True(t, BindStateEquals(nil, nil))
	require.False(t, BindStateEquals(nil, &RankingBindState{N: 1}))
	require.False(t, BindStateEquals(&RankingBindState{N: 1}, nil))
	require.False(t, BindStateEquals(&RankingBindState{N: 1}, &PositionalBindState{DefaultOffset: 1}))
	require.False(t, BindStateEquals(&RankingBindState{N: 1}, &RankingBindState{N: 2}))
	require.False(t, BindStateEquals(&unclonableBindState{}, &unclonableBindState{}))
}

func TestCloneNilBindStateVariant(t *testing.T) {
	states := []BindState{
		(*AggregateBindState)(nil),
		(*PositionalBindState)(nil),
		(*RankingBindState)(nil),
	}
	for _, state := range states {
		var cloned BindState
		require.NotPanics(t, func() {
			var err error
			cloned, err = CloneBindState(state)
			require.NoError(t, err)
		})
		require.IsType(t, state, cloned)
		require.True(t, BindStateEquals(state, cloned))
	}
	require.False(t, BindStateEquals((*RankingBindState)(nil), &RankingBindState{N: 1}))
	require.False(t, BindStateEquals(&RankingBindState{N: 1}, (*RankingBindState)(nil)))

	w := newSumWindow()
	w.BindState = (*AggregateBindState)(nil)
	cloned, err := w.Copy()
	require.NoError(t, err)
	require.True(t, w.Equals(cloned))
	require.IsType(t, (*AggregateBindState)(nil), cloned.BindState)
}
