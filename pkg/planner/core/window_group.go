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
	"context"

	"github.com/pingcap/windowexpr/pkg/expression"
	"github.com/pingcap/windowexpr/pkg/expression/aggregation"
	"github.com/pingcap/windowexpr/pkg/metrics"
	"github.com/pingcap/windowexpr/pkg/planner/cascades/base"
	"github.com/pingcap/windowexpr/pkg/planner/property"
	"github.com/pingcap/windowexpr/pkg/util/logutil"
	"go.uber.org/zap"
)

// WindowGroup is a set of window functions sharing partition and ordering
// keys. One window operator evaluates the whole group over a single sort of
// its input.
type WindowGroup struct {
	PartitionBy []expression.Expression
	OrderBy     []property.OrderingKey
	Windows     []*aggregation.BoundWindow
	// Offsets[i] is the position of Windows[i] in the grouped input.
	Offsets []int
}

// GroupWindowsByKeys groups window functions whose keys are compatible.
// Groups are returned in the order of their first window function, and the
// window functions keep their input order inside a group.
func GroupWindowsByKeys(ctx context.Context, windows []*aggregation.BoundWindow) []*WindowGroup {
	hasher := base.NewHashEqualer()
	buckets := make(map[uint64][]int)
	groups := make([]*WindowGroup, 0, len(windows))
	for offset, w := range windows {
		hasher.Reset()
		w.HashKeys(hasher)
		key := hasher.Sum64()
		var group *WindowGroup
		for _, idx := range buckets[key] {
			if groups[idx].Windows[0].KeysAreCompatible(w) {
				group = groups[idx]
				break
			}
		}
		if group == nil {
			group = &WindowGroup{PartitionBy: w.PartitionBy, OrderBy: w.OrderBy}
			buckets[key] = append(buckets[key], len(groups))
			groups = append(groups, group)
		}
		group.Windows = append(group.Windows, w)
		group.Offsets = append(group.Offsets, offset)
	}
	for _, group := range groups {
		metrics.WindowGroupCounter.Inc()
		metrics.WindowGroupSizeHistogram.Observe(float64(len(group.Windows)))
	}
	logutil.Logger(ctx).Debug("window functions grouped",
		zap.Int("windows", len(windows)), zap.Int("groups", len(groups)))
	return groups
}

// String implements fmt.Stringer interface.
func (g *WindowGroup) String() string {
	return explainWindowGroup(g, 0)
}
