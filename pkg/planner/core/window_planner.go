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

	"github.com/pingcap/errors"
	"github.com/pingcap/windowexpr/pkg/config"
	"github.com/pingcap/windowexpr/pkg/expression"
	"github.com/pingcap/windowexpr/pkg/expression/aggregation"
	"github.com/pingcap/windowexpr/pkg/util/logutil"
	"go.uber.org/zap"
)

// WindowPlan is the result of planning the window functions of one query
// block.
type WindowPlan struct {
	// Windows are the window functions that are evaluated.
	Windows []*aggregation.BoundWindow
	// Offsets[i] is the position in Windows of the i-th input window function.
	Offsets []int
	// Groups are the window operators, each evaluating a subset of Windows.
	Groups []*WindowGroup
	// Columns are the input columns read by Windows.
	Columns []*expression.Column
}

// PlanWindows validates the bound window functions, removes duplicates and
// groups the rest into window operators, as enabled by the planner config.
func PlanWindows(ctx context.Context, windows []*aggregation.BoundWindow) (*WindowPlan, error) {
	ctx = logutil.WithCategory(ctx, "planner")
	for _, w := range windows {
		if err := w.Validate(); err != nil {
			return nil, errors.Trace(err)
		}
	}
	cfg := config.GetGlobalConfig().Planner
	plan := &WindowPlan{}
	if cfg.EnableWindowDedup {
		plan.Windows, plan.Offsets = DedupWindows(ctx, windows)
	} else {
		plan.Windows = windows
		plan.Offsets = make([]int, 0, len(windows))
		for i := range windows {
			plan.Offsets = append(plan.Offsets, i)
		}
	}
	if cfg.EnableWindowKeyGrouping {
		plan.Groups = GroupWindowsByKeys(ctx, plan.Windows)
	} else {
		plan.Groups = make([]*WindowGroup, 0, len(plan.Windows))
		for i, w := range plan.Windows {
			plan.Groups = append(plan.Groups, &WindowGroup{
				PartitionBy: w.PartitionBy,
				OrderBy:     w.OrderBy,
				Windows:     []*aggregation.BoundWindow{w},
				Offsets:     []int{i},
			})
		}
	}
	plan.Columns = ExtractWindowColumns(plan.Windows)
	logutil.Logger(ctx).Debug("window functions planned",
		zap.Int("input", len(windows)),
		zap.Int("unique", len(plan.Windows)),
		zap.Int("operators", len(plan.Groups)),
		zap.Int("columns", len(plan.Columns)))
	return plan, nil
}

// String implements fmt.Stringer interface.
func (p *WindowPlan) String() string {
	return ExplainWindowGroups(p.Groups, config.GetGlobalConfig().Planner.MaxRenderWidth)
}
