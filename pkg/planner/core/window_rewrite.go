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
	"github.com/pingcap/windowexpr/pkg/expression"
	"github.com/pingcap/windowexpr/pkg/expression/aggregation"
	"github.com/pingcap/windowexpr/pkg/metrics"
	"github.com/pingcap/windowexpr/pkg/util/logutil"
	"go.uber.org/zap"
)

// SubstituteWindowColumns returns a copy of w in which every column found in
// newExprs, keyed by unique id, is replaced. w is not modified.
func SubstituteWindowColumns(ctx context.Context, w *aggregation.BoundWindow, newExprs map[int64]expression.Expression) (*aggregation.BoundWindow, error) {
	cloned, err := w.Copy()
	if err != nil {
		metrics.WindowCopyCounter.WithLabelValues(metrics.LblError).Inc()
		logutil.Logger(ctx).Warn("copy window function failed", zap.Stringer("window", w), zap.Error(err))
		return nil, errors.Trace(err)
	}
	metrics.WindowCopyCounter.WithLabelValues(metrics.LblOK).Inc()
	cloned.TransformExprs(func(expr expression.Expression) expression.Expression {
		return expression.ColumnSubstitute(expr, newExprs)
	})
	return cloned, nil
}

// ExtractWindowColumns returns the columns the window functions read, each
// column once, in the order they are first referenced.
func ExtractWindowColumns(windows []*aggregation.BoundWindow) []*expression.Column {
	var cols []*expression.Column
	seen := make(map[int64]struct{})
	for _, w := range windows {
		w.ForEachExpr(func(expr expression.Expression) {
			for _, col := range expression.ExtractColumns(expr) {
				if _, ok := seen[col.UniqueID]; ok {
					continue
				}
				seen[col.UniqueID] = struct{}{}
				cols = append(cols, col)
			}
		})
	}
	return cols
}
