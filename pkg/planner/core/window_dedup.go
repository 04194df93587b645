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

	"github.com/pingcap/windowexpr/pkg/expression/aggregation"
	"github.com/pingcap/windowexpr/pkg/metrics"
	"github.com/pingcap/windowexpr/pkg/planner/cascades/base"
	"github.com/pingcap/windowexpr/pkg/util/logutil"
	"go.uber.org/zap"
)

// WindowDeduplicator keeps one representative of every set of structurally
// equal window functions, so that a window function written twice in a
// query is evaluated once.
type WindowDeduplicator struct {
	hasher  base.Hasher
	buckets map[uint64][]int
	windows []*aggregation.BoundWindow
}

// NewWindowDeduplicator creates an empty WindowDeduplicator.
func NewWindowDeduplicator() *WindowDeduplicator {
	return &WindowDeduplicator{
		hasher:  base.NewHashEqualer(),
		buckets: make(map[uint64][]int),
	}
}

// Insert adds w and returns its position among the unique window functions.
// dup reports whether an equal window function was inserted before, in
// which case w itself is not kept.
func (d *WindowDeduplicator) Insert(ctx context.Context, w *aggregation.BoundWindow) (offset int, dup bool) {
	d.hasher.Reset()
	w.Hash64(d.hasher)
	key := d.hasher.Sum64()
	for _, idx := range d.buckets[key] {
		if d.windows[idx].Equals(w) {
			metrics.WindowDedupCounter.WithLabelValues(metrics.LblHit).Inc()
			logutil.Logger(ctx).Debug("window function deduplicated",
				zap.Stringer("window", w), zap.Int("offset", idx),
				zap.Bool("same-bind-state", aggregation.BindStateEquals(d.windows[idx].BindState, w.BindState)))
			return idx, true
		}
	}
	metrics.WindowDedupCounter.WithLabelValues(metrics.LblMiss).Inc()
	offset = len(d.windows)
	d.windows = append(d.windows, w)
	d.buckets[key] = append(d.buckets[key], offset)
	return offset, false
}

// Windows returns the unique window functions in insertion order.
func (d *WindowDeduplicator) Windows() []*aggregation.BoundWindow {
	return d.windows
}

// Len returns the number of unique window functions.
func (d *WindowDeduplicator) Len() int {
	return len(d.windows)
}

// DedupWindows removes structurally equal window functions. offsets[i] is the
// position of windows[i] in unique.
func DedupWindows(ctx context.Context, windows []*aggregation.BoundWindow) (unique []*aggregation.BoundWindow, offsets []int) {
	d := NewWindowDeduplicator()
	offsets = make([]int, 0, len(windows))
	for _, w := range windows {
		offset, _ := d.Insert(ctx, w)
		offsets = append(offsets, offset)
	}
	return d.Windows(), offsets
}
