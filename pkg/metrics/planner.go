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

package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
)

// Window planner metrics.
var (
	WindowDedupCounter       *prometheus.CounterVec
	WindowCopyCounter        *prometheus.CounterVec
	WindowGroupCounter       prometheus.Counter
	WindowGroupSizeHistogram prometheus.Histogram
)

// InitWindowMetrics initializes window planner metrics.
func InitWindowMetrics() {
	WindowDedupCounter = NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tidb",
			Subsystem: "planner",
			Name:      "window_dedup_total",
			Help:      "Counter of window functions checked for deduplication.",
		}, []string{LblType})

	WindowCopyCounter = NewCounterVec(
		prometheus.CounterOpts{
			Namespace: "tidb",
			Subsystem: "planner",
			Name:      "window_copy_total",
			Help:      "Counter of window function deep copies.",
		}, []string{LblResult})

	WindowGroupCounter = NewCounter(
		prometheus.CounterOpts{
			Namespace: "tidb",
			Subsystem: "planner",
			Name:      "window_group_total",
			Help:      "Counter of window operators built from groups of compatible window functions.",
		})

	WindowGroupSizeHistogram = NewHistogram(
		prometheus.HistogramOpts{
			Namespace: "tidb",
			Subsystem: "planner",
			Name:      "window_group_size",
			Help:      "Bucketed histogram of the number of window functions sharing one window operator.",
			Buckets:   prometheus.ExponentialBuckets(1, 2, 8), // 1 ~ 128
		})
}
