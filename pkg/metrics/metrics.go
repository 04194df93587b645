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

// metrics labels.
const (
	LblType   = "type"
	LblResult = "result"

	LblHit   = "hit"
	LblMiss  = "miss"
	LblOK    = "ok"
	LblError = "error"
)

func init() {
	InitMetrics()
}

// InitMetrics is used to initialize metrics.
func InitMetrics() {
	InitWindowMetrics()
}

// NewCounter wraps a prometheus.NewCounter.
func NewCounter(opts prometheus.CounterOpts) prometheus.Counter {
	return prometheus.NewCounter(opts)
}

// NewCounterVec wraps a prometheus.NewCounterVec.
func NewCounterVec(opts prometheus.CounterOpts, labelNames []string) *prometheus.CounterVec {
	return prometheus.NewCounterVec(opts, labelNames)
}

// NewHistogram wraps a prometheus.NewHistogram.
func NewHistogram(opts prometheus.HistogramOpts) prometheus.Histogram {
	return prometheus.NewHistogram(opts)
}

// RegisterMetrics registers the metrics which are ONLY used in the window planner.
func RegisterMetrics(registry prometheus.Registerer) error {
	for _, c := range []prometheus.Collector{
		WindowDedupCounter,
		WindowCopyCounter,
		WindowGroupCounter,
		WindowGroupSizeHistogram,
	} {
		if err := registry.Register(c); err != nil {
			return err
		}
	}
	return nil
}
