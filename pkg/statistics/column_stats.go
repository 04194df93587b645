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

package statistics

import (
	"fmt"
)

// Bucket is an equal-depth histogram bucket over a partition key.
type Bucket struct {
	Upper string
	Count int64
}

// ColumnStats is the statistics the binder attaches to a window partition
// key. The window planner only carries it around; it never inspects it.
type ColumnStats struct {
	NDV       int64
	NullCount int64
	Buckets   []Bucket
}

// Copy deeply copies the statistics.
func (s *ColumnStats) Copy() *ColumnStats {
	if s == nil {
		return nil
	}
	ret := &ColumnStats{NDV: s.NDV, NullCount: s.NullCount}
	if s.Buckets != nil {
		ret.Buckets = make([]Bucket, len(s.Buckets))
		copy(ret.Buckets, s.Buckets)
	}
	return ret
}

// String implements fmt.Stringer interface.
func (s *ColumnStats) String() string {
	if s == nil {
		return "<nil>"
	}
	return fmt.Sprintf("ndv:%d, nulls:%d, buckets:%d", s.NDV, s.NullCount, len(s.Buckets))
}

// CopyColumnStats copies stats slot by slot, keeping absent slots absent so
// the result stays aligned with the keys it describes.
func CopyColumnStats(stats []*ColumnStats) []*ColumnStats {
	if stats == nil {
		return nil
	}
	ret := make([]*ColumnStats, 0, len(stats))
	for _, s := range stats {
		ret = append(ret, s.Copy())
	}
	return ret
}
