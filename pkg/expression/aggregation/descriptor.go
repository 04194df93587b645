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
	"strings"

	"github.com/pingcap/windowexpr/pkg/planner/cascades/base"
	"github.com/pingcap/windowexpr/pkg/types"
)

// AggFuncDesc describes an aggregate function resolved by the catalog and
// evaluated over a window frame. It is immutable once bound.
type AggFuncDesc struct {
	// Name is the registered name of the function, in lower case.
	Name string
	// RetTp is the return type of the aggregate function.
	RetTp *types.FieldType
	// HasDistinct represents whether the aggregate function contains distinct attribute.
	HasDistinct bool
}

// NewAggFuncDesc creates an aggregation function signature descriptor.
func NewAggFuncDesc(name string, retTp *types.FieldType, hasDistinct bool) *AggFuncDesc {
	return &AggFuncDesc{
		Name:        strings.ToLower(name),
		RetTp:       retTp,
		HasDistinct: hasDistinct,
	}
}

// Clone copies an aggregation function signature totally.
func (a *AggFuncDesc) Clone() *AggFuncDesc {
	clone := *a
	clone.RetTp = a.RetTp.Clone()
	return &clone
}

// Equals checks whether two descriptors identify the same function.
func (a *AggFuncDesc) Equals(other *AggFuncDesc) bool {
	if a == nil || other == nil {
		return a == other
	}
	return a.Name == other.Name &&
		a.HasDistinct == other.HasDistinct &&
		a.RetTp.Equals(other.RetTp)
}

// Hash64 implements the base.Hash64 interface.
func (a *AggFuncDesc) Hash64(h base.Hasher) {
	if a == nil {
		h.HashByte(base.NilFlag)
		return
	}
	h.HashByte(base.NotNilFlag)
	h.HashString(a.Name)
	h.HashBool(a.HasDistinct)
	a.RetTp.Hash64(h)
}
