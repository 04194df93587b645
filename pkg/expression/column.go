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

package expression

import (
	"fmt"

	"github.com/pingcap/windowexpr/pkg/planner/cascades/base"
	"github.com/pingcap/windowexpr/pkg/types"
)

var _ base.HashEquals = &Column{}

const columnFlag byte = 1

// Column represents a column resolved by the binder.
type Column struct {
	RetType *types.FieldType
	// UniqueID is the unique id of this column.
	UniqueID int64
	// OrigName is the name used for display; empty means Column#UniqueID.
	OrigName string
}

// NewColumn creates a column with a display name.
func NewColumn(id int64, name string, tp *types.FieldType) *Column {
	return &Column{UniqueID: id, OrigName: name, RetType: tp}
}

// String implements fmt.Stringer interface.
func (col *Column) String() string {
	if col.OrigName != "" {
		return col.OrigName
	}
	return fmt.Sprintf("Column#%d", col.UniqueID)
}

// Clone implements Expression interface.
func (col *Column) Clone() Expression {
	newCol := *col
	newCol.RetType = col.RetType.Clone()
	return &newCol
}

// GetType implements Expression interface.
func (col *Column) GetType() *types.FieldType {
	return col.RetType
}

// Hash64 implements HashEquals.<0th> interface.
func (col *Column) Hash64(h base.Hasher) {
	h.HashByte(columnFlag)
	h.HashInt64(col.UniqueID)
}

// Equals implements HashEquals.<1st> interface.
// Two columns are equal when the binder resolved them to the same unique id.
func (col *Column) Equals(other any) bool {
	col2, ok := other.(*Column)
	if !ok {
		return false
	}
	if col == nil || col2 == nil {
		return col == col2
	}
	return col.UniqueID == col2.UniqueID
}
