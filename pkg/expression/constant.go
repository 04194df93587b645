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
	"math"

	"github.com/pingcap/windowexpr/pkg/planner/cascades/base"
	"github.com/pingcap/windowexpr/pkg/types"
)

var _ base.HashEquals = &Constant{}

const constantFlag byte = 2

// Constant stands for a constant value. Value holds one of nil, int64,
// uint64, float64, string or bool.
type Constant struct {
	Value   any
	RetType *types.FieldType
}

// NewInt64Const stands for constant of a given number.
func NewInt64Const(num int64) *Constant {
	return &Constant{
		Value:   num,
		RetType: types.NewFieldType(types.TypeLonglong),
	}
}

// NewStrConst stands for constant of a given string.
func NewStrConst(str string) *Constant {
	return &Constant{
		Value:   str,
		RetType: types.NewFieldType(types.TypeVarchar),
	}
}

// NewNull stands for null constant.
func NewNull() *Constant {
	return &Constant{
		RetType: types.NewFieldType(types.TypeNull),
	}
}

// String implements fmt.Stringer interface.
func (c *Constant) String() string {
	if c.Value == nil {
		return "NULL"
	}
	return fmt.Sprintf("%v", c.Value)
}

// Clone implements Expression interface.
func (c *Constant) Clone() Expression {
	con := *c
	con.RetType = c.RetType.Clone()
	return &con
}

// GetType implements Expression interface.
func (c *Constant) GetType() *types.FieldType {
	return c.RetType
}

// Hash64 implements HashEquals.<0th> interface.
func (c *Constant) Hash64(h base.Hasher) {
	h.HashByte(constantFlag)
	c.RetType.Hash64(h)
	switch v := c.Value.(type) {
	case nil:
		h.HashByte(0)
	case int64:
		h.HashByte(1)
		h.HashInt64(v)
	case uint64:
		h.HashByte(2)
		h.HashUint64(v)
	case float64:
		h.HashByte(3)
		h.HashUint64(canonicalFloatBits(v))
	case string:
		h.HashByte(4)
		h.HashString(v)
	case bool:
		h.HashByte(5)
		h.HashBool(v)
	default:
		h.HashByte(6)
		h.HashString(fmt.Sprintf("%v", v))
	}
}

// Equals implements HashEquals.<1st> interface.
func (c *Constant) Equals(other any) bool {
	c2, ok := other.(*Constant)
	if !ok {
		return false
	}
	if c == nil || c2 == nil {
		return c == c2
	}
	if !c.RetType.Equals(c2.RetType) {
		return false
	}
	switch v := c.Value.(type) {
	case float64:
		v2, ok := c2.Value.(float64)
		return ok && canonicalFloatBits(v) == canonicalFloatBits(v2)
	case nil, int64, uint64, string, bool:
		return c.Value == c2.Value
	default:
		return fmt.Sprintf("%v", c.Value) == fmt.Sprintf("%v", c2.Value)
	}
}

// canonicalFloatBits folds -0 into 0 and every NaN into one payload.
func canonicalFloatBits(f float64) uint64 {
	switch {
	case math.IsNaN(f):
		return math.Float64bits(math.NaN())
	case f == 0:
		return 0
	}
	return math.Float64bits(f)
}
