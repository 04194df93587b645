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
	"strings"

	"github.com/pingcap/windowexpr/pkg/planner/cascades/base"
	"github.com/pingcap/windowexpr/pkg/types"
)

var _ base.HashEquals = &ScalarFunction{}

const scalarFunctionFlag byte = 3

// ScalarFunction is the function that returns a value.
type ScalarFunction struct {
	FuncName string
	RetType  *types.FieldType
	Args     []Expression
}

// NewFunction creates a bound scalar function.
func NewFunction(funcName string, retType *types.FieldType, args ...Expression) *ScalarFunction {
	return &ScalarFunction{
		FuncName: strings.ToLower(funcName),
		RetType:  retType,
		Args:     args,
	}
}

// String implements fmt.Stringer interface.
func (sf *ScalarFunction) String() string {
	var buffer strings.Builder
	buffer.WriteString(sf.FuncName)
	buffer.WriteString("(")
	buffer.WriteString(ExplainExpressionList(sf.Args))
	buffer.WriteString(")")
	return buffer.String()
}

// Clone implements Expression interface.
func (sf *ScalarFunction) Clone() Expression {
	return &ScalarFunction{
		FuncName: sf.FuncName,
		RetType:  sf.RetType.Clone(),
		Args:     CloneExprs(sf.Args),
	}
}

// GetType implements Expression interface.
func (sf *ScalarFunction) GetType() *types.FieldType {
	return sf.RetType
}

// Hash64 implements HashEquals.<0th> interface.
func (sf *ScalarFunction) Hash64(h base.Hasher) {
	h.HashByte(scalarFunctionFlag)
	h.HashString(sf.FuncName)
	sf.RetType.Hash64(h)
	HashExprs(h, sf.Args)
}

// Equals implements HashEquals.<1st> interface.
func (sf *ScalarFunction) Equals(other any) bool {
	sf2, ok := other.(*ScalarFunction)
	if !ok {
		return false
	}
	if sf == nil || sf2 == nil {
		return sf == sf2
	}
	return sf.FuncName == sf2.FuncName &&
		sf.RetType.Equals(sf2.RetType) &&
		ExpressionsEqual(sf.Args, sf2.Args)
}
