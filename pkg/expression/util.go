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

// ColumnSubstitute substitutes the columns in expr with the expressions in
// newExprs, keyed by column unique id. The input expression is never
// modified: the result is a fresh tree and every substituted expression is
// cloned, so the result does not alias newExprs either.
func ColumnSubstitute(expr Expression, newExprs map[int64]Expression) Expression {
	switch v := expr.(type) {
	case nil:
		return nil
	case *Column:
		if newExpr, ok := newExprs[v.UniqueID]; ok {
			return newExpr.Clone()
		}
		return v.Clone()
	case *ScalarFunction:
		newFunc := &ScalarFunction{
			FuncName: v.FuncName,
			RetType:  v.RetType.Clone(),
			Args:     make([]Expression, 0, len(v.Args)),
		}
		for _, arg := range v.Args {
			newFunc.Args = append(newFunc.Args, ColumnSubstitute(arg, newExprs))
		}
		return newFunc
	}
	return expr.Clone()
}

// ExtractColumns extracts all columns from an expression, in pre-order.
func ExtractColumns(expr Expression) []*Column {
	return extractColumns(nil, expr)
}

func extractColumns(result []*Column, expr Expression) []*Column {
	switch v := expr.(type) {
	case *Column:
		result = append(result, v)
	case *ScalarFunction:
		for _, arg := range v.Args {
			result = extractColumns(result, arg)
		}
	}
	return result
}
