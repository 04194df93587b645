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

package main

import (
	"io"
	"strconv"
	"strings"

	jsoniter "github.com/json-iterator/go"
	"github.com/pingcap/errors"
	"github.com/pingcap/windowexpr/pkg/expression"
	"github.com/pingcap/windowexpr/pkg/expression/aggregation"
	"github.com/pingcap/windowexpr/pkg/planner/property"
	"github.com/pingcap/windowexpr/pkg/types"
	"go.uber.org/multierr"
)

// columnInput declares an input column of the query block.
type columnInput struct {
	ID   int64  `json:"id"`
	Name string `json:"name"`
	Type string `json:"type"`
}

type orderInput struct {
	Expr  string `json:"expr"`
	Desc  bool   `json:"desc"`
	Nulls string `json:"nulls"`
}

// windowInput describes one bound window function. Expressions are column
// names, integer literals, quoted strings or NULL.
type windowInput struct {
	Kind        string       `json:"kind"`
	Function    string       `json:"function"`
	Distinct    bool         `json:"distinct"`
	Type        string       `json:"type"`
	Args        []string     `json:"args"`
	PartitionBy []string     `json:"partition_by"`
	OrderBy     []orderInput `json:"order_by"`
	Start       string       `json:"start"`
	StartExpr   string       `json:"start_expr"`
	End         string       `json:"end"`
	EndExpr     string       `json:"end_expr"`
	Offset      string       `json:"offset"`
	Default     string       `json:"default"`
	IgnoreNulls bool         `json:"ignore_nulls"`
}

type explainInput struct {
	Columns []columnInput `json:"columns"`
	Windows []windowInput `json:"windows"`
}

var json = jsoniter.ConfigCompatibleWithStandardLibrary

func decodeInput(r io.Reader) (*explainInput, error) {
	input := &explainInput{}
	dec := json.NewDecoder(r)
	dec.DisallowUnknownFields()
	if err := dec.Decode(input); err != nil {
		return nil, errors.Annotate(err, "decode input")
	}
	return input, nil
}

func (in *explainInput) schema() (*expression.Schema, error) {
	schema := expression.NewSchema()
	for _, c := range in.Columns {
		col := expression.NewColumn(c.ID, c.Name, parseType(c.Type))
		if schema.FindColumnByName(c.Name) != nil || schema.Contains(col) {
			return nil, errors.Errorf("duplicate column %s (id %d)", c.Name, c.ID)
		}
		schema.Append(col)
	}
	return schema, nil
}

// buildWindows binds every window function of the input. All binding errors
// are reported together.
func (in *explainInput) buildWindows() ([]*aggregation.BoundWindow, error) {
	schema, err := in.schema()
	if err != nil {
		return nil, err
	}
	windows := make([]*aggregation.BoundWindow, 0, len(in.Windows))
	var errs error
	for i := range in.Windows {
		w, err := in.Windows[i].build(schema)
		if err != nil {
			errs = multierr.Append(errs, errors.Annotatef(err, "window #%d", i))
			continue
		}
		windows = append(windows, w)
	}
	if errs != nil {
		return nil, errs
	}
	return windows, nil
}

func parseType(name string) *types.FieldType {
	if name == "" {
		return types.NewFieldType(types.TypeLonglong)
	}
	return types.NewFieldType(types.StrToType(name))
}

func parseExpr(schema *expression.Schema, s string) (expression.Expression, error) {
	s = strings.TrimSpace(s)
	switch {
	case strings.EqualFold(s, "NULL"):
		return expression.NewNull(), nil
	case len(s) >= 2 && s[0] == '\'' && s[len(s)-1] == '\'':
		return expression.NewStrConst(s[1 : len(s)-1]), nil
	}
	if num, err := strconv.ParseInt(s, 10, 64); err == nil {
		return expression.NewInt64Const(num), nil
	}
	if col := schema.FindColumnByName(s); col != nil {
		return col.Clone(), nil
	}
	return nil, errors.Errorf("unknown column '%s'", s)
}

func parseOptionalExpr(schema *expression.Schema, s string) (expression.Expression, error) {
	if s == "" {
		return nil, nil
	}
	return parseExpr(schema, s)
}

func parseExprs(schema *expression.Schema, strs []string) ([]expression.Expression, error) {
	if len(strs) == 0 {
		return nil, nil
	}
	exprs := make([]expression.Expression, 0, len(strs))
	for _, s := range strs {
		expr, err := parseExpr(schema, s)
		if err != nil {
			return nil, err
		}
		exprs = append(exprs, expr)
	}
	return exprs, nil
}

func parseNullOrder(s string) (property.NullOrder, error) {
	switch strings.ToLower(s) {
	case "":
		return property.NullsUnspecified, nil
	case "first":
		return property.NullsFirst, nil
	case "last":
		return property.NullsLast, nil
	}
	return property.NullsUnspecified, errors.Errorf("unknown null order '%s'", s)
}

func parseBoundary(s string, def aggregation.FrameBoundary) (aggregation.FrameBoundary, error) {
	if s == "" {
		return def, nil
	}
	return aggregation.ParseFrameBoundary(s)
}

func (in *windowInput) build(schema *expression.Schema) (*aggregation.BoundWindow, error) {
	kind := aggregation.WindowAggregate
	if in.Kind != "" {
		var err error
		if kind, err = aggregation.ParseWindowKind(in.Kind); err != nil {
			return nil, err
		}
	}
	retType := parseType(in.Type)
	var desc *aggregation.AggFuncDesc
	if in.Function != "" {
		desc = aggregation.NewAggFuncDesc(in.Function, retType, in.Distinct)
	}
	var state aggregation.BindState
	if kind.IsPositional() {
		state = &aggregation.PositionalBindState{DefaultOffset: 1}
	}
	w := aggregation.NewBoundWindow(kind, retType, desc, state)
	w.IgnoreNulls = in.IgnoreNulls

	var err error
	if w.Args, err = parseExprs(schema, in.Args); err != nil {
		return nil, err
	}
	if w.PartitionBy, err = parseExprs(schema, in.PartitionBy); err != nil {
		return nil, err
	}
	for _, o := range in.OrderBy {
		expr, err := parseExpr(schema, o.Expr)
		if err != nil {
			return nil, err
		}
		nullOrder, err := parseNullOrder(o.Nulls)
		if err != nil {
			return nil, err
		}
		direction := property.Ascending
		if o.Desc {
			direction = property.Descending
		}
		w.OrderBy = append(w.OrderBy, property.NewOrderingKey(expr, direction, nullOrder))
	}
	if w.Start, err = parseBoundary(in.Start, w.Start); err != nil {
		return nil, err
	}
	if w.End, err = parseBoundary(in.End, w.End); err != nil {
		return nil, err
	}
	for _, opt := range []struct {
		dst *expression.Expression
		src string
	}{
		{&w.StartExpr, in.StartExpr},
		{&w.EndExpr, in.EndExpr},
		{&w.OffsetExpr, in.Offset},
		{&w.DefaultExpr, in.Default},
	} {
		if *opt.dst, err = parseOptionalExpr(schema, opt.src); err != nil {
			return nil, err
		}
	}
	if err := w.Validate(); err != nil {
		return nil, err
	}
	return w, nil
}
