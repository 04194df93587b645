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
	"fmt"
	"strconv"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/pingcap/windowexpr/pkg/planner/core"
	dto "github.com/prometheus/client_model/go"
)

// renderTable renders one row per evaluated window function: the window
// operator evaluating it and the input positions it serves.
func renderTable(plan *core.WindowPlan, maxWidth int) string {
	operators := make([]int, len(plan.Windows))
	for i, g := range plan.Groups {
		for _, offset := range g.Offsets {
			operators[offset] = i
		}
	}
	inputs := make([][]string, len(plan.Windows))
	for i, offset := range plan.Offsets {
		inputs[offset] = append(inputs[offset], strconv.Itoa(i))
	}

	t := table.NewWriter()
	t.AppendHeader(table.Row{"#", "Window", "Operator", "Inputs"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Name: "#", WidthMax: 6},
		{Name: "Operator", WidthMax: 8},
	})
	for i, w := range plan.Windows {
		t.AppendRow(table.Row{i, core.TruncateRender(w.String(), maxWidth), operators[i], strings.Join(inputs[i], ",")})
	}
	cols := make([]string, 0, len(plan.Columns))
	for _, col := range plan.Columns {
		cols = append(cols, col.String())
	}
	t.AppendFooter(table.Row{"", "columns: " + strings.Join(cols, ", ")})
	return t.Render()
}

// renderMetrics renders one row per gathered metric.
func renderMetrics(families []*dto.MetricFamily) string {
	t := table.NewWriter()
	t.AppendHeader(table.Row{"Metric", "Labels", "Value"})
	for _, mf := range families {
		for _, m := range mf.GetMetric() {
			labels := make([]string, 0, len(m.GetLabel()))
			for _, l := range m.GetLabel() {
				labels = append(labels, l.GetName()+"="+l.GetValue())
			}
			var value string
			switch mf.GetType() {
			case dto.MetricType_COUNTER:
				value = strconv.FormatFloat(m.GetCounter().GetValue(), 'f', -1, 64)
			case dto.MetricType_HISTOGRAM:
				h := m.GetHistogram()
				value = fmt.Sprintf("count=%d sum=%s", h.GetSampleCount(), strconv.FormatFloat(h.GetSampleSum(), 'f', -1, 64))
			default:
				value = m.String()
			}
			t.AppendRow(table.Row{mf.GetName(), strings.Join(labels, ","), value})
		}
	}
	return t.Render()
}
