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
	"context"
	"fmt"
	"io"
	"os"
	"slices"
	"strings"

	"github.com/pingcap/errors"
	"github.com/pingcap/windowexpr/pkg/config"
	"github.com/pingcap/windowexpr/pkg/metrics"
	"github.com/pingcap/windowexpr/pkg/planner/core"
	"github.com/pingcap/windowexpr/pkg/util/logutil"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
)

const (
	// FlagConfig is the name of config flag.
	FlagConfig = "config"
	// FlagInput is the name of input flag.
	FlagInput = "input"
	// FlagLogLevel is the name of log-level flag.
	FlagLogLevel = "log-level"
	// FlagMaxWidth is the name of max-width flag.
	FlagMaxWidth = "max-width"
	// FlagNoDedup is the name of no-dedup flag.
	FlagNoDedup = "no-dedup"
	// FlagFormat is the name of format flag.
	FlagFormat = "format"
	// FlagDumpConfig is the name of dump-config flag.
	FlagDumpConfig = "dump-config"
	// FlagMetrics is the name of metrics flag.
	FlagMetrics = "metrics"

	formatText  = "text"
	formatTable = "table"
)

func defineFlags(flags *pflag.FlagSet) {
	flags.StringP(FlagConfig, "c", "", "Set the path of the toml config file")
	flags.StringP(FlagInput, "i", "-", "Set the path of the JSON window function file, - reads stdin")
	flags.StringP(FlagLogLevel, "L", "", "Override the log level of the config file")
	flags.Int(FlagMaxWidth, -1, "Override max-render-width of the config file")
	flags.Bool(FlagNoDedup, false, "Do not merge equal window functions")
	flags.StringP(FlagFormat, "f", formatText, "Set the output format, text or table")
	flags.Bool(FlagDumpConfig, false, "Print the effective config in toml and exit")
	flags.Bool(FlagMetrics, false, "Print the planner metrics after the plan")
}

// loadConfig builds the config from the global config and the config file.
func loadConfig(flags *pflag.FlagSet) (*config.Config, error) {
	conf, err := config.CloneConf(config.GetGlobalConfig())
	if err != nil {
		return nil, err
	}
	path, err := flags.GetString(FlagConfig)
	if err != nil {
		return nil, errors.Trace(err)
	}
	if path != "" {
		if err := conf.Load(path); err != nil {
			return nil, err
		}
	}
	if err := conf.Valid(); err != nil {
		return nil, err
	}
	return conf, nil
}

// overrideConfig merges the flags into the global config. Only items that
// are allowed to change at runtime can be overridden; the merged items are
// returned.
func overrideConfig(flags *pflag.FlagSet) ([]string, error) {
	newConf, err := config.CloneConf(config.GetGlobalConfig())
	if err != nil {
		return nil, err
	}
	if level, _ := flags.GetString(FlagLogLevel); level != "" {
		newConf.Log.Level = level
	}
	if width, _ := flags.GetInt(FlagMaxWidth); width >= 0 {
		newConf.Planner.MaxRenderWidth = width
	}
	if noDedup, _ := flags.GetBool(FlagNoDedup); noDedup {
		newConf.Planner.EnableWindowDedup = false
	}
	if err := newConf.Valid(); err != nil {
		return nil, err
	}
	var accepted, rejected []string
	config.UpdateGlobal(func(conf *config.Config) {
		accepted, rejected = config.MergeConfigItems(conf, newConf)
	})
	if len(rejected) > 0 {
		return nil, errors.Errorf("config items %s cannot be overridden", strings.Join(rejected, ", "))
	}
	return accepted, nil
}

func openInput(path string, stdin io.Reader) (io.ReadCloser, error) {
	if path == "-" {
		return io.NopCloser(stdin), nil
	}
	f, err := os.Open(path)
	return f, errors.Trace(err)
}

// runExplain binds the window functions of the input, plans them and prints
// every window function followed by the window operators.
func runExplain(ctx context.Context, cmd *cobra.Command) error {
	flags := cmd.Flags()
	format, _ := flags.GetString(FlagFormat)
	if format != formatText && format != formatTable {
		return errors.Errorf("unknown output format '%s'", format)
	}
	conf, err := loadConfig(flags)
	if err != nil {
		return err
	}
	if err := logutil.InitLogger(conf.Log.ToLogConfig()); err != nil {
		return err
	}
	config.StoreGlobalConfig(conf)
	overridden, err := overrideConfig(flags)
	if err != nil {
		return err
	}
	conf = config.GetGlobalConfig()
	if slices.Contains(overridden, "Log.Level") {
		if err := logutil.SetLevel(conf.Log.Level); err != nil {
			return err
		}
	}
	if len(overridden) > 0 {
		logutil.BgLogger().Info("config items overridden by flags", zap.Strings("items", overridden))
	}

	out := cmd.OutOrStdout()
	if dump, _ := flags.GetBool(FlagDumpConfig); dump {
		content, err := conf.Encode()
		if err != nil {
			return err
		}
		fmt.Fprint(out, content)
		return nil
	}

	var registry *prometheus.Registry
	if withMetrics, _ := flags.GetBool(FlagMetrics); withMetrics {
		registry = prometheus.NewRegistry()
		if err := metrics.RegisterMetrics(registry); err != nil {
			return errors.Trace(err)
		}
	}

	path, _ := flags.GetString(FlagInput)
	r, err := openInput(path, cmd.InOrStdin())
	if err != nil {
		return err
	}
	defer r.Close()
	input, err := decodeInput(r)
	if err != nil {
		return err
	}
	windows, err := input.buildWindows()
	if err != nil {
		return err
	}
	plan, err := core.PlanWindows(logutil.WithKeyValue(ctx, "input", path), windows)
	if err != nil {
		return err
	}
	if format == formatTable {
		fmt.Fprintln(out, renderTable(plan, conf.Planner.MaxRenderWidth))
	} else {
		fmt.Fprintln(out, core.ExplainWindows(plan.Windows, conf.Planner.MaxRenderWidth))
		fmt.Fprintln(out, plan.String())
	}
	if registry != nil {
		families, err := registry.Gather()
		if err != nil {
			return errors.Trace(err)
		}
		fmt.Fprintln(out, renderMetrics(families))
	}
	return nil
}

func newExplainCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:          "windowexplain",
		Short:        "windowexplain prints how bound window functions are planned.",
		SilenceUsage: true,
		Args:         cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runExplain(cmd.Context(), cmd)
		},
	}
	defineFlags(cmd.Flags())
	return cmd
}
