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

package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func writeConf(t *testing.T, content string) string {
	path := filepath.Join(t.TempDir(), "config.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad(t *testing.T) {
	conf := NewConfig()
	require.True(t, conf.Planner.EnableWindowDedup)
	require.NoError(t, conf.Valid())

	path := writeConf(t, `
[log]
level = "debug"
format = "json"

[planner]
enable-window-dedup = false
max-render-width = 80
`)
	require.NoError(t, conf.Load(path))
	require.NoError(t, conf.Valid())
	require.Equal(t, "debug", conf.Log.Level)
	require.False(t, conf.Planner.EnableWindowDedup)
	require.True(t, conf.Planner.EnableWindowKeyGrouping)
	require.Equal(t, 80, conf.Planner.MaxRenderWidth)

	logConf := conf.Log.ToLogConfig()
	require.Equal(t, "debug", logConf.Level)
	require.Equal(t, "json", logConf.Format)

	// the defaults are untouched.
	require.True(t, NewConfig().Planner.EnableWindowDedup)
}

func TestLoadUndecodedItems(t *testing.T) {
	path := writeConf(t, `
[planner]
enable-window-dedupe = true
`)
	err := NewConfig().Load(path)
	var validationErr *ErrConfigValidationFailed
	require.ErrorAs(t, err, &validationErr)
	require.Equal(t, []string{"planner.enable-window-dedupe"}, validationErr.UndecodedItems)

	require.Error(t, NewConfig().Load(filepath.Join(t.TempDir(), "missing.toml")))
}

func TestValid(t *testing.T) {
	tests := []struct {
		mutate func(c *Config)
		valid  bool
	}{
		{func(*Config) {}, true},
		{func(c *Config) { c.Log.Level = "verbose" }, false},
		{func(c *Config) { c.Log.Format = "console" }, false},
		{func(c *Config) { c.Planner.MaxRenderWidth = -1 }, false},
		{func(c *Config) { c.Planner.MaxRenderWidth = 40 }, true},
	}
	for i, tt := range tests {
		conf := NewConfig()
		tt.mutate(conf)
		if tt.valid {
			require.NoError(t, conf.Valid(), i)
		} else {
			require.Error(t, conf.Valid(), i)
		}
	}
}

func TestGlobalConfig(t *testing.T) {
	restore := GetGlobalConfig()
	defer StoreGlobalConfig(restore)

	UpdateGlobal(func(conf *Config) {
		conf.Planner.MaxRenderWidth = 64
	})
	require.Equal(t, 64, GetGlobalConfig().Planner.MaxRenderWidth)
	require.Equal(t, 0, restore.Planner.MaxRenderWidth)
}

func TestMergeConfigItems(t *testing.T) {
	oldConf := NewConfig()
	newConf, err := CloneConf(oldConf)
	require.NoError(t, err)
	require.Equal(t, oldConf, newConf)

	newConf.Log.Level = "warn"
	newConf.Log.Format = "json"
	newConf.Planner.MaxRenderWidth = 20
	accepted, rejected := MergeConfigItems(oldConf, newConf)
	require.ElementsMatch(t, []string{"Log.Level", "Planner.MaxRenderWidth"}, accepted)
	require.Equal(t, []string{"Log.Format"}, rejected)
	require.Equal(t, "warn", oldConf.Log.Level)
	require.Equal(t, "text", oldConf.Log.Format)
}

func TestEncode(t *testing.T) {
	conf := NewConfig()
	conf.Planner.MaxRenderWidth = 99
	content, err := conf.Encode()
	require.NoError(t, err)
	require.Contains(t, content, "max-render-width = 99")

	loaded := NewConfig()
	require.NoError(t, loaded.Load(writeConf(t, content)))
	require.Equal(t, conf, loaded)
}
