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
	"fmt"
	"strings"
	"sync/atomic"

	"github.com/BurntSushi/toml"
	"github.com/pingcap/errors"
	"github.com/pingcap/windowexpr/pkg/util/logutil"
	"go.uber.org/zap"
)

// Config contains configuration options.
type Config struct {
	Log     Log     `toml:"log" json:"log"`
	Planner Planner `toml:"planner" json:"planner"`
}

// Log is the log section of config.
type Log struct {
	// Log level.
	Level string `toml:"level" json:"level"`
	// Log format. one of json or text.
	Format string `toml:"format" json:"format"`
	// Disable automatic timestamps in output.
	DisableTimestamp bool `toml:"disable-timestamp" json:"disable-timestamp"`
	// File log config.
	File logutil.FileLogConfig `toml:"file" json:"file"`
}

// Planner is the planner section of config.
type Planner struct {
	// EnableWindowDedup merges window functions that are structurally equal.
	EnableWindowDedup bool `toml:"enable-window-dedup" json:"enable-window-dedup"`
	// EnableWindowKeyGrouping groups window functions sharing partition and
	// ordering keys into one window operator.
	EnableWindowKeyGrouping bool `toml:"enable-window-key-grouping" json:"enable-window-key-grouping"`
	// MaxRenderWidth truncates rendered window functions in explain output.
	// 0 means no limit.
	MaxRenderWidth int `toml:"max-render-width" json:"max-render-width"`
}

var defaultConf = Config{
	Log: Log{
		Level:  logutil.DefaultLogLevel,
		Format: logutil.DefaultLogFormat,
		File:   logutil.NewFileLogConfig(logutil.DefaultLogMaxSize),
	},
	Planner: Planner{
		EnableWindowDedup:       true,
		EnableWindowKeyGrouping: true,
	},
}

var globalConf atomic.Pointer[Config]

func init() {
	conf := defaultConf
	StoreGlobalConfig(&conf)
}

// NewConfig creates a new config instance with default value.
func NewConfig() *Config {
	conf := defaultConf
	return &conf
}

// GetGlobalConfig returns the global configuration.
// It should store configuration from command line and configuration file.
// Other parts of the system can read the global configuration use this function.
// NOTE: the returned config must not be modified, use UpdateGlobal instead.
func GetGlobalConfig() *Config {
	return globalConf.Load()
}

// StoreGlobalConfig stores a new config to the globalConf. It mostly uses in the test to avoid some data races.
func StoreGlobalConfig(config *Config) {
	globalConf.Store(config)
}

// UpdateGlobal updates the global config, and provide a latest config to the function f.
// For example:
//
//	config.UpdateGlobal(func(conf *Config) {
//		conf.Planner.MaxRenderWidth = 80
//	})
func UpdateGlobal(f func(conf *Config)) {
	g := GetGlobalConfig()
	newConf := *g
	f(&newConf)
	StoreGlobalConfig(&newConf)
}

// ErrConfigValidationFailed indicates that the configuration file is invalid.
type ErrConfigValidationFailed struct {
	confFile       string
	UndecodedItems []string
}

func (e *ErrConfigValidationFailed) Error() string {
	return fmt.Sprintf("config file %s contained invalid configuration options: %s",
		e.confFile, strings.Join(e.UndecodedItems, ", "))
}

// Load loads config options from a toml file.
func (c *Config) Load(confFile string) error {
	metaData, err := toml.DecodeFile(confFile, c)
	if err != nil {
		return errors.Trace(err)
	}
	// If any items in confFile file are not mapped into the Config struct, issue
	// an error and stop the server from starting.
	undecoded := metaData.Undecoded()
	if len(undecoded) > 0 {
		var undecodedItems []string
		for _, item := range undecoded {
			undecodedItems = append(undecodedItems, item.String())
		}
		return &ErrConfigValidationFailed{confFile, undecodedItems}
	}
	return nil
}

// Valid checks if this config is valid.
func (c *Config) Valid() error {
	level := zap.NewAtomicLevel()
	if err := level.UnmarshalText([]byte(c.Log.Level)); err != nil {
		return errors.Errorf("invalid log level %q", c.Log.Level)
	}
	switch c.Log.Format {
	case "text", "json":
	default:
		return errors.Errorf("invalid log format %q, should be text or json", c.Log.Format)
	}
	if c.Planner.MaxRenderWidth < 0 {
		return errors.Errorf("max-render-width should be non-negative, got %d", c.Planner.MaxRenderWidth)
	}
	return nil
}

// ToLogConfig converts *Log to *logutil.LogConfig.
func (l *Log) ToLogConfig() *logutil.LogConfig {
	return logutil.NewLogConfig(l.Level, l.Format, l.File, l.DisableTimestamp)
}
