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

package logutil

import (
	"context"
	"testing"

	"github.com/pingcap/log"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
	"go.uber.org/zap/zaptest/observer"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestContextLogger(t *testing.T) {
	core, logs := observer.New(zapcore.DebugLevel)
	ctx := WithLogger(context.Background(), zap.New(core))
	ctx = WithCategory(ctx, "planner")
	ctx = WithKeyValue(ctx, "window", "sum")
	Logger(ctx).Info("deduplicated")

	entries := logs.All()
	require.Len(t, entries, 1)
	require.Equal(t, "deduplicated", entries[0].Message)
	fields := entries[0].ContextMap()
	require.Equal(t, "planner", fields[LogFieldCategory])
	require.Equal(t, "sum", fields["window"])

	require.Same(t, log.L(), Logger(context.Background()))
	require.Same(t, log.L(), BgLogger())
}

func TestInitLogger(t *testing.T) {
	cfg := NewLogConfig("warn", DefaultLogFormat, FileLogConfig{}, true)
	require.NoError(t, InitLogger(cfg))
	require.False(t, BgLogger().Core().Enabled(zapcore.InfoLevel))
	require.True(t, BgLogger().Core().Enabled(zapcore.WarnLevel))

	require.NoError(t, SetLevel("debug"))
	require.True(t, BgLogger().Core().Enabled(zapcore.DebugLevel))
	require.Error(t, SetLevel("loud"))

	require.NoError(t, InitLogger(NewLogConfig(DefaultLogLevel, "json", NewFileLogConfig(DefaultLogMaxSize), false)))
	require.Error(t, InitLogger(NewLogConfig("loud", DefaultLogFormat, FileLogConfig{}, false)))
}
