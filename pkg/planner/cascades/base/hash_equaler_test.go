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

package base

import (
	"testing"

	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestHasherDeterministic(t *testing.T) {
	h1 := NewHashEqualer()
	h2 := NewHashEqualer()
	for _, h := range []Hasher{h1, h2} {
		h.HashByte(NotNilFlag)
		h.HashString("rank")
		h.HashInt64(-3)
		h.HashBool(true)
		h.HashFloat64(1.5)
	}
	require.Equal(t, h1.Sum64(), h2.Sum64())

	h2.Reset()
	h2.HashByte(NilFlag)
	require.NotEqual(t, h1.Sum64(), h2.Sum64())
}

func TestHasherStringBoundaries(t *testing.T) {
	h1 := NewHashEqualer()
	h1.HashString("ab")
	h1.HashString("c")
	h2 := NewHashEqualer()
	h2.HashString("a")
	h2.HashString("bc")
	require.NotEqual(t, h1.Sum64(), h2.Sum64())
}
