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
	"encoding/binary"
	"hash"
	"math"

	"github.com/twmb/murmur3"
)

const (
	// NilFlag is written before an absent optional child.
	NilFlag byte = 0
	// NotNilFlag is written before a present optional child.
	NotNilFlag byte = 1
)

// Hasher is the interface for computing a 64-bit hash over a plan or expression tree.
type Hasher interface {
	HashBool(val bool)
	HashInt(val int)
	HashInt64(val int64)
	HashUint64(val uint64)
	HashFloat64(val float64)
	HashString(val string)
	HashByte(val byte)
	HashBytes(val []byte)
	Reset()
	Sum64() uint64
}

// Hash64 is the interface for hashcode.
// It is used to calculate the lossy digest of an object to return uint64
// rather than compacted bytes from cascaded operators bottom-up.
type Hash64 interface {
	// Hash64 returns the uint64 digest of an object.
	Hash64(h Hasher)
}

// Equals is the interface for equality check.
// When we need to compare two objects when countering hash conflicts, we can
// use this interface to check whether they are equal.
type Equals interface {
	// Equals checks whether two base objects are equal.
	Equals(other any) bool
}

// HashEquals is the interface for hash64 and equals, and it is used to
// dedup structurally equivalent objects.
type HashEquals interface {
	Hash64
	Equals
}

type hasher struct {
	h   hash.Hash64
	buf [8]byte
}

// NewHashEqualer creates a new Hasher backed by 64-bit murmur3.
func NewHashEqualer() Hasher {
	return &hasher{h: murmur3.New64()}
}

func (h *hasher) HashBool(val bool) {
	if val {
		h.HashByte(1)
	} else {
		h.HashByte(0)
	}
}

func (h *hasher) HashInt(val int) {
	h.HashUint64(uint64(val))
}

func (h *hasher) HashInt64(val int64) {
	h.HashUint64(uint64(val))
}

func (h *hasher) HashUint64(val uint64) {
	binary.BigEndian.PutUint64(h.buf[:], val)
	_, _ = h.h.Write(h.buf[:])
}

func (h *hasher) HashFloat64(val float64) {
	h.HashUint64(math.Float64bits(val))
}

func (h *hasher) HashString(val string) {
	// length prefix keeps ("ab","c") and ("a","bc") apart.
	h.HashInt(len(val))
	_, _ = h.h.Write([]byte(val))
}

func (h *hasher) HashByte(val byte) {
	h.buf[0] = val
	_, _ = h.h.Write(h.buf[:1])
}

func (h *hasher) HashBytes(val []byte) {
	h.HashInt(len(val))
	_, _ = h.h.Write(val)
}

func (h *hasher) Reset() {
	h.h.Reset()
}

func (h *hasher) Sum64() uint64 {
	return h.h.Sum64()
}
