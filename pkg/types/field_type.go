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

package types

import (
	"fmt"
	"strings"

	"github.com/pingcap/windowexpr/pkg/planner/cascades/base"
)

// MySQL type codes used by bound expressions.
const (
	TypeUnspecified byte = 0
	TypeTiny        byte = 1
	TypeDouble      byte = 5
	TypeNull        byte = 6
	TypeLonglong    byte = 8
	TypeDate        byte = 10
	TypeDatetime    byte = 12
	TypeVarchar     byte = 15
	TypeJSON        byte = 245
	TypeNewDecimal  byte = 246
)

// UnsignedFlag marks an unsigned integer type.
const UnsignedFlag uint = 1 << 5

// UnspecifiedLength is unspecified length.
const UnspecifiedLength int = -1

var type2Str = map[byte]string{
	TypeUnspecified: "unspecified",
	TypeTiny:        "tinyint",
	TypeDouble:      "double",
	TypeNull:        "null",
	TypeLonglong:    "bigint",
	TypeDate:        "date",
	TypeDatetime:    "datetime",
	TypeVarchar:     "varchar",
	TypeJSON:        "json",
	TypeNewDecimal:  "decimal",
}

// StrToType converts a type name to its type code. It returns
// TypeUnspecified for an unknown name.
func StrToType(ts string) (tp byte) {
	ts = strings.ToLower(ts)
	for code, name := range type2Str {
		if name == ts {
			return code
		}
	}
	return TypeUnspecified
}

// FieldType records the semantic type of an expression result.
type FieldType struct {
	Tp      byte
	Flag    uint
	Flen    int
	Decimal int
}

// NewFieldType returns a FieldType with unspecified length and decimal.
func NewFieldType(tp byte) *FieldType {
	return &FieldType{
		Tp:      tp,
		Flen:    UnspecifiedLength,
		Decimal: UnspecifiedLength,
	}
}

// String joins the information of FieldType and returns a string.
func (ft *FieldType) String() string {
	ts, ok := type2Str[ft.Tp]
	if !ok {
		ts = fmt.Sprintf("type(%d)", ft.Tp)
	}
	ans := []string{ts}
	if ft.Flen != UnspecifiedLength {
		if ft.Decimal == UnspecifiedLength {
			ans[0] += fmt.Sprintf("(%d)", ft.Flen)
		} else {
			ans[0] += fmt.Sprintf("(%d,%d)", ft.Flen, ft.Decimal)
		}
	}
	if ft.Flag&UnsignedFlag > 0 {
		ans = append(ans, "UNSIGNED")
	}
	return strings.Join(ans, " ")
}

// Clone returns a copy of itself.
func (ft *FieldType) Clone() *FieldType {
	if ft == nil {
		return nil
	}
	ret := *ft
	return &ret
}

// Equals checks whether two FieldType objects are equal.
func (ft *FieldType) Equals(other *FieldType) bool {
	if ft == nil || other == nil {
		return ft == other
	}
	return ft.Tp == other.Tp &&
		ft.Flag == other.Flag &&
		ft.Flen == other.Flen &&
		ft.Decimal == other.Decimal
}

// Hash64 implements the base.Hash64 interface.
func (ft *FieldType) Hash64(h base.Hasher) {
	if ft == nil {
		h.HashByte(base.NilFlag)
		return
	}
	h.HashByte(base.NotNilFlag)
	h.HashByte(ft.Tp)
	h.HashUint64(uint64(ft.Flag))
	h.HashInt(ft.Flen)
	h.HashInt(ft.Decimal)
}
