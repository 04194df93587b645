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

package aggregation

import (
	"github.com/pingcap/errors"
)

// Error classes of bound window functions.
var (
	// ErrMissingBindStateClone means a bind state variant has no clone
	// implementation. It is a programming error, not a user error.
	ErrMissingBindStateClone = errors.Normalize("bind state %s does not implement clone",
		errors.RFCCodeText("Planner:MissingBindStateClone"))
	// ErrInvalidWindowNode is returned by Validate for a node that breaks its invariants.
	ErrInvalidWindowNode = errors.Normalize("invalid window function %s: %s",
		errors.RFCCodeText("Planner:InvalidWindowNode"))
	// ErrUnknownFrameBoundary is returned when a frame boundary name cannot be parsed.
	ErrUnknownFrameBoundary = errors.Normalize("unknown frame boundary '%s'",
		errors.RFCCodeText("Planner:UnknownFrameBoundary"))
	// ErrUnknownWindowKind is returned when a window function kind cannot be parsed.
	ErrUnknownWindowKind = errors.Normalize("unknown window function kind '%s'",
		errors.RFCCodeText("Planner:UnknownWindowKind"))
)
