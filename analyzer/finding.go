// Copyright 2026 The chainlint authors. All Rights Reserved.
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
//
// SPDX-License-Identifier: Apache-2.0

package analyzer

// Finding is one detected rewrite opportunity. Findings are reported in
// pre-order discovery order: an enclosing expression's finding precedes
// findings inside it.
type Finding struct {
	// Kind is the rule identifier, always [Kind].
	Kind string `json:"kind"`

	// Pos and End are the byte range of the expression to replace, End
	// exclusive.
	Pos int `json:"pos"`
	End int `json:"end"`

	// Message describes the finding to a human.
	Message string `json:"message"`

	// Replacement is the text to substitute for the range. Applying it is
	// behavior-preserving up to the short-circuit evaluation documented for
	// the rule.
	Replacement string `json:"replacement"`
}
