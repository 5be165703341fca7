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

// Package analyzer implements the chainlint analysis pass.
//
// # Overview
//
// Chainlint detects expressions that guard an access chain step by step and
// proposes the chaining operator instead.
//
// # Example
//
// Before:
//
//	foo && foo.bar && foo.bar.baz && foo.bar.baz()
//
// After applying chainlint's suggested rewrite:
//
//	foo?.bar?.baz?.()
//
// # Detected Patterns
//
// The analyzer reports:
//
//   - `&&` runs whose operands guard deeper and deeper accesses on one
//     subject, including negated `||` duals such as `!foo || !foo.bar`
//   - accesses on an empty-object fallback, `(foo || {}).bar` and
//     `(foo ?? {}).bar`
//
// Each finding carries the byte range to replace and the replacement text.
// Replacements reuse the original source byte-for-byte wherever possible, so
// comments and formatting inside kept subexpressions survive.
package analyzer
