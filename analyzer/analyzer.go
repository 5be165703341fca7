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

import "github.com/chainlint/chainlint/internal/config"

// Public API constants for the chainlint analyzer.
const (
	// Name identifies the analyzer.
	Name = "chainlint"

	// Doc is the analyzer's one-line description.
	Doc = `chainlint detects guard chains that can use the chaining operator`

	// URL points at the analyzer's documentation.
	URL = "https://pkg.go.dev/github.com/chainlint/chainlint"

	// Kind is the rule identifier attached to every finding.
	Kind = "prefer-chaining-operator"
)

// Analyzer detects rewritable guard chains and fallback accesses. The zero
// value is not usable; create instances with [New].
type Analyzer struct {
	checks config.BitMask[config.Check]
}

// New creates a configured analyzer. It allows for programmatic configuration
// using [Option], which is useful for integrating the analyzer into other
// tools; without options every check is enabled.
func New(opts ...Option) *Analyzer {
	r := defaultOptions()
	Options(opts).apply(r)

	return &Analyzer{checks: r.checks}
}
