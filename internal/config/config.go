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

// Package config holds the check selection shared by the analyzer and the
// command line front end, and loads it from a configuration file.
package config

// Check represents one detection the analyzer can run.
type Check uint8

const (
	// AndChains enables detection of `&&` guard chains.
	AndChains Check = 1 << iota

	// OrChains enables detection of negated `||` guard chains.
	OrChains

	// Fallback enables detection of empty-object fallback accesses.
	Fallback
)

// AllChecks is the default check selection.
func AllChecks() BitMask[Check] {
	return NewBitMask(AndChains, OrChains, Fallback)
}
