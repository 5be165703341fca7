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

package ast

import (
	"sort"
	"strings"
)

// Source holds the original text an expression tree was parsed from. All
// replacement rendering goes through Source so comments and whitespace inside
// preserved sub-ranges survive byte-for-byte.
type Source struct {
	name  string
	text  string
	lines []int // byte offset of each line start, built lazily
}

// NewSource wraps text for offset-based access. The name is only used in
// positions reported to humans.
func NewSource(name, text string) *Source {
	return &Source{name: name, text: text}
}

// Name returns the name the source was created with.
func (s *Source) Name() string { return s.name }

// Content returns the complete original text.
func (s *Source) Content() string { return s.text }

// Text returns the exact original substring covered by n.
func (s *Source) Text(n *Node) string {
	return s.Slice(n.Pos, n.End)
}

// Slice returns the original text between two byte offsets. Out-of-range
// offsets are clamped rather than panicking.
func (s *Source) Slice(pos, end int) string {
	if pos < 0 {
		pos = 0
	}

	if end > len(s.text) {
		end = len(s.text)
	}

	if pos >= end {
		return ""
	}

	return s.text[pos:end]
}

// Position translates a byte offset into a 1-based line and column.
func (s *Source) Position(offset int) (line, col int) {
	if s.lines == nil {
		s.lines = append(s.lines, 0)
		for i := 0; i < len(s.text); i++ {
			if s.text[i] == '\n' {
				s.lines = append(s.lines, i+1)
			}
		}
	}

	if offset < 0 {
		offset = 0
	}

	if offset > len(s.text) {
		offset = len(s.text)
	}

	i := sort.SearchInts(s.lines, offset+1) - 1

	return i + 1, offset - s.lines[i] + 1
}

// Compact returns the text of n with runs of whitespace collapsed to single
// spaces, for human-readable messages.
func (s *Source) Compact(n *Node) string {
	return strings.Join(strings.Fields(s.Text(n)), " ")
}
