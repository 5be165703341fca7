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

package operand

import "github.com/chainlint/chainlint/ast"

// LinkKind distinguishes the three access forms a chain link can take.
type LinkKind uint8

const (
	// Property is a `.name` or `?.name` access.
	Property LinkKind = iota

	// Element is a `[key]` or `?.[key]` access.
	Element

	// Call is a `(args)` or `?.(args)` invocation.
	Call
)

// Link is one access step of a rewritten chain. Node is the member, index or
// call node the step came from; its bracket and name offsets select the text
// the renderer copies verbatim.
type Link struct {
	Kind LinkKind
	Node *ast.Node

	// Guarded marks the first link contributed by a new guard. Guarded links
	// render with the chaining separator.
	Guarded bool

	// Optional records that the access already used `?.` in the source.
	Optional bool
}

// Result classifies a candidate subject against the previous one.
type Result uint8

const (
	// NoMatch means the candidate neither repeats nor extends the previous
	// subject.
	NoMatch Result = iota

	// Duplicate means the candidate is structurally the previous subject.
	Duplicate

	// Extension means the candidate is the previous subject with one or more
	// trailing accesses appended.
	Extension
)

// Match peels trailing accesses off candidate until it structurally equals
// the subject whose canonical form is prevNorm. On Extension the returned
// links are in source order and the first one is marked guarded. Peeling
// stops without a match at a non-access node, a non-null assertion, or an
// element access whose key is not simple.
func Match(src *ast.Source, prevNorm string, candidate *ast.Node) ([]Link, Result) {
	cur := ast.Unparen(candidate)

	var rev []Link

	for {
		if Normalize(src, cur) == prevNorm {
			if len(rev) == 0 {
				return nil, Duplicate
			}

			links := make([]Link, len(rev))
			for i, l := range rev {
				links[len(rev)-1-i] = l
			}

			links[0].Guarded = true

			return links, Extension
		}

		switch cur.Kind {
		case ast.KindMember:
			rev = append(rev, Link{Kind: Property, Node: cur, Optional: cur.Optional})

		case ast.KindIndex:
			if !SimpleKey(cur.Key) {
				return nil, NoMatch
			}

			rev = append(rev, Link{Kind: Element, Node: cur, Optional: cur.Optional})

		case ast.KindCall:
			rev = append(rev, Link{Kind: Call, Node: cur, Optional: cur.Optional})

		default:
			return nil, NoMatch
		}

		cur = ast.Unparen(cur.Object)
		if cur == nil {
			return nil, NoMatch
		}
	}
}

// SimpleKey reports whether an element key is simple enough to participate in
// a chain: an identifier, `this`, a string or number literal, or a plain
// property chain over identifiers and `this`. Literal keys denote a fixed
// property, so repeating them in a rewrite never changes the element read.
func SimpleKey(key *ast.Node) bool {
	key = ast.Unparen(key)
	if key == nil {
		return false
	}

	switch key.Kind {
	case ast.KindIdent, ast.KindThis:
		return true

	case ast.KindLiteral:
		return key.Lit == ast.LitString || key.Lit == ast.LitNumber

	case ast.KindMember:
		return !key.Optional && SimpleKey(key.Object)

	default:
		return false
	}
}
