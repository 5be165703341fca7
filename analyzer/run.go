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

import (
	"fmt"

	"github.com/chainlint/chainlint/ast"
	"github.com/chainlint/chainlint/internal/chain"
	"github.com/chainlint/chainlint/internal/config"
	"github.com/chainlint/chainlint/internal/fallback"
	"github.com/chainlint/chainlint/internal/render"
)

// Analyze inspects one expression and returns its findings.
func (a *Analyzer) Analyze(src *ast.Source, expr *ast.Node) []Finding {
	var out []Finding
	a.walk(src, expr, ast.OpNone, &out)

	return out
}

// AnalyzeProgram inspects every expression root of a parsed file, in source
// order.
func (a *Analyzer) AnalyzeProgram(src *ast.Source, prog *ast.Program) []Finding {
	var out []Finding

	ast.Roots(prog, func(root *ast.Node) {
		a.walk(src, root, ast.OpNone, &out)
	})

	return out
}

// walk visits n in pre-order. A logical node whose parent uses a different
// operator starts a maximal run of its own operator; nested nodes of the
// same operator are part of that run and are not scanned again.
func (a *Analyzer) walk(src *ast.Source, n *ast.Node, parent ast.Op, out *[]Finding) {
	if n == nil {
		return
	}

	if n.Kind == ast.KindLogical && n.Op != parent {
		switch {
		case n.Op == ast.OpLogicalAnd && a.checks.Enabled(config.AndChains),
			n.Op == ast.OpLogicalOr && a.checks.Enabled(config.OrChains):
			ops := chain.Flatten(n, n.Op)

			for _, c := range chain.Scan(src, ops, n.Op) {
				*out = append(*out, chainFinding(src, c))
			}
		}
	}

	if a.checks.Enabled(config.Fallback) {
		if m, ok := fallback.Detect(n); ok {
			*out = append(*out, fallbackFinding(src, m))
		}
	}

	childParent := ast.OpNone
	if n.Kind == ast.KindLogical {
		childParent = n.Op
	}

	for _, c := range ast.Children(n) {
		a.walk(src, c, childParent, out)
	}
}

func chainFinding(src *ast.Source, c chain.Chain) Finding {
	return Finding{
		Kind:        Kind,
		Pos:         c.Start,
		End:         c.End,
		Message:     fmt.Sprintf("guards on %q can be combined with the chaining operator", src.Compact(c.Root)),
		Replacement: render.Chain(src, c),
	}
}

func fallbackFinding(src *ast.Source, m fallback.Match) Finding {
	return Finding{
		Kind:        Kind,
		Pos:         m.Access.Pos,
		End:         m.Access.End,
		Message:     "fallback to an empty object can be replaced with the chaining operator",
		Replacement: render.Fallback(src, m),
	}
}
