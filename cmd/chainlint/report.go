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

package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/owenrumney/go-sarif/v2/sarif"

	"github.com/chainlint/chainlint/analyzer"
	"github.com/chainlint/chainlint/ast"
)

// location is a finding with its byte range resolved to file coordinates.
type location struct {
	File      string `json:"file"`
	Line      int    `json:"line"`
	Column    int    `json:"column"`
	EndLine   int    `json:"endLine"`
	EndColumn int    `json:"endColumn"`

	analyzer.Finding
}

func locate(src *ast.Source, file string, f analyzer.Finding) location {
	line, col := src.Position(f.Pos)
	endLine, endCol := src.Position(f.End)

	return location{
		File:      file,
		Line:      line,
		Column:    col,
		EndLine:   endLine,
		EndColumn: endCol,
		Finding:   f,
	}
}

func write(w io.Writer, format string, report []location) error {
	switch format {
	case "text":
		return writeText(w, report)

	case "json":
		return writeJSON(w, report)

	case "sarif":
		return writeSarif(w, report)

	default:
		return fmt.Errorf("unknown report format %q", format)
	}
}

func writeText(w io.Writer, report []location) error {
	bold := color.New(color.Bold)
	green := color.New(color.FgGreen)

	for _, l := range report {
		if _, err := bold.Fprintf(w, "%s:%d:%d:", l.File, l.Line, l.Column); err != nil {
			return err
		}

		if _, err := fmt.Fprintf(w, " %s\n", l.Message); err != nil {
			return err
		}

		if _, err := green.Fprintf(w, "  suggestion: %s\n", l.Replacement); err != nil {
			return err
		}
	}

	return nil
}

func writeJSON(w io.Writer, report []location) error {
	if report == nil {
		report = []location{}
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")

	return enc.Encode(struct {
		Findings []location `json:"findings"`
	}{Findings: report})
}

func writeSarif(w io.Writer, report []location) error {
	doc, err := sarif.New(sarif.Version210)
	if err != nil {
		return err
	}

	run := sarif.NewRunWithInformationURI(analyzer.Name, analyzer.URL)

	for _, l := range report {
		rule := run.AddRule(l.Kind).WithDescription(analyzer.Doc)

		loc := sarif.NewLocation().WithPhysicalLocation(
			sarif.NewPhysicalLocation().
				WithArtifactLocation(sarif.NewArtifactLocation().WithUri(l.File)).
				WithRegion(sarif.NewRegion().
					WithStartLine(l.Line).
					WithStartColumn(l.Column).
					WithEndLine(l.EndLine).
					WithEndColumn(l.EndColumn)),
		)

		result := sarif.NewRuleResult(rule.ID).
			WithMessage(sarif.NewTextMessage(l.Message)).
			WithLevel("note").
			WithLocations([]*sarif.Location{loc})
		run.AddResult(result)
	}

	doc.AddRun(run)

	return doc.PrettyWrite(w)
}
