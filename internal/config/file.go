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

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/goccy/go-yaml"
)

// DefaultFileName is the configuration file looked up in the working
// directory when no path is given.
const DefaultFileName = ".chainlint.yaml"

// File is the on-disk configuration. Check toggles are pointers so an absent
// key keeps the built-in default.
type File struct {
	Checks struct {
		AndChains *bool `yaml:"and-chains"`
		OrChains  *bool `yaml:"or-chains"`
		Fallback  *bool `yaml:"fallback"`
	} `yaml:"checks"`

	// Format selects the report format: "text", "json" or "sarif".
	Format string `yaml:"format"`

	// Extensions are the file extensions scanned during directory walks.
	Extensions []string `yaml:"extensions"`
}

// Load reads a configuration file. A missing file at the default path is not
// an error; an empty File is returned instead.
func Load(path string) (*File, error) {
	explicit := path != ""
	if !explicit {
		path = DefaultFileName
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if !explicit && errors.Is(err, fs.ErrNotExist) {
			return &File{}, nil
		}

		return nil, fmt.Errorf("can't read configuration: %w", err)
	}

	var f File
	if err := yaml.Unmarshal(data, &f); err != nil {
		return nil, fmt.Errorf("can't parse configuration %q: %w", path, err)
	}

	return &f, nil
}

// ChecksMask folds the file's toggles over the default selection.
func (f *File) ChecksMask() BitMask[Check] {
	checks := AllChecks()

	if v := f.Checks.AndChains; v != nil {
		checks.Set(AndChains, *v)
	}

	if v := f.Checks.OrChains; v != nil {
		checks.Set(OrChains, *v)
	}

	if v := f.Checks.Fallback; v != nil {
		checks.Set(Fallback, *v)
	}

	return checks
}
