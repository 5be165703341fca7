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
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/hashicorp/go-hclog"
)

// discover expands the given paths into the list of files to scan, in a
// stable order. Files named explicitly are always scanned; directory walks
// only pick up the configured extensions and skip hidden directories and
// node_modules.
func discover(paths, extensions []string, logger hclog.Logger) ([]string, error) {
	var files []string

	for _, path := range paths {
		info, err := os.Stat(path)
		if err != nil {
			return nil, fmt.Errorf("can't scan %q: %w", path, err)
		}

		if !info.IsDir() {
			files = append(files, path)

			continue
		}

		err = filepath.WalkDir(path, func(p string, d fs.DirEntry, err error) error {
			if err != nil {
				return err
			}

			name := d.Name()

			if d.IsDir() {
				if p != path && (name == "node_modules" || strings.HasPrefix(name, ".")) {
					logger.Debug("skipping directory", "path", p)

					return fs.SkipDir
				}

				return nil
			}

			if slices.Contains(extensions, filepath.Ext(name)) {
				files = append(files, p)
			}

			return nil
		})
		if err != nil {
			return nil, fmt.Errorf("can't scan %q: %w", path, err)
		}
	}

	slices.Sort(files)

	return slices.Compact(files), nil
}
