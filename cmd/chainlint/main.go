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

// Chainlint scans script files for guard chains and empty-object fallbacks
// that can use the chaining operator, and prints the suggested rewrites.
//
// Exit code 0 means a clean scan, 1 means findings were reported, 2 means
// the scan itself failed.
package main

import (
	"errors"
	"fmt"
	"os"
)

func main() {
	switch err := newRootCmd().Execute(); {
	case err == nil:

	case errors.Is(err, errFindings):
		os.Exit(1)

	default:
		fmt.Fprintf(os.Stderr, "chainlint: %v\n", err)
		os.Exit(2)
	}
}
