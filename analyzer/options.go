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
	"log/slog"

	"github.com/chainlint/chainlint/internal/config"
)

// Option configures specific behavior of a [New] chainlint analyzer.
type Option interface {
	apply(r *runOptions)
	LogAttr() slog.Attr
}

// Options is a list of [Option] values that itself satisfies the [Option]
// interface.
type Options []Option

// LogValue implements [slog.LogValuer].
func (o Options) LogValue() slog.Value {
	as := make([]slog.Attr, 0, len(o))
	as = appendOptions(as, o)

	return slog.GroupValue(as...)
}

func appendOptions(as []slog.Attr, o Options) []slog.Attr {
	for _, opt := range o {
		switch opt := opt.(type) {
		case nil:
			as = append(as, slog.String("nil", "<nil>"))

		case Options:
			as = appendOptions(as, opt)

		default:
			as = append(as, opt.LogAttr())
		}
	}

	return as
}

func (o Options) apply(r *runOptions) {
	for _, opt := range o {
		if opt == nil {
			continue
		}

		opt.apply(r)
	}
}

// LogAttr is for logging with [slog.Logger.LogAttrs].
func (o Options) LogAttr() slog.Attr {
	return slog.Any("options", o)
}

// WithAndChains is an [Option] to configure whether `&&` guard chains are
// detected.
func WithAndChains(enabled bool) Option { return andChainsOption{enabled: enabled} }

type andChainsOption struct{ enabled bool }

func (o andChainsOption) apply(r *runOptions) {
	r.checks.Set(config.AndChains, o.enabled)
}

func (o andChainsOption) LogAttr() slog.Attr {
	return slog.Bool("andChains", o.enabled)
}

// WithOrChains is an [Option] to configure whether negated `||` guard chains
// are detected.
func WithOrChains(enabled bool) Option { return orChainsOption{enabled: enabled} }

type orChainsOption struct{ enabled bool }

func (o orChainsOption) apply(r *runOptions) {
	r.checks.Set(config.OrChains, o.enabled)
}

func (o orChainsOption) LogAttr() slog.Attr {
	return slog.Bool("orChains", o.enabled)
}

// WithFallback is an [Option] to configure whether empty-object fallback
// accesses are detected.
func WithFallback(enabled bool) Option { return fallbackOption{enabled: enabled} }

type fallbackOption struct{ enabled bool }

func (o fallbackOption) apply(r *runOptions) {
	r.checks.Set(config.Fallback, o.enabled)
}

func (o fallbackOption) LogAttr() slog.Attr {
	return slog.Bool("fallback", o.enabled)
}
