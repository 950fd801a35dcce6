// Copyright 2025 Naren Yellavula
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

package ordtree

import (
	"github.com/sirupsen/logrus"
)

var log = logrus.WithField("component", "ordtree")

type options struct {
	logger logrus.FieldLogger
	filter *missFilter
}

// Option configures a Tree at construction time.
type Option func(*options)

// WithLogger routes the tree's debug events to logger.
func WithLogger(logger logrus.FieldLogger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithMissFilter puts a Bloom filter sized for expectedKeys in front of
// every key search, so lookups of keys never inserted fail without walking
// the tree. With NewFunc, keys the comparator treats as equal must also
// format identically with fmt.
func WithMissFilter(expectedKeys uint, falsePositiveRate float64) Option {
	return func(o *options) {
		o.filter = newMissFilter(expectedKeys, falsePositiveRate)
	}
}

func buildOptions(opts []Option) options {
	o := options{logger: log}
	for _, opt := range opts {
		opt(&o)
	}
	return o
}
