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
	"fmt"
	"reflect"

	"github.com/willf/bloom"
)

const (
	defaultFilterKeys        = 1024
	defaultFalsePositiveRate = 0.01
)

// missFilter remembers every key ever inserted. Removed keys are not
// cleared, so it can only report false positives, never false negatives.
type missFilter struct {
	bloomFilter *bloom.BloomFilter
}

func newMissFilter(expectedKeys uint, falsePositiveRate float64) *missFilter {
	if expectedKeys == 0 {
		expectedKeys = defaultFilterKeys
	}
	if falsePositiveRate <= 0 || falsePositiveRate >= 1 {
		falsePositiveRate = defaultFalsePositiveRate
	}
	return &missFilter{bloomFilter: bloom.NewWithEstimates(expectedKeys, falsePositiveRate)}
}

func (f *missFilter) add(key any) {
	if f == nil {
		return
	}
	f.bloomFilter.Add(filterKey(key))
}

// absent reports whether key was definitely never inserted. A nil filter
// knows nothing and always answers false.
func (f *missFilter) absent(key any) bool {
	if f == nil {
		return false
	}
	return !f.bloomFilter.Test(filterKey(key))
}

// filterKey encodes key for hashing. Signed zeros compare equal under
// cmp.Compare but print differently, so every float kind, named types
// included, maps both zeros to one encoding.
func filterKey(key any) []byte {
	if k, ok := key.(string); ok {
		return []byte(k)
	}
	v := reflect.ValueOf(key)
	switch v.Kind() {
	case reflect.Float32, reflect.Float64:
		if v.Float() == 0 {
			return []byte("0")
		}
	}
	return fmt.Append(nil, key)
}
