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

	"github.com/pkg/errors"
)

var (
	// ErrKeyNotFound matches every *KeyNotFoundError through errors.Is.
	ErrKeyNotFound = errors.New("key not found")

	// ErrEmptyTree is returned by Min and Max on a tree with no nodes.
	ErrEmptyTree = errors.New("tree is empty")
)

// KeyNotFoundError is returned by Lookup, Update and Remove when no node
// carries the requested key.
type KeyNotFoundError struct {
	Key any
}

func (e *KeyNotFoundError) Error() string {
	return fmt.Sprintf("key %v not found in the binary search tree", e.Key)
}

func (e *KeyNotFoundError) Is(target error) bool {
	return target == ErrKeyNotFound
}
