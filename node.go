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

import "fmt"

// Node is a single key/value pair of the tree. Its children are owned
// exclusively by the node; a nil child marks an absent subtree.
type Node[K any, V any] struct {
	key   K
	value V
	left  *Node[K, V]
	right *Node[K, V]
}

// Entry is a (key, value) pair returned by lookups and traversals.
type Entry[K any, V any] struct {
	Key   K
	Value V
}

// Key returns the node's key.
func (n *Node[K, V]) Key() K { return n.key }

// Value returns the payload stored under the node's key.
func (n *Node[K, V]) Value() V { return n.value }

// Left returns the left child, or nil. Safe to call on a nil node.
func (n *Node[K, V]) Left() *Node[K, V] {
	if n == nil {
		return nil
	}
	return n.left
}

// Right returns the right child, or nil. Safe to call on a nil node.
func (n *Node[K, V]) Right() *Node[K, V] {
	if n == nil {
		return nil
	}
	return n.right
}

// KeyString renders the key for display, e.g. as a diagram vertex label.
func (n *Node[K, V]) KeyString() string {
	return fmt.Sprint(n.key)
}

func (n *Node[K, V]) entry() Entry[K, V] {
	return Entry[K, V]{Key: n.key, Value: n.value}
}
