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

import "iter"

// NodeSort returns every entry in ascending key order. An empty tree yields
// an empty slice.
func (tree *Tree[K, V]) NodeSort() []Entry[K, V] {
	return tree.collect(false)
}

// NodeRSort returns every entry in descending key order. An empty tree
// yields an empty slice.
func (tree *Tree[K, V]) NodeRSort() []Entry[K, V] {
	return tree.collect(true)
}

// All iterates the entries in ascending key order.
func (tree *Tree[K, V]) All() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		tree.inorder(false, func(node *Node[K, V]) bool {
			return yield(node.key, node.value)
		})
	}
}

// Backward iterates the entries in descending key order.
func (tree *Tree[K, V]) Backward() iter.Seq2[K, V] {
	return func(yield func(K, V) bool) {
		tree.inorder(true, func(node *Node[K, V]) bool {
			return yield(node.key, node.value)
		})
	}
}

func (tree *Tree[K, V]) collect(reverse bool) []Entry[K, V] {
	entries := make([]Entry[K, V], 0, tree.size)
	tree.inorder(reverse, func(node *Node[K, V]) bool {
		entries = append(entries, node.entry())
		return true
	})
	return entries
}

// inorder visits left, node, right (right, node, left when reverse) until
// visit returns false. The explicit stack grows with the tree height.
func (tree *Tree[K, V]) inorder(reverse bool, visit func(*Node[K, V]) bool) {
	near := func(n *Node[K, V]) *Node[K, V] { return n.left }
	far := func(n *Node[K, V]) *Node[K, V] { return n.right }
	if reverse {
		near, far = far, near
	}

	var stack []*Node[K, V]
	node := tree.root
	for node != nil || len(stack) > 0 {
		for node != nil {
			stack = append(stack, node)
			node = near(node)
		}

		node = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if !visit(node) {
			return
		}
		node = far(node)
	}
}
