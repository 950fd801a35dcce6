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

// Package ordtree implements an ordered key-value container on an
// unbalanced binary search tree.
//
// The tree is never rebalanced: its shape follows insertion order, so random
// keys give O(log n) operations while sorted input degrades to an O(n) chain.
// Walks and deletions are iterative, so a degenerate tree cannot overflow the
// goroutine stack.
//
// A Tree is not safe for concurrent use. Callers serialize mutations with
// each other and with traversals.
package ordtree

import (
	"cmp"
	"sync/atomic"

	"github.com/sirupsen/logrus"
)

// treeIDs hands out Tree identities; zero is never used.
var treeIDs atomic.Uint64

// Tree is an ordered map from K to V. Create one with New or NewFunc.
type Tree[K any, V any] struct {
	id      uint64
	root    *Node[K, V]
	cmp     func(a, b K) int
	size    int
	version uint64

	logger logrus.FieldLogger
	filter *missFilter
}

// New returns an empty tree ordered by the natural order of K.
func New[K cmp.Ordered, V any](opts ...Option) *Tree[K, V] {
	return NewFunc[K, V](cmp.Compare[K], opts...)
}

// NewFunc returns an empty tree ordered by compare, which returns a negative
// number when a < b, zero when a == b and a positive number when a > b.
func NewFunc[K any, V any](compare func(a, b K) int, opts ...Option) *Tree[K, V] {
	o := buildOptions(opts)
	return &Tree[K, V]{
		id:     treeIDs.Add(1),
		cmp:    compare,
		logger: o.logger,
		filter: o.filter,
	}
}

// Root returns the root node, or nil for an empty tree. The node graph is
// read-only to callers.
func (tree *Tree[K, V]) Root() *Node[K, V] {
	return tree.root
}

// ID identifies the tree for the life of the process. No two trees share
// an ID, even after one of them has been garbage collected.
func (tree *Tree[K, V]) ID() uint64 {
	return tree.id
}

// Len returns the number of nodes.
func (tree *Tree[K, V]) Len() int {
	return tree.size
}

// Version changes on every insert, update and removal.
func (tree *Tree[K, V]) Version() uint64 {
	return tree.version
}

// Insert stores value under key. An existing key has its value overwritten
// in place; otherwise a new leaf is attached where the search path ends.
func (tree *Tree[K, V]) Insert(key K, value V) {
	slot := &tree.root
	for *slot != nil {
		node := *slot
		c := tree.cmp(key, node.key)
		if c < 0 {
			slot = &node.left
		} else if c > 0 {
			slot = &node.right
		} else {
			node.value = value
			tree.version++
			return
		}
	}

	*slot = &Node[K, V]{key: key, value: value}
	tree.size++
	tree.version++
	tree.filter.add(key)
}

// Lookup returns the entry stored under key.
func (tree *Tree[K, V]) Lookup(key K) (Entry[K, V], error) {
	slot := tree.slotOf(key)
	if slot == nil {
		return Entry[K, V]{}, &KeyNotFoundError{Key: key}
	}
	return (*slot).entry(), nil
}

// Contains reports whether a node carries key.
func (tree *Tree[K, V]) Contains(key K) bool {
	return tree.slotOf(key) != nil
}

// Update overwrites the value of an existing key. Unlike Insert it never
// creates a node: an absent key leaves the tree untouched.
func (tree *Tree[K, V]) Update(key K, value V) error {
	if !tree.Contains(key) {
		tree.logger.WithField("key", key).Debug("update of missing key")
		return &KeyNotFoundError{Key: key}
	}
	tree.Insert(key, value)
	return nil
}

// Remove deletes the node stored under key and splices its children back
// into the tree. A node with two children is replaced by its in-order
// successor; no keys or values are copied between nodes.
func (tree *Tree[K, V]) Remove(key K) error {
	slot := tree.slotOf(key)
	if slot == nil {
		tree.logger.WithField("key", key).Debug("remove of missing key")
		return &KeyNotFoundError{Key: key}
	}

	node := *slot
	*slot = tree.splice(node)
	node.left, node.right = nil, nil

	tree.size--
	tree.version++
	return nil
}

// splice returns the subtree that takes node's place once node is unlinked.
func (tree *Tree[K, V]) splice(node *Node[K, V]) *Node[K, V] {
	if node.right == nil {
		// Also covers the leaf case.
		tree.logSplice(node, "left")
		return node.left
	}
	if node.left == nil {
		tree.logSplice(node, "right")
		return node.right
	}

	parent, successor := node, node.right
	for successor.left != nil {
		parent, successor = successor, successor.left
	}

	// the successor's right subtree moves up into the successor's old slot
	if parent == node {
		node.right = successor.right
	} else {
		parent.left = successor.right
	}

	successor.left = node.left
	successor.right = node.right
	tree.logSplice(node, "successor")
	return successor
}

func (tree *Tree[K, V]) logSplice(node *Node[K, V], promoted string) {
	tree.logger.WithFields(logrus.Fields{
		"key":      node.key,
		"promoted": promoted,
	}).Debug("node spliced out")
}

// slotOf returns the link that points at the node holding key, or nil when
// the key is absent. The link is either tree.root or a parent's child field.
func (tree *Tree[K, V]) slotOf(key K) **Node[K, V] {
	if tree.filter.absent(key) {
		return nil
	}

	slot := &tree.root
	for *slot != nil {
		node := *slot
		c := tree.cmp(key, node.key)
		if c < 0 {
			slot = &node.left
		} else if c > 0 {
			slot = &node.right
		} else {
			return slot
		}
	}
	return nil
}

// Min returns the entry with the smallest key.
func (tree *Tree[K, V]) Min() (Entry[K, V], error) {
	if tree.root == nil {
		return Entry[K, V]{}, ErrEmptyTree
	}
	return leftmost(tree.root).entry(), nil
}

// Max returns the entry with the largest key.
func (tree *Tree[K, V]) Max() (Entry[K, V], error) {
	if tree.root == nil {
		return Entry[K, V]{}, ErrEmptyTree
	}
	return rightmost(tree.root).entry(), nil
}

func leftmost[K any, V any](node *Node[K, V]) *Node[K, V] {
	for node.left != nil {
		node = node.left
	}
	return node
}

func rightmost[K any, V any](node *Node[K, V]) *Node[K, V] {
	for node.right != nil {
		node = node.right
	}
	return node
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (tree *Tree[K, V]) Height() int {
	height := 0
	level := []*Node[K, V]{}
	if tree.root != nil {
		level = append(level, tree.root)
	}
	for len(level) > 0 {
		height++
		var next []*Node[K, V]
		for _, node := range level {
			if node.left != nil {
				next = append(next, node.left)
			}
			if node.right != nil {
				next = append(next, node.right)
			}
		}
		level = next
	}
	return height
}
