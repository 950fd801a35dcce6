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

// Package export renders the shape of an ordtree.Tree for diagramming.
// Exporters only read node keys and child links; they never mutate a tree.
package export

import "github.com/cybrota/ordtree"

const (
	LeftLabel  = "L"
	RightLabel = "R"
)

// Edge links a parent key to a child key. Label is LeftLabel or RightLabel.
type Edge struct {
	From  string
	To    string
	Label string
}

// Walk visits the subtree under root in pre-order. vertex is called once per
// node with its display key; edge is called for each of the node's child
// links, left before right. Either callback may be nil. The first callback
// error stops the walk and is returned.
func Walk[K any, V any](root *ordtree.Node[K, V], vertex func(key string) error, edge func(Edge) error) error {
	if root == nil {
		return nil
	}

	stack := []*ordtree.Node[K, V]{root}
	for len(stack) > 0 {
		node := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		key := node.KeyString()
		if vertex != nil {
			if err := vertex(key); err != nil {
				return err
			}
		}

		left, right := node.Left(), node.Right()
		if edge != nil {
			if left != nil {
				if err := edge(Edge{From: key, To: left.KeyString(), Label: LeftLabel}); err != nil {
					return err
				}
			}
			if right != nil {
				if err := edge(Edge{From: key, To: right.KeyString(), Label: RightLabel}); err != nil {
					return err
				}
			}
		}

		if right != nil {
			stack = append(stack, right)
		}
		if left != nil {
			stack = append(stack, left)
		}
	}
	return nil
}
