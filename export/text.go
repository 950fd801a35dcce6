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

package export

import (
	"github.com/xlab/treeprint"

	"github.com/cybrota/ordtree"
)

type textFrame[K any, V any] struct {
	branch treeprint.Tree
	node   *ordtree.Node[K, V]
}

// Text renders the tree under root as an indented outline, tagging each
// child with [L] or [R]. An empty tree renders as "".
func Text[K any, V any](root *ordtree.Node[K, V]) string {
	if root == nil {
		return ""
	}

	outline := treeprint.NewWithRoot(root.KeyString())
	stack := []textFrame[K, V]{{branch: outline, node: root}}
	for len(stack) > 0 {
		frame := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if left := frame.node.Left(); left != nil {
			branch := frame.branch.AddMetaBranch(LeftLabel, left.KeyString())
			stack = append(stack, textFrame[K, V]{branch: branch, node: left})
		}
		if right := frame.node.Right(); right != nil {
			branch := frame.branch.AddMetaBranch(RightLabel, right.KeyString())
			stack = append(stack, textFrame[K, V]{branch: branch, node: right})
		}
	}

	return outline.String()
}
