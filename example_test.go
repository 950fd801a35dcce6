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

package ordtree_test

import (
	"fmt"

	"github.com/cybrota/ordtree"
)

func ExampleTree() {
	tree := ordtree.New[int, string]()
	tree.Insert(10, "ten")
	tree.Insert(5, "five")
	tree.Insert(2, "two")

	fmt.Println(tree.NodeSort())
	fmt.Println(tree.NodeRSort())

	if err := tree.Update(7, "seven"); err != nil {
		fmt.Println(err)
	}
	// Output:
	// [{2 two} {5 five} {10 ten}]
	// [{10 ten} {5 five} {2 two}]
	// key 7 not found in the binary search tree
}
