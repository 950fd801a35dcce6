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
	"slices"
	"testing"

	"github.com/brianvoe/gofakeit/v6"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// checkTree compares tree against a map holding the same contents.
func checkTree(t *testing.T, tree *Tree[int, string], model map[int]string) {
	t.Helper()

	sorted := tree.NodeSort()
	require.Len(t, sorted, len(model))
	require.Equal(t, len(model), tree.Len())

	for i := 1; i < len(sorted); i++ {
		require.Less(t, sorted[i-1].Key, sorted[i].Key, "keys out of order at %d", i)
	}

	reversed := tree.NodeRSort()
	slices.Reverse(reversed)
	require.Equal(t, sorted, reversed)

	for _, e := range sorted {
		require.Equal(t, model[e.Key], e.Value)
	}
}

func TestRandomOperations(t *testing.T) {
	for _, seed := range []int64{1, 7, 42, 2025} {
		faker := gofakeit.New(seed)
		tree := New[int, string]()
		model := map[int]string{}

		for step := 0; step < 2000; step++ {
			key := faker.Number(0, 300)
			switch faker.Number(0, 3) {
			case 0, 1:
				value := faker.Word()
				sizeBefore := tree.Len()
				_, existed := model[key]
				tree.Insert(key, value)
				model[key] = value

				entry, err := tree.Lookup(key)
				require.NoError(t, err)
				assert.Equal(t, value, entry.Value)
				if existed {
					assert.Equal(t, sizeBefore, tree.Len())
				} else {
					assert.Equal(t, sizeBefore+1, tree.Len())
				}
			case 2:
				sizeBefore := tree.Len()
				err := tree.Remove(key)
				if _, ok := model[key]; ok {
					require.NoError(t, err)
					delete(model, key)
					assert.Equal(t, sizeBefore-1, tree.Len())
					_, err = tree.Lookup(key)
					assert.ErrorIs(t, err, ErrKeyNotFound)
				} else {
					assert.ErrorIs(t, err, ErrKeyNotFound)
					assert.Equal(t, sizeBefore, tree.Len())
				}
			case 3:
				value := faker.Word()
				err := tree.Update(key, value)
				if _, ok := model[key]; ok {
					require.NoError(t, err)
					model[key] = value
				} else {
					assert.ErrorIs(t, err, ErrKeyNotFound)
				}
			}
		}

		checkTree(t, tree, model)
	}
}

func TestNotFoundLeavesTreeUnchanged(t *testing.T) {
	faker := gofakeit.New(99)
	tree := New[int, string]()
	for i := 0; i < 100; i++ {
		tree.Insert(faker.Number(0, 1000)*2, faker.Word())
	}
	before := tree.NodeSort()
	size := tree.Len()

	// odd keys are never inserted
	_, err := tree.Lookup(1)
	assert.ErrorIs(t, err, ErrKeyNotFound)
	assert.ErrorIs(t, tree.Update(3, "x"), ErrKeyNotFound)
	assert.ErrorIs(t, tree.Remove(5), ErrKeyNotFound)

	assert.Equal(t, size, tree.Len())
	assert.Equal(t, before, tree.NodeSort())
}
