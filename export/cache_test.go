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
	"runtime"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cybrota/ordtree"
)

func TestRendererCachesUnchangedTree(t *testing.T) {
	tree := sampleTree()
	r := NewRenderer[int, string](Options{})

	first, err := r.Render(tree, FormatDOT)
	require.NoError(t, err)
	assert.Equal(t, 1, r.c.ItemCount())

	second, err := r.Render(tree, FormatDOT)
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, r.c.ItemCount())

	tree.Insert(1, "one")
	third, err := r.Render(tree, FormatDOT)
	require.NoError(t, err)
	assert.NotEqual(t, first, third)
	assert.Equal(t, 2, r.c.ItemCount())

	_, err = r.Render(tree, FormatText)
	require.NoError(t, err)
	assert.Equal(t, 3, r.c.ItemCount())
}

func TestRendererShortLivedTrees(t *testing.T) {
	r := NewRenderer[int, string](Options{})

	for i := 0; i < 3000; i++ {
		tree := ordtree.New[int, string]()
		tree.Insert(i, "")

		out, err := r.Render(tree, FormatText)
		require.NoError(t, err)
		require.Equal(t, strconv.Itoa(i), strings.TrimSpace(out), "tree %d", i)

		if i%1000 == 0 {
			runtime.GC()
		}
	}
}

func TestRendererServesFromCache(t *testing.T) {
	tree := sampleTree()
	r := NewRenderer[int, string](Options{})

	// a planted entry proves the second call never re-renders
	r.c.Set(cacheKey(tree, FormatText), "cached", 0)
	out, err := r.Render(tree, FormatText)
	require.NoError(t, err)
	assert.Equal(t, "cached", out)
}

func TestRendererUnsupportedFormat(t *testing.T) {
	r := NewRenderer[int, string](Options{})
	_, err := r.Render(ordtree.New[int, string](), Format("svg"))
	assert.ErrorContains(t, err, `unsupported export format "svg"`)
}

func TestRendererExpiration(t *testing.T) {
	tree := sampleTree()
	r := NewRenderer[int, string](Options{CacheTTL: 100 * time.Millisecond})

	_, err := r.Render(tree, FormatText)
	require.NoError(t, err)

	_, ok := r.c.Get(cacheKey(tree, FormatText))
	assert.True(t, ok)

	time.Sleep(150 * time.Millisecond)

	_, ok = r.c.Get(cacheKey(tree, FormatText))
	assert.False(t, ok)
}
