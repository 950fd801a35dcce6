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
	"fmt"
	"time"

	"github.com/patrickmn/go-cache"
	"github.com/pkg/errors"

	"github.com/cybrota/ordtree"
)

const (
	// Keep rendered diagrams for 30 minutes unless Options.CacheTTL says otherwise
	renderCacheExpiration = 30 * time.Minute
	// Clean up expired entries every 5 minutes
	renderCacheCleanup = 5 * time.Minute
)

// Format names an output produced by Renderer.
type Format string

const (
	FormatDOT  Format = "dot"
	FormatText Format = "text"
)

// Renderer memoizes exports per tree ID, tree version and format, so an
// unchanged tree is rendered once.
type Renderer[K any, V any] struct {
	c    *cache.Cache
	opts Options
}

// NewRenderer returns a Renderer whose entries live for opts.CacheTTL.
func NewRenderer[K any, V any](opts Options) *Renderer[K, V] {
	ttl := opts.CacheTTL
	if ttl <= 0 {
		ttl = renderCacheExpiration
	}
	return &Renderer[K, V]{
		c:    cache.New(ttl, renderCacheCleanup),
		opts: opts,
	}
}

// Render returns the tree in the requested format.
func (r *Renderer[K, V]) Render(tree *ordtree.Tree[K, V], format Format) (string, error) {
	key := cacheKey(tree, format)
	if val, ok := r.c.Get(key); ok {
		return val.(string), nil
	}

	var out string
	switch format {
	case FormatDOT:
		rendered, err := DOT(tree.Root(), r.opts)
		if err != nil {
			return "", err
		}
		out = rendered
	case FormatText:
		out = Text(tree.Root())
	default:
		return "", errors.Errorf("unsupported export format %q", format)
	}

	r.c.Set(key, out, cache.DefaultExpiration)
	return out, nil
}

func cacheKey[K any, V any](tree *ordtree.Tree[K, V], format Format) string {
	return fmt.Sprintf("%d/%d/%s", tree.ID(), tree.Version(), format)
}
