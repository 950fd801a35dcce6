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
	"time"

	"github.com/emicklei/dot"
	"github.com/pkg/errors"

	"github.com/cybrota/ordtree"
)

// Options tune the rendered output and the Renderer cache.
type Options struct {
	// RankDir is the Graphviz rankdir attribute, e.g. "TB" or "LR".
	RankDir  string
	CacheTTL time.Duration
}

// DOT renders the tree under root as a Graphviz digraph laid out by the dot
// engine: one vertex per key and one edge per child link, labeled L or R.
func DOT[K any, V any](root *ordtree.Node[K, V], opts Options) (string, error) {
	g := dot.NewGraph(dot.Directed)
	g.Attr("layout", "dot")
	if opts.RankDir != "" {
		g.Attr("rankdir", opts.RankDir)
	}

	err := Walk(root,
		func(key string) error {
			g.Node(key)
			return nil
		},
		func(e Edge) error {
			g.Edge(g.Node(e.From), g.Node(e.To), e.Label)
			return nil
		},
	)
	if err != nil {
		return "", errors.Wrap(err, "failed to build dot graph")
	}

	return g.String(), nil
}
