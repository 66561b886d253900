/*
   Copyright 2026 The recassert Authors.

   Licensed under the Apache License, Version 2.0 (the "License");
   you may not use this file except in compliance with the License.
   You may obtain a copy of the License at

       http://www.apache.org/licenses/LICENSE-2.0

   Unless required by applicable law or agreed to in writing, software
   distributed under the License is distributed on an "AS IS" BASIS,
   WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
   See the License for the specific language governing permissions and
   limitations under the License.
*/

// Package expand enumerates the children of a node, one strategy per
// structural kind, assembled into a first-match-wins chain.
package expand

import (
	"fmt"
	"reflect"

	"github.com/BenTels/assertj-core/apis"
	"github.com/BenTels/assertj-core/xapi/common"
)

// New constructs an apis.Expander that tries the given strategies in order.
// Nil strategies are ignored. The returned expander is safe for concurrent
// use provided strategies themselves are safe for concurrent TryExpand calls.
func New(strategies ...apis.Strategy) apis.Expander {
	// Filter out nils to avoid nil-interface panics on call sites.
	out := make([]apis.Strategy, 0, len(strategies))
	for _, s := range strategies {
		if s != nil {
			out = append(out, s)
		}
	}
	return chain{strats: out}
}

// chain is an immutable, order-preserving expander over a set of strategies.
type chain struct {
	strats []apis.Strategy
}

// Expand runs strategies in order until one handles the node.
// Returns no children if no strategy recognized the node's kind.
func (c chain) Expand(n apis.Node, cfg apis.Config) ([]apis.Child, error) {
	for _, s := range c.strats {
		children, handled, err := s.TryExpand(n, cfg)
		if err != nil {
			return nil, err
		}
		if handled {
			return children, nil
		}
	}
	return nil, nil
}

// anyType is the generic fallback type for absent children.
var anyType = reflect.TypeOf((*any)(nil)).Elem()

// runtimeType returns v's runtime type, or the generic fallback for nil.
func runtimeType(v any) reflect.Type {
	if v == nil {
		return anyType
	}
	return reflect.TypeOf(v)
}

// label renders an element for use inside a KEY[...]/VAL[...] segment.
// The common.Segmenter capability wins over the fmt representation; nil
// gets a fixed token so segment text stays readable in reports.
func label(v any) string {
	if v == nil {
		return "nil"
	}
	if s, ok := v.(common.Segmenter); ok {
		return s.PathSegment()
	}
	return fmt.Sprint(v)
}
