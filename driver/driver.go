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

// Package driver walks an object graph from a root value and applies a
// caller-supplied predicate to every reachable node exactly once. Nodes for
// which the predicate returns false are collected as dotted location paths.
package driver

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/BenTels/assertj-core/apis"
	"github.com/BenTels/assertj-core/location"
	"github.com/BenTels/assertj-core/policy"
	"github.com/BenTels/assertj-core/visited"
)

// ErrNilRoot is returned when the root of the traversal is nil or a nil
// reference, since no graph can be walked from it.
var ErrNilRoot = errors.New("driver: root object is nil")

// Driver holds the state of one or more traversals. A Driver is not safe
// for concurrent use; each goroutine should create its own.
type Driver struct {
	cfg    apis.Config
	exp    apis.Expander
	seen   *visited.Set
	failed []location.Location
}

// New creates a Driver that traverses graphs under the given configuration
// using the given expander.
func New(cfg apis.Config, exp apis.Expander) *Driver {
	return &Driver{
		cfg:  cfg,
		exp:  exp,
		seen: visited.New(),
	}
}

// item is one pending node on the traversal worklist.
type item struct {
	node  apis.Node
	loc   location.Location
	depth int
}

// AssertOverGraph walks the graph rooted at root in depth-first pre-order,
// applying pred to each node visited for the first time. It returns the
// locations of all nodes for which pred returned false. Traversal state is
// reset on entry, so repeated calls on the same Driver are independent.
func (d *Driver) AssertOverGraph(pred apis.Predicate, root any) ([]location.Location, error) {
	d.Reset()

	root = normalize(root)
	if root == nil {
		return nil, ErrNilRoot
	}

	work := []item{{
		node: apis.Node{Value: root, Type: reflect.TypeOf(root)},
		loc:  location.Root(),
	}}

	for len(work) > 0 {
		it := work[len(work)-1]
		work = work[:len(work)-1]

		it.node.Value = normalize(it.node.Value)
		if policy.Ignored(it.node, it.loc.Leaf(), d.cfg) {
			continue
		}
		if !it.node.Absent() {
			if already := d.seen.Mark(it.node.Value); already {
				continue
			}
		}

		if !policy.ForbidsAsserting(it.node, d.cfg) {
			if !pred(it.node) {
				d.failed = append(d.failed, it.loc)
			}
		}

		if d.cfg.MaxDepth > 0 && it.depth >= d.cfg.MaxDepth {
			continue
		}

		children, err := d.exp.Expand(it.node, d.cfg)
		if err != nil {
			return d.failures(), fmt.Errorf("driver: expanding %s: %w", describe(it.loc), err)
		}
		// Children are pushed in reverse so the worklist pops them in
		// their original order, preserving pre-order traversal.
		for i := len(children) - 1; i >= 0; i-- {
			c := children[i]
			work = append(work, item{
				node:  c.Node(),
				loc:   it.loc.Field(c.Segment),
				depth: it.depth + 1,
			})
		}
	}

	return d.failures(), nil
}

// Reset clears the visited set and the collected failures.
func (d *Driver) Reset() {
	d.seen.Reset()
	d.failed = d.failed[:0]
}

// failures returns a copy of the collected failure locations so callers
// cannot alias the Driver's internal slice.
func (d *Driver) failures() []location.Location {
	out := make([]location.Location, len(d.failed))
	copy(out, d.failed)
	return out
}

// normalize collapses typed nil references to the untyped nil so absence
// checks behave uniformly regardless of the static type a nil arrived in.
func normalize(v any) any {
	if v == nil {
		return nil
	}
	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
	}
	return v
}

func describe(loc location.Location) string {
	if loc.IsRoot() {
		return "root"
	}
	return loc.String()
}
