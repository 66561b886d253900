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

package common

import "github.com/BenTels/assertj-core/apis"

// Expandable lets a value enumerate its own children.
//
// # Overview
//
// Expandable is the head of the expansion chain: when a node's value
// implements it, the engine MUST use GraphChildren() and MUST NOT apply
// any built-in expander (container, optional, or field based) to that
// node. This is the escape hatch for types whose structural children do
// not match their physical layout: lazy containers, handles wrapping
// out-of-band state, or types with unexported payloads that should still
// be traversed.
//
// Self-expansion replaces only child enumeration. The node itself is
// still subject to the ignore rules, the cycle guard, and the predicate
// like any other node, and each returned child is traversed under the
// returned segment with full policy applied.
//
// # Usage
//
//	type Pair struct {
//	    left, right any // unexported: invisible to field expansion
//	}
//
//	func (p Pair) GraphChildren() []apis.Child {
//	    return []apis.Child{
//	        {Value: p.left, Type: reflect.TypeOf(p.left), Segment: "left"},
//	        {Value: p.right, Type: reflect.TypeOf(p.right), Segment: "right"},
//	    }
//	}
//
// # Contract
//
//   - GraphChildren MUST be deterministic for a given instance during one
//     traversal run: same children, same order.
//   - Each returned Child MUST carry a non-nil Type; absent children use
//     a declared or fallback type with a nil Value.
//   - GraphChildren MUST NOT mutate the receiver or any reachable state.
//   - GraphChildren MUST be safe for concurrent calls from multiple
//     goroutines and MUST NOT perform blocking operations or I/O.
//   - Segments SHOULD be unique within one parent; colliding segments
//     produce ambiguous diagnostic paths.
type Expandable interface {
	// GraphChildren returns this value's child triples in traversal order.
	GraphChildren() []apis.Child
}
