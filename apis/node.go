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

package apis

import "reflect"

// Node is a (value, type) pair under evaluation during a traversal.
// Value may be nil (an absent node); Type is always non-nil: for absent
// nodes it carries the declared field type or the generic any fallback.
type Node struct {
	// Value is the node's current value, nil when absent.
	Value any
	// Type is the node's runtime or declared type.
	Type reflect.Type
}

// Absent reports whether the node carries no value.
func (n Node) Absent() bool {
	return n.Value == nil
}

// Child is a (value, type, segment) triple produced by an Expander.
// Segment is the path segment under which the child is reached from its
// parent (a field name, "[3]", "VAL[k]", ...).
type Child struct {
	// Value is the child's value, nil when absent.
	Value any
	// Type is the child's runtime or declared type.
	Type reflect.Type
	// Segment is the child's path segment relative to the parent.
	Segment string
}

// Node converts the child triple into a Node for the next traversal step.
func (c Child) Node() Node {
	return Node{Value: c.Value, Type: c.Type}
}

// Predicate is the caller-supplied assertion applied to every visited
// node. Returning false records the node's location as a failure.
// A Predicate must not panic for normal domain values; a panic propagates
// to the caller uncaught and aborts the run.
type Predicate func(n Node) bool
