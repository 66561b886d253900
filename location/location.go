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

// Package location models the position of a node relative to the
// traversal root as an immutable, appendable sequence of path segments.
package location

import "strings"

// Location identifies a node's position relative to the root. The zero
// value is the root (no segments). Appending a segment never mutates the
// receiver: each append yields a new Location sharing the unmodified
// parent chain.
type Location struct {
	parent  *Location
	segment string
	depth   int
}

// Root returns the root location. Equivalent to the zero value.
func Root() Location {
	return Location{}
}

// Field returns a new Location extending l by one segment. l is shared,
// not copied segment-by-segment.
func (l Location) Field(segment string) Location {
	p := l
	return Location{parent: &p, segment: segment, depth: l.depth + 1}
}

// IsRoot reports whether l is the root location.
func (l Location) IsRoot() bool {
	return l.depth == 0
}

// Leaf returns the final segment, or "" for the root.
func (l Location) Leaf() string {
	return l.segment
}

// Len returns the number of segments.
func (l Location) Len() int {
	return l.depth
}

// Segments returns the segments from the root, outermost first.
func (l Location) Segments() []string {
	if l.depth == 0 {
		return nil
	}
	out := make([]string, l.depth)
	cur := &l
	for i := l.depth - 1; i >= 0; i-- {
		out[i] = cur.segment
		cur = cur.parent
	}
	return out
}

// String returns the segments joined with "."; the root renders as "".
func (l Location) String() string {
	return strings.Join(l.Segments(), ".")
}

// Equal reports whether l and other denote the same path.
func (l Location) Equal(other Location) bool {
	if l.depth != other.depth {
		return false
	}
	a, b := &l, &other
	for a.depth > 0 {
		if a.segment != b.segment {
			return false
		}
		a, b = a.parent, b.parent
	}
	return true
}

// Strings renders a slice of locations, preserving order. Convenience for
// diagnostics and tests.
func Strings(locs []Location) []string {
	out := make([]string, len(locs))
	for i, l := range locs {
		out[i] = l.String()
	}
	return out
}
