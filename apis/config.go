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

import "regexp"

// Config carries the read-only traversal policy consumed by the engine.
// It is passed by value and must be treated as immutable during a run.
// Construction and option handling belong to the config package; the core
// only queries it.
type Config struct {
	// IgnoreAllNullFields skips absent (nil) nodes entirely: no assertion,
	// no recursion, no cycle-guard marking.
	IgnoreAllNullFields bool

	// AssertOverPrimitiveFields controls whether nodes of primitive kind
	// (bool, integer, float, complex, but not string) are asserted. When
	// false, primitive nodes are ignored.
	AssertOverPrimitiveFields bool

	// IgnoreAllEmptyOptionalFields skips empty optional wrappers of any of
	// the four supported kinds (generic, int, double, long).
	IgnoreAllEmptyOptionalFields bool

	// SkipStandardLibraryTypes prevents field-level recursion into values
	// whose runtime type belongs to the Go standard library namespace.
	// It also gates the special classification of optional wrappers: with
	// the flag off, optional values fall through to plain field expansion.
	SkipStandardLibraryTypes bool

	// CollectionPolicy governs slices and arrays: assert the container
	// object, its elements, or both.
	CollectionPolicy CollectionPolicy

	// MapPolicy governs maps: assert values only, the map object only, or
	// the map object plus both keys and values.
	MapPolicy MapPolicy

	// IgnoredFields lists field names whose nodes are skipped. Matching is
	// against the final path segment.
	IgnoredFields []string

	// IgnoredFieldPatterns lists compiled patterns applied to the final
	// path segment. A match skips the node.
	IgnoredFieldPatterns []*regexp.Regexp

	// IgnoredTypes holds exact reflect.Types whose nodes are skipped.
	// Exact match only; assignability and subtyping do not apply.
	// May be nil (nothing ignored by type).
	IgnoredTypes TypeSet

	// MaxUnwrap limits pointer unwrapping depth during structural-kind
	// classification. Acts as a safety guard against pathological nesting.
	MaxUnwrap int

	// MaxDepth bounds the traversal depth. Nodes at the limit are still
	// asserted but not expanded. Zero means unbounded.
	MaxDepth int
}
