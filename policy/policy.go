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

// Package policy answers the yes/no traversal questions the driver asks
// before visiting a node: is the node ignored, and may the predicate run
// on a container object. All functions are pure over (node, config).
package policy

import (
	"github.com/BenTels/assertj-core/apis"
	"github.com/BenTels/assertj-core/optional"
	uref "github.com/BenTels/assertj-core/utils/reflect"
)

// Ignored reports whether the node is excluded from the traversal
// entirely: no cycle-guard marking, no assertion, no recursion. leaf is
// the final segment of the node's path ("" at the root).
//
// The rules run in a fixed order, first match wins:
//  1. absent value while ignoring null fields,
//  2. primitive type while not asserting primitives,
//  3. empty optional wrapper while ignoring those,
//  4. final segment matches an ignored field name or pattern,
//  5. exact type membership in the ignored-types set.
func Ignored(n apis.Node, leaf string, cfg apis.Config) bool {
	if n.Absent() && cfg.IgnoreAllNullFields {
		return true
	}
	if uref.IsPrimitive(n.Type) && !cfg.AssertOverPrimitiveFields {
		return true
	}
	if cfg.IgnoreAllEmptyOptionalFields && isEmptyOptional(n.Value) {
		return true
	}
	if matchesIgnoredField(leaf, cfg) {
		return true
	}
	if cfg.IgnoredTypes != nil && cfg.IgnoredTypes.Contains(n.Type) {
		return true
	}
	return false
}

// isEmptyOptional recognizes an empty wrapper of any of the four optional
// kinds. Deliberately not gated by SkipStandardLibraryTypes: the ignore
// rule fires even when classification would treat the wrapper as a plain
// object.
func isEmptyOptional(v any) bool {
	w, ok := v.(optional.Wrapper)
	return ok && !w.Present()
}

// matchesIgnoredField matches the final path segment against the ignored
// field names and patterns. The root has no segment and never matches.
func matchesIgnoredField(leaf string, cfg apis.Config) bool {
	if leaf == "" {
		return false
	}
	for _, name := range cfg.IgnoredFields {
		if leaf == name {
			return true
		}
	}
	for _, pat := range cfg.IgnoredFieldPatterns {
		if pat != nil && pat.MatchString(leaf) {
			return true
		}
	}
	return false
}

// ForbidsAsserting reports whether the active container policy excludes
// the node itself from the predicate: sequences and arrays under
// ElementsOnly, maps under ValuesOnly. Every other node is asserted.
func ForbidsAsserting(n apis.Node, cfg apis.Config) bool {
	k := uref.Classify(n.Type, cfg)
	switch {
	case (k == uref.Sequence || k == uref.Array) && cfg.CollectionPolicy == apis.ElementsOnly:
		return true
	case k == uref.Map && cfg.MapPolicy == apis.ValuesOnly:
		return true
	default:
		return false
	}
}
