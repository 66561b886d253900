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

// Segmenter labels a value inside a diagnostic path segment.
//
// # Overview
//
// Segmenter is the zero-reflection fast path for naming map keys and map
// values inside location paths. When the engine renders an entry segment
// ("KEY[...]" or "VAL[...]") and the element implements Segmenter, the
// engine MUST prefer PathSegment() over the default fmt-derived string.
//
// Semantically, PathSegment is an instance-level label: it distinguishes
// one element from another inside the same container. It is NOT required
// to be globally unique: location paths are diagnostics, and two
// distinct elements with equal labels produce colliding path segments by
// design.
//
// # Usage
//
// A typical pattern is a domain key type whose fmt representation is too
// noisy for diagnostics:
//
//	type AccountID struct {
//	    Region string
//	    Serial uint64
//	}
//
//	func (id AccountID) PathSegment() string {
//	    return fmt.Sprintf("%s-%d", id.Region, id.Serial)
//	}
//
//	// A failing map value is then reported at e.g. "accounts.VAL[eu-42]"
//	// instead of "accounts.VAL[{eu 42}]".
//
// # Contract
//
//   - The returned label MUST be deterministic for a given instance over
//     the lifetime of one traversal run (no spontaneous changes).
//   - The implementation MUST be safe for concurrent calls from multiple
//     goroutines.
//   - The implementation MUST NOT perform blocking operations or I/O.
//   - The implementation SHOULD be cheap; if the label is derived from
//     expensive state, it SHOULD be precomputed.
//   - The label SHOULD be short and human-readable; it is embedded into
//     path strings read by operators.
type Segmenter interface {
	// PathSegment returns a stable diagnostic label for this instance.
	PathSegment() string
}
