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

// Identified supplies an explicit identity key for the cycle guard.
//
// # Overview
//
// The visited set deduplicates nodes by reference identity: two paths
// reaching the same pointer, map, or slice are processed once. Go value
// types have no reference identity (every occurrence of a struct value
// is a copy), so by default they are processed per occurrence.
//
// Identified lets a value type opt back into identity semantics. When a
// node's value implements Identified, the visited set keys it by
// (concrete type, Identity()) instead of by reference, so two copies of
// the same logical entity are still visited at most once per run.
//
// The type-level and instance-level parts of the key are orthogonal:
//
//   - The concrete type scopes the identity namespace, so identities
//     from unrelated types never collide.
//   - Identity() distinguishes one logical instance of that type from
//     another (for example, a database ID).
//
// # Usage
//
//	type User struct {
//	    ID   string
//	    Name string
//	}
//
//	func (u User) Identity() string { return u.ID }
//
//	// Two User values with ID "123" reached over different paths are
//	// asserted and expanded once per traversal run.
//
// # Contract
//
//   - Identity MUST be deterministic for a given logical instance over
//     the lifetime of one traversal run.
//   - Identity MUST be safe for concurrent calls from multiple
//     goroutines.
//   - Identity MUST NOT perform blocking operations or I/O.
//   - Identity SHOULD be unique within the scope of the concrete type;
//     colliding identities merge distinct instances into one visit,
//     silently suppressing assertions for the later ones.
//   - Implementations MAY return an empty string to mean "no identity";
//     the engine MUST then fall back to reference-identity semantics for
//     that value.
type Identified interface {
	// Identity returns a stable identity key for this logical instance,
	// or "" to decline explicit identity.
	Identity() string
}
