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

// TypeSet is an exact-match membership set of reflect.Types, used for the
// ignored-types policy. Keep it minimal so implementations can be
// lock-free or sync.Map-backed.
type TypeSet interface {
	// Add inserts t into the set. Idempotent for repeated inserts.
	Add(t reflect.Type) error
	// Contains reports exact membership of t. No assignability or
	// subtype checks are performed.
	Contains(t reflect.Type) bool
	// Entries returns a snapshot for diagnostics (order is unspecified).
	Entries() []reflect.Type
	// Count returns the number of member types.
	Count() int
	// Reset clears the set.
	Reset()
}
