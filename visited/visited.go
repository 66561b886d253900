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

// Package visited implements the identity-keyed cycle guard: once an
// object instance is marked, it is never processed again for the
// remainder of one traversal run.
package visited

import (
	"reflect"

	"github.com/BenTels/assertj-core/xapi/common"
)

// refKey identifies a reference value. The type disambiguates distinct
// objects sharing an address (a struct and its first field); the length
// disambiguates reslices sharing a base pointer.
type refKey struct {
	ptr    uintptr
	length int
	typ    reflect.Type
}

// idKey identifies a value carrying an explicit common.Identified key,
// scoped by its concrete type.
type idKey struct {
	typ reflect.Type
	id  string
}

// Set is the per-run visited set. It is exclusively owned by one driver
// for the duration of one traversal; no locking, by construction.
type Set struct {
	refs map[refKey]struct{}
	ids  map[idKey]struct{}
}

// New returns an empty Set.
func New() *Set {
	return &Set{
		refs: make(map[refKey]struct{}),
		ids:  make(map[idKey]struct{}),
	}
}

// Mark records v as visited and reports whether it had been marked
// before. Values without usable identity (nil, plain value kinds, empty
// slices, Identified values declining with an empty key that are not
// references) are never recorded and always report false, so each of
// their occurrences is processed independently.
func (s *Set) Mark(v any) (already bool) {
	if v == nil {
		return false
	}

	if id, ok := v.(common.Identified); ok {
		if key := id.Identity(); key != "" {
			k := idKey{typ: reflect.TypeOf(v), id: key}
			if _, seen := s.ids[k]; seen {
				return true
			}
			s.ids[k] = struct{}{}
			return false
		}
	}

	rv := reflect.ValueOf(v)
	var k refKey
	switch rv.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Chan, reflect.Func, reflect.UnsafePointer:
		k = refKey{ptr: rv.Pointer(), typ: rv.Type()}
	case reflect.Slice:
		if rv.Len() == 0 {
			// Distinct empty slices share the runtime's zero-size base
			// address, so their pointers do not distinguish instances.
			// An empty slice has no children and cannot close a cycle;
			// process each occurrence independently.
			return false
		}
		k = refKey{ptr: rv.Pointer(), length: rv.Len(), typ: rv.Type()}
	default:
		// No reference identity; process per occurrence.
		return false
	}

	if _, seen := s.refs[k]; seen {
		return true
	}
	s.refs[k] = struct{}{}
	return false
}

// Len returns the number of marked instances.
func (s *Set) Len() int {
	return len(s.refs) + len(s.ids)
}

// Reset clears the set for a new run.
func (s *Set) Reset() {
	s.refs = make(map[refKey]struct{})
	s.ids = make(map[idKey]struct{})
}
