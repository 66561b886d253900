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

package typeset_test

import (
	"reflect"
	"testing"

	"github.com/BenTels/assertj-core/typeset"
)

func TestAdd_IdempotentAndContains(t *testing.T) {
	set := typeset.New()

	if err := set.Add(reflect.TypeOf(T1{})); err != nil {
		t.Fatalf("Add(T1{}): unexpected error: %v", err)
	}
	// idempotent re-add
	if err := set.Add(reflect.TypeOf(T1{})); err != nil {
		t.Fatalf("Add(T1{}) idempotent: unexpected error: %v", err)
	}

	if !set.Contains(reflect.TypeOf(T1{})) {
		t.Fatalf("Contains(T1{}) = false, want true")
	}
	if set.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", set.Count())
	}
}

func TestContains_ExactMatchOnly(t *testing.T) {
	set := typeset.New(reflect.TypeOf(T1{}))

	// Membership is by type identity: no pointer or slice widening.
	if set.Contains(reflect.TypeOf(&T1{})) {
		t.Fatalf("Contains(*T1) = true, want false")
	}
	if set.Contains(reflect.TypeOf([]T1{})) {
		t.Fatalf("Contains([]T1) = true, want false")
	}
	if set.Contains(reflect.TypeOf(T2{})) {
		t.Fatalf("Contains(T2{}) = true, want false")
	}
}

func TestAdd_NilType(t *testing.T) {
	set := typeset.New()
	if err := set.Add(nil); err != typeset.ErrNilType {
		t.Fatalf("nil type: want ErrNilType, got %v", err)
	}
	if set.Contains(nil) {
		t.Fatalf("Contains(nil) = true, want false")
	}
}

func TestNew_Seeded(t *testing.T) {
	set := typeset.New(reflect.TypeOf(T1{}), reflect.TypeOf(T2{}), nil)

	if !set.Contains(reflect.TypeOf(T1{})) || !set.Contains(reflect.TypeOf(T2{})) {
		t.Fatalf("seeded set is missing members")
	}
	if set.Count() != 2 {
		t.Fatalf("Count() = %d, want 2", set.Count())
	}
}

func TestEntries_Snapshot(t *testing.T) {
	set := typeset.New(reflect.TypeOf(T1{}), reflect.TypeOf(T2{}))

	entries := set.Entries()
	if len(entries) != 2 {
		t.Fatalf("len(Entries()) = %d, want 2", len(entries))
	}
	seen := map[reflect.Type]bool{}
	for _, e := range entries {
		seen[e] = true
	}
	if !seen[reflect.TypeOf(T1{})] || !seen[reflect.TypeOf(T2{})] {
		t.Fatalf("Entries() = %v, want T1 and T2", entries)
	}
}

func TestReset(t *testing.T) {
	set := typeset.New(reflect.TypeOf(T1{}), reflect.TypeOf(T2{}))

	set.Reset()
	if set.Count() != 0 {
		t.Fatalf("Count() after Reset = %d, want 0", set.Count())
	}
	if set.Contains(reflect.TypeOf(T1{})) {
		t.Fatalf("Contains(T1{}) after Reset = true, want false")
	}

	// The set remains usable after a reset.
	if err := set.Add(reflect.TypeOf(T3{})); err != nil {
		t.Fatalf("Add after Reset: unexpected error: %v", err)
	}
	if set.Count() != 1 {
		t.Fatalf("Count() = %d, want 1", set.Count())
	}
}
