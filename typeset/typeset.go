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

// Package typeset implements apis.TypeSet: a concurrent, exact-match
// membership set of reflect.Types. The engine uses it for the
// ignored-types policy; membership is by type identity, never by
// assignability or subtyping.
package typeset

import (
	"errors"
	"reflect"
	"sync"

	"github.com/BenTels/assertj-core/apis"
)

// ErrNilType is returned when a nil reflect.Type is provided.
var ErrNilType = errors.New("typeset: nil reflect.Type provided")

// New constructs an empty TypeSet, optionally seeded with types.
// Nil seed types are skipped; Add reports ErrNilType for callers that
// need the error.
func New(types ...reflect.Type) apis.TypeSet {
	s := &set{}
	for _, t := range types {
		if t == nil {
			continue
		}
		_ = s.Add(t)
	}
	return s
}

// set is a simple TypeSet implementation backed by sync.Map.
type set struct {
	// mu guards write-side consistency and counter
	mu sync.Mutex
	// m maps reflect.Type to membership.
	m sync.Map // map[reflect.Type]struct{}
	// count tracks the number of member types.
	count int
}

// Add inserts t into the set. Idempotent for repeated inserts.
func (s *set) Add(t reflect.Type) error {
	if t == nil {
		return ErrNilType
	}

	// Fast read path: idempotency check without locking.
	if _, ok := s.m.Load(t); ok {
		return nil
	}

	// Write path: guard with a mutex to keep the counter consistent.
	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check under lock in case another goroutine stored meanwhile.
	if _, ok := s.m.Load(t); ok {
		return nil
	}

	s.m.Store(t, struct{}{})
	s.count++
	return nil
}

// Contains reports exact membership of t.
func (s *set) Contains(t reflect.Type) bool {
	if t == nil {
		return false
	}
	_, ok := s.m.Load(t)
	return ok
}

// Entries returns a snapshot for diagnostics (order is unspecified).
func (s *set) Entries() []reflect.Type {
	entries := make([]reflect.Type, 0, s.Count())
	s.m.Range(func(key, _ any) bool {
		entries = append(entries, key.(reflect.Type))
		return true
	})
	return entries
}

// Count returns the number of member types.
func (s *set) Count() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.count
}

// Reset clears the set.
func (s *set) Reset() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.m = sync.Map{}
	s.count = 0
}
