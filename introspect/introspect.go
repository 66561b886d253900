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

// Package introspect provides the default apis.Introspector: a
// reflection-based field catalog and accessor with memoized per-type
// field lists. Only exported fields are visible; unexported fields cannot
// be extracted as values without unsafe and are treated as absent from
// the catalog.
package introspect

import (
	"errors"
	"fmt"
	"reflect"
	"sync"

	"github.com/BenTels/assertj-core/apis"
	uref "github.com/BenTels/assertj-core/utils/reflect"
)

var (
	// ErrNilObject is returned when a nil object is introspected.
	ErrNilObject = errors.New("introspect: nil object provided")
	// ErrNotStruct is returned when field access is attempted on a
	// non-struct value.
	ErrNotStruct = errors.New("introspect: value is not a struct")
	// ErrUnknownField is returned when the named field does not exist on
	// the value's type.
	ErrUnknownField = errors.New("introspect: no such field")
)

// New creates the default reflection-based apis.Introspector. It is safe
// for concurrent use; the field catalog is memoized per type.
func New() apis.Introspector {
	return &introspector{}
}

type introspector struct {
	// fields caches exported field names per struct type.
	fields sync.Map // key: reflect.Type, val: []string
}

// Ensure introspector implements apis.Introspector.
var _ apis.Introspector = (*introspector)(nil)

// FieldNames returns the exported field names of t's struct form in
// declaration order. Pointer types are examined at their pointee;
// non-struct types yield nil.
func (in *introspector) FieldNames(t reflect.Type) []string {
	if t == nil {
		return nil
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	if t.Kind() != reflect.Struct {
		return nil
	}

	if v, ok := in.fields.Load(t); ok {
		return v.([]string)
	}

	names := make([]string, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.PkgPath != "" {
			continue // unexported
		}
		names = append(names, f.Name)
	}

	in.fields.Store(t, names)
	return names
}

// FieldValue extracts the named field's current value and declared type
// from obj. Nil references are normalized to a nil value with the
// declared type preserved.
func (in *introspector) FieldValue(obj any, name string) (any, reflect.Type, error) {
	if obj == nil {
		return nil, nil, ErrNilObject
	}

	rv := uref.Deref(reflect.ValueOf(obj), 0)
	if !rv.IsValid() || rv.Kind() != reflect.Struct {
		return nil, nil, fmt.Errorf("%w: %T", ErrNotStruct, obj)
	}

	sf, ok := rv.Type().FieldByName(name)
	if !ok || sf.PkgPath != "" {
		return nil, nil, fmt.Errorf("%w: %s.%s", ErrUnknownField, rv.Type(), name)
	}

	fv := rv.FieldByIndex(sf.Index)
	return uref.Interface(fv), sf.Type, nil
}
