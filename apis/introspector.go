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

// Introspector is the injected field-access capability: given a type it
// lists declared field names, and given (object, field name) it extracts
// the field's current value and declared type. The core never reaches
// into objects directly, so a generated or mock introspector can replace
// the default reflection-based one.
type Introspector interface {
	// FieldNames returns the declared field names of t in a deterministic
	// order. Non-struct types yield nil. Pointer types are examined at
	// their pointee.
	FieldNames(t reflect.Type) []string

	// FieldValue returns the current value and declared type of the named
	// field of obj. Nil reference values (nil pointer, map, slice, ...)
	// are normalized to a nil value with the declared type preserved.
	FieldValue(obj any, name string) (value any, declared reflect.Type, err error)
}
