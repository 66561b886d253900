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

// Package reflect classifies Go types into the closed set of structural
// kinds the traversal engine dispatches on, and provides the small
// reflection helpers shared by the policy and expansion layers.
package reflect

import (
	"errors"
	"reflect"
	"strings"
	"sync"

	"github.com/BenTels/assertj-core/apis"
	"github.com/BenTels/assertj-core/config"
	"github.com/BenTels/assertj-core/optional"
)

// ErrNilType is returned when a nil reflect.Type is provided.
var ErrNilType = errors.New("reflect: nil reflect.Type provided")

// Kind is the structural classification of a node's type. It is computed
// once per (type, config) pair from static type information plus a small
// set of capability checks, never from type-name string matching.
type Kind uint8

const (
	// Scalar is a terminal kind: primitives, strings, channels, functions.
	// Scalar nodes have no children.
	Scalar Kind = iota
	// Sequence is a slice: elements are visited under "[<index>]".
	Sequence
	// Array is a fixed-size array: elements are visited under "[<index>]"
	// with the declared component type.
	Array
	// Map is a map: values (and optionally keys) are visited under
	// "VAL[...]" / "KEY[...]".
	Map
	// OptionalAny is a generic optional wrapper (optional.Value[T]).
	OptionalAny
	// OptionalInt is the int specialization (optional.Int).
	OptionalInt
	// OptionalDouble is the float64 specialization (optional.Double).
	OptionalDouble
	// OptionalLong is the int64 specialization (optional.Long).
	OptionalLong
	// Plain is a field-bearing object expanded via the introspector.
	Plain
)

// String returns a stable token for the kind, or "Unknown(<n>)" for
// out-of-range values. It never panics.
func (k Kind) String() string {
	switch k {
	case Scalar:
		return "Scalar"
	case Sequence:
		return "Sequence"
	case Array:
		return "Array"
	case Map:
		return "Map"
	case OptionalAny:
		return "OptionalAny"
	case OptionalInt:
		return "OptionalInt"
	case OptionalDouble:
		return "OptionalDouble"
	case OptionalLong:
		return "OptionalLong"
	case Plain:
		return "Plain"
	default:
		return "Unknown(" + itoa(int(k)) + ")"
	}
}

func itoa(n int) string {
	if n == 0 {
		return "0"
	}
	buf := [20]byte{}
	pos := len(buf)
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

// IsContainer reports whether the kind is a container for the purposes of
// the container assertion gate (sequence, array, or map).
func (k Kind) IsContainer() bool {
	return k == Sequence || k == Array || k == Map
}

// IsOptional reports whether the kind is one of the optional-wrapper
// kinds.
func (k Kind) IsOptional() bool {
	switch k {
	case OptionalAny, OptionalInt, OptionalDouble, OptionalLong:
		return true
	default:
		return false
	}
}

// cacheKey ensures memoization respects the config knobs that affect
// classification.
type cacheKey struct {
	t         reflect.Type
	skipStdT  bool
	maxUnwrap int16
}

// kindCache caches classifications by (type, config knobs).
var kindCache sync.Map // key: cacheKey, val: Kind

// Classify computes the structural kind of t under cfg, unwrapping
// pointers up to cfg.MaxUnwrap levels (the default guard applies when the
// knob is unset). Optional-wrapper kinds are only produced while
// cfg.SkipStandardLibraryTypes is enabled; with the flag off those types
// classify as Plain and are explored through their fields. A nil type
// classifies as Scalar.
func Classify(t reflect.Type, cfg apis.Config) Kind {
	if t == nil {
		return Scalar
	}

	key := cacheKey{
		t:         t,
		skipStdT:  cfg.SkipStandardLibraryTypes,
		maxUnwrap: int16(cfg.MaxUnwrap),
	}
	if v, ok := kindCache.Load(key); ok {
		return v.(Kind)
	}

	k := classify(t, cfg)
	kindCache.Store(key, k)
	return k
}

func classify(t reflect.Type, cfg apis.Config) Kind {
	maxUnwrap := cfg.MaxUnwrap
	if maxUnwrap <= 0 {
		maxUnwrap = config.DefaultMaxUnwrap
	}

	// Pointers are transparent: *[]T behaves as a sequence, *Person as a
	// plain object. The unwrap loop is bounded; pointer chains can be
	// arbitrarily deep.
	for i := 0; i < maxUnwrap && t.Kind() == reflect.Ptr; i++ {
		t = t.Elem()
	}

	if cfg.SkipStandardLibraryTypes {
		switch t {
		case optional.IntType:
			return OptionalInt
		case optional.DoubleType:
			return OptionalDouble
		case optional.LongType:
			return OptionalLong
		}
		if t.Kind() == reflect.Struct && t.Implements(optional.WrapperType) {
			return OptionalAny
		}
	}

	switch t.Kind() {
	case reflect.Slice:
		return Sequence
	case reflect.Array:
		return Array
	case reflect.Map:
		return Map
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128,
		reflect.String,
		reflect.Chan, reflect.Func, reflect.UnsafePointer:
		return Scalar
	default:
		// Struct, Interface, or a pointer chain deeper than the guard.
		return Plain
	}
}

// IsPrimitive reports whether t is a primitive numeric/boolean kind.
// Strings are not primitive for policy purposes.
func IsPrimitive(t reflect.Type) bool {
	if t == nil {
		return false
	}
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr,
		reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	default:
		return false
	}
}

// IsStandardLibrary reports whether t is declared in a Go standard
// library package: the first import path segment carries no dot. Builtin
// and unnamed types (empty package path) are not standard library, so
// anonymous structs still expand when SkipStandardLibraryTypes is on.
func IsStandardLibrary(t reflect.Type) bool {
	if t == nil {
		return false
	}
	for t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	p := t.PkgPath()
	if p == "" {
		return false
	}
	first := p
	if i := strings.IndexByte(p, '/'); i >= 0 {
		first = p[:i]
	}
	return !strings.Contains(first, ".")
}

// Interface returns v's value as any, mapping invalid values and nil
// references (pointer, map, slice, chan, func, interface) to nil so that
// absent nodes are uniformly represented by a nil value.
func Interface(v reflect.Value) any {
	if !v.IsValid() {
		return nil
	}
	switch v.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Chan, reflect.Func, reflect.Interface:
		if v.IsNil() {
			return nil
		}
	}
	if !v.CanInterface() {
		return nil
	}
	return v.Interface()
}

// Deref unwraps pointer and interface indirections of v, bounded by max
// levels. Nil indirections return an invalid value.
func Deref(v reflect.Value, max int) reflect.Value {
	if max <= 0 {
		max = config.DefaultMaxUnwrap
	}
	for i := 0; i < max && v.IsValid(); i++ {
		switch v.Kind() {
		case reflect.Ptr, reflect.Interface:
			if v.IsNil() {
				return reflect.Value{}
			}
			v = v.Elem()
		default:
			return v
		}
	}
	return v
}
