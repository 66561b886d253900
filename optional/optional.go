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

// Package optional provides the optional-wrapper value kinds the traversal
// engine treats specially: a generic wrapper and three primitive
// specializations (int, double, long). A wrapper either holds a value or
// is empty; the engine recurses into the wrapped value under the path
// segment "VAL".
package optional

import (
	"fmt"
	"reflect"
)

// Wrapper is implemented by all optional kinds in this package. The
// engine uses it to detect optional values without enumerating their
// concrete types, and to read the wrapped value generically.
type Wrapper interface {
	// Present reports whether the wrapper holds a value.
	Present() bool
	// Elem returns the wrapped value as any, or (nil, false) when empty.
	Elem() (any, bool)
}

// Value is the generic optional wrapper. The zero value is empty.
type Value[T any] struct {
	val     T
	present bool
}

// Of returns a Value holding v.
func Of[T any](v T) Value[T] {
	return Value[T]{val: v, present: true}
}

// Empty returns an empty Value.
func Empty[T any]() Value[T] {
	return Value[T]{}
}

// Present reports whether the wrapper holds a value.
func (v Value[T]) Present() bool { return v.present }

// Get returns the wrapped value and whether it is present.
func (v Value[T]) Get() (T, bool) { return v.val, v.present }

// Elem returns the wrapped value as any, or (nil, false) when empty.
func (v Value[T]) Elem() (any, bool) {
	if !v.present {
		return nil, false
	}
	return v.val, true
}

// String returns "Value[<v>]" or "Value.empty".
func (v Value[T]) String() string {
	if !v.present {
		return "Value.empty"
	}
	return fmt.Sprintf("Value[%v]", v.val)
}

// Int is the optional wrapper specialized to int. The zero value is empty.
type Int struct {
	val     int
	present bool
}

// OfInt returns an Int holding v.
func OfInt(v int) Int { return Int{val: v, present: true} }

// EmptyInt returns an empty Int.
func EmptyInt() Int { return Int{} }

// Present reports whether the wrapper holds a value.
func (v Int) Present() bool { return v.present }

// Get returns the wrapped int and whether it is present.
func (v Int) Get() (int, bool) { return v.val, v.present }

// Elem returns the wrapped int as any, or (nil, false) when empty.
func (v Int) Elem() (any, bool) {
	if !v.present {
		return nil, false
	}
	return v.val, true
}

// String returns "Int[<v>]" or "Int.empty".
func (v Int) String() string {
	if !v.present {
		return "Int.empty"
	}
	return fmt.Sprintf("Int[%d]", v.val)
}

// Double is the optional wrapper specialized to float64. The zero value
// is empty.
type Double struct {
	val     float64
	present bool
}

// OfDouble returns a Double holding v.
func OfDouble(v float64) Double { return Double{val: v, present: true} }

// EmptyDouble returns an empty Double.
func EmptyDouble() Double { return Double{} }

// Present reports whether the wrapper holds a value.
func (v Double) Present() bool { return v.present }

// Get returns the wrapped float64 and whether it is present.
func (v Double) Get() (float64, bool) { return v.val, v.present }

// Elem returns the wrapped float64 as any, or (nil, false) when empty.
func (v Double) Elem() (any, bool) {
	if !v.present {
		return nil, false
	}
	return v.val, true
}

// String returns "Double[<v>]" or "Double.empty".
func (v Double) String() string {
	if !v.present {
		return "Double.empty"
	}
	return fmt.Sprintf("Double[%v]", v.val)
}

// Long is the optional wrapper specialized to int64. The zero value is
// empty.
type Long struct {
	val     int64
	present bool
}

// OfLong returns a Long holding v.
func OfLong(v int64) Long { return Long{val: v, present: true} }

// EmptyLong returns an empty Long.
func EmptyLong() Long { return Long{} }

// Present reports whether the wrapper holds a value.
func (v Long) Present() bool { return v.present }

// Get returns the wrapped int64 and whether it is present.
func (v Long) Get() (int64, bool) { return v.val, v.present }

// Elem returns the wrapped int64 as any, or (nil, false) when empty.
func (v Long) Elem() (any, bool) {
	if !v.present {
		return nil, false
	}
	return v.val, true
}

// String returns "Long[<v>]" or "Long.empty".
func (v Long) String() string {
	if !v.present {
		return "Long.empty"
	}
	return fmt.Sprintf("Long[%d]", v.val)
}

// IntType, DoubleType and LongType are the reflect.Types of the primitive
// specializations, exported for exact-type classification.
var (
	IntType    = reflect.TypeOf(Int{})
	DoubleType = reflect.TypeOf(Double{})
	LongType   = reflect.TypeOf(Long{})
)

// WrapperType is the reflect.Type of the Wrapper interface, for
// implements-style classification of generic Value instantiations.
var WrapperType = reflect.TypeOf((*Wrapper)(nil)).Elem()
