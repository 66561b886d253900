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

package introspect_test

import (
	"reflect"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BenTels/assertj-core/introspect"
)

type person struct {
	Name    string
	Age     int
	friends []string // unexported, invisible to the catalog
	Address *address
}

type address struct {
	Street string
}

func TestFieldNames_DeclarationOrder(t *testing.T) {
	in := introspect.New()

	names := in.FieldNames(reflect.TypeOf(person{}))
	assert.Equal(t, []string{"Name", "Age", "Address"}, names)
}

func TestFieldNames_PointerType(t *testing.T) {
	in := introspect.New()

	names := in.FieldNames(reflect.TypeOf(&person{}))
	assert.Equal(t, []string{"Name", "Age", "Address"}, names)
}

func TestFieldNames_NonStruct(t *testing.T) {
	in := introspect.New()

	assert.Nil(t, in.FieldNames(reflect.TypeOf(7)))
	assert.Nil(t, in.FieldNames(reflect.TypeOf([]person{})))
	assert.Nil(t, in.FieldNames(nil))
}

func TestFieldNames_Memoized(t *testing.T) {
	in := introspect.New()

	first := in.FieldNames(reflect.TypeOf(person{}))
	second := in.FieldNames(reflect.TypeOf(person{}))
	assert.Equal(t, first, second)
}

func TestFieldValue(t *testing.T) {
	in := introspect.New()
	p := person{Name: "amy", Age: 31, friends: []string{"z"}}

	val, typ, err := in.FieldValue(p, "Name")
	require.NoError(t, err)
	assert.Equal(t, "amy", val)
	assert.Equal(t, reflect.TypeOf(""), typ)

	val, typ, err = in.FieldValue(&p, "Age")
	require.NoError(t, err)
	assert.Equal(t, 31, val)
	assert.Equal(t, reflect.TypeOf(0), typ)
}

func TestFieldValue_NilReferenceNormalized(t *testing.T) {
	in := introspect.New()
	p := person{Name: "amy"}

	val, typ, err := in.FieldValue(p, "Address")
	require.NoError(t, err)
	assert.Nil(t, val)
	assert.Equal(t, reflect.TypeOf(&address{}), typ)
}

func TestFieldValue_Errors(t *testing.T) {
	in := introspect.New()

	_, _, err := in.FieldValue(nil, "Name")
	assert.ErrorIs(t, err, introspect.ErrNilObject)

	_, _, err = in.FieldValue(7, "Name")
	assert.ErrorIs(t, err, introspect.ErrNotStruct)

	_, _, err = in.FieldValue(person{}, "Nope")
	assert.ErrorIs(t, err, introspect.ErrUnknownField)

	// Unexported fields are not addressable through the catalog.
	_, _, err = in.FieldValue(person{}, "friends")
	assert.ErrorIs(t, err, introspect.ErrUnknownField)
}
