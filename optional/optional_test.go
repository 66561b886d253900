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

package optional_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BenTels/assertj-core/optional"
)

func TestValue_OfAndEmpty(t *testing.T) {
	v := optional.Of("hello")
	assert.True(t, v.Present())

	got, ok := v.Get()
	require.True(t, ok)
	assert.Equal(t, "hello", got)

	e := optional.Empty[string]()
	assert.False(t, e.Present())
	_, ok = e.Get()
	assert.False(t, ok)
}

func TestValue_ZeroValueIsEmpty(t *testing.T) {
	var v optional.Value[int]
	assert.False(t, v.Present())
}

func TestValue_Elem(t *testing.T) {
	v := optional.Of(42)
	elem, ok := v.Elem()
	require.True(t, ok)
	assert.Equal(t, 42, elem)

	elem, ok = optional.Empty[int]().Elem()
	assert.False(t, ok)
	assert.Nil(t, elem)
}

func TestValue_String(t *testing.T) {
	assert.Equal(t, "Value[7]", optional.Of(7).String())
	assert.Equal(t, "Value.empty", optional.Empty[int]().String())
}

func TestInt(t *testing.T) {
	v := optional.OfInt(3)
	assert.True(t, v.Present())

	got, ok := v.Get()
	require.True(t, ok)
	assert.Equal(t, 3, got)

	elem, ok := v.Elem()
	require.True(t, ok)
	assert.Equal(t, 3, elem)

	e := optional.EmptyInt()
	assert.False(t, e.Present())
	elem, ok = e.Elem()
	assert.False(t, ok)
	assert.Nil(t, elem)

	assert.Equal(t, "Int[3]", v.String())
	assert.Equal(t, "Int.empty", e.String())
}

func TestDouble(t *testing.T) {
	v := optional.OfDouble(2.5)
	assert.True(t, v.Present())

	got, ok := v.Get()
	require.True(t, ok)
	assert.Equal(t, 2.5, got)

	e := optional.EmptyDouble()
	assert.False(t, e.Present())

	assert.Equal(t, "Double[2.5]", v.String())
	assert.Equal(t, "Double.empty", e.String())
}

func TestLong(t *testing.T) {
	v := optional.OfLong(1 << 40)
	assert.True(t, v.Present())

	elem, ok := v.Elem()
	require.True(t, ok)
	assert.Equal(t, int64(1<<40), elem)

	e := optional.EmptyLong()
	assert.False(t, e.Present())
	assert.Equal(t, "Long.empty", e.String())
}

// All four kinds satisfy the Wrapper interface by value.
func TestWrapperInterface(t *testing.T) {
	wrappers := []optional.Wrapper{
		optional.Of("x"),
		optional.OfInt(1),
		optional.OfDouble(1.0),
		optional.OfLong(1),
	}
	for _, w := range wrappers {
		assert.True(t, w.Present())
	}

	empties := []optional.Wrapper{
		optional.Empty[string](),
		optional.EmptyInt(),
		optional.EmptyDouble(),
		optional.EmptyLong(),
	}
	for _, w := range empties {
		assert.False(t, w.Present())
	}
}
