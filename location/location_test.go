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

package location_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BenTels/assertj-core/location"
)

func TestRoot(t *testing.T) {
	root := location.Root()

	assert.True(t, root.IsRoot())
	assert.Equal(t, 0, root.Len())
	assert.Equal(t, "", root.Leaf())
	assert.Equal(t, "", root.String())
	assert.Nil(t, root.Segments())
}

func TestField_Chained(t *testing.T) {
	loc := location.Root().Field("Person").Field("Address").Field("Street")

	assert.False(t, loc.IsRoot())
	assert.Equal(t, 3, loc.Len())
	assert.Equal(t, "Street", loc.Leaf())
	assert.Equal(t, []string{"Person", "Address", "Street"}, loc.Segments())
	assert.Equal(t, "Person.Address.Street", loc.String())
}

func TestField_DoesNotMutateParent(t *testing.T) {
	parent := location.Root().Field("Person")
	a := parent.Field("Name")
	b := parent.Field("Age")

	assert.Equal(t, "Person", parent.String())
	assert.Equal(t, "Person.Name", a.String())
	assert.Equal(t, "Person.Age", b.String())
}

func TestField_ContainerSegments(t *testing.T) {
	loc := location.Root().Field("Items").Field("[2]").Field("VAL[k]")

	assert.Equal(t, "Items.[2].VAL[k]", loc.String())
	assert.Equal(t, "VAL[k]", loc.Leaf())
}

func TestEqual(t *testing.T) {
	a := location.Root().Field("X").Field("Y")
	b := location.Root().Field("X").Field("Y")
	c := location.Root().Field("X").Field("Z")
	d := location.Root().Field("X")

	assert.True(t, a.Equal(b))
	assert.True(t, b.Equal(a))
	assert.False(t, a.Equal(c))
	assert.False(t, a.Equal(d))
	assert.True(t, location.Root().Equal(location.Root()))
	assert.False(t, location.Root().Equal(d))
}

func TestStrings(t *testing.T) {
	locs := []location.Location{
		location.Root().Field("A"),
		location.Root().Field("B").Field("[0]"),
		location.Root(),
	}

	got := location.Strings(locs)
	require.Len(t, got, 3)
	assert.Equal(t, []string{"A", "B.[0]", ""}, got)
}
