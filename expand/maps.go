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

package expand

import (
	"fmt"
	"reflect"
	"sort"

	"github.com/BenTels/assertj-core/apis"
	uref "github.com/BenTels/assertj-core/utils/reflect"
)

// NewMapStrategy creates the apis.Strategy for map nodes. Values are
// emitted under "VAL[<label>]" segments; when the map policy also visits
// keys, those follow under "KEY[<label>]" segments. Both groups are sorted
// by segment so expansion order is deterministic across runs.
func NewMapStrategy() apis.Strategy {
	return &mapStrategy{}
}

type mapStrategy struct{}

var _ apis.Strategy = (*mapStrategy)(nil)

func (*mapStrategy) TryExpand(n apis.Node, cfg apis.Config) ([]apis.Child, bool, error) {
	if uref.Classify(n.Type, cfg) != uref.Map {
		return nil, false, nil
	}
	if cfg.MapPolicy == apis.MapObjectOnly {
		return nil, true, nil
	}
	if n.Absent() {
		return nil, true, nil
	}

	rv := uref.Deref(reflect.ValueOf(n.Value), cfg.MaxUnwrap)
	if !rv.IsValid() || rv.Kind() != reflect.Map {
		return nil, true, nil
	}

	vals := make([]apis.Child, 0, rv.Len())
	var keys []apis.Child
	withKeys := cfg.MapPolicy == apis.MapObjectAndEntries
	if withKeys {
		keys = make([]apis.Child, 0, rv.Len())
	}

	iter := rv.MapRange()
	for iter.Next() {
		key := uref.Interface(iter.Key())
		val := uref.Interface(iter.Value())
		vals = append(vals, apis.Child{
			Value:   val,
			Type:    runtimeType(val),
			Segment: fmt.Sprintf("VAL[%s]", label(val)),
		})
		if withKeys {
			keys = append(keys, apis.Child{
				Value:   key,
				Type:    runtimeType(key),
				Segment: fmt.Sprintf("KEY[%s]", label(key)),
			})
		}
	}

	sortBySegment(vals)
	sortBySegment(keys)
	return append(vals, keys...), true, nil
}

func sortBySegment(cs []apis.Child) {
	sort.Slice(cs, func(i, j int) bool { return cs[i].Segment < cs[j].Segment })
}
