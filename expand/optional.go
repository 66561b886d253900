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
	"reflect"

	"github.com/BenTels/assertj-core/apis"
	"github.com/BenTels/assertj-core/optional"
	uref "github.com/BenTels/assertj-core/utils/reflect"
)

// NewOptionalStrategy creates the apis.Strategy for optional wrapper nodes.
// A present wrapper yields exactly one child under the "VAL" segment. An
// absent generic wrapper still yields a nil "VAL" child so the graph shape
// is stable; absent primitive wrappers yield nothing.
func NewOptionalStrategy() apis.Strategy {
	return &optionalStrategy{}
}

type optionalStrategy struct{}

var _ apis.Strategy = (*optionalStrategy)(nil)

func (*optionalStrategy) TryExpand(n apis.Node, cfg apis.Config) ([]apis.Child, bool, error) {
	k := uref.Classify(n.Type, cfg)
	if !k.IsOptional() {
		return nil, false, nil
	}
	if n.Absent() {
		return nil, true, nil
	}

	w, ok := derefWrapper(n.Value, cfg.MaxUnwrap)
	if !ok {
		return nil, true, nil
	}

	switch k {
	case uref.OptionalInt, uref.OptionalDouble, uref.OptionalLong:
		val, present := w.Elem()
		if !present {
			return nil, true, nil
		}
		return []apis.Child{{
			Value:   val,
			Type:    reflect.TypeOf(val),
			Segment: "VAL",
		}}, true, nil
	default:
		val, present := w.Elem()
		if !present {
			return []apis.Child{{Value: nil, Type: anyType, Segment: "VAL"}}, true, nil
		}
		return []apis.Child{{
			Value:   val,
			Type:    runtimeType(val),
			Segment: "VAL",
		}}, true, nil
	}
}

// derefWrapper unwraps pointers until an optional.Wrapper is found.
func derefWrapper(v any, maxUnwrap int) (optional.Wrapper, bool) {
	if w, ok := v.(optional.Wrapper); ok {
		return w, true
	}
	rv := uref.Deref(reflect.ValueOf(v), maxUnwrap)
	if !rv.IsValid() || !rv.CanInterface() {
		return nil, false
	}
	w, ok := rv.Interface().(optional.Wrapper)
	return w, ok
}
