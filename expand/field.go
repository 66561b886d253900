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

	"github.com/BenTels/assertj-core/apis"
	uref "github.com/BenTels/assertj-core/utils/reflect"
)

// NewFieldStrategy creates the fallback apis.Strategy that expands plain
// objects into their fields through the given introspector. It always
// reports handled, so it must sit last in the chain.
func NewFieldStrategy(intr apis.Introspector) apis.Strategy {
	return &fieldStrategy{intr: intr}
}

type fieldStrategy struct {
	intr apis.Introspector
}

var _ apis.Strategy = (*fieldStrategy)(nil)

func (s *fieldStrategy) TryExpand(n apis.Node, cfg apis.Config) ([]apis.Child, bool, error) {
	if n.Absent() {
		return nil, true, nil
	}
	rt := reflect.TypeOf(n.Value)
	if cfg.SkipStandardLibraryTypes && uref.IsStandardLibrary(rt) {
		return nil, true, nil
	}

	names := s.intr.FieldNames(rt)
	if len(names) == 0 {
		return nil, true, nil
	}

	children := make([]apis.Child, 0, len(names))
	for _, name := range names {
		val, declared, err := s.intr.FieldValue(n.Value, name)
		if err != nil {
			return nil, true, fmt.Errorf("expanding field %q of %v: %w", name, rt, err)
		}
		children = append(children, apis.Child{
			Value:   val,
			Type:    childType(val, declared),
			Segment: name,
		})
	}
	return children, true, nil
}

// childType selects the type a field child is traversed under. Primitive
// declarations win over the runtime type so numeric fields keep their
// declared width; otherwise the runtime type is preferred, with the
// declared type as the fallback for nil values.
func childType(val any, declared reflect.Type) reflect.Type {
	if declared != nil && uref.IsPrimitive(declared) {
		return declared
	}
	if val == nil {
		if declared != nil {
			return declared
		}
		return anyType
	}
	return reflect.TypeOf(val)
}
