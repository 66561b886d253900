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

// NewArrayStrategy creates the apis.Strategy for fixed-size array nodes.
// Unlike slices, every element child carries the array's declared component
// type rather than the element's runtime type.
func NewArrayStrategy() apis.Strategy {
	return &arrayStrategy{}
}

type arrayStrategy struct{}

var _ apis.Strategy = (*arrayStrategy)(nil)

func (*arrayStrategy) TryExpand(n apis.Node, cfg apis.Config) ([]apis.Child, bool, error) {
	if uref.Classify(n.Type, cfg) != uref.Array {
		return nil, false, nil
	}
	if cfg.CollectionPolicy == apis.CollectionObjectOnly {
		return nil, true, nil
	}
	if n.Absent() {
		return nil, true, nil
	}

	rv := uref.Deref(reflect.ValueOf(n.Value), cfg.MaxUnwrap)
	if !rv.IsValid() || rv.Kind() != reflect.Array {
		return nil, true, nil
	}

	et := rv.Type().Elem()
	children := make([]apis.Child, 0, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		children = append(children, apis.Child{
			Value:   uref.Interface(rv.Index(i)),
			Type:    et,
			Segment: fmt.Sprintf("[%d]", i),
		})
	}
	return children, true, nil
}
