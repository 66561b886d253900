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
	"github.com/BenTels/assertj-core/apis"
	"github.com/BenTels/assertj-core/xapi/common"
)

// NewSelfStrategy creates an apis.Strategy that uses common.Expandable.
func NewSelfStrategy() apis.Strategy {
	return &selfStrategy{}
}

// selfStrategy is a zero-cost fast path: if the value implements
// common.Expandable, use its own child enumeration and stop the chain.
type selfStrategy struct{}

// Ensure selfStrategy implements apis.Strategy.
var _ apis.Strategy = (*selfStrategy)(nil)

// TryExpand checks if the value implements common.Expandable and returns
// its GraphChildren().
func (*selfStrategy) TryExpand(n apis.Node, _ apis.Config) ([]apis.Child, bool, error) {
	if n.Absent() {
		return nil, false, nil
	}
	if e, ok := n.Value.(common.Expandable); ok {
		return e.GraphChildren(), true, nil
	}
	return nil, false, nil
}
