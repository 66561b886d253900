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

package builder

import (
	"github.com/BenTels/assertj-core/apis"
	"github.com/BenTels/assertj-core/expand"
	"github.com/BenTels/assertj-core/introspect"
)

// New creates and returns a new instance of an apis.Builder.
func New() apis.Builder {
	return &builder{}
}

// builder is an empty struct to be used as a receiver for builder methods.
type builder struct{}

// BuildIntrospector builds and returns a new apis.Introspector based on the
// provided configuration and pre-existing introspector. A pinned pre-existing
// introspector is passed through unchanged by the caller, so this method only
// needs to produce the default.
func (b *builder) BuildIntrospector(_ apis.Config, _ apis.Introspector, _ any) apis.Introspector {
	return introspect.New()
}

// BuildExpander builds and returns a new apis.Expander wired to the given
// introspector. The strategies are ordered from the most specific node shape
// to the universal field fallback.
func (b *builder) BuildExpander(_ apis.Config, intr apis.Introspector, _ apis.Expander, _ any) apis.Expander {
	return expand.New(
		expand.NewSelfStrategy(),
		expand.NewSliceStrategy(),
		expand.NewArrayStrategy(),
		expand.NewMapStrategy(),
		expand.NewOptionalStrategy(),
		expand.NewFieldStrategy(intr),
	)
}
