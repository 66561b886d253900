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

package apis

// Builder composes Introspector and Expander from a Config.
// Implementations may migrate state from previous instances (prev*), or ignore them.
type Builder interface {
	// BuildIntrospector constructs an Introspector for Config. May reuse state
	// from a previous introspector.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildIntrospector(cfg Config, prev Introspector, ext any) Introspector
	// BuildExpander constructs an Expander for Config and Introspector. May
	// reuse state from a previous expander.
	// ext is an optional extension context. Its meaning is implementation-defined.
	BuildExpander(cfg Config, intr Introspector, prev Expander, ext any) Expander
}
