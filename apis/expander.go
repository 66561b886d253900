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

// Expander enumerates the children of a node.
// Typical chain: Expandable -> Slice -> Array -> Map -> Optional -> Field.
type Expander interface {
	// Expand returns the child triples of n under cfg, in traversal order.
	// A node with no children (terminal, policy-suppressed, absent) yields
	// an empty or nil slice and a nil error.
	Expand(n Node, cfg Config) ([]Child, error)
}
