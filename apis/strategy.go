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

// Strategy is a pluggable expansion step. An Expander can chain multiple
// strategies in order (e.g., Expandable -> Slice -> Array -> Map ->
// Optional -> Field); the first strategy that recognizes the node's
// structural kind wins.
type Strategy interface {
	// TryExpand attempts to enumerate children of n according to cfg.
	// It returns (children, true, nil) if the node's kind is handled by
	// this strategy (children may be empty when the active policy
	// suppresses recursion), or (nil, false, nil) to fall through to the
	// next strategy in the chain.
	TryExpand(n Node, cfg Config) (children []Child, handled bool, err error)
}
