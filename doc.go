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

// Package recassert applies a caller-supplied predicate to every node of an
// arbitrary in-memory object graph.
//
// recassert walks the graph reachable from a root value in depth-first
// pre-order, visits each distinct object exactly once, and collects the
// dotted location paths of every node for which the predicate returned
// false. Typical uses are test assertions over deep data structures
// ("no field anywhere in this response is nil") and structural validation
// of configuration or domain objects.
//
// # Design
//
// The core of recassert is a read-mostly global snapshot (state). The
// snapshot holds four things:
//
//   - Config: rules that control how the graph is traversed and which
//     nodes are ignored (null-field handling, primitive handling,
//     standard-library skipping, container policies, ignored names,
//     patterns and types, unwrap and depth bounds).
//
//   - Introspector: answers "what are the fields of this type, and what
//     is the value of field F on this object?". The default introspector
//     enumerates exported struct fields in declaration order and memoizes
//     per type. It can be swapped to restrict, rename, or synthesize
//     fields. Introspectors are expected to be concurrency-safe for reads.
//
//   - Expander: a read-only object that answers "what are the children of
//     this node?". The default expander tries strategies in priority
//     order:
//     1. If the value implements common.Expandable, use its own children.
//     2. Sequence, array, map, and optional-wrapper nodes expand per
//     the configured container policies.
//     3. Otherwise, fall back to field expansion via the Introspector.
//     Expanders are expected to be concurrency-safe for reads.
//
//   - Builder: a pluggable factory that knows how to construct
//     Introspector and Expander instances for a given Config (and
//     optional extension data). The Builder is also allowed to
//     reuse/migrate state from previous instances.
//
// All of these live inside a single immutable struct called state. The
// package holds an atomic pointer to the current state. Readers load that
// pointer, use it, and never mutate it. Writers build a brand-new state
// and atomically swap it in.
//
// This means starting a traversal is lock-free on the hot path:
//
//	failed, err := recassert.AssertOverGraph(pred, root)
//
// and concurrent callers always see a consistent snapshot. Each call runs
// on its own driver, so concurrent traversals never share visited-set or
// failure state.
//
// # Global API
//
// The package exposes three groups of operations:
//
//  1. Read helpers:
//
//     AssertOverGraph(pred apis.Predicate, root any) ([]location.Location, error)
//     NewDriver() *driver.Driver
//     Introspector() apis.Introspector
//     Expander() apis.Expander
//
//     These are safe for concurrent use without additional locking.
//     They always read from the latest published snapshot.
//
//  2. Mutation helpers:
//
//     SetConfig(cfg apis.Config)
//     SetBuilder(b apis.Builder)
//     SetExt(ext T)
//     SetIntrospector(intr apis.Introspector)
//     SetExpander(exp apis.Expander)
//     UnpinIntrospector()
//     UnpinExpander()
//     SetAll(...)
//
//     Each of these acquires an internal build lock, derives a new
//     snapshot (rebuilding or reusing Introspector / Expander as needed),
//     and then atomically publishes that snapshot.
//
//     Semantics in short:
//
//     - Config affects which nodes are visited, ignored, and expanded.
//     Calling SetConfig() may trigger a rebuild of Introspector and/or
//     Expander, unless they are explicitly "pinned".
//
//     - Builder controls how Introspector and Expander are constructed.
//     Swapping the Builder lets you replace traversal logic (different
//     strategies, different field discovery) at runtime.
//
//     - Ext is an opaque extension payload. It is not interpreted by
//     recassert itself. It is simply passed down to the Builder so
//     custom builders can carry extra policy or state.
//
//     - SetIntrospector() / SetExpander() directly overwrite the current
//     layer in the snapshot and "pin" it. Once a layer is pinned,
//     recassert will stop rebuilding that layer automatically until
//     you call UnpinIntrospector()/UnpinExpander().
//
//     - SetAll(...) is the "hard reset" API. It lets a process replace
//     Builder, Config, Ext, Introspector, Expander in one shot. This
//     is mainly used by tests to get a clean deterministic state
//     between test cases.
//
//  3. Introspection:
//
//     ExtAs[T]() (T, bool)
//     IsIntrospectorPinned() / IsExpanderPinned()
//
// # Concurrency model
//
// Reads (AssertOverGraph, NewDriver, Introspector, Expander) are
// wait-free: they load the current *state atomically and never take
// locks. The Introspector and Expander in that state must themselves be
// concurrency-safe for reads; the Driver a traversal runs on is private
// to that call.
//
// Writes take a short build mutex, assemble a brand-new state struct, and
// then publish it via an atomic pointer swap. This gives the calling
// binary a predictable "last write wins" behavior without forcing
// per-traversal locking.
//
// # Pinning
//
// recassert supports the concept of "pinning" a layer:
//
//   - When you call SetIntrospector(intr), that exact Introspector
//     becomes the process-wide introspector and is considered pinned.
//     Further calls to SetConfig() will not rebuild it until you
//     explicitly UnpinIntrospector().
//
//   - When you call SetExpander(exp), that Expander is pinned and will
//     not be rebuilt automatically until UnpinExpander().
//
// Pinning is there for advanced scenarios where you want full control
// over one layer while still letting other layers evolve. For example,
// you may lock a custom Introspector that exposes only a known subset of
// fields while still allowing Config values to change.
//
// # Usage pattern
//
// A typical caller does:
//
//  1. Let recassert init with the default builder/config.
//
//  2. Optionally call recassert.SetConfig(config.NewConfig(...)) to set
//     ignore rules and container policies.
//
//  3. Run assertions:
//
//     failed, err := recassert.AssertOverGraph(func(n apis.Node) bool {
//     return n.Value != nil
//     }, root)
//
//  4. In tests, call recassert.SetAll(...) to get deterministic snapshots
//     and to inject a mock Builder.
//
// # Scope
//
// recassert is intentionally small. It does not compare graphs, diff
// values, or render failure messages. It only solves one job:
//
//	"Given a root object and a predicate, report the path of every node
//	 in the reachable graph for which the predicate does not hold."
//
// Everything else (matchers, diffing, reporting) belongs to higher
// layers.
package recassert
