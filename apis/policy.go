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

import (
	"fmt"
	"strings"
)

// CollectionPolicy controls how slices and arrays participate in a
// traversal.
//
// # Overview
//
// CollectionPolicy is a small enumerated type that decides, for a
// container node of sequence kind (slice or array), which of two things
// happen:
//
//   - whether the container object itself is asserted, and
//   - whether the traversal recurses into its elements.
//
// The two aspects are deliberately coupled into one tri-state value so a
// configuration cannot express a contradictory combination.
//
// # Values
//
//   - ElementsOnly                — assert elements, never the container.
//   - CollectionObjectOnly       — assert the container, never recurse.
//   - CollectionObjectAndElements — assert both (default).
//
// # Contract
//
//   - Engines MUST treat CollectionPolicy as a stable, public API; adding
//     values is allowed, but existing values MUST NOT change semantics in
//     breaking ways.
//   - CollectionPolicy values MUST be safe to use concurrently across
//     goroutines (they are plain integers).
type CollectionPolicy int

const (
	// ElementsOnly asserts only the container's elements. The container
	// object is excluded from the predicate, but its elements are visited
	// in order.
	ElementsOnly CollectionPolicy = iota

	// CollectionObjectOnly asserts only the container object. No child
	// nodes are produced for the container's elements.
	CollectionObjectOnly

	// CollectionObjectAndElements asserts the container object and
	// recurses into its elements. This is the default policy.
	CollectionObjectAndElements
)

// String returns a stable, human-readable token for the policy:
// "ELEMENTS_ONLY", "COLLECTION_OBJECT_ONLY",
// "COLLECTION_OBJECT_AND_ELEMENTS". Unknown values yield the diagnostic
// form "Unknown(<n>)"; String never panics.
func (p CollectionPolicy) String() string {
	switch p {
	case ElementsOnly:
		return "ELEMENTS_ONLY"
	case CollectionObjectOnly:
		return "COLLECTION_OBJECT_ONLY"
	case CollectionObjectAndElements:
		return "COLLECTION_OBJECT_AND_ELEMENTS"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// ParseCollectionPolicy parses a textual policy token.
//
// Accepted (case-insensitive, surrounding whitespace trimmed) inputs are
// the tokens produced by String. Any other input results in a non-nil
// error; callers MUST NOT rely on the returned policy in the error case.
// ParseCollectionPolicy never panics.
func ParseCollectionPolicy(s string) (CollectionPolicy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ElementsOnly, fmt.Errorf("policy: empty collection policy")
	}

	switch strings.ToUpper(trimmed) {
	case "ELEMENTS_ONLY":
		return ElementsOnly, nil
	case "COLLECTION_OBJECT_ONLY":
		return CollectionObjectOnly, nil
	case "COLLECTION_OBJECT_AND_ELEMENTS":
		return CollectionObjectAndElements, nil
	default:
		return ElementsOnly, fmt.Errorf("policy: unknown collection policy %q", s)
	}
}

// MustParseCollectionPolicy is like ParseCollectionPolicy but panics on
// invalid input. It is intended for hard-coded configuration, tests, and
// initialization code where failing fast is acceptable. Callers MUST NOT
// use it on untrusted input.
func MustParseCollectionPolicy(s string) CollectionPolicy {
	p, err := ParseCollectionPolicy(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MarshalText implements encoding.TextMarshaler. Unknown values return a
// non-nil error rather than serializing an "Unknown(...)" form, so an
// invalid state is never persisted. MarshalText never panics.
func (p CollectionPolicy) MarshalText() ([]byte, error) {
	switch p {
	case ElementsOnly, CollectionObjectOnly, CollectionObjectAndElements:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("policy: cannot marshal unknown collection policy %d", p)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. It accepts the same
// tokens as ParseCollectionPolicy; on failure the receiver is left
// unchanged and a non-nil error is returned.
func (p *CollectionPolicy) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return fmt.Errorf("policy: empty collection policy")
	}

	value, err := ParseCollectionPolicy(trimmed)
	if err != nil {
		return err
	}

	*p = value
	return nil
}

// MapPolicy controls how maps participate in a traversal.
//
// # Overview
//
// MapPolicy is the map-kind counterpart of CollectionPolicy. It decides
// whether the map object itself is asserted, and whether values (and
// additionally keys) are visited.
//
// # Values
//
//   - ValuesOnly          — assert map values, never the map object.
//   - MapObjectOnly       — assert the map object, never recurse.
//   - MapObjectAndEntries — assert the map object, its values, and its
//     keys (default).
//
// # Contract
//
//   - Engines MUST treat MapPolicy as a stable, public API.
//   - MapPolicy values MUST be safe to use concurrently across goroutines.
type MapPolicy int

const (
	// ValuesOnly asserts only the map's values. The map object is excluded
	// from the predicate; keys are not visited.
	ValuesOnly MapPolicy = iota

	// MapObjectOnly asserts only the map object. No child nodes are
	// produced for its entries.
	MapObjectOnly

	// MapObjectAndEntries asserts the map object, its values, and its
	// keys. This is the default policy.
	MapObjectAndEntries
)

// String returns a stable, human-readable token for the policy:
// "VALUES_ONLY", "MAP_OBJECT_ONLY", "MAP_OBJECT_AND_ENTRIES". Unknown
// values yield "Unknown(<n>)"; String never panics.
func (p MapPolicy) String() string {
	switch p {
	case ValuesOnly:
		return "VALUES_ONLY"
	case MapObjectOnly:
		return "MAP_OBJECT_ONLY"
	case MapObjectAndEntries:
		return "MAP_OBJECT_AND_ENTRIES"
	default:
		return fmt.Sprintf("Unknown(%d)", p)
	}
}

// ParseMapPolicy parses a textual policy token. Accepted inputs are the
// tokens produced by String, case-insensitive, whitespace trimmed. On
// failure a non-nil error is returned and the returned policy value is
// meaningless. ParseMapPolicy never panics.
func ParseMapPolicy(s string) (MapPolicy, error) {
	trimmed := strings.TrimSpace(s)
	if trimmed == "" {
		return ValuesOnly, fmt.Errorf("policy: empty map policy")
	}

	switch strings.ToUpper(trimmed) {
	case "VALUES_ONLY":
		return ValuesOnly, nil
	case "MAP_OBJECT_ONLY":
		return MapObjectOnly, nil
	case "MAP_OBJECT_AND_ENTRIES":
		return MapObjectAndEntries, nil
	default:
		return ValuesOnly, fmt.Errorf("policy: unknown map policy %q", s)
	}
}

// MustParseMapPolicy is like ParseMapPolicy but panics on invalid input.
func MustParseMapPolicy(s string) MapPolicy {
	p, err := ParseMapPolicy(s)
	if err != nil {
		panic(err)
	}
	return p
}

// MarshalText implements encoding.TextMarshaler. Unknown values return a
// non-nil error; MarshalText never panics.
func (p MapPolicy) MarshalText() ([]byte, error) {
	switch p {
	case ValuesOnly, MapObjectOnly, MapObjectAndEntries:
		return []byte(p.String()), nil
	default:
		return nil, fmt.Errorf("policy: cannot marshal unknown map policy %d", p)
	}
}

// UnmarshalText implements encoding.TextUnmarshaler. On failure the
// receiver is left unchanged.
func (p *MapPolicy) UnmarshalText(text []byte) error {
	trimmed := strings.TrimSpace(string(text))
	if trimmed == "" {
		return fmt.Errorf("policy: empty map policy")
	}

	value, err := ParseMapPolicy(trimmed)
	if err != nil {
		return err
	}

	*p = value
	return nil
}
