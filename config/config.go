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

package config

import (
	"reflect"
	"regexp"

	"github.com/BenTels/assertj-core/apis"
	"github.com/BenTels/assertj-core/typeset"
)

const (
	// DefaultIgnoreAllNullFields represents the default for IgnoreAllNullFields.
	// When false, absent nodes are asserted like any other node.
	DefaultIgnoreAllNullFields = false
	// DefaultAssertOverPrimitiveFields represents the default for
	// AssertOverPrimitiveFields. When true, primitive nodes are asserted.
	DefaultAssertOverPrimitiveFields = true
	// DefaultIgnoreAllEmptyOptionalFields represents the default for
	// IgnoreAllEmptyOptionalFields.
	DefaultIgnoreAllEmptyOptionalFields = false
	// DefaultSkipStandardLibraryTypes represents the default for
	// SkipStandardLibraryTypes. Standard library objects rarely benefit
	// from field-level assertions.
	DefaultSkipStandardLibraryTypes = true
	// DefaultMaxUnwrap represents the default for MaxUnwrap.
	// A value of 8 should be sufficient for all practical purposes.
	DefaultMaxUnwrap = 8
	// DefaultMaxDepth represents the default for MaxDepth. Zero means the
	// traversal depth is unbounded.
	DefaultMaxDepth = 0
)

// DefaultCollectionPolicy represents the default for CollectionPolicy:
// both the container object and its elements are asserted.
var DefaultCollectionPolicy = apis.CollectionObjectAndElements

// DefaultMapPolicy represents the default for MapPolicy: the map object,
// its values, and its keys are asserted.
var DefaultMapPolicy = apis.MapObjectAndEntries

// NewConfig constructs an apis.Config from the given options.
func NewConfig(opts ...Option) apis.Config {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	// Ensure MaxUnwrap and MaxDepth are valid.
	if cfg.MaxUnwrap < 0 {
		cfg.MaxUnwrap = DefaultMaxUnwrap
	}
	if cfg.MaxDepth < 0 {
		cfg.MaxDepth = DefaultMaxDepth
	}
	return cfg
}

// DefaultConfig is the default configuration used when none is provided.
func DefaultConfig() apis.Config {
	return apis.Config{
		IgnoreAllNullFields:          DefaultIgnoreAllNullFields,
		AssertOverPrimitiveFields:    DefaultAssertOverPrimitiveFields,
		IgnoreAllEmptyOptionalFields: DefaultIgnoreAllEmptyOptionalFields,
		SkipStandardLibraryTypes:     DefaultSkipStandardLibraryTypes,
		CollectionPolicy:             DefaultCollectionPolicy,
		MapPolicy:                    DefaultMapPolicy,
		MaxUnwrap:                    DefaultMaxUnwrap,
		MaxDepth:                     DefaultMaxDepth,
	}
}

// Option is a functional option that mutates an apis.Config during construction.
type Option func(*apis.Config)

// WithIgnoreAllNullFields sets the IgnoreAllNullFields option.
func WithIgnoreAllNullFields(ignore bool) Option {
	return func(c *apis.Config) {
		c.IgnoreAllNullFields = ignore
	}
}

// WithAssertOverPrimitiveFields sets the AssertOverPrimitiveFields option.
func WithAssertOverPrimitiveFields(assert bool) Option {
	return func(c *apis.Config) {
		c.AssertOverPrimitiveFields = assert
	}
}

// WithIgnoreAllEmptyOptionalFields sets the IgnoreAllEmptyOptionalFields option.
func WithIgnoreAllEmptyOptionalFields(ignore bool) Option {
	return func(c *apis.Config) {
		c.IgnoreAllEmptyOptionalFields = ignore
	}
}

// WithSkipStandardLibraryTypes sets the SkipStandardLibraryTypes option.
func WithSkipStandardLibraryTypes(skip bool) Option {
	return func(c *apis.Config) {
		c.SkipStandardLibraryTypes = skip
	}
}

// WithCollectionPolicy sets the CollectionPolicy option.
func WithCollectionPolicy(p apis.CollectionPolicy) Option {
	return func(c *apis.Config) {
		c.CollectionPolicy = p
	}
}

// WithMapPolicy sets the MapPolicy option.
func WithMapPolicy(p apis.MapPolicy) Option {
	return func(c *apis.Config) {
		c.MapPolicy = p
	}
}

// WithIgnoredFields appends field names to ignore. Matching is against
// the final path segment.
func WithIgnoredFields(names ...string) Option {
	return func(c *apis.Config) {
		c.IgnoredFields = append(c.IgnoredFields, names...)
	}
}

// WithIgnoredFieldsMatchingRegexes appends ignore patterns, compiled with
// regexp.MustCompile. The configuration surface is assumed pre-validated;
// an invalid pattern panics.
func WithIgnoredFieldsMatchingRegexes(patterns ...string) Option {
	return func(c *apis.Config) {
		for _, p := range patterns {
			c.IgnoredFieldPatterns = append(c.IgnoredFieldPatterns, regexp.MustCompile(p))
		}
	}
}

// WithIgnoredTypes adds types to the ignored-types set, creating the set
// if the configuration has none yet. Exact type match applies.
func WithIgnoredTypes(types ...reflect.Type) Option {
	return func(c *apis.Config) {
		if c.IgnoredTypes == nil {
			c.IgnoredTypes = typeset.New()
		}
		for _, t := range types {
			_ = c.IgnoredTypes.Add(t)
		}
	}
}

// WithMaxUnwrap sets the MaxUnwrap option.
// A negative value resets to the default.
func WithMaxUnwrap(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxUnwrap = DefaultMaxUnwrap
			return
		}
		c.MaxUnwrap = max
	}
}

// WithMaxDepth sets the MaxDepth option. Zero disables the depth limit;
// a negative value resets to the default.
func WithMaxDepth(max int) Option {
	return func(c *apis.Config) {
		if max < 0 {
			c.MaxDepth = DefaultMaxDepth
			return
		}
		c.MaxDepth = max
	}
}
