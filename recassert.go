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

package recassert

import (
	"errors"
	"sync"
	"sync/atomic"

	"github.com/BenTels/assertj-core/apis"
	"github.com/BenTels/assertj-core/builder"
	"github.com/BenTels/assertj-core/config"
	"github.com/BenTels/assertj-core/driver"
	"github.com/BenTels/assertj-core/location"
)

// init initializes the global traversal state.
func init() {
	// Initialize state with default cfg, intr, and exp.
	s := &state{cfg: config.DefaultConfig()}
	b := builder.New()
	s.intr = b.BuildIntrospector(s.cfg, nil, nil)
	s.exp = b.BuildExpander(s.cfg, s.intr, nil, nil)
	s.bld = b
	// Store the initial state atomically.
	st.Store(s)
}

var (
	// ErrNilIntrospector is returned when a builder returns a nil introspector.
	ErrNilIntrospector = errors.New("recassert: builder returned nil introspector")
	// ErrNilExpander is returned when a builder returns a nil expander.
	ErrNilExpander = errors.New("recassert: builder returned nil expander")
)

// AssertOverGraph walks the object graph rooted at root and applies pred to
// every node visited, returning the locations at which pred returned false.
// It uses the global configuration and expander.
// Each call runs on a fresh driver, so concurrent calls are independent.
func AssertOverGraph(pred apis.Predicate, root any) ([]location.Location, error) {
	return NewDriver().AssertOverGraph(pred, root)
}

// NewDriver creates a driver wired to the global configuration and
// expander. The driver is single-use per goroutine; callers that want to
// reuse one across assertions own its lifecycle.
func NewDriver() *driver.Driver {
	s := st.Load()
	return driver.New(s.cfg, s.exp)
}

// SetAll explicitly sets all global traversal state components.
//
// Nil arguments leave the corresponding component unchanged,
// except for ext which is always replaced.
//
// This is a convenience wrapper around the global state.
func SetAll(cfg *apis.Config, ext any, intr apis.Introspector, exp apis.Expander, bld apis.Builder) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Configuration
	ncfg := old.cfg
	if cfg != nil {
		ncfg = *cfg
	}

	// Extension
	next := ext

	// Builder
	nbld := old.bld
	if bld != nil {
		nbld = bld
	}

	// Introspector
	nintr := intr
	npintr := false
	if nintr == nil {
		nintr = nbld.BuildIntrospector(ncfg, old.intr, next)
	} else {
		npintr = true
	}

	// Expander
	nexp := exp
	npexp := false
	if nexp == nil {
		nexp = nbld.BuildExpander(ncfg, nintr, old.exp, next)
	} else {
		npexp = true
	}

	// Ensure non-nil intr and exp.
	if nintr == nil {
		panic(ErrNilIntrospector)
	}
	if nexp == nil {
		panic(ErrNilExpander)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:   ncfg,
			ext:   next,
			intr:  nintr,
			exp:   nexp,
			bld:   nbld,
			pintr: npintr,
			pexp:  npexp,
		},
	)
}

// Config returns the global traversal configuration.
func Config() apis.Config {
	return st.Load().cfg
}

// SetConfig sets the global traversal configuration to cfg.
// It rebuilds the global intr and exp using the new configuration.
// This is a convenience wrapper around the global state.
func SetConfig(cfg apis.Config) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new intr and exp based on the new cfg and old state.
	nintr := old.intr
	if !old.pintr {
		nintr = b.BuildIntrospector(cfg, old.intr, old.ext)
	}
	nexp := old.exp
	if !old.pexp {
		nexp = b.BuildExpander(cfg, nintr, old.exp, old.ext)
	}

	// Ensure non-nil intr and exp.
	if nintr == nil {
		panic(ErrNilIntrospector)
	}
	if nexp == nil {
		panic(ErrNilExpander)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:   cfg,
			ext:   old.ext,
			intr:  nintr,
			exp:   nexp,
			bld:   b,
			pintr: old.pintr,
			pexp:  old.pexp,
		},
	)
}

// Introspector returns the global intr.
func Introspector() apis.Introspector {
	return st.Load().intr
}

// SetIntrospector sets the global intr to intr and pins it.
// It uses the global configuration to rebuild the global exp.
// This is a convenience wrapper around the global state.
func SetIntrospector(intr apis.Introspector) {
	if intr == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new exp based on the old cfg and new intr.
	nexp := old.exp
	if !old.pexp {
		nexp = b.BuildExpander(old.cfg, intr, old.exp, old.ext)
	}

	// Ensure non-nil exp.
	if nexp == nil {
		panic(ErrNilExpander)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:   old.cfg,
			ext:   old.ext,
			intr:  intr,
			exp:   nexp,
			bld:   b,
			pintr: true,
			pexp:  old.pexp,
		},
	)
}

// Expander returns the global exp.
func Expander() apis.Expander {
	return st.Load().exp
}

// SetExpander sets the global exp to exp and pins it.
// This is a convenience wrapper around the global state.
func SetExpander(exp apis.Expander) {
	if exp == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:   old.cfg,
			ext:   old.ext,
			intr:  old.intr,
			exp:   exp,
			bld:   old.bld,
			pintr: old.pintr,
			pexp:  true,
		},
	)
}

// Builder returns the global bld.
func Builder() apis.Builder {
	return st.Load().bld
}

// SetBuilder sets the global bld to b.
// This is a convenience wrapper around the global state.
func SetBuilder(b apis.Builder) {
	if b == nil {
		return
	}

	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Build new intr and exp based on the new bld and old state.
	nintr := old.intr
	if !old.pintr {
		nintr = b.BuildIntrospector(old.cfg, old.intr, old.ext)
	}
	nexp := old.exp
	if !old.pexp {
		nexp = b.BuildExpander(old.cfg, nintr, old.exp, old.ext)
	}

	// Ensure non-nil intr and exp.
	if nintr == nil {
		panic(ErrNilIntrospector)
	}
	if nexp == nil {
		panic(ErrNilExpander)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:   old.cfg,
			ext:   old.ext,
			intr:  nintr,
			exp:   nexp,
			bld:   b,
			pintr: old.pintr,
			pexp:  old.pexp,
		},
	)
}

// SetExt replaces extension config and rebuilds non-pinned layers via the builder.
func SetExt[T any](ext T) {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()
	b := old.bld

	// Build new intr and exp based on the new ext and old state.
	nintr := old.intr
	if !old.pintr {
		nintr = b.BuildIntrospector(old.cfg, old.intr, ext)
	}
	nexp := old.exp
	if !old.pexp {
		nexp = b.BuildExpander(old.cfg, nintr, old.exp, ext)
	}

	// Ensure non-nil intr and exp.
	if nintr == nil {
		panic(ErrNilIntrospector)
	}
	if nexp == nil {
		panic(ErrNilExpander)
	}

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:   old.cfg,
			ext:   ext,
			intr:  nintr,
			exp:   nexp,
			bld:   b,
			pintr: old.pintr,
			pexp:  old.pexp,
		},
	)
}

// ExtAs returns the global extension config as type T.
func ExtAs[T any]() (T, bool) {
	ext, ok := st.Load().ext.(T)
	return ext, ok
}

// IsIntrospectorPinned returns whether the global intr is pinned (immutable).
func IsIntrospectorPinned() bool {
	return st.Load().pintr
}

// PinIntrospector makes the global intr immutable.
func PinIntrospector() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:   old.cfg,
			ext:   old.ext,
			intr:  old.intr,
			exp:   old.exp,
			bld:   old.bld,
			pintr: true,
			pexp:  old.pexp,
		},
	)
}

// UnpinIntrospector makes the global intr mutable again.
func UnpinIntrospector() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:   old.cfg,
			ext:   old.ext,
			intr:  old.intr,
			exp:   old.exp,
			bld:   old.bld,
			pintr: false,
			pexp:  old.pexp,
		},
	)
}

// IsExpanderPinned returns whether the global exp is pinned (immutable).
func IsExpanderPinned() bool {
	return st.Load().pexp
}

// PinExpander makes the global exp immutable.
func PinExpander() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:   old.cfg,
			ext:   old.ext,
			intr:  old.intr,
			exp:   old.exp,
			bld:   old.bld,
			pintr: old.pintr,
			pexp:  true,
		},
	)
}

// UnpinExpander makes the global exp mutable again.
func UnpinExpander() {
	buildMu.Lock()
	defer buildMu.Unlock()

	// Load the old state.
	old := st.Load()

	// Store the new state atomically.
	st.Store(
		&state{
			cfg:   old.cfg,
			ext:   old.ext,
			intr:  old.intr,
			exp:   old.exp,
			bld:   old.bld,
			pintr: old.pintr,
			pexp:  false,
		},
	)
}

// buildMu serializes writers (reconfigurations/swaps) so we never publish
// partially-built snapshots.
var buildMu sync.Mutex

// st is the global traversal state.
var st atomic.Pointer[state]

// state is the global traversal state snapshot.
// Immutable snapshot published atomically via st.Store; never mutate fields
// of a published state. Writers create a new state and swap it atomically.
type state struct {
	// cfg is the global traversal configuration.
	cfg apis.Config
	// ext is the global extension configuration.
	ext any
	// intr is the global intr.
	intr apis.Introspector
	// exp is the global exp.
	exp apis.Expander
	// bld is the global bld.
	bld apis.Builder
	// pintr indicates whether the intr is pinned (immutable).
	pintr bool
	// pexp indicates whether the exp is pinned (immutable).
	pexp bool
}
