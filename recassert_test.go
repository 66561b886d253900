package recassert

import (
	"reflect"
	"runtime"
	"sync"
	"testing"
	"time"

	apis "github.com/BenTels/assertj-core/apis"
)

// ---------------------- Helpers ----------------------

// Reset to a clean snapshot using our test builder.
// This fully replaces builder, config, ext and rebuilds introspector/expander.
// Pins are reset (pintr=false, pexp=false) because we pass nil intr/exp.
func resetWithBuilder(tb testing.TB, b apis.Builder, cfg apis.Config, ext any) {
	tb.Helper()
	SetAll(&cfg, ext, nil, nil, b)
}

func itoa(i int) string {
	if i == 0 {
		return "0"
	}
	buf := [20]byte{}
	pos := len(buf)
	n := i
	for n > 0 {
		pos--
		buf[pos] = byte('0' + n%10)
		n /= 10
	}
	return string(buf[pos:])
}

// ---------------------- Test doubles (mocks) ----------------------

type mockIntrospector struct {
	id string
}

func (m *mockIntrospector) FieldNames(reflect.Type) []string {
	return nil
}

func (m *mockIntrospector) FieldValue(any, string) (any, reflect.Type, error) {
	return nil, nil, nil
}

type mockExpander struct {
	id       string
	mu       sync.Mutex
	expandC  int
	children []apis.Child
}

func (m *mockExpander) Expand(apis.Node, apis.Config) ([]apis.Child, error) {
	m.mu.Lock()
	m.expandC++
	m.mu.Unlock()
	return m.children, nil
}

type mockBuilder struct {
	mu              sync.Mutex
	lastCfg         apis.Config
	lastExt         any
	lastPrevIntrID  string
	lastPrevExpID   string
	intrCounter     int
	expCounter      int
	returnFixedIntr apis.Introspector // optional override
	returnFixedExp  apis.Expander     // optional override
}

func (b *mockBuilder) BuildIntrospector(cfg apis.Config, prev apis.Introspector, ext any) apis.Introspector {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCfg, b.lastExt = cfg, ext
	if prev != nil {
		if mi, ok := prev.(*mockIntrospector); ok {
			b.lastPrevIntrID = mi.id
		}
	}
	if b.returnFixedIntr != nil {
		return b.returnFixedIntr
	}
	b.intrCounter++
	return &mockIntrospector{id: "intr#" + itoa(b.intrCounter)}
}

func (b *mockBuilder) BuildExpander(cfg apis.Config, intr apis.Introspector, prev apis.Expander, ext any) apis.Expander {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.lastCfg, b.lastExt = cfg, ext
	if prev != nil {
		if me, ok := prev.(*mockExpander); ok {
			b.lastPrevExpID = me.id
		}
	}
	if b.returnFixedExp != nil {
		return b.returnFixedExp
	}
	b.expCounter++
	return &mockExpander{id: "exp#" + itoa(b.expCounter)}
}

// ---------------------- Tests ----------------------

func TestSetConfig_Rebuilds_Unpinned(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{SkipStandardLibraryTypes: true, MaxUnwrap: 8}, nil)

	// snapshot 1
	s1Intr := Introspector()
	s1Exp := Expander()

	// change cfg -> both should rebuild (not pinned)
	SetConfig(apis.Config{SkipStandardLibraryTypes: false, MaxUnwrap: 4})

	s2Intr := Introspector()
	s2Exp := Expander()

	if s1Intr == s2Intr {
		t.Fatalf("introspector was not rebuilt on SetConfig (unpinned)")
	}
	if s1Exp == s2Exp {
		t.Fatalf("expander was not rebuilt on SetConfig (unpinned)")
	}

	b.mu.Lock()
	gotCfg := b.lastCfg
	b.mu.Unlock()
	if gotCfg.MaxUnwrap != 4 || gotCfg.SkipStandardLibraryTypes {
		t.Fatalf("builder received wrong cfg: %+v", gotCfg)
	}
}

func TestSetIntrospector_PinsIntrospector_and_RebuildsExpanderIfUnpinned(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{SkipStandardLibraryTypes: true, MaxUnwrap: 8}, nil)

	customIntr := &mockIntrospector{id: "custom"}
	SetIntrospector(customIntr)

	if !IsIntrospectorPinned() {
		t.Fatalf("SetIntrospector did not pin the introspector")
	}

	beforeExp := Expander()
	SetConfig(apis.Config{SkipStandardLibraryTypes: false, MaxUnwrap: 8})

	afterIntr := Introspector()
	afterExp := Expander()

	if afterIntr != customIntr {
		t.Fatalf("pinned introspector was rebuilt unexpectedly")
	}
	if afterExp == beforeExp {
		t.Fatalf("expander was not rebuilt when cfg changed and exp not pinned")
	}
}

func TestSetExpander_PinsExpander(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{SkipStandardLibraryTypes: true, MaxUnwrap: 8}, nil)

	// Pin expander
	customExp := &mockExpander{id: "custom"}
	SetExpander(customExp)

	if !IsExpanderPinned() {
		t.Fatalf("SetExpander did not pin the expander")
	}

	// Grab current introspector pointer (should be from builder b)
	intrBefore := Introspector()

	// Change cfg -> expect: introspector rebuilt (not pinned), expander unchanged (pinned)
	SetConfig(apis.Config{SkipStandardLibraryTypes: false, MaxUnwrap: 8})

	intrAfter := Introspector()
	expAfter := Expander()

	if expAfter != customExp {
		t.Fatalf("pinned expander was rebuilt unexpectedly")
	}
	if intrAfter == intrBefore {
		t.Fatalf("introspector was not rebuilt on SetConfig when expander is pinned")
	}
}

func TestSetBuilder_Rebuilds_Only_Unpinned(t *testing.T) {
	// Start with builder A
	a := &mockBuilder{}
	resetWithBuilder(t, a, apis.Config{SkipStandardLibraryTypes: true, MaxUnwrap: 8}, nil)

	// Pin expander, leave introspector unpinned
	SetExpander(&mockExpander{id: "pinned"})
	intrBefore := Introspector()
	expBefore := Expander()

	// Swap to builder B (rebuilds unpinned layers)
	b := &mockBuilder{}
	SetBuilder(b)

	intrAfter := Introspector()
	expAfter := Expander()

	if intrAfter == intrBefore {
		t.Fatalf("introspector did not rebuild after SetBuilder (unpinned)")
	}
	if expAfter != expBefore {
		t.Fatalf("pinned expander was rebuilt after SetBuilder")
	}
}

func TestSetExt_Rebuilds_Unpinned_and_PassesValue(t *testing.T) {
	// Ensure snapshot uses our mock builder
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{SkipStandardLibraryTypes: true, MaxUnwrap: 8}, nil)

	// Change ext -> should rebuild unpinned layers via current builder (b) and pass ext
	type extCfg struct{ X int }
	SetExt(extCfg{X: 42})

	b.mu.Lock()
	got := b.lastExt
	b.mu.Unlock()
	ec, ok := got.(extCfg)
	if !ok || ec.X != 42 {
		t.Fatalf("builder did not receive ext properly: %#v", got)
	}

	if v, ok := ExtAs[extCfg](); !ok || v.X != 42 {
		t.Fatalf("ExtAs = (%#v, %v), want (extCfg{42}, true)", v, ok)
	}

	// Pin both and ensure no rebuild on SetExt
	SetIntrospector(Introspector())
	SetExpander(Expander())
	iCntBefore, eCntBefore := func() (int, int) {
		b.mu.Lock()
		defer b.mu.Unlock()
		return b.intrCounter, b.expCounter
	}()
	SetExt(extCfg{X: 7})
	iCntAfter, eCntAfter := func() (int, int) {
		b.mu.Lock()
		defer b.mu.Unlock()
		return b.intrCounter, b.expCounter
	}()
	if iCntAfter != iCntBefore || eCntAfter != eCntBefore {
		t.Fatalf("SetExt should not rebuild when both layers are pinned")
	}
}

func TestUnpin_Allows_Rebuild_After(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{SkipStandardLibraryTypes: true, MaxUnwrap: 8}, nil)

	SetIntrospector(Introspector())
	SetExpander(Expander())

	intr1 := Introspector()
	exp1 := Expander()
	SetConfig(apis.Config{SkipStandardLibraryTypes: false, MaxUnwrap: 4})
	if Introspector() != intr1 || Expander() != exp1 {
		t.Fatalf("pinned layers should not rebuild on SetConfig")
	}

	UnpinIntrospector()
	UnpinExpander()
	SetConfig(apis.Config{SkipStandardLibraryTypes: true, MaxUnwrap: 6})
	if Introspector() == intr1 {
		t.Fatalf("introspector should rebuild after UnpinIntrospector+SetConfig")
	}
	if Expander() == exp1 {
		t.Fatalf("expander should rebuild after UnpinExpander+SetConfig")
	}
}

func TestAssertOverGraph_UsesCurrentSnapshot(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{SkipStandardLibraryTypes: true, MaxUnwrap: 8}, nil)

	type token struct{ N int }

	// The mock expander produces no children, so the traversal asserts
	// exactly the root.
	calls := 0
	failed, err := AssertOverGraph(func(n apis.Node) bool {
		calls++
		return false
	}, token{N: 1})
	if err != nil {
		t.Fatalf("AssertOverGraph: unexpected error: %v", err)
	}
	if calls != 1 {
		t.Fatalf("predicate calls = %d, want 1", calls)
	}
	if len(failed) != 1 || failed[0].String() != "" {
		t.Fatalf("failed = %v, want [root]", failed)
	}
}

func TestNewDriver_IndependentRuns(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{SkipStandardLibraryTypes: true, MaxUnwrap: 8}, nil)

	type token struct{ N int }
	d := NewDriver()

	for i := 0; i < 3; i++ {
		failed, err := d.AssertOverGraph(func(apis.Node) bool { return false }, &token{N: i})
		if err != nil {
			t.Fatalf("run %d: unexpected error: %v", i, err)
		}
		if len(failed) != 1 {
			t.Fatalf("run %d: failed = %v, want exactly the root", i, failed)
		}
	}
}

func TestAssertOverGraph_Concurrent_With_SetConfig(t *testing.T) {
	b := &mockBuilder{}
	resetWithBuilder(t, b, apis.Config{SkipStandardLibraryTypes: true, MaxUnwrap: 8}, nil)

	type token struct{ N int }
	done := make(chan struct{})
	var wg sync.WaitGroup

	readers := runtime.GOMAXPROCS(0) * 4
	wg.Add(readers)
	for i := 0; i < readers; i++ {
		go func() {
			defer wg.Done()
			for j := 0; j < 1000; j++ {
				_, _ = AssertOverGraph(func(apis.Node) bool { return true }, token{N: j})
			}
		}()
	}

	go func() {
		for i := 0; i < 20; i++ {
			SetConfig(apis.Config{
				SkipStandardLibraryTypes: i%2 == 0,
				MaxUnwrap:                4 + (i % 5),
			})
			time.Sleep(time.Millisecond)
		}
		close(done)
	}()

	wg.Wait()
	<-done
}
