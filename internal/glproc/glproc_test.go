package glproc

import (
	"errors"
	"testing"
)

// fakeDriver is a stand-in for the driver library: a set of names the
// extension query answers, a set the export table answers, and call
// counters for both tiers.
type fakeDriver struct {
	query   map[string]uintptr
	exports map[string]uintptr

	queries int
	lookups int
}

func (d *fakeDriver) loader() *Loader {
	return NewLoader(
		func(name string) uintptr {
			d.queries++
			return d.query[name]
		},
		func(name string) uintptr {
			d.lookups++
			return d.exports[name]
		},
	)
}

func TestResolveSentinelFallback(t *testing.T) {
	// Every reserved sentinel from the extension query must divert to
	// the export table.
	sentinels := []struct {
		name  string
		value uintptr
	}{
		{"null", 0},
		{"one", 1},
		{"two", 2},
		{"three", 3},
		{"all ones", ^uintptr(0)},
	}

	const exported = uintptr(0x4000)

	for _, tt := range sentinels {
		t.Run(tt.name, func(t *testing.T) {
			d := &fakeDriver{
				query:   map[string]uintptr{"glClear": tt.value},
				exports: map[string]uintptr{"glClear": exported},
			}
			addr, err := d.loader().Resolve("glClear")
			if err != nil {
				t.Fatalf("Resolve: %v", err)
			}
			if addr != exported {
				t.Errorf("Resolve = %#x, want export-table address %#x", addr, exported)
			}
			if d.lookups != 1 {
				t.Errorf("lookups = %d, want 1", d.lookups)
			}
		})
	}
}

func TestResolveQueryWins(t *testing.T) {
	// A real address from the extension query is used as-is; the
	// export table must not be consulted.
	d := &fakeDriver{
		query:   map[string]uintptr{"glActiveTexture": 0x5000},
		exports: map[string]uintptr{"glActiveTexture": 0x6000},
	}
	addr, err := d.loader().Resolve("glActiveTexture")
	if err != nil {
		t.Fatalf("Resolve: %v", err)
	}
	if addr != 0x5000 {
		t.Errorf("Resolve = %#x, want query address 0x5000", addr)
	}
	if d.lookups != 0 {
		t.Errorf("lookups = %d, want 0", d.lookups)
	}
}

func TestResolveNotFound(t *testing.T) {
	d := &fakeDriver{}
	_, err := d.loader().Resolve("glBogus")
	if err == nil {
		t.Fatal("Resolve of an unknown name succeeded")
	}
	var nf *NotFoundError
	if !errors.As(err, &nf) {
		t.Fatalf("Resolve error = %T, want *NotFoundError", err)
	}
	if nf.Name != "glBogus" {
		t.Errorf("NotFoundError.Name = %q, want %q", nf.Name, "glBogus")
	}
}

func TestResolveIdempotent(t *testing.T) {
	d := &fakeDriver{
		query:   map[string]uintptr{"glFinish": 1},
		exports: map[string]uintptr{"glFinish": 0x7000},
	}
	l := d.loader()

	first, err := l.Resolve("glFinish")
	if err != nil {
		t.Fatalf("first Resolve: %v", err)
	}
	second, err := l.Resolve("glFinish")
	if err != nil {
		t.Fatalf("second Resolve: %v", err)
	}
	if first != second {
		t.Errorf("addresses differ across resolutions: %#x then %#x", first, second)
	}
}

func TestProcResolvesOnce(t *testing.T) {
	d := &fakeDriver{
		query: map[string]uintptr{"glViewport": 0x8000},
	}
	p := d.loader().NewProc("glViewport")

	for i := 0; i < 3; i++ {
		addr, err := p.Addr()
		if err != nil {
			t.Fatalf("Addr #%d: %v", i+1, err)
		}
		if addr != 0x8000 {
			t.Fatalf("Addr #%d = %#x, want 0x8000", i+1, addr)
		}
	}
	if d.queries != 1 {
		t.Errorf("queries = %d, want 1 (address must be cached after first use)", d.queries)
	}
}

func TestProcRetriesAfterFailure(t *testing.T) {
	// A failed resolution is not cached: wglGetProcAddress cannot
	// answer for extensions before a context is current, so the next
	// call gets another chance.
	d := &fakeDriver{}
	p := d.loader().NewProc("wglSwapIntervalEXT")

	if _, err := p.Addr(); err == nil {
		t.Fatal("Addr succeeded with nothing resolvable")
	}

	d.query = map[string]uintptr{"wglSwapIntervalEXT": 0x9000}
	addr, err := p.Addr()
	if err != nil {
		t.Fatalf("Addr after symbol appeared: %v", err)
	}
	if addr != 0x9000 {
		t.Errorf("Addr = %#x, want 0x9000", addr)
	}
}

func TestResolveFakeDriverEndToEnd(t *testing.T) {
	// fnA: query answers with a sentinel, export table has it.
	// fnB: query answers with a real address.
	// fnC: unknown everywhere.
	const (
		addrA = uintptr(0xA000)
		addrB = uintptr(0xB000)
	)
	d := &fakeDriver{
		query:   map[string]uintptr{"fnA": 0x1, "fnB": addrB},
		exports: map[string]uintptr{"fnA": addrA},
	}
	l := d.loader()

	tests := []struct {
		name     string
		want     uintptr
		notFound bool
	}{
		{name: "fnA", want: addrA},
		{name: "fnB", want: addrB},
		{name: "fnC", notFound: true},
	}

	for _, tt := range tests {
		addr, err := l.Resolve(tt.name)
		if tt.notFound {
			var nf *NotFoundError
			if !errors.As(err, &nf) {
				t.Errorf("Resolve(%q) error = %v, want *NotFoundError", tt.name, err)
			}
			continue
		}
		if err != nil {
			t.Errorf("Resolve(%q): %v", tt.name, err)
			continue
		}
		if addr != tt.want {
			t.Errorf("Resolve(%q) = %#x, want %#x", tt.name, addr, tt.want)
		}
	}
}

func TestCloseWithoutHandle(t *testing.T) {
	// A loader built from injected functions owns no library handle.
	l := NewLoader(
		func(string) uintptr { return 0 },
		func(string) uintptr { return 0 },
	)
	if err := l.Close(); err != nil {
		t.Errorf("Close: %v", err)
	}
}
