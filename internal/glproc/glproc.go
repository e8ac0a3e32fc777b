// Package glproc resolves OpenGL entry points from the platform's
// graphics driver library at runtime, so that nothing in the program
// has to link against the OpenGL import library.
//
// Resolution is two-tiered: a symbol is first looked up through the
// driver's extension-query function (wglGetProcAddress on Windows),
// which only guarantees results for entry points beyond the library's
// baseline version; when that tier reports failure the symbol is
// looked up directly in the library's export table. The extension
// query signals failure not just with a null address but with a small
// set of reserved sentinel values, which are folded into the same
// fallback path here and never escape this package.
//
// A Loader and the Procs created from it are not synchronized. All
// resolution and dispatch is expected to happen on the thread that
// owns the rendering context, which is how the rest of this module
// uses them.
package glproc

// QueryFunc maps an entry-point name to an address using the driver's
// extension loader. A zero or sentinel return means the name cannot
// be resolved this way.
type QueryFunc func(name string) uintptr

// LookupFunc maps an entry-point name to an address using the
// library's export table. Zero means not exported.
type LookupFunc func(name string) uintptr

// NotFoundError is returned when an entry point cannot be resolved by
// either tier.
type NotFoundError struct {
	Name string
}

func (e *NotFoundError) Error() string {
	return "glproc: entry point " + e.Name + " not found"
}

// Loader resolves entry-point names to callable addresses.
type Loader struct {
	query   QueryFunc
	lookup  LookupFunc
	release func() error
}

// NewLoader builds a Loader from an explicit query and lookup pair.
// Open constructs the real driver-backed pair on Windows; tests pass
// fakes.
func NewLoader(query QueryFunc, lookup LookupFunc) *Loader {
	return &Loader{query: query, lookup: lookup}
}

// Resolve returns the address of the named entry point, trying the
// extension query first and falling back to a direct export lookup
// when the query returns a sentinel. The returned address is stable:
// resolving the same name again yields the same address.
func (l *Loader) Resolve(name string) (uintptr, error) {
	if addr := l.query(name); !isSentinel(addr) {
		return addr, nil
	}
	if addr := l.lookup(name); addr != 0 {
		return addr, nil
	}
	return 0, &NotFoundError{Name: name}
}

// Close releases the underlying library handle, if any. Cached
// addresses must not be used afterwards.
func (l *Loader) Close() error {
	if l.release == nil {
		return nil
	}
	return l.release()
}

// isSentinel reports whether addr is one of the reserved values the
// extension query may return instead of a valid proc address. Some
// driver/version combinations return 1, 2, 3 or -1 for names they
// know of but cannot resolve.
func isSentinel(addr uintptr) bool {
	switch addr {
	case 0, 1, 2, 3, ^uintptr(0):
		return true
	}
	return false
}

// Proc is a single entry point with a one-slot address cache. The
// address is resolved on first use and kept for the life of the
// process; entry points do not change identity once resolved.
type Proc struct {
	loader *Loader
	name   string
	addr   uintptr
}

// NewProc returns a lazy handle for the named entry point. No
// resolution happens until the first Addr or Call.
func (l *Loader) NewProc(name string) *Proc {
	return &Proc{loader: l, name: name}
}

// Name returns the entry-point name the Proc resolves.
func (p *Proc) Name() string { return p.name }

// Addr returns the entry point's address, resolving it on first use.
// A failed resolution is not cached; the next Addr tries again.
func (p *Proc) Addr() (uintptr, error) {
	if p.addr == 0 {
		addr, err := p.loader.Resolve(p.name)
		if err != nil {
			return 0, err
		}
		p.addr = addr
	}
	return p.addr, nil
}

// mustAddr is the dispatch path: every wrapped entry point is
// mandatory for the GL version this module targets, so an unresolved
// symbol is a broken environment and panics with the symbol name.
func (p *Proc) mustAddr() uintptr {
	addr, err := p.Addr()
	if err != nil {
		panic(err)
	}
	return addr
}
