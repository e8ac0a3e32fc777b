package glproc

import (
	"fmt"
	"syscall"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Open loads opengl32.dll and obtains wglGetProcAddress from it,
// returning a Loader whose query tier goes through the driver and
// whose fallback tier reads the DLL's export table. A failure here
// means the machine has no usable OpenGL driver; callers treat it as
// unrecoverable.
func Open() (*Loader, error) {
	lib, err := windows.LoadLibraryEx("opengl32.dll", 0, windows.LOAD_LIBRARY_SEARCH_SYSTEM32)
	if err != nil {
		return nil, fmt.Errorf("glproc: loading opengl32.dll: %w", err)
	}

	queryAddr, err := windows.GetProcAddress(lib, "wglGetProcAddress")
	if err != nil {
		windows.FreeLibrary(lib)
		return nil, fmt.Errorf("glproc: opengl32.dll does not export wglGetProcAddress: %w", err)
	}

	query := func(name string) uintptr {
		cname, err := windows.BytePtrFromString(name)
		if err != nil {
			return 0
		}
		r1, _, _ := syscall.SyscallN(queryAddr, uintptr(unsafe.Pointer(cname)))
		return r1
	}
	lookup := func(name string) uintptr {
		addr, err := windows.GetProcAddress(lib, name)
		if err != nil {
			return 0
		}
		return addr
	}

	l := NewLoader(query, lookup)
	l.release = func() error { return windows.FreeLibrary(lib) }
	return l, nil
}

// Call invokes the entry point with the given arguments, resolving it
// first if needed. It panics if the entry point cannot be resolved;
// see Proc.mustAddr. The two return values are the raw result
// registers; interpretation is up to the wrapper.
func (p *Proc) Call(args ...uintptr) (uintptr, uintptr) {
	r1, r2, _ := syscall.SyscallN(p.mustAddr(), args...)
	return r1, r2
}
