//go:build !windows

package glproc

import "errors"

// Open is only implemented on Windows; the loader core itself is
// portable and can be driven with NewLoader elsewhere.
func Open() (*Loader, error) {
	return nil, errors.New("glproc: opening the system OpenGL library requires windows")
}

// Call panics on non-Windows platforms; dispatch needs the native
// calling convention.
func (p *Proc) Call(args ...uintptr) (uintptr, uintptr) {
	panic("glproc: " + p.name + ": dispatch requires windows")
}
