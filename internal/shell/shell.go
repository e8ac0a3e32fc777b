// Package shell owns the desktop side of the program: the window, the
// message pump, the rendering context and the frame loop. Everything
// runs on one locked OS thread; the rendering context is only ever
// current there.
package shell

import "errors"

// Config describes the window the shell should create.
type Config struct {
	Title string
	// Client area size in pixels. Zero means the original default: a
	// window a quarter the size of the desktop, centered.
	Width, Height int
	// VSync synchronizes presentation with the display when the
	// driver supports WGL_EXT_swap_control.
	VSync bool
}

// Scene produces the frame content. Update advances animation state
// by dt seconds; Draw issues the GL calls for the current client
// size. Both run on the shell's thread with the context current.
type Scene interface {
	Update(dt float64)
	Draw(width, height int)
}

// ErrUnsupported is returned by Run on platforms without a WGL
// driver.
var ErrUnsupported = errors.New("shell: only supported on windows")

// withDefaults fills in the zero-value Config fields.
func (c Config) withDefaults() Config {
	if c.Title == "" {
		c.Title = "OpenGL Application"
	}
	if c.Width < 0 {
		c.Width = 0
	}
	if c.Height < 0 {
		c.Height = 0
	}
	// A size on one axis only is meaningless; treat it as "use the
	// default for both".
	if c.Width == 0 || c.Height == 0 {
		c.Width, c.Height = 0, 0
	}
	return c
}
