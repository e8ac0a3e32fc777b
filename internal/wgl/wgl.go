// Package wgl creates and drives OpenGL rendering contexts for
// windows. Pixel-format negotiation is performed up front by
// CreateForWindow; the native context itself is created by a separate
// explicit Create call so that a negotiation failure and a context
// failure stay attributable to their own phase.
//
// The WGL entry points are resolved lazily through glproc, with one
// exception: SwapBuffers is dispatched through the windowing system's
// GDI surface, because opengl32.dll does not export it. That quirk is
// part of the driver contract and must not be "fixed".
//
// Context lifecycle: format chosen (CreateForWindow) -> created
// (Create) -> current (MakeCurrent) -> not current (MakeNotCurrent)
// -> destroyed (Delete, then Release). A context may be current on at
// most one thread; every method here assumes the caller stays on that
// thread.
package wgl

import (
	"errors"
	"fmt"
	"math"
	"unsafe"

	"github.com/davellis/wingl/internal/glproc"
)

// Native handle types, kept as plain words so the package builds and
// tests everywhere.
type (
	HWND  uintptr
	HDC   uintptr
	HGLRC uintptr
)

// PixelFormatDescriptor mirrors the Win32 PIXELFORMATDESCRIPTOR
// layout field for field.
type PixelFormatDescriptor struct {
	Size           uint16
	Version        uint16
	Flags          uint32
	PixelType      uint8
	ColorBits      uint8
	RedBits        uint8
	RedShift       uint8
	GreenBits      uint8
	GreenShift     uint8
	BlueBits       uint8
	BlueShift      uint8
	AlphaBits      uint8
	AlphaShift     uint8
	AccumBits      uint8
	AccumRedBits   uint8
	AccumGreenBits uint8
	AccumBlueBits  uint8
	AccumAlphaBits uint8
	DepthBits      uint8
	StencilBits    uint8
	AuxBuffers     uint8
	LayerType      uint8
	Reserved       uint8
	LayerMask      uint32
	VisibleMask    uint32
	DamageMask     uint32
}

// PIXELFORMATDESCRIPTOR flag and type values.
const (
	PFD_DOUBLEBUFFER   = 0x00000001
	PFD_DRAW_TO_WINDOW = 0x00000004
	PFD_SUPPORT_OPENGL = 0x00000020

	PFD_TYPE_RGBA = 0

	PFD_MAIN_PLANE = 0
)

// DefaultPixelFormat describes a double-buffered RGBA window surface
// with 24-bit color and a 16-bit depth buffer.
func DefaultPixelFormat() *PixelFormatDescriptor {
	pfd := &PixelFormatDescriptor{
		Version:   1,
		Flags:     PFD_DRAW_TO_WINDOW | PFD_SUPPORT_OPENGL | PFD_DOUBLEBUFFER,
		PixelType: PFD_TYPE_RGBA,
		ColorBits: 24,
		DepthBits: 16,
		LayerType: PFD_MAIN_PLANE,
	}
	pfd.Size = uint16(unsafe.Sizeof(*pfd))
	return pfd
}

// Surface is the slice of the windowing system the factory needs:
// device contexts, pixel-format negotiation and buffer presentation.
// The Windows implementation forwards to user32/gdi32; tests inject
// fakes.
type Surface interface {
	GetDC(hwnd HWND) (HDC, error)
	ReleaseDC(hwnd HWND, dc HDC) error
	ChoosePixelFormat(dc HDC, pfd *PixelFormatDescriptor) (int32, error)
	SetPixelFormat(dc HDC, format int32, pfd *PixelFormatDescriptor) error
	SwapBuffers(dc HDC) error
}

// ErrNoPixelFormat is returned when format negotiation finds nothing
// compatible with the requested descriptor. The caller may retry with
// different attributes; the process is fine.
var ErrNoPixelFormat = errors.New("wgl: no compatible pixel format")

// LayerPlaneDescriptor mirrors LAYERPLANEDESCRIPTOR.
type LayerPlaneDescriptor struct {
	Size             uint16
	Version          uint16
	Flags            uint32
	PixelType        uint8
	ColorBits        uint8
	RedBits          uint8
	RedShift         uint8
	GreenBits        uint8
	GreenShift       uint8
	BlueBits         uint8
	BlueShift        uint8
	AlphaBits        uint8
	AlphaShift       uint8
	AccumBits        uint8
	AccumRedBits     uint8
	AccumGreenBits   uint8
	AccumBlueBits    uint8
	AccumAlphaBits   uint8
	DepthBits        uint8
	StencilBits      uint8
	AuxBuffers       uint8
	LayerPlane       uint8
	Reserved         uint8
	TransparentColor uint32
}

// Swap pairs a device context with the plane set to present, for
// SwapMultipleBuffers.
type Swap struct {
	DC     HDC
	Planes uint32
}

// Context is a rendering context bound to one window. It owns the
// window's device context and, once Create has run, the native GL
// context handle. Deleting a context that is still current is a
// caller error under the WGL contract; this package documents that
// rather than trying to correct it.
type Context struct {
	surface Surface
	hwnd    HWND
	dc      HDC
	format  int32
	rc      HGLRC

	copyContext            *glproc.Proc
	createContext          *glproc.Proc
	createLayerContext     *glproc.Proc
	deleteContext          *glproc.Proc
	describeLayerPlane     *glproc.Proc
	getCurrentContext      *glproc.Proc
	getCurrentDC           *glproc.Proc
	getLayerPaletteEntries *glproc.Proc
	makeCurrent            *glproc.Proc
	realizeLayerPalette    *glproc.Proc
	setLayerPaletteEntries *glproc.Proc
	shareLists             *glproc.Proc
	swapLayerBuffers       *glproc.Proc
	swapMultipleBuffers    *glproc.Proc
	useFontBitmaps         *glproc.Proc
	useFontOutlines        *glproc.Proc
	swapIntervalEXT        *glproc.Proc
}

// CreateForWindow obtains the window's device context and negotiates
// a pixel format compatible with pfd. No entry point is resolved and
// no native context is created here; call Create next.
func CreateForWindow(l *glproc.Loader, s Surface, hwnd HWND, pfd *PixelFormatDescriptor) (*Context, error) {
	dc, err := s.GetDC(hwnd)
	if err != nil {
		return nil, fmt.Errorf("wgl: device context for window: %w", err)
	}

	format, err := s.ChoosePixelFormat(dc, pfd)
	if err != nil {
		s.ReleaseDC(hwnd, dc)
		return nil, fmt.Errorf("wgl: choosing pixel format: %w", err)
	}
	if format == 0 {
		s.ReleaseDC(hwnd, dc)
		return nil, ErrNoPixelFormat
	}
	if err := s.SetPixelFormat(dc, format, pfd); err != nil {
		s.ReleaseDC(hwnd, dc)
		return nil, fmt.Errorf("wgl: setting pixel format %d: %w", format, err)
	}

	return &Context{
		surface: s,
		hwnd:    hwnd,
		dc:      dc,
		format:  format,

		copyContext:            l.NewProc("wglCopyContext"),
		createContext:          l.NewProc("wglCreateContext"),
		createLayerContext:     l.NewProc("wglCreateLayerContext"),
		deleteContext:          l.NewProc("wglDeleteContext"),
		describeLayerPlane:     l.NewProc("wglDescribeLayerPlane"),
		getCurrentContext:      l.NewProc("wglGetCurrentContext"),
		getCurrentDC:           l.NewProc("wglGetCurrentDC"),
		getLayerPaletteEntries: l.NewProc("wglGetLayerPaletteEntries"),
		makeCurrent:            l.NewProc("wglMakeCurrent"),
		realizeLayerPalette:    l.NewProc("wglRealizeLayerPalette"),
		setLayerPaletteEntries: l.NewProc("wglSetLayerPaletteEntries"),
		shareLists:             l.NewProc("wglShareLists"),
		swapLayerBuffers:       l.NewProc("wglSwapLayerBuffers"),
		swapMultipleBuffers:    l.NewProc("wglSwapMultipleBuffers"),
		useFontBitmaps:         l.NewProc("wglUseFontBitmapsW"),
		useFontOutlines:        l.NewProc("wglUseFontOutlinesW"),
		swapIntervalEXT:        l.NewProc("wglSwapIntervalEXT"),
	}, nil
}

// DC returns the device context the pixel format was set on.
func (c *Context) DC() HDC { return c.dc }

// PixelFormat returns the negotiated pixel format index.
func (c *Context) PixelFormat() int32 { return c.format }

// Handle returns the native context handle, zero before Create.
func (c *Context) Handle() HGLRC { return c.rc }

// Create builds the native rendering context for the negotiated
// format. It does not make the context current.
func (c *Context) Create() error {
	r1, _ := c.createContext.Call(uintptr(c.dc))
	if r1 == 0 {
		return errors.New("wgl: wglCreateContext failed")
	}
	c.rc = HGLRC(r1)
	return nil
}

// CreateLayerContext builds a context for an overlay or underlay
// plane instead of the main plane.
func (c *Context) CreateLayerContext(layerPlane int32) (HGLRC, error) {
	r1, _ := c.createLayerContext.Call(uintptr(c.dc), uintptr(layerPlane))
	if r1 == 0 {
		return 0, fmt.Errorf("wgl: wglCreateLayerContext(%d) failed", layerPlane)
	}
	return HGLRC(r1), nil
}

// MakeCurrent binds the context to the calling thread and the
// window's device context.
func (c *Context) MakeCurrent() error {
	r1, _ := c.makeCurrent.Call(uintptr(c.dc), uintptr(c.rc))
	if r1 == 0 {
		return errors.New("wgl: wglMakeCurrent failed")
	}
	return nil
}

// MakeNotCurrent unbinds whatever context is current on the calling
// thread. Required before Delete.
func (c *Context) MakeNotCurrent() error {
	r1, _ := c.makeCurrent.Call(0, 0)
	if r1 == 0 {
		return errors.New("wgl: releasing current context failed")
	}
	return nil
}

// Delete destroys the native context handle. The context must not be
// current on any thread; deleting a current context is undefined per
// the WGL contract and is the caller's responsibility to avoid.
func (c *Context) Delete() error {
	if c.rc == 0 {
		return nil
	}
	r1, _ := c.deleteContext.Call(uintptr(c.rc))
	c.rc = 0
	if r1 == 0 {
		return errors.New("wgl: wglDeleteContext failed")
	}
	return nil
}

// Release gives the device context back to the windowing system. Call
// after Delete, before the window is destroyed.
func (c *Context) Release() error {
	if c.dc == 0 {
		return nil
	}
	err := c.surface.ReleaseDC(c.hwnd, c.dc)
	c.dc = 0
	return err
}

// CopyTo copies the state groups selected by mask into dst's context.
func (c *Context) CopyTo(dst *Context, mask uint32) error {
	r1, _ := c.copyContext.Call(uintptr(c.rc), uintptr(dst.rc), uintptr(mask))
	if r1 == 0 {
		return errors.New("wgl: wglCopyContext failed")
	}
	return nil
}

// ShareWith makes display lists and textures created in either
// context visible to both.
func (c *Context) ShareWith(other *Context) error {
	r1, _ := c.shareLists.Call(uintptr(c.rc), uintptr(other.rc))
	if r1 == 0 {
		return errors.New("wgl: wglShareLists failed")
	}
	return nil
}

// CurrentContext returns the context handle current on the calling
// thread, zero if none.
func (c *Context) CurrentContext() HGLRC {
	r1, _ := c.getCurrentContext.Call()
	return HGLRC(r1)
}

// CurrentDC returns the device context of the current context, zero
// if none.
func (c *Context) CurrentDC() HDC {
	r1, _ := c.getCurrentDC.Call()
	return HDC(r1)
}

// SwapBuffers presents the back buffer. This goes through the GDI
// surface, not the GL library: opengl32.dll does not export
// SwapBuffers, gdi32.dll does.
func (c *Context) SwapBuffers() error {
	return c.surface.SwapBuffers(c.dc)
}

// SetSwapInterval sets the presentation interval (1 enables vsync)
// through the WGL_EXT_swap_control extension. Valid only while the
// context is current; drivers without the extension yield an error.
func (c *Context) SetSwapInterval(interval int) error {
	if _, err := c.swapIntervalEXT.Addr(); err != nil {
		return fmt.Errorf("wgl: swap interval unsupported by driver: %w", err)
	}
	r1, _ := c.swapIntervalEXT.Call(uintptr(interval))
	if r1 == 0 {
		return fmt.Errorf("wgl: setting swap interval %d failed", interval)
	}
	return nil
}

// DescribeLayerPlane fills lpd with the capabilities of a layer plane
// of the given pixel format.
func (c *Context) DescribeLayerPlane(format, layerPlane int32, lpd *LayerPlaneDescriptor) error {
	lpd.Size = uint16(unsafe.Sizeof(*lpd))
	r1, _ := c.describeLayerPlane.Call(uintptr(c.dc), uintptr(format), uintptr(layerPlane), uintptr(lpd.Size), uintptr(unsafe.Pointer(lpd)))
	if r1 == 0 {
		return fmt.Errorf("wgl: describing layer plane %d of format %d failed", layerPlane, format)
	}
	return nil
}

// GetLayerPaletteEntries reads palette entries for a layer plane into
// entries, returning how many were read.
func (c *Context) GetLayerPaletteEntries(layerPlane, start int32, entries []uint32) int32 {
	if len(entries) == 0 {
		return 0
	}
	r1, _ := c.getLayerPaletteEntries.Call(uintptr(c.dc), uintptr(layerPlane), uintptr(start), uintptr(len(entries)), uintptr(unsafe.Pointer(&entries[0])))
	return int32(r1)
}

// SetLayerPaletteEntries writes palette entries for a layer plane,
// returning how many were set.
func (c *Context) SetLayerPaletteEntries(layerPlane, start int32, entries []uint32) int32 {
	if len(entries) == 0 {
		return 0
	}
	r1, _ := c.setLayerPaletteEntries.Call(uintptr(c.dc), uintptr(layerPlane), uintptr(start), uintptr(len(entries)), uintptr(unsafe.Pointer(&entries[0])))
	return int32(r1)
}

// RealizeLayerPalette maps a layer plane's palette into the display.
func (c *Context) RealizeLayerPalette(layerPlane int32, realize bool) error {
	var b uintptr
	if realize {
		b = 1
	}
	r1, _ := c.realizeLayerPalette.Call(uintptr(c.dc), uintptr(layerPlane), b)
	if r1 == 0 {
		return fmt.Errorf("wgl: realizing palette of layer plane %d failed", layerPlane)
	}
	return nil
}

// SwapLayerBuffers presents the planes selected by the planes mask.
func (c *Context) SwapLayerBuffers(planes uint32) error {
	r1, _ := c.swapLayerBuffers.Call(uintptr(c.dc), uintptr(planes))
	if r1 == 0 {
		return errors.New("wgl: wglSwapLayerBuffers failed")
	}
	return nil
}

// SwapMultipleBuffers presents several device contexts in one call,
// returning how many succeeded.
func (c *Context) SwapMultipleBuffers(swaps []Swap) uint32 {
	if len(swaps) == 0 {
		return 0
	}
	r1, _ := c.swapMultipleBuffers.Call(uintptr(len(swaps)), uintptr(unsafe.Pointer(&swaps[0])))
	return uint32(r1)
}

// UseFontBitmaps builds display lists of glyph bitmaps from the
// device context's selected font.
func (c *Context) UseFontBitmaps(first, count, listBase uint32) error {
	r1, _ := c.useFontBitmaps.Call(uintptr(c.dc), uintptr(first), uintptr(count), uintptr(listBase))
	if r1 == 0 {
		return errors.New("wgl: wglUseFontBitmaps failed")
	}
	return nil
}

// UseFontOutlines builds display lists of glyph outlines. metrics, if
// non-nil, receives one GLYPHMETRICSFLOAT per glyph.
func (c *Context) UseFontOutlines(first, count, listBase uint32, deviation, extrusion float32, format int32, metrics unsafe.Pointer) error {
	r1, _ := c.useFontOutlines.Call(
		uintptr(c.dc), uintptr(first), uintptr(count), uintptr(listBase),
		uintptr(math.Float32bits(deviation)), uintptr(math.Float32bits(extrusion)),
		uintptr(format), uintptr(metrics),
	)
	if r1 == 0 {
		return errors.New("wgl: wglUseFontOutlines failed")
	}
	return nil
}
