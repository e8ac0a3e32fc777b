package wgl

import (
	"errors"
	"testing"

	"github.com/davellis/wingl/internal/glproc"
)

// fakeSurface scripts the windowing side of the factory and records
// every call.
type fakeSurface struct {
	dc        HDC
	dcErr     error
	format    int32
	chooseErr error
	setErr    error

	released  int
	formatSet int32
	swaps     int
}

func (s *fakeSurface) GetDC(hwnd HWND) (HDC, error) {
	if s.dcErr != nil {
		return 0, s.dcErr
	}
	return s.dc, nil
}

func (s *fakeSurface) ReleaseDC(hwnd HWND, dc HDC) error {
	s.released++
	return nil
}

func (s *fakeSurface) ChoosePixelFormat(dc HDC, pfd *PixelFormatDescriptor) (int32, error) {
	return s.format, s.chooseErr
}

func (s *fakeSurface) SetPixelFormat(dc HDC, format int32, pfd *PixelFormatDescriptor) error {
	if s.setErr != nil {
		return s.setErr
	}
	s.formatSet = format
	return nil
}

func (s *fakeSurface) SwapBuffers(dc HDC) error {
	s.swaps++
	return nil
}

// countingLoader tracks how many resolutions the factory triggers.
type countingLoader struct {
	resolutions int
}

func (c *countingLoader) loader() *glproc.Loader {
	return glproc.NewLoader(
		func(string) uintptr {
			c.resolutions++
			return 0x1000
		},
		func(string) uintptr { return 0 },
	)
}

func TestCreateForWindowNoDeviceContext(t *testing.T) {
	dcErr := errors.New("window has no device context")
	s := &fakeSurface{dcErr: dcErr}
	c := &countingLoader{}

	_, err := CreateForWindow(c.loader(), s, 1, DefaultPixelFormat())
	if !errors.Is(err, dcErr) {
		t.Fatalf("CreateForWindow error = %v, want wrapped %v", err, dcErr)
	}
	if c.resolutions != 0 {
		t.Errorf("resolved %d entry points on the failure path, want 0", c.resolutions)
	}
	if s.formatSet != 0 {
		t.Error("pixel format was set despite GetDC failing")
	}
}

func TestCreateForWindowNoFormat(t *testing.T) {
	s := &fakeSurface{dc: 0x10, format: 0}
	c := &countingLoader{}

	_, err := CreateForWindow(c.loader(), s, 1, DefaultPixelFormat())
	if !errors.Is(err, ErrNoPixelFormat) {
		t.Fatalf("CreateForWindow error = %v, want ErrNoPixelFormat", err)
	}
	if s.formatSet != 0 {
		t.Error("pixel format was set despite negotiation failing")
	}
	if s.released != 1 {
		t.Errorf("device context released %d times, want 1", s.released)
	}
	if c.resolutions != 0 {
		t.Errorf("resolved %d entry points on the failure path, want 0", c.resolutions)
	}
}

func TestCreateForWindowSetFormatFails(t *testing.T) {
	setErr := errors.New("format rejected")
	s := &fakeSurface{dc: 0x10, format: 3, setErr: setErr}

	c := &countingLoader{}
	_, err := CreateForWindow(c.loader(), s, 1, DefaultPixelFormat())
	if !errors.Is(err, setErr) {
		t.Fatalf("CreateForWindow error = %v, want wrapped %v", err, setErr)
	}
	if s.released != 1 {
		t.Errorf("device context released %d times, want 1", s.released)
	}
}

func TestCreateForWindowNegotiates(t *testing.T) {
	s := &fakeSurface{dc: 0x10, format: 7}
	c := &countingLoader{}

	ctx, err := CreateForWindow(c.loader(), s, 1, DefaultPixelFormat())
	if err != nil {
		t.Fatalf("CreateForWindow: %v", err)
	}
	if s.formatSet != 7 {
		t.Errorf("set format %d, want the negotiated 7", s.formatSet)
	}
	if ctx.PixelFormat() != 7 {
		t.Errorf("PixelFormat() = %d, want 7", ctx.PixelFormat())
	}
	if ctx.DC() != 0x10 {
		t.Errorf("DC() = %#x, want 0x10", ctx.DC())
	}
	if ctx.Handle() != 0 {
		t.Error("native context exists before Create was called")
	}
	// Negotiation alone must not touch the driver library.
	if c.resolutions != 0 {
		t.Errorf("resolved %d entry points during negotiation, want 0", c.resolutions)
	}
}

func TestSwapBuffersGoesThroughSurface(t *testing.T) {
	s := &fakeSurface{dc: 0x10, format: 1}
	c := &countingLoader{}

	ctx, err := CreateForWindow(c.loader(), s, 1, DefaultPixelFormat())
	if err != nil {
		t.Fatalf("CreateForWindow: %v", err)
	}
	if err := ctx.SwapBuffers(); err != nil {
		t.Fatalf("SwapBuffers: %v", err)
	}
	if s.swaps != 1 {
		t.Errorf("surface presented %d times, want 1", s.swaps)
	}
	// Presentation is a GDI call, never a GL entry point.
	if c.resolutions != 0 {
		t.Errorf("SwapBuffers resolved %d entry points, want 0", c.resolutions)
	}
}

func TestReleaseIsIdempotent(t *testing.T) {
	s := &fakeSurface{dc: 0x10, format: 1}
	c := &countingLoader{}

	ctx, err := CreateForWindow(c.loader(), s, 1, DefaultPixelFormat())
	if err != nil {
		t.Fatalf("CreateForWindow: %v", err)
	}
	if err := ctx.Release(); err != nil {
		t.Fatalf("Release: %v", err)
	}
	if err := ctx.Release(); err != nil {
		t.Fatalf("second Release: %v", err)
	}
	if s.released != 1 {
		t.Errorf("device context released %d times, want 1", s.released)
	}
}

func TestDefaultPixelFormat(t *testing.T) {
	pfd := DefaultPixelFormat()

	if pfd.Size == 0 {
		t.Error("descriptor size not filled in")
	}
	if pfd.Version != 1 {
		t.Errorf("Version = %d, want 1", pfd.Version)
	}
	if pfd.Flags&PFD_DOUBLEBUFFER == 0 {
		t.Error("default format is not double buffered")
	}
	if pfd.Flags&PFD_SUPPORT_OPENGL == 0 {
		t.Error("default format does not request OpenGL support")
	}
	if pfd.ColorBits != 24 || pfd.DepthBits != 16 {
		t.Errorf("ColorBits/DepthBits = %d/%d, want 24/16", pfd.ColorBits, pfd.DepthBits)
	}
}
