package wgl

import (
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/davellis/wingl/internal/win32"
)

// GDISurface is the live Surface: user32 for device contexts, gdi32
// for pixel formats and presentation.
type GDISurface struct{}

func (GDISurface) GetDC(hwnd HWND) (HDC, error) {
	dc, err := win32.GetDC(windows.Handle(hwnd))
	if err != nil {
		return 0, err
	}
	return HDC(dc), nil
}

func (GDISurface) ReleaseDC(hwnd HWND, dc HDC) error {
	return win32.ReleaseDC(windows.Handle(hwnd), windows.Handle(dc))
}

func (GDISurface) ChoosePixelFormat(dc HDC, pfd *PixelFormatDescriptor) (int32, error) {
	return win32.ChoosePixelFormat(windows.Handle(dc), unsafe.Pointer(pfd))
}

func (GDISurface) SetPixelFormat(dc HDC, format int32, pfd *PixelFormatDescriptor) error {
	return win32.SetPixelFormat(windows.Handle(dc), format, unsafe.Pointer(pfd))
}

func (GDISurface) SwapBuffers(dc HDC) error {
	return win32.SwapBuffers(windows.Handle(dc))
}
