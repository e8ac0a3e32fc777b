// Package win32 wraps the slice of user32 and gdi32 the shell needs:
// window class and window lifecycle, the message pump, device
// contexts, pixel-format calls and buffer presentation.
package win32

import (
	"fmt"
	"unsafe"

	"golang.org/x/sys/windows"
)

// Window class styles.
const (
	CS_VREDRAW = 0x0001
	CS_HREDRAW = 0x0002
	CS_OWNDC   = 0x0020
)

// Window styles.
const (
	WS_OVERLAPPED   = 0x00000000
	WS_CAPTION      = 0x00C00000
	WS_SYSMENU      = 0x00080000
	WS_MINIMIZEBOX  = 0x00020000
	WS_CLIPSIBLINGS = 0x04000000
	WS_CLIPCHILDREN = 0x02000000

	WS_EX_OVERLAPPEDWINDOW = 0x00000300
)

// Messages the shell handles.
const (
	WM_DESTROY = 0x0002
	WM_SIZE    = 0x0005
	WM_CLOSE   = 0x0010
	WM_QUIT    = 0x0012
)

const (
	PM_REMOVE = 0x0001

	SW_SHOWDEFAULT = 10

	SM_CXSCREEN = 0
	SM_CYSCREEN = 1

	GWLP_USERDATA = -21

	IDC_ARROW       = 32512
	IDI_APPLICATION = 32512

	MB_ICONERROR = 0x00000010
)

// Point mirrors POINT.
type Point struct {
	X, Y int32
}

// Rect mirrors RECT.
type Rect struct {
	Left, Top, Right, Bottom int32
}

// Msg mirrors MSG.
type Msg struct {
	HWND    windows.Handle
	Message uint32
	WParam  uintptr
	LParam  uintptr
	Time    uint32
	Pt      Point
	_       uint32
}

// WndClassEx mirrors WNDCLASSEXW.
type WndClassEx struct {
	Size       uint32
	Style      uint32
	WndProc    uintptr
	ClsExtra   int32
	WndExtra   int32
	Instance   windows.Handle
	Icon       windows.Handle
	Cursor     windows.Handle
	Background windows.Handle
	MenuName   *uint16
	ClassName  *uint16
	IconSm     windows.Handle
}

var (
	user32 = windows.NewLazySystemDLL("user32.dll")
	gdi32  = windows.NewLazySystemDLL("gdi32.dll")

	procAdjustWindowRectEx = user32.NewProc("AdjustWindowRectEx")
	procCreateWindowExW    = user32.NewProc("CreateWindowExW")
	procDefWindowProcW     = user32.NewProc("DefWindowProcW")
	procDestroyWindow      = user32.NewProc("DestroyWindow")
	procDispatchMessageW   = user32.NewProc("DispatchMessageW")
	procGetClientRect      = user32.NewProc("GetClientRect")
	procGetDC              = user32.NewProc("GetDC")
	procGetSystemMetrics   = user32.NewProc("GetSystemMetrics")
	procLoadCursorW        = user32.NewProc("LoadCursorW")
	procLoadIconW          = user32.NewProc("LoadIconW")
	procMessageBoxW        = user32.NewProc("MessageBoxW")
	procMoveWindow         = user32.NewProc("MoveWindow")
	procPeekMessageW       = user32.NewProc("PeekMessageW")
	procPostQuitMessage    = user32.NewProc("PostQuitMessage")
	procRegisterClassExW   = user32.NewProc("RegisterClassExW")
	procReleaseDC          = user32.NewProc("ReleaseDC")
	procShowWindow         = user32.NewProc("ShowWindow")
	procTranslateMessage   = user32.NewProc("TranslateMessage")
	procUnregisterClassW   = user32.NewProc("UnregisterClassW")
	procUpdateWindow       = user32.NewProc("UpdateWindow")

	procChoosePixelFormat = gdi32.NewProc("ChoosePixelFormat")
	procSetPixelFormat    = gdi32.NewProc("SetPixelFormat")
	procSwapBuffers       = gdi32.NewProc("SwapBuffers")
)

func RegisterClassEx(wc *WndClassEx) (uint16, error) {
	wc.Size = uint32(unsafe.Sizeof(*wc))
	r1, _, err := procRegisterClassExW.Call(uintptr(unsafe.Pointer(wc)))
	if r1 == 0 {
		return 0, fmt.Errorf("RegisterClassEx: %w", err)
	}
	return uint16(r1), nil
}

func UnregisterClass(className *uint16, instance windows.Handle) error {
	r1, _, err := procUnregisterClassW.Call(uintptr(unsafe.Pointer(className)), uintptr(instance))
	if r1 == 0 {
		return fmt.Errorf("UnregisterClass: %w", err)
	}
	return nil
}

func CreateWindowEx(exStyle uint32, className, windowName *uint16, style uint32, x, y, width, height int32, parent, menu, instance windows.Handle, param unsafe.Pointer) (windows.Handle, error) {
	r1, _, err := procCreateWindowExW.Call(
		uintptr(exStyle),
		uintptr(unsafe.Pointer(className)),
		uintptr(unsafe.Pointer(windowName)),
		uintptr(style),
		uintptr(x), uintptr(y), uintptr(width), uintptr(height),
		uintptr(parent), uintptr(menu), uintptr(instance),
		uintptr(param),
	)
	if r1 == 0 {
		return 0, fmt.Errorf("CreateWindowEx: %w", err)
	}
	return windows.Handle(r1), nil
}

func DestroyWindow(hwnd windows.Handle) error {
	r1, _, err := procDestroyWindow.Call(uintptr(hwnd))
	if r1 == 0 {
		return fmt.Errorf("DestroyWindow: %w", err)
	}
	return nil
}

func DefWindowProc(hwnd windows.Handle, msg uint32, wparam, lparam uintptr) uintptr {
	r1, _, _ := procDefWindowProcW.Call(uintptr(hwnd), uintptr(msg), wparam, lparam)
	return r1
}

func PostQuitMessage(exitCode int32) {
	procPostQuitMessage.Call(uintptr(exitCode))
}

// PeekMessage reports whether a message was dequeued into msg.
func PeekMessage(msg *Msg, hwnd windows.Handle, filterMin, filterMax, removeMsg uint32) bool {
	r1, _, _ := procPeekMessageW.Call(uintptr(unsafe.Pointer(msg)), uintptr(hwnd), uintptr(filterMin), uintptr(filterMax), uintptr(removeMsg))
	return r1 != 0
}

func TranslateMessage(msg *Msg) {
	procTranslateMessage.Call(uintptr(unsafe.Pointer(msg)))
}

func DispatchMessage(msg *Msg) {
	procDispatchMessageW.Call(uintptr(unsafe.Pointer(msg)))
}

func ShowWindow(hwnd windows.Handle, cmdShow int32) {
	procShowWindow.Call(uintptr(hwnd), uintptr(cmdShow))
}

func UpdateWindow(hwnd windows.Handle) {
	procUpdateWindow.Call(uintptr(hwnd))
}

func GetDC(hwnd windows.Handle) (windows.Handle, error) {
	r1, _, _ := procGetDC.Call(uintptr(hwnd))
	if r1 == 0 {
		return 0, fmt.Errorf("GetDC: no device context for window %#x", hwnd)
	}
	return windows.Handle(r1), nil
}

func ReleaseDC(hwnd, dc windows.Handle) error {
	r1, _, _ := procReleaseDC.Call(uintptr(hwnd), uintptr(dc))
	if r1 == 0 {
		return fmt.Errorf("ReleaseDC: device context %#x not released", dc)
	}
	return nil
}

func GetSystemMetrics(index int32) int32 {
	r1, _, _ := procGetSystemMetrics.Call(uintptr(index))
	return int32(r1)
}

func AdjustWindowRectEx(rect *Rect, style uint32, menu bool, exStyle uint32) error {
	var m uintptr
	if menu {
		m = 1
	}
	r1, _, err := procAdjustWindowRectEx.Call(uintptr(unsafe.Pointer(rect)), uintptr(style), m, uintptr(exStyle))
	if r1 == 0 {
		return fmt.Errorf("AdjustWindowRectEx: %w", err)
	}
	return nil
}

func MoveWindow(hwnd windows.Handle, x, y, width, height int32, repaint bool) error {
	var r uintptr
	if repaint {
		r = 1
	}
	r1, _, err := procMoveWindow.Call(uintptr(hwnd), uintptr(x), uintptr(y), uintptr(width), uintptr(height), r)
	if r1 == 0 {
		return fmt.Errorf("MoveWindow: %w", err)
	}
	return nil
}

func GetClientRect(hwnd windows.Handle, rect *Rect) error {
	r1, _, err := procGetClientRect.Call(uintptr(hwnd), uintptr(unsafe.Pointer(rect)))
	if r1 == 0 {
		return fmt.Errorf("GetClientRect: %w", err)
	}
	return nil
}

func LoadCursor(instance windows.Handle, cursorName uintptr) windows.Handle {
	r1, _, _ := procLoadCursorW.Call(uintptr(instance), cursorName)
	return windows.Handle(r1)
}

func LoadIcon(instance windows.Handle, iconName uintptr) windows.Handle {
	r1, _, _ := procLoadIconW.Call(uintptr(instance), iconName)
	return windows.Handle(r1)
}

// MessageBox shows a modal message box; used only for fatal
// environment errors.
func MessageBox(hwnd windows.Handle, text, caption string, boxType uint32) {
	t, err := windows.UTF16PtrFromString(text)
	if err != nil {
		return
	}
	c, err := windows.UTF16PtrFromString(caption)
	if err != nil {
		return
	}
	procMessageBoxW.Call(uintptr(hwnd), uintptr(unsafe.Pointer(t)), uintptr(unsafe.Pointer(c)), uintptr(boxType))
}

// ChoosePixelFormat asks GDI for the pixel format closest to pfd; a
// zero return means nothing matched.
func ChoosePixelFormat(dc windows.Handle, pfd unsafe.Pointer) (int32, error) {
	r1, _, err := procChoosePixelFormat.Call(uintptr(dc), uintptr(pfd))
	if r1 == 0 && err != windows.ERROR_SUCCESS {
		return 0, fmt.Errorf("ChoosePixelFormat: %w", err)
	}
	return int32(r1), nil
}

func SetPixelFormat(dc windows.Handle, format int32, pfd unsafe.Pointer) error {
	r1, _, err := procSetPixelFormat.Call(uintptr(dc), uintptr(format), uintptr(pfd))
	if r1 == 0 {
		return fmt.Errorf("SetPixelFormat: %w", err)
	}
	return nil
}

// SwapBuffers is gdi32's presentation call; the GL library does not
// export one.
func SwapBuffers(dc windows.Handle) error {
	r1, _, err := procSwapBuffers.Call(uintptr(dc))
	if r1 == 0 {
		return fmt.Errorf("SwapBuffers: %w", err)
	}
	return nil
}
