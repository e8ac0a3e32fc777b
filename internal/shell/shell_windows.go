package shell

import (
	"fmt"
	"log"
	"syscall"
	"time"
	"unsafe"

	"golang.org/x/sys/windows"

	"github.com/davellis/wingl/internal/gl"
	"github.com/davellis/wingl/internal/glproc"
	"github.com/davellis/wingl/internal/wgl"
	"github.com/davellis/wingl/internal/win32"
)

const className = "winglWindowClass"

// window tracks the one native window the shell drives. The message
// procedure finds it through this package variable rather than
// GWLP_USERDATA; the shell never creates more than one window and a
// Go pointer must not be stored in window memory anyway.
var activeWindow *window

type window struct {
	hwnd      windows.Handle
	instance  windows.Handle
	className *uint16
	width     int
	height    int
}

// Run creates the window and the rendering context, then pumps
// messages and frames until the window closes. Fatal environment
// errors (no driver, no context) are reported to the user here and
// returned; the process exit is up to the caller.
func Run(cfg Config, scene Scene) error {
	cfg = cfg.withDefaults()

	err := run(cfg, scene)
	if err != nil {
		win32.MessageBox(0, err.Error(), cfg.Title, win32.MB_ICONERROR)
	}
	return err
}

func run(cfg Config, scene Scene) error {
	w, err := createWindow(cfg)
	if err != nil {
		return err
	}
	defer w.destroy()

	// The loader holds the only handle to the driver library; every
	// entry point below resolves through it on first use.
	loader, err := glproc.Open()
	if err != nil {
		return err
	}
	defer loader.Close()
	gl.Init(loader)

	ctx, err := wgl.CreateForWindow(loader, wgl.GDISurface{}, wgl.HWND(w.hwnd), wgl.DefaultPixelFormat())
	if err != nil {
		return err
	}
	defer ctx.Release()

	if err := ctx.Create(); err != nil {
		return err
	}
	if err := ctx.MakeCurrent(); err != nil {
		ctx.Delete()
		return err
	}
	defer func() {
		// Un-current before deletion; deleting a current context is
		// undefined under WGL.
		ctx.MakeNotCurrent()
		ctx.Delete()
	}()

	log.Printf("OpenGL version: %s", gl.GoStr(gl.GetString(gl.VERSION)))

	interval := 0
	if cfg.VSync {
		interval = 1
	}
	if err := ctx.SetSwapInterval(interval); err != nil {
		log.Printf("shell: %v", err)
	}

	win32.ShowWindow(w.hwnd, win32.SW_SHOWDEFAULT)
	win32.UpdateWindow(w.hwnd)

	return w.loop(scene, ctx)
}

// loop is the frame pump: drain pending messages, advance the scene,
// draw, present.
func (w *window) loop(scene Scene, ctx *wgl.Context) error {
	var msg win32.Msg
	last := time.Now()

	for {
		for win32.PeekMessage(&msg, 0, 0, 0, win32.PM_REMOVE) {
			if msg.Message == win32.WM_QUIT {
				return nil
			}
			win32.TranslateMessage(&msg)
			win32.DispatchMessage(&msg)
		}

		now := time.Now()
		dt := now.Sub(last).Seconds()
		last = now

		scene.Update(dt)
		scene.Draw(w.width, w.height)
		if err := ctx.SwapBuffers(); err != nil {
			return fmt.Errorf("shell: presenting frame: %w", err)
		}
	}
}

func createWindow(cfg Config) (*window, error) {
	instance, err := windows.GetModuleHandle(nil)
	if err != nil {
		return nil, fmt.Errorf("shell: module handle: %w", err)
	}

	clsName, err := windows.UTF16PtrFromString(className)
	if err != nil {
		return nil, err
	}
	title, err := windows.UTF16PtrFromString(cfg.Title)
	if err != nil {
		return nil, err
	}

	w := &window{instance: instance, className: clsName}

	wc := win32.WndClassEx{
		Style:     win32.CS_OWNDC | win32.CS_HREDRAW | win32.CS_VREDRAW,
		WndProc:   syscall.NewCallback(wndProc),
		Instance:  instance,
		Icon:      win32.LoadIcon(0, win32.IDI_APPLICATION),
		Cursor:    win32.LoadCursor(0, win32.IDC_ARROW),
		ClassName: clsName,
	}
	if _, err := win32.RegisterClassEx(&wc); err != nil {
		return nil, fmt.Errorf("shell: %w", err)
	}

	// The window procedure may fire inside CreateWindowEx, so the
	// lookup target has to exist first.
	activeWindow = w

	const style = win32.WS_OVERLAPPED | win32.WS_CAPTION | win32.WS_SYSMENU |
		win32.WS_MINIMIZEBOX | win32.WS_CLIPCHILDREN | win32.WS_CLIPSIBLINGS
	const exStyle = win32.WS_EX_OVERLAPPEDWINDOW

	hwnd, err := win32.CreateWindowEx(exStyle, clsName, title, style,
		0, 0, 0, 0, 0, 0, instance, unsafe.Pointer(nil))
	if err != nil {
		win32.UnregisterClass(clsName, instance)
		return nil, fmt.Errorf("shell: %w", err)
	}
	w.hwnd = hwnd

	if err := w.place(cfg, style, exStyle); err != nil {
		w.destroy()
		return nil, err
	}
	return w, nil
}

// place centers the window on the desktop. With no configured size
// the client area is a quarter of the screen.
func (w *window) place(cfg Config, style, exStyle uint32) error {
	screenW := win32.GetSystemMetrics(win32.SM_CXSCREEN)
	screenH := win32.GetSystemMetrics(win32.SM_CYSCREEN)

	clientW := int32(cfg.Width)
	clientH := int32(cfg.Height)
	if clientW == 0 {
		clientW = screenW / 2
		clientH = screenH / 2
	}

	left := (screenW - clientW) / 2
	top := (screenH - clientH) / 2
	rc := win32.Rect{Left: left, Top: top, Right: left + clientW, Bottom: top + clientH}
	if err := win32.AdjustWindowRectEx(&rc, style, false, exStyle); err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	if err := win32.MoveWindow(w.hwnd, rc.Left, rc.Top, rc.Right-rc.Left, rc.Bottom-rc.Top, true); err != nil {
		return fmt.Errorf("shell: %w", err)
	}

	var client win32.Rect
	if err := win32.GetClientRect(w.hwnd, &client); err != nil {
		return fmt.Errorf("shell: %w", err)
	}
	w.width = int(client.Right - client.Left)
	w.height = int(client.Bottom - client.Top)
	return nil
}

func (w *window) destroy() {
	if w.hwnd != 0 {
		win32.DestroyWindow(w.hwnd)
		w.hwnd = 0
	}
	win32.UnregisterClass(w.className, w.instance)
	if activeWindow == w {
		activeWindow = nil
	}
}

func wndProc(hwnd windows.Handle, msg uint32, wparam, lparam uintptr) uintptr {
	w := activeWindow
	if w == nil {
		return win32.DefWindowProc(hwnd, msg, wparam, lparam)
	}

	switch msg {
	case win32.WM_DESTROY:
		win32.PostQuitMessage(0)
		return 0

	case win32.WM_SIZE:
		w.width = int(uint32(lparam) & 0xFFFF)
		w.height = int((uint32(lparam) >> 16) & 0xFFFF)
	}

	return win32.DefWindowProc(hwnd, msg, wparam, lparam)
}
