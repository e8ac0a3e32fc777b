package main

import (
	"flag"
	"log"
	"runtime"

	"github.com/davellis/wingl/internal/shell"
	"github.com/davellis/wingl/pkg/render"
)

func init() {
	// The rendering context may only be current on one thread; keep
	// main pinned to it.
	runtime.LockOSThread()
}

func main() {
	title := flag.String("title", "OpenGL Application", "window title")
	width := flag.Int("width", 0, "client width in pixels (0 = quarter of the screen)")
	height := flag.Int("height", 0, "client height in pixels (0 = quarter of the screen)")
	vsync := flag.Bool("vsync", true, "synchronize presentation with the display")
	flag.Parse()

	cfg := shell.Config{
		Title:  *title,
		Width:  *width,
		Height: *height,
		VSync:  *vsync,
	}

	if err := shell.Run(cfg, render.NewClearScene()); err != nil {
		log.Fatalf("glshell: %v", err)
	}
}
