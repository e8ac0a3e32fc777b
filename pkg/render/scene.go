// Package render holds the frame content the shell drives each
// frame.
package render

import (
	"math"

	"github.com/go-gl/mathgl/mgl32"

	"github.com/davellis/wingl/internal/gl"
)

// ClearScene fades the clear color back and forth between two
// endpoints. It is the simplest possible workload that still touches
// the viewport, clear-state and clear entry points every frame.
type ClearScene struct {
	// From and To are the RGBA endpoints of the fade.
	From, To mgl32.Vec4
	// Period is the time in seconds for a full there-and-back fade.
	// Non-positive means no animation; From is used as-is.
	Period float64

	elapsed float64
}

// NewClearScene returns a scene fading between the classic sky blue
// and a near-black over ten seconds.
func NewClearScene() *ClearScene {
	return &ClearScene{
		From:   mgl32.Vec4{0.3, 0.5, 0.9, 0.0},
		To:     mgl32.Vec4{0.02, 0.02, 0.08, 0.0},
		Period: 10,
	}
}

// Update advances the fade by dt seconds.
func (s *ClearScene) Update(dt float64) {
	if dt > 0 {
		s.elapsed += dt
	}
}

// Color returns the current clear color.
func (s *ClearScene) Color() mgl32.Vec4 {
	if s.Period <= 0 {
		return s.From
	}
	// Cosine blend: 0 at the start of each period, 1 halfway through.
	t := 0.5 - 0.5*math.Cos(2*math.Pi*s.elapsed/s.Period)
	d := s.To.Sub(s.From)
	return s.From.Add(d.Mul(float32(t)))
}

// Draw sets the viewport to the full client area and clears it with
// the current color.
func (s *ClearScene) Draw(width, height int) {
	gl.Viewport(0, 0, int32(width), int32(height))

	c := s.Color()
	gl.ClearColor(c.X(), c.Y(), c.Z(), c.W())
	gl.Clear(gl.COLOR_BUFFER_BIT | gl.DEPTH_BUFFER_BIT | gl.STENCIL_BUFFER_BIT)
}
