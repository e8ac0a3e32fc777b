package render

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func vecNear(a, b mgl32.Vec4, eps float32) bool {
	for i := 0; i < 4; i++ {
		d := a[i] - b[i]
		if d < -eps || d > eps {
			return false
		}
	}
	return true
}

func TestClearSceneColor(t *testing.T) {
	from := mgl32.Vec4{1, 0, 0, 0}
	to := mgl32.Vec4{0, 0, 1, 0}

	tests := []struct {
		name    string
		elapsed float64
		want    mgl32.Vec4
	}{
		{name: "start of period", elapsed: 0, want: from},
		{name: "quarter period", elapsed: 1, want: mgl32.Vec4{0.5, 0, 0.5, 0}},
		{name: "half period", elapsed: 2, want: to},
		{name: "full period wraps", elapsed: 4, want: from},
		{name: "next cycle", elapsed: 6, want: to},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := &ClearScene{From: from, To: to, Period: 4}
			s.Update(tt.elapsed)
			if got := s.Color(); !vecNear(got, tt.want, 1e-4) {
				t.Errorf("Color() at %gs = %v, want %v", tt.elapsed, got, tt.want)
			}
		})
	}
}

func TestClearSceneStaticWithoutPeriod(t *testing.T) {
	from := mgl32.Vec4{0.2, 0.4, 0.6, 1}
	s := &ClearScene{From: from, To: mgl32.Vec4{1, 1, 1, 1}}

	s.Update(123)
	if got := s.Color(); got != from {
		t.Errorf("Color() = %v, want the static From color %v", got, from)
	}
}

func TestClearSceneUpdateAccumulates(t *testing.T) {
	s := &ClearScene{From: mgl32.Vec4{}, To: mgl32.Vec4{1, 1, 1, 1}, Period: 2}

	// Two half-steps must land where one full step does.
	s.Update(0.5)
	s.Update(0.5)
	stepped := s.Color()

	direct := &ClearScene{From: mgl32.Vec4{}, To: mgl32.Vec4{1, 1, 1, 1}, Period: 2}
	direct.Update(1)

	if want := direct.Color(); !vecNear(stepped, want, 1e-6) {
		t.Errorf("accumulated Color() = %v, want %v", stepped, want)
	}
}

func TestClearSceneIgnoresNegativeDt(t *testing.T) {
	s := NewClearScene()
	before := s.Color()
	s.Update(-1)
	if got := s.Color(); got != before {
		t.Errorf("negative dt moved the fade: %v -> %v", before, got)
	}
}

func TestNewClearSceneDefaults(t *testing.T) {
	s := NewClearScene()
	if s.Period <= 0 {
		t.Errorf("Period = %g, want positive", s.Period)
	}
	if s.Color() != s.From {
		t.Errorf("initial Color() = %v, want From %v", s.Color(), s.From)
	}
}
