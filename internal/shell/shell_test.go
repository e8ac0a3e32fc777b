package shell

import "testing"

func TestConfigDefaults(t *testing.T) {
	tests := []struct {
		name string
		in   Config
		want Config
	}{
		{
			name: "zero value",
			in:   Config{},
			want: Config{Title: "OpenGL Application"},
		},
		{
			name: "explicit size kept",
			in:   Config{Title: "demo", Width: 1280, Height: 720},
			want: Config{Title: "demo", Width: 1280, Height: 720},
		},
		{
			name: "negative size becomes default",
			in:   Config{Width: -1, Height: 600},
			want: Config{Title: "OpenGL Application"},
		},
		{
			name: "one axis only becomes default",
			in:   Config{Width: 800},
			want: Config{Title: "OpenGL Application"},
		},
		{
			name: "vsync carried through",
			in:   Config{VSync: true},
			want: Config{Title: "OpenGL Application", VSync: true},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.in.withDefaults(); got != tt.want {
				t.Errorf("withDefaults() = %+v, want %+v", got, tt.want)
			}
		})
	}
}
