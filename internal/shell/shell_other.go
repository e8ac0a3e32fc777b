//go:build !windows

package shell

// Run needs a WGL-capable platform.
func Run(cfg Config, scene Scene) error {
	return ErrUnsupported
}
