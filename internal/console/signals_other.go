//go:build !darwin && !dragonfly && !freebsd && !linux && !netbsd && !openbsd

package console

// keepSignals is a no-op where raw mode is not built on termios.
func keepSignals(fd int) error {
	return nil
}
