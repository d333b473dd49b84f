//go:build darwin || dragonfly || freebsd || linux || netbsd || openbsd

package console

import "golang.org/x/sys/unix"

// keepSignals turns ISIG back on after term.MakeRaw cleared it, so Ctrl-C
// still raises SIGINT while the rest of the line discipline stays raw.
func keepSignals(fd int) error {
	termios, err := unix.IoctlGetTermios(fd, ioctlReadTermios)
	if err != nil {
		return err
	}
	termios.Lflag |= unix.ISIG
	return unix.IoctlSetTermios(fd, ioctlWriteTermios, termios)
}
