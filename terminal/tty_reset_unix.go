//go:build linux || darwin || freebsd || netbsd || openbsd || dragonfly

package terminal

import (
	"os"

	"golang.org/x/sys/unix"
)

// resetTerminalMode puts the controlling tty back into cooked mode with echo and output processing
// It goes through /dev/tty so a redirected stdin does not matter. Errors are ignored.
func resetTerminalMode() {
	tty, err := os.OpenFile("/dev/tty", os.O_RDWR, 0)
	if err != nil {
		return
	}
	defer tty.Close()

	fd := int(tty.Fd())
	t, err := unix.IoctlGetTermios(fd, ioctlGetTermios)
	if err != nil {
		return
	}
	t.Lflag |= unix.ECHO | unix.ICANON | unix.ISIG | unix.IEXTEN
	t.Iflag |= unix.ICRNL
	// Raw mode drops OPOST, which turns every later newline into a staircase
	t.Oflag |= unix.OPOST
	unix.IoctlSetTermios(fd, ioctlSetTermios, t)
}
