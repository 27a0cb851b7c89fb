//go:build unix

package console

import "golang.org/x/sys/unix"

// SizeFd returns the size of the terminal attached to fd.
func SizeFd(fd uintptr) (width, height int, err error) {
	ws, err := unix.IoctlGetWinsize(int(fd), unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, err
	}
	return int(ws.Col), int(ws.Row), nil
}
