//go:build !unix

package console

import "errors"

// SizeFd returns the size of the terminal attached to fd.
// On platforms without the unix ioctl interface it always fails, so
// [Size] falls back to the default dimensions.
func SizeFd(fd uintptr) (width, height int, err error) {
	return 0, 0, errors.New("console: terminal size not available on this platform")
}
