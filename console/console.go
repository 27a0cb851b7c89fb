// Package console reports the dimensions of the controlling terminal.
package console

import "os"

// Fallback dimensions reported when no terminal is attached.
const (
	FallbackWidth  = 80
	FallbackHeight = 24
)

// Size returns the current terminal size in character cells, probing
// stdout, then stderr, then stdin. Redirected streams are skipped, so the
// size stays correct when output is piped. With no terminal at all (CI,
// cron) it reports the 80x24 fallback.
func Size() (width, height int) {
	for _, f := range []*os.File{os.Stdout, os.Stderr, os.Stdin} {
		if w, h, err := SizeFd(f.Fd()); err == nil && w > 0 && h > 0 {
			return w, h
		}
	}
	return FallbackWidth, FallbackHeight
}
