//go:build (linux || freebsd || openbsd || netbsd || dragonfly) && cgo

package clipboard

import (
	"errors"
	"os"
	"sync"

	"golang.design/x/clipboard"
)

var (
	initOnce     sync.Once
	initErr      error
	errNoDisplay = errors.New("clipboard initialization requires DISPLAY or WAYLAND_DISPLAY")
)

func ensureInit() error {
	initOnce.Do(func() {
		if os.Getenv("DISPLAY") == "" && os.Getenv("WAYLAND_DISPLAY") == "" {
			initErr = errNoDisplay
			return
		}
		initErr = clipboard.Init()
	})
	return initErr
}

func writeImageData(data []byte) error {
	clipboard.Write(clipboard.FmtImage, data)
	return nil
}

func readImageData() ([]byte, error) {
	return clipboard.Read(clipboard.FmtImage), nil
}

func writeTextData(data []byte) error {
	clipboard.Write(clipboard.FmtText, data)
	return nil
}

func readTextData() ([]byte, error) {
	return clipboard.Read(clipboard.FmtText), nil
}
