//go:build !(linux || freebsd || openbsd || netbsd || dragonfly)

package clipboard

import "errors"

var errUnsupported = errors.New("clipboard operations are not supported on this platform")

func ensureInit() error { return errUnsupported }

func writeImageData([]byte) error    { return errUnsupported }
func readImageData() ([]byte, error) { return nil, errUnsupported }
func writeTextData([]byte) error     { return errUnsupported }
func readTextData() ([]byte, error)  { return nil, errUnsupported }
