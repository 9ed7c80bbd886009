package internal

import "github.com/pkg/errors"

// The clipping loop has no error paths of its own; the one fatal condition
// (a degenerate input polygon) is reported by panicking, and the public API
// recovers to convert it to an error.

type ClipError error

// Panic with a ClipError.
func fatalf(format string, args ...interface{}) {
	panic(errors.Errorf(format, args...))
}

func HandleEarClipPanicRecover(r interface{}) error {
	if r != nil {
		if clipError, ok := r.(ClipError); ok {
			return clipError
		}
		panic(r)
	}
	return nil
}
