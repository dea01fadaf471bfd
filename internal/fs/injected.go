package fs

import (
	"errors"
	iofs "io/fs"
	"sync"
)

// IsInjected reports whether err (or any wrapped error) was injected by [Chaos].
// Returns false if err is nil.
//
// [Chaos] returns plain *fs.PathError values with a syscall.Errno in
// PathError.Err so os.IsNotExist/os.IsPermission keep working. Those values
// are tracked here so tests can still tell injected errors from real ones.
func IsInjected(err error) bool {
	if err == nil {
		return false
	}

	var pathErr *iofs.PathError
	if errors.As(err, &pathErr) {
		_, ok := injectedPathErrors.Load(pathErr)

		return ok
	}

	return false
}

var injectedPathErrors sync.Map // map[*fs.PathError]struct{}

// markInjectedPathError registers a PathError as injected. Panics if err is nil.
func markInjectedPathError(err *iofs.PathError) {
	injectedPathErrors.Store(err, struct{}{})
}
