package fs

import (
	"io/fs"
	"math/rand"
	"os"
	"sync"
	"sync/atomic"
	"syscall"
)

// ChaosConfig controls fault injection probabilities.
// Each rate is a float64 from 0.0 (never) to 1.0 (always).
type ChaosConfig struct {
	ReadFailRate    float64 // Fail ReadFile entirely
	PartialReadRate float64 // Return truncated data from ReadFile
	WriteFailRate   float64 // Fail WriteFileAtomic before anything is written
	MkdirFailRate   float64 // Fail MkdirAll
}

// DefaultChaosConfig returns a config with reasonable fault rates for testing.
func DefaultChaosConfig() ChaosConfig {
	return ChaosConfig{
		ReadFailRate:    0.05,
		PartialReadRate: 0.05,
		WriteFailRate:   0.05,
		MkdirFailRate:   0.02,
	}
}

// PathState tracks the fault state of a path for consistent error injection.
type PathState int

const (
	// PathNormal means no persistent fault - errors are transient.
	// This is the zero value, so untracked paths are normal.
	PathNormal PathState = iota
	// PathIOError is sticky - the path has a "bad sector" and always returns EIO.
	PathIOError
	// PathReadOnly is sticky for writes - filesystem is read-only, returns EROFS.
	PathReadOnly
)

// ChaosMode controls how Chaos behaves.
type ChaosMode uint8

const (
	// ChaosModePassthrough behaves like the underlying FS.
	// Sticky state is not cleared; it is simply not consulted while in this mode.
	ChaosModePassthrough ChaosMode = iota

	// ChaosModeInject enables fault-rate injection and sticky path state.
	ChaosModeInject

	// ChaosModeStickyOnly applies only sticky path state. Fault rates are disabled.
	ChaosModeStickyOnly
)

// Chaos wraps an [FS] and injects failures for testing.
//
// Errors are state-aware: once a path gets EIO (bad sector), it stays broken
// until [Chaos.ResetPathState]. All injected errors are real OS errors
// (syscall.Errno wrapped in *fs.PathError), so errors.Is and os.IsPermission
// behave as they would against a real disk.
//
// The zero mode is [ChaosModePassthrough]; call [Chaos.SetMode] to inject.
type Chaos struct {
	fs     FS
	rng    *rand.Rand
	config ChaosConfig
	mode   atomic.Uint32

	mu         sync.RWMutex
	pathStates map[string]PathState

	readFails    atomic.Int64
	partialReads atomic.Int64
	writeFails   atomic.Int64
	mkdirFails   atomic.Int64
}

// NewChaos creates a new Chaos filesystem wrapping the given [FS].
// The seed controls random fault injection for reproducibility.
func NewChaos(fs FS, seed int64, config ChaosConfig) *Chaos {
	return &Chaos{
		fs:         fs,
		rng:        rand.New(rand.NewSource(seed)),
		config:     config,
		pathStates: make(map[string]PathState),
	}
}

// SetMode updates Chaos behavior. Switching modes never clears sticky state.
func (c *Chaos) SetMode(m ChaosMode) { c.mode.Store(uint32(m)) }

// ChaosStats contains counts of injected faults.
type ChaosStats struct {
	ReadFails    int64
	PartialReads int64
	WriteFails   int64
	MkdirFails   int64
}

// Stats returns the current fault injection counts.
func (c *Chaos) Stats() ChaosStats {
	return ChaosStats{
		ReadFails:    c.readFails.Load(),
		PartialReads: c.partialReads.Load(),
		WriteFails:   c.writeFails.Load(),
		MkdirFails:   c.mkdirFails.Load(),
	}
}

// TotalFaults returns the total number of injected faults.
func (c *Chaos) TotalFaults() int64 {
	s := c.Stats()

	return s.ReadFails + s.PartialReads + s.WriteFails + s.MkdirFails
}

// PathState returns the current fault state for a path (for testing).
func (c *Chaos) PathState(path string) PathState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.pathStates[path]
}

// SetPathState forces a sticky fault state on a path (for testing).
func (c *Chaos) SetPathState(path string, state PathState) {
	c.setState(path, state)
}

// ResetPathState clears the fault state for a path (for testing).
func (c *Chaos) ResetPathState(path string) {
	c.setState(path, PathNormal)
}

func (c *Chaos) should(mode ChaosMode, rate float64) bool {
	if mode != ChaosModeInject {
		return false
	}

	return c.randFloat() < rate
}

// randFloat returns a random float64 in [0.0, 1.0) (thread-safe).
func (c *Chaos) randFloat() float64 {
	c.mu.Lock()
	result := c.rng.Float64()
	c.mu.Unlock()

	return result
}

// randIntn returns a random int in [0, n) (thread-safe).
func (c *Chaos) randIntn(n int) int {
	c.mu.Lock()
	result := c.rng.Intn(n)
	c.mu.Unlock()

	return result
}

func (c *Chaos) getState(path string) PathState {
	c.mu.RLock()
	defer c.mu.RUnlock()

	return c.pathStates[path]
}

func (c *Chaos) setState(path string, state PathState) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if state == PathNormal {
		delete(c.pathStates, path)
	} else {
		c.pathStates[path] = state
	}
}

func errToState(err syscall.Errno) PathState {
	switch err {
	case syscall.EIO:
		return PathIOError
	case syscall.EROFS:
		return PathReadOnly
	default:
		return PathNormal
	}
}

// pathError creates an *fs.PathError with the given operation, path, and errno.
// This matches what the real OS returns, so errors.Is() works correctly.
func pathError(op, path string, errno syscall.Errno) error {
	pe := &fs.PathError{Op: op, Path: path, Err: errno}
	markInjectedPathError(pe)

	return pe
}

// pickError selects an error for op and records any resulting sticky state.
func (c *Chaos) pickError(op string, path string) syscall.Errno {
	var valid []syscall.Errno

	switch op {
	case "read":
		valid = []syscall.Errno{syscall.EIO, syscall.EACCES, syscall.EINTR}
	case "write":
		valid = []syscall.Errno{syscall.EACCES, syscall.EIO, syscall.ENOSPC, syscall.EDQUOT, syscall.EROFS}
	case "mkdir":
		valid = []syscall.Errno{syscall.EACCES, syscall.ENOSPC, syscall.EROFS}
	default:
		valid = []syscall.Errno{syscall.EIO}
	}

	err := valid[c.randIntn(len(valid))]
	c.setState(path, errToState(err))

	return err
}

func (c *Chaos) ReadFile(path string) ([]byte, error) {
	mode := ChaosMode(c.mode.Load())
	if mode == ChaosModePassthrough {
		return c.fs.ReadFile(path)
	}

	// Sticky EIO. Read-only paths still read fine.
	if c.getState(path) == PathIOError {
		c.readFails.Add(1)

		return nil, pathError("read", path, syscall.EIO)
	}

	if c.should(mode, c.config.ReadFailRate) {
		c.readFails.Add(1)

		return nil, pathError("read", path, c.pickError("read", path))
	}

	data, err := c.fs.ReadFile(path)
	if err != nil {
		return nil, err
	}

	// Partial read - return truncated data
	if c.should(mode, c.config.PartialReadRate) && len(data) > 1 {
		c.partialReads.Add(1)
		cutoff := c.randIntn(len(data)-1) + 1

		return data[:cutoff], nil
	}

	return data, nil
}

// WriteFileAtomic either fails before touching path or delegates to the
// wrapped FS. An injected failure never leaves a partial file behind, which
// is the guarantee the atomic write gives callers.
func (c *Chaos) WriteFileAtomic(path string, data []byte, perm os.FileMode) error {
	mode := ChaosMode(c.mode.Load())
	if mode == ChaosModePassthrough {
		return c.fs.WriteFileAtomic(path, data, perm)
	}

	switch c.getState(path) {
	case PathIOError:
		c.writeFails.Add(1)

		return pathError("write", path, syscall.EIO)
	case PathReadOnly:
		c.writeFails.Add(1)

		return pathError("write", path, syscall.EROFS)
	case PathNormal:
	}

	if c.should(mode, c.config.WriteFailRate) {
		c.writeFails.Add(1)

		return pathError("write", path, c.pickError("write", path))
	}

	return c.fs.WriteFileAtomic(path, data, perm)
}

func (c *Chaos) MkdirAll(path string, perm os.FileMode) error {
	mode := ChaosMode(c.mode.Load())
	if mode == ChaosModePassthrough {
		return c.fs.MkdirAll(path, perm)
	}

	if c.getState(path) == PathReadOnly {
		c.mkdirFails.Add(1)

		return pathError("mkdir", path, syscall.EROFS)
	}

	if c.should(mode, c.config.MkdirFailRate) {
		c.mkdirFails.Add(1)

		return pathError("mkdir", path, c.pickError("mkdir", path))
	}

	return c.fs.MkdirAll(path, perm)
}

// Exists is never faulted; the store only uses it for diagnostics.
func (c *Chaos) Exists(path string) (bool, error) {
	return c.fs.Exists(path)
}

// Compile-time interface check.
var _ FS = (*Chaos)(nil)
