// Package safe wraps gocv.Mat with validity tracking and finalizer-backed
// cleanup so a missed Close never leaks native memory.
package safe

import (
	"fmt"
	"runtime"
	"sync"
	"sync/atomic"

	"gocv.io/x/gocv"
)

// MemoryTracker receives allocation events. Declared here to avoid an
// import cycle with the memory package.
type MemoryTracker interface {
	TrackAllocation(id uint64, size int64, tag string)
	TrackDeallocation(id uint64, tag string)
}

// Mat is a tracked gocv.Mat. All accessors tolerate use after Close and
// report emptiness instead of crashing into native code.
type Mat struct {
	mat     gocv.Mat
	isValid int32
	mu      sync.RWMutex
	id      uint64
	tracker MemoryTracker
	tag     string
}

var nextMatID uint64

// NewMat allocates a rows x cols Mat of the given type
func NewMat(rows, cols int, matType gocv.MatType, tracker MemoryTracker, tag string) (*Mat, error) {
	if rows <= 0 || cols <= 0 {
		return nil, fmt.Errorf("invalid dimensions: %dx%d", cols, rows)
	}

	mat := gocv.NewMatWithSize(rows, cols, matType)
	if mat.Empty() {
		mat.Close()
		return nil, fmt.Errorf("failed to allocate %dx%d Mat", cols, rows)
	}

	return wrap(mat, tracker, tag), nil
}

// NewMatFromMat clones an existing gocv.Mat into a tracked wrapper. The
// source stays owned by the caller.
func NewMatFromMat(src gocv.Mat, tracker MemoryTracker, tag string) (*Mat, error) {
	if src.Empty() {
		return nil, fmt.Errorf("source Mat is empty")
	}

	cloned := src.Clone()
	if cloned.Empty() {
		cloned.Close()
		return nil, fmt.Errorf("failed to clone Mat")
	}

	return wrap(cloned, tracker, tag), nil
}

func wrap(mat gocv.Mat, tracker MemoryTracker, tag string) *Mat {
	wrapped := &Mat{
		mat:     mat,
		isValid: 1,
		id:      atomic.AddUint64(&nextMatID, 1),
		tracker: tracker,
		tag:     tag,
	}

	if tracker != nil {
		size := int64(mat.Rows() * mat.Cols() * mat.Channels())
		tracker.TrackAllocation(wrapped.id, size, tag)
	}

	runtime.SetFinalizer(wrapped, (*Mat).finalize)
	return wrapped
}

// IsValid reports whether the Mat is still open
func (sm *Mat) IsValid() bool {
	return atomic.LoadInt32(&sm.isValid) == 1
}

// Empty reports whether the Mat holds no pixels
func (sm *Mat) Empty() bool {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.IsValid() {
		return true
	}
	return sm.mat.Empty()
}

// Rows returns the pixel height, zero once closed
func (sm *Mat) Rows() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.IsValid() {
		return 0
	}
	return sm.mat.Rows()
}

// Cols returns the pixel width, zero once closed
func (sm *Mat) Cols() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.IsValid() {
		return 0
	}
	return sm.mat.Cols()
}

// Channels returns the channel count, zero once closed
func (sm *Mat) Channels() int {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.IsValid() {
		return 0
	}
	return sm.mat.Channels()
}

// Clone copies the Mat into a new tracked wrapper
func (sm *Mat) Clone() (*Mat, error) {
	sm.mu.RLock()
	defer sm.mu.RUnlock()

	if !sm.IsValid() {
		return nil, fmt.Errorf("cannot clone closed Mat")
	}
	return NewMatFromMat(sm.mat, sm.tracker, sm.tag+"_clone")
}

// GetMat exposes the underlying gocv.Mat for drawing and encoding calls.
// The caller must not Close it.
func (sm *Mat) GetMat() gocv.Mat {
	sm.mu.RLock()
	defer sm.mu.RUnlock()
	return sm.mat
}

// ID returns the wrapper's allocation id
func (sm *Mat) ID() uint64 {
	return sm.id
}

// Close releases the native memory. Safe to call more than once.
func (sm *Mat) Close() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if atomic.CompareAndSwapInt32(&sm.isValid, 1, 0) {
		if sm.tracker != nil {
			sm.tracker.TrackDeallocation(sm.id, sm.tag)
		}
		if !sm.mat.Empty() {
			sm.mat.Close()
		}
		runtime.SetFinalizer(sm, nil)
	}
}

// finalize is the garbage collector's last-resort cleanup
func (sm *Mat) finalize() {
	if atomic.LoadInt32(&sm.isValid) == 1 {
		sm.Close()
	}
}
