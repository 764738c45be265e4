package tensor

import (
	"fmt"
	"sync"
	"sync/atomic"
)

// buffer is a reference-counted, fixed-size byte region shared by every
// tensor handle that aliases it. A buffer never resizes; the memory is
// dropped when the last handle releases it.
type buffer struct {
	data  []byte
	refs  atomic.Int32
	mu    sync.Mutex // For safe deallocation
	owner bool       // false for memory borrowed from elsewhere (future zero-copy views)
}

// allocate acquires a buffer of exactly nbytes on the given device.
// A zero-size buffer is rejected: a tensor with zero elements is a
// construction error, never a valid empty buffer.
func allocate(nbytes int, device Device) (*buffer, error) {
	if nbytes <= 0 {
		return nil, fmt.Errorf("%w: requested %d bytes", ErrAllocation, nbytes)
	}

	switch device.Kind {
	case CPU:
		buf := &buffer{
			data:  make([]byte, nbytes),
			owner: true,
		}
		buf.refs.Store(1)
		return buf, nil
	default:
		return nil, fmt.Errorf("%w: %s", ErrNotImplemented, device)
	}
}

// retain increments the reference count (for Clone operations).
func (b *buffer) retain() {
	b.refs.Add(1)
}

// release decrements the reference count and drops the memory if it
// reaches 0.
func (b *buffer) release() {
	if b.refs.Add(-1) == 0 {
		b.mu.Lock()
		defer b.mu.Unlock()
		b.data = nil
	}
}

// isUnique returns true if this buffer has only one reference.
func (b *buffer) isUnique() bool {
	return b.refs.Load() == 1
}
